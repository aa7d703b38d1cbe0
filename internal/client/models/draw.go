package models

import "time"

// DrawDateLayout is the wire format of a draw's calendar date.
const DrawDateLayout = "2006-01-02"

// Draw is one published draw result. Draws are created and edited only by
// an administrator; regular users fetch them read-only to evaluate tickets.
type Draw struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Prize1    string `json:"prize1"`
	First3One string `json:"first3_one"`
	First3Two string `json:"first3_two"`
	Last3One  string `json:"last3_one"`
	Last3Two  string `json:"last3_two"`
	Last2     string `json:"last2"`
}

// DrawDate parses the draw's calendar date. The zero time is returned for
// a malformed date.
func (d Draw) DrawDate() time.Time {
	t, err := time.Parse(DrawDateLayout, d.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Validate runs the client-side field checks for the admin draw form and
// returns a map of field name to message for every offending field.
func (d Draw) Validate() map[string]string {
	errs := map[string]string{}
	if !IsDigits(d.Prize1, 6) {
		errs["prize1"] = "กรอกเลข 6 หลัก"
	}
	if !IsDigits(d.First3One, 3) || !IsDigits(d.First3Two, 3) {
		errs["first3"] = "กรอกสามตัวหน้า 3 หลัก"
	}
	if !IsDigits(d.Last3One, 3) || !IsDigits(d.Last3Two, 3) {
		errs["last3"] = "กรอกสามตัวท้าย 3 หลัก"
	}
	if !IsDigits(d.Last2, 2) {
		errs["last2"] = "กรอกสองตัวท้าย 2 หลัก"
	}
	if _, err := time.Parse(DrawDateLayout, d.Date); err != nil {
		errs["date"] = "เลือกวันที่"
	}
	return errs
}
