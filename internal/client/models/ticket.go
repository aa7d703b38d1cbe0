// Package models defines the client-side views of LotteRich backend records:
// recorded lottery tickets, published draw results, and user profiles.
package models

import (
	"regexp"
	"time"
)

// PrizeResult is the announcement status of the draw governing a ticket.
type PrizeResult string

const (
	PrizeResultPending PrizeResult = "pending"
	PrizeResultNo      PrizeResult = "no"
	PrizeResultYes     PrizeResult = "yes"
)

// PrizeType identifies the prize tier a winning ticket matched.
// A ticket carries at most one tier.
type PrizeType string

const (
	PrizeTypeFirst     PrizeType = "prize1"
	PrizeTypeNearFirst PrizeType = "near1"
	PrizeTypeSecond    PrizeType = "prize2"
	PrizeTypeThird     PrizeType = "prize3"
	PrizeTypeFourth    PrizeType = "prize4"
	PrizeTypeFifth     PrizeType = "prize5"
	PrizeTypeFront3    PrizeType = "first3"
	PrizeTypeBack3     PrizeType = "last3"
	PrizeTypeBack2     PrizeType = "last2"
)

// PrizeResults returns every announcement status in canonical order.
func PrizeResults() []PrizeResult {
	return []PrizeResult{PrizeResultPending, PrizeResultNo, PrizeResultYes}
}

// PrizeTypes returns every prize tier in canonical order.
func PrizeTypes() []PrizeType {
	return []PrizeType{
		PrizeTypeFirst, PrizeTypeNearFirst,
		PrizeTypeSecond, PrizeTypeThird, PrizeTypeFourth, PrizeTypeFifth,
		PrizeTypeFront3, PrizeTypeBack3, PrizeTypeBack2,
	}
}

// Ticket is one recorded lottery purchase as returned by the backend.
// The client never owns canonical ticket state; any slice of Tickets held
// in memory is a disposable cache refetched after every mutation.
type Ticket struct {
	ID             string      `json:"id"`
	TicketNumber   string      `json:"ticketNumber"`
	TicketQuantity int         `json:"ticketQuantity"`
	TicketAmount   int         `json:"ticketAmount"`
	Date           time.Time   `json:"date"`
	PrizeResult    PrizeResult `json:"prizeResult"`
	PrizeType      PrizeType   `json:"prizeType"`
	PrizeAmount    int         `json:"prizeAmount"`
	TicketWinning  string      `json:"ticketWinning"`
}

// TotalCost is quantity times price per ticket. Malformed (negative)
// numerics count as zero.
func (t Ticket) TotalCost() int {
	q, a := t.TicketQuantity, t.TicketAmount
	if q < 0 {
		q = 0
	}
	if a < 0 {
		a = 0
	}
	return q * a
}

// Net is the recorded prize amount minus the total cost.
func (t Ticket) Net() int {
	p := t.PrizeAmount
	if p < 0 {
		p = 0
	}
	return p - t.TotalCost()
}

// legacy values written under the older two-way ticket schema
const (
	legacyResultAnnounced = "announced"
	legacyTypeLose        = "lose"
)

// Normalize maps a record onto the canonical schema. Records written under
// the older two-way schema (prizeResult "announced" plus a synthetic "lose"
// tier) become pending/no/yes; unknown statuses fall back to pending, and a
// prize tier is only kept on winning tickets. A winning number that is not
// exactly six digits is discarded.
func (t Ticket) Normalize() Ticket {
	switch t.PrizeResult {
	case PrizeResultPending, PrizeResultNo, PrizeResultYes:
	case legacyResultAnnounced:
		if t.PrizeType == "" || t.PrizeType == legacyTypeLose {
			t.PrizeResult = PrizeResultNo
		} else {
			t.PrizeResult = PrizeResultYes
		}
	default:
		t.PrizeResult = PrizeResultPending
	}

	if t.PrizeResult != PrizeResultYes {
		t.PrizeType = ""
		t.PrizeAmount = 0
	}
	if t.PrizeAmount < 0 {
		t.PrizeAmount = 0
	}
	if t.TicketQuantity < 0 {
		t.TicketQuantity = 0
	}
	if t.TicketAmount < 0 {
		t.TicketAmount = 0
	}
	if !IsDigits(t.TicketWinning, 6) {
		t.TicketWinning = ""
	}
	return t
}

// DefaultPrizeAmount returns the fixed payout recorded for a prize tier,
// or zero for an unknown or empty tier.
func DefaultPrizeAmount(t PrizeType) int {
	switch t {
	case PrizeTypeFirst:
		return 6000000
	case PrizeTypeSecond:
		return 200000
	case PrizeTypeNearFirst:
		return 100000
	case PrizeTypeThird:
		return 80000
	case PrizeTypeFourth:
		return 40000
	case PrizeTypeFifth:
		return 20000
	case PrizeTypeFront3, PrizeTypeBack3:
		return 4000
	case PrizeTypeBack2:
		return 2000
	}
	return 0
}

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// IsDigits reports whether s consists of exactly n ASCII digits.
func IsDigits(s string, n int) bool {
	return len(s) == n && digitsOnly.MatchString(s)
}

// TicketInput is the write payload for creating or updating a ticket.
// Date is a calendar date in ISO form (YYYY-MM-DD).
type TicketInput struct {
	TicketNumber   string      `json:"ticketNumber"`
	TicketQuantity int         `json:"ticketQuantity"`
	TicketAmount   int         `json:"ticketAmount"`
	Date           string      `json:"date"`
	PrizeResult    PrizeResult `json:"prizeResult"`
	PrizeType      PrizeType   `json:"prizeType"`
	PrizeAmount    int         `json:"prizeAmount"`
	TicketWinning  string      `json:"ticketWinning"`
}

// Validate runs the client-side field checks and returns a map of field name
// to message for every offending field. An empty map means the input may be
// submitted.
func (in TicketInput) Validate() map[string]string {
	errs := map[string]string{}
	if !IsDigits(in.TicketNumber, 6) {
		errs["ticketNumber"] = "กรุณากรอกเลขสลาก 6 หลัก"
	}
	if in.TicketQuantity < 1 {
		errs["ticketQuantity"] = "กรุณากรอกจำนวนที่ซื้ออย่างน้อย 1 ใบ"
	}
	if in.TicketWinning != "" && !IsDigits(in.TicketWinning, 6) {
		errs["ticketWinning"] = "กรุณากรอกเลข 6 หลัก"
	}
	if _, err := time.Parse(DrawDateLayout, in.Date); err != nil {
		errs["date"] = "เลือกวันที่"
	}
	return errs
}

// Sanitized applies the submission rules the forms apply before posting:
// the prize tier and amount are kept only on winning tickets, a missing
// amount on a winning ticket falls back to the tier default, and a winning
// number is kept only alongside an announced result.
func (in TicketInput) Sanitized() TicketInput {
	if in.PrizeResult != PrizeResultYes {
		in.PrizeType = ""
		in.PrizeAmount = 0
	} else if in.PrizeAmount == 0 {
		in.PrizeAmount = DefaultPrizeAmount(in.PrizeType)
	}
	if in.PrizeResult == PrizeResultPending {
		in.TicketWinning = ""
	}
	return in
}
