// Package export renders a ticket collection into downloadable files:
// a Thai-language CSV, an ASCII PDF table and a set of chart images.
package export

import (
	"fmt"
	"time"
)

var thaiMonthAbbrev = [12]string{
	"ม.ค.", "ก.พ.", "มี.ค.", "เม.ย.", "พ.ค.", "มิ.ย.",
	"ก.ค.", "ส.ค.", "ก.ย.", "ต.ค.", "พ.ย.", "ธ.ค.",
}

// ThaiDate renders a date the way the CSV shows it: day, abbreviated
// Thai month and the Buddhist-era year.
func ThaiDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), thaiMonthAbbrev[t.Month()-1], t.Year()+543)
}
