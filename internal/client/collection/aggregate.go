package collection

import (
	"math"
	"time"

	"github.com/lotterich/cli/internal/client/models"
)

// WeeklySpending buckets the total cost of tickets purchased in the
// reference month into four weekly slots. Days 1-7 fall into slot 0,
// 8-14 into slot 1, 15-21 into slot 2 and everything after day 21,
// including days 29-31, into slot 3.
func WeeklySpending(tickets []models.Ticket, ref time.Time) [4]int {
	var weeks [4]int
	for _, t := range tickets {
		if t.Date.Year() != ref.Year() || t.Date.Month() != ref.Month() {
			continue
		}
		idx := (t.Date.Day() - 1) / 7
		if idx > 3 {
			idx = 3
		}
		weeks[idx] += t.TotalCost()
	}
	return weeks
}

// MonthSpend is one bar of the monthly spending series.
type MonthSpend struct {
	Label  string
	Year   int
	Month  time.Month
	Amount int
}

// MonthlySpending sums ticket cost per calendar month for the `months`
// most recent months ending at now, oldest first. Months without
// purchases are kept with a zero amount so the series has no gaps.
func MonthlySpending(tickets []models.Ticket, now time.Time, months int) []MonthSpend {
	if months <= 0 {
		return nil
	}
	out := make([]MonthSpend, 0, months)
	index := make(map[[2]int]int, months)
	for i := months - 1; i >= 0; i-- {
		d := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		index[[2]int{d.Year(), int(d.Month())}] = len(out)
		out = append(out, MonthSpend{
			Label: d.Month().String()[:3],
			Year:  d.Year(),
			Month: d.Month(),
		})
	}
	for _, t := range tickets {
		if pos, ok := index[[2]int{t.Date.Year(), int(t.Date.Month())}]; ok {
			out[pos].Amount += t.TotalCost()
		}
	}
	return out
}

// Summary is the overview rollup of a ticket collection.
type Summary struct {
	TotalTickets      int
	TotalSpent        int
	WinCount          int
	LoseCount         int
	TotalPrize        int
	Net               int
	LastWinningNumber string
	WinPercent        float64
	LosePercent       float64
}

// Summarize rolls the whole collection up into the overview numbers.
// Percentages cover announced tickets only; pending tickets count
// toward spending but not toward the win rate. When no ticket has won
// yet LastWinningNumber is "-".
func Summarize(tickets []models.Ticket) Summary {
	s := Summary{LastWinningNumber: "-"}
	var lastWinDate time.Time
	announced := 0
	for _, t := range tickets {
		s.TotalTickets += t.TicketQuantity
		s.TotalSpent += t.TotalCost()
		switch t.PrizeResult {
		case models.PrizeResultYes:
			announced++
			s.WinCount++
			s.TotalPrize += t.PrizeAmount * t.TicketQuantity
			if t.Date.After(lastWinDate) || lastWinDate.IsZero() {
				lastWinDate = t.Date
				s.LastWinningNumber = t.TicketNumber
			}
		case models.PrizeResultNo:
			announced++
			s.LoseCount++
		}
	}
	s.Net = s.TotalPrize - s.TotalSpent
	if announced > 0 {
		s.WinPercent = math.Round(float64(s.WinCount)/float64(announced)*100*10) / 10
		s.LosePercent = math.Round(float64(s.LoseCount)/float64(announced)*100*10) / 10
	}
	return s
}

// Similarity scores how close a ticket number is to a winning number as
// a percentage of matching positions. Both inputs must be exactly six
// digits, otherwise the score is 0.
func Similarity(ticket, winning string) int {
	if !models.IsDigits(ticket, 6) || !models.IsDigits(winning, 6) {
		return 0
	}
	matches := 0
	for i := 0; i < 6; i++ {
		if ticket[i] == winning[i] {
			matches++
		}
	}
	return int(math.Round(float64(matches) / 6 * 100))
}
