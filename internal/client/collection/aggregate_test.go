package collection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lotterich/cli/internal/client/models"
)

func ticket(num string, date time.Time, qty, amount int) models.Ticket {
	return models.Ticket{
		TicketNumber:   num,
		Date:           date,
		TicketQuantity: qty,
		TicketAmount:   amount,
		PrizeResult:    models.PrizeResultPending,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeeklySpending(t *testing.T) {
	march := day(2025, time.March, 1)
	tickets := []models.Ticket{
		ticket("111111", day(2025, time.March, 1), 1, 80),
		ticket("222222", day(2025, time.March, 7), 1, 80),
		ticket("333333", day(2025, time.March, 8), 2, 80),
		ticket("444444", day(2025, time.March, 16), 1, 80),
		ticket("555555", day(2025, time.March, 22), 1, 80),
		ticket("666666", day(2025, time.April, 2), 5, 80),
	}
	assert.Equal(t, [4]int{160, 160, 80, 80}, WeeklySpending(tickets, march))
}

func TestWeeklySpending_MonthEndFallsIntoLastSlot(t *testing.T) {
	jan := day(2025, time.January, 1)
	tickets := []models.Ticket{
		ticket("111111", day(2025, time.January, 29), 1, 80),
		ticket("222222", day(2025, time.January, 30), 1, 80),
		ticket("333333", day(2025, time.January, 31), 1, 80),
	}
	assert.Equal(t, [4]int{0, 0, 0, 240}, WeeklySpending(tickets, jan))
}

func TestWeeklySpending_IgnoresOtherMonths(t *testing.T) {
	tickets := []models.Ticket{
		ticket("111111", day(2024, time.March, 5), 1, 80),
		ticket("222222", day(2025, time.February, 5), 1, 80),
	}
	assert.Equal(t, [4]int{0, 0, 0, 0}, WeeklySpending(tickets, day(2025, time.March, 1)))
}

func TestMonthlySpending(t *testing.T) {
	now := day(2025, time.March, 15)
	tickets := []models.Ticket{
		ticket("111111", day(2025, time.March, 1), 3, 80),
		ticket("222222", day(2025, time.January, 10), 1, 80),
		ticket("333333", day(2024, time.December, 25), 2, 100),
		ticket("444444", day(2024, time.September, 1), 1, 80),
	}
	series := MonthlySpending(tickets, now, 6)
	assert.Len(t, series, 6)
	assert.Equal(t, "Oct", series[0].Label)
	assert.Equal(t, 2024, series[0].Year)
	assert.Equal(t, "Mar", series[5].Label)
	assert.Equal(t, 0, series[0].Amount)
	assert.Equal(t, 200, series[2].Amount)
	assert.Equal(t, 80, series[3].Amount)
	assert.Equal(t, 240, series[5].Amount)
}

func TestMonthlySpending_YearBoundaryLabels(t *testing.T) {
	series := MonthlySpending(nil, day(2025, time.January, 5), 6)
	labels := make([]string, 0, len(series))
	for _, m := range series {
		labels = append(labels, m.Label)
	}
	assert.Equal(t, []string{"Aug", "Sep", "Oct", "Nov", "Dec", "Jan"}, labels)
}

func TestSummarize(t *testing.T) {
	win := ticket("654321", day(2025, time.March, 16), 1, 80)
	win.PrizeResult = models.PrizeResultYes
	win.PrizeType = models.PrizeTypeBack2
	win.PrizeAmount = 2000

	older := ticket("999999", day(2025, time.February, 1), 1, 80)
	older.PrizeResult = models.PrizeResultYes
	older.PrizeType = models.PrizeTypeBack3
	older.PrizeAmount = 4000

	lose := ticket("111111", day(2025, time.March, 1), 2, 80)
	lose.PrizeResult = models.PrizeResultNo
	pending := ticket("222222", day(2025, time.March, 20), 1, 80)

	s := Summarize([]models.Ticket{win, older, lose, pending})
	assert.Equal(t, 5, s.TotalTickets)
	assert.Equal(t, 400, s.TotalSpent)
	assert.Equal(t, 2, s.WinCount)
	assert.Equal(t, 1, s.LoseCount)
	assert.Equal(t, 6000, s.TotalPrize)
	assert.Equal(t, 5600, s.Net)
	assert.Equal(t, "654321", s.LastWinningNumber)
	assert.InDelta(t, 66.7, s.WinPercent, 0.01)
	assert.InDelta(t, 33.3, s.LosePercent, 0.01)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, "-", s.LastWinningNumber)
	assert.Zero(t, s.WinPercent)
	assert.Zero(t, s.TotalSpent)
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		ticket, winning string
		want            int
	}{
		{"123456", "123450", 83},
		{"123456", "123456", 100},
		{"123456", "654321", 0},
		{"123456", "120456", 83},
		{"12345", "123456", 0},
		{"12345a", "123456", 0},
		{"", "", 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Similarity(tc.ticket, tc.winning), "%s vs %s", tc.ticket, tc.winning)
	}
}
