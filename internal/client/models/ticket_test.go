package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_LegacyAnnounced(t *testing.T) {
	lose := Ticket{PrizeResult: "announced", PrizeType: "lose", PrizeAmount: 2000}.Normalize()
	assert.Equal(t, PrizeResultNo, lose.PrizeResult)
	assert.Empty(t, lose.PrizeType)
	assert.Zero(t, lose.PrizeAmount)

	win := Ticket{PrizeResult: "announced", PrizeType: PrizeTypeBack2, PrizeAmount: 2000}.Normalize()
	assert.Equal(t, PrizeResultYes, win.PrizeResult)
	assert.Equal(t, PrizeTypeBack2, win.PrizeType)
	assert.Equal(t, 2000, win.PrizeAmount)
}

func TestNormalize_UnknownStatusBecomesPending(t *testing.T) {
	got := Ticket{PrizeResult: "???", PrizeType: PrizeTypeFirst, PrizeAmount: 100}.Normalize()
	assert.Equal(t, PrizeResultPending, got.PrizeResult)
	assert.Empty(t, got.PrizeType)
	assert.Zero(t, got.PrizeAmount)
}

func TestNormalize_MalformedFields(t *testing.T) {
	got := Ticket{
		PrizeResult:    PrizeResultYes,
		PrizeType:      PrizeTypeFirst,
		TicketQuantity: -2,
		TicketAmount:   -80,
		PrizeAmount:    -1,
		TicketWinning:  "12345", // five digits, discarded
	}.Normalize()
	assert.Zero(t, got.TicketQuantity)
	assert.Zero(t, got.TicketAmount)
	assert.Zero(t, got.PrizeAmount)
	assert.Empty(t, got.TicketWinning)
}

func TestTicketTotals(t *testing.T) {
	tk := Ticket{TicketQuantity: 2, TicketAmount: 80, PrizeAmount: 2000}
	assert.Equal(t, 160, tk.TotalCost())
	assert.Equal(t, 1840, tk.Net())

	assert.Zero(t, Ticket{TicketQuantity: -1, TicketAmount: 80}.TotalCost())
}

func TestTicketInputValidate(t *testing.T) {
	in := TicketInput{
		TicketNumber:   "123456",
		TicketQuantity: 1,
		Date:           "2024-03-01",
	}
	require.Empty(t, in.Validate())

	in.TicketNumber = "12345a"
	in.TicketQuantity = 0
	in.TicketWinning = "99"
	in.Date = "01/03/2024"
	errs := in.Validate()
	assert.Contains(t, errs, "ticketNumber")
	assert.Contains(t, errs, "ticketQuantity")
	assert.Contains(t, errs, "ticketWinning")
	assert.Contains(t, errs, "date")
}

func TestTicketInputSanitized(t *testing.T) {
	in := TicketInput{
		PrizeResult:   PrizeResultPending,
		PrizeType:     PrizeTypeFirst,
		PrizeAmount:   500,
		TicketWinning: "123456",
	}.Sanitized()
	assert.Empty(t, in.PrizeType)
	assert.Zero(t, in.PrizeAmount)
	assert.Empty(t, in.TicketWinning)

	win := TicketInput{PrizeResult: PrizeResultYes, PrizeType: PrizeTypeBack2}.Sanitized()
	assert.Equal(t, 2000, win.PrizeAmount)
}

func TestDefaultPrizeAmount(t *testing.T) {
	assert.Equal(t, 6000000, DefaultPrizeAmount(PrizeTypeFirst))
	assert.Equal(t, 4000, DefaultPrizeAmount(PrizeTypeFront3))
	assert.Equal(t, 4000, DefaultPrizeAmount(PrizeTypeBack3))
	assert.Zero(t, DefaultPrizeAmount(""))
}

func TestIsDigits(t *testing.T) {
	assert.True(t, IsDigits("123456", 6))
	assert.False(t, IsDigits("12345", 6))
	assert.False(t, IsDigits("12345a", 6))
	assert.False(t, IsDigits("", 0))
}
