package collection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotterich/cli/internal/client/models"
)

func sampleTickets() []models.Ticket {
	win := ticket("654321", day(2025, time.March, 16), 1, 80)
	win.PrizeResult = models.PrizeResultYes
	win.PrizeType = models.PrizeTypeBack2
	win.PrizeAmount = 2000

	lose := ticket("123456", day(2025, time.March, 1), 1, 80)
	lose.PrizeResult = models.PrizeResultNo

	pending := ticket("123789", day(2025, time.March, 20), 1, 80)

	return []models.Ticket{win, lose, pending}
}

func TestFilter_Search(t *testing.T) {
	got := Filter(sampleTickets(), "123", AllStatuses(), AllTypes())
	require.Len(t, got, 2)
	assert.Equal(t, "123456", got[0].TicketNumber)
	assert.Equal(t, "123789", got[1].TicketNumber)
}

func TestFilter_Status(t *testing.T) {
	statuses := AllStatuses()
	statuses[models.PrizeResultPending] = false
	got := Filter(sampleTickets(), "", statuses, AllTypes())
	require.Len(t, got, 2)
	for _, tk := range got {
		assert.NotEqual(t, models.PrizeResultPending, tk.PrizeResult)
	}
}

func TestFilter_TypeOnlyAppliesToWinners(t *testing.T) {
	types := AllTypes()
	types[models.PrizeTypeBack2] = false
	got := Filter(sampleTickets(), "", AllStatuses(), types)
	require.Len(t, got, 2)
	for _, tk := range got {
		assert.NotEqual(t, models.PrizeResultYes, tk.PrizeResult)
	}
}

func TestFilter_WinnerWithoutTierAlwaysPasses(t *testing.T) {
	untyped := ticket("777777", day(2025, time.March, 2), 1, 80)
	untyped.PrizeResult = models.PrizeResultYes
	types := TypeFilter{}
	got := Filter([]models.Ticket{untyped}, "", AllStatuses(), types)
	assert.Len(t, got, 1)
}

func TestFilter_Conjunctive(t *testing.T) {
	statuses := AllStatuses()
	statuses[models.PrizeResultNo] = false
	got := Filter(sampleTickets(), "123", statuses, AllTypes())
	require.Len(t, got, 1)
	assert.Equal(t, "123789", got[0].TicketNumber)
}

func TestFilter_Idempotent(t *testing.T) {
	statuses := AllStatuses()
	statuses[models.PrizeResultPending] = false
	once := Filter(sampleTickets(), "", statuses, AllTypes())
	twice := Filter(once, "", statuses, AllTypes())
	assert.Equal(t, once, twice)
}

func TestFilter_InputUntouched(t *testing.T) {
	in := sampleTickets()
	Filter(in, "654", AllStatuses(), AllTypes())
	assert.Len(t, in, 3)
	assert.Equal(t, "654321", in[0].TicketNumber)
}

func TestSortByDateDesc(t *testing.T) {
	in := sampleTickets()
	got := SortByDateDesc(in)
	require.Len(t, got, 3)
	assert.Equal(t, "123789", got[0].TicketNumber)
	assert.Equal(t, "654321", got[1].TicketNumber)
	assert.Equal(t, "123456", got[2].TicketNumber)
	assert.Equal(t, "654321", in[0].TicketNumber)
}
