package collection

import (
	"sort"
	"strings"

	"github.com/lotterich/cli/internal/client/models"
)

// StatusFilter selects which prize results stay visible.
type StatusFilter map[models.PrizeResult]bool

// TypeFilter selects which prize tiers stay visible among winning tickets.
type TypeFilter map[models.PrizeType]bool

// AllStatuses returns a filter with every prize result enabled.
func AllStatuses() StatusFilter {
	f := make(StatusFilter)
	for _, r := range models.PrizeResults() {
		f[r] = true
	}
	return f
}

// AllTypes returns a filter with every prize tier enabled.
func AllTypes() TypeFilter {
	f := make(TypeFilter)
	for _, p := range models.PrizeTypes() {
		f[p] = true
	}
	return f
}

// Filter narrows tickets down to those matching all three criteria at
// once: the search string appears somewhere in the ticket number, the
// ticket's result is enabled, and, for winning tickets that carry a
// prize tier, the tier is enabled. Tickets that have not won are never
// dropped by the type filter. The input slice is left untouched.
func Filter(tickets []models.Ticket, search string, statuses StatusFilter, types TypeFilter) []models.Ticket {
	out := make([]models.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if search != "" && !strings.Contains(t.TicketNumber, search) {
			continue
		}
		if !statuses[t.PrizeResult] {
			continue
		}
		if t.PrizeResult == models.PrizeResultYes && t.PrizeType != "" && !types[t.PrizeType] {
			continue
		}
		out = append(out, t)
	}
	return out
}

// SortByDateDesc returns a copy of tickets ordered newest purchase
// first, the canonical on-screen order.
func SortByDateDesc(tickets []models.Ticket) []models.Ticket {
	out := make([]models.Ticket, len(tickets))
	copy(out, tickets)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}
