package collection

import "github.com/lotterich/cli/internal/client/models"

// View holds the browsing state of the ticket list: the cached
// collection, the search string, the status and type filters and the
// pagination cursor. Changing any input moves the cursor back to the
// first page so the result set is never shown from a stale offset.
type View struct {
	tickets  []models.Ticket
	search   string
	statuses StatusFilter
	types    TypeFilter
	page     int
	pageSize int
}

func NewView(pageSize int) *View {
	return &View{
		statuses: AllStatuses(),
		types:    AllTypes(),
		page:     1,
		pageSize: pageSize,
	}
}

// SetTickets replaces the cached collection, keeping it in the
// canonical newest-first order.
func (v *View) SetTickets(tickets []models.Ticket) {
	v.tickets = SortByDateDesc(tickets)
	v.page = 1
}

func (v *View) SetSearch(s string) {
	v.search = s
	v.page = 1
}

func (v *View) Search() string { return v.search }

// Tickets returns the cached collection regardless of filters.
func (v *View) Tickets() []models.Ticket { return v.tickets }

// ToggleStatus flips visibility of one prize result.
func (v *View) ToggleStatus(r models.PrizeResult) {
	v.statuses[r] = !v.statuses[r]
	v.page = 1
}

// ToggleType flips visibility of one prize tier.
func (v *View) ToggleType(p models.PrizeType) {
	v.types[p] = !v.types[p]
	v.page = 1
}

// ResetFilters re-enables everything and clears the search.
func (v *View) ResetFilters() {
	v.search = ""
	v.statuses = AllStatuses()
	v.types = AllTypes()
	v.page = 1
}

func (v *View) StatusEnabled(r models.PrizeResult) bool { return v.statuses[r] }
func (v *View) TypeEnabled(p models.PrizeType) bool     { return v.types[p] }

// Filtered applies the current search and filters to the cached
// collection.
func (v *View) Filtered() []models.Ticket {
	return Filter(v.tickets, v.search, v.statuses, v.types)
}

// Page returns the tickets on the current page.
func (v *View) Page() []models.Ticket {
	return Paginate(v.Filtered(), v.pageSize, v.page)
}

func (v *View) PageNumber() int { return v.page }

func (v *View) TotalPages() int {
	return TotalPages(len(v.Filtered()), v.pageSize)
}

// SetPage moves the cursor, clamping into the valid range.
func (v *View) SetPage(n int) {
	total := v.TotalPages()
	if n < 1 {
		n = 1
	}
	if n > total {
		n = total
	}
	v.page = n
}

// PageItems returns the compact pager for the current state.
func (v *View) PageItems() []PageItem {
	return PageItems(v.TotalPages(), v.page)
}
