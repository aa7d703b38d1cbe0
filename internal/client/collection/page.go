package collection

// Paginate slices one page out of list. Pages are 1-indexed; a page
// beyond the end, a non-positive page or a non-positive page size all
// yield an empty slice.
func Paginate[T any](list []T, pageSize, page int) []T {
	if pageSize <= 0 || page < 1 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(list) {
		return nil
	}
	end := start + pageSize
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}

// TotalPages reports how many pages of the given size the list spans.
// An empty list still has one page.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	n := (total + pageSize - 1) / pageSize
	if n < 1 {
		n = 1
	}
	return n
}

// PageItem is one element of a compact pager: either a page number or
// an ellipsis marker.
type PageItem struct {
	Page     int
	Ellipsis bool
}

// PageItems builds the compact pager for the given page count. Up to
// seven pages every number is shown; past that the first and last page
// always appear, a window around the current page stays visible and
// the gaps collapse into ellipses.
func PageItems(totalPages, current int) []PageItem {
	if totalPages < 1 {
		totalPages = 1
	}
	if totalPages <= 7 {
		items := make([]PageItem, 0, totalPages)
		for p := 1; p <= totalPages; p++ {
			items = append(items, PageItem{Page: p})
		}
		return items
	}
	items := []PageItem{{Page: 1}}
	if current > 3 {
		items = append(items, PageItem{Ellipsis: true})
	}
	lo, hi := current-1, current+1
	if lo < 2 {
		lo = 2
	}
	if hi > totalPages-1 {
		hi = totalPages - 1
	}
	for p := lo; p <= hi; p++ {
		items = append(items, PageItem{Page: p})
	}
	if current < totalPages-2 {
		items = append(items, PageItem{Ellipsis: true})
	}
	items = append(items, PageItem{Page: totalPages})
	return items
}
