// Package listutil holds small helpers for shaping fetched lists before
// display. Screens always re-fetch from the backend, so all filtering
// and ordering happens in memory over the response slice.
package listutil

// Filter returns the elements of items for which keep returns true.
// PRE: keep is non-nil
// POST: Returns a new slice; items is not mutated
func Filter[T any](items []T, keep func(T) bool) []T {
	var out []T
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// SortBy sorts items in place using the less comparison (insertion sort;
// fetched lists are small). The sort is stable.
// PRE: less is non-nil
// POST: items is ordered so less(items[i+1], items[i]) is never true
func SortBy[T any](items []T, less func(a, b T) bool) {
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && less(items[j], items[j-1]); j-- {
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
}

// DefaultPerPage is the default number of rows per page.
const DefaultPerPage = 20

// PageInfo carries pagination metadata for rendering.
type PageInfo struct {
	Page       int // current page (1-indexed)
	PerPage    int // rows per page
	Total      int // total matching rows
	TotalPages int // ceil(Total / PerPage)
}

// NewPageInfo computes pagination metadata.
// PRE: total >= 0
// POST: returns PageInfo with TotalPages computed; Page clamped to valid range
func NewPageInfo(page, perPage, total int) PageInfo {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return PageInfo{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Window returns the sub-slice of items covered by the current page.
// PRE: p was built by NewPageInfo over len(items)
// POST: Returns a view into items; never panics on short input
func Window[T any](items []T, p PageInfo) []T {
	start := (p.Page - 1) * p.PerPage
	if start >= len(items) {
		return nil
	}
	end := start + p.PerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
