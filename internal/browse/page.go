package browse

import "math"

// Window reports pagination metadata for the current page.
type Window struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Page is one window over an ordered collection.
type Page[T any] struct {
	Data   []T    `json:"data"`
	Window Window `json:"window"`
}

// Paginate slices records into the 1-based page of the given size.
// Out-of-range pages never fail: they return an empty data slice
// while still reporting accurate totals. A non-positive pageSize
// falls back to 20, matching the console's default view size.
func Paginate[T any](records []T, page, pageSize int) Page[T] {
	if pageSize <= 0 {
		pageSize = 20
	}
	if page <= 0 {
		page = 1
	}
	total := len(records)
	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	data := make([]T, end-start)
	copy(data, records[start:end])
	return Page[T]{
		Data:   data,
		Window: Window{Page: page, PageSize: pageSize, Total: total, TotalPages: totalPages},
	}
}

// ClampPage pulls page into [1, max(1, totalPages)] for the given
// collection size, keeping page 1 for an empty collection.
func ClampPage(page, total, pageSize int) int {
	if pageSize <= 0 {
		pageSize = 20
	}
	if page < 1 {
		return 1
	}
	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))
	if totalPages < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
