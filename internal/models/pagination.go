package models

import "math"

// Pagination defaults shared by every list endpoint.
const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100

	// maxOffset bounds Offset so huge page numbers stay past the end
	// instead of overflowing.
	maxOffset = math.MaxInt32
)

// Page is a normalized page request.
type Page struct {
	Number  int
	PerPage int
}

// NewPage clamps the requested page number and size into the supported range.
func NewPage(number, perPage int) Page {
	if number < 1 {
		number = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return Page{Number: number, PerPage: perPage}
}

// Limit returns the SQL LIMIT for the page.
func (p Page) Limit() int {
	return p.PerPage
}

// Offset returns the SQL OFFSET for the page.
func (p Page) Offset() int {
	if p.Number-1 > maxOffset/p.PerPage {
		return maxOffset
	}
	return (p.Number - 1) * p.PerPage
}

// Paginated is the envelope returned by list endpoints
// swagger:model Paginated
type Paginated[T any] struct {
	Items   []T `json:"items"`
	Total   int `json:"total"`
	Pages   int `json:"pages"`
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

// NewPaginated builds the envelope for one page of a result of total rows.
func NewPaginated[T any](items []T, total int, p Page) *Paginated[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if total > 0 {
		pages = (total + p.PerPage - 1) / p.PerPage
	}
	return &Paginated[T]{
		Items:   items,
		Total:   total,
		Pages:   pages,
		Page:    p.Number,
		PerPage: p.PerPage,
	}
}
