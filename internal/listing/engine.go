package listing

import "maps"

// Query is the user-controlled part of a listing.
type Query struct {
	SearchTerm string
	Filters    map[string]string
	Page       int
}

func (q Query) clone() Query {
	q.Filters = maps.Clone(q.Filters)
	return q
}

// Result is one rendered page of a listing.
type Result[T any] struct {
	Items       []T
	CurrentPage int
	TotalPages  int
	TotalCount  int
	PageSize    int
	Pages       []int
}

// Engine applies search, filters, recency ordering and pagination for
// one record type.
type Engine[T any] struct {
	desc Descriptor[T]
}

func NewEngine[T any](d Descriptor[T]) *Engine[T] {
	return &Engine[T]{desc: d}
}

// Descriptor returns the descriptor the engine was built with.
func (e *Engine[T]) Descriptor() Descriptor[T] { return e.desc }

// Visible returns the filtered collection in display order.
func (e *Engine[T]) Visible(recs []T, q Query) []T {
	return SortByRecency(e.desc, Filter(e.desc, recs, q))
}

// Run renders the requested page for a stateless caller. The requested
// page is clamped into range.
func (e *Engine[T]) Run(recs []T, q Query) Result[T] {
	p := NewPaginator[T](e.desc.pageSize())
	p.SetItems(e.Visible(recs, q))
	p.GoTo(q.Page)
	return p.Result()
}
