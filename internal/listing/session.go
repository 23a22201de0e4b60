package listing

import (
	"context"
	"slices"
	"sync"
)

// Ticket identifies one fetch started by a Session.
type Ticket uint64

// Session is the state of one interactive listing: the query, the last
// fetched collection and the current page. It is safe for concurrent use.
//
// Fetches are tracked with tickets. Only the most recently issued ticket
// may replace the collection, so a slow response that arrives after a
// newer fetch was started is discarded.
type Session[T any] struct {
	mu         sync.Mutex
	engine     *Engine[T]
	query      Query
	collection []T
	pager      *Paginator[T]
	issued     uint64
	loading    bool
	err        error
}

func NewSession[T any](e *Engine[T]) *Session[T] {
	return &Session[T]{
		engine: e,
		query:  Query{Filters: map[string]string{}},
		pager:  NewPaginator[T](e.desc.pageSize()),
	}
}

// BeginFetch starts a fetch and returns its ticket.
func (s *Session[T]) BeginFetch() Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	s.loading = true
	return Ticket(s.issued)
}

// Apply installs the records fetched under t. It reports false and
// changes nothing when t has been superseded by a newer fetch.
func (s *Session[T]) Apply(t Ticket, recs []T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if uint64(t) != s.issued {
		return false
	}
	s.collection = slices.Clone(recs)
	s.loading = false
	s.err = nil
	s.recompute()
	return true
}

// Fail records a failed fetch. The previous collection stays in place.
func (s *Session[T]) Fail(t Ticket, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if uint64(t) != s.issued {
		return false
	}
	s.loading = false
	s.err = err
	return true
}

// Load runs fetch under a new ticket and applies its result.
func (s *Session[T]) Load(ctx context.Context, fetch func(context.Context) ([]T, error)) error {
	t := s.BeginFetch()
	recs, err := fetch(ctx)
	if err != nil {
		s.Fail(t, err)
		return err
	}
	s.Apply(t, recs)
	return nil
}

// Loading reports whether the latest fetch is still outstanding.
func (s *Session[T]) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the error of the latest failed fetch, if any.
func (s *Session[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Session[T]) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query.SearchTerm = term
	s.recompute()
}

func (s *Session[T]) SetFilter(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query.Filters[name] = value
	s.recompute()
}

// Reset clears the search term and all filters.
func (s *Session[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query.SearchTerm = ""
	clear(s.query.Filters)
	s.recompute()
}

func (s *Session[T]) GoTo(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pager.GoTo(page)
}

func (s *Session[T]) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pager.Next()
}

func (s *Session[T]) Prev() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pager.Prev()
}

// Query returns a copy of the current query with the current page.
func (s *Session[T]) Query() Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := s.query.clone()
	q.Page = s.pager.CurrentPage()
	return q
}

// View renders the current page.
func (s *Session[T]) View() Result[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pager.Result()
}

// recompute must be called with mu held.
func (s *Session[T]) recompute() {
	s.pager.SetItems(s.engine.Visible(s.collection, s.query))
}
