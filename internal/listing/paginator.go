package listing

// Paginator holds the current page over a filtered, sorted collection.
// It never fails: out-of-range requests are clamped or ignored.
type Paginator[T any] struct {
	items   []T
	size    int
	current int
}

// NewPaginator creates an empty paginator positioned on page 1.
// Non-positive sizes fall back to DefaultPageSize.
func NewPaginator[T any](pageSize int) *Paginator[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Paginator[T]{size: pageSize, current: 1}
}

// SetItems replaces the paged collection. When the current page no
// longer exists it resets to page 1.
func (p *Paginator[T]) SetItems(items []T) {
	p.items = items
	if p.current > p.TotalPages() {
		p.current = 1
	}
}

func (p *Paginator[T]) PageSize() int   { return p.size }
func (p *Paginator[T]) CurrentPage() int { return p.current }
func (p *Paginator[T]) TotalCount() int  { return len(p.items) }

// TotalPages is never less than 1, even for an empty collection.
func (p *Paginator[T]) TotalPages() int {
	n := len(p.items)
	if n == 0 {
		return 1
	}
	return (n + p.size - 1) / p.size
}

// PageItems returns the items of the current page.
func (p *Paginator[T]) PageItems() []T {
	start := (p.current - 1) * p.size
	if start >= len(p.items) {
		return []T{}
	}
	end := min(start+p.size, len(p.items))
	return p.items[start:end:end]
}

// GoTo moves to page n clamped into [1, TotalPages].
func (p *Paginator[T]) GoTo(n int) {
	p.current = min(max(n, 1), p.TotalPages())
}

// Next advances one page; no-op on the last page.
func (p *Paginator[T]) Next() {
	if p.current < p.TotalPages() {
		p.current++
	}
}

// Prev goes back one page; no-op on the first page.
func (p *Paginator[T]) Prev() {
	if p.current > 1 {
		p.current--
	}
}

// PageNumbers returns at most width consecutive page numbers, centred on
// the current page where possible.
func (p *Paginator[T]) PageNumbers(width int) []int {
	if width <= 0 {
		width = PagerWidth
	}
	total := p.TotalPages()
	if total <= width {
		return pageRange(1, total)
	}
	start := p.current - width/2
	start = min(max(start, 1), total-width+1)
	return pageRange(start, start+width-1)
}

func pageRange(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

// Result snapshots the paginator for presentation.
func (p *Paginator[T]) Result() Result[T] {
	return Result[T]{
		Items:       p.PageItems(),
		CurrentPage: p.current,
		TotalPages:  p.TotalPages(),
		TotalCount:  len(p.items),
		PageSize:    p.size,
		Pages:       p.PageNumbers(PagerWidth),
	}
}
