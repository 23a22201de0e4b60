package listing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPaginator_TotalPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n, size, want int
	}{
		{0, 12, 1},
		{1, 12, 1},
		{12, 12, 1},
		{13, 12, 2},
		{25, 12, 3},
		{24, 12, 2},
		{5, 0, 1},
		{13, -1, 2},
	}
	for _, tt := range tests {
		p := NewPaginator[int](tt.size)
		p.SetItems(make([]int, tt.n))
		if got := p.TotalPages(); got != tt.want {
			t.Errorf("n=%d size=%d: TotalPages() = %d, want %d", tt.n, tt.size, got, tt.want)
		}
	}
}

func TestPaginator_Coverage(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 11, 12, 13, 25, 36, 37} {
		items := make([]int, n)
		for i := range items {
			items[i] = i
		}
		p := NewPaginator[int](12)
		p.SetItems(items)

		var got []int
		for page := 1; page <= p.TotalPages(); page++ {
			p.GoTo(page)
			got = append(got, p.PageItems()...)
		}
		if len(got) == 0 && n == 0 {
			continue
		}
		if diff := cmp.Diff(items, got); diff != "" {
			t.Errorf("n=%d: concatenated pages differ (-want +got):\n%s", n, diff)
		}
	}
}

func TestPaginator_GoToClamps(t *testing.T) {
	t.Parallel()

	p := NewPaginator[int](12)
	p.SetItems(make([]int, 30))

	for _, n := range []int{-5, 0, 1, 2, 3, 4, 1000} {
		p.GoTo(n)
		if got := p.CurrentPage(); got < 1 || got > p.TotalPages() {
			t.Errorf("GoTo(%d): CurrentPage() = %d outside [1,%d]", n, got, p.TotalPages())
		}
	}
	p.GoTo(-1)
	if p.CurrentPage() != 1 {
		t.Errorf("GoTo(-1) = %d, want 1", p.CurrentPage())
	}
	p.GoTo(99)
	if p.CurrentPage() != 3 {
		t.Errorf("GoTo(99) = %d, want 3", p.CurrentPage())
	}
}

func TestPaginator_NextPrevBoundaries(t *testing.T) {
	t.Parallel()

	p := NewPaginator[int](12)
	p.SetItems(make([]int, 20))

	p.Prev()
	if p.CurrentPage() != 1 {
		t.Fatalf("Prev on first page moved to %d", p.CurrentPage())
	}
	p.Next()
	p.Next()
	if p.CurrentPage() != 2 {
		t.Fatalf("Next past last page moved to %d", p.CurrentPage())
	}
	p.Prev()
	if p.CurrentPage() != 1 {
		t.Fatalf("Prev = %d, want 1", p.CurrentPage())
	}
}

func TestPaginator_ReclampToFirstPage(t *testing.T) {
	t.Parallel()

	p := NewPaginator[int](12)
	p.SetItems(make([]int, 40))
	p.GoTo(4)

	p.SetItems(make([]int, 20))
	if p.CurrentPage() != 1 {
		t.Errorf("after shrink CurrentPage() = %d, want 1", p.CurrentPage())
	}

	// Still in range: the page is kept.
	p.SetItems(make([]int, 40))
	p.GoTo(2)
	p.SetItems(make([]int, 30))
	if p.CurrentPage() != 2 {
		t.Errorf("in-range page changed to %d, want 2", p.CurrentPage())
	}
}

func TestPaginator_EmptyPageItems(t *testing.T) {
	t.Parallel()

	p := NewPaginator[string](12)
	p.SetItems(nil)

	items := p.PageItems()
	if items == nil || len(items) != 0 {
		t.Errorf("PageItems() = %#v, want empty non-nil slice", items)
	}
	if p.TotalPages() != 1 || p.CurrentPage() != 1 {
		t.Errorf("empty paginator at %d/%d, want 1/1", p.CurrentPage(), p.TotalPages())
	}
}

func TestPaginator_PageNumbers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		items   int
		current int
		want    []int
	}{
		{name: "fewer pages than buttons", items: 30, current: 2, want: []int{1, 2, 3}},
		{name: "near start", items: 120, current: 2, want: []int{1, 2, 3, 4, 5}},
		{name: "third page", items: 120, current: 3, want: []int{1, 2, 3, 4, 5}},
		{name: "middle", items: 120, current: 6, want: []int{4, 5, 6, 7, 8}},
		{name: "near end", items: 120, current: 9, want: []int{6, 7, 8, 9, 10}},
		{name: "last", items: 120, current: 10, want: []int{6, 7, 8, 9, 10}},
		{name: "empty", items: 0, current: 1, want: []int{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := NewPaginator[int](12)
			p.SetItems(make([]int, tt.items))
			p.GoTo(tt.current)
			if diff := cmp.Diff(tt.want, p.PageNumbers(PagerWidth)); diff != "" {
				t.Errorf("PageNumbers mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
