package listing

import "slices"

// SortByRecency returns a copy of recs ordered newest first. Records
// without a timestamp go last. Equal keys keep their input order.
func SortByRecency[T any](d Descriptor[T], recs []T) []T {
	out := slices.Clone(recs)
	if d.CreatedAt == nil {
		return out
	}
	slices.SortStableFunc(out, func(a, b T) int {
		ta, okA := d.CreatedAt(a)
		tb, okB := d.CreatedAt(b)
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return 1
		case !okB:
			return -1
		}
		return tb.Compare(ta)
	})
	return out
}
