package listing

import "strings"

// All is the filter value that leaves a field unconstrained.
const All = "all"

// Unconstrained reports whether a filter value places no constraint on
// its field. Empty values count as unconstrained so that omitted query
// parameters behave like "all".
func Unconstrained(value string) bool {
	return value == "" || strings.EqualFold(value, All)
}

// Matches reports whether rec matches the search term. A blank term
// matches everything; otherwise the lower-cased term must be a substring
// of a present text field or of any element of a set field. Absent
// fields never match.
func Matches[T any](d Descriptor[T], rec T, term string) bool {
	if strings.TrimSpace(term) == "" {
		return true
	}
	needle := strings.ToLower(term)

	for _, field := range d.Text {
		if v, ok := field(rec); ok && strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	for _, field := range d.Sets {
		for _, v := range field(rec) {
			if strings.Contains(strings.ToLower(v), needle) {
				return true
			}
		}
	}
	return false
}

// PassesFilters reports whether rec satisfies every active filter.
// Comparison is exact and case-sensitive. A filter on an absent field,
// or on a field the descriptor does not know, fails.
func PassesFilters[T any](d Descriptor[T], rec T, filters map[string]string) bool {
	for name, want := range filters {
		if Unconstrained(want) {
			continue
		}
		field, ok := d.Categories[name]
		if !ok {
			return false
		}
		got, present := field(rec)
		if !present || got != want {
			return false
		}
	}
	return true
}

// Filter returns the records that match the query's search term and
// filters, in their original order. The input is not modified.
func Filter[T any](d Descriptor[T], recs []T, q Query) []T {
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		if Matches(d, rec, q.SearchTerm) && PassesFilters(d, rec, q.Filters) {
			out = append(out, rec)
		}
	}
	return out
}
