// Package listing filters, orders and pages in-memory collections of
// records. A Descriptor tells the engine how to read the fields of a
// record type; no reflection is involved.
package listing

import "time"

// DefaultPageSize is used when a descriptor does not set one.
const DefaultPageSize = 12

// PagerWidth is the number of page buttons shown around the current page.
const PagerWidth = 5

// TextField reads an optional text field. The bool is false when the
// field is absent (NULL).
type TextField[T any] func(T) (string, bool)

// SetField reads a set-valued field such as skills or tags.
type SetField[T any] func(T) []string

// CategoryField reads an optional categorical field used by filters.
type CategoryField[T any] func(T) (string, bool)

// Descriptor describes the listable shape of a record type.
type Descriptor[T any] struct {
	// Text fields are searched in order.
	Text []TextField[T]
	// Sets match when any element contains the search term.
	Sets []SetField[T]
	// Categories maps a filter name to its field.
	Categories map[string]CategoryField[T]
	// CreatedAt returns false for records without a timestamp.
	CreatedAt func(T) (time.Time, bool)
	PageSize  int
}

func (d Descriptor[T]) pageSize() int {
	if d.PageSize <= 0 {
		return DefaultPageSize
	}
	return d.PageSize
}

// Optional adapts a nullable string column to a TextField or CategoryField.
func Optional(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}
