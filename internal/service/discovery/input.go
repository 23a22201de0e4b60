package discovery

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
	"github.com/heartmarshall/creatorhub-backend/internal/listing"
)

// maxSearchLength caps the search term and every filter value, in characters.
const maxSearchLength = 200

// ListInput is one listing request. Page is clamped, never rejected.
type ListInput struct {
	Search  string
	Filters map[string]string
	Page    int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs domain.FieldErrors
	if tooLong(i.Search) {
		errs.Add("search", "max 200 characters")
	}
	for name, value := range i.Filters {
		if strings.TrimSpace(name) == "" {
			errs.Add("filters", "empty filter name")
		}
		if tooLong(value) {
			errs.Add(name, "max 200 characters")
		}
	}
	return errs.Err()
}

func tooLong(s string) bool {
	return utf8.RuneCountInString(s) > maxSearchLength
}

func (i ListInput) query() listing.Query {
	return listing.Query{SearchTerm: i.Search, Filters: i.Filters, Page: i.Page}
}
