package discovery

import (
	"time"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
	"github.com/heartmarshall/creatorhub-backend/internal/listing"
)

// CreatorDescriptor describes creators for the listing engine: name and
// bio are searched as text, skills as a set; experience level,
// availability and location are filterable.
func CreatorDescriptor(pageSize int) listing.Descriptor[domain.Creator] {
	return listing.Descriptor[domain.Creator]{
		Text: []listing.TextField[domain.Creator]{
			func(c domain.Creator) (string, bool) { return c.Name, c.Name != "" },
			func(c domain.Creator) (string, bool) { return listing.Optional(c.Bio) },
		},
		Sets: []listing.SetField[domain.Creator]{
			func(c domain.Creator) []string { return c.Skills },
		},
		Categories: map[string]listing.CategoryField[domain.Creator]{
			domain.FilterExperienceLevel: func(c domain.Creator) (string, bool) { return enumValue(c.ExperienceLevel) },
			domain.FilterAvailability:    func(c domain.Creator) (string, bool) { return enumValue(c.Availability) },
			domain.FilterLocation:        func(c domain.Creator) (string, bool) { return listing.Optional(c.Location) },
		},
		CreatedAt: func(c domain.Creator) (time.Time, bool) { return c.CreatedAt, !c.CreatedAt.IsZero() },
		PageSize:  pageSize,
	}
}

// WorkflowDescriptor describes workflows: title and description are
// searched as text, tags as a set; category and complexity are
// filterable.
func WorkflowDescriptor(pageSize int) listing.Descriptor[domain.Workflow] {
	return listing.Descriptor[domain.Workflow]{
		Text: []listing.TextField[domain.Workflow]{
			func(w domain.Workflow) (string, bool) { return w.Title, w.Title != "" },
			func(w domain.Workflow) (string, bool) { return listing.Optional(w.Description) },
		},
		Sets: []listing.SetField[domain.Workflow]{
			func(w domain.Workflow) []string { return w.Tags },
		},
		Categories: map[string]listing.CategoryField[domain.Workflow]{
			domain.FilterCategory:   func(w domain.Workflow) (string, bool) { return enumValue(w.Category) },
			domain.FilterComplexity: func(w domain.Workflow) (string, bool) { return listing.Optional(w.Complexity) },
		},
		CreatedAt: func(w domain.Workflow) (time.Time, bool) { return w.CreatedAt, !w.CreatedAt.IsZero() },
		PageSize:  pageSize,
	}
}

func enumValue[E ~string](v *E) (string, bool) {
	if v == nil {
		return "", false
	}
	return string(*v), true
}
