package listing

import (
	"fmt"
	"time"
)

// profile is a minimal record used across the package tests.
type profile struct {
	id           string
	name         string
	bio          *string
	skills       []string
	availability *string
	level        *string
	createdAt    *time.Time
}

func ptr[T any](v T) *T { return &v }

var base = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func at(hours int) *time.Time { return ptr(base.Add(time.Duration(hours) * time.Hour)) }

func profileDescriptor(pageSize int) Descriptor[profile] {
	return Descriptor[profile]{
		Text: []TextField[profile]{
			func(p profile) (string, bool) { return p.name, true },
			func(p profile) (string, bool) { return Optional(p.bio) },
		},
		Sets: []SetField[profile]{
			func(p profile) []string { return p.skills },
		},
		Categories: map[string]CategoryField[profile]{
			"availability":     func(p profile) (string, bool) { return Optional(p.availability) },
			"experience_level": func(p profile) (string, bool) { return Optional(p.level) },
		},
		CreatedAt: func(p profile) (time.Time, bool) {
			if p.createdAt == nil {
				return time.Time{}, false
			}
			return *p.createdAt, true
		},
		PageSize: pageSize,
	}
}

// numbered returns n profiles, newest first, with ids p00, p01, ...
func numbered(n int) []profile {
	out := make([]profile, n)
	for i := range out {
		out[i] = profile{
			id:        fmt.Sprintf("p%02d", i),
			name:      fmt.Sprintf("Creator %d", i),
			createdAt: at(-i),
		}
	}
	return out
}

func ids(ps []profile) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.id
	}
	return out
}
