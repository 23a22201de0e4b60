package profile

import (
	"fmt"
	"io"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
)

const (
	maxNameLength  = 100
	maxBioLength   = 1000
	maxSkills      = 20
	maxSkillLength = 50
	maxLocation    = 200
	maxURLLength   = 500
)

// UpdateProfileInput is the profile edit form. Empty optional strings
// clear the stored value.
type UpdateProfileInput struct {
	Name     string
	Bio      string
	Location string
	// Province and City take precedence over Location when both are set.
	Province        string
	City            string
	Skills          []string
	ExperienceLevel string
	Availability    string
	HourlyRate      *float64

	Website   string
	LinkedIn  string
	Twitter   string
	GitHub    string
	Instagram string
	YouTube   string
	Discord   string
	Threads   string
}

// Validate checks all fields and collects all errors.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	if utf8.RuneCountInString(strings.TrimSpace(i.Bio)) > maxBioLength {
		errs = append(errs, domain.FieldError{Field: "bio", Message: "max 1000 characters"})
	}
	if utf8.RuneCountInString(i.location()) > maxLocation {
		errs = append(errs, domain.FieldError{Field: "location", Message: "max 200 characters"})
	}

	if lvl := strings.TrimSpace(i.ExperienceLevel); lvl != "" && !domain.ExperienceLevel(lvl).IsValid() {
		errs = append(errs, domain.FieldError{Field: "experience_level", Message: "invalid value"})
	}
	if av := strings.TrimSpace(i.Availability); av != "" && !domain.Availability(av).IsValid() {
		errs = append(errs, domain.FieldError{Field: "availability", Message: "invalid value"})
	}
	if i.HourlyRate != nil && *i.HourlyRate < 0 {
		errs = append(errs, domain.FieldError{Field: "hourly_rate", Message: "must be non-negative"})
	}

	skills := domain.DedupeFold(i.Skills)
	if len(skills) > maxSkills {
		errs = append(errs, domain.FieldError{Field: "skills", Message: "max 20 skills"})
	}
	for _, sk := range skills {
		if utf8.RuneCountInString(sk) > maxSkillLength {
			errs = append(errs, domain.FieldError{Field: "skills", Message: fmt.Sprintf("skill %q exceeds 50 characters", sk)})
			break
		}
	}

	for _, link := range i.links() {
		if msg := checkURL(link.value); msg != "" {
			errs = append(errs, domain.FieldError{Field: link.field, Message: msg})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateProfileInput) location() string {
	if strings.TrimSpace(i.Province) != "" && strings.TrimSpace(i.City) != "" {
		return domain.FormatLocation(i.Province, i.City)
	}
	return strings.TrimSpace(i.Location)
}

type link struct {
	field string
	value string
}

func (i UpdateProfileInput) links() []link {
	return []link{
		{"website", i.Website},
		{"linkedin", i.LinkedIn},
		{"twitter", i.Twitter},
		{"github", i.GitHub},
		{"instagram", i.Instagram},
		{"youtube", i.YouTube},
		{"discord", i.Discord},
		{"threads", i.Threads},
	}
}

// toUpdate converts the validated form into a full-row replacement.
// Saving always publishes the profile.
func (i UpdateProfileInput) toUpdate() domain.ProfileUpdate {
	u := domain.ProfileUpdate{
		Name:       strings.TrimSpace(i.Name),
		Bio:        domain.NilIfEmpty(i.Bio),
		Location:   domain.NilIfEmpty(i.location()),
		Skills:     domain.DedupeFold(i.Skills),
		HourlyRate: i.HourlyRate,
		Socials: domain.SocialLinks{
			Website:   domain.NilIfEmpty(i.Website),
			LinkedIn:  domain.NilIfEmpty(i.LinkedIn),
			Twitter:   domain.NilIfEmpty(i.Twitter),
			GitHub:    domain.NilIfEmpty(i.GitHub),
			Instagram: domain.NilIfEmpty(i.Instagram),
			YouTube:   domain.NilIfEmpty(i.YouTube),
			Discord:   domain.NilIfEmpty(i.Discord),
			Threads:   domain.NilIfEmpty(i.Threads),
		},
		Status: domain.ProfileStatusApproved,
	}
	if lvl := strings.TrimSpace(i.ExperienceLevel); lvl != "" {
		v := domain.ExperienceLevel(lvl)
		u.ExperienceLevel = &v
	}
	if av := strings.TrimSpace(i.Availability); av != "" {
		v := domain.Availability(av)
		u.Availability = &v
	}
	return u
}

// checkURL returns a validation message for a non-empty link that is not
// an absolute http(s) URL.
func checkURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if len(raw) > maxURLLength {
		return "max 500 characters"
	}
	if !domain.IsHTTPURL(raw) {
		return "must be an http(s) URL"
	}
	return ""
}

// AvatarInput is an uploaded avatar file.
type AvatarInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

var avatarTypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
}

// extension returns the lower-cased file extension without the dot.
func (i AvatarInput) extension() string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(i.Filename), "."))
}

// Validate checks the file type and size against maxBytes.
func (i AvatarInput) Validate(maxBytes int64) error {
	var errs []domain.FieldError

	ext := i.extension()
	want, ok := avatarTypes[ext]
	if !ok {
		errs = append(errs, domain.FieldError{Field: "file", Message: "only JPG, JPEG or PNG images are allowed"})
	}
	if ct := strings.TrimSpace(i.ContentType); ok && ct != "" && ct != "application/octet-stream" && ct != want {
		errs = append(errs, domain.FieldError{Field: "file", Message: "content type does not match extension"})
	}
	if i.Body == nil || i.Size == 0 {
		errs = append(errs, domain.FieldError{Field: "file", Message: "required"})
	}
	if maxBytes > 0 && i.Size > maxBytes {
		errs = append(errs, domain.FieldError{Field: "file", Message: fmt.Sprintf("max %d bytes", maxBytes)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
