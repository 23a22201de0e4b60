package workflow

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 5000
	maxTags              = 20
	maxTagLength         = 50
	maxComplexityLength  = 50
	maxURLLength         = 500
)

// CreateWorkflowInput is the workflow submission form. Tags arrive as a
// comma-separated string.
type CreateWorkflowInput struct {
	Title         string
	Description   string
	Tags          string
	Category      string
	ScreenshotURL string
	VideoURL      string
	Complexity    string
	JSONN8N       string
}

// Validate checks all fields and collects all errors.
func (i CreateWorkflowInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	errs = checkFields(errs, fields{
		title:       &title,
		description: &i.Description,
		tags:        domain.SplitTags(i.Tags),
		category:    &i.Category,
		screenshot:  &i.ScreenshotURL,
		video:       &i.VideoURL,
		complexity:  &i.Complexity,
		json:        &i.JSONN8N,
	})

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CreateWorkflowInput) toWorkflow(profileID uuid.UUID) domain.Workflow {
	w := domain.Workflow{
		ProfileID:     profileID,
		Title:         strings.TrimSpace(i.Title),
		Description:   domain.NilIfEmpty(i.Description),
		Tags:          domain.DedupeFold(domain.SplitTags(i.Tags)),
		ScreenshotURL: domain.NilIfEmpty(i.ScreenshotURL),
		VideoURL:      domain.NilIfEmpty(i.VideoURL),
		Complexity:    domain.NilIfEmpty(i.Complexity),
		JSONN8N:       domain.NilIfEmpty(i.JSONN8N),
		Status:        domain.WorkflowStatusPending,
	}
	if c := strings.TrimSpace(i.Category); c != "" {
		cat := domain.WorkflowCategory(c)
		w.Category = &cat
	}
	return w
}

// UpdateWorkflowInput is a partial edit. Nil fields are left unchanged;
// an empty string clears an optional field. Status cannot be changed here.
type UpdateWorkflowInput struct {
	ID            uuid.UUID
	Title         *string
	Description   *string
	Tags          []string
	Category      *string
	ScreenshotURL *string
	VideoURL      *string
	Complexity    *string
	JSONN8N       *string
}

// Validate checks all fields and collects all errors.
func (i UpdateWorkflowInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Title != nil && strings.TrimSpace(*i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	errs = checkFields(errs, fields{
		title:       i.Title,
		description: i.Description,
		tags:        i.Tags,
		category:    i.Category,
		screenshot:  i.ScreenshotURL,
		video:       i.VideoURL,
		complexity:  i.Complexity,
		json:        i.JSONN8N,
	})

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// IsEmpty reports whether the update changes nothing.
func (i UpdateWorkflowInput) IsEmpty() bool {
	return i.Title == nil && i.Description == nil && i.Tags == nil && i.Category == nil &&
		i.ScreenshotURL == nil && i.VideoURL == nil && i.Complexity == nil && i.JSONN8N == nil
}

func (i UpdateWorkflowInput) toChanges() domain.WorkflowChanges {
	ch := domain.WorkflowChanges{
		Description:   trimmed(i.Description),
		ScreenshotURL: trimmed(i.ScreenshotURL),
		VideoURL:      trimmed(i.VideoURL),
		Complexity:    trimmed(i.Complexity),
		JSONN8N:       trimmed(i.JSONN8N),
		Title:         trimmed(i.Title),
	}
	if i.Tags != nil {
		ch.Tags = domain.DedupeFold(i.Tags)
	}
	if i.Category != nil {
		cat := domain.WorkflowCategory(strings.TrimSpace(*i.Category))
		ch.Category = &cat
	}
	return ch
}

// fields holds the optional form values shared by create and update.
type fields struct {
	title, description, category, screenshot, video, complexity, json *string
	tags                                                             []string
}

func checkFields(errs []domain.FieldError, f fields) []domain.FieldError {
	if f.title != nil && utf8.RuneCountInString(strings.TrimSpace(*f.title)) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if f.description != nil && utf8.RuneCountInString(strings.TrimSpace(*f.description)) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}

	tags := domain.DedupeFold(f.tags)
	if len(tags) > maxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "max 20 tags"})
	}
	for _, tag := range tags {
		if utf8.RuneCountInString(tag) > maxTagLength {
			errs = append(errs, domain.FieldError{Field: "tags", Message: fmt.Sprintf("tag %q exceeds 50 characters", tag)})
			break
		}
	}

	if f.category != nil {
		if c := strings.TrimSpace(*f.category); c != "" && !domain.WorkflowCategory(c).IsValid() {
			errs = append(errs, domain.FieldError{Field: "category", Message: "invalid value"})
		}
	}
	for _, u := range []struct {
		field string
		value *string
	}{{"screenshot_url", f.screenshot}, {"video_url", f.video}} {
		if u.value == nil || strings.TrimSpace(*u.value) == "" {
			continue
		}
		if len(*u.value) > maxURLLength || !domain.IsHTTPURL(*u.value) {
			errs = append(errs, domain.FieldError{Field: u.field, Message: "must be an http(s) URL"})
		}
	}
	if f.complexity != nil && utf8.RuneCountInString(strings.TrimSpace(*f.complexity)) > maxComplexityLength {
		errs = append(errs, domain.FieldError{Field: "complexity", Message: "max 50 characters"})
	}
	if f.json != nil {
		if raw := strings.TrimSpace(*f.json); raw != "" && !json.Valid([]byte(raw)) {
			errs = append(errs, domain.FieldError{Field: "json_n8n", Message: "must be valid JSON"})
		}
	}
	return errs
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

// DeleteWorkflowInput identifies the workflow to delete.
type DeleteWorkflowInput struct {
	ID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteWorkflowInput) Validate() error {
	if i.ID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	return nil
}
