package rest

import (
	"time"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
	"github.com/heartmarshall/creatorhub-backend/internal/listing"
)

type creatorResponse struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Bio             *string            `json:"bio"`
	Location        *string            `json:"location"`
	Skills          []string           `json:"skills"`
	ExperienceLevel *string            `json:"experience_level"`
	Availability    *string            `json:"availability"`
	HourlyRate      *float64           `json:"hourly_rate"`
	ProfileImage    *string            `json:"profile_image"`
	Socials         domain.SocialLinks `json:"socials"`
	Status          string             `json:"status,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

type authorResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	ProfileImage *string `json:"profile_image"`
	Location     *string `json:"location"`
}

type workflowResponse struct {
	ID            string          `json:"id"`
	ProfileID     string          `json:"profile_id"`
	Title         string          `json:"title"`
	Description   *string         `json:"description"`
	Tags          []string        `json:"tags"`
	Category      *string         `json:"category"`
	ScreenshotURL *string         `json:"screenshot_url"`
	VideoURL      *string         `json:"video_url"`
	Complexity    *string         `json:"complexity"`
	JSONN8N       *string         `json:"json_n8n,omitempty"`
	Status        string          `json:"status,omitempty"`
	Author        *authorResponse `json:"author,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type pageResponse[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	TotalPages int   `json:"total_pages"`
	TotalCount int   `json:"total_count"`
	PageSize   int   `json:"page_size"`
	Pages      []int `json:"pages"`
	Empty      bool  `json:"empty"`
}

type sessionResponse struct {
	AccessToken  string           `json:"access_token,omitempty"`
	RefreshToken string           `json:"refresh_token,omitempty"`
	ExpiresAt    *time.Time       `json:"expires_at,omitempty"`
	User         identityResponse `json:"user"`
}

type identityResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// withStatus controls whether moderation status is exposed. Public
// listings only contain approved records, so they omit it.
type withStatus bool

func toCreator(c domain.Creator, status withStatus) creatorResponse {
	resp := creatorResponse{
		ID:              c.ID.String(),
		Name:            c.Name,
		Bio:             c.Bio,
		Location:        c.Location,
		Skills:          nonNil(c.Skills),
		ExperienceLevel: enumString(c.ExperienceLevel),
		Availability:    enumString(c.Availability),
		HourlyRate:      c.HourlyRate,
		ProfileImage:    c.ProfileImage,
		Socials:         c.Socials,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
	if status {
		resp.Status = c.Status.String()
	}
	return resp
}

func toCreators(items []domain.Creator) []creatorResponse {
	out := make([]creatorResponse, 0, len(items))
	for _, c := range items {
		out = append(out, toCreator(c, false))
	}
	return out
}

// toWorkflow maps a workflow. The n8n export is only returned to its owner.
func toWorkflow(w domain.Workflow, owner withStatus) workflowResponse {
	resp := workflowResponse{
		ID:            w.ID.String(),
		ProfileID:     w.ProfileID.String(),
		Title:         w.Title,
		Description:   w.Description,
		Tags:          nonNil(w.Tags),
		Category:      enumString(w.Category),
		ScreenshotURL: w.ScreenshotURL,
		VideoURL:      w.VideoURL,
		Complexity:    w.Complexity,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
	if owner {
		resp.Status = w.Status.String()
		resp.JSONN8N = w.JSONN8N
	}
	if w.Author != nil {
		resp.Author = &authorResponse{
			ID:           w.Author.ID.String(),
			Name:         w.Author.Name,
			ProfileImage: w.Author.ProfileImage,
			Location:     w.Author.Location,
		}
	}
	return resp
}

func toWorkflows(items []domain.Workflow, owner withStatus) []workflowResponse {
	out := make([]workflowResponse, 0, len(items))
	for _, w := range items {
		out = append(out, toWorkflow(w, owner))
	}
	return out
}

func toPage[T, R any](res listing.Result[T], mapItems func([]T) []R) pageResponse[R] {
	return pageResponse[R]{
		Items:      mapItems(res.Items),
		Page:       res.CurrentPage,
		TotalPages: res.TotalPages,
		TotalCount: res.TotalCount,
		PageSize:   res.PageSize,
		Pages:      nonNil(res.Pages),
		Empty:      res.TotalCount == 0,
	}
}

func toSession(s *domain.Session) sessionResponse {
	resp := sessionResponse{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		User:         toIdentity(s.Identity),
	}
	if !s.ExpiresAt.IsZero() {
		exp := s.ExpiresAt
		resp.ExpiresAt = &exp
	}
	return resp
}

func toIdentity(i domain.Identity) identityResponse {
	return identityResponse{ID: i.UserID.String(), Email: i.Email, Role: i.Role.String()}
}

func enumString[E ~string](v *E) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
