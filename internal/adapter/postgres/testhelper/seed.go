package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// ProfileOption customizes a seeded profile.
type ProfileOption func(*domain.Creator)

func WithStatus(s domain.ProfileStatus) ProfileOption {
	return func(c *domain.Creator) { c.Status = s }
}

func WithCreatedAt(ts time.Time) ProfileOption {
	return func(c *domain.Creator) { c.CreatedAt = ts }
}

func WithBio(bio string) ProfileOption {
	return func(c *domain.Creator) { c.Bio = &bio }
}

func WithSkills(skills ...string) ProfileOption {
	return func(c *domain.Creator) { c.Skills = skills }
}

func WithName(name string) ProfileOption {
	return func(c *domain.Creator) { c.Name = name }
}

// SeedProfile inserts an approved profile for a fresh user id.
func SeedProfile(t *testing.T, pool *pgxpool.Pool, opts ...ProfileOption) domain.Creator {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Creator{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Name:      "Creator " + suffix,
		Status:    domain.ProfileStatusApproved,
		CreatedAt: now,
	}
	for _, opt := range opts {
		opt(&c)
	}
	c.UpdatedAt = c.CreatedAt

	_, err := pool.Exec(context.Background(),
		`INSERT INTO profiles (id, user_id, name, bio, skills, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.UserID, c.Name, c.Bio, c.Skills, string(c.Status), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile insert: %v", err)
	}

	return c
}

// WorkflowOption customizes a seeded workflow.
type WorkflowOption func(*domain.Workflow)

func WithWorkflowStatus(s domain.WorkflowStatus) WorkflowOption {
	return func(w *domain.Workflow) { w.Status = s }
}

func WithWorkflowCreatedAt(ts time.Time) WorkflowOption {
	return func(w *domain.Workflow) { w.CreatedAt = ts }
}

func WithTags(tags ...string) WorkflowOption {
	return func(w *domain.Workflow) { w.Tags = tags }
}

func WithCategory(c domain.WorkflowCategory) WorkflowOption {
	return func(w *domain.Workflow) { w.Category = &c }
}

// SeedWorkflow inserts an approved workflow owned by profileID.
func SeedWorkflow(t *testing.T, pool *pgxpool.Pool, profileID uuid.UUID, opts ...WorkflowOption) domain.Workflow {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	w := domain.Workflow{
		ID:        uuid.New(),
		ProfileID: profileID,
		Title:     "Workflow " + uniqueSuffix(),
		Tags:      []string{},
		Status:    domain.WorkflowStatusApproved,
		CreatedAt: now,
	}
	for _, opt := range opts {
		opt(&w)
	}
	w.UpdatedAt = w.CreatedAt

	var category *string
	if w.Category != nil {
		s := string(*w.Category)
		category = &s
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO workflows (id, profile_id, title, tags, category, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		w.ID, w.ProfileID, w.Title, w.Tags, category, string(w.Status), w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWorkflow insert: %v", err)
	}

	return w
}
