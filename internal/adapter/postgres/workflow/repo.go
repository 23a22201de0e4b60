// Package workflow implements the workflow repository using PostgreSQL.
package workflow

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/creatorhub-backend/internal/adapter/postgres"
	"github.com/heartmarshall/creatorhub-backend/internal/domain"
)

const table = "workflows"

var columns = []string{
	"id", "profile_id", "title", "description", "tags", "category",
	"screenshot_url", "video_url", "complexity", "json_n8n",
	"status", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides workflow persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new workflow repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.pool)
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListApproved returns up to limit approved workflows, newest first.
// Only the workflow's own status counts; the author's profile status
// does not hide it.
func (r *Repo) ListApproved(ctx context.Context, limit int) ([]domain.Workflow, error) {
	b := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"status": string(domain.WorkflowStatusApproved)}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit))

	rows, err := postgres.Query(ctx, r.q(ctx), b)
	if err != nil {
		return nil, fmt.Errorf("list approved workflows: %w", err)
	}
	return collect(rows)
}

// ListByStatus returns up to limit workflows in the given status, newest first.
func (r *Repo) ListByStatus(ctx context.Context, status domain.WorkflowStatus, limit int) ([]domain.Workflow, error) {
	b := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"status": string(status)}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit))

	rows, err := postgres.Query(ctx, r.q(ctx), b)
	if err != nil {
		return nil, fmt.Errorf("list workflows by status %s: %w", status, err)
	}
	return collect(rows)
}

// ListByProfile returns every workflow of a profile, newest first.
// With approvedOnly set, only approved workflows are returned.
func (r *Repo) ListByProfile(ctx context.Context, profileID uuid.UUID, approvedOnly bool) ([]domain.Workflow, error) {
	b := postgres.Builder.Select(columns...).From(table).
		Where("profile_id = ?", profileID).
		OrderBy("created_at DESC", "id")
	if approvedOnly {
		b = b.Where(sq.Eq{"status": string(domain.WorkflowStatusApproved)})
	}

	rows, err := postgres.Query(ctx, r.q(ctx), b)
	if err != nil {
		return nil, fmt.Errorf("list workflows of profile %s: %w", profileID, err)
	}
	return collect(rows)
}

// GetByID returns a workflow regardless of status.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Workflow, error) {
	b := postgres.Builder.Select(columns...).From(table).Where("id = ?", id)

	w, err := scanWorkflow(postgres.QueryRow(ctx, r.q(ctx), b))
	if err != nil {
		return domain.Workflow{}, postgres.MapError(err, "workflow", id)
	}
	return w, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a workflow. ID, status and timestamps are filled in when
// left empty.
func (r *Repo) Create(ctx context.Context, w domain.Workflow) (domain.Workflow, error) {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	if w.Status == "" {
		w.Status = domain.WorkflowStatusPending
	}
	if w.Tags == nil {
		w.Tags = []string{}
	}
	if w.CreatedAt.IsZero() {
		w.CreatedAt = time.Now().UTC()
	}
	if w.UpdatedAt.IsZero() {
		w.UpdatedAt = w.CreatedAt
	}

	b := postgres.Builder.Insert(table).Columns(columns...).Values(
		w.ID, w.ProfileID, w.Title, w.Description, w.Tags, categoryPtr(w.Category),
		w.ScreenshotURL, w.VideoURL, w.Complexity, w.JSONN8N,
		string(w.Status), w.CreatedAt, w.UpdatedAt,
	).Suffix(returning)

	created, err := scanWorkflow(postgres.QueryRow(ctx, r.q(ctx), b))
	if err != nil {
		return domain.Workflow{}, postgres.MapError(err, "workflow", w.ID)
	}
	return created, nil
}

// Update applies a partial update. Nil fields are left untouched and
// empty strings clear optional columns.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, ch domain.WorkflowChanges) (domain.Workflow, error) {
	b := postgres.Builder.Update(table).Set("updated_at", sq.Expr("now()"))

	if ch.Title != nil {
		b = b.Set("title", *ch.Title)
	}
	b = setOptional(b, "description", ch.Description)
	if ch.Tags != nil {
		b = b.Set("tags", ch.Tags)
	}
	if ch.Category != nil {
		if *ch.Category == "" {
			b = b.Set("category", nil)
		} else {
			b = b.Set("category", string(*ch.Category))
		}
	}
	b = setOptional(b, "screenshot_url", ch.ScreenshotURL)
	b = setOptional(b, "video_url", ch.VideoURL)
	b = setOptional(b, "complexity", ch.Complexity)
	b = setOptional(b, "json_n8n", ch.JSONN8N)

	b = b.Where("id = ?", id).Suffix(returning)

	w, err := scanWorkflow(postgres.QueryRow(ctx, r.q(ctx), b))
	if err != nil {
		return domain.Workflow{}, postgres.MapError(err, "workflow", id)
	}
	return w, nil
}

// SetStatus changes the moderation status.
func (r *Repo) SetStatus(ctx context.Context, id uuid.UUID, status domain.WorkflowStatus) (domain.Workflow, error) {
	b := postgres.Builder.Update(table).
		Set("status", string(status)).
		Set("updated_at", sq.Expr("now()")).
		Where("id = ?", id).
		Suffix(returning)

	w, err := scanWorkflow(postgres.QueryRow(ctx, r.q(ctx), b))
	if err != nil {
		return domain.Workflow{}, postgres.MapError(err, "workflow", id)
	}
	return w, nil
}

// Delete removes a workflow.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	b := postgres.Builder.Delete(table).Where("id = ?", id)

	tag, err := postgres.Exec(ctx, r.q(ctx), b)
	if err != nil {
		return postgres.MapError(err, "workflow", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("workflow %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func setOptional(b sq.UpdateBuilder, column string, v *string) sq.UpdateBuilder {
	if v == nil {
		return b
	}
	if *v == "" {
		return b.Set(column, nil)
	}
	return b.Set(column, *v)
}

func categoryPtr(c *domain.WorkflowCategory) *string {
	if c == nil {
		return nil
	}
	s := string(*c)
	return &s
}

func scanWorkflow(row pgx.Row) (domain.Workflow, error) {
	var (
		w        domain.Workflow
		category *string
		status   string
	)
	err := row.Scan(
		&w.ID, &w.ProfileID, &w.Title, &w.Description, &w.Tags, &category,
		&w.ScreenshotURL, &w.VideoURL, &w.Complexity, &w.JSONN8N,
		&status, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return domain.Workflow{}, err
	}
	if category != nil {
		c := domain.WorkflowCategory(*category)
		w.Category = &c
	}
	w.Status = domain.WorkflowStatus(status)
	return w, nil
}

func collect(rows pgx.Rows) ([]domain.Workflow, error) {
	defer rows.Close()

	out := make([]domain.Workflow, 0)
	for rows.Next() {
		w, err := scanWorkflow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan workflow: %w", err)
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workflows: %w", err)
	}
	return out, nil
}
