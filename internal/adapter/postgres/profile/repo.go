// Package profile implements the creator profile repository using PostgreSQL.
package profile

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

const table = "profiles"

// Single uuid values are bound with "col = ?" rather than sq.Eq: squirrel
// expands array-typed values such as uuid.UUID into IN lists.

var columns = []string{
	"id", "user_id", "name", "bio", "location", "skills",
	"experience_level", "availability", "hourly_rate", "profile_image",
	"website", "linkedin", "twitter", "github", "instagram", "youtube", "discord", "threads",
	"status", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new profile repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.pool)
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListApproved returns up to limit approved profiles, newest first.
// Rows with equal created_at are ordered by id so the order is stable.
func (r *Repo) ListApproved(ctx context.Context, limit int) ([]domain.Creator, error) {
	return r.ListByStatus(ctx, domain.ProfileStatusApproved, limit)
}

// ListByStatus returns up to limit profiles in the given status, newest first.
func (r *Repo) ListByStatus(ctx context.Context, status domain.ProfileStatus, limit int) ([]domain.Creator, error) {
	b := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"status": string(status)}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit))

	rows, err := postgres.Query(ctx, r.q(ctx), b)
	if err != nil {
		return nil, fmt.Errorf("list profiles by status %s: %w", status, err)
	}
	return collect(rows)
}

// GetApprovedByID returns an approved profile. Profiles in any other
// status are reported as not found.
func (r *Repo) GetApprovedByID(ctx context.Context, id uuid.UUID) (domain.Creator, error) {
	b := postgres.Builder.Select(columns...).From(table).
		Where("id = ?", id).
		Where(sq.Eq{"status": string(domain.ProfileStatusApproved)})

	c, err := scanCreator(postgres.QueryRow(ctx, r.q(ctx), b))
	if err != nil {
		return domain.Creator{}, postgres.MapError(err, "profile", id)
	}
	return c, nil
}

// GetByID returns a profile regardless of status.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Creator, error) {
	b := postgres.Builder.Select(columns...).From(table).Where("id = ?", id)

	c, err := scanCreator(postgres.QueryRow(ctx, r.q(ctx), b))
	if err != nil {
		return domain.Creator{}, postgres.MapError(err, "profile", id)
	}
	return c, nil
}

// GetByUserID returns the profile owned by the given provider user.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (domain.Creator, error) {
	b := postgres.Builder.Select(columns...).From(table).Where("user_id = ?", userID)

	c, err := scanCreator(postgres.QueryRow(ctx, r.q(ctx), b))
	if err != nil {
		return domain.Creator{}, postgres.MapError(err, "profile of user", userID)
	}
	return c, nil
}

// GetSummariesByIDs returns author summaries for the given profile ids in
// no particular order. Missing ids are skipped. Used by the author loader.
func (r *Repo) GetSummariesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.CreatorSummary, error) {
	if len(ids) == 0 {
		return []domain.CreatorSummary{}, nil
	}

	b := postgres.Builder.Select("id", "name", "profile_image", "location").From(table).
		Where(sq.Eq{"id": ids})

	rows, err := postgres.Query(ctx, r.q(ctx), b)
	if err != nil {
		return nil, fmt.Errorf("get profile summaries: %w", err)
	}
	defer rows.Close()

	out := make([]domain.CreatorSummary, 0, len(ids))
	for rows.Next() {
		var s domain.CreatorSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.ProfileImage, &s.Location); err != nil {
			return nil, fmt.Errorf("scan profile summary: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profile summaries: %w", err)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new profile. ID and timestamps are assigned here when
// left empty.
func (r *Repo) Create(ctx context.Context, c domain.Creator) (domain.Creator, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Status == "" {
		c.Status = domain.ProfileStatusDraft
	}
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = c.CreatedAt
	}

	s := c.Socials
	b := postgres.Builder.Insert(table).Columns(columns...).Values(
		c.ID, c.UserID, c.Name, c.Bio, c.Location, c.Skills,
		enumPtr(c.ExperienceLevel), enumPtr(c.Availability), c.HourlyRate, c.ProfileImage,
		s.Website, s.LinkedIn, s.Twitter, s.GitHub, s.Instagram, s.YouTube, s.Discord, s.Threads,
		string(c.Status), c.CreatedAt, c.UpdatedAt,
	).Suffix(returning)

	created, err := scanCreator(postgres.QueryRow(ctx, r.q(ctx), b))
	if err != nil {
		return domain.Creator{}, postgres.MapError(err, "profile", c.ID)
	}
	return created, nil
}

// Update replaces the editable columns of a profile.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, u domain.ProfileUpdate) (domain.Creator, error) {
	s := u.Socials
	b := postgres.Builder.Update(table).
		SetMap(map[string]any{
			"name":             u.Name,
			"bio":              u.Bio,
			"location":         u.Location,
			"skills":           u.Skills,
			"experience_level": enumPtr(u.ExperienceLevel),
			"availability":     enumPtr(u.Availability),
			"hourly_rate":      u.HourlyRate,
			"website":          s.Website,
			"linkedin":         s.LinkedIn,
			"twitter":          s.Twitter,
			"github":           s.GitHub,
			"instagram":        s.Instagram,
			"youtube":          s.YouTube,
			"discord":          s.Discord,
			"threads":          s.Threads,
			"status":           string(u.Status),
			"updated_at":       sq.Expr("now()"),
		}).
		Where("id = ?", id).
		Suffix(returning)

	c, err := scanCreator(postgres.QueryRow(ctx, r.q(ctx), b))
	if err != nil {
		return domain.Creator{}, postgres.MapError(err, "profile", id)
	}
	return c, nil
}

// SetProfileImage stores the public avatar URL.
func (r *Repo) SetProfileImage(ctx context.Context, id uuid.UUID, url string) (domain.Creator, error) {
	b := postgres.Builder.Update(table).
		Set("profile_image", url).
		Set("updated_at", sq.Expr("now()")).
		Where("id = ?", id).
		Suffix(returning)

	c, err := scanCreator(postgres.QueryRow(ctx, r.q(ctx), b))
	if err != nil {
		return domain.Creator{}, postgres.MapError(err, "profile", id)
	}
	return c, nil
}

// SetStatus changes the moderation status.
func (r *Repo) SetStatus(ctx context.Context, id uuid.UUID, status domain.ProfileStatus) (domain.Creator, error) {
	b := postgres.Builder.Update(table).
		Set("status", string(status)).
		Set("updated_at", sq.Expr("now()")).
		Where("id = ?", id).
		Suffix(returning)

	c, err := scanCreator(postgres.QueryRow(ctx, r.q(ctx), b))
	if err != nil {
		return domain.Creator{}, postgres.MapError(err, "profile", id)
	}
	return c, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func enumPtr[E ~string](v *E) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

func scanCreator(row pgx.Row) (domain.Creator, error) {
	var (
		c      domain.Creator
		level  *string
		avail  *string
		status string
	)
	s := &c.Socials
	err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &c.Bio, &c.Location, &c.Skills,
		&level, &avail, &c.HourlyRate, &c.ProfileImage,
		&s.Website, &s.LinkedIn, &s.Twitter, &s.GitHub, &s.Instagram, &s.YouTube, &s.Discord, &s.Threads,
		&status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return domain.Creator{}, err
	}
	if level != nil {
		l := domain.ExperienceLevel(*level)
		c.ExperienceLevel = &l
	}
	if avail != nil {
		a := domain.Availability(*avail)
		c.Availability = &a
	}
	c.Status = domain.ProfileStatus(status)
	return c, nil
}

func collect(rows pgx.Rows) ([]domain.Creator, error) {
	defer rows.Close()

	out := make([]domain.Creator, 0)
	for rows.Next() {
		c, err := scanCreator(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profiles: %w", err)
	}
	return out, nil
}
