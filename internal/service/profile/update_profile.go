package profile

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
	"github.com/heartmarshall/creatorhub-backend/pkg/ctxutil"
)

// UpdateMyProfile saves the profile form and publishes the profile.
func (s *Service) UpdateMyProfile(ctx context.Context, input UpdateProfileInput) (domain.Creator, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Creator{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Creator{}, err
	}
	update := input.toUpdate()

	// Created outside the transaction so a lost creation race can re-read.
	current, err := s.ensureProfile(ctx, userID)
	if err != nil {
		return domain.Creator{}, err
	}

	var updated domain.Creator
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.profiles.Update(ctx, current.ID, update)
		if err != nil {
			return fmt.Errorf("update profile: %w", err)
		}

		return s.audit.Log(ctx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeProfile,
			EntityID:   &updated.ID,
			Action:     domain.AuditActionUpdate,
			Changes:    profileChanges(current, updated),
		})
	})
	if err != nil {
		return domain.Creator{}, err
	}

	s.invalidateCreators(ctx)

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()),
		slog.String("profile_id", updated.ID.String()),
		slog.String("status", updated.Status.String()),
	)

	return updated, nil
}

// profileChanges records old and new values of the fields that differ.
func profileChanges(old, cur domain.Creator) map[string]any {
	changes := make(map[string]any)
	diff := func(field string, a, b any, equal bool) {
		if !equal {
			changes[field] = map[string]any{"old": a, "new": b}
		}
	}

	diff("name", old.Name, cur.Name, old.Name == cur.Name)
	diff("bio", deref(old.Bio), deref(cur.Bio), deref(old.Bio) == deref(cur.Bio))
	diff("location", deref(old.Location), deref(cur.Location), deref(old.Location) == deref(cur.Location))
	diff("skills", old.Skills, cur.Skills, slices.Equal(old.Skills, cur.Skills))
	diff("experience_level", deref(old.ExperienceLevel), deref(cur.ExperienceLevel), deref(old.ExperienceLevel) == deref(cur.ExperienceLevel))
	diff("availability", deref(old.Availability), deref(cur.Availability), deref(old.Availability) == deref(cur.Availability))
	diff("hourly_rate", deref(old.HourlyRate), deref(cur.HourlyRate), deref(old.HourlyRate) == deref(cur.HourlyRate))
	diff("socials", old.Socials, cur.Socials, old.Socials == cur.Socials)
	diff("status", old.Status, cur.Status, old.Status == cur.Status)

	return changes
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
