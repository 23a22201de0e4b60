package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
	"github.com/heartmarshall/creatorhub-backend/pkg/ctxutil"
)

// GetMyProfile returns the caller's profile, creating a draft on first
// access.
func (s *Service) GetMyProfile(ctx context.Context) (domain.Creator, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Creator{}, domain.ErrUnauthorized
	}
	return s.ensureProfile(ctx, userID)
}

func (s *Service) ensureProfile(ctx context.Context, userID uuid.UUID) (domain.Creator, error) {
	c, err := s.profiles.GetByUserID(ctx, userID)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Creator{}, fmt.Errorf("get profile: %w", err)
	}

	ident := domain.Identity{UserID: userID, Email: ctxutil.EmailFromCtx(ctx)}
	created, err := s.profiles.Create(ctx, domain.Creator{
		UserID: userID,
		Name:   ident.DisplayName(),
		Skills: []string{},
		Status: domain.ProfileStatusDraft,
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		// Lost a race with a concurrent first request.
		c, err = s.profiles.GetByUserID(ctx, userID)
		if err != nil {
			return domain.Creator{}, fmt.Errorf("get profile: %w", err)
		}
		return c, nil
	}
	if err != nil {
		return domain.Creator{}, fmt.Errorf("create profile: %w", err)
	}

	s.log.InfoContext(ctx, "draft profile created",
		slog.String("user_id", userID.String()),
		slog.String("profile_id", created.ID.String()),
	)
	return created, nil
}
