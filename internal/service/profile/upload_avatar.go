package profile

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
	"github.com/heartmarshall/creatorhub-backend/pkg/ctxutil"
)

// UploadAvatar stores the caller's avatar at <prefix>/<user_id>.<ext>,
// replacing any previous upload, and saves its URL on the profile.
func (s *Service) UploadAvatar(ctx context.Context, input AvatarInput) (domain.Creator, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Creator{}, domain.ErrUnauthorized
	}

	if s.avatars == nil {
		return domain.Creator{}, domain.NewValidationError("file", "avatar uploads are not configured")
	}
	if err := input.Validate(s.opts.MaxAvatarBytes); err != nil {
		return domain.Creator{}, err
	}

	current, err := s.ensureProfile(ctx, userID)
	if err != nil {
		return domain.Creator{}, err
	}

	ext := input.extension()
	key := fmt.Sprintf("%s.%s", userID, ext)
	if prefix := strings.Trim(s.opts.AvatarPrefix, "/"); prefix != "" {
		key = prefix + "/" + key
	}

	if err = s.avatars.Put(ctx, key, input.Body, input.Size, avatarTypes[ext]); err != nil {
		return domain.Creator{}, fmt.Errorf("store avatar: %w", err)
	}
	url, err := s.avatars.URL(ctx, key)
	if err != nil {
		return domain.Creator{}, fmt.Errorf("avatar url: %w", err)
	}

	var updated domain.Creator
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.profiles.SetProfileImage(ctx, current.ID, url)
		if err != nil {
			return fmt.Errorf("set profile image: %w", err)
		}

		return s.audit.Log(ctx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeProfile,
			EntityID:   &updated.ID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"profile_image": map[string]any{"old": deref(current.ProfileImage), "new": url},
			},
		})
	})
	if err != nil {
		return domain.Creator{}, err
	}

	if updated.IsPublic() {
		s.invalidateCreators(ctx)
	}

	s.log.InfoContext(ctx, "avatar uploaded",
		slog.String("user_id", userID.String()),
		slog.String("key", key),
		slog.Int64("size", input.Size),
	)

	return updated, nil
}
