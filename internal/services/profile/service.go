package profile

import (
	"context"
	"errors"
	"log/slog"

	"profile-hub/internal/services/auth"
	"profile-hub/internal/utils/sanitize"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Service handles profile business logic
type Service struct {
	repo Repository
	log  *slog.Logger
}

// NewService creates a new profile service
func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Get fetches the profile record for the authenticated user
func (s *Service) Get(ctx context.Context, userID bson.ObjectID) (*auth.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return nil, auth.ErrUserNotFound
		}
		s.log.Error("failed to fetch profile", "user_id", userID.Hex(), "error", err)
		return nil, err
	}
	return user, nil
}

// buildPatch turns an update request into the sparse patch applied to the
// store. A field participates only when it is present AND non-empty; an
// explicit empty string is skipped, not cleared. Text fields are sanitized,
// the picture URL is written as-is (it was already validated).
func buildPatch(req UpdateProfileRequest) UpdateProfile {
	var patch UpdateProfile

	if v := cleaned(req.Name); v != nil {
		patch.Name = v
	}
	if v := cleaned(req.Address); v != nil {
		patch.Address = v
	}
	if v := cleaned(req.Bio); v != nil {
		patch.Bio = v
	}
	if req.ProfilePicture != nil && *req.ProfilePicture != "" {
		patch.ProfilePicture = req.ProfilePicture
	}

	return patch
}

// cleaned sanitizes a text field and applies the present-and-non-empty rule.
func cleaned(field *string) *string {
	if field == nil || *field == "" {
		return nil
	}
	v := sanitize.Clean(*field)
	if v == "" {
		return nil
	}
	return &v
}

// Update applies a sparse merge of the request onto the stored record and
// returns the post-update view
func (s *Service) Update(ctx context.Context, userID bson.ObjectID, req UpdateProfileRequest) (*auth.User, error) {
	patch := buildPatch(req)

	user, err := s.repo.UpdateProfile(ctx, userID, patch)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.Info("profile not found for update", "user_id", userID.Hex())
			return nil, auth.ErrUserNotFound
		}
		s.log.Error("failed to update profile", "user_id", userID.Hex(), "error", err)
		return nil, err
	}

	return user, nil
}

// Delete removes the profile record. Deleting an id that no longer exists
// is a success: the end state is the same.
func (s *Service) Delete(ctx context.Context, userID bson.ObjectID) error {
	if err := s.repo.Delete(ctx, userID); err != nil {
		s.log.Error("failed to delete profile", "user_id", userID.Hex(), "error", err)
		return err
	}
	return nil
}
