package profile

import (
	"context"
	"errors"

	"profile-hub/cmd/server/handlers/handlerutil"
	"profile-hub/internal/services/auth"
	"profile-hub/internal/services/profile"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ProfileService defines the interface for the profile service
type ProfileService interface {
	Get(ctx context.Context, userID bson.ObjectID) (*auth.User, error)
	Update(ctx context.Context, userID bson.ObjectID, req profile.UpdateProfileRequest) (*auth.User, error)
	Delete(ctx context.Context, userID bson.ObjectID) error
}

// ProfileResponse wraps a profile record. User stays in the payload even
// when nil so an unknown id serializes as user:null.
type ProfileResponse struct {
	Success bool       `json:"success" example:"true"`
	User    *auth.User `json:"user"`
}

// DeleteResponse acknowledges a profile removal
type DeleteResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"User profile deleted successfully"`
}

// Handlers contains the profile HTTP handlers
type Handlers struct {
	profileService ProfileService
	validator      *validator.Validate
}

// NewHandlers creates new profile handlers
func NewHandlers(profileService ProfileService, validator *validator.Validate) *Handlers {
	return &Handlers{
		profileService: profileService,
		validator:      validator,
	}
}

// Get returns the authenticated user's profile
// @Summary Get own profile
// @Tags profile
// @Produce json
// @Security Bearer
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} httperr.E
// @Router /profile [get]
func (h *Handlers) Get(c *fiber.Ctx) error {
	userID, err := handlerutil.GetUserID(c)
	if err != nil {
		return err
	}

	user, err := h.profileService.Get(c.Context(), userID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return c.JSON(ProfileResponse{Success: true, User: nil})
		}
		return err
	}

	return c.JSON(ProfileResponse{Success: true, User: user})
}

// Update applies a sparse merge onto the authenticated user's profile
// @Summary Update own profile
// @Tags profile
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body profile.UpdateProfileRequest true "Fields to merge"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} httperr.ValidationError
// @Failure 401 {object} httperr.E
// @Router /profile [put]
func (h *Handlers) Update(c *fiber.Ctx) error {
	userID, err := handlerutil.GetUserID(c)
	if err != nil {
		return err
	}

	var req profile.UpdateProfileRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, profile.UpdateFieldMessages, "Update"); err != nil {
		return err
	}

	user, err := h.profileService.Update(c.Context(), userID, req)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return c.JSON(ProfileResponse{Success: true, User: nil})
		}
		return err
	}

	return c.JSON(ProfileResponse{Success: true, User: user})
}

// Delete removes the authenticated user's profile. Deleting an id that is
// already gone still succeeds.
// @Summary Delete own profile
// @Tags profile
// @Produce json
// @Security Bearer
// @Success 200 {object} DeleteResponse
// @Failure 401 {object} httperr.E
// @Router /profile [delete]
func (h *Handlers) Delete(c *fiber.Ctx) error {
	userID, err := handlerutil.GetUserID(c)
	if err != nil {
		return err
	}

	if err := h.profileService.Delete(c.Context(), userID); err != nil {
		return err
	}

	return c.JSON(DeleteResponse{
		Success: true,
		Message: "User profile deleted successfully",
	})
}
