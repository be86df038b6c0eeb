package auth

import (
	"context"
	"errors"

	"profile-hub/cmd/server/handlers/handlerutil"
	"profile-hub/cmd/server/handlers/httperr"
	"profile-hub/internal/logger"
	"profile-hub/internal/services/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthService defines the interface for the auth service
type AuthService interface {
	Register(ctx context.Context, req auth.RegisterRequest) (*auth.AuthResponse, error)
	Login(ctx context.Context, req auth.LoginRequest) (*auth.AuthResponse, error)
}

// Handlers contains the auth HTTP handlers
type Handlers struct {
	authService AuthService
	validator   *validator.Validate
}

// NewHandlers creates new auth handlers
func NewHandlers(authService AuthService, validator *validator.Validate) *Handlers {
	return &Handlers{
		authService: authService,
		validator:   validator,
	}
}

// Register handles user registration
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body auth.RegisterRequest true "Register request"
// @Success 201 {object} auth.RegisterResponse
// @Failure 400 {object} httperr.E
// @Router /auth/register [post]
func (h *Handlers) Register(c *fiber.Ctx) error {
	var req auth.RegisterRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, auth.RegisterFieldMessages, "Register"); err != nil {
		return err
	}

	resp, err := h.authService.Register(c.Context(), req)
	if err != nil {
		// Forwarded untranslated: the global handler classifies
		// duplicate emails and everything else.
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login handles user authentication
// @Summary Authenticate a user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body auth.LoginRequest true "Login request"
// @Success 200 {object} auth.LoginResponse
// @Failure 400 {object} httperr.E
// @Failure 401 {object} httperr.E
// @Failure 429 {object} httperr.E
// @Router /auth/login [post]
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req auth.LoginRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, auth.LoginFieldMessages, "Login"); err != nil {
		return err
	}

	resp, err := h.authService.Login(c.Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			logger.L().Info("rejected credentials", "handler", "Login", "email", req.Email)
			return httperr.Fail(httperr.E{
				Status:  fiber.StatusUnauthorized,
				Message: auth.ErrInvalidCredentials.Error(),
			})
		}
		return err
	}

	return c.JSON(resp)
}
