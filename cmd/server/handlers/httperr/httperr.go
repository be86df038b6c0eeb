package httperr

import (
	"errors"
	"strings"

	"profile-hub/internal/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// docValidationCode is MongoDB's "Document failed validation" error code.
const docValidationCode = 121

// duplicateMessage is the fixed client-facing text for unique-index violations.
const duplicateMessage = "Duplicate field value entered"

// internalMessage is the fallback when an error carries no usable text.
const internalMessage = "Internal server error"

// body is the envelope every failure response uses. Message is `any`
// because store-level validation failures carry a list of messages.
type body struct {
	Success bool         `json:"success"`
	Message any          `json:"message,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError is one failed rule on one request field.
type FieldError struct {
	Field   string `json:"field" example:"email"`
	Message string `json:"message" example:"Please include a valid email"`
}

// ValidationError carries every failed rule for a request, in field order.
// It renders as 400 {success:false, errors:[...]}.
type ValidationError struct {
	Errors []FieldError
}

// Error implements the error interface
func (e ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return strings.Join(msgs, "; ")
}

// E represents an HTTP error with status code and message
type E struct {
	Status  int    `json:"-" example:"400"`
	Message string `json:"message" example:"Bad Request"`
}

// Error implements the error interface
func (e E) Error() string {
	return e.Message
}

// JSON returns the error as JSON response
func (e E) JSON(c *fiber.Ctx) error {
	return c.Status(e.Status).JSON(body{Success: false, Message: e.Message})
}

// Fail returns the error for Fiber's global error handler to process
func Fail(err E) error {
	return err
}

// InternalError returns an internal server error with the given message
func InternalError(message string) E {
	return E{Status: fiber.StatusInternalServerError, Message: message}
}

// Pre-defined HTTP errors
var (
	ErrBadRequest           = E{Status: fiber.StatusBadRequest, Message: "Bad Request"}
	ErrInvalidUserID        = E{Status: fiber.StatusBadRequest, Message: "Invalid user ID"}
	ErrUnauthorized         = E{Status: fiber.StatusUnauthorized, Message: "Unauthorized"}
	ErrUserNotAuthenticated = E{Status: fiber.StatusUnauthorized, Message: "User not authenticated"}
	ErrTooManyRequests      = E{Status: fiber.StatusTooManyRequests, Message: "Too Many Requests"}
	ErrInternal             = InternalError(internalMessage)
)

// FromValidator converts validator output into a ValidationError using the
// per-request message table (keyed by wire field name). Every failing rule
// is collected, not just the first.
func FromValidator(err error, messages map[string]string) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Fail(ErrBadRequest)
	}

	fieldErrs := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := messages[fe.Field()]
		if !ok {
			msg = "Invalid value for " + fe.Field()
		}
		fieldErrs = append(fieldErrs, FieldError{Field: fe.Field(), Message: msg})
	}

	return ValidationError{Errors: fieldErrs}
}

// schemaMessages extracts the per-document messages from a store-level
// validation failure.
func schemaMessages(err error) []string {
	var we mongo.WriteException
	if errors.As(err, &we) && len(we.WriteErrors) > 0 {
		msgs := make([]string, 0, len(we.WriteErrors))
		for _, w := range we.WriteErrors {
			msgs = append(msgs, w.Message)
		}
		return msgs
	}

	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Message != "" {
		return []string{ce.Message}
	}

	return []string{"Document failed validation"}
}

// Handler is the global error handler for Fiber: the single place where
// internal failures become HTTP responses. Every mutating endpoint funnels
// its failures here untranslated.
func Handler(c *fiber.Ctx, err error) error {
	if log := logger.L(); log != nil {
		log.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	}

	// Request validation: itemized field errors
	var ve ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(body{Success: false, Errors: ve.Errors})
	}

	// Unique-index violation (email)
	if mongo.IsDuplicateKeyError(err) {
		return c.Status(fiber.StatusBadRequest).JSON(body{Success: false, Message: duplicateMessage})
	}

	// Store-level schema validation at write time
	var srvErr mongo.ServerError
	if errors.As(err, &srvErr) && srvErr.HasErrorCode(docValidationCode) {
		return c.Status(fiber.StatusBadRequest).JSON(body{Success: false, Message: schemaMessages(err)})
	}

	// Errors that declare their own status
	var e E
	if errors.As(err, &e) {
		return e.JSON(c)
	}

	var fiberError *fiber.Error
	if errors.As(err, &fiberError) {
		return c.Status(fiberError.Code).JSON(body{Success: false, Message: fiberError.Message})
	}

	// Everything else: opaque 500
	msg := err.Error()
	if msg == "" {
		msg = internalMessage
	}
	return c.Status(fiber.StatusInternalServerError).JSON(body{Success: false, Message: msg})
}
