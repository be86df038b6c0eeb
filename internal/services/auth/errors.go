package auth

import "errors"

// ErrInvalidCredentials is returned when the email is unknown or the
// password does not match. The two cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("Invalid credentials")

// ErrUserNotFound is returned when no user record matches the given id or email.
var ErrUserNotFound = errors.New("user not found")

// ErrGenAccessToken is returned when we cannot create a JWT.
var ErrGenAccessToken = errors.New("failed to generate access token")

// ErrUnsupportedJWTAlg is returned for any signing algorithm other than HS256.
var ErrUnsupportedJWTAlg = errors.New("unsupported JWT algorithm")
