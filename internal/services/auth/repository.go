package auth

import (
	"context"
)

// UsersRepo defines the user repository operations the auth service needs.
// Create must surface the store's duplicate-key error unmodified (wrapped
// at most) so the terminal error translator can classify it.
type UsersRepo interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
}
