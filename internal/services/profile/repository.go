package profile

import (
	"context"

	"profile-hub/internal/services/auth"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Repository defines the user repository operations the profile service needs.
// UpdateProfile must apply the patch as one atomic operation and return the
// post-update view of the record, with any store-level schema validators
// still run against the new values.
type Repository interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*auth.User, error)
	UpdateProfile(ctx context.Context, id bson.ObjectID, patch UpdateProfile) (*auth.User, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}
