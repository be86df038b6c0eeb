package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"profile-hub/internal/logger"
	"profile-hub/internal/services/auth"
	"profile-hub/internal/services/profile"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// namespaceExistsCode is returned by createCollection when the collection is already there.
const namespaceExistsCode = 48

// usersSchema is the collection-level validator. Request validation runs
// first, but the schema re-checks field types and the picture URL shape at
// write time, so a bad value surfaces as the store's own validation error.
var usersSchema = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{"name", "email", "password_hash", "address"},
		"properties": bson.M{
			"name":            bson.M{"bsonType": "string", "minLength": 1, "description": "Name is required"},
			"email":           bson.M{"bsonType": "string", "description": "Email is required"},
			"password_hash":   bson.M{"bsonType": "string", "description": "Password hash is required"},
			"address":         bson.M{"bsonType": "string", "description": "Address is required"},
			"bio":             bson.M{"bsonType": "string", "description": "Bio must be a string"},
			"profile_picture": bson.M{"bsonType": "string", "pattern": "^https?://", "description": "Profile picture must be a valid URL"},
		},
	},
}

// UsersRepo implements auth.UsersRepo and profile.Repository for MongoDB
type UsersRepo struct {
	collection *mongo.Collection
}

func repoCtx(parent context.Context) (context.Context, context.CancelFunc) {
	return WithRepoTimeout(parent, OpTimeout)
}

// translateNotFound maps the driver ErrNoDocuments to the domain-level ErrUserNotFound.
func translateNotFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return auth.ErrUserNotFound
	}
	return err
}

// NewUsersRepo creates the users repository, bootstrapping the collection
// validator and the unique email index.
func NewUsersRepo(parentCtx context.Context, db *mongo.Database) (*UsersRepo, error) {
	ctx, cancel := context.WithTimeout(parentCtx, OpTimeout)
	defer cancel()

	collOpts := options.CreateCollection().SetValidator(usersSchema)
	if err := db.CreateCollection(ctx, "users", collOpts); err != nil {
		var srvErr mongo.ServerError
		if errors.As(err, &srvErr) && srvErr.HasErrorCode(namespaceExistsCode) {
			logger.L().Debug("users collection already exists, continuing")
		} else {
			logger.L().Error("failed to create users collection", "error", err)
			return nil, fmt.Errorf("create users collection: %w", err)
		}
	}

	collection := db.Collection("users")

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			logger.L().Debug("email index already exists, continuing", "collection", "users")
		} else {
			logger.L().Error("failed to create email index", "collection", "users", "error", err)
			return nil, fmt.Errorf("create users email index: %w", err)
		}
	}

	return &UsersRepo{
		collection: collection,
	}, nil
}

// Create inserts a new user. Duplicate-key and schema errors pass through
// wrapped so the terminal error translator can classify them.
func (r *UsersRepo) Create(ctx context.Context, user *auth.User) error {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

// FindByEmail finds a user by email address
func (r *UsersRepo) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	var user auth.User
	if err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, translateNotFound(err)
	}

	return &user, nil
}

// FindByID finds a user by its ObjectID
func (r *UsersRepo) FindByID(ctx context.Context, id bson.ObjectID) (*auth.User, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	var user auth.User
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, translateNotFound(err)
	}

	return &user, nil
}

// UpdateProfile applies the sparse patch in a single atomic $set and
// returns the post-update record. Concurrent updates to disjoint fields
// therefore never lose each other's writes.
func (r *UsersRepo) UpdateProfile(ctx context.Context, id bson.ObjectID, patch profile.UpdateProfile) (*auth.User, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	filter := bson.M{"_id": id}

	set := bson.M{
		"updated_at": time.Now().UTC(),
	}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Address != nil {
		set["address"] = *patch.Address
	}
	if patch.Bio != nil {
		set["bio"] = *patch.Bio
	}
	if patch.ProfilePicture != nil {
		set["profile_picture"] = *patch.ProfilePicture
	}

	// Nothing to merge: return the current record without touching updated_at
	if len(set) == 1 {
		var existing auth.User
		if err := r.collection.FindOne(ctx, filter).Decode(&existing); err != nil {
			return nil, translateNotFound(err)
		}
		return &existing, nil
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated auth.User
	if err := r.collection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&updated); err != nil {
		return nil, translateNotFound(err)
	}

	return &updated, nil
}

// Delete removes the user record by id. A zero deleted count is not an
// error: delete-by-id is idempotent.
func (r *UsersRepo) Delete(ctx context.Context, id bson.ObjectID) error {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	return nil
}
