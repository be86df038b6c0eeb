package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User represents a user account in the system.
// The password hash is stored but never serialized into responses.
type User struct {
	ID             bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty" example:"683cdb8aa96ad71e8e075bd1"`
	Name           string        `bson:"name" json:"name" example:"Jane Doe"`
	Email          string        `bson:"email" json:"email" example:"jane@example.com"`
	PasswordHash   string        `bson:"password_hash" json:"-" example:"$2a$12$1234567890"`
	Address        string        `bson:"address" json:"address" example:"221B Baker Street"`
	Bio            string        `bson:"bio,omitempty" json:"bio,omitempty" example:"Gopher at large"`
	ProfilePicture string        `bson:"profile_picture,omitempty" json:"profilePicture,omitempty" example:"https://example.com/avatar.png"`
	CreatedAt      time.Time     `bson:"created_at" json:"created_at" example:"2025-06-01T23:00:26.005703677Z"`
	UpdatedAt      time.Time     `bson:"updated_at" json:"updated_at" example:"2025-06-01T23:00:26.005703677Z"`
}

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Name     string `json:"name" validate:"required" example:"Jane Doe"`
	Email    string `json:"email" validate:"required,email" example:"jane@example.com"`
	Password string `json:"password" validate:"required,min=6" example:"hunter22"`
	Address  string `json:"address" validate:"required" example:"221B Baker Street"`
}

// LoginRequest represents a user login request.
// The password only has to be present here - its length was checked at registration.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"jane@example.com"`
	Password string `json:"password" validate:"required" example:"hunter22"`
}

// RegisterFieldMessages maps register request fields (wire names) to the
// message returned when their rule fails.
var RegisterFieldMessages = map[string]string{
	"name":     "Name is required",
	"email":    "Please include a valid email",
	"password": "Password must be at least 6 characters",
	"address":  "Address is required",
}

// LoginFieldMessages maps login request fields to their validation messages.
var LoginFieldMessages = map[string]string{
	"email":    "Please include a valid email",
	"password": "Password is required",
}

// AuthResponse represents the response for successful authentication
type AuthResponse struct {
	Success bool   `json:"success" example:"true"`
	User    *User  `json:"user"`
	Token   string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.abc.def"`
}

// RegisterResponse is an alias for AuthResponse
type RegisterResponse = AuthResponse

// LoginResponse is an alias for AuthResponse
type LoginResponse = AuthResponse
