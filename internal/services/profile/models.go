package profile

// UpdateProfileRequest represents a profile update request.
// Every field is optional; profilePicture must be a well-formed URL when present.
type UpdateProfileRequest struct {
	Name           *string `json:"name,omitempty" example:"Jane Doe"`
	Address        *string `json:"address,omitempty" example:"742 Evergreen Terrace"`
	Bio            *string `json:"bio,omitempty" example:"Gopher at large"`
	ProfilePicture *string `json:"profilePicture,omitempty" validate:"omitempty,url" example:"https://example.com/avatar.png"`
}

// UpdateFieldMessages maps update request fields to their validation messages.
var UpdateFieldMessages = map[string]string{
	"name":           "Name must be a string",
	"address":        "Address must be a string",
	"bio":            "Bio must be a string",
	"profilePicture": "Profile picture must be a valid URL",
}

// UpdateProfile is the sparse patch applied to the store: only non-nil
// fields are written, in a single atomic $set.
type UpdateProfile struct {
	Name           *string
	Address        *string
	Bio            *string
	ProfilePicture *string
}
