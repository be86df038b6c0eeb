//go:build e2e

package test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileLifecycleE2E(t *testing.T) {
	env := SetupTestEnvironment(t)

	token := registerUser(t, env.BaseURL, "Alice Example", "alice@example.com", "Password123", "221B Baker Street")

	t.Run("requires a token", func(t *testing.T) {
		for _, method := range []string{"GET", "PUT", "DELETE"} {
			ExecuteHTTPJSONStep(t, HTTPJSONStep{
				Name:           method + " without token",
				Method:         method,
				URL:            profileEndpoint,
				Body:           map[string]string{},
				ExpectedStatus: http.StatusUnauthorized,
				Validator:      MessageValidator("Unauthorized"),
			}, env.BaseURL)
		}
	})

	t.Run("sparse update touches only named fields", func(t *testing.T) {
		ExecuteHTTPJSONStep(t, HTTPJSONStep{
			Name:           "set bio only",
			Method:         "PUT",
			URL:            profileEndpoint,
			Body:           map[string]string{"bio": "Gopher at large"},
			Headers:        bearer(token),
			ExpectedStatus: http.StatusOK,
			Validator:      UserFieldValidator("bio", "Gopher at large"),
		}, env.BaseURL)

		resp := ExecuteHTTPJSONStep(t, HTTPJSONStep{
			Name:           "read back",
			Method:         "GET",
			URL:            profileEndpoint,
			Headers:        bearer(token),
			ExpectedStatus: http.StatusOK,
		}, env.BaseURL)

		user := resp["user"].(map[string]any)
		assert.Equal(t, "Gopher at large", user["bio"])
		assert.Equal(t, "Alice Example", user["name"], "name must survive a bio-only update")
		assert.Equal(t, "221B Baker Street", user["address"])
	})

	t.Run("empty string does not clear a field", func(t *testing.T) {
		ExecuteHTTPJSONStep(t, HTTPJSONStep{
			Name:           "send empty name",
			Method:         "PUT",
			URL:            profileEndpoint,
			Body:           map[string]string{"name": ""},
			Headers:        bearer(token),
			ExpectedStatus: http.StatusOK,
			Validator:      UserFieldValidator("name", "Alice Example"),
		}, env.BaseURL)
	})

	t.Run("rejects a non-URL picture", func(t *testing.T) {
		ExecuteHTTPJSONStep(t, HTTPJSONStep{
			Name:           "bad profile picture",
			Method:         "PUT",
			URL:            profileEndpoint,
			Body:           map[string]string{"profilePicture": "not-a-url"},
			Headers:        bearer(token),
			ExpectedStatus: http.StatusBadRequest,
			Validator:      FieldErrorValidator("profilePicture", "Profile picture must be a valid URL"),
		}, env.BaseURL)
	})

	t.Run("accepts a URL picture", func(t *testing.T) {
		ExecuteHTTPJSONStep(t, HTTPJSONStep{
			Name:           "good profile picture",
			Method:         "PUT",
			URL:            profileEndpoint,
			Body:           map[string]string{"profilePicture": "https://example.com/alice.png"},
			Headers:        bearer(token),
			ExpectedStatus: http.StatusOK,
			Validator:      UserFieldValidator("profilePicture", "https://example.com/alice.png"),
		}, env.BaseURL)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		for range 2 {
			ExecuteHTTPJSONStep(t, HTTPJSONStep{
				Name:           "delete profile",
				Method:         "DELETE",
				URL:            profileEndpoint,
				Headers:        bearer(token),
				ExpectedStatus: http.StatusOK,
				Validator:      MessageValidator("User profile deleted successfully"),
			}, env.BaseURL)
		}
	})

	t.Run("deleted profile reads as null", func(t *testing.T) {
		resp := ExecuteHTTPJSONStep(t, HTTPJSONStep{
			Name:           "get after delete",
			Method:         "GET",
			URL:            profileEndpoint,
			Headers:        bearer(token),
			ExpectedStatus: http.StatusOK,
		}, env.BaseURL)

		require.Contains(t, resp, "user")
		assert.Nil(t, resp["user"], "the token is still valid, the record is gone")
		assert.Equal(t, true, resp["success"])
	})

	t.Run("login after delete fails", func(t *testing.T) {
		loginExpect(t, env.BaseURL, "alice@example.com", "Password123", http.StatusUnauthorized)
	})
}
