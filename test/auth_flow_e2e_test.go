//go:build e2e

package test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthFlowE2E(t *testing.T) {
	env := SetupTestEnvironment(t)

	testEmail := "bob@example.com"
	testPassword := "Password123"

	t.Run("register", func(t *testing.T) {
		payload := map[string]string{
			"name":     "Bob Example",
			"email":    testEmail,
			"password": testPassword,
			"address":  "12 Grimmauld Place",
		}

		resp, err := httpJSON("POST", env.BaseURL+registerEndpoint, payload, nil)
		require.NoError(t, err)
		defer func() {
			if err := resp.Body.Close(); err != nil {
				t.Errorf(msgFailedToCloseResponseBody, err)
			}
		}()

		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var registerResp map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&registerResp))

		assert.Equal(t, true, registerResp["success"])
		assert.NotEmpty(t, registerResp["token"])

		user := registerResp["user"].(map[string]any)
		assert.Equal(t, testEmail, user["email"])
		assert.Equal(t, "Bob Example", user["name"])
		assert.Contains(t, user, "id")
		assert.NotContains(t, user, "password", "the hash must never leave the server")
		assert.NotContains(t, user, "password_hash")
	})

	t.Run("duplicate email", func(t *testing.T) {
		ExecuteHTTPJSONStep(t, HTTPJSONStep{
			Name:   "register same email again",
			Method: "POST",
			URL:    registerEndpoint,
			Body: map[string]string{
				"name":     "Bob Again",
				"email":    testEmail,
				"password": testPassword,
				"address":  "13 Grimmauld Place",
			},
			ExpectedStatus: http.StatusBadRequest,
			Validator:      MessageValidator("Duplicate field value entered"),
		}, env.BaseURL)
	})

	t.Run("register validation", func(t *testing.T) {
		ExecuteHTTPJSONStep(t, HTTPJSONStep{
			Name:           "register with a short password",
			Method:         "POST",
			URL:            registerEndpoint,
			Body:           map[string]string{"name": "X", "email": "x@example.com", "password": "short", "address": "Y"},
			ExpectedStatus: http.StatusBadRequest,
			Validator:      FieldErrorValidator("password", "Password must be at least 6 characters"),
		}, env.BaseURL)
	})

	var authToken string
	t.Run("login", func(t *testing.T) {
		resp, err := httpJSON("POST", env.BaseURL+loginEndpoint, map[string]string{
			"email":    testEmail,
			"password": testPassword,
		}, nil)
		require.NoError(t, err)
		defer func() {
			if err := resp.Body.Close(); err != nil {
				t.Errorf(msgFailedToCloseResponseBody, err)
			}
		}()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var loginResp map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&loginResp))

		assert.Equal(t, true, loginResp["success"])
		user := loginResp["user"].(map[string]any)
		assert.Equal(t, testEmail, user["email"])

		authToken = GetTokenFromResponse(t, loginResp, "token")
	})

	t.Run("login with wrong password", func(t *testing.T) {
		ExecuteHTTPJSONStep(t, HTTPJSONStep{
			Name:           "wrong password",
			Method:         "POST",
			URL:            loginEndpoint,
			Body:           map[string]string{"email": testEmail, "password": "WrongPassword1"},
			ExpectedStatus: http.StatusUnauthorized,
			Validator:      MessageValidator("Invalid credentials"),
		}, env.BaseURL)
	})

	t.Run("login with unknown email", func(t *testing.T) {
		ExecuteHTTPJSONStep(t, HTTPJSONStep{
			Name:           "unknown email",
			Method:         "POST",
			URL:            loginEndpoint,
			Body:           map[string]string{"email": "ghost@example.com", "password": testPassword},
			ExpectedStatus: http.StatusUnauthorized,
			Validator:      MessageValidator("Invalid credentials"),
		}, env.BaseURL)
	})

	t.Run("profile with session token", func(t *testing.T) {
		ExecuteHTTPJSONStep(t, HTTPJSONStep{
			Name:           "get own profile",
			Method:         "GET",
			URL:            profileEndpoint,
			Headers:        bearer(authToken),
			ExpectedStatus: http.StatusOK,
			Validator:      UserFieldValidator("email", testEmail),
		}, env.BaseURL)
	})
}
