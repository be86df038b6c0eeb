//go:build e2e

package test

import (
	"net/http"
	"testing"
)

func TestLoginRateLimitE2E(t *testing.T) {
	env := SetupTestEnvironmentWithEnv(t, map[string]string{
		"SIGNIN_RATE_PER_MIN": "3",
	})

	registerUser(t, env.BaseURL, "Rate Limited", "limited@example.com", "Password123", "1 Throttle Lane")

	// Burn through the window with bad credentials
	for range 3 {
		loginExpect(t, env.BaseURL, "limited@example.com", "WrongPassword1", http.StatusUnauthorized)
	}

	// The window is exhausted: even a correct password is throttled now
	loginExpect(t, env.BaseURL, "limited@example.com", "Password123", http.StatusTooManyRequests)
}

func TestLoginRateLimitDisabledE2E(t *testing.T) {
	env := SetupTestEnvironmentWithEnv(t, map[string]string{
		"SIGNIN_RATE_PER_MIN": "0",
	})

	registerUser(t, env.BaseURL, "Never Limited", "unlimited@example.com", "Password123", "2 Throttle Lane")

	for range 10 {
		loginExpect(t, env.BaseURL, "unlimited@example.com", "Password123", http.StatusOK)
	}
}
