package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		AppPort:            8080,
		BcryptCost:         12,
		SignInRatePerMin:   5,
		LogLevel:           "info",
		LogFormat:          "json",
		MongoURI:           "mongodb://localhost:27017",
		MongoDBName:        "profilehub",
		JWTSecret:          "this-is-a-test-jwt-secret-key-with-32-plus-characters",
		JWTAlgorithm:       "HS256",
		AccessTokenMinutes: 60,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config passes",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing mongo URI is fatal",
			mutate:  func(c *Config) { c.MongoURI = "" },
			wantErr: "MONGO_URI is required",
		},
		{
			name:    "zero port rejected",
			mutate:  func(c *Config) { c.AppPort = 0 },
			wantErr: "APP_PORT",
		},
		{
			name:    "bcrypt cost below range",
			mutate:  func(c *Config) { c.BcryptCost = 4 },
			wantErr: "BCRYPT_COST",
		},
		{
			name:    "bcrypt cost above range",
			mutate:  func(c *Config) { c.BcryptCost = 31 },
			wantErr: "BCRYPT_COST",
		},
		{
			name:    "negative rate limit rejected",
			mutate:  func(c *Config) { c.SignInRatePerMin = -1 },
			wantErr: "SIGNIN_RATE_PER_MIN",
		},
		{
			name:   "zero rate limit disables the limiter",
			mutate: func(c *Config) { c.SignInRatePerMin = 0 },
		},
		{
			name:    "short HS256 secret rejected",
			mutate:  func(c *Config) { c.JWTSecret = "too-short" },
			wantErr: "at least 32 characters",
		},
		{
			name:    "unsupported algorithm rejected",
			mutate:  func(c *Config) { c.JWTAlgorithm = "RS256" },
			wantErr: "JWT_ALGORITHM",
		},
		{
			name:    "zero token lifetime rejected",
			mutate:  func(c *Config) { c.AccessTokenMinutes = 0 },
			wantErr: "ACCESS_TOKEN_MINUTES",
		},
		{
			name:    "empty db name rejected",
			mutate:  func(c *Config) { c.MongoDBName = "" },
			wantErr: "MONGO_DB_NAME",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	ResetCache()
	t.Cleanup(ResetCache)

	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.AppPort)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, "profilehub", cfg.MongoDBName)
	assert.Equal(t, "HS256", cfg.JWTAlgorithm)
	assert.Equal(t, 60, cfg.AccessTokenMinutes)
	assert.True(t, cfg.RouteMetricsEnabled)
}

func TestLoadRequiresMongoURI(t *testing.T) {
	ResetCache()
	t.Cleanup(ResetCache)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MONGO_URI")
}

func TestLoadCaches(t *testing.T) {
	ResetCache()
	t.Cleanup(ResetCache)

	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	first, err := Load()
	require.NoError(t, err)

	// Changing the environment must not affect the cached result
	t.Setenv("APP_PORT", "9999")

	second, err := Load()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
