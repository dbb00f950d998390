package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"PORT", "LOG_LEVEL", "LOG_FORMAT", "ENVIRONMENT", "SERVICE_NAME", "VERSION",
	"CATALOG_PATH", "RANDOM_SEED", "STARTING_MONEY", "DAILY_HOURS",
	"DAY_INTERVAL", "EVENT_SPAWN_CHANCE", "LOG_HISTORY", "API_KEY",
	"TRUSTED_PROXIES",
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		if value, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, value) })
		}
		os.Unsetenv(key)
	}
}

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DefaultPort, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, ConfigPathCatalog, cfg.CatalogPath)
		assert.Equal(t, DefaultStartingMoney, cfg.StartingMoney)
		assert.Equal(t, DefaultDailyHours, cfg.DailyHours)
		assert.Equal(t, time.Duration(0), cfg.DayInterval)
		assert.Equal(t, int64(0), cfg.RandomSeed)
		assert.Empty(t, cfg.APIKey)
		assert.Empty(t, cfg.TrustedProxies)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv("PORT", "3000")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "prod")
		t.Setenv("CATALOG_PATH", "/tmp/catalog.yaml")
		t.Setenv("RANDOM_SEED", "42")
		t.Setenv("STARTING_MONEY", "1000.5")
		t.Setenv("DAILY_HOURS", "10")
		t.Setenv("DAY_INTERVAL", "90s")
		t.Setenv("EVENT_SPAWN_CHANCE", "0.5")
		t.Setenv("LOG_HISTORY", "20")
		t.Setenv("API_KEY", "secret")
		t.Setenv("TRUSTED_PROXIES", "10.0.0.1, ,10.0.0.2")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "prod", cfg.Environment)
		assert.Equal(t, "/tmp/catalog.yaml", cfg.CatalogPath)
		assert.Equal(t, int64(42), cfg.RandomSeed)
		assert.Equal(t, 1000.5, cfg.StartingMoney)
		assert.Equal(t, 10.0, cfg.DailyHours)
		assert.Equal(t, 90*time.Second, cfg.DayInterval)
		assert.Equal(t, 0.5, cfg.EventSpawnChance)
		assert.Equal(t, 20, cfg.LogHistory)
		assert.Equal(t, "secret", cfg.APIKey)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
	})

	t.Run("returns error for invalid values", func(t *testing.T) {
		testCases := []struct {
			name    string
			key     string
			value   string
			message string
		}{
			{"port", "PORT", "not-a-number", "invalid PORT"},
			{"seed", "RANDOM_SEED", "1.5", "invalid RANDOM_SEED"},
			{"money", "STARTING_MONEY", "lots", "invalid STARTING_MONEY"},
			{"negative money", "STARTING_MONEY", "-5", "must not be negative"},
			{"interval", "DAY_INTERVAL", "soon", "invalid DAY_INTERVAL"},
			{"chance above one", "EVENT_SPAWN_CHANCE", "1.5", "between 0 and 1"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				clearEnvVars(t)
				t.Setenv(tc.key, tc.value)

				cfg, err := Load()

				require.Error(t, err)
				assert.Nil(t, cfg)
				assert.Contains(t, err.Error(), tc.message)
			})
		}
	})
}

// TestGetEnvAsInt tests the getEnvAsInt helper function
func TestGetEnvAsInt(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		os.Unsetenv("TEST_INT_VAR")
		assert.Equal(t, 42, getEnvAsInt("TEST_INT_VAR", 42))
	})

	t.Run("parses valid integer from env var", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "100")
		assert.Equal(t, 100, getEnvAsInt("TEST_INT_VAR", 42))
	})

	t.Run("returns default for invalid integer", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "not-a-number")
		assert.Equal(t, 42, getEnvAsInt("TEST_INT_VAR", 42), "Should return default for invalid integer")
	})
}

func TestIsDevelopment(t *testing.T) {
	for env, want := range map[string]bool{"dev": true, "development": true, "prod": false, "": false} {
		assert.Equal(t, want, (&Config{Environment: env}).IsDevelopment(), env)
	}
}
