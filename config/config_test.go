package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"PORT", "CATALOG_SOURCE", "CATALOG_CSV_PATH", "CATALOG_URL", "DATABASE_URL", "ALLOWED_ORIGINS",
	"REQUEST_TIMEOUT", "SUBMIT_DELAY", "SUBMIT_FAILURE_RATE", "REVIEW_EMAIL",
	"EMAIL_PROVIDER", "EMAIL_FROM_ADDRESS", "EMAIL_FROM_NAME", "AWS_REGION",
	"AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "SES_INSECURE_SKIP_VERIFY",
}

// clearEnv unsets every config key for the duration of the test so defaults apply.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GO_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, CatalogSourceSeed, cfg.CatalogSource)
	assert.Equal(t, 1500*time.Millisecond, cfg.SubmitDelay)
	assert.InDelta(t, 0.2, cfg.SubmitFailureRate, 1e-9)
	assert.Equal(t, "noop", cfg.EmailConfig.Provider)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GO_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000,https://events.example.edu")
	t.Setenv("SUBMIT_DELAY", "0s")
	t.Setenv("SUBMIT_FAILURE_RATE", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"http://localhost:3000", "https://events.example.edu"}, cfg.AllowedOrigins)
	assert.Equal(t, time.Duration(0), cfg.SubmitDelay)
	assert.Zero(t, cfg.SubmitFailureRate)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown catalog source", map[string]string{"CATALOG_SOURCE": "mongo"}},
		{"csv without path", map[string]string{"CATALOG_SOURCE": "csv", "CATALOG_CSV_PATH": ""}},
		{"url without address", map[string]string{"CATALOG_SOURCE": "url"}},
		{"failure rate above one", map[string]string{"SUBMIT_FAILURE_RATE": "1.5"}},
		{"malformed delay", map[string]string{"SUBMIT_DELAY": "soon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("GO_ENV", "production")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
		})
	}
}
