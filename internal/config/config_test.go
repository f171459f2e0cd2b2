package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 52, cfg.MaxRecurringOccurrences)
	assert.Equal(t, "UTC", cfg.Location().String())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.toml")
	content := `
port = "9090"
timezone = "Europe/Oslo"
max_recurring_occurrences = 12
rate_limit_rps = 5.5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "7070")

	cfg, err := Load()
	if err != nil {
		t.Skipf("tzdata not available: %v", err)
	}
	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, 12, cfg.MaxRecurringOccurrences)
	assert.InDelta(t, 5.5, cfg.RateLimitRPS, 0.0001)
	assert.Equal(t, "Europe/Oslo", cfg.Timezone)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad int", map[string]string{"MAX_RECURRING_OCCURRENCES": "many"}},
		{"zero occurrences", map[string]string{"MAX_RECURRING_OCCURRENCES": "0"}},
		{"bad timezone", map[string]string{"TIMEZONE": "Mars/Olympus"}},
		{"default secret in production", map[string]string{"APP_ENV": "production", "JWT_SECRET": ""}},
		{"bad rps", map[string]string{"RATE_LIMIT_RPS": "fast"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CONFIG_FILE", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.toml"))
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_AllowedOrigins(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://arena.example.com, ,https://admin.arena.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://arena.example.com", "https://admin.arena.example.com"}, cfg.AllowedOrigins)
}
