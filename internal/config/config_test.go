package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
  mode: production
session:
  secret: "a-very-long-test-secret"
  ttl: 2h
simulation:
  delay: 50ms
  failure_rate: 0.25
ui:
  default_theme: dark
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 50*time.Millisecond, cfg.Simulation.Delay)
	assert.Equal(t, 0.25, cfg.Simulation.FailureRate)
	assert.Equal(t, "dark", cfg.UI.DefaultTheme)

	// untouched keys keep their defaults
	assert.Equal(t, "conexao_session", cfg.Session.CookieName)
	assert.Equal(t, 9, cfg.UI.PageSize)
	assert.Equal(t, "pt-BR", cfg.UI.Locale)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
session:
  secret: "a-very-long-test-secret"
`)
	t.Setenv("CONEXAO_SERVER_PORT", "7000")
	t.Setenv("CONEXAO_SIMULATION_DELAY", "1s")
	t.Setenv("CONEXAO_SIMULATION_FAILURE_RATE", "0.1")
	t.Setenv("CONEXAO_UI_PAGE_SIZE", "12")
	t.Setenv("CONEXAO_UI_MINIFY_ASSETS", "false")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, time.Second, cfg.Simulation.Delay)
	assert.Equal(t, 0.1, cfg.Simulation.FailureRate)
	assert.Equal(t, 12, cfg.UI.PageSize)
	assert.False(t, cfg.UI.MinifyAssets)
}

func TestLoadConfigMissingFileUsesDefaultsAndEnv(t *testing.T) {
	t.Setenv("CONEXAO_SESSION_SECRET", "secret-from-the-environment")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 400*time.Millisecond, cfg.Simulation.Delay)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
		want string
	}{
		{
			name: "missing secret",
			body: "server:\n  port: \"8080\"\n",
			want: "session secret is required",
		},
		{
			name: "short secret",
			body: "session:\n  secret: short\n",
			want: "at least 16 characters",
		},
		{
			name: "failure rate out of range",
			body: "session:\n  secret: a-very-long-test-secret\nsimulation:\n  failure_rate: 1.5\n",
			want: "failure rate",
		},
		{
			name: "unknown theme",
			body: "session:\n  secret: a-very-long-test-secret\nui:\n  default_theme: neon\n",
			want: "unknown default theme",
		},
		{
			name: "bad env duration",
			body: "session:\n  secret: a-very-long-test-secret\n",
			env:  map[string]string{"CONEXAO_SESSION_TTL": "forever"},
			want: "invalid duration format",
		},
		{
			name: "malformed yaml",
			body: "session: [",
			want: "failed to parse config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestEnvVarsListsEveryTaggedField(t *testing.T) {
	vars := EnvVars()

	assert.Contains(t, vars, "CONEXAO_SERVER_PORT")
	assert.Contains(t, vars, "CONEXAO_SESSION_TTL")
	assert.Contains(t, vars, "CONEXAO_SIMULATION_FAILURE_RATE")
	assert.Contains(t, vars, "CONEXAO_LOG_FORMAT")
	assert.Len(t, vars, 18)
}
