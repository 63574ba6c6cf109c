package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, 15, cfg.API.TimeoutSeconds)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 3600, cfg.Cache.TTLSeconds)
	assert.Equal(t, "dark", cfg.Theme.Default)
	require.NoError(t, cfg.Validate())
}

func TestNew_ReadsFileAndEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)
	t.Setenv(EnvLogLevel, "DEBUG")

	content := `
api:
  base_url: https://staging.carbonhub.app
  timeout_seconds: 30
output:
  default_format: json
`
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(content), 0o600))

	cfg := New()
	assert.Equal(t, filepath.Join(home, "config.yaml"), cfg.ConfigPath())
	assert.Equal(t, "https://staging.carbonhub.app", cfg.API.BaseURL)
	assert.Equal(t, 30, cfg.API.TimeoutSeconds)
	assert.Equal(t, 3, cfg.API.Retries, "unset keys keep defaults")
	assert.Equal(t, "json", cfg.Output.DefaultFormat)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestNew_MalformedFileIgnored(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("api: [unclosed"), 0o600))

	cfg := New()
	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)

	err := cfg.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.SetConfigPath(path)
	cfg.Theme.Default = "light"
	cfg.Output.ExportDir = "/tmp/exports"
	require.NoError(t, cfg.Save())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded := Default()
	loaded.SetConfigPath(path)
	require.NoError(t, loaded.Load())
	assert.Equal(t, "light", loaded.Theme.Default)
	assert.Equal(t, "/tmp/exports", loaded.Output.ExportDir)
}

func TestSaveWithoutPath(t *testing.T) {
	cfg := Default()
	require.ErrorIs(t, cfg.Save(), ErrNoConfigPath)
	require.ErrorIs(t, cfg.Load(), ErrNoConfigPath)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg := Default()
	cfg.SetConfigPath(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, cfg.Load())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		field  string
	}{
		{"bad url", func(c *Config) { c.API.BaseURL = "not a url" }, "api.base_url"},
		{"empty url", func(c *Config) { c.API.BaseURL = "" }, "api.base_url"},
		{"ttl too small", func(c *Config) { c.Cache.TTLSeconds = 10 }, "cache.ttl_seconds"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"bad format", func(c *Config) { c.Output.DefaultFormat = "xml" }, "output.default_format"},
		{"bad theme", func(c *Config) { c.Theme.Default = "sepia" }, "theme.default"},
		{"negative retries", func(c *Config) { c.API.Retries = -1 }, "api.retries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvBaseURL, "http://localhost:8080")
	t.Setenv(EnvTimeout, "5")
	t.Setenv(EnvRetries, "not-a-number")
	t.Setenv(EnvTheme, "LIGHT")
	t.Setenv(EnvExportDir, "/srv/out")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, 5, cfg.API.TimeoutSeconds)
	assert.Equal(t, DefaultRetries, cfg.API.Retries)
	assert.Equal(t, "light", cfg.Theme.Default)
	assert.Equal(t, "/srv/out", cfg.Output.ExportDir)
}

func TestToLoggingConfig(t *testing.T) {
	lc := LoggingConfig{Level: "debug", Format: "json"}
	out := lc.ToLoggingConfig()
	assert.Equal(t, "stderr", out.Output)
	assert.Equal(t, "debug", out.Level)

	lc.File = "/var/log/carbonhub.log"
	out = lc.ToLoggingConfig()
	assert.Equal(t, "file", out.Output)
	assert.Equal(t, "/var/log/carbonhub.log", out.File)
}
