package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variables that override file values.
const (
	EnvHome         = "CARBONHUB_HOME"
	EnvBaseURL      = "CARBONHUB_BASE_URL"
	EnvTimeout      = "CARBONHUB_API_TIMEOUT_SECONDS"
	EnvRetries      = "CARBONHUB_API_RETRIES"
	EnvLogLevel     = "CARBONHUB_LOG_LEVEL"
	EnvLogFormat    = "CARBONHUB_LOG_FORMAT"
	EnvLogFile      = "CARBONHUB_LOG_FILE"
	EnvOutputFormat = "CARBONHUB_OUTPUT_FORMAT"
	EnvExportDir    = "CARBONHUB_EXPORT_DIR"
	EnvTheme        = "CARBONHUB_THEME"
)

// ApplyEnvOverrides copies CARBONHUB_* variables onto c. Unparseable numeric
// values are ignored.
func (c *Config) ApplyEnvOverrides() {
	if v := envString(EnvBaseURL); v != "" {
		c.API.BaseURL = v
	}
	if n, ok := envInt(EnvTimeout); ok {
		c.API.TimeoutSeconds = n
	}
	if n, ok := envInt(EnvRetries); ok {
		c.API.Retries = n
	}
	if v := envString(EnvLogLevel); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := envString(EnvLogFormat); v != "" {
		c.Logging.Format = strings.ToLower(v)
	}
	if v := envString(EnvLogFile); v != "" {
		c.Logging.File = v
	}
	if v := envString(EnvOutputFormat); v != "" {
		c.Output.DefaultFormat = strings.ToLower(v)
	}
	if v := envString(EnvExportDir); v != "" {
		c.Output.ExportDir = v
	}
	if v := envString(EnvTheme); v != "" {
		c.Theme.Default = strings.ToLower(v)
	}
}

func envString(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envInt(key string) (int, bool) {
	v := envString(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
