// Package config loads, validates and persists carbonhub configuration.
//
// Configuration lives in <config dir>/config.yaml (the config dir is
// ~/.carbonhub, or $CARBONHUB_HOME when set). Values are resolved in order:
//   - built-in defaults
//   - the YAML file, when present
//   - CARBONHUB_* environment variables
//
// Command-line flags are applied on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultBaseURL        = "https://api.carbonhub.app"
	DefaultTimeoutSeconds = 15
	DefaultRetries        = 3
	DefaultRateLimit      = 5.0
	DefaultBurst          = 5
	DefaultCacheTTL       = 3600
	DefaultPrecision      = 1
	DefaultOutputFormat   = "table"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "console"
	DefaultTheme          = "dark"

	configFileName = "config.yaml"
	outputTypeFile = "file"
)

// Config is the full carbonhub configuration.
type Config struct {
	API     APIConfig     `yaml:"api"     validate:"required"`
	Cache   CacheConfig   `yaml:"cache"`
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
	Theme   ThemeConfig   `yaml:"theme"`

	configPath string
}

// APIConfig controls the REST client.
type APIConfig struct {
	BaseURL        string  `yaml:"base_url"        validate:"required,url"`
	TimeoutSeconds int     `yaml:"timeout_seconds" validate:"gte=1,lte=300"`
	Retries        int     `yaml:"retries"         validate:"gte=0,lte=10"`
	RateLimit      float64 `yaml:"rate_limit"      validate:"gte=0"`
	Burst          int     `yaml:"burst"           validate:"gte=1"`
}

// CacheConfig controls the API response cache.
type CacheConfig struct {
	Enabled    bool   `yaml:"enabled"`
	TTLSeconds int    `yaml:"ttl_seconds" validate:"gte=60,lte=604800"`
	Directory  string `yaml:"directory,omitempty"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level"          validate:"oneof=trace debug info warn error"`
	Format string `yaml:"format"         validate:"oneof=json console"`
	File   string `yaml:"file,omitempty"`
}

// OutputConfig controls command output and exports.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"       validate:"oneof=table json csv"`
	Precision     int    `yaml:"precision"            validate:"gte=0,lte=6"`
	ExportDir     string `yaml:"export_dir,omitempty"`
}

// ThemeConfig sets the theme used when no preference has been saved.
type ThemeConfig struct {
	Default string `yaml:"default" validate:"oneof=dark light"`
}

// Default returns a Config holding only built-in defaults.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        DefaultBaseURL,
			TimeoutSeconds: DefaultTimeoutSeconds,
			Retries:        DefaultRetries,
			RateLimit:      DefaultRateLimit,
			Burst:          DefaultBurst,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTLSeconds: DefaultCacheTTL,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Output: OutputConfig{
			DefaultFormat: DefaultOutputFormat,
			Precision:     DefaultPrecision,
		},
		Theme: ThemeConfig{Default: DefaultTheme},
	}
}

// New returns the effective configuration: defaults, then the config file in
// the config dir (if readable), then environment overrides. A malformed file
// is ignored so the CLI stays usable; `config validate` reports it.
func New() *Config {
	cfg := Default()

	dir, err := GetConfigDir()
	if err == nil {
		cfg.configPath = FilePath(dir)
		_ = cfg.Load()
	}

	cfg.ApplyEnvOverrides()
	return cfg
}

// FilePath returns the config file location inside dir.
func FilePath(dir string) string {
	return filepath.Join(dir, configFileName)
}

// ConfigPath returns the file this Config loads from and saves to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the file used by Load and Save.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Load reads the config file over the current values. A missing file is not
// an error.
func (c *Config) Load() error {
	if c.configPath == "" {
		return ErrNoConfigPath
	}

	data, err := os.ReadFile(c.configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", c.configPath, err)
	}

	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", c.configPath, err)
	}
	return nil
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save() error {
	if c.configPath == "" {
		return ErrNoConfigPath
	}

	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	tmp := c.configPath + ".tmp"
	if err = os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	if err = os.Rename(tmp, c.configPath); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing config file: %w", err)
	}
	return nil
}
