package cache

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// TTL bounds and environment overrides.
const (
	DefaultTTLSeconds = 3600
	MinTTLSeconds     = 60
	MaxTTLSeconds     = 604800

	minutesPerHour = 60
	hoursPerDay    = 24

	EnvTTLSeconds   = "CARBONHUB_CACHE_TTL_SECONDS"
	EnvCacheEnabled = "CARBONHUB_CACHE_ENABLED"
	EnvCacheDir     = "CARBONHUB_CACHE_DIR"
)

// ErrInvalidTTL reports a TTL outside the allowed range.
var ErrInvalidTTL = fmt.Errorf("TTL must be between %d and %d seconds", MinTTLSeconds, MaxTTLSeconds)

// ValidateTTL checks seconds against the allowed range.
func ValidateTTL(seconds int) error {
	if seconds < MinTTLSeconds || seconds > MaxTTLSeconds {
		return fmt.Errorf("%w: got %d", ErrInvalidTTL, seconds)
	}
	return nil
}

// ParseTTL parses "3600" (seconds) or a Go duration such as "30m" or "1h30m".
func ParseTTL(s string) (int, error) {
	if seconds, err := strconv.Atoi(s); err == nil {
		if err = ValidateTTL(seconds); err != nil {
			return 0, err
		}
		return seconds, nil
	}

	duration, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid TTL format: %w", err)
	}

	seconds := int(duration.Seconds())
	if err = ValidateTTL(seconds); err != nil {
		return 0, err
	}
	return seconds, nil
}

// ApplyEnv overrides opts from CARBONHUB_CACHE_* variables. Invalid values
// leave the field unchanged.
func ApplyEnv(opts Options) Options {
	if v := os.Getenv(EnvTTLSeconds); v != "" {
		if ttl, err := strconv.Atoi(v); err == nil && ValidateTTL(ttl) == nil {
			opts.TTL = time.Duration(ttl) * time.Second
		}
	}
	if v := os.Getenv(EnvCacheEnabled); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			opts.Enabled = enabled
		}
	}
	if v := os.Getenv(EnvCacheDir); v != "" {
		opts.Directory = v
	}
	return opts
}

// FormatDuration renders d compactly: "45s", "30m", "1h30m", "2d3h".
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
	if d < time.Hour {
		return fmt.Sprintf("%.0fm", d.Minutes())
	}
	if d < hoursPerDay*time.Hour {
		hours := int(d.Hours())
		minutes := int(d.Minutes()) % minutesPerHour
		if minutes == 0 {
			return fmt.Sprintf("%dh", hours)
		}
		return fmt.Sprintf("%dh%dm", hours, minutes)
	}
	days := int(d.Hours()) / hoursPerDay
	hours := int(d.Hours()) % hoursPerDay
	if hours == 0 {
		return fmt.Sprintf("%dd", days)
	}
	return fmt.Sprintf("%dd%dh", days, hours)
}
