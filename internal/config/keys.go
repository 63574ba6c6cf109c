package config

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

type keyAccessor struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

func stringKey(field func(c *Config) *string) keyAccessor {
	return keyAccessor{
		get: func(c *Config) string { return *field(c) },
		set: func(c *Config, v string) error {
			*field(c) = v
			return nil
		},
	}
}

func intKey(field func(c *Config) *int) keyAccessor {
	return keyAccessor{
		get: func(c *Config) string { return strconv.Itoa(*field(c)) },
		set: func(c *Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %q is not an integer", ErrInvalidValue, v)
			}
			*field(c) = n
			return nil
		},
	}
}

func boolKey(field func(c *Config) *bool) keyAccessor {
	return keyAccessor{
		get: func(c *Config) string { return strconv.FormatBool(*field(c)) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%w: %q is not a boolean", ErrInvalidValue, v)
			}
			*field(c) = b
			return nil
		},
	}
}

func floatKey(field func(c *Config) *float64) keyAccessor {
	return keyAccessor{
		get: func(c *Config) string { return strconv.FormatFloat(*field(c), 'f', -1, 64) },
		set: func(c *Config, v string) error {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%w: %q is not a number", ErrInvalidValue, v)
			}
			*field(c) = f
			return nil
		},
	}
}

//nolint:gochecknoglobals // Static lookup table of dotted configuration keys.
var keyTable = map[string]keyAccessor{
	"api.base_url":          stringKey(func(c *Config) *string { return &c.API.BaseURL }),
	"api.timeout_seconds":   intKey(func(c *Config) *int { return &c.API.TimeoutSeconds }),
	"api.retries":           intKey(func(c *Config) *int { return &c.API.Retries }),
	"api.rate_limit":        floatKey(func(c *Config) *float64 { return &c.API.RateLimit }),
	"api.burst":             intKey(func(c *Config) *int { return &c.API.Burst }),
	"cache.enabled":         boolKey(func(c *Config) *bool { return &c.Cache.Enabled }),
	"cache.ttl_seconds":     intKey(func(c *Config) *int { return &c.Cache.TTLSeconds }),
	"cache.directory":       stringKey(func(c *Config) *string { return &c.Cache.Directory }),
	"logging.level":         stringKey(func(c *Config) *string { return &c.Logging.Level }),
	"logging.format":        stringKey(func(c *Config) *string { return &c.Logging.Format }),
	"logging.file":          stringKey(func(c *Config) *string { return &c.Logging.File }),
	"output.default_format": stringKey(func(c *Config) *string { return &c.Output.DefaultFormat }),
	"output.precision":      intKey(func(c *Config) *int { return &c.Output.Precision }),
	"output.export_dir":     stringKey(func(c *Config) *string { return &c.Output.ExportDir }),
	"theme.default":         stringKey(func(c *Config) *string { return &c.Theme.Default }),
}

// Keys returns every settable dotted key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(keyTable))
	for k := range keyTable {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value of a dotted key such as "api.base_url".
func (c *Config) Get(key string) (string, error) {
	acc, ok := keyTable[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return acc.get(c), nil
}

// Set assigns a dotted key from its string form. When the new value fails
// validation the previous value is restored. Problems in other keys do not
// block the update.
func (c *Config) Set(key, value string) error {
	acc, ok := keyTable[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	prev := acc.get(c)
	if err := acc.set(c, value); err != nil {
		return err
	}
	var verr *ValidationError
	if err := c.Validate(); errors.As(err, &verr) {
		if msg, bad := verr.Fields[key]; bad {
			_ = acc.set(c, prev)
			return fmt.Errorf("%w: %s %s", ErrInvalidValue, key, msg)
		}
	}
	return nil
}

// List returns every key with its current value.
func (c *Config) List() map[string]string {
	out := make(map[string]string, len(keyTable))
	for k, acc := range keyTable {
		out[k] = acc.get(c)
	}
	return out
}
