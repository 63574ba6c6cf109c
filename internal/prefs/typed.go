package prefs

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/carbonhub-app/carbonhub/internal/logging"
)

// GetString returns the value for key, or def when missing or unreadable.
func GetString(ctx context.Context, s Store, key, def string) string {
	v, ok, err := s.Get(ctx, key)
	if err != nil {
		logReadFailure(ctx, key, err)
		return def
	}
	if !ok {
		return def
	}
	return v
}

// SetString stores a string value.
func SetString(ctx context.Context, s Store, key, value string) error {
	return s.Set(ctx, key, value)
}

// GetBool returns the boolean stored under key, or def.
func GetBool(ctx context.Context, s Store, key string, def bool) bool {
	v, ok := lookup(ctx, s, key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		logReadFailure(ctx, key, err)
		return def
	}
	return b
}

// SetBool stores a boolean as "true" or "false".
func SetBool(ctx context.Context, s Store, key string, value bool) error {
	return s.Set(ctx, key, strconv.FormatBool(value))
}

// GetNumber returns the number stored under key, or def.
func GetNumber(ctx context.Context, s Store, key string, def float64) float64 {
	v, ok := lookup(ctx, s, key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		logReadFailure(ctx, key, err)
		return def
	}
	return f
}

// SetNumber stores a number in its shortest decimal form.
func SetNumber(ctx context.Context, s Store, key string, value float64) error {
	return s.Set(ctx, key, strconv.FormatFloat(value, 'f', -1, 64))
}

// GetObject decodes the JSON stored under key into out. It reports whether a
// value was decoded; out is left untouched otherwise.
func GetObject(ctx context.Context, s Store, key string, out any) bool {
	v, ok := lookup(ctx, s, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(v), out); err != nil {
		logReadFailure(ctx, key, err)
		return false
	}
	return true
}

// SetObject stores value as JSON.
func SetObject(ctx context.Context, s Store, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding preference %q: %w", key, err)
	}
	return s.Set(ctx, key, string(data))
}

// Contains reports whether key is present. Read failures count as absent.
func Contains(ctx context.Context, s Store, key string) bool {
	_, ok := lookup(ctx, s, key)
	return ok
}

func lookup(ctx context.Context, s Store, key string) (string, bool) {
	v, ok, err := s.Get(ctx, key)
	if err != nil {
		logReadFailure(ctx, key, err)
		return "", false
	}
	return v, ok
}

func logReadFailure(ctx context.Context, key string, err error) {
	logging.FromContext(ctx).Warn().
		Ctx(ctx).
		Str("component", "prefs").
		Str("key", key).
		Err(err).
		Msg("reading preference failed, using default")
}
