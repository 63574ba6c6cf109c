package cache

import (
	"encoding/json"
	"errors"
	"time"
)

// Entry is one cached response body with its expiry metadata.
type Entry struct {
	Key string `json:"key"`

	// Source is the request the entry was stored for, kept for `cache info`.
	Source string `json:"source,omitempty"`

	Data       json.RawMessage `json:"data"`
	CreatedAt  time.Time       `json:"created_at"`
	ExpiresAt  time.Time       `json:"expires_at"`
	TTLSeconds int             `json:"ttl_seconds"`
}

func newEntry(key, source string, data json.RawMessage, ttl time.Duration, now time.Time) *Entry {
	return &Entry{
		Key:        key,
		Source:     source,
		Data:       data,
		CreatedAt:  now,
		ExpiresAt:  now.Add(ttl),
		TTLSeconds: int(ttl / time.Second),
	}
}

// ExpiredAt reports whether the entry has expired at t.
func (e *Entry) ExpiredAt(t time.Time) bool {
	return t.After(e.ExpiresAt)
}

// Age returns how long ago the entry was stored, relative to t.
func (e *Entry) Age(t time.Time) time.Duration {
	return t.Sub(e.CreatedAt)
}

// MarshalJSON writes timestamps as RFC3339 so entry files stay readable.
func (e *Entry) MarshalJSON() ([]byte, error) {
	type alias Entry
	return json.Marshal(&struct {
		*alias

		CreatedAt string `json:"created_at"`
		ExpiresAt string `json:"expires_at"`
	}{
		alias:     (*alias)(e),
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
		ExpiresAt: e.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

// UnmarshalJSON parses the RFC3339 timestamps written by MarshalJSON.
func (e *Entry) UnmarshalJSON(data []byte) error {
	if e == nil {
		return errors.New("cannot unmarshal into nil Entry")
	}
	type alias Entry
	aux := &struct {
		*alias

		CreatedAt string `json:"created_at"`
		ExpiresAt string `json:"expires_at"`
	}{
		alias: (*alias)(e),
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	var err error
	if e.CreatedAt, err = time.Parse(time.RFC3339, aux.CreatedAt); err != nil {
		return err
	}
	if e.ExpiresAt, err = time.Parse(time.RFC3339, aux.ExpiresAt); err != nil {
		return err
	}
	return nil
}
