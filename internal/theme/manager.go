package theme

import (
	"context"
	"fmt"

	"github.com/carbonhub-app/carbonhub/internal/logging"
	"github.com/carbonhub-app/carbonhub/internal/prefs"
)

// Manager loads and saves the theme preference.
type Manager struct {
	store    prefs.Store
	fallback Theme
}

// NewManager returns a Manager backed by store. fallback is used when no
// valid preference is saved; an empty fallback means Default.
func NewManager(store prefs.Store, fallback Theme) *Manager {
	if fallback != Light {
		fallback = Default
	}
	return &Manager{store: store, fallback: fallback}
}

// Load returns the saved theme. Missing, unreadable or unknown values yield
// the fallback; read failures are logged, not returned.
func (m *Manager) Load(ctx context.Context) Theme {
	saved, ok, err := m.store.Get(ctx, StorageKey)
	if err != nil {
		logging.FromContext(ctx).Warn().Ctx(ctx).
			Str("component", "theme").
			Err(err).
			Msg("loading theme preference failed, using default")
		return m.fallback
	}
	if !ok {
		return m.fallback
	}

	t, err := Parse(saved)
	if err != nil {
		logging.FromContext(ctx).Debug().Ctx(ctx).
			Str("component", "theme").
			Str("saved", saved).
			Msg("ignoring unknown saved theme")
		return m.fallback
	}
	return t
}

// Set saves t.
func (m *Manager) Set(ctx context.Context, t Theme) error {
	if _, err := Parse(string(t)); err != nil {
		return err
	}
	if err := m.store.Set(ctx, StorageKey, string(t)); err != nil {
		return fmt.Errorf("saving theme preference: %w", err)
	}
	return nil
}

// Toggle switches from the current theme to the other one, saves it and
// returns it.
func (m *Manager) Toggle(ctx context.Context) (Theme, error) {
	next := m.Load(ctx).Toggled()
	if err := m.Set(ctx, next); err != nil {
		return m.Load(ctx), err
	}
	return next, nil
}
