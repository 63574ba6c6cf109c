package theme

import (
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carbonhub-app/carbonhub/internal/prefs"
)

type brokenStore struct{ *prefs.MemoryStore }

var errBroken = errors.New("disk on fire")

func (brokenStore) Get(context.Context, string) (string, bool, error) { return "", false, errBroken }
func (brokenStore) Set(context.Context, string, string) error         { return errBroken }

func TestParse(t *testing.T) {
	got, err := Parse(" LIGHT ")
	require.NoError(t, err)
	assert.Equal(t, Light, got)

	got, err = Parse("dark")
	require.NoError(t, err)
	assert.Equal(t, Dark, got)

	_, err = Parse("sepia")
	require.ErrorIs(t, err, ErrUnknownTheme)
}

func TestPalettes(t *testing.T) {
	dark := Dark.Palette()
	assert.Equal(t, lipgloss.Color("#0f172a"), dark.Background)
	assert.Equal(t, lipgloss.Color("#f8fafc"), dark.Text)

	light := Light.Palette()
	assert.Equal(t, lipgloss.Color("#ffffff"), light.Background)
	assert.Equal(t, lipgloss.Color("#e2e8f0"), light.Border)

	assert.Equal(t, dark.Primary, light.Primary)
	assert.Equal(t, dark.Destructive, light.Destructive)
}

func TestToggled(t *testing.T) {
	assert.Equal(t, Light, Dark.Toggled())
	assert.Equal(t, Dark, Light.Toggled())
	assert.True(t, Dark.IsDark())
	assert.False(t, Light.IsDark())
}

func TestManager(t *testing.T) {
	ctx := context.Background()
	store := prefs.NewMemoryStore()
	m := NewManager(store, "")

	assert.Equal(t, Dark, m.Load(ctx), "dark when nothing is saved")

	next, err := m.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, Light, next)
	saved, ok, err := store.Get(ctx, StorageKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", saved)

	next, err = m.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, Dark, next)

	require.NoError(t, m.Set(ctx, Light))
	assert.Equal(t, Light, m.Load(ctx))

	require.ErrorIs(t, m.Set(ctx, Theme("neon")), ErrUnknownTheme)
}

func TestManager_Fallbacks(t *testing.T) {
	ctx := context.Background()

	store := prefs.NewMemoryStore()
	require.NoError(t, store.Set(ctx, StorageKey, "purple"))
	assert.Equal(t, Dark, NewManager(store, Dark).Load(ctx), "unknown saved value")
	assert.Equal(t, Light, NewManager(prefs.NewMemoryStore(), Light).Load(ctx), "configured fallback")

	broken := NewManager(brokenStore{prefs.NewMemoryStore()}, Dark)
	assert.Equal(t, Dark, broken.Load(ctx))

	got, err := broken.Toggle(ctx)
	require.ErrorIs(t, err, errBroken)
	assert.Equal(t, Dark, got, "theme unchanged when saving fails")
}
