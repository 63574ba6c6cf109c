package listview

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbers(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func renderInt(item int, selected bool) string {
	if selected {
		return fmt.Sprintf("> %d", item)
	}
	return fmt.Sprintf("  %d", item)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestNavigation(t *testing.T) {
	m := New(numbers(20), 5, 40, renderInt)

	m.Update(key("down"))
	m.Update(key("j"))
	assert.Equal(t, 2, m.Cursor())

	m.Update(key("k"))
	assert.Equal(t, 1, m.Cursor())

	m.Update(key("pgdown"))
	assert.Equal(t, 6, m.Cursor())
	from, to := m.VisibleRange()
	assert.Equal(t, 2, from)
	assert.Equal(t, 7, to)

	m.Update(key("end"))
	assert.Equal(t, 19, m.Cursor())
	from, to = m.VisibleRange()
	assert.Equal(t, 15, from)
	assert.Equal(t, 20, to)

	m.Update(key("down"))
	assert.Equal(t, 19, m.Cursor(), "cursor stops at the end")

	m.Update(key("home"))
	assert.Equal(t, 0, m.Cursor())
	m.Update(key("up"))
	assert.Equal(t, 0, m.Cursor())
}

func TestView(t *testing.T) {
	m := New(numbers(10), 3, 40, renderInt)
	m.SetCursor(1)

	assert.Equal(t, "  0\n> 1\n  2", m.View())

	m.SetCursor(5)
	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "> 5", lines[2])
}

func TestSetItemsClampsCursor(t *testing.T) {
	m := New(numbers(10), 4, 40, renderInt)
	m.SetCursor(9)

	m.SetItems(numbers(3))
	assert.Equal(t, 2, m.Cursor())
	item, ok := m.SelectedItem()
	require.True(t, ok)
	assert.Equal(t, 2, item)

	m.SetItems(nil)
	assert.Equal(t, 0, m.Cursor())
	assert.Empty(t, m.View())
	_, ok = m.SelectedItem()
	assert.False(t, ok)
}

func TestWindowResize(t *testing.T) {
	m := New(numbers(50), 10, 40, renderInt)
	m.SetCursor(30)

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 4})
	assert.Equal(t, 100, m.Width())
	from, to := m.VisibleRange()
	assert.LessOrEqual(t, from, 30)
	assert.Greater(t, to, 30)
	assert.Equal(t, 4, to-from)
}
