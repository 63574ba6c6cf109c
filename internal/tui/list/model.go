package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc renders one item. selected is true for the cursor row.
type RenderFunc[T any] func(item T, selected bool) string

// Model is a scrolling list of T. The zero height shows a single row.
type Model[T any] struct {
	items  []T
	render RenderFunc[T]

	cursor int
	offset int
	height int
	width  int
}

// New returns a list showing height rows.
func New[T any](items []T, height, width int, render RenderFunc[T]) *Model[T] {
	m := &Model[T]{render: render, width: width}
	m.SetHeight(height)
	m.SetItems(items)
	return m
}

// Init implements tea.Model.
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys and window resizes.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKey(msg.String())
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.SetHeight(msg.Height)
	}
	return m, nil
}

func (m *Model[T]) handleKey(key string) {
	switch key {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "pgup":
		m.move(-m.height)
	case "pgdown":
		m.move(m.height)
	case "home", "g":
		m.SetCursor(0)
	case "end", "G":
		m.SetCursor(len(m.items) - 1)
	}
}

func (m *Model[T]) move(delta int) {
	m.SetCursor(m.cursor + delta)
}

// SetItems replaces the items, keeping the cursor in range.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.SetCursor(m.cursor)
}

// SetRender replaces the row renderer.
func (m *Model[T]) SetRender(render RenderFunc[T]) {
	m.render = render
}

// Items returns the current items.
func (m *Model[T]) Items() []T {
	return m.items
}

// SetHeight changes the number of visible rows.
func (m *Model[T]) SetHeight(height int) {
	m.height = max(height, 1)
	m.scrollToCursor()
}

// SetCursor moves the cursor to index, clamped to the list.
func (m *Model[T]) SetCursor(index int) {
	m.cursor = min(max(index, 0), max(len(m.items)-1, 0))
	m.scrollToCursor()
}

// scrollToCursor moves the window the least amount that keeps the cursor
// visible.
func (m *Model[T]) scrollToCursor() {
	switch {
	case m.cursor < m.offset:
		m.offset = m.cursor
	case m.cursor >= m.offset+m.height:
		m.offset = m.cursor - m.height + 1
	}
	maxOffset := max(len(m.items)-m.height, 0)
	m.offset = min(max(m.offset, 0), maxOffset)
}

// View renders the visible rows joined by newlines.
func (m *Model[T]) View() string {
	from, to := m.VisibleRange()
	if from == to {
		return ""
	}

	var b strings.Builder
	for i := from; i < to; i++ {
		if i > from {
			b.WriteByte('\n')
		}
		b.WriteString(m.render(m.items[i], i == m.cursor))
	}
	return b.String()
}

// VisibleRange returns the rendered item indexes [from, to).
func (m *Model[T]) VisibleRange() (int, int) {
	return m.offset, min(m.offset+m.height, len(m.items))
}

// Cursor returns the selected index.
func (m *Model[T]) Cursor() int {
	return m.cursor
}

// Len returns the number of items.
func (m *Model[T]) Len() int {
	return len(m.items)
}

// Width returns the last known viewport width.
func (m *Model[T]) Width() int {
	return m.width
}

// SelectedItem returns the item under the cursor, or false for an empty list.
func (m *Model[T]) SelectedItem() (T, bool) {
	var zero T
	if len(m.items) == 0 {
		return zero, false
	}
	return m.items[m.cursor], true
}
