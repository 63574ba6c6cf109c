package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LoadingState is the spinner shown while a request is in flight.
type LoadingState struct {
	spinner spinner.Model
	message string
}

// NewLoadingState returns a spinner with the given message.
func NewLoadingState(message string, color lipgloss.Color) LoadingState {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(color)
	return LoadingState{spinner: s, message: message}
}

// Tick starts the spinner animation.
func (l LoadingState) Tick() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner.
func (l LoadingState) Update(msg tea.Msg) (LoadingState, tea.Cmd) {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return l, cmd
}

// WithMessage replaces the message.
func (l LoadingState) WithMessage(message string) LoadingState {
	l.message = message
	return l
}

// Message returns the current message.
func (l LoadingState) Message() string {
	return l.message
}

// View renders the spinner and message.
func (l LoadingState) View() string {
	return l.spinner.View() + " " + l.message
}
