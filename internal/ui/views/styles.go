package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title   lipgloss.Style
	Text    lipgloss.Style
	Editing lipgloss.Style
	Cursor  lipgloss.Style
	Help    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:   lipgloss.NewStyle(),
		Text:    lipgloss.NewStyle(),
		Editing: lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // yellow
		Cursor:  lipgloss.NewStyle().Reverse(true),
		Help:    lipgloss.NewStyle(),
	}
}
