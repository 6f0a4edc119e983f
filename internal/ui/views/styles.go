package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the demo chrome. The widget
// brings its own styles; these only cover what is rendered around it.
type Styles struct {
	Title     lipgloss.Style
	Dim       lipgloss.Style
	Status    lipgloss.Style
	Selection lipgloss.Style
	Warning   lipgloss.Style
	Main      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Selection: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),
		Main: lipgloss.NewStyle().Padding(1, 2),
	}
}
