package autocomplete

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles maps each semantic role of the widget to a lipgloss style. One style
// per role; which style a row gets is a pure projection of the widget state.
type Styles struct {
	// Input styles the line holding the text input.
	Input lipgloss.Style

	// Wrapper styles the container around input and panel together.
	Wrapper lipgloss.Style

	// Panel styles the suggestion container while it is hidden. It is kept
	// as its own role so callers can theme the closed container, even
	// though a hidden panel takes no space in a terminal.
	Panel lipgloss.Style

	// PanelOpen styles the suggestion container while it is shown.
	PanelOpen lipgloss.Style

	// Item is the base style every generated row carries.
	Item lipgloss.Style

	// ItemVisible is layered over Item for rows matching the filter. Only
	// matching rows are rendered at all.
	ItemVisible lipgloss.Style

	// ItemActive is layered over ItemVisible for the highlighted row.
	ItemActive lipgloss.Style
}

// DefaultStyles returns the stock look. Callers override individual fields
// on the returned struct; unchanged roles keep their default.
func DefaultStyles() Styles {
	return Styles{
		Input:   lipgloss.NewStyle(),
		Wrapper: lipgloss.NewStyle(),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")),
		PanelOpen: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("62")),
		Item:        lipgloss.NewStyle(),
		ItemVisible: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true),
	}
}

// rowStyle resolves the style for one rendered row from its state.
func (s Styles) rowStyle(active bool) lipgloss.Style {
	base := s.ItemVisible.Inherit(s.Item)
	if active {
		return s.ItemActive.Inherit(base)
	}
	return base
}

// panelStyle resolves the container style from the panel state.
func (s Styles) panelStyle(open bool) lipgloss.Style {
	if open {
		return s.PanelOpen
	}
	return s.Panel
}
