package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Title         string
	WidgetView    string
	ListName      string
	ItemCount     int
	Selection     string
	StatusMessage string
	Detached      bool
	ShowStatusBar bool
	HelpModel     help.Model
	Keys          help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// WidgetOrigin reports the cell where the widget's first line is drawn.
// Mouse hit testing in the widget relies on this matching Render's layout.
func (r *Renderer) WidgetOrigin() (x, y int) {
	// 2 columns of container padding; rows: padding, title, blank line.
	return 2, 3
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	logo := r.styles.Title.Render(state.Title)

	// Build the title line with a right-aligned list indicator
	listIndicator := ""
	if state.ListName != "" {
		listIndicator = r.styles.Dim.Render(fmt.Sprintf("[list: %s (%d)]", state.ListName, state.ItemCount))
	}

	var titleLine string
	if listIndicator != "" {
		logoWidth := lipgloss.Width(logo)
		rightWidth := lipgloss.Width(listIndicator)

		termWidth := state.Width
		if termWidth <= 0 {
			termWidth = 80 // Default terminal width
		}
		availableWidth := termWidth - 4 // Account for main container padding
		paddingWidth := availableWidth - logoWidth - rightWidth

		if paddingWidth > 0 {
			padding := strings.Repeat(" ", paddingWidth)
			titleLine = fmt.Sprintf("%s%s%s", logo, padding, listIndicator)
		} else {
			titleLine = fmt.Sprintf("%s  %s", logo, listIndicator)
		}
	} else {
		titleLine = logo
	}

	content.WriteString(titleLine)
	content.WriteString("\n")
	content.WriteString("\n")

	// Main content
	if state.Detached {
		content.WriteString(r.styles.Warning.Render("Widget detached. Press ctrl+r to re-attach."))
	} else {
		content.WriteString(state.WidgetView)
	}
	content.WriteString("\n")
	content.WriteString("\n")

	if state.Selection != "" {
		content.WriteString(r.styles.Dim.Render("Last pick: "))
		content.WriteString(r.styles.Selection.Render(state.Selection))
		content.WriteString("\n")
	}

	// Status bar plus help footer, pinned to the bottom of the terminal
	footer := ""
	if state.ShowStatusBar && state.StatusMessage != "" {
		footer = r.styles.Status.Render(state.StatusMessage) + "\n"
	}
	if state.Keys != nil {
		footer += state.HelpModel.View(state.Keys)
	}

	if footer != "" {
		currentLines := strings.Count(content.String(), "\n") + 1
		footerLines := strings.Count(footer, "\n") + 1

		// Account for container padding (1 top, 1 bottom from Padding(1, 2))
		availableLines := state.Height - 2
		if availableLines <= 0 {
			availableLines = 22 // Default terminal height minus padding
		}

		paddingNeeded := availableLines - currentLines - footerLines
		if paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}
		content.WriteString(footer)
	}

	return r.styles.Main.Render(content.String())
}
