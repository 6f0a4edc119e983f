package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// helpContent generates the full help text with colors for the pager
func helpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("Typeahead Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Suggestions"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("typing"), descStyle.Render("Filter the suggestion list")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("↑/↓"), descStyle.Render("Move the highlight (wraps around)")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("Enter"), descStyle.Render("Commit the highlighted suggestion")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("click"), descStyle.Render("Commit a row; clicking elsewhere dismisses the panel")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Lists"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("Tab"), descStyle.Render("Cycle through the configured suggestion lists")))
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("ctrl+y"), descStyle.Render("Copy the input text to the clipboard")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Lifecycle"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("ctrl+d"), descStyle.Render("Detach the widget, leaving a plain input")))
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("ctrl+r"), descStyle.Render("Re-attach the widget")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("ctrl+g"), descStyle.Render("Show this help")))
	help.WriteString(fmt.Sprintf("  %s %s", keyStyle.Render("esc/ctrl+c"), descStyle.Render("Quit")))

	return help.String()
}

// showHelpInPager shows help content using ov pager
func (m *Model) showHelpInPager(content string) error {
	if m.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := m.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = m.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	reader := strings.NewReader(content)

	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false

	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}
