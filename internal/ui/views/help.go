package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

var helpSections = []helpSection{
	{"Navigation", []helpEntry{
		{"↑/↓, j/k", "Move up/down"},
		{"PgUp/PgDn", "Page up/down"},
		{"g/G", "Go to top/bottom"},
	}},
	{"Search", []helpEntry{
		{"/", "Edit the search term"},
		{"Enter", "Submit (while editing)"},
		{"Esc", "Stop editing"},
	}},
	{"Results", []helpEntry{
		{"d/x", "Dismiss selected story"},
		{"m", "Load more results"},
		{"v/Enter", "Open story details"},
	}},
	{"Other", []helpEntry{
		{"?", "Toggle this help"},
		{"q", "Quit"},
	}},
}

// RenderHelpContent renders the key reference
func RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99"))

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	keyWidth := 0
	for _, section := range helpSections {
		for _, e := range section.entries {
			if w := lipgloss.Width(e.keys); w > keyWidth {
				keyWidth = w
			}
		}
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render("hnsearch Help"))
	help.WriteString("\n")

	for i, section := range helpSections {
		help.WriteString("\n")
		help.WriteString(sectionStyle.Render(section.title))
		help.WriteString("\n")
		for j, e := range section.entries {
			padding := strings.Repeat(" ", keyWidth-lipgloss.Width(e.keys)+2)
			fmt.Fprintf(&help, "  %s%s%s", keyStyle.Render(e.keys), padding, descStyle.Render(e.desc))
			if i < len(helpSections)-1 || j < len(section.entries)-1 {
				help.WriteString("\n")
			}
		}
	}

	return help.String()
}
