package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Prompt      lipgloss.Style
	Header      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Scroll      lipgloss.Style
	InfoBox     lipgloss.Style
	SelectionBg lipgloss.Style
	Author      lipgloss.Style
	Count       lipgloss.Style
	Loading     lipgloss.Style
	Error       lipgloss.Style
	More        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Author:      lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Count:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Loading:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		More:        lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	}
}
