package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hnsearch/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	SearchKey      string
	SearchTerm     string
	SearchInput    string // rendered text field while editing, empty otherwise
	Hits           []domain.Hit
	HasEntry       bool
	HasMore        bool // another page can be requested
	NbHits         int
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int
	IsLoading      bool
	IsLoadingMore  bool
	Err            error
	ShowHelp       bool
	PopupContent   string
	StatusMessage  string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	tableRender *TableRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(hyperlinks bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		tableRender: NewTableRenderer(styles, hyperlinks),
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles exposes the palette shared with the detail renderer
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// ChromeLines is the number of lines the layout uses around the table rows:
// container padding, title, search line, blanks, header, More line and help hint
const ChromeLines = 10

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.ShowHelp {
		return r.popupRender.RenderPopup(RenderHelpContent(), state.Height, state.Width)
	}
	if state.PopupContent != "" {
		return r.popupRender.RenderPopup(state.PopupContent, state.Height, state.Width)
	}

	content := &strings.Builder{}

	content.WriteString(r.renderTitleLine(state))
	content.WriteString("\n")
	content.WriteString(r.renderSearchLine(state))
	content.WriteString("\n\n")

	if state.Err != nil {
		content.WriteString(r.styles.Error.Render(ErrorText))
	} else {
		content.WriteString(r.renderTable(state))
	}

	content.WriteString("\n\n")
	content.WriteString(r.renderMoreLine(state))

	helpText := r.styles.Help.Render("Press ? for help")
	if state.StatusMessage != "" {
		helpText = r.styles.Dim.Render(state.StatusMessage) + "  " + helpText
	}

	// pad so the help hint sits on the last line
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22
	}
	if paddingNeeded := availableLines - currentLines - 1; paddingNeeded > 0 {
		content.WriteString(strings.Repeat("\n", paddingNeeded))
	}
	content.WriteString("\n")
	content.WriteString(helpText)

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

func (r *Renderer) renderTitleLine(state ViewState) string {
	logo := r.styles.Title.Render("hnsearch")
	if !state.HasEntry {
		return logo
	}

	right := r.styles.Dim.Render(fmt.Sprintf("%d of %d stories for %q", len(state.Hits), state.NbHits, state.SearchKey))
	padding := contentWidth(state.Width) - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

func (r *Renderer) renderSearchLine(state ViewState) string {
	var line string
	if state.SearchInput != "" {
		line = state.SearchInput
	} else {
		term := state.SearchTerm
		if term == "" {
			term = r.styles.Dim.Render("(empty)")
		}
		line = r.styles.Prompt.Render("Search: ") + term
	}

	if state.IsLoading && state.Err == nil {
		line += "  " + r.RenderLoading()
	}
	return line
}

func (r *Renderer) renderTable(state ViewState) string {
	width := contentWidth(state.Width)
	header := r.tableRender.RenderHeader(width)
	if len(state.Hits) == 0 {
		if state.HasEntry {
			return header + "\n" + r.styles.Dim.Render("No stories.")
		}
		return header
	}
	rows := r.tableRender.RenderRows(state.Hits, state.SelectedIndex, state.ViewportOffset, state.ViewportHeight, width)
	return header + "\n" + rows
}

func (r *Renderer) renderMoreLine(state ViewState) string {
	var parts []string
	if state.IsLoadingMore {
		parts = append(parts, r.RenderLoading())
	}
	if state.HasEntry && state.HasMore {
		parts = append(parts, r.styles.More.Render(MoreText))
	}
	return strings.Join(parts, "  ")
}

// contentWidth is the terminal width inside the main container padding
func contentWidth(width int) int {
	if width <= 0 {
		width = 80
	}
	return width - 4
}
