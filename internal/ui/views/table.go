package views

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"hnsearch/internal/domain"
)

const (
	authorWidth   = 16
	countWidth    = 8
	minTitleWidth = 10
	columnGap     = 2
)

// TableRenderer handles rendering of result rows
type TableRenderer struct {
	styles     *Styles
	hyperlinks bool
}

// NewTableRenderer creates a new table renderer. With hyperlinks set, titles
// carry an OSC 8 link to the story URL.
func NewTableRenderer(styles *Styles, hyperlinks bool) *TableRenderer {
	return &TableRenderer{
		styles:     styles,
		hyperlinks: hyperlinks,
	}
}

// titleWidth returns the width left for the title column
func titleWidth(width int) int {
	w := width - authorWidth - 2*countWidth - 3*columnGap
	if w < minTitleWidth {
		return minTitleWidth
	}
	return w
}

// RenderHeader renders the column headings
func (t *TableRenderer) RenderHeader(width int) string {
	tw := titleWidth(width)
	line := pad("Title", tw) + gap() +
		pad("Author", authorWidth) + gap() +
		padLeft("Comments", countWidth) + gap() +
		padLeft("Points", countWidth)
	return t.styles.Header.Render(line)
}

// RenderRow renders one hit
func (t *TableRenderer) RenderRow(hit domain.Hit, isSelected bool, width int) string {
	tw := titleWidth(width)

	bg := lipgloss.NewStyle()
	if isSelected {
		bg = t.styles.SelectionBg
	}

	title := bg.Render(pad(truncate(hit.Title, tw), tw))
	if link := printableURL(hit.URL); t.hyperlinks && link != "" {
		title = hyperlink(link, title)
	}

	parts := []string{
		title,
		bg.Render(gap()),
		t.styles.Author.Inherit(bg).Render(pad(truncate(hit.Author, authorWidth), authorWidth)),
		bg.Render(gap()),
		t.styles.Count.Inherit(bg).Render(padLeft(strconv.Itoa(hit.NumComments), countWidth)),
		bg.Render(gap()),
		t.styles.Count.Inherit(bg).Render(padLeft(strconv.Itoa(hit.Points), countWidth)),
	}
	return strings.Join(parts, "")
}

// RenderRows renders the visible window of hits with scroll indicators
func (t *TableRenderer) RenderRows(hits []domain.Hit, selectedIndex, offset, height, width int) string {
	total := len(hits)
	if height < 1 {
		height = total
	}

	needsTopIndicator := offset > 0
	needsBottomIndicator := offset+height < total

	effectiveHeight := height
	if needsTopIndicator {
		effectiveHeight--
	}
	if needsBottomIndicator {
		effectiveHeight--
	}
	if effectiveHeight < 1 {
		effectiveHeight = 1
	}

	var lines []string
	if needsTopIndicator {
		lines = append(lines, t.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", offset)))
	}

	end := offset + effectiveHeight
	if end > total {
		end = total
	}
	for i := offset; i < end; i++ {
		lines = append(lines, t.RenderRow(hits[i], i == selectedIndex, width))
	}

	if below := total - end; below > 0 {
		lines = append(lines, t.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", below)))
	}

	return strings.Join(lines, "\n")
}

func gap() string {
	return strings.Repeat(" ", columnGap)
}

// truncate shortens s to width cells, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func padLeft(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}

// printableURL returns u, or "" when it holds control characters that would
// break out of an escape sequence
func printableURL(u string) string {
	if strings.IndexFunc(u, unicode.IsControl) >= 0 {
		return ""
	}
	return u
}

// hyperlink wraps text in an OSC 8 terminal hyperlink
func hyperlink(url, text string) string {
	return "\x1b]8;;" + url + "\x1b\\" + text + "\x1b]8;;\x1b\\"
}
