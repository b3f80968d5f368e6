package views

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/microcosm-cc/bluemonday"

	"hnsearch/internal/domain"
)

const itemURLPrefix = "https://news.ycombinator.com/item?id="

// DetailRenderer renders one hit as plain text for the pager
type DetailRenderer struct {
	styles      *Styles
	mdConverter *converter.Converter
	policy      *bluemonday.Policy
}

// NewDetailRenderer creates a new detail renderer
func NewDetailRenderer(styles *Styles) *DetailRenderer {
	return &DetailRenderer{
		styles: styles,
		mdConverter: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
			),
		),
		policy: bluemonday.UGCPolicy(),
	}
}

// Render returns the story header followed by its text as markdown
func (d *DetailRenderer) Render(hit domain.Hit) string {
	var b strings.Builder

	b.WriteString(d.styles.Title.Render(hit.Title))
	b.WriteString("\n\n")
	if link := printableURL(hit.URL); link != "" {
		fmt.Fprintf(&b, "%s\n", link)
	}
	fmt.Fprintf(&b, "%s\n", d.styles.Dim.Render(itemURLPrefix+hit.ObjectID))
	b.WriteString("\n")

	meta := fmt.Sprintf("%d points by %s", hit.Points, hit.Author)
	if !hit.CreatedAt.IsZero() {
		meta += " on " + hit.CreatedAt.UTC().Format("2006-01-02 15:04")
	}
	meta += fmt.Sprintf(" | %d comments", hit.NumComments)
	b.WriteString(d.styles.Author.Render(meta))
	b.WriteString("\n")

	if text := d.storyText(hit); text != "" {
		b.WriteString("\n")
		b.WriteString(text)
		b.WriteString("\n")
	}

	return b.String()
}

// storyText converts the story's HTML body to markdown, falling back to
// stripped plain text when conversion fails
func (d *DetailRenderer) storyText(hit domain.Hit) string {
	if strings.TrimSpace(hit.StoryText) == "" {
		return ""
	}
	safe := d.policy.Sanitize(hit.StoryText)

	var md string
	var err error
	if link := printableURL(hit.URL); link != "" {
		md, err = d.mdConverter.ConvertString(safe, converter.WithDomain(link))
	} else {
		md, err = d.mdConverter.ConvertString(safe)
	}
	if err != nil || strings.TrimSpace(md) == "" {
		md = bluemonday.StrictPolicy().Sanitize(hit.StoryText)
	}
	return stripControl(strings.TrimSpace(md))
}

// stripControl drops terminal control characters, keeping line breaks
func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
