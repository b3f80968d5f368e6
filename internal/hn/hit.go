package hn

import (
	"net/url"
	"strings"
	"time"
	"unicode"

	"hnsearch/internal/domain"
)

// searchResponse mirrors the subset of the Algolia response we read.
// Title, url and the counters are null for comment hits.
type searchResponse struct {
	Hits        []hitJSON `json:"hits"`
	Page        int       `json:"page"`
	NbPages     int       `json:"nbPages"`
	NbHits      int       `json:"nbHits"`
	HitsPerPage int       `json:"hitsPerPage"`
}

type hitJSON struct {
	ObjectID    string  `json:"objectID"`
	Title       *string `json:"title"`
	URL         *string `json:"url"`
	Author      string  `json:"author"`
	NumComments *int    `json:"num_comments"`
	Points      *int    `json:"points"`
	StoryText   *string `json:"story_text"`
	StoryTitle  *string `json:"story_title"`
	StoryURL    *string `json:"story_url"`
	CreatedAt   string  `json:"created_at"`
}

func (h hitJSON) toDomain() domain.Hit {
	title := deref(h.Title)
	if title == "" {
		title = deref(h.StoryTitle)
	}
	link := deref(h.URL)
	if link == "" {
		link = deref(h.StoryURL)
	}

	hit := domain.Hit{
		ObjectID:    h.ObjectID,
		Title:       cleanText(title),
		URL:         cleanURL(link),
		Author:      cleanText(h.Author),
		NumComments: derefInt(h.NumComments),
		Points:      derefInt(h.Points),
		StoryText:   deref(h.StoryText),
	}
	if t, err := time.Parse(time.RFC3339, h.CreatedAt); err == nil {
		hit.CreatedAt = t
	}
	return hit
}

func (r searchResponse) toDomain() domain.SearchResultPage {
	page := domain.SearchResultPage{
		Hits:    make([]domain.Hit, 0, len(r.Hits)),
		Page:    r.Page,
		NbPages: r.NbPages,
		NbHits:  r.NbHits,
	}
	for _, h := range r.Hits {
		page.Hits = append(page.Hits, h.toDomain())
	}
	return page
}

// cleanText removes control characters from plain single-line text.
// Titles and authors are not HTML, so angle brackets and entities stay as sent.
func cleanText(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return ' '
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

// cleanURL returns s when it is an absolute http or https URL free of
// control characters, and "" otherwise
func cleanURL(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.IndexFunc(s, unicode.IsControl) >= 0 {
		return ""
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
