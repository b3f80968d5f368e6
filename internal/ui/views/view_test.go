package views

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hnsearch/internal/domain"
)

func sampleHits() []domain.Hit {
	return []domain.Hit{
		{ObjectID: "1", Title: "Show HN: A thing", URL: "https://a.example", Author: "alice", NumComments: 12, Points: 99},
		{ObjectID: "2", Title: "Ask HN: Another", Author: "bob", NumComments: 3, Points: 7},
	}
}

func baseState() ViewState {
	return ViewState{
		Width:          100,
		Height:         30,
		SearchKey:      "react",
		SearchTerm:     "react",
		Hits:           sampleHits(),
		HasEntry:       true,
		HasMore:        true,
		NbHits:         2,
		ViewportHeight: 10,
	}
}

func TestRenderShowsRowsAndMore(t *testing.T) {
	out := NewRenderer(false).Render(baseState())

	assert.Contains(t, out, "Show HN: A thing")
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "Ask HN: Another")
	assert.Contains(t, out, MoreText)
	assert.Contains(t, out, "Search: react")
	assert.NotContains(t, out, LoadingText)
}

func TestRenderLoadingNextToSearch(t *testing.T) {
	s := baseState()
	s.IsLoading = true
	out := NewRenderer(false).Render(s)

	assert.Contains(t, out, LoadingText)
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, LoadingText) {
			assert.Contains(t, line, "Search:")
		}
	}
}

func TestRenderErrorReplacesTable(t *testing.T) {
	s := baseState()
	s.IsLoading = true
	s.Err = errors.New("boom")
	out := NewRenderer(false).Render(s)

	assert.Contains(t, out, ErrorText)
	assert.NotContains(t, out, "Show HN: A thing")
	assert.NotContains(t, out, LoadingText, "loading is hidden while an error is shown")
}

func TestRenderLoadingMoreKeepsMoreControl(t *testing.T) {
	s := baseState()
	s.IsLoadingMore = true
	out := NewRenderer(false).Render(s)

	assert.Contains(t, out, LoadingText)
	assert.Contains(t, out, MoreText)
}

func TestRenderWithoutEntryHasNoMoreControl(t *testing.T) {
	s := baseState()
	s.Hits = nil
	s.HasEntry = false
	s.IsLoading = true
	out := NewRenderer(false).Render(s)

	assert.NotContains(t, out, MoreText)
	assert.Contains(t, out, "Title")
}

func TestRenderLastPageHasNoMoreControl(t *testing.T) {
	s := baseState()
	s.HasMore = false
	out := NewRenderer(false).Render(s)

	assert.NotContains(t, out, MoreText)
	assert.Contains(t, out, "Show HN: A thing")
}

func TestRenderEditingShowsInput(t *testing.T) {
	s := baseState()
	s.SearchInput = "Search: golang_"
	out := NewRenderer(false).Render(s)

	assert.Contains(t, out, "Search: golang_")
}

func TestRenderHelpPopup(t *testing.T) {
	s := baseState()
	s.ShowHelp = true
	out := NewRenderer(false).Render(s)

	assert.Contains(t, out, "hnsearch Help")
	assert.Contains(t, out, "Dismiss selected story")
}

func TestRenderRowsScrollIndicators(t *testing.T) {
	hits := make([]domain.Hit, 20)
	for i := range hits {
		hits[i] = domain.Hit{ObjectID: string(rune('a' + i)), Title: "story"}
	}
	r := NewTableRenderer(NewStyles(), false)

	out := r.RenderRows(hits, 5, 3, 6, 80)
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 6)
	assert.Contains(t, lines[0], "3 more above")
	assert.Contains(t, lines[5], "13 more below")
}

func TestRenderRowHyperlink(t *testing.T) {
	r := NewTableRenderer(NewStyles(), true)
	row := r.RenderRow(sampleHits()[0], false, 80)

	assert.Contains(t, row, "\x1b]8;;https://a.example\x1b\\")

	// no link without a URL
	row = r.RenderRow(sampleHits()[1], false, 80)
	assert.NotContains(t, row, "\x1b]8;;")
}

func TestRenderRowSkipsLinkWithControlCharacters(t *testing.T) {
	r := NewTableRenderer(NewStyles(), true)
	hit := sampleHits()[0]
	hit.URL = "https://x.test/\x1b[2Jpwn"

	row := r.RenderRow(hit, false, 80)

	assert.NotContains(t, row, "\x1b]8;;")
	assert.NotContains(t, row, "[2Jpwn")
	assert.Contains(t, row, "Show HN: A thing")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefghij", 5))
}

func TestDetailRender(t *testing.T) {
	d := NewDetailRenderer(NewStyles())
	hit := domain.Hit{
		ObjectID:    "42",
		Title:       "Ask HN: Thoughts?",
		Author:      "carol",
		Points:      10,
		NumComments: 4,
		CreatedAt:   time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC),
		StoryText:   "<p>Hello <b>world</b></p><script>alert(1)</script>",
	}

	out := d.Render(hit)

	assert.Contains(t, out, "Ask HN: Thoughts?")
	assert.Contains(t, out, "news.ycombinator.com/item?id=42")
	assert.Contains(t, out, "10 points by carol on 2024-03-01 12:30")
	assert.Contains(t, out, "**world**")
	assert.NotContains(t, out, "alert")
	assert.NotContains(t, out, "<p>")
}
