package ui

import (
	"errors"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hnsearch/internal/config"
	"hnsearch/internal/domain"
	"hnsearch/internal/eventbus"
	"hnsearch/internal/ui/views"
)

// fakeBus records published requests instead of delivering them
type fakeBus struct {
	mu       sync.Mutex
	requests []domain.PageRequest
}

func (b *fakeBus) Publish(event eventbus.DomainEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if e, ok := event.(eventbus.FetchRequestedEvent); ok {
		b.requests = append(b.requests, e.Request)
	}
}

func (b *fakeBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}

func (b *fakeBus) Close() {}

func (b *fakeBus) Requests() []domain.PageRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]domain.PageRequest(nil), b.requests...)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) (*Model, *fakeBus) {
	t.Helper()
	bus := &fakeBus{}
	cfg := config.DefaultConfig()
	cfg.UISettings.Hyperlinks = false

	m := NewModel(bus, cfg, nil)
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, bus
}

func loadedEvent(term string, page int, titles ...string) EventMsg {
	hits := make([]domain.Hit, 0, len(titles))
	for _, title := range titles {
		hits = append(hits, domain.Hit{ObjectID: term + "-" + title, Title: title, Author: "pg"})
	}
	return EventMsg{Event: eventbus.PageLoadedEvent{
		Request: domain.PageRequest{Term: term, Page: page},
		Result:  domain.SearchResultPage{Hits: hits, Page: page, NbHits: 100},
	}}
}

func TestInitRequestsDefaultQuery(t *testing.T) {
	m, bus := newTestModel(t)

	assert.Equal(t, []domain.PageRequest{{Term: "react", Page: 0}}, bus.Requests())
	assert.Contains(t, m.View(), views.LoadingText)
}

func TestLoadedPageRenders(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(loadedEvent("react", 0, "Hooks", "Fiber"))

	out := m.View()
	assert.Contains(t, out, "Hooks")
	assert.Contains(t, out, "Fiber")
	assert.Contains(t, out, views.MoreText)
	assert.NotContains(t, out, views.LoadingText)
}

func TestDismissSelectedRow(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(loadedEvent("react", 0, "Hooks", "Fiber", "Suspense"))

	m.Update(key("j"))
	m.Update(key("d"))

	titles := []string{}
	for _, h := range m.State().VisibleHits() {
		titles = append(titles, h.Title)
	}
	assert.Equal(t, []string{"Hooks", "Suspense"}, titles)
	assert.NotContains(t, m.View(), "Fiber")
}

func TestLoadMoreAppends(t *testing.T) {
	m, bus := newTestModel(t)
	m.Update(loadedEvent("react", 0, "Hooks"))

	m.Update(key("m"))
	require.Equal(t, domain.PageRequest{Term: "react", Page: 1}, bus.Requests()[1])
	assert.Contains(t, m.View(), views.LoadingText)

	m.Update(loadedEvent("react", 1, "Fiber"))
	assert.Len(t, m.State().VisibleHits(), 2)
	assert.Equal(t, 1, m.State().CurrentPage())
}

func TestSearchSubmitFlow(t *testing.T) {
	m, bus := newTestModel(t)
	m.Update(loadedEvent("react", 0, "Hooks"))

	m.Update(key("/"))
	for _, r := range "ust" {
		m.Update(key(string(r)))
	}
	// typing alone does not search
	assert.Len(t, bus.Requests(), 1)
	assert.Equal(t, "reactust", m.State().SearchTerm)
	assert.Equal(t, "react", m.State().SearchKey)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, domain.PageRequest{Term: "reactust", Page: 0}, bus.Requests()[1])
	assert.Equal(t, "reactust", m.State().SearchKey)
	assert.Empty(t, m.State().VisibleHits())
}

func TestCachedSearchIssuesNoRequest(t *testing.T) {
	m, bus := newTestModel(t)
	m.Update(loadedEvent("react", 0, "Hooks"))

	m.Update(key("/"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Len(t, bus.Requests(), 1)
	assert.Contains(t, m.View(), "Hooks")
}

func TestFailureShowsNotice(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(EventMsg{Event: eventbus.FetchFailedEvent{
		Request: domain.PageRequest{Term: "react", Page: 0},
		Err:     errors.New("503"),
	}})

	out := m.View()
	assert.Contains(t, out, views.ErrorText)
	assert.NotContains(t, out, views.LoadingText)
}

func TestOpenDetailWithoutProgramUsesPopup(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(loadedEvent("react", 0, "Hooks"))

	m.Update(key("v"))
	assert.Contains(t, m.View(), "news.ycombinator.com/item?id=react-Hooks")

	// popup swallows keys until closed
	m.Update(key("d"))
	assert.Len(t, m.State().VisibleHits(), 1)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotContains(t, m.View(), "news.ycombinator.com")
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(key("?"))
	assert.Contains(t, m.View(), "hnsearch Help")

	m.Update(key("?"))
	assert.NotContains(t, m.View(), "hnsearch Help")
}

func TestQuitIgnoresLateCompletions(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	m.Update(loadedEvent("react", 0, "Late"))
	assert.Empty(t, m.State().VisibleHits())
}
