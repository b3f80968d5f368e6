//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// fakeHit mirrors the Algolia hit fields the app reads
type fakeHit struct {
	ObjectID    string `json:"objectID"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Author      string `json:"author"`
	NumComments int    `json:"num_comments"`
	Points      int    `json:"points"`
}

// FakeAPI serves /api/v1/search from canned pages keyed by query and page
type FakeAPI struct {
	server *httptest.Server

	mu       sync.Mutex
	pages    map[string][][]fakeHit
	failing  map[string]bool
	requests []string
}

// NewFakeAPI starts a fake search API that is closed with the test
func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()
	api := &FakeAPI{
		pages:   make(map[string][][]fakeHit),
		failing: make(map[string]bool),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/api/v1/search", api.search)

	api.server = httptest.NewServer(r)
	t.Cleanup(api.server.Close)
	return api
}

// BaseURL is the value for --api-base
func (a *FakeAPI) BaseURL() string {
	return a.server.URL + "/api/v1"
}

// AddPage appends a page of titled stories for query
func (a *FakeAPI) AddPage(query string, titles ...string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	page := len(a.pages[query])
	hits := make([]fakeHit, 0, len(titles))
	for i, title := range titles {
		hits = append(hits, fakeHit{
			ObjectID:    fmt.Sprintf("%s-%d-%d", query, page, i),
			Title:       title,
			URL:         "https://example.com/" + strconv.Itoa(i),
			Author:      "tester",
			NumComments: i,
			Points:      10 * i,
		})
	}
	a.pages[query] = append(a.pages[query], hits)
}

// Fail makes every request for query answer 500
func (a *FakeAPI) Fail(query string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failing[query] = true
}

// Requests returns "query/page" for every request served
func (a *FakeAPI) Requests() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.requests...)
}

func (a *FakeAPI) search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	a.mu.Lock()
	a.requests = append(a.requests, fmt.Sprintf("%s/%d", query, page))
	failing := a.failing[query]
	pages := a.pages[query]
	a.mu.Unlock()

	if failing {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}

	hits := []fakeHit{}
	if page < len(pages) {
		hits = pages[page]
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"hits":        hits,
		"page":        page,
		"nbPages":     len(pages),
		"nbHits":      len(pages) * 3,
		"hitsPerPage": 50,
	})
}
