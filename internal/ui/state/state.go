package state

import (
	"hnsearch/internal/domain"
)

// Phase tracks the controller lifetime
type Phase int

const (
	PhaseCreated Phase = iota
	PhaseMounted
	PhaseUnmounted
)

// AppState contains all the application state. It is a value: transitions
// in Reduce return a new AppState and never mutate the maps of the old one.
type AppState struct {
	Results       map[string]domain.ResultEntry // search term -> accumulated pages
	IsLoading     bool                          // a first page is in flight
	IsLoadingMore bool                          // a further page is in flight
	SearchKey     string                        // active cache key
	SearchTerm    string                        // text in the search field
	Err           error                         // last failed request
	Phase         Phase

	// requests issued and not yet completed
	InFlight map[domain.PageRequest]bool
}

// NewAppState creates an empty, not yet mounted state
func NewAppState() AppState {
	return AppState{
		Results:  make(map[string]domain.ResultEntry),
		InFlight: make(map[domain.PageRequest]bool),
	}
}

// Mounted reports whether completions should still be applied
func (s AppState) Mounted() bool {
	return s.Phase == PhaseMounted
}

// ActiveEntry returns the cache entry for the active key
func (s AppState) ActiveEntry() (domain.ResultEntry, bool) {
	entry, ok := s.Results[s.SearchKey]
	return entry, ok
}

// HasResults reports whether any page was cached for the active key
func (s AppState) HasResults() bool {
	_, ok := s.ActiveEntry()
	return ok
}

// CurrentPage is the highest page merged for the active key, 0 when absent
func (s AppState) CurrentPage() int {
	entry, _ := s.ActiveEntry()
	return entry.Page
}

// VisibleHits is the accumulated hit list for the active key
func (s AppState) VisibleHits() []domain.Hit {
	entry, ok := s.ActiveEntry()
	if !ok {
		return nil
	}
	return entry.Hits
}

// IsCached reports whether term has a cache entry
func (s AppState) IsCached(term string) bool {
	_, ok := s.Results[term]
	return ok
}

// termInFlight reports whether any page of term is still loading
func (s AppState) termInFlight(term string) bool {
	for req := range s.InFlight {
		if req.Term == term {
			return true
		}
	}
	return false
}

// withEntry returns a copy of s whose cache maps term to entry
func (s AppState) withEntry(term string, entry domain.ResultEntry) AppState {
	results := make(map[string]domain.ResultEntry, len(s.Results)+1)
	for k, v := range s.Results {
		results[k] = v
	}
	results[term] = entry
	s.Results = results
	return s
}

// withInFlight returns a copy of s with req added to or removed from the in-flight set
func (s AppState) withInFlight(req domain.PageRequest, inFlight bool) AppState {
	set := make(map[domain.PageRequest]bool, len(s.InFlight)+1)
	for k := range s.InFlight {
		set[k] = true
	}
	if inFlight {
		set[req] = true
	} else {
		delete(set, req)
	}
	s.InFlight = set
	s.IsLoading, s.IsLoadingMore = false, false
	for r := range set {
		if r.Page == 0 {
			s.IsLoading = true
		} else {
			s.IsLoadingMore = true
		}
	}
	return s
}
