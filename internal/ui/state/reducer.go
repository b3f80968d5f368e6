package state

import (
	"hnsearch/internal/domain"
)

// Reduce applies action to s and returns the next state together with the
// page requests the caller must issue. It never mutates s.
func Reduce(s AppState, action Action) (AppState, []domain.PageRequest) {
	if _, ok := action.(Mount); !ok && !s.Mounted() {
		return s, nil
	}

	switch a := action.(type) {
	case Mount:
		if s.Phase != PhaseCreated {
			return s, nil
		}
		s.Phase = PhaseMounted
		s.SearchKey = a.Query
		s.SearchTerm = a.Query
		return s.request(domain.PageRequest{Term: a.Query, Page: 0})

	case ChangeSearchTerm:
		s.SearchTerm = a.Text
		return s, nil

	case Submit:
		s.SearchKey = s.SearchTerm
		if s.IsCached(s.SearchTerm) {
			// answered from cache, nothing left to fail
			s.Err = nil
			return s, nil
		}
		return s.request(domain.PageRequest{Term: s.SearchTerm, Page: 0})

	case LoadMore:
		entry, ok := s.ActiveEntry()
		if !ok || !entry.HasMore() || s.termInFlight(s.SearchKey) {
			return s, nil
		}
		return s.request(domain.PageRequest{Term: s.SearchKey, Page: entry.Page + 1})

	case Dismiss:
		return s.dismiss(a.ObjectID), nil

	case PageLoaded:
		if !s.InFlight[a.Request] {
			return s, nil
		}
		s = s.withInFlight(a.Request, false)
		return s.merge(a.Request.Term, a.Result), nil

	case FetchFailed:
		if !s.InFlight[a.Request] {
			return s, nil
		}
		s = s.withInFlight(a.Request, false)
		s.Err = a.Err
		return s, nil

	case Unmount:
		s.Phase = PhaseUnmounted
		return s, nil
	}

	return s, nil
}

// request marks req in flight unless it already is
func (s AppState) request(req domain.PageRequest) (AppState, []domain.PageRequest) {
	if s.InFlight[req] {
		return s, nil
	}
	return s.withInFlight(req, true), []domain.PageRequest{req}
}

// merge appends a page to the entry for term. Only page 0 of a new entry or
// the page right after the merged one is accepted; anything else is stale.
// Hits already listed or dismissed are skipped.
func (s AppState) merge(term string, page domain.SearchResultPage) AppState {
	old, exists := s.Results[term]
	next := 0
	if exists {
		next = old.Page + 1
	}
	if page.Page != next {
		return s
	}

	seen := make(map[string]bool, len(old.Hits)+len(page.Hits))
	for _, h := range old.Hits {
		seen[h.ObjectID] = true
	}
	for id := range old.Dismissed {
		seen[id] = true
	}

	hits := make([]domain.Hit, len(old.Hits), len(old.Hits)+len(page.Hits))
	copy(hits, old.Hits)
	for _, h := range page.Hits {
		if seen[h.ObjectID] {
			continue
		}
		seen[h.ObjectID] = true
		hits = append(hits, h)
	}

	s.Err = nil
	return s.withEntry(term, domain.ResultEntry{
		Hits:      hits,
		Page:      page.Page,
		NbPages:   page.NbPages,
		NbHits:    page.NbHits,
		Dismissed: old.Dismissed,
	})
}

// dismiss drops the first hit with objectID from the active entry
func (s AppState) dismiss(objectID string) AppState {
	entry, ok := s.ActiveEntry()
	if !ok {
		return s
	}
	idx := -1
	for i, h := range entry.Hits {
		if h.ObjectID == objectID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}

	hits := make([]domain.Hit, 0, len(entry.Hits)-1)
	hits = append(hits, entry.Hits[:idx]...)
	hits = append(hits, entry.Hits[idx+1:]...)

	dismissed := make(map[string]bool, len(entry.Dismissed)+1)
	for id := range entry.Dismissed {
		dismissed[id] = true
	}
	dismissed[objectID] = true

	return s.withEntry(s.SearchKey, domain.ResultEntry{
		Hits:      hits,
		Page:      entry.Page,
		NbPages:   entry.NbPages,
		NbHits:    entry.NbHits,
		Dismissed: dismissed,
	})
}
