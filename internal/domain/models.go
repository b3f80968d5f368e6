package domain

import "time"

// Hit is one result record returned by the search API
type Hit struct {
	ObjectID    string // identity key, unique within a page
	Title       string
	URL         string
	Author      string
	NumComments int
	Points      int
	StoryText   string // raw HTML, empty for link stories
	CreatedAt   time.Time
}

// SearchResultPage is a single page of hits for one search term
type SearchResultPage struct {
	Hits    []Hit
	Page    int
	NbPages int // total pages the API reports for the term
	NbHits  int
}

// ResultEntry holds every page fetched so far for one search term
type ResultEntry struct {
	Hits      []Hit
	Page      int             // highest page merged
	NbPages   int             // total pages the API reports, 0 when unknown
	NbHits    int             // total hits the API reports for the term
	Dismissed map[string]bool // objectIDs removed by the user
}

// HasMore reports whether a page after Page may exist
func (e ResultEntry) HasMore() bool {
	return e.NbPages == 0 || e.Page+1 < e.NbPages
}

// PageRequest identifies one page of one search term
type PageRequest struct {
	Term string
	Page int
}
