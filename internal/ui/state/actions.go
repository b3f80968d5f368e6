package state

import "hnsearch/internal/domain"

// Action is an input to Reduce
type Action interface {
	Name() string
}

// Mount starts the controller and loads the first page of Query
type Mount struct {
	Query string
}

func (a Mount) Name() string { return "mount" }

// ChangeSearchTerm records new search field text
type ChangeSearchTerm struct {
	Text string
}

func (a ChangeSearchTerm) Name() string { return "change_search_term" }

// Submit makes the search field text the active key
type Submit struct{}

func (a Submit) Name() string { return "submit" }

// LoadMore requests the page after the active key's last page
type LoadMore struct{}

func (a LoadMore) Name() string { return "load_more" }

// Dismiss removes one hit from the active key's list
type Dismiss struct {
	ObjectID string
}

func (a Dismiss) Name() string { return "dismiss" }

// PageLoaded delivers a successful response
type PageLoaded struct {
	Request domain.PageRequest
	Result  domain.SearchResultPage
}

func (a PageLoaded) Name() string { return "page_loaded" }

// FetchFailed delivers a failed response
type FetchFailed struct {
	Request domain.PageRequest
	Err     error
}

func (a FetchFailed) Name() string { return "fetch_failed" }

// Unmount tears the controller down; later actions change nothing
type Unmount struct{}

func (a Unmount) Name() string { return "unmount" }
