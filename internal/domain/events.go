package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventFetchRequested EventType = "FetchRequested"
	EventPageLoaded     EventType = "PageLoaded"
	EventFetchFailed    EventType = "FetchFailed"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// FetchRequestedEvent asks the search service to load one page
type FetchRequestedEvent struct {
	Request PageRequest
}

func (e FetchRequestedEvent) Type() EventType { return EventFetchRequested }

// PageLoadedEvent is emitted when a page request succeeds
type PageLoadedEvent struct {
	Request PageRequest
	Result  SearchResultPage
}

func (e PageLoadedEvent) Type() EventType { return EventPageLoaded }

// FetchFailedEvent is emitted when a page request fails
type FetchFailedEvent struct {
	Request PageRequest
	Err     error
}

func (e FetchFailedEvent) Type() EventType { return EventFetchFailed }
