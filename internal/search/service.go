// Package search runs page requests published on the event bus and
// publishes their completions.
package search

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"hnsearch/internal/domain"
	"hnsearch/internal/eventbus"
)

// Searcher fetches one page of hits
type Searcher interface {
	Search(ctx context.Context, term string, page int) (domain.SearchResultPage, error)
}

// Service handles FetchRequested events
type Service struct {
	ctx         context.Context
	bus         eventbus.EventBus
	client      Searcher
	logger      *zap.Logger
	timeout     time.Duration
	workerPool  chan struct{} // limits concurrent requests
	wg          sync.WaitGroup
	mu          sync.Mutex // guards closed and wg.Add
	closed      bool
	unsubscribe func()
}

// NewService creates a search service bound to ctx. Cancelling ctx aborts
// in-flight requests and suppresses their completions.
func NewService(ctx context.Context, bus eventbus.EventBus, client Searcher, logger *zap.Logger, timeout time.Duration) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	s := &Service{
		ctx:        ctx,
		bus:        bus,
		client:     client,
		logger:     logger.Named("search"),
		timeout:    timeout,
		workerPool: make(chan struct{}, 4),
	}

	s.unsubscribe = bus.Subscribe(eventbus.EventFetchRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.FetchRequestedEvent); ok {
			s.Fetch(event.Request)
		}
	})

	return s
}

// Fetch runs one request and publishes its outcome. It blocks until the
// request finishes or the service context is cancelled.
func (s *Service) Fetch(req domain.PageRequest) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.wg.Add(1)
	s.mu.Unlock()
	defer s.wg.Done()

	select {
	case s.workerPool <- struct{}{}:
		defer func() { <-s.workerPool }()
	case <-s.ctx.Done():
		return
	}

	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	log := s.logger.With(zap.String("term", req.Term), zap.Int("page", req.Page))
	log.Info("fetching page")

	result, err := s.client.Search(ctx, req.Term, req.Page)

	if s.ctx.Err() != nil {
		log.Debug("dropping completion after shutdown")
		return
	}

	if err != nil {
		log.Warn("fetch failed", zap.Error(err))
		s.bus.Publish(eventbus.FetchFailedEvent{Request: req, Err: err})
		return
	}

	log.Info("page loaded", zap.Int("hits", len(result.Hits)))
	s.bus.Publish(eventbus.PageLoadedEvent{Request: req, Result: result})
}

// Close stops listening for requests and waits for running ones to finish
func (s *Service) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	if s.unsubscribe != nil {
		s.unsubscribe()
	}
	s.wg.Wait()
}
