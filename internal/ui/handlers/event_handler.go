package handlers

import (
	"go.uber.org/zap"

	"hnsearch/internal/eventbus"
	"hnsearch/internal/ui/state"
)

// EventHandler turns search completions from the bus into state actions
type EventHandler struct {
	logger *zap.Logger
}

// NewEventHandler creates a new event handler
func NewEventHandler(logger *zap.Logger) *EventHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventHandler{logger: logger}
}

// HandleEvent returns the action for event, or nil when the event is not a completion
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) state.Action {
	switch e := event.(type) {
	case eventbus.PageLoadedEvent:
		h.logger.Debug("page loaded",
			zap.String("term", e.Request.Term),
			zap.Int("page", e.Request.Page),
			zap.Int("hits", len(e.Result.Hits)),
		)
		return state.PageLoaded{Request: e.Request, Result: e.Result}

	case eventbus.FetchFailedEvent:
		h.logger.Warn("fetch failed",
			zap.String("term", e.Request.Term),
			zap.Int("page", e.Request.Page),
			zap.Error(e.Err),
		)
		return state.FetchFailed{Request: e.Request, Err: e.Err}
	}
	return nil
}
