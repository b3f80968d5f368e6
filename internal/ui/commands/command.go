package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"hnsearch/internal/domain"
	"hnsearch/internal/eventbus"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	Bus    eventbus.EventBus
	Logger *zap.Logger
}

// FetchCommand asks the search service for one page
type FetchCommand struct {
	ctx     *CommandContext
	request domain.PageRequest
}

// NewFetchCommand creates a new fetch command
func NewFetchCommand(ctx *CommandContext, request domain.PageRequest) *FetchCommand {
	return &FetchCommand{
		ctx:     ctx,
		request: request,
	}
}

// Execute publishes the request. The result arrives later as a bus event.
func (c *FetchCommand) Execute() tea.Cmd {
	if c.ctx.Bus == nil {
		return nil
	}
	c.ctx.Logger.Debug("requesting page",
		zap.String("term", c.request.Term),
		zap.Int("page", c.request.Page),
	)
	c.ctx.Bus.Publish(eventbus.FetchRequestedEvent{Request: c.request})
	return nil
}
