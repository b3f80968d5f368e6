package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"hnsearch/internal/domain"
	"hnsearch/internal/eventbus"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(bus eventbus.EventBus, logger *zap.Logger) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor{
		ctx: &CommandContext{
			Bus:    bus,
			Logger: logger,
		},
	}
}

// ExecuteFetch creates and executes a fetch command per request
func (e *Executor) ExecuteFetch(requests []domain.PageRequest) tea.Cmd {
	var cmds []tea.Cmd
	for _, req := range requests {
		if cmd := NewFetchCommand(e.ctx, req).Execute(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
