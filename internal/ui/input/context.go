package input

import (
	"hnsearch/internal/ui/logic"
	"hnsearch/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State     state.AppState
	Navigator *logic.Navigator
	ShowHelp  bool
}

// CurrentIndex returns the current selected index
func (c *ModelContext) CurrentIndex() int {
	return c.Navigator.GetSelectedIndex()
}

// TotalItems returns the number of visible rows
func (c *ModelContext) TotalItems() int {
	return len(c.State.VisibleHits())
}

// CurrentObjectID returns the objectID of the selected row, or "" when the list is empty
func (c *ModelContext) CurrentObjectID() string {
	hits := c.State.VisibleHits()
	idx := c.CurrentIndex()
	if idx < 0 || idx >= len(hits) {
		return ""
	}
	return hits[idx].ObjectID
}

func (c *ModelContext) SearchTerm() string {
	return c.State.SearchTerm
}

func (c *ModelContext) HasResults() bool {
	return c.State.HasResults()
}

func (c *ModelContext) ShowingHelp() bool {
	return c.ShowHelp
}
