package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"hnsearch/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	// While help is open only closing keys do anything
	if ctx.ShowingHelp() {
		switch msg.String() {
		case "ctrl+c":
			return []types.Action{types.QuitAction{}}, true
		case "?", "esc", "q":
			return []types.Action{types.ToggleHelpAction{}}, true
		}
		return nil, true
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		if id := ctx.CurrentObjectID(); id != "" {
			return []types.Action{types.OpenDetailAction{ObjectID: id}}, true
		}
		return nil, false
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "g":
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case "/", "s":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.SearchTerm()}}, true

	case "d", "x":
		if id := ctx.CurrentObjectID(); id != "" {
			return []types.Action{types.DismissAction{ObjectID: id}}, true
		}
		return nil, false

	case "m":
		if ctx.HasResults() {
			return []types.Action{types.LoadMoreAction{}}, true
		}
		return nil, false

	case "v":
		if id := ctx.CurrentObjectID(); id != "" {
			return []types.Action{types.OpenDetailAction{ObjectID: id}}, true
		}
		return nil, false

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, false
}
