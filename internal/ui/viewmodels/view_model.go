package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"hnsearch/internal/config"
	"hnsearch/internal/ui/input/types"
	"hnsearch/internal/ui/logic"
	"hnsearch/internal/ui/state"
	"hnsearch/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	config           *config.Config
	width            int
	height           int
	showHelp         bool
	popupContent     string
	statusMessage    string
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(cfg *config.Config) *ViewModel {
	return &ViewModel{
		config:           cfg,
		inputTransformer: NewInputTransformer(),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// TableHeight returns the number of rows available to the result table
func (vm *ViewModel) TableHeight() int {
	h := vm.height - views.ChromeLines
	if h < 1 {
		return 1
	}
	return h
}

// SetShowHelp toggles the help popup
func (vm *ViewModel) SetShowHelp(show bool) {
	vm.showHelp = show
}

// ShowHelp reports whether the help popup is open
func (vm *ViewModel) ShowHelp() bool {
	return vm.showHelp
}

// SetPopupContent shows content in a popup; "" closes it
func (vm *ViewModel) SetPopupContent(content string) {
	vm.popupContent = content
}

// PopupContent returns the popup text, "" when closed
func (vm *ViewModel) PopupContent() string {
	return vm.popupContent
}

// SetStatusMessage sets the transient footer message
func (vm *ViewModel) SetStatusMessage(msg string) {
	vm.statusMessage = msg
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode types.Mode, prompt string, textInput *textinput.Model) {
	vm.inputTransformer.SetMode(mode, prompt, textInput)
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState(st state.AppState, nav *logic.Navigator) views.ViewState {
	entry, hasEntry := st.ActiveEntry()
	return views.ViewState{
		Width:          vm.width,
		Height:         vm.height,
		SearchKey:      st.SearchKey,
		SearchTerm:     st.SearchTerm,
		SearchInput:    vm.inputTransformer.GetInputText(),
		Hits:           entry.Hits,
		HasEntry:       hasEntry,
		HasMore:        hasEntry && entry.HasMore(),
		NbHits:         entry.NbHits,
		SelectedIndex:  nav.GetSelectedIndex(),
		ViewportOffset: nav.GetViewportOffset(),
		ViewportHeight: nav.GetViewportHeight(),
		IsLoading:      st.IsLoading,
		IsLoadingMore:  st.IsLoadingMore,
		Err:            st.Err,
		ShowHelp:       vm.showHelp,
		PopupContent:   vm.popupContent,
		StatusMessage:  vm.statusMessage,
	}
}
