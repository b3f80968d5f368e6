package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"hnsearch/internal/ui/input/types"
)

var promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true)

// InputTransformer turns the active input mode into the search line text
type InputTransformer struct {
	mode      types.Mode
	prompt    string
	textInput *textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer() *InputTransformer {
	return &InputTransformer{
		mode: types.ModeNormal,
	}
}

// SetMode sets the current input mode, its prompt and the field it edits
func (it *InputTransformer) SetMode(mode types.Mode, prompt string, textInput *textinput.Model) {
	it.mode = mode
	it.prompt = prompt
	it.textInput = textInput
}

// GetInputText returns the rendered field, or "" outside text modes
func (it *InputTransformer) GetInputText() string {
	if it.mode == types.ModeNormal || it.textInput == nil {
		return ""
	}

	if it.prompt == "" {
		return it.textInput.View()
	}
	return promptStyle.Render(it.prompt) + it.textInput.View()
}
