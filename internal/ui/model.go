package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"hnsearch/internal/config"
	"hnsearch/internal/domain"
	"hnsearch/internal/eventbus"
	"hnsearch/internal/ui/commands"
	"hnsearch/internal/ui/handlers"
	"hnsearch/internal/ui/input"
	inputtypes "hnsearch/internal/ui/input/types"
	"hnsearch/internal/ui/logic"
	"hnsearch/internal/ui/state"
	"hnsearch/internal/ui/viewmodels"
	"hnsearch/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	logger *zap.Logger
	state  state.AppState // replaced wholesale by every reducer step

	// UI-specific state not in AppState
	width       int
	height      int
	inPagerMode bool // tracks if we're currently in pager mode

	// Handlers
	navigator    *logic.Navigator       // navigation and viewport handler
	renderer     *views.Renderer        // view renderer
	detail       *views.DetailRenderer  // story detail renderer
	eventHandler *handlers.EventHandler // event processing handler
	viewModel    *viewmodels.ViewModel  // view model for rendering
	cmdExecutor  *commands.Executor     // command executor
	inputHandler *input.Handler         // input handling
	pager        *Pager                 // ov pager

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("ui")

	renderer := views.NewRenderer(cfg.UISettings.Hyperlinks)
	return &Model{
		bus:          bus,
		config:       cfg,
		logger:       logger,
		state:        state.NewAppState(),
		navigator:    logic.NewNavigator(),
		renderer:     renderer,
		detail:       views.NewDetailRenderer(renderer.Styles()),
		eventHandler: handlers.NewEventHandler(logger),
		viewModel:    viewmodels.NewViewModel(cfg),
		cmdExecutor:  commands.NewExecutor(bus, logger),
		inputHandler: input.New(),
		pager:        NewPager(),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// State returns the current application state
func (m *Model) State() state.AppState {
	return m.state
}

// Init loads the default query
func (m *Model) Init() tea.Cmd {
	return m.dispatch(state.Mount{Query: m.config.API.DefaultQuery})
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		m.navigator.SetViewportHeight(m.viewModel.TableHeight(), m.totalItems())
		return m, nil

	case tea.KeyMsg:
		// Popups swallow keys until closed
		if m.viewModel.PopupContent() != "" {
			switch msg.String() {
			case "ctrl+c":
				return m, m.quit()
			case "esc", "q", "v", "enter":
				m.viewModel.SetPopupContent("")
			}
			return m, nil
		}

		// Create context for input handler
		ctx := &input.ModelContext{
			State:     m.state,
			Navigator: m.navigator,
			ShowHelp:  m.viewModel.ShowHelp(),
		}

		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		m.viewModel.SetInputMode(m.inputHandler.CurrentMode(), m.inputHandler.Prompt(), m.inputHandler.TextInput())

		return m, tea.Batch(cmds...)

	case EventMsg, detailPagerMsg, helpPagerMsg, pauseRenderingMsg, resumeRenderingMsg, clearStatusMsg:
		return m.handleNonKeyboardMsg(msg)

	default:
		// cursor blink and other text field messages
		return m, m.inputHandler.Update(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Initializing..."
	}

	viewState := m.viewModel.BuildViewState(m.state, m.navigator)
	return m.renderer.Render(viewState)
}

// dispatch runs action through the reducer and turns the requested pages into commands
func (m *Model) dispatch(action state.Action) tea.Cmd {
	prevKey := m.state.SearchKey

	var requests []domain.PageRequest
	m.state, requests = state.Reduce(m.state, action)

	if m.state.SearchKey != prevKey {
		m.navigator.Reset()
	}
	m.navigator.Clamp(m.totalItems())

	if len(requests) > 0 {
		m.logger.Debug("dispatch issued requests",
			zap.String("action", action.Name()),
			zap.Int("count", len(requests)),
		)
	}
	return m.cmdExecutor.ExecuteFetch(requests)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigator.Navigate(a.Direction, m.totalItems())

	case inputtypes.UpdateTextAction:
		return m.dispatch(state.ChangeSearchTerm{Text: a.Text})

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeSearch {
			return tea.Batch(
				m.dispatch(state.ChangeSearchTerm{Text: a.Text}),
				m.dispatch(state.Submit{}),
			)
		}

	case inputtypes.CancelTextAction:
		// the field keeps its text; nothing is submitted

	case inputtypes.DismissAction:
		return m.dispatch(state.Dismiss{ObjectID: a.ObjectID})

	case inputtypes.LoadMoreAction:
		return m.dispatch(state.LoadMore{})

	case inputtypes.OpenDetailAction:
		hit, ok := m.findHit(a.ObjectID)
		if !ok {
			return nil
		}
		content := m.detail.Render(hit)
		if m.pager.Available() {
			return m.showDetailPager(hit.ObjectID, content)
		}
		m.viewModel.SetPopupContent(content)

	case inputtypes.ToggleHelpAction:
		if m.viewModel.ShowHelp() {
			m.viewModel.SetShowHelp(false)
			return nil
		}
		if m.pager.Available() {
			return m.showHelpPager()
		}
		m.viewModel.SetShowHelp(true)

	case inputtypes.QuitAction:
		return m.quit()
	}

	return nil
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		action := m.eventHandler.HandleEvent(msg.Event)
		if action == nil {
			return m, nil
		}
		return m, m.dispatch(action)

	case detailPagerMsg:
		if msg.err != nil {
			m.logger.Warn("detail pager failed, falling back to popup",
				zap.String("objectID", msg.objectID),
				zap.Error(msg.err),
			)
			m.viewModel.SetPopupContent(msg.content)
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			m.logger.Warn("help pager failed, falling back to popup", zap.Error(msg.err))
			m.viewModel.SetShowHelp(true)
			return m, m.setStatus(fmt.Sprintf("pager unavailable: %v", msg.err))
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.viewModel.SetStatusMessage("")
		return m, nil

	}
	return m, nil
}

// showDetailPager returns a command that shows a story using the ov pager
func (m *Model) showDetailPager(objectID, content string) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.pager.Show(content)
		m.program.Send(resumeRenderingMsg{})

		return detailPagerMsg{objectID: objectID, content: content, err: err}
	}
}

// showHelpPager returns a command that shows help using the ov pager
func (m *Model) showHelpPager() tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.pager.Show(views.RenderHelpContent())
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

func (m *Model) setStatus(msg string) tea.Cmd {
	m.viewModel.SetStatusMessage(msg)
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// quit tears the controller down so late completions are ignored
func (m *Model) quit() tea.Cmd {
	m.dispatch(state.Unmount{})
	return tea.Quit
}

func (m *Model) findHit(objectID string) (domain.Hit, bool) {
	for _, hit := range m.state.VisibleHits() {
		if hit.ObjectID == objectID {
			return hit, true
		}
	}
	return domain.Hit{}, false
}

func (m *Model) totalItems() int {
	return len(m.state.VisibleHits())
}
