package ui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"ytui/internal/config"
	"ytui/internal/search"
	"ytui/internal/ui/input"
	inputtypes "ytui/internal/ui/input/types"
	"ytui/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	config *config.Config

	width  int
	height int

	results  []string
	selected string // reserved for the future list cursor

	renderer     *views.Renderer
	inputHandler *input.Handler

	// Collaborators; both stay nil until a backend is wired in. Enter in
	// search mode deliberately does not call the provider yet.
	provider search.Provider
	launcher search.Launcher
}

// NewModel creates a new UI model
func NewModel(cfg *config.Config, provider search.Provider, launcher search.Launcher) *Model {
	return &Model{
		config:       cfg,
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		provider:     provider,
		launcher:     launcher,
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		ctx := &input.ModelContext{
			SearchQuery:  m.inputHandler.TextInput().Value(),
			ResultTotal:  len(m.results),
			SelectedItem: m.selected,
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

		return m, tea.Batch(cmds...)

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
	}

	return m, nil
}

// processAction applies a single action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch action := action.(type) {
	case inputtypes.QuitAction:
		return tea.Quit

	case inputtypes.SubmitTextAction:
		// The query is kept, not dispatched: submission waits for a
		// search provider.
		log.Printf("query committed without provider: %q", action.Text)

	case inputtypes.CancelTextAction:
		// Leaving search mode keeps the buffer as typed
	}

	return nil
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	ti := m.inputHandler.TextInput()

	return m.renderer.Render(views.ViewState{
		Width:    m.width,
		Height:   m.height,
		Editing:  m.inputHandler.CurrentMode() == inputtypes.ModeSearch,
		Query:    ti.Value(),
		Cursor:   ti.Position(),
		Results:  m.results,
		Selected: m.selected,
	})
}
