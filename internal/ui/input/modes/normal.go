package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"ytui/internal/ui/input/types"
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
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		return []types.Action{types.QuitAction{}}, true
	}

	switch msg.String() {
	case "q":
		return []types.Action{types.QuitAction{}}, true

	case "s":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "h", "j", "k", "l":
		// Reserved for the future list cursor; consumed so nothing else
		// interprets them.
		return nil, true
	}

	return nil, false
}
