package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"ytui/internal/ui/logic"
)

const (
	appTitle        = " ytui - youtube search in the terminal "
	searchBoxTitle  = " Search "
	resultsBoxTitle = " Youtube videos "
	helpLine        = "h - move left, j - move down, k - move up, l - move right , s - enter search mode, esc - exit search mode"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width    int
	Height   int
	Editing  bool
	Query    string
	Cursor   int
	Results  []string
	Selected string
}

// Renderer composes the four-region frame: title, search box, results list,
// help line. It holds only styles and never mutates the state it is given.
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete frame
func (r *Renderer) Render(state ViewState) string {
	// Single-row regions are clipped to the frame width before centering;
	// the help line is wider than a narrow terminal.
	title := lipgloss.PlaceHorizontal(state.Width, lipgloss.Center,
		r.styles.Title.Render(runewidth.Truncate(appTitle, state.Width, "")))
	searchBox := r.renderSearchBox(state)
	content := r.renderResults(state)
	help := lipgloss.PlaceHorizontal(state.Width, lipgloss.Center,
		r.styles.Help.Render(runewidth.Truncate(helpLine, state.Width, "")))

	return lipgloss.JoinVertical(lipgloss.Left, title, searchBox, content, help)
}

// renderSearchBox draws the bordered query field. The query is windowed so
// the cursor stays visible; in editing mode the cursor cell is drawn in
// reverse video at the position the visual scroll leaves it.
func (r *Renderer) renderSearchBox(state ViewState) string {
	interior := state.Width - 2
	if interior < 1 {
		interior = 1
	}
	textWidth := interior - 2 // one column of padding each side
	if textWidth < 1 {
		textWidth = 1
	}

	w := logic.InnerWidth(state.Width)
	scroll := logic.VisualScroll(state.Cursor, w)

	runes := []rune(state.Query)
	if scroll > len(runes) {
		scroll = len(runes)
	}
	visible := runes[scroll:]
	if len(visible) > textWidth {
		visible = visible[:textWidth]
	}

	textStyle := r.styles.Text
	if state.Editing {
		textStyle = r.styles.Editing
	}

	var field strings.Builder
	used := 0
	if state.Editing {
		col := state.Cursor - scroll
		if col >= 0 && col < len(visible) {
			field.WriteString(textStyle.Render(string(visible[:col])))
			field.WriteString(r.styles.Cursor.Render(string(visible[col])))
			field.WriteString(textStyle.Render(string(visible[col+1:])))
			used = runewidth.StringWidth(string(visible))
		} else {
			field.WriteString(textStyle.Render(string(visible)))
			field.WriteString(r.styles.Cursor.Render(" "))
			used = runewidth.StringWidth(string(visible)) + 1
		}
	} else {
		field.WriteString(textStyle.Render(string(visible)))
		used = runewidth.StringWidth(string(visible))
	}

	pad := textWidth - used
	if pad < 0 {
		pad = 0
	}

	top := "┌" + spliceTitle(searchBoxTitle, interior, lipgloss.Left) + "┐"
	mid := "│ " + field.String() + strings.Repeat(" ", pad) + " │"
	bottom := "└" + strings.Repeat("─", interior) + "┘"

	return top + "\n" + mid + "\n" + bottom
}

// renderResults draws the bordered list of result strings, clipped to the
// remaining frame height.
func (r *Renderer) renderResults(state ViewState) string {
	height := logic.ContentHeight(state.Height)
	interior := state.Width - 2
	if interior < 1 {
		interior = 1
	}

	if height <= 0 {
		return ""
	}

	top := "┌" + spliceTitle(resultsBoxTitle, interior, lipgloss.Center) + "┐"
	if height == 1 {
		return top
	}

	lines := make([]string, 0, height)
	lines = append(lines, top)
	for i := 0; i < height-2; i++ {
		row := ""
		if i < len(state.Results) {
			row = state.Results[i]
		}
		row = runewidth.Truncate(row, interior, "")
		row += strings.Repeat(" ", interior-runewidth.StringWidth(row))
		lines = append(lines, "│"+row+"│")
	}
	lines = append(lines, "└"+strings.Repeat("─", interior)+"┘")

	return strings.Join(lines, "\n")
}

// spliceTitle embeds a title into a horizontal border run of the given width
func spliceTitle(title string, width int, align lipgloss.Position) string {
	tw := runewidth.StringWidth(title)
	if tw > width {
		return strings.Repeat("─", width)
	}

	rest := width - tw
	switch align {
	case lipgloss.Center:
		left := rest / 2
		return strings.Repeat("─", left) + title + strings.Repeat("─", rest-left)
	default:
		return title + strings.Repeat("─", rest)
	}
}
