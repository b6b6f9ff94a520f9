// Package logic holds the pure layout math behind the renderer.
package logic

// TitleHeight, SearchBoxHeight and HelpHeight are the fixed rows of the
// vertical stack; the results pane takes whatever is left.
const (
	TitleHeight     = 1
	SearchBoxHeight = 3
	HelpHeight      = 1
)

// InnerWidth returns the editable width of the search field for a box of the
// given total width: two columns of border, two of padding, and one reserved
// for the cursor.
func InnerWidth(boxWidth int) int {
	if boxWidth < 3 {
		boxWidth = 3
	}
	w := boxWidth - 3 - 2
	if w < 1 {
		w = 1
	}
	return w
}

// VisualScroll returns the horizontal offset into the buffer that keeps the
// cursor inside a viewport of the given width. For any width >= 1 the result
// satisfies 0 <= scroll <= cursor and cursor-scroll < width.
func VisualScroll(cursor, width int) int {
	if width < 1 {
		width = 1
	}
	scroll := cursor - width + 1
	if scroll < 0 {
		scroll = 0
	}
	return scroll
}

// ContentHeight returns the height of the results pane for a frame of the
// given total height.
func ContentHeight(frameHeight int) int {
	h := frameHeight - TitleHeight - SearchBoxHeight - HelpHeight
	if h < 0 {
		h = 0
	}
	return h
}
