package ui

// View tracks the window of the buffer that fits on screen.
type View struct {
	// Top is the first visible line.
	Top uint32

	// Left is the first visible display column.
	Left int
}

// EnsureVisible scrolls the view the minimum distance that brings the
// cell at row and display column col inside a width by height window.
func (v *View) EnsureVisible(row uint32, col, width, height int) {
	if height > 0 {
		if row < v.Top {
			v.Top = row
		}
		if bottom := v.Top + uint32(height) - 1; row > bottom {
			v.Top = row - uint32(height) + 1
		}
	}
	if width > 0 {
		if col < v.Left {
			v.Left = col
		}
		if right := v.Left + width - 1; col > right {
			v.Left = col - width + 1
		}
	}
}
