package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/lineclip/lineclip/internal/engine"
	"github.com/lineclip/lineclip/internal/input/key"
)

// Event is a terminal event delivered to the application loop.
type Event interface{ isEvent() }

// KeyEvent carries a translated key press.
type KeyEvent struct {
	Key key.Event
}

// ResizeEvent reports a new screen size.
type ResizeEvent struct {
	Width, Height int
}

// InterruptEvent wakes the loop after PostInterrupt.
type InterruptEvent struct{}

func (KeyEvent) isEvent()       {}
func (ResizeEvent) isEvent()    {}
func (InterruptEvent) isEvent() {}

// Status is what the status line shows besides the cursor position.
type Status struct {
	FileName string
	Modified bool
	ReadOnly bool
	Message  string
}

// UI hosts the editor on a tcell screen.
type UI struct {
	screen tcell.Screen
	theme  Theme
	view   View
}

// New creates a UI on a screen. The screen is not initialized; call
// Init before the first Render.
func New(screen tcell.Screen, theme Theme) *UI {
	return &UI{screen: screen, theme: theme}
}

// NewTerminal creates a UI on the process terminal.
func NewTerminal(theme Theme) (*UI, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("opening terminal: %w", err)
	}
	return New(screen, theme), nil
}

// Init takes over the terminal.
func (u *UI) Init() error {
	if err := u.screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	u.screen.SetStyle(u.theme.Text)
	u.screen.Clear()
	return nil
}

// Fini restores the terminal.
func (u *UI) Fini() {
	u.screen.Fini()
}

// Size returns the screen size in cells.
func (u *UI) Size() (int, int) {
	return u.screen.Size()
}

// View returns the current viewport, for tests and scroll queries.
func (u *UI) View() View {
	return u.view
}

// PollEvent blocks for the next event the loop handles. It returns
// nil once the screen is finalized.
func (u *UI) PollEvent() Event {
	for {
		switch ev := u.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if kev, ok := TranslateKey(ev); ok {
				return KeyEvent{Key: kev}
			}
		case *tcell.EventResize:
			w, h := ev.Size()
			u.screen.Sync()
			return ResizeEvent{Width: w, Height: h}
		case *tcell.EventInterrupt:
			return InterruptEvent{}
		case nil:
			return nil
		}
	}
}

// PostInterrupt wakes PollEvent from outside the event stream, used
// for shutdown.
func (u *UI) PostInterrupt() {
	_ = u.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Render draws the buffer and status line and flushes the screen.
func (u *UI) Render(e *engine.Engine, st Status) {
	width, height := u.screen.Size()
	if width <= 0 || height <= 1 {
		return
	}
	textHeight := height - 1

	caret := e.PrimaryCursor()
	point := e.OffsetToPoint(caret)
	caretCol := u.displayCol(e, point.Line, caret)
	u.view.EnsureVisible(point.Line, caretCol, width, textHeight)

	u.screen.Fill(' ', u.theme.Text)

	sels := e.Selections()
	for i := 0; i < textHeight; i++ {
		line := u.view.Top + uint32(i)
		if line >= e.LineCount() {
			break
		}
		u.drawLine(e, line, i, width, sels)
	}

	u.markSecondaryCarets(e, sels, width, textHeight)

	if point.Line >= u.view.Top && point.Line < u.view.Top+uint32(textHeight) {
		u.screen.ShowCursor(caretCol-u.view.Left, int(point.Line-u.view.Top))
	} else {
		u.screen.HideCursor()
	}

	u.drawStatusLine(st, point.Line, caretCol, width, height-1)
	u.screen.Show()
}

// drawLine draws one buffer line at screen row y, highlighting the
// selected byte ranges.
func (u *UI) drawLine(e *engine.Engine, line uint32, y, width int, sels []engine.Selection) {
	text := e.LineText(line)
	lineStart := e.LineStart(line)
	lineEnd := lineStart + engine.ByteOffset(len(text))
	tabWidth := e.TabWidth()

	col := 0
	offset := lineStart
	state := -1
	for len(text) > 0 {
		var cluster string
		var clusterWidth int
		cluster, text, clusterWidth, state = uniseg.FirstGraphemeClusterInString(text, state)

		style := u.theme.Text
		if inSelection(sels, offset) {
			style = u.theme.Selection
		}

		if cluster == "\t" {
			clusterWidth = tabWidth - (col % tabWidth)
			for i := 0; i < clusterWidth; i++ {
				u.setCell(col+i, y, ' ', nil, style, width)
			}
		} else {
			runes := []rune(cluster)
			u.setCell(col, y, runes[0], runes[1:], style, width)
		}

		col += clusterWidth
		offset += engine.ByteOffset(len(cluster))
		if col-u.view.Left >= width {
			return
		}
	}

	// A selection that crosses onto the next line claims the
	// terminator cell, so full-line selections read as full lines.
	if inSelection(sels, lineEnd) && lineEnd < e.Len() {
		u.setCell(col, y, ' ', nil, u.theme.Selection, width)
	}
}

// inSelection reports whether any selection covers the offset.
func inSelection(sels []engine.Selection, offset engine.ByteOffset) bool {
	for _, sel := range sels {
		if offset >= sel.Start() && offset < sel.End() {
			return true
		}
	}
	return false
}

// markSecondaryCarets restyles the cells under non-primary empty
// carets, which have no hardware cursor.
func (u *UI) markSecondaryCarets(e *engine.Engine, sels []engine.Selection, width, textHeight int) {
	primary := e.PrimarySelection()
	seenPrimary := false
	for _, sel := range sels {
		if !seenPrimary && sel == primary {
			seenPrimary = true
			continue
		}
		if !sel.IsEmpty() {
			continue
		}

		pt := e.OffsetToPoint(sel.Head)
		if pt.Line < u.view.Top || pt.Line >= u.view.Top+uint32(textHeight) {
			continue
		}
		x := u.displayCol(e, pt.Line, sel.Head) - u.view.Left
		y := int(pt.Line - u.view.Top)
		if x < 0 || x >= width {
			continue
		}
		r, comb, _, _ := u.screen.GetContent(x, y)
		u.screen.SetContent(x, y, r, comb, u.theme.Selection)
	}
}

// displayCol converts a byte offset into the display column on its
// line, expanding tabs and counting grapheme cluster widths.
func (u *UI) displayCol(e *engine.Engine, line uint32, offset engine.ByteOffset) int {
	text := e.LineText(line)
	target := int(offset - e.LineStart(line))
	if target < 0 {
		return 0
	}
	if target > len(text) {
		target = len(text)
	}
	tabWidth := e.TabWidth()

	col := 0
	consumed := 0
	state := -1
	for consumed < target && len(text) > 0 {
		var cluster string
		var w int
		cluster, text, w, state = uniseg.FirstGraphemeClusterInString(text, state)
		if cluster == "\t" {
			w = tabWidth - (col % tabWidth)
		}
		col += w
		consumed += len(cluster)
	}
	return col
}

// drawStatusLine renders the bottom row: name and flags on the left,
// the transient message after them, the cursor position on the right.
func (u *UI) drawStatusLine(st Status, line uint32, col, width, y int) {
	name := st.FileName
	if name == "" {
		name = "[untitled]"
	}
	left := " " + name
	if st.Modified {
		left += " +"
	}
	if st.ReadOnly {
		left += " [ro]"
	}
	if st.Message != "" {
		left += "  " + st.Message
	}
	right := fmt.Sprintf("Ln %d, Col %d ", line+1, col+1)

	for x := 0; x < width; x++ {
		u.screen.SetContent(x, y, ' ', nil, u.theme.Status)
	}
	drawText(u.screen, 0, y, width, left, u.theme.Status)
	if w := uniseg.StringWidth(right); width-w > uniseg.StringWidth(left) {
		drawText(u.screen, width-w, y, width, right, u.theme.Status)
	}
}

// drawText writes a string starting at x, clipped to the row width.
func drawText(s tcell.Screen, x, y, width int, text string, style tcell.Style) {
	state := -1
	for len(text) > 0 && x < width {
		var cluster string
		var w int
		cluster, text, w, state = uniseg.FirstGraphemeClusterInString(text, state)
		runes := []rune(cluster)
		if len(runes) == 0 {
			continue
		}
		s.SetContent(x, y, runes[0], runes[1:], style)
		x += w
	}
}

// setCell writes one cell at a display column, applying the
// horizontal scroll offset and clipping to the screen.
func (u *UI) setCell(col, y int, r rune, comb []rune, style tcell.Style, width int) {
	x := col - u.view.Left
	if x < 0 || x >= width {
		return
	}
	u.screen.SetContent(x, y, r, comb, style)
}
