package app

import (
	"github.com/lineclip/lineclip/internal/engine"
	"github.com/lineclip/lineclip/internal/input"
)

// scriptHost exposes the running editor to Lua scripts.
type scriptHost struct {
	app *Application
}

func (h *scriptHost) Text() string {
	return h.app.engine.Text()
}

func (h *scriptHost) Line(row int) (string, bool) {
	if row < 0 || uint32(row) >= h.app.engine.LineCount() {
		return "", false
	}
	return h.app.engine.LineText(uint32(row)), true
}

func (h *scriptHost) LineCount() int {
	return int(h.app.engine.LineCount())
}

func (h *scriptHost) Selection() (anchor, head int64) {
	sel := h.app.engine.PrimarySelection()
	return int64(sel.Anchor), int64(sel.Head)
}

func (h *scriptHost) SetSelection(anchor, head int64) error {
	h.app.engine.SetPrimarySelection(engine.Selection{
		Anchor: engine.ByteOffset(anchor),
		Head:   engine.ByteOffset(head),
	})
	return nil
}

func (h *scriptHost) ClipboardGet() (string, error) {
	return h.app.clip.Get()
}

func (h *scriptHost) ClipboardSet(text string) error {
	return h.app.clip.Set(text)
}

func (h *scriptHost) Run(action string) error {
	result := h.app.system.Dispatch(input.NewAction(action))
	if result.IsError() {
		return result.Error
	}
	if result.Message != "" {
		h.app.message = result.Message
	}
	return nil
}

func (h *scriptHost) Message(text string) {
	h.app.message = text
}
