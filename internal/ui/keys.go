package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lineclip/lineclip/internal/input/key"
)

// specialKeys maps tcell named keys to editor keys. tcell aliases the
// control chords for Enter, Tab, and Backspace onto the same
// constants (KeyCtrlM, KeyCtrlI, KeyCtrlH), so resolving this table
// first leaves only real letter chords for the Ctrl range below.
var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyInsert:     key.KeyInsert,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
	tcell.KeyF1:         key.KeyF1,
	tcell.KeyF2:         key.KeyF2,
	tcell.KeyF3:         key.KeyF3,
	tcell.KeyF4:         key.KeyF4,
	tcell.KeyF5:         key.KeyF5,
	tcell.KeyF6:         key.KeyF6,
	tcell.KeyF7:         key.KeyF7,
	tcell.KeyF8:         key.KeyF8,
	tcell.KeyF9:         key.KeyF9,
	tcell.KeyF10:        key.KeyF10,
	tcell.KeyF11:        key.KeyF11,
	tcell.KeyF12:        key.KeyF12,
}

// TranslateKey converts a tcell key event into an editor key event.
// The second return is false for keys the editor has no name for.
func TranslateKey(ev *tcell.EventKey) (key.Event, bool) {
	mods := translateMods(ev.Modifiers())

	if k, ok := specialKeys[ev.Key()]; ok {
		return key.NewSpecialEvent(k, mods), true
	}

	switch {
	case ev.Key() == tcell.KeyRune:
		return key.NewRuneEvent(ev.Rune(), mods), true
	case ev.Key() == tcell.KeyCtrlSpace:
		return key.NewRuneEvent(' ', mods.With(key.ModCtrl)), true
	case ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ:
		r := 'a' + rune(ev.Key()-tcell.KeyCtrlA)
		return key.NewRuneEvent(r, mods.With(key.ModCtrl)), true
	}
	return key.Event{}, false
}

// translateMods converts the tcell modifier mask.
func translateMods(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}
	return mods
}
