package key

import (
	"errors"
	"testing"
)

func TestParseCanonicalForms(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"a", NewRuneEvent('a', ModNone)},
		{"A", NewRuneEvent('A', ModNone)},
		{"-", NewRuneEvent('-', ModNone)},
		{"+", NewRuneEvent('+', ModNone)},
		{"C-c", NewRuneEvent('c', ModCtrl)},
		{"C-x", NewRuneEvent('x', ModCtrl)},
		{"C-S-c", NewRuneEvent('c', ModCtrl|ModShift)},
		{"C--", NewRuneEvent('-', ModCtrl)},
		{"A-x", NewRuneEvent('x', ModAlt)},
		{"M-c", NewRuneEvent('c', ModMeta)},
		{"C-A-Down", NewSpecialEvent(KeyDown, ModCtrl|ModAlt)},
		{"S-Down", NewSpecialEvent(KeyDown, ModShift)},
		{"Enter", NewSpecialEvent(KeyEnter, ModNone)},
		{"Escape", NewSpecialEvent(KeyEscape, ModNone)},
		{"Esc", NewSpecialEvent(KeyEscape, ModNone)},
		{"Backspace", NewSpecialEvent(KeyBackspace, ModNone)},
		{"BS", NewSpecialEvent(KeyBackspace, ModNone)},
		{"Delete", NewSpecialEvent(KeyDelete, ModNone)},
		{"Home", NewSpecialEvent(KeyHome, ModNone)},
		{"C-Home", NewSpecialEvent(KeyHome, ModCtrl)},
		{"PageUp", NewSpecialEvent(KeyPageUp, ModNone)},
		{"PgDn", NewSpecialEvent(KeyPageDown, ModNone)},
		{"F5", NewSpecialEvent(KeyF5, ModNone)},
		{"F12", NewSpecialEvent(KeyF12, ModNone)},
		{"Space", NewRuneEvent(' ', ModNone)},
		{"C-Space", NewRuneEvent(' ', ModCtrl)},
		{" C-c ", NewRuneEvent('c', ModCtrl)},
	}
	for _, tt := range tests {
		got, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.spec, err)
			continue
		}
		if !got.Equals(tt.want) {
			t.Errorf("Parse(%q) = %#v, want %#v", tt.spec, got, tt.want)
		}
	}
}

func TestParseLongForms(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"Ctrl+C", NewRuneEvent('c', ModCtrl)},
		{"Ctrl+Shift+V", NewRuneEvent('v', ModCtrl|ModShift)},
		{"Alt+F4", NewSpecialEvent(KeyF4, ModAlt)},
		{"Shift+Down", NewSpecialEvent(KeyDown, ModShift)},
		{"Cmd+S", NewRuneEvent('s', ModMeta)},
		{"ctrl+shift+d", NewRuneEvent('d', ModCtrl|ModShift)},
	}
	for _, tt := range tests {
		got, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.spec, err)
			continue
		}
		if !got.Equals(tt.want) {
			t.Errorf("Parse(%q) = %#v, want %#v", tt.spec, got, tt.want)
		}
	}
}

func TestParseCaseFoldsIntoShift(t *testing.T) {
	upper, err := Parse("C-V")
	if err != nil {
		t.Fatal(err)
	}
	shifted, err := Parse("C-S-v")
	if err != nil {
		t.Fatal(err)
	}
	if !upper.Equals(shifted) {
		t.Errorf("C-V = %#v, C-S-v = %#v, want equal", upper, shifted)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse(""); !errors.Is(err, ErrEmptySpec) {
		t.Errorf("Parse(\"\") error = %v, want ErrEmptySpec", err)
	}
	for _, spec := range []string{"C-", "NotAKey", "Bogus+X", "abc"} {
		if _, err := Parse(spec); !errors.Is(err, ErrInvalidSpec) {
			t.Errorf("Parse(%q) error = %v, want ErrInvalidSpec", spec, err)
		}
	}
}

func TestParseStringRoundTrip(t *testing.T) {
	specs := []string{
		"a", "A", "-", "C-c", "C-S-c", "C-S-v", "S-Down", "C-A-Down",
		"Enter", "Tab", "Backspace", "Delete", "Home", "End", "C-Home",
		"C-End", "S-Home", "PageUp", "PageDown", "F5", "Space", "C-Space",
	}
	for _, spec := range specs {
		event, err := Parse(spec)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", spec, err)
			continue
		}
		if got := event.String(); got != spec {
			t.Errorf("Parse(%q).String() = %q, want canonical fixed point", spec, got)
		}
		again, err := Parse(event.String())
		if err != nil {
			t.Errorf("Parse(%q) error: %v", event.String(), err)
			continue
		}
		if !again.Equals(event) {
			t.Errorf("reparsing %q changed the event", spec)
		}
	}
}

func TestNormalizeSpec(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{"Ctrl+Shift+V", "C-S-v"},
		{"C-V", "C-S-v"},
		{"ctrl+c", "C-c"},
		{"Shift+Down", "S-Down"},
		{"esc", "Escape"},
		{"S-a", "A"},
	}
	for _, tt := range tests {
		got, err := NormalizeSpec(tt.spec)
		if err != nil {
			t.Errorf("NormalizeSpec(%q) error: %v", tt.spec, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeSpec(%q) = %q, want %q", tt.spec, got, tt.want)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid spec")
		}
	}()
	MustParse("NotAKey")
}
