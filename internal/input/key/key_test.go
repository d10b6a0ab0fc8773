package key

import "testing"

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyNone, "None"},
		{KeyEscape, "Escape"},
		{KeyEnter, "Enter"},
		{KeyBackspace, "Backspace"},
		{KeyPageDown, "PageDown"},
		{KeyDown, "Down"},
		{KeyF1, "F1"},
		{KeyF12, "F12"},
		{KeyRune, "Rune"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"escape", KeyEscape},
		{"Esc", KeyEscape},
		{"ENTER", KeyEnter},
		{"return", KeyEnter},
		{"cr", KeyEnter},
		{"bs", KeyBackspace},
		{"del", KeyDelete},
		{"pgup", KeyPageUp},
		{"down", KeyDown},
		{"f5", KeyF5},
		{" Home ", KeyHome},
		{"nope", KeyNone},
		{"", KeyNone},
	}
	for _, tt := range tests {
		if got := KeyFromName(tt.name); got != tt.want {
			t.Errorf("KeyFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestKeyPredicates(t *testing.T) {
	if !KeyF5.IsFunctionKey() || KeyEnter.IsFunctionKey() {
		t.Error("IsFunctionKey misclassified")
	}
	if !KeyLeft.IsArrowKey() || KeyHome.IsArrowKey() {
		t.Error("IsArrowKey misclassified")
	}
	if !KeyEscape.IsSpecial() || KeyRune.IsSpecial() || KeyNone.IsSpecial() {
		t.Error("IsSpecial misclassified")
	}
}
