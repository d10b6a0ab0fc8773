package ui_test

import (
	"testing"

	"github.com/lineclip/lineclip/internal/ui"
)

func TestEnsureVisible(t *testing.T) {
	tests := []struct {
		name     string
		view     ui.View
		row      uint32
		col      int
		wantTop  uint32
		wantLeft int
	}{
		{"already visible", ui.View{Top: 2, Left: 0}, 3, 5, 2, 0},
		{"scroll down", ui.View{Top: 0, Left: 0}, 12, 0, 3, 0},
		{"scroll up", ui.View{Top: 8, Left: 0}, 2, 0, 2, 0},
		{"scroll right", ui.View{Top: 0, Left: 0}, 0, 25, 0, 6},
		{"scroll left", ui.View{Top: 0, Left: 10}, 0, 4, 0, 4},
		{"last visible row", ui.View{Top: 0, Left: 0}, 9, 0, 0, 0},
		{"last visible col", ui.View{Top: 0, Left: 0}, 0, 19, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.view
			v.EnsureVisible(tt.row, tt.col, 20, 10)
			if v.Top != tt.wantTop || v.Left != tt.wantLeft {
				t.Errorf("EnsureVisible(%d, %d) = {Top: %d, Left: %d}, want {Top: %d, Left: %d}",
					tt.row, tt.col, v.Top, v.Left, tt.wantTop, tt.wantLeft)
			}
		})
	}
}

func TestEnsureVisibleDegenerateWindow(t *testing.T) {
	v := ui.View{Top: 5, Left: 5}
	v.EnsureVisible(20, 40, 0, 0)
	if v.Top != 5 || v.Left != 5 {
		t.Errorf("zero-size window moved the view to {Top: %d, Left: %d}", v.Top, v.Left)
	}
}
