package editor

import (
	"testing"

	"github.com/lineclip/lineclip/internal/engine"
)

func TestIsIntraLine(t *testing.T) {
	tests := []struct {
		name    string
		content string
		sels    []engine.Selection
		want    bool
	}{
		{
			name:    "no selections",
			content: "line 1",
			sels:    nil,
			want:    false,
		},
		{
			name:    "caret",
			content: "line 1\nline 2",
			sels:    []engine.Selection{{Anchor: 3, Head: 3}},
			want:    false,
		},
		{
			name:    "range inside one line",
			content: "line 1\nline 2",
			sels:    []engine.Selection{{Anchor: 1, Head: 4}},
			want:    true,
		},
		{
			name:    "range including the terminator",
			content: "line 1\nline 2",
			sels:    []engine.Selection{{Anchor: 1, Head: 7}},
			want:    true,
		},
		{
			name:    "backward range inside one line",
			content: "line 1\nline 2",
			sels:    []engine.Selection{{Anchor: 4, Head: 1}},
			want:    true,
		},
		{
			name:    "range spanning two lines",
			content: "line 1\nline 2",
			sels:    []engine.Selection{{Anchor: 4, Head: 9}},
			want:    false,
		},
		{
			name:    "two ranges on one line",
			content: "line 1\nline 2",
			sels:    []engine.Selection{{Anchor: 0, Head: 2}, {Anchor: 3, Head: 5}},
			want:    true,
		},
		{
			name:    "two ranges on different lines",
			content: "line 1\nline 2",
			sels:    []engine.Selection{{Anchor: 1, Head: 3}, {Anchor: 8, Head: 9}},
			want:    false,
		},
		{
			name:    "range and caret on one line",
			content: "line 1\nline 2",
			sels:    []engine.Selection{{Anchor: 0, Head: 2}, {Anchor: 4, Head: 4}},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := engine.New(engine.WithContent(tt.content))
			if got := isIntraLine(e, tt.sels); got != tt.want {
				t.Errorf("isIntraLine(%v) = %v, want %v", tt.sels, got, tt.want)
			}
		})
	}
}

func TestLineSpanOf(t *testing.T) {
	e := engine.New(engine.WithContent("line 1\nline 2\nline 3"))

	tests := []struct {
		name string
		sel  engine.Selection
		want engine.Range
	}{
		{
			name: "caret expands to its line",
			sel:  engine.Selection{Anchor: 8, Head: 8},
			want: engine.Range{Start: 7, End: 14},
		},
		{
			name: "caret at line start stays on that line",
			sel:  engine.Selection{Anchor: 7, Head: 7},
			want: engine.Range{Start: 7, End: 14},
		},
		{
			name: "range ending on a line start takes that line in",
			sel:  engine.Selection{Anchor: 7, Head: 14},
			want: engine.Range{Start: 7, End: 20},
		},
		{
			name: "last line has no terminator",
			sel:  engine.Selection{Anchor: 15, Head: 15},
			want: engine.Range{Start: 14, End: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lineSpanOf(e, tt.sel); got != tt.want {
				t.Errorf("lineSpanOf(%v) = %v, want %v", tt.sel, got, tt.want)
			}
		})
	}
}

func TestExpandSelections(t *testing.T) {
	e := engine.New(engine.WithContent("line 1\nline 2\nline 3\nline 4"))

	t.Run("adjacent lines stay separate", func(t *testing.T) {
		blocks := expandSelections(e, []engine.Selection{
			{Anchor: 1, Head: 1},
			{Anchor: 8, Head: 8},
		})
		if len(blocks) != 2 {
			t.Fatalf("block count = %d, want 2", len(blocks))
		}
		if blocks[0].span != (engine.Range{Start: 0, End: 7}) {
			t.Errorf("blocks[0].span = %v", blocks[0].span)
		}
		if blocks[1].span != (engine.Range{Start: 7, End: 14}) {
			t.Errorf("blocks[1].span = %v", blocks[1].span)
		}
	})

	t.Run("same line merges", func(t *testing.T) {
		blocks := expandSelections(e, []engine.Selection{
			{Anchor: 1, Head: 1},
			{Anchor: 3, Head: 3},
		})
		if len(blocks) != 1 {
			t.Fatalf("block count = %d, want 1", len(blocks))
		}
		if got := len(blocks[0].sels); got != 2 {
			t.Errorf("merged block holds %d selections, want 2", got)
		}
	})

	t.Run("overlapping expansions merge and grow", func(t *testing.T) {
		blocks := expandSelections(e, []engine.Selection{
			{Anchor: 1, Head: 8},
			{Anchor: 12, Head: 15},
		})
		if len(blocks) != 1 {
			t.Fatalf("block count = %d, want 1", len(blocks))
		}
		want := engine.Range{Start: 0, End: 21}
		if blocks[0].span != want {
			t.Errorf("merged span = %v, want %v", blocks[0].span, want)
		}
		if got := len(blocks[0].sels); got != 2 {
			t.Errorf("merged block holds %d selections, want 2", got)
		}
	})

	t.Run("backward selection expands its cover", func(t *testing.T) {
		blocks := expandSelections(e, []engine.Selection{{Anchor: 9, Head: 1}})
		if len(blocks) != 1 {
			t.Fatalf("block count = %d, want 1", len(blocks))
		}
		want := engine.Range{Start: 0, End: 14}
		if blocks[0].span != want {
			t.Errorf("span = %v, want %v", blocks[0].span, want)
		}
	})
}

func TestHasNonEmpty(t *testing.T) {
	b := lineBlock{sels: []engine.Selection{{Anchor: 1, Head: 1}}}
	if b.hasNonEmpty() {
		t.Error("caret-only block reported non-empty")
	}
	b.sels = append(b.sels, engine.Selection{Anchor: 2, Head: 4})
	if !b.hasNonEmpty() {
		t.Error("block with a range reported empty")
	}
}

func TestCollectBlockText(t *testing.T) {
	e := engine.New(engine.WithContent("line 1\nline 2"))

	t.Run("terminated block kept as is", func(t *testing.T) {
		blocks := []lineBlock{{span: engine.Range{Start: 0, End: 7}}}
		if got := collectBlockText(e, blocks); got != "line 1\n" {
			t.Errorf("text = %q, want %q", got, "line 1\n")
		}
	})

	t.Run("unterminated block gains a newline", func(t *testing.T) {
		blocks := []lineBlock{{span: engine.Range{Start: 7, End: 13}}}
		if got := collectBlockText(e, blocks); got != "line 2\n" {
			t.Errorf("text = %q, want %q", got, "line 2\n")
		}
	})

	t.Run("empty blocks yield a bare newline", func(t *testing.T) {
		blocks := []lineBlock{{span: engine.Range{Start: 0, End: 0}}}
		if got := collectBlockText(e, blocks); got != "\n" {
			t.Errorf("text = %q, want %q", got, "\n")
		}
	})
}

func TestDropCovered(t *testing.T) {
	sels := []engine.Selection{
		{Anchor: 1, Head: 3},
		{Anchor: 8, Head: 8},
		{Anchor: 15, Head: 18},
	}
	got := dropCovered(sels, engine.Range{Start: 7, End: 14})
	if len(got) != 2 {
		t.Fatalf("kept %d selections, want 2", len(got))
	}
	if got[0] != (engine.Selection{Anchor: 1, Head: 3}) || got[1] != (engine.Selection{Anchor: 15, Head: 18}) {
		t.Errorf("kept %v", got)
	}
}
