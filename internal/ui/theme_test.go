package ui_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lineclip/lineclip/internal/config"
	"github.com/lineclip/lineclip/internal/ui"
)

func TestThemeFromConfig(t *testing.T) {
	tc := config.ThemeConfig{
		Background:       "#000000",
		Foreground:       "#ffffff",
		Selection:        "#0000ff",
		StatusBackground: "#222222",
		StatusForeground: "#dddddd",
	}
	theme, err := ui.ThemeFromConfig(tc)
	if err != nil {
		t.Fatalf("ThemeFromConfig() error = %v", err)
	}

	fg, bg, _ := theme.Text.Decompose()
	if bg != tcell.NewRGBColor(0, 0, 0) {
		t.Errorf("Text background = %v, want black", bg)
	}
	if fg != tcell.NewRGBColor(255, 255, 255) {
		t.Errorf("Text foreground = %v, want white", fg)
	}

	selFg, selBg, _ := theme.Selection.Decompose()
	if selBg != tcell.NewRGBColor(0, 0, 255) {
		t.Errorf("Selection background = %v, want blue", selBg)
	}
	if selFg != fg {
		t.Errorf("Selection foreground = %v, want %v", selFg, fg)
	}
}

func TestThemeFromConfigBadColor(t *testing.T) {
	tc := config.ThemeConfig{
		Background:       "not-a-color",
		Foreground:       "#ffffff",
		Selection:        "#0000ff",
		StatusBackground: "#222222",
		StatusForeground: "#dddddd",
	}
	if _, err := ui.ThemeFromConfig(tc); err == nil {
		t.Error("ThemeFromConfig() with bad hex should fail")
	}
}

func TestDefaultTheme(t *testing.T) {
	theme := ui.DefaultTheme()
	if theme.Text == tcell.StyleDefault {
		t.Error("default theme should set explicit colors")
	}
	if theme.Selection == theme.Text {
		t.Error("selection style should differ from text style")
	}
}
