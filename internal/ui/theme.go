package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lineclip/lineclip/internal/config"
)

// Theme holds the resolved terminal styles.
type Theme struct {
	// Text styles ordinary buffer cells.
	Text tcell.Style

	// Selection styles selected cells and secondary carets.
	Selection tcell.Style

	// Status styles the status line.
	Status tcell.Style
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	theme, err := ThemeFromConfig(config.New().Theme())
	if err != nil {
		panic(err)
	}
	return theme
}

// ThemeFromConfig resolves configured hex colors into styles.
func ThemeFromConfig(tc config.ThemeConfig) (Theme, error) {
	bg, err := parseColor(tc.Background)
	if err != nil {
		return Theme{}, err
	}
	fg, err := parseColor(tc.Foreground)
	if err != nil {
		return Theme{}, err
	}
	sel, err := parseColor(tc.Selection)
	if err != nil {
		return Theme{}, err
	}
	statusBg, err := parseColor(tc.StatusBackground)
	if err != nil {
		return Theme{}, err
	}
	statusFg, err := parseColor(tc.StatusForeground)
	if err != nil {
		return Theme{}, err
	}

	base := tcell.StyleDefault.Background(bg).Foreground(fg)
	return Theme{
		Text:      base,
		Selection: base.Background(sel),
		Status:    tcell.StyleDefault.Background(statusBg).Foreground(statusFg),
	}, nil
}

// parseColor converts "#rrggbb" to a terminal color.
func parseColor(hex string) (tcell.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}
