package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/phanxgames/rotladder"
)

type styles struct {
	glyph    lipgloss.Style
	cursor   lipgloss.Style
	barFill  lipgloss.Style
	barEmpty lipgloss.Style
	status   lipgloss.Style
	help     lipgloss.Style
}

func newStyles(style rotladder.Style) styles {
	fore := lipgloss.Color(hexColor(style.Fore))
	return styles{
		glyph:    lipgloss.NewStyle().Bold(true).Foreground(fore),
		cursor:   lipgloss.NewStyle().Foreground(fore),
		barFill:  lipgloss.NewStyle().Foreground(fore),
		barEmpty: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#CCCCCC", Dark: "#444444"}),
		status: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"}),
		help: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"}),
	}
}

// hexColor formats c as "#RRGGBB", ignoring alpha.
func hexColor(c rotladder.Color) string {
	to8 := func(v float64) uint8 {
		return uint8(clamp01(v)*255 + 0.5)
	}
	return fmt.Sprintf("#%02X%02X%02X", to8(c.R), to8(c.G), to8(c.B))
}
