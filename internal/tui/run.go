package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/phanxgames/rotladder"
)

// Run starts the terminal host for r and blocks until the user quits.
func Run(r *rotladder.Renderer, style rotladder.Style) error {
	p := tea.NewProgram(New(r, style), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
