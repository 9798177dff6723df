// Package tui renders a rotladder chain in the terminal with bubbletea.
//
// Each row is one node, the tail at the top: a cursor marker, the node's two
// segments drawn with box-drawing runes, and a spring-smoothed progress bar of
// the node's scale. Space, enter or a left click taps; q quits.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"github.com/phanxgames/rotladder"
)

const (
	defaultBarWidth = 20
	springFrequency = 8.0
	springDamping   = 0.7
)

type tickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the bubbletea model for the terminal host.
type Model struct {
	renderer *rotladder.Renderer
	style    rotladder.Style
	styles   styles
	period   time.Duration

	spring harmonica.Spring
	bars   []float64
	vel    []float64

	barWidth int
	quitting bool
}

// New creates a model driving r. The animator period doubles as the redraw
// interval.
func New(r *rotladder.Renderer, style rotladder.Style) Model {
	period := r.Animator().Period
	fps := int(time.Second / period)
	if fps < 1 {
		fps = 1
	}
	n := r.Ladder().Chain().Len()
	return Model{
		renderer: r,
		style:    style,
		styles:   newStyles(style),
		period:   period,
		spring:   harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping),
		bars:     make([]float64, n),
		vel:      make([]float64, n),
		barWidth: defaultBarWidth,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.period)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case " ", "enter":
			m.renderer.HandleTap(nil)
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.renderer.HandleTap(nil)
		}
		return m, nil

	case tickMsg:
		m.renderer.Update(m.period)
		scales := m.renderer.Ladder().Chain().Scales()
		for i, s := range scales {
			m.bars[i], m.vel[i] = m.spring.Update(m.bars[i], m.vel[i], s)
		}
		return m, tickCmd(m.period)

	case tea.WindowSizeMsg:
		m.barWidth = defaultBarWidth
		if w := msg.Width - 12; w < m.barWidth {
			m.barWidth = max(w, 4)
		}
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	ladder := m.renderer.Ladder()
	chain := ladder.Chain()
	cursor := ladder.Current().Index()

	var b strings.Builder
	m.renderer.Render(func(i int, scale float64) {
		marker := "  "
		if i == cursor {
			marker = m.styles.cursor.Render("▸ ")
		}
		b.WriteString(marker)
		b.WriteString(m.styles.glyph.Render(GlyphRunes(m.style, chain.Len(), i, scale)))
		b.WriteString(" ")
		b.WriteString(m.bar(m.bars[i]))
		b.WriteString("\n")
	})

	arrow := "↓"
	if ladder.Dir() < 0 {
		arrow = "↑"
	}
	state := "idle"
	if m.renderer.Running() {
		state = "running"
	}
	b.WriteString("\n")
	b.WriteString(m.styles.status.Render(fmt.Sprintf("node %d  sweep %s  %s  %s", cursor, arrow, state, m.renderer.Mode())))
	b.WriteString("\n")
	b.WriteString(m.styles.help.Render("space/click: tap  q: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) bar(v float64) string {
	filled := int(math.Round(clamp01(v) * float64(m.barWidth)))
	return m.styles.barFill.Render(strings.Repeat("█", filled)) +
		m.styles.barEmpty.Render(strings.Repeat("░", m.barWidth-filled))
}

// GlyphRunes draws node i's two segments as box-drawing runes: "──" at rest
// at 0, "╲╱" midway, "││" once both segments have rotated down.
func GlyphRunes(style rotladder.Style, nodes, i int, scale float64) string {
	g := rotladder.GlyphAt(rotladder.Layout{Width: 1, Height: 1, Nodes: nodes}, style, i, scale)
	left := g.Segments[0]
	right := g.Segments[1]
	a0 := math.Atan2(left.To.Y-left.From.Y, left.To.X-left.From.X)
	a1 := math.Atan2(right.To.Y-right.From.Y, right.From.X-right.To.X)
	return string([]rune{segmentRune(a0, '╲'), segmentRune(a1, '╱')})
}

// segmentRune picks a rune for a segment rotated angle radians from
// horizontal toward vertical.
func segmentRune(angle float64, diagonal rune) rune {
	f := angle / (math.Pi / 2)
	switch {
	case f < 1.0/3:
		return '─'
	case f < 2.0/3:
		return diagonal
	default:
		return '│'
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
