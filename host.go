package rotladder

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ShowFPS       bool
	Style         Style
	// Script, if set, is stepped every frame before input is read.
	Script *Script
}

// Host is an ebiten.Game that shows a Renderer's chain and forwards pointer
// presses and new touches to Renderer.HandleTap.
type Host struct {
	renderer *Renderer
	cfg      RunConfig
	layout   Layout

	pendingTaps int
	touchBuf    []ebiten.TouchID

	fpsAccum float64
	fpsText  string
}

// NewHost creates a Host for r. Zero colors and factors fall back to
// DefaultStyle.
func NewHost(r *Renderer, cfg RunConfig) *Host {
	if cfg.Style.Fore == (Color{}) {
		cfg.Style.Fore = DefaultStyle.Fore
	}
	if cfg.Style.Back == (Color{}) {
		cfg.Style.Back = DefaultStyle.Back
	}
	return &Host{
		renderer: r,
		cfg:      cfg,
		layout: Layout{
			Width:  float64(cfg.Width),
			Height: float64(cfg.Height),
			Nodes:  r.ladder.chain.Len(),
		},
	}
}

// InjectTap queues a synthetic tap. It is consumed on the next Update.
func (h *Host) InjectTap() {
	h.pendingTaps++
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	dt := time.Second / time.Duration(ebiten.TPS())

	if h.cfg.Script != nil {
		h.cfg.Script.step(h.renderer, h.InjectTap)
	}

	taps := h.pendingTaps
	h.pendingTaps = 0
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		taps++
	}
	h.touchBuf = inpututil.AppendJustPressedTouchIDs(h.touchBuf[:0])
	taps += len(h.touchBuf)
	for ; taps > 0; taps-- {
		h.renderer.HandleTap(nil)
	}

	h.renderer.Update(dt)

	if h.cfg.ShowFPS {
		h.fpsAccum += dt.Seconds()
		if h.fpsAccum >= 0.5 || h.fpsText == "" {
			h.fpsAccum = 0
			h.fpsText = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
		}
	}
	return nil
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(h.cfg.Style.Back.toRGBA())
	h.renderer.Render(func(i int, scale float64) {
		DrawNode(screen, h.layout, h.cfg.Style, i, scale)
	})
	if h.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, h.fpsText)
	}
}

// Layout implements ebiten.Game. The chain is laid out on the full window.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.layout.Width = float64(outsideWidth)
	h.layout.Height = float64(outsideHeight)
	return outsideWidth, outsideHeight
}

// Run opens a window and drives r until the window is closed.
func Run(r *Renderer, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 480
	}
	if cfg.Height <= 0 {
		cfg.Height = 640
	}
	if cfg.Title == "" {
		cfg.Title = "Rot Ladder"
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(NewHost(r, cfg))
}
