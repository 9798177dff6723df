package rotladder

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween/ease"
)

// Layout describes the drawing surface the chain is placed on.
type Layout struct {
	Width, Height float64
	Nodes         int
}

// Style controls how glyphs are painted. Ease, when set, remaps each
// segment's rotation progress.
type Style struct {
	Fore         Color
	Back         Color
	StrokeFactor float64
	SizeFactor   float64
	Ease         ease.TweenFunc
}

// DefaultStyle is green rungs on a near-black background.
var DefaultStyle = Style{
	Fore:         Color{R: 0x38 / 255.0, G: 0x8E / 255.0, B: 0x3C / 255.0, A: 1},
	Back:         Color{R: 0x21 / 255.0, G: 0x21 / 255.0, B: 0x21 / 255.0, A: 1},
	StrokeFactor: 90,
	SizeFactor:   3,
}

// Segment is one stroked line of a glyph.
type Segment struct {
	From, To Vec2
}

// Glyph holds the geometry of one node's rung.
type Glyph struct {
	Segments    [lines]Segment
	StrokeWidth float64
}

// GlyphAt computes node i's glyph at the given scale. At scale 0 both
// segments lie on one horizontal bar; as the scale reaches 0.5 they rotate
// down into two vertical rails.
func GlyphAt(layout Layout, style Style, i int, scale float64) Glyph {
	nodes := layout.Nodes
	if nodes < 1 {
		nodes = DefaultNodes
	}
	sizeFactor := style.SizeFactor
	if sizeFactor <= 0 {
		sizeFactor = DefaultStyle.SizeFactor
	}
	strokeFactor := style.StrokeFactor
	if strokeFactor <= 0 {
		strokeFactor = DefaultStyle.StrokeFactor
	}

	gap := layout.Height / float64(nodes+1)
	size := gap / sizeFactor
	cx := layout.Width / 2
	cy := 0.9*layout.Height - gap*float64(i)
	sc := DivideScale(scale, 0, 2)

	g := Glyph{StrokeWidth: math.Min(layout.Width, layout.Height) / strokeFactor}
	for j := 0; j < lines; j++ {
		sign := float64(1 - 2*j)
		f := DivideScale(sc, j, lines)
		if style.Ease != nil {
			f = float64(style.Ease(float32(f), 0, 1, 1))
		}
		theta := math.Pi / 2 * sign * f
		length := 2 * size * sign
		from := Vec2{X: cx - size + 2*size*float64(j), Y: cy}
		g.Segments[j] = Segment{
			From: from,
			To: Vec2{
				X: from.X + length*math.Cos(theta),
				Y: from.Y + length*math.Sin(theta),
			},
		}
	}
	return g
}

// DrawNode paints node i's glyph onto dst.
func DrawNode(dst *ebiten.Image, layout Layout, style Style, i int, scale float64) {
	g := GlyphAt(layout, style, i, scale)
	clr := style.Fore.toRGBA()
	w := float32(g.StrokeWidth)
	for _, s := range g.Segments {
		vector.StrokeLine(dst,
			float32(s.From.X), float32(s.From.Y), float32(s.To.X), float32(s.To.Y),
			w, clr, true)
		// Round caps.
		vector.FillCircle(dst, float32(s.From.X), float32(s.From.Y), w/2, clr, true)
		vector.FillCircle(dst, float32(s.To.X), float32(s.To.Y), w/2, clr, true)
	}
}
