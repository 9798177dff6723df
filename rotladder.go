package rotladder

import (
	"fmt"
	"strconv"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to ebiten.
type Color struct {
	R, G, B, A float64
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA" (the leading '#' is optional).
func ParseHexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("parse color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// RGBA implements color.Color, returning premultiplied components.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.toRGBA().RGBA()
}

// toRGBA converts a Color to a premultiplied colorRGBA.
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image.Fill.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
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

// Vec2 is a 2D point in screen coordinates (origin top-left, Y down).
type Vec2 struct {
	X, Y float64
}

// SweepMode selects when the Renderer stops its Animator.
type SweepMode uint8

const (
	SweepChain SweepMode = iota // one tap animates node after node until the chain end
	SweepNode                   // one tap animates a single node
)

// String returns the config name of the mode.
func (m SweepMode) String() string {
	switch m {
	case SweepChain:
		return "chain"
	case SweepNode:
		return "node"
	default:
		return fmt.Sprintf("SweepMode(%d)", uint8(m))
	}
}

// ParseSweepMode maps "chain" and "node" to their SweepMode.
func ParseSweepMode(s string) (SweepMode, error) {
	switch strings.ToLower(s) {
	case "", "chain":
		return SweepChain, nil
	case "node":
		return SweepNode, nil
	}
	return 0, fmt.Errorf("unknown sweep mode %q", s)
}

// Transition is the outcome of one Ladder update.
type Transition uint8

const (
	TransitionAnimating     Transition = iota // current node still in motion (or idle)
	TransitionNodeCompleted                   // node finished, cursor moved to its neighbor
	TransitionReversed                        // node finished at a chain end, direction flipped
)

func (t Transition) String() string {
	switch t {
	case TransitionAnimating:
		return "animating"
	case TransitionNodeCompleted:
		return "node-completed"
	case TransitionReversed:
		return "reversed"
	default:
		return fmt.Sprintf("Transition(%d)", uint8(t))
	}
}

// EventType identifies a kind of animation event.
type EventType uint8

const (
	EventStarted       EventType = iota // a node left its rest position
	EventNodeCompleted                  // a node reached rest and the cursor advanced
	EventReversed                       // a node reached rest at a chain end
	EventStopped                        // the animator stopped
)

func (t EventType) String() string {
	switch t {
	case EventStarted:
		return "started"
	case EventNodeCompleted:
		return "node-completed"
	case EventReversed:
		return "reversed"
	case EventStopped:
		return "stopped"
	default:
		return fmt.Sprintf("EventType(%d)", uint8(t))
	}
}

// Event describes a state change of the ladder. Node is the index of the node
// the event refers to; Dir is the ladder's sweep direction after the change.
type Event struct {
	Type  EventType
	Node  int
	Dir   int
	Scale float64
}

// EventSink receives animation events. Set one with Renderer.SetEventSink.
type EventSink interface {
	EmitEvent(event Event)
}

// Logger is the subset of a structured logger the Renderer writes to.
// *log.Logger from github.com/charmbracelet/log satisfies it.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
}
