package rotladder

import "math"

// State is the scale progression of one node. A node rests at prevScale 0 or
// 1 with dir 0; while animating, dir is +1 or -1 and scale moves toward
// prevScale+dir.
type State struct {
	scale     float64
	dir       int
	prevScale float64
}

// Scale returns the current scale.
func (s *State) Scale() float64 { return s.scale }

// Dir returns the animation direction, 0 when idle.
func (s *State) Dir() int { return s.dir }

// Idle reports whether no animation is in progress.
func (s *State) Idle() bool { return s.dir == 0 }

// Update advances the scale by one tick. When the scale has moved more than a
// full step from its rest position it snaps to prevScale+dir, goes idle and
// Update returns true.
func (s *State) Update() bool {
	s.scale += UpdateValue(s.scale, s.dir, lines, 1)
	if math.Abs(s.scale-s.prevScale) > 1 {
		s.scale = s.prevScale + float64(s.dir)
		s.dir = 0
		s.prevScale = s.scale
		return true
	}
	return false
}

// StartUpdating starts an animation away from the current rest position.
// It returns false and changes nothing when an animation is already running.
func (s *State) StartUpdating() bool {
	if s.dir != 0 {
		return false
	}
	s.dir = int(1 - 2*s.prevScale)
	return true
}
