package rotladder

import (
	"encoding/json"
	"fmt"
	"time"
)

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure for a script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences taps, waits and snapshots across frames. Run it headless
// with Replay or attach it to a window with RunConfig.Script.
//
// Supported actions:
//
//	{"action": "tap"}
//	{"action": "wait", "frames": 30}
//	{"action": "snapshot", "label": "after-first-node"}
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	frame     int
	done      bool
	snapshots []Snapshot
}

// LoadScript parses a JSON script.
func LoadScript(jsonData []byte) (*Script, error) {
	var file scriptFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range file.Steps {
		switch st.Action {
		case "tap", "wait", "snapshot":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: file.Steps}, nil
}

// Done reports whether every step has been executed.
func (s *Script) Done() bool {
	return s.done
}

// Snapshots returns the snapshots taken so far.
func (s *Script) Snapshots() []Snapshot {
	return s.snapshots
}

// step advances the script by one frame. tap is called for "tap" actions.
func (s *Script) step(r *Renderer, tap func()) {
	if s.done {
		return
	}
	s.frame++
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "tap":
		tap()
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "snapshot":
		snap := r.Snapshot(st.Label)
		snap.Frame = s.frame
		s.snapshots = append(s.snapshots, snap)
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 {
		s.done = true
	}
}

// Replay runs the script against r without a window, advancing r by dt after
// each frame's step. It returns the collected snapshots, or an error if the
// script has not finished after maxFrames frames.
func Replay(r *Renderer, s *Script, dt time.Duration, maxFrames int) ([]Snapshot, error) {
	tap := func() { r.HandleTap(nil) }
	for i := 0; i < maxFrames; i++ {
		s.step(r, tap)
		if s.done {
			return s.snapshots, nil
		}
		r.Update(dt)
	}
	return s.snapshots, fmt.Errorf("replay: script not finished after %d frames", maxFrames)
}
