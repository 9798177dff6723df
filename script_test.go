package rotladder

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestLoadScript(t *testing.T) {
	s, err := LoadScript([]byte(`{
		"steps": [
			{"action": "snapshot", "label": "initial"},
			{"action": "tap"},
			{"action": "wait", "frames": 3},
			{"action": "snapshot", "label": "after-tap"}
		]
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(s.steps))
	}
	if s.steps[2].Action != "wait" || s.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
}

func TestLoadScript_Invalid(t *testing.T) {
	if _, err := LoadScript([]byte(`not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadScript_Empty(t *testing.T) {
	if _, err := LoadScript([]byte(`{"steps": []}`)); err == nil {
		t.Error("expected error for empty steps")
	}
}

func TestLoadScript_UnknownAction(t *testing.T) {
	_, err := LoadScript([]byte(`{"steps": [{"action": "click"}]}`))
	if err == nil || !strings.Contains(err.Error(), "click") {
		t.Errorf("expected unknown action error, got %v", err)
	}
}

func TestReplayTapAndWait(t *testing.T) {
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "snapshot", "label": "initial"},
		{"action": "tap"},
		{"action": "wait", "frames": 10},
		{"action": "snapshot", "label": "moving"},
		{"action": "wait", "frames": 200},
		{"action": "snapshot", "label": "done"}
	]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := NewRenderer(Options{Nodes: 5, Period: testPeriod, Mode: SweepNode})
	snaps, err := Replay(r, s, testPeriod, 1000)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if !s.Done() {
		t.Error("script should be done")
	}
	if len(snaps) != 3 {
		t.Fatalf("expected 3 snapshots, got %d", len(snaps))
	}

	if snaps[0].Label != "initial" || snaps[0].Running || snaps[0].Scales[0] != 0 {
		t.Errorf("initial snapshot = %+v", snaps[0])
	}
	if !snaps[1].Running || snaps[1].Scales[0] <= 0 || snaps[1].Scales[0] >= 1 {
		t.Errorf("moving snapshot = %+v", snaps[1])
	}
	if snaps[2].Running || snaps[2].Cursor != 1 || snaps[2].Scales[0] != 1 {
		t.Errorf("done snapshot = %+v", snaps[2])
	}
	if snaps[1].Frame <= snaps[0].Frame || snaps[2].Frame <= snaps[1].Frame {
		t.Errorf("frames not increasing: %d %d %d", snaps[0].Frame, snaps[1].Frame, snaps[2].Frame)
	}
}

func TestReplayFrameLimit(t *testing.T) {
	s, err := LoadScript([]byte(`{"steps": [{"action": "wait", "frames": 50}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := Replay(NewRenderer(Options{}), s, testPeriod, 10); err == nil {
		t.Error("expected frame limit error")
	}
}

func TestReplayExampleScript(t *testing.T) {
	data, err := os.ReadFile("examples/scripts/sweep.json")
	if err != nil {
		t.Fatalf("read example script: %v", err)
	}
	s, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := NewRenderer(Options{Nodes: 5})
	snaps, err := Replay(r, s, time.Second/60, 5000)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if len(snaps) != 4 {
		t.Fatalf("expected 4 snapshots, got %d", len(snaps))
	}

	fwd := snaps[2]
	if fwd.Running || fwd.Cursor != 4 || fwd.Dir != -1 {
		t.Errorf("forward snapshot = %+v, want stopped at 4 sweeping back", fwd)
	}
	for i, sc := range fwd.Scales {
		if sc != 1 {
			t.Errorf("forward: node %d scale %v, want 1", i, sc)
		}
	}

	back := snaps[3]
	if back.Running || back.Cursor != 0 || back.Dir != 1 {
		t.Errorf("return snapshot = %+v, want stopped at 0 sweeping forward", back)
	}
	for i, sc := range back.Scales {
		if sc != 0 {
			t.Errorf("return: node %d scale %v, want 0", i, sc)
		}
	}
}
