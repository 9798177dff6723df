package rotladder

import (
	"testing"
	"time"
)

const testPeriod = 50 * time.Millisecond

type recordingSink struct {
	events []Event
}

func (s *recordingSink) EmitEvent(e Event) {
	s.events = append(s.events, e)
}

func (s *recordingSink) count(t EventType) int {
	n := 0
	for _, e := range s.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type countingLogger struct {
	calls int
}

func (l *countingLogger) Debug(msg interface{}, keyvals ...interface{}) {
	l.calls++
}

// runUntilStopped ticks r until its animator stops and returns the tick count.
func runUntilStopped(t *testing.T, r *Renderer, limit int) int {
	t.Helper()
	for i := 1; i <= limit; i++ {
		r.Update(testPeriod)
		if !r.Running() {
			return i
		}
	}
	t.Fatalf("renderer still running after %d ticks", limit)
	return 0
}

func TestNewRendererDefaults(t *testing.T) {
	r := NewRenderer(Options{})
	if r.Ladder().Chain().Len() != DefaultNodes {
		t.Errorf("nodes = %d, want %d", r.Ladder().Chain().Len(), DefaultNodes)
	}
	if r.Animator().Period != DefaultPeriod {
		t.Errorf("period = %v, want %v", r.Animator().Period, DefaultPeriod)
	}
	if r.Mode() != SweepChain {
		t.Errorf("mode = %v, want chain", r.Mode())
	}
	if r.Running() {
		t.Error("new renderer should be idle")
	}
}

func TestRendererTapWhileRunningIgnored(t *testing.T) {
	r := NewRenderer(Options{Nodes: 3, Period: testPeriod})
	if !r.HandleTap(nil) {
		t.Fatal("first tap should start the animation")
	}
	r.Update(testPeriod)
	scale := r.Ladder().Current().State().Scale()
	if r.HandleTap(nil) {
		t.Error("tap while running should be ignored")
	}
	if r.Ladder().Current().State().Scale() != scale {
		t.Error("ignored tap changed the scale")
	}
}

func TestRendererOnFrameBeforeEachTick(t *testing.T) {
	r := NewRenderer(Options{Nodes: 2, Period: testPeriod, Mode: SweepNode})
	frames := 0
	var scaleAtFrame []float64
	r.HandleTap(func() {
		frames++
		scaleAtFrame = append(scaleAtFrame, r.Ladder().Current().State().Scale())
	})
	ticks := runUntilStopped(t, r, 100)
	if frames != ticks {
		t.Errorf("frames = %d, ticks = %d", frames, ticks)
	}
	if scaleAtFrame[0] != 0 {
		t.Errorf("first frame saw scale %v, want 0 (frame runs before update)", scaleAtFrame[0])
	}
}

func TestRendererSweepChainFullPass(t *testing.T) {
	r := NewRenderer(Options{Nodes: 5, Period: testPeriod, Mode: SweepChain})
	sink := &recordingSink{}
	r.SetEventSink(sink)

	r.HandleTap(nil)
	ticks := runUntilStopped(t, r, 1000)
	if ticks != 5*31 {
		t.Errorf("forward sweep took %d ticks, want %d", ticks, 5*31)
	}

	l := r.Ladder()
	if l.Current().Index() != 4 || l.Dir() != -1 {
		t.Fatalf("cursor=%d dir=%d, want 4/-1", l.Current().Index(), l.Dir())
	}
	for i, s := range l.Chain().Scales() {
		if s != 1 {
			t.Errorf("node %d scale = %v, want 1", i, s)
		}
	}

	if got := sink.count(EventStarted); got != 5 {
		t.Errorf("started events = %d, want 5", got)
	}
	if got := sink.count(EventNodeCompleted); got != 4 {
		t.Errorf("node-completed events = %d, want 4", got)
	}
	if got := sink.count(EventReversed); got != 1 {
		t.Errorf("reversed events = %d, want 1", got)
	}
	last := sink.events[len(sink.events)-1]
	if last.Type != EventStopped || last.Node != 4 || last.Dir != -1 {
		t.Errorf("last event = %+v, want stopped at node 4 dir -1", last)
	}
	if first := sink.events[0]; first.Type != EventStarted || first.Node != 0 {
		t.Errorf("first event = %+v, want started at node 0", first)
	}

	// The next tap sweeps back to node 0.
	if !r.HandleTap(nil) {
		t.Fatal("tap after stop should restart")
	}
	runUntilStopped(t, r, 1000)
	if l.Current().Index() != 0 || l.Dir() != 1 {
		t.Fatalf("cursor=%d dir=%d, want 0/1", l.Current().Index(), l.Dir())
	}
	for i, s := range l.Chain().Scales() {
		if s != 0 {
			t.Errorf("node %d scale = %v, want 0", i, s)
		}
	}
}

func TestRendererSweepNodeStopsPerNode(t *testing.T) {
	r := NewRenderer(Options{Nodes: 3, Period: testPeriod, Mode: SweepNode})

	r.HandleTap(nil)
	if ticks := runUntilStopped(t, r, 100); ticks != 31 {
		t.Errorf("node 0 took %d ticks, want 31", ticks)
	}
	if r.Ladder().Current().Index() != 1 {
		t.Fatalf("cursor = %d, want 1", r.Ladder().Current().Index())
	}
	if s := r.Ladder().Current().State().Scale(); s != 0 {
		t.Errorf("node 1 moved without a tap: scale %v", s)
	}

	r.HandleTap(nil)
	runUntilStopped(t, r, 100)
	r.HandleTap(nil)
	runUntilStopped(t, r, 100)

	// Node 2 finished at the tail: cursor stays, direction flips.
	if r.Ladder().Current().Index() != 2 || r.Ladder().Dir() != -1 {
		t.Errorf("cursor=%d dir=%d, want 2/-1", r.Ladder().Current().Index(), r.Ladder().Dir())
	}
}

func TestRendererRenderDrawsWholeChain(t *testing.T) {
	r := NewRenderer(Options{Nodes: 4})
	var order []int
	r.Render(func(i int, scale float64) { order = append(order, i) })
	if len(order) != 4 || order[0] != 3 || order[3] != 0 {
		t.Errorf("render order = %v, want [3 2 1 0]", order)
	}
}

func TestRendererLogsEvents(t *testing.T) {
	r := NewRenderer(Options{Nodes: 1, Period: testPeriod})
	logger := &countingLogger{}
	r.SetLogger(logger)
	r.HandleTap(nil)
	runUntilStopped(t, r, 100)
	// started, reversed, stopped
	if logger.calls != 3 {
		t.Errorf("logger calls = %d, want 3", logger.calls)
	}
}

func TestRendererSnapshot(t *testing.T) {
	r := NewRenderer(Options{Nodes: 3, Period: testPeriod})
	r.HandleTap(nil)
	r.Update(testPeriod)
	snap := r.Snapshot("mid")
	if snap.Label != "mid" || snap.Cursor != 0 || snap.Dir != 1 || !snap.Running {
		t.Errorf("snapshot = %+v", snap)
	}
	if len(snap.Scales) != 3 || snap.Scales[0] <= 0 {
		t.Errorf("scales = %v", snap.Scales)
	}
}
