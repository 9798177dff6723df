package rotladder

import "time"

// Options configures a Renderer. The zero value selects DefaultNodes,
// DefaultPeriod and SweepChain.
type Options struct {
	Nodes  int
	Period time.Duration
	Mode   SweepMode
}

// Renderer ties a Ladder to an Animator and turns taps into a
// start/animate/stop lifecycle.
type Renderer struct {
	ladder   *Ladder
	animator *Animator
	mode     SweepMode

	onFrame func()
	sink    EventSink
	logger  Logger
}

// NewRenderer creates a Renderer with an idle ladder and a stopped animator.
func NewRenderer(opts Options) *Renderer {
	n := opts.Nodes
	if n <= 0 {
		n = DefaultNodes
	}
	return &Renderer{
		ladder:   NewLadder(n),
		animator: NewAnimator(opts.Period),
		mode:     opts.Mode,
	}
}

// Ladder returns the renderer's ladder.
func (r *Renderer) Ladder() *Ladder { return r.ladder }

// Animator returns the renderer's animator.
func (r *Renderer) Animator() *Animator { return r.animator }

// Mode returns the sweep mode.
func (r *Renderer) Mode() SweepMode { return r.mode }

// Running reports whether an animation is in progress.
func (r *Renderer) Running() bool { return r.animator.Running() }

// SetEventSink sets the optional event observer.
func (r *Renderer) SetEventSink(sink EventSink) {
	r.sink = sink
}

// SetLogger sets the optional debug logger.
func (r *Renderer) SetLogger(l Logger) {
	r.logger = l
}

// Render draws every node with fn.
func (r *Renderer) Render(fn DrawFunc) {
	r.ladder.Draw(fn)
}

// HandleTap starts the current node if the ladder is idle and starts the
// animator. onFrame, if non-nil, runs at the start of every tick, before the
// ladder advances. It returns false when an animation is already running, in
// which case the tap is ignored.
func (r *Renderer) HandleTap(onFrame func()) bool {
	if !r.ladder.StartUpdating() {
		return false
	}
	r.onFrame = onFrame
	r.emit(EventStarted)
	r.animator.Start(r.tick)
	return true
}

// Update forwards the host frame time to the animator.
func (r *Renderer) Update(dt time.Duration) {
	r.animator.Update(dt)
}

func (r *Renderer) tick() {
	if r.onFrame != nil {
		r.onFrame()
	}
	node := r.ladder.Current().Index()
	switch r.ladder.Update() {
	case TransitionAnimating:
		return
	case TransitionNodeCompleted:
		r.emitFor(EventNodeCompleted, node)
		if r.mode == SweepChain && r.ladder.StartUpdating() {
			r.emit(EventStarted)
			return
		}
	case TransitionReversed:
		r.emitFor(EventReversed, node)
	}
	r.animator.Stop()
	r.onFrame = nil
	r.emit(EventStopped)
}

func (r *Renderer) emit(t EventType) {
	r.emitFor(t, r.ladder.cursor)
}

func (r *Renderer) emitFor(t EventType, node int) {
	if r.sink == nil && r.logger == nil {
		return
	}
	ev := Event{
		Type:  t,
		Node:  node,
		Dir:   r.ladder.dir,
		Scale: r.ladder.chain.nodes[node].state.scale,
	}
	if r.logger != nil {
		r.logger.Debug("ladder", "event", ev.Type, "node", ev.Node, "dir", ev.Dir, "scale", ev.Scale)
	}
	if r.sink != nil {
		r.sink.EmitEvent(ev)
	}
}

// Snapshot captures the current animation state.
func (r *Renderer) Snapshot(label string) Snapshot {
	return Snapshot{
		Label:   label,
		Cursor:  r.ladder.cursor,
		Dir:     r.ladder.dir,
		Scales:  r.ladder.chain.Scales(),
		Running: r.animator.Running(),
	}
}

// Snapshot is a point-in-time copy of a Renderer's state.
type Snapshot struct {
	Label   string    `json:"label,omitempty"`
	Frame   int       `json:"frame"`
	Cursor  int       `json:"cursor"`
	Dir     int       `json:"dir"`
	Scales  []float64 `json:"scales"`
	Running bool      `json:"running"`
}
