package rotladder

import "time"

const (
	// DefaultPeriod is the interval between animator ticks.
	DefaultPeriod = 50 * time.Millisecond

	// maxCatchUpTicks bounds how many ticks a single Update may fire after a
	// long frame. Remaining time is dropped.
	maxCatchUpTicks = 4
)

// Animator is a recurring timer driven by the host's frame clock. Call Update
// with the elapsed frame time each frame; while running, the tick callback
// fires once per Period of accumulated time.
//
// Start and Stop are idempotent, so an Animator never has more than one live
// timer. There is no global clock: hosts call Update themselves.
type Animator struct {
	Period time.Duration

	running bool
	elapsed time.Duration
	onTick  func()
	ticks   uint64
}

// NewAnimator returns a stopped Animator. A period <= 0 selects DefaultPeriod.
func NewAnimator(period time.Duration) *Animator {
	if period <= 0 {
		period = DefaultPeriod
	}
	return &Animator{Period: period}
}

// Running reports whether the timer is active.
func (a *Animator) Running() bool { return a.running }

// Ticks returns the number of ticks fired since the Animator was created.
func (a *Animator) Ticks() uint64 { return a.ticks }

// Start begins invoking onTick every Period. It has no effect while the
// Animator is already running; the existing callback and phase are kept.
func (a *Animator) Start(onTick func()) {
	if a.running {
		return
	}
	a.running = true
	a.elapsed = 0
	a.onTick = onTick
}

// Stop cancels future ticks. It has no effect when not running. A tick that
// is currently executing still completes.
func (a *Animator) Stop() {
	if !a.running {
		return
	}
	a.running = false
	a.elapsed = 0
	a.onTick = nil
}

// Update advances the timer by dt and fires every tick that came due, in
// order. A tick callback may call Stop, which prevents the remaining ticks.
func (a *Animator) Update(dt time.Duration) {
	if !a.running || dt <= 0 {
		return
	}
	period := a.Period
	if period <= 0 {
		period = DefaultPeriod
	}
	a.elapsed += dt
	fired := 0
	for a.running && a.elapsed >= period {
		if fired == maxCatchUpTicks {
			a.elapsed = 0
			return
		}
		a.elapsed -= period
		fired++
		a.ticks++
		if fn := a.onTick; fn != nil {
			fn()
		}
	}
}
