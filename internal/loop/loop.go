// Package loop implements the fixed-timestep scheduler that drives the
// simulation independently of the render frame rate.
package loop

import "time"

const (
	// DefaultRate is the number of simulation updates per second.
	DefaultRate = 60
	// MaxFrame caps the wall time a single frame may feed into the accumulator.
	MaxFrame = 250 * time.Millisecond
)

// Clock supplies wall time. Tests inject a manual clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// UpdateFunc advances the world by dt seconds.
type UpdateFunc func(dt float64)

// Loop accumulates real elapsed time and converts it into a whole number of
// fixed updates. It is single-threaded: callers must not share a Loop
// between goroutines.
type Loop struct {
	clock Clock
	step  time.Duration
	dt    float64

	acc      time.Duration
	last     time.Time
	started  bool
	paused   bool
	maxFrame time.Duration

	window    time.Duration
	windowCnt int
	ups       int
	total     uint64
}

// New creates a Loop running at rate updates per second.
// A nil clock means SystemClock; a non-positive rate means DefaultRate.
func New(clock Clock, rate int) *Loop {
	if clock == nil {
		clock = SystemClock{}
	}
	if rate <= 0 {
		rate = DefaultRate
	}
	return &Loop{
		clock:    clock,
		step:     time.Second / time.Duration(rate),
		dt:       1 / float64(rate),
		maxFrame: MaxFrame,
	}
}

// Step returns the fixed update interval.
func (l *Loop) Step() time.Duration { return l.step }

// DT returns the fixed update interval in seconds.
func (l *Loop) DT() float64 { return l.dt }

// Frame measures the wall time since the previous frame and advances.
// The first call only records the timestamp. While paused nothing accrues.
func (l *Loop) Frame(update UpdateFunc) (steps int, alpha float64) {
	now := l.clock.Now()
	if l.paused {
		return 0, l.Alpha()
	}
	if !l.started {
		l.started = true
		l.last = now
		return 0, l.Alpha()
	}
	elapsed := now.Sub(l.last)
	l.last = now
	return l.Advance(elapsed, update)
}

// Advance feeds elapsed wall time into the accumulator and runs as many
// fixed updates as fit. It returns the number of updates performed and the
// leftover fraction of one step for render interpolation.
func (l *Loop) Advance(elapsed time.Duration, update UpdateFunc) (steps int, alpha float64) {
	if elapsed < 0 {
		elapsed = 0
	}
	l.trackRate(elapsed)
	if elapsed > l.maxFrame {
		elapsed = l.maxFrame
	}
	l.acc += elapsed

	for l.acc >= l.step {
		if update != nil {
			update(l.dt)
		}
		l.acc -= l.step
		steps++
	}
	l.windowCnt += steps
	l.total += uint64(steps)
	return steps, l.Alpha()
}

// trackRate maintains the rolling one-second update counter.
func (l *Loop) trackRate(elapsed time.Duration) {
	l.window += elapsed
	if l.window >= time.Second {
		l.ups = l.windowCnt
		l.windowCnt = 0
		l.window = 0
	}
}

// Alpha is the current interpolation fraction in [0, 1).
func (l *Loop) Alpha() float64 {
	return float64(l.acc) / float64(l.step)
}

// UPS returns the number of updates counted over the last full second.
func (l *Loop) UPS() int { return l.ups }

// Ticks returns the total number of updates run.
func (l *Loop) Ticks() uint64 { return l.total }

// Paused reports whether frames are currently ignored.
func (l *Loop) Paused() bool { return l.paused }

// Pause stops time from accruing. The accumulator keeps its value.
func (l *Loop) Pause() {
	l.paused = true
}

// Resume restarts accrual from now, so the paused interval is never caught up.
func (l *Loop) Resume() {
	if !l.paused {
		return
	}
	l.paused = false
	l.last = l.clock.Now()
	l.started = true
}
