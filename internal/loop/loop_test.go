package loop

import (
	"testing"
	"time"
)

type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func TestAdvanceRunsWholeSteps(t *testing.T) {
	l := New(nil, 60)

	var total float64
	steps, alpha := l.Advance(50*time.Millisecond, func(dt float64) { total += dt })

	// 50ms holds three 16.67ms steps with a remainder
	if steps != 3 {
		t.Errorf("steps = %d, expected 3", steps)
	}
	if alpha <= 0 || alpha >= 1 {
		t.Errorf("alpha = %f, expected within (0, 1)", alpha)
	}
	if want := 3.0 / 60; total < want-1e-9 || total > want+1e-9 {
		t.Errorf("total dt = %f, expected %f", total, want)
	}
}

func TestAdvanceClampsLongFrames(t *testing.T) {
	l := New(nil, 60)

	steps, _ := l.Advance(5*time.Second, nil)

	// 250ms cap yields at most 15 updates
	if steps != 15 {
		t.Errorf("steps = %d, expected 15 after clamping", steps)
	}
}

func TestAdvanceAccumulatesShortFrames(t *testing.T) {
	l := New(nil, 60)

	steps, _ := l.Advance(10*time.Millisecond, nil)
	if steps != 0 {
		t.Errorf("first short frame ran %d steps, expected 0", steps)
	}
	steps, _ = l.Advance(10*time.Millisecond, nil)
	if steps != 1 {
		t.Errorf("second short frame ran %d steps, expected 1", steps)
	}
}

func TestFramePauseResumeNoCatchUp(t *testing.T) {
	clock := &manualClock{now: time.Unix(0, 0)}
	l := New(clock, 60)

	l.Frame(nil) // records start time
	clock.advance(100 * time.Millisecond)
	steps, _ := l.Frame(nil)
	if steps != 6 {
		t.Fatalf("steps = %d, expected 6", steps)
	}
	accBefore := l.Alpha()

	l.Pause()
	clock.advance(10 * time.Second)
	if steps, _ := l.Frame(nil); steps != 0 {
		t.Errorf("paused frame ran %d steps", steps)
	}

	l.Resume()
	if l.Alpha() != accBefore {
		t.Errorf("accumulator changed across pause: %f -> %f", accBefore, l.Alpha())
	}
	clock.advance(20 * time.Millisecond)
	steps, _ = l.Frame(nil)
	if steps > 2 {
		t.Errorf("resume caught up %d steps, expected at most 2", steps)
	}
}

func TestUPSCounter(t *testing.T) {
	l := New(nil, 60)

	for i := 0; i < 60; i++ {
		l.Advance(time.Second/60+time.Microsecond, nil)
	}
	l.Advance(time.Second/60, nil)

	if ups := l.UPS(); ups < 59 || ups > 61 {
		t.Errorf("UPS() = %d, expected about 60", ups)
	}
	if l.Ticks() < 60 {
		t.Errorf("Ticks() = %d, expected at least 60", l.Ticks())
	}
}
