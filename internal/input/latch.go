package input

// DefaultHoldTicks keeps a terminal key "held" for 200 ms at 60 Hz, long
// enough to bridge typical autorepeat gaps.
const DefaultHoldTicks = 12

// Latch turns key press events into held state for backends that never
// report key releases. Each press holds the key for a number of ticks;
// autorepeat keeps refreshing it.
type Latch struct {
	hold int
	dirs [4]int
	fire int
}

// NewLatch creates a latch that holds each press for holdTicks ticks.
func NewLatch(holdTicks int) *Latch {
	if holdTicks < 1 {
		holdTicks = DefaultHoldTicks
	}
	return &Latch{hold: holdTicks}
}

// Press holds d and releases its opposite at once.
func (l *Latch) Press(d Direction) {
	l.dirs[d] = l.hold
	l.dirs[d.opposite()] = 0
}

// PressFire holds fire.
func (l *Latch) PressFire() { l.fire = l.hold }

// Release drops every held key.
func (l *Latch) Release() {
	l.dirs = [4]int{}
	l.fire = 0
}

// Tick copies the latched state into m and ages it by one tick.
func (l *Latch) Tick(m *Manager) {
	for d := range l.dirs {
		m.SetKey(Direction(d), l.dirs[d] > 0)
		if l.dirs[d] > 0 {
			l.dirs[d]--
		}
	}
	m.SetFireKey(l.fire > 0)
	if l.fire > 0 {
		l.fire--
	}
}
