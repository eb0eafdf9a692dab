package centipede

import (
	"github.com/vovakirdan/centipede-arcade/internal/core"
	"github.com/vovakirdan/centipede-arcade/internal/field"
)

// SpawnPoint is where new chains enter: top center of the world.
var SpawnPoint = core.V(core.WorldW/2, 50)

// Manager owns every live chain.
type Manager struct {
	chains []*Centipede
	field  *field.Field
	nextID uint64
}

// NewManager creates a manager whose chains interact with f (may be nil).
func NewManager(f *field.Field) *Manager {
	return &Manager{field: f}
}

func (m *Manager) newID() uint64 {
	m.nextID++
	return m.nextID
}

// Spawn adds a chain of count segments at SpawnPoint shifted down by yOffset.
func (m *Manager) Spawn(count int, speed, yOffset float64) *Centipede {
	c := New(SpawnPoint, count, speed, m.newID)
	c.Offset(yOffset)
	c.Attach(m.field)
	m.chains = append(m.chains, c)
	return c
}

// Update repairs the head invariant, advances each chain and purges the
// empty ones.
func (m *Manager) Update(dt float64) {
	for _, c := range m.chains {
		if len(c.segments) > 0 && !c.segments[0].IsHead {
			c.fixHead()
		}
		c.Update(dt, m.field)
	}
	m.purge()
}

func (m *Manager) purge() {
	kept := m.chains[:0]
	for _, c := range m.chains {
		if !c.IsEmpty() {
			kept = append(kept, c)
		}
	}
	for i := len(kept); i < len(m.chains); i++ {
		m.chains[i] = nil
	}
	m.chains = kept
}

// HandleSegmentHit destroys segment segIdx of chain chainIdx and registers
// any chain split off by the hit. Out-of-range indices are ignored.
func (m *Manager) HandleSegmentHit(chainIdx, segIdx int) (removed Segment, ok bool) {
	if chainIdx < 0 || chainIdx >= len(m.chains) {
		return Segment{}, false
	}
	spawned, removed, ok := m.chains[chainIdx].Split(segIdx)
	if spawned != nil {
		m.chains = append(m.chains, spawned)
	}
	return removed, ok
}

// HitByID destroys the segment with the given ID wherever it currently
// lives. Earlier hits in the same tick may have moved it to another chain.
func (m *Manager) HitByID(id uint64) (removed Segment, ok bool) {
	for ci, c := range m.chains {
		if si := c.indexOf(id); si >= 0 {
			return m.HandleSegmentHit(ci, si)
		}
	}
	return Segment{}, false
}

// Chains returns the non-empty chains in manager order.
func (m *Manager) Chains() []*Centipede {
	out := make([]*Centipede, 0, len(m.chains))
	for _, c := range m.chains {
		if !c.IsEmpty() {
			out = append(out, c)
		}
	}
	return out
}

// AllSegments returns a copy of every active segment across all chains.
func (m *Manager) AllSegments() []Segment {
	var out []Segment
	for _, c := range m.chains {
		for _, s := range c.segments {
			if s.Active {
				out = append(out, s)
			}
		}
	}
	return out
}

// IsEmpty reports whether no chain has an active segment.
func (m *Manager) IsEmpty() bool {
	for _, c := range m.chains {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// Clear removes every chain.
func (m *Manager) Clear() {
	m.chains = nil
}

// ReachedPlayerArea reports whether any chain entered the player zone.
func (m *Manager) ReachedPlayerArea() bool {
	for _, c := range m.chains {
		if c.ReachedPlayerArea() {
			return true
		}
	}
	return false
}
