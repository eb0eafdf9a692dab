// Package field owns the mushroom obstacle grid: seeding, placement,
// damage, poisoning and between-level regeneration.
package field

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/centipede-arcade/internal/core"
)

// Mushroom and grid constants.
const (
	MushroomSize   = 16.0
	MushroomHealth = 4

	// EdgeMargin keeps mushrooms off the left and right walls and the band bottom.
	EdgeMargin = 16.0
	// OccupiedTolerance is the per-axis distance at which a cell counts as taken.
	OccupiedTolerance = 10.0
	// DefaultTolerance is the per-axis distance used by point queries.
	DefaultTolerance = 16.0
	// BottomBandHeight is the slice of the band counted for flea spawning.
	BottomBandHeight = 60.0

	regenFraction  = 0.3
	regenAttempts  = 50
	regenClearance = 20.0
)

// Bounds describes the playable band mushrooms may occupy.
type Bounds struct {
	Width   float64 // World width
	Top     float64 // Top of the mushroom band
	Bottom  float64 // Bottom of the band; the player area starts here
	Grid    float64 // Grid spacing for placement
	Density float64 // Probability of seeding a cell in Generate
}

// DefaultBounds returns the standard 800-wide band from y=100 to y=400.
func DefaultBounds() Bounds {
	return Bounds{
		Width:   core.WorldW,
		Top:     100,
		Bottom:  400,
		Grid:    20,
		Density: 0.15,
	}
}

// Mushroom is a single obstacle. Owned by the Field.
type Mushroom struct {
	Pos      core.Vec2
	Health   int
	Poisoned bool
	Active   bool
}

// NewMushroom creates a full-health mushroom at pos.
func NewMushroom(pos core.Vec2) *Mushroom {
	return &Mushroom{Pos: pos, Health: MushroomHealth, Active: true}
}

// Damage removes n health points. It returns true only on the hit that
// destroys the mushroom; further hits on a destroyed mushroom are no-ops.
func (m *Mushroom) Damage(n int) bool {
	if !m.Active {
		return false
	}
	m.Health -= n
	if m.Health <= 0 {
		m.Health = 0
		m.Active = false
		return true
	}
	return false
}

// Poison marks the mushroom; a centipede head that bumps it dives straight down.
func (m *Mushroom) Poison() {
	m.Poisoned = true
}

// Box returns the mushroom's bounding box.
func (m *Mushroom) Box() core.Box {
	return core.BoxAt(m.Pos, MushroomSize)
}

// Field is the mushroom collection, kept in insertion order.
type Field struct {
	bounds    Bounds
	rng       *rand.Rand
	mushrooms []*Mushroom
}

// New creates an empty field. A nil rng falls back to a fixed seed.
func New(bounds Bounds, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Field{bounds: bounds, rng: rng}
}

// Bounds returns the field geometry.
func (f *Field) Bounds() Bounds { return f.bounds }

// Generate replaces the field with a freshly seeded grid.
func (f *Field) Generate() {
	f.mushrooms = f.mushrooms[:0]

	b := f.bounds
	rows := int(math.Floor((b.Bottom - b.Top) / b.Grid))
	cols := int(math.Floor(b.Width / b.Grid))

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if f.rng.Float64() >= b.Density {
				continue
			}
			x := float64(col)*b.Grid + b.Grid/2
			y := b.Top + float64(row)*b.Grid + b.Grid/2
			if f.inBounds(x, y) {
				f.mushrooms = append(f.mushrooms, NewMushroom(core.V(x, y)))
			}
		}
	}
}

func (f *Field) inBounds(x, y float64) bool {
	b := f.bounds
	return x >= EdgeMargin && x <= b.Width-EdgeMargin &&
		y >= b.Top && y <= b.Bottom-EdgeMargin
}

// Snap rounds a position to the nearest grid intersection.
func (f *Field) Snap(pos core.Vec2) core.Vec2 {
	g := f.bounds.Grid
	return core.V(math.Floor(pos.X/g+0.5)*g, math.Floor(pos.Y/g+0.5)*g)
}

// AddMushroom places a mushroom at the grid point nearest pos. It returns
// false when the point is outside the band or already holds an active
// mushroom, so repeated calls for the same cell are no-ops.
func (f *Field) AddMushroom(pos core.Vec2) bool {
	p := f.Snap(pos)
	if !f.inBounds(p.X, p.Y) {
		return false
	}
	for _, m := range f.mushrooms {
		if m.Active && math.Abs(m.Pos.X-p.X) < OccupiedTolerance && math.Abs(m.Pos.Y-p.Y) < OccupiedTolerance {
			return false
		}
	}
	f.mushrooms = append(f.mushrooms, NewMushroom(p))
	return true
}

// QueryAt returns the first active mushroom within tol of pos on both axes.
func (f *Field) QueryAt(pos core.Vec2, tol float64) *Mushroom {
	for _, m := range f.mushrooms {
		if m.Active && math.Abs(m.Pos.X-pos.X) < tol && math.Abs(m.Pos.Y-pos.Y) < tol {
			return m
		}
	}
	return nil
}

// Nearest returns the closest active mushroom within tol of pos on both
// axes for which match returns true. A nil match accepts any mushroom.
func (f *Field) Nearest(pos core.Vec2, tol float64, match func(*Mushroom) bool) *Mushroom {
	var best *Mushroom
	bestDist := math.Inf(1)
	for _, m := range f.mushrooms {
		if !m.Active || math.Abs(m.Pos.X-pos.X) >= tol || math.Abs(m.Pos.Y-pos.Y) >= tol {
			continue
		}
		if match != nil && !match(m) {
			continue
		}
		if d := m.Pos.Dist(pos); d < bestDist {
			best, bestDist = m, d
		}
	}
	return best
}

// QueryOverlap returns the first active mushroom, in stored order, whose box
// overlaps b. The result is deterministic but not the nearest match.
func (f *Field) QueryOverlap(b core.Box) *Mushroom {
	for _, m := range f.mushrooms {
		if m.Active && b.Intersects(m.Box()) {
			return m
		}
	}
	return nil
}

// CountInBottomBand counts active mushrooms in the lowest slice of the band.
func (f *Field) CountInBottomBand() int {
	top := f.bounds.Bottom - BottomBandHeight
	n := 0
	for _, m := range f.mushrooms {
		if m.Active && m.Pos.Y >= top && m.Pos.Y <= f.bounds.Bottom {
			n++
		}
	}
	return n
}

// PoisonedSet returns the active poisoned mushrooms.
func (f *Field) PoisonedSet() []*Mushroom {
	var out []*Mushroom
	for _, m := range f.mushrooms {
		if m.Active && m.Poisoned {
			out = append(out, m)
		}
	}
	return out
}

// Active returns the active mushrooms in stored order.
func (f *Field) Active() []*Mushroom {
	out := make([]*Mushroom, 0, len(f.mushrooms))
	for _, m := range f.mushrooms {
		if m.Active {
			out = append(out, m)
		}
	}
	return out
}

// All returns every stored mushroom, destroyed ones included.
func (f *Field) All() []*Mushroom { return f.mushrooms }

// Clear removes every mushroom.
func (f *Field) Clear() {
	f.mushrooms = f.mushrooms[:0]
}

// RegeneratePartial drops destroyed mushrooms and re-seeds 30% of that count
// at random free cells, giving up on a mushroom after a bounded number of
// attempts. It returns how many were placed.
func (f *Field) RegeneratePartial() int {
	destroyed := 0
	kept := f.mushrooms[:0]
	for _, m := range f.mushrooms {
		if m.Active {
			kept = append(kept, m)
		} else {
			destroyed++
		}
	}
	for i := len(kept); i < len(f.mushrooms); i++ {
		f.mushrooms[i] = nil
	}
	f.mushrooms = kept

	want := int(math.Floor(float64(destroyed) * regenFraction))
	b := f.bounds
	added := 0
	for i := 0; i < want; i++ {
		for attempt := 0; attempt < regenAttempts; attempt++ {
			x := f.rng.Float64()*(b.Width-2*EdgeMargin) + EdgeMargin
			y := f.rng.Float64()*(b.Bottom-b.Top-2*EdgeMargin) + b.Top + EdgeMargin
			pos := core.V(x, y)
			if f.QueryAt(pos, regenClearance) != nil {
				continue
			}
			if f.AddMushroom(pos) {
				added++
				break
			}
		}
	}
	return added
}
