package enemy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/centipede-arcade/internal/core"
	"github.com/vovakirdan/centipede-arcade/internal/field"
)

// Intervals holds one millisecond value per variant.
type Intervals struct {
	Spider   float64 `yaml:"spider" toml:"spider"`
	Flea     float64 `yaml:"flea" toml:"flea"`
	Scorpion float64 `yaml:"scorpion" toml:"scorpion"`
}

// Tuning controls spawn pacing.
type Tuning struct {
	Base      Intervals // Level 1 spawn intervals
	Floor     Intervals // Shortest intervals reachable by level scaling
	LevelStep float64   // Interval reduction per level
	MinFactor float64   // Lower bound of the level multiplier

	SpiderChance   float64 // Chance a spider appears when its timer fires
	ScorpionChance float64
	FleaMaxBand    int // Fleas only spawn while the bottom band holds fewer mushrooms
}

// DefaultTuning returns the standard pacing.
func DefaultTuning() Tuning {
	return Tuning{
		Base:           Intervals{Spider: 8000, Flea: 12000, Scorpion: 20000},
		Floor:          Intervals{Spider: 3000, Flea: 5000, Scorpion: 8000},
		LevelStep:      0.1,
		MinFactor:      0.5,
		SpiderChance:   0.7,
		ScorpionChance: 0.5,
		FleaMaxBand:    3,
	}
}

// Manager owns the live enemies and the spawn timers.
type Manager struct {
	tuning    Tuning
	level     int
	pressure  float64
	intervals Intervals
	timers    Intervals
	enemies   []*Enemy
	field     *field.Field
	rng       *rand.Rand
	cue       core.CueSink
}

// NewManager creates a manager at level 1 pacing. A nil rng falls back to a
// fixed seed.
func NewManager(f *field.Field, rng *rand.Rand, tuning Tuning) *Manager {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	m := &Manager{tuning: tuning, field: f, rng: rng, pressure: 1}
	m.SetLevel(1)
	return m
}

// SetCueSink routes cues emitted by enemies.
func (m *Manager) SetCueSink(sink core.CueSink) { m.cue = sink }

// SetLevel rescales the spawn intervals for level n.
func (m *Manager) SetLevel(n int) {
	if n < 1 {
		n = 1
	}
	m.level = n
	t := m.tuning
	mult := math.Max(t.MinFactor, 1-float64(n-1)*t.LevelStep) * m.pressure
	m.intervals = Intervals{
		Spider:   math.Max(t.Floor.Spider, t.Base.Spider*mult),
		Flea:     math.Max(t.Floor.Flea, t.Base.Flea*mult),
		Scorpion: math.Max(t.Floor.Scorpion, t.Base.Scorpion*mult),
	}
}

// SetPressure multiplies the level intervals by f. Floors still apply.
func (m *Manager) SetPressure(f float64) {
	if f <= 0 {
		f = 1
	}
	m.pressure = f
	m.SetLevel(m.level)
}

// Intervals returns the current spawn intervals.
func (m *Manager) Intervals() Intervals { return m.intervals }

// Update advances spawn timers, moves every enemy and drops the ones that
// are destroyed or gone.
func (m *Manager) Update(dt float64) {
	ms := dt * 1000

	m.timers.Spider += ms
	if core.Reached(m.timers.Spider, m.intervals.Spider) {
		m.timers.Spider = 0
		m.trySpider()
	}
	m.timers.Flea += ms
	if core.Reached(m.timers.Flea, m.intervals.Flea) {
		m.timers.Flea = 0
		m.tryFlea()
	}
	m.timers.Scorpion += ms
	if core.Reached(m.timers.Scorpion, m.intervals.Scorpion) {
		m.timers.Scorpion = 0
		m.tryScorpion()
	}

	env := Env{Field: m.field, Rand: m.rng, Cue: m.cue}
	for _, e := range m.enemies {
		e.Update(dt, env)
	}
	m.compact()
}

func (m *Manager) trySpider() {
	if m.rng.Float64() >= m.tuning.SpiderChance {
		return
	}
	x := 0.0
	if m.rng.Float64() >= 0.5 {
		x = core.WorldW
	}
	y := 350 + m.rng.Float64()*200
	m.Add(NewSpider(core.V(x, y), m.rng))
}

func (m *Manager) tryFlea() {
	if m.field != nil && m.field.CountInBottomBand() >= m.tuning.FleaMaxBand {
		return
	}
	x := 50 + m.rng.Float64()*700
	m.Add(NewFlea(core.V(x, -20)))
}

func (m *Manager) tryScorpion() {
	if m.rng.Float64() >= m.tuning.ScorpionChance {
		return
	}
	x, dir := -20.0, 1
	if m.rng.Float64() >= 0.5 {
		x, dir = core.WorldW+20, -1
	}
	y := 100 + m.rng.Float64()*200
	m.Add(NewScorpion(core.V(x, y), dir))
}

// Add inserts an enemy.
func (m *Manager) Add(e *Enemy) {
	m.enemies = append(m.enemies, e)
}

// Remove deactivates e; it is dropped from the list on the next Update.
func (m *Manager) Remove(e *Enemy) {
	if e != nil {
		e.Active = false
	}
}

func (m *Manager) compact() {
	kept := m.enemies[:0]
	for _, e := range m.enemies {
		if e.Active && !e.Gone() {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(m.enemies); i++ {
		m.enemies[i] = nil
	}
	m.enemies = kept
}

// Active returns the live enemies in spawn order.
func (m *Manager) Active() []*Enemy {
	out := make([]*Enemy, 0, len(m.enemies))
	for _, e := range m.enemies {
		if e.Active {
			out = append(out, e)
		}
	}
	return out
}

// Count returns the number of live enemies.
func (m *Manager) Count() int {
	n := 0
	for _, e := range m.enemies {
		if e.Active {
			n++
		}
	}
	return n
}

// Clear removes every enemy. Spawn timers keep running.
func (m *Manager) Clear() {
	for i := range m.enemies {
		m.enemies[i] = nil
	}
	m.enemies = m.enemies[:0]
}

// Reset clears enemies and restarts the spawn timers at level 1 pacing.
func (m *Manager) Reset() {
	m.Clear()
	m.timers = Intervals{}
	m.SetLevel(1)
}
