// Package enemy implements the spider, flea and scorpion variants and the
// timer-driven manager that spawns and culls them.
package enemy

import (
	"math/rand"

	"github.com/vovakirdan/centipede-arcade/internal/core"
	"github.com/vovakirdan/centipede-arcade/internal/field"
)

// Kind identifies an enemy variant.
type Kind int

const (
	Spider Kind = iota
	Flea
	Scorpion
)

func (k Kind) String() string {
	switch k {
	case Spider:
		return "spider"
	case Flea:
		return "flea"
	case Scorpion:
		return "scorpion"
	default:
		return "unknown"
	}
}

// Variant constants.
const (
	Size = 16.0

	SpiderSpeed   = 120.0
	FleaSpeed     = 150.0
	ScorpionSpeed = 80.0

	FleaPoints     = 200
	ScorpionPoints = 1000

	spiderRetargetMS = 500.0
	spiderArrive     = 5.0
	spiderMinY       = 300.0
	spiderMaxY       = 550.0

	fleaDropEvery = 30.0

	scorpionReach = 20.0
)

// SpiderState drives the spider's zig-zag.
type SpiderState struct {
	Target        core.Vec2
	RetargetTimer float64 // ms since the last retarget
}

// FleaState tracks distance fallen since the last mushroom drop.
type FleaState struct {
	DropAccum float64
}

// ScorpionState holds the crossing direction and mushrooms poisoned so far.
type ScorpionState struct {
	Dir         int // +1 moving right, -1 moving left
	PoisonTrail []core.Vec2
}

// Enemy is a single non-centipede hostile. Only the state struct matching
// Kind is meaningful.
type Enemy struct {
	Kind   Kind
	Pos    core.Vec2
	Size   float64
	Active bool
	Health int
	Points int

	Spider   SpiderState
	Flea     FleaState
	Scorpion ScorpionState
}

// Env gives enemies access to the shared world during an update.
type Env struct {
	Field *field.Field
	Rand  *rand.Rand
	Cue   core.CueSink
}

func (env Env) emit(c core.Cue) {
	if env.Cue != nil {
		env.Cue(c)
	}
}

// NewSpider creates a spider at pos with its first target chosen from rng.
func NewSpider(pos core.Vec2, rng *rand.Rand) *Enemy {
	e := newEnemy(Spider, pos, 0)
	e.Spider.Target = spiderTarget(rng)
	return e
}

// NewFlea creates a flea at pos.
func NewFlea(pos core.Vec2) *Enemy {
	return newEnemy(Flea, pos, FleaPoints)
}

// NewScorpion creates a scorpion at pos crossing in direction dir.
func NewScorpion(pos core.Vec2, dir int) *Enemy {
	e := newEnemy(Scorpion, pos, ScorpionPoints)
	if dir >= 0 {
		e.Scorpion.Dir = 1
	} else {
		e.Scorpion.Dir = -1
	}
	return e
}

func newEnemy(k Kind, pos core.Vec2, points int) *Enemy {
	return &Enemy{Kind: k, Pos: pos, Size: Size, Active: true, Health: 1, Points: points}
}

// Box returns the enemy's bounding box.
func (e *Enemy) Box() core.Box {
	return core.BoxAt(e.Pos, e.Size)
}

// Damage removes n health. It returns true when the enemy is destroyed by
// this hit.
func (e *Enemy) Damage(n int) bool {
	if !e.Active {
		return false
	}
	e.Health -= n
	if e.Health <= 0 {
		e.Health = 0
		e.Active = false
		return true
	}
	return false
}

// SpiderPoints scores a spider by its distance to the player at the moment
// it dies.
func SpiderPoints(spider, player core.Vec2) int {
	d := spider.Dist(player)
	switch {
	case d < 50:
		return 900
	case d < 100:
		return 600
	default:
		return 300
	}
}

// PointsFor returns the award for destroying e with the player at player.
func (e *Enemy) PointsFor(player core.Vec2) int {
	if e.Kind == Spider {
		return SpiderPoints(e.Pos, player)
	}
	return e.Points
}

// Update advances the enemy by dt seconds.
func (e *Enemy) Update(dt float64, env Env) {
	if !e.Active {
		return
	}
	switch e.Kind {
	case Spider:
		e.updateSpider(dt, env)
	case Flea:
		e.updateFlea(dt, env)
	case Scorpion:
		e.updateScorpion(dt, env)
	}
}

func spiderTarget(rng *rand.Rand) core.Vec2 {
	if rng == nil {
		return core.V(core.WorldW/2, (spiderMinY+spiderMaxY)/2)
	}
	return core.V(rng.Float64()*core.WorldW, spiderMinY+rng.Float64()*(spiderMaxY-spiderMinY))
}

func (e *Enemy) updateSpider(dt float64, env Env) {
	s := &e.Spider
	s.RetargetTimer += dt * 1000
	if core.Reached(s.RetargetTimer, spiderRetargetMS) {
		s.Target = spiderTarget(env.Rand)
		s.RetargetTimer = 0
	}

	delta := s.Target.Sub(e.Pos)
	if delta.Len() > spiderArrive {
		e.Pos = e.Pos.Add(delta.Normalize().Scale(SpiderSpeed * dt))
	} else {
		s.Target = spiderTarget(env.Rand)
		env.emit(core.CueSpiderBounce)
	}

	e.Pos.X = core.ClampF(e.Pos.X, e.Size, core.WorldW-e.Size)
	e.Pos.Y = core.ClampF(e.Pos.Y, spiderMinY, spiderMaxY)
}

func (e *Enemy) updateFlea(dt float64, env Env) {
	step := FleaSpeed * dt
	e.Pos.Y += step
	e.Flea.DropAccum += step
	if e.Flea.DropAccum >= fleaDropEvery && env.Field != nil {
		env.Field.AddMushroom(e.Pos)
		e.Flea.DropAccum = 0
	}
}

func (e *Enemy) updateScorpion(dt float64, env Env) {
	e.Pos.X += float64(e.Scorpion.Dir) * ScorpionSpeed * dt
	if env.Field == nil {
		return
	}
	m := env.Field.Nearest(e.Pos, scorpionReach, func(m *field.Mushroom) bool { return !m.Poisoned })
	if m != nil {
		m.Poison()
		e.Scorpion.PoisonTrail = append(e.Scorpion.PoisonTrail, m.Pos)
	}
}

// Gone reports whether the enemy has left the playfield for good. Fleas
// and scorpions spawn outside the world, so each variant only counts the
// edge it travels toward.
func (e *Enemy) Gone() bool {
	switch e.Kind {
	case Flea:
		return e.Pos.Y > core.WorldH+e.Size
	case Scorpion:
		if e.Scorpion.Dir > 0 {
			return e.Pos.X > core.WorldW+e.Size
		}
		return e.Pos.X < -e.Size
	default:
		return e.Pos.X < -e.Size || e.Pos.X > core.WorldW+e.Size ||
			e.Pos.Y < -e.Size || e.Pos.Y > core.WorldH+e.Size
	}
}
