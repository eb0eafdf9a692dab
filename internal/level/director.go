// Package level runs the level state machine: starting levels, detecting
// completion and pacing the transition to the next one.
package level

import (
	"fmt"
	"math"

	"github.com/vovakirdan/centipede-arcade/internal/centipede"
	"github.com/vovakirdan/centipede-arcade/internal/core"
	"github.com/vovakirdan/centipede-arcade/internal/enemy"
	"github.com/vovakirdan/centipede-arcade/internal/field"
	"github.com/vovakirdan/centipede-arcade/internal/scoring"
)

// State is the director's phase.
type State int

const (
	Start State = iota
	Playing
	Paused
	LevelComplete
	GameOver
)

func (s State) String() string {
	switch s {
	case Start:
		return "start"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case LevelComplete:
		return "levelComplete"
	case GameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// CompleteDelayMS is the pause between clearing a level and starting the next.
const CompleteDelayMS = 2000.0

// Plan describes the centipedes spawned for a level.
type Plan struct {
	Chains   int
	Segments int
	Speed    float64
}

// Tuning shapes level progression.
type Tuning struct {
	BaseSpeed     float64 // Level 1 centipede speed
	SpeedPerLevel float64
	BaseSegments  int
	MinSegments   int
	MaxChains     int
	ChainEvery    int     // Levels between extra chains
	ChainOffsetY  float64 // Vertical gap between stacked chains
}

// DefaultTuning returns the standard progression.
func DefaultTuning() Tuning {
	return Tuning{
		BaseSpeed:     centipede.DefaultSpeed,
		SpeedPerLevel: 8,
		BaseSegments:  centipede.BaseSegments,
		MinSegments:   6,
		MaxChains:     3,
		ChainEvery:    3,
		ChainOffsetY:  40,
	}
}

// PlanFor computes the centipede layout for level n.
func (t Tuning) PlanFor(n int) Plan {
	if n < 1 {
		n = 1
	}
	every := t.ChainEvery
	if every < 1 {
		every = 1
	}
	return Plan{
		Chains:   core.Min(t.MaxChains, (n-1)/every+1),
		Segments: core.Max(t.MinSegments, t.BaseSegments-n/2),
		Speed:    t.BaseSpeed + float64(n-1)*t.SpeedPerLevel,
	}
}

// Deps are the collaborators a level start touches. Nil members are skipped.
type Deps struct {
	Field      *field.Field
	Centipedes *centipede.Manager
	Enemies    *enemy.Manager
	Scoring    *scoring.System
}

// Director is the level state machine.
type Director struct {
	tuning     Tuning
	state      State
	level      int
	timer      float64
	needsStart bool
	speedScale float64
	cue        core.CueSink
}

// New creates a director in the Start state at level 1.
func New(tuning Tuning) *Director {
	d := &Director{tuning: tuning, speedScale: 1}
	d.Reset()
	return d
}

// SetSpeedScale multiplies the centipede speed of levels started from now on.
func (d *Director) SetSpeedScale(f float64) {
	if f <= 0 {
		f = 1
	}
	d.speedScale = f
}

// SetCueSink routes the level-complete and game-over cues.
func (d *Director) SetCueSink(sink core.CueSink) { d.cue = sink }

func (d *Director) emit(c core.Cue) {
	if d.cue != nil {
		d.cue(c)
	}
}

// StartLevel clears the managers, prepares the field and spawns the
// level's centipedes.
func (d *Director) StartLevel(n int, deps Deps) Plan {
	if n < 1 {
		n = 1
	}
	d.level = n
	d.state = Playing
	d.timer = 0

	if deps.Centipedes != nil {
		deps.Centipedes.Clear()
	}
	if deps.Enemies != nil {
		deps.Enemies.Clear()
	}
	if deps.Field != nil {
		if n == 1 {
			deps.Field.Generate()
		} else {
			deps.Field.RegeneratePartial()
		}
	}

	plan := d.tuning.PlanFor(n)
	plan.Speed *= d.speedScale
	if deps.Centipedes != nil {
		for i := 0; i < plan.Chains; i++ {
			deps.Centipedes.Spawn(plan.Segments, plan.Speed, float64(i)*d.tuning.ChainOffsetY)
		}
	}
	if deps.Enemies != nil {
		deps.Enemies.SetLevel(n)
	}
	if deps.Scoring != nil {
		deps.Scoring.SetLevel(n)
	}
	return plan
}

// Update advances the state machine. centipedesEmpty reports whether every
// chain has been destroyed.
func (d *Director) Update(dt float64, centipedesEmpty bool, sc *scoring.System) {
	switch d.state {
	case Playing:
		if centipedesEmpty {
			d.complete(sc)
		}
	case LevelComplete:
		d.timer += dt * 1000
		if core.Reached(d.timer, CompleteDelayMS) {
			d.level++
			if sc != nil {
				sc.NextLevel()
			}
			d.timer = 0
			d.needsStart = true
		}
	}
}

func (d *Director) complete(sc *scoring.System) {
	d.state = LevelComplete
	d.timer = 0
	d.emit(core.CueLevelComplete)
	if sc != nil {
		sc.AddScoreAt(d.level*scoring.LevelBonusPerLevel, scoring.DefaultTextOrigin)
	}
}

// NeedsStart reports that the next level is due. The caller runs
// StartLevel(Level()) and then LevelStarted.
func (d *Director) NeedsStart() bool { return d.needsStart }

// LevelStarted acknowledges a pending start.
func (d *Director) LevelStarted() {
	d.needsStart = false
	d.state = Playing
}

// Pause moves Playing to Paused.
func (d *Director) Pause() bool {
	if d.state != Playing {
		return false
	}
	d.state = Paused
	return true
}

// Resume moves Paused back to Playing.
func (d *Director) Resume() bool {
	if d.state != Paused {
		return false
	}
	d.state = Playing
	return true
}

// GameOver enters the terminal state.
func (d *Director) GameOver() {
	if d.state == GameOver {
		return
	}
	d.state = GameOver
	d.emit(core.CueGameOver)
}

// Reset returns to the Start state at level 1.
func (d *Director) Reset() {
	d.state = Start
	d.level = 1
	d.timer = 0
	d.needsStart = false
}

// ProgressText returns the countdown shown between levels, or "" outside
// LevelComplete.
func (d *Director) ProgressText() string {
	if d.state != LevelComplete {
		return ""
	}
	left := math.Ceil((CompleteDelayMS - d.timer) / 1000)
	return fmt.Sprintf("Level Complete! Next level in %d...", int(left))
}

func (d *Director) State() State { return d.state }
func (d *Director) Level() int   { return d.level }

// IsPlaying reports whether entities should be updated this tick.
func (d *Director) IsPlaying() bool { return d.state == Playing }
