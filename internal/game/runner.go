package game

import (
	"time"

	"github.com/vovakirdan/centipede-arcade/internal/core"
	"github.com/vovakirdan/centipede-arcade/internal/loop"
	"github.com/vovakirdan/centipede-arcade/internal/render"
)

// Runner drives a Game from wall-clock frames. One input sample feeds every
// step due in a frame: the first step sees its one-shot actions, the rest
// only held state. Actions sampled on a frame that runs no step are kept
// for the next one.
type Runner struct {
	game  *Game
	loop  *loop.Loop
	carry core.InputFrame
	alpha float64
	cues  []core.Cue
}

// NewRunner creates a runner stepping g at the default rate.
func NewRunner(g *Game, clock loop.Clock) *Runner {
	return &Runner{
		game:  g,
		loop:  loop.New(clock, loop.DefaultRate),
		carry: core.NewInputFrame(),
	}
}

// Game returns the driven game.
func (r *Runner) Game() *Game { return r.game }

// Loop returns the underlying scheduler.
func (r *Runner) Loop() *loop.Loop { return r.loop }

func (r *Runner) merge(in core.InputFrame) {
	r.carry.Move = in.Move
	r.carry.Fire = in.Fire
	r.carry.FirePressed = r.carry.FirePressed || in.FirePressed
	for a, on := range in.Actions {
		if on {
			r.carry.Set(a)
		}
	}
}

func (r *Runner) update(float64) {
	res := r.game.Step(r.carry)
	r.cues = append(r.cues, res.Cues...)
	held := r.carry.Held()
	r.carry.Clear()
	r.carry.Move, r.carry.Fire = held.Move, held.Fire
}

func (r *Runner) dropActions() {
	r.carry.FirePressed = false
	for a := range r.carry.Actions {
		delete(r.carry.Actions, a)
	}
}

// Frame measures wall time since the previous call and runs the steps due.
// While the game is paused the loop is frozen; a pause toggle is then
// delivered directly so the game can resume without catching up.
func (r *Runner) Frame(in core.InputFrame) (steps int) {
	r.merge(in)
	r.cues = r.cues[:0]

	if r.loop.Paused() {
		if r.carry.Has(core.ActionPause) || r.carry.Has(core.ActionDebug) {
			r.update(r.loop.DT())
			steps = 1
		} else {
			r.dropActions()
		}
		if !r.game.Paused() {
			r.loop.Resume()
		}
		return steps
	}

	steps, r.alpha = r.loop.Frame(r.update)
	if r.game.Paused() {
		r.loop.Pause()
	}
	r.game.SetUPS(r.loop.UPS())
	return steps
}

// Advance runs the steps that fit in elapsed, bypassing the clock. Used by
// headless drivers and tests.
func (r *Runner) Advance(elapsed time.Duration, in core.InputFrame) (steps int) {
	r.merge(in)
	r.cues = r.cues[:0]
	steps, r.alpha = r.loop.Advance(elapsed, r.update)
	return steps
}

// Cues returns the cues emitted by the steps of the last frame.
func (r *Runner) Cues() []core.Cue { return r.cues }

// DrawList builds the frame interpolated by the current alpha.
func (r *Runner) DrawList() render.DrawList {
	return r.game.Frame(r.alpha)
}
