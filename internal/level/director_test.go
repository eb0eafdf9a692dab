package level

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/centipede-arcade/internal/centipede"
	"github.com/vovakirdan/centipede-arcade/internal/core"
	"github.com/vovakirdan/centipede-arcade/internal/enemy"
	"github.com/vovakirdan/centipede-arcade/internal/field"
	"github.com/vovakirdan/centipede-arcade/internal/scoring"
)

const dt = 1.0 / 60

func newDeps() Deps {
	rng := rand.New(rand.NewSource(1))
	f := field.New(field.DefaultBounds(), rng)
	return Deps{
		Field:      f,
		Centipedes: centipede.NewManager(f),
		Enemies:    enemy.NewManager(f, rng, enemy.DefaultTuning()),
		Scoring:    scoring.New(scoring.DefaultRules()),
	}
}

func TestPlanFor(t *testing.T) {
	tests := []struct {
		level    int
		expected Plan
	}{
		{1, Plan{Chains: 1, Segments: 12, Speed: 60}},
		{2, Plan{Chains: 1, Segments: 11, Speed: 68}},
		{4, Plan{Chains: 2, Segments: 10, Speed: 84}},
		{7, Plan{Chains: 3, Segments: 9, Speed: 108}},
		{20, Plan{Chains: 3, Segments: 6, Speed: 212}},
	}
	tuning := DefaultTuning()
	for _, tc := range tests {
		if got := tuning.PlanFor(tc.level); got != tc.expected {
			t.Errorf("PlanFor(%d) = %+v, expected %+v", tc.level, got, tc.expected)
		}
	}
}

func TestStartLevelSpawns(t *testing.T) {
	deps := newDeps()
	d := New(DefaultTuning())

	d.StartLevel(4, deps)

	if d.State() != Playing || d.Level() != 4 {
		t.Fatalf("state=%s level=%d, expected playing level 4", d.State(), d.Level())
	}
	chains := deps.Centipedes.Chains()
	if len(chains) != 2 {
		t.Fatalf("%d chains, expected 2", len(chains))
	}
	h0, _ := chains[0].Head()
	h1, _ := chains[1].Head()
	if h1.Pos.Y-h0.Pos.Y != 40 {
		t.Errorf("chains %f apart, expected 40", h1.Pos.Y-h0.Pos.Y)
	}
	if chains[0].Len() != 10 || chains[0].BaseSpeed != 84 {
		t.Errorf("chain has %d segments at speed %f", chains[0].Len(), chains[0].BaseSpeed)
	}
	if deps.Scoring.Level() != 4 {
		t.Errorf("scoring level = %d, expected 4", deps.Scoring.Level())
	}
}

func TestStartLevelOneGeneratesField(t *testing.T) {
	deps := newDeps()
	d := New(DefaultTuning())

	d.StartLevel(1, deps)

	if len(deps.Field.Active()) == 0 {
		t.Error("level 1 should seed the mushroom field")
	}
}

func TestCompletionAndAdvance(t *testing.T) {
	deps := newDeps()
	var cues []core.Cue
	d := New(DefaultTuning())
	d.SetCueSink(func(c core.Cue) { cues = append(cues, c) })
	d.StartLevel(1, deps)

	d.Update(dt, true, deps.Scoring)
	if d.State() != LevelComplete {
		t.Fatalf("state = %s, expected levelComplete on the same tick", d.State())
	}
	if len(cues) != 1 || cues[0] != core.CueLevelComplete {
		t.Errorf("cues = %v, expected levelComplete", cues)
	}
	if deps.Scoring.Score() != 100 {
		t.Errorf("completion bonus = %d, expected 100", deps.Scoring.Score())
	}
	if got := d.ProgressText(); got != "Level Complete! Next level in 2..." {
		t.Errorf("ProgressText() = %q", got)
	}

	for tick := 1; tick < 120; tick++ {
		d.Update(dt, true, deps.Scoring)
		if d.NeedsStart() {
			t.Fatalf("next level requested after %d ticks, expected 120", tick)
		}
	}
	if got := d.ProgressText(); got != "Level Complete! Next level in 1..." {
		t.Errorf("ProgressText() = %q", got)
	}
	d.Update(dt, true, deps.Scoring)
	if !d.NeedsStart() || d.Level() != 2 {
		t.Fatalf("needsStart=%v level=%d after 2000 ms", d.NeedsStart(), d.Level())
	}
	// 100 completion bonus plus 200 for reaching level 2
	if deps.Scoring.Score() != 300 {
		t.Errorf("score = %d, expected 300", deps.Scoring.Score())
	}

	d.StartLevel(d.Level(), deps)
	d.LevelStarted()
	if d.NeedsStart() || d.State() != Playing {
		t.Errorf("needsStart=%v state=%s after LevelStarted", d.NeedsStart(), d.State())
	}
}

func TestPlayingWithChainsLeft(t *testing.T) {
	d := New(DefaultTuning())
	d.StartLevel(1, newDeps())

	d.Update(dt, false, nil)

	if d.State() != Playing {
		t.Errorf("state = %s, expected playing while chains remain", d.State())
	}
	if d.ProgressText() != "" {
		t.Error("ProgressText should be empty while playing")
	}
}

func TestPauseResume(t *testing.T) {
	d := New(DefaultTuning())
	if d.Pause() {
		t.Error("cannot pause from the start state")
	}
	d.StartLevel(1, Deps{})
	if !d.Pause() || d.State() != Paused {
		t.Fatal("pause from playing failed")
	}
	d.Update(dt, true, nil)
	if d.State() != Paused {
		t.Error("paused director must not complete the level")
	}
	if !d.Resume() || d.State() != Playing {
		t.Error("resume failed")
	}
	if d.Resume() {
		t.Error("resume from playing should be rejected")
	}
}

func TestGameOverAndReset(t *testing.T) {
	var cues []core.Cue
	d := New(DefaultTuning())
	d.SetCueSink(func(c core.Cue) { cues = append(cues, c) })
	d.StartLevel(3, Deps{})

	d.GameOver()
	d.GameOver()
	if d.State() != GameOver || len(cues) != 1 {
		t.Errorf("state=%s cues=%v, expected one gameOver", d.State(), cues)
	}

	d.Reset()
	if d.State() != Start || d.Level() != 1 {
		t.Errorf("after reset state=%s level=%d", d.State(), d.Level())
	}
}

func TestSpeedScale(t *testing.T) {
	deps := newDeps()
	d := New(DefaultTuning())
	d.SetSpeedScale(1.5)

	plan := d.StartLevel(1, deps)
	if plan.Speed != 90 {
		t.Errorf("plan speed = %f, expected 90", plan.Speed)
	}
	if c := deps.Centipedes.Chains()[0]; c.BaseSpeed != 90 {
		t.Errorf("chain speed = %f, expected 90", c.BaseSpeed)
	}
}
