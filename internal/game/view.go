package game

import (
	"fmt"

	"github.com/vovakirdan/centipede-arcade/internal/core"
	"github.com/vovakirdan/centipede-arcade/internal/level"
	"github.com/vovakirdan/centipede-arcade/internal/render"
)

// Scene assembles the read-only view of the current tick. alpha is the
// fraction of a step elapsed since the last update.
func (g *Game) Scene(alpha float64) render.Scene {
	s := render.Scene{
		Level:     g.director.Level(),
		Phase:     phaseOf(g.director.State()),
		Mushrooms: g.field.All(),
		Player:    g.player,
		Segments:  g.centipedes.AllSegments(),
		Enemies:   g.enemies.Active(),
		Texts:     g.scoring.Texts(),
		HUD: render.HUD{
			Score:     g.scoring.Score(),
			Lives:     g.scoring.Lives(),
			Level:     g.director.Level(),
			HighScore: g.highScores.Best(),
		},
		Banner: g.director.ProgressText(),
		Alpha:  alpha,
		StepDT: TickDT,
	}
	if g.debug {
		s.Debug = g.debugLines()
	}
	// Frozen states show the last simulated positions.
	if s.Phase != render.PhasePlaying {
		s.Alpha = 0
	}
	return s
}

func phaseOf(st level.State) render.Phase {
	switch st {
	case level.Start:
		return render.PhaseTitle
	case level.Paused:
		return render.PhasePaused
	case level.GameOver:
		return render.PhaseGameOver
	default:
		return render.PhasePlaying
	}
}

func (g *Game) debugLines() []string {
	return []string{
		fmt.Sprintf("UPS: %d", g.ups),
		fmt.Sprintf("Centipedes: %d", len(g.centipedes.Chains())),
		fmt.Sprintf("Segments: %d", len(g.centipedes.AllSegments())),
		fmt.Sprintf("In player area: %t", g.centipedes.ReachedPlayerArea()),
		fmt.Sprintf("Enemies: %d", g.enemies.Count()),
		fmt.Sprintf("Bullets: %d", len(g.player.Bullets)),
		fmt.Sprintf("Level: %d", g.director.Level()),
		fmt.Sprintf("State: %s", g.director.State()),
	}
}

// Frame builds the draw list for the current state.
func (g *Game) Frame(alpha float64) render.DrawList {
	return render.BuildFrame(g.Scene(alpha))
}

// Render rasterizes the current state into a character screen.
func (g *Game) Render(dst *core.Screen) {
	render.Rasterize(g.Frame(0), dst)
}
