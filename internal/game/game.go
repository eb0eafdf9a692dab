// Package game wires the simulation packages into one playable session:
// it owns every entity manager, applies collision outcomes and drives the
// level state machine one fixed tick at a time.
package game

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/centipede-arcade/internal/audio"
	"github.com/vovakirdan/centipede-arcade/internal/centipede"
	"github.com/vovakirdan/centipede-arcade/internal/collision"
	"github.com/vovakirdan/centipede-arcade/internal/config"
	"github.com/vovakirdan/centipede-arcade/internal/core"
	"github.com/vovakirdan/centipede-arcade/internal/enemy"
	"github.com/vovakirdan/centipede-arcade/internal/field"
	"github.com/vovakirdan/centipede-arcade/internal/level"
	"github.com/vovakirdan/centipede-arcade/internal/loop"
	"github.com/vovakirdan/centipede-arcade/internal/player"
	"github.com/vovakirdan/centipede-arcade/internal/scoring"
)

// TickDT is the fixed simulation step in seconds.
const TickDT = 1.0 / loop.DefaultRate

// Options are the collaborators injected into a Game. Zero values are
// usable: defaults config, time seed, silent audio, in-memory high scores.
type Options struct {
	Config  config.CentipedeConfig
	Seed    int64
	Audio   audio.Player
	Scores  scoring.KeyValue
	History History
	Logger  *log.Logger
}

// History receives every finished game. storage.Store implements it.
type History interface {
	SaveScore(score, level int) (int64, error)
}

// Game is one single-player session.
type Game struct {
	cfg     config.CentipedeConfig
	seed    int64
	rng     *rand.Rand
	audio   audio.Player
	history History
	logger  *log.Logger

	field      *field.Field
	player     *player.Player
	centipedes *centipede.Manager
	enemies    *enemy.Manager
	director   *level.Director
	scoring    *scoring.System
	highScores *scoring.HighScores
	difficulty *config.DifficultyManager

	tick  uint64
	debug bool
	ups   int
	cues  []core.Cue
}

// New creates a game sitting on the title screen.
func New(opts Options) *Game {
	if opts.Config == (config.CentipedeConfig{}) {
		opts.Config = config.DefaultCentipedeConfig()
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	g := &Game{
		cfg:     opts.Config,
		seed:    opts.Seed,
		audio:   opts.Audio,
		history: opts.History,
		logger:  opts.Logger,
	}
	g.highScores = scoring.NewHighScores(opts.Scores, opts.Logger)
	g.highScores.Load()
	g.build()
	return g
}

// build (re)creates every simulation object from the seed.
func (g *Game) build() {
	cfg := g.cfg
	g.rng = rand.New(rand.NewSource(g.seed))

	g.field = field.New(field.DefaultBounds(), g.rng)
	g.player = player.New(player.SpawnPoint)
	g.player.SetSpeed(cfg.Player.Speed)
	g.centipedes = centipede.NewManager(g.field)

	g.enemies = enemy.NewManager(g.field, g.rng, enemyTuning(cfg.Enemies))
	g.enemies.SetCueSink(g.emit)

	g.director = level.New(levelTuning(cfg.Centipede))
	g.director.SetCueSink(g.emit)

	g.scoring = scoring.New(scoring.Rules{
		StartLives:     cfg.Scoring.Lives,
		ExtraLifeEvery: cfg.Scoring.ExtraLifeEvery,
	})
	g.scoring.SetCueSink(g.emit)

	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.tick = 0
}

func enemyTuning(c config.EnemyConfig) enemy.Tuning {
	return enemy.Tuning{
		Base:           enemy.Intervals(c.SpawnMS),
		Floor:          enemy.Intervals(c.FloorMS),
		LevelStep:      c.LevelStep,
		MinFactor:      c.MinFactor,
		SpiderChance:   c.SpiderChance,
		ScorpionChance: c.ScorpionChance,
		FleaMaxBand:    c.FleaMaxBand,
	}
}

func levelTuning(c config.ChainConfig) level.Tuning {
	return level.Tuning{
		BaseSpeed:     c.BaseSpeed,
		SpeedPerLevel: c.SpeedPerLevel,
		BaseSegments:  c.BaseSegments,
		MinSegments:   c.MinSegments,
		MaxChains:     c.MaxChains,
		ChainEvery:    c.ChainEvery,
		ChainOffsetY:  c.ChainOffsetY,
	}
}

// emit forwards a cue to the audio player and records it for the tick.
func (g *Game) emit(c core.Cue) {
	g.cues = append(g.cues, c)
	g.audio.Play(c)
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.cues = g.cues[:0]
	g.tick++

	if in.Has(core.ActionDebug) {
		g.debug = !g.debug
	}

	switch g.director.State() {
	case level.Start:
		if in.Has(core.ActionConfirm) || in.FirePressed {
			g.startGame()
		}
		return g.result()
	case level.GameOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.startGame()
		}
		return g.result()
	case level.Paused:
		if in.Has(core.ActionPause) {
			g.director.Resume()
		}
		return g.result()
	}

	if in.Has(core.ActionPause) && g.director.Pause() {
		return g.result()
	}

	g.director.Update(TickDT, g.centipedes.IsEmpty(), g.scoring)
	if g.director.NeedsStart() {
		g.startLevel(g.director.Level())
		g.director.LevelStarted()
	}

	if g.director.IsPlaying() {
		g.player.Update(TickDT, in, g.emit)
		if g.player.TickRespawn() && !g.scoring.IsGameOver() {
			g.player.Respawn(player.SpawnPoint)
		}
		g.centipedes.Update(TickDT)
		g.enemies.Update(TickDT)
	}

	g.applyEvents(collision.Detect(g.world()))
	g.scoring.Update(TickDT)

	if g.scoring.IsGameOver() && g.director.State() != level.GameOver {
		g.gameOver()
	}
	return g.result()
}

// startGame resets every system and begins level 1.
func (g *Game) startGame() {
	g.scoring.Reset()
	g.director.Reset()
	g.enemies.Reset()
	g.player.Reset(player.SpawnPoint)
	g.startLevel(1)
	g.logger.Info("game started", "seed", g.seed)
}

func (g *Game) startLevel(n int) {
	score := g.scoring.Score()
	g.director.SetSpeedScale(g.difficulty.SpeedFactor(score, n))
	g.enemies.SetPressure(g.difficulty.SpawnFactor(score, n))
	plan := g.director.StartLevel(n, level.Deps{
		Field:      g.field,
		Centipedes: g.centipedes,
		Enemies:    g.enemies,
		Scoring:    g.scoring,
	})
	g.logger.Debug("level started", "level", n, "chains", plan.Chains, "segments", plan.Segments, "speed", plan.Speed)
}

func (g *Game) gameOver() {
	g.director.GameOver()
	e := g.highScores.Record(g.scoring.Score(), g.director.Level())
	g.logger.Info("game over", "score", e.Score, "level", e.Level, "ticks", g.tick)
	if g.history != nil {
		if _, err := g.history.SaveScore(e.Score, e.Level); err != nil {
			g.logger.Warn("could not save game history", "err", err)
		}
	}
}

// Restart throws the session away and rebuilds it from seed, returning to
// the title screen. A zero seed keeps the current one.
func (g *Game) Restart(seed int64) {
	if seed != 0 {
		g.seed = seed
	}
	g.build()
}

func (g *Game) world() collision.World {
	return collision.World{
		Player:     g.player,
		Field:      g.field,
		Centipedes: g.centipedes,
		Enemies:    g.enemies,
	}
}

func (g *Game) result() core.StepResult {
	cues := make([]core.Cue, len(g.cues))
	copy(cues, g.cues)
	return core.StepResult{State: g.State(), Cues: cues}
}

// State returns the externally visible summary.
func (g *Game) State() core.GameState {
	st := g.director.State()
	return core.GameState{
		Score:    g.scoring.Score(),
		Lives:    g.scoring.Lives(),
		Level:    g.director.Level(),
		Phase:    st.String(),
		GameOver: st == level.GameOver,
		Paused:   st == level.Paused,
	}
}

// Phase returns the level director state.
func (g *Game) Phase() level.State { return g.director.State() }

// Paused reports whether the session is paused.
func (g *Game) Paused() bool { return g.director.State() == level.Paused }

// HighScores returns the session's high score table.
func (g *Game) HighScores() *scoring.HighScores { return g.highScores }

// Seed returns the seed the session was built from.
func (g *Game) Seed() int64 { return g.seed }

// Ticks returns the number of steps taken since the last build.
func (g *Game) Ticks() uint64 { return g.tick }

// SetUPS records the measured update rate for the debug overlay.
func (g *Game) SetUPS(ups int) { g.ups = ups }

// Debug reports whether the debug overlay is on.
func (g *Game) Debug() bool { return g.debug }

// Close releases the audio device.
func (g *Game) Close() { g.audio.Close() }
