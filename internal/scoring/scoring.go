// Package scoring keeps score, lives and level, awards extra lives, owns the
// floating score texts and maintains the persisted high-score table.
package scoring

import (
	"fmt"

	"github.com/vovakirdan/centipede-arcade/internal/core"
)

// Target identifies what was destroyed for point lookup.
type Target int

const (
	Head Target = iota
	Body
	Spider
	Flea
	Scorpion
	Mushroom
)

// Point values. Spider points depend on distance and are passed in by the
// caller; SpiderBase is used when no distance is known.
const (
	HeadPoints     = 100
	BodyPoints     = 10
	SpiderBase     = 300
	FleaPoints     = 200
	ScorpionPoints = 1000
	MushroomPoints = 1

	DefaultLives          = 3
	DefaultExtraLifeEvery = 10000
	LevelBonusPerLevel    = 100
)

// Floating text timing.
const (
	TextLifeMS    = 2000.0
	TextRiseSpeed = 50.0
)

var (
	pointsColor    = core.ColorYellow
	extraLifeColor = core.ColorGreen

	// DefaultTextOrigin is used for messages without a world position.
	DefaultTextOrigin = core.V(core.WorldW/2, core.WorldH/2)
	levelBonusOrigin  = core.V(core.WorldW/2, 200)
)

// Points returns the fixed award for a target.
func Points(t Target) int {
	switch t {
	case Head:
		return HeadPoints
	case Body:
		return BodyPoints
	case Spider:
		return SpiderBase
	case Flea:
		return FleaPoints
	case Scorpion:
		return ScorpionPoints
	case Mushroom:
		return MushroomPoints
	default:
		return 0
	}
}

// Text is a short-lived message drifting up from where points were earned.
type Text struct {
	Text  string
	Pos   core.Vec2
	Color core.Color
	Life  float64 // ms left
}

// Alpha fades the text out over its life.
func (t Text) Alpha() float64 {
	return core.ClampF(t.Life/TextLifeMS, 0, 1)
}

// Rules configures lives and extra-life pacing.
type Rules struct {
	StartLives     int
	ExtraLifeEvery int
}

// DefaultRules returns three lives and an extra life every 10 000 points.
func DefaultRules() Rules {
	return Rules{StartLives: DefaultLives, ExtraLifeEvery: DefaultExtraLifeEvery}
}

// System is the session scoreboard.
type System struct {
	rules     Rules
	score     int
	lives     int
	level     int
	nextExtra int
	texts     []Text
	cue       core.CueSink
}

// New creates a scoreboard at level 1.
func New(rules Rules) *System {
	if rules.StartLives <= 0 {
		rules.StartLives = DefaultLives
	}
	s := &System{rules: rules}
	s.Reset()
	return s
}

// SetCueSink routes the extra-life cue.
func (s *System) SetCueSink(sink core.CueSink) { s.cue = sink }

// Reset restores the starting score, lives and level and drops all texts.
func (s *System) Reset() {
	s.score = 0
	s.lives = s.rules.StartLives
	s.level = 1
	s.nextExtra = s.rules.ExtraLifeEvery
	s.texts = s.texts[:0]
}

// AddScore adds points without a floating text.
func (s *System) AddScore(points int) {
	s.add(points, DefaultTextOrigin)
}

// AddScoreAt adds points and shows "+N" at origin.
func (s *System) AddScoreAt(points int, origin core.Vec2) {
	s.add(points, origin)
	s.texts = append(s.texts, Text{
		Text:  fmt.Sprintf("+%d", points),
		Pos:   origin,
		Color: pointsColor,
		Life:  TextLifeMS,
	})
}

func (s *System) add(points int, origin core.Vec2) {
	s.score += points
	if s.rules.ExtraLifeEvery <= 0 {
		return
	}
	for s.score >= s.nextExtra {
		s.lives++
		s.nextExtra += s.rules.ExtraLifeEvery
		if s.cue != nil {
			s.cue(core.CueLevelComplete)
		}
		s.texts = append(s.texts, Text{
			Text:  "EXTRA LIFE!",
			Pos:   origin,
			Color: extraLifeColor,
			Life:  TextLifeMS,
		})
	}
}

// ScoreDestroyed awards the fixed points for t at pos.
func (s *System) ScoreDestroyed(t Target, pos core.Vec2) {
	if p := Points(t); p > 0 {
		s.AddScoreAt(p, pos)
	}
}

// LoseLife removes a life and reports whether none are left.
func (s *System) LoseLife() bool {
	if s.lives > 0 {
		s.lives--
	}
	return s.lives <= 0
}

// NextLevel advances the level and awards level×100.
func (s *System) NextLevel() {
	s.level++
	s.AddScoreAt(s.level*LevelBonusPerLevel, levelBonusOrigin)
}

// SetLevel records the level without a bonus.
func (s *System) SetLevel(n int) { s.level = n }

// Update ages the floating texts.
func (s *System) Update(dt float64) {
	kept := s.texts[:0]
	for _, t := range s.texts {
		t.Life -= dt * 1000
		t.Pos.Y -= TextRiseSpeed * dt
		if !core.Expired(t.Life) {
			kept = append(kept, t)
		}
	}
	s.texts = kept
}

// Texts returns the live floating texts.
func (s *System) Texts() []Text { return s.texts }

func (s *System) Score() int { return s.score }
func (s *System) Lives() int { return s.lives }
func (s *System) Level() int { return s.level }

// IsGameOver reports whether every life is spent.
func (s *System) IsGameOver() bool { return s.lives <= 0 }
