package core

// Cue names a sound effect requested by the simulation.
type Cue string

const (
	CueShoot         Cue = "shoot"
	CueExplosion     Cue = "explosion"
	CueEnemyHit      Cue = "enemyHit"
	CuePlayerHit     Cue = "playerHit"
	CueLevelComplete Cue = "levelComplete"
	CueGameOver      Cue = "gameOver"
	CueSpiderBounce  Cue = "spiderBounce"
)

// AllCues lists every cue in a stable order.
var AllCues = []Cue{
	CueShoot, CueExplosion, CueEnemyHit, CuePlayerHit,
	CueLevelComplete, CueGameOver, CueSpiderBounce,
}

// CueSink receives cues. Implementations must return immediately.
type CueSink func(Cue)
