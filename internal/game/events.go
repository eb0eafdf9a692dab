package game

import (
	"github.com/vovakirdan/centipede-arcade/internal/collision"
	"github.com/vovakirdan/centipede-arcade/internal/core"
	"github.com/vovakirdan/centipede-arcade/internal/enemy"
	"github.com/vovakirdan/centipede-arcade/internal/scoring"
)

// applyEvents turns detected contacts into splits, removals, points and
// lost lives. Mushroom and enemy damage was already applied by the
// detector.
func (g *Game) applyEvents(events []collision.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case collision.BulletMushroom:
			if ev.Destroyed {
				g.scoring.ScoreDestroyed(scoring.Mushroom, ev.Pos)
			}

		case collision.BulletSegment:
			seg, ok := g.centipedes.HitByID(ev.SegmentID)
			if !ok {
				continue
			}
			target := scoring.Body
			if seg.IsHead {
				target = scoring.Head
			}
			g.scoring.ScoreDestroyed(target, seg.Pos)
			g.emit(core.CueEnemyHit)

		case collision.BulletEnemy:
			if !ev.Destroyed {
				continue
			}
			g.scoreEnemy(ev.Enemy)
			g.enemies.Remove(ev.Enemy)
			g.emit(core.CueExplosion)

		case collision.PlayerSegment, collision.PlayerEnemy:
			if !g.player.Hit() {
				continue
			}
			g.emit(core.CuePlayerHit)
			if !g.scoring.LoseLife() {
				g.player.ScheduleRespawn(g.cfg.Player.RespawnTicks)
			}
			g.logger.Debug("player hit", "by", ev.Kind, "lives", g.scoring.Lives())

		case collision.SegmentMushroom, collision.SpiderMushroom:
			// Chains steer around mushrooms themselves; spider damage is
			// already applied.
		}
	}
}

func (g *Game) scoreEnemy(e *enemy.Enemy) {
	if e == nil {
		return
	}
	switch e.Kind {
	case enemy.Spider:
		g.scoring.AddScoreAt(e.PointsFor(g.player.Pos), e.Pos)
	case enemy.Flea:
		g.scoring.ScoreDestroyed(scoring.Flea, e.Pos)
	case enemy.Scorpion:
		g.scoring.ScoreDestroyed(scoring.Scorpion, e.Pos)
	}
}
