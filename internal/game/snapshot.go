package game

import (
	"math"

	"github.com/vovakirdan/centipede-arcade/internal/enemy"
)

// Snapshot contains the simulation state relevant for determinism checks.
// Uses primitive types only for stable hashing; positions are in
// thousandths of a world unit.
type Snapshot struct {
	Tick   uint64
	Score  int
	Lives  int
	Level  int
	State  string
	Player []int // X, Y, Alive, PendingRespawn

	// Each bullet is 2 ints: X, Y
	BulletData []int
	// Each segment is 4 ints: ID, X, Y, IsHead
	SegmentData []int
	// Each enemy is 4 ints: Kind, X, Y, Health
	EnemyData []int
	// Each active mushroom is 4 ints: X, Y, Health, Poisoned
	MushroomData []int
}

func milli(v float64) int {
	return int(math.Round(v * 1000))
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	p := g.player
	snap := Snapshot{
		Tick:   g.tick,
		Score:  g.scoring.Score(),
		Lives:  g.scoring.Lives(),
		Level:  g.director.Level(),
		State:  g.director.State().String(),
		Player: []int{milli(p.Pos.X), milli(p.Pos.Y), flag(p.Alive), p.PendingRespawn},
	}

	for _, b := range p.Bullets {
		if b.Active {
			snap.BulletData = append(snap.BulletData, milli(b.Pos.X), milli(b.Pos.Y))
		}
	}
	for _, s := range g.centipedes.AllSegments() {
		snap.SegmentData = append(snap.SegmentData, int(s.ID), milli(s.Pos.X), milli(s.Pos.Y), flag(s.IsHead)) //#nosec G115 -- ids stay small
	}
	for _, e := range g.enemies.Active() {
		snap.EnemyData = append(snap.EnemyData, int(e.Kind), milli(e.Pos.X), milli(e.Pos.Y), e.Health)
	}
	for _, m := range g.field.Active() {
		snap.MushroomData = append(snap.MushroomData, milli(m.Pos.X), milli(m.Pos.Y), m.Health, flag(m.Poisoned))
	}
	return snap
}

// EnemyCount returns the number of enemies in the snapshot.
func (snap *Snapshot) EnemyCount(kind enemy.Kind) int {
	n := 0
	for i := 0; i+3 < len(snap.EnemyData); i += 4 {
		if enemy.Kind(snap.EnemyData[i]) == kind {
			n++
		}
	}
	return n
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level) //#nosec G115 -- hash computation
	for _, c := range snap.State {
		h = h*31 + uint64(c)
	}

	for _, data := range [][]int{snap.Player, snap.BulletData, snap.SegmentData, snap.EnemyData, snap.MushroomData} {
		h = h*31 + uint64(len(data)) //#nosec G115 -- hash computation
		for _, v := range data {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
	}
	return h
}
