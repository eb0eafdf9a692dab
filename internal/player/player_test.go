package player

import (
	"math"
	"testing"

	"github.com/vovakirdan/centipede-arcade/internal/core"
)

const dt = 1.0 / 60

func moveFrame(x, y float64) core.InputFrame {
	in := core.NewInputFrame()
	in.SetMove(x, y)
	return in
}

func fireFrame() core.InputFrame {
	in := core.NewInputFrame()
	in.Fire = true
	return in
}

func TestMovementClampedToZone(t *testing.T) {
	tests := []struct {
		name     string
		move     core.Vec2
		expected core.Vec2
	}{
		{"left wall", core.V(-1, 0), core.V(8, 550)},
		{"right wall", core.V(1, 0), core.V(792, 550)},
		{"zone top", core.V(0, -1), core.V(400, MinY)},
		{"world bottom", core.V(0, 1), core.V(400, 592)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := New(SpawnPoint)
			for tick := 0; tick < 600; tick++ {
				p.Update(dt, moveFrame(tc.move.X, tc.move.Y), nil)
			}
			if math.Abs(p.Pos.X-tc.expected.X) > 1e-9 || math.Abs(p.Pos.Y-tc.expected.Y) > 1e-9 {
				t.Errorf("player at %v, expected %v", p.Pos, tc.expected)
			}
		})
	}
}

func TestDiagonalNormalized(t *testing.T) {
	p := New(SpawnPoint)
	p.Update(0.1, moveFrame(1, -1), nil)

	moved := p.Pos.Dist(SpawnPoint)
	if math.Abs(moved-Speed*0.1) > 1e-9 {
		t.Errorf("diagonal moved %f, expected %f", moved, Speed*0.1)
	}
}

func TestPartialThrowMovesAtFullSpeed(t *testing.T) {
	p := New(SpawnPoint)
	for range 60 {
		p.Update(dt, moveFrame(0.5, 0), nil)
	}

	moved := p.Pos.X - SpawnPoint.X
	if math.Abs(moved-Speed) > 1e-6 {
		t.Errorf("moved %f in 1s with a half throw, expected %f", moved, Speed)
	}
}

func TestShootCooldownAndCap(t *testing.T) {
	p := New(SpawnPoint)
	shots := 0
	sink := func(c core.Cue) {
		if c == core.CueShoot {
			shots++
		}
	}

	// 150 ms cooldown at 60 Hz allows a shot every 9 ticks
	for tick := 0; tick < 9; tick++ {
		p.Update(dt, fireFrame(), sink)
	}
	if shots != 1 {
		t.Fatalf("fired %d shots in 9 ticks, expected 1", shots)
	}

	p.Update(dt, fireFrame(), sink)
	if shots != 2 {
		t.Errorf("fired %d shots after cooldown, expected 2", shots)
	}

	for tick := 0; tick < 60; tick++ {
		p.Update(dt, fireFrame(), sink)
		if len(p.Bullets) > MaxBullets {
			t.Fatalf("%d bullets in flight, cap is %d", len(p.Bullets), MaxBullets)
		}
	}
}

func TestBulletSpawnAndTravel(t *testing.T) {
	p := New(SpawnPoint)
	if !p.Shoot() {
		t.Fatal("fresh player should be able to shoot")
	}
	b := p.Bullets[0]
	if b.Pos != core.V(400, 542) || b.Vel != core.V(0, -BulletSpeed) || b.Size != BulletSize {
		t.Fatalf("bullet = %+v", *b)
	}

	// 550 / 300 s to leave the top
	for tick := 0; tick < 120; tick++ {
		p.Update(dt, core.NewInputFrame(), nil)
	}
	if len(p.Bullets) != 0 {
		t.Errorf("bullet past the top edge not culled: %+v", *p.Bullets[0])
	}
	if b.Active {
		t.Error("culled bullet still marked active")
	}
}

func TestRemoveBullet(t *testing.T) {
	p := New(SpawnPoint)
	p.Shoot()
	b := p.Bullets[0]

	p.RemoveBullet(b)

	if len(p.Bullets) != 0 || b.Active {
		t.Error("RemoveBullet should deactivate and drop the bullet")
	}
}

func TestHitAndInvulnerability(t *testing.T) {
	p := New(SpawnPoint)
	if !p.Hit() {
		t.Fatal("first hit on a vulnerable player should land")
	}
	if p.Hit() {
		t.Error("dead player cannot be hit again")
	}

	p.Shoot()
	p.Respawn(SpawnPoint)
	if !p.Alive || len(p.Bullets) != 0 {
		t.Fatal("respawn should revive and clear bullets")
	}

	// 1000 ms into the window
	for tick := 0; tick < 60; tick++ {
		p.Update(dt, core.NewInputFrame(), nil)
	}
	if p.Hit() {
		t.Error("hit at 1000 ms should be ignored")
	}

	// 2000 ms
	for tick := 0; tick < 60; tick++ {
		p.Update(dt, core.NewInputFrame(), nil)
	}
	if p.Invulnerable() {
		t.Errorf("still invulnerable with %f ms left", p.InvulnRemaining())
	}
	if !p.Hit() {
		t.Error("hit after 2000 ms should land")
	}
}

func TestDeadPlayerCannotShootOrMove(t *testing.T) {
	p := New(SpawnPoint)
	p.Hit()

	in := moveFrame(1, 0)
	in.Fire = true
	p.Update(dt, in, nil)

	if p.Pos != SpawnPoint || len(p.Bullets) != 0 {
		t.Errorf("dead player moved to %v with %d bullets", p.Pos, len(p.Bullets))
	}
}

func TestRespawnCountdown(t *testing.T) {
	p := New(SpawnPoint)
	p.ScheduleRespawn(RespawnTicks)

	for tick := 1; tick < RespawnTicks; tick++ {
		if p.TickRespawn() {
			t.Fatalf("respawn fired early at tick %d", tick)
		}
	}
	if !p.TickRespawn() {
		t.Fatal("respawn should fire on tick 60")
	}
	if p.TickRespawn() {
		t.Error("countdown fired twice")
	}
}

func TestVisibleBlink(t *testing.T) {
	tests := []struct {
		invuln   float64
		expected bool
	}{
		{0, true},
		{2000, true},
		{1950, false},
		{1899, true},
		{50, true},
		{150, false},
	}
	for _, tc := range tests {
		p := New(SpawnPoint)
		p.invuln = tc.invuln
		if got := p.Visible(); got != tc.expected {
			t.Errorf("Visible() with %f ms = %v, expected %v", tc.invuln, got, tc.expected)
		}
	}

	p := New(SpawnPoint)
	p.Hit()
	if p.Visible() {
		t.Error("dead player should not be drawn")
	}
}
