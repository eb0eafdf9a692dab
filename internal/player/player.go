// Package player implements the shooter: movement inside the player zone,
// rate-limited firing, bullets, hits and invulnerable respawns.
package player

import (
	"math"

	"github.com/vovakirdan/centipede-arcade/internal/core"
)

// Player constants.
const (
	Size       = 16.0
	Speed      = 200.0
	MinY       = 400.0
	MaxBullets = 4

	FireCooldownMS = 150.0
	InvulnMS       = 2000.0
	BlinkMS        = 100.0

	// RespawnTicks is the delay between a lost life and the respawn.
	RespawnTicks = 60

	BulletSpeed = 300.0
	BulletSize  = 4.0
)

// SpawnPoint is where the player starts and respawns.
var SpawnPoint = core.V(core.WorldW/2, 550)

// Bullet is a player projectile.
type Bullet struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Size   float64
	Active bool
}

// Box returns the bullet's bounding box.
func (b *Bullet) Box() core.Box {
	return core.BoxAt(b.Pos, b.Size)
}

func (b *Bullet) offWorld() bool {
	return b.Pos.Y < -b.Size || b.Pos.Y > core.WorldH+b.Size ||
		b.Pos.X < -b.Size || b.Pos.X > core.WorldW+b.Size
}

// Player is the user-controlled shooter.
type Player struct {
	Pos     core.Vec2
	Size    float64
	Alive   bool
	Bullets []*Bullet

	// PendingRespawn counts ticks until the orchestrator should respawn the
	// player. Zero means no respawn is scheduled.
	PendingRespawn int

	speed    float64
	cooldown float64 // ms until the next shot is allowed
	invuln   float64 // ms of invulnerability left
}

// New creates a live player at pos.
func New(pos core.Vec2) *Player {
	return &Player{Pos: pos, Size: Size, Alive: true, speed: Speed}
}

// SetSpeed overrides the movement speed in units per second.
func (p *Player) SetSpeed(s float64) {
	if s > 0 {
		p.speed = s
	}
}

// Update moves the player, fires when requested and advances bullets and
// the invulnerability timer. Cues go to sink, which may be nil.
func (p *Player) Update(dt float64, in core.InputFrame, sink core.CueSink) {
	if p.Alive {
		p.move(dt, in.Move)
	}

	p.cooldown -= dt * 1000
	if p.cooldown < 0 {
		p.cooldown = 0
	}
	if in.Fire && p.Shoot() && sink != nil {
		sink(core.CueShoot)
	}

	p.updateBullets(dt)

	if p.Alive && p.invuln > 0 {
		p.invuln -= dt * 1000
		if core.Expired(p.invuln) {
			p.invuln = 0
		}
	}
}

func (p *Player) move(dt float64, dir core.Vec2) {
	if dir.IsZero() {
		return
	}
	p.Pos = p.Pos.Add(dir.Normalize().Scale(p.speed * dt))
	half := p.Size / 2
	p.Pos.X = core.ClampF(p.Pos.X, half, core.WorldW-half)
	p.Pos.Y = core.ClampF(p.Pos.Y, MinY, core.WorldH-half)
}

// CanShoot reports whether a shot would be accepted now.
func (p *Player) CanShoot() bool {
	return p.Alive && len(p.Bullets) < MaxBullets && core.Expired(p.cooldown)
}

// Shoot spawns a bullet above the player if allowed.
func (p *Player) Shoot() bool {
	if !p.CanShoot() {
		return false
	}
	p.Bullets = append(p.Bullets, &Bullet{
		Pos:    core.V(p.Pos.X, p.Pos.Y-p.Size/2),
		Vel:    core.V(0, -BulletSpeed),
		Size:   BulletSize,
		Active: true,
	})
	p.cooldown = FireCooldownMS
	return true
}

func (p *Player) updateBullets(dt float64) {
	kept := p.Bullets[:0]
	for _, b := range p.Bullets {
		if !b.Active {
			continue
		}
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
		if b.offWorld() {
			b.Active = false
			continue
		}
		kept = append(kept, b)
	}
	for i := len(kept); i < len(p.Bullets); i++ {
		p.Bullets[i] = nil
	}
	p.Bullets = kept
}

// RemoveBullet deactivates b and drops it from the bullet list at once so
// it cannot hit anything else this tick.
func (p *Player) RemoveBullet(b *Bullet) {
	b.Active = false
	for i, x := range p.Bullets {
		if x == b {
			p.Bullets = append(p.Bullets[:i], p.Bullets[i+1:]...)
			return
		}
	}
}

// Box returns the player's bounding box.
func (p *Player) Box() core.Box {
	return core.BoxAt(p.Pos, p.Size)
}

// Invulnerable reports whether hits are currently ignored.
func (p *Player) Invulnerable() bool {
	return p.invuln > 0
}

// Hit kills the player. It returns false when the hit is ignored because
// the player is already dead or invulnerable.
func (p *Player) Hit() bool {
	if !p.Alive || p.Invulnerable() {
		return false
	}
	p.Alive = false
	return true
}

// Respawn revives the player at pos with fresh invulnerability and no
// bullets in flight.
func (p *Player) Respawn(pos core.Vec2) {
	p.Pos = pos
	p.Alive = true
	p.invuln = InvulnMS
	p.cooldown = 0
	p.PendingRespawn = 0
	for i := range p.Bullets {
		p.Bullets[i] = nil
	}
	p.Bullets = p.Bullets[:0]
}

// ScheduleRespawn arms the respawn countdown.
func (p *Player) ScheduleRespawn(ticks int) {
	if ticks < 1 {
		ticks = 1
	}
	p.PendingRespawn = ticks
}

// TickRespawn advances the countdown and returns true on the tick the
// respawn is due.
func (p *Player) TickRespawn() bool {
	if p.PendingRespawn <= 0 {
		return false
	}
	p.PendingRespawn--
	return p.PendingRespawn == 0
}

// Visible implements the invulnerability blink. Simulation code must not
// depend on it.
func (p *Player) Visible() bool {
	if !p.Alive {
		return false
	}
	if !p.Invulnerable() {
		return true
	}
	return int(math.Floor(p.invuln/BlinkMS))%2 == 0
}

// InvulnRemaining returns the invulnerability left in milliseconds.
func (p *Player) InvulnRemaining() float64 { return p.invuln }

// Reset restores a fresh live player at pos without invulnerability.
func (p *Player) Reset(pos core.Vec2) {
	p.Respawn(pos)
	p.invuln = 0
}
