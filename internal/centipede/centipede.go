// Package centipede implements the segmented chain enemy: head locomotion,
// exact-spacing follower motion, splitting on damage, and the manager that
// owns every live chain.
package centipede

import (
	"github.com/vovakirdan/centipede-arcade/internal/core"
	"github.com/vovakirdan/centipede-arcade/internal/field"
)

const (
	SegmentSize  = 16.0
	Spacing      = 16.0 // Target distance between consecutive segments
	DropDistance = 20.0 // Vertical step taken on every turn
	BaseSegments = 12   // Segment count at which the speed multiplier is 1
	DefaultSpeed = 60.0

	// PlayerAreaTop is where the player zone starts; a chain that reached
	// the bottom climbs back up to here before descending again.
	PlayerAreaTop = 400.0

	straightDownMS = 1000.0
	minSpeedFactor = 0.5
	speedPerLost   = 0.1
)

// Segment is one body part. Neighbors are the previous and next elements of
// the owning chain; segments carry no references to each other.
type Segment struct {
	ID     uint64
	Pos    core.Vec2
	IsHead bool
	Active bool
	Index  int // Position within the chain, refreshed after every change
	Dir    int // Last broadcast horizontal direction
}

// Box returns the segment's bounding box.
func (s Segment) Box() core.Box {
	return core.BoxAt(s.Pos, SegmentSize)
}

// Centipede is one chain of segments led by its first element.
type Centipede struct {
	segments []Segment

	// Direction is +1 moving right, -1 moving left.
	Direction int
	// BaseSpeed is the head speed with a full 12-segment body.
	BaseSpeed float64
	// StraightDown is set after bumping a poisoned mushroom.
	StraightDown     bool
	StraightDownLeft float64 // ms

	vdir  int
	field *field.Field
}

// New builds a chain with its head at head and the body laid out leftward.
// ids supplies unique segment IDs; nil numbers segments from 1.
func New(head core.Vec2, count int, speed float64, ids func() uint64) *Centipede {
	if ids == nil {
		var n uint64
		ids = func() uint64 { n++; return n }
	}
	c := &Centipede{
		segments:  make([]Segment, 0, count),
		Direction: 1,
		BaseSpeed: speed,
		vdir:      1,
	}
	for i := 0; i < count; i++ {
		c.segments = append(c.segments, Segment{
			ID:     ids(),
			Pos:    core.V(head.X-float64(i)*Spacing, head.Y),
			IsHead: i == 0,
			Active: true,
			Index:  i,
			Dir:    1,
		})
	}
	return c
}

// Attach sets the field that receives deposited mushrooms and blocks the head.
func (c *Centipede) Attach(f *field.Field) {
	c.field = f
}

// Segments exposes the chain in order. Callers must treat it as read-only.
func (c *Centipede) Segments() []Segment { return c.segments }

// Len returns the number of active segments.
func (c *Centipede) Len() int {
	n := 0
	for i := range c.segments {
		if c.segments[i].Active {
			n++
		}
	}
	return n
}

// IsEmpty reports whether no active segment remains.
func (c *Centipede) IsEmpty() bool {
	return c.Len() == 0
}

// Head returns the first segment.
func (c *Centipede) Head() (Segment, bool) {
	if len(c.segments) == 0 {
		return Segment{}, false
	}
	return c.segments[0], true
}

// Speed returns the current head speed; shorter chains move faster.
func (c *Centipede) Speed() float64 {
	factor := 1 + float64(BaseSegments-len(c.segments))*speedPerLost
	if factor < minSpeedFactor {
		factor = minSpeedFactor
	}
	return c.BaseSpeed * factor
}

// Offset shifts every segment vertically.
func (c *Centipede) Offset(dy float64) {
	for i := range c.segments {
		c.segments[i].Pos.Y += dy
	}
}

// ReachedPlayerArea reports whether any active segment is inside the player zone.
func (c *Centipede) ReachedPlayerArea() bool {
	for _, s := range c.segments {
		if s.Active && s.Pos.Y >= PlayerAreaTop {
			return true
		}
	}
	return false
}

// Update advances the chain by dt seconds. A nil field disables mushroom
// turns.
func (c *Centipede) Update(dt float64, f *field.Field) {
	if f != nil {
		c.field = f
	}
	if c.StraightDown {
		c.StraightDownLeft -= dt * 1000
		if core.Expired(c.StraightDownLeft) {
			c.StraightDown = false
			c.StraightDownLeft = 0
		}
	}

	speed := c.Speed()
	if len(c.segments) > 0 && c.segments[0].Active {
		c.moveHead(dt, speed)
	}
	for i := 1; i < len(c.segments); i++ {
		if c.segments[i].Active {
			c.follow(i)
		}
	}

	c.compact()
}

func (c *Centipede) moveHead(dt, speed float64) {
	head := &c.segments[0]
	maxY := core.WorldH - SegmentSize/2

	if c.StraightDown {
		head.Pos.Y += speed * dt
		if head.Pos.Y >= maxY {
			head.Pos.Y = maxY
			c.StraightDown = false
			c.StraightDownLeft = 0
			c.vdir = -1
		}
		return
	}

	moveX := float64(c.Direction) * speed * dt
	future := core.V(head.Pos.X+moveX, head.Pos.Y)

	turn := future.X <= SegmentSize/2 || future.X >= core.WorldW-SegmentSize/2
	if c.field != nil {
		if m := c.field.QueryOverlap(core.BoxAt(future, SegmentSize)); m != nil {
			turn = true
			if m.Poisoned {
				c.StraightDown = true
				c.StraightDownLeft = straightDownMS
			}
		}
	}

	if !turn {
		head.Pos.X += moveX
		return
	}

	c.Direction = -c.Direction
	for i := range c.segments {
		c.segments[i].Dir = c.Direction
	}

	// Bounce between the world bottom and the top of the player area.
	if c.vdir > 0 && head.Pos.Y+DropDistance > maxY {
		c.vdir = -1
	} else if c.vdir < 0 && head.Pos.Y-DropDistance < PlayerAreaTop {
		c.vdir = 1
	}
	head.Pos.Y += DropDistance * float64(c.vdir)
}

// follow pins segment i to exactly Spacing behind its leader once the gap
// opens, so the chain neither compresses nor stretches.
func (c *Centipede) follow(i int) {
	seg := &c.segments[i]
	lead := c.segments[i-1]
	if !lead.Active {
		return
	}
	gap := lead.Pos.Sub(seg.Pos)
	dist := gap.Len()
	if dist <= Spacing {
		return
	}
	seg.Pos = lead.Pos.Sub(gap.Scale(Spacing / dist))
}

// compact drops inactive segments and restores the head invariant.
func (c *Centipede) compact() {
	kept := c.segments[:0]
	for _, s := range c.segments {
		if s.Active {
			kept = append(kept, s)
		}
	}
	c.segments = kept
	c.fixHead()
}

// fixHead promotes the first element and clears stale head flags elsewhere.
func (c *Centipede) fixHead() {
	for i := range c.segments {
		c.segments[i].IsHead = i == 0
		c.segments[i].Index = i
	}
}

// Split destroys the segment at index. Hitting an interior segment cuts the
// chain in two and the tail part is returned as a new chain that inherits
// direction, speed and field. Exactly one mushroom is offered to the field
// at the destroyed segment's position. Out-of-range indices return ok=false.
func (c *Centipede) Split(index int) (spawned *Centipede, removed Segment, ok bool) {
	if index < 0 || index >= len(c.segments) {
		return nil, Segment{}, false
	}

	removed = c.segments[index]
	removed.Active = false
	last := len(c.segments) - 1

	switch {
	case index == 0:
		c.segments = c.segments[1:]
	case index == last:
		c.segments = c.segments[:last]
	default:
		tail := make([]Segment, last-index)
		copy(tail, c.segments[index+1:])
		c.segments = c.segments[:index]

		spawned = &Centipede{
			segments:  tail,
			Direction: c.Direction,
			BaseSpeed: c.BaseSpeed,
			vdir:      c.vdir,
			field:     c.field,
		}
		spawned.fixHead()
	}
	c.fixHead()

	if c.field != nil {
		c.field.AddMushroom(removed.Pos)
	}
	return spawned, removed, true
}

// indexOf returns the position of the segment with the given ID.
func (c *Centipede) indexOf(id uint64) int {
	for i := range c.segments {
		if c.segments[i].ID == id {
			return i
		}
	}
	return -1
}
