// Package collision pairs up overlapping entities once per tick and reports
// what happened as an ordered list of events.
package collision

import (
	"github.com/vovakirdan/centipede-arcade/internal/centipede"
	"github.com/vovakirdan/centipede-arcade/internal/core"
	"github.com/vovakirdan/centipede-arcade/internal/enemy"
	"github.com/vovakirdan/centipede-arcade/internal/field"
	"github.com/vovakirdan/centipede-arcade/internal/player"
)

// Kind tags an Event. Values are in detection order.
type Kind int

const (
	BulletMushroom Kind = iota
	BulletSegment
	BulletEnemy
	PlayerSegment
	PlayerEnemy
	SegmentMushroom
	SpiderMushroom
)

func (k Kind) String() string {
	switch k {
	case BulletMushroom:
		return "bullet-mushroom"
	case BulletSegment:
		return "bullet-segment"
	case BulletEnemy:
		return "bullet-enemy"
	case PlayerSegment:
		return "player-segment"
	case PlayerEnemy:
		return "player-enemy"
	case SegmentMushroom:
		return "segment-mushroom"
	case SpiderMushroom:
		return "spider-mushroom"
	default:
		return "unknown"
	}
}

// Event is one detected contact.
//
// Mushroom and enemy damage has already been applied when the event is
// returned; Destroyed tells whether that damage was fatal. Segment hits are
// only reported: the caller removes the segment by SegmentID, because a
// split earlier in the same tick shifts chain and segment indices.
type Event struct {
	Kind Kind
	Pos  core.Vec2

	Mushroom  *field.Mushroom
	Enemy     *enemy.Enemy
	Destroyed bool

	Chain     int // Index into Manager.Chains() at detection time
	Segment   int // Index within that chain at detection time
	SegmentID uint64
	IsHead    bool
}

// World is the read/write view the detector works on. Nil members are
// skipped.
type World struct {
	Player     *player.Player
	Field      *field.Field
	Centipedes *centipede.Manager
	Enemies    *enemy.Manager
}

// SpiderMushroomDamage destroys a full-health mushroom in one contact.
const SpiderMushroomDamage = field.MushroomHealth

// Detect runs every pair check in priority order. A bullet is consumed by
// its first contact and removed from the player at once, so later checks
// in the same tick never see it.
func Detect(w World) []Event {
	var events []Event
	var chains []*centipede.Centipede
	if w.Centipedes != nil {
		chains = w.Centipedes.Chains()
	}
	var enemies []*enemy.Enemy
	if w.Enemies != nil {
		enemies = w.Enemies.Active()
	}

	if w.Player != nil {
		events = bulletsVsMushrooms(w.Player, w.Field, events)
		events = bulletsVsSegments(w.Player, chains, events)
		events = bulletsVsEnemies(w.Player, enemies, events)
		if w.Player.Alive {
			events = playerVsSegments(w.Player, chains, events)
			events = playerVsEnemies(w.Player, enemies, events)
		}
	}
	events = segmentsVsMushrooms(chains, w.Field, events)
	events = spidersVsMushrooms(enemies, w.Field, events)
	return events
}

func bulletsVsMushrooms(p *player.Player, f *field.Field, events []Event) []Event {
	if f == nil {
		return events
	}
	for i := len(p.Bullets) - 1; i >= 0; i-- {
		b := p.Bullets[i]
		if !b.Active {
			continue
		}
		m := f.QueryOverlap(b.Box())
		if m == nil {
			continue
		}
		p.RemoveBullet(b)
		events = append(events, Event{
			Kind:      BulletMushroom,
			Pos:       m.Pos,
			Mushroom:  m,
			Destroyed: m.Damage(1),
		})
	}
	return events
}

func bulletsVsSegments(p *player.Player, chains []*centipede.Centipede, events []Event) []Event {
	hit := make(map[uint64]bool)
	for i := len(p.Bullets) - 1; i >= 0; i-- {
		b := p.Bullets[i]
		if !b.Active {
			continue
		}
	chains:
		for ci, c := range chains {
			segs := c.Segments()
			for si := len(segs) - 1; si >= 0; si-- {
				s := segs[si]
				if !s.Active || hit[s.ID] || !b.Box().Intersects(s.Box()) {
					continue
				}
				hit[s.ID] = true
				p.RemoveBullet(b)
				events = append(events, Event{
					Kind:      BulletSegment,
					Pos:       s.Pos,
					Chain:     ci,
					Segment:   si,
					SegmentID: s.ID,
					IsHead:    s.IsHead,
				})
				break chains
			}
		}
	}
	return events
}

func bulletsVsEnemies(p *player.Player, enemies []*enemy.Enemy, events []Event) []Event {
	for i := len(p.Bullets) - 1; i >= 0; i-- {
		b := p.Bullets[i]
		if !b.Active {
			continue
		}
		for j := len(enemies) - 1; j >= 0; j-- {
			e := enemies[j]
			if !e.Active || !b.Box().Intersects(e.Box()) {
				continue
			}
			p.RemoveBullet(b)
			events = append(events, Event{
				Kind:      BulletEnemy,
				Pos:       e.Pos,
				Enemy:     e,
				Destroyed: e.Damage(1),
			})
			break
		}
	}
	return events
}

func playerVsSegments(p *player.Player, chains []*centipede.Centipede, events []Event) []Event {
	pb := p.Box()
	for ci, c := range chains {
		for si, s := range c.Segments() {
			if !s.Active || !pb.Intersects(s.Box()) {
				continue
			}
			events = append(events, Event{
				Kind:      PlayerSegment,
				Pos:       p.Pos,
				Chain:     ci,
				Segment:   si,
				SegmentID: s.ID,
				IsHead:    s.IsHead,
			})
			break
		}
	}
	return events
}

func playerVsEnemies(p *player.Player, enemies []*enemy.Enemy, events []Event) []Event {
	pb := p.Box()
	for _, e := range enemies {
		if e.Active && pb.Intersects(e.Box()) {
			events = append(events, Event{Kind: PlayerEnemy, Pos: p.Pos, Enemy: e})
		}
	}
	return events
}

func segmentsVsMushrooms(chains []*centipede.Centipede, f *field.Field, events []Event) []Event {
	if f == nil {
		return events
	}
	for ci, c := range chains {
		for si, s := range c.Segments() {
			if !s.Active {
				continue
			}
			if m := f.QueryOverlap(s.Box()); m != nil {
				events = append(events, Event{
					Kind:      SegmentMushroom,
					Pos:       m.Pos,
					Mushroom:  m,
					Chain:     ci,
					Segment:   si,
					SegmentID: s.ID,
					IsHead:    s.IsHead,
				})
			}
		}
	}
	return events
}

func spidersVsMushrooms(enemies []*enemy.Enemy, f *field.Field, events []Event) []Event {
	if f == nil {
		return events
	}
	for _, e := range enemies {
		if !e.Active || e.Kind != enemy.Spider {
			continue
		}
		if m := f.QueryOverlap(e.Box()); m != nil {
			events = append(events, Event{
				Kind:      SpiderMushroom,
				Pos:       m.Pos,
				Mushroom:  m,
				Enemy:     e,
				Destroyed: m.Damage(SpiderMushroomDamage),
			})
		}
	}
	return events
}
