package collision

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/centipede-arcade/internal/centipede"
	"github.com/vovakirdan/centipede-arcade/internal/core"
	"github.com/vovakirdan/centipede-arcade/internal/enemy"
	"github.com/vovakirdan/centipede-arcade/internal/field"
	"github.com/vovakirdan/centipede-arcade/internal/player"
)

type fixture struct {
	world World
}

func newFixture() *fixture {
	f := field.New(field.DefaultBounds(), rand.New(rand.NewSource(1)))
	return &fixture{world: World{
		Player:     player.New(player.SpawnPoint),
		Field:      f,
		Centipedes: centipede.NewManager(f),
		Enemies:    enemy.NewManager(f, nil, enemy.DefaultTuning()),
	}}
}

func (fx *fixture) bullet(pos core.Vec2) *player.Bullet {
	b := &player.Bullet{Pos: pos, Vel: core.V(0, -player.BulletSpeed), Size: player.BulletSize, Active: true}
	fx.world.Player.Bullets = append(fx.world.Player.Bullets, b)
	return b
}

func kinds(events []Event) []Kind {
	out := make([]Kind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}

func TestMushroomTakesPriorityOverSegment(t *testing.T) {
	fx := newFixture()
	fx.world.Field.AddMushroom(core.V(400, 100))
	fx.world.Centipedes.Spawn(1, 60, 50) // head at (400, 100)
	b := fx.bullet(core.V(400, 100))

	events := Detect(fx.world)

	var bulletEvents []Event
	for _, e := range events {
		if e.Kind == BulletMushroom || e.Kind == BulletSegment {
			bulletEvents = append(bulletEvents, e)
		}
	}
	if len(bulletEvents) != 1 || bulletEvents[0].Kind != BulletMushroom {
		t.Fatalf("bullet events = %v, expected a single bullet-mushroom", kinds(bulletEvents))
	}
	if b.Active || len(fx.world.Player.Bullets) != 0 {
		t.Error("bullet should be consumed by the mushroom")
	}
	if m := fx.world.Field.QueryAt(core.V(400, 100), 1); m == nil || m.Health != field.MushroomHealth-1 {
		t.Errorf("mushroom = %+v, expected one point of damage", m)
	}
	if len(fx.world.Centipedes.AllSegments()) != 1 {
		t.Error("segment must survive when the mushroom absorbed the bullet")
	}
}

func TestBulletHitsOneSegment(t *testing.T) {
	fx := newFixture()
	c := fx.world.Centipedes.Spawn(1, 60, 150) // head at (400, 200)
	head, _ := c.Head()
	fx.bullet(core.V(400, 200))
	fx.bullet(core.V(401, 201))

	events := Detect(fx.world)

	if len(events) != 1 || events[0].Kind != BulletSegment {
		t.Fatalf("events = %v, expected one bullet-segment", kinds(events))
	}
	ev := events[0]
	if ev.SegmentID != head.ID || !ev.IsHead || ev.Chain != 0 || ev.Segment != 0 {
		t.Errorf("event = %+v, expected the head of chain 0", ev)
	}
	if len(fx.world.Player.Bullets) != 1 {
		t.Errorf("%d bullets left, expected the second bullet to survive", len(fx.world.Player.Bullets))
	}
	if len(fx.world.Centipedes.AllSegments()) != 1 {
		t.Error("detection must not remove segments")
	}
}

func TestBulletDestroysEnemy(t *testing.T) {
	fx := newFixture()
	flea := enemy.NewFlea(core.V(200, 300))
	fx.world.Enemies.Add(flea)
	fx.bullet(core.V(200, 300))

	events := Detect(fx.world)

	if len(events) != 1 || events[0].Kind != BulletEnemy {
		t.Fatalf("events = %v, expected one bullet-enemy", kinds(events))
	}
	if !events[0].Destroyed || flea.Active || events[0].Enemy != flea {
		t.Errorf("event = %+v, expected the flea destroyed", events[0])
	}
}

func TestPlayerHitOncePerChain(t *testing.T) {
	fx := newFixture()
	// Heads at (400, 550), on top of the player
	fx.world.Centipedes.Spawn(3, 60, 500)
	fx.world.Centipedes.Spawn(3, 60, 500)

	events := Detect(fx.world)

	n := 0
	for _, e := range events {
		if e.Kind == PlayerSegment {
			n++
		}
	}
	if n != 2 {
		t.Errorf("%d player-segment events, expected one per chain", n)
	}
}

func TestDeadPlayerNotHit(t *testing.T) {
	fx := newFixture()
	fx.world.Centipedes.Spawn(3, 60, 500)
	fx.world.Enemies.Add(enemy.NewSpider(player.SpawnPoint, nil))
	fx.world.Player.Hit()

	for _, e := range Detect(fx.world) {
		if e.Kind == PlayerSegment || e.Kind == PlayerEnemy {
			t.Errorf("dead player produced %s", e.Kind)
		}
	}
}

func TestPlayerTouchesEnemy(t *testing.T) {
	fx := newFixture()
	spider := enemy.NewSpider(core.V(405, 545), nil)
	fx.world.Enemies.Add(spider)

	events := Detect(fx.world)

	if len(events) != 1 || events[0].Kind != PlayerEnemy || events[0].Enemy != spider {
		t.Errorf("events = %v, expected one player-enemy", kinds(events))
	}
}

func TestSpiderEatsMushroom(t *testing.T) {
	fx := newFixture()
	fx.world.Field.AddMushroom(core.V(300, 380))
	fx.world.Enemies.Add(enemy.NewSpider(core.V(300, 380), nil))

	events := Detect(fx.world)

	if len(events) != 1 || events[0].Kind != SpiderMushroom {
		t.Fatalf("events = %v, expected one spider-mushroom", kinds(events))
	}
	if !events[0].Destroyed || events[0].Mushroom.Active {
		t.Error("spider contact should destroy the mushroom outright")
	}
}

func TestSegmentMushroomIsInformational(t *testing.T) {
	fx := newFixture()
	fx.world.Field.AddMushroom(core.V(400, 200))
	fx.world.Centipedes.Spawn(1, 60, 150)

	events := Detect(fx.world)

	if len(events) != 1 || events[0].Kind != SegmentMushroom {
		t.Fatalf("events = %v, expected one segment-mushroom", kinds(events))
	}
	if events[0].Mushroom.Health != field.MushroomHealth {
		t.Error("segment contact must not damage the mushroom")
	}
}

func TestEventsInPriorityOrder(t *testing.T) {
	fx := newFixture()
	fx.world.Field.AddMushroom(core.V(400, 100))
	fx.world.Field.AddMushroom(core.V(300, 380))
	fx.world.Centipedes.Spawn(1, 60, 50)
	fx.world.Centipedes.Spawn(3, 60, 500)
	fx.world.Enemies.Add(enemy.NewFlea(core.V(200, 300)))
	fx.world.Enemies.Add(enemy.NewSpider(core.V(300, 380), nil))
	fx.bullet(core.V(400, 100))
	fx.bullet(core.V(200, 300))

	events := Detect(fx.world)

	if len(events) < 4 {
		t.Fatalf("events = %v, expected several kinds", kinds(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i].Kind < events[i-1].Kind {
			t.Fatalf("events out of order: %v", kinds(events))
		}
	}
}

func TestNilWorldMembers(t *testing.T) {
	if events := Detect(World{}); len(events) != 0 {
		t.Errorf("empty world produced %v", kinds(events))
	}
}
