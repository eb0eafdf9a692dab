package enemy

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/centipede-arcade/internal/core"
	"github.com/vovakirdan/centipede-arcade/internal/field"
)

const dt = 1.0 / 60

func newField() *field.Field {
	return field.New(field.DefaultBounds(), rand.New(rand.NewSource(1)))
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{Spider, "spider"},
		{Flea, "flea"},
		{Scorpion, "scorpion"},
		{Kind(9), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.expected {
			t.Errorf("Kind(%d).String() = %q, expected %q", tc.kind, got, tc.expected)
		}
	}
}

func TestSpiderPoints(t *testing.T) {
	player := core.V(400, 550)
	tests := []struct {
		spider   core.Vec2
		expected int
	}{
		{core.V(400, 520), 900},
		{core.V(400, 500.5), 900},
		{core.V(400, 480), 600},
		{core.V(400, 450), 300},
		{core.V(100, 350), 300},
	}
	for _, tc := range tests {
		if got := SpiderPoints(tc.spider, player); got != tc.expected {
			t.Errorf("SpiderPoints(%v) = %d, expected %d", tc.spider, got, tc.expected)
		}
	}
}

func TestSpiderStaysInBand(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	e := NewSpider(core.V(0, 350), rng)
	env := Env{Rand: rng}

	for tick := 0; tick < 3000; tick++ {
		e.Update(dt, env)
		if e.Pos.X < Size || e.Pos.X > core.WorldW-Size {
			t.Fatalf("spider x=%f left [%f, %f]", e.Pos.X, Size, core.WorldW-Size)
		}
		if e.Pos.Y < spiderMinY || e.Pos.Y > spiderMaxY {
			t.Fatalf("spider y=%f left [%f, %f]", e.Pos.Y, spiderMinY, spiderMaxY)
		}
	}
	if e.Gone() {
		t.Error("a clamped spider should never be culled")
	}
}

func TestSpiderBounceCue(t *testing.T) {
	var cues []core.Cue
	e := NewSpider(core.V(400, 400), nil)
	e.Spider.Target = core.V(402, 400)

	e.Update(dt, Env{Cue: func(c core.Cue) { cues = append(cues, c) }})

	if len(cues) != 1 || cues[0] != core.CueSpiderBounce {
		t.Errorf("cues = %v, expected one spiderBounce on arrival", cues)
	}
}

func TestFleaDropsMushrooms(t *testing.T) {
	f := newField()
	e := NewFlea(core.V(205, 80))
	env := Env{Field: f}

	// 150 u/s over 1 s crosses 150 units: five drops
	for tick := 0; tick < 60; tick++ {
		e.Update(dt, env)
	}

	if e.Pos.Y < 229 || e.Pos.Y > 231 {
		t.Errorf("flea at y=%f, expected about 230", e.Pos.Y)
	}
	if n := len(f.Active()); n < 4 || n > 5 {
		t.Errorf("flea dropped %d mushrooms, expected 4 or 5", n)
	}
}

func TestFleaCulledOnlyBelowWorld(t *testing.T) {
	e := NewFlea(core.V(400, -20))
	if e.Gone() {
		t.Fatal("flea spawned above the world must not be culled")
	}
	e.Pos.Y = core.WorldH + Size + 1
	if !e.Gone() {
		t.Error("flea below y=616 should be culled")
	}
}

func TestScorpionPoisonsOnce(t *testing.T) {
	f := newField()
	f.AddMushroom(core.V(100, 200))
	e := NewScorpion(core.V(-20, 200), 1)
	env := Env{Field: f}

	for tick := 0; tick < 180; tick++ {
		e.Update(dt, env)
	}

	m := f.QueryAt(core.V(100, 200), 1)
	if m == nil || !m.Poisoned {
		t.Fatal("mushroom in the scorpion's path should be poisoned")
	}
	if len(e.Scorpion.PoisonTrail) != 1 {
		t.Errorf("poison trail has %d entries, expected 1", len(e.Scorpion.PoisonTrail))
	}
}

func TestScorpionCulling(t *testing.T) {
	right := NewScorpion(core.V(-20, 200), 1)
	if right.Gone() {
		t.Error("scorpion entering from the left must not be culled at spawn")
	}
	right.Pos.X = core.WorldW + Size + 1
	if !right.Gone() {
		t.Error("scorpion past the right edge should be culled")
	}

	left := NewScorpion(core.V(core.WorldW+20, 200), -1)
	if left.Gone() {
		t.Error("scorpion entering from the right must not be culled at spawn")
	}
	left.Pos.X = -Size - 1
	if !left.Gone() {
		t.Error("scorpion past the left edge should be culled")
	}
}

func TestDamageDestroysOnce(t *testing.T) {
	e := NewFlea(core.V(100, 100))
	if !e.Damage(1) {
		t.Fatal("first hit should destroy a 1-health enemy")
	}
	if e.Damage(1) {
		t.Error("hitting a destroyed enemy should report false")
	}
}
