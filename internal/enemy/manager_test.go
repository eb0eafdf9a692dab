package enemy

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/centipede-arcade/internal/core"
)

func TestSetLevelScaling(t *testing.T) {
	tests := []struct {
		level    int
		expected Intervals
	}{
		{1, Intervals{8000, 12000, 20000}},
		{3, Intervals{6400, 9600, 16000}},
		{6, Intervals{4000, 6000, 10000}},
		{20, Intervals{4000, 6000, 10000}}, // multiplier floored at 0.5
	}
	for _, tc := range tests {
		m := NewManager(nil, nil, DefaultTuning())
		m.SetLevel(tc.level)
		got := m.Intervals()
		if math.Abs(got.Spider-tc.expected.Spider) > 1e-6 ||
			math.Abs(got.Flea-tc.expected.Flea) > 1e-6 ||
			math.Abs(got.Scorpion-tc.expected.Scorpion) > 1e-6 {
			t.Errorf("SetLevel(%d) = %+v, expected %+v", tc.level, got, tc.expected)
		}
	}
}

func TestSetLevelRespectsFloors(t *testing.T) {
	tuning := DefaultTuning()
	tuning.MinFactor = 0.1
	m := NewManager(nil, nil, tuning)
	m.SetLevel(50)

	got := m.Intervals()
	if got != tuning.Floor {
		t.Errorf("intervals = %+v, expected floors %+v", got, tuning.Floor)
	}
}

func TestFleaSpawnsAfterInterval(t *testing.T) {
	tuning := DefaultTuning()
	tuning.SpiderChance = 0
	tuning.ScorpionChance = 0
	m := NewManager(newField(), rand.New(rand.NewSource(3)), tuning)

	// 12 s at 60 Hz
	for tick := 0; tick < 719; tick++ {
		m.Update(dt)
	}
	if m.Count() != 0 {
		t.Fatalf("%d enemies before the flea interval elapsed", m.Count())
	}
	m.Update(dt)

	active := m.Active()
	if len(active) != 1 || active[0].Kind != Flea {
		t.Fatalf("expected one flea after 12 s, got %v", active)
	}
	if active[0].Pos.X < 50 || active[0].Pos.X > 750 {
		t.Errorf("flea spawned at x=%f outside [50, 750]", active[0].Pos.X)
	}
}

func TestFleaGatedByBottomBand(t *testing.T) {
	f := newField()
	for _, x := range []float64{100, 200, 300} {
		f.AddMushroom(core.V(x, 360))
	}
	tuning := DefaultTuning()
	tuning.SpiderChance = 0
	tuning.ScorpionChance = 0
	m := NewManager(f, nil, tuning)

	for tick := 0; tick < 800; tick++ {
		m.Update(dt)
	}
	if m.Count() != 0 {
		t.Errorf("flea spawned with a full bottom band: %d enemies", m.Count())
	}
}

func TestSpiderAndScorpionSpawns(t *testing.T) {
	tuning := DefaultTuning()
	tuning.SpiderChance = 1
	tuning.ScorpionChance = 1
	tuning.FleaMaxBand = 0
	m := NewManager(nil, rand.New(rand.NewSource(5)), tuning)

	// 20 s covers both the spider and the scorpion interval
	var sawSpider, sawScorpion bool
	for tick := 0; tick < 1200; tick++ {
		m.Update(dt)
		for _, e := range m.Active() {
			switch e.Kind {
			case Spider:
				sawSpider = true
			case Scorpion:
				sawScorpion = true
				inward := (e.Scorpion.Dir > 0) == (e.Pos.X < core.WorldW/2)
				if !inward && len(e.Scorpion.PoisonTrail) == 0 && (e.Pos.X < 0 || e.Pos.X > core.WorldW) {
					t.Errorf("scorpion at x=%f spawned heading away from the field", e.Pos.X)
				}
			}
		}
	}
	if !sawSpider || !sawScorpion {
		t.Errorf("sawSpider=%v sawScorpion=%v, expected both", sawSpider, sawScorpion)
	}
}

func TestRemoveAndClear(t *testing.T) {
	m := NewManager(nil, nil, DefaultTuning())
	a := NewFlea(core.V(100, 100))
	b := NewFlea(core.V(200, 100))
	m.Add(a)
	m.Add(b)

	m.Remove(a)
	if m.Count() != 1 || m.Active()[0] != b {
		t.Fatalf("Remove left %d active enemies", m.Count())
	}
	m.Update(dt)
	if len(m.enemies) != 1 {
		t.Errorf("removed enemy not compacted: %d stored", len(m.enemies))
	}

	m.Clear()
	if m.Count() != 0 {
		t.Error("Clear should remove every enemy")
	}
}

func TestUpdateCullsGoneEnemies(t *testing.T) {
	m := NewManager(nil, nil, DefaultTuning())
	m.Add(NewFlea(core.V(400, core.WorldH+Size)))

	m.Update(dt)

	if m.Count() != 0 {
		t.Error("flea that fell past the bottom should be culled")
	}
}

func TestSetPressureScalesIntervals(t *testing.T) {
	m := NewManager(nil, nil, DefaultTuning())
	m.SetLevel(2)
	m.SetPressure(0.5)

	got := m.Intervals()
	expected := Intervals{Spider: 3600, Flea: 5400, Scorpion: 9000}
	if math.Abs(got.Spider-expected.Spider) > 1e-6 ||
		math.Abs(got.Flea-expected.Flea) > 1e-6 ||
		math.Abs(got.Scorpion-expected.Scorpion) > 1e-6 {
		t.Errorf("intervals = %+v, expected %+v", got, expected)
	}

	m.SetPressure(0.1)
	if got := m.Intervals(); got != DefaultTuning().Floor {
		t.Errorf("intervals = %+v, expected floors", got)
	}
}
