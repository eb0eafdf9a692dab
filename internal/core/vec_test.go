package core

import (
	"math"
	"testing"
)

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"same center", BoxAt(V(100, 100), 16), BoxAt(V(100, 100), 4), true},
		{"partial overlap", BoxAt(V(100, 100), 16), BoxAt(V(110, 110), 16), true},
		{"touching edges", BoxAt(V(100, 100), 16), BoxAt(V(116, 100), 16), false},
		{"apart vertically", BoxAt(V(100, 100), 16), BoxAt(V(100, 140), 16), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxAtCenters(t *testing.T) {
	b := BoxAt(V(400, 550), 16)
	if b.X != 392 || b.Y != 542 || b.W != 16 || b.H != 16 {
		t.Errorf("BoxAt = %+v, expected {392 542 16 16}", b)
	}
	if c := b.Center(); c != V(400, 550) {
		t.Errorf("Center() = %v, expected (400, 550)", c)
	}
}

func TestVecNormalize(t *testing.T) {
	n := V(3, 4).Normalize()
	if math.Abs(n.Len()-1) > 1e-9 {
		t.Errorf("Normalize length = %f, expected 1", n.Len())
	}
	if z := (Vec2{}).Normalize(); !z.IsZero() {
		t.Errorf("Normalize of zero = %v, expected zero", z)
	}
	if d := V(0, 0).Dist(V(3, 4)); d != 5 {
		t.Errorf("Dist = %f, expected 5", d)
	}
}

func TestColorHex(t *testing.T) {
	c := ParseHex("#ff6600")
	if c != ColorOrange {
		t.Errorf("ParseHex(#ff6600) = %x, expected %x", c, ColorOrange)
	}
	if c.Hex() != "#ff6600" {
		t.Errorf("Hex() = %q, expected #ff6600", c.Hex())
	}
	if ParseHex("orange") != ColorDefault {
		t.Error("malformed hex should yield ColorDefault")
	}
	if ColorBlack.IsDefault() {
		t.Error("black must be distinguishable from the default color")
	}
	if rgba := ColorYellow.RGBA(); rgba.R != 0xff || rgba.G != 0xff || rgba.B != 0 || rgba.A != 0xff {
		t.Errorf("RGBA() = %+v", rgba)
	}
}

func TestInputFrameMoveClamped(t *testing.T) {
	f := NewInputFrame()
	f.SetMove(2, -3)
	if f.Move != V(1, -1) {
		t.Errorf("Move = %v, expected (1, -1)", f.Move)
	}

	f.Fire = true
	f.FirePressed = true
	f.Set(ActionPause)
	held := f.Held()
	if !held.Fire || held.FirePressed || held.Has(ActionPause) {
		t.Errorf("Held() should keep only level state, got %+v", held)
	}

	f.Clear()
	if f.Fire || f.FirePressed || f.Has(ActionPause) || !f.Move.IsZero() {
		t.Errorf("Clear() left state behind: %+v", f)
	}
}
