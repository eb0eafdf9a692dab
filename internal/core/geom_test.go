package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(3, 4, 10, 6)
	if r.Right() != 13 || r.Bottom() != 10 {
		t.Errorf("edges = (%d, %d), expected (13, 10)", r.Right(), r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{-1, -1, 1, -1},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	tests := []struct {
		a, b     int
		min, max int
	}{
		{5, 10, 5, 10},
		{10, 5, 5, 10},
		{-3, -3, -3, -3},
	}

	for _, tc := range tests {
		if got := Min(tc.a, tc.b); got != tc.min {
			t.Errorf("Min(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.min)
		}
		if got := Max(tc.a, tc.b); got != tc.max {
			t.Errorf("Max(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.max)
		}
	}
}
