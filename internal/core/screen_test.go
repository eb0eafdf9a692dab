package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetCellClips(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetCell(5, 5, Cell{Rune: 'X', Color: ColorRed})

	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red X", c)
	}

	// Out of bounds writes are dropped
	for _, p := range [][2]int{{-1, 0}, {100, 0}, {0, -1}, {0, 100}} {
		s.SetCell(p[0], p[1], Cell{Rune: 'A'})
		if c := s.GetCell(p[0], p[1]); c != blankCell {
			t.Errorf("GetCell(%d, %d) = %+v, expected blank", p[0], p[1], c)
		}
	}
}

func TestScreenDrawTextColor(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColor(2, 1, "Score", ColorYellow)

	if got := s.Row(1); !strings.HasPrefix(got, "  Score ") {
		t.Errorf("row 1 = %q", got)
	}
	if s.GetCell(2, 1).Color != ColorYellow {
		t.Error("text should carry its color")
	}
	if !s.GetCell(1, 1).Color.IsDefault() {
		t.Error("untouched cells should keep the default color")
	}

	// Clipped at the right edge
	s.DrawTextColor(18, 0, "Hello", ColorWhite)
	if got := s.Row(0); !strings.HasSuffix(got, "He") {
		t.Errorf("row 0 = %q, expected clipped text", got)
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 5)
	s.FillRect(NewRect(2, 1, 3, 2), '#', ColorGreen)

	for y := range 5 {
		for x := range 10 {
			inside := x >= 2 && x < 5 && y >= 1 && y < 3
			c := s.GetCell(x, y)
			if inside && (c.Rune != '#' || c.Color != ColorGreen) {
				t.Errorf("cell (%d, %d) = %+v, expected green #", x, y, c)
			}
			if !inside && c != blankCell {
				t.Errorf("cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenClearResetsColors(t *testing.T) {
	s := NewScreen(10, 3)
	s.FillRect(NewRect(0, 0, 10, 3), 'X', ColorRed)
	s.Clear()

	if got := s.String(); got != strings.Repeat(" ", 10)+"\n"+strings.Repeat(" ", 10)+"\n"+strings.Repeat(" ", 10) {
		t.Errorf("String() after Clear = %q", got)
	}
	if !s.GetCell(4, 1).Color.IsDefault() {
		t.Error("Clear should reset colors")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawTextColor(0, 0, "AAAAA", ColorDefault)
	s.DrawTextColor(0, 1, "BBBBB", ColorDefault)
	s.DrawTextColor(0, 2, "CCCCC", ColorDefault)

	if got, want := s.String(), "AAAAA\nBBBBB\nCCCCC"; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColor(0, 0, "Hello", ColorCyan)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize, size = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if got := s.Row(0); !strings.HasPrefix(got, "Hello") {
		t.Errorf("row 0 = %q, content should survive shrinking", got)
	}

	s.Resize(15, 8)
	if got := s.Row(0); !strings.HasPrefix(got, "Hello") || len(got) != 15 {
		t.Errorf("row 0 = %q, content should survive growing", got)
	}
	if s.GetCell(0, 0).Color != ColorCyan {
		t.Error("resize should keep colors")
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	if got := s.Row(-1); got != "    " {
		t.Errorf("Row(-1) = %q, expected spaces", got)
	}
	if s.Get(9, 9) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}
