package render

import (
	"strings"
	"testing"

	"github.com/vovakirdan/centipede-arcade/internal/core"
)

func TestRasterizeShapes(t *testing.T) {
	var d DrawList
	d.Rect(0, 0, core.WorldW, core.WorldH, core.ColorBlack, ' ')
	d.Rect(0, 0, 100, 75, core.ColorRed, '#')
	d.Circle(405, 312, 8, core.ColorGreen, '@')
	d.Text(400, 450, "ABCD", AlignCenter, core.ColorWhite)

	scr := core.NewScreen(80, 24)
	Rasterize(d, scr)

	tests := []struct {
		name  string
		x, y  int
		glyph rune
	}{
		{"rect corner", 0, 0, '#'},
		{"rect far corner", 9, 2, '#'},
		{"right of rect", 10, 0, ' '},
		{"below rect", 0, 3, ' '},
		{"circle center", 40, 12, '@'},
	}
	for _, tc := range tests {
		if got := scr.Get(tc.x, tc.y); got != tc.glyph {
			t.Errorf("%s: cell (%d,%d) = %q, expected %q", tc.name, tc.x, tc.y, got, tc.glyph)
		}
	}
	if c := scr.GetCell(40, 12).Color; c != core.ColorGreen {
		t.Errorf("circle color = %s, expected green", c.Hex())
	}
	if row := scr.Row(18); !strings.Contains(row[38:], "ABCD") || row[38] != 'A' {
		t.Errorf("centered text misplaced: %q", row)
	}
}

func TestRasterizeSkipsDecoration(t *testing.T) {
	var d DrawList
	d.Rect(100, 100, 200, 200, core.ColorRed, 0)
	d.Line(0, 0, 800, 600, 2, core.ColorRed)
	d.Circle(400, 300, 50, core.ColorRed, 0)

	scr := core.NewScreen(80, 24)
	Rasterize(d, scr)
	if strings.TrimSpace(scr.String()) != "" {
		t.Errorf("decoration should not be rasterized:\n%s", scr.String())
	}
}

func TestRasterizeTinySpriteKeepsCenterCell(t *testing.T) {
	var d DrawList
	d.Rect(401, 301, 4, 4, core.ColorYellow, '|')

	scr := core.NewScreen(80, 24)
	Rasterize(d, scr)
	if got := scr.Get(40, 12); got != '|' {
		t.Errorf("tiny sprite cell = %q, expected '|'", got)
	}
}

func TestRasterizeEmptyScreen(t *testing.T) {
	var d DrawList
	d.Text(0, 0, "x", AlignLeft, core.ColorWhite)
	Rasterize(d, core.NewScreen(0, 0))
}
