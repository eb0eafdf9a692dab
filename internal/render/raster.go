package render

import (
	"math"

	"github.com/vovakirdan/centipede-arcade/internal/core"
)

// Rasterize paints d onto a character screen, scaling the world to the
// screen size. Shapes use their Glyph; shapes without one are decoration
// and skipped, as are lines.
func Rasterize(d DrawList, dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	if w <= 0 || h <= 0 {
		return
	}
	sx := float64(w) / core.WorldW
	sy := float64(h) / core.WorldH

	cell := func(x, y float64) (int, int) {
		return int(math.Floor(x * sx)), int(math.Floor(y * sy))
	}

	for _, p := range d.Prims {
		switch p.Kind {
		case Rect:
			if p.Glyph == 0 {
				continue
			}
			x0, y0 := cell(p.X, p.Y)
			x1, y1 := cell(p.X+p.W, p.Y+p.H)
			// Small sprites still cover their center cell.
			if x1 <= x0 || y1 <= y0 {
				cx, cy := cell(p.X+p.W/2, p.Y+p.H/2)
				dst.SetCell(cx, cy, core.Cell{Rune: p.Glyph, Color: p.Color})
				continue
			}
			if p.Glyph == ' ' {
				dst.FillRect(core.NewRect(x0, y0, x1-x0, y1-y0), ' ', core.ColorDefault)
				continue
			}
			dst.FillRect(core.NewRect(x0, y0, x1-x0, y1-y0), p.Glyph, p.Color)
		case Circle:
			if p.Glyph == 0 {
				continue
			}
			cx, cy := cell(p.X, p.Y)
			dst.SetCell(cx, cy, core.Cell{Rune: p.Glyph, Color: p.Color})
		case Text:
			x, y := cell(p.X, p.Y)
			if p.Align == AlignCenter {
				x -= len([]rune(p.Text)) / 2
			}
			dst.DrawTextColor(x, y, p.Text, p.Color)
		}
	}
}
