// Package render turns a read-only view of the world into an ordered list
// of draw primitives. Backends rasterize the list; nothing here touches
// simulation state.
package render

import (
	"fmt"
	"hash/fnv"

	"github.com/vovakirdan/centipede-arcade/internal/core"
)

// Kind is the primitive shape.
type Kind int

const (
	Rect Kind = iota
	Circle
	Line
	Text
)

func (k Kind) String() string {
	switch k {
	case Rect:
		return "rect"
	case Circle:
		return "circle"
	case Line:
		return "line"
	case Text:
		return "text"
	default:
		return "unknown"
	}
}

// Align controls text anchoring.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Primitive is one shape in world coordinates.
//
//	Rect:   X, Y top-left, W, H
//	Circle: X, Y center, R
//	Line:   X, Y to X2, Y2, Width
//	Text:   X, Y anchor, Text, Align
//
// Glyph is a hint for cell-based backends.
type Primitive struct {
	Kind   Kind
	X, Y   float64
	W, H   float64
	R      float64
	X2, Y2 float64
	Width  float64
	Text   string
	Align  Align
	Color  core.Color
	Glyph  rune
}

// DrawList is an ordered frame; later primitives paint over earlier ones.
type DrawList struct {
	Prims []Primitive
}

func (d *DrawList) add(p Primitive) { d.Prims = append(d.Prims, p) }

// Rect appends a filled rectangle.
func (d *DrawList) Rect(x, y, w, h float64, c core.Color, glyph rune) {
	d.add(Primitive{Kind: Rect, X: x, Y: y, W: w, H: h, Color: c, Glyph: glyph})
}

// Circle appends a filled circle.
func (d *DrawList) Circle(x, y, r float64, c core.Color, glyph rune) {
	d.add(Primitive{Kind: Circle, X: x, Y: y, R: r, Color: c, Glyph: glyph})
}

// Line appends a line segment.
func (d *DrawList) Line(x1, y1, x2, y2, width float64, c core.Color) {
	d.add(Primitive{Kind: Line, X: x1, Y: y1, X2: x2, Y2: y2, Width: width, Color: c})
}

// Text appends a text run.
func (d *DrawList) Text(x, y float64, s string, align Align, c core.Color) {
	d.add(Primitive{Kind: Text, X: x, Y: y, Text: s, Align: align, Color: c})
}

// Len returns the number of primitives.
func (d *DrawList) Len() int { return len(d.Prims) }

// Reset empties the list, keeping its storage.
func (d *DrawList) Reset() { d.Prims = d.Prims[:0] }

// Count returns how many primitives of kind k the list holds.
func (d *DrawList) Count(k Kind) int {
	n := 0
	for _, p := range d.Prims {
		if p.Kind == k {
			n++
		}
	}
	return n
}

// Hash fingerprints the list for determinism checks.
func (d *DrawList) Hash() uint64 {
	h := fnv.New64a()
	for _, p := range d.Prims {
		fmt.Fprintf(h, "%d|%.3f|%.3f|%.3f|%.3f|%.3f|%.3f|%.3f|%q|%d|%x;",
			p.Kind, p.X, p.Y, p.W, p.H, p.R, p.X2, p.Y2, p.Text, p.Align, uint32(p.Color))
	}
	return h.Sum64()
}
