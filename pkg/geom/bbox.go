// Package geom provides the bounding box used to compose symbol layouts.
//
// Coordinates follow the SVG convention of the 200×200 symbol canvas: x grows
// to the right and y grows downward, so Y1 is the top edge and Y2 the bottom.
package geom

import "fmt"

// BBox is an axis-aligned rectangle tracking the drawn extent of a symbol.
type BBox struct {
	X1 float64 `json:"x1" toml:"x1"`
	Y1 float64 `json:"y1" toml:"y1"`
	X2 float64 `json:"x2" toml:"x2"`
	Y2 float64 `json:"y2" toml:"y2"`
}

// New returns the box spanning (x1, y1) to (x2, y2).
func New(x1, y1, x2, y2 float64) BBox {
	return BBox{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

func (b BBox) Width() float64  { return b.X2 - b.X1 }
func (b BBox) Height() float64 { return b.Y2 - b.Y1 }

// Contains reports whether other lies entirely inside b.
func (b BBox) Contains(other BBox) bool {
	return other.X1 >= b.X1 && other.Y1 >= b.Y1 && other.X2 <= b.X2 && other.Y2 <= b.Y2
}

// Union returns the smallest box containing both b and other.
func (b BBox) Union(other BBox) BBox {
	return BBox{
		X1: min(b.X1, other.X1),
		Y1: min(b.Y1, other.Y1),
		X2: max(b.X2, other.X2),
		Y2: max(b.Y2, other.Y2),
	}
}

// Pad grows b by d on every side.
func (b BBox) Pad(d float64) BBox {
	return BBox{X1: b.X1 - d, Y1: b.Y1 - d, X2: b.X2 + d, Y2: b.Y2 + d}
}

func (b BBox) String() string {
	return fmt.Sprintf("[%g,%g %g,%g]", b.X1, b.Y1, b.X2, b.Y2)
}

// Limit is an optional bound of a Partial. The zero value is unset.
type Limit struct {
	V  float64
	OK bool
}

// At returns a set limit with value v.
func At(v float64) Limit { return Limit{V: v, OK: true} }

// Partial names only the bounds a modifier wants to push outward.
type Partial struct {
	X1, Y1, X2, Y2 Limit
}

// Merge expands b toward the given bounds. X1 and Y1 only ever move to the
// minimum, X2 and Y2 only to the maximum, so merges commute and b never shrinks.
func (b *BBox) Merge(p Partial) {
	if p.X1.OK {
		b.X1 = min(b.X1, p.X1.V)
	}
	if p.Y1.OK {
		b.Y1 = min(b.Y1, p.Y1.V)
	}
	if p.X2.OK {
		b.X2 = max(b.X2, p.X2.V)
	}
	if p.Y2.OK {
		b.Y2 = max(b.Y2, p.Y2.V)
	}
}
