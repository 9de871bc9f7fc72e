// Package glyph holds the predefined path templates for the reinforced and
// reduced strength indicator: "(+)", "(-)" and "(±)".
//
// Template path data is relative: it starts with a lowercase move and is
// anchored by prefixing an absolute move-to with [Template.At]. Templates are
// values, so callers always work on a copy and the table itself never changes.
package glyph

import (
	"strconv"
	"strings"
)

// Key identifies a template in the table.
type Key string

const (
	Plus      Key = "plus"
	Minus     Key = "minus"
	PlusMinus Key = "plus_minus"
)

// Template is a filled glyph drawn from an anchor point.
type Template struct {
	Name string
	D    string
	Fill string
}

// Glyphs are 37 units wide and rise 38 units above the anchor. The right
// parenthesis starts at its top corner, relative to where the sign ends.
const (
	leftParen  = "m 8,-38 c -8,9 -8,27 0,36 l 2,0 c -6,-9 -6,-27 0,-36 z "
	rightParen = "c 8,9 8,27 0,36 l -2,0 c 6,-9 6,-27 0,-36 z"
)

var table = map[Key]Template{
	Plus: {
		Name: string(Plus),
		D:    leftParen + "m 9.5,10 h 2 v 16 h -2 z m -5.5,7 h 13 v 2 h -13 z m 17,-17 " + rightParen,
		Fill: "black",
	},
	Minus: {
		Name: string(Minus),
		D:    leftParen + "m 4,17 h 13 v 2 h -13 z m 17,-17 " + rightParen,
		Fill: "black",
	},
	PlusMinus: {
		Name: string(PlusMinus),
		D: leftParen + "m 9.5,8 h 2 v 12 h -2 z m -5.5,5 h 13 v 2 h -13 z " +
			"m 0,10 h 13 v 2 h -13 z m 17,-23 " + rightParen,
		Fill: "black",
	},
}

// Lookup returns a copy of the template for k.
func Lookup(k Key) (Template, bool) {
	t, ok := table[k]
	return t, ok
}

// Keys returns the template keys in a fixed order.
func Keys() []Key {
	return []Key{Plus, Minus, PlusMinus}
}

// At returns a copy of t anchored at (x, y).
func (t Template) At(x, y float64) Template {
	var sb strings.Builder
	sb.Grow(len(t.D) + 24)
	sb.WriteByte('M')
	sb.WriteString(FormatNumber(x))
	sb.WriteByte(',')
	sb.WriteString(FormatNumber(y))
	sb.WriteByte(' ')
	sb.WriteString(t.D)
	t.D = sb.String()
	return t
}

// FormatNumber formats v the shortest way that round-trips, without an exponent
// for the magnitudes a symbol canvas uses.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
