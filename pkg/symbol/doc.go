// Package symbol models the symbol context modifiers are computed against:
// affiliation and dimension, the affiliation-indexed color palettes, the
// shared style configuration and the base geometry.
//
// Affiliations form a closed set. Every palette is an array with one slot per
// affiliation, so a lookup can only be resolved or unresolved, never missing:
//
//	frame, ok := ctx.Colors.FrameColor.Get(symbol.Hostile)
//
// Style colors are either a single value or a palette, see [Color].
package symbol
