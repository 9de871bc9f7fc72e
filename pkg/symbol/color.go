package symbol

import "encoding/json"

// Palette maps every affiliation to a color. An empty entry is unresolved.
type Palette [numAffiliations]string

// NewPalette builds a palette from a partial map; missing affiliations stay unresolved.
func NewPalette(m map[Affiliation]string) Palette {
	var p Palette
	for a, c := range m {
		if a.Valid() {
			p[a] = c
		}
	}
	return p
}

// Uniform returns a palette with the same color for every affiliation.
func Uniform(c string) Palette {
	var p Palette
	for i := range p {
		p[i] = c
	}
	return p
}

// Get returns the color for a and whether it is resolved.
func (p Palette) Get(a Affiliation) (string, bool) {
	if !a.Valid() || p[a] == "" {
		return "", false
	}
	return p[a], true
}

// With returns a copy of p with a set to c.
func (p Palette) With(a Affiliation, c string) Palette {
	if a.Valid() {
		p[a] = c
	}
	return p
}

// Map returns the resolved entries keyed by affiliation name.
func (p Palette) Map() map[string]string {
	m := make(map[string]string)
	for i, c := range p {
		if c != "" {
			m[Affiliation(i).String()] = c
		}
	}
	return m
}

// MarshalJSON encodes the palette as an object keyed by affiliation name.
func (p Palette) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Map())
}

// Color is a style color given either as one value for every affiliation or
// as a per-affiliation palette. The zero value is unset.
type Color struct {
	single string
	perAff Palette
	mapped bool
}

// SingleColor returns a color that resolves to c for every affiliation.
func SingleColor(c string) Color { return Color{single: c} }

// MappedColor returns a color that resolves through p.
func MappedColor(p Palette) Color { return Color{perAff: p, mapped: true} }

// Resolve returns the color for a, or "" when unset.
func (c Color) Resolve(a Affiliation) string {
	if c.mapped {
		v, _ := c.perAff.Get(a)
		return v
	}
	return c.single
}

// IsMapped reports whether c carries a per-affiliation palette.
func (c Color) IsMapped() bool { return c.mapped }

// IsZero reports whether c is unset.
func (c Color) IsZero() bool { return !c.mapped && c.single == "" }

// MarshalJSON encodes a single color as a string and a mapped one as an object.
func (c Color) MarshalJSON() ([]byte, error) {
	if c.mapped {
		return json.Marshal(c.perAff.Map())
	}
	return json.Marshal(c.single)
}

// Colors is the color scheme of a symbol, indexed by affiliation.
type Colors struct {
	FrameColor Palette `json:"frameColor"`
	IconColor  Palette `json:"iconColor"`
	FillColor  Palette `json:"fillColor"`
}

// Style is the rendering configuration shared by all modifiers.
type Style struct {
	FontFamily   string  `json:"fontfamily"`
	InfoSize     float64 `json:"infoSize"`
	OutlineWidth float64 `json:"outlineWidth"`
	StrokeWidth  float64 `json:"strokeWidth"`
	OutlineColor Color   `json:"outlineColor"`
	InfoColor    Color   `json:"infoColor"`
}
