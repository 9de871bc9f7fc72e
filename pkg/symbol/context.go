package symbol

import "github.com/matzehuels/symbolmod/pkg/geom"

// BaseGeometry is the frame the modifiers are laid out around.
type BaseGeometry struct {
	Present bool      `json:"present"`
	BBox    geom.BBox `json:"bbox"`
}

// Metadata describes what the symbol is, as far as modifiers care.
type Metadata struct {
	BaseGeometry BaseGeometry `json:"baseGeometry"`
	Affiliation  Affiliation  `json:"affiliation"`
	Dimension    Dimension    `json:"dimension"`
}

// Context is everything a modifier needs to know about the symbol being rendered.
type Context struct {
	Metadata Metadata  `json:"metadata"`
	BBox     geom.BBox `json:"bbox"` // overall extent of everything drawn so far
	Colors   Colors    `json:"colors"`
	Style    Style     `json:"style"`
}

// FrameColor returns the frame color of the symbol's affiliation.
func (c Context) FrameColor() (string, bool) {
	return c.Colors.FrameColor.Get(c.Metadata.Affiliation)
}

// OutlineColor resolves the outline color for the symbol's affiliation.
func (c Context) OutlineColor() string {
	return c.Style.OutlineColor.Resolve(c.Metadata.Affiliation)
}

// InfoColor resolves the color of informational text. In order it tries the
// configured info color, the affiliation's icon color and the Friend icon color.
func (c Context) InfoColor() string {
	a := c.Metadata.Affiliation
	if v := c.Style.InfoColor.Resolve(a); v != "" {
		return v
	}
	if v, ok := c.Colors.IconColor.Get(a); ok {
		return v
	}
	v, _ := c.Colors.IconColor.Get(Friend)
	return v
}
