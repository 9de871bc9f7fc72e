// Package draw defines the drawing primitives a symbol is composed of.
//
// Primitives are plain values. Renderers switch over the concrete type:
//
//	switch p := prim.(type) {
//	case draw.Path:
//	case draw.Text:
//	case draw.Group:
//	}
//
// The set is closed; only this package can add variants.
package draw

// Primitive is one drawable element of a symbol layer.
type Primitive interface {
	primitive()
}

// Path is an SVG path with path data D.
type Path struct {
	Fill        string  // Fill color ("" leaves the renderer default)
	D           string  // SVG path data
	Stroke      string  // Stroke color ("" for none)
	StrokeWidth float64 // Stroke width, used when Stroke is set
	LineJoin    string  // Stroke line join ("" leaves the renderer default)
}

// Anchor is the horizontal text alignment relative to the text position.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Text is a single line of text.
type Text struct {
	Content     string
	X, Y        float64
	Fill        string
	FontFamily  string
	FontSize    float64
	FontWeight  string // "bold" or "" for normal
	Anchor      Anchor
	Baseline    string // alignment-baseline, "" when unset
	Stroke      string
	StrokeWidth float64
	NoStroke    bool // explicitly disables stroking, even under an outline
}

// Group collects primitives rendered together, such as a synthesized outline.
type Group struct {
	Children []Primitive
}

func (Path) primitive()  {}
func (Text) primitive()  {}
func (Group) primitive() {}

// Count returns the number of leaf primitives in prims, descending into groups.
func Count(prims []Primitive) int {
	n := 0
	for _, p := range prims {
		if g, ok := p.(Group); ok {
			n += Count(g.Children)
			continue
		}
		n++
	}
	return n
}
