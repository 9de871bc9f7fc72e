package modifier

import (
	"github.com/rivo/uniseg"

	"github.com/matzehuels/symbolmod/pkg/draw"
	"github.com/matzehuels/symbolmod/pkg/geom"
	"github.com/matzehuels/symbolmod/pkg/glyph"
	"github.com/matzehuels/symbolmod/pkg/symbol"
)

const (
	spacing   = 20.0 // gap between the frame's right edge and a side modifier
	stackStep = 15.0 // horizontal shift per echeloned symbol

	reinforcedExtent   = 37.0
	reinforcedTextSize = 50.0

	signatureExtent = 22.0
	signatureTop    = 145.0

	headquartersX    = 100.0
	headquartersY    = 103.0
	headquartersSize = 45.0
)

// headquartersSizes maps label length to font size; lengths not listed keep
// headquartersSize and anything longer than seven uses the last entry.
var headquartersSizes = map[int]float64{
	1: 45,
	3: 35,
	4: 32,
	5: 29,
	6: 26,
	7: 25,
}

const headquartersSizeLong = 24.0

// Result holds the primitives a modifier pass adds around a symbol.
// Callers draw Background, then the base icon, then Foreground.
type Result struct {
	Background []draw.Primitive `json:"background"`
	Foreground []draw.Primitive `json:"foreground"`
	BBox       geom.BBox        `json:"bbox"`
}

// Computer computes modifiers with a configurable outline routine.
// The zero value uses draw.Outline.
type Computer struct {
	Outline draw.Outliner
}

// Compute runs a Computer with the default outline routine.
func Compute(sym symbol.Context, opts Options) Result {
	return Computer{}.Compute(sym, opts)
}

// Compute returns the modifier primitives for sym and the symbol bbox grown to
// fit them. Nothing is drawn without a base geometry and a resolved frame
// color; the bbox is then returned unchanged. Compute does not modify its
// arguments and is safe for concurrent use.
func (c Computer) Compute(sym symbol.Context, opts Options) Result {
	res := Result{
		Background: []draw.Primitive{},
		Foreground: []draw.Primitive{},
		BBox:       sym.BBox,
	}

	frame, ok := sym.FrameColor()
	if !sym.Metadata.BaseGeometry.Present || !ok {
		return res
	}

	l := layout{
		base:     sym.Metadata.BaseGeometry.BBox,
		offset:   StackOffset(opts.Stack),
		infoSize: sym.Style.InfoSize,
	}

	if !opts.Reinforced.IsZero() {
		p, ext := l.reinforced(opts.Reinforced, frame, sym.Style.FontFamily)
		res.Foreground = append(res.Foreground, p)
		res.BBox.Merge(ext)
	}

	if opts.Signature == SignatureDummy {
		p, ext := l.signature(frame, sym.Style.FontFamily)
		res.Foreground = append(res.Foreground, p)
		res.BBox.Merge(ext)
	}

	if opts.SpecialHeadquarters != "" {
		res.Foreground = append(res.Foreground, headquarters(opts.SpecialHeadquarters, sym.InfoColor(), sym.Style.FontFamily))
	}

	if sym.Style.OutlineWidth > 0 && len(res.Foreground) > 0 {
		outline := c.Outline
		if outline == nil {
			outline = draw.Outline
		}
		res.Background = append(res.Background,
			outline(res.Foreground, sym.Style.OutlineWidth, sym.Style.StrokeWidth, sym.OutlineColor()))
	}

	return res
}

// StackOffset is the horizontal shift applied to side modifiers when n
// symbols are echeloned behind this one. Negative counts are treated as zero.
func StackOffset(n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n) * stackStep
}

// HeadquartersFontSize returns the font size for a special headquarters label.
// Length is counted in user-perceived characters.
func HeadquartersFontSize(label string) float64 {
	n := uniseg.GraphemeClusterCount(label)
	if n >= 8 {
		return headquartersSizeLong
	}
	if size, ok := headquartersSizes[n]; ok {
		return size
	}
	return headquartersSize
}

// layout positions side modifiers relative to the base geometry.
type layout struct {
	base     geom.BBox
	offset   float64
	infoSize float64
}

func (l layout) left() float64 { return l.base.X2 + spacing }

func (l layout) reinforced(r Reinforcement, frame, fontFamily string) (draw.Primitive, geom.Partial) {
	y := 100 - 1.5*l.infoSize
	ext := geom.Partial{
		X2: geom.At(l.left() + reinforcedExtent + l.offset),
		Y1: geom.At(100 - 2.5*l.infoSize),
	}

	if key, ok := r.Glyph(); ok {
		tpl, _ := glyph.Lookup(key)
		tpl = tpl.At(l.left()+l.offset, y)
		return draw.Path{Fill: frame, D: tpl.D}, ext
	}

	// Custom text keeps its position when stacked; only the extent moves.
	return draw.Text{
		Content:    r.String(),
		X:          l.left(),
		Y:          y,
		Fill:       frame,
		FontFamily: fontFamily,
		FontSize:   reinforcedTextSize,
		Anchor:     draw.AnchorStart,
	}, ext
}

func (l layout) signature(frame, fontFamily string) (draw.Primitive, geom.Partial) {
	y := 100 + 2.5*l.infoSize
	return draw.Text{
			Content:    SignatureDummy,
			X:          l.left() + l.offset,
			Y:          y,
			Fill:       frame,
			FontFamily: fontFamily,
			FontSize:   l.infoSize,
			FontWeight: "bold",
			Anchor:     draw.AnchorStart,
		}, geom.Partial{
			X2: geom.At(l.left() + signatureExtent + l.offset),
			Y1: geom.At(signatureTop),
			Y2: geom.At(y),
		}
}

func headquarters(label, color, fontFamily string) draw.Primitive {
	return draw.Text{
		Content:    label,
		X:          headquartersX,
		Y:          headquartersY,
		Fill:       color,
		FontFamily: fontFamily,
		FontSize:   HeadquartersFontSize(label),
		FontWeight: "bold",
		Anchor:     draw.AnchorMiddle,
		Baseline:   "middle",
		NoStroke:   true,
	}
}
