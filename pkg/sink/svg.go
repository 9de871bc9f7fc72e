package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/symbolmod/pkg/draw"
	"github.com/matzehuels/symbolmod/pkg/geom"
	"github.com/matzehuels/symbolmod/pkg/glyph"
	"github.com/matzehuels/symbolmod/pkg/modifier"
	"github.com/matzehuels/symbolmod/pkg/symbol"
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	base    []draw.Primitive
	padding float64
	scale   float64
}

// WithBase sets the base icon drawn between the background and foreground layers.
func WithBase(prims []draw.Primitive) SVGOption { return func(r *svgRenderer) { r.base = prims } }

// WithPadding adds d units around the result bbox in the viewBox.
func WithPadding(d float64) SVGOption { return func(r *svgRenderer) { r.padding = d } }

// WithScale sets the ratio of output pixels to symbol units (default 1).
func WithScale(s float64) SVGOption { return func(r *svgRenderer) { r.scale = s } }

// RenderSVG renders a standalone SVG document containing the background
// layer, the base icon and the foreground layer, in that order. The viewBox
// is the result bbox.
func RenderSVG(res modifier.Result, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	box := res.BBox.Pad(r.padding)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" width="%s" height="%s">`+"\n",
		num(box.X1), num(box.Y1), num(box.Width()), num(box.Height()),
		num(box.Width()*r.scale), num(box.Height()*r.scale))
	renderLayers(&buf, res, r.base)
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// RenderFragment renders the layers without the enclosing svg element, for
// embedding into a document produced elsewhere.
func RenderFragment(res modifier.Result, base []draw.Primitive) []byte {
	var buf bytes.Buffer
	renderLayers(&buf, res, base)
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{scale: 1}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func renderLayers(buf *bytes.Buffer, res modifier.Result, base []draw.Primitive) {
	for _, p := range res.Background {
		renderPrimitive(buf, p, 1)
	}
	for _, p := range base {
		renderPrimitive(buf, p, 1)
	}
	for _, p := range res.Foreground {
		renderPrimitive(buf, p, 1)
	}
}

func renderPrimitive(buf *bytes.Buffer, p draw.Primitive, depth int) {
	indent := bytes.Repeat([]byte("  "), depth)
	switch v := p.(type) {
	case draw.Path:
		buf.Write(indent)
		fmt.Fprintf(buf, `<path d="%s" fill="%s"`, EscapeXML(v.D), fillAttr(v.Fill))
		strokeAttrs(buf, v.Stroke, v.StrokeWidth)
		if v.LineJoin != "" {
			fmt.Fprintf(buf, ` stroke-linejoin="%s"`, EscapeXML(v.LineJoin))
		}
		buf.WriteString("/>\n")
	case draw.Text:
		buf.Write(indent)
		fmt.Fprintf(buf, `<text x="%s" y="%s" fill="%s" font-family="%s" font-size="%s"`,
			num(v.X), num(v.Y), fillAttr(v.Fill), EscapeXML(v.FontFamily), num(v.FontSize))
		if v.FontWeight != "" {
			fmt.Fprintf(buf, ` font-weight="%s"`, EscapeXML(v.FontWeight))
		}
		if v.Anchor != "" {
			fmt.Fprintf(buf, ` text-anchor="%s"`, v.Anchor)
		}
		if v.Baseline != "" {
			fmt.Fprintf(buf, ` alignment-baseline="%s"`, EscapeXML(v.Baseline))
		}
		if v.NoStroke {
			buf.WriteString(` stroke="none"`)
		} else {
			strokeAttrs(buf, v.Stroke, v.StrokeWidth)
		}
		fmt.Fprintf(buf, ">%s</text>\n", EscapeXML(v.Content))
	case draw.Group:
		buf.Write(indent)
		buf.WriteString("<g>\n")
		for _, c := range v.Children {
			renderPrimitive(buf, c, depth+1)
		}
		buf.Write(indent)
		buf.WriteString("</g>\n")
	}
}

func strokeAttrs(buf *bytes.Buffer, stroke string, width float64) {
	if stroke == "" {
		return
	}
	fmt.Fprintf(buf, ` stroke="%s"`, EscapeXML(stroke))
	if width > 0 {
		fmt.Fprintf(buf, ` stroke-width="%s"`, num(width))
	}
}

func fillAttr(c string) string {
	if c == "" {
		return "none"
	}
	return EscapeXML(c)
}

// Frame returns a rectangular placeholder for the base icon of sym: its base
// bbox filled with the affiliation fill color and stroked in the frame color.
// It stands in for the real frame when previewing modifiers on their own.
func Frame(sym symbol.Context) []draw.Primitive {
	if !sym.Metadata.BaseGeometry.Present {
		return nil
	}
	b := sym.Metadata.BaseGeometry.BBox
	fill, _ := sym.Colors.FillColor.Get(sym.Metadata.Affiliation)
	frame, _ := sym.FrameColor()
	return []draw.Primitive{draw.Path{
		Fill:        fill,
		D:           rectPath(b),
		Stroke:      frame,
		StrokeWidth: sym.Style.StrokeWidth,
	}}
}

func rectPath(b geom.BBox) string {
	return fmt.Sprintf("M%s,%s H%s V%s H%s Z", num(b.X1), num(b.Y1), num(b.X2), num(b.Y2), num(b.X1))
}

func num(v float64) string { return glyph.FormatNumber(v) }

// EscapeXML escapes s for use in XML text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
