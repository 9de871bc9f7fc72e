package draw

// Outliner wraps a primitive sequence into a single background primitive
// drawn beneath it as a halo.
type Outliner func(prims []Primitive, outlineWidth, strokeWidth float64, color string) Primitive

// Outline is the default Outliner. It returns a Group holding one halo clone
// per primitive: stroked in color with width strokeWidth + 2*outlineWidth and
// round joins, and filled in color wherever the original is filled.
// Text halos are stroked even when the original sets NoStroke. prims is not modified.
func Outline(prims []Primitive, outlineWidth, strokeWidth float64, color string) Primitive {
	width := strokeWidth + 2*outlineWidth
	g := Group{Children: make([]Primitive, 0, len(prims))}
	for _, p := range prims {
		g.Children = append(g.Children, halo(p, width, color))
	}
	return g
}

func halo(p Primitive, width float64, color string) Primitive {
	switch v := p.(type) {
	case Path:
		if v.Fill != "" {
			v.Fill = color
		}
		v.Stroke = color
		v.StrokeWidth = width
		v.LineJoin = "round"
		return v
	case Text:
		v.Fill = color
		v.Stroke = color
		v.StrokeWidth = width
		v.NoStroke = false
		return v
	case Group:
		children := make([]Primitive, 0, len(v.Children))
		for _, c := range v.Children {
			children = append(children, halo(c, width, color))
		}
		return Group{Children: children}
	}
	return p
}
