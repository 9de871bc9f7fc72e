package draw

import (
	"encoding/json"
	"fmt"
)

type jsonPath struct {
	Type        string  `json:"type"`
	Fill        string  `json:"fill,omitempty"`
	D           string  `json:"d"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"strokewidth,omitempty"`
	LineJoin    string  `json:"linejoin,omitempty"`
}

type jsonText struct {
	Type        string  `json:"type"`
	Text        string  `json:"text"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Fill        string  `json:"fill,omitempty"`
	FontFamily  string  `json:"fontfamily,omitempty"`
	FontSize    float64 `json:"fontsize"`
	FontWeight  string  `json:"fontweight,omitempty"`
	TextAnchor  Anchor  `json:"textanchor,omitempty"`
	Baseline    string  `json:"alignmentBaseline,omitempty"`
	Stroke      any     `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"strokewidth,omitempty"`
}

type jsonGroup struct {
	Type     string            `json:"type"`
	Children []json.RawMessage `json:"draw"`
}

// MarshalJSON encodes p with a "type":"path" tag.
func (p Path) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonPath{
		Type:        "path",
		Fill:        p.Fill,
		D:           p.D,
		Stroke:      p.Stroke,
		StrokeWidth: p.StrokeWidth,
		LineJoin:    p.LineJoin,
	})
}

// MarshalJSON encodes t with a "type":"text" tag. NoStroke is written as
// "stroke": false.
func (t Text) MarshalJSON() ([]byte, error) {
	jt := jsonText{
		Type:        "text",
		Text:        t.Content,
		X:           t.X,
		Y:           t.Y,
		Fill:        t.Fill,
		FontFamily:  t.FontFamily,
		FontSize:    t.FontSize,
		FontWeight:  t.FontWeight,
		TextAnchor:  t.Anchor,
		Baseline:    t.Baseline,
		StrokeWidth: t.StrokeWidth,
	}
	switch {
	case t.NoStroke:
		jt.Stroke = false
	case t.Stroke != "":
		jt.Stroke = t.Stroke
	}
	return json.Marshal(jt)
}

// MarshalJSON encodes g with a "type":"group" tag and its children under "draw".
func (g Group) MarshalJSON() ([]byte, error) {
	jg := jsonGroup{Type: "group", Children: make([]json.RawMessage, 0, len(g.Children))}
	for _, c := range g.Children {
		b, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		jg.Children = append(jg.Children, b)
	}
	return json.Marshal(jg)
}

// Decode parses a primitive encoded by MarshalJSON.
func Decode(data []byte) (Primitive, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}
	switch head.Type {
	case "path":
		var jp jsonPath
		if err := json.Unmarshal(data, &jp); err != nil {
			return nil, err
		}
		return Path{Fill: jp.Fill, D: jp.D, Stroke: jp.Stroke, StrokeWidth: jp.StrokeWidth, LineJoin: jp.LineJoin}, nil
	case "text":
		var jt jsonText
		if err := json.Unmarshal(data, &jt); err != nil {
			return nil, err
		}
		t := Text{
			Content:     jt.Text,
			X:           jt.X,
			Y:           jt.Y,
			Fill:        jt.Fill,
			FontFamily:  jt.FontFamily,
			FontSize:    jt.FontSize,
			FontWeight:  jt.FontWeight,
			Anchor:      jt.TextAnchor,
			Baseline:    jt.Baseline,
			StrokeWidth: jt.StrokeWidth,
		}
		switch s := jt.Stroke.(type) {
		case bool:
			t.NoStroke = !s
		case string:
			t.Stroke = s
		}
		return t, nil
	case "group":
		var jg jsonGroup
		if err := json.Unmarshal(data, &jg); err != nil {
			return nil, err
		}
		g := Group{Children: make([]Primitive, 0, len(jg.Children))}
		for _, raw := range jg.Children {
			c, err := Decode(raw)
			if err != nil {
				return nil, err
			}
			g.Children = append(g.Children, c)
		}
		return g, nil
	}
	return nil, fmt.Errorf("unknown primitive type %q", head.Type)
}
