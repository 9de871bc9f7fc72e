package draw

import "testing"

func TestOutlineWrapsEveryPrimitive(t *testing.T) {
	prims := []Primitive{
		Path{Fill: "black", D: "M0,0 h10"},
		Text{Content: "!", Fill: "black", FontWeight: "bold"},
		Text{Content: "HQ", Fill: "black", NoStroke: true},
	}

	out := Outline(prims, 2, 4, "white")
	g, ok := out.(Group)
	if !ok {
		t.Fatalf("Outline returned %T, want Group", out)
	}
	if len(g.Children) != len(prims) {
		t.Fatalf("children = %d, want %d", len(g.Children), len(prims))
	}

	path := g.Children[0].(Path)
	if path.Stroke != "white" || path.StrokeWidth != 8 || path.Fill != "white" || path.LineJoin != "round" {
		t.Errorf("path halo = %+v", path)
	}
	if path.D != "M0,0 h10" {
		t.Errorf("path data changed: %q", path.D)
	}

	label := g.Children[2].(Text)
	if label.NoStroke || label.Stroke != "white" || label.StrokeWidth != 8 {
		t.Errorf("text halo = %+v", label)
	}
	if label.Content != "HQ" {
		t.Errorf("text content changed: %q", label.Content)
	}
}

func TestOutlineDoesNotMutateInput(t *testing.T) {
	prims := []Primitive{Path{Fill: "black", D: "M0,0"}}
	_ = Outline(prims, 3, 1, "red")
	if p := prims[0].(Path); p.Fill != "black" || p.Stroke != "" {
		t.Errorf("input mutated: %+v", p)
	}
}

func TestOutlineUnfilledPathStaysUnfilled(t *testing.T) {
	out := Outline([]Primitive{Path{D: "M0,0 l5,5"}}, 1, 1, "red").(Group)
	if p := out.Children[0].(Path); p.Fill != "" {
		t.Errorf("unfilled path got fill %q", p.Fill)
	}
}

func TestCount(t *testing.T) {
	prims := []Primitive{
		Path{},
		Group{Children: []Primitive{Text{}, Text{}, Group{Children: []Primitive{Path{}}}}},
	}
	if got := Count(prims); got != 4 {
		t.Errorf("Count = %d, want 4", got)
	}
}
