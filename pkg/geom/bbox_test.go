package geom

import "testing"

func TestMergeOnlyGrows(t *testing.T) {
	b := New(50, 50, 150, 150)
	b.Merge(Partial{X2: At(120), Y1: At(60)})
	if b != New(50, 50, 150, 150) {
		t.Errorf("merge with inner bounds changed box: %v", b)
	}

	b.Merge(Partial{X2: At(207), Y1: At(40)})
	if b != New(50, 40, 207, 150) {
		t.Errorf("merge = %v, want [50,40 207,150]", b)
	}
}

func TestMergeIgnoresUnsetLimits(t *testing.T) {
	b := New(10, 20, 30, 40)
	b.Merge(Partial{})
	if b != New(10, 20, 30, 40) {
		t.Errorf("empty partial changed box: %v", b)
	}
	b.Merge(Partial{X1: At(-5), Y2: At(90)})
	if b != New(-5, 20, 30, 90) {
		t.Errorf("merge = %v", b)
	}
}

func TestMergeCommutes(t *testing.T) {
	p1 := Partial{X2: At(107), Y1: At(75)}
	p2 := Partial{X2: At(92), Y1: At(145), Y2: At(125)}

	a := New(20, 80, 50, 120)
	a.Merge(p1)
	a.Merge(p2)

	b := New(20, 80, 50, 120)
	b.Merge(p2)
	b.Merge(p1)

	if a != b {
		t.Errorf("merge order matters: %v vs %v", a, b)
	}
	if !a.Contains(New(20, 80, 50, 120)) {
		t.Error("merged box should contain the original")
	}
}

func TestUnionAndPad(t *testing.T) {
	u := New(0, 0, 10, 10).Union(New(5, -5, 20, 8))
	if u != New(0, -5, 20, 10) {
		t.Errorf("Union = %v", u)
	}
	if u.Width() != 20 || u.Height() != 15 {
		t.Errorf("size = %gx%g", u.Width(), u.Height())
	}
	if p := New(0, 0, 10, 10).Pad(2); p != New(-2, -2, 12, 12) {
		t.Errorf("Pad = %v", p)
	}
}

func TestContains(t *testing.T) {
	outer := New(0, 0, 100, 100)
	if !outer.Contains(New(10, 10, 90, 90)) {
		t.Error("should contain inner box")
	}
	if outer.Contains(New(10, 10, 101, 90)) {
		t.Error("should not contain box crossing the right edge")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    BBox
		wantErr bool
	}{
		{"25,50,175,150", New(25, 50, 175, 150), false},
		{" -1.5, 0 ,2,3e1", New(-1.5, 0, 2, 30), false},
		{"1,2,3", BBox{}, true},
		{"1,2,3,x", BBox{}, true},
		{"", BBox{}, true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
