package glyph

import (
	"strings"
	"sync"
	"testing"
)

func TestLookupKnownKeys(t *testing.T) {
	for _, k := range Keys() {
		tpl, ok := Lookup(k)
		if !ok {
			t.Fatalf("Lookup(%q) missing", k)
		}
		if tpl.Name != string(k) {
			t.Errorf("Name = %q, want %q", tpl.Name, k)
		}
		if !strings.HasPrefix(tpl.D, "m ") {
			t.Errorf("%s path data should start with a relative move: %q", k, tpl.D)
		}
	}
	if _, ok := Lookup("circle"); ok {
		t.Error("Lookup of unknown key should fail")
	}
}

func TestAtPrefixesMoveTo(t *testing.T) {
	tpl, _ := Lookup(Plus)
	anchored := tpl.At(70, 85)
	if want := "M70,85 " + tpl.D; anchored.D != want {
		t.Errorf("At D = %q, want %q", anchored.D, want)
	}

	frac := tpl.At(70.5, -12.25)
	if !strings.HasPrefix(frac.D, "M70.5,-12.25 ") {
		t.Errorf("fractional anchor = %q", frac.D[:20])
	}
}

func TestAtLeavesTableUntouched(t *testing.T) {
	before, _ := Lookup(Minus)
	tpl, _ := Lookup(Minus)
	tpl.Fill = "red"
	_ = tpl.At(1, 2)

	after, _ := Lookup(Minus)
	if after != before {
		t.Errorf("table entry changed: %+v", after)
	}
}

func TestConcurrentAnchoring(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tpl, _ := Lookup(PlusMinus)
			got := tpl.At(float64(i), 0)
			if !strings.HasPrefix(got.D, "M"+FormatNumber(float64(i))+",0 m") {
				t.Errorf("goroutine %d got %q", i, got.D[:12])
			}
		}(i)
	}
	wg.Wait()
}

func TestFormatNumber(t *testing.T) {
	tests := map[float64]string{
		70:     "70",
		85:     "85",
		-2.5:   "-2.5",
		0.1:    "0.1",
		1e6:    "1000000",
		107.25: "107.25",
	}
	for in, want := range tests {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%v) = %q, want %q", in, got, want)
		}
	}
}
