package geom

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a bbox written as "x1,y1,x2,y2". Whitespace around the numbers
// is ignored.
func Parse(s string) (BBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return BBox{}, fmt.Errorf("bbox %q: want x1,y1,x2,y2", s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return BBox{}, fmt.Errorf("bbox %q: %w", s, err)
		}
		v[i] = f
	}
	return New(v[0], v[1], v[2], v[3]), nil
}
