package diagram

import (
	"strings"
	"testing"
)

func TestDrawASCIIDisplacements(t *testing.T) {
	out := DrawASCIIDisplacements([]DisplacementSeries{
		{Label: "DL", Values: []float64{0, 0.0021, 0.0004}},
		{Label: "LL", Values: []float64{0, 0.0011, 0.0002}},
	})

	for _, label := range []string{"DL", "LL"} {
		if !strings.Contains(out, label) {
			t.Errorf("output missing series label %q", label)
		}
	}
	if !strings.Contains(out, "displacement magnitude by node") {
		t.Error("output missing caption")
	}
}

func TestDrawASCIIDisplacementsSkipsShortSeries(t *testing.T) {
	out := DrawASCIIDisplacements([]DisplacementSeries{
		{Label: "single-point", Values: []float64{0.5}},
		{Label: "empty", Values: nil},
	})
	if out != "" {
		t.Errorf("series with fewer than two points must be skipped, got %q", out)
	}
}
