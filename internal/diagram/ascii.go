package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// DisplacementSeries holds one load case's (or combination's) nodal
// displacement magnitudes in ascending node-id order.
type DisplacementSeries struct {
	Label  string
	Values []float64
}

// DrawASCIIDisplacements renders one terminal graph per series, node index
// on the horizontal axis and displacement magnitude on the vertical axis.
func DrawASCIIDisplacements(series []DisplacementSeries) string {
	var sb strings.Builder
	for _, s := range series {
		if len(s.Values) < 2 {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n  %s\n", s.Label))
		sb.WriteString(asciigraph.Plot(s.Values,
			asciigraph.Height(8),
			asciigraph.Width(48),
			asciigraph.Precision(4),
			asciigraph.Caption("displacement magnitude by node"),
		))
		sb.WriteString("\n")
	}
	return sb.String()
}
