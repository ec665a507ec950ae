// Package combo holds the fixed ASD and LRFD load combination factor
// tables and applies them to an assembled load matrix.
//
// Factor columns follow the global load matrix layout:
// DL, LL, LLr, SL, RL, WL, EL.
package combo

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Kind selects which factor table is applied to the load matrix.
type Kind int

const (
	None Kind = iota
	ASD
	LRFD
)

// ErrUnknownKind reports a combination type outside None/ASD/LRFD.
var ErrUnknownKind = errors.New(`combination type must be "None", "ASD", or "LRFD"`)

// Parse converts a combination type name to a Kind, case-insensitively.
func Parse(s string) (Kind, error) {
	switch strings.ToUpper(s) {
	case "NONE":
		return None, nil
	case "ASD":
		return ASD, nil
	case "LRFD":
		return LRFD, nil
	}
	return None, fmt.Errorf("%q: %w", s, ErrUnknownKind)
}

func (k Kind) String() string {
	switch k {
	case None:
		return "None"
	case ASD:
		return "ASD"
	case LRFD:
		return "LRFD"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// NumCombinations is the number of rows in each factor table.
const NumCombinations = 16

// Combination is one row of a factor table: a per-case factor vector and
// its conventional description.
type Combination struct {
	Description string
	Factors     [7]float64 // DL, LL, LLr, SL, RL, WL, EL
}

// ASDCombinations are the allowable stress design basic combinations.
var ASDCombinations = []Combination{
	{"1.0DL", [7]float64{1.0, 0, 0, 0, 0, 0, 0}},
	{"1.0DL + 1.0LL", [7]float64{1.0, 1.0, 0, 0, 0, 0, 0}},
	{"1.0DL + 1.0LLr", [7]float64{1.0, 0, 1.0, 0, 0, 0, 0}},
	{"1.0DL + 1.0SL", [7]float64{1.0, 0, 0, 1.0, 0, 0, 0}},
	{"1.0DL + 1.0RL", [7]float64{1.0, 0, 0, 0, 1.0, 0, 0}},
	{"1.0DL + 0.75LL + 0.75LLr", [7]float64{1.0, 0.75, 0.75, 0, 0, 0, 0}},
	{"1.0DL + 0.75LL + 0.75SL", [7]float64{1.0, 0.75, 0, 0.75, 0, 0, 0}},
	{"1.0DL + 0.75LL + 0.75RL", [7]float64{1.0, 0.75, 0, 0, 0.75, 0, 0}},
	{"1.0DL + 0.6WL", [7]float64{1.0, 0, 0, 0, 0, 0.6, 0}},
	{"1.0DL + 0.75LL + 0.75LLr + 0.45WL", [7]float64{1.0, 0.75, 0.75, 0, 0, 0.45, 0}},
	{"1.0DL + 0.75LL + 0.75SL + 0.45WL", [7]float64{1.0, 0.75, 0, 0.75, 0, 0.45, 0}},
	{"1.0DL + 0.75LL + 0.75RL + 0.45WL", [7]float64{1.0, 0.75, 0, 0, 0.75, 0.45, 0}},
	{"0.6DL + 0.6WL", [7]float64{0.6, 0, 0, 0, 0, 0.6, 0}},
	{"1.0DL + 0.7EL", [7]float64{1.0, 0, 0, 0, 0, 0, 0.7}},
	{"1.0DL + 0.75LL + 0.75SL + 0.525EL", [7]float64{1.0, 0.75, 0, 0.75, 0, 0, 0.525}},
	{"0.6DL + 0.7EL", [7]float64{0.6, 0, 0, 0, 0, 0, 0.7}},
}

// LRFDCombinations are the strength design basic combinations.
var LRFDCombinations = []Combination{
	{"1.4DL", [7]float64{1.4, 0, 0, 0, 0, 0, 0}},
	{"1.2DL + 1.6LL + 0.5LLr", [7]float64{1.2, 1.6, 0.5, 0, 0, 0, 0}},
	{"1.2DL + 1.6LL + 0.5SL", [7]float64{1.2, 1.6, 0, 0.5, 0, 0, 0}},
	{"1.2DL + 1.6LL + 0.5RL", [7]float64{1.2, 1.6, 0, 0, 0.5, 0, 0}},
	{"1.2DL + 1.0LL + 1.6LLr", [7]float64{1.2, 1.0, 1.6, 0, 0, 0, 0}},
	{"1.2DL + 1.0LL + 1.6SL", [7]float64{1.2, 1.0, 0, 1.6, 0, 0, 0}},
	{"1.2DL + 1.0LL + 1.6RL", [7]float64{1.2, 1.0, 0, 0, 1.6, 0, 0}},
	{"1.2DL + 1.6LLr + 0.5WL", [7]float64{1.2, 0, 1.6, 0, 0, 0.5, 0}},
	{"1.2DL + 1.6SL + 0.5WL", [7]float64{1.2, 0, 0, 1.6, 0, 0.5, 0}},
	{"1.2DL + 1.6RL + 0.5WL", [7]float64{1.2, 0, 0, 0, 1.6, 0.5, 0}},
	{"1.2DL + 1.0LL + 0.5LLr + 1.0WL", [7]float64{1.2, 1.0, 0.5, 0, 0, 1.0, 0}},
	{"1.2DL + 1.0LL + 0.5SL + 1.0WL", [7]float64{1.2, 1.0, 0, 0.5, 0, 1.0, 0}},
	{"1.2DL + 1.0LL + 0.5RL + 1.0WL", [7]float64{1.2, 1.0, 0, 0, 0.5, 1.0, 0}},
	{"0.9DL + 1.0WL", [7]float64{0.9, 0, 0, 0, 0, 1.0, 0}},
	{"1.2DL + 1.0LL + 0.2SL + 1.0EL", [7]float64{1.2, 1.0, 0, 0.2, 0, 0, 1.0}},
	{"0.9DL + 1.0EL", [7]float64{0.9, 0, 0, 0, 0, 0, 1.0}},
}

// Combinations returns the kind's factor table, nil for None.
func (k Kind) Combinations() []Combination {
	switch k {
	case ASD:
		return ASDCombinations
	case LRFD:
		return LRFDCombinations
	}
	return nil
}

// factorMatrix returns the kind's factor table as a NumCombinations x 7
// dense matrix.
func (k Kind) factorMatrix() *mat.Dense {
	combinations := k.Combinations()
	f := mat.NewDense(len(combinations), 7, nil)
	for i, c := range combinations {
		f.SetRow(i, c.Factors[:])
	}
	return f
}

// Apply multiplies the load matrix (free DOFs by 7 cases) by the transposed
// factor table, producing one factored column per combination.
func (k Kind) Apply(loads mat.Matrix) *mat.Dense {
	var combined mat.Dense
	combined.Mul(loads, k.factorMatrix().T())
	return &combined
}
