package femodel

import "fmt"

// Direction identifies one of the six nodal degrees of freedom, which is
// also the direction a nodal load acts in.
type Direction int

const (
	Tx Direction = iota
	Ty
	Tz
	Rx
	Ry
	Rz
)

var directionNames = [...]string{"Tx", "Ty", "Tz", "Rx", "Ry", "Rz"}

// ParseDirection converts a direction name such as "Tz" to a Direction.
func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if s == name {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownDirection)
}

func (d Direction) String() string {
	if d < Tx || d > Rz {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// LoadCase is one of the seven standard unfactored load categories. The
// enum order fixes the column order of the global load matrix.
type LoadCase int

const (
	DL  LoadCase = iota // dead
	LL                  // live
	LLr                 // roof live
	SL                  // snow
	RL                  // rain
	WL                  // wind
	EL                  // earthquake
)

// NumLoadCases is the number of load case columns in the global load matrix.
const NumLoadCases = 7

var loadCaseNames = [...]string{"DL", "LL", "LLr", "SL", "RL", "WL", "EL"}

// ParseLoadCase converts a load case name such as "DL" to a LoadCase.
func ParseLoadCase(s string) (LoadCase, error) {
	for i, name := range loadCaseNames {
		if s == name {
			return LoadCase(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownLoadCase)
}

func (c LoadCase) String() string {
	if c < DL || c > EL {
		return fmt.Sprintf("LoadCase(%d)", int(c))
	}
	return loadCaseNames[c]
}

// Load is a concentrated nodal load. At most one Load exists per node;
// re-adding at a loaded node overwrites direction, case and magnitude
// under the same id.
type Load struct {
	ID        int
	NodeID    int
	Direction Direction
	Case      LoadCase
	Magnitude float64 // kip for translations, kip-in for rotations
}

func (l *Load) String() string {
	return fmt.Sprintf("Load with magnitude %g in %s at node %d", l.Magnitude, l.Direction, l.NodeID)
}
