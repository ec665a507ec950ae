package femodel

import "fmt"

// Restraints marks restrained degrees of freedom with 1, in
// (Tx, Ty, Tz, Rx, Ry, Rz) order. A zero entry leaves the DOF free.
type Restraints [6]int

// Fixed restrains all six degrees of freedom.
var Fixed = Restraints{1, 1, 1, 1, 1, 1}

// Pinned restrains the three translations only.
var Pinned = Restraints{1, 1, 1, 0, 0, 0}

func (r Restraints) validate() error {
	for i, v := range r {
		if v != 0 && v != 1 {
			return fmt.Errorf("restraint entry %d is %d: %w", i, v, ErrInvalidRestraints)
		}
	}
	return nil
}

// Support restrains degrees of freedom at a single node. At most one
// Support exists per node; re-adding replaces the restraint vector under
// the same id.
type Support struct {
	ID         int
	NodeID     int
	Restraints Restraints
}

func (s *Support) String() string {
	return fmt.Sprintf("Support %d: %v at node %d", s.ID, s.Restraints, s.NodeID)
}
