package femodel

import "fmt"

// Node is a single point in the frame model, identified by a positive
// integer id and located by global (x, y, z) coordinates. Nodes are
// immutable once created.
type Node struct {
	ID          int
	Coordinates [3]float64
}

func (n *Node) String() string {
	return fmt.Sprintf("Node %d at (%g, %g, %g)",
		n.ID, n.Coordinates[0], n.Coordinates[1], n.Coordinates[2])
}
