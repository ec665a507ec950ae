package femodel

import "fmt"

// Element is a 3D frame member spanning two nodes. The node order defines
// the local x axis, pointing from node i to node j.
type Element struct {
	ID       int
	NodeIDs  [2]int
	Material *Material
	Section  *Section
}

func (e *Element) String() string {
	return fmt.Sprintf("Element %d with nodes (%d, %d)", e.ID, e.NodeIDs[0], e.NodeIDs[1])
}
