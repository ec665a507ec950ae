package femodel

// numberDOFs builds the global DOF numbering table: one row per node id,
// six entries per row in (Tx, Ty, Tz, Rx, Ry, Rz) order. Each unrestrained
// DOF receives a 1-based equation number assigned in node-major, DOF-minor
// traversal order; restrained DOFs hold 0. This ordering fixes the row and
// column layout of the global stiffness matrix.
//
// Rows belonging to deleted node ids stay all zero so the table remains
// indexable by node id - 1.
func (m *Model) numberDOFs() ([][6]int, int) {
	maxID := 0
	for id := range m.nodes {
		if id > maxID {
			maxID = id
		}
	}

	table := make([][6]int, maxID)
	for id := range m.nodes {
		table[id-1] = [6]int{1, 1, 1, 1, 1, 1}
	}
	for nodeID, supportID := range m.supportedNodes {
		r := m.supports[supportID].Restraints
		for k := 0; k < 6; k++ {
			table[nodeID-1][k] = 1 - r[k]
		}
	}

	// Running count over the flattened free/restrained mask; restrained
	// entries stay zero.
	n := 0
	for i := range table {
		for k := 0; k < 6; k++ {
			if table[i][k] != 0 {
				n++
				table[i][k] = n
			}
		}
	}
	return table, n
}
