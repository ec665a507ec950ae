package femodel

import (
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// assembleStiffness rotates each element's local stiffness into global
// coordinates (T' * kl * T) and scatters it into the sparse global
// stiffness matrix by the element's local-to-global DOF map. Contributions
// from elements sharing a DOF accumulate. The result is compressed to CSC
// for the solver.
func (m *Model) assembleStiffness(dofs [][6]int, nFree int) (*sparse.CSC, error) {
	if err := m.computeElementParams(); err != nil {
		return nil, err
	}

	kg := sparse.NewDOK(nFree, nFree)
	for id, e := range m.elements {
		p := m.params[id]

		var ke mat.Dense
		ke.Product(p.tm.T(), p.kl, p.tm)

		// Local DOFs 0-5 belong to node i, 6-11 to node j. A zero global
		// index marks a restrained DOF whose row and column drop out.
		var local [12]int
		copy(local[:6], dofs[e.NodeIDs[0]-1][:])
		copy(local[6:], dofs[e.NodeIDs[1]-1][:])

		for a := 0; a < 12; a++ {
			ga := local[a]
			if ga == 0 {
				continue
			}
			for b := 0; b < 12; b++ {
				gb := local[b]
				if gb == 0 {
					continue
				}
				kg.Set(ga-1, gb-1, kg.At(ga-1, gb-1)+ke.At(a, b))
			}
		}
	}
	return kg.ToCSC(), nil
}

// assembleLoads scatters every load record into the dense global load
// matrix, one column per load case in DL, LL, LLr, SL, RL, WL, EL order.
// Loads on restrained DOFs drop out silently; loads mapping to the same
// cell accumulate.
func (m *Model) assembleLoads(dofs [][6]int, nFree int) *mat.Dense {
	pg := mat.NewDense(nFree, NumLoadCases, nil)
	for _, load := range m.loads {
		g := dofs[load.NodeID-1][load.Direction]
		if g == 0 {
			continue
		}
		r, c := g-1, int(load.Case)
		pg.Set(r, c, pg.At(r, c)+load.Magnitude)
	}
	return pg
}
