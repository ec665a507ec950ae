package femodel

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/alexiusacademia/gofea/internal/combo"
)

// Prepare numbers the degrees of freedom, assembles the global stiffness
// and load matrices and, when a combination kind other than None is given,
// factors the load matrix into the combined load matrix. It validates the
// combination kind before touching any state, so a bad kind leaves prior
// analysis state intact. Prepare is idempotent.
func (m *Model) Prepare(combinationType string) error {
	kind, err := combo.Parse(combinationType)
	if err != nil {
		return err
	}

	dofs, nFree := m.numberDOFs()
	if nFree == 0 {
		return ErrNoFreeDOFs
	}

	stiffness, err := m.assembleStiffness(dofs, nFree)
	if err != nil {
		return err
	}

	m.dofTable = dofs
	m.nFree = nFree
	m.stiffness = stiffness
	m.loadMatrix = m.assembleLoads(dofs, nFree)
	if kind == combo.None {
		m.combined = nil
	} else {
		m.combined = kind.Apply(m.loadMatrix)
	}

	m.ready = true
	return nil
}

// Run prepares the model and solves K*x = p once per column of the load
// matrix, with the combined load matrix columns appended when combinations
// are requested. The displacement matrix keeps the column order of its
// right-hand sides. The stiffness factorization is shared across columns.
func (m *Model) Run(combinationType string) error {
	if err := m.Prepare(combinationType); err != nil {
		return err
	}

	loads := mat.Matrix(m.loadMatrix)
	if m.combined != nil {
		var all mat.Dense
		all.Augment(m.loadMatrix, m.combined)
		loads = &all
	}

	factorization, err := m.solver.Factorize(m.stiffness)
	if err != nil {
		return fmt.Errorf("factorizing global stiffness matrix: %w", err)
	}

	rows, cols := loads.Dims()
	displacements := mat.NewDense(rows, cols, nil)
	column := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(column, j, loads)
		x, err := factorization.SolveVec(mat.NewVecDense(rows, column))
		if err != nil {
			return fmt.Errorf("solving load column %d: %w", j, err)
		}
		for i := 0; i < rows; i++ {
			displacements.Set(i, j, x.AtVec(i))
		}
	}

	m.displacements = displacements
	m.complete = true
	return nil
}
