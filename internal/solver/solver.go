// Package solver provides the linear solve capability the analysis engine
// depends on: given a sparse symmetric positive-definite matrix A and a
// right-hand side b, solve A*x = b or fail if the matrix is singular.
package solver

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrSingular reports a matrix that cannot be factorized, typically an
// insufficiently restrained model or a floating node.
var ErrSingular = errors.New("stiffness matrix is singular or not positive definite")

// Factorization solves repeated right-hand sides against one factorized
// matrix.
type Factorization interface {
	SolveVec(b mat.Vector) (*mat.VecDense, error)
}

// Solver factorizes a symmetric matrix once so the independent per-case
// solves of a run can share it.
type Solver interface {
	Factorize(a mat.Matrix) (Factorization, error)
}

// Cholesky is the default Solver, backed by gonum's Cholesky decomposition.
type Cholesky struct{}

// Factorize decomposes a. The matrix is read through the mat.Matrix
// interface, so sparse implementations work directly.
func (Cholesky) Factorize(a mat.Matrix) (Factorization, error) {
	r, c := a.Dims()
	if r != c {
		return nil, fmt.Errorf("solver: %dx%d matrix is not square", r, c)
	}

	sym := mat.NewSymDense(r, nil)
	for i := 0; i < r; i++ {
		for j := i; j < r; j++ {
			sym.SetSym(i, j, a.At(i, j))
		}
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(sym); !ok {
		return nil, ErrSingular
	}
	return &choleskyFactorization{chol: chol}, nil
}

type choleskyFactorization struct {
	chol mat.Cholesky
}

func (f *choleskyFactorization) SolveVec(b mat.Vector) (*mat.VecDense, error) {
	var x mat.VecDense
	if err := f.chol.SolveVecTo(&x, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}
	return &x, nil
}
