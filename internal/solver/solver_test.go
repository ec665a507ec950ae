package solver

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

func TestCholeskySolve(t *testing.T) {
	// [[4,1],[1,3]] is symmetric positive definite; with b=(1,2) the exact
	// solution is x=(1/11, 7/11).
	a := mat.NewDense(2, 2, []float64{4, 1, 1, 3})
	b := mat.NewVecDense(2, []float64{1, 2})

	f, err := Cholesky{}.Factorize(a)
	if err != nil {
		t.Fatalf("Factorize failed: %v", err)
	}
	x, err := f.SolveVec(b)
	if err != nil {
		t.Fatalf("SolveVec failed: %v", err)
	}

	want := []float64{1.0 / 11, 7.0 / 11}
	for i, w := range want {
		if !scalar.EqualWithinAbs(x.AtVec(i), w, 1e-12) {
			t.Errorf("x[%d]: expected %g, got %g", i, w, x.AtVec(i))
		}
	}
}

func TestCholeskyFactorizationReuse(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{4, 1, 1, 3})
	f, err := Cholesky{}.Factorize(a)
	if err != nil {
		t.Fatalf("Factorize failed: %v", err)
	}

	// One factorization serves independent right-hand sides.
	x1, err := f.SolveVec(mat.NewVecDense(2, []float64{4, 1}))
	if err != nil {
		t.Fatalf("first solve failed: %v", err)
	}
	x2, err := f.SolveVec(mat.NewVecDense(2, []float64{1, 3}))
	if err != nil {
		t.Fatalf("second solve failed: %v", err)
	}

	// The right-hand sides are the matrix columns, so the solutions are the
	// unit vectors.
	if !scalar.EqualWithinAbs(x1.AtVec(0), 1, 1e-12) || !scalar.EqualWithinAbs(x1.AtVec(1), 0, 1e-12) {
		t.Errorf("first solve: expected (1, 0), got (%g, %g)", x1.AtVec(0), x1.AtVec(1))
	}
	if !scalar.EqualWithinAbs(x2.AtVec(0), 0, 1e-12) || !scalar.EqualWithinAbs(x2.AtVec(1), 1, 1e-12) {
		t.Errorf("second solve: expected (0, 1), got (%g, %g)", x2.AtVec(0), x2.AtVec(1))
	}
}

func TestCholeskySingular(t *testing.T) {
	zero := mat.NewDense(3, 3, nil)
	if _, err := (Cholesky{}).Factorize(zero); !errors.Is(err, ErrSingular) {
		t.Errorf("expected ErrSingular for the zero matrix, got %v", err)
	}

	// Rank-deficient: second row is a multiple of the first.
	def := mat.NewDense(2, 2, []float64{1, 2, 2, 4})
	if _, err := (Cholesky{}).Factorize(def); !errors.Is(err, ErrSingular) {
		t.Errorf("expected ErrSingular for a rank-deficient matrix, got %v", err)
	}
}

func TestCholeskyNotSquare(t *testing.T) {
	a := mat.NewDense(2, 3, nil)
	if _, err := (Cholesky{}).Factorize(a); err == nil {
		t.Error("expected an error for a non-square matrix")
	}
}
