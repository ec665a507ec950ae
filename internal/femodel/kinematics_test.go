package femodel

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestDistance(t *testing.T) {
	if l := distance([3]float64{0, 0, 0}, [3]float64{3, 4, 0}); l != 5 {
		t.Errorf("expected length 5, got %g", l)
	}
	if l := distance([3]float64{1, 1, 1}, [3]float64{1, 1, 1}); l != 0 {
		t.Errorf("expected zero length, got %g", l)
	}
}

func TestLocalStiffnessSymmetric(t *testing.T) {
	k := localStiffness(testMaterial(t), testSection(t), 12)

	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			if k.At(i, j) != k.At(j, i) {
				t.Errorf("k[%d,%d]=%g != k[%d,%d]=%g", i, j, k.At(i, j), j, i, k.At(j, i))
			}
		}
		if k.At(i, i) < 0 {
			t.Errorf("diagonal k[%d,%d]=%g must be non-negative", i, i, k.At(i, i))
		}
	}
}

func TestLocalStiffnessTerms(t *testing.T) {
	material := testMaterial(t)
	section := testSection(t)
	const l = 12.0
	k := localStiffness(material, section, l)

	e, g := material.YoungMod, material.ShearMod
	a, izz, iyy, ip := section.Area, section.Ix, section.Iy, section.J

	checks := []struct {
		i, j int
		want float64
	}{
		{0, 0, e * a / l},
		{0, 6, -e * a / l},
		{1, 1, 12 * e * izz / (l * l * l)},
		{1, 5, 6 * e * izz / (l * l)},
		{2, 4, -6 * e * iyy / (l * l)},
		{3, 3, g * ip / l},
		{3, 9, -g * ip / l},
		{4, 4, 4 * e * iyy / l},
		{4, 10, 2 * e * iyy / l},
		{5, 11, 2 * e * izz / l},
		{11, 5, 2 * e * izz / l}, // mirrored below the diagonal
	}
	for _, c := range checks {
		if got := k.At(c.i, c.j); !scalar.EqualWithinAbs(got, c.want, 1e-9) {
			t.Errorf("k[%d,%d]: expected %g, got %g", c.i, c.j, c.want, got)
		}
	}
}

// assertRotationBlocks checks that the 12x12 transformation consists of one
// orthonormal 3x3 rotation block repeated four times along the diagonal.
func assertRotationBlocks(t *testing.T, ni, nj [3]float64) {
	t.Helper()
	l := distance(ni, nj)
	tm := transformation(ni, nj, l)

	// Rows of the leading block are orthonormal.
	for r := 0; r < 3; r++ {
		norm := 0.0
		for c := 0; c < 3; c++ {
			v := tm.At(r, c)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("block entry (%d,%d) is not finite: %g", r, c, v)
			}
			norm += v * v
		}
		if !scalar.EqualWithinAbs(norm, 1, 1e-12) {
			t.Errorf("row %d norm %g, expected 1", r, norm)
		}
		for r2 := r + 1; r2 < 3; r2++ {
			dot := 0.0
			for c := 0; c < 3; c++ {
				dot += tm.At(r, c) * tm.At(r2, c)
			}
			if !scalar.EqualWithinAbs(dot, 0, 1e-12) {
				t.Errorf("rows %d and %d not orthogonal: dot=%g", r, r2, dot)
			}
		}
	}

	// The same block repeats at offsets 3, 6 and 9; everything else is zero.
	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			if i/3 == j/3 {
				if tm.At(i, j) != tm.At(i%3, j%3) {
					t.Errorf("block at (%d,%d) differs from leading block", i, j)
				}
			} else if tm.At(i, j) != 0 {
				t.Errorf("off-block entry (%d,%d) = %g, expected 0", i, j, tm.At(i, j))
			}
		}
	}
}

func TestTransformationHorizontal(t *testing.T) {
	assertRotationBlocks(t, [3]float64{0, 0, 0}, [3]float64{12, 0, 0})

	tm := transformation([3]float64{0, 0, 0}, [3]float64{12, 0, 0}, 12)
	// Local x must be the global x axis for this member.
	if tm.At(0, 0) != 1 || tm.At(0, 1) != 0 || tm.At(0, 2) != 0 {
		t.Errorf("local x row = (%g, %g, %g), expected (1, 0, 0)",
			tm.At(0, 0), tm.At(0, 1), tm.At(0, 2))
	}
}

func TestTransformationVertical(t *testing.T) {
	// Both horizontal deltas vanish, so the reference point offsets in x
	// instead of z; the basis must stay finite and orthonormal.
	assertRotationBlocks(t, [3]float64{0, 0, 0}, [3]float64{0, 0, 10})

	tm := transformation([3]float64{0, 0, 0}, [3]float64{0, 0, 10}, 10)
	if tm.At(0, 2) != 1 {
		t.Errorf("local x must point along global z, row = (%g, %g, %g)",
			tm.At(0, 0), tm.At(0, 1), tm.At(0, 2))
	}
}

func TestTransformationSkewed(t *testing.T) {
	assertRotationBlocks(t, [3]float64{1, 2, 3}, [3]float64{4, -5, 9})
	assertRotationBlocks(t, [3]float64{0, 0, 0}, [3]float64{0, 7, 0})
}

func TestComputeElementParamsZeroLength(t *testing.T) {
	m := New()
	mustAddNode(t, m, 0, 0, 0)

	// An element from a node to itself has zero length.
	if _, err := m.AddElement(1, 1, testMaterial(t), testSection(t)); err != nil {
		t.Fatalf("AddElement failed: %v", err)
	}
	if err := m.computeElementParams(); !errors.Is(err, ErrZeroLengthElement) {
		t.Fatalf("expected ErrZeroLengthElement, got %v", err)
	}
}

func TestComputeElementParamsRecomputesAll(t *testing.T) {
	m := buildCantilever(t)

	if err := m.computeElementParams(); err != nil {
		t.Fatalf("computeElementParams failed: %v", err)
	}
	if len(m.params) != 2 {
		t.Fatalf("expected parameters for 2 elements, got %d", len(m.params))
	}
	if !scalar.EqualWithinAbs(m.params[1].length, 12, 1e-12) {
		t.Errorf("element 1 length: expected 12, got %g", m.params[1].length)
	}
	if !scalar.EqualWithinAbs(m.params[2].length, 12, 1e-12) {
		t.Errorf("element 2 length: expected 12, got %g", m.params[2].length)
	}

	m.DeleteElement(2)
	if err := m.computeElementParams(); err != nil {
		t.Fatalf("computeElementParams failed: %v", err)
	}
	if len(m.params) != 1 {
		t.Errorf("parameters must be rebuilt from scratch, got %d entries", len(m.params))
	}
}
