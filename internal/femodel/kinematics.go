package femodel

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// verticalTol is the absolute tolerance on the horizontal projection used
// to classify an element as vertical.
const verticalTol = 1e-6

// lengthTol is the minimum admissible element length.
const lengthTol = 1e-12

// elementParams holds the derived per-element quantities. They are
// recomputed wholesale for every element on each assembly pass.
type elementParams struct {
	length float64
	kl     *mat.Dense // local stiffness, 12x12
	tm     *mat.Dense // local-to-global transformation, 12x12
}

// computeElementParams rebuilds the derived parameters for every element.
func (m *Model) computeElementParams() error {
	m.params = make(map[int]*elementParams, len(m.elements))
	for id, e := range m.elements {
		ni := m.nodes[e.NodeIDs[0]].Coordinates
		nj := m.nodes[e.NodeIDs[1]].Coordinates

		l := distance(ni, nj)
		if l < lengthTol {
			return fmt.Errorf("element %d between nodes (%d, %d): %w",
				id, e.NodeIDs[0], e.NodeIDs[1], ErrZeroLengthElement)
		}

		m.params[id] = &elementParams{
			length: l,
			kl:     localStiffness(e.Material, e.Section, l),
			tm:     transformation(ni, nj, l),
		}
	}
	return nil
}

func distance(a, b [3]float64) float64 {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	dz := b[2] - a[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// localStiffness returns the 12x12 Euler-Bernoulli frame element stiffness
// matrix in the element's local frame: axial EA/L terms, bending about both
// principal axes and torsion GJ/L. The closed-form terms populate the upper
// triangle, which is then mirrored to form the symmetric matrix.
func localStiffness(mtl *Material, sec *Section, l float64) *mat.Dense {
	e := mtl.YoungMod
	g := mtl.ShearMod
	a := sec.Area
	izz := sec.Ix
	iyy := sec.Iy
	ip := sec.J

	l2 := l * l
	l3 := l2 * l

	k := mat.NewDense(12, 12, nil)

	k.Set(0, 0, e*a/l)
	k.Set(0, 6, -e*a/l)

	k.Set(1, 1, 12*e*izz/l3)
	k.Set(1, 5, 6*e*izz/l2)
	k.Set(1, 7, -12*e*izz/l3)
	k.Set(1, 11, 6*e*izz/l2)

	k.Set(2, 2, 12*e*iyy/l3)
	k.Set(2, 4, -6*e*iyy/l2)
	k.Set(2, 8, -12*e*iyy/l3)
	k.Set(2, 10, -6*e*iyy/l2)

	k.Set(3, 3, g*ip/l)
	k.Set(3, 9, -g*ip/l)

	k.Set(4, 4, 4*e*iyy/l)
	k.Set(4, 8, 6*e*iyy/l2)
	k.Set(4, 10, 2*e*iyy/l)

	k.Set(5, 5, 4*e*izz/l)
	k.Set(5, 7, -6*e*izz/l2)
	k.Set(5, 11, 2*e*izz/l)

	k.Set(6, 6, e*a/l)

	k.Set(7, 7, 12*e*izz/l3)
	k.Set(7, 11, -6*e*izz/l2)

	k.Set(8, 8, 12*e*iyy/l3)
	k.Set(8, 10, 6*e*iyy/l2)

	k.Set(9, 9, g*ip/l)

	k.Set(10, 10, 4*e*iyy/l)

	k.Set(11, 11, 4*e*izz/l)

	for i := 0; i < 12; i++ {
		for j := i + 1; j < 12; j++ {
			k.Set(j, i, k.At(i, j))
		}
	}
	return k
}

// transformation returns the 12x12 local-to-global transformation matrix:
// one 3x3 rotation block repeated along the diagonal for the translation
// and rotation DOFs at each end node.
//
// The local x axis is the unit vector from node i to node j. A reference
// point disambiguates the orientation of the remaining axes; it must not be
// collinear with the element axis, so a vertical member (both horizontal
// deltas within verticalTol) offsets the endpoints by -1 in global x while
// any other member offsets them by +1 in global z. Local y comes from
// projecting the vector toward the midpoint of the offset endpoints onto
// the plane perpendicular to local x, and local z closes the right-handed
// triad.
func transformation(ni, nj [3]float64, l float64) *mat.Dense {
	var iOff, jOff [3]float64
	if scalar.EqualWithinAbs(math.Abs(nj[0]-ni[0]), 0, verticalTol) &&
		scalar.EqualWithinAbs(math.Abs(nj[1]-ni[1]), 0, verticalTol) {
		iOff = [3]float64{ni[0] - 1, ni[1], ni[2]}
		jOff = [3]float64{nj[0] - 1, nj[1], nj[2]}
	} else {
		iOff = [3]float64{ni[0], ni[1], ni[2] + 1}
		jOff = [3]float64{nj[0], nj[1], nj[2] + 1}
	}

	var ref, ux, inPlane [3]float64
	for k := 0; k < 3; k++ {
		ref[k] = iOff[k] + 0.5*(jOff[k]-iOff[k])
		ux[k] = (nj[k] - ni[k]) / l
		inPlane[k] = ref[k] - ni[k]
	}
	axial := inPlane[0]*ux[0] + inPlane[1]*ux[1] + inPlane[2]*ux[2]

	var yv [3]float64
	for k := 0; k < 3; k++ {
		yv[k] = inPlane[k] - axial*ux[k]
	}
	my := math.Sqrt(yv[0]*yv[0] + yv[1]*yv[1] + yv[2]*yv[2])
	uy := [3]float64{yv[0] / my, yv[1] / my, yv[2] / my}

	uz := [3]float64{
		ux[1]*uy[2] - ux[2]*uy[1],
		ux[2]*uy[0] - ux[0]*uy[2],
		ux[0]*uy[1] - ux[1]*uy[0],
	}

	t := mat.NewDense(12, 12, nil)
	rows := [3][3]float64{ux, uy, uz}
	for block := 0; block < 4; block++ {
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				t.Set(3*block+r, 3*block+c, rows[r][c])
			}
		}
	}
	return t
}
