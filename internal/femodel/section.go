package femodel

import "fmt"

// Section holds the cross-section properties of a member. Sections are
// immutable and shared by reference across elements.
type Section struct {
	Name string
	Area float64 // in^2
	Ix   float64 // strong-axis moment of inertia, in^4
	Iy   float64 // weak-axis moment of inertia, in^4
	J    float64 // torsional constant, in^4
}

// NewSection validates the properties and returns an immutable record.
func NewSection(name string, area, ix, iy, j float64) (*Section, error) {
	if area <= 0 {
		return nil, fmt.Errorf("section %q: area must be positive, got %g", name, area)
	}
	if ix <= 0 {
		return nil, fmt.Errorf("section %q: Ix must be positive, got %g", name, ix)
	}
	if iy <= 0 {
		return nil, fmt.Errorf("section %q: Iy must be positive, got %g", name, iy)
	}
	if j <= 0 {
		return nil, fmt.Errorf("section %q: J must be positive, got %g", name, j)
	}
	return &Section{Name: name, Area: area, Ix: ix, Iy: iy, J: j}, nil
}

func (s *Section) String() string { return s.Name }
