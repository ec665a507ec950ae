package femodel

import "fmt"

// Material holds the elastic properties of a member material. Materials
// are immutable and shared by reference across elements; the engine never
// mutates them.
type Material struct {
	Name        string
	YoungMod    float64 // E, ksi
	ShearMod    float64 // G, ksi
	YieldStress float64 // Fy, ksi
}

// NewMaterial validates the properties and returns an immutable record.
func NewMaterial(name string, youngMod, shearMod, yieldStress float64) (*Material, error) {
	if youngMod <= 0 {
		return nil, fmt.Errorf("material %q: young's modulus must be positive, got %g", name, youngMod)
	}
	if shearMod <= 0 {
		return nil, fmt.Errorf("material %q: shear modulus must be positive, got %g", name, shearMod)
	}
	if yieldStress <= 0 {
		return nil, fmt.Errorf("material %q: yield stress must be positive, got %g", name, yieldStress)
	}
	return &Material{
		Name:        name,
		YoungMod:    youngMod,
		ShearMod:    shearMod,
		YieldStress: yieldStress,
	}, nil
}

func (m *Material) String() string { return m.Name }
