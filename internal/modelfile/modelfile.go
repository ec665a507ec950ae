// Package modelfile loads frame models from YAML definition files.
package modelfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gofea/internal/femodel"
)

// File is the YAML schema for a frame model definition.
type File struct {
	Materials map[string]MaterialDef `yaml:"materials"`
	Sections  map[string]SectionDef  `yaml:"sections"`
	Nodes     []NodeDef              `yaml:"nodes"`
	Elements  []ElementDef           `yaml:"elements"`
	Supports  []SupportDef           `yaml:"supports"`
	Loads     []LoadDef              `yaml:"loads"`
}

type MaterialDef struct {
	YoungMod    float64 `yaml:"young_mod"`
	ShearMod    float64 `yaml:"shear_mod"`
	YieldStress float64 `yaml:"yield_stress"`
}

type SectionDef struct {
	Area float64 `yaml:"area"`
	Ix   float64 `yaml:"ix"`
	Iy   float64 `yaml:"iy"`
	J    float64 `yaml:"j"`
}

type NodeDef struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type ElementDef struct {
	Nodes    []int  `yaml:"nodes"`
	Material string `yaml:"material"`
	Section  string `yaml:"section"`
}

type SupportDef struct {
	Node       int   `yaml:"node"`
	Restraints []int `yaml:"restraints"`
}

type LoadDef struct {
	Node      int     `yaml:"node"`
	Direction string  `yaml:"direction"`
	Case      string  `yaml:"case"`
	Magnitude float64 `yaml:"magnitude"`
}

// Load reads a YAML model definition from disk and builds the model.
func Load(path string) (*femodel.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse builds a model from YAML model definition bytes.
func Parse(data []byte) (*femodel.Model, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing model file: %w", err)
	}
	return f.Build()
}

// Build validates the definition and assembles a model from it. Nodes are
// numbered 1..n in file order, so element, support and load definitions
// reference nodes by position in the nodes list.
func (f *File) Build() (*femodel.Model, error) {
	materials := make(map[string]*femodel.Material, len(f.Materials))
	for name, d := range f.Materials {
		m, err := femodel.NewMaterial(name, d.YoungMod, d.ShearMod, d.YieldStress)
		if err != nil {
			return nil, err
		}
		materials[name] = m
	}

	sections := make(map[string]*femodel.Section, len(f.Sections))
	for name, d := range f.Sections {
		s, err := femodel.NewSection(name, d.Area, d.Ix, d.Iy, d.J)
		if err != nil {
			return nil, err
		}
		sections[name] = s
	}

	model := femodel.New()

	for i, n := range f.Nodes {
		if _, err := model.AddNode(n.X, n.Y, n.Z); err != nil {
			return nil, fmt.Errorf("nodes[%d]: %w", i, err)
		}
	}

	for i, e := range f.Elements {
		if len(e.Nodes) != 2 {
			return nil, fmt.Errorf("elements[%d]: want 2 node ids, got %d", i, len(e.Nodes))
		}
		material, ok := materials[e.Material]
		if !ok {
			return nil, fmt.Errorf("elements[%d]: unknown material %q", i, e.Material)
		}
		section, ok := sections[e.Section]
		if !ok {
			return nil, fmt.Errorf("elements[%d]: unknown section %q", i, e.Section)
		}
		if _, err := model.AddElement(e.Nodes[0], e.Nodes[1], material, section); err != nil {
			return nil, fmt.Errorf("elements[%d]: %w", i, err)
		}
	}

	for i, s := range f.Supports {
		if len(s.Restraints) != 6 {
			return nil, fmt.Errorf("supports[%d]: want 6 restraint entries, got %d", i, len(s.Restraints))
		}
		var restraints femodel.Restraints
		copy(restraints[:], s.Restraints)
		if _, err := model.AddOrUpdateSupport(s.Node, restraints); err != nil {
			return nil, fmt.Errorf("supports[%d]: %w", i, err)
		}
	}

	for i, l := range f.Loads {
		direction, err := femodel.ParseDirection(l.Direction)
		if err != nil {
			return nil, fmt.Errorf("loads[%d]: %w", i, err)
		}
		loadCase, err := femodel.ParseLoadCase(l.Case)
		if err != nil {
			return nil, fmt.Errorf("loads[%d]: %w", i, err)
		}
		if _, err := model.AddOrUpdateLoad(direction, loadCase, l.Magnitude, l.Node); err != nil {
			return nil, fmt.Errorf("loads[%d]: %w", i, err)
		}
	}

	return model, nil
}
