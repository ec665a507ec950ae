package femodel

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"

	"github.com/alexiusacademia/gofea/internal/solver"
)

// coordTol is the absolute tolerance used to detect coincident nodes.
const coordTol = 1e-8

// Model is the single mutable aggregate owning the entity registries, the
// derived assembly artifacts and the analysis results. Ids are assigned
// sequentially starting at 1 and are never reused. Any structural mutation
// invalidates previously computed analysis state.
//
// Access is single-writer: callers running mutations, Prepare or Run from
// multiple goroutines must serialize them externally.
type Model struct {
	nodes    map[int]*Node
	elements map[int]*Element
	loads    map[int]*Load
	supports map[int]*Support

	loadedNodes    map[int]int // node id -> load id
	supportedNodes map[int]int // node id -> support id

	numNodes    int
	numElements int
	numLoads    int
	numSupports int

	// derived state, rebuilt wholesale by Prepare
	params        map[int]*elementParams
	dofTable      [][6]int
	nFree         int
	stiffness     mat.Matrix
	loadMatrix    *mat.Dense
	combined      *mat.Dense
	displacements *mat.Dense

	solver solver.Solver

	ready    bool
	complete bool
}

// New returns an empty model backed by the default sparse solver.
func New() *Model {
	return &Model{
		nodes:          make(map[int]*Node),
		elements:       make(map[int]*Element),
		loads:          make(map[int]*Load),
		supports:       make(map[int]*Support),
		loadedNodes:    make(map[int]int),
		supportedNodes: make(map[int]int),
		solver:         solver.Cholesky{},
	}
}

// SetSolver replaces the linear solver used by Run.
func (m *Model) SetSolver(s solver.Solver) { m.solver = s }

func (m *Model) invalidate() {
	m.ready = false
	m.complete = false
}

// AddNode adds a node at the given global coordinates and returns its id.
// A node within coordTol of an existing node is rejected.
func (m *Model) AddNode(x, y, z float64) (int, error) {
	for _, n := range m.nodes {
		if scalar.EqualWithinAbs(n.Coordinates[0], x, coordTol) &&
			scalar.EqualWithinAbs(n.Coordinates[1], y, coordTol) &&
			scalar.EqualWithinAbs(n.Coordinates[2], z, coordTol) {
			return 0, fmt.Errorf("node at (%g, %g, %g): %w", x, y, z, ErrNodeExists)
		}
	}

	m.numNodes++
	m.nodes[m.numNodes] = &Node{ID: m.numNodes, Coordinates: [3]float64{x, y, z}}
	m.invalidate()
	return m.numNodes, nil
}

// AddElement adds a frame member between two existing nodes and returns its
// id. The node order defines the local x axis. Only one element may exist
// between a given pair of nodes, regardless of order.
func (m *Model) AddElement(nodeI, nodeJ int, material *Material, section *Section) (int, error) {
	if material == nil {
		return 0, ErrMissingMaterial
	}
	if section == nil {
		return 0, ErrMissingSection
	}
	for _, id := range [2]int{nodeI, nodeJ} {
		if _, ok := m.nodes[id]; !ok {
			return 0, fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
		}
	}
	for _, e := range m.elements {
		if (e.NodeIDs == [2]int{nodeI, nodeJ}) || (e.NodeIDs == [2]int{nodeJ, nodeI}) {
			return 0, fmt.Errorf("nodes (%d, %d): %w", nodeI, nodeJ, ErrElementExists)
		}
	}

	m.numElements++
	m.elements[m.numElements] = &Element{
		ID:       m.numElements,
		NodeIDs:  [2]int{nodeI, nodeJ},
		Material: material,
		Section:  section,
	}
	m.invalidate()
	return m.numElements, nil
}

// AddOrUpdateLoad applies a concentrated load at a node and returns the
// load id. A node carries at most one load record: loading an already
// loaded node overwrites its direction, case and magnitude in place.
func (m *Model) AddOrUpdateLoad(direction Direction, loadCase LoadCase, magnitude float64, nodeID int) (int, error) {
	if direction < Tx || direction > Rz {
		return 0, fmt.Errorf("%d: %w", int(direction), ErrUnknownDirection)
	}
	if loadCase < DL || loadCase > EL {
		return 0, fmt.Errorf("%d: %w", int(loadCase), ErrUnknownLoadCase)
	}
	if _, ok := m.nodes[nodeID]; !ok {
		return 0, fmt.Errorf("node %d: %w", nodeID, ErrNodeNotFound)
	}

	id, loaded := m.loadedNodes[nodeID]
	if !loaded {
		m.numLoads++
		id = m.numLoads
		m.loadedNodes[nodeID] = id
	}
	m.loads[id] = &Load{
		ID:        id,
		NodeID:    nodeID,
		Direction: direction,
		Case:      loadCase,
		Magnitude: magnitude,
	}
	m.invalidate()
	return id, nil
}

// AddOrUpdateSupport restrains degrees of freedom at a node and returns the
// support id. Re-adding a support at an already supported node replaces its
// restraint vector under the same id.
func (m *Model) AddOrUpdateSupport(nodeID int, restraints Restraints) (int, error) {
	if err := restraints.validate(); err != nil {
		return 0, err
	}
	if _, ok := m.nodes[nodeID]; !ok {
		return 0, fmt.Errorf("node %d: %w", nodeID, ErrNodeNotFound)
	}

	id, supported := m.supportedNodes[nodeID]
	if supported {
		m.supports[id].Restraints = restraints
	} else {
		m.numSupports++
		id = m.numSupports
		m.supports[id] = &Support{ID: id, NodeID: nodeID, Restraints: restraints}
		m.supportedNodes[nodeID] = id
	}
	m.invalidate()
	return id, nil
}

// DeleteNode removes a node and cascades to every element incident to it
// and to its load and support records. Deleting an unknown id is a no-op.
func (m *Model) DeleteNode(nodeID int) {
	if _, ok := m.nodes[nodeID]; !ok {
		return
	}

	for id, e := range m.elements {
		if e.NodeIDs[0] == nodeID || e.NodeIDs[1] == nodeID {
			delete(m.elements, id)
		}
	}
	if loadID, ok := m.loadedNodes[nodeID]; ok {
		m.DeleteLoad(loadID)
	}
	if supportID, ok := m.supportedNodes[nodeID]; ok {
		m.DeleteSupport(supportID)
	}

	delete(m.nodes, nodeID)
	m.invalidate()
}

// DeleteElement removes an element. Deleting an unknown id is a no-op.
func (m *Model) DeleteElement(elementID int) {
	if _, ok := m.elements[elementID]; !ok {
		return
	}
	delete(m.elements, elementID)
	m.invalidate()
}

// DeleteLoad removes a load record. Deleting an unknown id is a no-op.
func (m *Model) DeleteLoad(loadID int) {
	load, ok := m.loads[loadID]
	if !ok {
		return
	}
	delete(m.loads, loadID)
	delete(m.loadedNodes, load.NodeID)
	m.invalidate()
}

// DeleteSupport removes a support record. Deleting an unknown id is a no-op.
func (m *Model) DeleteSupport(supportID int) {
	support, ok := m.supports[supportID]
	if !ok {
		return
	}
	delete(m.supports, supportID)
	delete(m.supportedNodes, support.NodeID)
	m.invalidate()
}

// Ready reports whether the model has been prepared since the last mutation.
func (m *Model) Ready() bool { return m.ready }

// Complete reports whether the model has been analyzed since the last mutation.
func (m *Model) Complete() bool { return m.complete }

func (m *Model) NumNodes() int    { return len(m.nodes) }
func (m *Model) NumElements() int { return len(m.elements) }
func (m *Model) NumLoads() int    { return len(m.loads) }
func (m *Model) NumSupports() int { return len(m.supports) }

// Node returns the node with the given id.
func (m *Model) Node(id int) (*Node, bool) {
	n, ok := m.nodes[id]
	return n, ok
}

// Element returns the element with the given id.
func (m *Model) Element(id int) (*Element, bool) {
	e, ok := m.elements[id]
	return e, ok
}

// Load returns the load with the given id.
func (m *Model) Load(id int) (*Load, bool) {
	l, ok := m.loads[id]
	return l, ok
}

// Support returns the support with the given id.
func (m *Model) Support(id int) (*Support, bool) {
	s, ok := m.supports[id]
	return s, ok
}

// LoadAt returns the load applied at a node, if any.
func (m *Model) LoadAt(nodeID int) (*Load, bool) {
	id, ok := m.loadedNodes[nodeID]
	if !ok {
		return nil, false
	}
	return m.loads[id], true
}

// SupportAt returns the support at a node, if any.
func (m *Model) SupportAt(nodeID int) (*Support, bool) {
	id, ok := m.supportedNodes[nodeID]
	if !ok {
		return nil, false
	}
	return m.supports[id], true
}

// Nodes returns all nodes in ascending id order.
func (m *Model) Nodes() []*Node {
	out := make([]*Node, 0, len(m.nodes))
	for _, n := range m.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Elements returns all elements in ascending id order.
func (m *Model) Elements() []*Element {
	out := make([]*Element, 0, len(m.elements))
	for _, e := range m.elements {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// StiffnessMatrix returns the assembled global stiffness matrix, or nil if
// the model has not been prepared.
func (m *Model) StiffnessMatrix() mat.Matrix { return m.stiffness }

// LoadMatrix returns the assembled global load matrix (free DOFs by load
// cases), or nil if the model has not been prepared.
func (m *Model) LoadMatrix() *mat.Dense { return m.loadMatrix }

// CombinedLoadMatrix returns the factored load matrix (free DOFs by
// combinations), or nil if combinations were not requested.
func (m *Model) CombinedLoadMatrix() *mat.Dense { return m.combined }

// Displacements returns the displacement matrix computed by Run, one column
// per load case followed by one column per combination when requested.
func (m *Model) Displacements() *mat.Dense { return m.displacements }

// NumFreeDOFs returns the number of unrestrained degrees of freedom found
// by the last Prepare.
func (m *Model) NumFreeDOFs() int { return m.nFree }

// DOFTable returns a copy of the global DOF numbering table from the last
// Prepare: one row per node id, each free DOF holding its 1-based global
// equation number and each restrained DOF holding 0.
func (m *Model) DOFTable() [][6]int {
	out := make([][6]int, len(m.dofTable))
	copy(out, m.dofTable)
	return out
}
