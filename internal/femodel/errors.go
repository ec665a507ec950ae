package femodel

import "errors"

// Rejected mutations leave the model unchanged; callers decide whether to
// surface the error.
var (
	ErrNodeExists        = errors.New("a node already exists at these coordinates")
	ErrNodeNotFound      = errors.New("node does not exist")
	ErrElementExists     = errors.New("an element already exists between these nodes")
	ErrInvalidRestraints = errors.New("restraints must be 0 or 1 for each degree of freedom")
	ErrUnknownDirection  = errors.New(`direction must be one of "Tx", "Ty", "Tz", "Rx", "Ry", "Rz"`)
	ErrUnknownLoadCase   = errors.New(`load case must be one of "DL", "LL", "LLr", "SL", "RL", "WL", "EL"`)
	ErrMissingMaterial   = errors.New("element requires a material")
	ErrMissingSection    = errors.New("element requires a section")
)

// Analysis errors.
var (
	ErrZeroLengthElement = errors.New("element has zero length")
	ErrNoFreeDOFs        = errors.New("model has no unrestrained degrees of freedom")
)
