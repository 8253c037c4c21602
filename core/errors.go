package core

import "errors"

// Sentinel errors for the core data model. Callers branch on these with
// errors.Is; they are never pre-formatted with call-site parameters here —
// context is attached by wrapping with %w at the call site.
var (
	// ErrInvalidParameter indicates a distance or store parameter (p, eps,
	// min_pts) is outside its domain.
	ErrInvalidParameter = errors.New("core: invalid parameter")

	// ErrDimensionMismatch indicates two coordinate vectors, or a vector and
	// the store's fixed dimensionality, disagree in length.
	ErrDimensionMismatch = errors.New("core: dimension mismatch")

	// ErrNonFiniteCoordinate indicates a coordinate contains NaN or +-Inf.
	ErrNonFiniteCoordinate = errors.New("core: non-finite coordinate")

	// ErrObjectNotFound indicates an operation referenced an id that is not
	// live in the ObjectStore/SpatialIndex/NeighborGraph.
	ErrObjectNotFound = errors.New("core: object not found")
)
