package incdbscan

import "github.com/solrune/incdbscan/core"

// Public sentinel errors. These alias the core package's sentinels directly
// rather than redefining them, so errors.Is works the same way whether a
// caller imports incdbscan or core/update directly.
var (
	// ErrInvalidParameter indicates an Option or constructor argument (eps,
	// min_pts, p) is outside its valid domain.
	ErrInvalidParameter = core.ErrInvalidParameter

	// ErrDimensionMismatch indicates a coordinate vector's length does not
	// match the dimensionality established by the engine's first insertion.
	ErrDimensionMismatch = core.ErrDimensionMismatch

	// ErrNonFiniteCoordinate indicates a coordinate contains NaN or +-Inf.
	ErrNonFiniteCoordinate = core.ErrNonFiniteCoordinate

	// ErrObjectNotFound indicates an internal inconsistency: Delete found an
	// id in the spatial index that has no record in the object store.
	// Lookups of unknown ids do not return it (LabelOf reports them with
	// false, LabelAt with NaN).
	ErrObjectNotFound = core.ErrObjectNotFound
)
