// File: distance.go
// Role: Minkowski distance family used by SpatialIndex range queries.
package core

import (
	"fmt"
	"math"
)

// Metric computes distances under a fixed Minkowski parameter p and a fixed
// eps threshold, and exposes the threshold comparison in whatever form is
// cheapest for that p: squared comparison for p=2, max-abs for p=Inf, and a
// raw p-th-power comparison otherwise. Constructing a Metric validates p
// and eps once so that the comparison hot path (SpatialIndex.Neighbors)
// never re-validates per call.
type Metric struct {
	p   float64
	eps float64

	// epsPow is eps^2 when p==2, eps when p==+Inf, and eps^p otherwise.
	// Comparisons are always "accumulated <= epsPow", never a sqrt/root.
	epsPow float64
}

// NewMetric validates p and eps and returns a Metric ready for repeated
// distance comparisons.
//
// Fails with ErrInvalidParameter if p < 1 or p is not finite-or-+Inf, or if
// eps <= 0.
func NewMetric(p, eps float64) (*Metric, error) {
	if eps <= 0 {
		return nil, fmt.Errorf("%w: eps must be > 0, got %g", ErrInvalidParameter, eps)
	}
	if math.IsNaN(p) || p < 1 {
		return nil, fmt.Errorf("%w: p must be >= 1, got %g", ErrInvalidParameter, p)
	}
	if math.IsInf(p, 1) {
		return &Metric{p: p, eps: eps, epsPow: eps}, nil
	}

	switch p {
	case 2:
		return &Metric{p: p, eps: eps, epsPow: eps * eps}, nil
	default:
		return &Metric{p: p, eps: eps, epsPow: math.Pow(eps, p)}, nil
	}
}

// P returns the configured Minkowski parameter.
func (m *Metric) P() float64 { return m.p }

// Eps returns the configured distance threshold.
func (m *Metric) Eps() float64 { return m.eps }

// Within reports whether dist(a,b) <= eps under this metric, without ever
// computing a literal distance value when p==2 or p==+Inf (it compares
// accumulated powers directly against epsPow). Returns ErrDimensionMismatch
// if a and b differ in length, ErrNonFiniteCoordinate if either contains a
// NaN or +-Inf component.
func (m *Metric) Within(a, b []float64) (bool, error) {
	if len(a) != len(b) {
		return false, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}
	if err := ValidateCoordinates(a); err != nil {
		return false, err
	}
	if err := ValidateCoordinates(b); err != nil {
		return false, err
	}

	switch {
	case math.IsInf(m.p, 1):
		var maxAbs float64
		for i := range a {
			d := math.Abs(a[i] - b[i])
			if math.IsNaN(d) || math.IsInf(d, 0) {
				return false, ErrNonFiniteCoordinate
			}
			if d > maxAbs {
				maxAbs = d
			}
			if maxAbs > m.epsPow {
				return false, nil
			}
		}
		return maxAbs <= m.epsPow, nil
	case m.p == 2:
		var acc float64
		for i := range a {
			d := a[i] - b[i]
			acc += d * d
			if acc > m.epsPow {
				return false, nil
			}
		}
		return acc <= m.epsPow, nil
	default:
		var acc float64
		for i := range a {
			d := math.Abs(a[i] - b[i])
			acc += math.Pow(d, m.p)
			if acc > m.epsPow {
				return false, nil
			}
		}
		return acc <= m.epsPow, nil
	}
}

// Distance returns the literal Minkowski distance between a and b. Unlike
// Within, this always finishes the computation (including the sqrt/1/p
// root) since there is no threshold to short-circuit on. It exists for
// diagnostics and tests, not the hot path.
func (m *Metric) Distance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}

	if math.IsInf(m.p, 1) {
		var maxAbs float64
		for i := range a {
			d := math.Abs(a[i] - b[i])
			if d > maxAbs {
				maxAbs = d
			}
		}
		return maxAbs, nil
	}

	var acc float64
	for i := range a {
		acc += math.Pow(math.Abs(a[i]-b[i]), m.p)
	}

	return math.Pow(acc, 1/m.p), nil
}

// ValidateCoordinates returns ErrNonFiniteCoordinate if any component of x
// is NaN or +-Inf.
func ValidateCoordinates(x []float64) error {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFiniteCoordinate
		}
	}
	return nil
}
