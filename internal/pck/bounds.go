package pck

import (
	"math"
	"sync"
)

// Bounds holds the relative error coefficients of the floating-point
// filters. A filter evaluates its determinant in plain float64 along with
// the permanent (the same expression with every product replaced by its
// absolute value); the float64 sign is certain when |det| is at least the
// coefficient times the permanent.
//
// The coefficients are Shewchuk's stage A bounds for the evaluation order
// used in filter.go. Expressions whose inputs carry less rounding than the
// ones the bound was derived for (raw determinant entries instead of
// differences, a height difference instead of a squared norm) reuse the
// bound of the larger expression.
type Bounds struct {
	// Epsilon is the unit round-off, half an ulp of 1.
	Epsilon float64

	Orient2D float64
	Orient3D float64
	InCircle float64
	InSphere float64
	Dot3D    float64
}

// NewBounds derives the coefficients from the float64 format.
func NewBounds() Bounds {
	eps := (math.Nextafter(1, 2) - 1) / 2
	return Bounds{
		Epsilon:  eps,
		Orient2D: (3 + 16*eps) * eps,
		Orient3D: (7 + 56*eps) * eps,
		InCircle: (10 + 96*eps) * eps,
		InSphere: (16 + 224*eps) * eps,
		// Three products of rounded differences summed twice: 5ε plus
		// second-order terms, rounded up to a whole ε.
		Dot3D: (6 + 64*eps) * eps,
	}
}

var (
	defaultBounds     Bounds
	defaultBoundsOnce sync.Once
)

// DefaultBounds returns the process-wide bounds, computing them on first
// use. The result must not be modified.
func DefaultBounds() *Bounds {
	defaultBoundsOnce.Do(func() {
		defaultBounds = NewBounds()
	})
	return &defaultBounds
}
