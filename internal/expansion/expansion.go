// Package expansion implements exact floating-point arithmetic on
// expansions: values represented as the unevaluated sum of float64
// components.
//
// An Expansion is kept non-overlapping, ordered by increasing magnitude
// and free of zero components, so the empty expansion is zero and the
// last component carries the sign of the whole value. All algorithms
// follow Shewchuk, "Adaptive Precision Floating-Point Arithmetic and Fast
// Robust Geometric Predicates" (1997), and rely on IEEE 754 round to
// nearest even, which Go guarantees for float64.
//
// Overflow and underflow are not handled: results are exact as long as no
// intermediate value overflows and no product roundoff underflows. Callers
// keep their inputs in a range where that holds.
package expansion

import "math"

type Expansion []float64

// FastTwoSum returns a+b as x+y where x is the rounded sum and y the
// roundoff. Requires |a| >= |b| (or a == 0).
func FastTwoSum(a, b float64) (x, y float64) {
	x = a + b
	bVirtual := x - a
	y = b - bVirtual
	return
}

// TwoSum returns a+b as x+y where x is the rounded sum and y the roundoff.
func TwoSum(a, b float64) (x, y float64) {
	x = a + b
	bVirtual := x - a
	aVirtual := x - bVirtual
	bRoundoff := b - bVirtual
	aRoundoff := a - aVirtual
	y = aRoundoff + bRoundoff
	return
}

// TwoDiff returns a-b as x+y where x is the rounded difference and y the
// roundoff.
func TwoDiff(a, b float64) (x, y float64) {
	x = a - b
	bVirtual := a - x
	aVirtual := x + bVirtual
	bRoundoff := bVirtual - b
	aRoundoff := a - aVirtual
	y = aRoundoff + bRoundoff
	return
}

// TwoProduct returns a*b as x+y where x is the rounded product and y the
// roundoff. The fused multiply-add computes the roundoff exactly, which
// replaces Dekker's splitting.
func TwoProduct(a, b float64) (x, y float64) {
	x = a * b
	y = math.FMA(a, b, -x)
	return
}

// Sign returns -1, 0 or +1 according to the sign of the exact value of e.
// Since the components do not overlap, the largest one decides.
func (e Expansion) Sign() int {
	if len(e) == 0 {
		return 0
	}
	top := e[len(e)-1]
	switch {
	case top > 0:
		return 1
	case top < 0:
		return -1
	}
	return 0
}

func (e Expansion) IsZero() bool {
	return len(e) == 0
}
