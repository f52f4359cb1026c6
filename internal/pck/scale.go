package pck

import "math"

// The filters and the expansion kernel are exact only while no product
// overflows and no roundoff term underflows. Every predicate is
// homogeneous in each group of its inputs (all coordinates, all heights,
// or one determinant row), so a group may be multiplied by a power of two
// without changing the sign. A group is evaluated as is when its nonzero
// magnitudes lie in [2^-rangeExp, 2^rangeExp], after an exact power of two
// rescaling when that brings it into the range, and on the wide path
// otherwise.
//
// With inputs in range every value is a multiple of 2^(-rangeExp-53),
// products of up to five factors stay above 2^-1022, and the largest
// terms (x·y·z·|x|² in the 3D lifted matrices) stay below 2^710.
const rangeExp = 128

// span is the binary exponent range of the nonzero values of one group,
// as returned by math.Frexp: every value lies in [2^(lo-1), 2^hi).
type span struct {
	lo, hi  int
	nonzero bool
}

func spanOf(values ...float64) span {
	var s span
	for _, x := range values {
		s.add(x)
	}
	return s
}

func (s *span) add(x float64) {
	if x == 0 {
		return
	}
	_, e := math.Frexp(x)
	if !s.nonzero {
		s.lo, s.hi, s.nonzero = e, e, true
		return
	}
	if e < s.lo {
		s.lo = e
	}
	if e > s.hi {
		s.hi = e
	}
}

func (s span) inRange(shift int) bool {
	return !s.nonzero || (s.lo+shift-1 >= -rangeExp && s.hi+shift <= rangeExp)
}

// shift returns the power of two that brings the group into range and
// whether one exists. It is zero for a group already in range.
func (s span) shift() (int, bool) {
	if s.inRange(0) {
		return 0, true
	}
	shift := -(s.lo + s.hi) / 2
	return shift, s.inRange(shift)
}

func scaleValues(shift int, values []float64) {
	if shift == 0 {
		return
	}
	for i := range values {
		values[i] = math.Ldexp(values[i], shift)
	}
}

// rescale2 brings the points into range in place and reports whether it
// could.
func rescale2(pts [][2]float64) bool {
	var s span
	for _, p := range pts {
		s.add(p[0])
		s.add(p[1])
	}
	shift, ok := s.shift()
	if !ok {
		return false
	}
	for i := range pts {
		scaleValues(shift, pts[i][:])
	}
	return true
}

func rescale3(pts [][3]float64) bool {
	var s span
	for _, p := range pts {
		s.add(p[0])
		s.add(p[1])
		s.add(p[2])
	}
	shift, ok := s.shift()
	if !ok {
		return false
	}
	for i := range pts {
		scaleValues(shift, pts[i][:])
	}
	return true
}

// rescaleRows brings each row into range on its own.
func rescaleRows(rows ...[]float64) bool {
	var shifts [4]int
	for i, row := range rows {
		shift, ok := spanOf(row...).shift()
		if !ok {
			return false
		}
		shifts[i] = shift
	}
	for i, row := range rows {
		scaleValues(shifts[i], row)
	}
	return true
}
