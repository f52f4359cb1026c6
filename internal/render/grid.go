// Package render draws sign maps: the sign of a 2d predicate evaluated at
// every point of a tiny grid of consecutive float64 values. Far from the
// origin the grid spans only a few ulps, so a naive floating-point
// evaluation shows the rounding noise that the robust predicates remove.
package render

import (
	"math"

	"github.com/osuushi/geopredicates/internal/pck"
)

const DefaultSize = 256

// Grid is a width×height block of points. Neighbouring points differ by
// one ulp in x or in y.
type Grid struct {
	Start  [2]float64
	Width  int
	Height int
}

func DefaultGrid() Grid {
	return Grid{Start: [2]float64{0.5, 0.5}, Width: DefaultSize, Height: DefaultSize}
}

// SignMap holds one sign per grid point, row by row from Start.
type SignMap struct {
	Width  int
	Height int
	Signs  []pck.Sign
}

// Evaluate calls f at every grid point.
func Evaluate(g Grid, f func(p [2]float64) pck.Sign) *SignMap {
	m := &SignMap{Width: g.Width, Height: g.Height, Signs: make([]pck.Sign, 0, g.Width*g.Height)}
	y := g.Start[1]
	for j := 0; j < g.Height; j++ {
		x := g.Start[0]
		for i := 0; i < g.Width; i++ {
			m.Signs = append(m.Signs, f([2]float64{x, y}))
			x = math.Nextafter(x, math.Inf(1))
		}
		y = math.Nextafter(y, math.Inf(1))
	}
	return m
}

func (m *SignMap) At(i, j int) pck.Sign {
	return m.Signs[j*m.Width+i]
}

// Counts returns how many points have each sign.
func (m *SignMap) Counts() (negative, zero, positive int) {
	for _, s := range m.Signs {
		switch s {
		case pck.Negative:
			negative++
		case pck.Zero:
			zero++
		default:
			positive++
		}
	}
	return
}

// Mismatches counts the points where m and other disagree. Both maps must
// come from grids of the same size.
func (m *SignMap) Mismatches(other *SignMap) int {
	if len(m.Signs) != len(other.Signs) {
		pck.Fatalf("sign maps differ in size: %d×%d and %d×%d", m.Width, m.Height, other.Width, other.Height)
	}
	n := 0
	for i, s := range m.Signs {
		if s != other.Signs[i] {
			n++
		}
	}
	return n
}
