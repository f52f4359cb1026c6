package render

import (
	"math"

	"github.com/osuushi/geopredicates/internal/pck"
	"github.com/pkg/errors"
)

type Predicate string

const (
	Orient2D Predicate = "orient2d"
	InCircle Predicate = "incircle"
)

var Predicates = []string{string(Orient2D), string(InCircle)}

type Mode string

const (
	Naive  Mode = "naive"
	Robust Mode = "robust"
)

var Modes = []string{string(Naive), string(Robust)}

// Scene is a predicate with every point but the query point fixed.
type Scene struct {
	Predicate Predicate
	Fixed     [][2]float64
}

// DefaultScene returns the fixed points of the classic pictures: a line
// through (12, 12) and (24, 24) for orient2d, and a circle through three
// almost collinear points for incircle. Both pass right through the
// default grid.
func DefaultScene(pred Predicate) (Scene, error) {
	switch pred {
	case Orient2D:
		return Scene{pred, [][2]float64{{12, 12}, {24, 24}}}, nil
	case InCircle:
		return Scene{pred, [][2]float64{{math.Nextafter(12, math.Inf(1)), 12}, {-12, -12}, {24, 24}}}, nil
	}
	return Scene{}, errors.Errorf("unknown predicate %q", pred)
}

// NewScene uses the first points of fixed as the scene's fixed points.
func NewScene(pred Predicate, fixed [][2]float64) (Scene, error) {
	var want int
	switch pred {
	case Orient2D:
		want = 2
	case InCircle:
		want = 3
	default:
		return Scene{}, errors.Errorf("unknown predicate %q", pred)
	}
	if len(fixed) < want {
		return Scene{}, errors.Errorf("%s needs %d fixed points, got %d", pred, want, len(fixed))
	}
	return Scene{pred, fixed[:want]}, nil
}

// Func returns the scene's predicate as a function of the query point.
// The robust functions are evaluated by kit.
func (s Scene) Func(mode Mode, kit *pck.Kit) (func(p [2]float64) pck.Sign, error) {
	f := s.Fixed
	switch {
	case s.Predicate == Orient2D && mode == Naive:
		return func(p [2]float64) pck.Sign { return pck.GeoSgn(naiveOrient2D(f[0], p, f[1])) }, nil
	case s.Predicate == Orient2D && mode == Robust:
		return func(p [2]float64) pck.Sign { return kit.Orient2D(f[0], p, f[1]) }, nil
	case s.Predicate == InCircle && mode == Naive:
		return func(p [2]float64) pck.Sign { return pck.GeoSgn(naiveInCircle(f[0], f[1], f[2], p)) }, nil
	case s.Predicate == InCircle && mode == Robust:
		return func(p [2]float64) pck.Sign { return kit.InCircle2DSOS(f[0], f[1], f[2], p) }, nil
	}
	return nil, errors.Errorf("unknown predicate %q or mode %q", s.Predicate, mode)
}

// The naive evaluations are the textbook determinants in plain float64.

func naiveOrient2D(a, b, c [2]float64) float64 {
	return (b[0]-a[0])*(c[1]-b[1]) - (b[1]-a[1])*(c[0]-b[0])
}

func naiveInCircle(a, b, c, p [2]float64) float64 {
	m11, m12 := a[0]-p[0], a[1]-p[1]
	m21, m22 := b[0]-p[0], b[1]-p[1]
	m31, m32 := c[0]-p[0], c[1]-p[1]
	m13 := m11*m11 + m12*m12
	m23 := m21*m21 + m22*m22
	m33 := m31*m31 + m32*m32
	return m11*(m22*m33-m23*m32) - m12*(m21*m33-m23*m31) + m13*(m21*m32-m22*m31)
}
