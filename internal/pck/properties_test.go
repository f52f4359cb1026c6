package pck

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Coordinates are drawn either from a small integer lattice, where exact
// degeneracies are common, or uniformly from [-1, 1].
func genCoord() gopter.Gen {
	return gen.OneGenOf(
		gen.IntRange(-2, 2).Map(func(i int) float64 { return float64(i) }),
		gen.Float64Range(-1, 1),
	)
}

func genPoint2() gopter.Gen {
	return gopter.CombineGens(genCoord(), genCoord()).Map(func(v []interface{}) [2]float64 {
		return [2]float64{v[0].(float64), v[1].(float64)}
	})
}

func genPoint3() gopter.Gen {
	return gopter.CombineGens(genCoord(), genCoord(), genCoord()).Map(func(v []interface{}) [3]float64 {
		return [3]float64{v[0].(float64), v[1].(float64), v[2].(float64)}
	})
}

func distinct2(points ...[2]float64) bool {
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if PointsAreIdentical2D(points[i], points[j]) {
				return false
			}
		}
	}
	return true
}

func distinct3(points ...[3]float64) bool {
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if PointsAreIdentical3D(points[i], points[j]) {
				return false
			}
		}
	}
	return true
}

func newProperties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	return gopter.NewProperties(parameters)
}

func TestOrientationProperties(t *testing.T) {
	k := NewKit(nil)
	properties := newProperties()

	properties.Property("orient2d is exact and antisymmetric", prop.ForAll(
		func(a, b, c [2]float64) bool {
			s := k.Orient2D(a, b, c)
			return s == oracleOrient2D(a, b, c) &&
				k.Orient2D(b, a, c) == s.Neg() &&
				k.Orient2D(b, c, a) == s
		},
		genPoint2(), genPoint2(), genPoint2(),
	))

	properties.Property("orient2d near a line agrees with the oracle", prop.ForAll(
		func(a, b [2]float64, frac float64, ulps int) bool {
			// A point on the segment ab, rounded, then nudged by a few ulps.
			c := [2]float64{a[0] + frac*(b[0]-a[0]), a[1] + frac*(b[1]-a[1])}
			for i := 0; i < ulps; i++ {
				c[1] = math.Nextafter(c[1], math.Inf(1))
			}
			return k.Orient2D(a, b, c) == oracleOrient2D(a, b, c)
		},
		genPoint2(), genPoint2(), gen.Float64Range(0, 1), gen.IntRange(0, 3),
	))

	properties.Property("orient3d is exact and antisymmetric", prop.ForAll(
		func(a, b, c, d [3]float64) bool {
			s := k.Orient3D(a, b, c, d)
			return s == oracleOrient3D(a, b, c, d) &&
				k.Orient3D(b, a, c, d) == s.Neg() &&
				k.Orient3D(a, b, d, c) == s.Neg()
		},
		genPoint3(), genPoint3(), genPoint3(), genPoint3(),
	))

	properties.Property("det3d and dot3d are exact", prop.ForAll(
		func(a, b, c [3]float64) bool {
			return k.Det3D(a, b, c) == oracleDet(a[:], b[:], c[:]) &&
				k.Det3D(b, a, c) == k.Det3D(a, b, c).Neg() &&
				k.Dot3D(a, b, c) == oracleDot3D(a, b, c) &&
				k.Dot3D(a, c, b) == k.Dot3D(a, b, c)
		},
		genPoint3(), genPoint3(), genPoint3(),
	))

	properties.Property("det4d is exact", prop.ForAll(
		func(a, b, c, d [3]float64, w [3]float64) bool {
			ra := [4]float64{a[0], a[1], a[2], w[0]}
			rb := [4]float64{b[0], b[1], b[2], w[1]}
			rc := [4]float64{c[0], c[1], c[2], w[2]}
			rd := [4]float64{d[0], d[1], d[2], 1}
			s := k.Det4D(ra, rb, rc, rd)
			return s == oracleDet(ra[:], rb[:], rc[:], rd[:]) &&
				k.Det4D(rb, ra, rc, rd) == s.Neg()
		},
		genPoint3(), genPoint3(), genPoint3(), genPoint3(), genPoint3(),
	))

	properties.TestingRun(t)
}

func TestSOSProperties(t *testing.T) {
	k := NewKit(nil)
	properties := newProperties()

	properties.Property("incircle is exact, never zero and antisymmetric", prop.ForAll(
		func(a, b, c, p [2]float64) bool {
			if !distinct2(a, b, c, p) {
				return true
			}
			s := k.InCircle2DSOS(a, b, c, p)
			if want := oracleInCircle(a, b, c, p); want != Zero && want != s {
				return false
			}
			return s != Zero &&
				k.InCircle2DSOS(b, a, c, p) == s.Neg() &&
				k.InCircle2DSOS(a, b, p, c) == s.Neg() &&
				k.InCircle2DSOS(b, c, p, a) == s.Neg()
		},
		genPoint2(), genPoint2(), genPoint2(), genPoint2(),
	))

	properties.Property("orient2d lifted with squared norms is incircle", prop.ForAll(
		func(a, b, c, p [2]float64) bool {
			// Squares of lattice points are exact; other points may round, so
			// only compare on the lattice.
			if !distinct2(a, b, c, p) || !onLattice(a[:], b[:], c[:], p[:]) {
				return true
			}
			return k.Orient2DLiftedSOS(a, b, c, p, norm2(a), norm2(b), norm2(c), norm2(p)) ==
				k.InCircle2DSOS(a, b, c, p)
		},
		genPoint2(), genPoint2(), genPoint2(), genPoint2(),
	))

	properties.Property("insphere is exact, never zero and antisymmetric", prop.ForAll(
		func(a, b, c, d, p [3]float64) bool {
			if !distinct3(a, b, c, d, p) {
				return true
			}
			s := k.InSphere3DSOS(a, b, c, d, p)
			if want := oracleInSphere(a, b, c, d, p); want != Zero && want != s {
				return false
			}
			return s != Zero &&
				k.InSphere3DSOS(b, a, c, d, p) == s.Neg() &&
				k.InSphere3DSOS(a, b, c, p, d) == s.Neg()
		},
		genPoint3(), genPoint3(), genPoint3(), genPoint3(), genPoint3(),
	))

	properties.Property("orient3d lifted with squared norms is insphere", prop.ForAll(
		func(a, b, c, d, p [3]float64) bool {
			if !distinct3(a, b, c, d, p) || !onLattice(a[:], b[:], c[:], d[:], p[:]) {
				return true
			}
			return k.Orient3DLiftedSOS(a, b, c, d, p, norm3(a), norm3(b), norm3(c), norm3(d), norm3(p)) ==
				k.InSphere3DSOS(a, b, c, d, p)
		},
		genPoint3(), genPoint3(), genPoint3(), genPoint3(), genPoint3(),
	))

	properties.Property("orient2d lifted is never zero with arbitrary heights", prop.ForAll(
		func(a, b, c, p [2]float64, h [3]float64) bool {
			if !distinct2(a, b, c, p) {
				return true
			}
			s := k.Orient2DLiftedSOS(a, b, c, p, h[0], h[1], h[2], 0)
			return s != Zero && k.Orient2DLiftedSOS(b, a, c, p, h[1], h[0], h[2], 0) == s.Neg()
		},
		genPoint2(), genPoint2(), genPoint2(), genPoint2(), genPoint3(),
	))

	properties.TestingRun(t)
}

func onLattice(points ...[]float64) bool {
	for _, p := range points {
		for _, x := range p {
			if x != math.Trunc(x) {
				return false
			}
		}
	}
	return true
}
