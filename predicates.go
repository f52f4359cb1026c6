// Robust geometric predicates for Go.
//
// This package computes the exact sign of orientation, in-circle,
// in-sphere, determinant and dot product tests on float64 coordinates. A
// fast floating-point filter answers most calls; the rest are evaluated
// with exact expansion arithmetic, so the returned sign is always the sign
// of the exact mathematical value.
//
// The _SOS predicates additionally resolve exact ties with Simulation of
// Simplicity: a zero determinant is answered as if every point had been
// perturbed by an infinitesimal amount depending only on its identity.
// Their result is never Zero and is consistent across calls, which is
// what Delaunay and regular triangulation algorithms rely on.
//
// Predicates may only be called between Initialize and Terminate. They are
// safe for concurrent use. Non-finite coordinates, like calls outside the
// Initialize/Terminate window, are a programming error and cause a panic.
package geopredicates

import (
	"github.com/osuushi/geopredicates/internal/pck"
	"github.com/osuushi/geopredicates/internal/stats"
)

type Sign = pck.Sign

const (
	Negative = pck.Negative
	Zero     = pck.Zero
	Positive = pck.Positive
)

type Point2 = [2]float64
type Point3 = [3]float64
type Vector3 = [3]float64
type Vector4 = [4]float64

var (
	counters = stats.NewCounters()
	kit      = pck.NewKit(counters)
)

// GeoSgn returns the sign of x; Zero only for an exact zero.
func GeoSgn(x float64) Sign {
	return pck.GeoSgn(x)
}

// Orient2D returns Positive if a, b, c turn counter-clockwise, Negative if
// they turn clockwise and Zero if they are collinear.
func Orient2D(a, b, c Point2) Sign {
	session.check("orient_2d")
	return kit.Orient2D(a, b, c)
}

// Orient3D returns the sign of the signed volume det[b-a; c-a; d-a] of the
// tetrahedron a, b, c, d; Zero if the points are coplanar.
func Orient3D(a, b, c, d Point3) Sign {
	session.check("orient_3d")
	return kit.Orient3D(a, b, c, d)
}

// Orient3DInexact is Orient3D in plain floating point, without the exact
// fallback. Use it only where an approximate orientation is acceptable.
func Orient3DInexact(a, b, c, d Point3) Sign {
	session.check("orient_3d_inexact")
	return kit.Orient3DInexact(a, b, c, d)
}

// Orient2DLiftedSOS is the regularity test of 2d regular triangulations.
// With the points lifted to (x, y, h), it returns Positive if the lifted p
// lies below the plane through the lifted a, b, c (a, b, c counter-
// clockwise) and Negative if above. With h = x²+y² it is InCircle2DSOS.
// Never Zero.
func Orient2DLiftedSOS(a, b, c, p Point2, ha, hb, hc, hp float64) Sign {
	session.check("orient_2dlifted_SOS")
	return kit.Orient2DLiftedSOS(a, b, c, p, ha, hb, hc, hp)
}

// Orient2DLiftedSOSIndexed is Orient2DLiftedSOS with explicit, distinct
// point identities for the perturbation, for callers whose point set may
// contain coincident points.
func Orient2DLiftedSOSIndexed(a, b, c, p Point2, ha, hb, hc, hp float64, ids [4]int) Sign {
	session.check("orient_2dlifted_SOS")
	return kit.Orient2DLiftedSOSIndexed(a, b, c, p, ha, hb, hc, hp, ids)
}

// Orient3DLiftedSOS is the regularity test of 3d regular triangulations.
// It returns Positive if the lifted p lies below the hyperplane through
// the lifted a, b, c, d (Orient3D(a, b, c, d) > 0) and Negative if above.
// With h = x²+y²+z² it is InSphere3DSOS. Never Zero.
func Orient3DLiftedSOS(a, b, c, d, p Point3, ha, hb, hc, hd, hp float64) Sign {
	session.check("orient_3dlifted_SOS")
	return kit.Orient3DLiftedSOS(a, b, c, d, p, ha, hb, hc, hd, hp)
}

// Orient3DLiftedSOSIndexed is Orient3DLiftedSOS with explicit, distinct
// point identities.
func Orient3DLiftedSOSIndexed(a, b, c, d, p Point3, ha, hb, hc, hd, hp float64, ids [5]int) Sign {
	session.check("orient_3dlifted_SOS")
	return kit.Orient3DLiftedSOSIndexed(a, b, c, d, p, ha, hb, hc, hd, hp, ids)
}

// InCircle2DSOS returns Positive if p is inside the circumcircle of the
// counter-clockwise triangle a, b, c and Negative if outside; inverted
// for a clockwise triangle. Cocircular points get a consistent non-zero
// answer.
func InCircle2DSOS(a, b, c, p Point2) Sign {
	session.check("in_circle_2d_SOS")
	return kit.InCircle2DSOS(a, b, c, p)
}

// InCircle2DSOSIndexed is InCircle2DSOS with explicit, distinct point
// identities.
func InCircle2DSOSIndexed(a, b, c, p Point2, ids [4]int) Sign {
	session.check("in_circle_2d_SOS")
	return kit.InCircle2DSOSIndexed(a, b, c, p, ids)
}

// InSphere3DSOS returns Positive if p is inside the circumsphere of the
// positively oriented tetrahedron a, b, c, d and Negative if outside;
// inverted for a negatively oriented one. Never Zero.
func InSphere3DSOS(a, b, c, d, p Point3) Sign {
	session.check("in_sphere_3d_SOS")
	return kit.InSphere3DSOS(a, b, c, d, p)
}

// InSphere3DSOSIndexed is InSphere3DSOS with explicit, distinct point
// identities.
func InSphere3DSOSIndexed(a, b, c, d, p Point3, ids [5]int) Sign {
	session.check("in_sphere_3d_SOS")
	return kit.InSphere3DSOSIndexed(a, b, c, d, p, ids)
}

// Det3D returns the sign of the determinant with rows a, b, c.
func Det3D(a, b, c Vector3) Sign {
	session.check("det_3d")
	return kit.Det3D(a, b, c)
}

// Det4D returns the sign of the determinant with rows a, b, c, d.
func Det4D(a, b, c, d Vector4) Sign {
	session.check("det_4d")
	return kit.Det4D(a, b, c, d)
}

// Dot3D returns the sign of the dot product (b-a)·(c-a).
func Dot3D(a, b, c Point3) Sign {
	session.check("dot_3d")
	return kit.Dot3D(a, b, c)
}

// PointsAreIdentical2D reports whether p1 and p2 have exactly the same
// coordinates. There is no tolerance.
func PointsAreIdentical2D(p1, p2 Point2) bool {
	session.check("points_are_identical_2d")
	return pck.PointsAreIdentical2D(p1, p2)
}

// PointsAreIdentical3D reports whether p1 and p2 have exactly the same
// coordinates.
func PointsAreIdentical3D(p1, p2 Point3) bool {
	session.check("points_are_identical_3d")
	return pck.PointsAreIdentical3D(p1, p2)
}
