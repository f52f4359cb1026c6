// Package pck is the predicate construction kit: robust orientation,
// in-circle, in-sphere, determinant and dot product signs over float64
// coordinates.
//
// Every adaptive predicate first evaluates its expression in float64 and
// checks it against a precomputed error bound. Only when the bound cannot
// certify the sign is the expression evaluated again with exact expansion
// arithmetic. Inputs too small or too large for either stage are first
// rescaled by a power of two, or evaluated with big floats when their
// magnitudes are too far apart. The _SOS predicates never return Zero: an
// exactly zero determinant is resolved by symbolic perturbation of the
// input points.
package pck

import (
	"github.com/osuushi/geopredicates/internal/expansion"
	"github.com/osuushi/geopredicates/internal/stats"
)

// Kit evaluates predicates against one set of error bounds and records
// how each call was resolved. A Kit is safe for concurrent use.
type Kit struct {
	bounds   *Bounds
	counters *stats.Counters
}

// NewKit returns a kit using the default bounds. counters may be nil, in
// which case nothing is recorded.
func NewKit(counters *stats.Counters) *Kit {
	return &Kit{bounds: DefaultBounds(), counters: counters}
}

// exact runs f with a pooled arena and records an exact evaluation.
func (k *Kit) exact(p stats.Predicate, f func(ar *expansion.Arena) Sign) Sign {
	k.counters.RecordExact(p)
	ar := expansion.GetArena()
	defer expansion.PutArena(ar)
	return f(ar)
}

// Orient2D returns the sign of det[b-a; c-a]: Positive when a, b, c turn
// counter-clockwise, Zero when they are collinear.
func (k *Kit) Orient2D(a, b, c [2]float64) Sign {
	requireFinite2("orient_2d", a, b, c)
	pts := [3][2]float64{a, b, c}
	if !rescale2(pts[:]) {
		k.counters.RecordExact(stats.Orient2D)
		return orient2dWide(a, b, c)
	}
	a, b, c = pts[0], pts[1], pts[2]
	if s, ok := orient2dFilter(k.bounds, a, b, c); ok {
		k.counters.RecordFast(stats.Orient2D)
		return s
	}
	return k.exact(stats.Orient2D, func(ar *expansion.Arena) Sign {
		return orient2dExact(ar, a, b, c)
	})
}

// Orient3D returns the sign of det[b-a; c-a; d-a], Zero when the four
// points are coplanar.
func (k *Kit) Orient3D(a, b, c, d [3]float64) Sign {
	requireFinite3("orient_3d", a, b, c, d)
	pts := [4][3]float64{a, b, c, d}
	if !rescale3(pts[:]) {
		k.counters.RecordExact(stats.Orient3D)
		return orient3dWide(a, b, c, d)
	}
	a, b, c, d = pts[0], pts[1], pts[2], pts[3]
	rows := [3][3]float64{}
	rows[0][0], rows[0][1], rows[0][2] = diff3(b, a)
	rows[1][0], rows[1][1], rows[1][2] = diff3(c, a)
	rows[2][0], rows[2][1], rows[2][2] = diff3(d, a)
	det, permanent := det3Filter(&rows)
	if s, ok := certain(det, k.bounds.Orient3D*permanent); ok {
		k.counters.RecordFast(stats.Orient3D)
		return s
	}
	return k.exact(stats.Orient3D, func(ar *expansion.Arena) Sign {
		return orient3dExact(ar, a, b, c, d)
	})
}

// Orient3DInexact is Orient3D evaluated in plain float64 with no
// fallback. Its sign may be wrong for nearly coplanar points. Inputs are
// rescaled like Orient3D's when that is possible.
func (k *Kit) Orient3DInexact(a, b, c, d [3]float64) Sign {
	pts := [4][3]float64{a, b, c, d}
	if rescale3(pts[:]) {
		a, b, c, d = pts[0], pts[1], pts[2], pts[3]
	}
	rows := [3][3]float64{}
	rows[0][0], rows[0][1], rows[0][2] = diff3(b, a)
	rows[1][0], rows[1][1], rows[1][2] = diff3(c, a)
	rows[2][0], rows[2][1], rows[2][2] = diff3(d, a)
	det, _ := det3Filter(&rows)
	k.counters.RecordFast(stats.Orient3DInexact)
	return GeoSgn(det)
}

// Det3D returns the sign of the determinant whose rows are a, b, c.
func (k *Kit) Det3D(a, b, c [3]float64) Sign {
	requireFinite3("det_3d", a, b, c)
	if !rescaleRows(a[:], b[:], c[:]) {
		k.counters.RecordExact(stats.Det3D)
		return det3Wide(a, b, c)
	}
	rows := [3][3]float64{a, b, c}
	det, permanent := det3Filter(&rows)
	if s, ok := certain(det, k.bounds.Orient3D*permanent); ok {
		k.counters.RecordFast(stats.Det3D)
		return s
	}
	return k.exact(stats.Det3D, func(ar *expansion.Arena) Sign {
		return det3Exact(ar, a, b, c)
	})
}

// Det4D returns the sign of the determinant whose rows are a, b, c, d.
func (k *Kit) Det4D(a, b, c, d [4]float64) Sign {
	for _, v := range [4][4]float64{a, b, c, d} {
		requireFinite("det_4d", v[:]...)
	}
	if !rescaleRows(a[:], b[:], c[:], d[:]) {
		k.counters.RecordExact(stats.Det4D)
		return det4Wide(a, b, c, d)
	}
	rows := [4][4]float64{a, b, c, d}
	det, permanent := det4Filter(&rows)
	if s, ok := certain(det, k.bounds.InSphere*permanent); ok {
		k.counters.RecordFast(stats.Det4D)
		return s
	}
	return k.exact(stats.Det4D, func(ar *expansion.Arena) Sign {
		return det4Exact(ar, a, b, c, d)
	})
}

// Dot3D returns the sign of (b-a)·(c-a).
func (k *Kit) Dot3D(a, b, c [3]float64) Sign {
	requireFinite3("dot_3d", a, b, c)
	pts := [3][3]float64{a, b, c}
	if !rescale3(pts[:]) {
		k.counters.RecordExact(stats.Dot3D)
		return dot3Wide(a, b, c)
	}
	a, b, c = pts[0], pts[1], pts[2]
	if s, ok := dot3Filter(k.bounds, a, b, c); ok {
		k.counters.RecordFast(stats.Dot3D)
		return s
	}
	return k.exact(stats.Dot3D, func(ar *expansion.Arena) Sign {
		return dot3Exact(ar, a, b, c)
	})
}

// PointsAreIdentical2D compares coordinates exactly.
func PointsAreIdentical2D(p1, p2 [2]float64) bool {
	return p1[0] == p2[0] && p1[1] == p2[1]
}

// PointsAreIdentical3D compares coordinates exactly.
func PointsAreIdentical3D(p1, p2 [3]float64) bool {
	return p1[0] == p2[0] && p1[1] == p2[1] && p1[2] == p2[2]
}
