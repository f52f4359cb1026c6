package pck

import (
	"math/big"

	"github.com/osuushi/geopredicates/internal/expansion"
	"github.com/osuushi/geopredicates/internal/stats"
)

// Lifted predicates. Each point x is lifted to (x, h) where h is either a
// caller supplied height (regular triangulations, power diagrams) or |x|²
// (Delaunay). The predicate tells on which side of the hyperplane through
// the lifted base points the lifted query point lies.
//
// Point identities for the perturbation are either caller supplied (the
// Indexed variants) or the lexicographic order of the coordinates.

// Orient2DLiftedSOS is Positive when the lifted p lies below the plane
// through the lifted a, b, c, for a counter-clockwise triangle a, b, c.
// The result is inverted for a clockwise triangle and never Zero.
func (k *Kit) Orient2DLiftedSOS(a, b, c, p [2]float64, ha, hb, hc, hp float64) Sign {
	return k.orient2dLifted([4][2]float64{a, b, c, p}, [4]float64{ha, hb, hc, hp}, nil)
}

// Orient2DLiftedSOSIndexed is Orient2DLiftedSOS with explicit point
// identities, which must be distinct.
func (k *Kit) Orient2DLiftedSOSIndexed(a, b, c, p [2]float64, ha, hb, hc, hp float64, ids [4]int) Sign {
	return k.orient2dLifted([4][2]float64{a, b, c, p}, [4]float64{ha, hb, hc, hp}, ids[:])
}

func (k *Kit) orient2dLifted(pts [4][2]float64, h [4]float64, ids []int) Sign {
	const name = "orient_2dlifted_SOS"
	requireFinite2(name, pts[:]...)
	requireFinite(name, h[:]...)
	requireDistinct(name, ids)
	pert := perturbation{order: order2(&pts, ids), columns: lifted2dColumns}

	if !rescale2(pts[:]) || !rescaleRows(h[:]) {
		var heights [4]*big.Float
		for i := range heights {
			heights[i] = wideFloat(h[i])
		}
		return k.wide(stats.Orient2DLifted, wideLifted2dMatrix(&pts, &heights), pert)
	}

	var rows [3][3]float64
	for i := 0; i < 3; i++ {
		rows[i][0], rows[i][1] = diff2(pts[i], pts[3])
		rows[i][2] = h[i] - h[3]
	}
	det, permanent := det3Filter(&rows)
	if s, ok := certain(det, k.bounds.Orient3D*permanent); ok {
		k.counters.RecordFast(stats.Orient2DLifted)
		return s
	}
	return k.exact(stats.Orient2DLifted, func(ar *expansion.Arena) Sign {
		if s := lifted2dExact(ar, pts[0], pts[1], pts[2], pts[3], h[0], h[1], h[2], h[3]); s != Zero {
			return s
		}
		k.counters.RecordSOS(stats.Orient2DLifted)
		var heights [4]expansion.Expansion
		for i := range heights {
			heights[i] = ar.Float(h[i])
		}
		return sosSign(exactMatrix{ar, lifted2dMatrix(ar, &pts, &heights)}, pert)
	})
}

// InCircle2DSOS is Positive when p lies inside the circle through a, b, c
// for a counter-clockwise triangle a, b, c, Negative when it lies outside.
// The result is inverted for a clockwise triangle and never Zero.
func (k *Kit) InCircle2DSOS(a, b, c, p [2]float64) Sign {
	return k.inCircle([4][2]float64{a, b, c, p}, nil)
}

// InCircle2DSOSIndexed is InCircle2DSOS with explicit point identities,
// which must be distinct.
func (k *Kit) InCircle2DSOSIndexed(a, b, c, p [2]float64, ids [4]int) Sign {
	return k.inCircle([4][2]float64{a, b, c, p}, ids[:])
}

func (k *Kit) inCircle(pts [4][2]float64, ids []int) Sign {
	const name = "in_circle_2d_SOS"
	requireFinite2(name, pts[:]...)
	requireDistinct(name, ids)
	pert := perturbation{order: order2(&pts, ids), columns: lifted2dColumns}

	if !rescale2(pts[:]) {
		var heights [4]*big.Float
		for i, p := range pts {
			heights[i] = precise2(p).Norm2()
		}
		return k.wide(stats.InCircle2D, wideLifted2dMatrix(&pts, &heights), pert)
	}

	var rows [3][3]float64
	for i := 0; i < 3; i++ {
		dx, dy := diff2(pts[i], pts[3])
		rows[i] = [3]float64{dx, dy, float64(dx*dx) + float64(dy*dy)}
	}
	det, permanent := det3Filter(&rows)
	if s, ok := certain(det, k.bounds.InCircle*permanent); ok {
		k.counters.RecordFast(stats.InCircle2D)
		return s
	}
	return k.exact(stats.InCircle2D, func(ar *expansion.Arena) Sign {
		if s := inCircleExact(ar, pts[0], pts[1], pts[2], pts[3]); s != Zero {
			return s
		}
		k.counters.RecordSOS(stats.InCircle2D)
		var heights [4]expansion.Expansion
		for i, p := range pts {
			heights[i] = floatSquaredNorm(ar, p[:]...)
		}
		return sosSign(exactMatrix{ar, lifted2dMatrix(ar, &pts, &heights)}, pert)
	})
}

// Orient3DLiftedSOS is Positive when the lifted p lies below the
// hyperplane through the lifted a, b, c, d, for a positively oriented
// tetrahedron a, b, c, d (Orient3D > 0). The result is inverted for a
// negatively oriented tetrahedron and never Zero.
func (k *Kit) Orient3DLiftedSOS(a, b, c, d, p [3]float64, ha, hb, hc, hd, hp float64) Sign {
	return k.orient3dLifted([5][3]float64{a, b, c, d, p}, [5]float64{ha, hb, hc, hd, hp}, nil)
}

// Orient3DLiftedSOSIndexed is Orient3DLiftedSOS with explicit point
// identities, which must be distinct.
func (k *Kit) Orient3DLiftedSOSIndexed(a, b, c, d, p [3]float64, ha, hb, hc, hd, hp float64, ids [5]int) Sign {
	return k.orient3dLifted([5][3]float64{a, b, c, d, p}, [5]float64{ha, hb, hc, hd, hp}, ids[:])
}

func (k *Kit) orient3dLifted(pts [5][3]float64, h [5]float64, ids []int) Sign {
	const name = "orient_3dlifted_SOS"
	requireFinite3(name, pts[:]...)
	requireFinite(name, h[:]...)
	requireDistinct(name, ids)
	pert := perturbation{order: order3(&pts, ids), columns: lifted3dColumns}

	if !rescale3(pts[:]) || !rescaleRows(h[:]) {
		var heights [5]*big.Float
		for i := range heights {
			heights[i] = wideFloat(h[i])
		}
		return k.wide(stats.Orient3DLifted, wideLifted3dMatrix(&pts, &heights), pert).Neg()
	}

	var rows [4][4]float64
	for i := 0; i < 4; i++ {
		rows[i][0], rows[i][1], rows[i][2] = diff3(pts[i], pts[4])
		rows[i][3] = h[i] - h[4]
	}
	det, permanent := det4Filter(&rows)
	if s, ok := certain(det, k.bounds.InSphere*permanent); ok {
		k.counters.RecordFast(stats.Orient3DLifted)
		return s.Neg()
	}
	return k.exact(stats.Orient3DLifted, func(ar *expansion.Arena) Sign {
		if s := lifted3dExact(ar, pts[0], pts[1], pts[2], pts[3], pts[4], h[0], h[1], h[2], h[3], h[4]); s != Zero {
			return s.Neg()
		}
		k.counters.RecordSOS(stats.Orient3DLifted)
		var heights [5]expansion.Expansion
		for i := range heights {
			heights[i] = ar.Float(h[i])
		}
		return sosSign(exactMatrix{ar, lifted3dMatrix(ar, &pts, &heights)}, pert).Neg()
	})
}

// InSphere3DSOS is Positive when p lies inside the sphere through a, b,
// c, d for a positively oriented tetrahedron a, b, c, d, Negative when it
// lies outside. The result is inverted for a negatively oriented
// tetrahedron and never Zero.
func (k *Kit) InSphere3DSOS(a, b, c, d, p [3]float64) Sign {
	return k.inSphere([5][3]float64{a, b, c, d, p}, nil)
}

// InSphere3DSOSIndexed is InSphere3DSOS with explicit point identities,
// which must be distinct.
func (k *Kit) InSphere3DSOSIndexed(a, b, c, d, p [3]float64, ids [5]int) Sign {
	return k.inSphere([5][3]float64{a, b, c, d, p}, ids[:])
}

func (k *Kit) inSphere(pts [5][3]float64, ids []int) Sign {
	const name = "in_sphere_3d_SOS"
	requireFinite3(name, pts[:]...)
	requireDistinct(name, ids)
	pert := perturbation{order: order3(&pts, ids), columns: lifted3dColumns}

	if !rescale3(pts[:]) {
		var heights [5]*big.Float
		for i, p := range pts {
			heights[i] = precise3(p).Norm2()
		}
		return k.wide(stats.InSphere3D, wideLifted3dMatrix(&pts, &heights), pert).Neg()
	}

	var rows [4][4]float64
	for i := 0; i < 4; i++ {
		dx, dy, dz := diff3(pts[i], pts[4])
		rows[i] = [4]float64{dx, dy, dz, float64(dx*dx) + float64(dy*dy) + float64(dz*dz)}
	}
	det, permanent := det4Filter(&rows)
	if s, ok := certain(det, k.bounds.InSphere*permanent); ok {
		k.counters.RecordFast(stats.InSphere3D)
		return s.Neg()
	}
	return k.exact(stats.InSphere3D, func(ar *expansion.Arena) Sign {
		if s := inSphereExact(ar, pts[0], pts[1], pts[2], pts[3], pts[4]); s != Zero {
			return s.Neg()
		}
		k.counters.RecordSOS(stats.InSphere3D)
		var heights [5]expansion.Expansion
		for i, p := range pts {
			heights[i] = floatSquaredNorm(ar, p[:]...)
		}
		return sosSign(exactMatrix{ar, lifted3dMatrix(ar, &pts, &heights)}, pert).Neg()
	})
}

// wide evaluates the homogeneous matrix of a lifted predicate on the wide
// path, falling back to its perturbation when the determinant is zero.
func (k *Kit) wide(p stats.Predicate, m wideMatrix, pert perturbation) Sign {
	k.counters.RecordExact(p)
	if s := m.detSign(); s != Zero {
		return s
	}
	k.counters.RecordSOS(p)
	return sosSign(m, pert)
}

func order2(pts *[4][2]float64, ids []int) []int {
	if ids != nil {
		return indexOrder(ids)
	}
	coords := make([][]float64, len(pts))
	for i := range pts {
		coords[i] = pts[i][:]
	}
	return lexicographicOrder(coords)
}

func order3(pts *[5][3]float64, ids []int) []int {
	if ids != nil {
		return indexOrder(ids)
	}
	coords := make([][]float64, len(pts))
	for i := range pts {
		coords[i] = pts[i][:]
	}
	return lexicographicOrder(coords)
}
