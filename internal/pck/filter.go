package pck

import "math"

// Floating-point filters. Each returns the sign of its determinant and
// true when the float64 evaluation is certain, or false when the caller
// must fall back to exact arithmetic.
//
// Every product is wrapped in a float64 conversion so that the compiler
// may not fuse it into a multiply-add: the error bounds assume each
// product is rounded on its own.

func orient2dFilter(bounds *Bounds, a, b, c [2]float64) (Sign, bool) {
	detLeft := float64((b[0] - a[0]) * (c[1] - a[1]))
	detRight := float64((b[1] - a[1]) * (c[0] - a[0]))
	det := detLeft - detRight

	var detSum float64
	switch {
	case detLeft > 0:
		if detRight <= 0 {
			return GeoSgn(det), true
		}
		detSum = detLeft + detRight
	case detLeft < 0:
		if detRight >= 0 {
			return GeoSgn(det), true
		}
		detSum = -detLeft - detRight
	default:
		// The rounded differences are exact zeros when their product is,
		// so det is exactly -detRight up to the sign-preserving rounding
		// of one product.
		return GeoSgn(det), true
	}
	return certain(det, bounds.Orient2D*detSum)
}

// det3Filter evaluates the 3×3 determinant of rows r by expanding along
// the last column, the evaluation order of Shewchuk's orient3d and
// incircle, and returns it with its permanent.
func det3Filter(r *[3][3]float64) (det, permanent float64) {
	r0x, r0y, r0z := r[0][0], r[0][1], r[0][2]
	r1x, r1y, r1z := r[1][0], r[1][1], r[1][2]
	r2x, r2y, r2z := r[2][0], r[2][1], r[2][2]

	r1xr2y := float64(r1x * r2y)
	r2xr1y := float64(r2x * r1y)
	r2xr0y := float64(r2x * r0y)
	r0xr2y := float64(r0x * r2y)
	r0xr1y := float64(r0x * r1y)
	r1xr0y := float64(r1x * r0y)

	det = float64(r0z*(r1xr2y-r2xr1y)) +
		float64(r1z*(r2xr0y-r0xr2y)) +
		float64(r2z*(r0xr1y-r1xr0y))
	permanent = (math.Abs(r1xr2y)+math.Abs(r2xr1y))*math.Abs(r0z) +
		(math.Abs(r2xr0y)+math.Abs(r0xr2y))*math.Abs(r1z) +
		(math.Abs(r0xr1y)+math.Abs(r1xr0y))*math.Abs(r2z)
	return det, permanent
}

// det4Filter evaluates the 4×4 determinant of rows r in the evaluation
// order of Shewchuk's insphere: 2×2 minors of the first two columns, 3×3
// minors of the first three, then the expansion along the last column.
func det4Filter(r *[4][4]float64) (det, permanent float64) {
	ax, ay, az, aw := r[0][0], r[0][1], r[0][2], r[0][3]
	bx, by, bz, bw := r[1][0], r[1][1], r[1][2], r[1][3]
	cx, cy, cz, cw := r[2][0], r[2][1], r[2][2], r[2][3]
	dx, dy, dz, dw := r[3][0], r[3][1], r[3][2], r[3][3]

	axby := float64(ax * by)
	bxay := float64(bx * ay)
	ab := axby - bxay
	bxcy := float64(bx * cy)
	cxby := float64(cx * by)
	bc := bxcy - cxby
	cxdy := float64(cx * dy)
	dxcy := float64(dx * cy)
	cd := cxdy - dxcy
	dxay := float64(dx * ay)
	axdy := float64(ax * dy)
	da := dxay - axdy
	axcy := float64(ax * cy)
	cxay := float64(cx * ay)
	ac := axcy - cxay
	bxdy := float64(bx * dy)
	dxby := float64(dx * by)
	bd := bxdy - dxby

	abc := float64(az*bc) - float64(bz*ac) + float64(cz*ab)
	bcd := float64(bz*cd) - float64(cz*bd) + float64(dz*bc)
	cda := float64(cz*da) + float64(dz*ac) + float64(az*cd)
	dab := float64(dz*ab) + float64(az*bd) + float64(bz*da)

	det = (float64(dw*abc) - float64(cw*dab)) + (float64(bw*cda) - float64(aw*bcd))

	axby, bxay = math.Abs(axby), math.Abs(bxay)
	bxcy, cxby = math.Abs(bxcy), math.Abs(cxby)
	cxdy, dxcy = math.Abs(cxdy), math.Abs(dxcy)
	dxay, axdy = math.Abs(dxay), math.Abs(axdy)
	axcy, cxay = math.Abs(axcy), math.Abs(cxay)
	bxdy, dxby = math.Abs(bxdy), math.Abs(dxby)
	az, bz, cz, dz = math.Abs(az), math.Abs(bz), math.Abs(cz), math.Abs(dz)

	permanent = ((cxdy+dxcy)*bz+(dxby+bxdy)*cz+(bxcy+cxby)*dz)*math.Abs(aw) +
		((dxay+axdy)*cz+(axcy+cxay)*dz+(cxdy+dxcy)*az)*math.Abs(bw) +
		((axby+bxay)*dz+(bxdy+dxby)*az+(dxay+axdy)*bz)*math.Abs(cw) +
		((bxcy+cxby)*az+(cxay+axcy)*bz+(axby+bxay)*cz)*math.Abs(dw)
	return det, permanent
}

func dot3Filter(bounds *Bounds, a, b, c [3]float64) (Sign, bool) {
	px := float64((b[0] - a[0]) * (c[0] - a[0]))
	py := float64((b[1] - a[1]) * (c[1] - a[1]))
	pz := float64((b[2] - a[2]) * (c[2] - a[2]))
	dot := px + py + pz
	return certain(dot, bounds.Dot3D*(math.Abs(px)+math.Abs(py)+math.Abs(pz)))
}

func certain(det, errBound float64) (Sign, bool) {
	if det > errBound || -det > errBound {
		return GeoSgn(det), true
	}
	return Zero, false
}

func diff2(a, p [2]float64) (float64, float64) {
	return a[0] - p[0], a[1] - p[1]
}

func diff3(a, p [3]float64) (float64, float64, float64) {
	return a[0] - p[0], a[1] - p[1], a[2] - p[2]
}
