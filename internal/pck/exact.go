package pck

import "github.com/osuushi/geopredicates/internal/expansion"

// Exact evaluations. Each builds the same determinant as its filter from
// exact differences and products, and returns the sign of its exact
// value.

func orient2dExact(ar *expansion.Arena, a, b, c [2]float64) Sign {
	m := matrix{
		{ar.Diff(b[0], a[0]), ar.Diff(b[1], a[1])},
		{ar.Diff(c[0], a[0]), ar.Diff(c[1], a[1])},
	}
	return signOfInt(m.det(ar).Sign())
}

func orient3dExact(ar *expansion.Arena, a, b, c, d [3]float64) Sign {
	m := matrix{
		exactDiffRow3(ar, b, a)[:3],
		exactDiffRow3(ar, c, a)[:3],
		exactDiffRow3(ar, d, a)[:3],
	}
	return signOfInt(m.det(ar).Sign())
}

// lifted2dExact is the sign of det [x-p, hx-hp] over x = a, b, c.
func lifted2dExact(ar *expansion.Arena, a, b, c, p [2]float64, ha, hb, hc, hp float64) Sign {
	m := matrix{
		exactDiffRow2(ar, a, p),
		exactDiffRow2(ar, b, p),
		exactDiffRow2(ar, c, p),
	}
	for i, h := range [3]float64{ha, hb, hc} {
		m[i][2] = ar.Diff(h, hp)
	}
	return signOfInt(m.det(ar).Sign())
}

// inCircleExact is the sign of det [x-p, |x-p|²] over x = a, b, c.
func inCircleExact(ar *expansion.Arena, a, b, c, p [2]float64) Sign {
	m := matrix{
		exactDiffRow2(ar, a, p),
		exactDiffRow2(ar, b, p),
		exactDiffRow2(ar, c, p),
	}
	for _, row := range m {
		row[2] = squaredNorm(ar, row[0], row[1])
	}
	return signOfInt(m.det(ar).Sign())
}

// lifted3dExact is the sign of det [x-p, hx-hp] over x = a, b, c, d.
func lifted3dExact(ar *expansion.Arena, a, b, c, d, p [3]float64, ha, hb, hc, hd, hp float64) Sign {
	m := matrix{
		exactDiffRow3(ar, a, p),
		exactDiffRow3(ar, b, p),
		exactDiffRow3(ar, c, p),
		exactDiffRow3(ar, d, p),
	}
	for i, h := range [4]float64{ha, hb, hc, hd} {
		m[i][3] = ar.Diff(h, hp)
	}
	return signOfInt(m.det(ar).Sign())
}

// inSphereExact is the sign of det [x-p, |x-p|²] over x = a, b, c, d.
func inSphereExact(ar *expansion.Arena, a, b, c, d, p [3]float64) Sign {
	m := matrix{
		exactDiffRow3(ar, a, p),
		exactDiffRow3(ar, b, p),
		exactDiffRow3(ar, c, p),
		exactDiffRow3(ar, d, p),
	}
	for _, row := range m {
		row[3] = squaredNorm(ar, row[0], row[1], row[2])
	}
	return signOfInt(m.det(ar).Sign())
}

func det3Exact(ar *expansion.Arena, a, b, c [3]float64) Sign {
	m := matrix{
		floatRow(ar, a[:]...),
		floatRow(ar, b[:]...),
		floatRow(ar, c[:]...),
	}
	return signOfInt(m.det(ar).Sign())
}

func det4Exact(ar *expansion.Arena, a, b, c, d [4]float64) Sign {
	m := matrix{
		floatRow(ar, a[:]...),
		floatRow(ar, b[:]...),
		floatRow(ar, c[:]...),
		floatRow(ar, d[:]...),
	}
	return signOfInt(m.det(ar).Sign())
}

func dot3Exact(ar *expansion.Arena, a, b, c [3]float64) Sign {
	var dot expansion.Expansion
	for i := 0; i < 3; i++ {
		dot = ar.Add(dot, ar.Mul(ar.Diff(b[i], a[i]), ar.Diff(c[i], a[i])))
	}
	return signOfInt(dot.Sign())
}

// Homogeneous matrices for symbolic perturbation.

// lifted2dMatrix has rows [x, y, h, 1] for a, b, c, p; its determinant
// equals the 3×3 determinant of lifted2dExact.
func lifted2dMatrix(ar *expansion.Arena, pts *[4][2]float64, heights *[4]expansion.Expansion) matrix {
	m := newMatrix(4)
	for i, p := range pts {
		m[i][0] = ar.Float(p[0])
		m[i][1] = ar.Float(p[1])
		m[i][2] = heights[i]
		m[i][3] = ar.Float(1)
	}
	return m
}

// lifted3dMatrix has rows [x, y, z, h, 1] for a, b, c, d, p; its
// determinant equals the 4×4 determinant of lifted3dExact.
func lifted3dMatrix(ar *expansion.Arena, pts *[5][3]float64, heights *[5]expansion.Expansion) matrix {
	m := newMatrix(5)
	for i, p := range pts {
		m[i][0] = ar.Float(p[0])
		m[i][1] = ar.Float(p[1])
		m[i][2] = ar.Float(p[2])
		m[i][3] = heights[i]
		m[i][4] = ar.Float(1)
	}
	return m
}

var (
	// Height first, then the coordinates.
	lifted2dColumns = []int{2, 0, 1}
	lifted3dColumns = []int{3, 0, 1, 2}
)
