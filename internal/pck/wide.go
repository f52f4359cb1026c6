package pck

import (
	"math/big"

	"github.com/golang/geo/r3"
)

// The wide path evaluates a predicate exactly with big floats whose
// precision never rounds, the representation of r3.PreciseVector. It
// serves calls whose inputs span more magnitudes than the expansion
// kernel can hold; it has no filter and allocates on every operation.

const widePrec = big.MaxPrec

func wideFloat(x float64) *big.Float {
	return new(big.Float).SetPrec(widePrec).SetFloat64(x)
}

func wideMul(x, y *big.Float) *big.Float {
	return new(big.Float).SetPrec(widePrec).Mul(x, y)
}

func wideAdd(x, y *big.Float) *big.Float {
	return new(big.Float).SetPrec(widePrec).Add(x, y)
}

func wideSub(x, y *big.Float) *big.Float {
	return new(big.Float).SetPrec(widePrec).Sub(x, y)
}

func precise2(p [2]float64) r3.PreciseVector {
	return r3.NewPreciseVector(p[0], p[1], 0)
}

func precise3(p [3]float64) r3.PreciseVector {
	return r3.NewPreciseVector(p[0], p[1], p[2])
}

func orient2dWide(a, b, c [2]float64) Sign {
	pa := precise2(a)
	return signOfInt(precise2(b).Sub(pa).Cross(precise2(c).Sub(pa)).Z.Sign())
}

func orient3dWide(a, b, c, d [3]float64) Sign {
	pa := precise3(a)
	u, v, w := precise3(b).Sub(pa), precise3(c).Sub(pa), precise3(d).Sub(pa)
	return signOfInt(u.Dot(v.Cross(w)).Sign())
}

func det3Wide(a, b, c [3]float64) Sign {
	return signOfInt(precise3(a).Dot(precise3(b).Cross(precise3(c))).Sign())
}

func dot3Wide(a, b, c [3]float64) Sign {
	pa := precise3(a)
	return signOfInt(precise3(b).Sub(pa).Dot(precise3(c).Sub(pa)).Sign())
}

func det4Wide(a, b, c, d [4]float64) Sign {
	m := make(wideMatrix, 4)
	for i, row := range [4][4]float64{a, b, c, d} {
		m[i] = make([]*big.Float, 4)
		for j, x := range row {
			m[i][j] = wideFloat(x)
		}
	}
	return m.detSign()
}

// wideMatrix is a square matrix of exact big float entries.
type wideMatrix [][]*big.Float

func (m wideMatrix) size() int {
	return len(m)
}

func (m wideMatrix) detSign() Sign {
	var idx [maxDim]int
	for i := range m {
		idx[i] = i
	}
	return m.minorSign(idx[:len(m)], idx[:len(m)])
}

func (m wideMatrix) minorSign(rows, cols []int) Sign {
	return signOfInt(m.minor(rows, cols).Sign())
}

// minor mirrors matrix.minor: cofactor expansion along the first column.
func (m wideMatrix) minor(rows, cols []int) *big.Float {
	switch len(rows) {
	case 0:
		return wideFloat(1)
	case 1:
		return m[rows[0]][cols[0]]
	}

	det := wideFloat(0)
	var subRows [maxDim]int
	for i, r := range rows {
		entry := m[r][cols[0]]
		if entry.Sign() == 0 {
			continue
		}
		n := copy(subRows[:], rows[:i])
		n += copy(subRows[n:], rows[i+1:])
		term := wideMul(entry, m.minor(subRows[:n], cols[1:]))
		if i%2 == 0 {
			det = wideAdd(det, term)
		} else {
			det = wideSub(det, term)
		}
	}
	return det
}

// wideLifted2dMatrix is lifted2dMatrix over big floats: rows [x, y, h, 1].
func wideLifted2dMatrix(pts *[4][2]float64, heights *[4]*big.Float) wideMatrix {
	m := make(wideMatrix, 4)
	for i, p := range pts {
		m[i] = []*big.Float{wideFloat(p[0]), wideFloat(p[1]), heights[i], wideFloat(1)}
	}
	return m
}

// wideLifted3dMatrix is lifted3dMatrix over big floats: rows
// [x, y, z, h, 1].
func wideLifted3dMatrix(pts *[5][3]float64, heights *[5]*big.Float) wideMatrix {
	m := make(wideMatrix, 5)
	for i, p := range pts {
		m[i] = []*big.Float{wideFloat(p[0]), wideFloat(p[1]), wideFloat(p[2]), heights[i], wideFloat(1)}
	}
	return m
}
