package pck

import "github.com/osuushi/geopredicates/internal/expansion"

// maxDim is the largest matrix handled by the exact kernel: the 5×5
// homogeneous matrix of the 3D lifted predicates.
const maxDim = 5

// matrix is a square matrix of exact entries, at most maxDim×maxDim.
type matrix [][]expansion.Expansion

func newMatrix(n int) matrix {
	m := make(matrix, n)
	for i := range m {
		m[i] = make([]expansion.Expansion, n)
	}
	return m
}

// det returns the exact determinant of m.
func (m matrix) det(ar *expansion.Arena) expansion.Expansion {
	var idx [maxDim]int
	for i := range m {
		idx[i] = i
	}
	return m.minor(ar, idx[:len(m)], idx[:len(m)])
}

// minor returns the exact determinant of m restricted to rows and cols,
// both in increasing order, by cofactor expansion along the first
// column. The empty minor is 1.
func (m matrix) minor(ar *expansion.Arena, rows, cols []int) expansion.Expansion {
	switch len(rows) {
	case 0:
		return ar.Float(1)
	case 1:
		return m[rows[0]][cols[0]]
	case 2:
		r0, r1 := m[rows[0]], m[rows[1]]
		c0, c1 := cols[0], cols[1]
		return ar.Sub(ar.Mul(r0[c0], r1[c1]), ar.Mul(r1[c0], r0[c1]))
	}

	var det expansion.Expansion
	var subRows [maxDim]int
	for i, r := range rows {
		entry := m[r][cols[0]]
		if entry.IsZero() {
			continue
		}
		n := copy(subRows[:], rows[:i])
		n += copy(subRows[n:], rows[i+1:])
		cofactor := ar.Compress(m.minor(ar, subRows[:n], cols[1:]))
		term := ar.Mul(entry, cofactor)
		if i%2 == 0 {
			det = ar.Add(det, term)
		} else {
			det = ar.Sub(det, term)
		}
	}
	return det
}

// exactMatrix pairs a matrix with the arena its minors are evaluated in.
type exactMatrix struct {
	ar *expansion.Arena
	m  matrix
}

func (e exactMatrix) size() int {
	return len(e.m)
}

func (e exactMatrix) minorSign(rows, cols []int) Sign {
	return signOfInt(e.m.minor(e.ar, rows, cols).Sign())
}

// Exact entries built from float64 inputs.

func exactDiffRow2(ar *expansion.Arena, a, p [2]float64) []expansion.Expansion {
	return []expansion.Expansion{ar.Diff(a[0], p[0]), ar.Diff(a[1], p[1]), nil}
}

func exactDiffRow3(ar *expansion.Arena, a, p [3]float64) []expansion.Expansion {
	return []expansion.Expansion{ar.Diff(a[0], p[0]), ar.Diff(a[1], p[1]), ar.Diff(a[2], p[2]), nil}
}

// squaredNorm returns the exact sum of squares of the given expansions.
func squaredNorm(ar *expansion.Arena, coords ...expansion.Expansion) expansion.Expansion {
	var sum expansion.Expansion
	for _, c := range coords {
		sum = ar.Add(sum, ar.Mul(c, c))
	}
	return sum
}

// floatSquaredNorm returns the exact sum of squares of coords.
func floatSquaredNorm(ar *expansion.Arena, coords ...float64) expansion.Expansion {
	var sum expansion.Expansion
	for _, x := range coords {
		sum = ar.Add(sum, ar.Product(x, x))
	}
	return sum
}

func floatRow(ar *expansion.Arena, coords ...float64) []expansion.Expansion {
	row := make([]expansion.Expansion, len(coords))
	for i, x := range coords {
		row[i] = ar.Float(x)
	}
	return row
}
