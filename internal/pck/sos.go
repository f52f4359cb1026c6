package pck

import "math/bits"

// Simulation of simplicity.
//
// A lifted predicate is the sign of a homogeneous determinant whose rows
// are the points, each row [coordinates..., height, 1]. Every entry of
// the non-constant columns is perturbed by its own infinitesimal
//
//	ε^(2^rank)   with   rank = identityRank(row)·k + priority(column)
//
// where k is the number of perturbed columns, identityRank orders the
// points by identity (lowest first, perturbed most) and the column
// priority puts the height first. Each monomial of the perturbed
// determinant is a set of perturbed entries, and its exponent is the
// integer whose set bits are the ranks of those entries, so exponents are
// pairwise distinct and enumerating sets in increasing integer order
// visits monomials from the dominant one down. A set contributes only if
// it is a partial matching (at most one entry per row and per column),
// with coefficient
//
//	(-1)^(Σrows + Σcols) · sgn(σ) · det(M without those rows and columns)
//
// where σ pairs the rows of the set, in order, with its columns. The sign
// of the perturbed determinant is the sign of the first non-zero
// coefficient.
//
// The first sets tried perturb the height of the lowest identity point,
// whose coefficient is the orientation of the remaining points. When
// every set of the k lowest-identity rows fails, the set matching all k
// perturbed columns against those rows leaves the all-ones column as a
// 1×1 minor, so the enumeration always ends with a non-zero sign.

// perturbation describes how one homogeneous matrix is perturbed.
type perturbation struct {
	// order lists the rows from the lowest identity to the highest.
	order []int
	// columns lists the perturbed columns in priority order.
	columns []int
}

// minorSigner evaluates the exact signs of the minors of one square
// matrix.
type minorSigner interface {
	size() int
	minorSign(rows, cols []int) Sign
}

type entry struct {
	row, col int
}

// sosSign returns the sign of the perturbed determinant of m, whose
// unperturbed value is known to be zero.
func sosSign(m minorSigner, pert perturbation) Sign {
	n, k := m.size(), len(pert.columns)
	limit := uint64(1) << uint(n*k)

	var set [maxDim]entry
	for v := uint64(1); v < limit; v++ {
		size, ok := matching(v, k, pert, &set)
		if !ok {
			continue
		}
		s := perturbedMinorSign(m, set[:size])
		if s != Zero {
			return s
		}
	}
	Fatalf("symbolic perturbation of a %d×%d determinant did not resolve", n, n)
	return Zero
}

// matching decodes the set of perturbed entries encoded by v into set and
// reports whether it uses every row and every column at most once. The
// entries come out sorted by row.
func matching(v uint64, k int, pert perturbation, set *[maxDim]entry) (int, bool) {
	var usedRows, usedCols uint
	size := 0
	for rest := v; rest != 0; rest &= rest - 1 {
		rank := bits.TrailingZeros64(rest)
		e := entry{row: pert.order[rank/k], col: pert.columns[rank%k]}
		if usedRows&(1<<uint(e.row)) != 0 || usedCols&(1<<uint(e.col)) != 0 {
			return 0, false
		}
		if size == maxDim {
			return 0, false
		}
		usedRows |= 1 << uint(e.row)
		usedCols |= 1 << uint(e.col)
		set[size] = e
		size++
	}
	sortByRow(set[:size])
	return size, true
}

func sortByRow(set []entry) {
	for i := 1; i < len(set); i++ {
		for j := i; j > 0 && set[j].row < set[j-1].row; j-- {
			set[j], set[j-1] = set[j-1], set[j]
		}
	}
}

// perturbedMinorSign returns the sign of the coefficient of the monomial
// made of the entries in set, which must be sorted by row.
func perturbedMinorSign(m minorSigner, set []entry) Sign {
	n := m.size()
	var removedRows, removedCols uint
	parity := 0
	for i, e := range set {
		removedRows |= 1 << uint(e.row)
		removedCols |= 1 << uint(e.col)
		parity += e.row + e.col
		// Inversions of the column sequence give the sign of σ.
		for _, earlier := range set[:i] {
			if earlier.col > e.col {
				parity++
			}
		}
	}

	var rows, cols [maxDim]int
	nr, nc := 0, 0
	for i := 0; i < n; i++ {
		if removedRows&(1<<uint(i)) == 0 {
			rows[nr] = i
			nr++
		}
		if removedCols&(1<<uint(i)) == 0 {
			cols[nc] = i
			nc++
		}
	}

	s := m.minorSign(rows[:nr], cols[:nc])
	if parity%2 == 1 {
		s = s.Neg()
	}
	return s
}

// lexicographicOrder ranks points by their coordinates, x first. Exactly
// coincident points are ranked by argument position.
func lexicographicOrder(points [][]float64) []int {
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	less := func(i, j int) bool {
		for c := range points[i] {
			if points[i][c] != points[j][c] {
				return points[i][c] < points[j][c]
			}
		}
		return i < j
	}
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && less(order[j], order[j-1]); j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
	return order
}

// indexOrder ranks points by caller supplied identities.
func indexOrder(ids []int) []int {
	order := make([]int, len(ids))
	for i := range order {
		order[i] = i
	}
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && ids[order[j]] < ids[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
	return order
}

// requireDistinct panics unless the identities are pairwise distinct. A
// nil slice means identities are derived from coordinates.
func requireDistinct(name string, ids []int) {
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			if ids[i] == ids[j] {
				Fatalf("%s: duplicate point identity %d", name, ids[i])
			}
		}
	}
}
