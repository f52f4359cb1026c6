package pck

import (
	"testing"

	"github.com/osuushi/geopredicates/internal/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func permutations(n int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}
	var out [][]int
	for _, p := range permutations(n - 1) {
		for i := 0; i <= len(p); i++ {
			q := make([]int, 0, n)
			q = append(q, p[:i]...)
			q = append(q, n-1)
			q = append(q, p[i:]...)
			out = append(out, q)
		}
	}
	return out
}

// combinations calls f with every k-subset of 0..n-1 in increasing order.
func combinations(n, k int, f func([]int)) {
	idx := make([]int, k)
	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == k {
			f(idx)
			return
		}
		for i := start; i < n; i++ {
			idx[depth] = i
			rec(i+1, depth+1)
		}
	}
	rec(0, 0)
}

func norm2(p [2]float64) float64 { return p[0]*p[0] + p[1]*p[1] }

func norm3(p [3]float64) float64 { return p[0]*p[0] + p[1]*p[1] + p[2]*p[2] }

func TestLexicographicOrder(t *testing.T) {
	points := [][]float64{{1, 0}, {0, 5}, {0, 1}, {0, 1}}
	assert.Equal(t, []int{2, 3, 1, 0}, lexicographicOrder(points))
	assert.Equal(t, []int{3, 1, 0, 2}, indexOrder([]int{7, 3, 9, 1}))
}

func TestSquareHasExactlyOneDelaunayDiagonal(t *testing.T) {
	k := NewKit(nil)
	square := fixture.Load("square")
	require.Len(t, square, 4)
	a, b, c, d := square[0], square[1], square[2], square[3]

	// The lowest point's lift is perturbed first: a goes up, so d falls
	// inside the circle through a, b, c.
	assert.Equal(t, Positive, k.InCircle2DSOS(a, b, c, d))
	assert.Equal(t, Negative, k.InCircle2DSOS(b, c, d, a))

	for _, perm := range permutations(4) {
		ids := [4]int{perm[0], perm[1], perm[2], perm[3]}
		shifted := [4]int{ids[1], ids[2], ids[3], ids[0]}
		acDiagonal := k.InCircle2DSOSIndexed(a, b, c, d, ids)
		bdDiagonal := k.InCircle2DSOSIndexed(b, c, d, a, shifted)
		require.NotEqual(t, Zero, acDiagonal)
		assert.Equal(t, acDiagonal.Neg(), bdDiagonal, "ids %v", ids)
	}
}

func TestInCircleSOSOnDegenerateFixtures(t *testing.T) {
	k := NewKit(nil)
	for _, name := range []string{"cocircular", "collinear", "grid", "square"} {
		t.Run(name, func(t *testing.T) {
			points := fixture.Load(name)
			if len(points) > 7 {
				points = points[:7]
			}
			combinations(len(points), 4, func(idx []int) {
				for _, perm := range permutations(4) {
					a, b, c, p := points[idx[perm[0]]], points[idx[perm[1]]], points[idx[perm[2]]], points[idx[perm[3]]]
					got := k.InCircle2DSOS(a, b, c, p)
					require.NotEqual(t, Zero, got)
					if want := oracleInCircle(a, b, c, p); want != Zero {
						require.Equal(t, want, got)
					}
					require.Equal(t, got, k.InCircle2DSOS(a, b, c, p), "deterministic")
					require.Equal(t, got.Neg(), k.InCircle2DSOS(b, a, c, p), "swap a, b")
					require.Equal(t, got.Neg(), k.InCircle2DSOS(a, b, p, c), "swap c, p")
					require.Equal(t, got.Neg(), k.InCircle2DSOS(b, c, p, a), "cyclic shift")
					require.Equal(t, got, k.Orient2DLiftedSOS(a, b, c, p, norm2(a), norm2(b), norm2(c), norm2(p)),
						"lifted with squared norms")
				}
			})
		})
	}
}

func TestLiftedSOSWithEqualHeights(t *testing.T) {
	k := NewKit(nil)
	// Four lifted points on the plane h = 1: every configuration is
	// degenerate once a, b, c and p are collinear too.
	points := fixture.Load("collinear")
	a, b, c, p := points[0], points[1], points[2], points[3]
	got := k.Orient2DLiftedSOS(a, b, c, p, 1, 1, 1, 1)
	require.NotEqual(t, Zero, got)
	assert.Equal(t, got.Neg(), k.Orient2DLiftedSOS(b, a, c, p, 1, 1, 1, 1))
	assert.Equal(t, got, k.Orient2DLiftedSOSIndexed(a, b, c, p, 1, 1, 1, 1, [4]int{0, 1, 2, 3}),
		"collinear points are already in lexicographic order")
}

var cospherical = [][3]float64{
	{3, 0, 0}, {0, 3, 0}, {0, 0, 3}, {-3, 0, 0}, {0, -3, 0},
	{0, 0, -3}, {1, 2, 2}, {2, -1, 2}, {-2, 2, 1}, {2, 2, -1},
}

// Five points on one circle of the sphere of radius 5: every four of
// them are coplanar as well.
var coplanarCocircular = [][3]float64{
	{5, 0, 0}, {3, 4, 0}, {4, 3, 0}, {0, 5, 0}, {-3, 4, 0},
}

func TestInSphereSOSOnDegenerateSets(t *testing.T) {
	k := NewKit(nil)
	check := func(t *testing.T, a, b, c, d, p [3]float64) {
		got := k.InSphere3DSOS(a, b, c, d, p)
		require.NotEqual(t, Zero, got)
		if want := oracleInSphere(a, b, c, d, p); want != Zero {
			require.Equal(t, want, got)
		}
		require.Equal(t, got.Neg(), k.InSphere3DSOS(b, a, c, d, p), "swap a, b")
		require.Equal(t, got.Neg(), k.InSphere3DSOS(a, b, c, p, d), "swap d, p")
		require.Equal(t, got, k.InSphere3DSOS(b, c, d, p, a), "cyclic shift of five points is even")
		require.Equal(t, got, k.Orient3DLiftedSOS(a, b, c, d, p, norm3(a), norm3(b), norm3(c), norm3(d), norm3(p)),
			"lifted with squared norms")
	}

	t.Run("cospherical", func(t *testing.T) {
		combinations(len(cospherical), 5, func(idx []int) {
			pts := cospherical
			check(t, pts[idx[0]], pts[idx[1]], pts[idx[2]], pts[idx[3]], pts[idx[4]])
		})
	})

	t.Run("coplanar cocircular", func(t *testing.T) {
		for _, perm := range permutations(5) {
			pts := coplanarCocircular
			check(t, pts[perm[0]], pts[perm[1]], pts[perm[2]], pts[perm[3]], pts[perm[4]])
		}
	})
}

func TestSOSOnCoincidentPoints(t *testing.T) {
	k := NewKit(nil)
	p2 := [2]float64{0.25, -3}
	p3 := [3]float64{0.25, -3, 7}

	assert.NotEqual(t, Zero, k.InCircle2DSOS(p2, p2, p2, p2))
	assert.NotEqual(t, Zero, k.Orient2DLiftedSOS(p2, p2, p2, p2, 1, 1, 1, 1))
	assert.NotEqual(t, Zero, k.InSphere3DSOS(p3, p3, p3, p3, p3))
	assert.NotEqual(t, Zero, k.Orient3DLiftedSOS(p3, p3, p3, p3, p3, 0, 0, 0, 0, 0))

	// With explicit identities, swapping two coincident points is still a
	// swap of two perturbed rows.
	ids := [4]int{10, 11, 12, 13}
	swapped := [4]int{11, 10, 12, 13}
	assert.Equal(t,
		k.InCircle2DSOSIndexed(p2, p2, p2, p2, ids).Neg(),
		k.InCircle2DSOSIndexed(p2, p2, p2, p2, swapped))
	ids5 := [5]int{0, 1, 2, 3, 4}
	swapped5 := [5]int{0, 1, 2, 4, 3}
	assert.Equal(t,
		k.InSphere3DSOSIndexed(p3, p3, p3, p3, p3, ids5).Neg(),
		k.InSphere3DSOSIndexed(p3, p3, p3, p3, p3, swapped5))
	assert.Equal(t,
		k.Orient3DLiftedSOSIndexed(p3, p3, p3, p3, p3, 1, 2, 3, 4, 5, ids5).Neg(),
		k.Orient3DLiftedSOSIndexed(p3, p3, p3, p3, p3, 1, 2, 3, 5, 4, swapped5))
}

func TestIndexedMatchesExplicitOrder(t *testing.T) {
	k := NewKit(nil)
	square := fixture.Load("square")
	a, b, c, d := square[0], square[1], square[2], square[3]
	// Lexicographic order of the square is a, d, b, c.
	assert.Equal(t,
		k.InCircle2DSOS(a, b, c, d),
		k.InCircle2DSOSIndexed(a, b, c, d, [4]int{0, 2, 3, 1}))
}

func TestDuplicateIdentitiesPanic(t *testing.T) {
	k := NewKit(nil)
	var p2 [2]float64
	var p3 [3]float64
	for name, call := range map[string]func(){
		"in_circle_2d_SOS": func() { k.InCircle2DSOSIndexed(p2, p2, p2, p2, [4]int{0, 1, 1, 2}) },
		"orient_2dlifted_SOS": func() {
			k.Orient2DLiftedSOSIndexed(p2, p2, p2, p2, 0, 0, 0, 0, [4]int{3, 1, 2, 3})
		},
		"in_sphere_3d_SOS": func() { k.InSphere3DSOSIndexed(p3, p3, p3, p3, p3, [5]int{0, 1, 2, 3, 0}) },
		"orient_3dlifted_SOS": func() {
			k.Orient3DLiftedSOSIndexed(p3, p3, p3, p3, p3, 0, 0, 0, 0, 0, [5]int{4, 4, 2, 1, 0})
		},
	} {
		t.Run(name, func(t *testing.T) {
			err := func() (err error) {
				defer func() {
					err = HandleContractPanicRecover(recover())
				}()
				call()
				return nil
			}()
			require.Error(t, err)
			assert.Contains(t, err.Error(), name)
			assert.Contains(t, err.Error(), "duplicate point identity")
		})
	}
}
