package pck

import (
	"math/big"

	"github.com/golang/geo/r3"
)

// Exact reference evaluations in rational arithmetic.

func ratDiff(a, b float64) *big.Rat {
	return new(big.Rat).Sub(new(big.Rat).SetFloat64(a), new(big.Rat).SetFloat64(b))
}

func ratDet(m [][]*big.Rat) *big.Rat {
	if len(m) == 1 {
		return new(big.Rat).Set(m[0][0])
	}
	det := new(big.Rat)
	for j := range m[0] {
		sub := make([][]*big.Rat, 0, len(m)-1)
		for _, row := range m[1:] {
			r := make([]*big.Rat, 0, len(row)-1)
			r = append(r, row[:j]...)
			r = append(r, row[j+1:]...)
			sub = append(sub, r)
		}
		term := new(big.Rat).Mul(m[0][j], ratDet(sub))
		if j%2 == 0 {
			det.Add(det, term)
		} else {
			det.Sub(det, term)
		}
	}
	return det
}

// liftedRows returns the rows [x-p, lift(x-p)] for each x in points.
func liftedRows(points [][]float64, p []float64, heights []float64, hp float64) [][]*big.Rat {
	rows := make([][]*big.Rat, len(points))
	for i, x := range points {
		norm := new(big.Rat)
		for c := range x {
			d := ratDiff(x[c], p[c])
			rows[i] = append(rows[i], d)
			norm.Add(norm, new(big.Rat).Mul(d, d))
		}
		if heights != nil {
			norm = ratDiff(heights[i], hp)
		}
		rows[i] = append(rows[i], norm)
	}
	return rows
}

func oracleOrient2D(a, b, c [2]float64) Sign {
	return Sign(ratDet([][]*big.Rat{
		{ratDiff(b[0], a[0]), ratDiff(b[1], a[1])},
		{ratDiff(c[0], a[0]), ratDiff(c[1], a[1])},
	}).Sign())
}

func oracleInCircle(a, b, c, p [2]float64) Sign {
	return Sign(ratDet(liftedRows([][]float64{a[:], b[:], c[:]}, p[:], nil, 0)).Sign())
}

func oracleInSphere(a, b, c, d, p [3]float64) Sign {
	return -Sign(ratDet(liftedRows([][]float64{a[:], b[:], c[:], d[:]}, p[:], nil, 0)).Sign())
}

func oracleDet(rows ...[]float64) Sign {
	m := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		for _, x := range row {
			m[i] = append(m[i], new(big.Rat).SetFloat64(x))
		}
	}
	return Sign(ratDet(m).Sign())
}

func precise(p [3]float64) r3.PreciseVector {
	return r3.NewPreciseVector(p[0], p[1], p[2])
}

func oracleOrient3D(a, b, c, d [3]float64) Sign {
	pa := precise(a)
	return Sign(precise(b).Sub(pa).Cross(precise(c).Sub(pa)).Dot(precise(d).Sub(pa)).Sign())
}

func oracleDot3D(a, b, c [3]float64) Sign {
	pa := precise(a)
	return Sign(precise(b).Sub(pa).Dot(precise(c).Sub(pa)).Sign())
}
