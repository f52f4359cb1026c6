package main

import (
	"context"
	"math/rand"
	"os"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/osuushi/geopredicates"
	"golang.org/x/sync/errgroup"
)

// runStats splits the calls between workers. Each worker draws half of
// its inputs uniformly and half snapped to a small integer lattice, where
// collinear, cocircular and coplanar configurations are common and the
// exact and symbolic paths get exercised. Workers get readable names in
// the debug log; they differ from run to run.
func runStats(calls, workers int, seed int64) error {
	petname.NonDeterministicMode()
	if workers < 1 {
		workers = 1
	}
	g, ctx := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		n := calls / workers
		if w < calls%workers {
			n++
		}
		rng := rand.New(rand.NewSource(seed + int64(w)))
		name := petname.Generate(2, "-")
		g.Go(func() error {
			for i := 0; i < n; i++ {
				if i%1024 == 0 && ctx.Err() != nil {
					return ctx.Err()
				}
				callAll(rng, i%2 == 1)
			}
			geopredicates.Logger().Debug("stats worker done", "worker", name, "calls", n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	geopredicates.Stats().WriteTable(os.Stdout)
	return nil
}

type sampler struct {
	rng     *rand.Rand
	lattice bool
}

func (s sampler) coord() float64 {
	if s.lattice {
		return float64(s.rng.Intn(5))
	}
	return s.rng.Float64()*2 - 1
}

func (s sampler) p2() geopredicates.Point2 {
	return geopredicates.Point2{s.coord(), s.coord()}
}

func (s sampler) p3() geopredicates.Point3 {
	return geopredicates.Point3{s.coord(), s.coord(), s.coord()}
}

func (s sampler) v4() geopredicates.Vector4 {
	return geopredicates.Vector4{s.coord(), s.coord(), s.coord(), s.coord()}
}

func norm2(p geopredicates.Point2) float64 { return p[0]*p[0] + p[1]*p[1] }

func norm3(p geopredicates.Point3) float64 { return p[0]*p[0] + p[1]*p[1] + p[2]*p[2] }

func callAll(rng *rand.Rand, lattice bool) {
	s := sampler{rng, lattice}

	a, b, c, p := s.p2(), s.p2(), s.p2(), s.p2()
	geopredicates.Orient2D(a, b, c)
	geopredicates.InCircle2DSOS(a, b, c, p)
	geopredicates.Orient2DLiftedSOS(a, b, c, p, norm2(a), norm2(b), norm2(c), s.coord())

	a3, b3, c3, d3, p3 := s.p3(), s.p3(), s.p3(), s.p3(), s.p3()
	geopredicates.Orient3D(a3, b3, c3, d3)
	geopredicates.Orient3DInexact(a3, b3, c3, d3)
	geopredicates.InSphere3DSOS(a3, b3, c3, d3, p3)
	geopredicates.Orient3DLiftedSOS(a3, b3, c3, d3, p3, norm3(a3), norm3(b3), norm3(c3), norm3(d3), s.coord())
	geopredicates.Det3D(a3, b3, c3)
	geopredicates.Det4D(s.v4(), s.v4(), s.v4(), s.v4())
	geopredicates.Dot3D(a3, b3, c3)
}
