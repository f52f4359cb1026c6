package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/geopredicates/internal/fixture"
	"github.com/osuushi/geopredicates/internal/pck"
	"github.com/osuushi/geopredicates/internal/render"
	"github.com/pkg/errors"
)

// The robust sign maps are evaluated by their own kit, so the global
// counters only count the stats command.
var kit = pck.NewKit(nil)

func (o gridOptions) grid() (render.Grid, error) {
	g := render.DefaultGrid()
	if *o.size <= 0 {
		return g, errors.Errorf("invalid grid size %d", *o.size)
	}
	g.Width, g.Height = *o.size, *o.size

	parts := strings.Split(*o.start, ",")
	if len(parts) != 2 {
		return g, errors.Errorf("invalid start %q, want X,Y", *o.start)
	}
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return g, errors.Wrapf(err, "invalid start %q", *o.start)
		}
		g.Start[i] = v
	}
	return g, nil
}

func (o gridOptions) scene(pred render.Predicate) (render.Scene, error) {
	if *o.points == "" {
		return render.DefaultScene(pred)
	}
	points, err := fixture.LoadFile(*o.points)
	if err != nil {
		return render.Scene{}, err
	}
	return render.NewScene(pred, points)
}

func signMap(pred render.Predicate, mode render.Mode, o gridOptions) (*render.SignMap, error) {
	g, err := o.grid()
	if err != nil {
		return nil, err
	}
	scene, err := o.scene(pred)
	if err != nil {
		return nil, err
	}
	f, err := scene.Func(mode, kit)
	if err != nil {
		return nil, err
	}
	return render.Evaluate(g, f), nil
}

func runRender(pred render.Predicate, mode render.Mode, o gridOptions) error {
	m, err := signMap(pred, mode, o)
	if err != nil {
		return err
	}
	out := *renderOut
	if out == "" {
		out = fmt.Sprintf("out_%s_%s.png", mode, pred)
	}
	if err := m.SavePNG(out); err != nil {
		return errors.Wrapf(err, "writing %s", out)
	}
	negative, zero, positive := m.Counts()
	fmt.Printf("Wrote %s: %d negative, %d zero, %d positive\n", out, negative, zero, positive)
	if *renderImgcat {
		render.Preview(out, os.Stdout)
	}
	return nil
}

func runCompare(pred render.Predicate, o gridOptions) error {
	naive, err := signMap(pred, render.Naive, o)
	if err != nil {
		return err
	}
	robust, err := signMap(pred, render.Robust, o)
	if err != nil {
		return err
	}

	total := len(robust.Signs)
	wrong := naive.Mismatches(robust)
	_, naiveZero, _ := naive.Counts()
	_, robustZero, _ := robust.Counts()

	summary := fmt.Sprintf("%d of %d", wrong, total)
	if wrong == 0 {
		fmt.Printf("%s: naive and robust agree (%s wrong)\n", pred, aurora.Green(summary))
	} else {
		fmt.Printf("%s: naive evaluation wrong at %s points\n", pred, aurora.Red(summary))
	}
	fmt.Printf("zero signs: naive %s, robust %s\n", aurora.Cyan(naiveZero), aurora.Cyan(robustZero))
	return nil
}
