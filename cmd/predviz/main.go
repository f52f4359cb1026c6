// Command predviz draws and measures the robust predicates.
//
//	predviz render orient2d --mode naive --out naive.png
//	predviz compare incircle
//	predviz stats --calls 1000000 --workers 8
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/osuushi/geopredicates"
	"github.com/osuushi/geopredicates/internal/render"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app     = kingpin.New("predviz", "Draw and measure robust geometric predicates.")
	verbose = app.Flag("verbose", "Log predicate statistics to stderr.").Short('v').Bool()

	renderCmd    = app.Command("render", "Render a sign map of a predicate around a tiny grid of consecutive doubles.")
	renderPred   = renderCmd.Arg("predicate", "Predicate to draw.").Required().Enum(render.Predicates...)
	renderMode   = renderCmd.Flag("mode", "Evaluate naively in float64 or with the robust predicate.").Default(string(render.Robust)).Enum(render.Modes...)
	renderOut    = renderCmd.Flag("out", "Output PNG path. Defaults to out_<mode>_<predicate>.png.").String()
	renderImgcat = renderCmd.Flag("imgcat", "Also print the image inline (iTerm only).").Bool()
	renderGrid   = gridFlags(renderCmd)

	compareCmd  = app.Command("compare", "Count the grid points where the naive evaluation gets the sign wrong.")
	comparePred = compareCmd.Arg("predicate", "Predicate to compare.").Required().Enum(render.Predicates...)
	compareGrid = gridFlags(compareCmd)

	statsCmd     = app.Command("stats", "Run random and degenerate predicate calls and print how they were resolved.")
	statsCalls   = statsCmd.Flag("calls", "Calls per predicate.").Default("100000").Int()
	statsWorkers = statsCmd.Flag("workers", "Concurrent workers.").Default("4").Int()
	statsSeed    = statsCmd.Flag("seed", "Random seed.").Default("1").Int64()
)

type gridOptions struct {
	size   *int
	start  *string
	points *string
}

func gridFlags(cmd *kingpin.CmdClause) gridOptions {
	return gridOptions{
		size:   cmd.Flag("size", "Grid width and height in points.").Default(fmt.Sprint(render.DefaultSize)).Int(),
		start:  cmd.Flag("start", "Lower left grid point as X,Y.").Default("0.5,0.5").String(),
		points: cmd.Flag("points", "Read the fixed points of the predicate from an .svg polygon or an \"x y\" text file.").ExistingFile(),
	}
}

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	if *verbose {
		geopredicates.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	err := run(command)
	app.FatalIfError(err, "%s", command)
}

func run(command string) (err error) {
	defer func() {
		if recoveredErr := geopredicates.HandleContractPanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()

	geopredicates.Initialize()
	defer geopredicates.Terminate()
	defer geopredicates.ShowStats()

	switch command {
	case renderCmd.FullCommand():
		return runRender(render.Predicate(*renderPred), render.Mode(*renderMode), renderGrid)
	case compareCmd.FullCommand():
		return runCompare(render.Predicate(*comparePred), compareGrid)
	case statsCmd.FullCommand():
		return runStats(*statsCalls, *statsWorkers, *statsSeed)
	}
	return nil
}
