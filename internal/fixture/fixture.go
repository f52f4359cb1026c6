// Package fixture loads point sets: from the <polygon> elements of an SVG
// file, or from plain text with one "x y" point per line.
//
// This is not a full (or even correct) svg parser. It collects the points
// attribute of every polygon in document order and ignores everything
// else, including transforms.
//
// Named fixtures are embedded from the fixtures/ directory, sans
// extension. They are the degenerate configurations used in tests:
// collinear, cocircular and cospherical points.
package fixture

import (
	"bufio"
	"embed"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

//go:embed fixtures
var fixtures embed.FS

// Load returns the points of a named fixture. It panics if the fixture
// does not exist or does not parse.
func Load(name string) [][2]float64 {
	f, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		panic(errors.Wrapf(err, "could not load fixture %q", name))
	}
	defer f.Close()
	points, err := LoadSVG(f)
	if err != nil {
		panic(errors.Wrapf(err, "fixture %q", name))
	}
	return points
}

// LoadFile reads points from an .svg file, or from a text file in the
// ReadPoints format for any other extension.
func LoadFile(path string) ([][2]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return LoadSVG(f)
	}
	return ReadPoints(f)
}

// LoadSVG collects the points of every polygon in the document.
func LoadSVG(r io.Reader) ([][2]float64, error) {
	rootEl, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse svg")
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		return nil, errors.New("no polygons found")
	}

	var points [][2]float64
	for _, polygonEl := range polygons {
		for _, pointString := range strings.Fields(polygonEl.Attributes["points"]) {
			parts := strings.Split(pointString, ",")
			if len(parts) != 2 {
				return nil, errors.Errorf("invalid point string %q", pointString)
			}
			p, err := parsePoint(parts[0], parts[1])
			if err != nil {
				return nil, err
			}
			points = append(points, p)
		}
	}
	return points, nil
}

// ReadPoints parses newline separated points in the form "x y". Blank
// lines are skipped.
func ReadPoints(r io.Reader) ([][2]float64, error) {
	var points [][2]float64
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		if len(parts) != 2 {
			return nil, errors.Errorf("line %d: want 2 coordinates, got %d", line, len(parts))
		}
		p, err := parsePoint(parts[0], parts[1])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return points, nil
}

func parsePoint(xs, ys string) ([2]float64, error) {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return [2]float64{}, errors.Wrapf(err, "invalid x value %q", xs)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return [2]float64{}, errors.Wrapf(err, "invalid y value %q", ys)
	}
	return [2]float64{x, y}, nil
}
