package main

import (
	"os"
	"testing"

	"github.com/osuushi/geopredicates"
	"github.com/osuushi/geopredicates/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	geopredicates.Initialize()
	code := m.Run()
	geopredicates.Terminate()
	os.Exit(code)
}

func options(size int, start, points string) gridOptions {
	return gridOptions{size: &size, start: &start, points: &points}
}

func TestGridOptions(t *testing.T) {
	g, err := options(16, "1.5, -2", "").grid()
	require.NoError(t, err)
	assert.Equal(t, render.Grid{Start: [2]float64{1.5, -2}, Width: 16, Height: 16}, g)

	_, err = options(0, "0.5,0.5", "").grid()
	assert.Error(t, err)
	_, err = options(16, "0.5", "").grid()
	assert.Error(t, err)
	_, err = options(16, "0.5,y", "").grid()
	assert.Error(t, err)
}

func TestSignMapFromDefaultScene(t *testing.T) {
	m, err := signMap(render.Orient2D, render.Robust, options(4, "0.5,0.5", ""))
	require.NoError(t, err)
	_, zero, _ := m.Counts()
	assert.Equal(t, 4, zero)
}

func TestRunStats(t *testing.T) {
	before := geopredicates.Stats().Total().Calls()
	require.NoError(t, runStats(64, 3, 7))
	after := geopredicates.Stats()
	assert.Greater(t, after.Total().Calls(), before)
	assert.NotZero(t, after[0].Calls())
}
