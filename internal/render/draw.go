package render

import (
	"image"
	"io"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/geopredicates/internal/pck"
)

// Grey levels for each sign.
var shades = map[pck.Sign]float64{
	pck.Negative: 0,
	pck.Zero:     0.5,
	pck.Positive: 1,
}

func (m *SignMap) draw() *gg.Context {
	c := gg.NewContext(m.Width, m.Height)
	for j := 0; j < m.Height; j++ {
		for i := 0; i < m.Width; i++ {
			v := shades[m.At(i, j)]
			c.SetRGB(v, v, v)
			c.SetPixel(i, j)
		}
	}
	return c
}

// Image renders the map in greyscale: black for Negative, grey for Zero
// and white for Positive.
func (m *SignMap) Image() image.Image {
	return m.draw().Image()
}

func (m *SignMap) SavePNG(path string) error {
	return m.draw().SavePNG(path)
}

// Preview prints a saved PNG inline to an iTerm compatible terminal.
func Preview(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}
