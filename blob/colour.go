/*
DESCRIPTION
  colour.go provides the label colour table and colorization of label
  rasters.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package blob

import (
	"image/color"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/ausocean/segmenter/raster"
)

// Background is the colour of label 0.
var Background = color.RGBA{0, 0, 0, 0xff}

// Palette maps a label to its colour. Entry 0 is Background.
type Palette []color.RGBA

// NewPalette returns a palette with entries for labels 0..n. Entries 1..n
// are pseudo-random colours drawn from seed, so equal seeds give equal
// palettes.
func NewPalette(n int, seed int64) Palette {
	rng := rand.New(rand.NewSource(seed))
	p := make(Palette, n+1)
	p[0] = Background
	for i := 1; i <= n; i++ {
		c := colorful.Hsv(360*rng.Float64(), 0.5+0.5*rng.Float64(), 0.5+0.5*rng.Float64())
		r, g, b := c.Clamped().RGB255()
		p[i] = color.RGBA{r, g, b, 0xff}
	}
	return p
}

// Colorize sets each pixel of dst to the palette colour of the
// corresponding label of src.
func Colorize(dst *raster.RGB, src *raster.Labels, p Palette) error {
	err := checkSize(stageColorize, dst.Rect, src.Rect)
	if err != nil {
		return err
	}
	for y := 0; y < src.Rect.Dy(); y++ {
		in := src.Row(y)
		out := dst.Row(y)
		for x, v := range in {
			if int(v) >= len(p) {
				return errors.Wrapf(ErrPaletteTooSmall, "%s: label %d, %d entries", stageColorize, v, len(p))
			}
			c := p[v]
			out[3*x], out[3*x+1], out[3*x+2] = c.R, c.G, c.B
		}
	}
	return nil
}
