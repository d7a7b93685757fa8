/*
DESCRIPTION
  annotate.go draws bounding boxes and captions onto rendered frames.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package blob

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ausocean/segmenter/raster"
)

// BoxColour is the default bounding box colour.
var BoxColour = color.RGBA{0, 0, 0xff, 0xff}

// DrawBounds outlines, one pixel wide, the bounding rectangle of each of
// labels on dst. The outline lies on the outermost pixels of the component.
func DrawBounds(dst *raster.RGB, g *Geometry, labels []uint16, c color.RGBA) {
	for _, l := range labels {
		b := g.Bound(l)
		if b.Empty() {
			continue
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.SetRGBA(x, b.Min.Y, c)
			dst.SetRGBA(x, b.Max.Y-1, c)
		}
		for y := b.Min.Y; y < b.Max.Y; y++ {
			dst.SetRGBA(b.Min.X, y, c)
			dst.SetRGBA(b.Max.X-1, y, c)
		}
	}
}

// Caption writes text in the top left corner of dst.
func Caption(dst *raster.RGB, text string, c color.RGBA) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(dst.Rect.Min.X+4, dst.Rect.Min.Y+face.Ascent+4),
	}
	d.DrawString(text)
}
