/*
DESCRIPTION
  geometry.go provides single pass aggregation of bounding rectangles and
  areas for condensed component labels.

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

	"github.com/pkg/errors"

	"github.com/ausocean/segmenter/raster"
)

// Geometry holds the bounding rectangle and area of each condensed label.
// Index i describes label i+1. Rectangles are in raster coordinates with an
// exclusive Max, so Dx and Dy are the width and height.
type Geometry struct {
	Bounds []image.Rectangle
	Areas  []int
}

// Len returns the number of labels described.
func (g *Geometry) Len() int { return len(g.Areas) }

// Bound returns the bounding rectangle of label l, l >= 1.
func (g *Geometry) Bound(l uint16) image.Rectangle { return g.Bounds[l-1] }

// Area returns the pixel count of label l, l >= 1.
func (g *Geometry) Area(l uint16) int { return g.Areas[l-1] }

func (g *Geometry) reset(k int) {
	if cap(g.Bounds) < k {
		g.Bounds = make([]image.Rectangle, k)
		g.Areas = make([]int, k)
	}
	g.Bounds = g.Bounds[:k]
	g.Areas = g.Areas[:k]
	for i := range g.Areas {
		g.Bounds[i] = image.Rectangle{}
		g.Areas[i] = 0
	}
}

// Measure fills g with the bounds and area of labels 1..k of src in one
// pass. A label greater than k is a precondition violation.
func Measure(src *raster.Labels, k int, g *Geometry) error {
	g.reset(k)
	for y := 0; y < src.Rect.Dy(); y++ {
		py := y + src.Rect.Min.Y
		for x, v := range src.Row(y) {
			if v == 0 {
				continue
			}
			if int(v) > k {
				return errors.Wrapf(ErrNotCondensed, "%s: label %d at (%d, %d) with %d labels", stageMeasure, v, x+src.Rect.Min.X, py, k)
			}
			px := x + src.Rect.Min.X
			i := v - 1
			b := &g.Bounds[i]
			if g.Areas[i] == 0 {
				*b = image.Rect(px, py, px+1, py+1)
			} else {
				if px < b.Min.X {
					b.Min.X = px
				}
				if px >= b.Max.X {
					b.Max.X = px + 1
				}
				if py >= b.Max.Y {
					b.Max.Y = py + 1
				}
			}
			g.Areas[i]++
		}
	}
	return nil
}
