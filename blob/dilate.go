/*
DESCRIPTION
  dilate.go provides morphological dilation of binary masks.

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

// Shape is the shape of a structuring element.
type Shape int

const (
	Ellipse Shape = iota // Disk of the given radius.
	Rect                 // Square of side 2*radius+1.
	Cross                // Horizontal and vertical bars of length 2*radius+1.
)

// spans returns, for each row offset dy in [-r, r], the largest |dx| such
// that (dx, dy) lies in the structuring element.
func (s Shape) spans(r int) []int {
	sp := make([]int, 2*r+1)
	for dy := -r; dy <= r; dy++ {
		switch s {
		case Rect:
			sp[dy+r] = r
		case Cross:
			if dy == 0 {
				sp[dy+r] = r
			}
		default:
			sp[dy+r] = isqrt(r*r - dy*dy)
		}
	}
	return sp
}

// isqrt returns floor(sqrt(n)) for n >= 0.
func isqrt(n int) int {
	x := 0
	for (x+1)*(x+1) <= n {
		x++
	}
	return x
}

// Dilator grows foreground regions of a binary mask. A pixel of the output
// is foreground iff any input pixel under the structuring element centred
// on it is foreground. Pixels outside the mask are background.
type Dilator struct {
	Shape  Shape
	Radius int

	dist []int32 // Per pixel distance to the nearest foreground pixel in the same row.
}

// Dilate writes the dilation of src into dst. dst may alias src. A radius
// of 0 copies src.
func (d *Dilator) Dilate(dst, src *image.Gray) error {
	err := checkSize(stageDilate, dst.Rect, src.Rect)
	if err != nil {
		return err
	}
	if d.Radius < 0 {
		return errors.Wrapf(ErrBadParameter, "%s: negative radius %d", stageDilate, d.Radius)
	}

	w, h := src.Rect.Dx(), src.Rect.Dy()
	if d.Radius == 0 {
		for y := 0; y < h; y++ {
			copy(raster.GreyRow(dst, y), raster.GreyRow(src, y))
		}
		return nil
	}

	if cap(d.dist) < w*h {
		d.dist = make([]int32, w*h)
	}
	d.dist = d.dist[:w*h]

	// Row distances are taken from src before dst is touched, so that dst
	// may alias src.
	far := int32(w + d.Radius + 1)
	for y := 0; y < h; y++ {
		in := raster.GreyRow(src, y)
		dist := d.dist[y*w : (y+1)*w]
		last := -far
		for x := 0; x < w; x++ {
			if in[x] != 0 {
				last = int32(x)
			}
			dist[x] = int32(x) - last
		}
		last = int32(w) + far
		for x := w - 1; x >= 0; x-- {
			if in[x] != 0 {
				last = int32(x)
			}
			if dr := last - int32(x); dr < dist[x] {
				dist[x] = dr
			}
		}
	}

	spans := d.Shape.spans(d.Radius)
	for y := 0; y < h; y++ {
		out := raster.GreyRow(dst, y)
		for x := range out {
			out[x] = 0
		}
		for dy := -d.Radius; dy <= d.Radius; dy++ {
			yy := y + dy
			if yy < 0 || yy >= h {
				continue
			}
			span := int32(spans[dy+d.Radius])
			dist := d.dist[yy*w : (yy+1)*w]
			for x, dd := range dist {
				if dd <= span {
					out[x] = 1
				}
			}
		}
	}
	return nil
}
