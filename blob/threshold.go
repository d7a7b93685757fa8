/*
DESCRIPTION
  threshold.go provides binarization of greyscale rasters into foreground
  masks using either a fixed global cutoff or an adaptive local mean cutoff.

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

// Polarity selects which side of a cutoff is foreground.
type Polarity int

const (
	Above Polarity = iota // Foreground iff value > cutoff.
	Below                 // Foreground iff value <= cutoff.
)

// Thresholder is implemented by binarization strategies. Threshold writes
// 1 to dst for foreground pixels of src and 0 otherwise; every pixel of dst
// is written.
type Thresholder interface {
	Threshold(dst, src *image.Gray) error
}

// FixedThreshold compares every pixel against a single cutoff.
type FixedThreshold struct {
	Cutoff   uint8
	Polarity Polarity
}

// Threshold implements Thresholder. dst may alias src.
func (f FixedThreshold) Threshold(dst, src *image.Gray) error {
	err := checkSize(stageThreshold, dst.Rect, src.Rect)
	if err != nil {
		return err
	}

	var lut [256]uint8
	for v := range lut {
		if (v > int(f.Cutoff)) == (f.Polarity == Above) {
			lut[v] = 1
		}
	}

	for y := 0; y < src.Rect.Dy(); y++ {
		in := raster.GreyRow(src, y)
		out := raster.GreyRow(dst, y)
		for x, v := range in {
			out[x] = lut[v]
		}
	}
	return nil
}

// AdaptiveThreshold compares every pixel against the mean of the Window by
// Window square centred on it, less Bias. Where the window leaves the
// raster the nearest edge pixel is replicated.
//
// A pixel with value v is above its cutoff iff v > mean-Bias, evaluated
// exactly in integers as (v+Bias)*Window² > sum.
type AdaptiveThreshold struct {
	Window   int
	Bias     int
	Polarity Polarity

	rows []uint64 // Horizontal window sums, one per pixel.
	cols []uint64 // Running vertical sums of rows, one per column.
}

// Threshold implements Thresholder. dst may alias src.
func (a *AdaptiveThreshold) Threshold(dst, src *image.Gray) error {
	err := checkSize(stageThreshold, dst.Rect, src.Rect)
	if err != nil {
		return err
	}
	if a.Window < 1 || a.Window%2 == 0 {
		return errors.Wrapf(ErrBadParameter, "%s: window must be odd and positive, got %d", stageThreshold, a.Window)
	}

	w, h := src.Rect.Dx(), src.Rect.Dy()
	if w == 0 || h == 0 {
		return nil
	}
	r := a.Window / 2

	if cap(a.rows) < w*h {
		a.rows = make([]uint64, w*h)
	}
	a.rows = a.rows[:w*h]
	if cap(a.cols) < w {
		a.cols = make([]uint64, w)
	}
	a.cols = a.cols[:w]

	// Horizontal pass; a sliding window with clamped indices replicates
	// the border.
	for y := 0; y < h; y++ {
		in := raster.GreyRow(src, y)
		sums := a.rows[y*w : (y+1)*w]
		var s uint64
		for dx := -r; dx <= r; dx++ {
			s += uint64(in[clamp(dx, w)])
		}
		sums[0] = s
		for x := 1; x < w; x++ {
			s += uint64(in[clamp(x+r, w)])
			s -= uint64(in[clamp(x-r-1, w)])
			sums[x] = s
		}
	}

	// Vertical pass over the horizontal sums.
	for x := range a.cols {
		a.cols[x] = 0
	}
	for dy := -r; dy <= r; dy++ {
		row := a.rows[clamp(dy, h)*w:]
		for x := range a.cols {
			a.cols[x] += row[x]
		}
	}

	n := int64(a.Window) * int64(a.Window)
	above := a.Polarity == Above
	for y := 0; y < h; y++ {
		if y > 0 {
			add := a.rows[clamp(y+r, h)*w:]
			sub := a.rows[clamp(y-r-1, h)*w:]
			for x := range a.cols {
				a.cols[x] += add[x]
				a.cols[x] -= sub[x]
			}
		}

		in := raster.GreyRow(src, y)
		out := raster.GreyRow(dst, y)
		for x, v := range in {
			fg := (int64(v)+int64(a.Bias))*n > int64(a.cols[x])
			if fg == above {
				out[x] = 1
			} else {
				out[x] = 0
			}
		}
	}
	return nil
}

// clamp limits i to [0, n).
func clamp(i, n int) int {
	switch {
	case i < 0:
		return 0
	case i >= n:
		return n - 1
	default:
		return i
	}
}
