/*
DESCRIPTION
  convert.go provides conversion of arbitrary decoded images into RGB rasters.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package raster

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
)

// ErrSize is returned when two rasters that must have equal dimensions do not.
var ErrSize = errors.New("raster dimensions do not match")

// Convert overwrites dst with the pixels of src. Alpha is discarded.
func Convert(dst *RGB, src image.Image) error {
	b := src.Bounds()
	if !SameSize(dst.Rect, b) {
		return errors.Wrapf(ErrSize, "cannot convert %v image into %v raster", b, dst.Rect)
	}

	switch s := src.(type) {
	case *RGB:
		for y := 0; y < b.Dy(); y++ {
			copy(dst.Row(y), s.Row(y))
		}
	case *image.RGBA:
		for y := 0; y < b.Dy(); y++ {
			in := s.Pix[y*s.Stride : y*s.Stride+4*b.Dx()]
			out := dst.Row(y)
			for x, o := 0, 0; x < len(in); x, o = x+4, o+3 {
				out[o], out[o+1], out[o+2] = in[x], in[x+1], in[x+2]
			}
		}
	case *image.YCbCr:
		for y := 0; y < b.Dy(); y++ {
			out := dst.Row(y)
			for x := 0; x < b.Dx(); x++ {
				c := s.YCbCrAt(b.Min.X+x, b.Min.Y+y)
				out[3*x], out[3*x+1], out[3*x+2] = color.YCbCrToRGB(c.Y, c.Cb, c.Cr)
			}
		}
	default:
		for y := 0; y < b.Dy(); y++ {
			out := dst.Row(y)
			for x := 0; x < b.Dx(); x++ {
				r, g, bl, _ := src.At(b.Min.X+x, b.Min.Y+y).RGBA()
				out[3*x], out[3*x+1], out[3*x+2] = uint8(r>>8), uint8(g>>8), uint8(bl>>8)
			}
		}
	}
	return nil
}

// FromImage returns a new RGB raster holding the pixels of src, with its
// origin at (0, 0).
func FromImage(src image.Image) *RGB {
	dst := NewRGB(image.Rect(0, 0, src.Bounds().Dx(), src.Bounds().Dy()))
	Convert(dst, src) // Sizes match by construction.
	return dst
}
