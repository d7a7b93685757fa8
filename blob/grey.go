/*
DESCRIPTION
  grey.go provides reduction of colour rasters to single channel luminance.

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

	"github.com/ausocean/segmenter/raster"
)

// Grey writes the unweighted mean of the three channels of each pixel of
// src into dst, truncated toward zero.
func Grey(dst *image.Gray, src *raster.RGB) error {
	err := checkSize(stageGrey, dst.Rect, src.Rect)
	if err != nil {
		return err
	}
	for y := 0; y < src.Rect.Dy(); y++ {
		in := src.Row(y)
		out := raster.GreyRow(dst, y)
		for x := range out {
			i := 3 * x
			out[x] = uint8((uint(in[i]) + uint(in[i+1]) + uint(in[i+2])) / 3)
		}
	}
	return nil
}
