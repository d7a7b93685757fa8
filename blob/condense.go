/*
DESCRIPTION
  condense.go provides renumbering of sparse component labels into a dense
  range starting at 1.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package blob

import (
	"github.com/pkg/errors"

	"github.com/ausocean/segmenter/raster"
)

// Condenser renumbers labels so that the k distinct non-zero labels present
// become 1..k, preserving their numeric order. Its lookup table is reused
// between calls.
type Condenser struct {
	table []uint16
}

// Condense writes the renumbered labels of src into dst and returns k.
// dst may alias src. labels is the number of distinct labels the caller
// expects in src; finding more is a precondition violation.
func (c *Condenser) Condense(dst, src *raster.Labels, labels int) (int, error) {
	err := checkSize(stageCondense, dst.Rect, src.Rect)
	if err != nil {
		return 0, err
	}

	if c.table == nil {
		c.table = make([]uint16, MaxCapacity+1)
	}
	clear(c.table)

	var top uint16
	for y := 0; y < src.Rect.Dy(); y++ {
		for _, v := range src.Row(y) {
			c.table[v] = 1
			if v > top {
				top = v
			}
		}
	}

	k := 0
	for v := 1; v <= int(top); v++ {
		if c.table[v] != 0 {
			k++
			c.table[v] = uint16(k)
		}
	}
	c.table[0] = 0
	if k > labels {
		return 0, errors.Wrapf(ErrLabelOverflow, "%s: found %d distinct labels, expected at most %d", stageCondense, k, labels)
	}

	for y := 0; y < src.Rect.Dy(); y++ {
		in := src.Row(y)
		out := dst.Row(y)
		for x, v := range in {
			out[x] = c.table[v]
		}
	}
	return k, nil
}

// Condense is a convenience wrapper around a new Condenser.
func Condense(dst, src *raster.Labels, labels int) (int, error) {
	var c Condenser
	return c.Condense(dst, src, labels)
}
