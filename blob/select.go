/*
DESCRIPTION
  select.go provides predicate based selection of component labels.

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

// Predicate reports whether label should be kept. The geometry of the
// frame is passed explicitly.
type Predicate func(label uint16, g *Geometry) bool

// All keeps every label.
func All(uint16, *Geometry) bool { return true }

// AreaRange keeps labels whose area lies in [lo, hi].
func AreaRange(lo, hi int) Predicate {
	return func(l uint16, g *Geometry) bool {
		a := g.Area(l)
		return a >= lo && a <= hi
	}
}

// Select writes src into dst with every label failing p set to 0, and
// returns the surviving labels 1..labels in increasing order, appended to
// survivors[:0]. Labels are not renumbered. dst may alias src.
func Select(dst, src *raster.Labels, labels int, g *Geometry, p Predicate, survivors []uint16) ([]uint16, error) {
	err := checkSize(stageSelect, dst.Rect, src.Rect)
	if err != nil {
		return survivors[:0], err
	}

	if labels > g.Len() {
		return survivors[:0], errors.Wrapf(ErrNotCondensed, "%s: %d labels with geometry for %d", stageSelect, labels, g.Len())
	}

	keep := make([]bool, labels+1)
	survivors = survivors[:0]
	for l := 1; l <= labels; l++ {
		if p(uint16(l), g) {
			keep[l] = true
			survivors = append(survivors, uint16(l))
		}
	}

	for y := 0; y < src.Rect.Dy(); y++ {
		in := src.Row(y)
		out := dst.Row(y)
		for x, v := range in {
			if int(v) > labels {
				return survivors[:0], errors.Wrapf(ErrNotCondensed, "%s: label %d with %d labels", stageSelect, v, labels)
			}
			if keep[v] {
				out[x] = v
			} else {
				out[x] = 0
			}
		}
	}
	return survivors, nil
}
