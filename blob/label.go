/*
DESCRIPTION
  label.go provides connected component labeling of binary masks using a
  two pass raster scan with an array backed equivalence set.

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
	"math"

	"github.com/pkg/errors"

	"github.com/ausocean/segmenter/raster"
)

// Connectivity is the number of neighbours a pixel is adjacent to.
type Connectivity int

const (
	Four  Connectivity = 4 // Orthogonal neighbours.
	Eight Connectivity = 8 // Orthogonal and diagonal neighbours.
)

// MaxCapacity is the largest number of provisional labels one frame may use.
const MaxCapacity = math.MaxUint16

// Equivalence is a union-find over provisional labels 1..n, indexed by
// label. The representative of a class is always its smallest label.
// Label 0 is background and is never merged.
type Equivalence struct {
	parent   []uint16
	capacity int
}

// Reset discards all labels and sets the number of labels Add may issue.
func (e *Equivalence) Reset(capacity int) {
	if capacity > MaxCapacity {
		capacity = MaxCapacity
	}
	if cap(e.parent) < capacity+1 {
		e.parent = make([]uint16, 1, capacity+1)
	}
	e.parent = e.parent[:1]
	e.parent[0] = 0
	e.capacity = capacity
}

// Add issues the next label in its own class. It returns ErrLabelOverflow
// once capacity labels have been issued.
func (e *Equivalence) Add() (uint16, error) {
	l := len(e.parent)
	if l > e.capacity {
		return 0, errors.Wrapf(ErrLabelOverflow, "capacity %d", e.capacity)
	}
	e.parent = append(e.parent, uint16(l))
	return uint16(l), nil
}

// Find returns the representative of l's class.
func (e *Equivalence) Find(l uint16) uint16 {
	p := e.parent
	for p[l] != l {
		p[l] = p[p[l]]
		l = p[l]
	}
	return l
}

// Union merges the classes of a and b under the smaller representative.
func (e *Equivalence) Union(a, b uint16) {
	ra, rb := e.Find(a), e.Find(b)
	switch {
	case ra < rb:
		e.parent[rb] = ra
	case rb < ra:
		e.parent[ra] = rb
	}
}

// Len returns the number of labels issued since the last Reset.
func (e *Equivalence) Len() int { return len(e.parent) - 1 }

// Roots returns the number of distinct classes.
func (e *Equivalence) Roots() int {
	n := 0
	for l := 1; l < len(e.parent); l++ {
		if e.parent[l] == uint16(l) {
			n++
		}
	}
	return n
}

// Labeler assigns component labels to foreground pixels so that two pixels
// share a label iff they are connected. Labels are the smallest provisional
// label of each component and need not be contiguous.
type Labeler struct {
	Connectivity Connectivity
	Capacity     int // Maximum provisional labels per frame.

	eq Equivalence
}

// Label writes labels for the non-zero pixels of src into dst, and 0 for
// the rest. It returns the number of distinct labels written.
func (l *Labeler) Label(dst *raster.Labels, src *image.Gray) (int, error) {
	err := checkSize(stageLabel, dst.Rect, src.Rect)
	if err != nil {
		return 0, err
	}
	if l.Connectivity != Four && l.Connectivity != Eight {
		return 0, errors.Wrapf(ErrBadParameter, "%s: connectivity %d", stageLabel, l.Connectivity)
	}
	if l.Capacity < 1 || l.Capacity > MaxCapacity {
		return 0, errors.Wrapf(ErrBadParameter, "%s: capacity %d", stageLabel, l.Capacity)
	}

	l.eq.Reset(l.Capacity)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	diag := l.Connectivity == Eight

	// First pass: provisional labels, recording collisions.
	var nb [4]uint16
	for y := 0; y < h; y++ {
		in := raster.GreyRow(src, y)
		out := dst.Row(y)
		var up []uint16
		if y > 0 {
			up = dst.Row(y - 1)
		}
		for x, v := range in {
			if v == 0 {
				out[x] = 0
				continue
			}

			n := 0
			if x > 0 && out[x-1] != 0 {
				nb[n] = out[x-1]
				n++
			}
			if up != nil {
				if up[x] != 0 {
					nb[n] = up[x]
					n++
				}
				if diag && x > 0 && up[x-1] != 0 {
					nb[n] = up[x-1]
					n++
				}
				if diag && x+1 < w && up[x+1] != 0 {
					nb[n] = up[x+1]
					n++
				}
			}

			if n == 0 {
				lbl, err := l.eq.Add()
				if err != nil {
					return 0, errors.Wrapf(err, "%s: at (%d, %d)", stageLabel, x+src.Rect.Min.X, y+src.Rect.Min.Y)
				}
				out[x] = lbl
				continue
			}

			least := nb[0]
			for _, lbl := range nb[1:n] {
				if lbl < least {
					least = lbl
				}
			}
			out[x] = least
			for _, lbl := range nb[:n] {
				if lbl != least {
					l.eq.Union(least, lbl)
				}
			}
		}
	}

	// Second pass: resolve to class representatives.
	for y := 0; y < h; y++ {
		out := dst.Row(y)
		for x, v := range out {
			if v != 0 {
				out[x] = l.eq.Find(v)
			}
		}
	}
	return l.eq.Roots(), nil
}
