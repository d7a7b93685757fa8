/*
DESCRIPTION
  blob_test.go provides helpers shared by the blob package tests.

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
	"math/rand"
	"strings"

	"github.com/ausocean/segmenter/raster"
)

type dumbLogger struct{}

func (dl *dumbLogger) Log(l int8, m string, a ...interface{})  {}
func (dl *dumbLogger) SetLevel(l int8)                         {}
func (dl *dumbLogger) Debug(msg string, args ...interface{})   {}
func (dl *dumbLogger) Info(msg string, args ...interface{})    {}
func (dl *dumbLogger) Warning(msg string, args ...interface{}) {}
func (dl *dumbLogger) Error(msg string, args ...interface{})   {}
func (dl *dumbLogger) Fatal(msg string, args ...interface{})   {}

// mask returns a binary mask drawn with '#' for foreground and any other
// byte for background. All rows must have equal length.
func mask(rows ...string) *image.Gray {
	m := raster.NewGrey(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, r := range rows {
		for x := 0; x < len(r); x++ {
			if r[x] == '#' {
				m.Pix[y*m.Stride+x] = 1
			}
		}
	}
	return m
}

// draw renders a mask in the form accepted by mask.
func draw(m *image.Gray) string {
	var b strings.Builder
	for y := 0; y < m.Rect.Dy(); y++ {
		for _, v := range raster.GreyRow(m, y) {
			if v != 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// randomMask returns a w by h mask with foreground density p.
func randomMask(w, h int, p float64, seed int64) *image.Gray {
	rng := rand.New(rand.NewSource(seed))
	m := raster.NewGrey(image.Rect(0, 0, w, h))
	for i := range m.Pix {
		if rng.Float64() < p {
			m.Pix[i] = 1
		}
	}
	return m
}

// squares returns a black w by h frame with a white square of side s at
// each of the given top left corners.
func squares(w, h, s int, corners ...image.Point) *raster.RGB {
	f := raster.NewRGB(image.Rect(0, 0, w, h))
	f.Fill(color.RGBA{0, 0, 0, 0xff})
	for _, c := range corners {
		for y := c.Y; y < c.Y+s; y++ {
			for x := c.X; x < c.X+s; x++ {
				f.SetRGBA(x, y, color.RGBA{0xff, 0xff, 0xff, 0xff})
			}
		}
	}
	return f
}

// distinct returns the distinct non-zero labels of l.
func distinct(l *raster.Labels) map[uint16]int {
	seen := make(map[uint16]int)
	for _, v := range l.Pix {
		if v != 0 {
			seen[v]++
		}
	}
	return seen
}
