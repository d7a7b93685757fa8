//go:build withcv
// +build withcv

/*
DESCRIPTION
  window.go displays source and segmented frames in OpenCV windows.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package render

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/ausocean/segmenter/blob"
	"github.com/ausocean/segmenter/raster"
	"github.com/ausocean/utils/logging"
)

// Window names.
const (
	SourceWindow    = "source"
	SegmentedWindow = "segmented"
)

// Window shows each source frame and its segmentation side by side.
type Window struct {
	log       logging.Logger
	source    *gocv.Window
	segmented *gocv.Window
}

// NewWindow opens the display windows.
func NewWindow(l logging.Logger) (*Window, error) {
	return &Window{
		log:       l,
		source:    gocv.NewWindow(SourceWindow),
		segmented: gocv.NewWindow(SegmentedWindow),
	}, nil
}

// Render implements Renderer.
func (w *Window) Render(src image.Image, r *blob.Result) error {
	frame := r.Frame
	if frame == nil {
		frame = raster.FromImage(src)
	}
	im, err := matFromRGB(frame)
	if err != nil {
		return fmt.Errorf("could not convert source frame: %w", err)
	}
	defer im.Close()
	seg, err := matFromRGB(r.Rendered)
	if err != nil {
		return fmt.Errorf("could not convert segmented frame: %w", err)
	}
	defer seg.Close()

	w.source.IMShow(im)
	w.segmented.IMShow(seg)
	w.source.WaitKey(1)
	return nil
}

// matFromRGB returns a BGR Mat holding a copy of p.
func matFromRGB(p *raster.RGB) (gocv.Mat, error) {
	width, height := p.Rect.Dx(), p.Rect.Dy()
	buf := p.Pix[:3*width*height]
	if p.Stride != 3*width {
		buf = make([]uint8, 3*width*height)
		for y := 0; y < height; y++ {
			copy(buf[3*width*y:3*width*(y+1)], p.Pix[y*p.Stride:])
		}
	}
	m, err := gocv.NewMatFromBytes(height, width, gocv.MatTypeCV8UC3, buf)
	if err != nil {
		return gocv.NewMat(), err
	}
	defer m.Close()
	bgr := gocv.NewMat()
	gocv.CvtColor(m, &bgr, gocv.ColorRGBToBGR)
	return bgr, nil
}

// Close frees resources used by gocv.
func (w *Window) Close() error {
	err := w.source.Close()
	if err != nil {
		return err
	}
	return w.segmented.Close()
}
