/*
DESCRIPTION
  workspace.go provides the per-frame buffers reused by the Detector.

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

// Workspace owns the rasters and tables one frame is processed through. It
// is sized once for the frame dimensions and reused for every frame; each
// stage overwrites its output completely before it is read.
type Workspace struct {
	Frame     *raster.RGB    // Source frame.
	Grey      *image.Gray    // Luminance.
	Binary    *image.Gray    // Foreground mask, dilated in place.
	Labels    *raster.Labels // Labels; condensed and selected in place.
	Output    *raster.RGB    // Colorized and annotated frame.
	Geometry  Geometry
	Survivors []uint16
}

// NewWorkspace returns a workspace for frames with the dimensions of r. All
// buffers have their origin at (0, 0).
func NewWorkspace(r image.Rectangle) *Workspace {
	r = image.Rect(0, 0, r.Dx(), r.Dy())
	return &Workspace{
		Frame:  raster.NewRGB(r),
		Grey:   raster.NewGrey(r),
		Binary: raster.NewGrey(r),
		Labels: raster.NewLabels(r),
		Output: raster.NewRGB(r),
	}
}

// Bounds returns the frame bounds the workspace was sized for.
func (w *Workspace) Bounds() image.Rectangle { return w.Frame.Rect }
