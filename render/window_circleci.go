//go:build !withcv
// +build !withcv

/*
DESCRIPTION
  Replaces the OpenCV display window for builds without OpenCV installed.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package render

import (
	"image"

	"github.com/ausocean/segmenter/blob"
	"github.com/ausocean/utils/logging"
)

// Window discards frames in builds without OpenCV.
type Window struct{}

// NewWindow returns a Window that displays nothing.
func NewWindow(l logging.Logger) (*Window, error) {
	l.Warning("built without withcv tag, frames will not be displayed")
	return &Window{}, nil
}

// Render implements Renderer.
func (w *Window) Render(src image.Image, r *blob.Result) error { return nil }

// Close implements Renderer.
func (w *Window) Close() error { return nil }
