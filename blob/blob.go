/*
NAME
  blob.go

DESCRIPTION
  blob.go holds the errors and small shared helpers of the blob package.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package blob extracts connected foreground components from frames.
//
// A frame passes through greyscale reduction, binarization, dilation,
// connected component labeling, label condensation, geometry aggregation,
// label selection and colorization. Each stage is usable on its own; the
// Detector chains them over a reusable Workspace.
package blob

import (
	"image"

	"github.com/pkg/errors"

	"github.com/ausocean/segmenter/raster"
)

// Precondition violations. Stages wrap these with the name of the stage
// that failed; use errors.Is to test for them.
var (
	ErrDimensionMismatch = raster.ErrSize
	ErrLabelOverflow     = errors.New("provisional label capacity exceeded")
	ErrNotCondensed      = errors.New("label outside condensed range")
	ErrPaletteTooSmall   = errors.New("label has no colour table entry")
	ErrBadParameter      = errors.New("bad stage parameter")
)

// Stage names used in error context.
const (
	stageGrey      = "grey"
	stageThreshold = "threshold"
	stageDilate    = "dilate"
	stageLabel     = "label"
	stageCondense  = "condense"
	stageMeasure   = "measure"
	stageSelect    = "select"
	stageColorize  = "colorize"
)

func checkSize(stage string, dst, src image.Rectangle) error {
	if raster.SameSize(dst, src) {
		return nil
	}
	return errors.Wrapf(ErrDimensionMismatch, "%s: dst %v, src %v", stage, dst, src)
}
