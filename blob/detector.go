/*
DESCRIPTION
  detector.go chains the segmentation stages into a per-frame detector.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package blob

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/ausocean/utils/logging"
	"github.com/pkg/errors"

	"github.com/ausocean/segmenter/blob/config"
	"github.com/ausocean/segmenter/raster"
)

// Result is the outcome of processing one frame. Its rasters and slices
// belong to the Detector's workspace and are only valid until the next call
// to Process.
type Result struct {
	Frame      *raster.RGB    // The source frame.
	Rendered   *raster.RGB    // Colorized, annotated selection.
	Labels     *raster.Labels // Condensed labels with rejected components zeroed.
	Components int            // Connected components found before selection.
	Geometry   *Geometry      // Bounds and areas of labels 1..Components.
	Survivors  []uint16       // Selected labels in increasing order.
	Duration   time.Duration  // Processing time.
}

// Detector extracts, selects and renders the components of successive
// frames of equal dimensions.
type Detector struct {
	log       logging.Logger
	thresh    Thresholder
	dilator   *Dilator // nil if dilation is disabled.
	labeler   Labeler
	condenser Condenser
	pred      Predicate
	palette   Palette
	box       color.RGBA
	caption   bool

	ws     *Workspace
	frames int
}

// NewDetector returns a Detector configured by c. c is validated, so unset
// fields take their defaults.
func NewDetector(c config.Config) (*Detector, error) {
	err := c.Validate()
	if err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	pol := Above
	if c.Polarity == config.PolarityBelow {
		pol = Below
	}

	d := &Detector{
		log: c.Logger,
		labeler: Labeler{
			Connectivity: Connectivity(c.Connectivity),
			Capacity:     int(c.LabelCapacity),
		},
		pred:    AreaRange(int(c.MinArea), int(c.MaxArea)),
		palette: NewPalette(int(c.LabelCapacity), c.ColourSeed),
		box:     BoxColour,
		caption: c.Caption,
	}

	switch c.Threshold {
	case config.ThresholdFixed:
		d.thresh = FixedThreshold{Cutoff: uint8(c.Cutoff), Polarity: pol}
	default:
		d.thresh = &AdaptiveThreshold{Window: int(c.AdaptiveWindow), Bias: c.AdaptiveBias, Polarity: pol}
	}

	switch c.DilationShape {
	case config.ShapeNone:
	case config.ShapeRect:
		d.dilator = &Dilator{Shape: Rect, Radius: int(c.DilationRadius)}
	case config.ShapeCross:
		d.dilator = &Dilator{Shape: Cross, Radius: int(c.DilationRadius)}
	default:
		d.dilator = &Dilator{Shape: Ellipse, Radius: int(c.DilationRadius)}
	}

	d.log.Debug("detector created",
		"threshold", fmt.Sprintf("%T", d.thresh),
		"connectivity", c.Connectivity,
		"capacity", c.LabelCapacity,
		"minArea", c.MinArea,
		"maxArea", c.MaxArea,
	)
	return d, nil
}

// SetPredicate replaces the selection predicate, by default an area range.
func (d *Detector) SetPredicate(p Predicate) { d.pred = p }

// Palette returns the label colour table.
func (d *Detector) Palette() Palette { return d.palette }

// Process runs the segmentation pipeline over img. The first frame fixes
// the frame dimensions; a later frame of other dimensions is a precondition
// violation.
func (d *Detector) Process(img image.Image) (*Result, error) {
	start := time.Now()
	if d.ws == nil {
		d.ws = NewWorkspace(img.Bounds())
		d.log.Debug("workspace created", "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	}
	n := d.frames
	d.frames++

	ws := d.ws
	err := raster.Convert(ws.Frame, img)
	if err != nil {
		return nil, errors.Wrapf(err, "frame %d: convert", n)
	}

	err = Grey(ws.Grey, ws.Frame)
	if err != nil {
		return nil, errors.Wrapf(err, "frame %d", n)
	}

	err = d.thresh.Threshold(ws.Binary, ws.Grey)
	if err != nil {
		return nil, errors.Wrapf(err, "frame %d", n)
	}

	if d.dilator != nil {
		err = d.dilator.Dilate(ws.Binary, ws.Binary)
		if err != nil {
			return nil, errors.Wrapf(err, "frame %d", n)
		}
	}

	labels, err := d.labeler.Label(ws.Labels, ws.Binary)
	if err != nil {
		return nil, errors.Wrapf(err, "frame %d", n)
	}

	k, err := d.condenser.Condense(ws.Labels, ws.Labels, labels)
	if err != nil {
		return nil, errors.Wrapf(err, "frame %d", n)
	}

	err = Measure(ws.Labels, k, &ws.Geometry)
	if err != nil {
		return nil, errors.Wrapf(err, "frame %d", n)
	}

	ws.Survivors, err = Select(ws.Labels, ws.Labels, k, &ws.Geometry, d.pred, ws.Survivors)
	if err != nil {
		return nil, errors.Wrapf(err, "frame %d", n)
	}

	err = Colorize(ws.Output, ws.Labels, d.palette)
	if err != nil {
		return nil, errors.Wrapf(err, "frame %d", n)
	}
	DrawBounds(ws.Output, &ws.Geometry, ws.Survivors, d.box)
	if d.caption {
		Caption(ws.Output, fmt.Sprintf("found %d components", len(ws.Survivors)), color.RGBA{0xff, 0xff, 0xff, 0xff})
	}

	r := &Result{
		Frame:      ws.Frame,
		Rendered:   ws.Output,
		Labels:     ws.Labels,
		Components: k,
		Geometry:   &ws.Geometry,
		Survivors:  ws.Survivors,
		Duration:   time.Since(start),
	}
	d.log.Debug("frame segmented", "frame", n, "provisional", d.labeler.eq.Len(), "components", k, "survivors", len(r.Survivors))
	return r, nil
}
