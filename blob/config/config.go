/*
NAME
  config.go

DESCRIPTION
  config.go defines the configuration settings for the blob segmentation
  pipeline and the programs that drive it.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package config contains the configuration settings for blob segmentation.
package config

import (
	"fmt"
	"strings"

	"github.com/ausocean/utils/logging"
)

// Enums to define threshold modes, polarities, structuring elements and inputs.
const (
	// Indicates no option has been set.
	NothingDefined = iota

	// Threshold modes.
	ThresholdFixed
	ThresholdAdaptive

	// Polarities; which side of the cutoff is foreground.
	PolarityAbove
	PolarityBelow

	// Structuring element shapes.
	ShapeEllipse
	ShapeRect
	ShapeCross
	ShapeNone

	// Inputs.
	InputDir
	InputMJPEG
)

// Preset is the threshold strategy selected by a named data set.
type Preset struct {
	Threshold uint8
	Polarity  uint8
}

// Datasets maps the recognised data set names to their threshold strategy.
// Data sets carry no other calibration.
var Datasets = map[string]Preset{
	"aquarium": {Threshold: ThresholdAdaptive, Polarity: PolarityBelow},
	"bat":      {Threshold: ThresholdFixed, Polarity: PolarityAbove},
	"cell":     {Threshold: ThresholdAdaptive, Polarity: PolarityAbove},
	"piano":    {Threshold: ThresholdFixed, Polarity: PolarityBelow},
}

// Config provides parameters for blob segmentation. A Config should be
// validated before use; Validate defaults any unset or bad fields.
type Config struct {
	// AdaptiveBias is subtracted from the local mean to form the per-pixel
	// cutoff of the adaptive threshold.
	AdaptiveBias int

	// AdaptiveWindow is the side length of the square window the adaptive
	// threshold takes its local mean over. It must be odd and at least 3.
	AdaptiveWindow uint

	Caption    bool  // Caption draws the surviving component count on rendered frames.
	ColourSeed int64 // Seed for the label colour table.

	// Connectivity is 4 (orthogonal neighbours) or 8 (orthogonal and
	// diagonal neighbours).
	Connectivity uint

	// Cutoff is the fixed threshold cutoff, 1-255.
	Cutoff uint

	// Dataset names a data set whose threshold strategy is used when
	// Threshold and Polarity are not set. See Datasets.
	Dataset string

	DilationRadius uint  // Radius of the dilation structuring element.
	DilationShape  uint8 // One of ShapeEllipse, ShapeRect, ShapeCross or ShapeNone.
	Display        bool  // Display shows source and segmented frames in windows (withcv builds only).

	// Input defines the frame source.
	//
	// Valid values are defined by enums:
	// InputDir:
	//		Read image files from the directory at InputPath in name order.
	// InputMJPEG:
	//		Read JPEG frames from the MJPEG file at InputPath.
	Input     uint8
	InputPath string

	// LabelCapacity is the maximum number of provisional labels in one frame.
	LabelCapacity uint

	// Logger holds an implementation of the Logger interface. This must be set
	// for the pipeline to work correctly.
	Logger logging.Logger

	// LogLevel is the logging verbosity level.
	// Valid values are defined by enums from the logger package: logging.Debug,
	// logging.Info, logging.Warning logging.Error, logging.Fatal.
	LogLevel int8

	Loop bool // If true the frame source restarts at the first frame after the last.

	MaxArea uint // Largest area, in pixels, of a component kept by the area filter.
	MinArea uint // Smallest area, in pixels, of a component kept by the area filter.

	OutputPath string // Directory rendered frames are written to. Empty disables file output.
	Pace       bool   // If true wait for a newline on stdin after each frame.
	Polarity   uint8  // One of PolarityAbove or PolarityBelow.
	ReportPath string // File the components-per-frame plot is written to. Empty disables the plot.
	Suppress   bool   // Holds logger suppression state.
	Threshold  uint8  // One of ThresholdFixed or ThresholdAdaptive.
	Watch      bool   // If true new image files in the input directory are appended to the sequence.
}

// Validate checks for any errors in the config fields and defaults settings
// if particular parameters have not been defined. An unknown data set is an
// error.
func (c *Config) Validate() error {
	if c.Dataset != "" {
		if _, ok := Datasets[strings.ToLower(c.Dataset)]; !ok {
			return fmt.Errorf("unknown dataset: %q", c.Dataset)
		}
	}
	for _, v := range Variables {
		if v.Validate != nil {
			v.Validate(c)
		}
	}
	return nil
}

// Update takes a map of configuration variable names and their corresponding
// values, parses the string values and converting into correct type, and then
// sets the config struct fields as appropriate.
func (c *Config) Update(vars map[string]string) {
	for _, value := range Variables {
		if v, ok := vars[value.Name]; ok && value.Update != nil {
			value.Update(c, v)
		}
	}
}

func (c *Config) LogInvalidField(name string, def interface{}) {
	c.Logger.Info(name+" bad or unset, defaulting", name, def)
}
