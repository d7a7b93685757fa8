/*
DESCRIPTION
  variables.go contains a list of structs that provide a variable Name, type in
  a string format, a function for updating the variable in the Config struct
  from a string, and finally, a validation function to check the validity of the
  corresponding field value in the Config.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ausocean/utils/logging"
)

// Config map Keys.
const (
	KeyAdaptiveBias   = "AdaptiveBias"
	KeyAdaptiveWindow = "AdaptiveWindow"
	KeyCaption        = "Caption"
	KeyColourSeed     = "ColourSeed"
	KeyConnectivity   = "Connectivity"
	KeyCutoff         = "Cutoff"
	KeyDataset        = "Dataset"
	KeyDilationRadius = "DilationRadius"
	KeyDilationShape  = "DilationShape"
	KeyDisplay        = "Display"
	KeyInput          = "Input"
	KeyInputPath      = "InputPath"
	KeyLabelCapacity  = "LabelCapacity"
	KeyLogging        = "logging"
	KeyLoop           = "Loop"
	KeyMaxArea        = "MaxArea"
	KeyMinArea        = "MinArea"
	KeyOutputPath     = "OutputPath"
	KeyPace           = "Pace"
	KeyPolarity       = "Polarity"
	KeyReportPath     = "ReportPath"
	KeySuppress       = "Suppress"
	KeyThreshold      = "Threshold"
	KeyWatch          = "Watch"
)

// Config map parameter types.
const (
	typeString = "string"
	typeInt    = "int"
	typeUint   = "uint"
	typeBool   = "bool"
)

// Default variable values.
const (
	defaultAdaptiveBias   = 5
	defaultAdaptiveWindow = 15
	defaultColourSeed     = 1
	defaultConnectivity   = 8
	defaultCutoff         = 125
	defaultDilationRadius = 2
	defaultDilationShape  = ShapeEllipse
	defaultInput          = InputDir
	defaultLabelCapacity  = 11000
	defaultMaxArea        = 500
	defaultMinArea        = 50
	defaultPolarity       = PolarityAbove
	defaultThreshold      = ThresholdAdaptive
	defaultVerbosity      = logging.Info

	// Labels are 16 bit with 0 reserved for background.
	maxLabelCapacity = 65535
)

// Variables describes the variables that can be used for segmentation control.
// These structs provide the name and type of variable, a function for updating
// this variable in a Config, and a function for validating the value of the variable.
var Variables = []struct {
	Name     string
	Type     string
	Update   func(*Config, string)
	Validate func(*Config)
}{
	{
		Name:   KeyAdaptiveBias,
		Type:   typeInt,
		Update: func(c *Config, v string) { c.AdaptiveBias = parseInt(KeyAdaptiveBias, v, c) },
		Validate: func(c *Config) {
			if c.AdaptiveBias == 0 {
				c.LogInvalidField(KeyAdaptiveBias, defaultAdaptiveBias)
				c.AdaptiveBias = defaultAdaptiveBias
			}
		},
	},
	{
		Name:   KeyAdaptiveWindow,
		Type:   typeUint,
		Update: func(c *Config, v string) { c.AdaptiveWindow = parseUint(KeyAdaptiveWindow, v, c) },
		Validate: func(c *Config) {
			switch {
			case c.AdaptiveWindow < 3:
				c.LogInvalidField(KeyAdaptiveWindow, defaultAdaptiveWindow)
				c.AdaptiveWindow = defaultAdaptiveWindow
			case c.AdaptiveWindow%2 == 0:
				c.LogInvalidField(KeyAdaptiveWindow, c.AdaptiveWindow+1)
				c.AdaptiveWindow++
			}
		},
	},
	{
		Name:   KeyCaption,
		Type:   typeBool,
		Update: func(c *Config, v string) { c.Caption = parseBool(KeyCaption, v, c) },
	},
	{
		Name: KeyColourSeed,
		Type: typeInt,
		Update: func(c *Config, v string) {
			s, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				c.Logger.Warning("invalid ColourSeed param", "value", v)
			}
			c.ColourSeed = s
		},
		Validate: func(c *Config) {
			if c.ColourSeed == 0 {
				c.LogInvalidField(KeyColourSeed, defaultColourSeed)
				c.ColourSeed = defaultColourSeed
			}
		},
	},
	{
		Name:   KeyConnectivity,
		Type:   "enum:4,8",
		Update: func(c *Config, v string) { c.Connectivity = parseUint(KeyConnectivity, v, c) },
		Validate: func(c *Config) {
			if c.Connectivity != 4 && c.Connectivity != 8 {
				c.LogInvalidField(KeyConnectivity, defaultConnectivity)
				c.Connectivity = defaultConnectivity
			}
		},
	},
	{
		Name:   KeyCutoff,
		Type:   typeUint,
		Update: func(c *Config, v string) { c.Cutoff = parseUint(KeyCutoff, v, c) },
		Validate: func(c *Config) {
			if c.Cutoff == 0 || c.Cutoff > 255 {
				c.LogInvalidField(KeyCutoff, defaultCutoff)
				c.Cutoff = defaultCutoff
			}
		},
	},
	{
		Name:   KeyDataset,
		Type:   "enum:aquarium,bat,cell,piano",
		Update: func(c *Config, v string) { c.Dataset = strings.ToLower(v) },
		Validate: func(c *Config) {
			p, ok := Datasets[strings.ToLower(c.Dataset)]
			if !ok {
				return
			}
			if c.Threshold == NothingDefined {
				c.Threshold = p.Threshold
			}
			if c.Polarity == NothingDefined {
				c.Polarity = p.Polarity
			}
		},
	},
	{
		Name:   KeyDilationRadius,
		Type:   typeUint,
		Update: func(c *Config, v string) { c.DilationRadius = parseUint(KeyDilationRadius, v, c) },
		Validate: func(c *Config) {
			c.DilationRadius = lessThanOrEqual(KeyDilationRadius, c.DilationRadius, 0, c, defaultDilationRadius)
		},
	},
	{
		Name: KeyDilationShape,
		Type: "enum:ellipse,rect,cross,none",
		Update: func(c *Config, v string) {
			c.DilationShape = parseEnum(
				KeyDilationShape,
				v,
				map[string]uint8{"ellipse": ShapeEllipse, "rect": ShapeRect, "cross": ShapeCross, "none": ShapeNone},
				c,
			)
		},
		Validate: func(c *Config) {
			switch c.DilationShape {
			case ShapeEllipse, ShapeRect, ShapeCross, ShapeNone:
			default:
				c.LogInvalidField(KeyDilationShape, defaultDilationShape)
				c.DilationShape = defaultDilationShape
			}
		},
	},
	{
		Name:   KeyDisplay,
		Type:   typeBool,
		Update: func(c *Config, v string) { c.Display = parseBool(KeyDisplay, v, c) },
	},
	{
		Name: KeyInput,
		Type: "enum:dir,mjpeg",
		Update: func(c *Config, v string) {
			c.Input = parseEnum(KeyInput, v, map[string]uint8{"dir": InputDir, "mjpeg": InputMJPEG}, c)
		},
		Validate: func(c *Config) {
			switch c.Input {
			case InputDir, InputMJPEG:
			default:
				c.LogInvalidField(KeyInput, defaultInput)
				c.Input = defaultInput
			}
		},
	},
	{
		Name:   KeyInputPath,
		Type:   typeString,
		Update: func(c *Config, v string) { c.InputPath = v },
	},
	{
		Name:   KeyLabelCapacity,
		Type:   typeUint,
		Update: func(c *Config, v string) { c.LabelCapacity = parseUint(KeyLabelCapacity, v, c) },
		Validate: func(c *Config) {
			if c.LabelCapacity == 0 || c.LabelCapacity > maxLabelCapacity {
				c.LogInvalidField(KeyLabelCapacity, defaultLabelCapacity)
				c.LabelCapacity = defaultLabelCapacity
			}
		},
	},
	{
		Name: KeyLogging,
		Type: "enum:Debug,Info,Warning,Error,Fatal",
		Update: func(c *Config, v string) {
			switch v {
			case "Debug":
				c.LogLevel = logging.Debug
			case "Info":
				c.LogLevel = logging.Info
			case "Warning":
				c.LogLevel = logging.Warning
			case "Error":
				c.LogLevel = logging.Error
			case "Fatal":
				c.LogLevel = logging.Fatal
			default:
				c.Logger.Warning("invalid Logging param", "value", v)
			}
		},
		Validate: func(c *Config) {
			switch c.LogLevel {
			case logging.Debug, logging.Info, logging.Warning, logging.Error, logging.Fatal:
			default:
				c.LogInvalidField("LogLevel", defaultVerbosity)
				c.LogLevel = defaultVerbosity
			}
		},
	},
	{
		Name:   KeyLoop,
		Type:   typeBool,
		Update: func(c *Config, v string) { c.Loop = parseBool(KeyLoop, v, c) },
	},
	{
		Name:     KeyMinArea,
		Type:     typeUint,
		Update:   func(c *Config, v string) { c.MinArea = parseUint(KeyMinArea, v, c) },
		Validate: func(c *Config) { c.MinArea = lessThanOrEqual(KeyMinArea, c.MinArea, 0, c, defaultMinArea) },
	},
	{
		Name:   KeyMaxArea,
		Type:   typeUint,
		Update: func(c *Config, v string) { c.MaxArea = parseUint(KeyMaxArea, v, c) },
		Validate: func(c *Config) {
			if c.MaxArea >= c.MinArea {
				return
			}
			def := uint(defaultMaxArea)
			if def < c.MinArea {
				def = c.MinArea
			}
			c.LogInvalidField(KeyMaxArea, def)
			c.MaxArea = def
		},
	},
	{
		Name:   KeyOutputPath,
		Type:   typeString,
		Update: func(c *Config, v string) { c.OutputPath = v },
	},
	{
		Name:   KeyPace,
		Type:   typeBool,
		Update: func(c *Config, v string) { c.Pace = parseBool(KeyPace, v, c) },
	},
	{
		Name: KeyPolarity,
		Type: "enum:above,below",
		Update: func(c *Config, v string) {
			c.Polarity = parseEnum(KeyPolarity, v, map[string]uint8{"above": PolarityAbove, "below": PolarityBelow}, c)
		},
		Validate: func(c *Config) {
			switch c.Polarity {
			case PolarityAbove, PolarityBelow:
			default:
				c.LogInvalidField(KeyPolarity, defaultPolarity)
				c.Polarity = defaultPolarity
			}
		},
	},
	{
		Name:   KeyReportPath,
		Type:   typeString,
		Update: func(c *Config, v string) { c.ReportPath = v },
	},
	{
		Name:   KeySuppress,
		Type:   typeBool,
		Update: func(c *Config, v string) { c.Suppress = parseBool(KeySuppress, v, c) },
	},
	{
		Name: KeyThreshold,
		Type: "enum:fixed,adaptive",
		Update: func(c *Config, v string) {
			c.Threshold = parseEnum(KeyThreshold, v, map[string]uint8{"fixed": ThresholdFixed, "adaptive": ThresholdAdaptive}, c)
		},
		Validate: func(c *Config) {
			switch c.Threshold {
			case ThresholdFixed, ThresholdAdaptive:
			default:
				c.LogInvalidField(KeyThreshold, defaultThreshold)
				c.Threshold = defaultThreshold
			}
		},
	},
	{
		Name:   KeyWatch,
		Type:   typeBool,
		Update: func(c *Config, v string) { c.Watch = parseBool(KeyWatch, v, c) },
	},
}

func parseUint(n, v string, c *Config) uint {
	_v, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		c.Logger.Warning(fmt.Sprintf("expected unsigned int for param %s", n), "value", v)
	}
	return uint(_v)
}

func parseInt(n, v string, c *Config) int {
	_v, err := strconv.Atoi(v)
	if err != nil {
		c.Logger.Warning(fmt.Sprintf("expected integer for param %s", n), "value", v)
	}
	return _v
}

func parseBool(n, v string, c *Config) (b bool) {
	switch strings.ToLower(v) {
	case "true":
		b = true
	case "false":
		b = false
	default:
		c.Logger.Warning(fmt.Sprintf("expect bool for param %s", n), "value", v)
	}
	return
}

func parseEnum(n, v string, enums map[string]uint8, c *Config) uint8 {
	_v, ok := enums[strings.ToLower(v)]
	if !ok {
		c.Logger.Warning(fmt.Sprintf("invalid value for %s param", n), "value", v)
	}
	return _v
}

func lessThanOrEqual(n string, v, cmp uint, c *Config, def uint) uint {
	if v <= cmp {
		c.LogInvalidField(n, def)
		return def
	}
	return v
}
