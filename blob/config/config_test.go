/*
DESCRIPTION
  config_test.go provides testing for the Config struct methods (Validate and Update).

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package config

import (
	"testing"

	"github.com/ausocean/utils/logging"
	"github.com/google/go-cmp/cmp"
)

type dumbLogger struct{}

func (dl *dumbLogger) Log(l int8, m string, a ...interface{})  {}
func (dl *dumbLogger) SetLevel(l int8)                         {}
func (dl *dumbLogger) Debug(msg string, args ...interface{})   {}
func (dl *dumbLogger) Info(msg string, args ...interface{})    {}
func (dl *dumbLogger) Warning(msg string, args ...interface{}) {}
func (dl *dumbLogger) Error(msg string, args ...interface{})   {}
func (dl *dumbLogger) Fatal(msg string, args ...interface{})   {}

func TestValidate(t *testing.T) {
	dl := &dumbLogger{}

	want := Config{
		Logger:         dl,
		AdaptiveBias:   defaultAdaptiveBias,
		AdaptiveWindow: defaultAdaptiveWindow,
		ColourSeed:     defaultColourSeed,
		Connectivity:   defaultConnectivity,
		Cutoff:         defaultCutoff,
		DilationRadius: defaultDilationRadius,
		DilationShape:  defaultDilationShape,
		Input:          defaultInput,
		LabelCapacity:  defaultLabelCapacity,
		MaxArea:        defaultMaxArea,
		MinArea:        defaultMinArea,
		Polarity:       defaultPolarity,
		Threshold:      defaultThreshold,
	}

	got := Config{Logger: dl}
	err := (&got).Validate()
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}

	if !cmp.Equal(got, want) {
		t.Errorf("configs not equal\nwant: %v\ngot: %v", want, got)
	}
}

func TestValidateCorrections(t *testing.T) {
	dl := &dumbLogger{}
	tests := []struct {
		name string
		in   Config
		chk  func(c Config) bool
	}{
		{
			name: "even window rounded up",
			in:   Config{Logger: dl, AdaptiveWindow: 10},
			chk:  func(c Config) bool { return c.AdaptiveWindow == 11 },
		},
		{
			name: "bad connectivity",
			in:   Config{Logger: dl, Connectivity: 6},
			chk:  func(c Config) bool { return c.Connectivity == 8 },
		},
		{
			name: "four connectivity kept",
			in:   Config{Logger: dl, Connectivity: 4},
			chk:  func(c Config) bool { return c.Connectivity == 4 },
		},
		{
			name: "capacity beyond label range",
			in:   Config{Logger: dl, LabelCapacity: 70000},
			chk:  func(c Config) bool { return c.LabelCapacity == defaultLabelCapacity },
		},
		{
			name: "max area below min area",
			in:   Config{Logger: dl, MinArea: 800, MaxArea: 100},
			chk:  func(c Config) bool { return c.MinArea == 800 && c.MaxArea == 800 },
		},
		{
			name: "dataset preset",
			in:   Config{Logger: dl, Dataset: "Bat"},
			chk:  func(c Config) bool { return c.Threshold == ThresholdFixed && c.Polarity == PolarityAbove },
		},
		{
			name: "explicit threshold beats dataset",
			in:   Config{Logger: dl, Dataset: "aquarium", Threshold: ThresholdFixed},
			chk:  func(c Config) bool { return c.Threshold == ThresholdFixed && c.Polarity == PolarityBelow },
		},
	}

	for _, test := range tests {
		c := test.in
		err := c.Validate()
		if err != nil {
			t.Errorf("did not expect error for %q: %v", test.name, err)
			continue
		}
		if !test.chk(c) {
			t.Errorf("unexpected config for %q: %+v", test.name, c)
		}
	}
}

func TestValidateUnknownDataset(t *testing.T) {
	c := Config{Logger: &dumbLogger{}, Dataset: "opera"}
	if err := c.Validate(); err == nil {
		t.Error("expected error for unknown dataset")
	}
}

func TestUpdate(t *testing.T) {
	updateMap := map[string]string{
		"AdaptiveBias":   "-3",
		"AdaptiveWindow": "21",
		"Caption":        "true",
		"ColourSeed":     "42",
		"Connectivity":   "4",
		"Cutoff":         "90",
		"Dataset":        "Cell",
		"DilationRadius": "3",
		"DilationShape":  "cross",
		"Display":        "true",
		"Input":          "mjpeg",
		"InputPath":      "/inputpath",
		"LabelCapacity":  "20000",
		"logging":        "Error",
		"Loop":           "true",
		"MaxArea":        "900",
		"MinArea":        "10",
		"OutputPath":     "/outputpath",
		"Pace":           "true",
		"Polarity":       "below",
		"ReportPath":     "/report.png",
		"Suppress":       "true",
		"Threshold":      "fixed",
		"Watch":          "true",
	}

	dl := &dumbLogger{}
	want := Config{
		Logger:         dl,
		AdaptiveBias:   -3,
		AdaptiveWindow: 21,
		Caption:        true,
		ColourSeed:     42,
		Connectivity:   4,
		Cutoff:         90,
		Dataset:        "cell",
		DilationRadius: 3,
		DilationShape:  ShapeCross,
		Display:        true,
		Input:          InputMJPEG,
		InputPath:      "/inputpath",
		LabelCapacity:  20000,
		LogLevel:       logging.Error,
		Loop:           true,
		MaxArea:        900,
		MinArea:        10,
		OutputPath:     "/outputpath",
		Pace:           true,
		Polarity:       PolarityBelow,
		ReportPath:     "/report.png",
		Suppress:       true,
		Threshold:      ThresholdFixed,
		Watch:          true,
	}

	got := Config{Logger: dl}
	got.Update(updateMap)
	if !cmp.Equal(want, got) {
		t.Errorf("configs not equal\nwant: %v\ngot: %v", want, got)
	}
}
