/*
DESCRIPTION
  report.go records per frame segmentation statistics and summarises them
  as log output and a plot.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package report provides collection and presentation of segmentation
// statistics over a run.
package report

import (
	"errors"
	"fmt"
	"image/color"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ausocean/segmenter/blob"
	"github.com/ausocean/utils/logging"
)

// ErrEmpty is returned when summarising a recorder with no frames.
var ErrEmpty = errors.New("no frames recorded")

// Frame holds the statistics of one processed frame.
type Frame struct {
	Index      int
	Components int
	Survivors  int
	Duration   time.Duration
}

// Summary holds statistics over all recorded frames.
type Summary struct {
	Frames         int
	MeanComponents float64
	StdComponents  float64
	MeanSurvivors  float64
	StdSurvivors   float64
	MeanArea       float64 // Mean area of selected components.
	StdArea        float64
	MeanDuration   time.Duration
	MaxDuration    time.Duration
}

// Recorder accumulates frame statistics. It is safe for concurrent use.
type Recorder struct {
	log logging.Logger

	mu     sync.Mutex
	frames []Frame
	areas  []float64
}

// NewRecorder returns a new, empty Recorder.
func NewRecorder(l logging.Logger) *Recorder {
	return &Recorder{log: l}
}

// Add records the result of processing frame n.
func (r *Recorder) Add(n int, res *blob.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, Frame{
		Index:      n,
		Components: res.Components,
		Survivors:  len(res.Survivors),
		Duration:   res.Duration,
	})
	for _, l := range res.Survivors {
		r.areas = append(r.areas, float64(res.Geometry.Area(l)))
	}
}

// Frames returns a copy of the recorded frames.
func (r *Recorder) Frames() []Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Frame(nil), r.frames...)
}

// Summary returns statistics over the recorded frames.
func (r *Recorder) Summary() (Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.frames) == 0 {
		return Summary{}, ErrEmpty
	}

	comps := make([]float64, len(r.frames))
	survs := make([]float64, len(r.frames))
	durs := make([]float64, len(r.frames))
	var s Summary
	for i, f := range r.frames {
		comps[i] = float64(f.Components)
		survs[i] = float64(f.Survivors)
		durs[i] = float64(f.Duration)
		if f.Duration > s.MaxDuration {
			s.MaxDuration = f.Duration
		}
	}
	s.Frames = len(r.frames)
	s.MeanComponents, s.StdComponents = meanStdDev(comps)
	s.MeanSurvivors, s.StdSurvivors = meanStdDev(survs)
	if len(r.areas) != 0 {
		s.MeanArea, s.StdArea = meanStdDev(r.areas)
	}
	s.MeanDuration = time.Duration(stat.Mean(durs, nil))
	return s, nil
}

// meanStdDev returns the mean and sample standard deviation of x. The
// standard deviation of a single value is 0.
func meanStdDev(x []float64) (mean, std float64) {
	if len(x) == 1 {
		return x[0], 0
	}
	return stat.MeanStdDev(x, nil)
}

// Log writes the summary to the recorder's logger.
func (r *Recorder) Log() {
	s, err := r.Summary()
	if err != nil {
		r.log.Info("no frames processed")
		return
	}
	r.log.Info("run summary",
		"frames", s.Frames,
		"meanComponents", s.MeanComponents,
		"stdComponents", s.StdComponents,
		"meanSelected", s.MeanSurvivors,
		"stdSelected", s.StdSurvivors,
		"meanArea", s.MeanArea,
		"stdArea", s.StdArea,
		"meanDuration", s.MeanDuration.String(),
		"maxDuration", s.MaxDuration.String(),
	)
}

// Plot saves a plot of component counts per frame to path. The image
// format follows the file extension.
func (r *Recorder) Plot(path string) error {
	frames := r.Frames()
	if len(frames) == 0 {
		return ErrEmpty
	}

	p := plot.New()
	p.Title.Text = "Components per frame"
	p.X.Label.Text = "Frame"
	p.Y.Label.Text = "Components"

	comps := make(plotter.XYs, len(frames))
	survs := make(plotter.XYs, len(frames))
	for i, f := range frames {
		comps[i] = plotter.XY{X: float64(f.Index), Y: float64(f.Components)}
		survs[i] = plotter.XY{X: float64(f.Index), Y: float64(f.Survivors)}
	}

	for _, s := range []struct {
		label string
		xys   plotter.XYs
		col   color.Color
	}{
		{"found", comps, color.RGBA{0x1f, 0x77, 0xb4, 0xff}},
		{"selected", survs, color.RGBA{0xd6, 0x27, 0x28, 0xff}},
	} {
		l, err := plotter.NewLine(s.xys)
		if err != nil {
			return fmt.Errorf("could not create %s line: %w", s.label, err)
		}
		l.Color = s.col
		l.Width = vg.Points(1)
		p.Add(l)
		p.Legend.Add(s.label, l)
	}
	p.Legend.Top = true

	err := p.Save(8*vg.Inch, 4*vg.Inch, path)
	if err != nil {
		return fmt.Errorf("could not save plot: %w", err)
	}
	r.log.Info("wrote plot", "file", path)
	return nil
}
