/*
DESCRIPTION
  device.go provides FrameSource, an interface that describes a configurable
  source of video frames that can be started and stopped.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package device provides an interface and implementations for frame
// sources that can be started and stopped from which decoded frames can be
// obtained.
package device

import (
	"fmt"
	"image"
	"io"
	"sync"

	"github.com/pkg/errors"

	"github.com/ausocean/segmenter/blob/config"
)

var (
	// ErrNoFrames is returned by Start when a source has nothing to play.
	ErrNoFrames = errors.New("no frames available")

	// ErrNotStarted is returned by Next before Start or after Stop.
	ErrNotStarted = errors.New("frame source not started")
)

// FrameSource describes a configurable source of decoded frames. Next
// returns io.EOF once a non-looping source is exhausted.
type FrameSource interface {
	// Name returns the name of the FrameSource.
	Name() string

	// Set configures the FrameSource from c. An implementation should
	// specify which fields it considers.
	Set(c config.Config) error

	// Start prepares the FrameSource so that Next may be called.
	Start() error

	// Stop releases the resources held by the FrameSource. From this point
	// calls to Next fail, and a blocked call to Next returns.
	Stop() error

	// IsRunning is used to determine if the source is running.
	IsRunning() bool

	// Next returns the next frame.
	Next() (image.Image, error)
}

// MultiError collects the errors found while validating the configuration
// of a FrameSource.
type MultiError []error

func (me MultiError) Error() string {
	if len(me) == 0 {
		panic("device: invalid use of MultiError")
	}
	return fmt.Sprintf("%v", []error(me))
}

// Manual is a FrameSource whose frames are pushed through software. Each
// Push blocks until the frame is taken by Next or the source is stopped.
type Manual struct {
	mu        sync.Mutex
	isRunning bool
	frames    chan image.Image
	done      chan struct{}
}

// NewManual provides a new Manual.
func NewManual() *Manual { return &Manual{} }

// Name returns the name of Manual i.e. "Manual".
func (m *Manual) Name() string { return "Manual" }

// Set is a stub to satisfy the FrameSource interface; no configuration
// fields are used by Manual.
func (m *Manual) Set(c config.Config) error { return nil }

// Start readies the source for Push and Next.
func (m *Manual) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.frames = make(chan image.Image)
	m.done = make(chan struct{})
	m.isRunning = true
	return nil
}

// Stop ends the source. Calls to Next, blocked or later, return io.EOF.
func (m *Manual) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.isRunning {
		close(m.done)
	}
	m.isRunning = false
	return nil
}

// IsRunning returns whether Start has been called, and Stop has not been
// called after.
func (m *Manual) IsRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.isRunning
}

// Push hands img to the next call to Next.
func (m *Manual) Push(img image.Image) error {
	frames, done, err := m.chans()
	if err != nil {
		return err
	}
	select {
	case frames <- img:
		return nil
	case <-done:
		return ErrNotStarted
	}
}

// Next implements FrameSource.
func (m *Manual) Next() (image.Image, error) {
	frames, done, err := m.chans()
	if err != nil {
		return nil, err
	}
	select {
	case img := <-frames:
		return img, nil
	case <-done:
		return nil, io.EOF
	}
}

// chans returns the channels of the current or last run. done is closed
// once the source is stopped.
func (m *Manual) chans() (chan image.Image, chan struct{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.done == nil {
		return nil, nil, ErrNotStarted
	}
	return m.frames, m.done, nil
}
