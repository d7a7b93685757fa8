/*
DESCRIPTION
  mjpeg.go provides an implementation of the FrameSource interface for MJPEG
  files.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package mjpeg provides an implementation of FrameSource for files of
// concatenated JPEG images.
package mjpeg

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/ausocean/segmenter/blob/config"
	"github.com/ausocean/segmenter/device"
	"github.com/ausocean/utils/logging"
)

// File is an implementation of the FrameSource interface for an MJPEG
// file.
type File struct {
	log  logging.Logger
	path string
	loop bool
	set  bool

	mu     sync.Mutex
	f      *os.File
	lex    *Lexer
	frames int // Frames decoded since the last rewind.
}

// New returns a new File.
func New(l logging.Logger) *File { return &File{log: l} }

// NewWith returns a new File with required params provided i.e. the Set
// method does not need to be called.
func NewWith(l logging.Logger, path string, loop bool) *File {
	return &File{log: l, path: path, loop: loop, set: true}
}

// Name returns the name of the device.
func (m *File) Name() string {
	return "MJPEG"
}

// Set uses the InputPath and Loop fields of c.
func (m *File) Set(c config.Config) error {
	if c.InputPath == "" {
		return device.MultiError{errors.New("no input path")}
	}
	m.path = c.InputPath
	m.loop = c.Loop
	m.set = true
	return nil
}

// Start opens the file.
func (m *File) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return errors.New("MJPEG file has not been set with config")
	}
	f, err := os.Open(m.path)
	if err != nil {
		return fmt.Errorf("could not open MJPEG file: %w", err)
	}
	m.f = f
	m.lex = NewLexer(f)
	m.frames = 0
	return nil
}

// Stop closes the file such that any further calls to Next fail.
func (m *File) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.f == nil {
		return nil
	}
	err := m.f.Close()
	m.f = nil
	return err
}

// IsRunning is used to determine if the File device is running.
func (m *File) IsRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.f != nil
}

// Next decodes the next image of the stream. Images that cannot be decoded
// are logged and skipped. At the end of the stream Next rewinds if looping,
// and otherwise returns io.EOF.
func (m *File) Next() (image.Image, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.f == nil {
		return nil, device.ErrNotStarted
	}

	for {
		b, err := m.lex.Next()
		if err == io.EOF && m.loop {
			if m.frames == 0 {
				return nil, fmt.Errorf("%s: %w", m.path, device.ErrNoFrames)
			}
			m.log.Info("looping input file")
			_, err = m.f.Seek(0, io.SeekStart)
			if err != nil {
				return nil, fmt.Errorf("could not seek to start of file for input loop: %w", err)
			}
			m.lex.Reset(m.f)
			m.frames = 0
			continue
		}
		if err != nil {
			return nil, err
		}

		img, err := imaging.Decode(bytes.NewReader(b), imaging.AutoOrientation(true))
		if err != nil {
			m.log.Warning("skipping undecodable frame", "len", len(b), "error", err.Error())
			continue
		}
		m.frames++
		return img, nil
	}
}
