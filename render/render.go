/*
DESCRIPTION
  render.go provides the Renderer interface and renderers that write
  segmented frames to image files.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package render provides outputs for segmented frames.
package render

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"go.uber.org/multierr"

	"github.com/ausocean/segmenter/blob"
	"github.com/ausocean/utils/logging"
)

// Renderer presents a source frame together with its segmentation.
type Renderer interface {
	// Render presents src and r. r is only valid for the duration of the
	// call.
	Render(src image.Image, r *blob.Result) error

	// Close releases any resources held by the Renderer.
	Close() error
}

// File writes each segmented frame as a numbered PNG file.
type File struct {
	log    logging.Logger
	dir    string
	source bool
	n      int
}

// NewFile returns a File writing into dir, creating it if needed. If source
// is true the source frame is also written, with a "source-" prefix.
func NewFile(l logging.Logger, dir string, source bool) (*File, error) {
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return nil, fmt.Errorf("could not create output directory: %w", err)
	}
	return &File{log: l, dir: dir, source: source}, nil
}

// Render implements Renderer.
func (f *File) Render(src image.Image, r *blob.Result) error {
	name := filepath.Join(f.dir, fmt.Sprintf("frame-%05d.png", f.n))
	err := imaging.Save(r.Rendered, name)
	if err != nil {
		return fmt.Errorf("could not save segmented frame: %w", err)
	}
	if f.source {
		err = imaging.Save(src, filepath.Join(f.dir, fmt.Sprintf("source-%05d.png", f.n)))
		if err != nil {
			return fmt.Errorf("could not save source frame: %w", err)
		}
	}
	f.log.Debug("wrote frame", "file", name)
	f.n++
	return nil
}

// Close implements Renderer.
func (f *File) Close() error { return nil }

// Multi fans out to several Renderers.
type Multi []Renderer

// Render calls Render on every Renderer, returning the combined errors.
func (m Multi) Render(src image.Image, r *blob.Result) error {
	var err error
	for _, rn := range m {
		err = multierr.Append(err, rn.Render(src, r))
	}
	return err
}

// Close closes every Renderer, returning the combined errors.
func (m Multi) Close() error {
	var err error
	for _, rn := range m {
		err = multierr.Append(err, rn.Close())
	}
	return err
}
