/*
DESCRIPTION
  file.go provides an implementation of the FrameSource interface for a
  directory of image files.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package file provides an implementation of FrameSource for directories
// of still images.
package file

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/fsnotify/fsnotify"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/ausocean/segmenter/blob/config"
	"github.com/ausocean/segmenter/device"
	"github.com/ausocean/utils/logging"
)

// Extensions holds the lower case file extensions treated as frames.
var Extensions = map[string]bool{
	".bmp":  true,
	".gif":  true,
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".tif":  true,
	".tiff": true,
}

// IsFrame reports whether name has a frame file extension.
func IsFrame(name string) bool {
	return Extensions[strings.ToLower(filepath.Ext(name))]
}

// Dir is an implementation of the FrameSource interface for a directory of
// image files played in lexical order of their names.
type Dir struct {
	log   logging.Logger
	path  string
	loop  bool
	watch bool
	set   bool

	mu        sync.Mutex
	files     []string
	next      int
	isRunning bool
	watcher   *fsnotify.Watcher
	added     chan struct{} // Signalled when watching adds a file.
	done      chan struct{}
}

// New returns a new Dir.
func New(l logging.Logger) *Dir { return &Dir{log: l} }

// NewWith returns a new Dir with required params provided i.e. the Set
// method does not need to be called.
func NewWith(l logging.Logger, path string, loop, watch bool) *Dir {
	return &Dir{log: l, path: path, loop: loop, watch: watch, set: true}
}

// Name returns the name of the device.
func (d *Dir) Name() string {
	return "Dir"
}

// Set uses the InputPath, Loop and Watch fields of c.
func (d *Dir) Set(c config.Config) error {
	var errs device.MultiError
	if c.InputPath == "" {
		errs = append(errs, errors.New("no input path"))
	}
	d.path = c.InputPath
	d.loop = c.Loop
	d.watch = c.Watch
	d.set = true
	if errs != nil {
		return errs
	}
	return nil
}

// Start lists the frames of the directory. Unless watching, an empty
// directory is an error.
func (d *Dir) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.set {
		return errors.New("Dir has not been set with config")
	}

	entries, err := os.ReadDir(d.path)
	if err != nil {
		return fmt.Errorf("could not read frame directory: %w", err)
	}
	d.files = d.files[:0]
	for _, e := range entries {
		if e.Type().IsRegular() && IsFrame(e.Name()) {
			d.files = append(d.files, filepath.Join(d.path, e.Name()))
		}
	}
	sort.Strings(d.files)
	if len(d.files) == 0 && !d.watch {
		return fmt.Errorf("%s: %w", d.path, device.ErrNoFrames)
	}
	d.log.Info("frame directory opened", "path", d.path, "frames", len(d.files))

	d.next = 0
	d.added = make(chan struct{}, 1)
	d.done = make(chan struct{})
	if d.watch {
		d.watcher, err = fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("could not create watcher: %w", err)
		}
		err = d.watcher.Add(d.path)
		if err != nil {
			d.watcher.Close()
			return fmt.Errorf("could not watch frame directory: %w", err)
		}
		go d.watchDir(d.watcher, d.added, d.done)
	}
	d.isRunning = true
	return nil
}

// watchDir appends frame files created in the directory until done is
// closed.
func (d *Dir) watchDir(w *fsnotify.Watcher, added, done chan struct{}) {
	for {
		select {
		case <-done:
			return
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Create) || !IsFrame(ev.Name) {
				continue
			}
			d.mu.Lock()
			d.files = append(d.files, ev.Name)
			d.mu.Unlock()
			d.log.Debug("frame added", "file", ev.Name)
			select {
			case added <- struct{}{}:
			default:
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			d.log.Warning("watch error", "error", err.Error())
		}
	}
}

// Stop ends playback so that any further calls to Next fail.
func (d *Dir) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.isRunning {
		return nil
	}
	d.isRunning = false
	close(d.done)
	if d.watcher != nil {
		err := d.watcher.Close()
		d.watcher = nil
		if err != nil {
			return fmt.Errorf("could not close watcher: %w", err)
		}
	}
	return nil
}

// IsRunning is used to determine if the Dir device is running.
func (d *Dir) IsRunning() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.isRunning
}

// Next decodes and returns the next frame. Files that cannot be decoded are
// logged and skipped. At the end of the directory Next starts again if
// looping, waits for new files if watching, and otherwise returns io.EOF.
func (d *Dir) Next() (image.Image, error) {
	var failed int
	for {
		path, err := d.advance()
		if err != nil {
			return nil, err
		}

		img, err := imaging.Open(path, imaging.AutoOrientation(true))
		if err == nil {
			return img, nil
		}
		d.log.Warning("skipping unreadable frame", "file", path, "error", err.Error())

		failed++
		d.mu.Lock()
		n := len(d.files)
		d.mu.Unlock()
		if failed >= n && !d.watch {
			return nil, fmt.Errorf("no readable frames in %s: %w", d.path, device.ErrNoFrames)
		}
	}
}

// advance returns the path of the next frame file, blocking for new files
// when watching.
func (d *Dir) advance() (string, error) {
	for {
		d.mu.Lock()
		if !d.isRunning {
			d.mu.Unlock()
			return "", device.ErrNotStarted
		}
		if d.next >= len(d.files) && d.loop && len(d.files) != 0 && !d.watch {
			d.log.Info("looping input directory")
			d.next = 0
		}
		if d.next < len(d.files) {
			path := d.files[d.next]
			d.next++
			d.mu.Unlock()
			return path, nil
		}
		watch, added, done := d.watch, d.added, d.done
		d.mu.Unlock()

		if !watch {
			return "", io.EOF
		}
		select {
		case <-added:
		case <-done:
			return "", io.EOF
		}
	}
}
