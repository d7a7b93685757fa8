/*
DESCRIPTION
  render_test.go provides testing for the file renderers.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package render

import (
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"go.uber.org/multierr"

	"github.com/ausocean/segmenter/blob"
	"github.com/ausocean/segmenter/raster"
	"github.com/ausocean/utils/logging"
)

func result() (image.Image, *blob.Result) {
	src := raster.NewRGB(image.Rect(0, 0, 6, 4))
	src.SetRGBA(1, 1, color.RGBA{0xff, 0xff, 0xff, 0xff})
	out := raster.NewRGB(src.Rect)
	out.SetRGBA(1, 1, color.RGBA{0x10, 0x20, 0x30, 0xff})
	return src, &blob.Result{Frame: src, Rendered: out}
}

func TestFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	f, err := NewFile((*logging.TestLogger)(t), dir, true)
	if err != nil {
		t.Fatalf("could not create renderer: %v", err)
	}
	src, r := result()
	for i := 0; i < 2; i++ {
		err = f.Render(src, r)
		if err != nil {
			t.Fatalf("could not render frame %d: %v", i, err)
		}
	}
	err = f.Close()
	if err != nil {
		t.Errorf("could not close renderer: %v", err)
	}

	for _, name := range []string{"frame-00000.png", "frame-00001.png", "source-00001.png"} {
		img, err := imaging.Open(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("could not open %s: %v", name, err)
			continue
		}
		if img.Bounds().Dx() != 6 || img.Bounds().Dy() != 4 {
			t.Errorf("%s: unexpected bounds %v", name, img.Bounds())
		}
	}

	img, err := imaging.Open(filepath.Join(dir, "frame-00001.png"))
	if err != nil {
		t.Fatalf("could not open frame: %v", err)
	}
	rr, g, b, _ := img.At(1, 1).RGBA()
	if rr>>8 != 0x10 || g>>8 != 0x20 || b>>8 != 0x30 {
		t.Errorf("unexpected pixel: %d %d %d", rr>>8, g>>8, b>>8)
	}
}

type failing struct{ err error }

func (f failing) Render(image.Image, *blob.Result) error { return f.err }
func (f failing) Close() error                           { return f.err }

type counting struct{ renders, closes int }

func (c *counting) Render(image.Image, *blob.Result) error { c.renders++; return nil }
func (c *counting) Close() error                           { c.closes++; return nil }

func TestMulti(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")
	c := &counting{}
	m := Multi{failing{errA}, c, failing{errB}}

	src, r := result()
	err := m.Render(src, r)
	if got := multierr.Errors(err); len(got) != 2 || got[0] != errA || got[1] != errB {
		t.Errorf("unexpected errors: %v", got)
	}
	err = m.Close()
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("unexpected close error: %v", err)
	}
	if c.renders != 1 || c.closes != 1 {
		t.Errorf("renderer after a failure was not called: %+v", c)
	}

	err = Multi{c}.Render(src, r)
	if err != nil {
		t.Errorf("did not expect error: %v", err)
	}
}
