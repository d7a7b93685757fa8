/*
DESCRIPTION
  raster_test.go provides testing for the raster types and image conversion.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package raster

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRGBSetAt(t *testing.T) {
	p := NewRGB(image.Rect(0, 0, 4, 3))
	p.Set(2, 1, color.RGBA{10, 20, 30, 255})
	p.Set(9, 9, color.RGBA{1, 1, 1, 255}) // Outside; ignored.

	got := p.RGBAAt(2, 1)
	want := color.RGBA{10, 20, 30, 255}
	if got != want {
		t.Errorf("unexpected colour: got %v, want %v", got, want)
	}
	if !cmp.Equal(p.Row(1)[6:9], []uint8{10, 20, 30}) {
		t.Errorf("unexpected row contents: %v", p.Row(1))
	}
}

func TestFill(t *testing.T) {
	p := NewRGB(image.Rect(0, 0, 2, 2))
	p.Fill(color.RGBA{1, 2, 3, 255})
	want := []uint8{1, 2, 3, 1, 2, 3, 1, 2, 3, 1, 2, 3}
	if diff := cmp.Diff(want, p.Pix); diff != "" {
		t.Errorf("unexpected pixels (-want +got):\n%s", diff)
	}
}

func TestLabels(t *testing.T) {
	l := NewLabels(image.Rect(0, 0, 3, 2))
	l.Set(1, 1, 7)
	if got := l.At(1, 1); got != 7 {
		t.Errorf("got label %d, want 7", got)
	}
	if got := l.At(5, 5); got != 0 {
		t.Errorf("got label %d outside raster, want 0", got)
	}
	if !cmp.Equal(l.Row(1), []uint16{0, 7, 0}) {
		t.Errorf("unexpected row: %v", l.Row(1))
	}
	l.Clear()
	if !cmp.Equal(l.Pix, make([]uint16, 6)) {
		t.Errorf("labels not cleared: %v", l.Pix)
	}
}

func TestConvert(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.RGBA{255, 0, 0, 255})
	src.Set(1, 0, color.RGBA{0, 128, 64, 255})

	dst := NewRGB(image.Rect(0, 0, 2, 1))
	err := Convert(dst, src)
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	want := []uint8{255, 0, 0, 0, 128, 64}
	if diff := cmp.Diff(want, dst.Pix); diff != "" {
		t.Errorf("unexpected pixels (-want +got):\n%s", diff)
	}

	gray := image.NewGray(image.Rect(0, 0, 2, 1))
	gray.Pix[1] = 99
	err = Convert(dst, gray)
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	want = []uint8{0, 0, 0, 99, 99, 99}
	if diff := cmp.Diff(want, dst.Pix); diff != "" {
		t.Errorf("unexpected pixels for grey source (-want +got):\n%s", diff)
	}
}

func TestConvertSizeMismatch(t *testing.T) {
	err := Convert(NewRGB(image.Rect(0, 0, 2, 2)), image.NewRGBA(image.Rect(0, 0, 3, 2)))
	if !errors.Is(err, ErrSize) {
		t.Errorf("expected ErrSize, got %v", err)
	}
}
