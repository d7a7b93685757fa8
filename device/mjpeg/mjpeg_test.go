/*
DESCRIPTION
  mjpeg_test.go provides testing for the JPEG lexer and the MJPEG
  FrameSource.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package mjpeg

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/ausocean/segmenter/device"
	"github.com/ausocean/utils/logging"
)

var lexTests = []struct {
	name  string
	input []byte
	want  [][]byte
	err   error
}{
	{
		name: "empty",
		err:  io.EOF,
	},
	{
		name:  "null",
		input: []byte{0xff, 0xd8, 0xff, 0xd9},
		want:  [][]byte{{0xff, 0xd8, 0xff, 0xd9}},
		err:   io.EOF,
	},
	{
		name: "full",
		input: []byte{
			0xff, 0xd8, 'f', 'u', 'l', 'l', 0xff, 0xd9,
			0xff, 0xd8, 'f', 'r', 'a', 'm', 'e', 0xff, 0xd9,
			0xff, 0xd8, 'w', 'i', 't', 'h', 0xff, 0xd9,
		},
		want: [][]byte{
			{0xff, 0xd8, 'f', 'u', 'l', 'l', 0xff, 0xd9},
			{0xff, 0xd8, 'f', 'r', 'a', 'm', 'e', 0xff, 0xd9},
			{0xff, 0xd8, 'w', 'i', 't', 'h', 0xff, 0xd9},
		},
		err: io.EOF,
	},
	{
		name: "nested",
		input: []byte{
			0xff, 0xd8, 'o', 0xff, 0xd8, 'i', 0xff, 0xd9, 'o', 0xff, 0xd9,
			0xff, 0xd8, 'x', 0xff, 0xd9,
		},
		want: [][]byte{
			{0xff, 0xd8, 'o', 0xff, 0xd8, 'i', 0xff, 0xd9, 'o', 0xff, 0xd9},
			{0xff, 0xd8, 'x', 0xff, 0xd9},
		},
		err: io.EOF,
	},
	{
		name:  "truncated",
		input: []byte{0xff, 0xd8, 'a', 0xff, 0xd9, 0xff, 0xd8, 'b'},
		want:  [][]byte{{0xff, 0xd8, 'a', 0xff, 0xd9}},
		err:   io.ErrUnexpectedEOF,
	},
	{
		name:  "half marker",
		input: []byte{0xff, 0xd8, 'a', 0xff, 0xd9, 0xff},
		want:  [][]byte{{0xff, 0xd8, 'a', 0xff, 0xd9}},
		err:   io.ErrUnexpectedEOF,
	},
	{
		name:  "garbage",
		input: []byte{'n', 'o'},
		err:   fmt.Errorf("not JPEG frame start: %#v", [2]byte{'n', 'o'}),
	},
}

func TestLex(t *testing.T) {
	for _, test := range lexTests {
		l := NewLexer(bytes.NewReader(test.input))
		var got [][]byte
		var err error
		for {
			var b []byte
			b, err = l.Next()
			if err != nil {
				break
			}
			got = append(got, append([]byte(nil), b...))
		}
		if fmt.Sprint(err) != fmt.Sprint(test.err) {
			t.Errorf("unexpected error for %q: got:%v want:%v", test.name, err, test.err)
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("unexpected result for %q:\ngot :%#v\nwant:%#v", test.name, got, test.want)
		}
	}
}

// writeMJPEG writes an MJPEG file of frames of the given widths.
func writeMJPEG(t *testing.T, widths ...int) string {
	t.Helper()
	var buf bytes.Buffer
	for _, w := range widths {
		err := imaging.Encode(&buf, image.NewGray(image.Rect(0, 0, w, 8)), imaging.JPEG)
		if err != nil {
			t.Fatalf("could not encode frame: %v", err)
		}
	}
	path := filepath.Join(t.TempDir(), "test.mjpeg")
	err := os.WriteFile(path, buf.Bytes(), 0o644)
	if err != nil {
		t.Fatalf("could not write file: %v", err)
	}
	return path
}

func TestFile(t *testing.T) {
	path := writeMJPEG(t, 8, 16, 24)

	for _, loop := range []bool{false, true} {
		m := NewWith((*logging.TestLogger)(t), path, loop)
		if m.IsRunning() {
			t.Error("device is running, when it should not be")
		}
		err := m.Start()
		if err != nil {
			t.Fatalf("could not start device: %v", err)
		}
		if !m.IsRunning() {
			t.Error("device isn't running, when it should be")
		}

		want := []int{8, 16, 24}
		if loop {
			want = append(want, 8, 16)
		}
		for i, w := range want {
			img, err := m.Next()
			if err != nil {
				t.Fatalf("loop %t: could not get frame %d: %v", loop, i, err)
			}
			if img.Bounds().Dx() != w {
				t.Errorf("loop %t: frame %d has width %d, want %d", loop, i, img.Bounds().Dx(), w)
			}
		}
		if !loop {
			_, err = m.Next()
			if err != io.EOF {
				t.Errorf("expected io.EOF at end of file, got: %v", err)
			}
		}

		err = m.Stop()
		if err != nil {
			t.Fatalf("could not stop device: %v", err)
		}
		_, err = m.Next()
		if !errors.Is(err, device.ErrNotStarted) {
			t.Errorf("expected not started error, got: %v", err)
		}
	}
}

func TestFileEmptyLoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.mjpeg")
	err := os.WriteFile(path, nil, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	m := NewWith((*logging.TestLogger)(t), path, true)
	err = m.Start()
	if err != nil {
		t.Fatalf("could not start device: %v", err)
	}
	defer m.Stop()
	_, err = m.Next()
	if !errors.Is(err, device.ErrNoFrames) {
		t.Errorf("expected no frames error, got: %v", err)
	}
}
