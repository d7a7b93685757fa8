/*
DESCRIPTION
  lex.go provides a lexer to extract separate JPEG images from a stream of
  concatenated JPEG images, such as an MJPEG file.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package mjpeg

import (
	"bufio"
	"fmt"
	"io"
)

// JPEG markers delimiting an image.
const (
	markerPrefix = 0xff
	markerSOI    = 0xd8
	markerEOI    = 0xd9
)

// Lexer splits a stream into JPEG images. Embedded images, such as EXIF
// thumbnails, are kept within their enclosing image.
type Lexer struct {
	r   *bufio.Reader
	buf []byte
}

// NewLexer returns a Lexer reading from src.
func NewLexer(src io.Reader) *Lexer {
	return &Lexer{r: bufio.NewReader(src)}
}

// Reset discards buffered data and continues from src.
func (l *Lexer) Reset(src io.Reader) {
	l.r.Reset(src)
}

// Next returns the next image. The returned slice is only valid until the
// next call to Next. Next returns io.EOF at a clean end of stream and
// io.ErrUnexpectedEOF if the stream ends within an image.
func (l *Lexer) Next() ([]byte, error) {
	var soi [2]byte
	n, err := io.ReadFull(l.r, soi[:])
	switch {
	case n == 0 && err == io.EOF:
		return nil, io.EOF
	case err == io.ErrUnexpectedEOF:
		return nil, io.ErrUnexpectedEOF
	case err != nil:
		return nil, err
	}
	if soi[0] != markerPrefix || soi[1] != markerSOI {
		return nil, fmt.Errorf("not JPEG frame start: %#v", soi)
	}

	l.buf = append(l.buf[:0], soi[:]...)
	depth := 1
	var last byte
	for {
		b, err := l.r.ReadByte()
		if err != nil {
			if err == io.EOF {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}
		l.buf = append(l.buf, b)

		if last == markerPrefix {
			switch b {
			case markerSOI:
				depth++
			case markerEOI:
				depth--
			}
		}
		if depth == 0 {
			return l.buf, nil
		}
		last = b
	}
}
