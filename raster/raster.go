/*
DESCRIPTION
  raster.go provides the pixel grids used by the segmentation pipeline: a
  three channel colour raster, a 16 bit label raster and helpers for single
  channel greyscale rasters.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package raster provides row-major pixel grids with 1, 3 or 16 bit elements.
package raster

import (
	"image"
	"image/color"
)

// RGB is a three channel, 8 bit per channel raster. Pixels are stored in R,
// G, B order. RGB implements draw.Image so it can be encoded and drawn on
// with the standard image packages.
type RGB struct {
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

// NewRGB returns a new RGB raster covering r.
func NewRGB(r image.Rectangle) *RGB {
	return &RGB{
		Pix:    make([]uint8, 3*r.Dx()*r.Dy()),
		Stride: 3 * r.Dx(),
		Rect:   r,
	}
}

func (p *RGB) ColorModel() color.Model { return color.RGBAModel }

func (p *RGB) Bounds() image.Rectangle { return p.Rect }

// Row returns the pixels of row y, relative to the top of the raster.
func (p *RGB) Row(y int) []uint8 {
	i := y * p.Stride
	return p.Pix[i : i+3*p.Rect.Dx() : i+3*p.Rect.Dx()]
}

func (p *RGB) At(x, y int) color.Color { return p.RGBAAt(x, y) }

// RGBAAt returns the colour at (x, y) as an opaque color.RGBA.
func (p *RGB) RGBAAt(x, y int) color.RGBA {
	if !(image.Point{x, y}.In(p.Rect)) {
		return color.RGBA{}
	}
	i := p.offset(x, y)
	s := p.Pix[i : i+3 : i+3]
	return color.RGBA{s[0], s[1], s[2], 0xff}
}

func (p *RGB) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	i := p.offset(x, y)
	c1 := color.RGBAModel.Convert(c).(color.RGBA)
	s := p.Pix[i : i+3 : i+3]
	s[0], s[1], s[2] = c1.R, c1.G, c1.B
}

// SetRGBA sets (x, y) to c, ignoring alpha.
func (p *RGB) SetRGBA(x, y int, c color.RGBA) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	i := p.offset(x, y)
	s := p.Pix[i : i+3 : i+3]
	s[0], s[1], s[2] = c.R, c.G, c.B
}

// Fill sets every pixel of p to c.
func (p *RGB) Fill(c color.RGBA) {
	for y := 0; y < p.Rect.Dy(); y++ {
		row := p.Row(y)
		for x := 0; x < len(row); x += 3 {
			row[x], row[x+1], row[x+2] = c.R, c.G, c.B
		}
	}
}

func (p *RGB) offset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

// Labels is a raster of 16 bit component labels. Label 0 is background.
type Labels struct {
	Pix    []uint16
	Stride int
	Rect   image.Rectangle
}

// NewLabels returns a new, zeroed, label raster covering r.
func NewLabels(r image.Rectangle) *Labels {
	return &Labels{
		Pix:    make([]uint16, r.Dx()*r.Dy()),
		Stride: r.Dx(),
		Rect:   r,
	}
}

func (l *Labels) Bounds() image.Rectangle { return l.Rect }

// Row returns the labels of row y, relative to the top of the raster.
func (l *Labels) Row(y int) []uint16 {
	i := y * l.Stride
	return l.Pix[i : i+l.Rect.Dx() : i+l.Rect.Dx()]
}

// At returns the label at (x, y), or 0 outside the raster.
func (l *Labels) At(x, y int) uint16 {
	if !(image.Point{x, y}.In(l.Rect)) {
		return 0
	}
	return l.Pix[(y-l.Rect.Min.Y)*l.Stride+x-l.Rect.Min.X]
}

func (l *Labels) Set(x, y int, v uint16) {
	if !(image.Point{x, y}.In(l.Rect)) {
		return
	}
	l.Pix[(y-l.Rect.Min.Y)*l.Stride+x-l.Rect.Min.X] = v
}

// Clear sets every label to background.
func (l *Labels) Clear() {
	for i := range l.Pix {
		l.Pix[i] = 0
	}
}

// NewGrey returns a new single channel raster covering r. Binary masks use
// the same type with pixel values 0 and 1.
func NewGrey(r image.Rectangle) *image.Gray {
	return image.NewGray(r)
}

// GreyRow returns the pixels of row y of g, relative to the top of g.
func GreyRow(g *image.Gray, y int) []uint8 {
	i := y * g.Stride
	return g.Pix[i : i+g.Rect.Dx() : i+g.Rect.Dx()]
}

// SameSize reports whether a and b have equal width and height.
func SameSize(a, b image.Rectangle) bool {
	return a.Dx() == b.Dx() && a.Dy() == b.Dy()
}
