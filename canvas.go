// seehuhn.de/go/spritegen - placeholder sprite sheet generator
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package spritegen

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/spritegen/raster"
)

// Canvas is the drawing surface for a single frame.  Coordinates are
// relative to the top-left corner of the frame, and everything drawn is
// clipped to the frame.
//
// Shapes are given by pixel rectangles in the usual [image.Rectangle]
// convention: Min is inclusive, Max is exclusive.
type Canvas struct {
	img       *image.RGBA
	r         *raster.Rasteriser
	frame     image.Rectangle
	antialias bool
}

// Size returns the width and height of the frame.
func (c *Canvas) Size() image.Point {
	return c.frame.Size()
}

// setFrame moves the canvas to a new frame of the sheet.
func (c *Canvas) setFrame(frame image.Rectangle) {
	c.frame = frame
	c.r.Reset(rect.Rect{
		LLx: float64(frame.Min.X),
		LLy: float64(frame.Min.Y),
		URx: float64(frame.Max.X),
		URy: float64(frame.Max.Y),
	})
	c.r.CTM = matrix.Matrix{1, 0, 0, 1, float64(frame.Min.X), float64(frame.Min.Y)}
}

// FillRect fills the rectangle r.
func (c *Canvas) FillRect(r image.Rectangle, fill color.RGBA) {
	if r.Empty() {
		return
	}
	c.r.FillNonZero(rectPath(&path.Data{}, r), c.paint(fill))
}

// FillEllipse fills the ellipse inscribed in r.
func (c *Canvas) FillEllipse(r image.Rectangle, fill color.RGBA) {
	if r.Empty() {
		return
	}
	c.r.FillNonZero(ellipsePath(&path.Data{}, r, 0), c.paint(fill))
}

// OutlineRect fills the rectangle r and draws an outline of the given
// width along the inside of its border.
func (c *Canvas) OutlineRect(r image.Rectangle, fill, outline color.RGBA, width int) {
	if width <= 0 {
		c.FillRect(r, fill)
		return
	}
	inner := r.Inset(width)
	if inner.Empty() {
		c.FillRect(r, outline)
		return
	}

	ring := rectPath(rectPath(&path.Data{}, r), inner)
	c.r.FillEvenOdd(ring, c.paint(outline))
	c.FillRect(inner, fill)
}

// OutlineEllipse fills the ellipse inscribed in r and draws an outline of
// the given width along the inside of its border.
func (c *Canvas) OutlineEllipse(r image.Rectangle, fill, outline color.RGBA, width int) {
	if r.Empty() {
		return
	}
	w := float64(width)
	if width <= 0 || 2*w >= float64(min(r.Dx(), r.Dy())) {
		if width > 0 {
			fill = outline
		}
		c.FillEllipse(r, fill)
		return
	}

	ring := ellipsePath(ellipsePath(&path.Data{}, r, 0), r, w)
	c.r.FillEvenOdd(ring, c.paint(outline))
	c.r.FillNonZero(ellipsePath(&path.Data{}, r, w), c.paint(fill))
}

// paint returns an emit function which applies col to the sheet with the
// given coverage.
func (c *Canvas) paint(col color.RGBA) raster.EmitFunc {
	return func(y, xMin int, coverage []float32) {
		off := c.img.PixOffset(xMin, y)
		pix := c.img.Pix[off : off+4*len(coverage) : off+4*len(coverage)]
		for i, cov := range coverage {
			if !c.antialias {
				if cov < 0.5 {
					continue
				}
				cov = 1
			}
			blendOver(pix[4*i:4*i+4], col, cov)
		}
	}
}

// blendOver composites col, scaled by coverage, over the premultiplied
// RGBA pixel dst.
func blendOver(dst []uint8, col color.RGBA, coverage float32) {
	if coverage >= 1 && col.A == 255 {
		dst[0], dst[1], dst[2], dst[3] = col.R, col.G, col.B, col.A
		return
	}
	keep := 1 - float32(col.A)/255*coverage
	mix := func(d, s uint8) uint8 {
		v := float32(s)*coverage + float32(d)*keep
		return uint8(min(v+0.5, 255))
	}
	dst[0] = mix(dst[0], col.R)
	dst[1] = mix(dst[1], col.G)
	dst[2] = mix(dst[2], col.B)
	dst[3] = mix(dst[3], col.A)
}

// rectPath appends the rectangle r to p.
func rectPath(p *path.Data, r image.Rectangle) *path.Data {
	return raster.AppendRect(p,
		float64(r.Min.X), float64(r.Min.Y), float64(r.Max.X), float64(r.Max.Y))
}

// ellipsePath appends the ellipse inscribed in r, shrunk by inset on each
// side, to p.
func ellipsePath(p *path.Data, r image.Rectangle, inset float64) *path.Data {
	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y) / 2
	rx := float64(r.Dx())/2 - inset
	ry := float64(r.Dy())/2 - inset
	return raster.AppendEllipse(p, cx, cy, rx, ry)
}
