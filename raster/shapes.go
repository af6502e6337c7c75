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

package raster

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa is the control point distance for approximating a quarter circle
// with a cubic Bézier curve.
const kappa = 0.5522847498

// AppendRect adds the rectangle with corners (x0, y0) and (x1, y1) to p as
// a closed subpath and returns p.
func AppendRect(p *path.Data, x0, y0, x1, y1 float64) *path.Data {
	return p.
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

// AppendEllipse adds an axis-aligned ellipse, approximated by four cubic
// Bézier curves, to p as a closed subpath and returns p.
func AppendEllipse(p *path.Data, cx, cy, rx, ry float64) *path.Data {
	kx := rx * kappa
	ky := ry * kappa
	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }

	return p.
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)).
		Close()
}

// Rect returns a new path holding a single rectangle.
func Rect(x0, y0, x1, y1 float64) *path.Data {
	return AppendRect(&path.Data{}, x0, y0, x1, y1)
}

// Ellipse returns a new path holding a single ellipse.
func Ellipse(cx, cy, rx, ry float64) *path.Data {
	return AppendEllipse(&path.Data{}, cx, cy, rx, ry)
}
