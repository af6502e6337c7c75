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
	"iter"
)

// Grid describes the layout of frames in a sprite sheet.
type Grid struct {
	FrameWidth, FrameHeight int // size of one frame in pixels
	Columns, Rows           int // number of frames per row and column
}

// Cell identifies one frame of the grid.
type Cell struct {
	Row, Col int
}

// Bounds returns the pixel rectangle of the whole sheet.
func (g Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.FrameWidth*g.Columns, g.FrameHeight*g.Rows)
}

// Origin returns the top-left pixel of the cell.
func (g Grid) Origin(c Cell) image.Point {
	return image.Pt(c.Col*g.FrameWidth, c.Row*g.FrameHeight)
}

// Center returns the centre pixel of the cell.
func (g Grid) Center(c Cell) image.Point {
	return g.Origin(c).Add(image.Pt(g.FrameWidth/2, g.FrameHeight/2))
}

// Frame returns the pixel rectangle of the cell.
func (g Grid) Frame(c Cell) image.Rectangle {
	o := g.Origin(c)
	return image.Rectangle{Min: o, Max: o.Add(image.Pt(g.FrameWidth, g.FrameHeight))}
}

// Cells iterates over all cells in row-major order.
func (g Grid) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for row := range g.Rows {
			for col := range g.Columns {
				if !yield(Cell{Row: row, Col: col}) {
					return
				}
			}
		}
	}
}

// WalkOffset returns the vertical limb displacement for the given column of
// the four-frame walk cycle.  Frames 0 and 2 are neutral, frame 1 swings by
// -2 and frame 3 by +2 pixels.  Columns beyond the fourth repeat the cycle.
func WalkOffset(col int) int {
	switch col % 4 {
	case 1:
		return -2
	case 3:
		return 2
	default:
		return 0
	}
}
