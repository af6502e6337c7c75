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
	"errors"
	"fmt"
	"image/color"
)

// Config holds all parameters which control sprite sheet generation.
type Config struct {
	// Grid is the frame layout shared by every layer.
	Grid Grid

	// Palette holds the fixed colours of the built-in layers.
	Palette Palette

	// WalkRows, AttackRows and SpecialRows name the three animation bands.
	// Only AttackRows affects drawing: the weapon layer is restricted to it.
	WalkRows    RowRange
	AttackRows  RowRange
	SpecialRows RowRange

	// Antialias selects smooth shape edges.  If false, a pixel is painted
	// when at least half of it is covered, giving hard pixel-art edges.
	Antialias bool
}

// Palette lists the colours which do not depend on layer parameters.
// All colours are alpha-premultiplied, as for [color.RGBA].
type Palette struct {
	Skin     color.RGBA
	SkinDark color.RGBA // outline of skin parts
	Eye      color.RGBA
	Hair     color.RGBA
	Hat      color.RGBA
	Blade    color.RGBA
	Handle   color.RGBA
}

// RowRange is an inclusive range of grid rows.
type RowRange struct {
	First, Last int
}

// Contains reports whether row lies in the range.
func (rr RowRange) Contains(row int) bool {
	return row >= rr.First && row <= rr.Last
}

// Len returns the number of rows in the range.
func (rr RowRange) Len() int {
	return max(rr.Last-rr.First+1, 0)
}

// DefaultConfig returns the standard layout: 64×64 frames in 4 columns and
// 12 rows, with rows 0-3 for walking, 4-7 for attacks and 8-11 for special
// moves.
func DefaultConfig() Config {
	return Config{
		Grid: Grid{
			FrameWidth:  64,
			FrameHeight: 64,
			Columns:     4,
			Rows:        12,
		},
		Palette: Palette{
			Skin:     color.RGBA{255, 200, 160, 255},
			SkinDark: color.RGBA{200, 150, 120, 255},
			Eye:      color.RGBA{50, 50, 50, 255},
			Hair:     color.RGBA{80, 50, 20, 255},
			Hat:      color.RGBA{200, 0, 0, 255},
			Blade:    color.RGBA{192, 192, 192, 255},
			Handle:   color.RGBA{139, 69, 19, 255},
		},
		WalkRows:    RowRange{0, 3},
		AttackRows:  RowRange{4, 7},
		SpecialRows: RowRange{8, 11},
	}
}

// Validate checks that the configuration describes a usable grid.
// Row ranges may extend beyond the last row of the grid.
func (cfg Config) Validate() error {
	g := cfg.Grid
	if g.FrameWidth <= 0 || g.FrameHeight <= 0 {
		return fmt.Errorf("invalid frame size %dx%d", g.FrameWidth, g.FrameHeight)
	}
	if g.Columns <= 0 || g.Rows <= 0 {
		return fmt.Errorf("invalid grid %d columns x %d rows", g.Columns, g.Rows)
	}

	var errs []error
	for _, band := range []struct {
		name string
		rows RowRange
	}{
		{"walk", cfg.WalkRows},
		{"attack", cfg.AttackRows},
		{"special", cfg.SpecialRows},
	} {
		if band.rows.First < 0 || band.rows.Last < band.rows.First {
			errs = append(errs, fmt.Errorf("invalid %s rows %d-%d",
				band.name, band.rows.First, band.rows.Last))
		}
	}
	return errors.Join(errs...)
}
