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

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/spritegen/raster"
)

// A CellDrawer draws the contents of one frame of a layer.
//
// DrawCell is called once for every frame of the sheet.  The canvas is
// positioned on the frame, animOffset is the walk cycle displacement
// for the frame's column (see [WalkOffset]).
type CellDrawer interface {
	DrawCell(c *Canvas, cell Cell, animOffset int)
}

// CellDrawerFunc adapts an ordinary function to the CellDrawer interface.
type CellDrawerFunc func(c *Canvas, cell Cell, animOffset int)

// DrawCell calls f(c, cell, animOffset).
func (f CellDrawerFunc) DrawCell(c *Canvas, cell Cell, animOffset int) {
	f(c, cell, animOffset)
}

// A RowFilter is a CellDrawer which only draws into some rows.
// Rows for which DrawsRow returns false stay transparent.
type RowFilter interface {
	DrawsRow(row int) bool
}

// Painter renders layers onto sprite sheets of a fixed grid.
//
// A Painter reuses its internal buffers and is not safe for concurrent use.
type Painter struct {
	cfg Config
	r   *raster.Rasteriser
}

// NewPainter returns a Painter for the given configuration.
func NewPainter(cfg Config) (*Painter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Painter{
		cfg: cfg,
		r:   raster.NewRasteriser(rect.Rect{}),
	}, nil
}

// Config returns the configuration of the painter.
func (p *Painter) Config() Config {
	return p.cfg
}

// Paint renders d into every frame of a new, fully transparent sheet.
func (p *Painter) Paint(d CellDrawer) *image.RGBA {
	g := p.cfg.Grid
	img := image.NewRGBA(g.Bounds())
	c := &Canvas{
		img:       img,
		r:         p.r,
		antialias: p.cfg.Antialias,
	}

	filter, _ := d.(RowFilter)
	for cell := range g.Cells() {
		if filter != nil && !filter.DrawsRow(cell.Row) {
			continue
		}
		c.setFrame(g.Frame(cell))
		d.DrawCell(c, cell, WalkOffset(cell.Col))
	}
	return img
}

// PaintFile renders d and writes the sheet to a PNG file.
// See [Save] for the errors returned.
func (p *Painter) PaintFile(path string, d CellDrawer) error {
	return Save(path, p.Paint(d))
}
