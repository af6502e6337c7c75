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
)

// The character is laid out around the centre (cx, cy) of the frame.
// The head centre is headLift pixels above it.
const headLift = 8

// box returns the pixel rectangle spanning x0..x1 and y0..y1, both ends
// included.
func box(x0, y0, x1, y1 int) image.Rectangle {
	return image.Rect(x0, y0, x1+1, y1+1)
}

// anchor returns the frame centre and the vertical position of the head
// centre.
func anchor(c *Canvas) (cx, cy, hy int) {
	size := c.Size()
	cx, cy = size.X/2, size.Y/2
	return cx, cy, cy - headLift
}

// BodyLayer draws a simple figure: head with eyes, torso, arms and legs.
// Arms and legs swing in opposite phase with the walk cycle.
type BodyLayer struct {
	// Primary fills the torso and legs.
	Primary color.RGBA

	// Secondary outlines the torso and legs.  The zero value means Primary.
	Secondary color.RGBA

	// Skin is used for head and arms, SkinDark for their outline, Eye for
	// the eyes.
	Skin, SkinDark, Eye color.RGBA
}

// Body returns a body layer with the given torso colours and the skin
// colours of the palette.  A zero secondary colour means primary.
func (cfg Config) Body(primary, secondary color.RGBA) *BodyLayer {
	return &BodyLayer{
		Primary:   primary,
		Secondary: secondary,
		Skin:      cfg.Palette.Skin,
		SkinDark:  cfg.Palette.SkinDark,
		Eye:       cfg.Palette.Eye,
	}
}

// DrawCell implements the [CellDrawer] interface.
func (l *BodyLayer) DrawCell(c *Canvas, _ Cell, o int) {
	primary, secondary := l.Primary, l.Secondary
	if secondary == (color.RGBA{}) {
		secondary = primary
	}
	cx, _, hy := anchor(c)

	// head
	c.OutlineEllipse(box(cx-6, hy-6, cx+6, hy+6), l.Skin, l.SkinDark, 1)
	c.FillEllipse(box(cx-4, hy-2, cx-2, hy), l.Eye)
	c.FillEllipse(box(cx+2, hy-2, cx+4, hy), l.Eye)

	// torso
	top := hy + 8
	bottom := top + 20
	c.OutlineRect(box(cx-8, top, cx+8, bottom), primary, secondary, 2)

	// arms
	armY := top + 5
	c.OutlineRect(box(cx-12, armY+o, cx-8, armY+12+o), l.Skin, l.SkinDark, 1)
	c.OutlineRect(box(cx+8, armY-o, cx+12, armY+12-o), l.Skin, l.SkinDark, 1)

	// legs
	c.OutlineRect(box(cx-6, bottom+o, cx-2, bottom+12+o), primary, secondary, 1)
	c.OutlineRect(box(cx+2, bottom-o, cx+6, bottom+12-o), primary, secondary, 1)
}

// HairLayer draws short hair on top of the head.  Hair does not move with
// the walk cycle.
type HairLayer struct {
	Color color.RGBA
}

// Hair returns a hair layer in the palette's hair colour.
func (cfg Config) Hair() *HairLayer {
	return &HairLayer{Color: cfg.Palette.Hair}
}

// DrawCell implements the [CellDrawer] interface.
func (l *HairLayer) DrawCell(c *Canvas, _ Cell, _ int) {
	cx, _, hy := anchor(c)
	c.FillEllipse(box(cx-8, hy-10, cx+8, hy-2), l.Color)
	c.FillRect(box(cx-8, hy-4, cx-6, hy+4), l.Color)
	c.FillRect(box(cx+6, hy-4, cx+8, hy+4), l.Color)
}

// HatLayer draws a cap with a brim above the head.
type HatLayer struct {
	Color color.RGBA
}

// Hat returns a hat layer in the palette's hat colour.
func (cfg Config) Hat() *HatLayer {
	return &HatLayer{Color: cfg.Palette.Hat}
}

// DrawCell implements the [CellDrawer] interface.
func (l *HatLayer) DrawCell(c *Canvas, _ Cell, _ int) {
	cx, _, hy := anchor(c)
	c.FillEllipse(box(cx-6, hy-16, cx+6, hy-10), l.Color)
	c.FillEllipse(box(cx-10, hy-12, cx+10, hy-8), l.Color)
}

// WeaponLayer draws a sword held to the right of the body.  The sword is
// only drawn in the given rows, and extends further with every column.
type WeaponLayer struct {
	Rows   RowRange
	Blade  color.RGBA
	Handle color.RGBA
}

// Weapon returns a sword layer restricted to the attack rows.
func (cfg Config) Weapon() *WeaponLayer {
	return &WeaponLayer{
		Rows:   cfg.AttackRows,
		Blade:  cfg.Palette.Blade,
		Handle: cfg.Palette.Handle,
	}
}

// DrawsRow implements the [RowFilter] interface.
func (l *WeaponLayer) DrawsRow(row int) bool {
	return l.Rows.Contains(row)
}

// DrawCell implements the [CellDrawer] interface.
func (l *WeaponLayer) DrawCell(c *Canvas, cell Cell, _ int) {
	cx, cy, _ := anchor(c)
	x := cx + 8 + 2*cell.Col
	c.FillRect(box(x, cy-1, x+16, cy+1), l.Blade)
	c.FillEllipse(box(x-4, cy-3, x, cy+3), l.Handle)
}
