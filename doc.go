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

// Package spritegen draws placeholder character sprite sheets.
//
// A sheet is a grid of equally sized frames; each column is one step of an
// animation and each row one animation (rows 0-3 walking, 4-7 attacking,
// 8-11 special moves in the default layout).  A character is assembled by
// stacking several layer sheets of the same grid, for example a body, hair,
// a hat and a weapon.  The layers in this package are drawn from simple
// shapes so that a sprite renderer can be tested without real artwork.
//
// A [Painter] iterates over the grid and calls a [CellDrawer] for every
// frame.  [BodyLayer], [HairLayer], [HatLayer] and [WeaponLayer] are the
// built-in drawers.
package spritegen

//go:generate go run ./cmd/spritegen
