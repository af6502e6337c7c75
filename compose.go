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
	"image"

	"golang.org/x/image/draw"
)

// Compose stacks the layers bottom to top using alpha compositing, in the
// way a sprite renderer overlays the sheets.  All layers must have the same
// size.  The result has its origin at (0, 0).
func Compose(layers ...image.Image) (*image.RGBA, error) {
	if len(layers) == 0 {
		return nil, errors.New("no layers to compose")
	}

	size := layers[0].Bounds().Size()
	out := image.NewRGBA(image.Rectangle{Max: size})
	for i, layer := range layers {
		b := layer.Bounds()
		if b.Size() != size {
			return nil, fmt.Errorf("layer %d is %dx%d, want %dx%d",
				i, b.Dx(), b.Dy(), size.X, size.Y)
		}
		draw.Draw(out, out.Bounds(), layer, b.Min, draw.Over)
	}
	return out, nil
}

// Preview enlarges img by an integer factor, keeping hard pixel edges.
// Scale factors below 1 are treated as 1.
func Preview(img image.Image, scale int) *image.RGBA {
	scale = max(scale, 1)
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(out, out.Bounds(), img, b, draw.Src, nil)
	return out
}
