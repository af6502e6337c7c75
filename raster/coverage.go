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
	"cmp"
	"math"
	"slices"
)

// Coverage accumulation model:
//
// For each pixel two values are tracked:
//   cover: signed vertical extent of the edges crossing this pixel column
//   area:  the same, weighted by the part of the pixel right of the edge
//
// Integrating a scanline from left to right:
//   coverage[i] = accum + area[i]
//   accum      += cover[i]
//
// This is the signed area of the path inside each pixel.  The nonzero rule
// clamps |coverage| to [0,1], the even-odd rule folds it.

// accumulateEdge adds the contribution of e within scanline y.  The buffers
// are indexed by x-bboxXMin.  Contributions left of the buffer are folded
// into the first pixel, contributions right of it are dropped.
func (r *Rasteriser) accumulateEdge(e *edge, y int, cover, area []float32, bboxXMin, bboxXMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(yTop-e.y0)
	xBot := e.x0 + e.dxdy*(yBot-e.y0)
	pixLeft := int(math.Floor(min(xTop, xBot)))
	pixRight := int(math.Floor(max(xTop, xBot)))

	if pixLeft >= bboxXMax {
		return
	}
	if pixRight < bboxXMin {
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	}

	add := func(pix int, segTop, segBot float64) {
		c := sign * float32(segBot-segTop)
		switch {
		case pix < bboxXMin:
			cover[0] += c
			area[0] += c
		case pix < bboxXMax:
			yMid := (segTop + segBot) / 2
			xFrac := e.x0 + e.dxdy*(yMid-e.y0) - float64(pix)
			cover[pix-bboxXMin] += c
			area[pix-bboxXMin] += c * float32(1-xFrac)
		}
	}

	if pixLeft == pixRight {
		add(pixLeft, yTop, yBot)
		return
	}

	// the edge crosses several pixel columns: split it at the column
	// boundaries
	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		yl := e.y0 + dydx*(float64(pix)-e.x0)
		yr := e.y0 + dydx*(float64(pix+1)-e.x0)
		segTop := max(min(yl, yr), yTop)
		segBot := min(max(yl, yr), yBot)
		if segBot > segTop {
			add(pix, segTop, segBot)
		}
	}
}

// integrateScanline turns accumulated cover/area values into coverage,
// in place in cover.
func integrateScanline(cover, area []float32, rule FillRule) {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]
		if raw < 0 {
			raw = -raw
		}

		if rule == EvenOdd {
			mod := raw - 2*float32(int(raw/2))
			cov := 1 - mod
			if cov < 0 {
				cov = -cov
			}
			cover[i] = 1 - cov
		} else {
			cover[i] = min(raw, 1)
		}
	}
}

// trimZeros returns the non-zero part of coverage and its offset.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// fillSmallPath rasterises using 2D buffers covering the whole bounding box.
func (r *Rasteriser) fillSmallPath(xMin, xMax, yMin, yMax int, rule FillRule, emit EmitFunc) {
	width := xMax - xMin
	height := yMax - yMin

	size := width * height
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	clear(r.cover)
	clear(r.area)
	r.rowHasEdges = slices.Grow(r.rowHasEdges[:0], height)[:height]
	clear(r.rowHasEdges)

	for i := range r.edges {
		e := &r.edges[i]
		lo := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		hi := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := lo; y < hi; y++ {
			row := y - yMin
			off := row * width
			r.accumulateEdge(e, y, r.cover[off:off+width], r.area[off:off+width], xMin, xMax)
			r.rowHasEdges[row] = true
		}
	}

	for row := range height {
		if !r.rowHasEdges[row] {
			continue
		}
		off := row * width
		coverage := r.cover[off : off+width]
		integrateScanline(coverage, r.area[off:off+width], rule)
		if trimmed, k := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+k, trimmed)
		}
	}
}

// fillLargePath rasterises one scanline at a time, using an active edge list.
func (r *Rasteriser) fillLargePath(xMin, xMax, yMin, yMax int, rule FillRule, emit EmitFunc) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.activeIdx = r.activeIdx[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf, yfNext := float64(y), float64(y+1)

		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < yfNext {
			r.activeIdx = append(r.activeIdx, next)
			next++
		}
		if len(r.activeIdx) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if max(e.y0, e.y1) <= yf {
				last := len(r.activeIdx) - 1
				r.activeIdx[i] = r.activeIdx[last]
				r.activeIdx = r.activeIdx[:last]
				continue
			}
			r.accumulateEdge(e, y, r.cover, r.area, xMin, xMax)
			touched = true
			i++
		}
		if !touched {
			continue
		}

		integrateScanline(r.cover, r.area, rule)
		if trimmed, k := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+k, trimmed)
		}
	}
}
