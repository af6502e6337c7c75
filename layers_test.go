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
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

var (
	shirtBlue = color.RGBA{65, 105, 225, 255}
	shirtDark = color.RGBA{40, 80, 200, 255}
)

func newTestPainter(t testing.TB, cfg Config) *Painter {
	t.Helper()
	p, err := NewPainter(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

// dumpOnFailure writes img to the debug directory if the test fails.
func dumpOnFailure(t *testing.T, img image.Image) {
	t.Cleanup(func() {
		if !t.Failed() {
			return
		}
		if err := os.MkdirAll("debug", 0o755); err != nil {
			return
		}
		name := filepath.Join("debug", filepath.Base(t.Name())+".png")
		if err := Save(name, img); err == nil {
			t.Logf("image written to %s", name)
		}
	})
}

// topmost returns the smallest frame-relative y in column x of the frame
// with a non-transparent pixel, or -1.
func topmost(img *image.RGBA, frame image.Rectangle, x int) int {
	for y := frame.Min.Y; y < frame.Max.Y; y++ {
		if img.RGBAAt(frame.Min.X+x, y).A != 0 {
			return y - frame.Min.Y
		}
	}
	return -1
}

// rightmost returns the largest frame-relative x in row y of the frame
// with a non-transparent pixel, or -1.
func rightmost(img *image.RGBA, frame image.Rectangle, y int) int {
	for x := frame.Max.X - 1; x >= frame.Min.X; x-- {
		if img.RGBAAt(x, frame.Min.Y+y).A != 0 {
			return x - frame.Min.X
		}
	}
	return -1
}

func TestLayerSize(t *testing.T) {
	grids := []Grid{
		{FrameWidth: 64, FrameHeight: 64, Columns: 4, Rows: 12},
		{FrameWidth: 32, FrameHeight: 48, Columns: 6, Rows: 5},
		{FrameWidth: 80, FrameHeight: 64, Columns: 1, Rows: 1},
	}
	for _, g := range grids {
		cfg := DefaultConfig()
		cfg.Grid = g
		p := newTestPainter(t, cfg)
		layers := map[string]CellDrawer{
			"body":   cfg.Body(shirtBlue, shirtDark),
			"hair":   cfg.Hair(),
			"hat":    cfg.Hat(),
			"weapon": cfg.Weapon(),
		}
		for name, d := range layers {
			img := p.Paint(d)
			want := image.Rect(0, 0, g.FrameWidth*g.Columns, g.FrameHeight*g.Rows)
			if img.Bounds() != want {
				t.Errorf("%s on %v: got bounds %v, want %v", name, g, img.Bounds(), want)
			}
		}
	}
}

// TestTransparentBackground checks that nothing is drawn outside the
// region each layer is meant to occupy.
func TestTransparentBackground(t *testing.T) {
	cfg := DefaultConfig()
	p := newTestPainter(t, cfg)
	const cx, cy, hy = 32, 32, 24

	cases := []struct {
		name   string
		drawer CellDrawer
		region func(cell Cell) image.Rectangle
	}{
		{"body", cfg.Body(shirtBlue, shirtDark), func(Cell) image.Rectangle {
			return box(cx-12, hy-6, cx+12, hy+28+12+2)
		}},
		{"hair", cfg.Hair(), func(Cell) image.Rectangle {
			return box(cx-8, hy-10, cx+8, hy+4)
		}},
		{"hat", cfg.Hat(), func(Cell) image.Rectangle {
			return box(cx-10, hy-16, cx+10, hy-8)
		}},
		{"weapon", cfg.Weapon(), func(cell Cell) image.Rectangle {
			x := cx + 8 + 2*cell.Col
			return box(x-4, cy-3, x+16, cy+3)
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			img := p.Paint(tc.drawer)
			dumpOnFailure(t, img)

			for cell := range cfg.Grid.Cells() {
				frame := cfg.Grid.Frame(cell)
				allowed := tc.region(cell).Add(frame.Min)
				for y := frame.Min.Y; y < frame.Max.Y; y++ {
					for x := frame.Min.X; x < frame.Max.X; x++ {
						if image.Pt(x, y).In(allowed) {
							continue
						}
						if a := img.RGBAAt(x, y).A; a != 0 {
							t.Fatalf("cell %v: pixel (%d,%d) has alpha %d", cell, x, y, a)
						}
					}
				}
			}
		})
	}
}

func TestTorsoColour(t *testing.T) {
	cfg := DefaultConfig()
	p := newTestPainter(t, cfg)
	img := p.Paint(cfg.Body(shirtBlue, shirtDark))
	dumpOnFailure(t, img)

	// torso spans x=24..40, y=32..52 in cell (0,0)
	if got := img.RGBAAt(32, 42); got != shirtBlue {
		t.Errorf("torso centre: got %v, want %v", got, shirtBlue)
	}
	for _, y := range []int{32, 33} {
		if got := img.RGBAAt(32, y); got != shirtDark {
			t.Errorf("torso outline at y=%d: got %v, want %v", y, got, shirtDark)
		}
	}
	if got := img.RGBAAt(32, 34); got != shirtBlue {
		t.Errorf("inside torso outline: got %v, want %v", got, shirtBlue)
	}
}

func TestBodyDefaultSecondary(t *testing.T) {
	cfg := DefaultConfig()
	p := newTestPainter(t, cfg)
	img := p.Paint(cfg.Body(shirtBlue, color.RGBA{}))

	for _, pt := range []image.Point{{32, 32}, {32, 42}, {28, 60}} {
		if got := img.RGBAAt(pt.X, pt.Y); got != shirtBlue {
			t.Errorf("pixel %v: got %v, want %v", pt, got, shirtBlue)
		}
	}
}

func TestBodyFeatures(t *testing.T) {
	cfg := DefaultConfig()
	pal := cfg.Palette
	p := newTestPainter(t, cfg)
	img := p.Paint(cfg.Body(shirtBlue, shirtDark))
	dumpOnFailure(t, img)

	for cell := range cfg.Grid.Cells() {
		o := cfg.Grid.Origin(cell)
		checks := []struct {
			what string
			x, y int
			want color.RGBA
		}{
			{"head", 32, 24, pal.Skin},
			{"head outline", 32, 18, pal.SkinDark},
			{"left eye", 29, 23, pal.Eye},
			{"right eye", 35, 23, pal.Eye},
		}
		for _, c := range checks {
			if got := img.RGBAAt(o.X+c.x, o.Y+c.y); got != c.want {
				t.Errorf("cell %v %s: got %v, want %v", cell, c.what, got, c.want)
			}
		}
	}
}

// TestWalkCycle checks that the arms swing in opposite phase.
func TestWalkCycle(t *testing.T) {
	cfg := DefaultConfig()
	p := newTestPainter(t, cfg)
	img := p.Paint(cfg.Body(shirtBlue, shirtDark))
	dumpOnFailure(t, img)

	const armTop = 37 // top of the arms without displacement
	want := map[int][2]int{
		0: {0, 0},
		1: {-2, 2},
		2: {0, 0},
		3: {2, -2},
	}
	for cell := range cfg.Grid.Cells() {
		frame := cfg.Grid.Frame(cell)
		left := topmost(img, frame, 21) - armTop
		right := topmost(img, frame, 43) - armTop
		if w := want[cell.Col]; left != w[0] || right != w[1] {
			t.Errorf("cell %v: arm offsets %d/%d, want %d/%d",
				cell, left, right, w[0], w[1])
		}
	}
}

// TestCellsIndependent checks that swinging legs do not spill into the
// frame below.
func TestCellsIndependent(t *testing.T) {
	cfg := DefaultConfig()
	p := newTestPainter(t, cfg)
	img := p.Paint(cfg.Body(shirtBlue, shirtDark))

	for cell := range cfg.Grid.Cells() {
		frame := cfg.Grid.Frame(cell)
		for y := frame.Min.Y; y < frame.Min.Y+8; y++ {
			for x := frame.Min.X; x < frame.Max.X; x++ {
				if a := img.RGBAAt(x, y).A; a != 0 {
					t.Fatalf("cell %v: pixel (%d,%d) has alpha %d", cell, x, y, a)
				}
			}
		}
	}
}

func TestHairAndHat(t *testing.T) {
	cfg := DefaultConfig()
	pal := cfg.Palette
	p := newTestPainter(t, cfg)
	hair := p.Paint(cfg.Hair())
	hat := p.Paint(cfg.Hat())

	for cell := range cfg.Grid.Cells() {
		o := cfg.Grid.Origin(cell)
		checks := []struct {
			what string
			img  *image.RGBA
			x, y int
			want color.RGBA
		}{
			{"hair top", hair, 32, 18, pal.Hair},
			{"left side hair", hair, 25, 24, pal.Hair},
			{"right side hair", hair, 39, 24, pal.Hair},
			{"hat top", hat, 32, 11, pal.Hat},
			{"hat brim", hat, 23, 14, pal.Hat},
		}
		for _, c := range checks {
			if got := c.img.RGBAAt(o.X+c.x, o.Y+c.y); got != c.want {
				t.Errorf("cell %v %s: got %v, want %v", cell, c.what, got, c.want)
			}
		}
	}
}

func TestWeaponRows(t *testing.T) {
	cfg := DefaultConfig()
	p := newTestPainter(t, cfg)
	img := p.Paint(cfg.Weapon())
	dumpOnFailure(t, img)

	for row := range cfg.Grid.Rows {
		prev := -1
		for col := range cfg.Grid.Columns {
			cell := Cell{Row: row, Col: col}
			frame := cfg.Grid.Frame(cell)

			if row < 4 || row > 7 {
				for y := frame.Min.Y; y < frame.Max.Y; y++ {
					for x := frame.Min.X; x < frame.Max.X; x++ {
						if a := img.RGBAAt(x, y).A; a != 0 {
							t.Fatalf("cell %v: pixel (%d,%d) has alpha %d", cell, x, y, a)
						}
					}
				}
				continue
			}

			right := rightmost(img, frame, 32)
			if right != 56+2*col {
				t.Errorf("cell %v: blade ends at %d, want %d", cell, right, 56+2*col)
			}
			if right <= prev {
				t.Errorf("cell %v: blade end %d not beyond previous %d", cell, right, prev)
			}
			prev = right

			o := frame.Min
			x := 40 + 2*col
			if got := img.RGBAAt(o.X+x+8, o.Y+32); got != cfg.Palette.Blade {
				t.Errorf("cell %v blade: got %v, want %v", cell, got, cfg.Palette.Blade)
			}
			if got := img.RGBAAt(o.X+x-2, o.Y+32); got != cfg.Palette.Handle {
				t.Errorf("cell %v handle: got %v, want %v", cell, got, cfg.Palette.Handle)
			}
		}
	}
}

// TestWeaponShortGrid checks that an attack range reaching past the last
// row is cut off.
func TestWeaponShortGrid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Grid.Rows = 5
	p := newTestPainter(t, cfg)
	img := p.Paint(cfg.Weapon())

	if got := rightmost(img, cfg.Grid.Frame(Cell{Row: 4, Col: 0}), 32); got != 56 {
		t.Errorf("row 4: blade ends at %d, want 56", got)
	}
	if got := rightmost(img, cfg.Grid.Frame(Cell{Row: 3, Col: 0}), 32); got != -1 {
		t.Errorf("row 3: unexpected pixel at x=%d", got)
	}
}

func TestAntialias(t *testing.T) {
	for _, antialias := range []bool{false, true} {
		cfg := DefaultConfig()
		cfg.Antialias = antialias
		p := newTestPainter(t, cfg)
		img := p.Paint(cfg.Body(shirtBlue, shirtDark))

		partial := 0
		for i := 3; i < len(img.Pix); i += 4 {
			if a := img.Pix[i]; a != 0 && a != 255 {
				partial++
			}
		}
		if antialias && partial == 0 {
			t.Error("antialiased sheet has no partially covered pixels")
		}
		if !antialias && partial != 0 {
			t.Errorf("aliased sheet has %d partially covered pixels", partial)
		}

		// pixel-aligned shapes are unaffected
		if got := img.RGBAAt(32, 42); got != shirtBlue {
			t.Errorf("antialias=%t: torso centre %v, want %v", antialias, got, shirtBlue)
		}
	}
}

// TestDeterministic checks that identical inputs give identical PNG files.
func TestDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	layers := map[string]func() CellDrawer{
		"body":   func() CellDrawer { return cfg.Body(shirtBlue, shirtDark) },
		"hair":   func() CellDrawer { return cfg.Hair() },
		"hat":    func() CellDrawer { return cfg.Hat() },
		"weapon": func() CellDrawer { return cfg.Weapon() },
	}
	for name, mk := range layers {
		t.Run(name, func(t *testing.T) {
			var out [2]bytes.Buffer
			for i := range out {
				p := newTestPainter(t, cfg)
				if err := Encode(&out[i], p.Paint(mk())); err != nil {
					t.Fatal(err)
				}
			}
			if !bytes.Equal(out[0].Bytes(), out[1].Bytes()) {
				t.Error("PNG output differs between runs")
			}
		})
	}
}
