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

// Command spritegen writes the placeholder sprite sheets used to test the
// character renderer into public/sprites.
package main

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/spritegen"
)

const outputDir = "public/sprites"

// previewScale is the enlargement factor of preview.png.
const previewScale = 2

type layerJob struct {
	label  string
	file   string
	drawer spritegen.CellDrawer
}

func main() {
	if err := run(os.Stdout, outputDir); err != nil {
		fmt.Fprintln(os.Stderr, "spritegen:", err)
		os.Exit(1)
	}
}

func run(w io.Writer, dir string) error {
	cfg := spritegen.DefaultConfig()
	p, err := spritegen.NewPainter(cfg)
	if err != nil {
		return err
	}

	jobs := []layerJob{
		{"sprite sheet", "base-male.png", cfg.Body(
			color.RGBA{220, 180, 140, 255},
			color.RGBA{180, 140, 100, 255},
		)},
		{"sprite sheet", "shirt-basic.png", cfg.Body(
			color.RGBA{65, 105, 225, 255},
			color.RGBA{40, 80, 200, 255},
		)},
		{"hair layer", "hair-short.png", cfg.Hair()},
		{"accessory layer", "hat-cap.png", cfg.Hat()},
		{"weapon layer", "weapon-sword.png", cfg.Weapon()},
	}

	var sheets []image.Image
	var layers []spritegen.LayerInfo
	for i, job := range jobs {
		path := filepath.Join(dir, job.file)
		img := p.Paint(job.drawer)
		if err := spritegen.Save(path, img); err != nil {
			return err
		}
		fmt.Fprintf(w, "Created %s: %s\n", job.label, path)

		sheets = append(sheets, img)
		layers = append(layers, spritegen.LayerInfo{
			Name:       strings.TrimSuffix(job.file, filepath.Ext(job.file)),
			SpritePath: job.file,
			ZIndex:     i,
		})
	}

	composite, err := spritegen.Compose(sheets...)
	if err != nil {
		return err
	}
	path := filepath.Join(dir, "preview.png")
	if err := spritegen.Save(path, spritegen.Preview(composite, previewScale)); err != nil {
		return err
	}
	fmt.Fprintf(w, "Created preview: %s\n", path)

	path = filepath.Join(dir, "sprites.json")
	if err := spritegen.WriteMetadata(path, spritegen.NewMetadata(cfg, layers...)); err != nil {
		return err
	}
	fmt.Fprintf(w, "Created metadata: %s\n", path)

	fmt.Fprintln(w, "All sprite sheets generated successfully.")
	return nil
}
