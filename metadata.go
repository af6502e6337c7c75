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
	"encoding/json"
	"io"
)

// MetadataVersion is written into every metadata file.
const MetadataVersion = "1.0.0"

// defaultFPS is the playback rate suggested to the renderer.
const defaultFPS = 12

// Metadata describes a set of layer sheets for the sprite renderer.
type Metadata struct {
	FrameWidth  int `json:"frameWidth"`
	FrameHeight int `json:"frameHeight"`
	Columns     int `json:"columns"`
	Rows        int `json:"rows"`

	// Animations maps an animation name to its frame indices.  Frames are
	// numbered in row-major order, starting at 0.
	Animations map[string][]int `json:"animations"`

	Layers  []LayerInfo `json:"layers"`
	Version string      `json:"version"`
	FPS     int         `json:"fps,omitempty"`
}

// LayerInfo names one layer sheet.  Layers with higher ZIndex are drawn in
// front.
type LayerInfo struct {
	Name       string `json:"name"`
	SpritePath string `json:"spritePath"`
	ZIndex     int    `json:"zIndex"`
}

// NewMetadata describes the grid of cfg and the given layers.  The walk,
// attack and special bands become animations; rows outside the grid are
// left out.
func NewMetadata(cfg Config, layers ...LayerInfo) *Metadata {
	g := cfg.Grid
	m := &Metadata{
		FrameWidth:  g.FrameWidth,
		FrameHeight: g.FrameHeight,
		Columns:     g.Columns,
		Rows:        g.Rows,
		Animations:  make(map[string][]int),
		Layers:      layers,
		Version:     MetadataVersion,
		FPS:         defaultFPS,
	}

	bands := map[string]RowRange{
		"walk":    cfg.WalkRows,
		"attack":  cfg.AttackRows,
		"special": cfg.SpecialRows,
	}
	for name, rows := range bands {
		var frames []int
		for row := max(rows.First, 0); row <= min(rows.Last, g.Rows-1); row++ {
			for col := range g.Columns {
				frames = append(frames, row*g.Columns+col)
			}
		}
		if frames != nil {
			m.Animations[name] = frames
		}
	}
	return m
}

// WriteMetadata writes m as indented JSON.  Errors are reported in the
// same way as for [Save].
func WriteMetadata(path string, m *Metadata) error {
	return writeFile(path, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	})
}
