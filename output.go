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
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// OutputPathError reports that the directory for an output file could not
// be created.
type OutputPathError struct {
	Dir string
	Err error
}

func (e *OutputPathError) Error() string {
	return "cannot create output directory " + e.Dir + ": " + e.Err.Error()
}

func (e *OutputPathError) Unwrap() error {
	return e.Err
}

// EncodingError reports that an output file could not be written.
// This covers both encoder failures and I/O errors on the file.
type EncodingError struct {
	Path string
	Err  error
}

func (e *EncodingError) Error() string {
	return "cannot write " + e.Path + ": " + e.Err.Error()
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// Encode writes img to w in PNG format.  The output only depends on the
// pixels of img.
func Encode(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	return enc.Encode(w, img)
}

// Save writes img to a PNG file, creating the parent directory if needed and
// replacing any existing file.
//
// If the directory cannot be created, the error is an [*OutputPathError].
// All other failures are reported as [*EncodingError].  A partially written
// file is left in place.
func Save(path string, img image.Image) error {
	return writeFile(path, func(w io.Writer) error {
		return Encode(w, img)
	})
}

// writeFile creates path and fills it using write.
func writeFile(path string, write func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &OutputPathError{Dir: dir, Err: err}
	}

	f, err := os.Create(path)
	if err != nil {
		return &EncodingError{Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = &EncodingError{Path: path, Err: cerr}
		}
	}()

	if err := write(f); err != nil {
		return &EncodingError{Path: path, Err: err}
	}
	return nil
}
