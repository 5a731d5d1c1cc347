/*
 * open.go, part of potentials.
 *
 * Copyright 2023 The potentials developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package eam

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//gzFile bundles the decompressor with the file underneath so both get
//closed together.
type gzFile struct {
	io.ReadCloser
	f *os.File
}

func (g *gzFile) Close() error {
	err := g.ReadCloser.Close()
	if err2 := g.f.Close(); err == nil {
		err = err2
	}
	return err
}

//zstdFile wraps a zstd decoder, whose Close returns nothing, into an
//io.ReadCloser over the file underneath.
type zstdFile struct {
	*zstd.Decoder
	f *os.File
}

func (z *zstdFile) Close() error {
	z.Decoder.Close()
	return z.f.Close()
}

// Open opens a parameter file for reading, transparently
// decompressing gzip (.gz) and zstd (.zst) files by extension.
func Open(filename string) (io.ReadCloser, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, Error{err.Error(), "", []string{"Open"}, true}
	}
	switch {
	case strings.HasSuffix(filename, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, Error{err.Error(), "", []string{"Open"}, true}
		}
		return &gzFile{gz, f}, nil
	case strings.HasSuffix(filename, ".zst"):
		dec, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, Error{err.Error(), "", []string{"Open"}, true}
		}
		return &zstdFile{dec, f}, nil
	}
	return f, nil
}
