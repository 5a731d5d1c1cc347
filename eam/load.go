/*
 * load.go, part of potentials.
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
	"bytes"
	"io"

	potentials "github.com/mdtoolkit/potentials"
)

// Load reads a parameter file of the given style: "eam" for funcfl
// and "eam/alloy", "eam/fs" or "adp" for the setfl variants (the
// short aliases "alloy" and "fs" are also accepted). With an empty
// style each format is tried in turn, which works because the
// formats declare their value counts up front and a mismatched
// format fails to account for them.
func Load(f io.Reader, style string) (potentials.ParamFile, error) {
	switch style {
	case "eam":
		e := NewEAM()
		if err := e.Load(f); err != nil {
			return nil, errDecorate(err, "Load")
		}
		return e, nil
	case "eam/alloy", "alloy":
		a := NewAlloy()
		if err := a.Load(f); err != nil {
			return nil, errDecorate(err, "Load")
		}
		return a, nil
	case "eam/fs", "fs":
		a := NewFS()
		if err := a.Load(f); err != nil {
			return nil, errDecorate(err, "Load")
		}
		return a, nil
	case "adp":
		a := NewADP()
		if err := a.Load(f); err != nil {
			return nil, errDecorate(err, "Load")
		}
		return a, nil
	case "":
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, Error{err.Error(), "", []string{"Load"}, true}
		}
		for _, s := range []string{"eam", "eam/alloy", "eam/fs", "adp"} {
			p, err := Load(bytes.NewReader(data), s)
			if err == nil {
				return p, nil
			}
		}
		return nil, Error{UnknownStyle, "", []string{"Load"}, true}
	}
	return nil, Error{"unknown pair style " + style, "", []string{"Load"}, true}
}

// LoadFile reads a parameter file from disk, decompressing gzip and
// zstd files by extension. See Load for the accepted styles.
func LoadFile(filename, style string) (potentials.ParamFile, error) {
	f, err := Open(filename)
	if err != nil {
		return nil, errDecorate(err, "LoadFile")
	}
	defer f.Close()
	return Load(f, style)
}
