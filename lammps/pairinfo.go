/*
 * pairinfo.go, part of potentials.
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

package lammps

import (
	"fmt"
	"strings"
)

// PairInfo generates the LAMMPS input command lines that set up the
// potential for a system whose atom types carry the given model
// symbols, in order. A nil symbols list selects all model symbols.
// masses overrides the per type masses; it must match the length of
// symbols, and zero entries keep the default mass. With comments
// true, print commands describing the potential lead the output.
func (r *Record) PairInfo(symbols []string, masses []float64, comments bool) (string, error) {
	symbols, err := r.NormalizeSymbols(symbols)
	if err != nil {
		return "", errDecorate(err, "PairInfo")
	}
	if masses != nil && len(masses) != len(symbols) {
		return "", Error{"supplied masses must be same length as symbols", []string{"PairInfo"}, true}
	}
	defaults, err := r.Masses(symbols)
	if err != nil {
		return "", errDecorate(err, "PairInfo")
	}
	typeMasses := make([]float64, len(symbols))
	copy(typeMasses, masses)
	for i, m := range typeMasses {
		if m == 0 {
			typeMasses[i] = defaults[i]
		}
	}

	var b strings.Builder
	if comments {
		b.WriteString(r.PrintComments())
	}

	fmt.Fprintf(&b, "pair_style %s%s\n", r.pairStyle, termsString(r.pairStyleTerms, r.potDir, nil, nil))

	modelSymbols := r.Symbols()
	isEAM := r.pairStyle == "eam"
	for _, coeff := range r.pairCoeffs {
		line, err := coeff.BuildCommand(r.potDir, symbols, modelSymbols, isEAM)
		if err != nil {
			return "", errDecorate(err, "PairInfo")
		}
		b.WriteString(line)
	}

	for i, m := range typeMasses {
		fmt.Fprintf(&b, "mass %d %v\n", i+1, m)
	}
	b.WriteString("\n")

	for _, command := range r.commands {
		b.WriteString(command.BuildCommand(r.potDir, symbols, modelSymbols))
	}
	return b.String(), nil
}

// PairDataInfo generates the LAMMPS input command lines that declare
// the units, atom_style and boundary settings, read the given atom
// data file and set up the potential. pbc gives the three periodic
// boundary flags; non periodic directions go out as shrink wrapped
// with a minimum. Empty atomStyle and units keep the record's
// defaults. See PairInfo for the remaining arguments.
func (r *Record) PairDataInfo(filename string, pbc [3]bool, symbols []string, masses []float64, atomStyle, units string, comments bool) (string, error) {
	if units == "" {
		units = r.units
	}
	if atomStyle == "" {
		atomStyle = r.atomStyle
	}

	var b strings.Builder
	fmt.Fprintf(&b, "units %s\n", units)
	fmt.Fprintf(&b, "atom_style %s\n\n", atomStyle)

	bflags := [3]string{"m", "m", "m"}
	for i, p := range pbc {
		if p {
			bflags[i] = "p"
		}
	}
	fmt.Fprintf(&b, "boundary %s %s %s\n", bflags[0], bflags[1], bflags[2])
	fmt.Fprintf(&b, "read_data %s\n", filename)

	b.WriteString("\n")
	info, err := r.PairInfo(symbols, masses, comments)
	if err != nil {
		return "", errDecorate(err, "PairDataInfo")
	}
	b.WriteString(info)
	return b.String(), nil
}

// PairRestartInfo generates the LAMMPS input command lines that read
// the given restart file and set up the potential. See PairInfo for
// the remaining arguments.
func (r *Record) PairRestartInfo(filename string, symbols []string, masses []float64, comments bool) (string, error) {
	var b strings.Builder
	b.WriteString("# Script prepared using the potentials package\n\n")
	fmt.Fprintf(&b, "read_restart %s\n", filename)

	b.WriteString("\n")
	info, err := r.PairInfo(symbols, masses, comments)
	if err != nil {
		return "", errDecorate(err, "PairRestartInfo")
	}
	b.WriteString(info)
	return b.String(), nil
}
