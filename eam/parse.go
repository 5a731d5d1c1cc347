/*
 * parse.go, part of potentials.
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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

//readLines slurps the whole file as lines. Parameter files are small
//enough that a line slice keeps the block arithmetic simple.
func readLines(f io.Reader, format string) ([]string, error) {
	scanner := bufio.NewScanner(f)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, Error{err.Error(), format, []string{"readLines"}, true}
	}
	return lines, nil
}

//fieldsAll splits the given lines into whitespace separated terms,
//ignoring the line boundaries. The tabulated blocks of parameter
//files are defined by value counts, not by line layout.
func fieldsAll(lines []string) []string {
	var terms []string
	for _, line := range lines {
		terms = append(terms, strings.Fields(line)...)
	}
	return terms
}

func floatSlice(terms []string, format, caller string) ([]float64, error) {
	vals := make([]float64, len(terms))
	for i, t := range terms {
		v, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return nil, Error{fmt.Sprintf("invalid tabulated value %q", t), format, []string{caller}, true}
		}
		vals[i] = v
	}
	return vals, nil
}

//parseGridLine reads the "numrho deltarho numr deltar cutoffr" line
//shared by all the formats.
func parseGridLine(line, format, caller string) (numrho int, deltarho float64, numr int, deltar, cutoffr float64, err error) {
	bad := Error{"invalid grid line: expected numrho, deltarho, numr, deltar, cutoffr", format, []string{caller}, true}
	terms := strings.Fields(line)
	if len(terms) != 5 {
		return 0, 0, 0, 0, 0, bad
	}
	if numrho, err = strconv.Atoi(terms[0]); err != nil {
		return 0, 0, 0, 0, 0, bad
	}
	if deltarho, err = strconv.ParseFloat(terms[1], 64); err != nil {
		return 0, 0, 0, 0, 0, bad
	}
	if numr, err = strconv.Atoi(terms[2]); err != nil {
		return 0, 0, 0, 0, 0, bad
	}
	if deltar, err = strconv.ParseFloat(terms[3], 64); err != nil {
		return 0, 0, 0, 0, 0, bad
	}
	if cutoffr, err = strconv.ParseFloat(terms[4], 64); err != nil {
		return 0, 0, 0, 0, 0, bad
	}
	return numrho, deltarho, numr, deltar, cutoffr, nil
}

//parseSymbolInfo reads the four term element header inside the
//tabulated block of a setfl or funcfl file.
func parseSymbolInfo(terms []string, format, caller string) (number int, mass, alat float64, lattice string, err error) {
	bad := Error{"invalid element line: expected number, mass, alat, lattice", format, []string{caller}, true}
	if len(terms) < 4 {
		return 0, 0, 0, "", bad
	}
	if number, err = strconv.Atoi(terms[0]); err != nil {
		return 0, 0, 0, "", bad
	}
	if mass, err = strconv.ParseFloat(terms[1], 64); err != nil {
		return 0, 0, 0, "", bad
	}
	if alat, err = strconv.ParseFloat(terms[2], 64); err != nil {
		return 0, 0, 0, "", bad
	}
	return number, mass, alat, terms[3], nil
}

//Default formatting knobs shared by all the Build methods.
const (
	DefaultFloatFormat = "%25.16e"
	DefaultColumns     = 5
)

//writeTable writes vals with ncolumns values per line, joined by
//single spaces. The column count restarts at every call, which is how
//the formats separate their blocks.
func writeTable(w *bufio.Writer, vals []float64, xf string, ncolumns int) {
	for j, v := range vals {
		fmt.Fprintf(w, xf, v)
		if (j+1)%ncolumns == 0 || j == len(vals)-1 {
			w.WriteByte('\n')
		} else {
			w.WriteByte(' ')
		}
	}
}

//writeSetflHeader writes the three comment lines, the symbol count
//line and the grid line common to the setfl variants.
func writeSetflHeader(w *bufio.Writer, header string, symbols []string, r, rho *axis, xf string) {
	lines := strings.Split(strings.TrimRight(header, "\n"), "\n")
	for len(lines) < 3 {
		lines = append(lines, "")
	}
	for _, line := range lines {
		fmt.Fprintf(w, "%s\n", line)
	}
	fmt.Fprintf(w, "%d", len(symbols))
	for _, symbol := range symbols {
		fmt.Fprintf(w, " %s", symbol)
	}
	w.WriteByte('\n')
	fmt.Fprintf(w, "%d "+xf+" %d "+xf+" "+xf+"\n", rho.num, rho.delta, r.num, r.delta, r.cutoff)
}
