/*
 * adp.go, part of potentials.
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
)

// ADP builds and analyzes LAMMPS adp setfl parameter files. The
// angular dependent potential extends the eam/alloy format with two
// extra tabulated functions per unordered symbol pair: the dipole
// function u(r) and the quadrupole function w(r), appended after the
// r*phi(r) tables.
type ADP struct {
	Alloy

	ur map[string]*profile
	wr map[string]*profile
}

// NewADP returns an empty adp setfl representation.
func NewADP() *ADP {
	adp := &ADP{
		Alloy: Alloy{
			style: "adp",
			info:  make(map[string]SymbolInfo),
			frho:  make(map[string]*profile),
			rhor:  make(map[string]*profile),
			rphir: make(map[string]*profile),
			phir:  make(map[string]*profile),
		},
		ur: make(map[string]*profile),
		wr: make(map[string]*profile),
	}
	return adp
}

// SetR sets the r values to use for tabulation, refitting any
// tabulated function on the old axis, the dipole and quadrupole
// tables included.
func (a *ADP) SetR(num int, cutoff, delta float64) error {
	oldR := a.r.values()
	if err := a.Alloy.SetR(num, cutoff, delta); err != nil {
		return err
	}
	if oldR == nil {
		return nil
	}
	for _, m := range []map[string]*profile{a.ur, a.wr} {
		if err := resplineMap(m, oldR); err != nil {
			return errDecorate(err, "SetR")
		}
	}
	return nil
}

// UR returns the dipole u(r) values of a symbol pair evaluated at r.
// With r nil a stored table is returned directly; computed values are
// zeroed beyond the r cutoff.
func (a *ADP) UR(s1, s2 string, r []float64) ([]float64, error) {
	key := pairKey(s1, s2)
	p, ok := a.ur[key]
	if !ok || !p.isSet() {
		return nil, Error{fmt.Sprintf("u(r) not set for pair %s", key), a.style, []string{"UR"}, true}
	}
	if r == nil && p.table == nil && !a.r.defined() {
		return nil, Error{RNotSet, a.style, []string{"UR"}, true}
	}
	v, err := p.eval(r, a.r.values(), a.r.cutoff, true)
	if err != nil {
		return nil, errDecorate(err, "UR")
	}
	return v, nil
}

// SetUR assigns tabulated dipole u(r) values to a symbol pair. With r
// nil the table must align with the set r tabulation points;
// otherwise a cubic spline over the given r values is stored instead.
func (a *ADP) SetUR(s1, s2 string, table, r []float64) error {
	if err := a.checkPair(s1, s2, "SetUR"); err != nil {
		return err
	}
	p := getProfile(a.ur, pairKey(s1, s2))
	if r == nil {
		if !a.r.defined() {
			return Error{RNotSet, a.style, []string{"SetUR"}, true}
		}
		if len(table) != a.r.num {
			return Error{TableWrongLength, a.style, []string{"SetUR"}, true}
		}
		p.setTable(table)
		return nil
	}
	if len(table) != len(r) {
		return Error{TableWrongLength, a.style, []string{"SetUR"}, true}
	}
	if err := p.setSpline(r, table); err != nil {
		return errDecorate(err, "SetUR")
	}
	return nil
}

// SetURFunc assigns the dipole u(r) of a symbol pair in closure form.
func (a *ADP) SetURFunc(s1, s2 string, fn Func) error {
	if err := a.checkPair(s1, s2, "SetURFunc"); err != nil {
		return err
	}
	getProfile(a.ur, pairKey(s1, s2)).setFunc(fn)
	return nil
}

// WR returns the quadrupole w(r) values of a symbol pair evaluated at
// r. With r nil a stored table is returned directly; computed values
// are zeroed beyond the r cutoff.
func (a *ADP) WR(s1, s2 string, r []float64) ([]float64, error) {
	key := pairKey(s1, s2)
	p, ok := a.wr[key]
	if !ok || !p.isSet() {
		return nil, Error{fmt.Sprintf("w(r) not set for pair %s", key), a.style, []string{"WR"}, true}
	}
	if r == nil && p.table == nil && !a.r.defined() {
		return nil, Error{RNotSet, a.style, []string{"WR"}, true}
	}
	v, err := p.eval(r, a.r.values(), a.r.cutoff, true)
	if err != nil {
		return nil, errDecorate(err, "WR")
	}
	return v, nil
}

// SetWR assigns tabulated quadrupole w(r) values to a symbol pair.
// With r nil the table must align with the set r tabulation points;
// otherwise a cubic spline over the given r values is stored instead.
func (a *ADP) SetWR(s1, s2 string, table, r []float64) error {
	if err := a.checkPair(s1, s2, "SetWR"); err != nil {
		return err
	}
	p := getProfile(a.wr, pairKey(s1, s2))
	if r == nil {
		if !a.r.defined() {
			return Error{RNotSet, a.style, []string{"SetWR"}, true}
		}
		if len(table) != a.r.num {
			return Error{TableWrongLength, a.style, []string{"SetWR"}, true}
		}
		p.setTable(table)
		return nil
	}
	if len(table) != len(r) {
		return Error{TableWrongLength, a.style, []string{"SetWR"}, true}
	}
	if err := p.setSpline(r, table); err != nil {
		return errDecorate(err, "SetWR")
	}
	return nil
}

// SetWRFunc assigns the quadrupole w(r) of a symbol pair in closure
// form.
func (a *ADP) SetWRFunc(s1, s2 string, fn Func) error {
	if err := a.checkPair(s1, s2, "SetWRFunc"); err != nil {
		return err
	}
	getProfile(a.wr, pairKey(s1, s2)).setFunc(fn)
	return nil
}

// Load reads an adp setfl parameter file.
func (a *ADP) Load(f io.Reader) error {
	lines, err := readLines(f, a.style)
	if err != nil {
		return errDecorate(err, "Load")
	}
	symbols, start, err := loadSetflPrelude(lines, a.style, a.SetHeader, a.SetR, a.SetRho)
	if err != nil {
		return err
	}
	terms := fieldsAll(lines[start:])
	numrho, numr := a.rho.num, a.r.num
	nsym := len(symbols)
	nsets := nsym * (nsym + 1) / 2
	expected := nsym*(4+numrho+numr) + 3*nsets*numr
	if len(terms) != expected {
		return Error{fmt.Sprintf("invalid number of tabulated values: %d expected, %d found", expected, len(terms)), a.style, []string{"Load"}, true}
	}
	pos := 0
	for _, symbol := range symbols {
		number, mass, alat, lattice, err := parseSymbolInfo(terms[pos:pos+4], a.style, "Load")
		if err != nil {
			return errDecorate(err, "Load")
		}
		a.SetSymbolInfo(symbol, number, mass, alat, lattice)
		pos += 4
		frho, err := floatSlice(terms[pos:pos+numrho], a.style, "Load")
		if err != nil {
			return errDecorate(err, "Load")
		}
		if err := a.SetFRho(symbol, frho, nil); err != nil {
			return errDecorate(err, "Load")
		}
		pos += numrho
		rhor, err := floatSlice(terms[pos:pos+numr], a.style, "Load")
		if err != nil {
			return errDecorate(err, "Load")
		}
		if err := a.SetRhoR(symbol, rhor, nil); err != nil {
			return errDecorate(err, "Load")
		}
		pos += numr
	}
	pairs := pairList(symbols)
	for _, pair := range pairs {
		rphi, err := floatSlice(terms[pos:pos+numr], a.style, "Load")
		if err != nil {
			return errDecorate(err, "Load")
		}
		if err := a.SetRphiR(pair[0], pair[1], rphi, nil); err != nil {
			return errDecorate(err, "Load")
		}
		pos += numr
	}
	for _, pair := range pairs {
		u, err := floatSlice(terms[pos:pos+numr], a.style, "Load")
		if err != nil {
			return errDecorate(err, "Load")
		}
		if err := a.SetUR(pair[0], pair[1], u, nil); err != nil {
			return errDecorate(err, "Load")
		}
		pos += numr
	}
	for _, pair := range pairs {
		w, err := floatSlice(terms[pos:pos+numr], a.style, "Load")
		if err != nil {
			return errDecorate(err, "Load")
		}
		if err := a.SetWR(pair[0], pair[1], w, nil); err != nil {
			return errDecorate(err, "Load")
		}
		pos += numr
	}
	return nil
}

// Build writes the adp setfl contents. xf is the C style formatter
// for floating point values ("%25.16e" when empty) and ncolumns how
// many tabulated values go on each line (5 when zero or negative).
func (a *ADP) Build(f io.Writer, xf string, ncolumns int) error {
	if xf == "" {
		xf = DefaultFloatFormat
	}
	if ncolumns <= 0 {
		ncolumns = DefaultColumns
	}
	frho, rhor, err := a.buildSymbolTables("Build")
	if err != nil {
		return err
	}
	pairs := pairList(a.symbols)
	rphi := make([][]float64, len(pairs))
	u := make([][]float64, len(pairs))
	wtab := make([][]float64, len(pairs))
	for i, pair := range pairs {
		if rphi[i], err = a.RphiR(pair[0], pair[1], nil); err != nil {
			return errDecorate(err, "Build")
		}
		if u[i], err = a.UR(pair[0], pair[1], nil); err != nil {
			return errDecorate(err, "Build")
		}
		if wtab[i], err = a.WR(pair[0], pair[1], nil); err != nil {
			return errDecorate(err, "Build")
		}
	}

	w := bufio.NewWriter(f)
	writeSetflHeader(w, a.header, a.symbols, &a.r, &a.rho, xf)
	for _, symbol := range a.symbols {
		info := a.info[symbol]
		fmt.Fprintf(w, "%d "+xf+" "+xf+" %s\n", info.Number, info.Mass, info.Alat, info.Lattice)
		block := make([]float64, 0, a.rho.num+a.r.num)
		block = append(block, frho[symbol]...)
		block = append(block, rhor[symbol]...)
		writeTable(w, block, xf, ncolumns)
	}
	//The pair tables go out as a single block: the column wrapping
	//runs through from r*phi(r) into u(r) and w(r).
	var block []float64
	for _, v := range rphi {
		block = append(block, v...)
	}
	for _, v := range u {
		block = append(block, v...)
	}
	for _, v := range wtab {
		block = append(block, v...)
	}
	writeTable(w, block, xf, ncolumns)
	if err := w.Flush(); err != nil {
		return Error{err.Error(), a.style, []string{"Build"}, true}
	}
	return nil
}
