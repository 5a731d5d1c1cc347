/*
 * fs.go, part of potentials.
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
	"strings"
)

// FS builds and analyzes LAMMPS eam/fs setfl parameter files. The
// Finnis-Sinclair variant of the setfl format tabulates one density
// function per ordered symbol pair: rho(r) of symbol s1 as seen by an
// atom of symbol s2 need not match the reversed pair, so unlike the
// pair functions the densities are keyed by both symbols in order.
type FS struct {
	header string
	style  string

	r   axis
	rho axis

	symbols []string
	info    map[string]SymbolInfo

	frho  map[string]*profile
	rhor  map[string]*profile
	rphir map[string]*profile
	phir  map[string]*profile
}

// NewFS returns an empty eam/fs setfl representation.
func NewFS() *FS {
	return &FS{
		style: "eam/fs",
		info:  make(map[string]SymbolInfo),
		frho:  make(map[string]*profile),
		rhor:  make(map[string]*profile),
		rphir: make(map[string]*profile),
		phir:  make(map[string]*profile),
	}
}

//orderedKey keys the density maps. The pair is NOT sorted.
func orderedKey(s1, s2 string) string { return s1 + "-" + s2 }

// PairStyle returns the LAMMPS pair_style the format is written for.
func (a *FS) PairStyle() string { return a.style }

// Header returns the comment lines of the file.
func (a *FS) Header() string { return a.header }

// SetHeader sets the comment lines of the file. setfl comments are
// limited to three lines.
func (a *FS) SetHeader(header string) error {
	if strings.Count(strings.TrimRight(header, "\n"), "\n") > 2 {
		return Error{HeaderThreeLines, a.style, []string{"SetHeader"}, true}
	}
	a.header = header
	return nil
}

// Symbols returns the model symbols in tabulation order.
func (a *FS) Symbols() []string {
	return append([]string(nil), a.symbols...)
}

// SymbolInfo returns the element information of the given symbol.
func (a *FS) SymbolInfo(symbol string) (SymbolInfo, error) {
	info, ok := a.info[symbol]
	if !ok {
		return SymbolInfo{}, Error{fmt.Sprintf("symbol %s not set", symbol), a.style, []string{"SymbolInfo"}, true}
	}
	return info, nil
}

// SetSymbolInfo assigns element information to a symbol, appending
// the symbol to the model if it is new.
func (a *FS) SetSymbolInfo(symbol string, number int, mass, alat float64, lattice string) {
	if _, ok := a.info[symbol]; !ok {
		a.symbols = append(a.symbols, symbol)
	}
	a.info[symbol] = SymbolInfo{symbol, number, mass, alat, lattice}
}

// NumR returns the number of r tabulation points.
func (a *FS) NumR() int { return a.r.num }

// CutoffR returns the cutoff r value.
func (a *FS) CutoffR() float64 { return a.r.cutoff }

// DeltaR returns the step between r tabulation points.
func (a *FS) DeltaR() float64 { return a.r.delta }

// R returns the r values of the tabulation, or nil if they have not
// been set.
func (a *FS) R() []float64 { return a.r.values() }

// NumRho returns the number of rho tabulation points.
func (a *FS) NumRho() int { return a.rho.num }

// CutoffRho returns the cutoff rho value.
func (a *FS) CutoffRho() float64 { return a.rho.cutoff }

// DeltaRho returns the step between rho tabulation points.
func (a *FS) DeltaRho() float64 { return a.rho.delta }

// Rho returns the rho values of the tabulation, or nil if they have
// not been set.
func (a *FS) Rho() []float64 { return a.rho.values() }

// SetR sets the r values to use for tabulation. A zero cutoff or
// delta is derived from the other one; at least one of the two must
// be given. Functions already tabulated on a previous r axis are
// refitted as splines over the old points.
func (a *FS) SetR(num int, cutoff, delta float64) error {
	oldR := a.r.values()
	if err := a.r.set(num, cutoff, delta); err != nil {
		return errDecorate(err, "SetR")
	}
	if oldR == nil {
		return nil
	}
	for _, m := range []map[string]*profile{a.rhor, a.rphir, a.phir} {
		if err := resplineMap(m, oldR); err != nil {
			return errDecorate(err, "SetR")
		}
	}
	return nil
}

// SetRho sets the rho values to use for tabulation. A zero cutoff or
// delta is derived from the other one; at least one of the two must
// be given.
func (a *FS) SetRho(num int, cutoff, delta float64) error {
	oldRho := a.rho.values()
	if err := a.rho.set(num, cutoff, delta); err != nil {
		return errDecorate(err, "SetRho")
	}
	if oldRho == nil {
		return nil
	}
	if err := resplineMap(a.frho, oldRho); err != nil {
		return errDecorate(err, "SetRho")
	}
	return nil
}

// FRho returns the F(rho) values of a symbol evaluated at rho. With
// rho nil a stored table is returned directly; a callable form is
// evaluated on the set rho values.
func (a *FS) FRho(symbol string, rho []float64) ([]float64, error) {
	p, ok := a.frho[symbol]
	if !ok || !p.isSet() {
		return nil, Error{fmt.Sprintf("F(rho) not set for symbol %s", symbol), a.style, []string{"FRho"}, true}
	}
	if rho == nil && p.table == nil && !a.rho.defined() {
		return nil, Error{RhoNotSet, a.style, []string{"FRho"}, true}
	}
	v, err := p.eval(rho, a.rho.values(), 0, false)
	if err != nil {
		return nil, errDecorate(err, "FRho")
	}
	return v, nil
}

// SetFRho assigns tabulated F(rho) values to a symbol. With rho nil
// the table must align with the set rho tabulation points; otherwise
// a cubic spline over the given rho values is stored instead.
func (a *FS) SetFRho(symbol string, table, rho []float64) error {
	if _, ok := a.info[symbol]; !ok {
		return Error{fmt.Sprintf("symbol %s not set: use SetSymbolInfo first", symbol), a.style, []string{"SetFRho"}, true}
	}
	p := getProfile(a.frho, symbol)
	if rho == nil {
		if !a.rho.defined() {
			return Error{RhoNotSet, a.style, []string{"SetFRho"}, true}
		}
		if len(table) != a.rho.num {
			return Error{TableWrongLength, a.style, []string{"SetFRho"}, true}
		}
		p.setTable(table)
		return nil
	}
	if len(table) != len(rho) {
		return Error{TableWrongLength, a.style, []string{"SetFRho"}, true}
	}
	if err := p.setSpline(rho, table); err != nil {
		return errDecorate(err, "SetFRho")
	}
	return nil
}

// SetFRhoFunc assigns the F(rho) of a symbol in closure form.
func (a *FS) SetFRhoFunc(symbol string, fn Func) error {
	if _, ok := a.info[symbol]; !ok {
		return Error{fmt.Sprintf("symbol %s not set: use SetSymbolInfo first", symbol), a.style, []string{"SetFRhoFunc"}, true}
	}
	getProfile(a.frho, symbol).setFunc(fn)
	return nil
}

func (a *FS) checkPair(s1, s2, caller string) error {
	for _, s := range []string{s1, s2} {
		if _, ok := a.info[s]; !ok {
			return Error{fmt.Sprintf("symbol %s not set: use SetSymbolInfo first", s), a.style, []string{caller}, true}
		}
	}
	return nil
}

// RhoR returns the rho(r) values of the ordered symbol pair (s1, s2)
// evaluated at r: the density contributed by an atom of s1 to an atom
// of s2. With r nil a stored table is returned directly; computed
// values are zeroed beyond the r cutoff.
func (a *FS) RhoR(s1, s2 string, r []float64) ([]float64, error) {
	key := orderedKey(s1, s2)
	p, ok := a.rhor[key]
	if !ok || !p.isSet() {
		return nil, Error{fmt.Sprintf("rho(r) not set for pair %s", key), a.style, []string{"RhoR"}, true}
	}
	if r == nil && p.table == nil && !a.r.defined() {
		return nil, Error{RNotSet, a.style, []string{"RhoR"}, true}
	}
	v, err := p.eval(r, a.r.values(), a.r.cutoff, true)
	if err != nil {
		return nil, errDecorate(err, "RhoR")
	}
	return v, nil
}

// SetRhoR assigns tabulated rho(r) values to the ordered symbol pair
// (s1, s2). With r nil the table must align with the set r tabulation
// points; otherwise a cubic spline over the given r values is stored
// instead.
func (a *FS) SetRhoR(s1, s2 string, table, r []float64) error {
	if err := a.checkPair(s1, s2, "SetRhoR"); err != nil {
		return err
	}
	p := getProfile(a.rhor, orderedKey(s1, s2))
	if r == nil {
		if !a.r.defined() {
			return Error{RNotSet, a.style, []string{"SetRhoR"}, true}
		}
		if len(table) != a.r.num {
			return Error{TableWrongLength, a.style, []string{"SetRhoR"}, true}
		}
		p.setTable(table)
		return nil
	}
	if len(table) != len(r) {
		return Error{TableWrongLength, a.style, []string{"SetRhoR"}, true}
	}
	if err := p.setSpline(r, table); err != nil {
		return errDecorate(err, "SetRhoR")
	}
	return nil
}

// SetRhoRFunc assigns the rho(r) of the ordered symbol pair (s1, s2)
// in closure form.
func (a *FS) SetRhoRFunc(s1, s2 string, fn Func) error {
	if err := a.checkPair(s1, s2, "SetRhoRFunc"); err != nil {
		return err
	}
	getProfile(a.rhor, orderedKey(s1, s2)).setFunc(fn)
	return nil
}

// RphiR returns the r*phi(r) values of a symbol pair evaluated at r.
// When r*phi(r) itself is not assigned it is derived from an assigned
// phi(r).
func (a *FS) RphiR(s1, s2 string, r []float64) ([]float64, error) {
	key := pairKey(s1, s2)
	if p, ok := a.rphir[key]; ok && p.isSet() {
		if r == nil && p.table == nil && !a.r.defined() {
			return nil, Error{RNotSet, a.style, []string{"RphiR"}, true}
		}
		v, err := p.eval(r, a.r.values(), a.r.cutoff, true)
		if err != nil {
			return nil, errDecorate(err, "RphiR")
		}
		return v, nil
	}
	if p, ok := a.phir[key]; ok && p.isSet() {
		phi, err := a.PhiR(s1, s2, r)
		if err != nil {
			return nil, errDecorate(err, "RphiR")
		}
		if r == nil {
			r = a.r.values()
		}
		v := make([]float64, len(phi))
		for i := range phi {
			v[i] = r[i] * phi[i]
		}
		return v, nil
	}
	return nil, Error{fmt.Sprintf("neither r*phi(r) nor phi(r) set for pair %s", key), a.style, []string{"RphiR"}, true}
}

// SetRphiR assigns tabulated r*phi(r) values to a symbol pair and
// drops any assigned phi(r) for the pair.
func (a *FS) SetRphiR(s1, s2 string, table, r []float64) error {
	if err := a.checkPair(s1, s2, "SetRphiR"); err != nil {
		return err
	}
	key := pairKey(s1, s2)
	p := getProfile(a.rphir, key)
	if r == nil {
		if !a.r.defined() {
			return Error{RNotSet, a.style, []string{"SetRphiR"}, true}
		}
		if len(table) != a.r.num {
			return Error{TableWrongLength, a.style, []string{"SetRphiR"}, true}
		}
		p.setTable(table)
	} else {
		if len(table) != len(r) {
			return Error{TableWrongLength, a.style, []string{"SetRphiR"}, true}
		}
		if err := p.setSpline(r, table); err != nil {
			return errDecorate(err, "SetRphiR")
		}
	}
	delete(a.phir, key)
	return nil
}

// SetRphiRFunc assigns the r*phi(r) of a symbol pair in closure form
// and drops any assigned phi(r) for the pair.
func (a *FS) SetRphiRFunc(s1, s2 string, fn Func) error {
	if err := a.checkPair(s1, s2, "SetRphiRFunc"); err != nil {
		return err
	}
	key := pairKey(s1, s2)
	getProfile(a.rphir, key).setFunc(fn)
	delete(a.phir, key)
	return nil
}

// PhiR returns the phi(r) values of a symbol pair evaluated at r.
// When phi(r) itself is not assigned it is derived from an assigned
// r*phi(r). Note that the derived value at r=0 is a division by zero.
func (a *FS) PhiR(s1, s2 string, r []float64) ([]float64, error) {
	key := pairKey(s1, s2)
	if p, ok := a.phir[key]; ok && p.isSet() {
		if r == nil && p.table == nil && !a.r.defined() {
			return nil, Error{RNotSet, a.style, []string{"PhiR"}, true}
		}
		v, err := p.eval(r, a.r.values(), a.r.cutoff, true)
		if err != nil {
			return nil, errDecorate(err, "PhiR")
		}
		return v, nil
	}
	if p, ok := a.rphir[key]; ok && p.isSet() {
		rphi, err := a.RphiR(s1, s2, r)
		if err != nil {
			return nil, errDecorate(err, "PhiR")
		}
		if r == nil {
			r = a.r.values()
		}
		v := make([]float64, len(rphi))
		for i := range rphi {
			v[i] = rphi[i] / r[i]
		}
		return v, nil
	}
	return nil, Error{fmt.Sprintf("neither r*phi(r) nor phi(r) set for pair %s", key), a.style, []string{"PhiR"}, true}
}

// SetPhiR assigns tabulated phi(r) values to a symbol pair and drops
// any assigned r*phi(r) for the pair.
func (a *FS) SetPhiR(s1, s2 string, table, r []float64) error {
	if err := a.checkPair(s1, s2, "SetPhiR"); err != nil {
		return err
	}
	key := pairKey(s1, s2)
	p := getProfile(a.phir, key)
	if r == nil {
		if !a.r.defined() {
			return Error{RNotSet, a.style, []string{"SetPhiR"}, true}
		}
		if len(table) != a.r.num {
			return Error{TableWrongLength, a.style, []string{"SetPhiR"}, true}
		}
		p.setTable(table)
	} else {
		if len(table) != len(r) {
			return Error{TableWrongLength, a.style, []string{"SetPhiR"}, true}
		}
		if err := p.setSpline(r, table); err != nil {
			return errDecorate(err, "SetPhiR")
		}
	}
	delete(a.rphir, key)
	return nil
}

// SetPhiRFunc assigns the phi(r) of a symbol pair in closure form and
// drops any assigned r*phi(r) for the pair.
func (a *FS) SetPhiRFunc(s1, s2 string, fn Func) error {
	if err := a.checkPair(s1, s2, "SetPhiRFunc"); err != nil {
		return err
	}
	key := pairKey(s1, s2)
	getProfile(a.phir, key).setFunc(fn)
	delete(a.rphir, key)
	return nil
}

// Load reads an eam/fs setfl parameter file.
func (a *FS) Load(f io.Reader) error {
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
	expected := nsym*(4+numrho) + nsym*nsym*numr + nsets*numr
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
		for _, symbol2 := range symbols {
			rhor, err := floatSlice(terms[pos:pos+numr], a.style, "Load")
			if err != nil {
				return errDecorate(err, "Load")
			}
			if err := a.SetRhoR(symbol, symbol2, rhor, nil); err != nil {
				return errDecorate(err, "Load")
			}
			pos += numr
		}
	}
	for _, pair := range pairList(symbols) {
		rphi, err := floatSlice(terms[pos:pos+numr], a.style, "Load")
		if err != nil {
			return errDecorate(err, "Load")
		}
		if err := a.SetRphiR(pair[0], pair[1], rphi, nil); err != nil {
			return errDecorate(err, "Load")
		}
		pos += numr
	}
	return nil
}

// Build writes the eam/fs setfl contents. xf is the C style formatter
// for floating point values ("%25.16e" when empty) and ncolumns how
// many tabulated values go on each line (5 when zero or negative).
func (a *FS) Build(f io.Writer, xf string, ncolumns int) error {
	if xf == "" {
		xf = DefaultFloatFormat
	}
	if ncolumns <= 0 {
		ncolumns = DefaultColumns
	}
	if len(a.symbols) == 0 {
		return Error{NoSymbols, a.style, []string{"Build"}, true}
	}
	frho := make(map[string][]float64, len(a.symbols))
	rhor := make(map[string][]float64)
	for _, symbol := range a.symbols {
		v, err := a.FRho(symbol, nil)
		if err != nil {
			return errDecorate(err, "Build")
		}
		frho[symbol] = v
		for _, symbol2 := range a.symbols {
			v, err := a.RhoR(symbol, symbol2, nil)
			if err != nil {
				return errDecorate(err, "Build")
			}
			rhor[orderedKey(symbol, symbol2)] = v
		}
	}
	pairs := pairList(a.symbols)
	rphi := make([][]float64, len(pairs))
	for i, pair := range pairs {
		v, err := a.RphiR(pair[0], pair[1], nil)
		if err != nil {
			return errDecorate(err, "Build")
		}
		rphi[i] = v
	}

	w := bufio.NewWriter(f)
	writeSetflHeader(w, a.header, a.symbols, &a.r, &a.rho, xf)
	for _, symbol := range a.symbols {
		info := a.info[symbol]
		fmt.Fprintf(w, "%d "+xf+" "+xf+" %s\n", info.Number, info.Mass, info.Alat, info.Lattice)
		block := make([]float64, 0, a.rho.num+len(a.symbols)*a.r.num)
		block = append(block, frho[symbol]...)
		for _, symbol2 := range a.symbols {
			block = append(block, rhor[orderedKey(symbol, symbol2)]...)
		}
		writeTable(w, block, xf, ncolumns)
	}
	var block []float64
	for _, v := range rphi {
		block = append(block, v...)
	}
	writeTable(w, block, xf, ncolumns)
	if err := w.Flush(); err != nil {
		return Error{err.Error(), a.style, []string{"Build"}, true}
	}
	return nil
}
