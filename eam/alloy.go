/*
 * alloy.go, part of potentials.
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
	"sort"
	"strconv"
	"strings"
)

// SymbolInfo carries the element information of one of the symbols of
// a setfl parameter file.
type SymbolInfo struct {
	Symbol  string
	Number  int
	Mass    float64
	Alat    float64
	Lattice string
}

//pairKey builds the canonical key for pair interaction maps. The
//symbols are sorted so A-B and B-A address the same entry.
func pairKey(s1, s2 string) string {
	if s2 < s1 {
		s1, s2 = s2, s1
	}
	return s1 + "-" + s2
}

//pairList enumerates the symbol pairs in the order the setfl formats
//tabulate them: for each symbol, all pairs with the symbols up to and
//including itself.
func pairList(symbols []string) [][2]string {
	var pairs [][2]string
	for i, s1 := range symbols {
		for _, s2 := range symbols[:i+1] {
			pairs = append(pairs, [2]string{s1, s2})
		}
	}
	return pairs
}

// Alloy builds and analyzes LAMMPS eam/alloy setfl parameter files. A
// setfl file covers several elements at once: per symbol an embedding
// function F(rho) and a density function rho(r), plus one pair
// function per unordered symbol pair, tabulated as r*phi(r). Pair
// functions can be assigned either as r*phi(r) or phi(r); the file
// always stores r*phi(r).
type Alloy struct {
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

// NewAlloy returns an empty eam/alloy setfl representation.
func NewAlloy() *Alloy {
	return &Alloy{
		style: "eam/alloy",
		info:  make(map[string]SymbolInfo),
		frho:  make(map[string]*profile),
		rhor:  make(map[string]*profile),
		rphir: make(map[string]*profile),
		phir:  make(map[string]*profile),
	}
}

// PairStyle returns the LAMMPS pair_style the format is written for.
func (a *Alloy) PairStyle() string { return a.style }

// Header returns the comment lines of the file.
func (a *Alloy) Header() string { return a.header }

// SetHeader sets the comment lines of the file. setfl comments are
// limited to three lines.
func (a *Alloy) SetHeader(header string) error {
	if strings.Count(strings.TrimRight(header, "\n"), "\n") > 2 {
		return Error{HeaderThreeLines, a.style, []string{"SetHeader"}, true}
	}
	a.header = header
	return nil
}

// Symbols returns the model symbols in tabulation order.
func (a *Alloy) Symbols() []string {
	return append([]string(nil), a.symbols...)
}

// SymbolInfo returns the element information of the given symbol.
func (a *Alloy) SymbolInfo(symbol string) (SymbolInfo, error) {
	info, ok := a.info[symbol]
	if !ok {
		return SymbolInfo{}, Error{fmt.Sprintf("symbol %s not set", symbol), a.style, []string{"SymbolInfo"}, true}
	}
	return info, nil
}

// SetSymbolInfo assigns element information to a symbol, appending
// the symbol to the model if it is new.
func (a *Alloy) SetSymbolInfo(symbol string, number int, mass, alat float64, lattice string) {
	if _, ok := a.info[symbol]; !ok {
		a.symbols = append(a.symbols, symbol)
	}
	a.info[symbol] = SymbolInfo{symbol, number, mass, alat, lattice}
}

// NumR returns the number of r tabulation points.
func (a *Alloy) NumR() int { return a.r.num }

// CutoffR returns the cutoff r value.
func (a *Alloy) CutoffR() float64 { return a.r.cutoff }

// DeltaR returns the step between r tabulation points.
func (a *Alloy) DeltaR() float64 { return a.r.delta }

// R returns the r values of the tabulation, or nil if they have not
// been set.
func (a *Alloy) R() []float64 { return a.r.values() }

// NumRho returns the number of rho tabulation points.
func (a *Alloy) NumRho() int { return a.rho.num }

// CutoffRho returns the cutoff rho value.
func (a *Alloy) CutoffRho() float64 { return a.rho.cutoff }

// DeltaRho returns the step between rho tabulation points.
func (a *Alloy) DeltaRho() float64 { return a.rho.delta }

// Rho returns the rho values of the tabulation, or nil if they have
// not been set.
func (a *Alloy) Rho() []float64 { return a.rho.values() }

//respline refits every tabulated profile in the map as a spline over
//the old axis points, so the tables follow an axis change.
func resplineMap(m map[string]*profile, oldx []float64) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		p := m[k]
		if p.table == nil {
			continue
		}
		if err := p.setSpline(oldx, p.table); err != nil {
			return err
		}
	}
	return nil
}

// SetR sets the r values to use for tabulation. A zero cutoff or
// delta is derived from the other one; at least one of the two must
// be given. Functions already tabulated on a previous r axis are
// refitted as splines over the old points.
func (a *Alloy) SetR(num int, cutoff, delta float64) error {
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
func (a *Alloy) SetRho(num int, cutoff, delta float64) error {
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

//profileAt returns the profile stored under key, creating it if asked
//to.
func getProfile(m map[string]*profile, key string) *profile {
	p, ok := m[key]
	if !ok {
		p = &profile{}
		m[key] = p
	}
	return p
}

// FRho returns the F(rho) values of a symbol evaluated at rho. With
// rho nil a stored table is returned directly; a callable form is
// evaluated on the set rho values.
func (a *Alloy) FRho(symbol string, rho []float64) ([]float64, error) {
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
func (a *Alloy) SetFRho(symbol string, table, rho []float64) error {
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
func (a *Alloy) SetFRhoFunc(symbol string, fn Func) error {
	if _, ok := a.info[symbol]; !ok {
		return Error{fmt.Sprintf("symbol %s not set: use SetSymbolInfo first", symbol), a.style, []string{"SetFRhoFunc"}, true}
	}
	getProfile(a.frho, symbol).setFunc(fn)
	return nil
}

// RhoR returns the rho(r) values of a symbol evaluated at r. With r
// nil a stored table is returned directly; computed values are zeroed
// beyond the r cutoff.
func (a *Alloy) RhoR(symbol string, r []float64) ([]float64, error) {
	p, ok := a.rhor[symbol]
	if !ok || !p.isSet() {
		return nil, Error{fmt.Sprintf("rho(r) not set for symbol %s", symbol), a.style, []string{"RhoR"}, true}
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

// SetRhoR assigns tabulated rho(r) values to a symbol. With r nil the
// table must align with the set r tabulation points; otherwise a
// cubic spline over the given r values is stored instead.
func (a *Alloy) SetRhoR(symbol string, table, r []float64) error {
	if _, ok := a.info[symbol]; !ok {
		return Error{fmt.Sprintf("symbol %s not set: use SetSymbolInfo first", symbol), a.style, []string{"SetRhoR"}, true}
	}
	p := getProfile(a.rhor, symbol)
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

// SetRhoRFunc assigns the rho(r) of a symbol in closure form.
func (a *Alloy) SetRhoRFunc(symbol string, fn Func) error {
	if _, ok := a.info[symbol]; !ok {
		return Error{fmt.Sprintf("symbol %s not set: use SetSymbolInfo first", symbol), a.style, []string{"SetRhoRFunc"}, true}
	}
	getProfile(a.rhor, symbol).setFunc(fn)
	return nil
}

//checkPair verifies both symbols of a pair interaction are set.
func (a *Alloy) checkPair(s1, s2, caller string) error {
	for _, s := range []string{s1, s2} {
		if _, ok := a.info[s]; !ok {
			return Error{fmt.Sprintf("symbol %s not set: use SetSymbolInfo first", s), a.style, []string{caller}, true}
		}
	}
	return nil
}

// RphiR returns the r*phi(r) values of a symbol pair evaluated at r.
// When r*phi(r) itself is not assigned it is derived from an assigned
// phi(r). With r nil a stored table is returned directly.
func (a *Alloy) RphiR(s1, s2 string, r []float64) ([]float64, error) {
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
func (a *Alloy) SetRphiR(s1, s2 string, table, r []float64) error {
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
func (a *Alloy) SetRphiRFunc(s1, s2 string, fn Func) error {
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
func (a *Alloy) PhiR(s1, s2 string, r []float64) ([]float64, error) {
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
func (a *Alloy) SetPhiR(s1, s2 string, table, r []float64) error {
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
func (a *Alloy) SetPhiRFunc(s1, s2 string, fn Func) error {
	if err := a.checkPair(s1, s2, "SetPhiRFunc"); err != nil {
		return err
	}
	key := pairKey(s1, s2)
	getProfile(a.phir, key).setFunc(fn)
	delete(a.rphir, key)
	return nil
}

//loadSetflPrelude parses the shared head of a setfl file: three
//comment lines, the symbol count line and the grid line. It returns
//the declared symbols and the line index where the tabulated values
//start.
func loadSetflPrelude(lines []string, style string, setHeader func(string) error, setR, setRho func(int, float64, float64) error) ([]string, int, error) {
	if len(lines) < 6 {
		return nil, 0, Error{ShortFile, style, []string{"Load"}, true}
	}
	header := strings.TrimRight(strings.Join(lines[0:3], "\n"), " \t")
	if err := setHeader(header); err != nil {
		return nil, 0, errDecorate(err, "Load")
	}
	terms := strings.Fields(lines[3])
	if len(terms) < 2 {
		return nil, 0, Error{"invalid symbols line: expected count and symbols", style, []string{"Load"}, true}
	}
	nsym, err := strconv.Atoi(terms[0])
	if err != nil || nsym != len(terms)-1 {
		return nil, 0, Error{"invalid symbols line: count and symbols do not match", style, []string{"Load"}, true}
	}
	symbols := terms[1:]
	numrho, deltarho, numr, deltar, cutoffr, err := parseGridLine(lines[4], style, "Load")
	if err != nil {
		return nil, 0, errDecorate(err, "Load")
	}
	if err := setR(numr, cutoffr, deltar); err != nil {
		return nil, 0, errDecorate(err, "Load")
	}
	if err := setRho(numrho, 0, deltarho); err != nil {
		return nil, 0, errDecorate(err, "Load")
	}
	return symbols, 5, nil
}

// Load reads an eam/alloy setfl parameter file.
func (a *Alloy) Load(f io.Reader) error {
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
	expected := nsym*(4+numrho+numr) + nsets*numr
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

//buildPrelude checks the state needed by any setfl Build and gathers
//the per symbol F(rho) and rho(r) tables.
func (a *Alloy) buildSymbolTables(caller string) (map[string][]float64, map[string][]float64, error) {
	if len(a.symbols) == 0 {
		return nil, nil, Error{NoSymbols, a.style, []string{caller}, true}
	}
	frho := make(map[string][]float64, len(a.symbols))
	rhor := make(map[string][]float64, len(a.symbols))
	for _, symbol := range a.symbols {
		f, err := a.FRho(symbol, nil)
		if err != nil {
			return nil, nil, errDecorate(err, caller)
		}
		frho[symbol] = f
		rho, err := a.RhoR(symbol, nil)
		if err != nil {
			return nil, nil, errDecorate(err, caller)
		}
		rhor[symbol] = rho
	}
	return frho, rhor, nil
}

// Build writes the eam/alloy setfl contents. xf is the C style
// formatter for floating point values ("%25.16e" when empty) and
// ncolumns how many tabulated values go on each line (5 when zero or
// negative).
func (a *Alloy) Build(f io.Writer, xf string, ncolumns int) error {
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
		block := make([]float64, 0, a.rho.num+a.r.num)
		block = append(block, frho[symbol]...)
		block = append(block, rhor[symbol]...)
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
