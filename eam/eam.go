/*
 * eam.go, part of potentials.
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

//Package eam builds, reads, writes and converts the tabulated
//parameter files of the EAM family of interatomic potentials: the
//funcfl format of the LAMMPS eam pair_style and the setfl formats of
//the eam/alloy, eam/fs and adp pair_styles.
package eam

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"
)

//Conversion constants for Hartree to eV and Bohr to Angstrom, used
//when converting the funcfl effective charge function z(r) to the
//pair potential phi(r). The LAMMPS values are what LAMMPS itself
//uses; the precise pair carries the full CODATA precision.
const (
	LAMMPSHartree  = 27.2
	LAMMPSBohr     = 0.529
	PreciseHartree = 27.211386245987406
	PreciseBohr    = 0.529177210903
)

// EAM builds and analyzes LAMMPS funcfl eam parameter files. A funcfl
// file describes a single element through three tabulated functions:
// the embedding energy F(rho), the effective charge z(r) and the
// electron density rho(r). The pair interaction can equivalently be
// assigned as z(r), r*phi(r) or phi(r); the other two forms are
// derived on demand through
//
//	r*phi(r) = hartree * bohr * z(r)^2
//
// and setting any of the three drops the other two.
type EAM struct {
	header  string
	hartree float64
	bohr    float64

	r   axis
	rho axis

	number  int
	mass    float64
	alat    float64
	lattice string
	hasInfo bool

	frho  profile
	rhor  profile
	zr    profile
	phir  profile
	rphir profile
}

// NewEAM returns an empty funcfl representation using the LAMMPS
// conversion constants.
func NewEAM() *EAM {
	return &EAM{hartree: LAMMPSHartree, bohr: LAMMPSBohr}
}

// SetConstants overrides the Hartree to eV and Bohr to Angstrom
// conversion constants.
func (e *EAM) SetConstants(hartree, bohr float64) {
	e.hartree = hartree
	e.bohr = bohr
}

// PairStyle returns the LAMMPS pair_style the format is written for.
func (e *EAM) PairStyle() string { return "eam" }

// Hartree returns the Hartree to eV conversion constant in use.
func (e *EAM) Hartree() float64 { return e.hartree }

// Bohr returns the Bohr to Angstrom conversion constant in use.
func (e *EAM) Bohr() float64 { return e.bohr }

// Header returns the comment line of the file.
func (e *EAM) Header() string { return e.header }

// SetHeader sets the comment line of the file. funcfl comments are
// limited to a single line.
func (e *EAM) SetHeader(header string) error {
	header = strings.TrimSpace(header)
	if strings.Contains(header, "\n") {
		return Error{HeaderOneLine, "eam", []string{"SetHeader"}, true}
	}
	e.header = header
	return nil
}

// NumR returns the number of r tabulation points.
func (e *EAM) NumR() int { return e.r.num }

// CutoffR returns the cutoff r value.
func (e *EAM) CutoffR() float64 { return e.r.cutoff }

// DeltaR returns the step between r tabulation points.
func (e *EAM) DeltaR() float64 { return e.r.delta }

// R returns the r values of the tabulation, or nil if they have not
// been set.
func (e *EAM) R() []float64 { return e.r.values() }

// NumRho returns the number of rho tabulation points.
func (e *EAM) NumRho() int { return e.rho.num }

// CutoffRho returns the cutoff rho value.
func (e *EAM) CutoffRho() float64 { return e.rho.cutoff }

// DeltaRho returns the step between rho tabulation points.
func (e *EAM) DeltaRho() float64 { return e.rho.delta }

// Rho returns the rho values of the tabulation, or nil if they have
// not been set.
func (e *EAM) Rho() []float64 { return e.rho.values() }

// SetR sets the r values to use for tabulation. A zero cutoff or
// delta is derived from the other one; at least one of the two must
// be given. Functions already tabulated on a previous r axis are
// refitted as splines over the old points, so later evaluations land
// on the new axis.
func (e *EAM) SetR(num int, cutoff, delta float64) error {
	oldR := e.r.values()
	if err := e.r.set(num, cutoff, delta); err != nil {
		return errDecorate(err, "SetR")
	}
	if oldR == nil {
		return nil
	}
	if e.rhor.table != nil {
		if err := e.rhor.setSpline(oldR, e.rhor.table); err != nil {
			return errDecorate(err, "SetR")
		}
	}
	//Only one of the three pair forms can hold a table.
	var pair *profile
	switch {
	case e.rphir.table != nil:
		pair = &e.rphir
	case e.phir.table != nil:
		pair = &e.phir
	case e.zr.table != nil:
		pair = &e.zr
	}
	if pair != nil {
		if err := pair.setSpline(oldR, pair.table); err != nil {
			return errDecorate(err, "SetR")
		}
	}
	return nil
}

// SetRho sets the rho values to use for tabulation. A zero cutoff or
// delta is derived from the other one; at least one of the two must
// be given.
func (e *EAM) SetRho(num int, cutoff, delta float64) error {
	oldRho := e.rho.values()
	if err := e.rho.set(num, cutoff, delta); err != nil {
		return errDecorate(err, "SetRho")
	}
	if oldRho != nil && e.frho.table != nil {
		if err := e.frho.setSpline(oldRho, e.frho.table); err != nil {
			return errDecorate(err, "SetRho")
		}
	}
	return nil
}

// SymbolInfo returns the element number, mass, lattice constant and
// lattice type assigned to the potential.
func (e *EAM) SymbolInfo() (number int, mass, alat float64, lattice string, err error) {
	if !e.hasInfo {
		return 0, 0, 0, "", Error{"no element info set: use SetSymbolInfo", "eam", []string{"SymbolInfo"}, true}
	}
	return e.number, e.mass, e.alat, e.lattice, nil
}

// SetSymbolInfo assigns the element number, mass, lattice constant
// and lattice type of the potential.
func (e *EAM) SetSymbolInfo(number int, mass, alat float64, lattice string) {
	e.number = number
	e.mass = mass
	e.alat = alat
	e.lattice = lattice
	e.hasInfo = true
}

// FRho returns the F(rho) values evaluated at rho. With rho nil a
// stored table is returned directly; a callable form is evaluated on
// the set rho values.
func (e *EAM) FRho(rho []float64) ([]float64, error) {
	if !e.frho.isSet() {
		return nil, Error{"F(rho) not set", "eam", []string{"FRho"}, true}
	}
	if rho == nil && e.frho.table == nil && !e.rho.defined() {
		return nil, Error{RhoNotSet, "eam", []string{"FRho"}, true}
	}
	v, err := e.frho.eval(rho, e.rho.values(), 0, false)
	if err != nil {
		return nil, errDecorate(err, "FRho")
	}
	return v, nil
}

// SetFRho assigns tabulated F(rho) values. With rho nil the table
// must align with the set rho tabulation points; otherwise a cubic
// spline over the given rho values is stored instead.
func (e *EAM) SetFRho(table, rho []float64) error {
	if rho == nil {
		if !e.rho.defined() {
			return Error{RhoNotSet, "eam", []string{"SetFRho"}, true}
		}
		if len(table) != e.rho.num {
			return Error{TableWrongLength, "eam", []string{"SetFRho"}, true}
		}
		e.frho.setTable(table)
		return nil
	}
	if len(table) != len(rho) {
		return Error{TableWrongLength, "eam", []string{"SetFRho"}, true}
	}
	if err := e.frho.setSpline(rho, table); err != nil {
		return errDecorate(err, "SetFRho")
	}
	return nil
}

// SetFRhoFunc assigns F(rho) in closure form.
func (e *EAM) SetFRhoFunc(fn Func) { e.frho.setFunc(fn) }

// RhoR returns the rho(r) values evaluated at r. With r nil a stored
// table is returned directly; computed values are zeroed beyond the r
// cutoff.
func (e *EAM) RhoR(r []float64) ([]float64, error) {
	if !e.rhor.isSet() {
		return nil, Error{"rho(r) not set", "eam", []string{"RhoR"}, true}
	}
	if r == nil && e.rhor.table == nil && !e.r.defined() {
		return nil, Error{RNotSet, "eam", []string{"RhoR"}, true}
	}
	v, err := e.rhor.eval(r, e.r.values(), e.r.cutoff, true)
	if err != nil {
		return nil, errDecorate(err, "RhoR")
	}
	return v, nil
}

// SetRhoR assigns tabulated rho(r) values. With r nil the table must
// align with the set r tabulation points; otherwise a cubic spline
// over the given r values is stored instead.
func (e *EAM) SetRhoR(table, r []float64) error {
	if r == nil {
		if !e.r.defined() {
			return Error{RNotSet, "eam", []string{"SetRhoR"}, true}
		}
		if len(table) != e.r.num {
			return Error{TableWrongLength, "eam", []string{"SetRhoR"}, true}
		}
		e.rhor.setTable(table)
		return nil
	}
	if len(table) != len(r) {
		return Error{TableWrongLength, "eam", []string{"SetRhoR"}, true}
	}
	if err := e.rhor.setSpline(r, table); err != nil {
		return errDecorate(err, "SetRhoR")
	}
	return nil
}

// SetRhoRFunc assigns rho(r) in closure form.
func (e *EAM) SetRhoRFunc(fn Func) { e.rhor.setFunc(fn) }

// ZR returns the z(r) values evaluated at r. When z(r) itself is not
// assigned it is derived from r*phi(r) or phi(r).
func (e *EAM) ZR(r []float64) ([]float64, error) {
	switch {
	case e.zr.isSet():
		if r == nil && e.zr.table == nil && !e.r.defined() {
			return nil, Error{RNotSet, "eam", []string{"ZR"}, true}
		}
		v, err := e.zr.eval(r, e.r.values(), e.r.cutoff, true)
		if err != nil {
			return nil, errDecorate(err, "ZR")
		}
		return v, nil
	case e.rphir.isSet():
		rphi, err := e.RphiR(r)
		if err != nil {
			return nil, errDecorate(err, "ZR")
		}
		v := make([]float64, len(rphi))
		for i, rp := range rphi {
			v[i] = math.Sqrt(rp / (e.hartree * e.bohr))
		}
		return v, nil
	case e.phir.isSet():
		phi, err := e.PhiR(r)
		if err != nil {
			return nil, errDecorate(err, "ZR")
		}
		if r == nil {
			r = e.r.values()
		}
		v := make([]float64, len(phi))
		for i := range phi {
			v[i] = math.Sqrt(r[i] * phi[i] / (e.hartree * e.bohr))
		}
		return v, nil
	}
	return nil, Error{"neither z(r), r*phi(r) nor phi(r) set", "eam", []string{"ZR"}, true}
}

// SetZR assigns tabulated z(r) values and drops any assigned r*phi(r)
// and phi(r).
func (e *EAM) SetZR(table, r []float64) error {
	if r == nil {
		if !e.r.defined() {
			return Error{RNotSet, "eam", []string{"SetZR"}, true}
		}
		if len(table) != e.r.num {
			return Error{TableWrongLength, "eam", []string{"SetZR"}, true}
		}
		e.zr.setTable(table)
	} else {
		if len(table) != len(r) {
			return Error{TableWrongLength, "eam", []string{"SetZR"}, true}
		}
		if err := e.zr.setSpline(r, table); err != nil {
			return errDecorate(err, "SetZR")
		}
	}
	e.rphir = profile{}
	e.phir = profile{}
	return nil
}

// SetZRFunc assigns z(r) in closure form and drops any assigned
// r*phi(r) and phi(r).
func (e *EAM) SetZRFunc(fn Func) {
	e.zr.setFunc(fn)
	e.rphir = profile{}
	e.phir = profile{}
}

// RphiR returns the r*phi(r) values evaluated at r. When r*phi(r)
// itself is not assigned it is derived from z(r) or phi(r).
func (e *EAM) RphiR(r []float64) ([]float64, error) {
	switch {
	case e.rphir.isSet():
		if r == nil && e.rphir.table == nil && !e.r.defined() {
			return nil, Error{RNotSet, "eam", []string{"RphiR"}, true}
		}
		v, err := e.rphir.eval(r, e.r.values(), e.r.cutoff, true)
		if err != nil {
			return nil, errDecorate(err, "RphiR")
		}
		return v, nil
	case e.zr.isSet():
		z, err := e.ZR(r)
		if err != nil {
			return nil, errDecorate(err, "RphiR")
		}
		v := make([]float64, len(z))
		for i, zi := range z {
			v[i] = e.hartree * e.bohr * zi * zi
		}
		return v, nil
	case e.phir.isSet():
		phi, err := e.PhiR(r)
		if err != nil {
			return nil, errDecorate(err, "RphiR")
		}
		if r == nil {
			r = e.r.values()
		}
		v := make([]float64, len(phi))
		for i := range phi {
			v[i] = r[i] * phi[i]
		}
		return v, nil
	}
	return nil, Error{"neither z(r), r*phi(r) nor phi(r) set", "eam", []string{"RphiR"}, true}
}

// SetRphiR assigns tabulated r*phi(r) values and drops any assigned
// z(r) and phi(r).
func (e *EAM) SetRphiR(table, r []float64) error {
	if r == nil {
		if !e.r.defined() {
			return Error{RNotSet, "eam", []string{"SetRphiR"}, true}
		}
		if len(table) != e.r.num {
			return Error{TableWrongLength, "eam", []string{"SetRphiR"}, true}
		}
		e.rphir.setTable(table)
	} else {
		if len(table) != len(r) {
			return Error{TableWrongLength, "eam", []string{"SetRphiR"}, true}
		}
		if err := e.rphir.setSpline(r, table); err != nil {
			return errDecorate(err, "SetRphiR")
		}
	}
	e.zr = profile{}
	e.phir = profile{}
	return nil
}

// SetRphiRFunc assigns r*phi(r) in closure form and drops any
// assigned z(r) and phi(r).
func (e *EAM) SetRphiRFunc(fn Func) {
	e.rphir.setFunc(fn)
	e.zr = profile{}
	e.phir = profile{}
}

// PhiR returns the phi(r) values evaluated at r. When phi(r) itself
// is not assigned it is derived from z(r) or r*phi(r). Note that the
// derived value at r=0 is a division by zero.
func (e *EAM) PhiR(r []float64) ([]float64, error) {
	switch {
	case e.phir.isSet():
		if r == nil && e.phir.table == nil && !e.r.defined() {
			return nil, Error{RNotSet, "eam", []string{"PhiR"}, true}
		}
		v, err := e.phir.eval(r, e.r.values(), e.r.cutoff, true)
		if err != nil {
			return nil, errDecorate(err, "PhiR")
		}
		return v, nil
	case e.zr.isSet():
		z, err := e.ZR(r)
		if err != nil {
			return nil, errDecorate(err, "PhiR")
		}
		if r == nil {
			r = e.r.values()
		}
		v := make([]float64, len(z))
		for i, zi := range z {
			v[i] = e.hartree * e.bohr * zi * zi / r[i]
		}
		return v, nil
	case e.rphir.isSet():
		rphi, err := e.RphiR(r)
		if err != nil {
			return nil, errDecorate(err, "PhiR")
		}
		if r == nil {
			r = e.r.values()
		}
		v := make([]float64, len(rphi))
		for i := range rphi {
			v[i] = rphi[i] / r[i]
		}
		return v, nil
	}
	return nil, Error{"neither z(r), r*phi(r) nor phi(r) set", "eam", []string{"PhiR"}, true}
}

// SetPhiR assigns tabulated phi(r) values and drops any assigned z(r)
// and r*phi(r).
func (e *EAM) SetPhiR(table, r []float64) error {
	if r == nil {
		if !e.r.defined() {
			return Error{RNotSet, "eam", []string{"SetPhiR"}, true}
		}
		if len(table) != e.r.num {
			return Error{TableWrongLength, "eam", []string{"SetPhiR"}, true}
		}
		e.phir.setTable(table)
	} else {
		if len(table) != len(r) {
			return Error{TableWrongLength, "eam", []string{"SetPhiR"}, true}
		}
		if err := e.phir.setSpline(r, table); err != nil {
			return errDecorate(err, "SetPhiR")
		}
	}
	e.zr = profile{}
	e.rphir = profile{}
	return nil
}

// SetPhiRFunc assigns phi(r) in closure form and drops any assigned
// z(r) and r*phi(r).
func (e *EAM) SetPhiRFunc(fn Func) {
	e.phir.setFunc(fn)
	e.zr = profile{}
	e.rphir = profile{}
}

// Load reads a funcfl parameter file.
func (e *EAM) Load(f io.Reader) error {
	lines, err := readLines(f, "eam")
	if err != nil {
		return errDecorate(err, "Load")
	}
	if len(lines) < 4 {
		return Error{ShortFile, "eam", []string{"Load"}, true}
	}
	if err := e.SetHeader(lines[0]); err != nil {
		return errDecorate(err, "Load")
	}
	number, mass, alat, lattice, err := parseSymbolInfo(strings.Fields(lines[1]), "eam", "Load")
	if err != nil {
		return errDecorate(err, "Load")
	}
	e.SetSymbolInfo(number, mass, alat, lattice)

	numrho, deltarho, numr, deltar, cutoffr, err := parseGridLine(lines[2], "eam", "Load")
	if err != nil {
		return errDecorate(err, "Load")
	}
	if err := e.SetR(numr, cutoffr, deltar); err != nil {
		return errDecorate(err, "Load")
	}
	if err := e.SetRho(numrho, 0, deltarho); err != nil {
		return errDecorate(err, "Load")
	}

	terms := fieldsAll(lines[3:])
	expected := numrho + 2*numr
	if len(terms) != expected {
		return Error{fmt.Sprintf("invalid number of tabulated values: %d expected, %d found", expected, len(terms)), "eam", []string{"Load"}, true}
	}
	vals, err := floatSlice(terms, "eam", "Load")
	if err != nil {
		return errDecorate(err, "Load")
	}
	if err := e.SetFRho(vals[:numrho], nil); err != nil {
		return errDecorate(err, "Load")
	}
	if err := e.SetZR(vals[numrho:numrho+numr], nil); err != nil {
		return errDecorate(err, "Load")
	}
	if err := e.SetRhoR(vals[numrho+numr:], nil); err != nil {
		return errDecorate(err, "Load")
	}
	return nil
}

// Build writes the funcfl contents. xf is the C style formatter for
// floating point values ("%25.16e" when empty) and ncolumns how many
// tabulated values go on each line (5 when zero or negative).
func (e *EAM) Build(f io.Writer, xf string, ncolumns int) error {
	if xf == "" {
		xf = DefaultFloatFormat
	}
	if ncolumns <= 0 {
		ncolumns = DefaultColumns
	}
	if !e.hasInfo {
		return Error{"no element info set: use SetSymbolInfo", "eam", []string{"Build"}, true}
	}
	frho, err := e.FRho(nil)
	if err != nil {
		return errDecorate(err, "Build")
	}
	zr, err := e.ZR(nil)
	if err != nil {
		return errDecorate(err, "Build")
	}
	rhor, err := e.RhoR(nil)
	if err != nil {
		return errDecorate(err, "Build")
	}

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", e.header)
	fmt.Fprintf(w, "%d "+xf+" "+xf+" %s\n", e.number, e.mass, e.alat, e.lattice)
	fmt.Fprintf(w, "%d "+xf+" %d "+xf+" "+xf+"\n", e.rho.num, e.rho.delta, e.r.num, e.r.delta, e.r.cutoff)

	vals := make([]float64, 0, len(frho)+len(zr)+len(rhor))
	vals = append(vals, frho...)
	vals = append(vals, zr...)
	vals = append(vals, rhor...)
	writeTable(w, vals, xf, ncolumns)
	if err := w.Flush(); err != nil {
		return Error{err.Error(), "eam", []string{"Build"}, true}
	}
	return nil
}
