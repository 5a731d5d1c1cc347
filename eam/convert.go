/*
 * convert.go, part of potentials.
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
	"strings"

	"gonum.org/v1/gonum/floats"
)

//gridTol is the relative tolerance used when deciding whether two
//tabulation axes coincide and tables can be copied without refitting.
const gridTol = 1e-8

// AlloyOptions overrides the tabulation grid and header a converter
// would otherwise take from its inputs. Zero fields keep the derived
// values.
type AlloyOptions struct {
	NumR    int
	CutoffR float64
	DeltaR  float64

	NumRho    int
	CutoffRho float64
	DeltaRho  float64

	Header string
}

func sameGrid(a, b []float64) bool {
	return len(a) == len(b) && floats.EqualApprox(a, b, gridTol)
}

// ToAlloy merges single element funcfl potentials into one eam/alloy
// setfl model, one funcfl per symbol. The diagonal pair functions are
// taken from each funcfl; the cross pairs are rebuilt from the
// effective charges as
//
//	r*phi_ij(r) = 27.2 * 0.529 * z_i(r) * z_j(r)
//
// which is how LAMMPS itself mixes funcfl files. Unless overridden
// through opts, the finest input grid (the one with the most points)
// becomes the tabulation grid of the alloy; funcfl tables on any
// other grid are refitted onto it. opts may be nil.
func ToAlloy(eams []*EAM, symbols []string, opts *AlloyOptions) (*Alloy, error) {
	if len(eams) == 0 {
		return nil, Error{"at least one funcfl potential is required", "eam/alloy", []string{"ToAlloy"}, true}
	}
	if len(eams) != len(symbols) {
		return nil, Error{"one symbol per funcfl potential is required", "eam/alloy", []string{"ToAlloy"}, true}
	}
	if opts == nil {
		opts = &AlloyOptions{}
	}
	alloy := NewAlloy()

	numr, cutoffr, deltar := opts.NumR, opts.CutoffR, opts.DeltaR
	if numr == 0 {
		for _, e := range eams {
			if e.NumR() > numr {
				numr, cutoffr, deltar = e.NumR(), e.CutoffR(), e.DeltaR()
			}
		}
	}
	if err := alloy.SetR(numr, cutoffr, deltar); err != nil {
		return nil, errDecorate(err, "ToAlloy")
	}
	numrho, cutoffrho, deltarho := opts.NumRho, opts.CutoffRho, opts.DeltaRho
	if numrho == 0 {
		for _, e := range eams {
			if e.NumRho() > numrho {
				numrho, cutoffrho, deltarho = e.NumRho(), e.CutoffRho(), e.DeltaRho()
			}
		}
	}
	if err := alloy.SetRho(numrho, cutoffrho, deltarho); err != nil {
		return nil, errDecorate(err, "ToAlloy")
	}

	header := opts.Header
	if header == "" {
		var lines []string
		for _, e := range eams {
			if len(lines) == 3 {
				break
			}
			if h := e.Header(); h != "" {
				lines = append(lines, h)
			}
		}
		header = strings.TrimSuffix(strings.Join(lines, "\n"), "\n")
	}
	if err := alloy.SetHeader(header); err != nil {
		return nil, errDecorate(err, "ToAlloy")
	}

	alloyR := alloy.R()
	alloyRho := alloy.Rho()
	for i, e := range eams {
		symbol := symbols[i]
		number, mass, alat, lattice, err := e.SymbolInfo()
		if err != nil {
			return nil, errDecorate(err, "ToAlloy")
		}
		alloy.SetSymbolInfo(symbol, number, mass, alat, lattice)

		var r, rho []float64
		if !sameGrid(e.R(), alloyR) {
			r = alloyR
		}
		if !sameGrid(e.Rho(), alloyRho) {
			rho = alloyRho
		}
		frho, err := e.FRho(rho)
		if err != nil {
			return nil, errDecorate(err, "ToAlloy")
		}
		if err := alloy.SetFRho(symbol, frho, nil); err != nil {
			return nil, errDecorate(err, "ToAlloy")
		}
		rhor, err := e.RhoR(r)
		if err != nil {
			return nil, errDecorate(err, "ToAlloy")
		}
		if err := alloy.SetRhoR(symbol, rhor, nil); err != nil {
			return nil, errDecorate(err, "ToAlloy")
		}
		rphi, err := e.RphiR(r)
		if err != nil {
			return nil, errDecorate(err, "ToAlloy")
		}
		if err := alloy.SetRphiR(symbol, symbol, rphi, nil); err != nil {
			return nil, errDecorate(err, "ToAlloy")
		}
	}
	for i := range eams {
		zi, err := eams[i].ZR(alloyR)
		if err != nil {
			return nil, errDecorate(err, "ToAlloy")
		}
		for j := 0; j < i; j++ {
			zj, err := eams[j].ZR(alloyR)
			if err != nil {
				return nil, errDecorate(err, "ToAlloy")
			}
			rphi := make([]float64, len(zi))
			for k := range rphi {
				rphi[k] = LAMMPSHartree * LAMMPSBohr * zi[k] * zj[k]
			}
			if err := alloy.SetRphiR(symbols[i], symbols[j], rphi, nil); err != nil {
				return nil, errDecorate(err, "ToAlloy")
			}
		}
	}
	return alloy, nil
}

// AlloyToFS rewrites an eam/alloy model as an eam/fs one. eam/alloy
// densities do not depend on the receiving atom, so the density of
// each symbol is copied to every ordered pair it leads. The result
// loads under pair_style eam/fs and reproduces the alloy energies.
func AlloyToFS(alloy *Alloy) (*FS, error) {
	fs := NewFS()
	if err := fs.SetHeader(alloy.Header()); err != nil {
		return nil, errDecorate(err, "AlloyToFS")
	}
	if err := fs.SetR(alloy.NumR(), alloy.CutoffR(), alloy.DeltaR()); err != nil {
		return nil, errDecorate(err, "AlloyToFS")
	}
	if err := fs.SetRho(alloy.NumRho(), alloy.CutoffRho(), alloy.DeltaRho()); err != nil {
		return nil, errDecorate(err, "AlloyToFS")
	}
	symbols := alloy.Symbols()
	for _, symbol := range symbols {
		info, err := alloy.SymbolInfo(symbol)
		if err != nil {
			return nil, errDecorate(err, "AlloyToFS")
		}
		fs.SetSymbolInfo(symbol, info.Number, info.Mass, info.Alat, info.Lattice)
	}
	for _, symbol := range symbols {
		frho, err := alloy.FRho(symbol, nil)
		if err != nil {
			return nil, errDecorate(err, "AlloyToFS")
		}
		if err := fs.SetFRho(symbol, frho, nil); err != nil {
			return nil, errDecorate(err, "AlloyToFS")
		}
		rhor, err := alloy.RhoR(symbol, nil)
		if err != nil {
			return nil, errDecorate(err, "AlloyToFS")
		}
		for _, symbol2 := range symbols {
			if err := fs.SetRhoR(symbol, symbol2, rhor, nil); err != nil {
				return nil, errDecorate(err, "AlloyToFS")
			}
		}
	}
	for _, pair := range pairList(symbols) {
		rphi, err := alloy.RphiR(pair[0], pair[1], nil)
		if err != nil {
			return nil, errDecorate(err, "AlloyToFS")
		}
		if err := fs.SetRphiR(pair[0], pair[1], rphi, nil); err != nil {
			return nil, errDecorate(err, "AlloyToFS")
		}
	}
	return fs, nil
}

// AlloyToADP rewrites an eam/alloy model as an adp one with zero
// dipole and quadrupole functions. The result loads under pair_style
// adp and reproduces the alloy energies, and serves as a starting
// point for fitting the angular terms.
func AlloyToADP(alloy *Alloy) (*ADP, error) {
	adp := NewADP()
	if err := adp.SetHeader(alloy.Header()); err != nil {
		return nil, errDecorate(err, "AlloyToADP")
	}
	if err := adp.SetR(alloy.NumR(), alloy.CutoffR(), alloy.DeltaR()); err != nil {
		return nil, errDecorate(err, "AlloyToADP")
	}
	if err := adp.SetRho(alloy.NumRho(), alloy.CutoffRho(), alloy.DeltaRho()); err != nil {
		return nil, errDecorate(err, "AlloyToADP")
	}
	symbols := alloy.Symbols()
	for _, symbol := range symbols {
		info, err := alloy.SymbolInfo(symbol)
		if err != nil {
			return nil, errDecorate(err, "AlloyToADP")
		}
		adp.SetSymbolInfo(symbol, info.Number, info.Mass, info.Alat, info.Lattice)
	}
	for _, symbol := range symbols {
		frho, err := alloy.FRho(symbol, nil)
		if err != nil {
			return nil, errDecorate(err, "AlloyToADP")
		}
		if err := adp.SetFRho(symbol, frho, nil); err != nil {
			return nil, errDecorate(err, "AlloyToADP")
		}
		rhor, err := alloy.RhoR(symbol, nil)
		if err != nil {
			return nil, errDecorate(err, "AlloyToADP")
		}
		if err := adp.SetRhoR(symbol, rhor, nil); err != nil {
			return nil, errDecorate(err, "AlloyToADP")
		}
	}
	zeros := make([]float64, alloy.NumR())
	for _, pair := range pairList(symbols) {
		rphi, err := alloy.RphiR(pair[0], pair[1], nil)
		if err != nil {
			return nil, errDecorate(err, "AlloyToADP")
		}
		if err := adp.SetRphiR(pair[0], pair[1], rphi, nil); err != nil {
			return nil, errDecorate(err, "AlloyToADP")
		}
		if err := adp.SetUR(pair[0], pair[1], zeros, nil); err != nil {
			return nil, errDecorate(err, "AlloyToADP")
		}
		if err := adp.SetWR(pair[0], pair[1], zeros, nil); err != nil {
			return nil, errDecorate(err, "AlloyToADP")
		}
	}
	return adp, nil
}
