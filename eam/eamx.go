/*
 * eamx.go, part of potentials.
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
	"fmt"
	"math"

	potentials "github.com/mdtoolkit/potentials"
)

// EAMXParams holds the seven parameters of the EAM-X analytic model
// of Daw and Chandross for one FCC element (Acta Materialia 248,
// 118771 and 118772, 2023). Energies are in eV and distances in
// Angstrom.
type EAMXParams struct {
	R1nne float64 //equilibrium first neighbor distance
	Ece   float64 //cohesive energy
	Be    float64 //bulk modulus, in eV/A^3
	Beta  float64 //density decay rate
	Phi0  float64 //pair interaction at equilibrium
	Rcut  float64 //cutoff distance
	Rho0  float64 //density scale
}

//Published element parameters from the first EAM-X paper. "Av" is the
//average metal of the paper, used for quick qualitative models.
var eamxParams = map[string]EAMXParams{
	"Cu": {2.56, 3.54, 0.86, 1.76, 0.29, 4.98, 1.000},
	"Ag": {2.89, 2.85, 0.65, 1.63, 0.23, 5.64, 0.731},
	"Au": {2.89, 3.93, 1.04, 1.82, 0.16, 5.63, 0.896},
	"Ni": {2.49, 4.45, 1.13, 2.13, 0.31, 4.85, 1.056},
	"Pd": {2.75, 3.91, 1.22, 1.87, 0.26, 5.36, 1.233},
	"Pt": {2.77, 5.77, 1.77, 2.21, 0.22, 5.41, 1.096},
	"Av": {2.70, 4.10, 1.10, 1.90, 0.25, 5.30, 1.0},
}

//Published chi cross interaction parameters from the second EAM-X
//paper. The table is symmetric, and carries the published nonzero
//Pt-Pt value as is.
var chiValues = map[string]map[string]float64{
	"Cu": {"Cu": 0.000, "Ag": -0.106, "Au": 0.000, "Ni": 0.017, "Pd": -0.022, "Pt": -0.090},
	"Ag": {"Cu": -0.106, "Ag": 0.000, "Au": 0.019, "Ni": -0.085, "Pd": -0.125, "Pt": -0.068},
	"Au": {"Cu": 0.000, "Ag": 0.019, "Au": 0.000, "Ni": 0.124, "Pd": -0.133, "Pt": 0.005},
	"Ni": {"Cu": 0.017, "Ag": -0.085, "Au": 0.124, "Ni": 0.000, "Pd": 0.104, "Pt": -0.008},
	"Pd": {"Cu": -0.022, "Ag": -0.125, "Au": -0.133, "Ni": 0.104, "Pd": 0.000, "Pt": 0.001},
	"Pt": {"Cu": -0.090, "Ag": -0.068, "Au": 0.005, "Ni": -0.008, "Pd": 0.001, "Pt": 0.090},
}

// ElementParams returns the published EAM-X parameters for a symbol.
func ElementParams(symbol string) (EAMXParams, error) {
	p, ok := eamxParams[symbol]
	if !ok {
		return EAMXParams{}, Error{fmt.Sprintf("no published EAM-X parameters for %s", symbol), "", []string{"ElementParams"}, true}
	}
	return p, nil
}

// ChiValue returns the published EAM-X cross interaction parameter
// for a pair of symbols.
func ChiValue(s1, s2 string) (float64, error) {
	row, ok := chiValues[s1]
	if ok {
		if chi, ok := row[s2]; ok {
			return chi, nil
		}
	}
	return 0, Error{fmt.Sprintf("no published EAM-X chi value for pair %s", pairKey(s1, s2)), "", []string{"ChiValue"}, true}
}

//The core shape function of the model and its derivatives.
func fzCore(z float64) float64 { return math.Exp(-z) - 1 + z }
func d1fz(z float64) float64   { return -math.Exp(-z) + 1 }
func d2fz(z float64) float64   { return math.Exp(-z) }
func d3fz(z float64) float64   { return -math.Exp(-z) }

//cutoffH is the Heaviside cutoff: 1 below rcut, 0 above, one half at
//the step itself.
func cutoffH(r, rcut float64) float64 {
	switch {
	case r < rcut:
		return 1
	case r > rcut:
		return 0
	}
	return 0.5
}

// EAMXElement evaluates the analytic EAM-X functions of one FCC
// element: the density rho(r), the pair interaction phi(r) and the
// quartic embedding function F(rhobar) whose coefficients are fixed
// by the equilibrium conditions of the reference crystal.
type EAMXElement struct {
	params EAMXParams
	gamma  float64

	//FCC neighbor shells: coordination and distance in units of the
	//first neighbor distance.
	zs    []float64
	zetas []float64
}

// NewEAMXElement builds the model from explicit parameters. A zero
// gamma takes the paper's default of twice beta.
func NewEAMXElement(params EAMXParams, gamma float64) *EAMXElement {
	if gamma == 0 {
		gamma = 2 * params.Beta
	}
	return &EAMXElement{
		params: params,
		gamma:  gamma,
		zs:     []float64{12, 6, 24, 12},
		zetas:  []float64{1, math.Sqrt2, math.Sqrt(3), 2},
	}
}

// NewEAMXElementBySymbol builds the model from the published
// parameters of an element symbol.
func NewEAMXElementBySymbol(symbol string) (*EAMXElement, error) {
	p, err := ElementParams(symbol)
	if err != nil {
		return nil, errDecorate(err, "NewEAMXElementBySymbol")
	}
	return NewEAMXElement(p, 0), nil
}

// Params returns the element parameters of the model.
func (x *EAMXElement) Params() EAMXParams { return x.params }

// Gamma returns the pair interaction decay rate in use.
func (x *EAMXElement) Gamma() float64 { return x.gamma }

// Rho returns the density function at r.
func (x *EAMXElement) Rho(r float64) float64 {
	p := &x.params
	z := p.Beta * (r - p.Rcut)
	z1 := p.Beta * (p.R1nne - p.Rcut)
	return p.Rho0 * (fzCore(z) / fzCore(z1)) * cutoffH(r, p.Rcut)
}

//Derivatives of rho(r). The cutoff step is treated as constant.
func (x *EAMXElement) d1rho(r float64) float64 {
	p := &x.params
	z := p.Beta * (r - p.Rcut)
	z1 := p.Beta * (p.R1nne - p.Rcut)
	return p.Rho0 * (p.Beta * d1fz(z) / fzCore(z1)) * cutoffH(r, p.Rcut)
}

func (x *EAMXElement) d2rho(r float64) float64 {
	p := &x.params
	z := p.Beta * (r - p.Rcut)
	z1 := p.Beta * (p.R1nne - p.Rcut)
	return p.Rho0 * (p.Beta * p.Beta * d2fz(z) / fzCore(z1)) * cutoffH(r, p.Rcut)
}

func (x *EAMXElement) d3rho(r float64) float64 {
	p := &x.params
	z := p.Beta * (r - p.Rcut)
	z1 := p.Beta * (p.R1nne - p.Rcut)
	return p.Rho0 * (p.Beta * p.Beta * p.Beta * d3fz(z) / fzCore(z1)) * cutoffH(r, p.Rcut)
}

// Phi returns the pair interaction function at r.
func (x *EAMXElement) Phi(r float64) float64 {
	p := &x.params
	z := x.gamma * (r - p.Rcut)
	z1 := x.gamma * (p.R1nne - p.Rcut)
	return p.Phi0 * (fzCore(z) / fzCore(z1)) * cutoffH(r, p.Rcut)
}

func (x *EAMXElement) d1phi(r float64) float64 {
	p := &x.params
	z := x.gamma * (r - p.Rcut)
	z1 := x.gamma * (p.R1nne - p.Rcut)
	return p.Phi0 * (x.gamma * d1fz(z) / fzCore(z1)) * cutoffH(r, p.Rcut)
}

func (x *EAMXElement) d2phi(r float64) float64 {
	p := &x.params
	z := x.gamma * (r - p.Rcut)
	z1 := x.gamma * (p.R1nne - p.Rcut)
	return p.Phi0 * (x.gamma * x.gamma * d2fz(z) / fzCore(z1)) * cutoffH(r, p.Rcut)
}

func (x *EAMXElement) d3phi(r float64) float64 {
	p := &x.params
	z := x.gamma * (r - p.Rcut)
	z1 := x.gamma * (p.R1nne - p.Rcut)
	return p.Phi0 * (x.gamma * x.gamma * x.gamma * d3fz(z) / fzCore(z1)) * cutoffH(r, p.Rcut)
}

//shellSum sums fn over the FCC neighbor shells of a crystal with
//first neighbor distance r1nn, with the n-th derivative chain factor
//zeta^order per shell.
func (x *EAMXElement) shellSum(fn func(float64) float64, r1nn float64, order int) float64 {
	var sum float64
	for i, z := range x.zs {
		zeta := x.zetas[i]
		sum += z * fn(zeta*r1nn) * math.Pow(zeta, float64(order))
	}
	return sum
}

// RhoBar returns the total density at a site of the FCC reference
// crystal with first neighbor distance r1nn.
func (x *EAMXElement) RhoBar(r1nn float64) float64 { return x.shellSum(x.Rho, r1nn, 0) }

func (x *EAMXElement) d1rhobar(r1nn float64) float64 { return x.shellSum(x.d1rho, r1nn, 1) }
func (x *EAMXElement) d2rhobar(r1nn float64) float64 { return x.shellSum(x.d2rho, r1nn, 2) }
func (x *EAMXElement) d3rhobar(r1nn float64) float64 { return x.shellSum(x.d3rho, r1nn, 3) }

// PhiBar returns the total pair energy at a site of the FCC reference
// crystal with first neighbor distance r1nn.
func (x *EAMXElement) PhiBar(r1nn float64) float64 { return x.shellSum(x.Phi, r1nn, 0) }

func (x *EAMXElement) d1phibar(r1nn float64) float64 { return x.shellSum(x.d1phi, r1nn, 1) }
func (x *EAMXElement) d2phibar(r1nn float64) float64 { return x.shellSum(x.d2phi, r1nn, 2) }
func (x *EAMXElement) d3phibar(r1nn float64) float64 { return x.shellSum(x.d3phi, r1nn, 3) }

//Derivatives of the universal binding curve at equilibrium, as fixed
//by the cohesive energy and the bulk modulus.
func (x *EAMXElement) ue() float64 { return -x.params.Ece }

func (x *EAMXElement) d2ue() float64 {
	p := &x.params
	return 9 * p.Be * p.R1nne / math.Sqrt2
}

func (x *EAMXElement) d3ue() float64 {
	p := &x.params
	return -27 * math.Sqrt(math.Sqrt2*p.Be*p.Be*p.Be*p.R1nne*p.R1nne*p.R1nne/p.Ece)
}

// F0 returns the zeroth embedding coefficient.
func (x *EAMXElement) F0() float64 {
	return x.ue() - x.PhiBar(x.params.R1nne)/2
}

// F1 returns the first embedding coefficient.
func (x *EAMXElement) F1() float64 {
	r1 := x.params.R1nne
	return -x.d1phibar(r1) / (2 * x.d1rhobar(r1))
}

// F2 returns the second embedding coefficient.
func (x *EAMXElement) F2() float64 {
	r1 := x.params.R1nne
	d1rho := x.d1rhobar(r1)
	return (x.d2ue() - x.d2phibar(r1)/2 - x.F1()*x.d2rhobar(r1)) / (d1rho * d1rho)
}

// F3 returns the third embedding coefficient.
func (x *EAMXElement) F3() float64 {
	r1 := x.params.R1nne
	d1rho := x.d1rhobar(r1)
	d2rho := x.d2rhobar(r1)
	return (x.d3ue() - x.d3phibar(r1)/2 - x.F1()*x.d3rhobar(r1) - 3*x.F2()*d1rho*d2rho) / (d1rho * d1rho * d1rho)
}

// F4 returns the fourth embedding coefficient, fixed by requiring
// F(0) = 0.
func (x *EAMXElement) F4() float64 {
	re := x.RhoBar(x.params.R1nne)
	return -24 * (x.F0() - x.F1()*re + x.F2()*re*re/2 - x.F3()*re*re*re/6) / (re * re * re * re)
}

// F returns the quartic embedding function at the given total
// density.
func (x *EAMXElement) F(rhobar float64) float64 {
	f0, f1, f2, f3, f4 := x.F0(), x.F1(), x.F2(), x.F3(), x.F4()
	d := rhobar - x.RhoBar(x.params.R1nne)
	return f0 + f1*d + f2*d*d/2 + f3*d*d*d/6 + f4*d*d*d*d/24
}

// ParamsOK reports whether the parameters satisfy the stability
// criteria of the papers: F2 > 0, F4 > 0, either 2*F2*F4 > F3^2 or
// F3 > 0, and a cutoff inside the tabulated neighbor shells.
func (x *EAMXElement) ParamsOK() bool {
	f2, f3, f4 := x.F2(), x.F3(), x.F4()
	if f2 <= 0 || f4 <= 0 {
		return false
	}
	if 2*f2*f4-f3*f3 <= 0 && f3 <= 0 {
		return false
	}
	rcutmax := math.Sqrt(float64(len(x.zs)+1)) * x.params.R1nne
	return x.params.Rcut < rcutmax
}

// NewEAMXAlloy builds an eam/alloy model from the published EAM-X
// parameters of the given symbols, assigning every function in
// closure form on the given tabulation grid. The cross pair
// interactions follow the second paper,
//
//	phi_ab(r) = (1 + chi_ab) * (phi_aa(r) + phi_bb(r)) / 2
//
// with the published chi values.
func NewEAMXAlloy(symbols []string, numr int, cutoffr float64, numrho int, cutoffrho float64) (*Alloy, error) {
	alloy := NewAlloy()
	if err := alloy.SetR(numr, cutoffr, 0); err != nil {
		return nil, errDecorate(err, "NewEAMXAlloy")
	}
	if err := alloy.SetRho(numrho, cutoffrho, 0); err != nil {
		return nil, errDecorate(err, "NewEAMXAlloy")
	}
	elements := make([]*EAMXElement, len(symbols))
	for i, symbol := range symbols {
		x, err := NewEAMXElementBySymbol(symbol)
		if err != nil {
			return nil, errDecorate(err, "NewEAMXAlloy")
		}
		elements[i] = x
		number, err := potentials.AtomicNumber(symbol)
		if err != nil {
			return nil, Error{err.Error(), alloy.style, []string{"NewEAMXAlloy"}, true}
		}
		mass, err := potentials.AtomicMass(symbol)
		if err != nil {
			return nil, Error{err.Error(), alloy.style, []string{"NewEAMXAlloy"}, true}
		}
		alloy.SetSymbolInfo(symbol, number, mass, x.params.R1nne*math.Sqrt2, "FCC")
		if err := alloy.SetFRhoFunc(symbol, x.F); err != nil {
			return nil, errDecorate(err, "NewEAMXAlloy")
		}
		if err := alloy.SetRhoRFunc(symbol, x.Rho); err != nil {
			return nil, errDecorate(err, "NewEAMXAlloy")
		}
		if err := alloy.SetPhiRFunc(symbol, symbol, x.Phi); err != nil {
			return nil, errDecorate(err, "NewEAMXAlloy")
		}
	}
	for i := range symbols {
		for j := 0; j < i; j++ {
			chi, err := ChiValue(symbols[i], symbols[j])
			if err != nil {
				return nil, errDecorate(err, "NewEAMXAlloy")
			}
			xi, xj := elements[i], elements[j]
			cross := func(r float64) float64 {
				return (1 + chi) * (xi.Phi(r) + xj.Phi(r)) / 2
			}
			if err := alloy.SetPhiRFunc(symbols[i], symbols[j], cross); err != nil {
				return nil, errDecorate(err, "NewEAMXAlloy")
			}
		}
	}
	return alloy, nil
}
