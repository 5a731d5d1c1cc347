/*
 * atomicdata.go, part of potentials.
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

package potentials

import "fmt"

//The element symbols ordered by atomic number. Index 0 is unused.
var elementSymbols = []string{"",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba", "La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy",
	"Ho", "Er", "Tm", "Yb", "Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt",
	"Au", "Hg", "Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra", "Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm",
}

//A map for assigning mass to elements. Standard atomic weights where
//defined, the mass of the most stable isotope for the radioactives.
var symbolMass = map[string]float64{
	"H": 1.008, "He": 4.0026,
	"Li": 6.94, "Be": 9.0122, "B": 10.81, "C": 12.011, "N": 14.007,
	"O": 15.999, "F": 18.998, "Ne": 20.180,
	"Na": 22.990, "Mg": 24.305, "Al": 26.982, "Si": 28.085, "P": 30.974,
	"S": 32.06, "Cl": 35.45, "Ar": 39.948,
	"K": 39.098, "Ca": 40.078, "Sc": 44.956, "Ti": 47.867, "V": 50.942,
	"Cr": 51.996, "Mn": 54.938, "Fe": 55.845, "Co": 58.933, "Ni": 58.693,
	"Cu": 63.546, "Zn": 65.38,
	"Ga": 69.723, "Ge": 72.630, "As": 74.922, "Se": 78.971, "Br": 79.904,
	"Kr": 83.798,
	"Rb": 85.468, "Sr": 87.62, "Y": 88.906, "Zr": 91.224, "Nb": 92.906,
	"Mo": 95.95, "Tc": 97.907, "Ru": 101.07, "Rh": 102.91, "Pd": 106.42,
	"Ag": 107.87, "Cd": 112.41,
	"In": 114.82, "Sn": 118.71, "Sb": 121.76, "Te": 127.60, "I": 126.90,
	"Xe": 131.29,
	"Cs": 132.91, "Ba": 137.33, "La": 138.91, "Ce": 140.12, "Pr": 140.91,
	"Nd": 144.24, "Pm": 144.913, "Sm": 150.36, "Eu": 151.96, "Gd": 157.25,
	"Tb": 158.93, "Dy": 162.50, "Ho": 164.93, "Er": 167.26, "Tm": 168.93,
	"Yb": 173.05, "Lu": 174.97, "Hf": 178.49, "Ta": 180.95, "W": 183.84,
	"Re": 186.21, "Os": 190.23, "Ir": 192.22, "Pt": 195.08, "Au": 196.97,
	"Hg": 200.59, "Tl": 204.38, "Pb": 207.2, "Bi": 208.98, "Po": 208.982,
	"At": 209.987, "Rn": 222.018,
	"Fr": 223.020, "Ra": 226.025, "Ac": 227.028, "Th": 232.04,
	"Pa": 231.04, "U": 238.03, "Np": 237.048, "Pu": 244.064,
	"Am": 243.061, "Cm": 247.070,
}

// AtomicNumber returns the atomic number for an element symbol.
func AtomicNumber(symbol string) (int, error) {
	for number, s := range elementSymbols {
		if s == symbol {
			return number, nil
		}
	}
	return 0, fmt.Errorf("potentials: unknown element symbol %q", symbol)
}

// AtomicSymbol returns the element symbol for an atomic number.
func AtomicSymbol(number int) (string, error) {
	if number < 1 || number >= len(elementSymbols) {
		return "", fmt.Errorf("potentials: no element with atomic number %d", number)
	}
	return elementSymbols[number], nil
}

// AtomicMass returns the mass, in g/mol, for an element symbol.
// For elements with no standard atomic weight the mass of the most
// stable isotope is returned.
func AtomicMass(symbol string) (float64, error) {
	mass, ok := symbolMass[symbol]
	if !ok {
		return 0, fmt.Errorf("potentials: no mass data for element %q", symbol)
	}
	return mass, nil
}
