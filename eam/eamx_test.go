/*
 * eamx_test.go, part of potentials.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementParams(t *testing.T) {
	p, err := ElementParams("Cu")
	require.NoError(t, err)
	assert.InDelta(t, 2.56, p.R1nne, 1e-12)
	assert.InDelta(t, 3.54, p.Ece, 1e-12)
	assert.InDelta(t, 4.98, p.Rcut, 1e-12)
	_, err = ElementParams("Xx")
	assert.Error(t, err)
}

func TestChiValues(t *testing.T) {
	for _, s1 := range []string{"Cu", "Ag", "Au", "Ni", "Pd", "Pt"} {
		for _, s2 := range []string{"Cu", "Ag", "Au", "Ni", "Pd", "Pt"} {
			ab, err := ChiValue(s1, s2)
			require.NoError(t, err)
			ba, err := ChiValue(s2, s1)
			require.NoError(t, err)
			assert.Equal(t, ab, ba)
		}
	}
	chi, err := ChiValue("Cu", "Ag")
	require.NoError(t, err)
	assert.InDelta(t, -0.106, chi, 1e-12)

	//The published table carries a nonzero Pt-Pt entry.
	chi, err = ChiValue("Pt", "Pt")
	require.NoError(t, err)
	assert.InDelta(t, 0.090, chi, 1e-12)

	_, err = ChiValue("Cu", "Xx")
	assert.Error(t, err)
}

func TestEAMXElement(t *testing.T) {
	x, err := NewEAMXElementBySymbol("Cu")
	require.NoError(t, err)
	p := x.Params()

	//Gamma defaults to twice beta.
	assert.InDelta(t, 2*p.Beta, x.Gamma(), 1e-12)

	//At the equilibrium first neighbor distance the density and pair
	//functions hit their scale parameters exactly.
	assert.InDelta(t, p.Rho0, x.Rho(p.R1nne), 1e-12)
	assert.InDelta(t, p.Phi0, x.Phi(p.R1nne), 1e-12)

	//Hard zero beyond the cutoff.
	assert.Zero(t, x.Rho(p.Rcut+0.1))
	assert.Zero(t, x.Phi(p.Rcut+0.1))

	_, err = NewEAMXElementBySymbol("Xx")
	assert.Error(t, err)
}

func TestEAMXEmbedding(t *testing.T) {
	x, err := NewEAMXElementBySymbol("Cu")
	require.NoError(t, err)

	//F4 is fixed by requiring F(0) = 0.
	assert.InDelta(t, 0, x.F(0), 1e-8)

	//At the equilibrium density only the constant term survives.
	re := x.RhoBar(x.Params().R1nne)
	assert.InDelta(t, x.F0(), x.F(re), 1e-10)

	//F0 absorbs half the crystal pair energy, so embedding plus pair
	//energy reproduces the cohesive energy at equilibrium.
	assert.InDelta(t, -x.Params().Ece, x.F(re)+x.PhiBar(x.Params().R1nne)/2, 1e-10)
}

func TestEAMXParamsOK(t *testing.T) {
	for _, symbol := range []string{"Cu", "Ni", "Av"} {
		x, err := NewEAMXElementBySymbol(symbol)
		require.NoError(t, err)
		assert.True(t, x.ParamsOK(), symbol)
	}
}

func TestNewEAMXAlloy(t *testing.T) {
	alloy, err := NewEAMXAlloy([]string{"Cu", "Ag"}, 200, 6.0, 200, 60.0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cu", "Ag"}, alloy.Symbols())
	assert.Equal(t, 200, alloy.NumR())

	info, err := alloy.SymbolInfo("Cu")
	require.NoError(t, err)
	assert.Equal(t, 29, info.Number)
	assert.Equal(t, "FCC", info.Lattice)
	assert.InDelta(t, 63.546, info.Mass, 1e-12)

	cu, err := NewEAMXElementBySymbol("Cu")
	require.NoError(t, err)
	ag, err := NewEAMXElementBySymbol("Ag")
	require.NoError(t, err)
	chi, err := ChiValue("Cu", "Ag")
	require.NoError(t, err)

	phi, err := alloy.PhiR("Cu", "Ag", []float64{2.7})
	require.NoError(t, err)
	want := (1 + chi) * (cu.Phi(2.7) + ag.Phi(2.7)) / 2
	assert.InDelta(t, want, phi[0], 1e-12)

	diag, err := alloy.PhiR("Cu", "Cu", []float64{2.56})
	require.NoError(t, err)
	assert.InDelta(t, cu.Phi(2.56), diag[0], 1e-12)

	var buf bytes.Buffer
	require.NoError(t, alloy.Build(&buf, "", 0))
	assert.NotZero(t, buf.Len())

	_, err = NewEAMXAlloy([]string{"Cu", "Xx"}, 200, 6.0, 200, 60.0)
	assert.Error(t, err)
}
