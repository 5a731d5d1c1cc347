/*
 * eam_test.go, part of potentials.
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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridDerivation(t *testing.T) {
	e := NewEAM()
	require.NoError(t, e.SetR(5, 0, 0.5))
	assert.Equal(t, 5, e.NumR())
	assert.InDelta(t, 2.0, e.CutoffR(), 1e-15)
	assert.InDelta(t, 0.5, e.DeltaR(), 1e-15)

	require.NoError(t, e.SetRho(5, 2.0, 0))
	assert.InDelta(t, 0.5, e.DeltaRho(), 1e-15)
	assert.Equal(t, []float64{0, 0.5, 1, 1.5, 2}, e.Rho())

	assert.Error(t, e.SetR(5, 0, 0))
	assert.Error(t, e.SetR(1, 2.0, 0.5))
}

func TestCutoffZeroing(t *testing.T) {
	e := NewEAM()
	require.NoError(t, e.SetR(5, 2.0, 0))
	require.NoError(t, e.SetRho(5, 10.0, 0))
	e.SetRhoRFunc(func(r float64) float64 { return 1.0 })
	e.SetFRhoFunc(func(rho float64) float64 { return 1.0 })

	rho, err := e.RhoR([]float64{1.0, 2.0, 2.5})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 0}, rho)

	//No cutoff on the embedding function, whatever the density.
	f, err := e.FRho([]float64{5.0, 50.0})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, f)
}

func TestSnapToZero(t *testing.T) {
	e := NewEAM()
	require.NoError(t, e.SetR(5, 2.0, 0))
	e.SetRhoRFunc(func(r float64) float64 { return 1e-150 })
	rho, err := e.RhoR(nil)
	require.NoError(t, err)
	for _, v := range rho {
		assert.Zero(t, v)
	}
}

func TestTableReturnedDirectly(t *testing.T) {
	e := NewEAM()
	require.NoError(t, e.SetRho(5, 1.0, 0))
	table := []float64{-1, -2, -3, -2, -1}
	require.NoError(t, e.SetFRho(table, nil))
	f, err := e.FRho(nil)
	require.NoError(t, err)
	assert.Equal(t, table, f)

	//The returned slice is a copy; mutating it leaves the stored
	//table alone.
	f[0] = 1000
	f2, err := e.FRho(nil)
	require.NoError(t, err)
	assert.Equal(t, table, f2)

	assert.Error(t, e.SetFRho([]float64{1, 2}, nil))
}

func TestSplineThroughNodes(t *testing.T) {
	e := NewEAM()
	require.NoError(t, e.SetRho(7, 3.0, 0))
	xs := []float64{0, 0.4, 1.1, 1.7, 2.3, 2.8, 3.4}
	ys := []float64{0, 0.2, 0.9, 1.1, 0.7, 0.3, 0.1}
	require.NoError(t, e.SetFRho(ys, xs))
	f, err := e.FRho(xs)
	require.NoError(t, err)
	assert.InDeltaSlice(t, ys, f, 1e-9)
}

func TestPairFunctionDerivation(t *testing.T) {
	e := NewEAM()
	require.NoError(t, e.SetR(5, 2.0, 0))

	e.SetZRFunc(func(r float64) float64 { return 3.0 })
	rphi, err := e.RphiR(nil)
	require.NoError(t, err)
	want := LAMMPSHartree * LAMMPSBohr * 9.0
	for _, v := range rphi {
		assert.InDelta(t, want, v, 1e-12)
	}
	phi, err := e.PhiR([]float64{1.0, 2.0})
	require.NoError(t, err)
	assert.InDelta(t, want, phi[0], 1e-12)
	assert.InDelta(t, want/2, phi[1], 1e-12)

	//Assigning phi drops z, and z is rederived from phi.
	require.NoError(t, e.SetPhiR([]float64{0, 4, 2, 1, 0.5}, nil))
	z, err := e.ZR([]float64{1.0})
	require.NoError(t, err)
	phi1, err := e.PhiR([]float64{1.0})
	require.NoError(t, err)
	assert.InDelta(t, phi1[0], LAMMPSHartree*LAMMPSBohr*z[0]*z[0], 1e-9)
}

func TestEAMConstants(t *testing.T) {
	e := NewEAM()
	assert.Equal(t, LAMMPSHartree, e.Hartree())
	assert.Equal(t, LAMMPSBohr, e.Bohr())
	e.SetConstants(PreciseHartree, PreciseBohr)
	assert.Equal(t, PreciseHartree, e.Hartree())
	assert.Equal(t, "eam", e.PairStyle())
}

func TestHeaderOneLine(t *testing.T) {
	e := NewEAM()
	assert.NoError(t, e.SetHeader("Cu funcfl test potential"))
	assert.Error(t, e.SetHeader("two\nlines"))
}

func buildTestEAM(t *testing.T) *EAM {
	e := NewEAM()
	require.NoError(t, e.SetHeader("Cu test potential"))
	e.SetSymbolInfo(29, 63.546, 3.615, "FCC")
	require.NoError(t, e.SetR(5, 2.5, 0))
	require.NoError(t, e.SetRho(5, 1.0, 0))
	require.NoError(t, e.SetFRho([]float64{0, -1, -2, -1.5, -1}, nil))
	require.NoError(t, e.SetZR([]float64{11, 7, 3, 1, 0.5}, nil))
	require.NoError(t, e.SetRhoR([]float64{0.5, 0.25, 0.125, 0.0625, 0}, nil))
	return e
}

func TestFuncflRoundTrip(t *testing.T) {
	e := buildTestEAM(t)
	var buf bytes.Buffer
	require.NoError(t, e.Build(&buf, "", 0))

	e2 := NewEAM()
	require.NoError(t, e2.Load(&buf))
	assert.Equal(t, e.Header(), e2.Header())
	number, mass, alat, lattice, err := e2.SymbolInfo()
	require.NoError(t, err)
	assert.Equal(t, 29, number)
	assert.InDelta(t, 63.546, mass, 1e-12)
	assert.InDelta(t, 3.615, alat, 1e-12)
	assert.Equal(t, "FCC", lattice)
	assert.Equal(t, 5, e2.NumR())
	assert.InDelta(t, 2.5, e2.CutoffR(), 1e-12)
	assert.InDelta(t, 0.25, e2.DeltaRho(), 1e-12)

	for _, get := range []func(*EAM) ([]float64, error){
		func(e *EAM) ([]float64, error) { return e.FRho(nil) },
		func(e *EAM) ([]float64, error) { return e.ZR(nil) },
		func(e *EAM) ([]float64, error) { return e.RhoR(nil) },
	} {
		want, err := get(e)
		require.NoError(t, err)
		got, err := get(e2)
		require.NoError(t, err)
		assert.InDeltaSlice(t, want, got, 1e-12)
	}
}

func TestFuncflLayout(t *testing.T) {
	e := buildTestEAM(t)
	var buf bytes.Buffer
	require.NoError(t, e.Build(&buf, "", 0))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	//One comment line, one element line, one grid line and 15
	//values at 5 per line.
	require.Len(t, lines, 6)
	assert.Equal(t, "Cu test potential", lines[0])
	assert.Len(t, strings.Fields(lines[1]), 4)
	assert.Len(t, strings.Fields(lines[2]), 5)
	for _, line := range lines[3:] {
		assert.Len(t, strings.Fields(line), 5)
	}
}

func TestFuncflColumns(t *testing.T) {
	e := buildTestEAM(t)
	var buf bytes.Buffer
	require.NoError(t, e.Build(&buf, "%.8e", 4))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	//15 values at 4 per line.
	require.Len(t, lines, 7)
	assert.Len(t, strings.Fields(lines[3]), 4)
	assert.Len(t, strings.Fields(lines[6]), 3)
}

func TestLoadTermCountMismatch(t *testing.T) {
	e := buildTestEAM(t)
	var buf bytes.Buffer
	require.NoError(t, e.Build(&buf, "", 0))
	short := strings.Join(strings.Split(buf.String(), "\n")[:5], "\n")
	err := NewEAM().Load(strings.NewReader(short))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid number of tabulated values")
}

func TestSetRResamplesTables(t *testing.T) {
	e := buildTestEAM(t)
	want, err := e.RhoR([]float64{1.0})
	require.NoError(t, err)
	//Halve the spacing: tables become splines over the old axis.
	require.NoError(t, e.SetR(9, 2.5, 0))
	rho, err := e.RhoR(nil)
	require.NoError(t, err)
	require.Len(t, rho, 9)
	got, err := e.RhoR([]float64{1.0})
	require.NoError(t, err)
	assert.InDelta(t, want[0], got[0], 1e-9)
}
