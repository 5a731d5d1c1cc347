/*
 * setfl_test.go, part of potentials.
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

func buildTestAlloy(t *testing.T) *Alloy {
	a := NewAlloy()
	require.NoError(t, a.SetHeader("Cu-Ni test potential\nsecond comment line"))
	require.NoError(t, a.SetR(5, 2.5, 0))
	require.NoError(t, a.SetRho(5, 1.0, 0))
	a.SetSymbolInfo("Cu", 29, 63.546, 3.615, "FCC")
	a.SetSymbolInfo("Ni", 28, 58.6934, 3.52, "FCC")
	require.NoError(t, a.SetFRho("Cu", []float64{0, -1, -2, -1.5, -1}, nil))
	require.NoError(t, a.SetFRho("Ni", []float64{0, -1.2, -2.1, -1.6, -1.1}, nil))
	require.NoError(t, a.SetRhoR("Cu", []float64{0.5, 0.25, 0.125, 0.0625, 0}, nil))
	require.NoError(t, a.SetRhoR("Ni", []float64{0.6, 0.3, 0.15, 0.075, 0}, nil))
	require.NoError(t, a.SetRphiR("Cu", "Cu", []float64{0, 8, 4, 2, 1}, nil))
	require.NoError(t, a.SetRphiR("Ni", "Ni", []float64{0, 9, 4.5, 2.25, 1.125}, nil))
	require.NoError(t, a.SetRphiR("Ni", "Cu", []float64{0, 8.5, 4.2, 2.1, 1.05}, nil))
	return a
}

func TestAlloySetHeader(t *testing.T) {
	a := NewAlloy()
	assert.NoError(t, a.SetHeader("one\ntwo\nthree"))
	assert.NoError(t, a.SetHeader("one\ntwo\nthree\n"))
	assert.Error(t, a.SetHeader("one\ntwo\nthree\nfour"))
}

func TestAlloyUnknownSymbol(t *testing.T) {
	a := NewAlloy()
	require.NoError(t, a.SetRho(5, 1.0, 0))
	assert.Error(t, a.SetFRho("Cu", []float64{0, 0, 0, 0, 0}, nil))
	assert.Error(t, a.SetRphiR("Cu", "Ni", []float64{0, 0, 0, 0, 0}, nil))
	_, err := a.SymbolInfo("Cu")
	assert.Error(t, err)
}

func TestPairKeySymmetry(t *testing.T) {
	a := buildTestAlloy(t)
	ab, err := a.RphiR("Cu", "Ni", nil)
	require.NoError(t, err)
	ba, err := a.RphiR("Ni", "Cu", nil)
	require.NoError(t, err)
	assert.Equal(t, ab, ba)
}

func TestAlloyPhiDerivation(t *testing.T) {
	a := buildTestAlloy(t)
	rphi, err := a.RphiR("Cu", "Cu", []float64{1.25})
	require.NoError(t, err)
	phi, err := a.PhiR("Cu", "Cu", []float64{1.25})
	require.NoError(t, err)
	assert.InDelta(t, rphi[0]/1.25, phi[0], 1e-9)

	//Assigning phi drops the stored r*phi of that pair only.
	require.NoError(t, a.SetPhiR("Cu", "Cu", []float64{0, 2, 1, 0.5, 0.25}, nil))
	rphi, err = a.RphiR("Cu", "Cu", nil)
	require.NoError(t, err)
	r := a.R()
	for i := range rphi {
		assert.InDelta(t, r[i]*2*[]float64{0, 1, 0.5, 0.25, 0.125}[i], rphi[i], 1e-9)
	}
	_, err = a.RphiR("Cu", "Ni", nil)
	assert.NoError(t, err)
}

func TestAlloyRoundTrip(t *testing.T) {
	a := buildTestAlloy(t)
	var buf bytes.Buffer
	require.NoError(t, a.Build(&buf, "", 0))

	a2 := NewAlloy()
	require.NoError(t, a2.Load(&buf))
	assert.Equal(t, []string{"Cu", "Ni"}, a2.Symbols())
	assert.Equal(t, strings.TrimRight(a.Header(), "\n"), strings.TrimRight(a2.Header(), "\n"))
	assert.Equal(t, 5, a2.NumR())
	assert.InDelta(t, 2.5, a2.CutoffR(), 1e-12)

	info, err := a2.SymbolInfo("Ni")
	require.NoError(t, err)
	assert.Equal(t, 28, info.Number)
	assert.InDelta(t, 58.6934, info.Mass, 1e-12)
	assert.Equal(t, "FCC", info.Lattice)

	for _, symbol := range a.Symbols() {
		want, err := a.FRho(symbol, nil)
		require.NoError(t, err)
		got, err := a2.FRho(symbol, nil)
		require.NoError(t, err)
		assert.InDeltaSlice(t, want, got, 1e-12)
		want, err = a.RhoR(symbol, nil)
		require.NoError(t, err)
		got, err = a2.RhoR(symbol, nil)
		require.NoError(t, err)
		assert.InDeltaSlice(t, want, got, 1e-12)
	}
	for _, pair := range pairList(a.Symbols()) {
		want, err := a.RphiR(pair[0], pair[1], nil)
		require.NoError(t, err)
		got, err := a2.RphiR(pair[0], pair[1], nil)
		require.NoError(t, err)
		assert.InDeltaSlice(t, want, got, 1e-12)
	}
}

func TestAlloyLayout(t *testing.T) {
	a := buildTestAlloy(t)
	var buf bytes.Buffer
	require.NoError(t, a.Build(&buf, "", 0))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	//Three comment lines, the symbols line, the grid line, then per
	//symbol one element line plus 10 values at 5 per line, and the
	//three pair tables as one 15 value block.
	require.Len(t, lines, 14)
	assert.Equal(t, "2 Cu Ni", lines[3])
	assert.Len(t, strings.Fields(lines[4]), 5)
}

func TestAlloyBuildWithoutSymbols(t *testing.T) {
	var buf bytes.Buffer
	err := NewAlloy().Build(&buf, "", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), NoSymbols)
}

func buildTestFS(t *testing.T) *FS {
	fs := NewFS()
	require.NoError(t, fs.SetHeader("Cu-Ni Finnis-Sinclair test"))
	require.NoError(t, fs.SetR(5, 2.5, 0))
	require.NoError(t, fs.SetRho(5, 1.0, 0))
	fs.SetSymbolInfo("Cu", 29, 63.546, 3.615, "FCC")
	fs.SetSymbolInfo("Ni", 28, 58.6934, 3.52, "FCC")
	require.NoError(t, fs.SetFRho("Cu", []float64{0, -1, -2, -1.5, -1}, nil))
	require.NoError(t, fs.SetFRho("Ni", []float64{0, -1.2, -2.1, -1.6, -1.1}, nil))
	require.NoError(t, fs.SetRhoR("Cu", "Cu", []float64{0.5, 0.25, 0.125, 0.0625, 0}, nil))
	require.NoError(t, fs.SetRhoR("Cu", "Ni", []float64{0.4, 0.2, 0.1, 0.05, 0}, nil))
	require.NoError(t, fs.SetRhoR("Ni", "Cu", []float64{0.7, 0.35, 0.175, 0.0875, 0}, nil))
	require.NoError(t, fs.SetRhoR("Ni", "Ni", []float64{0.6, 0.3, 0.15, 0.075, 0}, nil))
	require.NoError(t, fs.SetRphiR("Cu", "Cu", []float64{0, 8, 4, 2, 1}, nil))
	require.NoError(t, fs.SetRphiR("Ni", "Ni", []float64{0, 9, 4.5, 2.25, 1.125}, nil))
	require.NoError(t, fs.SetRphiR("Cu", "Ni", []float64{0, 8.5, 4.2, 2.1, 1.05}, nil))
	return fs
}

func TestFSOrderedDensities(t *testing.T) {
	fs := buildTestFS(t)
	cuni, err := fs.RhoR("Cu", "Ni", nil)
	require.NoError(t, err)
	nicu, err := fs.RhoR("Ni", "Cu", nil)
	require.NoError(t, err)
	assert.NotEqual(t, cuni, nicu)

	//The pair functions stay unordered.
	ab, err := fs.RphiR("Cu", "Ni", nil)
	require.NoError(t, err)
	ba, err := fs.RphiR("Ni", "Cu", nil)
	require.NoError(t, err)
	assert.Equal(t, ab, ba)
}

func TestFSRoundTrip(t *testing.T) {
	fs := buildTestFS(t)
	var buf bytes.Buffer
	require.NoError(t, fs.Build(&buf, "", 0))

	fs2 := NewFS()
	require.NoError(t, fs2.Load(&buf))
	assert.Equal(t, []string{"Cu", "Ni"}, fs2.Symbols())
	for _, s1 := range fs.Symbols() {
		want, err := fs.FRho(s1, nil)
		require.NoError(t, err)
		got, err := fs2.FRho(s1, nil)
		require.NoError(t, err)
		assert.InDeltaSlice(t, want, got, 1e-12)
		for _, s2 := range fs.Symbols() {
			want, err := fs.RhoR(s1, s2, nil)
			require.NoError(t, err)
			got, err := fs2.RhoR(s1, s2, nil)
			require.NoError(t, err)
			assert.InDeltaSlice(t, want, got, 1e-12)
		}
	}
	for _, pair := range pairList(fs.Symbols()) {
		want, err := fs.RphiR(pair[0], pair[1], nil)
		require.NoError(t, err)
		got, err := fs2.RphiR(pair[0], pair[1], nil)
		require.NoError(t, err)
		assert.InDeltaSlice(t, want, got, 1e-12)
	}
}

func buildTestADP(t *testing.T) *ADP {
	a := NewADP()
	require.NoError(t, a.SetHeader("Cu-Ni angular dependent test"))
	require.NoError(t, a.SetR(4, 2.4, 0))
	require.NoError(t, a.SetRho(5, 1.0, 0))
	a.SetSymbolInfo("Cu", 29, 63.546, 3.615, "FCC")
	a.SetSymbolInfo("Ni", 28, 58.6934, 3.52, "FCC")
	require.NoError(t, a.SetFRho("Cu", []float64{0, -1, -2, -1.5, -1}, nil))
	require.NoError(t, a.SetFRho("Ni", []float64{0, -1.2, -2.1, -1.6, -1.1}, nil))
	require.NoError(t, a.SetRhoR("Cu", []float64{0.5, 0.25, 0.125, 0.0625}, nil))
	require.NoError(t, a.SetRhoR("Ni", []float64{0.6, 0.3, 0.15, 0.075}, nil))
	for i, pair := range pairList(a.Symbols()) {
		shift := float64(i)
		require.NoError(t, a.SetRphiR(pair[0], pair[1], []float64{0, 8 + shift, 4, 2}, nil))
		require.NoError(t, a.SetUR(pair[0], pair[1], []float64{0.1 + shift, 0.05, 0.025, 0}, nil))
		require.NoError(t, a.SetWR(pair[0], pair[1], []float64{0.2 + shift, 0.1, 0.05, 0}, nil))
	}
	return a
}

func TestADPRoundTrip(t *testing.T) {
	a := buildTestADP(t)
	var buf bytes.Buffer
	require.NoError(t, a.Build(&buf, "", 0))

	a2 := NewADP()
	require.NoError(t, a2.Load(&buf))
	assert.Equal(t, "adp", a2.PairStyle())
	assert.Equal(t, []string{"Cu", "Ni"}, a2.Symbols())
	for _, pair := range pairList(a.Symbols()) {
		for _, get := range []func(*ADP) ([]float64, error){
			func(a *ADP) ([]float64, error) { return a.RphiR(pair[0], pair[1], nil) },
			func(a *ADP) ([]float64, error) { return a.UR(pair[0], pair[1], nil) },
			func(a *ADP) ([]float64, error) { return a.WR(pair[0], pair[1], nil) },
		} {
			want, err := get(a)
			require.NoError(t, err)
			got, err := get(a2)
			require.NoError(t, err)
			assert.InDeltaSlice(t, want, got, 1e-12)
		}
	}
}

func TestADPPairBlockLayout(t *testing.T) {
	a := buildTestADP(t)
	var buf bytes.Buffer
	require.NoError(t, a.Build(&buf, "", 0))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	//The 36 pair values (r*phi, u and w for three pairs) wrap as a
	//single block: 8 lines instead of the 9 three separate blocks
	//would take.
	require.Len(t, lines, 19)
	assert.Len(t, strings.Fields(lines[len(lines)-1]), 1)
}

func TestADPSetRResplinesAngularTables(t *testing.T) {
	a := buildTestADP(t)
	want, err := a.UR("Cu", "Ni", []float64{1.0})
	require.NoError(t, err)
	require.NoError(t, a.SetR(7, 2.4, 0))
	u, err := a.UR("Cu", "Ni", nil)
	require.NoError(t, err)
	require.Len(t, u, 7)
	got, err := a.UR("Cu", "Ni", []float64{1.0})
	require.NoError(t, err)
	assert.InDelta(t, want[0], got[0], 1e-9)
}
