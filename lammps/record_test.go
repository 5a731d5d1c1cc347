/*
 * record_test.go, part of potentials.
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

package lammps

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const alloyRecord = `{
  "potential-LAMMPS": {
    "key": "1e5c1209-7c5b-4a02-b341-2e14eb54ca47",
    "id": "2000--Doe-J--Cu-Ni--LAMMPS--ipr1",
    "potential": {
      "key": "8d5c1209-7c5b-4a02-b341-2e14eb54ca48",
      "id": "2000--Doe-J--Cu-Ni",
      "doi": "10.0000/example-doi"
    },
    "comments": "Cu-Ni example potential.",
    "artifact": {
      "web-link": {
        "URL": "https://example.org/files/CuNi.eam.alloy",
        "label": "CuNi",
        "link-text": "CuNi.eam.alloy"
      }
    },
    "atom": [
      {"element": "Cu"},
      {"element": "Ni"}
    ],
    "pair_style": {"type": "eam/alloy"},
    "pair_coeff": {
      "term": [
        {"file": "CuNi.eam.alloy"},
        {"symbols": true}
      ]
    }
  }
}`

const funcflRecord = `{
  "potential-LAMMPS": {
    "id": "2000--Doe-J--Cu--LAMMPS--ipr1",
    "potential": {"id": "2000--Doe-J--Cu", "doi": ["10.0000/one", "10.0000/two"]},
    "allsymbols": "true",
    "atom": {"element": "Cu", "mass": 63.55},
    "pair_style": {
      "type": "hybrid",
      "term": [
        {"option": "eam"},
        {"option": "lj/cut"},
        {"parameter": 8.0}
      ]
    },
    "pair_coeff": {
      "interaction": {"symbol": ["Cu", "Cu"]},
      "term": [{"file": "Cu.eam"}]
    },
    "command": {
      "term": [
        {"option": "neighbor"},
        {"parameter": 2.0},
        {"option": "bin"}
      ]
    }
  }
}`

func decodeAlloyRecord(t *testing.T) *Record {
	r, err := DecodeRecord(strings.NewReader(alloyRecord), "files")
	require.NoError(t, err)
	return r
}

func TestDecodeRecord(t *testing.T) {
	r := decodeAlloyRecord(t)
	assert.Equal(t, "2000--Doe-J--Cu-Ni--LAMMPS--ipr1", r.ID())
	assert.Equal(t, "1e5c1209-7c5b-4a02-b341-2e14eb54ca47", r.Key())
	assert.Equal(t, "2000--Doe-J--Cu-Ni", r.PotID())
	assert.Equal(t, []string{"10.0000/example-doi"}, r.DOIs())
	assert.Equal(t, "eam/alloy", r.PairStyle())
	assert.Equal(t, []string{"Cu", "Ni"}, r.Symbols())
	assert.Equal(t, "files", r.PotDir())
	assert.False(t, r.AllSymbols())

	//Unlisted options fall back on the data model defaults.
	assert.Equal(t, "metal", r.Units())
	assert.Equal(t, "atomic", r.AtomStyle())
	assert.Equal(t, "active", r.Status())

	artifacts := r.Artifacts()
	require.Len(t, artifacts, 1)
	assert.Equal(t, "CuNi.eam.alloy", artifacts[0].Filename)
	assert.Equal(t, []string{"https://example.org/files/CuNi.eam.alloy"}, r.FileURLs())
}

func TestDecodeRecordSingleOrList(t *testing.T) {
	//The funcfl fixture drops the list wrappers wherever a field
	//holds one entry, and writes allsymbols as a string.
	r, err := DecodeRecord(strings.NewReader(funcflRecord), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0000/one", "10.0000/two"}, r.DOIs())
	assert.True(t, r.AllSymbols())
	assert.Equal(t, []string{"Cu"}, r.Symbols())
	assert.Equal(t, "hybrid", r.PairStyle())
}

func TestDecodeRecordErrors(t *testing.T) {
	_, err := DecodeRecord(strings.NewReader(`{"something-else": {}}`), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no potential-LAMMPS root element")

	_, err = DecodeRecord(strings.NewReader(`not json`), "")
	assert.Error(t, err)

	//An atom without an element needs both a mass and a symbol.
	noMass := `{"potential-LAMMPS": {"pair_style": {"type": "eam"},
		"atom": {"symbol": "CuX"}}}`
	_, err = DecodeRecord(strings.NewReader(noMass), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mass is required")

	noSymbol := `{"potential-LAMMPS": {"pair_style": {"type": "eam"},
		"atom": {"mass": 63.55}}}`
	_, err = DecodeRecord(strings.NewReader(noSymbol), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "symbol is required")
}

func TestAtomFallbacks(t *testing.T) {
	record := `{"potential-LAMMPS": {"pair_style": {"type": "eam/alloy"},
		"atom": [{"symbol": "CuX", "mass": 63.55}, {"element": "Ni"}]}}`
	r, err := DecodeRecord(strings.NewReader(record), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"CuX", "Ni"}, r.Symbols())

	//The symbol stands in for the missing element and vice versa.
	elements, err := r.Elements(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"CuX", "Ni"}, elements)

	masses, err := r.Masses(nil)
	require.NoError(t, err)
	assert.InDelta(t, 63.55, masses[0], 1e-12)
	assert.InDelta(t, 58.693, masses[1], 1e-12)
}

func TestNormalizeSymbols(t *testing.T) {
	r := decodeAlloyRecord(t)
	symbols, err := r.NormalizeSymbols(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cu", "Ni"}, symbols)

	symbols, err = r.NormalizeSymbols([]string{"Ni", "Ni"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Ni", "Ni"}, symbols)

	_, err = r.NormalizeSymbols([]string{"Fe"})
	assert.Error(t, err)
	_, err = r.NormalizeSymbols([]string{""})
	assert.Error(t, err)
}

func TestNormalizeSymbolsAllSymbols(t *testing.T) {
	record := `{"potential-LAMMPS": {"allsymbols": true,
		"pair_style": {"type": "eam/alloy"},
		"atom": [{"element": "Cu"}, {"element": "Ni"}]}}`
	r, err := DecodeRecord(strings.NewReader(record), "")
	require.NoError(t, err)
	symbols, err := r.NormalizeSymbols([]string{"Ni"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Ni", "Cu"}, symbols)
}

func TestPairInfo(t *testing.T) {
	r := decodeAlloyRecord(t)
	info, err := r.PairInfo([]string{"Ni", "Cu"}, nil, false)
	require.NoError(t, err)
	want := "pair_style eam/alloy\n" +
		"pair_coeff * * files/CuNi.eam.alloy Ni Cu\n" +
		"mass 1 58.693\n" +
		"mass 2 63.546\n" +
		"\n"
	assert.Equal(t, want, info)
}

func TestPairInfoMassOverride(t *testing.T) {
	r := decodeAlloyRecord(t)
	info, err := r.PairInfo([]string{"Ni", "Cu"}, []float64{0, 63.0}, false)
	require.NoError(t, err)
	assert.Contains(t, info, "mass 1 58.693\n")
	assert.Contains(t, info, "mass 2 63\n")

	_, err = r.PairInfo([]string{"Ni", "Cu"}, []float64{63.0}, false)
	assert.Error(t, err)

	//The length check also applies when the model symbols stand in
	//for a nil symbols list.
	_, err = r.PairInfo(nil, []float64{63.0}, false)
	assert.Error(t, err)
	_, err = r.PairInfo(nil, []float64{63.0, 58.0, 55.0}, false)
	assert.Error(t, err)
}

func TestPairInfoComments(t *testing.T) {
	r := decodeAlloyRecord(t)
	info, err := r.PairInfo(nil, nil, true)
	require.NoError(t, err)
	assert.Contains(t, info, "print \"Cu-Ni example potential.\"\n")
	assert.Contains(t, info, "print \"Publication(s) related to the potential:\"\n")
	assert.Contains(t, info, "print \"https://doi.org/10.0000/example-doi\"\n")
	assert.Contains(t, info, "print \"Parameter file(s) can be downloaded at:\"\n")
	assert.Contains(t, info, "print \"https://example.org/files/CuNi.eam.alloy\"\n")
}

func TestPairInfoEAMStyle(t *testing.T) {
	record := `{"potential-LAMMPS": {"pair_style": {"type": "eam"},
		"atom": [{"element": "Cu"}, {"element": "Ni"}],
		"pair_coeff": [
			{"interaction": {"symbol": ["Cu", "Cu"]}, "term": {"file": "Cu.eam"}},
			{"interaction": {"symbol": ["Ni", "Ni"]}, "term": {"file": "Ni.eam"}}
		]}}`
	r, err := DecodeRecord(strings.NewReader(record), "")
	require.NoError(t, err)
	info, err := r.PairInfo([]string{"Cu", "Ni", "Cu"}, nil, false)
	require.NoError(t, err)
	assert.Contains(t, info, "pair_coeff 1 1 Cu.eam\n")
	assert.Contains(t, info, "pair_coeff 3 3 Cu.eam\n")
	assert.Contains(t, info, "pair_coeff 2 2 Ni.eam\n")
}

func TestPairInfoHybridCommands(t *testing.T) {
	r, err := DecodeRecord(strings.NewReader(funcflRecord), "pots")
	require.NoError(t, err)
	info, err := r.PairInfo(nil, nil, false)
	require.NoError(t, err)
	//Numeric terms keep their literal form from the record.
	assert.Contains(t, info, "pair_style hybrid eam lj/cut 8.0\n")
	assert.Contains(t, info, "pair_coeff 1 1 pots/Cu.eam\n")
	assert.True(t, strings.HasSuffix(info, "\nneighbor 2.0 bin\n"))
}

func TestPairDataInfo(t *testing.T) {
	r := decodeAlloyRecord(t)
	info, err := r.PairDataInfo("system.data", [3]bool{true, true, false}, nil, nil, "", "", false)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(info, "units metal\natom_style atomic\n\n"))
	assert.Contains(t, info, "boundary p p m\n")
	assert.Contains(t, info, "read_data system.data\n")
	assert.Contains(t, info, "pair_style eam/alloy\n")
	assert.Contains(t, info, "pair_coeff * * files/CuNi.eam.alloy Cu Ni\n")

	info, err = r.PairDataInfo("system.data", [3]bool{true, true, true}, nil, nil, "charge", "real", false)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(info, "units real\natom_style charge\n"))
	assert.Contains(t, info, "boundary p p p\n")
}

func TestPairRestartInfo(t *testing.T) {
	r := decodeAlloyRecord(t)
	info, err := r.PairRestartInfo("equil.restart", nil, nil, false)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(info, "# Script prepared using the potentials package\n\n"))
	assert.Contains(t, info, "read_restart equil.restart\n")
	assert.Contains(t, info, "pair_style eam/alloy\n")
}
