/*
 * record.go, part of potentials.
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

//Package lammps reads potential-LAMMPS metadata records and turns
//them into the LAMMPS input command lines that set up the potential
//for a simulated system.
package lammps

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	potentials "github.com/mdtoolkit/potentials"
)

// Artifact describes one parameter file of a potential and where to
// download it from.
type Artifact struct {
	URL      string
	Label    string
	Filename string
}

// Atom describes one atom model of a potential. Mass zero means the
// standard atomic mass of the element applies.
type Atom struct {
	Element string
	Symbol  string
	Mass    float64
	Charge  float64
}

// Record holds the contents of one potential-LAMMPS metadata record:
// the identifiers of the potential and its implementation, the atom
// models it defines, and the pair_style, pair_coeff and auxiliary
// command lines needed to use it.
type Record struct {
	id     string
	key    string
	url    string
	potID  string
	potKey string
	potURL string
	dois   []string

	units      string
	atomStyle  string
	allSymbols bool
	status     string
	comments   string

	artifacts []Artifact
	atoms     []Atom

	pairStyle      string
	pairStyleTerms []Term
	pairCoeffs     []*PairCoeffLine
	commands       []*CommandLine

	potDir string
}

//The single-or-list convention of the data models: a field holding
//one entry may drop the surrounding array.
func asRawList(raw json.RawMessage) ([]json.RawMessage, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	if raw[0] == '[' {
		var list []json.RawMessage
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, err
		}
		return list, nil
	}
	return []json.RawMessage{raw}, nil
}

func asStringList(raw json.RawMessage) ([]string, error) {
	rawlist, err := asRawList(raw)
	if err != nil {
		return nil, err
	}
	list := make([]string, len(rawlist))
	for i, r := range rawlist {
		if err := json.Unmarshal(r, &list[i]); err != nil {
			return nil, err
		}
	}
	return list, nil
}

//termValue renders a term's JSON value as text: quoted strings are
//unescaped, numbers and booleans keep their literal form.
func termValue(raw json.RawMessage) (string, error) {
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	return string(raw), nil
}

//loadTerms fills a CommandLine from the single-key term objects of
//the data model.
func loadTerms(c *CommandLine, raw json.RawMessage) error {
	rawlist, err := asRawList(raw)
	if err != nil {
		return err
	}
	for _, rawterm := range rawlist {
		var term map[string]json.RawMessage
		if err := json.Unmarshal(rawterm, &term); err != nil {
			return err
		}
		for ttype, rawval := range term {
			val, err := termValue(rawval)
			if err != nil {
				return err
			}
			if err := c.AddTerm(ttype, val); err != nil {
				return err
			}
		}
	}
	return nil
}

type jsonWebLink struct {
	URL      string `json:"URL"`
	Label    string `json:"label"`
	LinkText string `json:"link-text"`
}

type jsonArtifact struct {
	WebLink jsonWebLink `json:"web-link"`
}

type jsonAtom struct {
	Element string   `json:"element"`
	Symbol  string   `json:"symbol"`
	Mass    *float64 `json:"mass"`
	Charge  *float64 `json:"charge"`
}

type jsonPotential struct {
	Key string          `json:"key"`
	ID  string          `json:"id"`
	DOI json.RawMessage `json:"doi"`
	URL string          `json:"URL"`
}

type jsonPairStyle struct {
	Type string          `json:"type"`
	Term json.RawMessage `json:"term"`
}

type jsonPairCoeff struct {
	Interaction *struct {
		Symbol json.RawMessage `json:"symbol"`
	} `json:"interaction"`
	Term json.RawMessage `json:"term"`
}

type jsonCommand struct {
	Term json.RawMessage `json:"term"`
}

type jsonModel struct {
	Key        string          `json:"key"`
	ID         string          `json:"id"`
	URL        string          `json:"URL"`
	Potential  jsonPotential   `json:"potential"`
	Units      string          `json:"units"`
	AtomStyle  string          `json:"atom_style"`
	AllSymbols json.RawMessage `json:"allsymbols"`
	Status     string          `json:"status"`
	Comments   string          `json:"comments"`
	Artifact   json.RawMessage `json:"artifact"`
	Atom       json.RawMessage `json:"atom"`
	PairStyle  jsonPairStyle   `json:"pair_style"`
	PairCoeff  json.RawMessage `json:"pair_coeff"`
	Command    json.RawMessage `json:"command"`
}

type jsonRoot struct {
	Model *jsonModel `json:"potential-LAMMPS"`
}

// DecodeRecord reads a potential-LAMMPS record in JSON form. potDir
// is the directory holding the potential's parameter files, used to
// prefix file terms in the generated commands; an empty potDir
// assumes the files sit in the working directory of the LAMMPS run.
func DecodeRecord(f io.Reader, potDir string) (*Record, error) {
	var root jsonRoot
	dec := json.NewDecoder(f)
	if err := dec.Decode(&root); err != nil {
		return nil, Error{err.Error(), []string{"DecodeRecord"}, true}
	}
	if root.Model == nil {
		return nil, Error{"no potential-LAMMPS root element found", []string{"DecodeRecord"}, true}
	}
	m := root.Model

	r := &Record{
		id:        m.ID,
		key:       m.Key,
		url:       m.URL,
		potID:     m.Potential.ID,
		potKey:    m.Potential.Key,
		potURL:    m.Potential.URL,
		units:     m.Units,
		atomStyle: m.AtomStyle,
		status:    m.Status,
		comments:  m.Comments,
		pairStyle: m.PairStyle.Type,
		potDir:    potDir,
	}
	if r.units == "" {
		r.units = "metal"
	}
	if r.atomStyle == "" {
		r.atomStyle = "atomic"
	}
	if r.status == "" {
		r.status = "active"
	}

	var err error
	if r.dois, err = asStringList(m.Potential.DOI); err != nil {
		return nil, Error{err.Error(), []string{"DecodeRecord"}, true}
	}

	//allsymbols may come as a boolean or as its string form.
	if len(m.AllSymbols) > 0 {
		if err := json.Unmarshal(m.AllSymbols, &r.allSymbols); err != nil {
			var s string
			if err := json.Unmarshal(m.AllSymbols, &s); err != nil {
				return nil, Error{"invalid allsymbols value", []string{"DecodeRecord"}, true}
			}
			switch strings.ToLower(s) {
			case "true":
				r.allSymbols = true
			case "false":
			default:
				return nil, Error{fmt.Sprintf("invalid allsymbols value %q", s), []string{"DecodeRecord"}, true}
			}
		}
	}

	rawArtifacts, err := asRawList(m.Artifact)
	if err != nil {
		return nil, Error{err.Error(), []string{"DecodeRecord"}, true}
	}
	for _, raw := range rawArtifacts {
		var ja jsonArtifact
		if err := json.Unmarshal(raw, &ja); err != nil {
			return nil, Error{err.Error(), []string{"DecodeRecord"}, true}
		}
		r.artifacts = append(r.artifacts, Artifact{ja.WebLink.URL, ja.WebLink.Label, ja.WebLink.LinkText})
	}

	rawAtoms, err := asRawList(m.Atom)
	if err != nil {
		return nil, Error{err.Error(), []string{"DecodeRecord"}, true}
	}
	for _, raw := range rawAtoms {
		var ja jsonAtom
		if err := json.Unmarshal(raw, &ja); err != nil {
			return nil, Error{err.Error(), []string{"DecodeRecord"}, true}
		}
		atom := Atom{Element: ja.Element, Symbol: ja.Symbol}
		if ja.Mass != nil {
			atom.Mass = *ja.Mass
		}
		if ja.Charge != nil {
			atom.Charge = *ja.Charge
		}
		if atom.Element == "" {
			if ja.Mass == nil {
				return nil, Error{"mass is required for each atom if element is not listed", []string{"DecodeRecord"}, true}
			}
			if atom.Symbol == "" {
				return nil, Error{"symbol is required for each atom if element is not listed", []string{"DecodeRecord"}, true}
			}
			atom.Element = atom.Symbol
		}
		if atom.Symbol == "" {
			atom.Symbol = atom.Element
		}
		r.atoms = append(r.atoms, atom)
	}

	var styleTerms CommandLine
	if err := loadTerms(&styleTerms, m.PairStyle.Term); err != nil {
		return nil, Error{err.Error(), []string{"DecodeRecord"}, true}
	}
	r.pairStyleTerms = styleTerms.terms

	rawCoeffs, err := asRawList(m.PairCoeff)
	if err != nil {
		return nil, Error{err.Error(), []string{"DecodeRecord"}, true}
	}
	for _, raw := range rawCoeffs {
		var jc jsonPairCoeff
		if err := json.Unmarshal(raw, &jc); err != nil {
			return nil, Error{err.Error(), []string{"DecodeRecord"}, true}
		}
		line := &PairCoeffLine{}
		if jc.Interaction != nil {
			symbols, err := asStringList(jc.Interaction.Symbol)
			if err != nil {
				return nil, Error{err.Error(), []string{"DecodeRecord"}, true}
			}
			line.SetInteraction(symbols)
		}
		if err := loadTerms(&line.CommandLine, jc.Term); err != nil {
			return nil, Error{err.Error(), []string{"DecodeRecord"}, true}
		}
		r.pairCoeffs = append(r.pairCoeffs, line)
	}

	rawCommands, err := asRawList(m.Command)
	if err != nil {
		return nil, Error{err.Error(), []string{"DecodeRecord"}, true}
	}
	for _, raw := range rawCommands {
		var jc jsonCommand
		if err := json.Unmarshal(raw, &jc); err != nil {
			return nil, Error{err.Error(), []string{"DecodeRecord"}, true}
		}
		line := &CommandLine{}
		if err := loadTerms(line, jc.Term); err != nil {
			return nil, Error{err.Error(), []string{"DecodeRecord"}, true}
		}
		r.commands = append(r.commands, line)
	}

	return r, nil
}

// ID returns the human readable identifier of the implementation.
func (r *Record) ID() string { return r.id }

// Key returns the UUID key of the implementation.
func (r *Record) Key() string { return r.key }

// URL returns the URL of an online copy of the record, if any.
func (r *Record) URL() string { return r.url }

// PotID returns the human readable identifier of the potential model.
func (r *Record) PotID() string { return r.potID }

// PotKey returns the UUID key of the potential model.
func (r *Record) PotKey() string { return r.potKey }

// PotURL returns the URL of the potential model record, if any.
func (r *Record) PotURL() string { return r.potURL }

// DOIs returns the publication DOIs associated with the potential.
func (r *Record) DOIs() []string { return append([]string(nil), r.dois...) }

// Units returns the LAMMPS units option of the potential.
func (r *Record) Units() string { return r.units }

// AtomStyle returns the LAMMPS atom_style option of the potential.
func (r *Record) AtomStyle() string { return r.atomStyle }

// AllSymbols reports whether every model symbol must always be
// listed in the generated commands.
func (r *Record) AllSymbols() bool { return r.allSymbols }

// Status returns the implementation status: active, superseded or
// retracted.
func (r *Record) Status() string { return r.status }

// Comments returns the descriptive comments of the potential.
func (r *Record) Comments() string { return r.comments }

// PairStyle returns the LAMMPS pair_style option of the potential.
func (r *Record) PairStyle() string { return r.pairStyle }

// Artifacts returns the parameter file artifacts of the potential.
func (r *Record) Artifacts() []Artifact {
	return append([]Artifact(nil), r.artifacts...)
}

// FileURLs returns the download URLs of the parameter files.
func (r *Record) FileURLs() []string {
	urls := make([]string, len(r.artifacts))
	for i, a := range r.artifacts {
		urls[i] = a.URL
	}
	return urls
}

// PotDir returns the directory assumed to hold the parameter files.
func (r *Record) PotDir() string { return r.potDir }

// SetPotDir assigns the directory assumed to hold the parameter
// files.
func (r *Record) SetPotDir(potDir string) { r.potDir = potDir }

// Symbols returns all atom model symbols, in record order.
func (r *Record) Symbols() []string {
	symbols := make([]string, len(r.atoms))
	for i, a := range r.atoms {
		symbols[i] = a.Symbol
	}
	return symbols
}

//symbolIndex looks a symbol up in the record's atom models.
func (r *Record) symbolIndex(symbol string) (int, error) {
	for i, a := range r.atoms {
		if a.Symbol == symbol {
			return i, nil
		}
	}
	return 0, Error{fmt.Sprintf("symbol %s not in record", symbol), []string{"symbolIndex"}, true}
}

// NormalizeSymbols checks a symbol list against the record and
// appends the missing model symbols when the record requires all of
// them. A nil list selects all model symbols.
func (r *Record) NormalizeSymbols(symbols []string) ([]string, error) {
	if symbols == nil {
		return r.Symbols(), nil
	}
	out := append([]string(nil), symbols...)
	for _, s := range out {
		if s == "" {
			return nil, Error{"symbols list incomplete: found empty value", []string{"NormalizeSymbols"}, true}
		}
		if _, err := r.symbolIndex(s); err != nil {
			return nil, errDecorate(err, "NormalizeSymbols")
		}
	}
	if r.allSymbols {
		for _, s := range r.Symbols() {
			if !containsSymbol(out, s) {
				out = append(out, s)
			}
		}
	}
	return out, nil
}

// Elements returns the element names behind the given atom model
// symbols. A nil list selects all model symbols.
func (r *Record) Elements(symbols []string) ([]string, error) {
	symbols, err := r.NormalizeSymbols(symbols)
	if err != nil {
		return nil, errDecorate(err, "Elements")
	}
	elements := make([]string, len(symbols))
	for i, s := range symbols {
		j, err := r.symbolIndex(s)
		if err != nil {
			return nil, errDecorate(err, "Elements")
		}
		elements[i] = r.atoms[j].Element
	}
	return elements, nil
}

// Masses returns the masses behind the given atom model symbols,
// falling back on the standard atomic mass of the element for atom
// models that do not set one. A nil list selects all model symbols.
func (r *Record) Masses(symbols []string) ([]float64, error) {
	symbols, err := r.NormalizeSymbols(symbols)
	if err != nil {
		return nil, errDecorate(err, "Masses")
	}
	masses := make([]float64, len(symbols))
	for i, s := range symbols {
		j, err := r.symbolIndex(s)
		if err != nil {
			return nil, errDecorate(err, "Masses")
		}
		if r.atoms[j].Mass != 0 {
			masses[i] = r.atoms[j].Mass
			continue
		}
		m, err := potentials.AtomicMass(r.atoms[j].Element)
		if err != nil {
			return nil, Error{err.Error(), []string{"Masses"}, true}
		}
		masses[i] = m
	}
	return masses, nil
}

// Charges returns the charges behind the given atom model symbols. A
// nil list selects all model symbols.
func (r *Record) Charges(symbols []string) ([]float64, error) {
	symbols, err := r.NormalizeSymbols(symbols)
	if err != nil {
		return nil, errDecorate(err, "Charges")
	}
	charges := make([]float64, len(symbols))
	for i, s := range symbols {
		j, err := r.symbolIndex(s)
		if err != nil {
			return nil, errDecorate(err, "Charges")
		}
		charges[i] = r.atoms[j].Charge
	}
	return charges, nil
}

// PrintComments returns LAMMPS print commands echoing the potential's
// comments, publications and parameter file URLs.
func (r *Record) PrintComments() string {
	var b strings.Builder
	for _, line := range strings.Split(r.comments, "\n") {
		if line != "" {
			fmt.Fprintf(&b, "print \"%s\"\n", line)
		}
	}
	if len(r.dois) > 0 {
		b.WriteString("print \"Publication(s) related to the potential:\"\n")
		for _, doi := range r.dois {
			fmt.Fprintf(&b, "print \"https://doi.org/%s\"\n", doi)
		}
	}
	if len(r.artifacts) > 0 {
		b.WriteString("print \"Parameter file(s) can be downloaded at:\"\n")
		for _, url := range r.FileURLs() {
			fmt.Fprintf(&b, "print \"%s\"\n", url)
		}
	}
	return b.String()
}
