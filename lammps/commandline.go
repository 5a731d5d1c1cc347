/*
 * commandline.go, part of potentials.
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
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// A Term is one typed element of a LAMMPS command line. option,
// parameter and file terms carry their text in Value; symbols and
// symbolsList terms carry the boolean in Flag and expand into symbol
// names when the command is built.
type Term struct {
	Type  string
	Value string
	Flag  bool
}

// CommandLine holds the terms of one LAMMPS command.
type CommandLine struct {
	terms []Term
}

// Terms returns the terms of the command.
func (c *CommandLine) Terms() []Term {
	return append([]Term(nil), c.terms...)
}

// AddTerm appends a term of the given type to the command. parameter
// values must parse as numbers, and symbols and symbolsList values as
// booleans ("true"/"t" or "false"/"f", case insensitive).
func (c *CommandLine) AddTerm(ttype, value string) error {
	term := Term{Type: ttype}
	switch ttype {
	case "option", "file":
		term.Value = value
	case "parameter":
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return Error{fmt.Sprintf("parameter term %q is not a number", value), []string{"AddTerm"}, true}
		}
		term.Value = value
	case "symbols", "symbolsList":
		switch strings.ToLower(value) {
		case "true", "t":
			term.Flag = true
		case "false", "f":
		default:
			return Error{fmt.Sprintf("%s term %q is not a boolean", ttype, value), []string{"AddTerm"}, true}
		}
	default:
		return Error{fmt.Sprintf("invalid term type %q", ttype), []string{"AddTerm"}, true}
	}
	c.terms = append(c.terms, term)
	return nil
}

//termsString expands the terms into the tail of a command line, each
//term prefixed by a space. file terms are prefixed with potDir;
//symbols and symbolsList terms expand against the system and
//interaction symbol lists.
func termsString(terms []Term, potDir string, systemSymbols, coeffSymbols []string) string {
	var b strings.Builder
	for _, t := range terms {
		switch t.Type {
		case "option", "parameter":
			b.WriteString(" " + t.Value)
		case "file":
			b.WriteString(" " + filepath.Join(potDir, t.Value))
		case "symbolsList":
			if !t.Flag {
				continue
			}
			for _, cs := range coeffSymbols {
				if containsSymbol(systemSymbols, cs) {
					b.WriteString(" " + cs)
				}
			}
		case "symbols":
			if !t.Flag {
				continue
			}
			for _, ss := range systemSymbols {
				if containsSymbol(coeffSymbols, ss) {
					b.WriteString(" " + ss)
				} else {
					b.WriteString(" NULL")
				}
			}
		}
	}
	return b.String()
}

func containsSymbol(symbols []string, symbol string) bool {
	for _, s := range symbols {
		if s == symbol {
			return true
		}
	}
	return false
}

// BuildCommand expands the command into its LAMMPS input line,
// terminated by a newline. file terms are prefixed with potDir;
// symbols terms expand against the system symbols with the model
// symbols as the reference set.
func (c *CommandLine) BuildCommand(potDir string, systemSymbols, modelSymbols []string) string {
	return strings.TrimSpace(termsString(c.terms, potDir, systemSymbols, modelSymbols)) + "\n"
}

// PairCoeffLine holds the terms of one pair_coeff command, plus the
// symbols of the interaction it describes. A nil interaction means
// the command applies to all atom types.
type PairCoeffLine struct {
	CommandLine
	interaction []string
}

// Interaction returns the interaction symbols, or nil for a universal
// line.
func (c *PairCoeffLine) Interaction() []string {
	return append([]string(nil), c.interaction...)
}

// SetInteraction assigns the interaction symbols.
func (c *PairCoeffLine) SetInteraction(symbols []string) {
	c.interaction = append([]string(nil), symbols...)
}

//isUniversal reports whether the line applies to all atom types: no
//interaction given, or the wildcard pair.
func (c *PairCoeffLine) isUniversal() bool {
	if c.interaction == nil {
		return true
	}
	return len(c.interaction) == 2 && c.interaction[0] == "*" && c.interaction[1] == "*"
}

//hasSymbolsTerm reports whether the line carries a symbols term,
//which marks a many body style that always goes out as "* *".
func (c *PairCoeffLine) hasSymbolsTerm() bool {
	for _, t := range c.terms {
		if t.Type == "symbols" {
			return true
		}
	}
	return false
}

// BuildCommand expands the line into one or more pair_coeff commands
// for a system with the given type symbols. modelSymbols is the full
// symbol list of the potential, used as the reference set by
// universal lines. isEAM marks the original funcfl eam pair_style,
// which only takes i==i coefficient lines.
func (c *PairCoeffLine) BuildCommand(potDir string, systemSymbols, modelSymbols []string, isEAM bool) (string, error) {
	if c.isUniversal() {
		return "pair_coeff * *" + termsString(c.terms, potDir, systemSymbols, modelSymbols) + "\n", nil
	}
	if c.hasSymbolsTerm() {
		return "pair_coeff * *" + termsString(c.terms, potDir, systemSymbols, c.interaction) + "\n", nil
	}
	if len(c.interaction) != 2 {
		return "", Error{"pair potential interactions need two listed elements", []string{"BuildCommand"}, true}
	}
	terms := termsString(c.terms, potDir, systemSymbols, c.interaction)
	var b strings.Builder
	if isEAM {
		if c.interaction[0] != c.interaction[1] {
			return "", Error{"only i==j interactions allowed for eam style", []string{"BuildCommand"}, true}
		}
		for i, s := range systemSymbols {
			if s == c.interaction[0] {
				fmt.Fprintf(&b, "pair_coeff %d %d%s\n", i+1, i+1, terms)
			}
		}
		return b.String(), nil
	}
	for i := range systemSymbols {
		for j := i; j < len(systemSymbols); j++ {
			if (systemSymbols[i] == c.interaction[0] && systemSymbols[j] == c.interaction[1]) ||
				(systemSymbols[i] == c.interaction[1] && systemSymbols[j] == c.interaction[0]) {
				fmt.Fprintf(&b, "pair_coeff %d %d%s\n", i+1, j+1, terms)
			}
		}
	}
	return b.String(), nil
}
