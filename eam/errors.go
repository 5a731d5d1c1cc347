/*
 * errors.go, part of potentials.
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

	potentials "github.com/mdtoolkit/potentials"
)

//errDecorate asserts that the error implements potentials.Error and
//decorates it with the caller's name before returning it. Using it
//with any other error type will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(potentials.Error)
	err2.Decorate(caller)
	return err2
}

// Error is the general structure for parameter file errors. It
// fulfills potentials.Error and potentials.ParamFileError.
type Error struct {
	message  string
	format   string //the parameter file format being handled, or an empty string if none applies.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.format == "" {
		return fmt.Sprintf("parameter file error: %s", err.message)
	}
	return fmt.Sprintf("%s parameter file error: %s", err.format, err.message)
}

// Decorate adds the given string to the decoration slice of the error
// and returns the resulting slice. An empty string only returns the
// current decoration.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Critical reports whether the error rendered the loaded data
// unusable.
func (err Error) Critical() bool { return err.critical }

// Format returns the parameter file format that produced the error.
func (err Error) Format() string { return err.format }

//Common error messages.
const (
	RNotSet          = "r values not set: use SetR"
	RhoNotSet        = "rho values not set: use SetRho"
	GridIncomplete   = "either or both cutoff and delta are required"
	GridTooSmall     = "at least two tabulation points are required"
	TableWrongLength = "number of table and grid values not the same"
	NoSymbols        = "no symbols set: no data to write"
	HeaderOneLine    = "header limited to a single line"
	HeaderThreeLines = "header limited to three lines"
	ShortFile        = "file ended before the tabulated values"
	UnknownStyle     = "failed to load as any known style"
)
