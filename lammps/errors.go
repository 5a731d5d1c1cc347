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

package lammps

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

// Error is the general structure for LAMMPS record errors. It
// fulfills potentials.Error.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("LAMMPS potential record error: %s", err.message)
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

// Critical reports whether the error rendered the loaded record
// unusable.
func (err Error) Critical() bool { return err.critical }
