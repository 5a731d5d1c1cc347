/*
 * doc.go, part of potentials.
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

/*
Package potentials is a library for working with interatomic potentials
and their LAMMPS realizations.

The root package holds the element reference data and the interfaces
shared by the subpackages:

  - eam builds, reads, writes and converts tabulated EAM-family
    parameter files (funcfl and the eam/alloy, eam/fs and adp setfl
    variants), and carries the analytic EAM-X parameterization.
  - lammps reads potential-LAMMPS data model records and generates the
    LAMMPS command lines (pair_style, pair_coeff, mass) for them.
  - potplot renders the tabulated functions to image files.
  - settings persists the user-level configuration.
*/
package potentials
