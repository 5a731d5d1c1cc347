/*
 * grid.go, part of potentials.
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

//axis holds the tabulation parameters for one of the two variables
//(r or rho) of an EAM-family parameter file. The tabulated points run
//from zero in steps of delta, so the last point is (num-1)*delta,
//which equals cutoff when both were given consistently.
type axis struct {
	num    int
	delta  float64
	cutoff float64
}

func (a *axis) defined() bool { return a.num > 0 }

//set assigns the tabulation parameters. A zero cutoff or delta is
//derived from the other one; at least one of the two must be given.
func (a *axis) set(num int, cutoff, delta float64) error {
	if num < 2 {
		return Error{GridTooSmall, "", []string{"axis.set"}, true}
	}
	switch {
	case cutoff != 0 && delta != 0:
	case delta != 0:
		cutoff = float64(num-1) * delta
	case cutoff != 0:
		delta = cutoff / float64(num-1)
	default:
		return Error{GridIncomplete, "", []string{"axis.set"}, true}
	}
	a.num = num
	a.cutoff = cutoff
	a.delta = delta
	return nil
}

//values returns the tabulated points, or nil when the axis has not
//been set.
func (a *axis) values() []float64 {
	if !a.defined() {
		return nil
	}
	vals := make([]float64, a.num)
	for i := range vals {
		vals[i] = float64(i) * a.delta
	}
	return vals
}
