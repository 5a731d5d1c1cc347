/*
 * profile.go, part of potentials.
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
	"math"

	"gonum.org/v1/gonum/interp"
)

// Func is the closure form of a potential function. Element or pair
// specific parameters are bound into the closure by the caller.
type Func func(x float64) float64

//Evaluated magnitudes at or below this threshold collapse to zero, so
//spline noise around zero does not leak into the written tables.
const snapZero = 1e-100

//profile holds one potential function in one of two representations:
//a table aligned with the owning tabulation axis, or a callable. A
//table given on its own x values is fitted with a not-a-knot cubic
//spline when set and lives in the callable form afterwards. Setting
//one representation drops the other.
type profile struct {
	table []float64
	fn    Func
}

func (p *profile) isSet() bool { return p.table != nil || p.fn != nil }

func (p *profile) setTable(table []float64) {
	p.table = append([]float64(nil), table...)
	p.fn = nil
}

func (p *profile) setFunc(fn Func) {
	p.fn = fn
	p.table = nil
}

//setSpline fits a not-a-knot cubic spline through the (xs, ys) points
//and stores it in callable form. xs must be strictly increasing.
func (p *profile) setSpline(xs, ys []float64) error {
	spline := &interp.NotAKnotCubic{}
	if err := spline.Fit(xs, ys); err != nil {
		return Error{err.Error(), "", []string{"profile.setSpline"}, true}
	}
	p.fn = spline.Predict
	p.table = nil
	return nil
}

//eval returns the profile values at x. With x nil a stored table is
//returned as is, without snapping or cutoff filtering, in a fresh
//slice so callers cannot corrupt the stored one; a callable is
//evaluated on gridx instead. cutoff zeroing is skipped when
//applyCutoff is false (the embedding functions are defined on the rho
//axis, which has no distance cutoff).
func (p *profile) eval(x, gridx []float64, cutoff float64, applyCutoff bool) ([]float64, error) {
	switch {
	case p.table != nil:
		if x == nil {
			return append([]float64(nil), p.table...), nil
		}
		spline := &interp.NotAKnotCubic{}
		if err := spline.Fit(gridx, p.table); err != nil {
			return nil, Error{err.Error(), "", []string{"profile.eval"}, true}
		}
		return evalFunc(spline.Predict, x, cutoff, applyCutoff), nil
	case p.fn != nil:
		if x == nil {
			x = gridx
		}
		return evalFunc(p.fn, x, cutoff, applyCutoff), nil
	}
	return nil, Error{"function not set", "", []string{"profile.eval"}, true}
}

func evalFunc(fn Func, x []float64, cutoff float64, applyCutoff bool) []float64 {
	v := make([]float64, len(x))
	for i, xi := range x {
		vi := fn(xi)
		if math.Abs(vi) <= snapZero {
			vi = 0
		}
		if applyCutoff && xi > cutoff {
			vi = 0
		}
		v[i] = vi
	}
	return v
}
