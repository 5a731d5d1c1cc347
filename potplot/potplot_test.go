/*
 * potplot_test.go, part of potentials.
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

package potplot

import (
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot/vg"
)

func TestBasicPlot(t *testing.T) {
	p := basicPlot("Pair interaction", "r (A)", "phi (eV)")
	if p.Title.Text != "Pair interaction" {
		t.Errorf("title %q", p.Title.Text)
	}
	if p.Title.Padding != 3*vg.Millimeter {
		t.Errorf("title padding %v", p.Title.Padding)
	}
	if p.X.Label.Text != "r (A)" || p.Y.Label.Text != "phi (eV)" {
		t.Errorf("axis labels %q, %q", p.X.Label.Text, p.Y.Label.Text)
	}
}

func TestCurve(t *testing.T) {
	dir := t.TempDir()
	x := []float64{0, 1, 2, 3}
	y := []float64{0, 1, 4, 9}
	name := filepath.Join(dir, "curve")
	if err := Curve(x, y, "test", "x", "y", name); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(name + ".png"); err != nil {
		t.Errorf("plot file not written: %v", err)
	}

	if err := Curve(x, y[:3], "test", "x", "y", name); err == nil {
		t.Error("mismatched lengths should fail")
	}
}
