/*
 * potplot.go, part of potentials.
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

//Package potplot draws the tabulated functions of EAM-family
//parameter files, which is the quickest sanity check after building
//or converting a potential.
package potplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/mdtoolkit/potentials/eam"
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

func xys(x, y []float64) (plotter.XYs, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("potplot: x and y lengths differ: %d vs %d", len(x), len(y))
	}
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts, nil
}

//addCurve adds one named line to the plot, colored by its index.
func addCurve(p *plot.Plot, x, y []float64, name string, index int) error {
	pts, err := xys(x, y)
	if err != nil {
		return err
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("potplot: %w", err)
	}
	line.Color = plotutil.Color(index)
	p.Add(line)
	if name != "" {
		p.Legend.Add(name, line)
	}
	return nil
}

// Curve draws a single x,y curve and saves it as a png file.
func Curve(x, y []float64, title, xlabel, ylabel, plotname string) error {
	p := basicPlot(title, xlabel, ylabel)
	if err := addCurve(p, x, y, "", 0); err != nil {
		return err
	}
	return save(p, plotname)
}

func save(p *plot.Plot, plotname string) error {
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(5*vg.Inch, 5*vg.Inch, filename); err != nil {
		return fmt.Errorf("potplot: %w", err)
	}
	return nil
}

// EAMPlots draws the three tabulated functions of a funcfl potential
// as prefix_frho.png, prefix_rhor.png and prefix_rphir.png.
func EAMPlots(e *eam.EAM, prefix string) error {
	frho, err := e.FRho(nil)
	if err != nil {
		return err
	}
	if err := Curve(e.Rho(), frho, "Embedding energy", "rho", "F (eV)", prefix+"_frho"); err != nil {
		return err
	}
	rhor, err := e.RhoR(nil)
	if err != nil {
		return err
	}
	if err := Curve(e.R(), rhor, "Electron density", "r (A)", "rho", prefix+"_rhor"); err != nil {
		return err
	}
	rphi, err := e.RphiR(nil)
	if err != nil {
		return err
	}
	return Curve(e.R(), rphi, "Pair interaction", "r (A)", "r*phi (eV*A)", prefix+"_rphir")
}

// AlloyPlots draws the tabulated functions of an eam/alloy
// potential: the embedding and density functions of every symbol in
// prefix_frho.png and prefix_rhor.png, and every pair function in
// prefix_rphir.png.
func AlloyPlots(a *eam.Alloy, prefix string) error {
	symbols := a.Symbols()

	p := basicPlot("Embedding energy", "rho", "F (eV)")
	for i, symbol := range symbols {
		frho, err := a.FRho(symbol, nil)
		if err != nil {
			return err
		}
		if err := addCurve(p, a.Rho(), frho, symbol, i); err != nil {
			return err
		}
	}
	if err := save(p, prefix+"_frho"); err != nil {
		return err
	}

	p = basicPlot("Electron density", "r (A)", "rho")
	for i, symbol := range symbols {
		rhor, err := a.RhoR(symbol, nil)
		if err != nil {
			return err
		}
		if err := addCurve(p, a.R(), rhor, symbol, i); err != nil {
			return err
		}
	}
	if err := save(p, prefix+"_rhor"); err != nil {
		return err
	}

	p = basicPlot("Pair interaction", "r (A)", "r*phi (eV*A)")
	var index int
	for i, s1 := range symbols {
		for _, s2 := range symbols[:i+1] {
			rphi, err := a.RphiR(s1, s2, nil)
			if err != nil {
				return err
			}
			if err := addCurve(p, a.R(), rphi, s1+"-"+s2, index); err != nil {
				return err
			}
			index++
		}
	}
	return save(p, prefix+"_rphir")
}

// ADPPlots draws the alloy functions of an adp potential plus its
// dipole and quadrupole pair functions, in prefix_ur.png and
// prefix_wr.png.
func ADPPlots(a *eam.ADP, prefix string) error {
	if err := AlloyPlots(&a.Alloy, prefix); err != nil {
		return err
	}
	symbols := a.Symbols()

	p := basicPlot("Dipole distortion", "r (A)", "u")
	var index int
	for i, s1 := range symbols {
		for _, s2 := range symbols[:i+1] {
			u, err := a.UR(s1, s2, nil)
			if err != nil {
				return err
			}
			if err := addCurve(p, a.R(), u, s1+"-"+s2, index); err != nil {
				return err
			}
			index++
		}
	}
	if err := save(p, prefix+"_ur"); err != nil {
		return err
	}

	p = basicPlot("Quadrupole distortion", "r (A)", "w")
	index = 0
	for i, s1 := range symbols {
		for _, s2 := range symbols[:i+1] {
			w, err := a.WR(s1, s2, nil)
			if err != nil {
				return err
			}
			if err := addCurve(p, a.R(), w, s1+"-"+s2, index); err != nil {
				return err
			}
			index++
		}
	}
	return save(p, prefix+"_wr")
}
