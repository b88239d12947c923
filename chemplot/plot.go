/*
 * plot.go, part of polygen.
 *
 * Copyright 2026 The polygen authors.
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

package chemplot

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	chem "github.com/polygen/polygen"
	v3 "github.com/polygen/polygen/v3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//AtomScale is the size of the glyph drawn for an atom of radius 1 Angstrom.
var AtomScale = vg.Points(9)

var bondColor = color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xff}

func basicPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "x (A)"
	p.Y.Label.Text = "y (A)"
	p.Add(plotter.NewGrid())
	return p
}

//Plot draws the atoms and bonds in set as seen from view. Atoms are drawn as
//circles with the color of their element and a size proportional to their radius,
//farther atoms first, and darker. Bonds are drawn as lines under the atoms.
//The axes span the same range, so the molecule is not distorted.
func Plot(set *chem.RenderSet, view View, title string) (*plot.Plot, error) {
	p := basicPlot(title)
	if set.Len() == 0 {
		limits(p, 1)
		return p, nil
	}
	pos := make(map[int]int, set.Len()) //molecule index -> row in the projected coordinates
	for i, idx := range set.Indices {
		pos[idx] = i
	}
	vecs := v3.Zeros(set.Len())
	for i, at := range set.Atoms {
		vecs.SetVec(i, at.Pos)
	}
	proj := view.Project(vecs)
	for _, b := range set.Bonds {
		i1, ok1 := pos[b.At1]
		i2, ok2 := pos[b.At2]
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("polygen/chemplot: bond %v has atoms outside the render set", b)
		}
		a, c := proj.Vec(i1), proj.Vec(i2)
		l, err := plotter.NewLine(plotter.XYs{{X: a.X, Y: a.Y}, {X: c.X, Y: c.Y}})
		if err != nil {
			return nil, err
		}
		l.LineStyle.Width = vg.Points(1.5)
		l.LineStyle.Color = bondColor
		p.Add(l)
	}
	order := make([]int, set.Len())
	mindepth, maxdepth := math.Inf(1), math.Inf(-1)
	for i := range order {
		order[i] = i
		mindepth = math.Min(mindepth, proj.At(i, 2))
		maxdepth = math.Max(maxdepth, proj.At(i, 2))
	}
	sort.SliceStable(order, func(i, j int) bool { return proj.At(order[i], 2) < proj.At(order[j], 2) })
	legend := make(map[string]*plotter.Scatter)
	var lim float64
	for _, i := range order {
		at := set.Atoms[i]
		v := proj.Vec(i)
		s, err := plotter.NewScatter(plotter.XYs{{X: v.X, Y: v.Y}})
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = vg.Length(at.Radius()) * AtomScale
		s.GlyphStyle.Color = shade(at.Element.Color, depthFraction(v.Z, mindepth, maxdepth))
		p.Add(s)
		if _, ok := legend[at.Symbol()]; !ok {
			legend[at.Symbol()] = s
		}
		lim = math.Max(lim, math.Max(math.Abs(v.X), math.Abs(v.Y))+at.Radius())
	}
	for _, sym := range legendOrder(legend) {
		p.Legend.Add(sym, legend[sym])
	}
	limits(p, lim)
	return p, nil
}

//legendOrder returns the symbols present in legend, in the order
//of chem.Elements, so the legend does not depend on the atom order.
func legendOrder(legend map[string]*plotter.Scatter) []string {
	var ret []string
	for _, e := range chem.Elements() {
		if _, ok := legend[e.Symbol]; ok {
			ret = append(ret, e.Symbol)
		}
	}
	return ret
}

//limits makes both axes span [-lim, lim].
func limits(p *plot.Plot, lim float64) {
	p.X.Min, p.X.Max = -lim, lim
	p.Y.Min, p.Y.Max = -lim, lim
}

//Save writes p to filename as a square image of width cm centimeters.
//The format is taken from the extension of filename (png, svg, pdf, eps, jpg or tiff).
func Save(p *plot.Plot, width float64, filename string) error {
	if width <= 0 {
		return fmt.Errorf("polygen/chemplot: invalid plot width %v", width)
	}
	w := vg.Length(width) * vg.Centimeter
	return p.Save(w, w, filename)
}
