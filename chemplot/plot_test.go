/*
 * plot_test.go, part of polygen.
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
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	chem "github.com/polygen/polygen"
	v3 "github.com/polygen/polygen/v3"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot/plotter"
)

func vecClose(a, b r3.Vec) bool {
	return r3.Norm(r3.Sub(a, b)) < 1e-9
}

func TestViewCamera(Te *testing.T) {
	views := []View{{0, 0}, {0, 90}, {45, 30}, {-120, 170}, {180, 180}, {90, 90}}
	for _, v := range views {
		cam := v.Camera()
		m := v3.FromVecs([]r3.Vec{cam, {X: 1, Y: 2, Z: 3}})
		p := v.Project(m)
		if !vecClose(p.Vec(0), r3.Vec{Z: 1}) {
			Te.Errorf("View %v: the camera direction should go to +z, got %v", v, p.Vec(0))
		}
		if math.Abs(r3.Norm(p.Vec(1))-math.Sqrt(14)) > 1e-9 {
			Te.Errorf("View %v: the projection changed the length of a vector", v)
		}
		if m.Vec(1) != (r3.Vec{X: 1, Y: 2, Z: 3}) {
			Te.Errorf("Project modified its input")
		}
	}
	//Looking from the +z axis, nothing moves.
	p := View{0, 0}.Project(v3.FromVecs([]r3.Vec{{X: 1, Y: 2, Z: 3}}))
	if !vecClose(p.Vec(0), r3.Vec{X: 1, Y: 2, Z: 3}) {
		Te.Errorf("The top view should not change the coordinates, got %v", p.Vec(0))
	}
}

func TestShade(Te *testing.T) {
	cols := []color.RGBA{{R: 0x90, G: 0x90, B: 0x90, A: 0xff}, {R: 0xff, G: 0x0d, B: 0x0d, A: 0xff}, {R: 0x30, G: 0x50, B: 0xf8, A: 0xff}}
	for _, c := range cols {
		if s := shade(c, 1); s != c {
			Te.Errorf("The closest atom should keep its color: %v -> %v", c, s)
		}
		s := shade(c, 0)
		if s.R > c.R || s.G > c.G || s.B > c.B || s == c {
			Te.Errorf("The farthest atom should be darker: %v -> %v", c, s)
		}
	}
	if depthFraction(2, 2, 2) != 1 || depthFraction(1, 0, 4) != 0.25 {
		Te.Errorf("Wrong depth fractions")
	}
}

//TestPlotMolecule draws a glycine molecule, from the XYZ library.
func TestPlotMolecule(Te *testing.T) {
	mol, err := chem.LoadMolecule("../XYZ/AminoAcids/Glycine.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	set, err := chem.FilterForRender(mol, chem.InferBonds(mol), math.Inf(1))
	if err != nil {
		Te.Fatal(err)
	}
	p, err := Plot(set, View{Phi: 30, Theta: 60}, "Glycine")
	if err != nil {
		Te.Fatal(err)
	}
	if p.X.Max <= 0 || p.X.Min != -p.X.Max || p.Y.Max != p.X.Max {
		Te.Errorf("The axes should be symmetric and equal: %v %v %v", p.X.Min, p.X.Max, p.Y.Max)
	}
	dir := Te.TempDir()
	for _, name := range []string{"glycine.png", "glycine.svg"} {
		fname := filepath.Join(dir, name)
		if err := Save(p, 10, fname); err != nil {
			Te.Fatal(err)
		}
		if st, err := os.Stat(fname); err != nil || st.Size() == 0 {
			Te.Errorf("The plot %s was not written: %v", name, err)
		}
	}
	if err := Save(p, 0, filepath.Join(dir, "bad.png")); err == nil {
		Te.Errorf("A plot with no width was saved")
	}
}

func TestLegendOrder(Te *testing.T) {
	legend := map[string]*plotter.Scatter{"O": nil, "H": nil, "N": nil, "C": nil}
	got := legendOrder(legend)
	want := []string{"C", "H", "N", "O"}
	if len(got) != len(want) {
		Te.Fatalf("Wrong legend %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			Te.Errorf("Wrong legend %v, expected %v", got, want)
		}
	}
	if l := legendOrder(map[string]*plotter.Scatter{}); len(l) != 0 {
		Te.Errorf("An empty legend should have no entries, got %v", l)
	}
}

func TestViewRadians(Te *testing.T) {
	c := View{Phi: 90, Theta: 90}.Camera()
	if !vecClose(c, r3.Vec{Y: 1}) {
		Te.Errorf("Looking from phi=90 theta=90 should put the camera on +y, got %v", c)
	}
	if math.Abs(chem.Deg2Rad(180)-math.Pi) > 1e-15 {
		Te.Errorf("Wrong conversion to radians")
	}
}

func TestPlotEmpty(Te *testing.T) {
	mol, err := chem.LoadMolecule("../XYZ/Diacids/Oxalic_acid.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	set, err := chem.FilterForRender(mol, chem.InferBonds(mol), 0)
	if err != nil {
		Te.Fatal(err)
	}
	p, err := Plot(set, View{Theta: 90}, "nothing")
	if err != nil {
		Te.Fatal(err)
	}
	if err := Save(p, 5, filepath.Join(Te.TempDir(), "empty.png")); err != nil {
		Te.Error(err)
	}
}
