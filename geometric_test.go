/*
 * geometric_test.go, part of polygen.
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

package chem

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestAngles(Te *testing.T) {
	x := r3.Vec{X: 1}
	y := r3.Vec{Y: 2}
	if a := Angle(x, y); math.Abs(a-math.Pi/2) > 1e-12 {
		Te.Errorf("Expected Pi/2, got %v", a)
	}
	if a := Angle(x, r3.Vec{X: 3}); a != 0 {
		Te.Errorf("Parallel vectors should give 0, got %v", a)
	}
	if a := Angle(x, r3.Vec{X: -3}); math.Abs(a-math.Pi) > 1e-12 {
		Te.Errorf("Antiparallel vectors should give Pi, got %v", a)
	}
	if !math.IsNaN(Angle(x, r3.Vec{})) {
		Te.Errorf("The angle with a zero vector should be NaN")
	}
	//trans and gauche
	a, b, c := r3.Vec{X: 1, Y: 1}, r3.Vec{}, r3.Vec{Z: 1}
	if d := Dihedral(a, b, c, r3.Vec{X: -1, Y: -1, Z: 1}); math.Abs(math.Abs(d)-math.Pi) > 1e-12 {
		Te.Errorf("Expected a trans dihedral, got %v", Rad2Deg(d))
	}
	if d := Dihedral(a, b, c, r3.Vec{X: -1, Y: 1, Z: 1}); math.Abs(math.Abs(d)-math.Pi/2) > 1e-12 {
		Te.Errorf("Expected a dihedral of 90 degrees, got %v", Rad2Deg(d))
	}
}

func TestMethaneGeometry(Te *testing.T) {
	mol, err := LoadMolecule("test/methane.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	//tetrahedral angle
	if a := Rad2Deg(BondAngle(mol, 1, 0, 2)); math.Abs(a-109.4712) > 1e-3 {
		Te.Errorf("Expected a tetrahedral angle, got %v", a)
	}
	if d := Distance(mol, 0, 1); math.Abs(d-1.0897) > 1e-3 {
		Te.Errorf("Wrong C-H distance %v", d)
	}
	if d := Rad2Deg(DihedralAngle(mol, 1, 0, 2, 3)); math.Abs(math.Abs(d)-120) > 1e-3 {
		Te.Errorf("Wrong H-C-H-H dihedral %v", d)
	}
	if c := Centroid(mol); r3.Norm(c) > 1e-6 {
		Te.Errorf("Methane should be centered, centroid %v", c)
	}
}

func TestCenter(Te *testing.T) {
	mol, err := LoadMolecule("test/methane.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	for _, at := range mol.Atoms {
		at.Pos = r3.Add(at.Pos, r3.Vec{X: 5, Y: -2})
	}
	set, _ := FilterForRender(mol, InferBonds(mol), 2)
	if set.Len() != 0 {
		Te.Errorf("The displaced molecule should be out of the cutoff")
	}
	shift := Center(mol)
	if !vecsClose(shift, r3.Vec{X: -5, Y: 2}) {
		Te.Errorf("Wrong displacement %v", shift)
	}
	set, _ = FilterForRender(mol, InferBonds(mol), 2)
	if set.Len() != 5 {
		Te.Errorf("The centered molecule should be inside the cutoff, got %d atoms", set.Len())
	}
}
