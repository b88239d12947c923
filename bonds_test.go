/*
 * bonds_test.go, part of polygen.
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
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func diatomic(Te *testing.T, s1, s2 string, d float64) *Molecule {
	e1, ok1 := ElementBySymbol(s1)
	e2, ok2 := ElementBySymbol(s2)
	if !ok1 || !ok2 {
		Te.Fatalf("Unknown elements %s %s", s1, s2)
	}
	return NewMolecule("diatomic", []*Atom{{Element: e1}, {Element: e2, Pos: r3.Vec{X: d}}})
}

func TestBondBoundary(Te *testing.T) {
	limit := (elements["c"].Radius + elements["h"].Radius) * DefaultBondFactor
	if b := InferBonds(diatomic(Te, "C", "H", limit)); b.Len() != 0 {
		Te.Errorf("Atoms exactly at the bond threshold should not be bonded: %v", b)
	}
	if b := InferBonds(diatomic(Te, "C", "H", limit-1e-9)); b.Len() != 1 {
		Te.Errorf("Atoms just under the bond threshold should be bonded: %v", b)
	}
	if b := InferBonds(diatomic(Te, "C", "H", limit+1e-9)); b.Len() != 0 {
		Te.Errorf("Atoms over the bond threshold should not be bonded: %v", b)
	}
}

func TestBondFactor(Te *testing.T) {
	mol := diatomic(Te, "O", "O", 1.30)
	b := InferBondsFactor(mol, 1.0)
	if b.Len() != 1 {
		Te.Fatalf("O-O at 1.30 should be bonded with factor 1.0: %v", b)
	}
	if b[0].At1 != 0 || b[0].At2 != 1 || b[0].Dist != 1.30 {
		Te.Errorf("Wrong bond %v", b[0])
	}
	if b := InferBondsFactor(mol, 0.5); b.Len() != 0 {
		Te.Errorf("O-O at 1.30 should not be bonded with factor 0.5: %v", b)
	}
}

func TestSmallMolecule(Te *testing.T) {
	mol, err := ReadXYZ(strings.NewReader("2\n\nC 0.0 0.0 0.0\nH 0.7 0.0 0.0\n"), "ch")
	if err != nil {
		Te.Fatal(err)
	}
	b := InferBonds(mol)
	if b.Len() != 1 || !b.Contains(1, 0) {
		Te.Errorf("Expected one C-H bond, got %v", b)
	}
	b1, b2 := b[0].Ends(mol)
	if b1 != mol.Coord(0) || b2 != mol.Coord(1) {
		Te.Errorf("Wrong bond ends")
	}
	if b[0].Cross(0) != 1 || b[0].Cross(1) != 0 {
		Te.Errorf("Cross doesn't return the other atom")
	}
	set, err := FilterForRender(mol, b, 0.5)
	if err != nil {
		Te.Fatal(err)
	}
	if set.Len() != 1 || set.Atoms[0].Symbol() != "C" {
		Te.Errorf("Only the carbon is within 0.5 A of the origin, got %d atoms", set.Len())
	}
	if len(set.Bonds) != 0 {
		Te.Errorf("The C-H bond should not be drawn, got %v", set.Bonds)
	}
}

func TestBondsMonomers(Te *testing.T) {
	files := map[string]int{
		"test/methane.xyz":              4,
		"XYZ/AminoAcids/Glycine.xyz":    9,
		"XYZ/AminoAcids/Alanine.xyz":    12,
		"XYZ/Diols/Ethylene_glycol.xyz": 9,
		"XYZ/Diacids/Oxalic_acid.xyz":   7,
		"XYZ/Diacids/Succinic_acid.xyz": 13,
	}
	for name, nbonds := range files {
		mol, err := LoadMolecule(name)
		if err != nil {
			Te.Fatal(err)
		}
		bonds := InferBonds(mol)
		if bonds.Len() != nbonds {
			Te.Errorf("%s: expected %d bonds, got %d: %v", name, nbonds, bonds.Len(), bonds)
		}
		seen := make(map[[2]int]bool)
		for _, b := range bonds {
			if b.At1 >= b.At2 {
				Te.Errorf("%s: bond %v is not ordered", name, b)
			}
			if seen[[2]int{b.At1, b.At2}] {
				Te.Errorf("%s: bond %v repeated", name, b)
			}
			seen[[2]int{b.At1, b.At2}] = true
		}
	}
}

func TestMethaneBonds(Te *testing.T) {
	mol, err := LoadMolecule("test/methane.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	bonds := InferBonds(mol)
	c := SelectElement(mol, "C")
	if len(c) != 1 {
		Te.Fatalf("Expected one carbon, got %v", c)
	}
	if len(BondsOf(bonds, c[0])) != 4 {
		Te.Errorf("The carbon should have 4 bonds: %v", bonds)
	}
	for _, b := range bonds {
		if b.Dist < 1.08 || b.Dist > 1.10 {
			Te.Errorf("Wrong C-H distance %v", b.Dist)
		}
	}
}

//The bonds don't depend on the order of the atoms.
func TestBondSymmetry(Te *testing.T) {
	mol, err := LoadMolecule("XYZ/AminoAcids/Alanine.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	n := mol.Len()
	rev := mol.Copy()
	for i := range rev.Atoms {
		rev.Atoms[i] = mol.Atom(n - 1 - i).Copy()
	}
	bonds := InferBonds(mol)
	revbonds := InferBonds(rev)
	if bonds.Len() != revbonds.Len() {
		Te.Fatalf("Different number of bonds: %d and %d", bonds.Len(), revbonds.Len())
	}
	for _, b := range revbonds {
		if !bonds.Contains(n-1-b.At1, n-1-b.At2) {
			Te.Errorf("Bond %v of the reversed molecule is missing in the original", b)
		}
	}
}

func TestNoBonds(Te *testing.T) {
	if b := InferBonds(NewMolecule("empty", nil)); b == nil || b.Len() != 0 {
		Te.Errorf("An empty molecule should give an empty, non-nil bond set")
	}
	if b := InferBonds(diatomic(Te, "C", "C", 10)); b.Len() != 0 {
		Te.Errorf("Far atoms were bonded: %v", b)
	}
}
