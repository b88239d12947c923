/*
 * bonds.go, part of polygen.
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
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

//DefaultBondFactor scales the sum of the radii of two atoms to obtain
//the largest distance at which they are considered bonded.
const DefaultBondFactor = 1.10

//Bond joins two atoms of a molecule, given by their indexes, with At1 < At2.
//Dist is the distance between the atoms when the bond was inferred.
type Bond struct {
	At1  int
	At2  int
	Dist float64
}

//Ends returns the positions of both atoms of the bond in mol.
func (B Bond) Ends(mol Atomer) (r3.Vec, r3.Vec) {
	return mol.Atom(B.At1).Pos, mol.Atom(B.At2).Pos
}

//Cross returns the index of the atom at the other side of the bond from origin.
func (B Bond) Cross(origin int) int {
	if origin == B.At1 {
		return B.At2
	}
	if origin == B.At2 {
		return B.At1
	}
	panic(fmt.Sprintf("Trying to cross a bond: atom %d is not in the bond %d-%d", origin, B.At1, B.At2)) //a programming error, so a panic is warranted.
}

func (B Bond) String() string {
	return fmt.Sprintf("%d-%d (%.3f)", B.At1, B.At2, B.Dist)
}

//Bonds is a set of bonds, in the order they were found.
type Bonds []Bond

func (B Bonds) Len() int {
	return len(B)
}

//Contains returns true if there is a bond between atoms i and j, in any order.
func (B Bonds) Contains(i, j int) bool {
	if i > j {
		i, j = j, i
	}
	for _, b := range B {
		if b.At1 == i && b.At2 == j {
			return true
		}
	}
	return false
}

//Lengths returns the length of each bond.
func (B Bonds) Lengths() []float64 {
	ret := make([]float64, len(B))
	for i, b := range B {
		ret[i] = b.Dist
	}
	return ret
}

//InferBonds assigns bonds to a molecule with DefaultBondFactor.
func InferBonds(mol Atomer) Bonds {
	return InferBondsFactor(mol, DefaultBondFactor)
}

//InferBondsFactor assigns bonds to a molecule based on a simple distance
//criterion: atoms i and j are bonded if their distance is strictly smaller
//than (radius_i + radius_j)*factor. Every pair is tested, so the cost grows
//with the square of the number of atoms, which is fine for monomer-sized
//molecules but not for proteins. Bonds come out in (i, j) order.
func InferBondsFactor(mol Atomer, factor float64) Bonds {
	bonds := make(Bonds, 0, 10)
	if mol == nil || mol.Len() == 0 {
		return bonds
	}
	tot := mol.Len()
	var maxrad float64
	for i := 0; i < tot; i++ {
		maxrad = math.Max(maxrad, mol.Atom(i).Radius())
	}
	//No pair of atoms can bond farther than this. Pairs separated by more
	//along any axis are skipped without computing the distance.
	reach := 2 * maxrad * factor
	var at1, at2 *Atom
	for i := 0; i < tot; i++ {
		at1 = mol.Atom(i)
		for j := i + 1; j < tot; j++ {
			at2 = mol.Atom(j)
			v := r3.Sub(at2.Pos, at1.Pos)
			if math.Abs(v.X) >= reach || math.Abs(v.Y) >= reach || math.Abs(v.Z) >= reach {
				continue
			}
			d := r3.Norm(v)
			if d < (at1.Radius()+at2.Radius())*factor {
				bonds = append(bonds, Bond{At1: i, At2: j, Dist: d})
			}
		}
	}
	return bonds
}
