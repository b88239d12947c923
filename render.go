/*
 * render.go, part of polygen.
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

//RenderSet is the part of a molecule that is drawn for a given render cutoff.
//Indices[i] is the index in the molecule of Atoms[i]. The bonds keep
//referring to the atoms by their index in the molecule.
type RenderSet struct {
	Cutoff  float64
	Indices []int
	Atoms   []*Atom
	Bonds   Bonds
}

//Len returns the number of atoms in the set.
func (R *RenderSet) Len() int {
	return len(R.Atoms)
}

//checkCutoff returns an error unless cutoff is a non-negative number.
//+Inf is allowed and means no cutoff.
func checkCutoff(cutoff float64, caller string) error {
	if math.IsNaN(cutoff) || cutoff < 0 {
		return newError(ErrNegativeCutoff, fmt.Sprintf("got %v", cutoff), caller)
	}
	return nil
}

//FilterForRender returns the atoms of mol closer than cutoff to the origin, and the
//bonds in bonds that have both atoms closer than cutoff. Both comparisons are strict.
//bonds must have been inferred for mol. A negative or NaN cutoff is an error.
//mol and bonds are not modified, and the returned set is new.
func FilterForRender(mol Atomer, bonds Bonds, cutoff float64) (*RenderSet, error) {
	if err := checkCutoff(cutoff, "FilterForRender"); err != nil {
		return nil, err
	}
	set := &RenderSet{Cutoff: cutoff, Indices: make([]int, 0), Atoms: make([]*Atom, 0), Bonds: make(Bonds, 0)}
	if mol == nil {
		return set, nil
	}
	inside := make([]bool, mol.Len())
	for i := range inside {
		at := mol.Atom(i)
		if r3.Norm(at.Pos) < cutoff {
			inside[i] = true
			set.Indices = append(set.Indices, i)
			set.Atoms = append(set.Atoms, at)
		}
	}
	for _, b := range bonds {
		if b.At1 < 0 || b.At2 >= len(inside) || b.At1 >= b.At2 {
			panic(fmt.Sprintf("FilterForRender: bond %v doesn't belong to a molecule of %d atoms", b, len(inside)))
		}
		if inside[b.At1] && inside[b.At2] {
			set.Bonds = append(set.Bonds, b)
		}
	}
	return set, nil
}
