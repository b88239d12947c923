/*
 * chem.go, part of polygen.
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

	v3 "github.com/polygen/polygen/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

/**Note: Some functions here panic instead of returning errors. This is because they are "fundamental"
 * functions. If something goes wrong here, the program is most likely wrong and should
 * crash. The panics are related to using the functions on a nil object or trying to access out-of bounds
 * atoms**/

//Atom is an element placed at a point in space.
type Atom struct {
	Element *Element
	Pos     r3.Vec
}

//Atom methods

//Symbol returns the canonical element symbol of the atom.
func (A *Atom) Symbol() string {
	return A.Element.Symbol
}

//Radius returns the display radius of the atom's element.
func (A *Atom) Radius() float64 {
	return A.Element.Radius
}

//Copy returns a copy of the Atom object. The element data is shared, as it never changes.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	return &Atom{Element: A.Element, Pos: A.Pos}
}

func (A *Atom) String() string {
	return fmt.Sprintf("%s (%.4f, %.4f, %.4f)", A.Element.Symbol, A.Pos.X, A.Pos.Y, A.Pos.Z)
}

/*****Molecule type***/

//Molecule is an ordered set of atoms, as read from a file. The position
//of an atom in Atoms is its index, which bonds use to refer to it.
//A Molecule owns its atoms.
type Molecule struct {
	Name    string
	Comment string
	Atoms   []*Atom
}

//NewMolecule returns a molecule with the given name and atoms. The atoms are not copied.
func NewMolecule(name string, atoms []*Atom) *Molecule {
	if atoms == nil {
		atoms = make([]*Atom, 0)
	}
	return &Molecule{Name: name, Atoms: atoms}
}

/*Molecule methods*/

//Len returns the number of atoms in the molecule. A nil molecule has none.
func (M *Molecule) Len() int {
	if M == nil {
		return 0
	}
	return len(M.Atoms)
}

//Atom returns the Atom corresponding to the index i
//of the Atom slice in the molecule. Panics if
//out of range.
func (M *Molecule) Atom(i int) *Atom {
	if i < 0 || i >= M.Len() {
		panic(fmt.Sprintf("Molecule: Requested Atom %d out of bounds (%d atoms)", i, M.Len()))
	}
	return M.Atoms[i]
}

//Coord returns the position of the ith atom.
func (M *Molecule) Coord(i int) r3.Vec {
	return M.Atom(i).Pos
}

//Coords returns a new matrix with the coordinates of all the atoms, one per row.
//It returns nil for an empty molecule.
func (M *Molecule) Coords() *v3.Matrix {
	if M.Len() == 0 {
		return nil
	}
	vecs := make([]r3.Vec, M.Len())
	for i, at := range M.Atoms {
		vecs[i] = at.Pos
	}
	return v3.FromVecs(vecs)
}

//Copy returns a deep copy of the molecule.
func (M *Molecule) Copy() *Molecule {
	ats := make([]*Atom, M.Len())
	for i, v := range M.Atoms {
		ats[i] = v.Copy()
	}
	return &Molecule{Name: M.Name, Comment: M.Comment, Atoms: ats}
}

//Composition returns the number of atoms of each element, keyed by symbol.
func (M *Molecule) Composition() map[string]int {
	ret := make(map[string]int)
	for _, v := range M.Atoms {
		ret[v.Element.Symbol]++
	}
	return ret
}
