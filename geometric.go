/*
 * geometric.go, part of polygen.
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

	"gonum.org/v1/gonum/spatial/r3"
)

//Everything equal or less than this is considered zero.
const appzero float64 = 0.0000001

//Angle takes 2 vectors and calculates the angle in radians between them.
//It returns NaN if any of them is zero.
func Angle(v1, v2 r3.Vec) float64 {
	normproduct := r3.Norm(v1) * r3.Norm(v2)
	if normproduct == 0 {
		return math.NaN()
	}
	argument := r3.Dot(v1, v2) / normproduct
	//Take care of floating point math errors
	if argument > 1 {
		argument = 1
	} else if argument < -1 {
		argument = -1
	}
	angle := math.Acos(argument)
	if math.Abs(angle) <= appzero {
		return 0.00
	}
	return angle
}

//Dihedral calculates the dihedral between the points a, b, c, d, where the first plane
//is defined by abc and the second by bcd. The result is in radians, in [-Pi, Pi].
func Dihedral(a, b, c, d r3.Vec) float64 {
	//bma=b minus a
	bma := r3.Sub(b, a)
	cmb := r3.Sub(c, b)
	dmc := r3.Sub(d, c)
	bmascaled := r3.Scale(r3.Norm(cmb), bma)
	first := r3.Dot(bmascaled, r3.Cross(cmb, dmc))
	second := r3.Dot(r3.Cross(bma, cmb), r3.Cross(cmb, dmc))
	return math.Atan2(first, second)
}

//Distance returns the distance between the atoms i and j of mol.
func Distance(mol Atomer, i, j int) float64 {
	return r3.Norm(r3.Sub(mol.Atom(i).Pos, mol.Atom(j).Pos))
}

//BondAngle returns the angle, in radians, between the atoms i, j and k of mol,
//with j at the vertex.
func BondAngle(mol Atomer, i, j, k int) float64 {
	vert := mol.Atom(j).Pos
	return Angle(r3.Sub(mol.Atom(i).Pos, vert), r3.Sub(mol.Atom(k).Pos, vert))
}

//DihedralAngle returns the dihedral, in radians, defined by the atoms i, j, k and l of mol.
func DihedralAngle(mol Atomer, i, j, k, l int) float64 {
	return Dihedral(mol.Atom(i).Pos, mol.Atom(j).Pos, mol.Atom(k).Pos, mol.Atom(l).Pos)
}

//Centroid returns the geometric center of the atoms of mol, or the origin
//if there are no atoms.
func Centroid(mol Atomer) r3.Vec {
	var c r3.Vec
	if mol.Len() == 0 {
		return c
	}
	for i := 0; i < mol.Len(); i++ {
		c = r3.Add(c, mol.Atom(i).Pos)
	}
	return r3.Scale(1/float64(mol.Len()), c)
}

//Center moves the atoms of mol so its centroid is at the origin, and returns
//the displacement that was applied. Useful before a render cutoff, as the
//cutoff is measured from the origin.
func Center(mol *Molecule) r3.Vec {
	shift := r3.Scale(-1, Centroid(mol))
	for _, at := range mol.Atoms {
		at.Pos = r3.Add(at.Pos, shift)
	}
	return shift
}
