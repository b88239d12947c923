/*
 * handy.go, part of polygen.
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

import "math"

//Deg2Rad converts degrees to radians.
func Deg2Rad(f float64) float64 {
	return f * math.Pi / 180
}

//Rad2Deg converts radians to degrees.
func Rad2Deg(f float64) float64 {
	return f * 180 / math.Pi
}

//isInInt returns true if test is in container, false otherwise.
func isInInt(container []int, test int) bool {
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}

//SelectElement returns the indexes of the atoms of mol whose element has the given symbol.
func SelectElement(mol Atomer, symbol string) []int {
	ret := make([]int, 0)
	for i := 0; i < mol.Len(); i++ {
		if mol.Atom(i).Element.Is(symbol) {
			ret = append(ret, i)
		}
	}
	return ret
}

//BondsOf returns the bonds in B that include at least one of the atoms in atoms.
func BondsOf(B Bonds, atoms ...int) Bonds {
	ret := make(Bonds, 0)
	for _, b := range B {
		if isInInt(atoms, b.At1) || isInInt(atoms, b.At2) {
			ret = append(ret, b)
		}
	}
	return ret
}
