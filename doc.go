/*
 * doc.go, part of polygen.
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

/*
Package chem is the geometry core of polygen, a tool to put together polymer
chains from diacid, diol and amino acid fragments and look at them in 3D.

	**Capabilities**

	Reads and writes XYZ files, also gzip or zstd compressed. The reader
	accepts the fields of an atom record in any order, and checks the
	declared number of atoms and the element symbols when loading.

	Infers bonds from the distances between atoms and the radii of their
	elements.

	Selects the atoms and bonds within a given distance of the origin, which
	is what gets drawn.

	Measures distances, angles and dihedrals, and centers molecules.

	Keeps the state of a view (molecule, bonds, cutoff and viewing angles)
	in a Viewer, which a user interface drives.

Only carbon, hydrogen, oxygen, nitrogen and a placeholder element "X" are
known. The radii are display radii, which are also used to infer bonds.
The sibling packages build on this one: chemgraph (the bond graph), histo
(bond length histograms), chemplot (projections and images) and catalog
(the monomer library).
*/
package chem
