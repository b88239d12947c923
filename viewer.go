/*
 * viewer.go, part of polygen.
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
)

//Limits of the viewing angles, in degrees.
const (
	MinPhi   = -180.0
	MaxPhi   = 180.0
	MinTheta = 0.0
	MaxTheta = 180.0
)

//Viewer keeps the molecule being shown, its bonds and the view settings.
//A new Viewer has no molecule. It becomes loaded only through a successful
//Load or SetMolecule, and stays loaded until another molecule replaces it.
//Bonds are recomputed every time the molecule or the bond factor changes.
//A Viewer is not safe for concurrent use: the caller must serialize calls.
type Viewer struct {
	mol    *Molecule
	bonds  Bonds
	factor float64
	cutoff float64
	phi    float64
	theta  float64
}

//NewViewer returns an unloaded Viewer with the default bond factor, no render
//cutoff and the view angles phi=0, theta=90.
func NewViewer() *Viewer {
	return &Viewer{factor: DefaultBondFactor, cutoff: math.Inf(1), theta: 90}
}

//Load reads the molecule in path and shows it. If reading fails, the
//error is returned and the Viewer keeps whatever it had before.
func (V *Viewer) Load(path string) error {
	mol, err := LoadMolecule(path)
	if err != nil {
		return errDecorate(err, "Viewer.Load")
	}
	return V.SetMolecule(mol)
}

//SetMolecule replaces the current molecule with mol and infers its bonds.
//The Viewer takes ownership of mol.
func (V *Viewer) SetMolecule(mol *Molecule) error {
	if mol == nil {
		return newError(ErrUnloaded, "nil molecule given", "Viewer.SetMolecule")
	}
	V.mol = mol
	V.bonds = InferBondsFactor(mol, V.factor)
	return nil
}

//Loaded returns true if the Viewer has a molecule.
func (V *Viewer) Loaded() bool {
	return V.mol != nil
}

//Molecule returns the current molecule. The second value is false, and the
//molecule nil, if nothing has been loaded.
func (V *Viewer) Molecule() (*Molecule, bool) {
	return V.mol, V.mol != nil
}

//Bonds returns the bonds of the current molecule, or nil if nothing is loaded.
func (V *Viewer) Bonds() Bonds {
	return V.bonds
}

//BondFactor returns the factor used to infer bonds.
func (V *Viewer) BondFactor() float64 {
	return V.factor
}

//SetBondFactor changes the factor used to infer bonds and recomputes them.
func (V *Viewer) SetBondFactor(factor float64) error {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 0 {
		return newError(ErrBondFactor, fmt.Sprintf("got %v", factor), "Viewer.SetBondFactor")
	}
	V.factor = factor
	if V.mol != nil {
		V.bonds = InferBondsFactor(V.mol, factor)
	}
	return nil
}

//Cutoff returns the render cutoff.
func (V *Viewer) Cutoff() float64 {
	return V.cutoff
}

//SetCutoff sets the render cutoff. It must be a non-negative number, +Inf means no cutoff.
func (V *Viewer) SetCutoff(cutoff float64) error {
	if err := checkCutoff(cutoff, "Viewer.SetCutoff"); err != nil {
		return err
	}
	V.cutoff = cutoff
	return nil
}

//Angles returns the viewing angles phi and theta, in degrees.
func (V *Viewer) Angles() (phi, theta float64) {
	return V.phi, V.theta
}

//SetAngles sets the viewing angles, in degrees. phi must be in [-180, 180]
//and theta in [0, 180].
func (V *Viewer) SetAngles(phi, theta float64) error {
	if err := CheckAngles(phi, theta); err != nil {
		return errDecorate(err, "Viewer.SetAngles")
	}
	V.phi, V.theta = phi, theta
	return nil
}

//CheckAngles returns an error if phi or theta, in degrees, are out of range.
func CheckAngles(phi, theta float64) error {
	if !(phi >= MinPhi && phi <= MaxPhi) {
		return newError(ErrAngleRange, fmt.Sprintf("phi=%v, must be in [%v, %v]", phi, MinPhi, MaxPhi), "CheckAngles")
	}
	if !(theta >= MinTheta && theta <= MaxTheta) {
		return newError(ErrAngleRange, fmt.Sprintf("theta=%v, must be in [%v, %v]", theta, MinTheta, MaxTheta), "CheckAngles")
	}
	return nil
}

//Render returns the atoms and bonds of the current molecule that lie within the cutoff.
func (V *Viewer) Render() (*RenderSet, error) {
	if V.mol == nil {
		return nil, newError(ErrUnloaded, "", "Viewer.Render")
	}
	set, err := FilterForRender(V.mol, V.bonds, V.cutoff)
	if err != nil {
		return nil, errDecorate(err, "Viewer.Render")
	}
	return set, nil
}
