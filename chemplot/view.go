/*
 * view.go, part of polygen.
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
	"math"

	chem "github.com/polygen/polygen"
	v3 "github.com/polygen/polygen/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

//View is the direction from which a molecule is looked at, in spherical
//coordinates: Phi is the azimuth in the xy plane and Theta the angle from
//the z axis, both in degrees. The camera is always looking at the origin.
type View struct {
	Phi   float64
	Theta float64
}

//Camera returns the unit vector pointing from the origin to the camera.
func (V View) Camera() r3.Vec {
	phi := chem.Deg2Rad(V.Phi)
	theta := chem.Deg2Rad(V.Theta)
	return r3.Vec{X: math.Sin(theta) * math.Cos(phi), Y: math.Sin(theta) * math.Sin(phi), Z: math.Cos(theta)}
}

//Rotation returns the operator that, applied on the right side of a set
//of coordinates, brings the camera direction to the +z axis.
func (V View) Rotation() *v3.Matrix {
	rot := v3.Zeros(3)
	rot.Mul(RotatorAroundZ(-chem.Deg2Rad(V.Phi)), RotatorAroundY(-chem.Deg2Rad(V.Theta)))
	return rot
}

//Project returns the coordinates as seen from the view: x and y are the
//position on the screen and z grows toward the camera. coords is not modified.
func (V View) Project(coords *v3.Matrix) *v3.Matrix {
	ret := v3.Zeros(coords.NVecs())
	ret.Mul(coords, V.Rotation())
	return ret
}

//RotatorAroundZ returns an operator that will rotate a set of
//coordinates by gamma radians around the z axis.
func RotatorAroundZ(gamma float64) *v3.Matrix {
	singamma := math.Sin(gamma)
	cosgamma := math.Cos(gamma)
	operator := []float64{cosgamma, singamma, 0,
		-singamma, cosgamma, 0,
		0, 0, 1}
	op, _ := v3.NewMatrix(operator) //hardcoded, so it has the right dimensions.
	return op
}

//RotatorAroundY returns an operator that will rotate a set of
//coordinates by beta radians around the y axis.
func RotatorAroundY(beta float64) *v3.Matrix {
	sinbeta := math.Sin(beta)
	cosbeta := math.Cos(beta)
	operator := []float64{cosbeta, 0, -sinbeta,
		0, 1, 0,
		sinbeta, 0, cosbeta}
	op, _ := v3.NewMatrix(operator)
	return op
}
