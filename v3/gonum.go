/*
 * gonum.go, part of polygen.
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

//gonum.go contains what is needed to handle the gonum mat types.
//All the *Vec functions operate on row vectors, i.e. the cartesian
//coordinates of a point in 3D space.

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

//Matrix is a set of vectors in 3D space, backed by a gonum Dense.
//Within the package a "vector" is a row of the matrix.
type Matrix struct {
	*mat.Dense
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
//data is used as the backing slice, it is not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	if l%cols != 0 || l == 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d or empty", l, cols), []string{"NewMatrix"}}
	}
	return &Matrix{mat.NewDense(l/cols, cols, data)}, nil
}

//FromVecs builds a new Matrix with one row per element of vecs.
func FromVecs(vecs []r3.Vec) *Matrix {
	if len(vecs) == 0 {
		panic(ErrNotEnoughElements)
	}
	data := make([]float64, 0, 3*len(vecs))
	for _, v := range vecs {
		data = append(data, v.X, v.Y, v.Z)
	}
	return &Matrix{mat.NewDense(len(vecs), 3, data)}
}

//VecView returns a view of the ith vector of the matrix.
//Changes in the view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//Mul wraps mat.Dense.Mul so the aliasing checks of gonum
//see the underlying Dense when A or B are also Matrices.
func (F *Matrix) Mul(A, B mat.Matrix) {
	if a, ok := A.(*Matrix); ok {
		A = a.Dense
	}
	if b, ok := B.(*Matrix); ok {
		B = b.Dense
	}
	F.Dense.Mul(A, B)
}

//Errors

//Error is the error type returned by this package.
//It satisfies chem.Error without importing it.
type Error struct {
	message string
	deco    []string
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return "polygen/v3: " + err.message
}

//Decorate adds dec to the decoration slice of the error
//and returns the resulting slice. An empty dec just returns the slice.
func (err Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix      = PanicMsg("polygen/v3: A Matrix should have 3 columns")
	ErrNotEnoughElements = PanicMsg("polygen/v3: not enough elements in Matrix")
	ErrShape             = PanicMsg("polygen/v3: Dimension mismatch")
	ErrIndexOutOfRange   = PanicMsg("polygen/v3: index out of range")
)
