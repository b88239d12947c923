/*
 * gocoords.go, part of polygen.
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

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//METHODS

//NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//Len is the same as NVecs, so a Matrix can be used where only a length is needed.
func (F *Matrix) Len() int {
	return F.NVecs()
}

//Vec returns a copy of the ith vector of F as an r3.Vec
func (F *Matrix) Vec(i int) r3.Vec {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	return r3.Vec{X: F.At(i, 0), Y: F.At(i, 1), Z: F.At(i, 2)}
}

//SetVec sets the ith vector of F to v.
func (F *Matrix) SetVec(i int, v r3.Vec) {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	F.Set(i, 0, v.X)
	F.Set(i, 1, v.Y)
	F.Set(i, 2, v.Z)
}

//SomeVecs puts in F all the ith vectors of matrix A,
//where i are the numbers in clist. The vectors are in the same order
//than the clist.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	if F.NVecs() != len(clist) {
		panic(ErrShape)
	}
	for key, val := range clist {
		F.SetVec(key, A.Vec(val))
	}
}

//AddVec adds the vector vec to each vector of A, putting
//the result in the receiver. Panics if the matrices are mismatched.
func (F *Matrix) AddVec(A, vec *Matrix) {
	ar := A.NVecs()
	if vec.NVecs() != 1 || F.NVecs() != ar {
		panic(ErrShape)
	}
	v := vec.Vec(0)
	for i := 0; i < ar; i++ {
		F.SetVec(i, r3.Add(A.Vec(i), v))
	}
}

//SubVec subtracts the vector vec from each vector of A, putting
//the result in the receiver. It works even if vec is a view of A.
func (F *Matrix) SubVec(A, vec *Matrix) {
	ar := A.NVecs()
	if vec.NVecs() != 1 || F.NVecs() != ar {
		panic(ErrShape)
	}
	v := vec.Vec(0) //a copy, so vec can be a view of A
	for i := 0; i < ar; i++ {
		F.SetVec(i, r3.Sub(A.Vec(i), v))
	}
}

//Norms returns the euclidean norm of each vector of F.
func (F *Matrix) Norms() []float64 {
	ret := make([]float64, F.NVecs())
	for i := range ret {
		ret[i] = r3.Norm(F.Vec(i))
	}
	return ret
}

//String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r := F.NVecs()
	v := make([]string, 0, r+2)
	v = append(v, "[")
	for i := 0; i < r; i++ {
		c := F.Vec(i)
		v = append(v, fmt.Sprintf(" %6.2f %6.2f %6.2f", c.X, c.Y, c.Z))
	}
	v = append(v, " ]")
	return strings.Join(v, "\n")
}
