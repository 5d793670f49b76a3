// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tnsr

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Trace returns tr(A) for each point
func Trace(A *Array) (res *Array, err error) {
	if err = CheckRank("Trace", A, 2); err != nil {
		return
	}
	res = NewArray(A.Lead, 0)
	for p := 0; p < A.Npts(); p++ {
		res.Data[p] = Tr3(A.Point(p))
	}
	return
}

// Det returns det(A) for each point
func Det(A *Array) (res *Array, err error) {
	if err = CheckRank("Det", A, 2); err != nil {
		return
	}
	res = NewArray(A.Lead, 0)
	for p := 0; p < A.Npts(); p++ {
		res.Data[p] = Det3(A.Point(p))
	}
	return
}

// Inv returns the inverse of A for each point
//  Note: numerically singular points receive the pseudo-inverse instead. This is a deliberate
//        approximation that keeps iterative solvers running near degenerate configurations
func Inv(A *Array) (res *Array, err error) {
	if err = CheckRank("Inv", A, 2); err != nil {
		return
	}
	res = NewArray(A.Lead, 2)
	for p := 0; p < A.Npts(); p++ {
		Inv3(res.Point(p), A.Point(p))
	}
	return
}

// Pinv returns the Moore-Penrose pseudo-inverse of A for each point
func Pinv(A *Array) (res *Array, err error) {
	if err = CheckRank("Pinv", A, 2); err != nil {
		return
	}
	res = NewArray(A.Lead, 2)
	for p := 0; p < A.Npts(); p++ {
		Pinv3(res.Point(p), A.Point(p))
	}
	return
}

// Transpose swaps the two trailing axes of A
func Transpose(A *Array) (res *Array, err error) {
	if err = CheckRank("Transpose", A, 2); err != nil {
		return
	}
	res = NewArray(A.Lead, 2)
	for p := 0; p < A.Npts(); p++ {
		Tra3(res.Point(p), A.Point(p))
	}
	return
}

// IdentityLike returns the second order identity broadcast to the batch shape of A
func IdentityLike(A *Array) *Array {
	res := NewArray(A.Lead, 2)
	for p := 0; p < res.Npts(); p++ {
		v := res.Point(p)
		v[0], v[4], v[8] = 1, 1, 1
	}
	return res
}

// Identity4Like returns the fourth order identity 𝕀ijkl = δik δjl broadcast to the batch shape of A
//  Note: 𝕀 : X = X for any second order tensor X
func Identity4Like(A *Array) *Array {
	res := NewArray(A.Lead, 4)
	for p := 0; p < res.Npts(); p++ {
		v := res.Point(p)
		for I := 0; I < 9; I++ {
			v[I*9+I] = 1
		}
	}
	return res
}

// Dot returns A · B for each point
func Dot(A, B *Array) (res *Array, err error) {
	if err = CheckRank("Dot", A, 2); err != nil {
		return
	}
	if err = CheckRank("Dot", B, 2); err != nil {
		return
	}
	if err = CheckLead("Dot", A, B); err != nil {
		return
	}
	res = NewArray(A.Lead, 2)
	for p := 0; p < A.Npts(); p++ {
		Dot3(res.Point(p), A.Point(p), B.Point(p))
	}
	return
}

// Mul returns the elementwise product of A and B
//  Note: if one operand has rank 0, its value at each point scales the other operand's tensor
func Mul(A, B *Array) (res *Array, err error) {
	if err = CheckLead("Mul", A, B); err != nil {
		return
	}
	if A.Rank != B.Rank && A.Rank != 0 && B.Rank != 0 {
		return nil, chk.Err("tnsr: Mul: ranks %d and %d are incompatible", A.Rank, B.Rank)
	}
	if A.Rank == 0 && B.Rank != 0 {
		A, B = B, A
	}
	res = NewArray(A.Lead, A.Rank)
	sa, sb := A.Size(), B.Size()
	for p := 0; p < A.Npts(); p++ {
		a, b, c := A.Point(p), B.Point(p), res.Point(p)
		for i := 0; i < sa; i++ {
			if sb == 1 {
				c[i] = a[i] * b[0]
			} else {
				c[i] = a[i] * b[i]
			}
		}
	}
	return
}

// Dyadic returns the outer product A ⊗ B for each point; e.g. (A ⊗ B)ijkl = Aij Bkl
func Dyadic(A, B *Array) (res *Array, err error) {
	if err = CheckLead("Dyadic", A, B); err != nil {
		return
	}
	if A.Rank+B.Rank > 6 {
		return nil, chk.Err("tnsr: Dyadic: resulting rank %d is greater than 6", A.Rank+B.Rank)
	}
	res = NewArray(A.Lead, A.Rank+B.Rank)
	sa, sb := A.Size(), B.Size()
	for p := 0; p < A.Npts(); p++ {
		a, b, c := A.Point(p), B.Point(p), res.Point(p)
		for i := 0; i < sa; i++ {
			for j := 0; j < sb; j++ {
				c[i*sb+j] = a[i] * b[j]
			}
		}
	}
	return
}

// Add returns α·A + β·B
func Add(α float64, A *Array, β float64, B *Array) (res *Array, err error) {
	if err = CheckLead("Add", A, B); err != nil {
		return
	}
	if A.Rank != B.Rank {
		return nil, chk.Err("tnsr: Add: ranks %d and %d are different", A.Rank, B.Rank)
	}
	res = NewArray(A.Lead, A.Rank)
	for i := range res.Data {
		res.Data[i] = α*A.Data[i] + β*B.Data[i]
	}
	return
}

// Sub returns A - B
func Sub(A, B *Array) (*Array, error) {
	return Add(1, A, -1, B)
}

// Scale returns α·A
func Scale(α float64, A *Array) *Array {
	res := NewArray(A.Lead, A.Rank)
	for i, v := range A.Data {
		res.Data[i] = α * v
	}
	return res
}

// Clean returns a copy of A with all components whose magnitude is below tol set to zero
func Clean(A *Array, tol float64) *Array {
	res := A.Clone()
	for i, v := range res.Data {
		if math.Abs(v) < tol {
			res.Data[i] = 0
		}
	}
	return res
}
