// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tnsr

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// constants
var (
	SingTol = 1e-14 // |det(A)| ≤ SingTol·max|Aij|³ means A is numerically singular
	PinvTol = 1e-12 // singular values below PinvTol·σmax are discarded by Pinv3
)

// Point kernels operate on flat [9] row-major components of a single 3×3 tensor

// Tr3 returns the trace of a
func Tr3(a []float64) float64 {
	return a[0] + a[4] + a[8]
}

// Det3 returns the determinant of a
func Det3(a []float64) float64 {
	return a[0]*(a[4]*a[8]-a[5]*a[7]) -
		a[1]*(a[3]*a[8]-a[5]*a[6]) +
		a[2]*(a[3]*a[7]-a[4]*a[6])
}

// Tra3 computes b = transpose(a)
func Tra3(b, a []float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			b[j*3+i] = a[i*3+j]
		}
	}
}

// Dot3 computes c = a · b
func Dot3(c, a, b []float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i*3+j] = a[i*3]*b[j] + a[i*3+1]*b[3+j] + a[i*3+2]*b[6+j]
		}
	}
}

// Inv3 computes ai = inverse(a) and returns det(a)
//  Note: numerically singular tensors are pseudo-inverted (see Pinv3) and pinv is set to true
func Inv3(ai, a []float64) (det float64, pinv bool) {
	det = Det3(a)
	amax := 0.0
	for _, v := range a {
		amax = math.Max(amax, math.Abs(v))
	}
	if math.Abs(det) <= SingTol*amax*amax*amax {
		Pinv3(ai, a)
		return det, true
	}
	ai[0] = (a[4]*a[8] - a[5]*a[7]) / det
	ai[1] = (a[2]*a[7] - a[1]*a[8]) / det
	ai[2] = (a[1]*a[5] - a[2]*a[4]) / det
	ai[3] = (a[5]*a[6] - a[3]*a[8]) / det
	ai[4] = (a[0]*a[8] - a[2]*a[6]) / det
	ai[5] = (a[2]*a[3] - a[0]*a[5]) / det
	ai[6] = (a[3]*a[7] - a[4]*a[6]) / det
	ai[7] = (a[1]*a[6] - a[0]*a[7]) / det
	ai[8] = (a[0]*a[4] - a[1]*a[3]) / det
	return
}

// Pinv3 computes the Moore-Penrose pseudo-inverse ai = a⁺
//
//  With a = U Σ Vᵀ (singular value decomposition):   a⁺ = V Σ⁺ Uᵀ
//
//  where Σ⁺ inverts the singular values above PinvTol·σmax and zeroes the others
func Pinv3(ai, a []float64) {
	var svd mat.SVD
	if !svd.Factorize(mat.NewDense(3, 3, a), mat.SVDFull) {
		chk.Panic("tnsr: Pinv3: singular value decomposition of %v failed", a)
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	σ := svd.Values(nil) // descending
	var inv [3]float64
	for k := 0; k < 3; k++ {
		if σ[k] > PinvTol*σ[0] && σ[k] > 0 {
			inv[k] = 1.0 / σ[k]
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			ai[i*3+j] = 0
			for k := 0; k < 3; k++ {
				ai[i*3+j] += v.At(i, k) * inv[k] * u.At(j, k)
			}
		}
	}
}
