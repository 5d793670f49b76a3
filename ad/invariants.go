// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ad

import "github.com/ZAARAOUI999/hypermat/tnsr"

// Invariants holds the right Cauchy-Green tensor and its invariants
//
//   I1 = tr(C)   I2 = ½(I1² - tr(C·C))   I3 = det(C)
//   J1 = I3^(-1/3) I1   J2 = I3^(-2/3) I2   J3 = I3^(1/2)
//
//  At the undeformed state: I1 = I2 = J1 = J2 = 3 and I3 = J3 = 1
type Invariants struct {
	C          *Number // right Cauchy-Green tensor (tensor field)
	I1, I2, I3 *Number // principal invariants of C
	J1, J2, J3 *Number // isochoric (distortional) invariants and J3 = det(F)
}

// FromDeformation computes the invariants of C = Fᵀ·F
//  F -- deformation gradient; a seeded Number or a tensor field built from one
func FromDeformation(F *Number) (*Invariants, error) {
	if err := F.checkTensor("FromDeformation"); err != nil {
		return nil, err
	}
	C := F.T().MatMul(F)
	if C.err != nil {
		return nil, C.err
	}
	return FromCauchyGreen(C)
}

// FromCauchyGreen computes the invariants of C
//  C -- right Cauchy-Green tensor; a seeded Number or a tensor field built from one
func FromCauchyGreen(C *Number) (o *Invariants, err error) {
	if err = C.checkTensor("FromCauchyGreen"); err != nil {
		return
	}
	o = &Invariants{C: C, I1: C.I1(), I2: C.I2(), I3: C.I3()}
	o.J1 = o.I3.Pow(-1.0 / 3.0).Mul(o.I1)
	o.J2 = o.I3.Pow(-2.0 / 3.0).Mul(o.I2)
	o.J3 = o.I3.Pow(0.5)
	if err = firstErr(o.I1, o.I2, o.I3, o.J1, o.J2, o.J3); err != nil {
		return nil, err
	}
	return
}

// I1 returns the first invariant of the tensor field C
//
//   I1 = tr(C)   ∂I1/∂C = I   ∂²I1/∂C∂C = 0
func (a *Number) I1() *Number {
	return a.compose("I1", func(f *float64, df, d2f []float64, c []float64) {
		*f = tnsr.Tr3(c)
		df[0], df[4], df[8] = 1, 1, 1
	})
}

// I2 returns the second invariant of the tensor field C
//
//   I2 = ½(I1² - tr(C·C))
//   ∂I2/∂Ckl = I1 δkl - Clk
//   ∂²I2/∂Ckl∂Cmn = δkl δmn - δkn δlm
func (a *Number) I2() *Number {
	return a.compose("I2", func(f *float64, df, d2f []float64, c []float64) {
		tr := tnsr.Tr3(c)
		trcc := 0.0
		for k := 0; k < 3; k++ {
			for l := 0; l < 3; l++ {
				trcc += c[k*3+l] * c[l*3+k]
			}
		}
		*f = 0.5 * (tr*tr - trcc)
		for k := 0; k < 3; k++ {
			for l := 0; l < 3; l++ {
				df[k*3+l] = -c[l*3+k]
				if k == l {
					df[k*3+l] += tr
				}
				for m := 0; m < 3; m++ {
					for n := 0; n < 3; n++ {
						d2f[(k*3+l)*9+m*3+n] = δ(k, l)*δ(m, n) - δ(k, n)*δ(l, m)
					}
				}
			}
		}
	})
}

// I3 returns the third invariant of the tensor field C
//
//   I3 = det(C)
//   ∂I3/∂Ckl = I3 Cⁱlk                          (Cⁱ = C⁻¹)
//   ∂²I3/∂Ckl∂Cmn = I3 (Cⁱlk Cⁱnm - Cⁱlm Cⁱnk)
//
//  Note: numerically singular C uses the pseudo-inverse (see tnsr.Inv3)
func (a *Number) I3() *Number {
	return a.compose("I3", func(f *float64, df, d2f []float64, c []float64) {
		var ci [9]float64
		det, _ := tnsr.Inv3(ci[:], c)
		*f = det
		for k := 0; k < 3; k++ {
			for l := 0; l < 3; l++ {
				df[k*3+l] = det * ci[l*3+k]
				for m := 0; m < 3; m++ {
					for n := 0; n < 3; n++ {
						d2f[(k*3+l)*9+m*3+n] = det * (ci[l*3+k]*ci[n*3+m] - ci[l*3+m]*ci[n*3+k])
					}
				}
			}
		}
	})
}

// compose evaluates a scalar function of the tensor field a, given its analytical first and
// second derivatives with respect to a, and chains them through a's own derivatives
//
//   g_K  = f_I aI_K
//   h_KL = f_IJ aI_K aJ_L + f_I aI_KL
//
//  fcn -- computes f, df[9] and d2f[81] for the value c[9] of one point; df and d2f are zeroed
func (a *Number) compose(op string, fcn func(f *float64, df, d2f []float64, c []float64)) *Number {
	if err := a.checkTensor(op); err != nil {
		return &Number{err: err}
	}
	hessian := a.hess != nil
	o := alloc(a.Lead(), 0, hessian)
	df := make([]float64, 9)
	d2f := make([]float64, 81)
	tmp := make([]float64, 81)
	for p := 0; p < a.val.Npts(); p++ {
		for i := range df {
			df[i] = 0
		}
		for i := range d2f {
			d2f[i] = 0
		}
		ag, og := a.grad.Point(p), o.grad.Point(p)
		fcn(&o.val.Data[p], df, d2f, a.val.Point(p))
		for I := 0; I < 9; I++ {
			for K := 0; K < 9; K++ {
				og[K] += df[I] * ag[I*9+K]
			}
		}
		if !hessian {
			continue
		}
		ah, oh := a.hess.Point(p), o.hess.Point(p)
		for I := 0; I < 9; I++ { // tmp_IL = f_IJ aJ_L
			for L := 0; L < 9; L++ {
				tmp[I*9+L] = 0
				for J := 0; J < 9; J++ {
					tmp[I*9+L] += d2f[I*9+J] * ag[J*9+L]
				}
			}
		}
		for K := 0; K < 9; K++ {
			for L := 0; L < 9; L++ {
				for I := 0; I < 9; I++ {
					oh[K*9+L] += ag[I*9+K]*tmp[I*9+L] + df[I]*ah[(I*9+K)*9+L]
				}
			}
		}
	}
	return o
}

// δ is the Kronecker delta
func δ(i, j int) float64 {
	if i == j {
		return 1
	}
	return 0
}
