// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ad

import "math"

// Pow returns x^p for a real constant exponent p
//
//   (x^p)'  = p x^(p-1) x'
//   (x^p)'' = p x^(p-1) x'' + p (p-1) x^(p-2) x'⊗x'
//
//  Note: tensor fields are raised componentwise
func (a *Number) Pow(p float64) *Number {
	if a.err != nil {
		return a
	}
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return failf("Pow: unsupported exponent %v; only finite real constants are allowed", p)
	}
	return a.apply(func(v float64) (f, d1, d2 float64) {
		switch p {
		case 0:
			return 1, 0, 0
		case 1:
			return v, 1, 0
		case 2:
			return v * v, 2 * v, 2
		}
		f = math.Pow(v, p)
		d1 = p * math.Pow(v, p-1)
		d2 = p * (p - 1) * math.Pow(v, p-2)
		return
	})
}

// Sqrt returns √x
func (a *Number) Sqrt() *Number {
	return a.Pow(0.5)
}

// Log returns the natural logarithm of x
func (a *Number) Log() *Number {
	if a.err != nil {
		return a
	}
	return a.apply(func(v float64) (f, d1, d2 float64) {
		return math.Log(v), 1.0 / v, -1.0 / (v * v)
	})
}

// Exp returns e^x
func (a *Number) Exp() *Number {
	if a.err != nil {
		return a
	}
	return a.apply(func(v float64) (f, d1, d2 float64) {
		e := math.Exp(v)
		return e, e, e
	})
}

// apply applies a scalar function componentwise with the second order chain rule
//  fcn -- returns f(v), f'(v) and f''(v)
func (a *Number) apply(fcn func(v float64) (f, d1, d2 float64)) *Number {
	hessian := a.hess != nil
	o := alloc(a.Lead(), a.Rank(), hessian)
	vs := a.val.Size()
	for p := 0; p < a.val.Npts(); p++ {
		xv, xg := a.val.Point(p), a.grad.Point(p)
		ov, og := o.val.Point(p), o.grad.Point(p)
		var xh, oh []float64
		if hessian {
			xh, oh = a.hess.Point(p), o.hess.Point(p)
		}
		for I := 0; I < vs; I++ {
			f, d1, d2 := fcn(xv[I])
			ov[I] = f
			for K := 0; K < 9; K++ {
				og[I*9+K] = d1 * xg[I*9+K]
			}
			if !hessian {
				continue
			}
			for K := 0; K < 9; K++ {
				for L := 0; L < 9; L++ {
					IKL := (I*9+K)*9 + L
					oh[IKL] = d1*xh[IKL] + d2*xg[I*9+K]*xg[I*9+L]
				}
			}
		}
	}
	return o
}
