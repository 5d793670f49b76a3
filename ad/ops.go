// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ad

import "github.com/ZAARAOUI999/hypermat/tnsr"

// Index convention for one batch point (vs = 1 for scalar fields or 9 for tensor fields):
//   value  v[I]             I ∈ [0,vs)
//   grad   g[I*9+K]         K = k*3+l  => ∂v[I]/∂X[k][l]
//   hess   h[(I*9+K)*9+L]   L = m*3+n  => ∂²v[I]/∂X[k][l]∂X[m][n]

// Neg returns -a
func (a *Number) Neg() *Number {
	return a.Scale(-1)
}

// Scale returns α·a
func (a *Number) Scale(α float64) *Number {
	if a.err != nil {
		return a
	}
	o := &Number{val: tnsr.Scale(α, a.val), grad: tnsr.Scale(α, a.grad)}
	if a.hess != nil {
		o.hess = tnsr.Scale(α, a.hess)
	}
	return o
}

// AddC returns a + c where c is a constant added to every component of the value
func (a *Number) AddC(c float64) *Number {
	if a.err != nil {
		return a
	}
	o := &Number{val: a.val.Clone(), grad: a.grad.Clone()}
	if a.hess != nil {
		o.hess = a.hess.Clone()
	}
	for i := range o.val.Data {
		o.val.Data[i] += c
	}
	return o
}

// Add returns a + b
func (a *Number) Add(b *Number) *Number {
	return lincomb("Add", 1, a, 1, b)
}

// Sub returns a - b
func (a *Number) Sub(b *Number) *Number {
	return lincomb("Sub", 1, a, -1, b)
}

// Mul returns the pointwise product a·b
//
//   (a b)'  = b a' + a b'
//   (a b)'' = b a'' + a b'' + a'⊗b' + b'⊗a'
//
//  Note: at least one operand must be a scalar field; if the other is a tensor field, each of its
//        components is multiplied by the scalar field. Use MatMul for tensor contraction
func (a *Number) Mul(b *Number) *Number {
	if err := firstErr(a, b); err != nil {
		return &Number{err: err}
	}
	if err := tnsr.CheckLead("Mul", a.val, b.val); err != nil {
		return &Number{err: err}
	}
	s, t := a, b
	if s.Rank() != 0 {
		s, t = t, s
	}
	if s.Rank() != 0 {
		return failf("Mul: at least one operand must be a scalar field; got shapes %v and %v. use MatMul to contract tensor fields", a.val.Shape(), b.val.Shape())
	}
	hessian := s.hess != nil && t.hess != nil
	o := alloc(t.Lead(), t.Rank(), hessian)
	vs := t.val.Size()
	for p := 0; p < t.val.Npts(); p++ {
		sv, sg := s.val.Data[p], s.grad.Point(p)
		tv, tg := t.val.Point(p), t.grad.Point(p)
		ov, og := o.val.Point(p), o.grad.Point(p)
		for I := 0; I < vs; I++ {
			ov[I] = sv * tv[I]
			for K := 0; K < 9; K++ {
				og[I*9+K] = sg[K]*tv[I] + sv*tg[I*9+K]
			}
		}
		if !hessian {
			continue
		}
		sh, th, oh := s.hess.Point(p), t.hess.Point(p), o.hess.Point(p)
		for I := 0; I < vs; I++ {
			for K := 0; K < 9; K++ {
				for L := 0; L < 9; L++ {
					IKL := (I*9+K)*9 + L
					oh[IKL] = sh[K*9+L]*tv[I] + sg[K]*tg[I*9+L] + sg[L]*tg[I*9+K] + sv*th[IKL]
				}
			}
		}
	}
	return o
}

// Div returns the pointwise quotient q = a/b
//
//   q'  = (a' - q b') / b
//   q'' = (a'' - q b'' - q'⊗b' - b'⊗q') / b
//
//  Note: b must be a scalar field; a may be a scalar or tensor field
func (a *Number) Div(b *Number) *Number {
	if err := firstErr(a, b); err != nil {
		return &Number{err: err}
	}
	if err := tnsr.CheckLead("Div", a.val, b.val); err != nil {
		return &Number{err: err}
	}
	if b.Rank() != 0 {
		return failf("Div: the denominator must be a scalar field; got shape %v", b.val.Shape())
	}
	hessian := a.hess != nil && b.hess != nil
	o := alloc(a.Lead(), a.Rank(), hessian)
	vs := a.val.Size()
	for p := 0; p < a.val.Npts(); p++ {
		bv, bg := b.val.Data[p], b.grad.Point(p)
		av, ag := a.val.Point(p), a.grad.Point(p)
		ov, og := o.val.Point(p), o.grad.Point(p)
		for I := 0; I < vs; I++ {
			ov[I] = av[I] / bv
			for K := 0; K < 9; K++ {
				og[I*9+K] = (ag[I*9+K] - ov[I]*bg[K]) / bv
			}
		}
		if !hessian {
			continue
		}
		ah, bh, oh := a.hess.Point(p), b.hess.Point(p), o.hess.Point(p)
		for I := 0; I < vs; I++ {
			for K := 0; K < 9; K++ {
				for L := 0; L < 9; L++ {
					IKL := (I*9+K)*9 + L
					oh[IKL] = (ah[IKL] - ov[I]*bh[K*9+L] - og[I*9+K]*bg[L] - bg[K]*og[I*9+L]) / bv
				}
			}
		}
	}
	return o
}

// MatMul returns the tensor contraction a·b ("a @ b") of two tensor fields
//
//   (a·b)ij   = aim bmj
//   (a·b)ij'  = aim' bmj + aim bmj'
//   (a·b)ij'' = aim'' bmj + aim'⊗bmj' + bmj'⊗aim' + aim bmj''
func (a *Number) MatMul(b *Number) *Number {
	if err := firstErr(a, b); err != nil {
		return &Number{err: err}
	}
	if err := a.checkTensor("MatMul"); err != nil {
		return &Number{err: err}
	}
	if err := b.checkTensor("MatMul"); err != nil {
		return &Number{err: err}
	}
	if err := tnsr.CheckLead("MatMul", a.val, b.val); err != nil {
		return &Number{err: err}
	}
	hessian := a.hess != nil && b.hess != nil
	o := alloc(a.Lead(), 2, hessian)
	for p := 0; p < a.val.Npts(); p++ {
		av, ag := a.val.Point(p), a.grad.Point(p)
		bv, bg := b.val.Point(p), b.grad.Point(p)
		ov, og := o.val.Point(p), o.grad.Point(p)
		var ah, bh, oh []float64
		if hessian {
			ah, bh, oh = a.hess.Point(p), b.hess.Point(p), o.hess.Point(p)
		}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				IJ := i*3 + j
				for m := 0; m < 3; m++ {
					im, mj := i*3+m, m*3+j
					ov[IJ] += av[im] * bv[mj]
					for K := 0; K < 9; K++ {
						og[IJ*9+K] += ag[im*9+K]*bv[mj] + av[im]*bg[mj*9+K]
					}
					if !hessian {
						continue
					}
					for K := 0; K < 9; K++ {
						for L := 0; L < 9; L++ {
							oh[(IJ*9+K)*9+L] += ah[(im*9+K)*9+L]*bv[mj] +
								ag[im*9+K]*bg[mj*9+L] + ag[im*9+L]*bg[mj*9+K] +
								av[im]*bh[(mj*9+K)*9+L]
						}
					}
				}
			}
		}
	}
	return o
}

// T returns the transpose of a tensor field
func (a *Number) T() *Number {
	if err := a.checkTensor("T"); err != nil {
		return &Number{err: err}
	}
	o := alloc(a.Lead(), 2, a.hess != nil)
	for p := 0; p < a.val.Npts(); p++ {
		av, ag, ov, og := a.val.Point(p), a.grad.Point(p), o.val.Point(p), o.grad.Point(p)
		var ah, oh []float64
		if a.hess != nil {
			ah, oh = a.hess.Point(p), o.hess.Point(p)
		}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				I, J := i*3+j, j*3+i
				ov[J] = av[I]
				copy(og[J*9:J*9+9], ag[I*9:I*9+9])
				if oh != nil {
					copy(oh[J*81:J*81+81], ah[I*81:I*81+81])
				}
			}
		}
	}
	return o
}

// Tr returns the trace of a tensor field as a scalar field
func (a *Number) Tr() *Number {
	if err := a.checkTensor("Tr"); err != nil {
		return &Number{err: err}
	}
	o := alloc(a.Lead(), 0, a.hess != nil)
	for p := 0; p < a.val.Npts(); p++ {
		av, ag, og := a.val.Point(p), a.grad.Point(p), o.grad.Point(p)
		for i := 0; i < 3; i++ {
			ii := i * 4
			o.val.Data[p] += av[ii]
			for K := 0; K < 9; K++ {
				og[K] += ag[ii*9+K]
			}
			if a.hess != nil {
				ah, oh := a.hess.Point(p), o.hess.Point(p)
				for KL := 0; KL < 81; KL++ {
					oh[KL] += ah[ii*81+KL]
				}
			}
		}
	}
	return o
}

// lincomb returns α·a + β·b
func lincomb(op string, α float64, a *Number, β float64, b *Number) *Number {
	if err := firstErr(a, b); err != nil {
		return &Number{err: err}
	}
	if err := tnsr.CheckLead(op, a.val, b.val); err != nil {
		return &Number{err: err}
	}
	if a.Rank() != b.Rank() {
		return failf("%s: operands of shapes %v and %v cannot be combined", op, a.val.Shape(), b.val.Shape())
	}
	o := &Number{}
	o.val, _ = tnsr.Add(α, a.val, β, b.val)
	o.grad, _ = tnsr.Add(α, a.grad, β, b.grad)
	if a.hess != nil && b.hess != nil {
		o.hess, _ = tnsr.Add(α, a.hess, β, b.hess)
	}
	return o
}
