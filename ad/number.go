// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ad implements hyper-dual numbers over batches of 3×3 tensors
//
//  A Number carries a value v(X) together with its first and second derivatives with respect to
//  a single seeded second order tensor X:
//
//    scalar field:  value (*batch)       grad (*batch,3,3)      hess (*batch,3,3,3,3)
//    tensor field:  value (*batch,3,3)   grad (*batch,3,3,3,3)  hess (*batch,3,3,3,3,3,3)
//
//  Numbers are never modified after construction. Errors are sticky: any operation involving a
//  failed Number, or an invalid operation, returns a failed Number whose Err() is non-nil
package ad

import (
	"github.com/ZAARAOUI999/hypermat/tnsr"
	"github.com/cpmech/gosl/chk"
)

// Number implements a hyper-dual number whose components are tensor batches
type Number struct {
	val  *tnsr.Array // value
	grad *tnsr.Array // ∂value/∂X
	hess *tnsr.Array // ∂²value/∂X∂X; nil if second derivatives are not tracked
	err  error       // first error found while computing this number
}

// Seed creates the differentiation variable X
//  hessian -- also track second derivatives
//
//  Note: grad = 𝕀 (fourth order identity, i.e. ∂X/∂X) and hess = 0 (sixth order)
func Seed(x *tnsr.Array, hessian bool) *Number {
	if err := tnsr.CheckRank("Seed", x, 2); err != nil {
		return &Number{err: err}
	}
	o := &Number{val: x.Clone(), grad: tnsr.Identity4Like(x)}
	if hessian {
		o.hess = tnsr.NewArray(x.Lead, 6)
	}
	return o
}

// Const creates a scalar field with constant value c and zero derivatives
func Const(lead []int, c float64) *Number {
	o := &Number{
		val:  tnsr.NewArray(lead, 0),
		grad: tnsr.NewArray(lead, 2),
		hess: tnsr.NewArray(lead, 4),
	}
	for i := range o.val.Data {
		o.val.Data[i] = c
	}
	return o
}

// Make creates a Number from its components
//  hess may be nil
//  Note: the arrays are copied and their shapes are validated
func Make(val, grad, hess *tnsr.Array) *Number {
	if val == nil || grad == nil {
		return failf("Make: value and gradient are required")
	}
	if val.Rank != 0 && val.Rank != 2 {
		return failf("Make: value must be a scalar field (rank 0) or tensor field (rank 2); got rank %d", val.Rank)
	}
	if err := tnsr.CheckLead("Make", val, grad); err != nil {
		return &Number{err: err}
	}
	if grad.Rank != val.Rank+2 {
		return failf("Make: gradient of shape %v does not match value of shape %v", grad.Shape(), val.Shape())
	}
	o := &Number{val: val.Clone(), grad: grad.Clone()}
	if hess != nil {
		if err := tnsr.CheckLead("Make", val, hess); err != nil {
			return &Number{err: err}
		}
		if hess.Rank != val.Rank+4 {
			return failf("Make: hessian of shape %v does not match value of shape %v", hess.Shape(), val.Shape())
		}
		o.hess = hess.Clone()
	}
	return o
}

// Err returns the error that invalidated this number, if any
func (a *Number) Err() error { return a.err }

// Value returns the value
//  Note: the returned array must not be modified
func (a *Number) Value() *tnsr.Array { return a.val }

// Grad returns the first derivative
//  Note: the returned array must not be modified
func (a *Number) Grad() *tnsr.Array { return a.grad }

// Hess returns the second derivative or nil if it is not tracked
//  Note: the returned array must not be modified
func (a *Number) Hess() *tnsr.Array { return a.hess }

// Lead returns the batch shape
func (a *Number) Lead() []int {
	if a.val == nil {
		return nil
	}
	return a.val.Lead
}

// Rank returns the rank of the value: 0 for scalar fields, 2 for tensor fields
func (a *Number) Rank() int {
	if a.val == nil {
		return -1
	}
	return a.val.Rank
}

// HasHess tells whether second derivatives are tracked
func (a *Number) HasHess() bool { return a.hess != nil }

// Jacobian returns a copy of the first derivative of a scalar field: shape (*batch,3,3)
func (a *Number) Jacobian() (*tnsr.Array, error) {
	if err := a.checkScalar("Jacobian"); err != nil {
		return nil, err
	}
	return a.grad.Clone(), nil
}

// Hessian returns a copy of the second derivative of a scalar field: shape (*batch,3,3,3,3)
func (a *Number) Hessian() (*tnsr.Array, error) {
	if err := a.checkScalar("Hessian"); err != nil {
		return nil, err
	}
	if a.hess == nil {
		return nil, chk.Err("ad: Hessian: second derivatives were not tracked; seed with hessian=true")
	}
	return a.hess.Clone(), nil
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// failf returns a failed Number
func failf(msg string, prm ...interface{}) *Number {
	return &Number{err: chk.Err("ad: "+msg, prm...)}
}

// firstErr returns the first error among operands
func firstErr(nums ...*Number) error {
	for _, n := range nums {
		if n == nil {
			return chk.Err("ad: nil operand")
		}
		if n.err != nil {
			return n.err
		}
	}
	return nil
}

// alloc allocates the result of an operation
func alloc(lead []int, rank int, hessian bool) *Number {
	o := &Number{val: tnsr.NewArray(lead, rank), grad: tnsr.NewArray(lead, rank+2)}
	if hessian {
		o.hess = tnsr.NewArray(lead, rank+4)
	}
	return o
}

// checkScalar returns an error if a is not a valid scalar field
func (a *Number) checkScalar(op string) error {
	if a.err != nil {
		return a.err
	}
	if a.val.Rank != 0 {
		return chk.Err("ad: %s: a scalar field is required; got value of shape %v", op, a.val.Shape())
	}
	return nil
}

// checkTensor returns an error if a is not a valid tensor field
func (a *Number) checkTensor(op string) error {
	if a.err != nil {
		return a.err
	}
	if a.val.Rank != 2 {
		return chk.Err("ad: %s: a tensor field is required; got value of shape %v", op, a.val.Shape())
	}
	if a.grad.Rank != 4 {
		return chk.Err("ad: %s: gradient of shape %v does not match a tensor field", op, a.grad.Shape())
	}
	if a.hess != nil && a.hess.Rank != 6 {
		return chk.Err("ad: %s: hessian of shape %v does not match a tensor field", op, a.hess.Shape())
	}
	return nil
}
