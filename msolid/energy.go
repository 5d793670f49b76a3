// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/ZAARAOUI999/hypermat/ad"
	"github.com/ZAARAOUI999/hypermat/par"
	"github.com/ZAARAOUI999/hypermat/tnsr"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// ZeroTol is the tolerance below which stress and tangent components are set to zero
var ZeroTol = 1e-13

// Volumetric computes the volumetric part of the strain energy
//
//   Wvol = ½ K (J3 - 1)²
func Volumetric(inv *ad.Invariants, K float64) *ad.Number {
	return inv.J3.AddC(-1).Pow(2).Scale(0.5 * K)
}

// Response holds the results of one evaluation over a batch of deformation gradients
type Response struct {
	W *tnsr.Array // strain energy (*batch)
	P *tnsr.Array // first Piola-Kirchhoff stress ∂W/∂F (*batch,3,3)
	A *tnsr.Array // tangent ∂²W/∂F∂F (*batch,3,3,3,3); nil if not requested
}

// StrainEnergy evaluates the total strain energy W = Wiso(J1,J2,J3) + Wvol(J3)
//  Note: the volumetric part is only included if K ≠ 0
type StrainEnergy struct {
	Name string     // model name
	K    float64    // bulk modulus
	Par  par.Config // parallel evaluation over batch points

	// internal
	model Model      // isochoric part
	prms  dbf.Params // parameters of the isochoric part
}

// NewStrainEnergy allocates and initialises a strain energy
//  prms -- model parameters; an optional "K" entry holds the bulk modulus and is removed
//          from the list given to the model
func NewStrainEnergy(name string, prms dbf.Params) (o *StrainEnergy, err error) {
	o = &StrainEnergy{Name: name, Par: par.DefaultConfig()}
	o.model, err = New(name)
	if err != nil {
		return nil, err
	}
	for _, p := range prms {
		if p.N == "K" {
			o.K = p.V
			continue
		}
		o.prms = append(o.prms, p)
	}
	o.prms = copyPrms(o.prms)
	if err = o.model.Init(o.prms); err != nil {
		return nil, err
	}
	return
}

// Model returns the isochoric model
func (o *StrainEnergy) Model() Model { return o.model }

// Prms returns a copy of the current parameters; K is included if non-zero
func (o *StrainEnergy) Prms() (prms dbf.Params) {
	prms = copyPrms(o.prms)
	if o.K != 0 {
		prms = append(prms, &dbf.P{N: "K", V: o.K})
	}
	return
}

// SetPrm sets the value of one parameter and re-initialises the model
func (o *StrainEnergy) SetPrm(name string, value float64) (err error) {
	if name == "K" {
		o.K = value
		return
	}
	for _, p := range o.prms {
		if p.N == name {
			old := p.V
			p.V = value
			if err = o.model.Init(o.prms); err != nil {
				p.V = old
				o.model.Init(o.prms)
			}
			return
		}
	}
	return chk.Err("msolid: %s: cannot find parameter named %q", o.Name, name)
}

// Parts computes the isochoric and volumetric parts of the energy at F
//  hessian -- also track second derivatives
//  Note: vol is nil if K = 0
func (o *StrainEnergy) Parts(F *tnsr.Array, hessian bool) (iso, vol *ad.Number, err error) {
	inv, err := ad.FromDeformation(ad.Seed(F, hessian))
	if err != nil {
		return
	}
	iso = o.model.Energy(inv)
	if err = iso.Err(); err != nil {
		return nil, nil, err
	}
	if iso.Rank() != 0 {
		return nil, nil, chk.Err("msolid: %s: energy must be a scalar field; got rank %d", o.Name, iso.Rank())
	}
	if o.K != 0 {
		vol = Volumetric(inv, o.K)
		if err = vol.Err(); err != nil {
			return nil, nil, err
		}
	}
	return
}

// Jacobian computes the first Piola-Kirchhoff stress P = ∂W/∂F
//  F -- deformation gradients (*batch,3,3)
func (o *StrainEnergy) Jacobian(F *tnsr.Array) (P *tnsr.Array, err error) {
	res, err := o.evaluate(F, false)
	if err != nil {
		return
	}
	return res.P, nil
}

// Hessian computes the tangent A = ∂²W/∂F∂F
//  F -- deformation gradients (*batch,3,3)
func (o *StrainEnergy) Hessian(F *tnsr.Array) (A *tnsr.Array, err error) {
	res, err := o.evaluate(F, true)
	if err != nil {
		return
	}
	return res.A, nil
}

// Evaluate computes W, P and A in a single pass
func (o *StrainEnergy) Evaluate(F *tnsr.Array) (*Response, error) {
	return o.evaluate(F, true)
}

// evaluate runs the batch in independent chunks of points
func (o *StrainEnergy) evaluate(F *tnsr.Array, hessian bool) (res *Response, err error) {
	if err = tnsr.CheckRank("StrainEnergy", F, 2); err != nil {
		return
	}
	res = &Response{W: tnsr.NewArray(F.Lead, 0), P: tnsr.NewArray(F.Lead, 2)}
	if hessian {
		res.A = tnsr.NewArray(F.Lead, 4)
	}
	err = par.For(F.Npts(), func(start, end int) error {
		W, err := o.chunk(F.Slice(start, end), hessian)
		if err != nil {
			return err
		}
		res.W.Paste(start, W.Value())
		res.P.Paste(start, tnsr.Clean(W.Grad(), ZeroTol))
		if hessian {
			res.A.Paste(start, tnsr.Clean(W.Hess(), ZeroTol))
		}
		return nil
	}, o.Par)
	if err != nil {
		return nil, err
	}
	return
}

// chunk computes the total energy of a one-dimensional batch
func (o *StrainEnergy) chunk(F *tnsr.Array, hessian bool) (W *ad.Number, err error) {
	iso, vol, err := o.Parts(F, hessian)
	if err != nil {
		return
	}
	W = iso
	if vol != nil {
		W = iso.Add(vol)
	}
	return W, W.Err()
}
