// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid implements hyperelastic strain-energy models and their evaluation
package msolid

import (
	"sort"

	"github.com/ZAARAOUI999/hypermat/ad"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines an isochoric strain-energy function W(J1, J2, J3)
//  Note: Energy must build W with the operators of ad.Number only, so that its first and
//        second derivatives with respect to the deformation gradient are obtained by composition
type Model interface {
	Init(prms dbf.Params) error           // initialises model
	GetPrms() dbf.Params                  // gets (an example) of parameters, with calibration bounds
	Energy(inv *ad.Invariants) *ad.Number // computes W; a scalar field
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// New allocates a model by name
//  Note: the model still needs to be initialised with Init
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("msolid: model %q is not available. available models: %v", name, Names())
	}
	return allocator(), nil
}

// Names returns the sorted names of all available models
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// unknownPrm returns the error for a parameter not used by a model
func unknownPrm(model, name string) error {
	return chk.Err("msolid: %s: parameter %q is not supported", model, name)
}

// sum returns the sum of scalar fields
func sum(first *ad.Number, others ...*ad.Number) (res *ad.Number) {
	res = first
	for _, n := range others {
		res = res.Add(n)
	}
	return
}

// shifted returns c·(x - x0)^n
func shifted(c float64, x *ad.Number, x0, n float64) *ad.Number {
	return x.AddC(-x0).Pow(n).Scale(c)
}

// copyPrms returns a deep copy of a parameters list
func copyPrms(prms dbf.Params) (res dbf.Params) {
	res = make([]*dbf.P, len(prms))
	for i, p := range prms {
		q := *p
		res[i] = &q
	}
	return
}
