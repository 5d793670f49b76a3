// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/ZAARAOUI999/hypermat/tnsr"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Driver runs homogeneous experiments on a strain energy
type Driver struct {

	// input
	Sol *StrainEnergy // strain energy

	// results
	Lam []float64   // stretches λ along the loading direction
	Sig []float64   // nominal (or true if Path.True) stress along the loading direction
	F   *tnsr.Array // deformation gradients
	P   *tnsr.Array // first Piola-Kirchhoff stresses
}

// Init initialises driver
func (o *Driver) Init(sol *StrainEnergy) (err error) {
	if sol == nil {
		return chk.Err("msolid: driver: strain energy is required")
	}
	o.Sol = sol
	return
}

// Run runs the experiment
//  Note: the lateral constraint (hydrostatic pressure) of an incompressible body is removed
//        by using the traction-free direction f:  σnom = P11 - Pff Fff / F11
func (o *Driver) Run(pth *Path) (err error) {
	if o.Sol == nil {
		return chk.Err("msolid: driver: Init must be called first")
	}
	f, err := pth.free()
	if err != nil {
		return
	}
	o.F, err = pth.Deformation()
	if err != nil {
		return
	}
	o.P, err = o.Sol.Jacobian(o.F)
	if err != nil {
		return
	}
	o.Lam = pth.Stretches()
	o.Sig = make([]float64, len(o.Lam))
	for i, λ := range o.Lam {
		F11, Fff := o.F.Get(i, 0, 0), o.F.Get(i, f, f)
		o.Sig[i] = o.P.Get(i, 0, 0) - o.P.Get(i, f, f)*Fff/F11
		if pth.True {
			o.Sig[i] *= λ
		}
	}
	if io.Verbose {
		o.report(pth)
	}
	return
}

// report prints the results
func (o Driver) report(pth *Path) {
	lbl := "nominal"
	if pth.True {
		lbl = "true"
	}
	io.Pforan("%s test with %s (%s stress)\n", pth.Kind, o.Sol.Name, lbl)
	io.Pf("%12s%16s\n", "λ", "σ")
	for i, λ := range o.Lam {
		io.Pf("%12.6f%16.8e\n", λ, o.Sig[i])
	}
}
