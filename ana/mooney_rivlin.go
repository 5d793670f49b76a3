// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// MooneyRivlin implements the nominal stresses of an incompressible Mooney-Rivlin solid
// under homogeneous experiments
//
//   W = C10 (I1 - 3) + C01 (I2 - 3)
//
//  Neo-Hooke is recovered with C01 = 0
type MooneyRivlin struct {
	C10 float64 // C10
	C01 float64 // C01
}

// Init initialises this structure
func (o *MooneyRivlin) Init(prms dbf.Params) (err error) {

	// default values
	o.C10 = 0.5
	o.C01 = 0.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "C10":
			o.C10 = p.V
		case "C01":
			o.C01 = p.V
		case "K":
		default:
			return chk.Err("ana: mooney-rivlin: parameter %q is not supported", p.N)
		}
	}
	return
}

// Uniaxial returns the nominal stress for F = diag(λ, λ^-½, λ^-½)
//
//   σ = 2 (λ - λ⁻²) (C10 + C01/λ)
func (o MooneyRivlin) Uniaxial(λ float64) float64 {
	return 2.0 * (λ - math.Pow(λ, -2)) * (o.C10 + o.C01/λ)
}

// Equibiaxial returns the nominal stress for F = diag(λ, λ, λ^-2)
//
//   σ = 2 (λ - λ⁻⁵) (C10 + C01 λ²)
func (o MooneyRivlin) Equibiaxial(λ float64) float64 {
	return 2.0 * (λ - math.Pow(λ, -5)) * (o.C10 + o.C01*λ*λ)
}

// Planar returns the nominal stress for F = diag(λ, 1, λ^-1)
//
//   σ = 2 (λ - λ⁻³) (C10 + C01)
func (o MooneyRivlin) Planar(λ float64) float64 {
	return 2.0 * (λ - math.Pow(λ, -3)) * (o.C10 + o.C01)
}

// Stress returns the nominal stress for an experiment kind
//  kind -- "uniaxial", "equibiaxial" or "planar"
func (o MooneyRivlin) Stress(kind string, λ float64) (σ float64, err error) {
	switch kind {
	case "uniaxial":
		return o.Uniaxial(λ), nil
	case "equibiaxial":
		return o.Equibiaxial(λ), nil
	case "planar":
		return o.Planar(λ), nil
	}
	return 0, chk.Err("ana: mooney-rivlin: experiment %q is not available", kind)
}
