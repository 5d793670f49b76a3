// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/ZAARAOUI999/hypermat/ad"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// YamashitaKawabata implements the Yamashita-Kawabata model
//
//   W = C1 (J1 - 3) + C2 (J2 - 3) + C3/(N + 1) (J1 - 3)^(N+1)
//
//  Note: N ≥ 1 keeps the tangent finite at the undeformed state
type YamashitaKawabata struct {
	C1, C2, C3 float64
	N          float64
}

// ModifiedGregory implements the modified Gregory model
//
//   W = A/(1 + α) (J1 - 3 + M²)^(1+α) + B/(1 + β) (J1 - 3 + N²)^(1+β)
type ModifiedGregory struct {
	A, Alpha, M float64
	B, Beta, N  float64
}

// add models to factory
func init() {
	allocators["yamashita-kawabata"] = func() Model { return new(YamashitaKawabata) }
	allocators["modified-gregory"] = func() Model { return new(ModifiedGregory) }
}

// Init initialises model
func (o *YamashitaKawabata) Init(prms dbf.Params) (err error) {
	o.N = 1
	for _, p := range prms {
		switch p.N {
		case "C1":
			o.C1 = p.V
		case "C2":
			o.C2 = p.V
		case "C3":
			o.C3 = p.V
		case "N":
			o.N = p.V
		default:
			return unknownPrm("yamashita-kawabata", p.N)
		}
	}
	if o.N < 1 {
		return chk.Err("msolid: yamashita-kawabata: N must be greater than or equal to 1. N=%g is invalid", o.N)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o YamashitaKawabata) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "C1", V: 0.3, Min: -10, Max: 10},
		&dbf.P{N: "C2", V: 0.02, Min: -10, Max: 10},
		&dbf.P{N: "C3", V: 1e-3, Min: -10, Max: 10},
		&dbf.P{N: "N", V: 2, Min: 1, Max: 10},
	}
}

// Energy computes W
func (o YamashitaKawabata) Energy(inv *ad.Invariants) *ad.Number {
	return sum(
		inv.J1.AddC(-3).Scale(o.C1),
		inv.J2.AddC(-3).Scale(o.C2),
		shifted(o.C3/(o.N+1.0), inv.J1, 3, o.N+1.0),
	)
}

// Init initialises model
func (o *ModifiedGregory) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "A":
			o.A = p.V
		case "alpha":
			o.Alpha = p.V
		case "M":
			o.M = p.V
		case "B":
			o.B = p.V
		case "beta":
			o.Beta = p.V
		case "N":
			o.N = p.V
		default:
			return unknownPrm("modified-gregory", p.N)
		}
	}
	if o.Alpha == -1 || o.Beta == -1 {
		return chk.Err("msolid: modified-gregory: alpha and beta must differ from -1. alpha=%g, beta=%g", o.Alpha, o.Beta)
	}
	if o.M == 0 || o.N == 0 {
		return chk.Err("msolid: modified-gregory: M and N must be non-zero. M=%g, N=%g", o.M, o.N)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o ModifiedGregory) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "A", V: 0.3, Min: 0, Max: 100},
		&dbf.P{N: "alpha", V: -0.2, Min: -0.99, Max: 10},
		&dbf.P{N: "M", V: 2, Min: 1e-3, Max: 100},
		&dbf.P{N: "B", V: 0.01, Min: 0, Max: 100},
		&dbf.P{N: "beta", V: 0.5, Min: -0.99, Max: 10},
		&dbf.P{N: "N", V: 1.5, Min: 1e-3, Max: 100},
	}
}

// Energy computes W
func (o ModifiedGregory) Energy(inv *ad.Invariants) *ad.Number {
	a, b := 1.0+o.Alpha, 1.0+o.Beta
	return sum(
		shifted(o.A/a, inv.J1, 3.0-o.M*o.M, a),
		shifted(o.B/b, inv.J1, 3.0-o.N*o.N, b),
	)
}
