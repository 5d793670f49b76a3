// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/ZAARAOUI999/hypermat/ad"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Gent implements Gent's limiting chain extensibility model
//
//   W = -(E/6) (Im - 3) ln(1 - (J1 - 3)/(Im - 3))
type Gent struct {
	E  float64 // Young's modulus at small strains
	Im float64 // limiting value of J1
}

// Warner implements Warner's model
//
//   W = -½ μ Im ln(1 - (J1 - 3)/(Im - 3))
type Warner struct {
	Mu float64 // μ
	Im float64 // limiting value of J1
}

// YeohFleming implements the Yeoh-Fleming model
//
//   W = (A/B) (Im - 3) (1 - exp(-B (J1 - 3)/(Im - 3))) - C10 (Im - 3) ln(1 - (J1 - 3)/(Im - 3))
type YeohFleming struct {
	A, B float64
	Im   float64 // limiting value of J1
	C10  float64
}

// Knowles implements Knowles' power-law model
//
//   W = μ/(2b) [(1 + (b/n)(J1 - 3))^n - 1]
type Knowles struct {
	Mu float64 // μ
	B  float64 // b
	N  float64 // n
}

// Beatty implements Beatty's limiting chain extensibility model
//
//   W = -c Im (Im - 3)/(2 Im - 3) ln[(1 - (J1 - 3)/(Im - 3)) / (1 + (J1 - 3)/Im)]
type Beatty struct {
	C  float64 // c
	Im float64 // limiting value of J1
}

// add models to factory
func init() {
	allocators["beatty"] = func() Model { return new(Beatty) }
	allocators["gent"] = func() Model { return new(Gent) }
	allocators["warner"] = func() Model { return new(Warner) }
	allocators["yeoh-fleming"] = func() Model { return new(YeohFleming) }
	allocators["knowles"] = func() Model { return new(Knowles) }
}

// Init initialises model
func (o *Gent) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "Im":
			o.Im = p.V
		default:
			return unknownPrm("gent", p.N)
		}
	}
	return checkIm("gent", o.Im)
}

// GetPrms gets (an example) of parameters
func (o Gent) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 1.8, Min: 0, Max: 100},
		&dbf.P{N: "Im", V: 90, Min: 3.1, Max: 1000},
	}
}

// Energy computes W
func (o Gent) Energy(inv *ad.Invariants) *ad.Number {
	return chainLimit(inv.J1, o.Im).Scale(-o.E / 6.0 * (o.Im - 3.0))
}

// Init initialises model
func (o *Warner) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "mu":
			o.Mu = p.V
		case "Im":
			o.Im = p.V
		default:
			return unknownPrm("warner", p.N)
		}
	}
	return checkIm("warner", o.Im)
}

// GetPrms gets (an example) of parameters
func (o Warner) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "mu", V: 0.6, Min: 0, Max: 100},
		&dbf.P{N: "Im", V: 90, Min: 3.1, Max: 1000},
	}
}

// Energy computes W
func (o Warner) Energy(inv *ad.Invariants) *ad.Number {
	return chainLimit(inv.J1, o.Im).Scale(-0.5 * o.Mu * o.Im)
}

// Init initialises model
func (o *YeohFleming) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "A":
			o.A = p.V
		case "B":
			o.B = p.V
		case "Im":
			o.Im = p.V
		case "C10":
			o.C10 = p.V
		default:
			return unknownPrm("yeoh-fleming", p.N)
		}
	}
	if o.B == 0 {
		return chk.Err("msolid: yeoh-fleming: B must be non-zero")
	}
	return checkIm("yeoh-fleming", o.Im)
}

// GetPrms gets (an example) of parameters
func (o YeohFleming) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "A", V: 0.4, Min: 0, Max: 100},
		&dbf.P{N: "B", V: 2.0, Min: 1e-3, Max: 100},
		&dbf.P{N: "Im", V: 90, Min: 3.1, Max: 1000},
		&dbf.P{N: "C10", V: 0.1, Min: 0, Max: 100},
	}
}

// Energy computes W
func (o YeohFleming) Energy(inv *ad.Invariants) *ad.Number {
	m := o.Im - 3.0
	e := inv.J1.AddC(-3).Scale(-o.B / m).Exp().Neg().AddC(1)
	return e.Scale(o.A / o.B * m).Add(chainLimit(inv.J1, o.Im).Scale(-o.C10 * m))
}

// Init initialises model
func (o *Knowles) Init(prms dbf.Params) (err error) {
	o.N = 1
	for _, p := range prms {
		switch p.N {
		case "mu":
			o.Mu = p.V
		case "b":
			o.B = p.V
		case "n":
			o.N = p.V
		default:
			return unknownPrm("knowles", p.N)
		}
	}
	if o.B == 0 || o.N == 0 {
		return chk.Err("msolid: knowles: b and n must be non-zero. b=%g, n=%g", o.B, o.N)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Knowles) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "mu", V: 0.6, Min: 0, Max: 100},
		&dbf.P{N: "b", V: 0.5, Min: 1e-3, Max: 100},
		&dbf.P{N: "n", V: 2.0, Min: 0.1, Max: 10},
	}
}

// Energy computes W
func (o Knowles) Energy(inv *ad.Invariants) *ad.Number {
	base := inv.J1.AddC(-3).Scale(o.B / o.N).AddC(1)
	return shifted(o.Mu/(2.0*o.B), base, 0, o.N).AddC(-o.Mu / (2.0 * o.B))
}

// Init initialises model
func (o *Beatty) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "c":
			o.C = p.V
		case "Im":
			o.Im = p.V
		default:
			return unknownPrm("beatty", p.N)
		}
	}
	return checkIm("beatty", o.Im)
}

// GetPrms gets (an example) of parameters
func (o Beatty) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "c", V: 0.3, Min: 0, Max: 100},
		&dbf.P{N: "Im", V: 90, Min: 3.1, Max: 1000},
	}
}

// Energy computes W
func (o Beatty) Energy(inv *ad.Invariants) *ad.Number {
	a := -o.C * o.Im * (o.Im - 3.0) / (2.0*o.Im - 3.0)
	b := inv.J1.AddC(-3).Scale(1.0 / o.Im).AddC(1).Log()
	return chainLimit(inv.J1, o.Im).Sub(b).Scale(a)
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// chainLimit returns ln(1 - (J1 - 3)/(Im - 3))
func chainLimit(J1 *ad.Number, Im float64) *ad.Number {
	return J1.AddC(-3).Scale(-1.0 / (Im - 3.0)).AddC(1).Log()
}

// checkIm checks the limiting value of J1
func checkIm(model string, Im float64) error {
	if Im <= 3 {
		return chk.Err("msolid: %s: Im must be greater than 3. Im=%g is invalid", model, Im)
	}
	return nil
}
