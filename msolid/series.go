// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/ZAARAOUI999/hypermat/ad"
	"github.com/cpmech/gosl/fun/dbf"
)

// Series implements the polynomial (Rivlin series) family of models
//
//   W = Σ Cij (J1 - 3)^i (J2 - 3)^j
//
//  The name of the model selects which coefficients are accepted:
//    neo-hooke            C10
//    mooney-rivlin        C10 C01
//    isihara              C10 C20 C01
//    biderman             C10 C20 C30 C01
//    james-green-simpson  C10 C20 C30 C01 C11
//    haines-wilson        C10 C20 C30 C01 C02 C11
//    yeoh                 C10 C20 C30
//    haupt-sedlan         C10 C30 C01 C02 C11
//    lion                 C10 C01 C50
type Series struct {
	name string        // model name
	keys []string      // accepted coefficients
	C    [6][3]float64 // C[i][j] => Cij
}

// series holds the coefficients accepted by each model in the family
var series = map[string][]string{
	"neo-hooke":           {"C10"},
	"mooney-rivlin":       {"C10", "C01"},
	"isihara":             {"C10", "C20", "C01"},
	"biderman":            {"C10", "C20", "C30", "C01"},
	"james-green-simpson": {"C10", "C20", "C30", "C01", "C11"},
	"haines-wilson":       {"C10", "C20", "C30", "C01", "C02", "C11"},
	"yeoh":                {"C10", "C20", "C30"},
	"haupt-sedlan":        {"C10", "C30", "C01", "C02", "C11"},
	"lion":                {"C10", "C01", "C50"},
}

// add model to factory
func init() {
	for name, keys := range series {
		n, k := name, keys
		allocators[n] = func() Model { return &Series{name: n, keys: k} }
	}
}

// Init initialises model
func (o *Series) Init(prms dbf.Params) (err error) {
	o.C = [6][3]float64{}
	for _, p := range prms {
		i, j, ok := o.index(p.N)
		if !ok {
			return unknownPrm(o.name, p.N)
		}
		o.C[i][j] = p.V
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Series) GetPrms() (prms dbf.Params) {
	example := map[string]float64{"C10": 0.3, "C01": 0.03, "C20": -0.01, "C30": 5e-4, "C02": 1e-4, "C11": 1e-4, "C50": 1e-7}
	for _, key := range o.keys {
		v := example[key]
		prms = append(prms, &dbf.P{N: key, V: v, Min: -10, Max: 10})
	}
	return
}

// Energy computes W
func (o Series) Energy(inv *ad.Invariants) *ad.Number {
	a := inv.J1.AddC(-3)
	b := inv.J2.AddC(-3)
	W := a.Scale(o.C[1][0])
	for i := 0; i < len(o.C); i++ {
		for j := 0; j < len(o.C[i]); j++ {
			c := o.C[i][j]
			if c == 0 || (i == 1 && j == 0) {
				continue
			}
			switch {
			case i == 0:
				W = W.Add(b.Pow(float64(j)).Scale(c))
			case j == 0:
				W = W.Add(a.Pow(float64(i)).Scale(c))
			default:
				W = W.Add(a.Pow(float64(i)).Mul(b.Pow(float64(j))).Scale(c))
			}
		}
	}
	return W
}

// index returns the position of coefficient key in C
func (o Series) index(key string) (i, j int, ok bool) {
	for _, k := range o.keys {
		if k == key {
			return int(key[1] - '0'), int(key[2] - '0'), true
		}
	}
	return
}

// Carroll implements the Carroll model
//
//   W = A J1 + B J1⁴ + C J2^½
type Carroll struct {
	A, B, C float64
}

// add model to factory
func init() {
	allocators["carroll"] = func() Model { return new(Carroll) }
}

// Init initialises model
func (o *Carroll) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "A":
			o.A = p.V
		case "B":
			o.B = p.V
		case "C":
			o.C = p.V
		default:
			return unknownPrm("carroll", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Carroll) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "A", V: 0.15, Min: 0, Max: 10},
		&dbf.P{N: "B", V: 3e-7, Min: 0, Max: 1},
		&dbf.P{N: "C", V: 0.1, Min: 0, Max: 10},
	}
}

// Energy computes W
func (o Carroll) Energy(inv *ad.Invariants) *ad.Number {
	return sum(inv.J1.Scale(o.A), inv.J1.Pow(4).Scale(o.B), inv.J2.Sqrt().Scale(o.C))
}

// Zhao implements the Zhao model
//
//   W = C1 (J1 - 3) + C2 (J2 - 3) + C3 (J1² - 2 J2 - 3) + C4 (J1² - 2 J2 - 3)²
type Zhao struct {
	C1, C2, C3, C4 float64
}

// add model to factory
func init() {
	allocators["zhao"] = func() Model { return new(Zhao) }
}

// Init initialises model
func (o *Zhao) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "C1":
			o.C1 = p.V
		case "C2":
			o.C2 = p.V
		case "C3":
			o.C3 = p.V
		case "C4":
			o.C4 = p.V
		default:
			return unknownPrm("zhao", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Zhao) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "C1", V: 0.3, Min: -10, Max: 10},
		&dbf.P{N: "C2", V: 0.01, Min: -10, Max: 10},
		&dbf.P{N: "C3", V: 1e-3, Min: -10, Max: 10},
		&dbf.P{N: "C4", V: 1e-5, Min: -10, Max: 10},
	}
}

// Energy computes W
func (o Zhao) Energy(inv *ad.Invariants) *ad.Number {
	q := inv.J1.Pow(2).Sub(inv.J2.Scale(2)).AddC(-3)
	return sum(
		inv.J1.AddC(-3).Scale(o.C1),
		inv.J2.AddC(-3).Scale(o.C2),
		q.Scale(o.C3),
		q.Pow(2).Scale(o.C4),
	)
}

// BahremanDarijani implements the Bahreman-Darijani model
//
//   W = A2 (J1 - 3) + B2 (J2 - 3) + A4 (J1² - 2 J2 - 3) + A6 (J1³ - 3 J1 J2)
type BahremanDarijani struct {
	A2, B2, A4, A6 float64
}

// add model to factory
func init() {
	allocators["bahreman-darijani"] = func() Model { return new(BahremanDarijani) }
}

// Init initialises model
func (o *BahremanDarijani) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "A2":
			o.A2 = p.V
		case "B2":
			o.B2 = p.V
		case "A4":
			o.A4 = p.V
		case "A6":
			o.A6 = p.V
		default:
			return unknownPrm("bahreman-darijani", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o BahremanDarijani) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "A2", V: 0.3, Min: -10, Max: 10},
		&dbf.P{N: "B2", V: 0.02, Min: -10, Max: 10},
		&dbf.P{N: "A4", V: 1e-3, Min: -10, Max: 10},
		&dbf.P{N: "A6", V: 1e-5, Min: -10, Max: 10},
	}
}

// Energy computes W
func (o BahremanDarijani) Energy(inv *ad.Invariants) *ad.Number {
	J1, J2 := inv.J1, inv.J2
	return sum(
		J1.AddC(-3).Scale(o.A2),
		J2.AddC(-3).Scale(o.B2),
		J1.Pow(2).Sub(J2.Scale(2)).AddC(-3).Scale(o.A4),
		J1.Pow(3).Sub(J1.Mul(J2).Scale(3)).Scale(o.A6),
	)
}
