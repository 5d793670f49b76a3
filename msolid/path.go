// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/ZAARAOUI999/hypermat/tnsr"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// kinds of homogeneous incompressible experiments
const (
	Uniaxial    = "uniaxial"    // F = diag(λ, λ^-½, λ^-½)
	Equibiaxial = "equibiaxial" // F = diag(λ, λ, λ^-2)
	Planar      = "planar"      // F = diag(λ, 1, λ^-1) (pure shear)
)

// Path holds the loading of a homogeneous experiment
type Path struct {
	Kind    string    `json:"kind"`    // uniaxial, equibiaxial or planar
	Strains []float64 `json:"strains"` // engineering strains ε = λ - 1
	True    bool      `json:"true"`    // report true (Cauchy) stresses instead of nominal ones
}

// Init initialises path with n equally spaced strains in [0, εmax]
func (o *Path) Init(kind string, εmax float64, n int) (err error) {
	o.Kind = kind
	if _, err = o.free(); err != nil {
		return
	}
	if n < 2 {
		return chk.Err("msolid: path: at least 2 points are required; n=%d is invalid", n)
	}
	o.Strains = utl.LinSpace(0, εmax, n)
	return
}

// Stretches returns the principal stretches λ = 1 + ε along the loading direction
func (o Path) Stretches() (λ []float64) {
	λ = make([]float64, len(o.Strains))
	for i, ε := range o.Strains {
		λ[i] = 1.0 + ε
	}
	return
}

// Deformation returns the batch of deformation gradients along the path
func (o Path) Deformation() (F *tnsr.Array, err error) {
	if _, err = o.free(); err != nil {
		return
	}
	λs := o.Stretches()
	d := make([][3]float64, len(λs))
	for i, λ := range λs {
		if λ <= 0 {
			return nil, chk.Err("msolid: path: stretch must be positive; strain %g is invalid", o.Strains[i])
		}
		switch o.Kind {
		case Uniaxial:
			d[i] = [3]float64{λ, 1.0 / math.Sqrt(λ), 1.0 / math.Sqrt(λ)}
		case Equibiaxial:
			d[i] = [3]float64{λ, λ, 1.0 / (λ * λ)}
		case Planar:
			d[i] = [3]float64{λ, 1, 1.0 / λ}
		}
	}
	return tnsr.Diag([]int{len(λs)}, d...)
}

// free returns the index of the traction-free direction
func (o Path) free() (int, error) {
	switch o.Kind {
	case Uniaxial:
		return 1, nil
	case Equibiaxial, Planar:
		return 2, nil
	}
	return -1, chk.Err("msolid: path: kind %q is invalid. options are %q, %q and %q", o.Kind, Uniaxial, Equibiaxial, Planar)
}
