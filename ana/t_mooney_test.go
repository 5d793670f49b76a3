// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/require"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_mooney01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mooney01")

	var sol MooneyRivlin
	err := sol.Init([]*dbf.P{
		&dbf.P{N: "C10", V: 1.0},
	})
	require.NoError(tst, err)

	// neo-Hooke: 2 C10 (λ - λ⁻²)
	for _, λ := range []float64{1, 1.5, 2} {
		chk.Float64(tst, io.Sf("uniaxial(%g)", λ), 1e-15, sol.Uniaxial(λ), 2*(λ-1/(λ*λ)))
	}
	chk.Float64(tst, "uniaxial(2)", 1e-15, sol.Uniaxial(2), 3.5)

	// reference state is unstressed
	for _, kind := range []string{"uniaxial", "equibiaxial", "planar"} {
		σ, err := sol.Stress(kind, 1)
		require.NoError(tst, err)
		chk.Float64(tst, kind, 1e-17, σ, 0)
	}
	_, err = sol.Stress("torsion", 1)
	require.Error(tst, err)
}

func Test_mooney02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mooney02")

	var sol MooneyRivlin
	err := sol.Init([]*dbf.P{
		&dbf.P{N: "C10", V: 0.3},
		&dbf.P{N: "C01", V: 0.05},
	})
	require.NoError(tst, err)

	// σ = ½ dW/dλ for the equibiaxial test; σ = dW/dλ for the others
	h := 1e-6
	I := func(a, b, c float64) (I1, I2 float64) {
		return a*a + b*b + c*c, a*a*b*b + b*b*c*c + c*c*a*a
	}
	W := func(kind string, λ float64) float64 {
		var I1, I2 float64
		switch kind {
		case "uniaxial":
			I1, I2 = I(λ, 1/math.Sqrt(λ), 1/math.Sqrt(λ))
		case "equibiaxial":
			I1, I2 = I(λ, λ, 1/(λ*λ))
		case "planar":
			I1, I2 = I(λ, 1, 1/λ)
		}
		return sol.C10*(I1-3) + sol.C01*(I2-3)
	}
	for _, kind := range []string{"uniaxial", "equibiaxial", "planar"} {
		for _, λ := range []float64{0.8, 1.2, 1.9, 3.0} {
			num := (W(kind, λ+h) - W(kind, λ-h)) / (2 * h)
			if kind == "equibiaxial" {
				num /= 2
			}
			σ, err := sol.Stress(kind, λ)
			require.NoError(tst, err)
			chk.AnaNum(tst, io.Sf("%s(%g)", kind, λ), 1e-7, σ, num, chk.Verbose)
		}
	}

	// errors
	err = sol.Init([]*dbf.P{&dbf.P{N: "mu", V: 1}})
	require.Error(tst, err)
}
