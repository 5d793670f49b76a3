// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"
	"math/rand"
	"testing"

	"github.com/ZAARAOUI999/hypermat/par"
	"github.com/ZAARAOUI999/hypermat/tnsr"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/require"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// randomDefGrad returns a batch of deformation gradients with positive determinant
func randomDefGrad(rnd *rand.Rand, n int, amp float64) *tnsr.Array {
	F := tnsr.NewArray([]int{n}, 2)
	for p := 0; p < n; p++ {
		v := F.Point(p)
		for I := 0; I < 9; I++ {
			v[I] = amp * (2*rnd.Float64() - 1)
		}
		v[0] += 1
		v[4] += 1
		v[8] += 1
	}
	return F
}

// withK returns the example parameters of a model plus the bulk modulus
func withK(name string, K float64) dbf.Params {
	m, _ := New(name)
	return append(m.GetPrms(), &dbf.P{N: "K", V: K})
}

func Test_energy01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("energy01")

	sol, err := NewStrainEnergy("neo-hooke", []*dbf.P{
		&dbf.P{N: "C10", V: 1.0},
	})
	require.NoError(tst, err)

	// uniaxial incompressible: σ = P11 - P22 F22/F11 = 2 C10 (λ - λ⁻²)
	λs := []float64{1, 1.5, 2}
	d := make([][3]float64, len(λs))
	for i, λ := range λs {
		d[i] = [3]float64{λ, 1 / math.Sqrt(λ), 1 / math.Sqrt(λ)}
	}
	F, err := tnsr.Diag([]int{3}, d...)
	require.NoError(tst, err)
	P, err := sol.Jacobian(F)
	require.NoError(tst, err)
	chk.Ints(tst, "shape", P.Shape(), []int{3, 3, 3})
	for i, λ := range λs {
		σ := P.Get(i, 0, 0) - P.Get(i, 1, 1)*F.Get(i, 1, 1)/F.Get(i, 0, 0)
		chk.Float64(tst, io.Sf("σ(%g)", λ), 1e-13, σ, 2*(λ-1/(λ*λ)))
	}

	// energy value: W = C10 (J1 - 3) with J3 = 1
	res, err := sol.Evaluate(F)
	require.NoError(tst, err)
	for i, λ := range λs {
		chk.Float64(tst, io.Sf("W(%g)", λ), 1e-13, res.W.Data[i], λ*λ+2/λ-3)
	}
	chk.Array(tst, "P", 1e-15, res.P.Data, P.Data)
	chk.Ints(tst, "tangent shape", res.A.Shape(), []int{3, 3, 3, 3, 3})
}

func Test_energy02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("energy02")

	// undeformed state is unstressed for all models
	F, err := tnsr.Diag([]int{2}, [3]float64{1, 1, 1}, [3]float64{1, 1, 1})
	require.NoError(tst, err)
	for _, name := range Names() {
		sol, err := NewStrainEnergy(name, withK(name, 50))
		require.NoError(tst, err, name)
		res, err := sol.Evaluate(F)
		require.NoError(tst, err, name)
		chk.Array(tst, name+": P", 1e-15, res.P.Data, make([]float64, 18))

		// tangent is symmetric: A_ijkl = A_klij
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				for k := 0; k < 3; k++ {
					for l := 0; l < 3; l++ {
						chk.Float64(tst, name+": A sym", 1e-12, res.A.Get(0, i, j, k, l), res.A.Get(0, k, l, i, j))
					}
				}
			}
		}
	}
}

func Test_energy03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("energy03")

	// tangent against finite differences of the stress
	rnd := rand.New(rand.NewSource(21))
	F := randomDefGrad(rnd, 2, 0.2)
	h := 1e-6
	for _, name := range []string{"mooney-rivlin", "yeoh", "gent", "knowles", "carroll", "yeoh-fleming", "haines-wilson", "beatty", "modified-gregory", "yamashita-kawabata", "bahreman-darijani"} {
		sol, err := NewStrainEnergy(name, withK(name, 20))
		require.NoError(tst, err, name)
		A, err := sol.Hessian(F)
		require.NoError(tst, err, name)
		for K := 0; K < 9; K++ {
			Fp, Fm := F.Clone(), F.Clone()
			for p := 0; p < 2; p++ {
				Fp.Point(p)[K] += h
				Fm.Point(p)[K] -= h
			}
			Pp, err := sol.Jacobian(Fp)
			require.NoError(tst, err)
			Pm, err := sol.Jacobian(Fm)
			require.NoError(tst, err)
			for p := 0; p < 2; p++ {
				for I := 0; I < 9; I++ {
					num := (Pp.Point(p)[I] - Pm.Point(p)[I]) / (2 * h)
					chk.AnaNum(tst, io.Sf("%s: A[%d][%d][%d]", name, p, I, K), 1e-5, A.Point(p)[I*9+K], num, chk.Verbose)
				}
			}
		}
	}
}

func Test_energy04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("energy04")

	// chunked evaluation gives the same results as the serial one
	rnd := rand.New(rand.NewSource(22))
	F := randomDefGrad(rnd, 101, 0.3)
	sol, err := NewStrainEnergy("mooney-rivlin", withK("mooney-rivlin", 10))
	require.NoError(tst, err)

	sol.Par = par.Serial()
	ser, err := sol.Evaluate(F)
	require.NoError(tst, err)

	sol.Par = par.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}
	chk.Int(tst, "number of chunks", len(par.Chunks(101, sol.Par)), 4)
	con, err := sol.Evaluate(F)
	require.NoError(tst, err)

	chk.Array(tst, "W", 1e-17, con.W.Data, ser.W.Data)
	chk.Array(tst, "P", 1e-17, con.P.Data, ser.P.Data)
	chk.Array(tst, "A", 1e-17, con.A.Data, ser.A.Data)

	// stress only
	P, err := sol.Jacobian(F)
	require.NoError(tst, err)
	chk.Array(tst, "P (jacobian)", 1e-17, P.Data, ser.P.Data)

	// clamping is idempotent
	chk.Array(tst, "clean(P)", 1e-17, tnsr.Clean(P, ZeroTol).Data, P.Data)
	for _, v := range ser.A.Data {
		if v != 0 && math.Abs(v) < ZeroTol {
			tst.Errorf("tangent component %g should have been set to zero", v)
			return
		}
	}

	// multi-dimensional batches
	G := &tnsr.Array{Lead: []int{2, 2}, Rank: 2, Data: F.Data[:36]}
	Pg, err := sol.Jacobian(G)
	require.NoError(tst, err)
	chk.Ints(tst, "lead", Pg.Lead, []int{2, 2})
	chk.Array(tst, "P (2×2 batch)", 1e-17, Pg.Data, P.Data[:36])
}

func Test_energy05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("energy05")

	// compressible part
	s := 1.1
	F, err := tnsr.Diag(nil, [3]float64{s, s, s})
	require.NoError(tst, err)
	K := 30.0
	sol, err := NewStrainEnergy("neo-hooke", []*dbf.P{
		&dbf.P{N: "C10", V: 0.4},
		&dbf.P{N: "K", V: K},
	})
	require.NoError(tst, err)
	chk.Float64(tst, "K", 1e-17, sol.K, K)

	// pure dilatation: P = K (J - 1) J F⁻ᵀ
	J := s * s * s
	P, err := sol.Jacobian(F)
	require.NoError(tst, err)
	chk.Array(tst, "P", 1e-12, P.Data, []float64{K * (J - 1) * J / s, 0, 0, 0, K * (J - 1) * J / s, 0, 0, 0, K * (J - 1) * J / s})

	iso, vol, err := sol.Parts(F, false)
	require.NoError(tst, err)
	require.NotNil(tst, vol)
	chk.Float64(tst, "Wiso", 1e-14, iso.Value().Data[0], 0)
	chk.Float64(tst, "Wvol", 1e-14, vol.Value().Data[0], 0.5*K*(J-1)*(J-1))

	// parameters
	prms := sol.Prms()
	require.Len(tst, prms, 2)
	require.Equal(tst, "K", prms[1].N)
	require.NoError(tst, sol.SetPrm("K", 0))
	_, vol, err = sol.Parts(F, false)
	require.NoError(tst, err)
	require.Nil(tst, vol)
	require.Len(tst, sol.Prms(), 1)

	// modifying the returned list does not change the model
	prms[0].V = 100
	chk.Float64(tst, "C10", 1e-17, sol.Prms()[0].V, 0.4)
}

func Test_energy06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("energy06")

	// SetPrm re-initialises the model
	F, err := tnsr.Diag(nil, [3]float64{1.5, 1 / math.Sqrt(1.5), 1 / math.Sqrt(1.5)})
	require.NoError(tst, err)
	sol, err := NewStrainEnergy("neo-hooke", []*dbf.P{&dbf.P{N: "C10", V: 0.5}})
	require.NoError(tst, err)
	P1, err := sol.Jacobian(F)
	require.NoError(tst, err)
	require.NoError(tst, sol.SetPrm("C10", 1.0))
	P2, err := sol.Jacobian(F)
	require.NoError(tst, err)
	for i := range P1.Data {
		chk.Float64(tst, "2 P1 = P2", 1e-14, 2*P1.Data[i], P2.Data[i])
	}

	// invalid values are rejected and the previous value is kept
	gent, err := NewStrainEnergy("gent", []*dbf.P{&dbf.P{N: "E", V: 1}, &dbf.P{N: "Im", V: 50}})
	require.NoError(tst, err)
	require.Error(tst, gent.SetPrm("Im", 2))
	chk.Float64(tst, "Im", 1e-17, gent.Model().(*Gent).Im, 50)
	require.Error(tst, gent.SetPrm("mu", 2))
}

func Test_energy07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("energy07")

	_, err := NewStrainEnergy("marlow", nil)
	require.Error(tst, err)
	require.Contains(tst, err.Error(), "not available")

	_, err = NewStrainEnergy("mooney-rivlin", []*dbf.P{&dbf.P{N: "C20", V: 1}})
	require.Error(tst, err)

	_, err = NewStrainEnergy("gent", []*dbf.P{&dbf.P{N: "E", V: 1}, &dbf.P{N: "Im", V: 3}})
	require.Error(tst, err)

	_, err = NewStrainEnergy("knowles", []*dbf.P{&dbf.P{N: "mu", V: 1}, &dbf.P{N: "b", V: 0}})
	require.Error(tst, err)

	sol, err := NewStrainEnergy("neo-hooke", []*dbf.P{&dbf.P{N: "C10", V: 1}})
	require.NoError(tst, err)
	_, err = sol.Jacobian(tnsr.NewArray([]int{2}, 4))
	require.Error(tst, err)
	_, err = sol.Hessian(tnsr.NewArray([]int{2}, 0))
	require.Error(tst, err)

	// every model provides consistent example parameters
	for _, name := range Names() {
		m, err := New(name)
		require.NoError(tst, err)
		prms := m.GetPrms()
		require.NotEmpty(tst, prms, name)
		for _, p := range prms {
			if p.V < p.Min || p.V > p.Max {
				tst.Errorf("%s: example value of %s is out of bounds", name, p.N)
			}
		}
		require.NoError(tst, m.Init(prms), name)
	}
}

func Test_energy08(tst *testing.T) {

	//verbose()
	chk.PrintTitle("energy08")

	// batch with nearly flattened elements among regular ones
	rnd := rand.New(rand.NewSource(8))
	F := randomDefGrad(rnd, 40, 0.2)
	for _, p := range []int{0, 13, 39} {
		copy(F.Point(p), []float64{1.2, 0.3, 0, 0, 0.9, 0, 0, 0, 1e-7})
	}

	for _, name := range []string{"neo-hooke", "mooney-rivlin", "yeoh"} {
		sol, err := NewStrainEnergy(name, withK(name, 50))
		require.NoError(tst, err, name)
		sol.Par = par.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 4}

		P, err := sol.Jacobian(F)
		require.NoError(tst, err, name)
		A, err := sol.Hessian(F)
		require.NoError(tst, err, name)
		res, err := sol.Evaluate(F)
		require.NoError(tst, err, name)
		for p := 0; p < F.Npts(); p++ {
			if !finite(P.Point(p)) || !finite(A.Point(p)) || !finite(res.W.Point(p)) {
				tst.Errorf("%s: point %d: stress and tangent must be finite", name, p)
				return
			}
		}
		io.Pforan("%s: P(flat) = %v\n", name, P.Point(13))
		chk.Array(tst, name+": P", 1e-17, res.P.Data, P.Data)
		chk.Array(tst, name+": A", 1e-17, res.A.Data, A.Data)

		// regular points do not see their neighbours
		sol.Par = par.Serial()
		Pr, err := sol.Jacobian(F.Slice(1, 13))
		require.NoError(tst, err, name)
		chk.Array(tst, name+": P (regular)", 1e-17, P.Data[9:13*9], Pr.Data)
	}
}

// finite tells whether all components are neither NaN nor Inf
func finite(a []float64) bool {
	for _, v := range a {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
