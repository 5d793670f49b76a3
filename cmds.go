// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	goio "io"
	"strconv"
	"strings"

	"github.com/ZAARAOUI999/hypermat/inp"
	"github.com/ZAARAOUI999/hypermat/msolid"
	"github.com/ZAARAOUI999/hypermat/tnsr"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// matOpts selects a strain energy either from a materials file or from the command line
type matOpts struct {
	matfile string   // materials file
	matname string   // material name in file
	model   string   // model name
	prms    []string // parameters as name=value
}

// bind adds the flags to a set
func (o *matOpts) bind(flags *pflag.FlagSet) {
	flags.StringVarP(&o.matfile, "mat", "m", "", "materials file (.json, .mat, .yaml)")
	flags.StringVarP(&o.matname, "name", "n", "", "material name in materials file")
	flags.StringVar(&o.model, "model", "", "model name; used if no materials file is given")
	flags.StringSliceVarP(&o.prms, "prm", "p", nil, "model parameter as name=value; e.g. -p C10=0.5 -p K=100")
}

// energy allocates the strain energy
func (o *matOpts) energy() (sol *msolid.StrainEnergy, err error) {
	if o.matfile != "" {
		mdb, err := inp.ReadMat("", o.matfile)
		if err != nil {
			return nil, err
		}
		mat := mdb.Get(o.matname)
		if mat == nil {
			return nil, chk.Err("cannot find material %q in %q. available: %v", o.matname, o.matfile, mdb.Names())
		}
		io.Pf("%v", mat)
		return msolid.NewStrainEnergy(mat.Model, mat.Prms)
	}
	if o.model == "" {
		return nil, chk.Err("a materials file (--mat) or a model (--model) is required")
	}
	var prms dbf.Params
	for _, s := range o.prms {
		kv := strings.SplitN(s, "=", 2)
		if len(kv) != 2 {
			return nil, chk.Err("parameter %q must be given as name=value", s)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(kv[1]), 64)
		if err != nil {
			return nil, chk.Err("cannot parse value of parameter %q: %v", s, err)
		}
		prms = append(prms, &dbf.P{N: strings.TrimSpace(kv[0]), V: v})
	}
	return msolid.NewStrainEnergy(o.model, prms)
}

func newModelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the available strain-energy models and example parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printModels(cmd.OutOrStdout())
			return nil
		},
	}
}

// printModels writes all models and their example parameters
func printModels(w goio.Writer) {
	for _, name := range msolid.Names() {
		m, _ := msolid.New(name)
		l := io.Sf("%-20s", name)
		for _, p := range m.GetPrms() {
			l += io.Sf(" %s=%g", p.N, p.V)
		}
		fmt.Fprintf(w, "%s\n", l)
	}
}

type stressOpts struct {
	mat        matOpts
	kind       string
	εmax       float64
	npts       int
	trueStress bool
}

func newStressCommand() *cobra.Command {
	opts := stressOpts{}
	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Compute the stress-stretch response of a material along a homogeneous experiment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sol, err := opts.mat.energy()
			if err != nil {
				return err
			}
			var pth msolid.Path
			if err = pth.Init(opts.kind, opts.εmax, opts.npts); err != nil {
				return err
			}
			pth.True = opts.trueStress
			var drv msolid.Driver
			if err = drv.Init(sol); err != nil {
				return err
			}
			if err = drv.Run(&pth); err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%12s%16s\n", "stretch", "stress")
			for i, λ := range drv.Lam {
				fmt.Fprintf(w, "%12.6f%16.8e\n", λ, drv.Sig[i])
			}
			return nil
		},
	}
	opts.mat.bind(cmd.Flags())
	cmd.Flags().StringVarP(&opts.kind, "kind", "k", msolid.Uniaxial, "experiment: uniaxial, equibiaxial or planar")
	cmd.Flags().Float64Var(&opts.εmax, "strain", 1.0, "maximum engineering strain")
	cmd.Flags().IntVar(&opts.npts, "npts", 11, "number of points")
	cmd.Flags().BoolVar(&opts.trueStress, "true", false, "report true stresses instead of nominal ones")
	return cmd
}

type evalOpts struct {
	mat     matOpts
	F       []float64
	tangent bool
}

func newEvalCommand() *cobra.Command {
	opts := evalOpts{}
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Compute the energy, stress P = ∂W/∂F and tangent A = ∂²W/∂F∂F for one deformation gradient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(opts.F) != 9 {
				return chk.Err("deformation gradient must have 9 components (row-major); %d were given", len(opts.F))
			}
			sol, err := opts.mat.energy()
			if err != nil {
				return err
			}
			F := tnsr.NewArray(nil, 2)
			copy(F.Data, opts.F)
			res, err := sol.Evaluate(F)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "W = %g\n", res.W.Data[0])
			fmt.Fprintf(w, "P =\n%v", printMat(res.P.Mat(0)))
			if opts.tangent {
				A := res.A.Ten4(0)
				for i := 0; i < 3; i++ {
					for j := 0; j < 3; j++ {
						fmt.Fprintf(w, "A[%d][%d] =\n%v", i, j, printMat(A[i][j]))
					}
				}
			}
			return nil
		},
	}
	opts.mat.bind(cmd.Flags())
	cmd.Flags().Float64SliceVar(&opts.F, "F", []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, "deformation gradient (row-major)")
	cmd.Flags().BoolVar(&opts.tangent, "tangent", false, "also print the tangent")
	return cmd
}

// printMat formats a 3×3 matrix
func printMat(m [][]float64) (l string) {
	for _, row := range m {
		for _, v := range row {
			l += io.Sf("%16.8e", v)
		}
		l += "\n"
	}
	return
}
