// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		io.Verbose = true
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:           "hypermat <command> [flags]",
		Short:         "Stress and tangent of hyperelastic materials by hyper-dual numbers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			io.Verbose = verbose
			chk.Verbose = verbose
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show messages")
	cmd.AddCommand(
		newModelsCommand(),
		newStressCommand(),
		newEvalCommand(),
	)
	return cmd
}
