// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/require"
)

// run executes the command line and returns its output
func run(args ...string) (string, error) {
	var b bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&b)
	cmd.SetErr(&b)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return b.String(), err
}

func Test_cli01(tst *testing.T) {

	chk.PrintTitle("cli01")

	out, err := run("models")
	require.NoError(tst, err)
	require.Contains(tst, out, "mooney-rivlin")
	require.Contains(tst, out, "C10=0.3")

	out, err = run("stress", "--model", "neo-hooke", "-p", "C10=1", "--strain", "1", "--npts", "3")
	require.NoError(tst, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(tst, lines, 4)
	require.Contains(tst, lines[3], "3.50000000e+00")

	out, err = run("eval", "--model", "mooney-rivlin", "-p", "C10=0.3,C01=0.05", "--F", "1,0,0,0,1,0,0,0,1", "--tangent")
	require.NoError(tst, err)
	require.Contains(tst, out, "W = 0")
	require.Contains(tst, out, "A[2][2] =")
}

func Test_cli02(tst *testing.T) {

	chk.PrintTitle("cli02")

	dir := tst.TempDir()
	fn := filepath.Join(dir, "rubber.yaml")
	err := os.WriteFile(fn, []byte(`
materials:
  - name: rubber
    model: mooney-rivlin
    prms:
      - {n: C10, v: 0.3}
      - {n: C01, v: 0.05}
      - {n: K, v: 100}
`), 0644)
	require.NoError(tst, err)

	out, err := run("stress", "-m", fn, "-n", "rubber", "-k", "planar", "--npts", "2", "--true")
	require.NoError(tst, err)
	require.Contains(tst, out, "stretch")

	// errors
	_, err = run("stress", "-m", fn, "-n", "steel")
	require.Error(tst, err)
	_, err = run("stress")
	require.Error(tst, err)
	_, err = run("stress", "--model", "neo-hooke", "-p", "C10")
	require.Error(tst, err)
	_, err = run("eval", "--model", "neo-hooke", "-p", "C10=1", "--F", "1,0,0")
	require.Error(tst, err)
	_, err = run("stress", "--model", "neo-hooke", "-k", "torsion")
	require.Error(tst, err)
}
