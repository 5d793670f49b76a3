// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from materials (.mat) files
package inp

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
	k8syaml "sigs.k8s.io/yaml"
)

// Material holds material data
//  Note: parameters are given as {"n":name, "v":value, "min":lower, "max":upper}
type Material struct {
	Name  string     `json:"name" yaml:"name"`   // name of material
	Desc  string     `json:"desc" yaml:"desc"`   // description of material
	Model string     `json:"model" yaml:"model"` // name of strain-energy model; e.g. "mooney-rivlin"
	Prms  dbf.Params `json:"prms" yaml:"prms"`   // parameters; "K" is the bulk modulus
}

// MatDb implements a database of materials
type MatDb struct {
	Desc      string      `json:"desc" yaml:"desc"`           // description of database
	Materials []*Material `json:"materials" yaml:"materials"` // all materials
}

// ReadMat reads all materials data from a JSON or YAML file
//  dir -- directory of file; may be empty
//  fn  -- filename; extensions .json, .mat, .yaml and .yml are accepted
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// read file
	fpath := filepath.Join(os.ExpandEnv(dir), fn)
	b, err := os.ReadFile(fpath)
	if err != nil {
		return nil, chk.Err("inp: ReadMat: cannot read materials file %q:\n%v", fpath, err)
	}

	// decode
	mdb = new(MatDb)
	switch ext := strings.ToLower(filepath.Ext(fn)); ext {
	case ".json", ".mat":
		err = k8syaml.Unmarshal(b, mdb)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, mdb) // YAML 1.2: "n" is a string key
	default:
		return nil, chk.Err("inp: ReadMat: extension %q of file %q is not supported", ext, fn)
	}
	if err != nil {
		return nil, chk.Err("inp: ReadMat: cannot unmarshal materials file %q:\n%v", fpath, err)
	}

	// check and set defaults
	if err = mdb.PostProcess(); err != nil {
		return nil, err
	}
	return
}

// PostProcess checks the data and sets default values
func (o *MatDb) PostProcess() (err error) {
	names := make(map[string]bool)
	for i, m := range o.Materials {
		if m == nil || m.Name == "" {
			return chk.Err("inp: material # %d has no name", i)
		}
		if names[m.Name] {
			return chk.Err("inp: material named %q is duplicated", m.Name)
		}
		names[m.Name] = true
		if m.Model == "" {
			return chk.Err("inp: material %q has no model", m.Name)
		}
		if m.Desc == "" {
			m.Desc = io.Sf("%s material", m.Model)
		}
		for _, p := range m.Prms {
			if p == nil || p.N == "" {
				return chk.Err("inp: material %q has a parameter without name", m.Name)
			}
			if p.Min == 0 && p.Max == 0 {
				p.Min, p.Max = p.V, p.V
			}
			if p.Min > p.V || p.V > p.Max {
				return chk.Err("inp: material %q: parameter %q = %g is outside [%g, %g]", m.Name, p.N, p.V, p.Min, p.Max)
			}
		}
	}
	return
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, m := range o.Materials {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// Names returns the names of all materials
func (o MatDb) Names() (names []string) {
	for _, m := range o.Materials {
		names = append(names, m.Name)
	}
	return
}

// String returns a summary of the material
func (o Material) String() (l string) {
	l = io.Sf("%s (%s): %s\n", o.Name, o.Model, o.Desc)
	for _, p := range o.Prms {
		l += io.Sf("  %-6s = %g\n", p.N, p.V)
	}
	return
}
