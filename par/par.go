// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package par implements data-parallel loops over independent batch points
package par

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution
type Config struct {
	Enabled      bool // run chunks concurrently
	NumWorkers   int  // number of goroutines
	MinChunkSize int  // minimum number of items per goroutine
}

// DefaultConfig returns a configuration based on the number of CPUs
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 16,
	}
}

// Serial returns a configuration that disables concurrency
func Serial() Config {
	return Config{NumWorkers: 1, MinChunkSize: 1}
}

// Chunks splits [0,n) into contiguous ranges according to cfg
//  Note: returns at least one range if n > 0
func Chunks(n int, cfg Config) (ranges [][2]int) {
	if n < 1 {
		return
	}
	size := n
	if cfg.Enabled && cfg.NumWorkers > 1 && n >= 2*cfg.MinChunkSize {
		size = max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)
	}
	for start := 0; start < n; start += size {
		ranges = append(ranges, [2]int{start, min(start+size, n)})
	}
	return
}

// For executes f(start, end) for every chunk of [0,n) and returns the first error
//  Note: f must not depend on the order of execution; at most cfg.NumWorkers chunks run at once
func For(n int, f func(start, end int) error, cfg Config) error {
	ranges := Chunks(n, cfg)
	if len(ranges) < 2 {
		for _, r := range ranges {
			if err := f(r[0], r[1]); err != nil {
				return err
			}
		}
		return nil
	}
	var g errgroup.Group
	g.SetLimit(cfg.NumWorkers)
	for _, r := range ranges {
		s, e := r[0], r[1]
		g.Go(func() error {
			return f(s, e)
		})
	}
	return g.Wait()
}
