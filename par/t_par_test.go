// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package par

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/require"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_chunks01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("chunks01")

	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 2}
	ranges := Chunks(10, cfg)
	io.Pforan("ranges = %v\n", ranges)
	chk.Int(tst, "nchunks", len(ranges), 4)
	chk.Int(tst, "last end", ranges[len(ranges)-1][1], 10)

	ranges = Chunks(3, cfg)
	chk.Int(tst, "small n: nchunks", len(ranges), 1)

	ranges = Chunks(0, cfg)
	chk.Int(tst, "empty: nchunks", len(ranges), 0)

	ranges = Chunks(100, Serial())
	chk.Int(tst, "serial: nchunks", len(ranges), 1)
}

func Test_for01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("for01")

	n := 1000
	hits := make([]int32, n)
	var total int64
	err := For(n, func(start, end int) error {
		for i := start; i < end; i++ {
			atomic.AddInt32(&hits[i], 1)
			atomic.AddInt64(&total, int64(i))
		}
		return nil
	}, Config{Enabled: true, NumWorkers: 8, MinChunkSize: 10})
	require.NoError(tst, err)

	for i := 0; i < n; i++ {
		if hits[i] != 1 {
			tst.Errorf("index %d visited %d times", i, hits[i])
			return
		}
	}
	chk.Int(tst, "sum", int(total), n*(n-1)/2)
}

func Test_for02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("for02")

	// errors from any chunk are returned; the other chunks still run
	failure := errors.New("chunk failed")
	for _, cfg := range []Config{Serial(), {Enabled: true, NumWorkers: 3, MinChunkSize: 5}} {
		var calls int32
		err := For(50, func(start, end int) error {
			atomic.AddInt32(&calls, 1)
			if start <= 25 && 25 < end {
				return failure
			}
			return nil
		}, cfg)
		require.ErrorIs(tst, err, failure)
		if len(Chunks(50, cfg)) > 1 {
			chk.Int(tst, "calls", int(calls), len(Chunks(50, cfg)))
		}
	}

	// limited number of concurrent workers
	var running, peak int32
	err := For(64, func(start, end int) error {
		r := atomic.AddInt32(&running, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if r <= p || atomic.CompareAndSwapInt32(&peak, p, r) {
				break
			}
		}
		atomic.AddInt32(&running, -1)
		return nil
	}, Config{Enabled: true, NumWorkers: 2, MinChunkSize: 1})
	require.NoError(tst, err)
	io.Pforan("peak = %d\n", peak)
	if peak > 2 {
		tst.Errorf("at most 2 chunks may run at once; got %d", peak)
	}

	// nothing to do
	require.NoError(tst, For(0, func(start, end int) error { return failure }, DefaultConfig()))
}
