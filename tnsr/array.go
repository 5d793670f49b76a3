// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tnsr implements batches of 3×3-based tensors and their algebra
package tnsr

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Array holds a batch of tensors whose trailing axes all have dimension 3
//
//  Examples of shapes (Lead = [2,5]):
//    Rank 0 => (2,5)           scalar per point
//    Rank 2 => (2,5,3,3)       second order tensor per point
//    Rank 4 => (2,5,3,3,3,3)   fourth order tensor per point
//
//  Note: Data is row-major; point p occupies Data[p*Size() : (p+1)*Size()]
type Array struct {
	Lead []int     // leading (batch) shape; may be empty
	Rank int       // rank of each tensor: 0, 2, 4 or 6
	Data []float64 // all values
}

// sizes holds 3^rank for the supported ranks
var sizes = map[int]int{0: 1, 2: 9, 4: 81, 6: 729}

// NewArray allocates a zeroed array
func NewArray(lead []int, rank int) *Array {
	size, ok := sizes[rank]
	if !ok {
		chk.Panic("tnsr: rank %d is not supported. rank must be 0, 2, 4 or 6", rank)
	}
	n := npts(lead)
	return &Array{Lead: cloneInts(lead), Rank: rank, Data: make([]float64, n*size)}
}

// FromMats creates a one-dimensional batch of second order tensors
//  mats -- [npts][3][3]
func FromMats(mats ...[][]float64) (o *Array, err error) {
	o = NewArray([]int{len(mats)}, 2)
	for p, m := range mats {
		if len(m) != 3 {
			return nil, chk.Err("tnsr: FromMats: matrix %d has %d rows; 3 are required", p, len(m))
		}
		for i := 0; i < 3; i++ {
			if len(m[i]) != 3 {
				return nil, chk.Err("tnsr: FromMats: row %d of matrix %d has %d columns; 3 are required", i, p, len(m[i]))
			}
			copy(o.Data[p*9+i*3:p*9+i*3+3], m[i])
		}
	}
	return
}

// Diag creates a batch of diagonal second order tensors
//  d -- [npts][3] diagonal values
func Diag(lead []int, d ...[3]float64) (o *Array, err error) {
	o = NewArray(lead, 2)
	if len(d) != o.Npts() {
		return nil, chk.Err("tnsr: Diag: %d diagonals given for %d points", len(d), o.Npts())
	}
	for p, v := range d {
		o.Data[p*9+0] = v[0]
		o.Data[p*9+4] = v[1]
		o.Data[p*9+8] = v[2]
	}
	return
}

// Npts returns the number of batch points
func (o *Array) Npts() int { return npts(o.Lead) }

// Size returns the number of components of each tensor (3^Rank)
func (o *Array) Size() int { return sizes[o.Rank] }

// Shape returns the full shape: Lead followed by Rank threes
func (o *Array) Shape() (shape []int) {
	shape = cloneInts(o.Lead)
	for i := 0; i < o.Rank; i++ {
		shape = append(shape, 3)
	}
	return
}

// Point returns the components of point p (not a copy)
func (o *Array) Point(p int) []float64 {
	s := o.Size()
	return o.Data[p*s : (p+1)*s]
}

// Get returns the component idx of point p
func (o *Array) Get(p int, idx ...int) float64 {
	return o.Data[p*o.Size()+o.offset(idx)]
}

// Set sets the component idx of point p
func (o *Array) Set(p int, v float64, idx ...int) {
	o.Data[p*o.Size()+o.offset(idx)] = v
}

// Clone returns a deep copy
func (o *Array) Clone() *Array {
	data := make([]float64, len(o.Data))
	copy(data, o.Data)
	return &Array{Lead: cloneInts(o.Lead), Rank: o.Rank, Data: data}
}

// Slice returns a copy of the points in [start,end) as a one-dimensional batch
func (o *Array) Slice(start, end int) *Array {
	s := o.Size()
	res := NewArray([]int{end - start}, o.Rank)
	copy(res.Data, o.Data[start*s:end*s])
	return res
}

// Paste copies all points of b into o starting at point start
func (o *Array) Paste(start int, b *Array) {
	if b.Rank != o.Rank {
		chk.Panic("tnsr: Paste: rank %d cannot be pasted into rank %d", b.Rank, o.Rank)
	}
	copy(o.Data[start*o.Size():], b.Data)
}

// Mat returns a newly allocated [3][3] matrix with the components of point p
func (o *Array) Mat(p int) (m [][]float64) {
	if o.Rank != 2 {
		chk.Panic("tnsr: Mat: rank 2 is required; got %d", o.Rank)
	}
	m = utl.Alloc(3, 3)
	v := o.Point(p)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = v[i*3+j]
		}
	}
	return
}

// Ten4 returns a newly allocated [3][3][3][3] tensor with the components of point p
func (o *Array) Ten4(p int) (t [][][][]float64) {
	if o.Rank != 4 {
		chk.Panic("tnsr: Ten4: rank 4 is required; got %d", o.Rank)
	}
	t = make([][][][]float64, 3)
	for i := 0; i < 3; i++ {
		t[i] = make([][][]float64, 3)
		for j := 0; j < 3; j++ {
			t[i][j] = utl.Alloc(3, 3)
		}
	}
	v := o.Point(p)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					t[i][j][k][l] = v[((i*3+j)*3+k)*3+l]
				}
			}
		}
	}
	return
}

// SameLead tells whether a and b have identical leading shapes
func SameLead(a, b *Array) bool {
	if len(a.Lead) != len(b.Lead) {
		return false
	}
	for i := range a.Lead {
		if a.Lead[i] != b.Lead[i] {
			return false
		}
	}
	return true
}

// CheckLead returns an error if a and b do not share the same leading shape
func CheckLead(op string, a, b *Array) error {
	if !SameLead(a, b) {
		return chk.Err("tnsr: %s: batch shapes %v and %v are incompatible", op, a.Lead, b.Lead)
	}
	return nil
}

// CheckRank returns an error if a has not the given rank
func CheckRank(op string, a *Array, rank int) error {
	if a.Rank != rank {
		return chk.Err("tnsr: %s: rank %d is required; got an array of shape %v", op, rank, a.Shape())
	}
	return nil
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func (o *Array) offset(idx []int) (k int) {
	if len(idx) != o.Rank {
		chk.Panic("tnsr: %d indices given for rank %d", len(idx), o.Rank)
	}
	for _, i := range idx {
		k = k*3 + i
	}
	return
}

func npts(lead []int) int {
	n := 1
	for _, m := range lead {
		n *= m
	}
	return n
}

func cloneInts(a []int) []int {
	res := make([]int, len(a))
	copy(res, a)
	return res
}
