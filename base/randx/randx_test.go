// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"testing"

	"cogentcore.org/xmastree/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestTreeBiasedRange(t *testing.T) {
	rnd := NewSysRand(1)
	for i := 0; i < 100000; i++ {
		v := TreeBiased(rnd)
		if v < 0 || v > 1 {
			t.Fatalf("TreeBiased out of range: %g", v)
		}
	}
}

func TestTreeBiasedDistribution(t *testing.T) {
	nsamp := 200000
	nbins := 10
	rnd := NewSysRand(42)
	hist := make([]int, nbins)
	sum := 0.0
	for i := 0; i < nsamp; i++ {
		v := TreeBiased(rnd)
		sum += float64(v)
		bi := min(int(v*float32(nbins)), nbins-1)
		hist[bi]++
	}
	tolassert.EqualTol(t, 1.0/3.0, sum/float64(nsamp), 0.005)

	// density 2(1-v): bin k holds 0.2 - (2k+1)/100 of the mass
	for k, n := range hist {
		exp := 0.2 - float64(2*k+1)/100
		tolassert.EqualTol(t, exp, float64(n)/float64(nsamp), 0.006, "bin %d", k)
	}
	// the base of the tree is denser than a uniform draw would make it
	assert.Greater(t, float64(hist[0])/float64(nsamp), 1/float64(nbins))
	assert.Less(t, float64(hist[nbins-1])/float64(nsamp), 1/float64(nbins))
}

func TestTreeBiasedDraws(t *testing.T) {
	// y is returned when x > y, otherwise 1 - y
	assert.Equal(t, float32(0.25), TreeBiased(&seqRand{vals: []float32{0.5, 0.25}}))
	assert.Equal(t, float32(0.75), TreeBiased(&seqRand{vals: []float32{0.25, 0.25}}))
	assert.Equal(t, float32(0.5), TreeBiased(&seqRand{vals: []float32{0.1, 0.5}}))
}

func TestSeeded(t *testing.T) {
	a := NewSysRand(7)
	b := NewSysRand(7)
	for i := 0; i < 100; i++ {
		assert.Equal(t, TreeBiased(a), TreeBiased(b))
	}
	a.Seed(3)
	b.Seed(3)
	assert.Equal(t, a.Float64(), b.Float64())

	g := NewGlobalRand()
	g.Seed(3)
	assert.NotNil(t, g.Rand)
	assert.Equal(t, NewSysRand(3).Float32(), g.Float32())
}

func TestUniformRange(t *testing.T) {
	rnd := NewSysRand(9)
	for i := 0; i < 10000; i++ {
		v := UniformRange(0.9, 1.1, rnd)
		assert.GreaterOrEqual(t, v, float32(0.9))
		assert.LessOrEqual(t, v, float32(1.1))
		s := UniformSigned(rnd)
		assert.GreaterOrEqual(t, s, float32(-1))
		assert.Less(t, s, float32(1))
	}
	assert.Equal(t, float32(2), UniformRange(2, 4, &seqRand{vals: []float32{0}}))
	assert.Equal(t, float32(3), UniformRange(2, 4, &seqRand{vals: []float32{0.5}}))
}

// seqRand returns a fixed sequence of Float32 values, cycling.
type seqRand struct {
	vals []float32
	i    int
}

func (r *seqRand) Seed(seed int64) { r.i = 0 }
func (r *seqRand) Intn(n int) int  { return int(r.Float32() * float32(n)) }
func (r *seqRand) Float64() float64 {
	return float64(r.Float32())
}
func (r *seqRand) Float32() float32 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}
