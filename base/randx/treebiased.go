// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

// TreeBiased returns a number in [0, 1] for the height fraction of a
// foliage triangle. Two uniform values x and y are drawn; y is returned
// if x > y, and 1 - y otherwise. Both branches contribute a density of
// 1 - v, so the result has the triangular density 2(1 - v): mean 1/3,
// most likely near 0 (the base of the tree) and vanishing at 1 (the apex).
// Optionally can pass a single Rand interface to use --
// otherwise uses system global Rand source.
func TreeBiased(randOpt ...Rand) float32 {
	rnd := orGlobal(randOpt)
	x := rnd.Float32()
	y := rnd.Float32()
	if x > y {
		return y
	}
	return 1 - y
}

// UniformRange returns a uniformly distributed number in [min, max).
// Optionally can pass a single Rand interface to use --
// otherwise uses system global Rand source.
func UniformRange(min, max float32, randOpt ...Rand) float32 {
	rnd := orGlobal(randOpt)
	return min + (max-min)*rnd.Float32()
}

// UniformSigned returns a uniformly distributed number in [-1, 1).
// Optionally can pass a single Rand interface to use --
// otherwise uses system global Rand source.
func UniformSigned(randOpt ...Rand) float32 {
	rnd := orGlobal(randOpt)
	return 2*rnd.Float32() - 1
}
