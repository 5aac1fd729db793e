// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ops provides axis-indexed gather and scatter for dynamic-rank arrays,
// plus the shape, reduction and contraction routines that surround them.
//
// # Gather and Scatter
//
// Gather builds a new array shaped like an index array by reading, for every
// index position, one element of the input along a chosen axis:
//
//	out[c] = input[c with axis replaced by index[c]]
//
// Scatter is the in-place inverse. It writes source[c] to
// target[c with axis replaced by index[c]], visiting c in row-major order:
//
//	input := tensor.MustFromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	index := tensor.MustFromSlice([]int64{2, 0}, tensor.Shape{2, 1})
//	picked, err := ops.Gather(input, 1, index) // [[3], [4]]
//
//	target := tensor.ZerosLike(input)
//	err = ops.Scatter(target, 1, index, picked) // [[0 0 3] [4 0 0]]
//
// Index arrays may hold any integer or floating-point type; each value must be
// a non-negative integer smaller than the axis size.
//
// # Errors
//
// Gather and Scatter return typed errors carrying the offending position and
// value. Use KindOf to classify them:
//
//	if kind, ok := ops.KindOf(err); ok && kind == ops.KindIndexOutOfBounds {
//	    ...
//	}
//
// Scatter does not roll back: when it fails part way through, the writes made
// before the failing element remain in the target.
//
// The other operations return sentinel errors such as ErrIncompatibleShape,
// wrapped with context; compare them with errors.Is.
package ops
