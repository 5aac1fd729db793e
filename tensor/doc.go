// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dynamic-rank array type used by tensorops.
//
// # Overview
//
// An Array[T] is a dense, row-major buffer of any Go type with a runtime shape.
// Rank is not part of the type: a scalar, a vector and a 5-D batch are all
// Array[T] values, and every rank or axis check happens at runtime.
//
// # Basic Usage
//
//	import "github.com/johng149/tensorops/tensor"
//
//	func main() {
//	    x := tensor.MustFromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	    v := x.At(1, 2)           // 6
//	    x.Set(0, 0, 0)            // x[0][0] = 0
//	    z := tensor.ZerosLike(x)  // shape (2, 3)
//	}
//
// # Shapes and Coordinates
//
// Axis sizes may be zero; such arrays hold no elements. Coordinates are []int
// with one entry per axis, and Shape.Coords walks them in row-major order:
//
//	for flat, c := range x.Shape().Coords() {
//	    fmt.Println(flat, c, x.At(c...))
//	}
//
// Axis selectors may be negative and count from the end (see NormalizeAxis).
package tensor
