// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand"

	"github.com/johng149/tensorops/internal/tensor"
)

// Type aliases for public API

// Array is a dense, row-major, dynamic-rank array of T.
type Array[T any] = tensor.Array[T]

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} represents a 3D array with dimensions 2×3×4.
type Shape = tensor.Shape

// Numeric is a constraint for element types that support arithmetic.
type Numeric = tensor.Numeric

// Index is a constraint for element types usable as positions along an axis.
type Index = tensor.Index

// Signed is a constraint for numeric types that carry a sign.
type Signed = tensor.Signed

// Float is a constraint for floating-point element types.
type Float = tensor.Float

// Ordered is a constraint for element types with a total order.
type Ordered = tensor.Ordered

// ErrInvalidShape is returned when a shape contains a negative dimension.
var ErrInvalidShape = tensor.ErrInvalidShape

// New creates a zero-valued array of the given shape.
func New[T any](shape Shape) (*Array[T], error) {
	return tensor.New[T](shape)
}

// FromSlice creates an array from a Go slice. The slice is copied.
func FromSlice[T any](data []T, shape Shape) (*Array[T], error) {
	return tensor.FromSlice(data, shape)
}

// MustFromSlice is like FromSlice but panics on error.
func MustFromSlice[T any](data []T, shape Shape) *Array[T] {
	return tensor.MustFromSlice(data, shape)
}

// Scalar creates a rank-0 array holding v.
func Scalar[T any](v T) *Array[T] {
	return tensor.Scalar(v)
}

// Zeros creates an array filled with zeros.
func Zeros[T any](shape Shape) *Array[T] {
	return tensor.Zeros[T](shape)
}

// Ones creates an array filled with ones.
func Ones[T Numeric](shape Shape) *Array[T] {
	return tensor.Ones[T](shape)
}

// Full creates an array filled with value.
func Full[T any](shape Shape, value T) *Array[T] {
	return tensor.Full(shape, value)
}

// ZerosLike creates a zero-filled array with the same shape as a.
func ZerosLike[T any](a *Array[T]) *Array[T] {
	return tensor.ZerosLike(a)
}

// OnesLike creates an array of ones with the same shape as a.
func OnesLike[T Numeric](a *Array[T]) *Array[T] {
	return tensor.OnesLike(a)
}

// Arange creates a 1-D array with values [start, start+1, ..., end-1].
func Arange[T Numeric](start, end T) *Array[T] {
	return tensor.Arange(start, end)
}

// Rand creates an array with values uniformly distributed in [0, 1).
func Rand[T Float](shape Shape, rng *rand.Rand) *Array[T] {
	return tensor.Rand[T](shape, rng)
}

// Randn creates an array with values from the standard normal distribution.
func Randn[T Float](shape Shape, rng *rand.Rand) *Array[T] {
	return tensor.Randn[T](shape, rng)
}

// Equal reports whether a and b have the same shape and elements.
func Equal[T comparable](a, b *Array[T]) bool {
	return tensor.Equal(a, b)
}

// AllClose reports whether a and b have the same shape and all elements within tol.
func AllClose[T Float](a, b *Array[T], tol float64) bool {
	return tensor.AllClose(a, b, tol)
}

// NormalizeAxis resolves a possibly negative axis selector against rank.
func NormalizeAxis(axis, rank int) (int, bool) {
	return tensor.NormalizeAxis(axis, rank)
}

// BroadcastShapes computes the NumPy-style broadcast of two shapes.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}
