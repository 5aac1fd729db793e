// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"log/slog"

	"github.com/x448/float16"

	"github.com/johng149/tensorops/internal/ops"
	"github.com/johng149/tensorops/internal/parallel"
	"github.com/johng149/tensorops/tensor"
)

// ParallelConfig controls how element-wise work is split across goroutines.
type ParallelConfig = parallel.Config

// DefaultParallelConfig returns defaults based on CPU count.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// SetParallelConfig replaces the process-wide parallel execution config.
func SetParallelConfig(cfg ParallelConfig) {
	ops.SetParallelConfig(cfg)
}

// CurrentParallelConfig returns the process-wide parallel execution config.
func CurrentParallelConfig() ParallelConfig {
	return ops.ParallelConfig()
}

// SetLogger sets the logger used for diagnostics. nil discards output.
func SetLogger(l *slog.Logger) {
	ops.SetLogger(l)
}

// Gather collects values from input along axis at the positions named by index.
// The result has the shape of index.
func Gather[T any, Ix tensor.Index](input *tensor.Array[T], axis int, index *tensor.Array[Ix]) (*tensor.Array[T], error) {
	return ops.Gather(input, axis, index)
}

// Scatter writes source into target along axis at the positions named by index.
// Writes made before a failing element are kept.
func Scatter[T any, Ix tensor.Index](target *tensor.Array[T], axis int, index *tensor.Array[Ix], source *tensor.Array[T]) error {
	return ops.Scatter(target, axis, index, source)
}

// Abs returns the element-wise absolute value of x.
func Abs[T tensor.Signed](x *tensor.Array[T]) *tensor.Array[T] {
	return ops.Abs(x)
}

// Sqrt returns the element-wise square root of x.
func Sqrt[T tensor.Float](x *tensor.Array[T]) *tensor.Array[T] {
	return ops.Sqrt(x)
}

// ToFloat16 converts x to half precision.
func ToFloat16(x *tensor.Array[float32]) *tensor.Array[float16.Float16] {
	return ops.ToFloat16(x)
}

// FromFloat16 widens a half-precision array to float32.
func FromFloat16(x *tensor.Array[float16.Float16]) *tensor.Array[float32] {
	return ops.FromFloat16(x)
}

// Reshape returns a copy of x with a new shape. One dimension may be -1.
func Reshape[T any](x *tensor.Array[T], shape ...int) (*tensor.Array[T], error) {
	return ops.Reshape(x, shape)
}

// Transpose swaps two axes of x.
func Transpose[T any](x *tensor.Array[T], dim0, dim1 int) (*tensor.Array[T], error) {
	return ops.Transpose(x, dim0, dim1)
}

// Permute reorders the axes of x. With no axes the order is reversed.
func Permute[T any](x *tensor.Array[T], axes ...int) (*tensor.Array[T], error) {
	return ops.Permute(x, axes...)
}

// Unsqueeze inserts a size-1 axis at dim.
func Unsqueeze[T any](x *tensor.Array[T], dim int) (*tensor.Array[T], error) {
	return ops.Unsqueeze(x, dim)
}

// Squeeze removes the size-1 axis dim.
func Squeeze[T any](x *tensor.Array[T], dim int) (*tensor.Array[T], error) {
	return ops.Squeeze(x, dim)
}

// BroadcastTo expands x to shape following NumPy rules.
func BroadcastTo[T any](x *tensor.Array[T], shape ...int) (*tensor.Array[T], error) {
	return ops.BroadcastTo(x, shape)
}

// ExpandAtDim inserts a new axis at dim and repeats x size times along it.
func ExpandAtDim[T any](x *tensor.Array[T], dim, size int) (*tensor.Array[T], error) {
	return ops.ExpandAtDim(x, dim, size)
}

// Narrow returns x restricted to [start, start+length) along axis.
func Narrow[T any](x *tensor.Array[T], axis, start, length int) (*tensor.Array[T], error) {
	return ops.Narrow(x, axis, start, length)
}

// SliceLastDim returns x[..., -1:] for arrays of rank 3 or more.
func SliceLastDim[T any](x *tensor.Array[T]) (*tensor.Array[T], error) {
	return ops.SliceLastDim(x)
}

// SliceSecondDim returns x[:, :amount] for arrays of rank 2 or more.
func SliceSecondDim[T any](x *tensor.Array[T], amount int) (*tensor.Array[T], error) {
	return ops.SliceSecondDim(x, amount)
}

// SortLastDim sorts every lane along the last axis of x in place.
func SortLastDim[T tensor.Ordered](x *tensor.Array[T]) {
	ops.SortLastDim(x)
}

// SortDim returns x sorted along dim and the source positions of the sorted values.
func SortDim[T tensor.Ordered](x *tensor.Array[T], dim int) (*tensor.Array[T], *tensor.Array[int64], error) {
	return ops.SortDim(x, dim)
}

// Max returns the maximum of x along dim and the position of the first maximum.
func Max[T tensor.Ordered](x *tensor.Array[T], dim int) (*tensor.Array[T], *tensor.Array[int64], error) {
	return ops.Max(x, dim)
}

// Argmax returns the flat position of the first maximum of x.
func Argmax[T tensor.Ordered](x *tensor.Array[T]) (*tensor.Array[int64], error) {
	return ops.Argmax(x)
}

// ArgmaxDim returns the position of the first maximum of x along dim.
func ArgmaxDim[T tensor.Ordered](x *tensor.Array[T], dim int, keepDim bool) (*tensor.Array[int64], error) {
	return ops.ArgmaxDim(x, dim, keepDim)
}

// Einsum evaluates an Einstein summation over operands.
func Einsum[T tensor.Numeric](equation string, operands ...*tensor.Array[T]) (*tensor.Array[T], error) {
	return ops.Einsum(equation, operands...)
}

// Reduce contracts x against an array of ones with an einsum equation.
func Reduce[T tensor.Numeric](x *tensor.Array[T], equation string) (*tensor.Array[T], error) {
	return ops.Reduce(x, equation)
}

// RearrangeBatchMemsFlag reorders [batch, mems, flag] into [mems, batch*flag].
func RearrangeBatchMemsFlag[T any](x *tensor.Array[T]) (*tensor.Array[T], error) {
	return ops.RearrangeBatchMemsFlag(x)
}

// Where selects x where cond is true and y elsewhere, with broadcasting.
func Where[T any](cond *tensor.Array[bool], x, y *tensor.Array[T]) (*tensor.Array[T], error) {
	return ops.Where(cond, x, y)
}

// Threshold zeroes the elements of x that are not greater than t.
func Threshold[T tensor.Numeric](x *tensor.Array[T], t T) *tensor.Array[T] {
	return ops.Threshold(x, t)
}
