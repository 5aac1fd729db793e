package ops

import (
	"github.com/pkg/errors"

	"github.com/johng149/tensorops/internal/tensor"
)

// Narrow returns a copy of x restricted to [start, start+length) along axis.
// A negative start counts from the end of the axis.
func Narrow[T any](x *tensor.Array[T], axis, start, length int) (*tensor.Array[T], error) {
	shape := x.Shape()
	d, ok := tensor.NormalizeAxis(axis, len(shape))
	if !ok {
		return nil, errors.Wrapf(ErrInvalidAxis, "narrow: axis %d for rank %d", axis, len(shape))
	}
	size := shape[d]
	if start < 0 {
		start += size
	}
	if start < 0 || length < 0 || start+length > size {
		return nil, errors.Wrapf(ErrIncompatibleShape, "narrow: range [%d, %d) on axis of size %d", start, start+length, size)
	}

	outShape := shape.Clone()
	outShape[d] = length
	out := tensor.Zeros[T](outShape)

	// Copy contiguous runs: outer blocks before the axis, inner elements after it.
	inner := 1
	for _, s := range shape[d+1:] {
		inner *= s
	}
	outer := 1
	for _, s := range shape[:d] {
		outer *= s
	}
	src, dst := x.Data(), out.Data()
	run := length * inner
	for o := range outer {
		copy(dst[o*run:(o+1)*run], src[(o*size+start)*inner:])
	}
	return out, nil
}

// SliceLastDim keeps only the last element of the last axis, as x[..., -1:].
// x must have rank >= 3. An empty last axis gives an empty result.
func SliceLastDim[T any](x *tensor.Array[T]) (*tensor.Array[T], error) {
	if x.Rank() < 3 {
		return nil, errors.Wrapf(ErrIncompatibleShape, "slice last dim: rank %d, need at least 3", x.Rank())
	}
	last := x.Shape()[x.Rank()-1]
	if last == 0 {
		return Narrow(x, -1, 0, 0)
	}
	return Narrow(x, -1, last-1, 1)
}

// SliceSecondDim keeps the first amount entries of axis 1, as x[:, :amount].
// amount is clamped to the axis size. x must have rank >= 2.
func SliceSecondDim[T any](x *tensor.Array[T], amount int) (*tensor.Array[T], error) {
	if x.Rank() < 2 {
		return nil, errors.Wrapf(ErrIncompatibleShape, "slice second dim: rank %d, need at least 2", x.Rank())
	}
	if amount < 0 {
		return nil, errors.Wrapf(ErrIncompatibleShape, "slice second dim: negative amount %d", amount)
	}
	return Narrow(x, 1, 0, min(amount, x.Shape()[1]))
}
