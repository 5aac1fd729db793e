package ops

import (
	"github.com/pkg/errors"

	"github.com/johng149/tensorops/internal/tensor"
)

// Where selects x where cond is true and y elsewhere.
// All three arrays are broadcast against each other.
func Where[T any](cond *tensor.Array[bool], x, y *tensor.Array[T]) (*tensor.Array[T], error) {
	shape, _, err := tensor.BroadcastShapes(cond.Shape(), x.Shape())
	if err != nil {
		return nil, errors.Wrap(ErrIncompatibleShape, err.Error())
	}
	shape, _, err = tensor.BroadcastShapes(shape, y.Shape())
	if err != nil {
		return nil, errors.Wrap(ErrIncompatibleShape, err.Error())
	}

	out := tensor.Zeros[T](shape)
	c, xs, ys, dst := cond.Data(), x.Data(), y.Data(), out.Data()
	cStrides, xStrides, yStrides := cond.Strides(), x.Strides(), y.Strides()
	for flat, coord := range shape.Coords() {
		if c[tensor.BroadcastOffset(coord, cond.Shape(), cStrides)] {
			dst[flat] = xs[tensor.BroadcastOffset(coord, x.Shape(), xStrides)]
		} else {
			dst[flat] = ys[tensor.BroadcastOffset(coord, y.Shape(), yStrides)]
		}
	}
	return out, nil
}

// Threshold keeps the elements of x greater than t and zeroes the rest,
// as where(x > t, x, zeros_like(x)).
func Threshold[T tensor.Numeric](x *tensor.Array[T], t T) *tensor.Array[T] {
	cond := mapElements(x, func(v T) bool { return v > t })
	out, err := Where(cond, x, tensor.ZerosLike(x))
	if err != nil {
		panic(err) // Shapes are identical.
	}
	return out
}
