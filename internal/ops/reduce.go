package ops

import (
	"github.com/pkg/errors"

	"github.com/johng149/tensorops/internal/tensor"
)

// greater reports whether v should replace best as the running maximum.
// NaN never wins and always loses; equal values keep the earlier one.
func greater[T tensor.Ordered](v, best T) bool {
	if tensor.IsNaN(v) {
		return false
	}
	return tensor.IsNaN(best) || v > best
}

// reduceArgs validates the reduction axis of x and returns it resolved.
func reduceArgs[T any](op string, x *tensor.Array[T], dim int) (int, error) {
	shape := x.Shape()
	d, ok := tensor.NormalizeAxis(dim, len(shape))
	if !ok {
		return 0, errors.Wrapf(ErrInvalidAxis, "%s: dim %d for rank %d", op, dim, len(shape))
	}
	if shape[d] == 0 {
		return 0, errors.Wrapf(ErrZeroDimSize, "%s: dim %d of shape %v", op, d, []int(shape))
	}
	if x.NumElements() == 0 {
		return 0, errors.Wrapf(ErrEmptyInput, "%s: shape %v", op, []int(shape))
	}
	return d, nil
}

// maxAlong computes the maximum and its position for every lane along axis d.
func maxAlong[T tensor.Ordered](x *tensor.Array[T], d int) ([]T, []int64) {
	outer, size, inner := splitAxis(x.Shape(), d)
	src := x.Data()
	vals := make([]T, outer*inner)
	idx := make([]int64, outer*inner)
	for o := range outer {
		for in := range inner {
			base := o*size*inner + in
			best, at := src[base], 0
			for i := 1; i < size; i++ {
				if v := src[base+i*inner]; greater(v, best) {
					best, at = v, i
				}
			}
			vals[o*inner+in] = best
			idx[o*inner+in] = int64(at)
		}
	}
	return vals, idx
}

// Max returns the maximum of x along dim and the position of the first maximum.
// dim is removed from the result shapes.
func Max[T tensor.Ordered](x *tensor.Array[T], dim int) (values *tensor.Array[T], indices *tensor.Array[int64], err error) {
	d, err := reduceArgs("max", x, dim)
	if err != nil {
		return nil, nil, err
	}
	vals, idx := maxAlong(x, d)
	shape := reducedShape(x.Shape(), d, false)
	if values, err = tensor.FromOwned(vals, shape); err != nil {
		return nil, nil, err
	}
	if indices, err = tensor.FromOwned(idx, shape); err != nil {
		return nil, nil, err
	}
	return values, indices, nil
}

// Argmax returns the flat row-major position of the first maximum of x as a 0-d array.
func Argmax[T tensor.Ordered](x *tensor.Array[T]) (*tensor.Array[int64], error) {
	data := x.Data()
	if len(data) == 0 {
		return nil, errors.Wrapf(ErrEmptyInput, "argmax: shape %v", []int(x.Shape()))
	}
	best, at := data[0], 0
	for i, v := range data[1:] {
		if greater(v, best) {
			best, at = v, i+1
		}
	}
	return tensor.Scalar(int64(at)), nil
}

// ArgmaxDim returns the position of the first maximum of x along dim.
// With keepDim the reduced axis is kept with size 1.
func ArgmaxDim[T tensor.Ordered](x *tensor.Array[T], dim int, keepDim bool) (*tensor.Array[int64], error) {
	d, err := reduceArgs("argmax", x, dim)
	if err != nil {
		return nil, err
	}
	_, idx := maxAlong(x, d)
	return tensor.FromOwned(idx, reducedShape(x.Shape(), d, keepDim))
}

func reducedShape(shape tensor.Shape, d int, keepDim bool) tensor.Shape {
	out := shape.Clone()
	if keepDim {
		out[d] = 1
		return out
	}
	return append(out[:d], out[d+1:]...)
}

// Reduce contracts x against an array of ones with an einsum equation naming two
// operands of the same shape, for example "bnm,bnm->nm".
func Reduce[T tensor.Numeric](x *tensor.Array[T], equation string) (*tensor.Array[T], error) {
	out, err := Einsum(equation, x, tensor.OnesLike(x))
	if err != nil {
		return nil, errors.WithMessage(err, "reduce")
	}
	return out, nil
}
