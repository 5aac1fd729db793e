package ops

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/johng149/tensorops/internal/tensor"
)

// Reshape returns a copy of x with a new shape holding the same elements.
//
// At most one dimension may be -1; its size is inferred from the others.
func Reshape[T any](x *tensor.Array[T], shape []int) (*tensor.Array[T], error) {
	total := x.NumElements()
	newShape := make(tensor.Shape, len(shape))
	copy(newShape, shape)

	inferred := -1
	known := 1
	for i, d := range shape {
		switch {
		case d == -1:
			if inferred >= 0 {
				return nil, errors.Wrapf(ErrMultipleInferredDimensions, "reshape %v to %v", []int(x.Shape()), shape)
			}
			inferred = i
		case d < 0:
			return nil, errors.Wrapf(ErrIncompatibleShape, "reshape: negative dimension %d at axis %d", d, i)
		default:
			known *= d
		}
	}

	if inferred >= 0 {
		if known == 0 || total%known != 0 {
			return nil, errors.Wrapf(ErrIncompatibleShape, "reshape: cannot infer dimension of %v for %d elements", shape, total)
		}
		newShape[inferred] = total / known
	} else if known != total {
		return nil, errors.Wrapf(ErrIncompatibleShape, "reshape: %v has %d elements, %v needs %d", []int(x.Shape()), total, shape, known)
	}

	return tensor.FromSlice(x.Data(), newShape)
}

// Transpose swaps two axes of x. Negative axes count from the end.
func Transpose[T any](x *tensor.Array[T], dim0, dim1 int) (*tensor.Array[T], error) {
	rank := x.Rank()
	a, ok0 := tensor.NormalizeAxis(dim0, rank)
	b, ok1 := tensor.NormalizeAxis(dim1, rank)
	if !ok0 || !ok1 {
		return nil, errors.Wrapf(ErrInvalidAxis, "transpose: axes (%d, %d) for rank %d", dim0, dim1, rank)
	}
	axes := make([]int, rank)
	for i := range axes {
		axes[i] = i
	}
	axes[a], axes[b] = axes[b], axes[a]
	return permute(x, axes), nil
}

// Permute reorders the axes of x so that output axis i is input axis axes[i].
// With no axes the order is reversed.
func Permute[T any](x *tensor.Array[T], axes ...int) (*tensor.Array[T], error) {
	rank := x.Rank()
	if len(axes) == 0 {
		axes = make([]int, rank)
		for i := range axes {
			axes[i] = rank - 1 - i
		}
	}
	if len(axes) != rank {
		return nil, errors.Wrapf(ErrInvalidAxis, "permute: %d axes for rank %d", len(axes), rank)
	}

	resolved := make([]int, rank)
	seen := make([]bool, rank)
	for i, ax := range axes {
		a, ok := tensor.NormalizeAxis(ax, rank)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidAxis, "permute: axis %d for rank %d", ax, rank)
		}
		if seen[a] {
			return nil, errors.Wrapf(ErrInvalidAxis, "permute: duplicate axis %d", ax)
		}
		seen[a] = true
		resolved[i] = a
	}
	return permute(x, resolved), nil
}

// permute materializes x with validated, non-negative axes.
func permute[T any](x *tensor.Array[T], axes []int) *tensor.Array[T] {
	shape := x.Shape()
	strides := x.Strides()

	newShape := make(tensor.Shape, len(axes))
	srcStrides := make([]int, len(axes))
	for i, ax := range axes {
		newShape[i] = shape[ax]
		srcStrides[i] = strides[ax]
	}

	out := tensor.Zeros[T](newShape)
	src, dst := x.Data(), out.Data()
	for flat, coord := range newShape.Coords() {
		off := 0
		for i, c := range coord {
			off += c * srcStrides[i]
		}
		dst[flat] = src[off]
	}
	return out
}

// Unsqueeze inserts a size-1 axis at dim. dim may range over [-rank-1, rank].
func Unsqueeze[T any](x *tensor.Array[T], dim int) (*tensor.Array[T], error) {
	shape := x.Shape()
	d, ok := tensor.NormalizeAxis(dim, len(shape)+1)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidAxis, "unsqueeze: dim %d for rank %d", dim, len(shape))
	}
	newShape := slices.Insert(shape.Clone(), d, 1)
	return tensor.FromSlice(x.Data(), newShape)
}

// Squeeze removes axis dim, which must have size 1.
func Squeeze[T any](x *tensor.Array[T], dim int) (*tensor.Array[T], error) {
	shape := x.Shape()
	d, ok := tensor.NormalizeAxis(dim, len(shape))
	if !ok {
		return nil, errors.Wrapf(ErrInvalidAxis, "squeeze: dim %d for rank %d", dim, len(shape))
	}
	if shape[d] != 1 {
		return nil, errors.Wrapf(ErrIncompatibleShape, "squeeze: dimension %d has size %d", d, shape[d])
	}
	newShape := slices.Delete(shape.Clone(), d, d+1)
	return tensor.FromSlice(x.Data(), newShape)
}

// BroadcastTo expands x to shape following NumPy rules.
// Shapes are right aligned; each axis of x must be 1 or equal to the target size.
func BroadcastTo[T any](x *tensor.Array[T], shape []int) (*tensor.Array[T], error) {
	outShape := tensor.Shape(shape).Clone()
	if err := outShape.Validate(); err != nil {
		return nil, errors.Wrap(ErrIncompatibleShape, err.Error())
	}
	inShape := x.Shape()
	if len(inShape) > len(outShape) {
		return nil, errors.Wrapf(ErrIncompatibleShape, "broadcast: cannot reduce rank %d to %d", len(inShape), len(outShape))
	}
	offset := len(outShape) - len(inShape)
	for i, d := range inShape {
		if d != 1 && d != outShape[offset+i] {
			return nil, errors.Wrapf(ErrIncompatibleShape, "broadcast: cannot expand %v to %v", []int(inShape), shape)
		}
	}

	out := tensor.Zeros[T](outShape)
	src, dst := x.Data(), out.Data()
	strides := x.Strides()
	for flat, coord := range outShape.Coords() {
		dst[flat] = src[tensor.BroadcastOffset(coord, inShape, strides)]
	}
	return out, nil
}

// ExpandAtDim inserts a new axis at dim and repeats x size times along it.
func ExpandAtDim[T any](x *tensor.Array[T], dim, size int) (*tensor.Array[T], error) {
	if dim > x.Rank() {
		return nil, errors.Wrapf(ErrInvalidAxis, "expand: dim %d exceeds rank %d", dim, x.Rank())
	}
	u, err := Unsqueeze(x, dim)
	if err != nil {
		return nil, err
	}
	d, _ := tensor.NormalizeAxis(dim, u.Rank())
	shape := u.Shape().Clone()
	shape[d] = size
	out, err := BroadcastTo(u, shape)
	if err != nil {
		return nil, errors.WithMessagef(err, "expand at dim %d", dim)
	}
	return out, nil
}
