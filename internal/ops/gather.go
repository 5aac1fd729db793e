package ops

import (
	"fmt"

	"github.com/johng149/tensorops/internal/tensor"
)

// Gather collects values from input along axis at the positions named by index.
//
// For every coordinate c of index, output[c] = input[c with axis replaced by index[c]].
// The output has the shape of index. input and index must have the same rank and
// index may not exceed input along any axis other than axis. Negative axis values
// count from the end.
//
// Example:
//
//	input := tensor.MustFromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	index := tensor.MustFromSlice([]int64{0, 0, 2, 2}, tensor.Shape{2, 2})
//	out, _ := Gather(input, 1, index) // [[1, 1], [6, 6]]
//
// Errors are the typed errors of this package; see KindOf. Neither argument is modified.
func Gather[T any, Ix tensor.Index](input *tensor.Array[T], axis int, index *tensor.Array[Ix]) (*tensor.Array[T], error) {
	inRank, idxRank := input.Rank(), index.Rank()
	if inRank != idxRank {
		return nil, &DimensionMismatchError{Op: opGather, Ranks: []int{inRank, idxRank}}
	}

	reader := newIndexReader[Ix](opGather)

	// Scalars ignore axis; the only valid index is 0.
	if inRank == 0 {
		if _, err := reader.offset([]int{}, index.Data()[0], 0, 1); err != nil {
			return nil, err
		}
		return tensor.Scalar(input.Data()[0]), nil
	}

	dim, err := resolveAxis(opGather, axis, inRank)
	if err != nil {
		return nil, err
	}

	inShape, idxShape := input.Shape(), index.Shape()
	for k := range inRank {
		if k != dim && inShape[k] < idxShape[k] {
			return nil, &ShapeMismatchError{Axis: k, InputSize: inShape[k], IndexSize: idxShape[k]}
		}
	}

	indices := index.Data()
	dimSize := inShape[dim]
	if dimSize == 0 && len(indices) > 0 {
		return nil, &IndexOutOfBoundsError{
			Op:      opGather,
			Coords:  make([]int, idxRank),
			Value:   indices[0],
			Dim:     dim,
			DimSize: 0,
		}
	}

	src := input.Data()
	out := newSlots[T](opGather, idxShape.Clone())
	srcCoord := make([]int, inRank)

	for flat, coord := range idxShape.Coords() {
		off, err := reader.offset(coord, indices[flat], dim, dimSize)
		if err != nil {
			return nil, err
		}
		tensor.ReplaceAxis(srcCoord, coord, dim, off)
		srcOff, ok := inShape.Offset(srcCoord)
		if !ok {
			return nil, &InternalError{Op: opGather, Message: fmt.Sprintf("input coordinate %v out of bounds after validation", srcCoord)}
		}
		if err := out.put(flat, src[srcOff]); err != nil {
			return nil, err
		}
	}

	return out.build()
}
