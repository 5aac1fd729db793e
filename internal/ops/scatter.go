package ops

import (
	"fmt"

	"github.com/johng149/tensorops/internal/tensor"
)

// Scatter writes source into target along axis at the positions named by index.
//
// For every coordinate c of index, in row-major order,
// target[c with axis replaced by index[c]] = source[c].
// index and source must have the same shape, all three arrays the same rank, and
// index may not exceed target along any axis other than axis.
//
// Writes happen in place and are not rolled back: if an index element fails
// validation, every earlier write in traversal order has already been applied.
// When two positions of index name the same target cell the later one wins.
//
// Scatter is not safe for concurrent use on the same target.
func Scatter[T any, Ix tensor.Index](target *tensor.Array[T], axis int, index *tensor.Array[Ix], source *tensor.Array[T]) error {
	tRank, iRank, sRank := target.Rank(), index.Rank(), source.Rank()
	if tRank != iRank || iRank != sRank {
		return &DimensionMismatchError{Op: opScatter, Ranks: []int{tRank, iRank, sRank}}
	}

	reader := newIndexReader[Ix](opScatter)

	if tRank == 0 {
		if _, err := reader.offset([]int{}, index.Data()[0], 0, 1); err != nil {
			return err
		}
		target.Data()[0] = source.Data()[0]
		return nil
	}

	dim, err := resolveAxis(opScatter, axis, tRank)
	if err != nil {
		return err
	}

	tShape, idxShape, srcShape := target.Shape(), index.Shape(), source.Shape()
	if !idxShape.Equal(srcShape) {
		return &IndexSourceShapeMismatchError{IndexShape: idxShape.Clone(), SourceShape: srcShape.Clone()}
	}
	for k := range tRank {
		if k != dim && tShape[k] < idxShape[k] {
			return &TargetTooSmallError{Axis: k, TargetSize: tShape[k], IndexSize: idxShape[k]}
		}
	}

	indices := index.Data()
	dimSize := tShape[dim]
	if dimSize == 0 && len(indices) > 0 {
		first := make([]int, iRank)
		if indices[0] < 0 {
			return &NegativeIndexError{Op: opScatter, Coords: first, Value: indices[0]}
		}
		return &IndexOutOfBoundsError{Op: opScatter, Coords: first, Value: indices[0], Dim: dim, DimSize: 0}
	}

	dst, vals := target.Data(), source.Data()
	dstCoord := make([]int, tRank)

	for flat, coord := range idxShape.Coords() {
		off, err := reader.offset(coord, indices[flat], dim, dimSize)
		if err != nil {
			return err
		}
		tensor.ReplaceAxis(dstCoord, coord, dim, off)
		dstOff, ok := tShape.Offset(dstCoord)
		if !ok {
			return &InternalError{Op: opScatter, Message: fmt.Sprintf("target coordinate %v out of bounds after validation", dstCoord)}
		}
		dst[dstOff] = vals[flat]
	}

	return nil
}
