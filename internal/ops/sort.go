package ops

import (
	"cmp"
	"slices"

	"github.com/pkg/errors"

	"github.com/johng149/tensorops/internal/parallel"
	"github.com/johng149/tensorops/internal/tensor"
)

// SortLastDim sorts every lane along the last axis of x in place, ascending.
// NaNs order before every other value. A rank-0 array is left untouched.
func SortLastDim[T tensor.Ordered](x *tensor.Array[T]) {
	if x.Rank() == 0 {
		Logger().Warn("sort: cannot sort a 0-dimensional array along its last axis", "shape", []int(x.Shape()))
		return
	}
	laneLen := x.Shape()[x.Rank()-1]
	if laneLen == 0 {
		return
	}
	data := x.Data()
	lanes := len(data) / laneLen
	parallel.ForLanes(lanes, laneLen, func(l int) {
		slices.Sort(data[l*laneLen : (l+1)*laneLen])
	}, ParallelConfig())
}

// SortDim returns x sorted ascending along dim, together with the positions the
// sorted values came from. The sort is stable and NaNs order first.
//
// The indices satisfy Gather(x, dim, indices) == values.
func SortDim[T tensor.Ordered](x *tensor.Array[T], dim int) (values *tensor.Array[T], indices *tensor.Array[int64], err error) {
	shape := x.Shape()
	d, ok := tensor.NormalizeAxis(dim, len(shape))
	if !ok {
		return nil, nil, errors.Wrapf(ErrInvalidAxis, "sort: dim %d for rank %d", dim, len(shape))
	}

	outer, size, inner := splitAxis(shape, d)
	values = tensor.Zeros[T](shape)
	indices = tensor.Zeros[int64](shape)
	src, vals, idx := x.Data(), values.Data(), indices.Data()

	parallel.ForLanes(outer*inner, size, func(lane int) {
		o, in := lane/inner, lane%inner
		base := o*size*inner + in
		order := make([]int, size)
		for i := range order {
			order[i] = i
		}
		slices.SortStableFunc(order, func(a, b int) int {
			return cmp.Compare(src[base+a*inner], src[base+b*inner])
		})
		for i, j := range order {
			vals[base+i*inner] = src[base+j*inner]
			idx[base+i*inner] = int64(j)
		}
	}, ParallelConfig())

	return values, indices, nil
}

// splitAxis views shape as [outer, size, inner] around axis d.
func splitAxis(shape tensor.Shape, d int) (outer, size, inner int) {
	outer, inner = 1, 1
	for _, s := range shape[:d] {
		outer *= s
	}
	for _, s := range shape[d+1:] {
		inner *= s
	}
	return outer, shape[d], inner
}
