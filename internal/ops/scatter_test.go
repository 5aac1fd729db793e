package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"

	"github.com/johng149/tensorops/internal/tensor"
)

func TestScatter_Columns(t *testing.T) {
	target := tensor.Zeros[int](tensor.Shape{2, 3})
	index := tensor.MustFromSlice([]int64{1, 2}, tensor.Shape{2, 1})
	source := tensor.MustFromSlice([]int{9, 8}, tensor.Shape{2, 1})

	require.NoError(t, Scatter(target, 1, index, source))
	assert.Equal(t, []int{0, 9, 0, 0, 0, 8}, target.Data())
}

func TestScatter_Rows(t *testing.T) {
	target := tensor.Zeros[float32](tensor.Shape{3, 2})
	index := tensor.MustFromSlice([]int32{2, 0}, tensor.Shape{1, 2})
	source := tensor.MustFromSlice([]float32{1.5, 2.5}, tensor.Shape{1, 2})

	require.NoError(t, Scatter(target, 0, index, source))
	assert.Equal(t, []float32{0, 2.5, 0, 0, 1.5, 0}, target.Data())
}

func TestScatter_KeepsTargetStorage(t *testing.T) {
	target := tensor.Zeros[int](tensor.Shape{4})
	data := target.Data()

	err := Scatter(target, 0, tensor.MustFromSlice([]int{3}, tensor.Shape{1}), tensor.MustFromSlice([]int{5}, tensor.Shape{1}))
	require.NoError(t, err)
	assert.Equal(t, 5, data[3])
	assert.Equal(t, tensor.Shape{4}, target.Shape())
}

func TestScatter_CollisionLastWriteWins(t *testing.T) {
	target := tensor.Zeros[int](tensor.Shape{1, 3})
	index := tensor.MustFromSlice([]int64{1, 1, 1}, tensor.Shape{1, 3})
	source := tensor.MustFromSlice([]int{1, 2, 3}, tensor.Shape{1, 3})

	require.NoError(t, Scatter(target, 1, index, source))
	assert.Equal(t, []int{0, 3, 0}, target.Data())
}

func TestScatter_PartialWriteOnFailure(t *testing.T) {
	target := tensor.Zeros[int](tensor.Shape{1, 3})
	index := tensor.MustFromSlice([]int64{0, 5, 1}, tensor.Shape{1, 3})
	source := tensor.MustFromSlice([]int{7, 8, 9}, tensor.Shape{1, 3})

	err := Scatter(target, 1, index, source)
	var oob *IndexOutOfBoundsError
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, []int{0, 1}, oob.Coords)
	assert.Equal(t, opScatter, oob.Op)
	assert.Equal(t, 3, oob.DimSize)

	// Writes before the failing element stay applied; later ones never happen.
	assert.Equal(t, []int{7, 0, 0}, target.Data())
}

func TestScatter_RoundTrip(t *testing.T) {
	target := tensor.Arange[float64](0, 12)
	target, err := Reshape(target, []int{3, 4})
	require.NoError(t, err)

	// Each row is a permutation of the columns, so the index is injective.
	index := tensor.MustFromSlice([]int64{
		3, 1, 0, 2,
		0, 1, 2, 3,
		2, 3, 1, 0,
	}, tensor.Shape{3, 4})

	gathered, err := Gather(target, 1, index)
	require.NoError(t, err)

	restored := tensor.ZerosLike(target)
	require.NoError(t, Scatter(restored, 1, index, gathered))
	assert.True(t, tensor.Equal(target, restored))

	// Scattering the gathered values back onto the same array leaves it unchanged.
	same := target.Clone()
	require.NoError(t, Scatter(same, 1, index, gathered))
	assert.True(t, tensor.Equal(target, same))
}

func TestScatter_RoundTripTouchesOnlyIndexedCells(t *testing.T) {
	target := tensor.MustFromSlice([]int{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	index := tensor.MustFromSlice([]int64{2, 0}, tensor.Shape{2, 1})

	gathered, err := Gather(target, 1, index)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, gathered.Data())

	fresh := tensor.Full(tensor.Shape{2, 3}, -1)
	require.NoError(t, Scatter(fresh, 1, index, gathered))
	assert.Equal(t, []int{-1, -1, 3, 4, -1, -1}, fresh.Data())
}

func TestScatter_NegativeAxis(t *testing.T) {
	a := tensor.Zeros[int](tensor.Shape{2, 3})
	b := tensor.Zeros[int](tensor.Shape{2, 3})
	index := tensor.MustFromSlice([]int64{2, 0}, tensor.Shape{2, 1})
	source := tensor.MustFromSlice([]int{1, 2}, tensor.Shape{2, 1})

	require.NoError(t, Scatter(a, -1, index, source))
	require.NoError(t, Scatter(b, 1, index, source))
	assert.True(t, tensor.Equal(a, b))
}

func TestScatter_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		target tensor.Shape
		axis   int
		index  tensor.Shape
		source tensor.Shape
		kind   ErrorKind
	}{
		{"rank mismatch", tensor.Shape{2, 3}, 0, tensor.Shape{2, 3}, tensor.Shape{6}, KindDimensionMismatch},
		{"rank mismatch index", tensor.Shape{6}, 0, tensor.Shape{2, 3}, tensor.Shape{2, 3}, KindDimensionMismatch},
		{"axis too large", tensor.Shape{2, 3}, 2, tensor.Shape{2, 3}, tensor.Shape{2, 3}, KindInvalidDimension},
		{"axis too negative", tensor.Shape{2, 3}, -3, tensor.Shape{2, 3}, tensor.Shape{2, 3}, KindInvalidDimension},
		{"index source mismatch", tensor.Shape{2, 3}, 1, tensor.Shape{2, 2}, tensor.Shape{2, 3}, KindIndexSourceShapeMismatch},
		{"target too small", tensor.Shape{2, 3}, 1, tensor.Shape{3, 1}, tensor.Shape{3, 1}, KindTargetTooSmall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := tensor.Zeros[int](tt.target)
			err := Scatter(target, tt.axis, tensor.Zeros[int64](tt.index), tensor.Zeros[int](tt.source))
			kind, ok := KindOf(err)
			require.True(t, ok, "err = %v", err)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestScatter_DimensionMismatchRanks(t *testing.T) {
	err := Scatter(tensor.Zeros[int](tensor.Shape{2, 3}), 0, tensor.Zeros[int64](tensor.Shape{2}), tensor.Zeros[int](tensor.Shape{2, 3, 1}))
	var dmErr *DimensionMismatchError
	require.ErrorAs(t, err, &dmErr)
	assert.Equal(t, []int{2, 1, 3}, dmErr.Ranks)
	assert.Contains(t, dmErr.Error(), "target: 2, index: 1, source: 3")
}

func TestScatter_TargetTooSmallFields(t *testing.T) {
	err := Scatter(tensor.Zeros[int](tensor.Shape{2, 3}), 1, tensor.Zeros[int64](tensor.Shape{3, 1}), tensor.Zeros[int](tensor.Shape{3, 1}))
	var small *TargetTooSmallError
	require.ErrorAs(t, err, &small)
	assert.Equal(t, TargetTooSmallError{Axis: 0, TargetSize: 2, IndexSize: 3}, *small)
}

func TestScatter_ZeroSizedAxis(t *testing.T) {
	source := tensor.Zeros[int](tensor.Shape{1, 2})

	err := Scatter(tensor.Zeros[int](tensor.Shape{0, 2}), 0, tensor.MustFromSlice([]int64{-1, 0}, tensor.Shape{1, 2}), source)
	var neg *NegativeIndexError
	require.ErrorAs(t, err, &neg)
	assert.Equal(t, []int{0, 0}, neg.Coords)

	err = Scatter(tensor.Zeros[int](tensor.Shape{0, 2}), 0, tensor.MustFromSlice([]int64{1, -1}, tensor.Shape{1, 2}), source)
	var oob *IndexOutOfBoundsError
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, 0, oob.DimSize)
	assert.Equal(t, int64(1), oob.Value)
}

func TestScatter_Scalar(t *testing.T) {
	target := tensor.Scalar(1)
	require.NoError(t, Scatter(target, 3, tensor.Scalar(uint8(0)), tensor.Scalar(5)))
	assert.Equal(t, 5, target.Item())

	err := Scatter(target, 0, tensor.Scalar(uint8(1)), tensor.Scalar(6))
	var oob *IndexOutOfBoundsError
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, 1, oob.DimSize)
	assert.Equal(t, 5, target.Item())
}

func TestScatter_BoundsLaw(t *testing.T) {
	target := tensor.Zeros[int](tensor.Shape{3})
	source := tensor.MustFromSlice([]int{1}, tensor.Shape{1})

	err := Scatter(target, 0, tensor.MustFromSlice([]int64{-2}, tensor.Shape{1}), source)
	kind, _ := KindOf(err)
	assert.Equal(t, KindNegativeIndex, kind)

	err = Scatter(target, 0, tensor.MustFromSlice([]int64{3}, tensor.Shape{1}), source)
	kind, _ = KindOf(err)
	assert.Equal(t, KindIndexOutOfBounds, kind)

	err = Scatter(target, 0, tensor.MustFromSlice([]float32{0.25}, tensor.Shape{1}), source)
	kind, _ = KindOf(err)
	assert.Equal(t, KindIndexCast, kind)
}

func TestScatter_Float16Elements(t *testing.T) {
	target := tensor.Zeros[float16.Float16](tensor.Shape{2, 2})
	index := tensor.MustFromSlice([]int{1, 0}, tensor.Shape{2, 1})
	source := tensor.MustFromSlice([]float16.Float16{float16.Fromfloat32(3), float16.Fromfloat32(-1)}, tensor.Shape{2, 1})

	require.NoError(t, Scatter(target, 1, index, source))
	assert.Equal(t, []float32{0, 3, -1, 0}, FromFloat16(target).Data())
}
