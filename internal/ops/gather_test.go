package ops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"

	"github.com/johng149/tensorops/internal/tensor"
)

func TestGather_Vector(t *testing.T) {
	input := tensor.MustFromSlice([]int{10, 20, 30}, tensor.Shape{3})
	index := tensor.MustFromSlice([]int64{2, 0}, tensor.Shape{2})

	out, err := Gather(input, 0, index)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2}, out.Shape())
	assert.Equal(t, []int{30, 10}, out.Data())
}

func TestGather_Columns(t *testing.T) {
	input := tensor.MustFromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	index := tensor.MustFromSlice([]int64{0, 0, 2, 2}, tensor.Shape{2, 2})

	out, err := Gather(input, 1, index)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 2}, out.Shape())
	assert.Equal(t, []float32{1, 1, 6, 6}, out.Data())
}

func TestGather_Rows(t *testing.T) {
	input := tensor.MustFromSlice([]int{1, 2, 3, 4, 5, 6}, tensor.Shape{3, 2})
	index := tensor.MustFromSlice([]uint8{2, 0}, tensor.Shape{1, 2})

	out, err := Gather(input, 0, index)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 2}, out.Data())
}

func TestGather_IndexLongerThanAxis(t *testing.T) {
	input := tensor.MustFromSlice([]int{1, 2, 3}, tensor.Shape{1, 3})
	index := tensor.MustFromSlice([]int32{2, 2, 1, 0, 0}, tensor.Shape{1, 5})

	out, err := Gather(input, 1, index)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3, 2, 1, 1}, out.Data())
}

func TestGather_ShapeLaw(t *testing.T) {
	input := tensor.Arange[int](0, 24)
	input, err := Reshape(input, []int{2, 3, 4})
	require.NoError(t, err)

	tests := []struct {
		name  string
		axis  int
		shape tensor.Shape
	}{
		{"axis 0", 0, tensor.Shape{5, 3, 4}},
		{"axis 1 smaller", 1, tensor.Shape{1, 2, 2}},
		{"axis 2", 2, tensor.Shape{2, 3, 7}},
		{"empty", 1, tensor.Shape{2, 0, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index := tensor.Zeros[int64](tt.shape)
			out, err := Gather(input, tt.axis, index)
			require.NoError(t, err)
			assert.Equal(t, tt.shape, out.Shape())
		})
	}
}

func TestGather_IdentityLaw(t *testing.T) {
	input := tensor.Arange[float64](0, 24)
	input, err := Reshape(input, []int{2, 3, 4})
	require.NoError(t, err)

	for axis := range 3 {
		k := input.Shape()[axis] - 1
		index := tensor.Full(tensor.Shape{2, 3, 4}, int16(k))

		out, err := Gather(input, axis, index)
		require.NoError(t, err)

		src := make([]int, 3)
		for _, c := range out.Shape().Coords() {
			tensor.ReplaceAxis(src, c, axis, k)
			assert.Equal(t, input.At(src...), out.At(c...), "axis %d coord %v", axis, c)
		}
	}
}

func TestGather_NegativeAxis(t *testing.T) {
	input := tensor.MustFromSlice([]int{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	index := tensor.MustFromSlice([]int64{2, 1, 0, 0}, tensor.Shape{2, 2})

	last, err := Gather(input, 1, index)
	require.NoError(t, err)
	neg, err := Gather(input, -1, index)
	require.NoError(t, err)
	assert.True(t, tensor.Equal(last, neg))

	first, err := Gather(input, -2, tensor.MustFromSlice([]int64{1, 0, 1}, tensor.Shape{1, 3}))
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2, 6}, first.Data())
}

func TestGather_InvalidDimension(t *testing.T) {
	input := tensor.Zeros[int](tensor.Shape{2, 3})
	index := tensor.Zeros[int64](tensor.Shape{2, 3})

	for _, axis := range []int{2, 5, -3, -10} {
		_, err := Gather(input, axis, index)
		require.Error(t, err)

		var dimErr *InvalidDimensionError
		require.ErrorAs(t, err, &dimErr, "axis %d", axis)
		assert.Equal(t, axis, dimErr.Dim)
		assert.Equal(t, 2, dimErr.Rank)
		assert.Equal(t, opGather, dimErr.Op)
	}
}

func TestGather_DimensionMismatch(t *testing.T) {
	input := tensor.Zeros[int](tensor.Shape{2, 3})
	index := tensor.Zeros[int64](tensor.Shape{6})

	_, err := Gather(input, 0, index)
	var dmErr *DimensionMismatchError
	require.ErrorAs(t, err, &dmErr)
	assert.Equal(t, []int{2, 1}, dmErr.Ranks)
}

func TestGather_DimensionMismatchBeforeAxis(t *testing.T) {
	input := tensor.Zeros[int](tensor.Shape{2, 3})
	index := tensor.Zeros[int64](tensor.Shape{6})

	_, err := Gather(input, 99, index)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindDimensionMismatch, kind)
}

func TestGather_ShapeMismatch(t *testing.T) {
	input := tensor.Zeros[int](tensor.Shape{2, 3})
	index := tensor.Zeros[int64](tensor.Shape{3, 1})

	_, err := Gather(input, 1, index)
	var smErr *ShapeMismatchError
	require.ErrorAs(t, err, &smErr)
	assert.Equal(t, ShapeMismatchError{Axis: 0, InputSize: 2, IndexSize: 3}, *smErr)
}

func TestGather_ZeroSizedAxis(t *testing.T) {
	input := tensor.Zeros[float32](tensor.Shape{0, 5})
	index := tensor.MustFromSlice([]int64{0, 1, 2, 3, 4}, tensor.Shape{1, 5})

	_, err := Gather(input, 0, index)
	var oob *IndexOutOfBoundsError
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, 0, oob.DimSize)
	assert.Equal(t, 0, oob.Dim)
	assert.Equal(t, []int{0, 0}, oob.Coords)
	assert.Equal(t, int64(0), oob.Value)
}

func TestGather_ZeroSizedAxisEmptyIndex(t *testing.T) {
	input := tensor.Zeros[float32](tensor.Shape{0, 5})
	index := tensor.Zeros[int64](tensor.Shape{0, 5})

	out, err := Gather(input, 0, index)
	require.NoError(t, err)
	assert.Equal(t, 0, out.NumElements())
	assert.Equal(t, tensor.Shape{0, 5}, out.Shape())
}

func TestGather_BoundsLaw(t *testing.T) {
	input := tensor.MustFromSlice([]int{1, 2, 3}, tensor.Shape{3})

	_, err := Gather(input, 0, tensor.MustFromSlice([]int64{0, -1}, tensor.Shape{2}))
	var neg *NegativeIndexError
	require.ErrorAs(t, err, &neg)
	assert.Equal(t, []int{1}, neg.Coords)
	assert.Equal(t, int64(-1), neg.Value)

	_, err = Gather(input, 0, tensor.MustFromSlice([]int64{3}, tensor.Shape{1}))
	var oob *IndexOutOfBoundsError
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, []int{0}, oob.Coords)
	assert.Equal(t, 3, oob.DimSize)
	assert.Equal(t, 0, oob.Dim)
}

func TestGather_FirstErrorInTraversalOrder(t *testing.T) {
	input := tensor.Zeros[int](tensor.Shape{2, 2})
	index := tensor.MustFromSlice([]int64{0, 1, 7, -1}, tensor.Shape{2, 2})

	_, err := Gather(input, 1, index)
	kind, _ := KindOf(err)
	assert.Equal(t, KindIndexOutOfBounds, kind)

	var oob *IndexOutOfBoundsError
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, []int{1, 0}, oob.Coords)
}

func TestGather_FloatIndices(t *testing.T) {
	input := tensor.MustFromSlice([]int{10, 20, 30}, tensor.Shape{3})

	out, err := Gather(input, 0, tensor.MustFromSlice([]float64{2, 1}, tensor.Shape{2}))
	require.NoError(t, err)
	assert.Equal(t, []int{30, 20}, out.Data())

	tests := []struct {
		name  string
		value float64
		kind  ErrorKind
	}{
		{"fraction", 3.7, KindIndexCast},
		{"small fraction", 0.5, KindIndexCast},
		{"nan", math.NaN(), KindIndexCast},
		{"inf", math.Inf(1), KindIndexCast},
		{"too large", 1e19, KindIndexCast},
		{"negative", -1.5, KindNegativeIndex},
		{"negative inf", math.Inf(-1), KindNegativeIndex},
		{"out of bounds", 3, KindIndexOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Gather(input, 0, tensor.MustFromSlice([]float64{tt.value}, tensor.Shape{1}))
			kind, ok := KindOf(err)
			require.True(t, ok)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestGather_UnsignedCastFailure(t *testing.T) {
	input := tensor.MustFromSlice([]int{10, 20, 30}, tensor.Shape{3})
	index := tensor.MustFromSlice([]uint64{1 << 63}, tensor.Shape{1})

	_, err := Gather(input, 0, index)
	var castErr *IndexCastError
	require.ErrorAs(t, err, &castErr)
	assert.Equal(t, uint64(1<<63), castErr.Value)
	assert.Equal(t, []int{0}, castErr.Coords)
}

func TestGather_Scalar(t *testing.T) {
	input := tensor.Scalar(float32(4.5))

	out, err := Gather(input, 0, tensor.Scalar(int64(0)))
	require.NoError(t, err)
	assert.Equal(t, 0, out.Rank())
	assert.Equal(t, float32(4.5), out.Item())

	// The axis is ignored for scalars.
	_, err = Gather(input, 7, tensor.Scalar(int64(0)))
	require.NoError(t, err)

	_, err = Gather(input, 0, tensor.Scalar(int64(1)))
	var oob *IndexOutOfBoundsError
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, 0, oob.Dim)
	assert.Equal(t, 1, oob.DimSize)
	assert.Empty(t, oob.Coords)

	_, err = Gather(input, 0, tensor.Scalar(int64(-1)))
	kind, _ := KindOf(err)
	assert.Equal(t, KindNegativeIndex, kind)
}

func TestGather_DoesNotModifyArguments(t *testing.T) {
	input := tensor.MustFromSlice([]int{1, 2, 3, 4}, tensor.Shape{2, 2})
	index := tensor.MustFromSlice([]int64{1, 0, 0, 1}, tensor.Shape{2, 2})
	inBefore, idxBefore := input.Clone(), index.Clone()

	out, err := Gather(input, 1, index)
	require.NoError(t, err)
	out.Set(100, 0, 0)

	assert.True(t, tensor.Equal(inBefore, input))
	assert.True(t, tensor.Equal(idxBefore, index))
}

func TestGather_Float16Elements(t *testing.T) {
	vals := []float16.Float16{float16.Fromfloat32(0.5), float16.Fromfloat32(1.5), float16.Fromfloat32(-2)}
	input := tensor.MustFromSlice(vals, tensor.Shape{3})
	index := tensor.MustFromSlice([]int{2, 2, 0}, tensor.Shape{3})

	out, err := Gather(input, 0, index)
	require.NoError(t, err)
	assert.Equal(t, []float16.Float16{vals[2], vals[2], vals[0]}, out.Data())
	assert.Equal(t, float32(-2), out.At(0).Float32())
}

func TestGather_StructElements(t *testing.T) {
	type pair struct {
		a int
		b string
	}
	input := tensor.MustFromSlice([]pair{{1, "x"}, {2, "y"}}, tensor.Shape{2})

	out, err := Gather(input, 0, tensor.MustFromSlice([]int{1, 1, 0}, tensor.Shape{3}))
	require.NoError(t, err)
	assert.Equal(t, []pair{{2, "y"}, {2, "y"}, {1, "x"}}, out.Data())
}
