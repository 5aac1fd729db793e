package ops

import (
	"fmt"
	"math"
	"reflect"
	"slices"

	"github.com/johng149/tensorops/internal/tensor"
)

// maxOffset is the first float64 value that no longer fits in an int.
const maxOffset = float64(math.MaxInt)

// indexReader turns index elements into offsets along the selected axis.
// Each element is checked for sign, then converted, then bounds checked.
type indexReader[Ix tensor.Index] struct {
	op      string
	isFloat bool
}

func newIndexReader[Ix tensor.Index](op string) indexReader[Ix] {
	k := reflect.TypeFor[Ix]().Kind()
	return indexReader[Ix]{op: op, isFloat: k == reflect.Float32 || k == reflect.Float64}
}

// offset validates v, found at coord in the index array, against an axis of size dimSize.
func (r indexReader[Ix]) offset(coord []int, v Ix, axis, dimSize int) (int, error) {
	if v < 0 {
		return 0, &NegativeIndexError{Op: r.op, Coords: slices.Clone(coord), Value: v}
	}
	off, ok := r.cast(v)
	if !ok {
		return 0, &IndexCastError{Op: r.op, Coords: slices.Clone(coord), Value: v}
	}
	if off >= dimSize {
		return 0, &IndexOutOfBoundsError{Op: r.op, Coords: slices.Clone(coord), Value: v, Dim: axis, DimSize: dimSize}
	}
	return off, nil
}

// cast converts a non-negative index value to int.
// Floats must be finite and integral; every value must fit in an int.
func (r indexReader[Ix]) cast(v Ix) (int, bool) {
	if r.isFloat {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f < 0 || f >= maxOffset {
			return 0, false
		}
		return int(f), true
	}
	if v < 0 {
		return 0, false
	}
	u := uint64(v)
	if u > math.MaxInt {
		return 0, false
	}
	return int(u), true
}

// resolveAxis normalizes axis for an operand of the given rank.
func resolveAxis(op string, axis, rank int) (int, error) {
	a, ok := tensor.NormalizeAxis(axis, rank)
	if !ok {
		return 0, &InvalidDimensionError{Op: op, Dim: axis, Rank: rank}
	}
	return a, nil
}

// slots is a write-once output buffer filled in row-major order.
// Building the array fails unless every slot was written exactly once.
type slots[T any] struct {
	op     string
	shape  tensor.Shape
	data   []T
	filled int
}

func newSlots[T any](op string, shape tensor.Shape) *slots[T] {
	return &slots[T]{op: op, shape: shape, data: make([]T, shape.NumElements())}
}

func (s *slots[T]) put(flat int, v T) error {
	if flat != s.filled || flat >= len(s.data) {
		return &InternalError{Op: s.op, Message: fmt.Sprintf("output slot %d written out of order (next %d of %d)", flat, s.filled, len(s.data))}
	}
	s.data[flat] = v
	s.filled++
	return nil
}

func (s *slots[T]) build() (*tensor.Array[T], error) {
	if s.filled != len(s.data) {
		return nil, &InternalError{Op: s.op, Message: fmt.Sprintf("only %d of %d output slots were written", s.filled, len(s.data))}
	}
	out, err := tensor.FromOwned(s.data, s.shape)
	if err != nil {
		return nil, &InternalError{Op: s.op, Message: err.Error()}
	}
	return out, nil
}
