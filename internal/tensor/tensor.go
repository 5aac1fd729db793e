package tensor

import (
	"fmt"
	"strings"
)

// Array is a dense, row-major, dynamic-rank array of T.
//
// The element count always equals the product of the shape. A rank-0 array
// (empty shape) holds exactly one element; an array with any zero-sized axis
// holds none.
//
// Example:
//
//	a := tensor.MustFromSlice([]float32{1, 2, 3, 4}, Shape{2, 2})
//	v := a.At(1, 0) // 3
type Array[T any] struct {
	data    []T
	shape   Shape
	strides []int
}

// New creates a zero-valued array of the given shape.
func New[T any](shape Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Array[T]{
		data:    make([]T, shape.NumElements()),
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
	}, nil
}

// FromSlice creates an array from a Go slice.
// The slice is copied into the array's memory.
func FromSlice[T any](data []T, shape Shape) (*Array[T], error) {
	a, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	if len(data) != len(a.data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, len(a.data), len(data))
	}
	copy(a.data, data)
	return a, nil
}

// FromOwned creates an array that takes ownership of data without copying.
// The caller must not use data afterwards.
func FromOwned[T any](data []T, shape Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	return &Array[T]{data: data, shape: shape.Clone(), strides: shape.ComputeStrides()}, nil
}

// MustFromSlice is like FromSlice but panics on error.
func MustFromSlice[T any](data []T, shape Shape) *Array[T] {
	a, err := FromSlice(data, shape)
	if err != nil {
		panic(err)
	}
	return a
}

// Scalar creates a rank-0 array holding v.
func Scalar[T any](v T) *Array[T] {
	return &Array[T]{data: []T{v}, shape: Shape{}, strides: []int{}}
}

// Shape returns the array's shape. The result must not be modified.
func (a *Array[T]) Shape() Shape {
	return a.shape
}

// Strides returns the row-major strides. The result must not be modified.
func (a *Array[T]) Strides() []int {
	return a.strides
}

// Rank returns the number of axes.
func (a *Array[T]) Rank() int {
	return len(a.shape)
}

// NumElements returns the total number of elements.
func (a *Array[T]) NumElements() int {
	return len(a.data)
}

// Data returns the underlying row-major storage.
// Modifications to the returned slice modify the array.
func (a *Array[T]) Data() []T {
	return a.data
}

// At returns the element at the given coordinate.
// Panics if the coordinate is out of bounds.
func (a *Array[T]) At(coord ...int) T {
	off, ok := a.shape.Offset(coord)
	if !ok {
		panic(fmt.Sprintf("at: coordinate %v out of bounds for shape %v", coord, a.shape))
	}
	return a.data[off]
}

// Set writes v at the given coordinate.
// Panics if the coordinate is out of bounds.
func (a *Array[T]) Set(v T, coord ...int) {
	off, ok := a.shape.Offset(coord)
	if !ok {
		panic(fmt.Sprintf("set: coordinate %v out of bounds for shape %v", coord, a.shape))
	}
	a.data[off] = v
}

// Get returns the element at coord, or false if coord is not a valid position.
func (a *Array[T]) Get(coord []int) (T, bool) {
	off, ok := a.shape.Offset(coord)
	if !ok {
		var zero T
		return zero, false
	}
	return a.data[off], true
}

// Ptr returns a pointer to the element at coord, or false if coord is not a valid position.
func (a *Array[T]) Ptr(coord []int) (*T, bool) {
	off, ok := a.shape.Offset(coord)
	if !ok {
		return nil, false
	}
	return &a.data[off], true
}

// Item returns the single element of an array with exactly one element.
// Panics otherwise.
func (a *Array[T]) Item() T {
	if len(a.data) != 1 {
		panic(fmt.Sprintf("item: array with shape %v has %d elements, want 1", a.shape, len(a.data)))
	}
	return a.data[0]
}

// Clone creates a deep copy of the array.
func (a *Array[T]) Clone() *Array[T] {
	data := make([]T, len(a.data))
	copy(data, a.data)
	return &Array[T]{data: data, shape: a.shape.Clone(), strides: a.shape.ComputeStrides()}
}

// String returns a human-readable representation of the array.
func (a *Array[T]) String() string {
	var zero T
	var sb strings.Builder
	fmt.Fprintf(&sb, "Array[%T]%v", zero, []int(a.shape))
	if len(a.data) <= 16 {
		fmt.Fprintf(&sb, " %v", a.data)
	}
	return sb.String()
}

// Equal reports whether a and b have the same shape and elements.
func Equal[T comparable](a, b *Array[T]) bool {
	if !a.shape.Equal(b.shape) {
		return false
	}
	for i, v := range a.data {
		if b.data[i] != v {
			return false
		}
	}
	return true
}

// AllClose reports whether a and b have the same shape and every pair of
// elements differs by at most tol. NaNs compare equal to NaNs.
func AllClose[T Float](a, b *Array[T], tol float64) bool {
	if !a.shape.Equal(b.shape) {
		return false
	}
	for i, v := range a.data {
		w := b.data[i]
		if IsNaN(v) || IsNaN(w) {
			if IsNaN(v) != IsNaN(w) {
				return false
			}
			continue
		}
		d := float64(v) - float64(w)
		if d > tol || d < -tol {
			return false
		}
	}
	return true
}
