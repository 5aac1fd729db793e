package tensor

import (
	"math/rand"
)

// Zeros creates an array filled with zeros.
// Panics if the shape has a negative dimension.
//
// Example:
//
//	a := tensor.Zeros[float32](Shape{3, 4})
func Zeros[T any](shape Shape) *Array[T] {
	a, err := New[T](shape)
	if err != nil {
		panic(err)
	}
	return a
}

// Ones creates an array filled with ones.
//
// Example:
//
//	a := tensor.Ones[float64](Shape{2, 3})
func Ones[T Numeric](shape Shape) *Array[T] {
	return Full(shape, T(1))
}

// Full creates an array filled with a specific value.
func Full[T any](shape Shape, value T) *Array[T] {
	a := Zeros[T](shape)
	for i := range a.data {
		a.data[i] = value
	}
	return a
}

// ZerosLike creates a zero-filled array with the same shape as a.
func ZerosLike[T any](a *Array[T]) *Array[T] {
	return Zeros[T](a.shape)
}

// OnesLike creates an array of ones with the same shape as a.
func OnesLike[T Numeric](a *Array[T]) *Array[T] {
	return Ones[T](a.shape)
}

// Arange creates a 1-D array with values [start, start+1, ..., end-1].
//
// Example:
//
//	a := tensor.Arange[int64](0, 5) // [0, 1, 2, 3, 4]
func Arange[T Numeric](start, end T) *Array[T] {
	n := 0
	if end > start {
		n = int(end - start)
	}
	a := Zeros[T](Shape{n})
	for i := range a.data {
		a.data[i] = start + T(i)
	}
	return a
}

// Rand creates an array with values uniformly distributed in [0, 1).
func Rand[T Float](shape Shape, rng *rand.Rand) *Array[T] {
	a := Zeros[T](shape)
	for i := range a.data {
		a.data[i] = T(rng.Float64())
	}
	return a
}

// Randn creates an array with values from the standard normal distribution.
func Randn[T Float](shape Shape, rng *rand.Rand) *Array[T] {
	a := Zeros[T](shape)
	for i := range a.data {
		a.data[i] = T(rng.NormFloat64())
	}
	return a
}
