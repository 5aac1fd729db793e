package ops

import (
	"math"

	"github.com/x448/float16"

	"github.com/johng149/tensorops/internal/parallel"
	"github.com/johng149/tensorops/internal/tensor"
)

// mapElements applies f to every element of x and returns the results in a new array.
func mapElements[T, U any](x *tensor.Array[T], f func(T) U) *tensor.Array[U] {
	out := tensor.Zeros[U](x.Shape())
	src, dst := x.Data(), out.Data()
	parallel.ForRange(len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = f(src[i])
		}
	}, ParallelConfig())
	return out
}

// Abs returns the element-wise absolute value of x.
func Abs[T tensor.Signed](x *tensor.Array[T]) *tensor.Array[T] {
	return mapElements(x, func(v T) T {
		if v <= 0 {
			return 0 - v
		}
		return v
	})
}

// Sqrt returns the element-wise square root of x. Negative inputs give NaN.
func Sqrt[T tensor.Float](x *tensor.Array[T]) *tensor.Array[T] {
	return mapElements(x, func(v T) T {
		return T(math.Sqrt(float64(v)))
	})
}

// ToFloat16 converts x to half precision, rounding to nearest even.
func ToFloat16(x *tensor.Array[float32]) *tensor.Array[float16.Float16] {
	return mapElements(x, float16.Fromfloat32)
}

// FromFloat16 widens a half-precision array to float32.
func FromFloat16(x *tensor.Array[float16.Float16]) *tensor.Array[float32] {
	return mapElements(x, func(v float16.Float16) float32 {
		return v.Float32()
	})
}
