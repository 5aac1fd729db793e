package tensor

import "iter"

// NormalizeAxis resolves a possibly negative axis selector against rank.
//
// Non-negative selectors must be < rank. Negative selectors count from the end,
// so -1 is the last axis and -rank the first. ok is false for anything else,
// including every selector when rank is 0.
func NormalizeAxis(axis, rank int) (resolved int, ok bool) {
	if axis < 0 {
		axis += rank
	}
	if axis < 0 || axis >= rank {
		return 0, false
	}
	return axis, true
}

// Coords iterates over every coordinate of the shape in row-major order, yielding
// the flat row-major offset together with the coordinate.
//
// The coordinate slice is reused between iterations; copy it to retain it.
// A shape with zero elements yields nothing and a scalar yields one empty coordinate.
func (s Shape) Coords() iter.Seq2[int, []int] {
	return func(yield func(int, []int) bool) {
		n := s.NumElements()
		coord := make([]int, len(s))
		for flat := 0; flat < n; flat++ {
			if !yield(flat, coord) {
				return
			}
			for d := len(s) - 1; d >= 0; d-- {
				coord[d]++
				if coord[d] < s[d] {
					break
				}
				coord[d] = 0
			}
		}
	}
}

// Offset returns the row-major flat offset of coord.
// ok is false when coord has the wrong length or any component is out of bounds.
func (s Shape) Offset(coord []int) (offset int, ok bool) {
	if len(coord) != len(s) {
		return 0, false
	}
	stride := 1
	for d := len(s) - 1; d >= 0; d-- {
		c := coord[d]
		if c < 0 || c >= s[d] {
			return 0, false
		}
		offset += c * stride
		stride *= s[d]
	}
	return offset, true
}

// Unravel converts a row-major flat offset into a coordinate, writing into dst
// when it has enough capacity. flat must be < s.NumElements().
func (s Shape) Unravel(flat int, dst []int) []int {
	if cap(dst) < len(s) {
		dst = make([]int, len(s))
	}
	dst = dst[:len(s)]
	for d := len(s) - 1; d >= 0; d-- {
		if s[d] == 0 {
			dst[d] = 0
			continue
		}
		dst[d] = flat % s[d]
		flat /= s[d]
	}
	return dst
}

// ReplaceAxis copies src into dst and overwrites the component at axis with value.
// dst and src must have the same length.
func ReplaceAxis(dst, src []int, axis, value int) {
	copy(dst, src)
	dst[axis] = value
}
