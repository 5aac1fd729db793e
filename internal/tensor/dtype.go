// Package tensor provides the dynamic-rank array type and coordinate model for tensorops.
package tensor

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Numeric is a constraint for element types that support arithmetic.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Index is a constraint for element types that can address a position along an axis.
//
// Every integer and floating-point type qualifies. A value is only usable as a
// coordinate when it is non-negative, integral, and fits in an int.
type Index interface {
	Numeric
}

// Signed is a constraint for numeric types that carry a sign.
type Signed interface {
	constraints.Signed | constraints.Float
}

// Float is a constraint for floating-point element types.
type Float interface {
	constraints.Float
}

// Ordered is a constraint for element types with a total order (floats: except NaN).
type Ordered interface {
	cmp.Ordered
}

// IsNaN reports whether v is a floating-point NaN. Always false for other types.
func IsNaN[T Ordered](v T) bool {
	return v != v
}
