package ops

import (
	"github.com/pkg/errors"

	"github.com/johng149/tensorops/internal/tensor"
)

// RearrangeBatchMemsFlag reorders a [batch, mems, flag] array into [mems, batch*flag],
// the einops pattern "batch mems flag -> mems (batch flag)".
func RearrangeBatchMemsFlag[T any](x *tensor.Array[T]) (*tensor.Array[T], error) {
	if x.Rank() != 3 {
		return nil, errors.Wrapf(ErrIncompatibleShape, "rearrange: want rank 3 [batch mems flag], got shape %v", []int(x.Shape()))
	}
	shape := x.Shape()
	batch, mems, flag := shape[0], shape[1], shape[2]

	t, err := Transpose(x, 0, 1)
	if err != nil {
		return nil, err
	}
	return Reshape(t, []int{mems, batch * flag})
}
