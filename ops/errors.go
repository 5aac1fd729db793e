// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"github.com/johng149/tensorops/internal/ops"
)

// ErrorKind classifies a gather or scatter failure.
type ErrorKind = ops.ErrorKind

// Gather and scatter failure kinds.
const (
	KindDimensionMismatch        = ops.KindDimensionMismatch
	KindInvalidDimension         = ops.KindInvalidDimension
	KindShapeMismatch            = ops.KindShapeMismatch
	KindTargetTooSmall           = ops.KindTargetTooSmall
	KindIndexSourceShapeMismatch = ops.KindIndexSourceShapeMismatch
	KindIndexOutOfBounds         = ops.KindIndexOutOfBounds
	KindIndexCast                = ops.KindIndexCast
	KindNegativeIndex            = ops.KindNegativeIndex
	KindInternal                 = ops.KindInternal
)

// IndexingError is implemented by every error returned from Gather and Scatter.
type IndexingError = ops.IndexingError

// Typed gather and scatter errors.
type (
	DimensionMismatchError        = ops.DimensionMismatchError
	InvalidDimensionError         = ops.InvalidDimensionError
	ShapeMismatchError            = ops.ShapeMismatchError
	TargetTooSmallError           = ops.TargetTooSmallError
	IndexSourceShapeMismatchError = ops.IndexSourceShapeMismatchError
	IndexOutOfBoundsError         = ops.IndexOutOfBoundsError
	IndexCastError                = ops.IndexCastError
	NegativeIndexError            = ops.NegativeIndexError
	InternalError                 = ops.InternalError
)

// Sentinel errors of the remaining operations.
var (
	ErrIncompatibleShape          = ops.ErrIncompatibleShape
	ErrMultipleInferredDimensions = ops.ErrMultipleInferredDimensions
	ErrEmptyInput                 = ops.ErrEmptyInput
	ErrZeroDimSize                = ops.ErrZeroDimSize
	ErrInvalidAxis                = ops.ErrInvalidAxis
	ErrInvalidEquation            = ops.ErrInvalidEquation
	ErrOperandMismatch            = ops.ErrOperandMismatch
)

// KindOf returns the kind of the first gather or scatter error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	return ops.KindOf(err)
}
