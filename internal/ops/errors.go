package ops

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	opGather  = "gather"
	opScatter = "scatter"
)

// ErrorKind classifies a gather or scatter failure.
type ErrorKind int

// Gather and scatter failure kinds.
const (
	KindDimensionMismatch ErrorKind = iota + 1
	KindInvalidDimension
	KindShapeMismatch
	KindTargetTooSmall
	KindIndexSourceShapeMismatch
	KindIndexOutOfBounds
	KindIndexCast
	KindNegativeIndex
	KindInternal
)

var kindNames = map[ErrorKind]string{
	KindDimensionMismatch:        "DimensionMismatch",
	KindInvalidDimension:         "InvalidDimension",
	KindShapeMismatch:            "ShapeMismatch",
	KindTargetTooSmall:           "TargetTooSmall",
	KindIndexSourceShapeMismatch: "IndexSourceShapeMismatch",
	KindIndexOutOfBounds:         "IndexOutOfBounds",
	KindIndexCast:                "IndexCast",
	KindNegativeIndex:            "NegativeIndex",
	KindInternal:                 "Internal",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// IndexingError is implemented by every error returned from Gather and Scatter.
type IndexingError interface {
	error
	Kind() ErrorKind
}

// KindOf returns the kind of the first IndexingError in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var ie IndexingError
	if errors.As(err, &ie) {
		return ie.Kind(), true
	}
	return 0, false
}

// DimensionMismatchError reports operands of different ranks.
// Ranks holds (input, index) for gather and (target, index, source) for scatter.
type DimensionMismatchError struct {
	Op    string
	Ranks []int
}

func (e *DimensionMismatchError) Error() string {
	if len(e.Ranks) == 3 {
		return fmt.Sprintf("%s: target, index and source must have the same rank (target: %d, index: %d, source: %d)",
			e.Op, e.Ranks[0], e.Ranks[1], e.Ranks[2])
	}
	return fmt.Sprintf("%s: input and index must have the same rank (ranks: %v)", e.Op, e.Ranks)
}

// Kind implements IndexingError.
func (e *DimensionMismatchError) Kind() ErrorKind { return KindDimensionMismatch }

// InvalidDimensionError reports an axis selector outside [-Rank, Rank).
type InvalidDimensionError struct {
	Op   string
	Dim  int
	Rank int
}

func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("%s: dimension %d is out of range for an array of rank %d", e.Op, e.Dim, e.Rank)
}

// Kind implements IndexingError.
func (e *InvalidDimensionError) Kind() ErrorKind { return KindInvalidDimension }

// ShapeMismatchError reports a gather index larger than the input along a non-selected axis.
type ShapeMismatchError struct {
	Axis      int
	InputSize int
	IndexSize int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("gather: index size %d exceeds input size %d at dimension %d", e.IndexSize, e.InputSize, e.Axis)
}

// Kind implements IndexingError.
func (e *ShapeMismatchError) Kind() ErrorKind { return KindShapeMismatch }

// TargetTooSmallError reports a scatter index larger than the target along a non-selected axis.
type TargetTooSmallError struct {
	Axis       int
	TargetSize int
	IndexSize  int
}

func (e *TargetTooSmallError) Error() string {
	return fmt.Sprintf("scatter: target size %d is smaller than index size %d at dimension %d", e.TargetSize, e.IndexSize, e.Axis)
}

// Kind implements IndexingError.
func (e *TargetTooSmallError) Kind() ErrorKind { return KindTargetTooSmall }

// IndexSourceShapeMismatchError reports scatter index and source arrays of different shapes.
type IndexSourceShapeMismatchError struct {
	IndexShape  []int
	SourceShape []int
}

func (e *IndexSourceShapeMismatchError) Error() string {
	return fmt.Sprintf("scatter: index shape %v and source shape %v must match", e.IndexShape, e.SourceShape)
}

// Kind implements IndexingError.
func (e *IndexSourceShapeMismatchError) Kind() ErrorKind { return KindIndexSourceShapeMismatch }

// IndexOutOfBoundsError reports an index value >= the size of the selected axis.
type IndexOutOfBoundsError struct {
	Op      string
	Coords  []int
	Value   any
	Dim     int
	DimSize int
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("%s: index %v at position %v is out of bounds for dimension %d with size %d",
		e.Op, e.Value, e.Coords, e.Dim, e.DimSize)
}

// Kind implements IndexingError.
func (e *IndexOutOfBoundsError) Kind() ErrorKind { return KindIndexOutOfBounds }

// IndexCastError reports an index value that is not a representable non-negative integer.
type IndexCastError struct {
	Op     string
	Coords []int
	Value  any
}

func (e *IndexCastError) Error() string {
	return fmt.Sprintf("%s: index %v at position %v cannot be used as an offset", e.Op, e.Value, e.Coords)
}

// Kind implements IndexingError.
func (e *IndexCastError) Kind() ErrorKind { return KindIndexCast }

// NegativeIndexError reports a negative index value.
type NegativeIndexError struct {
	Op     string
	Coords []int
	Value  any
}

func (e *NegativeIndexError) Error() string {
	return fmt.Sprintf("%s: negative index %v at position %v", e.Op, e.Value, e.Coords)
}

// Kind implements IndexingError.
func (e *NegativeIndexError) Kind() ErrorKind { return KindNegativeIndex }

// InternalError signals a broken internal invariant. It is never expected in practice.
type InternalError struct {
	Op      string
	Message string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%s: internal error: %s", e.Op, e.Message)
}

// Kind implements IndexingError.
func (e *InternalError) Kind() ErrorKind { return KindInternal }

// Errors returned by the array operations other than gather and scatter.
var (
	ErrIncompatibleShape          = errors.New("ops: incompatible shape")
	ErrMultipleInferredDimensions = errors.New("ops: only one dimension can be inferred")
	ErrEmptyInput                 = errors.New("ops: empty input")
	ErrZeroDimSize                = errors.New("ops: reduction over a zero-sized dimension")
	ErrInvalidAxis                = errors.New("ops: invalid axis")
	ErrInvalidEquation            = errors.New("ops: invalid einsum equation")
	ErrOperandMismatch            = errors.New("ops: einsum operands do not match equation")
)
