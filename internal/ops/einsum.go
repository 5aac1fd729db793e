package ops

import (
	"slices"
	"strings"

	"github.com/pkg/errors"

	"github.com/johng149/tensorops/internal/parallel"
	"github.com/johng149/tensorops/internal/tensor"
)

// einsumPlan describes one contraction: output labels first, then summed labels.
type einsumPlan struct {
	labels   []byte
	sizes    []int
	numOut   int
	strides  [][]int // per operand, per label: sum of strides of the axes carrying it
	outShape tensor.Shape
}

// Einsum evaluates an Einstein summation over operands.
//
// Labels are single ASCII letters, one per axis. In the explicit form
// ("ij,jk->ik") the output lists its labels after "->"; in the implicit form
// ("ij,jk") the output holds every label used exactly once, in alphabetical order.
// Labels missing from the output are summed over. A label repeated within one
// operand selects its diagonal.
//
// Example:
//
//	out, err := Einsum("bfmd,bfd->bfm", memories, query)
func Einsum[T tensor.Numeric](equation string, operands ...*tensor.Array[T]) (*tensor.Array[T], error) {
	shapes := make([]tensor.Shape, len(operands))
	for i, op := range operands {
		shapes[i] = op.Shape()
	}
	plan, err := planEinsum(equation, shapes)
	if err != nil {
		return nil, err
	}

	data := make([][]T, len(operands))
	for i, op := range operands {
		data[i] = op.Data()
	}

	out := tensor.Zeros[T](plan.outShape)
	dst := out.Data()
	sumShape := tensor.Shape(plan.sizes[plan.numOut:])
	nSum := sumShape.NumElements()

	parallel.ForRange(len(dst), func(start, end int) {
		idx := make([]int, len(plan.labels))
		for o := start; o < end; o++ {
			plan.outShape.Unravel(o, idx[:plan.numOut])
			var acc T
			for s := range nSum {
				sumShape.Unravel(s, idx[plan.numOut:])
				prod := T(1)
				for k, src := range data {
					off := 0
					for l, st := range plan.strides[k] {
						off += idx[l] * st
					}
					prod *= src[off]
				}
				acc += prod
			}
			dst[o] = acc
		}
	}, ParallelConfig())

	return out, nil
}

func planEinsum(equation string, shapes []tensor.Shape) (*einsumPlan, error) {
	eq := strings.ReplaceAll(equation, " ", "")
	lhs, rhs, explicit := strings.Cut(eq, "->")
	if strings.Contains(rhs, "->") {
		return nil, errors.Wrapf(ErrInvalidEquation, "%q: more than one '->'", equation)
	}
	if strings.Contains(eq, ".") {
		return nil, errors.Wrapf(ErrInvalidEquation, "%q: ellipsis is not supported", equation)
	}

	inputs := strings.Split(lhs, ",")
	if len(inputs) != len(shapes) {
		return nil, errors.Wrapf(ErrOperandMismatch, "%q names %d operands, got %d", equation, len(inputs), len(shapes))
	}

	size := map[byte]int{}
	count := map[byte]int{}
	for i, term := range inputs {
		if len(term) != len(shapes[i]) {
			return nil, errors.Wrapf(ErrOperandMismatch, "%q: operand %d has rank %d, term %q has %d labels",
				equation, i, len(shapes[i]), term, len(term))
		}
		for j := 0; j < len(term); j++ {
			c := term[j]
			if !isLabel(c) {
				return nil, errors.Wrapf(ErrInvalidEquation, "%q: invalid label %q", equation, c)
			}
			if s, seen := size[c]; seen && s != shapes[i][j] {
				return nil, errors.Wrapf(ErrOperandMismatch, "%q: label %q has sizes %d and %d", equation, c, s, shapes[i][j])
			}
			size[c] = shapes[i][j]
			count[c]++
		}
	}

	var outLabels []byte
	if explicit {
		for j := 0; j < len(rhs); j++ {
			c := rhs[j]
			if !isLabel(c) {
				return nil, errors.Wrapf(ErrInvalidEquation, "%q: invalid output label %q", equation, c)
			}
			if _, ok := size[c]; !ok {
				return nil, errors.Wrapf(ErrInvalidEquation, "%q: output label %q does not appear in any input", equation, c)
			}
			if slices.Contains(outLabels, c) {
				return nil, errors.Wrapf(ErrInvalidEquation, "%q: output label %q repeated", equation, c)
			}
			outLabels = append(outLabels, c)
		}
	} else {
		for c, n := range count {
			if n == 1 {
				outLabels = append(outLabels, c)
			}
		}
		slices.Sort(outLabels)
	}

	plan := &einsumPlan{numOut: len(outLabels)}
	plan.labels = append(plan.labels, outLabels...)
	var summed []byte
	for c := range size {
		if !slices.Contains(outLabels, c) {
			summed = append(summed, c)
		}
	}
	slices.Sort(summed)
	plan.labels = append(plan.labels, summed...)

	pos := make(map[byte]int, len(plan.labels))
	for i, c := range plan.labels {
		pos[c] = i
		plan.sizes = append(plan.sizes, size[c])
	}
	plan.outShape = tensor.Shape(slices.Clone(plan.sizes[:plan.numOut]))

	plan.strides = make([][]int, len(shapes))
	for i, term := range inputs {
		st := make([]int, len(plan.labels))
		axisStrides := shapes[i].ComputeStrides()
		for j := 0; j < len(term); j++ {
			st[pos[term[j]]] += axisStrides[j]
		}
		plan.strides[i] = st
	}
	return plan, nil
}

func isLabel(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
