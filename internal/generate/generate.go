// Package generate enumerates every binary expression over an ordered
// integer sequence. Leaves keep their input order; only the split
// points and operators vary.
package generate

import (
	"iter"
	"slices"

	"github.com/numseq/go-maketen/internal/expr"
)

// operators is the combination order tried at every split.
var operators = [...]expr.Kind{
	expr.Add,
	expr.Subtract,
	expr.Multiply,
	expr.Divide,
	expr.Power,
}

// Expressions returns a lazy, single-pass sequence of every valid
// expression consuming all of nums in order. Combinations rejected by
// the construction rules are dropped silently. The sequence is
// finite; an empty input yields nothing.
//
// At each split the candidates for the smaller side are materialized
// once and the larger side is streamed, so peak memory follows the
// smaller partition's candidate count rather than the cross product.
func Expressions(nums []int64, rules expr.Rules) iter.Seq[*expr.Evaluated] {
	return func(yield func(*expr.Evaluated) bool) {
		emit(nums, rules, yield)
	}
}

// emit recursively produces candidates for nums, reporting false as
// soon as the consumer stops taking values.
func emit(nums []int64, rules expr.Rules, yield func(*expr.Evaluated) bool) bool {
	if len(nums) == 0 {
		return true
	}
	if len(nums) == 1 {
		return yield(expr.NewLeaf(nums[0]))
	}

	for i := 1; i < len(nums); i++ {
		// The collected side is always the smaller slice; the side
		// streamed once is the larger. Swapping prefix and suffix here
		// is safe because both orientations of the order-sensitive
		// operators are emitted below.
		small, large := nums[:i], nums[i:]
		if i >= len(nums)/2 {
			small, large = large, small
		}

		collected := slices.Collect(Expressions(small, rules))

		stop := false
		for partner := range Expressions(large, rules) {
			for _, held := range collected {
				for _, op := range operators {
					if combined, ok := expr.NewOp(op, held, partner, rules); ok {
						if !yield(combined) {
							stop = true
							break
						}
					}
					// Orientation only matters for the non-commutative
					// operators, and the flipped pair of two equal
					// values would just duplicate the first.
					if expr.IsCommutative(op) || held.Value() == partner.Value() {
						continue
					}
					if combined, ok := expr.NewOp(op, partner, held, rules); ok {
						if !yield(combined) {
							stop = true
							break
						}
					}
				}
				if stop {
					break
				}
			}
			if stop {
				break
			}
		}
		if stop {
			return false
		}
	}
	return true
}
