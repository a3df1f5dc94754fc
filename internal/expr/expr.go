// Package expr implements the arithmetic expression tree the solver
// searches over: validated construction, cached evaluation, ranking,
// algebraic equivalence, complexity scoring and infix rendering.
package expr

// Kind identifies one of the five binary operators.
type Kind int

const (
	Add Kind = iota
	Subtract
	Multiply
	Divide
	Power
)

// String returns the operator symbol used in rendered expressions.
func (k Kind) String() string {
	switch k {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	case Power:
		return "^"
	}
	return "?"
}

// Rules controls the pruning applied during validated construction.
// Hard validity (division by zero, inexact quotients, negative or
// overflowing exponents) is always enforced; Rules only covers forms
// that are mathematically fine but redundant for solution listing.
type Rules struct {
	// PruneStyle rejects redundant-but-valid combinations: subtracting
	// zero or producing a negative difference, dividing by one or
	// dividing zero, and raising to the power of one. Each has a
	// simpler equivalent the generator produces anyway.
	PruneStyle bool
}

// DefaultRules returns the rule set used by the solver unless
// configured otherwise.
func DefaultRules() Rules {
	return Rules{PruneStyle: true}
}

// Evaluated is an expression tree node paired with its cached integer
// value. A node with nil children is a leaf holding one input number;
// otherwise it applies op to the two subtrees. Trees are strictly
// owned: nodes are never shared between expressions.
type Evaluated struct {
	// value caches the recursive evaluation of this subtree
	value int64
	// op is the operator, meaningful only for non-leaf nodes
	op Kind
	// left and right are both nil for leaves, both non-nil otherwise
	left  *Evaluated
	right *Evaluated
}

// NewLeaf lifts an input number into a leaf expression.
func NewLeaf(v int64) *Evaluated {
	return &Evaluated{value: v}
}

// NewOp combines two evaluated subtrees with an operator, applying the
// validity rules. It returns nil, false when the combination is
// rejected; a returned node always carries a correct value cache.
func NewOp(op Kind, left, right *Evaluated, rules Rules) (*Evaluated, bool) {
	lv, rv := left.value, right.value

	switch op {
	case Divide:
		if rv == 0 || lv%rv != 0 {
			return nil, false
		}
		if rules.PruneStyle {
			// 0/x duplicates 0*x, x/1 duplicates the plain operand
			if lv == 0 || rv == 1 {
				return nil, false
			}
		}
	case Subtract:
		if rules.PruneStyle {
			if lv < rv || rv == 0 {
				return nil, false
			}
		}
	case Power:
		if rv < 0 {
			return nil, false
		}
		if rules.PruneStyle && rv == 1 {
			return nil, false
		}
		if _, ok := checkedPow(lv, rv); !ok {
			return nil, false
		}
	}

	return Join(op, left, right), true
}

// Join builds an operator node without validity checks, recomputing
// the value cache from the children. The canonicalizer uses it to
// relink subtrees during rewrites; callers must only join operand
// pairs whose combination is already known to be evaluable.
func Join(op Kind, left, right *Evaluated) *Evaluated {
	return &Evaluated{
		value: apply(op, left.value, right.value),
		op:    op,
		left:  left,
		right: right,
	}
}

// Value returns the cached evaluation of the subtree.
func (e *Evaluated) Value() int64 { return e.value }

// Op returns the node's operator. Meaningless for leaves.
func (e *Evaluated) Op() Kind { return e.op }

// Left returns the left operand, nil for leaves.
func (e *Evaluated) Left() *Evaluated { return e.left }

// Right returns the right operand, nil for leaves.
func (e *Evaluated) Right() *Evaluated { return e.right }

// IsLeaf reports whether the node holds a plain input number.
func (e *Evaluated) IsLeaf() bool { return e.left == nil }

// Depth returns the height of the subtree; leaves have depth 1.
func (e *Evaluated) Depth() int {
	if e.IsLeaf() {
		return 1
	}
	ld, rd := e.left.Depth(), e.right.Depth()
	if ld > rd {
		return ld + 1
	}
	return rd + 1
}

// Compare ranks two subtrees for canonical ordering. Leaves rank
// below operator nodes; two leaves compare by value; two operator
// nodes compare by depth, then by evaluated value. Returns a negative,
// zero or positive result in the usual cmp convention.
func Compare(a, b *Evaluated) int {
	switch {
	case a.IsLeaf() && b.IsLeaf():
		return cmpInt64(a.value, b.value)
	case a.IsLeaf():
		return -1
	case b.IsLeaf():
		return 1
	}
	if d := a.Depth() - b.Depth(); d != 0 {
		return d
	}
	return cmpInt64(a.value, b.value)
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// apply evaluates a single operator over already-evaluated operands.
// Divide and Power preconditions are guaranteed by construction.
func apply(op Kind, l, r int64) int64 {
	switch op {
	case Add:
		return l + r
	case Subtract:
		return l - r
	case Multiply:
		return l * r
	case Divide:
		return l / r
	case Power:
		v, _ := checkedPow(l, r)
		return v
	}
	return 0
}

// checkedPow computes l**r for r >= 0, reporting false when the result
// would leave the int64 range.
func checkedPow(base, exp int64) (int64, bool) {
	if exp < 0 {
		return 0, false
	}
	switch base {
	case 0:
		if exp == 0 {
			return 1, true
		}
		return 0, true
	case 1:
		return 1, true
	case -1:
		if exp%2 == 0 {
			return 1, true
		}
		return -1, true
	}
	// |base| >= 2, so anything past 62 squarings is already out of range
	if exp > 62 {
		return 0, false
	}
	result := int64(1)
	for i := int64(0); i < exp; i++ {
		next := result * base
		if next/base != result {
			return 0, false
		}
		result = next
	}
	return result, true
}
