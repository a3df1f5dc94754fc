// Package canon normalizes expression trees so that algebraically
// equivalent candidates converge toward one shape before the solver's
// explicit equivalence scan. It repeatedly applies a fixed set of
// local rewrites until a full pass over the tree changes nothing.
package canon

import (
	"errors"
	"fmt"

	"github.com/numseq/go-maketen/internal/expr"
)

// DefaultMaxPasses bounds the convergence loop. The rule set settles
// within a handful of passes on everything observed; hitting the cap
// indicates a rule-interaction bug, not a hard input.
const DefaultMaxPasses = 64

// ErrNoFixpoint is returned when the rewrite loop exhausts its pass
// budget without converging.
var ErrNoFixpoint = errors.New("canon: rewrite rules did not reach a fixpoint")

// Canonicalize rewrites e to its canonical form and returns it along
// with the number of full passes performed. maxPasses <= 0 selects
// DefaultMaxPasses. Rewrites never change the evaluated value.
func Canonicalize(e *expr.Evaluated, maxPasses int) (*expr.Evaluated, int, error) {
	if maxPasses <= 0 {
		maxPasses = DefaultMaxPasses
	}
	for pass := 1; pass <= maxPasses; pass++ {
		rewritten, changed := rewrite(e)
		if !changed {
			return rewritten, pass, nil
		}
		e = rewritten
	}
	return nil, maxPasses, fmt.Errorf("%w after %d passes over %q", ErrNoFixpoint, maxPasses, e.String())
}

// rewrite canonicalizes children first, then applies the rules in
// order at the current node. It returns the (possibly new) subtree
// and whether anything fired; an unchanged subtree is returned as-is.
func rewrite(e *expr.Evaluated) (*expr.Evaluated, bool) {
	if e.IsLeaf() {
		return e, false
	}

	left, changedLeft := rewrite(e.Left())
	right, changedRight := rewrite(e.Right())
	op := e.Op()
	changed := changedLeft || changedRight

	// Rule 1, commutative sort: the higher-ranked operand of Add and
	// Multiply goes left.
	if expr.IsCommutative(op) && expr.Compare(left, right) < 0 {
		left, right = right, left
		changed = true
	}

	// Rule 2, left reverse-lift: (a - x) + y becomes (a + y) - x,
	// moving the inverse operator to the outer node.
	if expr.IsCommutative(op) && !left.IsLeaf() && expr.AreReverse(left.Op(), op) {
		a, x := left.Left(), left.Right()
		left = expr.Join(op, a, right)
		right = x
		op = expr.ReverseOf(op)
		changed = true
	}

	// Rule 3, right reverse-lift: y + (a - x) becomes (y + a) - x.
	if expr.IsCommutative(op) && !right.IsLeaf() && expr.AreReverse(right.Op(), op) {
		a, x := right.Left(), right.Right()
		left = expr.Join(op, left, a)
		right = x
		op = expr.ReverseOf(op)
		changed = true
	}

	// Rule 4, right same-reverse fold: a - (b + c) becomes (a - c) - b.
	if isInverse(op) && !right.IsLeaf() && expr.AreReverse(op, right.Op()) {
		b, c := right.Left(), right.Right()
		left = expr.Join(op, left, c)
		right = b
		changed = true
	}

	// Rule 5, right same-operator fold: a - (b - c) becomes (a + c) - b.
	if isInverse(op) && !right.IsLeaf() && right.Op() == op {
		b, c := right.Left(), right.Right()
		left = expr.Join(expr.ReverseOf(op), left, c)
		right = b
		changed = true
	}

	// Rule 6, chained operand ordering: in (a + x) + y, keep x and y
	// ranked so the chain reads deterministically.
	if !left.IsLeaf() && left.Op() == op && expr.Compare(left.Right(), right) < 0 {
		left, right = expr.Join(op, left.Left(), right), left.Right()
		changed = true
	}

	// Rule 7, reverse tie-break: as rule 6 across an inverse pair like
	// (a + x) - y, but only when x and y evaluate equal, so the swap
	// cannot change the value.
	if !left.IsLeaf() && expr.AreReverse(left.Op(), op) &&
		left.Right().Value() == right.Value() && expr.Compare(left.Right(), right) < 0 {
		left, right = expr.Join(left.Op(), left.Left(), right), left.Right()
		changed = true
	}

	if !changed {
		return e, false
	}
	return expr.Join(op, left, right), true
}

// isInverse reports whether op is one of the subtractive operators
// rules 4 and 5 apply to.
func isInverse(op expr.Kind) bool {
	return op == expr.Subtract || op == expr.Divide
}
