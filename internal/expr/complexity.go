package expr

// Complexity costs, tuned so that parenthesization weighs as much as
// an extra number and heavier operators scale the whole subtree.
const (
	leafCost     = 10
	parenPenalty = 10
)

// Complexity assigns a ranking cost to the tree. Additive operators
// pass their operand costs through, multiplicative operators double
// them and Power quintuples them; operands that would render inside
// parentheses carry a fixed penalty. Lower ranks first.
func Complexity(e *Evaluated) int {
	if e.IsLeaf() {
		return leafCost
	}
	cost := complexityIn(e.left, e.op, true) + complexityIn(e.right, e.op, false)
	switch e.op {
	case Multiply, Divide:
		return cost * 2
	case Power:
		return cost * 5
	}
	return cost
}

// complexityIn costs a child in the context of its parent, adding the
// parenthesization penalty exactly when the renderer would emit
// parentheses around it.
func complexityIn(e *Evaluated, parent Kind, isLeft bool) int {
	if e.IsLeaf() {
		return leafCost
	}
	cost := Complexity(e)
	if needsParens(e.op, parent, isLeft) {
		cost += parenPenalty
	}
	return cost
}
