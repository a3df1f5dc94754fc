package expr

// Equivalent reports whether two trees denote the same solution.
// Beyond structural equality it accepts commuted operands for Add and
// Multiply, and treats degenerate identity/absorbing forms as equal
// regardless of the uninvolved operand: 1^a and 1^b say nothing
// different, and likewise x^0, x/1, 0/x and 0*x.
func Equivalent(a, b *Evaluated) bool {
	if a.IsLeaf() || b.IsLeaf() {
		return a.IsLeaf() && b.IsLeaf() && a.value == b.value
	}
	if a.op != b.op {
		return false
	}

	same := Equivalent(a.left, b.left) && Equivalent(a.right, b.right)
	if IsCommutative(a.op) {
		same = same || (Equivalent(a.left, b.right) && Equivalent(a.right, b.left))
	}

	switch a.op {
	case Power:
		if a.left.value == 1 && b.left.value == 1 {
			same = true
		}
		if a.right.value == 0 && b.right.value == 0 {
			same = true
		}
	case Divide:
		if a.right.value == 1 && b.right.value == 1 {
			same = true
		}
		if a.left.value == 0 && b.left.value == 0 {
			same = true
		}
	case Multiply:
		if a.left.value == 0 && b.left.value == 0 {
			same = true
		}
		if a.right.value == 0 && b.right.value == 0 {
			same = true
		}
	}

	return same
}
