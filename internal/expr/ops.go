package expr

// precedence maps operators to binding strength, tightest highest.
var precedence = map[Kind]int{
	Add:      1,
	Subtract: 1,
	Multiply: 2,
	Divide:   2,
	Power:    3,
}

// reverse maps each operator to its inverse within the same
// precedence level. Power has no inverse here.
var reverse = map[Kind]Kind{
	Add:      Subtract,
	Subtract: Add,
	Multiply: Divide,
	Divide:   Multiply,
}

// commutative marks the operators whose operands may be swapped
// without changing the value.
var commutative = map[Kind]bool{
	Add:      true,
	Multiply: true,
}

// IsCommutative reports whether op's operands are interchangeable.
func IsCommutative(op Kind) bool { return commutative[op] }

// ReverseOf returns the inverse operator for op. It must not be
// called with Power, which has no inverse in this operator set.
func ReverseOf(op Kind) Kind {
	r, ok := reverse[op]
	if !ok {
		panic("expr: no reverse operation for " + op.String())
	}
	return r
}

// AreReverse reports whether a and b are an inverse pair on the same
// precedence level, such as Add/Subtract or Multiply/Divide.
func AreReverse(a, b Kind) bool {
	r, ok := reverse[a]
	return ok && r == b
}

// BindsLooser reports whether child binds more loosely than parent,
// meaning a child subtree with that operator needs parentheses.
func BindsLooser(child, parent Kind) bool {
	return precedence[child] < precedence[parent]
}
