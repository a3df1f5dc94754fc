package expr

import (
	"strconv"
	"strings"
)

// String renders the expression as an unambiguous infix string.
func (e *Evaluated) String() string {
	var b strings.Builder
	e.render(&b)
	return b.String()
}

func (e *Evaluated) render(b *strings.Builder) {
	if e.IsLeaf() {
		b.WriteString(strconv.FormatInt(e.value, 10))
		return
	}
	e.left.renderChild(b, e.op, true)
	b.WriteByte(' ')
	b.WriteString(e.op.String())
	b.WriteByte(' ')
	e.right.renderChild(b, e.op, false)
}

func (e *Evaluated) renderChild(b *strings.Builder, parent Kind, isLeft bool) {
	if e.IsLeaf() {
		b.WriteString(strconv.FormatInt(e.value, 10))
		return
	}
	if needsParens(e.op, parent, isLeft) {
		b.WriteByte('(')
		e.render(b)
		b.WriteByte(')')
		return
	}
	e.render(b)
}

// needsParens decides whether an operator child must be wrapped when
// rendered under parent: either its operator binds looser, or it sits
// in the right operand slot of a non-commutative operator, where
// dropping the parentheses would flip the meaning under left-to-right
// association. The complexity scorer applies the same test.
func needsParens(child, parent Kind, isLeft bool) bool {
	if BindsLooser(child, parent) {
		return true
	}
	return !isLeft && !IsCommutative(parent)
}
