package symbolic

import (
	"strings"
)

// String renders e in infix notation. Binary operands which are themselves
// binary operations are always parenthesized, whatever their precedence;
// literals, symbols, and unary operations are not.
func (e *Expr[T]) String() string {
	var b strings.Builder
	e.infix(&b)
	return b.String()
}

func (e *Expr[T]) infix(b *strings.Builder) {
	switch e.kind {
	case KindLiteral:
		b.WriteString(e.val.String())
	case KindSymbol:
		b.WriteString(e.name)
	case KindBinary:
		e.left.paren(b)
		b.WriteString(e.op.String())
		e.right.paren(b)
	case KindUnary:
		b.WriteString(e.name)
		b.WriteByte('(')
		e.left.infix(b)
		b.WriteByte(')')
	default:
		panic("symbolic: invalid node kind " + e.kind.String() + " after writing " + b.String())
	}
}

// paren writes e, wrapped in parentheses if it is a binary operation.
func (e *Expr[T]) paren(b *strings.Builder) {
	if e.kind != KindBinary {
		e.infix(b)
		return
	}
	b.WriteByte('(')
	e.infix(b)
	b.WriteByte(')')
}

// RPN renders e in postfix notation with tokens separated by spaces.
func (e *Expr[T]) RPN() string {
	var b strings.Builder
	e.rpn(&b)
	return b.String()
}

func (e *Expr[T]) rpn(b *strings.Builder) {
	switch e.kind {
	case KindLiteral:
		b.WriteString(e.val.String())
	case KindSymbol:
		b.WriteString(e.name)
	case KindBinary:
		e.left.rpn(b)
		b.WriteByte(' ')
		e.right.rpn(b)
		b.WriteByte(' ')
		b.WriteString(e.op.String())
	case KindUnary:
		e.left.rpn(b)
		b.WriteByte(' ')
		b.WriteString(e.name)
	default:
		panic("symbolic: invalid node kind " + e.kind.String() + " after writing " + b.String())
	}
}

// Tree renders e with every node bracketed, alternating round and square
// brackets by depth. Unlike String, the result shows exactly how the tree is
// grouped.
func (e *Expr[T]) Tree() string {
	var b strings.Builder
	e.tree(&b, false)
	return b.String()
}

func (e *Expr[T]) tree(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch e.kind {
	case KindLiteral:
		b.WriteString(e.val.String())
	case KindSymbol:
		b.WriteString(e.name)
	case KindBinary:
		e.left.tree(b, !square)
		b.WriteByte(' ')
		b.WriteString(e.op.String())
		b.WriteByte(' ')
		e.right.tree(b, !square)
	case KindUnary:
		b.WriteString(e.name)
		e.left.tree(b, !square)
	default:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
	}
}
