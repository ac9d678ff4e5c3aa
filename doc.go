// Package symbolic builds and manipulates symbolic arithmetic expressions over
// any payload type that supports basic arithmetic.
//
// Expressions are trees of literals, symbols, binary operations, and unary
// operations. Arithmetic methods on *Expr build new trees rather than
// computing anything, so the same generic code can produce a number or the
// expression that computes it:
//
//	x := symbolic.Sym[symbolic.Float]("x")
//	e := x.Mul(x.FromInt(1)).Add(x.FromInt(0))
//	e.String()            // (x*1)+0
//	e.RPN()               // x 1 * 0 +
//	e.Simplify().String() // x
//
// Simplify makes exactly one bottom-up pass, and String parenthesizes every
// binary operand regardless of precedence.
//
// Expressions can also be parsed from text and evaluated in a Context which
// binds symbols to values. The syntax is intended to be similar to math you'd
// write in your notes: "2 x y" is a multiplication of three terms, and
// "-2^2^n" is the same as "-(2^(2^n))".
//
// Package units layers dimensions on top of expressions.
package symbolic
