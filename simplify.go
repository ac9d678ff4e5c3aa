package symbolic

// Simplify makes a single bottom-up pass over e, removing additive and
// multiplicative identities:
//
//	1*x, x*1 -> x
//	0*x, x*0 -> 0
//	x/1      -> x
//	0+x, x+0 -> x
//	x-0      -> x
//
// Rules apply only at the node being rebuilt, after its children have been
// simplified, so (x*1)*1 becomes x. Simplify never rewrites anything twice;
// SimplifyFixpoint repeats it with a bound for callers that want the check.
func (e *Expr[T]) Simplify() *Expr[T] {
	switch e.kind {
	case KindBinary:
		var z T
		one, zero := Lit(z.FromInt(1)), Lit(z.FromInt(0))
		l := e.left.Simplify()
		r := e.right.Simplify()
		switch {
		case e.op == OpMul && l.Equal(one):
			return r
		case e.op == OpMul && r.Equal(one):
			return l
		case e.op == OpMul && (l.Equal(zero) || r.Equal(zero)):
			return zero
		case e.op == OpDiv && r.Equal(one):
			return l
		case e.op == OpAdd && l.Equal(zero):
			return r
		case e.op == OpAdd && r.Equal(zero):
			return l
		case e.op == OpSub && r.Equal(zero):
			return l
		}
		return Binary(e.op, l, r)
	case KindUnary:
		return Unary(e.name, e.left.Simplify())
	default:
		c := *e
		return &c
	}
}

// SimplifyFixpoint repeats Simplify until the result stops changing or max
// passes have run. It returns the result and the number of passes made. A
// pass which changes nothing counts.
func (e *Expr[T]) SimplifyFixpoint(max int) (*Expr[T], int) {
	n := 0
	for n < max {
		s := e.Simplify()
		n++
		if s.Equal(e) {
			return s, n
		}
		e = s
	}
	return e, n
}
