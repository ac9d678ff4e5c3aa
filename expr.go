package symbolic

// Expr is a node in a symbolic expression tree over payload type T. Each node
// is exactly one of a literal, a symbol, a binary operation, or a unary
// operation. Exprs are immutable; every operation returns a new root.
//
// *Expr[T] is itself a Number, so expressions can be the payload of other
// expressions or of units. A nil *Expr is valid only as the receiver of
// FromInt and FromFloat.
type Expr[T Number[T]] struct {
	kind Kind

	val  T
	name string
	op   Op

	left  *Expr[T]
	right *Expr[T]
}

// Kind identifies the shape of an expression node.
type Kind int8

const (
	KindNone Kind = iota

	KindLiteral // val
	KindSymbol  // name
	KindBinary  // op applied to left and right
	KindUnary   // name applied to left
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "Literal"
	case KindSymbol:
		return "Symbol"
	case KindBinary:
		return "Binary"
	case KindUnary:
		return "Unary"
	default:
		return "None"
	}
}

// Op is a binary operator.
type Op int8

const (
	OpNone Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPow
)

// String returns the token for the operator.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "**"
	default:
		return "?"
	}
}

// Lit creates a literal node.
func Lit[T Number[T]](v T) *Expr[T] {
	return &Expr[T]{kind: KindLiteral, val: v}
}

// Sym creates a symbol node.
func Sym[T Number[T]](name string) *Expr[T] {
	return &Expr[T]{kind: KindSymbol, name: name}
}

// Binary creates a binary operation node.
func Binary[T Number[T]](op Op, left, right *Expr[T]) *Expr[T] {
	if op <= OpNone || op > OpPow {
		panic("symbolic: invalid operator " + op.String())
	}
	return &Expr[T]{kind: KindBinary, op: op, left: left, right: right}
}

// Unary creates a node applying the named operation to x. The set of names is
// open; evaluation contexts decide what each name means.
func Unary[T Number[T]](name string, x *Expr[T]) *Expr[T] {
	return &Expr[T]{kind: KindUnary, name: name, left: x}
}

// Pi returns the symbol pi.
func Pi[T Number[T]]() *Expr[T] {
	return Sym[T]("pi")
}

func (e *Expr[T]) Add(o *Expr[T]) *Expr[T] { return Binary(OpAdd, e, o) }
func (e *Expr[T]) Sub(o *Expr[T]) *Expr[T] { return Binary(OpSub, e, o) }
func (e *Expr[T]) Mul(o *Expr[T]) *Expr[T] { return Binary(OpMul, e, o) }
func (e *Expr[T]) Div(o *Expr[T]) *Expr[T] { return Binary(OpDiv, e, o) }
func (e *Expr[T]) Pow(o *Expr[T]) *Expr[T] { return Binary(OpPow, e, o) }

// Neg returns e multiplied by the literal -1.
func (e *Expr[T]) Neg() *Expr[T] {
	return e.Mul(e.FromInt(-1))
}

func (e *Expr[T]) Sqrt() *Expr[T] { return Unary("sqrt", e) }
func (e *Expr[T]) Abs() *Expr[T]  { return Unary("abs", e) }

// FromInt returns a literal holding n converted to T. The receiver is unused.
func (*Expr[T]) FromInt(n int64) *Expr[T] {
	var z T
	return Lit(z.FromInt(n))
}

// FromFloat returns a literal holding f converted to T. The receiver is
// unused.
func (*Expr[T]) FromFloat(f float64) *Expr[T] {
	var z T
	return Lit(z.FromFloat(f))
}

// Kind returns the shape of the node.
func (e *Expr[T]) Kind() Kind { return e.kind }

// Op returns the operator of a binary node, or OpNone.
func (e *Expr[T]) Op() Op { return e.op }

// Value returns the value of a literal node. For other nodes, the result is
// the zero value of T.
func (e *Expr[T]) Value() T { return e.val }

// Name returns the name of a symbol or the operation of a unary node.
func (e *Expr[T]) Name() string { return e.name }

// Left returns the left operand of a binary node.
func (e *Expr[T]) Left() *Expr[T] {
	if e.kind != KindBinary {
		return nil
	}
	return e.left
}

// Right returns the right operand of a binary node.
func (e *Expr[T]) Right() *Expr[T] { return e.right }

// Operand returns the operand of a unary node.
func (e *Expr[T]) Operand() *Expr[T] {
	if e.kind != KindUnary {
		return nil
	}
	return e.left
}

// Equal reports whether e and o are structurally identical.
func (e *Expr[T]) Equal(o *Expr[T]) bool {
	if e == o {
		return true
	}
	if e == nil || o == nil || e.kind != o.kind {
		return false
	}
	switch e.kind {
	case KindLiteral:
		return e.val.Equal(o.val)
	case KindSymbol:
		return e.name == o.name
	case KindBinary:
		return e.op == o.op && e.left.Equal(o.left) && e.right.Equal(o.right)
	case KindUnary:
		return e.name == o.name && e.left.Equal(o.left)
	default:
		return true
	}
}

// Size returns the number of nodes in the tree.
func (e *Expr[T]) Size() int {
	if e == nil {
		return 0
	}
	return 1 + e.left.Size() + e.right.Size()
}

// Symbols returns the sorted, distinct names of symbols in the tree.
func (e *Expr[T]) Symbols() []string {
	seen := make(map[string]bool)
	var names []string
	e.walk(func(n *Expr[T]) {
		if n.kind == KindSymbol && !seen[n.name] {
			seen[n.name] = true
			names = append(names, n.name)
		}
	})
	sortstrs(names)
	return names
}

// walk calls f on each node in pre-order.
func (e *Expr[T]) walk(f func(*Expr[T])) {
	if e == nil {
		return
	}
	f(e)
	e.left.walk(f)
	e.right.walk(f)
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

var _ Number[*Expr[Float]] = (*Expr[Float])(nil)
