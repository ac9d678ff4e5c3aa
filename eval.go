package symbolic

import (
	"io"
	"strconv"
	"strings"
)

// Context is a context for evaluating expressions. It binds symbols to values
// and unary operation names to functions. It is not safe to use a Context
// concurrently.
type Context[T Number[T]] struct {
	stack  []T
	names  map[string]T
	consts map[string]T
	funcs  map[string]Func[T]
	prec   uint
}

// ContextOption is an option used when creating a context. Options carrying
// values must be for the same payload type as the context.
type ContextOption interface {
	ctxOption()
}

type (
	varopt[T Number[T]] struct {
		name string
		val  T
	}
	varsopt[T Number[T]] map[string]T
	fnopt[T Number[T]]   struct {
		name string
		fn   Func[T]
	}
	precopt uint
)

func (varopt[T]) ctxOption()  {}
func (varsopt[T]) ctxOption() {}
func (fnopt[T]) ctxOption()   {}
func (precopt) ctxOption()    {}

// SetVar sets the value of a variable in the context.
func SetVar[T Number[T]](name string, val T) ContextOption {
	return varopt[T]{name, val}
}

// SetVars sets the values of any number of variables in the context.
func SetVars[T Number[T]](vars map[string]T) ContextOption {
	return varsopt[T](vars)
}

// WithFunc sets the function used to evaluate unary nodes with the given
// name. A nil fn removes the function.
func WithFunc[T Number[T]](name string, fn Func[T]) ContextOption {
	return fnopt[T]{name, fn}
}

// Prec sets the precision of calculations for payloads which have one.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// NewContext creates a new evaluation context. If T implements Builtin, the
// context starts with its functions and constants. If no precision is given,
// the default is DefaultPrec.
func NewContext[T Number[T]](opts ...ContextOption) *Context[T] {
	ctx := Context[T]{prec: DefaultPrec}
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context and applies options to it.
func (ctx *Context[T]) Clone(opts ...ContextOption) *Context[T] {
	n := Context[T]{
		names: make(map[string]T, len(ctx.names)),
		funcs: make(map[string]Func[T], len(ctx.funcs)),
		prec:  ctx.prec,
	}
	// Apply the last precision first so that constants and variables are
	// rounded to it.
	for i := len(opts) - 1; i >= 0; i-- {
		if p, ok := opts[i].(precopt); ok {
			n.prec = uint(p)
			break
		}
	}
	if ctx.consts == nil || n.prec != ctx.prec {
		var z T
		if b, ok := any(z).(Builtin[T]); ok {
			n.consts = b.Consts(n.prec)
			if ctx.funcs == nil {
				for k, f := range b.Funcs() {
					n.funcs[k] = f
				}
			}
		}
	} else {
		n.consts = ctx.consts
	}
	for k, f := range ctx.funcs {
		n.funcs[k] = f
	}
	for k, v := range ctx.names {
		n.names[k] = n.round(v)
	}
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil:
			// do nothing
		case varopt[T]:
			n.names[opt.name] = n.round(opt.val)
		case varsopt[T]:
			for k, v := range opt {
				n.names[k] = n.round(v)
			}
		case fnopt[T]:
			if opt.fn == nil {
				delete(n.funcs, opt.name)
			} else {
				n.funcs[opt.name] = opt.fn
			}
		case precopt:
			// Already done.
		default:
			panic("symbolic: option is not for payload " + typename[T]())
		}
	}
	return &n
}

// Set sets the value of a variable. Returns ctx for chaining. Calling Set
// while the context is being used to evaluate an expression panics.
func (ctx *Context[T]) Set(name string, value T) *Context[T] {
	if len(ctx.stack) != 0 {
		panic("symbolic: Set on in-use context")
	}
	if ctx.names == nil {
		ctx.names = make(map[string]T)
	}
	ctx.names[name] = ctx.round(value)
	return ctx
}

// Lookup returns the value of a variable or constant and whether it exists.
func (ctx *Context[T]) Lookup(name string) (T, bool) {
	if v, ok := ctx.names[name]; ok {
		return v, true
	}
	v, ok := ctx.consts[name]
	return v, ok
}

// Prec returns the precision to which values are computed in the context.
func (ctx *Context[T]) Prec() uint {
	return ctx.prec
}

// round rounds v to the context's precision if T has one.
func (ctx *Context[T]) round(v T) T {
	if r, ok := any(v).(Rounder[T]); ok && ctx.prec > 0 {
		return r.Round(ctx.prec)
	}
	return v
}

// Eval evaluates an expression and returns the result.
func (ctx *Context[T]) Eval(e *Expr[T]) (T, error) {
	if len(ctx.stack) != 0 {
		panic("symbolic: Eval during Eval")
	}
	defer func() { ctx.stack = ctx.stack[:0] }()
	if err := ctx.eval(e); err != nil {
		var z T
		return z, err
	}
	if len(ctx.stack) != 1 {
		panic("symbolic: inconsistent stack: " + strconv.Itoa(len(ctx.stack)) + " items (bad tree?)")
	}
	return ctx.stack[0], nil
}

func (ctx *Context[T]) push(v T) {
	ctx.stack = append(ctx.stack, v)
}

// pop removes the top from the stack and returns it.
func (ctx *Context[T]) pop() T {
	r := ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	return r
}

// settop replaces the top of the stack.
func (ctx *Context[T]) settop(v T) {
	ctx.stack[len(ctx.stack)-1] = v
}

// eval pushes the node's value to the context's stack.
func (ctx *Context[T]) eval(n *Expr[T]) error {
	switch n.kind {
	case KindLiteral:
		ctx.push(ctx.round(n.val))
	case KindSymbol:
		v, ok := ctx.Lookup(n.name)
		if !ok {
			return &NameError{Name: n.name}
		}
		ctx.push(v)
	case KindBinary:
		if err := ctx.eval(n.left); err != nil {
			return err
		}
		if err := ctx.eval(n.right); err != nil {
			return err
		}
		r := ctx.pop()
		l := ctx.stack[len(ctx.stack)-1]
		v, err := binary(n.op, l, r)
		if err != nil {
			return err
		}
		ctx.settop(v)
	case KindUnary:
		if err := ctx.eval(n.left); err != nil {
			return err
		}
		f := ctx.funcs[n.name]
		if f == nil {
			return &FuncError{Name: n.name}
		}
		v, err := f.Call(ctx, ctx.stack[len(ctx.stack)-1])
		if err != nil {
			return err
		}
		ctx.settop(v)
	default:
		panic("symbolic: invalid node " + n.kind.String())
	}
	return nil
}

// binary applies op to l and r.
func binary[T Number[T]](op Op, l, r T) (T, error) {
	switch op {
	case OpAdd:
		return l.Add(r), nil
	case OpSub:
		return l.Sub(r), nil
	case OpMul:
		return l.Mul(r), nil
	case OpDiv:
		if r.Equal(r.FromInt(0)) {
			return r, &DomainError{X: r.String(), Arg: 2, Func: "/"}
		}
		return l.Div(r), nil
	case OpPow:
		p, ok := any(l).(Powerer[T])
		if !ok {
			return r, &OpError{Op: op, Type: typename[T]()}
		}
		return p.Pow(r)
	default:
		panic("symbolic: invalid operator " + op.String())
	}
}

// Eval is a shortcut to evaluate an expression in a new context.
func Eval[T Number[T]](e *Expr[T], opts ...ContextOption) (T, error) {
	return NewContext[T](opts...).Eval(e)
}

// EvalString is a shortcut to parse and evaluate a string expression with the
// default parsing options.
func EvalString[T Number[T]](src string, opts ...ContextOption) (T, error) {
	return EvalReader[T](strings.NewReader(src), opts...)
}

// EvalReader is a shortcut to parse and evaluate an expression.
func EvalReader[T Number[T]](src io.RuneScanner, opts ...ContextOption) (T, error) {
	e, err := Parse[T](src)
	if err != nil {
		var z T
		return z, err
	}
	return Eval(e, opts...)
}
