package symbolic

import (
	"reflect"
	"strconv"
)

// Func is a function of one variable used to evaluate unary nodes. The
// function may but generally should not look up variables.
type Func[T Number[T]] interface {
	// Call evaluates the function at x.
	Call(ctx *Context[T], x T) (T, error)
}

type monadic[T Number[T]] struct {
	f func(T) (T, error)
}

func (m monadic[T]) Call(ctx *Context[T], x T) (T, error) {
	return m.f(x)
}

// Monadic wraps a plain function of one variable into a Func.
func Monadic[T Number[T]](f func(T) (T, error)) Func[T] {
	return monadic[T]{f}
}

// DomainError is an error returned when a function or operator is applied to
// arguments outside its domain.
type DomainError struct {
	// X is the text of the out-of-domain argument.
	X string
	// Arg is the 1-based index of the argument, or 0 if unknown.
	Arg int
	// Func is a name identifying the function or operator.
	Func string
}

func (err *DomainError) Error() string {
	r := err.X + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	if err.Arg > 0 {
		r += " (argument " + strconv.Itoa(err.Arg) + ")"
	}
	return r
}

// NameError is an error from a lookup for a symbol that is missing from the
// evaluation context.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}

// FuncError is an error from evaluating a unary node whose operation has no
// function in the evaluation context.
type FuncError struct {
	// Name is the operation name.
	Name string
}

func (err *FuncError) Error() string {
	return "undefined function: " + strconv.Quote(err.Name)
}

// OpError is an error from evaluating an operator the payload does not
// support.
type OpError struct {
	// Op is the operator.
	Op Op
	// Type is the payload type name.
	Type string
}

func (err *OpError) Error() string {
	return "operator " + err.Op.String() + " not supported by " + err.Type
}

func typename[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
