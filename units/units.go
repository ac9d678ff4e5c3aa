// Package units attaches dimensions to values. A dimension is a symbolic
// expression used purely as a label: adding or subtracting values requires
// structurally equal dimensions, and multiplying or dividing values combines
// their dimensions into a new expression without simplifying it.
package units

import (
	"github.com/zephyrtronium/symbolic"
)

// Units is a value with a dimension.
type Units[T symbolic.Number[T]] struct {
	val T
	dim *symbolic.Expr[T]
}

// New creates a value whose dimension is the symbol unit.
func New[T symbolic.Number[T]](val T, unit string) Units[T] {
	return Units[T]{val: val, dim: symbolic.Sym[T](unit)}
}

// Dimensionless creates a value whose dimension is the literal 1.
func Dimensionless[T symbolic.Number[T]](val T) Units[T] {
	return Units[T]{val: val, dim: symbolic.Lit(val.FromInt(1))}
}

// WithDim creates a value with an arbitrary dimension expression.
func WithDim[T symbolic.Number[T]](val T, dim *symbolic.Expr[T]) Units[T] {
	return Units[T]{val: val, dim: dim}
}

// Value returns the numeric value.
func (u Units[T]) Value() T { return u.val }

// DropUnits returns the numeric value, discarding the dimension.
func (u Units[T]) DropUnits() T { return u.val }

// Dim returns the dimension expression.
func (u Units[T]) Dim() *symbolic.Expr[T] { return u.dim }

// Add returns u+v. If the dimensions differ, the result is the zero Units and
// a *MismatchError.
func (u Units[T]) Add(v Units[T]) (Units[T], error) {
	return u.add(v, "add")
}

func (u Units[T]) add(v Units[T], op string) (Units[T], error) {
	if !u.dim.Equal(v.dim) {
		return Units[T]{}, &MismatchError{Op: op, Left: u.dim.String(), Right: v.dim.String()}
	}
	return Units[T]{val: u.val.Add(v.val), dim: u.dim}, nil
}

// Sub returns u-v, computed as u plus the negation of v. If the dimensions
// differ, the result is the zero Units and a *MismatchError.
func (u Units[T]) Sub(v Units[T]) (Units[T], error) {
	return u.add(v.Neg(), "sub")
}

// MustAdd is like Add but panics with a *MismatchError if the dimensions
// differ.
func (u Units[T]) MustAdd(v Units[T]) Units[T] {
	r, err := u.Add(v)
	if err != nil {
		panic(err)
	}
	return r
}

// MustSub is like Sub but panics with a *MismatchError if the dimensions
// differ.
func (u Units[T]) MustSub(v Units[T]) Units[T] {
	r, err := u.Sub(v)
	if err != nil {
		panic(err)
	}
	return r
}

// Mul returns u*v. The dimension is the product of the dimensions.
func (u Units[T]) Mul(v Units[T]) Units[T] {
	return Units[T]{val: u.val.Mul(v.val), dim: u.dim.Mul(v.dim)}
}

// Div returns u/v. The dimension is the quotient of the dimensions; equal
// dimensions do not cancel.
func (u Units[T]) Div(v Units[T]) Units[T] {
	return Units[T]{val: u.val.Div(v.val), dim: u.dim.Div(v.dim)}
}

// Neg returns -u with the same dimension.
func (u Units[T]) Neg() Units[T] {
	return Units[T]{val: u.val.Neg(), dim: u.dim}
}

// SimplifyDim returns u with its dimension passed once through Simplify.
func (u Units[T]) SimplifyDim() Units[T] {
	return Units[T]{val: u.val, dim: u.dim.Simplify()}
}

// Equal reports whether u and v have equal values and structurally equal
// dimensions.
func (u Units[T]) Equal(v Units[T]) bool {
	return u.val.Equal(v.val) && u.dim.Equal(v.dim)
}

// String formats u as value_dimension, e.g. 9.8_m/s.
func (u Units[T]) String() string {
	if u.dim == nil {
		return u.val.String()
	}
	return u.val.String() + "_" + u.dim.String()
}

// MismatchError is the error from adding or subtracting values with
// different dimensions.
type MismatchError struct {
	// Op is "add" or "sub".
	Op string
	// Left and Right are the infix renderings of the operand dimensions.
	Left, Right string
}

func (err *MismatchError) Error() string {
	return "mismatched units in " + err.Op + ": " + err.Left + " vs " + err.Right
}
