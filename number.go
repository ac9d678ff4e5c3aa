package symbolic

import (
	"math"
	"strconv"
)

// Number is the set of capabilities an expression payload must have. The
// conversion methods are called on the zero value of T, so they must not use
// their receiver.
type Number[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Neg() T
	Equal(T) bool
	// FromInt converts a small integer, such as 0, 1, or -1, to a T.
	FromInt(int64) T
	// FromFloat converts a float to a T.
	FromFloat(float64) T
	String() string
}

// Powerer is implemented by payloads that can be raised to a power during
// evaluation.
type Powerer[T any] interface {
	Pow(T) (T, error)
}

// NumberParser is implemented by payloads that can parse numeric literals
// directly. Payloads which don't are parsed through strconv.ParseFloat and
// FromFloat.
type NumberParser[T any] interface {
	ParseNumber(string) (T, error)
}

// Rounder is implemented by payloads with a configurable precision.
// Evaluation contexts round literals and variables to their precision.
type Rounder[T any] interface {
	Round(prec uint) T
}

// Builtin is implemented by payloads that supply default functions and
// constants to evaluation contexts.
type Builtin[T Number[T]] interface {
	Funcs() map[string]Func[T]
	Consts(prec uint) map[string]T
}

// parsenum converts literal text to a payload value.
func parsenum[T Number[T]](s string) (T, error) {
	var z T
	if p, ok := any(z).(NumberParser[T]); ok {
		return p.ParseNumber(s)
	}
	if s == "∞" {
		s = "inf"
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !isRange(err) {
		return z, err
	}
	return z.FromFloat(f), nil
}

func isRange(err error) bool {
	e, ok := err.(*strconv.NumError)
	return ok && e.Err == strconv.ErrRange
}

// Float is a float64 payload.
type Float float64

func (x Float) Add(y Float) Float { return x + y }
func (x Float) Sub(y Float) Float { return x - y }
func (x Float) Mul(y Float) Float { return x * y }
func (x Float) Div(y Float) Float { return x / y }
func (x Float) Neg() Float { return -x }
func (x Float) Equal(y Float) bool { return x == y }
func (Float) FromInt(n int64) Float { return Float(n) }
func (Float) FromFloat(f float64) Float { return Float(f) }
func (x Float) String() string { return strconv.FormatFloat(float64(x), 'g', -1, 64) }

// Pow raises x to y. Negative bases with non-integer exponents are outside
// the domain.
func (x Float) Pow(y Float) (Float, error) {
	r := math.Pow(float64(x), float64(y))
	if math.IsNaN(r) && !math.IsNaN(float64(x)) && !math.IsNaN(float64(y)) {
		return 0, &DomainError{X: x.String(), Arg: 1, Func: "**"}
	}
	return Float(r), nil
}

// Funcs returns the default functions for Float evaluation.
func (Float) Funcs() map[string]Func[Float] {
	return map[string]Func[Float]{
		"abs": Monadic(func(x Float) (Float, error) { return Float(math.Abs(float64(x))), nil }),
		"sqrt": Monadic(func(x Float) (Float, error) {
			if x < 0 {
				return 0, &DomainError{X: x.String(), Arg: 1, Func: "sqrt"}
			}
			return Float(math.Sqrt(float64(x))), nil
		}),
		"exp": Monadic(func(x Float) (Float, error) { return Float(math.Exp(float64(x))), nil }),
		"ln":  floatlog("ln", math.Log),
		"log": floatlog("log", math.Log10),
		"cos": Monadic(func(x Float) (Float, error) { return Float(math.Cos(float64(x))), nil }),
		"sin": Monadic(func(x Float) (Float, error) { return Float(math.Sin(float64(x))), nil }),
		"tan": Monadic(func(x Float) (Float, error) { return Float(math.Tan(float64(x))), nil }),
	}
}

func floatlog(name string, f func(float64) float64) Func[Float] {
	return Monadic(func(x Float) (Float, error) {
		if x < 0 {
			return 0, &DomainError{X: x.String(), Arg: 1, Func: name}
		}
		return Float(f(float64(x))), nil
	})
}

// Consts returns the default constants for Float evaluation.
func (Float) Consts(prec uint) map[string]Float {
	return map[string]Float{"pi": math.Pi, "e": math.E}
}

// Int is an int64 payload. Division truncates toward zero.
type Int int64

func (x Int) Add(y Int) Int { return x + y }
func (x Int) Sub(y Int) Int { return x - y }
func (x Int) Mul(y Int) Int { return x * y }
func (x Int) Div(y Int) Int { return x / y }
func (x Int) Neg() Int { return -x }
func (x Int) Equal(y Int) bool { return x == y }
func (Int) FromInt(n int64) Int { return Int(n) }
func (Int) FromFloat(f float64) Int { return Int(f) }
func (x Int) String() string { return strconv.FormatInt(int64(x), 10) }

// ParseNumber parses a base 10 integer.
func (Int) ParseNumber(s string) (Int, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	return Int(n), err
}

// Pow raises x to a non-negative integer power.
func (x Int) Pow(y Int) (Int, error) {
	if y < 0 {
		return 0, &DomainError{X: y.String(), Arg: 2, Func: "**"}
	}
	r := Int(1)
	for b := x; y > 0; y >>= 1 {
		if y&1 != 0 {
			r *= b
		}
		b *= b
	}
	return r, nil
}

// Funcs returns the default functions for Int evaluation.
func (Int) Funcs() map[string]Func[Int] {
	return map[string]Func[Int]{
		"abs": Monadic(func(x Int) (Int, error) {
			if x < 0 {
				return -x, nil
			}
			return x, nil
		}),
	}
}

// Consts returns no constants; Int has no useful approximation of pi or e.
func (Int) Consts(prec uint) map[string]Int {
	return nil
}

var (
	_ Number[Float]  = Float(0)
	_ Number[Int]    = Int(0)
	_ Powerer[Float] = Float(0)
	_ Powerer[Int]   = Int(0)
	_ Builtin[Float] = Float(0)
	_ Builtin[Int]   = Int(0)
)
