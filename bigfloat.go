package symbolic

import (
	"errors"
	"math/big"
	"strings"

	"github.com/zephyrtronium/bigfloat"
)

// DefaultPrec is the precision in bits of BigFloat values created without an
// explicit precision.
const DefaultPrec = 64

// BigFloat is an arbitrary-precision floating-point payload. The zero value
// is zero. Values are never modified after creation.
type BigFloat struct {
	f *big.Float
}

// NewBigFloat wraps a copy of f.
func NewBigFloat(f *big.Float) BigFloat {
	return BigFloat{new(big.Float).Copy(f)}
}

// Float returns a copy of x as a *big.Float.
func (x BigFloat) Float() *big.Float {
	if x.f == nil {
		return new(big.Float).SetPrec(DefaultPrec)
	}
	return new(big.Float).Copy(x.f)
}

func (x BigFloat) get() *big.Float {
	if x.f == nil {
		return new(big.Float).SetPrec(DefaultPrec)
	}
	return x.f
}

func (x BigFloat) Add(y BigFloat) BigFloat { return BigFloat{new(big.Float).Add(x.get(), y.get())} }
func (x BigFloat) Sub(y BigFloat) BigFloat { return BigFloat{new(big.Float).Sub(x.get(), y.get())} }
func (x BigFloat) Mul(y BigFloat) BigFloat { return BigFloat{new(big.Float).Mul(x.get(), y.get())} }

// Div returns x/y. Dividing zero by zero or infinity by infinity yields zero;
// evaluation contexts reject division by zero before reaching Div.
func (x BigFloat) Div(y BigFloat) BigFloat {
	a, b := x.get(), y.get()
	if a.Sign() == 0 && b.Sign() == 0 || a.IsInf() && b.IsInf() {
		return BigFloat{new(big.Float).SetPrec(prec(a, b))}
	}
	return BigFloat{new(big.Float).Quo(a, b)}
}

func (x BigFloat) Neg() BigFloat { return BigFloat{new(big.Float).Neg(x.get())} }

func (x BigFloat) Equal(y BigFloat) bool { return x.get().Cmp(y.get()) == 0 }

func (BigFloat) FromInt(n int64) BigFloat {
	return BigFloat{new(big.Float).SetPrec(DefaultPrec).SetInt64(n)}
}

func (BigFloat) FromFloat(f float64) BigFloat {
	return BigFloat{new(big.Float).SetPrec(DefaultPrec).SetFloat64(f)}
}

func (x BigFloat) String() string {
	return x.get().Text('g', -1)
}

// ParseNumber parses a decimal literal at DefaultPrec. Literals too large to
// represent become infinities.
func (BigFloat) ParseNumber(s string) (BigFloat, error) {
	if s == "∞" {
		s = "inf"
	}
	r, _, err := new(big.Float).SetPrec(DefaultPrec).Parse(s, 0)
	switch {
	case err == nil: // do nothing
	case err.Error() == "exponent overflow",
		strings.HasSuffix(err.Error(), ": value out of range"):
		r = new(big.Float).SetPrec(DefaultPrec).SetInf(s[0] == '-')
	default:
		return BigFloat{}, err
	}
	return BigFloat{r}, nil
}

// Round returns x rounded to prec bits.
func (x BigFloat) Round(prec uint) BigFloat {
	return BigFloat{new(big.Float).SetPrec(prec).Set(x.get())}
}

// Pow raises x to y. Negative bases are outside the domain.
func (x BigFloat) Pow(y BigFloat) (r BigFloat, err error) {
	a, b := x.get(), y.get()
	// TODO: allow negative base with integer exponent
	if a.Signbit() {
		return BigFloat{}, &DomainError{X: x.String(), Arg: 1, Func: "**"}
	}
	if a.Sign() == 0 {
		if b.Sign() <= 0 {
			return BigFloat{}, &DomainError{X: y.String(), Arg: 2, Func: "**"}
		}
		return BigFloat{new(big.Float).SetPrec(prec(a, b))}, nil
	}
	defer catchnan(&err, "**")
	z := new(big.Float).SetPrec(prec(a, b))
	bigfloat.Pow(z, a, b)
	return BigFloat{z}, nil
}

// Funcs returns the default functions for BigFloat evaluation.
func (BigFloat) Funcs() map[string]Func[BigFloat] {
	return map[string]Func[BigFloat]{
		"abs":  bigmonadic("abs", (*big.Float).Abs),
		"sqrt": bigmonadic("sqrt", (*big.Float).Sqrt),
		"exp":  bigmonadic("exp", bigfloat.Exp),
		"ln":   bigmonadic("ln", bigfloat.Log),
		"log": bigmonadic("log", func(out, in *big.Float) *big.Float {
			bigfloat.Log(out, in)
			ten := new(big.Float).SetPrec(out.Prec()).SetFloat64(10)
			bigfloat.Log(ten, ten)
			return out.Quo(out, ten)
		}),
	}
}

// Consts returns pi and e computed to prec bits.
func (BigFloat) Consts(prec uint) map[string]BigFloat {
	pi := new(big.Float).SetPrec(prec)
	bigfloat.Pi(pi)
	one := new(big.Float).SetPrec(prec).SetFloat64(1)
	e := new(big.Float).SetPrec(prec)
	bigfloat.Exp(e, one)
	return map[string]BigFloat{"pi": {pi}, "e": {e}}
}

// bigmonadic wraps a *big.Float function of one variable. f must set out to
// its result, to the precision of out, and panics with big.ErrNaN outside its
// domain.
func bigmonadic(name string, f func(out, in *big.Float) *big.Float) Func[BigFloat] {
	return Monadic(func(x BigFloat) (r BigFloat, err error) {
		in := x.get()
		if in.Sign() < 0 && name != "abs" && name != "exp" {
			return BigFloat{}, &DomainError{X: x.String(), Arg: 1, Func: name}
		}
		defer catchnan(&err, name)
		out := new(big.Float).SetPrec(in.Prec())
		f(out, in)
		return BigFloat{out}, nil
	})
}

// catchnan converts a big.ErrNaN panic into a DomainError. Other panics
// continue.
func catchnan(err *error, name string) {
	r := recover()
	if r == nil {
		return
	}
	e, ok := r.(error)
	if !ok {
		panic(r)
	}
	var nan big.ErrNaN
	if !errors.As(e, &nan) {
		panic(r)
	}
	*err = &DomainError{X: nan.Error(), Func: name}
}

func prec(a, b *big.Float) uint {
	p := a.Prec()
	if b.Prec() > p {
		p = b.Prec()
	}
	if p == 0 {
		return DefaultPrec
	}
	return p
}

var (
	_ Number[BigFloat]       = BigFloat{}
	_ NumberParser[BigFloat] = BigFloat{}
	_ Powerer[BigFloat]      = BigFloat{}
	_ Builtin[BigFloat]      = BigFloat{}
	_ Rounder[BigFloat]      = BigFloat{}
)
