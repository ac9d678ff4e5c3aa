package symbolic

import (
	"errors"
	"math"
	"math/big"
	"testing"
)

func approx(t *testing.T, name string, got BigFloat, want float64) {
	t.Helper()
	f, _ := got.Float().Float64()
	if math.Abs(f-want) > 1e-12*math.Max(1, math.Abs(want)) {
		t.Errorf("%s: want %v, got %v", name, want, got)
	}
}

func TestBigFloatZero(t *testing.T) {
	var z BigFloat
	if s := z.String(); s != "0" {
		t.Errorf("zero value renders as %q", s)
	}
	if !z.Equal(z.FromInt(0)) {
		t.Error("zero value isn't zero")
	}
	if p := z.Float().Prec(); p != DefaultPrec {
		t.Errorf("zero value has %d bits, want %d", p, DefaultPrec)
	}
	approx(t, "add", z.Add(z.FromInt(2)), 2)
	approx(t, "neg", z.Neg(), 0)
}

func TestBigFloatArith(t *testing.T) {
	var z BigFloat
	two, three := z.FromInt(2), z.FromFloat(3)
	approx(t, "add", two.Add(three), 5)
	approx(t, "sub", two.Sub(three), -1)
	approx(t, "mul", two.Mul(three), 6)
	approx(t, "div", two.Div(three), 2.0/3.0)
	approx(t, "neg", two.Neg(), -2)
	if !two.Equal(z.FromFloat(2)) {
		t.Error("FromInt(2) != FromFloat(2)")
	}
	if two.Equal(three) {
		t.Error("2 == 3")
	}
	if !z.Div(z).Equal(z) {
		t.Error("0/0 isn't 0")
	}
	inf := NewBigFloat(new(big.Float).SetInf(false))
	if !inf.Div(inf).Equal(z) {
		t.Error("inf/inf isn't 0")
	}
}

func TestBigFloatCopies(t *testing.T) {
	f := big.NewFloat(1.5)
	x := NewBigFloat(f)
	f.SetFloat64(2.5)
	approx(t, "wrapped", x, 1.5)
	x.Float().SetFloat64(3.5)
	approx(t, "unwrapped", x, 1.5)
}

func TestBigFloatParseNumber(t *testing.T) {
	var z BigFloat
	cases := []struct {
		src  string
		want float64
	}{
		{"1", 1},
		{"0.5", 0.5},
		{"1e3", 1000},
		{"inf", math.Inf(1)},
		{"∞", math.Inf(1)},
		{"1e999999999999", math.Inf(1)},
	}
	for _, c := range cases {
		r, err := z.ParseNumber(c.src)
		if err != nil {
			t.Errorf("%q: %v", c.src, err)
			continue
		}
		if f, _ := r.Float().Float64(); f != c.want {
			t.Errorf("%q: want %v, got %v", c.src, c.want, r)
		}
		if p := r.Float().Prec(); p != DefaultPrec {
			t.Errorf("%q: parsed at %d bits, want %d", c.src, p, DefaultPrec)
		}
	}
	if _, err := z.ParseNumber("x"); err == nil {
		t.Error("no error parsing x")
	}
}

func TestBigFloatRound(t *testing.T) {
	var z BigFloat
	third := z.FromInt(1).Round(200).Div(z.FromInt(3).Round(200))
	if p := third.Float().Prec(); p != 200 {
		t.Fatalf("1/3 has %d bits, want 200", p)
	}
	r := third.Round(8)
	if p := r.Float().Prec(); p != 8 {
		t.Errorf("rounded to %d bits, want 8", p)
	}
	if third.Equal(r) {
		t.Error("rounding to 8 bits didn't change 1/3")
	}
}

func TestBigFloatPow(t *testing.T) {
	var z BigFloat
	r, err := z.FromInt(2).Pow(z.FromFloat(0.5))
	if err != nil {
		t.Fatal(err)
	}
	approx(t, "sqrt", r, math.Sqrt2)
	r, err = z.FromInt(0).Pow(z.FromInt(3))
	if err != nil || !r.Equal(z) {
		t.Errorf("0**3: want 0, got %v with error %v", r, err)
	}
	for _, c := range [][2]BigFloat{
		{z.FromInt(-1), z.FromInt(2)},
		{z.FromInt(0), z.FromInt(0)},
		{z.FromInt(0), z.FromInt(-1)},
	} {
		_, err := c[0].Pow(c[1])
		var d *DomainError
		if !errors.As(err, &d) {
			t.Errorf("%v**%v: want DomainError, got %v", c[0], c[1], err)
		}
	}
}

func TestBigFloatFuncs(t *testing.T) {
	var z BigFloat
	funcs := z.Funcs()
	ctx := NewContext[BigFloat]()
	cases := []struct {
		name string
		x    float64
		want float64
	}{
		{"abs", -2, 2},
		{"sqrt", 16, 4},
		{"exp", 0, 1},
		{"exp", -1, 1 / math.E},
		{"ln", 1, 0},
		{"log", 100, 2},
	}
	for _, c := range cases {
		r, err := funcs[c.name].Call(ctx, z.FromFloat(c.x))
		if err != nil {
			t.Errorf("%s(%v): %v", c.name, c.x, err)
			continue
		}
		approx(t, c.name, r, c.want)
	}
	for _, name := range []string{"sqrt", "ln", "log"} {
		_, err := funcs[name].Call(ctx, z.FromInt(-1))
		var d *DomainError
		if !errors.As(err, &d) || d.Func != name {
			t.Errorf("%s(-1): want DomainError, got %v", name, err)
		}
	}
}

func TestBigFloatConsts(t *testing.T) {
	var z BigFloat
	c := z.Consts(100)
	approx(t, "pi", c["pi"], math.Pi)
	approx(t, "e", c["e"], math.E)
	if p := c["pi"].Float().Prec(); p != 100 {
		t.Errorf("pi has %d bits, want 100", p)
	}
}

func TestFloatPayload(t *testing.T) {
	var z Float
	if got := z.FromInt(3).Div(z.FromInt(2)); got != 1.5 {
		t.Errorf("3/2: want 1.5, got %v", got)
	}
	if s := Float(0.1).String(); s != "0.1" {
		t.Errorf("0.1 renders as %q", s)
	}
	if _, err := Float(-8).Pow(1.0 / 3); err == nil {
		t.Error("no error for (-8)**(1/3)")
	}
	if r, err := Float(-2).Pow(3); err != nil || r != -8 {
		t.Errorf("(-2)**3: want -8, got %v with error %v", r, err)
	}
	if _, err := z.Funcs()["sqrt"].Call(nil, -1); err == nil {
		t.Error("no error for sqrt(-1)")
	}
}

func TestIntPayload(t *testing.T) {
	var z Int
	if got := z.FromInt(7).Div(z.FromInt(-2)); got != -3 {
		t.Errorf("7/-2: want -3, got %v", got)
	}
	if got := z.FromFloat(2.9); got != 2 {
		t.Errorf("FromFloat(2.9): want 2, got %v", got)
	}
	cases := []struct {
		x, y, want Int
	}{
		{2, 0, 1},
		{2, 1, 2},
		{3, 4, 81},
		{-2, 3, -8},
		{10, 18, 1e18},
	}
	for _, c := range cases {
		if r, err := c.x.Pow(c.y); err != nil || r != c.want {
			t.Errorf("%v**%v: want %v, got %v with error %v", c.x, c.y, c.want, r, err)
		}
	}
	if _, err := Int(2).Pow(-1); err == nil {
		t.Error("no error for 2**-1")
	}
	if _, err := z.ParseNumber("0x10"); err == nil {
		t.Error("parsed hex literal")
	}
}
