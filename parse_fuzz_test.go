//go:build go1.18
// +build go1.18

package symbolic_test

import (
	"testing"

	"github.com/zephyrtronium/symbolic"
)

func FuzzParse(f *testing.F) {
	f.Add("x")
	f.Add("y")
	f.Add("1×2")
	f.Add("-2^2^n")
	f.Add("sqrt^2 x")
	f.Fuzz(func(t *testing.T, s string) {
		e, err := symbolic.ParseString[symbolic.Float](s)
		if err != nil {
			return
		}
		// Infix output always parses, though not always to the same tree:
		// (-2)^x renders as -2**x.
		if _, err := symbolic.ParseString[symbolic.Float](e.String()); err != nil {
			t.Fatalf("%q rendered as %q, which doesn't parse: %v", s, e.String(), err)
		}
	})
}
