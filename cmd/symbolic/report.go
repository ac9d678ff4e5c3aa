package main

import (
	"fmt"
	"io"

	"github.com/zephyrtronium/symbolic"
)

// report writes the forms of e selected by cfg, then its value in ctx. An
// evaluation error, typically a symbol with no value, is written in place of
// the value.
func report[T symbolic.Number[T]](w io.Writer, ctx *symbolic.Context[T], e *symbolic.Expr[T], cfg config) {
	if cfg.echo {
		fmt.Fprintf(w, "%s : ", e.Tree())
	}
	fmt.Fprintln(w, e)
	if cfg.rpn {
		fmt.Fprintln(w, "rpn:", e.RPN())
	}
	switch {
	case cfg.fixpoint > 0:
		s, n := e.SimplifyFixpoint(cfg.fixpoint)
		fmt.Fprintf(w, "simplified in %d passes: %v\n", n, s)
		e = s
	case cfg.simplify:
		e = e.Simplify()
		fmt.Fprintln(w, "simplified:", e)
	}
	r, err := ctx.Eval(e)
	if err != nil {
		fmt.Fprintln(w, "error:", err)
		return
	}
	fmt.Fprintln(w, "=", r)
}
