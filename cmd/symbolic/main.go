package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/zephyrtronium/symbolic"
)

func main() {
	log.SetFlags(0)
	app := &cli.App{
		Name:      "symbolic",
		Usage:     "parse, simplify, and evaluate symbolic expressions",
		ArgsUsage: "[expression...]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "in", Usage: "input file (default stdin if no args given)"},
			&cli.StringSliceFlag{Name: "given", Usage: "name=value variable definition (any number of times)"},
			&cli.IntFlag{Name: "p", Value: symbolic.DefaultPrec, Usage: "precision of calculations in bits, with -big"},
			&cli.BoolFlag{Name: "big", Usage: "evaluate with arbitrary-precision floats"},
			&cli.BoolFlag{Name: "n", Usage: "parse separate input lines as separate expressions"},
			&cli.BoolFlag{Name: "echo", Usage: "print parse trees"},
			&cli.BoolFlag{Name: "rpn", Usage: "print expressions in postfix notation"},
			&cli.BoolFlag{Name: "simplify", Usage: "simplify expressions once before evaluating"},
			&cli.IntFlag{Name: "fixpoint", Usage: "simplify expressions up to `N` times before evaluating"},
			&cli.BoolFlag{Name: "repl", Usage: "read expressions interactively"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// config is the parsed command line.
type config struct {
	in       string
	given    []string
	prec     uint
	lines    bool
	echo     bool
	rpn      bool
	simplify bool
	fixpoint int
}

func run(c *cli.Context) error {
	p := c.Int("p")
	if p <= 0 {
		return fmt.Errorf("precision (%d) must be positive", p)
	}
	cfg := config{
		in:       c.String("in"),
		given:    c.StringSlice("given"),
		prec:     uint(p),
		lines:    c.Bool("n"),
		echo:     c.Bool("echo"),
		rpn:      c.Bool("rpn"),
		simplify: c.Bool("simplify"),
		fixpoint: c.Int("fixpoint"),
	}
	if c.Bool("big") {
		return execute[symbolic.BigFloat](c, cfg)
	}
	return execute[symbolic.Float](c, cfg)
}

func execute[T symbolic.Number[T]](c *cli.Context, cfg config) error {
	ctx := symbolic.NewContext[T](symbolic.Prec(cfg.prec))
	for _, d := range cfg.given {
		nm, vl, ok := strings.Cut(d, "=")
		if !ok {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, d)
		}
		nm = strings.TrimSpace(nm)
		r, err := symbolic.EvalString[T](strings.TrimSpace(vl), symbolic.Prec(cfg.prec))
		if err != nil {
			return fmt.Errorf("setting %s: %w", nm, err)
		}
		ctx.Set(nm, r)
	}
	if c.Bool("repl") {
		return repl(ctx, cfg)
	}

	var ins []io.RuneScanner
	f, err := infile(cfg.in, c.NArg() == 0)
	if err != nil {
		return err
	}
	if f != nil {
		ins = append(ins, f)
	}
	for _, arg := range c.Args().Slice() {
		ins = append(ins, strings.NewReader(arg))
	}

	var opts []symbolic.ParseOption
	if cfg.lines {
		opts = append(opts, symbolic.StopOn('\n'))
	}
	var p []*symbolic.Expr[T]
	for _, in := range ins {
		for {
			// First check whether we're done with the input.
			if _, _, err := in.ReadRune(); err != nil {
				if err == io.EOF {
					break
				}
				return err
			}
			in.UnreadRune()
			a, err := symbolic.Parse[T](in, opts...)
			if err != nil {
				return err
			}
			p = append(p, a)
		}
	}
	for _, a := range p {
		report(os.Stdout, ctx, a, cfg)
	}
	return nil
}

func infile(inname string, std bool) (io.RuneScanner, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	return bufio.NewReader(f), nil
}
