package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/zephyrtronium/symbolic"
)

const historyFile = ".symbolic_history"

// repl reads expressions interactively until EOF or :quit. A line of the form
// name = expr evaluates expr and binds the result to name.
func repl[T symbolic.Number[T]](ctx *symbolic.Context[T], cfg config) error {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt("> ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case ":q", ":quit":
			return nil
		}
		ln.AppendHistory(line)
		if err := replLine(os.Stdout, ctx, line, cfg); err != nil {
			fmt.Println("error:", err)
		}
	}
}

// replLine handles one line of REPL input.
func replLine[T symbolic.Number[T]](w io.Writer, ctx *symbolic.Context[T], line string, cfg config) error {
	name, src, ok := strings.Cut(line, "=")
	if !ok {
		e, err := symbolic.ParseString[T](line)
		if err != nil {
			return err
		}
		report(w, ctx, e, cfg)
		return nil
	}
	name = strings.TrimSpace(name)
	e, err := symbolic.ParseString[T](src)
	if err != nil {
		return err
	}
	r, err := ctx.Eval(e)
	if err != nil {
		return err
	}
	ctx.Set(name, r)
	fmt.Fprintln(w, name, "=", r)
	return nil
}
