package symbolic

import (
	"strconv"
	"unicode"
)

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	funcopt struct {
		name string
		on   bool
	}
	eofopt struct {
		c, s bool
		ws   string
	}
	nodefaultsopt struct{}
)

// parsectx holds settings for a single parse.
type parsectx struct {
	// funcs maps names to whether they parse as unary function calls. Names
	// not in funcs are symbols.
	funcs map[string]bool
	// wseof is a string containing the whitespace characters that trigger an
	// EOF token from the lexer.
	wseof string
	// ceof and seof indicate whether commas and semicolons, respectively, are
	// allowed at the end of an expression.
	ceof, seof bool
}

// defaultfuncs are the names parsed as unary functions unless disabled.
var defaultfuncs = []string{"abs", "sqrt", "exp", "ln", "log", "cos", "sin", "tan"}

// setfunc records a function setting, copying funcs first so that options
// never share state between parses.
func (p parsectx) setfunc(name string, on bool) parsectx {
	m := make(map[string]bool, len(p.funcs)+1)
	for k, v := range p.funcs {
		m[k] = v
	}
	m[name] = on
	p.funcs = m
	return p
}

// ParseFunc makes the parser treat name as a unary function, so that "name x"
// and "name(x)" produce a Unary node.
func ParseFunc(name string) ParseOption {
	return funcopt{name: name, on: true}
}

// DisableFunc makes the parser treat name as a symbol, even if it is one of
// the default functions.
func DisableFunc(name string) ParseOption {
	return funcopt{name: name, on: false}
}

func (o funcopt) parseOption(p parsectx) parsectx {
	return p.setfunc(o.name, o.on)
}

// DisableDefaultFuncs disables all default functions during parsing. Their
// names will be parsed as symbols instead.
func DisableDefaultFuncs() ParseOption {
	return nodefaultsopt{}
}

func (nodefaultsopt) parseOption(p parsectx) parsectx {
	for _, name := range defaultfuncs {
		p = p.setfunc(name, false)
	}
	return p
}

// StopOn tells the parser to treat a list of characters as ending the
// expression. Each rune must be a comma, semicolon, or whitespace codepoint.
// Whitespace does not end an expression where a term is expected, e.g. at the
// beginning of an expression or following an operator or bracket.
//
// StopOn overrides the effect of any previous StopOn. With no arguments, it
// restores the default, which is to parse to EOF.
func StopOn(chars ...rune) ParseOption {
	var o eofopt
	v := make([]rune, 0, len(chars))
	for _, r := range chars {
		switch {
		case r == ',':
			o.c = true
		case r == ';':
			o.s = true
		case unicode.IsSpace(r):
			if !containsRune(v, r) {
				v = append(v, r)
			}
		default:
			panic("symbolic: cannot stop on " + strconv.QuoteRune(r))
		}
	}
	o.ws = string(v)
	return o
}

func (o eofopt) parseOption(p parsectx) parsectx {
	p.ceof = o.c
	p.seof = o.s
	p.wseof = o.ws
	return p
}

func containsRune(v []rune, r rune) bool {
	for _, c := range v {
		if c == r {
			return true
		}
	}
	return false
}

// isfunc reports whether name parses as a function call.
func (p *parsectx) isfunc(name string) bool {
	if on, ok := p.funcs[name]; ok {
		return on
	}
	for _, f := range defaultfuncs {
		if f == name {
			return true
		}
	}
	return false
}
