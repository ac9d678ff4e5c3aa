package symbolic

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type token struct {
	text string
	kind tokenKind
	pos  int
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a numeric literal.
	tokenNum
	// tokenIdent is a symbol or function name.
	tokenIdent
	// tokenOp is an operator.
	tokenOp
	// tokenOpen is an open bracket, e.g. (.
	tokenOpen
	// tokenClose is a close bracket, e.g. ).
	tokenClose
	// tokenSep is a comma or semicolon.
	tokenSep
)

func (k tokenKind) String() string {
	switch k {
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenIdent:
		return "Ident"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	case tokenSep:
		return "Sep"
	default:
		return "None"
	}
}

// Operators contains the runes which begin operators. A doubled * is the
// power operator **.
const Operators = "+-*/^×÷"

// OpenBrackets and CloseBrackets contain the runes which group expressions.
// The bracket at rune index k in OpenBrackets matches the bracket at rune index
// k in CloseBrackets.
const (
	OpenBrackets  = "([{"
	CloseBrackets = ")]}"
)

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	col  int
	back token
	eof  bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src, col: 1}
}

// push unreads a token so that it is the next token returned from next. Panics
// if there is already a pushed token.
func (l *lexer) push(tok token) {
	if l.back.kind != tokenNone {
		panic("symbolic: double push")
	}
	l.back = tok
}

// must takes the pushed token. Panics if there is none.
func (l *lexer) must() token {
	tok := l.back
	if tok.kind == tokenNone {
		panic("symbolic: no pushed token")
	}
	l.back = token{}
	return tok
}

func (l *lexer) readRune() (rune, error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.col++
	}
	return r, err
}

// unreadRune unreads the last rune. Panics if the source refuses.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.col--
}

// next scans the next token. Whitespace runes in wseof end the input as if
// they were EOF. The first EOF is an EOF token with a nil error; after that,
// next returns io.EOF unless a token is pushed.
func (l *lexer) next(wseof string) (token, error) {
	if l.back.kind != tokenNone {
		return l.must(), nil
	}
	if l.eof {
		return token{}, io.EOF
	}
	defer l.buf.Reset()
	tok := token{pos: l.col}
	for {
		r, err := l.readRune()
		if errors.Is(err, io.EOF) {
			tok.kind = tokenEOF
			l.eof = true
			return tok, nil
		}
		if err != nil {
			return tok, err
		}
		if unicode.IsSpace(r) {
			if strings.ContainsRune(wseof, r) {
				tok.kind = tokenEOF
				l.eof = true
				return tok, nil
			}
			tok.pos++
			continue
		}
		return l.classify(tok, r)
	}
}

// classify finishes scanning a token which begins with r.
func (l *lexer) classify(tok token, r rune) (token, error) {
	switch {
	case '0' <= r && r <= '9', r == '.':
		l.unreadRune()
		if err := l.scanNum(); err != nil {
			return tok, err
		}
		tok.text, tok.kind = l.buf.String(), tokenNum
	case r == '_', unicode.IsLetter(r):
		l.unreadRune()
		if err := l.scanIdent(); err != nil {
			return tok, err
		}
		tok.text, tok.kind = l.buf.String(), tokenIdent
		// inf looks like an identifier.
		if tok.text == "inf" || tok.text == "Inf" {
			tok.kind = tokenNum
		}
	case r == '∞':
		tok.text, tok.kind = "∞", tokenNum
	case r == ',', r == ';':
		tok.text, tok.kind = string(r), tokenSep
	case r == '*':
		tok.text, tok.kind = "*", tokenOp
		n, err := l.readRune()
		switch {
		case err == nil && n == '*':
			tok.text = "**"
		case err == nil:
			l.unreadRune()
		case !errors.Is(err, io.EOF):
			return tok, err
		}
	case strings.ContainsRune(Operators, r):
		tok.text, tok.kind = string(r), tokenOp
	case strings.ContainsRune(OpenBrackets, r):
		tok.text, tok.kind = string(r), tokenOpen
	case strings.ContainsRune(CloseBrackets, r):
		tok.text, tok.kind = string(r), tokenClose
	default:
		// Include the rune in the error message.
		l.buf.WriteRune(r)
		return tok, l.error("")
	}
	return tok, nil
}

// numstate tracks what has been seen while scanning a number.
type numstate struct {
	// dig and edig record digits in the mantissa and exponent.
	dig, edig bool
	// dot and exp record the decimal point and exponent marker.
	dot, exp bool
	// sign records that a sign may follow, i.e. the last rune was the
	// exponent marker.
	sign bool
}

func (l *lexer) scanNum() error {
	var s numstate
	for {
		r, err := l.readRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if unicode.IsSpace(r) {
			l.unreadRune()
			break
		}
		if (r == '+' || r == '-') && s.sign {
			s.sign = false
			l.buf.WriteRune(r)
			continue
		}
		if strings.ContainsRune(Operators+OpenBrackets+CloseBrackets+",;", r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
		switch {
		case r == '.':
			if s.dot || s.exp {
				return l.error("number")
			}
			s.dot, s.sign = true, false
		case r == 'e', r == 'E':
			if !s.dig || s.exp {
				return l.error("number")
			}
			s.exp, s.sign = true, true
		case '0' <= r && r <= '9':
			if s.exp {
				s.edig = true
			} else {
				s.dig = true
			}
			s.sign = false
		default:
			return l.error("number")
		}
	}
	if !s.dig || s.exp && !s.edig {
		return l.error("number")
	}
	return nil
}

func (l *lexer) scanIdent() error {
	for {
		r, err := l.readRune()
		if errors.Is(err, io.EOF) {
			// classify unreads the first rune, so there is at least one.
			return nil
		}
		if err != nil {
			return err
		}
		if r != '_' && r != '.' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

func (l *lexer) error(kind string) error {
	return &LexError{Text: l.buf.String(), Kind: kind, Col: l.col}
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning, including the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning, either "number" or
	// the empty string if the token kind wasn't yet decided.
	Kind string
	// Col is the number of runes scanned up to and including the error.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}
