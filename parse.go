package symbolic

import (
	"io"
	"strings"
)

// Expr = num | name | Call | Neg | Plus | Binary | Juxt | '(' Expr ')' | '[' Expr ']' | '{' Expr '}'
// Call = funcname Expr | funcname '(' Expr ')' | funcname Pow Expr
// Neg = '-' Expr
// Plus = '+' Expr
// Binary = Expr ('+' | '-' | '*' | '×' | '/' | '÷' | '^' | '**') Expr
// Juxt = Expr Expr

// Parse parses an expression over payload T. Numeric literals are converted
// with T's ParseNumber method if it has one, otherwise through FromFloat.
// The given options are applied in order.
func Parse[T Number[T]](src io.RuneScanner, opts ...ParseOption) (*Expr[T], error) {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	ps := parser[T]{scan: lex(src), p: &p}
	e, err := ps.term(exprprec)
	if err != nil {
		return nil, err
	}
	tok := ps.scan.must()
	switch tok.kind {
	case tokenEOF:
	case tokenSep:
		switch {
		case p.ceof && tok.text == ",":
		case p.seof && tok.text == ";":
		default:
			return nil, unexpectedEnd(tok, "")
		}
	default:
		return nil, unexpectedEnd(tok, "")
	}
	if e == nil {
		return nil, &EmptyExpressionError{Col: tok.pos, End: tok.text}
	}
	return e, nil
}

// ParseString is a shortcut to parse an expression from a string.
func ParseString[T Number[T]](src string, opts ...ParseOption) (*Expr[T], error) {
	return Parse[T](strings.NewReader(src), opts...)
}

type parser[T Number[T]] struct {
	scan *lexer
	p    *parsectx
}

// term parses a single term. If there is no error, then term pushes the last
// token it scans, including EOF. If the input is an empty subexpression, the
// result is nil with no error; callers must create an error in contexts where
// empty subexpressions are illegal.
func (ps *parser[T]) term(until operator) (*Expr[T], error) {
	n, err := ps.lhs(until)
	if err != nil || n == nil {
		return nil, err
	}
	for {
		tok, err := ps.scan.next(ps.p.wseof)
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenNum, tokenIdent:
			// (parsed) x -> (parsed) * (x)
			// (parsed) x^(expr) -> (parsed) * (x^(expr))
			// a^(parsed) x -> (a^(parsed)) * (x)
			ps.scan.push(tok)
			if !termprec.moreBinding(until) {
				return n, nil
			}
			rhs, err := ps.term(termprec)
			if err != nil {
				return nil, err
			}
			n = n.Mul(rhs)
		case tokenOp:
			prec := binop(tok.text)
			if prec.op == OpNone {
				return nil, &OperatorError{Col: tok.pos, Operator: tok.text}
			}
			if !prec.moreBinding(until) {
				ps.scan.push(tok)
				return n, nil
			}
			rhs, err := ps.operand(prec)
			if err != nil {
				return nil, err
			}
			n = Binary(prec.op, n, rhs)
		case tokenOpen:
			// lhs handles function calls, so this is a multiplication by a
			// bracketed term: 2 (expr) -> (2) * (expr).
			if !termprec.moreBinding(until) {
				ps.scan.push(tok)
				return n, nil
			}
			rhs, err := ps.group(tok)
			if err != nil {
				return nil, err
			}
			n = n.Mul(rhs)
		case tokenClose, tokenSep, tokenEOF:
			ps.scan.push(tok)
			return n, nil
		default:
			panic("symbolic: unknown token: " + tok.String())
		}
	}
}

// operand parses a term which must not be empty.
func (ps *parser[T]) operand(until operator) (*Expr[T], error) {
	n, err := ps.term(until)
	if err != nil {
		return nil, err
	}
	if n == nil {
		end := ps.scan.must()
		return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
	}
	return n, nil
}

// lhs parses the first component of a term. Operators are unary here, and
// whitespace normally lexed as EOF is ignored.
func (ps *parser[T]) lhs(until operator) (*Expr[T], error) {
	tok, err := ps.scan.next("")
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenNum:
		v, err := parsenum[T](tok.text)
		if err != nil {
			return nil, &LexError{Text: tok.text, Kind: "number", Col: tok.pos}
		}
		return Lit(v), nil
	case tokenIdent:
		if ps.p.isfunc(tok.text) {
			return ps.call(tok, until)
		}
		return Sym[T](tok.text), nil
	case tokenOp:
		prec, neg, ok := unop(tok.text)
		if !ok {
			return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: true}
		}
		if !prec.moreBinding(until) {
			// x^-y -> x^(-y)
			prec.prec, prec.right = until.prec, until.right
		}
		x, err := ps.operand(prec)
		if err != nil {
			return nil, err
		}
		switch {
		case !neg:
			return x, nil
		case x.kind == KindLiteral:
			return Lit(x.val.Neg()), nil
		default:
			return x.Neg(), nil
		}
	case tokenOpen:
		return ps.group(tok)
	case tokenClose:
		// Let the caller decide whether an empty group is an error.
		ps.scan.push(tok)
		return nil, nil
	case tokenSep:
		if tok.text == "," && ps.p.ceof || tok.text == ";" && ps.p.seof {
			ps.scan.push(tok)
			return nil, nil
		}
		return nil, &SeparatorError{Col: tok.pos, Sep: tok.text}
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos}
	default:
		panic("symbolic: unknown token: " + tok.String())
	}
}

// group parses a bracketed subexpression following the open bracket.
func (ps *parser[T]) group(open token) (*Expr[T], error) {
	n, err := ps.term(exprprec)
	if err != nil {
		return nil, err
	}
	end := ps.scan.must()
	if end.kind != tokenClose || end.text != rightbracket(open.text) {
		return nil, unexpectedEnd(end, open.text)
	}
	if n == nil {
		return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
	}
	return n, nil
}

// call parses the argument to a unary function. A power directly after the
// function name applies to the result: sqrt^2 x -> (sqrt(x))^2.
func (ps *parser[T]) call(fn token, until operator) (*Expr[T], error) {
	// Respect whitespace EOF here so that sqrt\nx doesn't string together
	// expressions.
	tok, err := ps.scan.next(ps.p.wseof)
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenOp:
		if binop(tok.text).op == OpPow {
			up, err := ps.operand(powprec)
			if err != nil {
				return nil, err
			}
			x, err := ps.call(fn, until)
			if err != nil {
				return nil, err
			}
			return x.Pow(up), nil
		}
		// Other operators begin the argument: sqrt -x -> sqrt(-x).
		fallthrough
	case tokenNum, tokenIdent:
		ps.scan.push(tok)
		if termprec.moreBinding(until) {
			until = termprec
		}
		x, err := ps.operand(until)
		if err != nil {
			return nil, err
		}
		return Unary(fn.text, x), nil
	case tokenOpen:
		args, err := ps.arglist(tok)
		if err != nil {
			return nil, err
		}
		if len(args) != 1 {
			return nil, &CallError{Col: tok.pos, Func: fn.text, Len: len(args)}
		}
		return Unary(fn.text, args[0]), nil
	case tokenClose, tokenSep, tokenEOF:
		return nil, &CallError{Col: tok.pos, Func: fn.text}
	default:
		panic("symbolic: unknown token: " + tok.String())
	}
}

// arglist parses a bracketed list of zero or more arguments following the
// open bracket, including the close bracket.
func (ps *parser[T]) arglist(open token) ([]*Expr[T], error) {
	var args []*Expr[T]
	for {
		x, err := ps.term(exprprec)
		if err != nil {
			// Reporting the unclosed bracket is more helpful than reporting
			// an empty expression.
			if ee, _ := err.(*EmptyExpressionError); ee != nil && ee.End == "" {
				err = &BracketError{Col: ee.Col, Left: open.text}
			}
			return nil, err
		}
		end := ps.scan.must()
		switch end.kind {
		case tokenClose:
			if end.text != rightbracket(open.text) {
				return nil, &BracketError{Col: end.pos, Left: open.text, Right: end.text}
			}
			if x == nil {
				// f() is allowed so that it can be reported as a call with
				// no arguments, but f(a,) isn't.
				if len(args) != 0 {
					return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
				}
				return nil, nil
			}
			return append(args, x), nil
		case tokenSep:
			if x == nil {
				return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
			}
			args = append(args, x)
		case tokenEOF:
			return nil, &BracketError{Col: end.pos, Left: open.text}
		default:
			panic("symbolic: argument ended on non-end token " + end.String())
		}
	}
}

// rightbracket gets the closing bracket for an opening bracket.
func rightbracket(left string) string {
	k := strings.Index(OpenBrackets, left)
	if k < 0 || len(left) != 1 {
		panic("symbolic: invalid bracket " + left)
	}
	return CloseBrackets[k : k+1]
}

// unexpectedEnd returns an error appropriate for an unexpected token at the
// end of a subexpression. open is the bracket the subexpression should have
// closed, or empty if none.
func unexpectedEnd(tok token, open string) error {
	switch tok.kind {
	case tokenEOF:
		return &BracketError{Col: tok.pos, Left: open}
	case tokenClose:
		return &BracketError{Col: tok.pos, Left: open, Right: tok.text}
	case tokenSep:
		return &SeparatorError{Col: tok.pos, Sep: tok.text}
	default:
		panic("symbolic: subexpression ended on " + tok.String())
	}
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node operator to use when this operator is selected.
	op Op
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of OpNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, OpAdd}
	case "-":
		return operator{1, false, OpSub}
	case "*", "×":
		return operator{5, false, OpMul}
	case "/", "÷":
		return operator{5, false, OpDiv}
	case "^", "**":
		return operator{15, true, OpPow}
	default:
		return operator{}
	}
}

// unop gets a unary operator for a token string and whether it negates.
func unop(text string) (p operator, neg, ok bool) {
	switch text {
	case "+":
		return operator{10, true, OpNone}, false, true
	case "-":
		return operator{10, true, OpNone}, true, true
	default:
		return operator{}, false, false
	}
}

var (
	// termprec is the precedence for juxtaposed terms. Its prec matches that
	// of multiplication.
	termprec = operator{5, true, OpMul}
	// powprec is the precedence of exponentiation.
	powprec = binop("**")
	// exprprec is the precedence required to parse an entire subexpression.
	exprprec = operator{-128, true, OpNone}
)
