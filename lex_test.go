package symbolic

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []token
	}{
		// spaces
		{"", nil},
		{" \t \r\n ", nil},
		// numbers
		{"0", []token{{text: "0", kind: tokenNum, pos: 1}}},
		{"9876543210", []token{{text: "9876543210", kind: tokenNum, pos: 1}}},
		{"1 0", []token{{text: "1", kind: tokenNum, pos: 1}, {text: "0", kind: tokenNum, pos: 3}}},
		{"1.0", []token{{text: "1.0", kind: tokenNum, pos: 1}}},
		{"-1", []token{{text: "-", kind: tokenOp, pos: 1}, {text: "1", kind: tokenNum, pos: 2}}},
		{"1e1", []token{{text: "1e1", kind: tokenNum, pos: 1}}},
		{"1e+1", []token{{text: "1e+1", kind: tokenNum, pos: 1}}},
		{"1e-1", []token{{text: "1e-1", kind: tokenNum, pos: 1}}},
		{"1.0e1", []token{{text: "1.0e1", kind: tokenNum, pos: 1}}},
		{".1", []token{{text: ".1", kind: tokenNum, pos: 1}}},
		{".1e1", []token{{text: ".1e1", kind: tokenNum, pos: 1}}},
		{"inf", []token{{text: "inf", kind: tokenNum, pos: 1}}},
		{"Inf", []token{{text: "Inf", kind: tokenNum, pos: 1}}},
		{"∞", []token{{text: "∞", kind: tokenNum, pos: 1}}},
		{"1+0", []token{{text: "1", kind: tokenNum, pos: 1}, {text: "+", kind: tokenOp, pos: 2}, {text: "0", kind: tokenNum, pos: 3}}},
		{"1*0", []token{{text: "1", kind: tokenNum, pos: 1}, {text: "*", kind: tokenOp, pos: 2}, {text: "0", kind: tokenNum, pos: 3}}},
		{"(1)", []token{{text: "(", kind: tokenOpen, pos: 1}, {text: "1", kind: tokenNum, pos: 2}, {text: ")", kind: tokenClose, pos: 3}}},
		// identifiers
		{"e", []token{{text: "e", kind: tokenIdent, pos: 1}}},
		{"e1", []token{{text: "e1", kind: tokenIdent, pos: 1}}},
		{"π", []token{{text: "π", kind: tokenIdent, pos: 1}}},
		{"eπ", []token{{text: "eπ", kind: tokenIdent, pos: 1}}},
		{"_1234_", []token{{text: "_1234_", kind: tokenIdent, pos: 1}}},
		{"e(", []token{{text: "e", kind: tokenIdent, pos: 1}, {text: "(", kind: tokenOpen, pos: 2}}},
		// operators
		{"+", []token{{text: "+", kind: tokenOp, pos: 1}}},
		{"++", []token{{text: "+", kind: tokenOp, pos: 1}, {text: "+", kind: tokenOp, pos: 2}}},
		{"*", []token{{text: "*", kind: tokenOp, pos: 1}}},
		{"**", []token{{text: "**", kind: tokenOp, pos: 1}}},
		{"x**2", []token{{text: "x", kind: tokenIdent, pos: 1}, {text: "**", kind: tokenOp, pos: 2}, {text: "2", kind: tokenNum, pos: 4}}},
		{"***", []token{{text: "**", kind: tokenOp, pos: 1}, {text: "*", kind: tokenOp, pos: 3}}},
		{"a--b", []token{{text: "a", kind: tokenIdent, pos: 1}, {text: "-", kind: tokenOp, pos: 2}, {text: "-", kind: tokenOp, pos: 3}, {text: "b", kind: tokenIdent, pos: 4}}},
		{"a×b", []token{{text: "a", kind: tokenIdent, pos: 1}, {text: "×", kind: tokenOp, pos: 2}, {text: "b", kind: tokenIdent, pos: 3}}},
		// brackets and separators
		{"[]", []token{{text: "[", kind: tokenOpen, pos: 1}, {text: "]", kind: tokenClose, pos: 2}}},
		{"{}", []token{{text: "{", kind: tokenOpen, pos: 1}, {text: "}", kind: tokenClose, pos: 2}}},
		{"a,b;", []token{{text: "a", kind: tokenIdent, pos: 1}, {text: ",", kind: tokenSep, pos: 2}, {text: "b", kind: tokenIdent, pos: 3}, {text: ";", kind: tokenSep, pos: 4}}},
	}
	for _, c := range cases {
		scan := lex(strings.NewReader(c.src))
		for _, want := range c.tokens {
			got, err := scan.next("")
			if err != nil {
				t.Errorf("scanning %q: unexpected error %v", c.src, err)
				break
			}
			if got != want {
				t.Errorf("scanning %q: want %v, got %v", c.src, want, got)
			}
		}
		if got, err := scan.next(""); err != nil || got.kind != tokenEOF {
			t.Errorf("scanning %q: want EOF, got %v with error %v", c.src, got, err)
		}
		if _, err := scan.next(""); !errors.Is(err, io.EOF) {
			t.Errorf("scanning %q: want io.EOF after EOF token, got %v", c.src, err)
		}
	}
}

func TestLexErrors(t *testing.T) {
	cases := []struct {
		src  string
		text string
		kind string
	}{
		{"$", "$", ""},
		{"1e", "1e", "number"},
		{"1a", "1a", "number"},
		{".", ".", "number"},
		{"1.1.1", "1.1.", "number"},
		{"1e1e1", "1e1e", "number"},
	}
	for _, c := range cases {
		scan := lex(strings.NewReader(c.src))
		_, err := scan.next("")
		var lerr *LexError
		if !errors.As(err, &lerr) {
			t.Errorf("scanning %q: want *LexError, got %#v", c.src, err)
			continue
		}
		if lerr.Text != c.text || lerr.Kind != c.kind {
			t.Errorf("scanning %q: want text %q kind %q, got %q %q", c.src, c.text, c.kind, lerr.Text, lerr.Kind)
		}
		if lerr.Pos() <= 0 {
			t.Errorf("scanning %q: bad position %d", c.src, lerr.Pos())
		}
	}
}

func TestLexStopOn(t *testing.T) {
	scan := lex(strings.NewReader("x\ny"))
	tok, err := scan.next("\n")
	if err != nil || tok.text != "x" {
		t.Fatalf("want x, got %v with error %v", tok, err)
	}
	tok, err = scan.next("\n")
	if err != nil || tok.kind != tokenEOF {
		t.Fatalf("want EOF at newline, got %v with error %v", tok, err)
	}
}

func TestLexPush(t *testing.T) {
	scan := lex(strings.NewReader("x y"))
	x, _ := scan.next("")
	scan.push(x)
	if got, _ := scan.next(""); got != x {
		t.Errorf("pushed %v, got %v", x, got)
	}
	defer func() {
		if recover() == nil {
			t.Error("double push didn't panic")
		}
	}()
	scan.push(x)
	scan.push(x)
}
