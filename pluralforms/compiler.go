package pluralforms

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	eofTok = iota + 256
	invalidTok
	numTok
	eqTok
	neTok
	ltTok
	lteTok
	gtTok
	gteTok
	andTok
	orTok
)

type lexer struct {
	data string
	pos  int

	num int
}

// Lex returns the next token. Single character operators are returned
// as their byte value.
func (l *lexer) Lex() int {
	for {
		if l.pos >= len(l.data) {
			return eofTok
		}
		if l.data[l.pos] != ' ' && l.data[l.pos] != '\t' {
			break
		}
		l.pos += 1
	}

	pos := l.pos
	result := int(l.data[pos])
	l.pos += 1
	switch result {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		for l.pos < len(l.data) && l.data[l.pos] >= '0' && l.data[l.pos] <= '9' {
			l.pos += 1
		}
		if num, err := strconv.ParseInt(l.data[pos:l.pos], 10, 32); err == nil {
			l.num = int(num)
			return numTok
		}
		return invalidTok
	case '=':
		if l.pos < len(l.data) && l.data[l.pos] == '=' {
			l.pos += 1
			return eqTok
		}
		return invalidTok
	case '!':
		if l.pos < len(l.data) && l.data[l.pos] == '=' {
			l.pos += 1
			return neTok
		}
		return result
	case '&':
		if l.pos < len(l.data) && l.data[l.pos] == '&' {
			l.pos += 1
			return andTok
		}
		return invalidTok
	case '|':
		if l.pos < len(l.data) && l.data[l.pos] == '|' {
			l.pos += 1
			return orTok
		}
		return invalidTok
	case '<':
		if l.pos < len(l.data) && l.data[l.pos] == '=' {
			l.pos += 1
			return lteTok
		}
		return ltTok
	case '>':
		if l.pos < len(l.data) && l.data[l.pos] == '=' {
			l.pos += 1
			return gteTok
		}
		return gtTok
	case 'n', '?', ':', '(', ')', '*', '/', '%', '+', '-':
		// Return as is
		return result
	case ';', '\n':
		return eofTok
	default:
		return invalidTok
	}
}

// parser is a precedence climbing parser over the C subset used by
// the gettext Plural-Forms header.
type parser struct {
	lex lexer
	tok int
}

func (p *parser) next() {
	p.tok = p.lex.Lex()
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("cannot parse expression: %s at offset %d", fmt.Sprintf(format, args...), p.lex.pos)
}

func (p *parser) expect(tok int) error {
	if p.tok != tok {
		return p.errorf("unexpected token %s, expected %s", tokenName(p.tok), tokenName(tok))
	}
	p.next()
	return nil
}

// ternary: or ( '?' ternary ':' ternary )?
func (p *parser) ternary() (Expression, error) {
	test, err := p.binary(0)
	if err != nil {
		return nil, err
	}
	if p.tok != '?' {
		return test, nil
	}
	p.next()
	ifTrue, err := p.ternary()
	if err != nil {
		return nil, err
	}
	if err := p.expect(':'); err != nil {
		return nil, err
	}
	ifFalse, err := p.ternary()
	if err != nil {
		return nil, err
	}
	return ternaryExpr{test: test, ifTrue: ifTrue, ifFalse: ifFalse}, nil
}

// precedence levels, lowest first
var binaryLevels = [][]int{
	{orTok},
	{andTok},
	{eqTok, neTok},
	{ltTok, lteTok, gtTok, gteTok},
	{'+', '-'},
	{'*', '/', '%'},
}

func (p *parser) binary(level int) (Expression, error) {
	if level == len(binaryLevels) {
		return p.unary()
	}
	left, err := p.binary(level + 1)
	if err != nil {
		return nil, err
	}
	for {
		op := -1
		for _, tok := range binaryLevels[level] {
			if p.tok == tok {
				op = tok
				break
			}
		}
		if op < 0 {
			return left, nil
		}
		p.next()
		right, err := p.binary(level + 1)
		if err != nil {
			return nil, err
		}
		left = binaryExpr{op: op, left: left, right: right}
	}
}

func (p *parser) unary() (Expression, error) {
	switch p.tok {
	case '!':
		p.next()
		sub, err := p.unary()
		if err != nil {
			return nil, err
		}
		return notExpr{sub: sub}, nil
	case 'n':
		p.next()
		return countExpr{}, nil
	case numTok:
		value := p.lex.num
		p.next()
		return numberExpr(value), nil
	case '(':
		p.next()
		expr, err := p.ternary()
		if err != nil {
			return nil, err
		}
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		return expr, nil
	}
	return nil, p.errorf("unexpected token %s", tokenName(p.tok))
}

func tokenName(tok int) string {
	switch tok {
	case eofTok:
		return "end of expression"
	case invalidTok:
		return "invalid character"
	case numTok:
		return "number"
	case eqTok:
		return "=="
	case neTok:
		return "!="
	case ltTok:
		return "<"
	case lteTok:
		return "<="
	case gtTok:
		return ">"
	case gteTok:
		return ">="
	case andTok:
		return "&&"
	case orTok:
		return "||"
	}
	return strconv.QuoteRune(rune(tok))
}

// Compile a string containing a plural form expression to a Expression object.
func Compile(expr string) (Expression, error) {
	p := parser{lex: lexer{data: expr}}
	p.next()
	exp, err := p.ternary()
	if err != nil {
		return nil, err
	}
	if p.tok != eofTok {
		return nil, p.errorf("unexpected trailing %s", tokenName(p.tok))
	}
	return exp, nil
}

// MustCompile is like Compile but panics if the expression cannot be
// parsed.
func MustCompile(expr string) Expression {
	exp, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return exp
}

// ParseHeader extracts and compiles the plural expression from a
// Plural-Forms header value such as "nplurals=2; plural=(n != 1);".
func ParseHeader(header string) (nplurals int, expr Expression, err error) {
	for _, field := range strings.Split(header, ";") {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(key) {
		case "nplurals":
			nplurals, err = strconv.Atoi(value)
			if err != nil {
				return 0, nil, fmt.Errorf("invalid nplurals %q: %v", value, err)
			}
		case "plural":
			expr, err = Compile(value)
			if err != nil {
				return 0, nil, err
			}
		}
	}
	if expr == nil {
		return 0, nil, fmt.Errorf("no plural expression in %q", header)
	}
	return nplurals, expr, nil
}
