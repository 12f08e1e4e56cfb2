// Package expr evaluates integer arithmetic expressions over literals and
// variable references, with standard precedence and left associativity:
//
//	expression := term (('+' | '-') term)*
//	term       := factor (('*' | '/') factor)*
//	factor     := '(' expression ')' | ['+'|'-'] digits | identifier
//
// Evaluation is all-or-nothing: a malformed token, an unmatched
// parenthesis, or division by zero fails the whole expression and no
// partial result is exposed.
package expr

import (
	"errors"
	"fmt"
	"strconv"
)

// Resolver supplies numeric values for identifier factors.
type Resolver interface {
	Lookup(name string) int
}

// Eval evaluates input against vars.
func Eval(input string, vars Resolver) (int, error) {
	p := &parser{input: input, vars: vars}
	return p.expression()
}

type parser struct {
	input string
	pos   int
	vars  Resolver
}

func (p *parser) expression() (int, error) {
	v, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpace()
		switch p.peek() {
		case '+':
			p.pos++
			r, err := p.term()
			if err != nil {
				return 0, err
			}
			v += r
		case '-':
			p.pos++
			r, err := p.term()
			if err != nil {
				return 0, err
			}
			v -= r
		default:
			return v, nil
		}
	}
}

func (p *parser) term() (int, error) {
	v, err := p.factor()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpace()
		switch p.peek() {
		case '*':
			p.pos++
			r, err := p.factor()
			if err != nil {
				return 0, err
			}
			v *= r
		case '/':
			p.pos++
			r, err := p.factor()
			if err != nil {
				return 0, err
			}
			if r == 0 {
				return 0, errors.New("division by zero")
			}
			// Go integer division truncates toward zero.
			v /= r
		default:
			return v, nil
		}
	}
}

func (p *parser) factor() (int, error) {
	p.skipSpace()
	c := p.peek()
	if c == '(' {
		p.pos++
		v, err := p.expression()
		if err != nil {
			return 0, err
		}
		p.skipSpace()
		if p.peek() != ')' {
			return 0, errors.New("unmatched parenthesis")
		}
		p.pos++
		return v, nil
	}
	if c == '+' || c == '-' || isDigit(c) {
		start := p.pos
		if c == '+' || c == '-' {
			p.pos++
		}
		for isDigit(p.peek()) {
			p.pos++
		}
		n, err := strconv.Atoi(p.input[start:p.pos])
		if err != nil {
			return 0, fmt.Errorf("malformed number %q", p.input[start:p.pos])
		}
		return n, nil
	}
	start := p.pos
	for isIdentChar(p.peek()) {
		p.pos++
	}
	name := p.input[start:p.pos]
	if name == "" {
		return 0, fmt.Errorf("unexpected character %q", c)
	}
	return p.vars.Lookup(name), nil
}

func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// COBOL identifiers may contain hyphens, so "A-1" is a name, not a
// subtraction. Spaces around '-' make it an operator.
func isIdentChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || isDigit(c) || c == '-'
}
