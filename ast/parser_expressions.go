/*
File    : exprscript/ast/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import "github.com/akashmaji946/exprscript/lexer"

// parseExpression is the Pratt loop (§4.4/§9): parse one prefix/primary
// expression, then repeatedly fold in infix/postfix continuations whose
// precedence is at least minPrec, climbing higher for right-associative
// operators so `2 ** 3 ** 2` parses as `2 ** (3 ** 2)`. Each descent charges
// one unit of the configured Pratt-parse call budget (§3/§5); a pathologically
// deep expression fails with ParseDepth instead of recursing unbounded.
func (p *Parser) parseExpression(minPrec int) (*Node, error) {
	if err := p.consumeParseBudget(); err != nil {
		return nil, attachTok(err, tokPtr(p.cur()))
	}

	prefixFn, ok := prefixRegistry[p.cur().Type]
	if !ok {
		return nil, syntaxErr(p.cur(), "unexpected token %s %q in expression position", p.cur().Type, p.cur().Literal)
	}
	left, err := prefixFn(p)
	if err != nil {
		return nil, err
	}

	for {
		tok := p.cur()
		prec := precedenceOf(tok)
		if prec == 0 || prec < minPrec {
			break
		}
		infixFn, ok := infixRegistry[tok.Type]
		if !ok {
			break
		}
		left, err = infixFn(p, left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

// nextMinPrecFor computes the minimum precedence an infix parser should
// require of its own right-hand recursive call, given the operator it is
// handling: one above its own power for left-associative operators (so
// `a - b - c` groups left), the same power for right-associative ones (so
// `a ** b ** c` groups right).
func nextMinPrecFor(tok lexer.Token) int {
	if isRightAssoc(tok) {
		return precedenceOf(tok)
	}
	return precedenceOf(tok) + 1
}
