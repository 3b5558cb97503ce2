/*
File    : exprscript/ast/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"strings"

	"github.com/akashmaji946/exprscript/lexer"
)

// parseIf handles `if cond then a else b` (§4.5: "evaluates exactly one
// branch"). The else clause is optional.
func (p *Parser) parseIf() (*Node, error) {
	kw := p.advance() // if
	cond, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.THEN_KEY); err != nil {
		return nil, err
	}
	thenBranch, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	node := &Node{Kind: KindIf, Tok: tokPtr(kw), Cond: cond, Then: thenBranch}
	if p.cur().Type == lexer.ELSE_KEY {
		p.advance()
		elseBranch, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		node.Else = elseBranch
	}
	return node, nil
}

// parseWhile handles `while cond do body`.
func (p *Parser) parseWhile() (*Node, error) {
	kw := p.advance() // while
	cond, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.DO_KEY); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &Node{Kind: KindWhile, Tok: tokPtr(kw), Cond: cond, Then: body}, nil
}

// parseForIn handles `for v in e do body`. `e` may evaluate to an array,
// object (iterates keys), range, or string (grapheme-wise) per §4.5.
func (p *Parser) parseForIn() (*Node, error) {
	kw := p.advance() // for
	iterVar, err := p.expect(lexer.IDENTIFIER_ID)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.IN_KEY); err != nil {
		return nil, err
	}
	iterable, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.DO_KEY); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &Node{Kind: KindForIn, Tok: tokPtr(kw), IterVar: iterVar.Literal, Iterable: iterable, Then: body}, nil
}

// parseReturn handles `return expr`. A bare `return` with nothing before
// the statement terminator returns nil.
func (p *Parser) parseReturn() (*Node, error) {
	kw := p.advance() // return
	switch p.cur().Type {
	case lexer.SEMICOLON_DELIM, lexer.RIGHT_BRACE, lexer.EOF_TYPE:
		return &Node{Kind: KindReturn, Tok: tokPtr(kw)}, nil
	}
	expr, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	return &Node{Kind: KindReturn, Tok: tokPtr(kw), Right: expr}, nil
}

// parseGlobalAssign handles `global name = expr`, which always writes the
// global store regardless of any same-named local in scope (§4.5).
func (p *Parser) parseGlobalAssign() (*Node, error) {
	kw := p.advance() // global
	name, err := p.expect(lexer.IDENTIFIER_ID)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.ASSIGN_OP); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	return &Node{Kind: KindGlobalAssign, Tok: tokPtr(kw), Name: name.Literal, Right: value}, nil
}

// tryParseFunctionDecl recognizes the two function-declaration shapes,
// `name(args) = expr` and `name(args) { stmts }`, via lookahead from an
// IDENTIFIER_ID followed by `(`. Any other continuation (the common case of
// a bare call expression like `f(1, 2)`) rewinds the parser and reports
// ok=false so parseStatement falls back to parseExpression, whose own
// LEFT_PAREN infix entry (parseCall) handles it.
//
// The body is parsed once here (to find where it ends — Tokens carry no
// byte offsets to slice by) and its token span is kept on the node as
// BodyTokens/BodyKey; the AST built during this pass is discarded, and the
// body is recompiled lazily from BodyTokens the first time the function is
// called, through state.State.CompiledBody's cache.
func (p *Parser) tryParseFunctionDecl() (*Node, bool, error) {
	if p.cur().Type != lexer.IDENTIFIER_ID || p.peek(1).Type != lexer.LEFT_PAREN {
		return nil, false, nil
	}
	saved := p.pos
	nameTok := p.advance()
	p.advance() // (

	var params []string
	ok := func() bool {
		for p.cur().Type != lexer.RIGHT_PAREN {
			if p.cur().Type != lexer.IDENTIFIER_ID {
				return false
			}
			params = append(params, p.advance().Literal)
			if p.cur().Type == lexer.COMMA_DELIM {
				p.advance()
				continue
			}
			break
		}
		return p.cur().Type == lexer.RIGHT_PAREN
	}()
	if !ok {
		p.pos = saved
		return nil, false, nil
	}
	p.advance() // )

	var isBlock bool
	switch p.cur().Type {
	case lexer.ASSIGN_OP:
		isBlock = false
		p.advance()
	case lexer.LEFT_BRACE:
		isBlock = true
	default:
		p.pos = saved
		return nil, false, nil
	}

	bodyStart := p.pos
	if isBlock {
		if _, err := p.parseBlock(); err != nil {
			return nil, true, err
		}
	} else {
		if _, err := p.parseExpression(0); err != nil {
			return nil, true, err
		}
	}
	bodyTokens := append([]lexer.Token{}, p.toks[bodyStart:p.pos]...)

	return &Node{
		Kind:       KindFuncDecl,
		Tok:        tokPtr(nameTok),
		Name:       nameTok.Literal,
		Params:     params,
		BodyTokens: bodyTokens,
		BodyKey:    bodyCacheKey(bodyTokens),
		IsBlockFn:  isBlock,
	}, true, nil
}

// bodyCacheKey approximates "keyed by exact source text" (§4.7) without
// byte-offset plumbing: it canonically joins the body's token
// type/literal pairs, which is exactly as sensitive to the body's content
// as the literal source text would be. The function's name is not part of
// the key, so two functions with identical bodies share one cache entry.
func bodyCacheKey(toks []lexer.Token) string {
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(string(t.Type))
		b.WriteByte(':')
		b.WriteString(t.Literal)
		b.WriteByte('\x1f')
	}
	return b.String()
}
