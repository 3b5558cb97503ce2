/*
File    : exprscript/ast/parser_literals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"strconv"
	"strings"

	"github.com/akashmaji946/exprscript/lexer"
	"github.com/akashmaji946/exprscript/value"
	"github.com/shopspring/decimal"
)

// integerSuffixType maps a literal-grammar integer suffix (§3) to its
// value.Type; the empty suffix defaults to TInt64.
func integerSuffixType(suffix string) value.Type {
	switch suffix {
	case "u8":
		return value.TUint8
	case "u16":
		return value.TUint16
	case "u32":
		return value.TUint32
	case "u64":
		return value.TUint64
	case "i8":
		return value.TInt8
	case "i16":
		return value.TInt16
	case "i32":
		return value.TInt32
	case "i64", "":
		return value.TInt64
	}
	return value.TInt64
}

func mantissaText(tok lexer.Token) string {
	text := strings.ReplaceAll(tok.Literal, "_", "")
	if tok.Suffix != "" {
		return strings.TrimSuffix(text, tok.Suffix)
	}
	return text
}

func parseIntLiteral(p *Parser) (*Node, error) {
	tok := p.advance()
	text := mantissaText(tok)
	n, err := strconv.ParseInt(text, 0, 64)
	if err != nil {
		return nil, syntaxErr(tok, "invalid integer literal %q: %v", tok.Literal, err)
	}
	target := integerSuffixType(tok.Suffix)
	lit, err := value.Coerce(value.Int64(n), target, tokPtr(tok))
	if err != nil {
		return nil, err
	}
	return &Node{Kind: KindIntLit, Tok: tokPtr(tok), Lit: lit}, nil
}

func parseFloatLiteral(p *Parser) (*Node, error) {
	tok := p.advance()
	text := mantissaText(tok)
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, syntaxErr(tok, "invalid float literal %q: %v", tok.Literal, err)
	}
	return &Node{Kind: KindFloatLit, Tok: tokPtr(tok), Lit: value.Float(f)}, nil
}

func parseFixedLiteral(p *Parser) (*Node, error) {
	tok := p.advance()
	text := mantissaText(tok)
	d, err := decimal.NewFromString(text)
	if err != nil {
		return nil, syntaxErr(tok, "invalid fixed-point literal %q: %v", tok.Literal, err)
	}
	return &Node{Kind: KindFixedLit, Tok: tokPtr(tok), Lit: value.Fixed(d)}, nil
}

func parseStringLiteral(p *Parser) (*Node, error) {
	tok := p.advance()
	return &Node{Kind: KindStringLit, Tok: tokPtr(tok), Lit: value.String(tok.Literal)}, nil
}

func parseBoolLiteral(p *Parser) (*Node, error) {
	tok := p.advance()
	return &Node{Kind: KindBoolLit, Tok: tokPtr(tok), Lit: value.Bool(tok.Type == lexer.TRUE_KEY)}, nil
}

func parseNilLiteral(p *Parser) (*Node, error) {
	tok := p.advance()
	return &Node{Kind: KindNilLit, Tok: tokPtr(tok)}, nil
}

func parseIdentifier(p *Parser) (*Node, error) {
	tok := p.advance()
	return &Node{Kind: KindIdentifier, Tok: tokPtr(tok), Name: tok.Literal}, nil
}

func parseParenExpr(p *Parser) (*Node, error) {
	p.advance() // consume (
	expr, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RIGHT_PAREN); err != nil {
		return nil, err
	}
	return expr, nil
}

// parseArrayLiteral parses `[e1, e2, ...]`.
func parseArrayLiteral(p *Parser) (*Node, error) {
	open := p.advance() // consume [
	var elems []*Node
	for p.cur().Type != lexer.RIGHT_BRACKET {
		elem, err := p.parseExpression(PrecAssign + 1)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
		if p.cur().Type == lexer.COMMA_DELIM {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(lexer.RIGHT_BRACKET); err != nil {
		return nil, err
	}
	return &Node{Kind: KindArrayLit, Tok: tokPtr(open), Args: elems}, nil
}

// parseObjectLiteral parses `{k1: v1, k2: v2, ...}`. Disambiguated from a
// block statement by statement-position dispatch: parseStatement routes
// LEFT_BRACE to parseBlock, so an object literal only ever appears in
// expression position (e.g. the RHS of an assignment), where the prefix
// registry's LEFT_BRACE entry is this function instead.
func parseObjectLiteral(p *Parser) (*Node, error) {
	open := p.advance() // consume {
	var entries []ObjectEntry
	for p.cur().Type != lexer.RIGHT_BRACE {
		key, err := p.parseExpression(PrecAssign + 1)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.COLON_DELIM); err != nil {
			return nil, err
		}
		val, err := p.parseExpression(PrecAssign + 1)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ObjectEntry{Key: key, Value: val})
		if p.cur().Type == lexer.COMMA_DELIM {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(lexer.RIGHT_BRACE); err != nil {
		return nil, err
	}
	return &Node{Kind: KindObjectLit, Tok: tokPtr(open), Entries: entries}, nil
}
