/*
File    : exprscript/ast/parser_operators.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import "github.com/akashmaji946/exprscript/lexer"

// parsePrefixUnary handles `-x`, `~x`, `not x`/`!x`: a single operand bound
// at PrecUnary, tighter than every binary operator so `-a + b` parses as
// `(-a) + b`.
func parsePrefixUnary(p *Parser) (*Node, error) {
	op := p.advance()
	operand, err := p.parseExpression(PrecUnary)
	if err != nil {
		return nil, err
	}
	return &Node{Kind: KindUnary, Tok: tokPtr(op), Op: op.Type, Left: operand}, nil
}

// parsePrefixIncDec handles `++x`/`--x`.
func parsePrefixIncDec(p *Parser) (*Node, error) {
	op := p.advance()
	operand, err := p.parseExpression(PrecUnary)
	if err != nil {
		return nil, err
	}
	if !isAssignable(operand) {
		return nil, constantValueErr(op, "prefix %s requires an assignable operand", op.Type)
	}
	return &Node{Kind: KindUnary, Tok: tokPtr(op), Op: op.Type, Left: operand, Postfix: false}, nil
}

// parsePostfixIncDec handles `x++`/`x--`: the operator trails its operand,
// so it arrives as an infix continuation with no right-hand parse.
func parsePostfixIncDec(p *Parser, left *Node) (*Node, error) {
	op := p.advance()
	if !isAssignable(left) {
		return nil, constantValueErr(op, "postfix %s requires an assignable operand", op.Type)
	}
	return &Node{Kind: KindUnary, Tok: tokPtr(op), Op: op.Type, Left: left, Postfix: true}, nil
}

func isAssignable(n *Node) bool {
	switch n.Kind {
	case KindIdentifier, KindIndex, KindMemberAccess:
		return true
	}
	return false
}

// parseBinary handles every arithmetic/bitwise/comparison infix operator
// uniformly: a single node shape distinguished only by Op, per §9.
func parseBinary(p *Parser, left *Node) (*Node, error) {
	op := p.advance()
	right, err := p.parseExpression(nextMinPrecFor(op))
	if err != nil {
		return nil, err
	}
	return &Node{Kind: KindBinary, Tok: tokPtr(op), Op: op.Type, Left: left, Right: right}, nil
}

// parseLogical handles `and`/`or`; short-circuit evaluation happens in
// Evaluate, not here — the parser just records which operator it was.
func parseLogical(p *Parser, left *Node) (*Node, error) {
	op := p.advance()
	right, err := p.parseExpression(nextMinPrecFor(op))
	if err != nil {
		return nil, err
	}
	return &Node{Kind: KindLogical, Tok: tokPtr(op), Op: op.Type, Left: left, Right: right}, nil
}

// parseMatch handles `is`/`contains`/`matches`/`starts_with`/`ends_with`.
// `is`'s right-hand side must be a bare type-name identifier (§4.4): that
// restriction is enforced here, at compile time, rather than left for
// evalIs to discover mid-evaluation.
func parseMatch(p *Parser, left *Node) (*Node, error) {
	op := p.advance()
	right, err := p.parseExpression(nextMinPrecFor(op))
	if err != nil {
		return nil, err
	}
	if op.Type == lexer.IS_KEY && right.Kind != KindIdentifier {
		return nil, syntaxErr(op, "right-hand side of is must be a bare type name")
	}
	return &Node{Kind: KindMatch, Tok: tokPtr(op), Op: op.Type, Left: left, Right: right}, nil
}

// parseRange handles `a..b`.
func parseRange(p *Parser, left *Node) (*Node, error) {
	op := p.advance()
	right, err := p.parseExpression(nextMinPrecFor(op))
	if err != nil {
		return nil, err
	}
	return &Node{Kind: KindRange, Tok: tokPtr(op), Left: left, Right: right}, nil
}

// parseAssign handles `=` and every compound-assign operator. The target
// must be one of the assignable shapes — identifier, index, or member
// access; anything else is a syntax error caught at parse time rather than
// left to surface as a confusing evaluation failure.
func parseAssign(p *Parser, left *Node) (*Node, error) {
	op := p.advance()
	if !isAssignable(left) {
		return nil, syntaxErr(op, "left-hand side of %s is not assignable", op.Type)
	}
	right, err := p.parseExpression(nextMinPrecFor(op))
	if err != nil {
		return nil, err
	}
	return &Node{Kind: KindAssign, Tok: tokPtr(op), Op: op.Type, Left: left, Right: right}, nil
}

// parseDecorator handles the postfix `expr @name` form (§4.4, lowest
// precedence): the decorator name is a bare identifier, not itself an
// expression, so it is read directly rather than through parseExpression.
func parseDecorator(p *Parser, left *Node) (*Node, error) {
	at := p.advance()
	name, err := p.expect(lexer.IDENTIFIER_ID)
	if err != nil {
		return nil, err
	}
	return &Node{Kind: KindDecorator, Tok: tokPtr(at), Name: name.Literal, Left: left}, nil
}

// parseIndex handles `a[i]`.
func parseIndex(p *Parser, left *Node) (*Node, error) {
	open := p.advance() // consume [
	idx, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RIGHT_BRACKET); err != nil {
		return nil, err
	}
	return &Node{Kind: KindIndex, Tok: tokPtr(open), Left: left, Right: idx}, nil
}

// parseMemberAccess handles `a.field`, sugar for `a["field"]` (§4.5).
func parseMemberAccess(p *Parser, left *Node) (*Node, error) {
	dot := p.advance()
	field, err := p.expect(lexer.IDENTIFIER_ID)
	if err != nil {
		return nil, err
	}
	return &Node{Kind: KindMemberAccess, Tok: tokPtr(dot), Left: left, Name: field.Literal}, nil
}

// parseCall handles `f(arg1, arg2, ...)`.
func parseCall(p *Parser, left *Node) (*Node, error) {
	open := p.advance() // consume (
	var args []*Node
	for p.cur().Type != lexer.RIGHT_PAREN {
		arg, err := p.parseExpression(PrecAssign + 1)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.cur().Type == lexer.COMMA_DELIM {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(lexer.RIGHT_PAREN); err != nil {
		return nil, err
	}
	return &Node{Kind: KindCall, Tok: tokPtr(open), Left: left, Args: args}, nil
}
