/*
File    : exprscript/ast/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"fmt"

	"github.com/akashmaji946/exprscript/langerr"
	"github.com/akashmaji946/exprscript/lexer"
	"github.com/akashmaji946/exprscript/state"
)

// prefixParseFn parses an expression that can start at the current token
// (a literal, identifier, prefix operator, grouping paren, array/object
// literal...). Mirrors the teacher's unaryParseFunction.
type prefixParseFn func(p *Parser) (*Node, error)

// infixParseFn parses the continuation of an expression given its
// already-parsed left operand (a binary operator, call, index, decorator,
// range...). Mirrors the teacher's binaryParseFunction.
type infixParseFn func(p *Parser, left *Node) (*Node, error)

// Parser walks a flat token slice with one token of lookahead, consulting
// the package-level prefix/infix registries built by BuildRegistry. st
// carries the Pratt-parse call budget (§3/§5) charged on every
// parseExpression descent; tryParseFunctionDecl's throwaway first pass over
// a function body (§4.7) reuses the same Parser and so charges against the
// same budget as the real parse — a nil st (no caller currently passes one)
// simply disables the charge.
type Parser struct {
	toks []lexer.Token
	pos  int
	st   *state.State
}

func newParser(tokens []lexer.Token, st *state.State) *Parser {
	return &Parser{toks: tokens, st: st}
}

// consumeParseBudget charges one unit of the configured Pratt-parse call
// budget (§3/§5) for each recursive parseExpression descent; a nil st or a
// budget-less State both no-op.
func (p *Parser) consumeParseBudget() error {
	if p.st == nil {
		return nil
	}
	return p.st.ConsumeParseBudget()
}

func (p *Parser) cur() lexer.Token {
	if p.pos >= len(p.toks) {
		return lexer.Token{Type: lexer.EOF_TYPE}
	}
	return p.toks[p.pos]
}

func (p *Parser) peek(ahead int) lexer.Token {
	i := p.pos + ahead
	if i >= len(p.toks) {
		return lexer.Token{Type: lexer.EOF_TYPE}
	}
	return p.toks[i]
}

func (p *Parser) advance() lexer.Token {
	tok := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return tok
}

func (p *Parser) atEOF() bool {
	return p.cur().Type == lexer.EOF_TYPE
}

func tokPtr(tok lexer.Token) *langerr.Token {
	return langerr.NewToken(string(tok.Type), tok.Literal).WithPos(tok.Line, tok.Column)
}

func syntaxErr(tok lexer.Token, format string, args ...interface{}) error {
	return langerr.NewAt(langerr.Syntax, fmt.Sprintf(format, args...), tokPtr(tok))
}

func constantValueErr(tok lexer.Token, format string, args ...interface{}) error {
	return langerr.NewAt(langerr.ConstantValue, fmt.Sprintf(format, args...), tokPtr(tok))
}

// expect consumes the current token if it matches want, else reports a
// Syntax error without advancing.
func (p *Parser) expect(want lexer.TokenType) (lexer.Token, error) {
	if p.cur().Type != want {
		return lexer.Token{}, syntaxErr(p.cur(), "expected %s, got %s %q", want, p.cur().Type, p.cur().Literal)
	}
	return p.advance(), nil
}

// skipStatementEnd consumes an optional trailing semicolon between
// statements; the grammar does not require them.
func (p *Parser) skipStatementEnd() {
	if p.cur().Type == lexer.SEMICOLON_DELIM {
		p.advance()
	}
}

// Compile is the AST compiler's entry point (§4.3): it turns a full token
// stream into the statement list of a compiled program. Each top-level
// statement is parsed and, on a Syntax/error-rule failure, compilation
// stops immediately and returns that error — the engine decides whether to
// report partial results.
func Compile(tokens []lexer.Token, st *state.State) ([]*Node, error) {
	p := newParser(tokens, st)
	var stmts []*Node
	for !p.atEOF() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		p.skipStatementEnd()
	}
	return stmts, nil
}

// compileTokenSlice is the lazy-compile entry point used by a user
// function's cached Handler (§4.7): it parses exactly one body — either a
// single expression (`name(args) = expr` shape) or a `{ stmts }` block —
// from an already-lexed token slice, with no re-lexing involved.
func compileTokenSlice(tokens []lexer.Token, isBlock bool, st *state.State) (*Node, error) {
	p := newParser(tokens, st)
	if isBlock {
		return p.parseBlock()
	}
	expr, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	return expr, nil
}

// parseStatement recognizes statement-level forms (if/while/for/return/
// global-assign/function-declaration/block) and falls back to a bare
// expression statement otherwise.
func (p *Parser) parseStatement() (*Node, error) {
	switch p.cur().Type {
	case lexer.IF_KEY:
		return p.parseIf()
	case lexer.WHILE_KEY:
		return p.parseWhile()
	case lexer.FOR_KEY:
		return p.parseForIn()
	case lexer.RETURN_KEY:
		return p.parseReturn()
	case lexer.GLOBAL_KEY:
		return p.parseGlobalAssign()
	case lexer.LEFT_BRACE:
		return p.parseBlock()
	case lexer.ERROR_UNTERMINATED_STRING, lexer.ERROR_UNTERMINATED_COMMENT, lexer.ERROR_UNEXPECTED_DECORATOR:
		return p.parseErrorToken()
	case lexer.IDENTIFIER_ID:
		if decl, ok, err := p.tryParseFunctionDecl(); ok || err != nil {
			return decl, err
		}
	}
	return p.parseExpression(0)
}

func (p *Parser) parseErrorToken() (*Node, error) {
	tok := p.advance()
	var kind langerr.Kind
	switch tok.Type {
	case lexer.ERROR_UNTERMINATED_STRING:
		kind = langerr.UnterminatedLiteral
	case lexer.ERROR_UNTERMINATED_COMMENT:
		kind = langerr.UnterminatedComment
	case lexer.ERROR_UNEXPECTED_DECORATOR:
		kind = langerr.UnexpectedDecorator
	}
	return nil, langerr.NewAt(kind, fmt.Sprintf("%s", tok.Type), tokPtr(tok))
}

// parseBlock parses a `{ stmt; stmt; ... }` block. The block's own Evaluate
// pushes and pops a fresh scope (§4.5).
func (p *Parser) parseBlock() (*Node, error) {
	open, err := p.expect(lexer.LEFT_BRACE)
	if err != nil {
		return nil, err
	}
	var stmts []*Node
	for p.cur().Type != lexer.RIGHT_BRACE {
		if p.atEOF() {
			return nil, syntaxErr(p.cur(), "unterminated block, expected }")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		p.skipStatementEnd()
	}
	p.advance() // consume }
	return &Node{Kind: KindBlock, Tok: tokPtr(open), Body: stmts}, nil
}
