/*
File    : exprscript/ast/precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import "github.com/akashmaji946/exprscript/lexer"

// OperatorSpec is one row of the precedence table: which token it covers,
// how tightly it binds (higher Power binds tighter), and whether it is
// right-associative (only POWER is, per §4.4).
type OperatorSpec struct {
	Symbol     lexer.TokenType
	Power      int
	RightAssoc bool
}

// Precedence levels, lowest to highest binding power, exactly as §4.4
// specifies — data, not a long switch of special cases.
const (
	PrecDecorator = 1
	PrecRange     = 2
	PrecAssign    = 3
	PrecOr        = 4
	PrecAnd       = 5
	PrecMatch     = 6
	PrecEquality  = 7
	PrecRelational = 8
	PrecBitOr     = 9
	PrecBitXor    = 10
	PrecBitAnd    = 11
	PrecShift     = 12
	PrecAdditive  = 13
	PrecMultiplicative = 14
	PrecPower     = 15
	PrecUnary     = 16
	PrecPostfix   = 17
	PrecCallIndex = 18
)

// PrecedenceTable is the data-driven operator table §9 asks for: a single
// slice, not inline in precedenceOf's switch, so the table can be inspected
// or iterated (e.g. by tooling/tests) independently of the lookup function.
var PrecedenceTable = []OperatorSpec{
	{lexer.DECORATOR_OP, PrecDecorator, false},
	{lexer.RANGE_OP, PrecRange, false},

	{lexer.ASSIGN_OP, PrecAssign, true},
	{lexer.PLUS_ASSIGN, PrecAssign, true},
	{lexer.MINUS_ASSIGN, PrecAssign, true},
	{lexer.MUL_ASSIGN, PrecAssign, true},
	{lexer.DIV_ASSIGN, PrecAssign, true},
	{lexer.MOD_ASSIGN, PrecAssign, true},
	{lexer.BIT_AND_ASSIGN, PrecAssign, true},
	{lexer.BIT_OR_ASSIGN, PrecAssign, true},
	{lexer.BIT_XOR_ASSIGN, PrecAssign, true},
	{lexer.BIT_LEFT_ASSIGN, PrecAssign, true},
	{lexer.BIT_RIGHT_ASSIGN, PrecAssign, true},

	{lexer.OR_KEY, PrecOr, false},
	{lexer.AND_KEY, PrecAnd, false},

	{lexer.IS_KEY, PrecMatch, false},
	{lexer.CONTAINS_KEY, PrecMatch, false},
	{lexer.MATCHES_KEY, PrecMatch, false},
	{lexer.STARTS_WITH_KEY, PrecMatch, false},
	{lexer.ENDS_WITH_KEY, PrecMatch, false},

	{lexer.EQ_OP, PrecEquality, false},
	{lexer.NE_OP, PrecEquality, false},

	{lexer.GT_OP, PrecRelational, false},
	{lexer.LT_OP, PrecRelational, false},
	{lexer.GE_OP, PrecRelational, false},
	{lexer.LE_OP, PrecRelational, false},

	{lexer.BIT_OR_OP, PrecBitOr, false},
	{lexer.BIT_XOR_OP, PrecBitXor, false},
	{lexer.BIT_AND_OP, PrecBitAnd, false},

	{lexer.BIT_LEFT_OP, PrecShift, false},
	{lexer.BIT_RIGHT_OP, PrecShift, false},

	{lexer.PLUS_OP, PrecAdditive, false},
	{lexer.MINUS_OP, PrecAdditive, false},

	{lexer.MUL_OP, PrecMultiplicative, false},
	{lexer.DIV_OP, PrecMultiplicative, false},
	{lexer.MOD_OP, PrecMultiplicative, false},

	{lexer.POW_OP, PrecPower, true},

	{lexer.INC_OP, PrecPostfix, false},
	{lexer.DEC_OP, PrecPostfix, false},

	{lexer.LEFT_PAREN, PrecCallIndex, false},
	{lexer.LEFT_BRACKET, PrecCallIndex, false},
	{lexer.DOT_OP, PrecCallIndex, false},
}

// lookupSpec scans PrecedenceTable for tok's entry. The table is short
// enough (fewer than 40 rows) that a linear scan costs nothing measurable
// next to a tree-walking evaluation step, and it avoids needing a
// package-level init() just to build a reverse-lookup map.
func lookupSpec(tokType lexer.TokenType) (OperatorSpec, bool) {
	for _, spec := range PrecedenceTable {
		if spec.Symbol == tokType {
			return spec, true
		}
	}
	return OperatorSpec{}, false
}

// precedenceOf reports the binding power of tok as an infix/postfix
// operator, or 0 if tok does not continue an expression (end of input,
// closing delimiter, statement separator, etc.) — a single table lookup per
// §9, not a long hand-written switch of special cases.
func precedenceOf(tok lexer.Token) int {
	if spec, ok := lookupSpec(tok.Type); ok {
		return spec.Power
	}
	return 0
}

func isRightAssoc(tok lexer.Token) bool {
	spec, ok := lookupSpec(tok.Type)
	return ok && spec.RightAssoc
}
