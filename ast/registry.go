/*
File    : exprscript/ast/registry.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import "github.com/akashmaji946/exprscript/lexer"

// prefixRegistry and infixRegistry are populated once by BuildRegistry.
// They are package-level rather than fields of Parser because they hold no
// per-parse state, only the fixed grammar wiring — every *Parser shares the
// same tables.
var prefixRegistry map[lexer.TokenType]prefixParseFn
var infixRegistry map[lexer.TokenType]infixParseFn

// BuildRegistry wires every token type to its prefix and/or infix parse
// function. Called once by engine.New, deliberately not from a package
// init(): the engine controls exactly when the grammar tables come up, the
// same [DECIDED] stance std.BuildRegistry takes for the function registry.
func BuildRegistry() {
	prefixRegistry = map[lexer.TokenType]prefixParseFn{
		lexer.INT_LIT:       parseIntLiteral,
		lexer.FLOAT_LIT:     parseFloatLiteral,
		lexer.FIXED_LIT:     parseFixedLiteral,
		lexer.STRING_LIT:    parseStringLiteral,
		lexer.TRUE_KEY:      parseBoolLiteral,
		lexer.FALSE_KEY:     parseBoolLiteral,
		lexer.NIL_KEY:       parseNilLiteral,
		lexer.IDENTIFIER_ID: parseIdentifier,

		lexer.LEFT_PAREN:   parseParenExpr,
		lexer.LEFT_BRACKET: parseArrayLiteral,
		lexer.LEFT_BRACE:   parseObjectLiteral,

		lexer.MINUS_OP:   parsePrefixUnary,
		lexer.NOT_OP:     parsePrefixUnary,
		lexer.NOT_KEY:    parsePrefixUnary,
		lexer.BIT_NOT_OP: parsePrefixUnary,
		lexer.INC_OP:     parsePrefixIncDec,
		lexer.DEC_OP:     parsePrefixIncDec,
	}

	infixRegistry = map[lexer.TokenType]infixParseFn{
		lexer.PLUS_OP:     parseBinary,
		lexer.MINUS_OP:    parseBinary,
		lexer.MUL_OP:      parseBinary,
		lexer.DIV_OP:      parseBinary,
		lexer.MOD_OP:      parseBinary,
		lexer.POW_OP:      parseBinary,
		lexer.BIT_AND_OP:  parseBinary,
		lexer.BIT_OR_OP:   parseBinary,
		lexer.BIT_XOR_OP:  parseBinary,
		lexer.BIT_LEFT_OP: parseBinary,
		lexer.BIT_RIGHT_OP: parseBinary,
		lexer.EQ_OP: parseBinary,
		lexer.NE_OP: parseBinary,
		lexer.GT_OP: parseBinary,
		lexer.LT_OP: parseBinary,
		lexer.GE_OP: parseBinary,
		lexer.LE_OP: parseBinary,

		lexer.AND_KEY: parseLogical,
		lexer.OR_KEY:  parseLogical,

		lexer.IS_KEY:           parseMatch,
		lexer.CONTAINS_KEY:     parseMatch,
		lexer.MATCHES_KEY:      parseMatch,
		lexer.STARTS_WITH_KEY:  parseMatch,
		lexer.ENDS_WITH_KEY:    parseMatch,

		lexer.RANGE_OP: parseRange,

		lexer.ASSIGN_OP:       parseAssign,
		lexer.PLUS_ASSIGN:     parseAssign,
		lexer.MINUS_ASSIGN:    parseAssign,
		lexer.MUL_ASSIGN:      parseAssign,
		lexer.DIV_ASSIGN:      parseAssign,
		lexer.MOD_ASSIGN:      parseAssign,
		lexer.BIT_AND_ASSIGN:  parseAssign,
		lexer.BIT_OR_ASSIGN:   parseAssign,
		lexer.BIT_XOR_ASSIGN:  parseAssign,
		lexer.BIT_LEFT_ASSIGN: parseAssign,
		lexer.BIT_RIGHT_ASSIGN: parseAssign,

		lexer.DECORATOR_OP: parseDecorator,

		lexer.LEFT_BRACKET: parseIndex,
		lexer.DOT_OP:       parseMemberAccess,
		lexer.LEFT_PAREN:   parseCall,

		lexer.INC_OP: parsePostfixIncDec,
		lexer.DEC_OP: parsePostfixIncDec,
	}
}
