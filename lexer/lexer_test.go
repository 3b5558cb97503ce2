/*
File    : exprscript/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

func runConsumeTokenTests(t *testing.T, tests []TestConsumeToken) {
	for _, test := range tests {
		lex := NewLexer(test.Input)
		gotTokens := lex.ConsumeTokens()

		assert.Equal(t, len(test.ExpectedTokens), len(gotTokens), "input: %q", test.Input)
		for i, token := range test.ExpectedTokens {
			if i >= len(gotTokens) {
				break
			}
			assert.Equal(t, token.Type, gotTokens[i].Type, "input: %q token %d", test.Input, i)
			assert.Equal(t, token.Literal, gotTokens[i].Literal, "input: %q token %d", test.Input, i)
		}
	}
}

func TestNewLexer_Operators(t *testing.T) {
	runConsumeTokenTests(t, []TestConsumeToken{
		{
			Input: ` 123 + 2   31 - 12 `,
			ExpectedTokens: []Token{
				NewToken(INT_LIT, "123"),
				NewToken(PLUS_OP, "+"),
				NewToken(INT_LIT, "2"),
				NewToken(INT_LIT, "31"),
				NewToken(MINUS_OP, "-"),
				NewToken(INT_LIT, "12"),
			},
		},
		{
			Input: ` { } + []  abc - a12 `,
			ExpectedTokens: []Token{
				NewToken(LEFT_BRACE, "{"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(PLUS_OP, "+"),
				NewToken(LEFT_BRACKET, "["),
				NewToken(RIGHT_BRACKET, "]"),
				NewToken(IDENTIFIER_ID, "abc"),
				NewToken(MINUS_OP, "-"),
				NewToken(IDENTIFIER_ID, "a12"),
			},
		},
		{
			Input: ` << >> ~ | & ^ `,
			ExpectedTokens: []Token{
				NewToken(BIT_LEFT_OP, "<<"),
				NewToken(BIT_RIGHT_OP, ">>"),
				NewToken(BIT_NOT_OP, "~"),
				NewToken(BIT_OR_OP, "|"),
				NewToken(BIT_AND_OP, "&"),
				NewToken(BIT_XOR_OP, "^"),
			},
		},
		{
			Input: ` ** ++ -- @ .. `,
			ExpectedTokens: []Token{
				NewToken(POW_OP, "**"),
				NewToken(INC_OP, "++"),
				NewToken(DEC_OP, "--"),
				NewToken(ERROR_UNEXPECTED_DECORATOR, "@"),
				NewToken(RANGE_OP, ".."),
			},
		},
		{
			Input: `x.field a..b`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(DOT_OP, "."),
				NewToken(IDENTIFIER_ID, "field"),
				NewToken(IDENTIFIER_ID, "a"),
				NewToken(RANGE_OP, ".."),
				NewToken(IDENTIFIER_ID, "b"),
			},
		},
	})
}

func TestNewLexer_Keywords(t *testing.T) {
	runConsumeTokenTests(t, []TestConsumeToken{
		{
			Input: `if else for in while return true false nil global and or not is contains matches starts_with ends_with then do`,
			ExpectedTokens: []Token{
				NewToken(IF_KEY, "if"),
				NewToken(ELSE_KEY, "else"),
				NewToken(FOR_KEY, "for"),
				NewToken(IN_KEY, "in"),
				NewToken(WHILE_KEY, "while"),
				NewToken(RETURN_KEY, "return"),
				NewToken(TRUE_KEY, "true"),
				NewToken(FALSE_KEY, "false"),
				NewToken(NIL_KEY, "nil"),
				NewToken(GLOBAL_KEY, "global"),
				NewToken(AND_KEY, "and"),
				NewToken(OR_KEY, "or"),
				NewToken(NOT_KEY, "not"),
				NewToken(IS_KEY, "is"),
				NewToken(CONTAINS_KEY, "contains"),
				NewToken(MATCHES_KEY, "matches"),
				NewToken(STARTS_WITH_KEY, "starts_with"),
				NewToken(ENDS_WITH_KEY, "ends_with"),
				NewToken(THEN_KEY, "then"),
				NewToken(DO_KEY, "do"),
			},
		},
	})
}

func TestNewLexer_NumericLiterals(t *testing.T) {
	runConsumeTokenTests(t, []TestConsumeToken{
		{
			Input: `123 0xFF 0o17 0b101 1.5 1e3 1.5f 1u8 19.99d`,
			ExpectedTokens: []Token{
				{Type: INT_LIT, Literal: "123"},
				{Type: INT_LIT, Literal: "0xFF"},
				{Type: INT_LIT, Literal: "0o17"},
				{Type: INT_LIT, Literal: "0b101"},
				{Type: FLOAT_LIT, Literal: "1.5"},
				{Type: FLOAT_LIT, Literal: "1e3"},
				{Type: FLOAT_LIT, Literal: "1.5f", Suffix: "f"},
				{Type: INT_LIT, Literal: "1u8", Suffix: "u8"},
				{Type: FIXED_LIT, Literal: "19.99d", Suffix: "d"},
			},
		},
	})

	// Suffix field needs its own comparison since runConsumeTokenTests only
	// checks Type/Literal.
	lex := NewLexer(`1u8 1i64 1f 1.0d`)
	toks := lex.ConsumeTokens()
	assert.Equal(t, "u8", toks[0].Suffix)
	assert.Equal(t, "i64", toks[1].Suffix)
	assert.Equal(t, "f", toks[2].Suffix)
	assert.Equal(t, "d", toks[3].Suffix)
}

func TestNewLexer_StringQuoteStyles(t *testing.T) {
	runConsumeTokenTests(t, []TestConsumeToken{
		{
			Input: `'single' "double" ` + "`backtick`",
			ExpectedTokens: []Token{
				NewToken(STRING_LIT, "single"),
				NewToken(STRING_LIT, "double"),
				NewToken(STRING_LIT, "backtick"),
			},
		},
		{
			Input: `"hello\nworld" 'tab\there' "escaped\\backslash"`,
			ExpectedTokens: []Token{
				NewToken(STRING_LIT, "hello\nworld"),
				NewToken(STRING_LIT, "tab\there"),
				NewToken(STRING_LIT, "escaped\\backslash"),
			},
		},
	})

	// Backtick strings pass literal newlines through without an escape.
	lex := NewLexer("`line one\nline two`")
	toks := lex.ConsumeTokens()
	assert.Equal(t, "line one\nline two", toks[0].Literal)
}

func TestNewLexer_UnterminatedString(t *testing.T) {
	lex := NewLexer(`"unterminated`)
	toks := lex.ConsumeTokens()
	assert.Len(t, toks, 1)
	assert.Equal(t, ERROR_UNTERMINATED_STRING, toks[0].Type)
}

func TestNewLexer_UnterminatedComment(t *testing.T) {
	lex := NewLexer(`1 + /* never closed`)
	toks := lex.ConsumeTokens()
	assert.Equal(t, ERROR_UNTERMINATED_COMMENT, toks[len(toks)-1].Type)
}

func TestNewLexer_UnexpectedDecorator(t *testing.T) {
	lex := NewLexer(`5 @`)
	toks := lex.ConsumeTokens()
	assert.Equal(t, ERROR_UNEXPECTED_DECORATOR, toks[len(toks)-1].Type)
}

func TestNewLexer_DecoratorAppliesToIdentifier(t *testing.T) {
	runConsumeTokenTests(t, []TestConsumeToken{
		{
			Input: `123 @roman`,
			ExpectedTokens: []Token{
				NewToken(INT_LIT, "123"),
				NewToken(DECORATOR_OP, "@"),
				NewToken(IDENTIFIER_ID, "roman"),
			},
		},
	})
}

func TestNewLexer_FunctionDeclarationShape(t *testing.T) {
	runConsumeTokenTests(t, []TestConsumeToken{
		{
			Input: `f(x) = x * 2`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER_ID, "f"),
				NewToken(LEFT_PAREN, "("),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(ASSIGN_OP, "="),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(MUL_OP, "*"),
				NewToken(INT_LIT, "2"),
			},
		},
	})
}

func TestCheckBalance(t *testing.T) {
	assert.NoError(t, CheckBalance(`(1 + 2) * [3, 4] + {a: 1}`))
	assert.Error(t, CheckBalance(`(1 + 2`))
	assert.Error(t, CheckBalance(`[1, 2`))
	assert.Error(t, CheckBalance(`{a: 1`))
	assert.NoError(t, CheckBalance(`"(unbalanced inside a string"+")"`))
}
