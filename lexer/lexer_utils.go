/*
File    : exprscript/lexer/lexer_utils.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"strings"
	"unicode"
)

func isDigitASCII(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigitASCII(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isOctalDigitASCII(c byte) bool {
	return c >= '0' && c <= '7'
}

func isBinaryDigitASCII(c byte) bool {
	return c == '0' || c == '1'
}

func isWhitespace(curr byte) bool {
	return unicode.IsSpace(rune(curr))
}

func isAlphanumeric(curr byte) bool {
	return unicode.IsLetter(rune(curr)) || unicode.IsDigit(rune(curr))
}

func isNumeric(curr byte) bool {
	return unicode.IsDigit(rune(curr))
}

func isAlpha(curr byte) bool {
	return unicode.IsLetter(rune(curr))
}

// isSpecial reports whether c is outside both the defined operator/structural
// set and the alphanumeric/whitespace classes — i.e. a byte the grammar has
// no rule for at all.
func isSpecial(c byte) bool {
	return !isAlphanumeric(c) && !isWhitespace(c) &&
		!strings.ContainsRune("=+-*/%&|^~!<>.,;:(){}[]\"'`@_", rune(c))
}

// isQuoteByte reports whether c is one of the three quote bytes; kept as a function
// (not a bare equality check inline) so the three quote styles read as one
// concept at call sites in NextToken.
func isQuoteByte(c byte) bool {
	return c == '\'' || c == '"' || c == '`'
}

// readStringLiteral reads a quoted string started by one of the three quote
// bytes (', ", `), consuming escapes identically across all three. Only the
// backtick style additionally passes a literal newline through unescaped,
// per the data model's literal grammar (§3).
func readStringLiteral(lex *Lexer) Token {
	quote := lex.Current
	startLine, startCol := lex.Line, lex.Column
	lex.Advance() // consume opening quote

	var builder strings.Builder
	for lex.Current != quote {
		if lex.Current == 0 {
			return NewTokenWithMetadata(ERROR_UNTERMINATED_STRING, builder.String(), startLine, startCol)
		}
		if lex.Current == '\n' {
			if quote != '`' {
				return NewTokenWithMetadata(ERROR_UNTERMINATED_STRING, builder.String(), startLine, startCol)
			}
			builder.WriteByte('\n')
			lex.Line++
			lex.Column = 1
			lex.Advance()
			continue
		}
		if lex.Current == '\\' {
			lex.Advance()
			escaped, valid := escapeChar(lex.Current)
			if !valid {
				return NewTokenWithMetadata(ERROR_UNTERMINATED_STRING, builder.String(), startLine, startCol)
			}
			builder.WriteByte(escaped)
			lex.Advance()
			continue
		}
		builder.WriteByte(lex.Current)
		lex.Advance()
	}

	lex.Advance() // consume closing quote
	return NewTokenWithMetadata(STRING_LIT, builder.String(), startLine, startCol)
}

func escapeChar(c byte) (byte, bool) {
	switch c {
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	case 'f':
		return '\f', true
	case 'v':
		return '\v', true
	case '\\':
		return '\\', true
	case '"':
		return '"', true
	case '\'':
		return '\'', true
	case '`':
		return '`', true
	case '0':
		return 0, true
	default:
		return 0, false
	}
}

// integerSuffixes lists every typed-integer suffix the literal grammar
// recognizes (§3). No suffix is a prefix of another, so the order of the
// list does not affect matching.
var integerSuffixes = []string{"u8", "u16", "u32", "u64", "i8", "i16", "i32", "i64"}

// readNumber reads a numeric literal: decimal, 0x/0o/0b prefixed, float
// (with optional scientific exponent), and the typed suffixes (u8..i64, f,
// d) from the literal grammar in §3. It never range-checks a typed suffix
// against the scanned magnitude — that overflow check happens at AST-compile
// time (value.Coerce), since the lexer has no Error-with-token machinery of
// its own and §7 reserves Overflow for evaluation/compile, not lexing.
func readNumber(lex *Lexer) Token {
	start := lex.Position
	startLine, startCol := lex.Line, lex.Column
	src := lex.Src
	n := lex.SrcLength

	// 0x / 0o / 0b prefixed literals
	if lex.Current == '0' && start+2 < n {
		prefix := src[start+1]
		switch prefix {
		case 'x', 'X':
			if isHexDigitASCII(src[start+2]) {
				i := start + 3
				for i < n && (isHexDigitASCII(src[i]) || src[i] == '_') {
					i++
				}
				return lex.finishNumber(start, i, startLine, startCol, "", false)
			}
		case 'o', 'O':
			if isOctalDigitASCII(src[start+2]) {
				i := start + 3
				for i < n && (isOctalDigitASCII(src[i]) || src[i] == '_') {
					i++
				}
				return lex.finishNumber(start, i, startLine, startCol, "", false)
			}
		case 'b', 'B':
			if isBinaryDigitASCII(src[start+2]) {
				i := start + 3
				for i < n && (isBinaryDigitASCII(src[i]) || src[i] == '_') {
					i++
				}
				return lex.finishNumber(start, i, startLine, startCol, "", false)
			}
		}
	}

	i := start + 1
	hasDot := false
	hasExp := false

	for i < n {
		c := src[i]
		if isDigitASCII(c) || c == '_' {
			i++
			continue
		}
		if c == '.' {
			if i+1 < n && src[i+1] == '.' {
				break // don't eat the range operator
			}
			if hasDot || hasExp {
				break
			}
			hasDot = true
			i++
			continue
		}
		if c == 'e' || c == 'E' {
			if hasExp {
				break
			}
			j := i + 1
			if j < n && (src[j] == '+' || src[j] == '-') {
				j++
			}
			if j < n && isDigitASCII(src[j]) {
				hasExp = true
				i = j + 1
				for i < n && isDigitASCII(src[i]) {
					i++
				}
				continue
			}
			break
		}
		break
	}

	suffix := ""

	// Typed suffix, only meaningful immediately after the mantissa.
	switch {
	case i < n && (src[i] == 'f' || src[i] == 'F') && !hasIdentTail(src, i+1, n):
		suffix = "f"
		i++
	case i < n && (src[i] == 'd' || src[i] == 'D') && !hasIdentTail(src, i+1, n):
		suffix = "d"
		i++
	case !hasDot && !hasExp:
		for _, s := range integerSuffixes {
			if strings.HasPrefix(src[i:min(n, i+len(s))], s) && !hasIdentTail(src, i+len(s), n) {
				suffix = s
				i += len(s)
				break
			}
		}
	}

	return lex.finishNumber(start, i, startLine, startCol, suffix, hasDot || hasExp)
}

// hasIdentTail reports whether src[pos] continues an identifier — used so a
// suffix match doesn't eat into a longer identifier: in "1for" the "f" is
// not taken as a float suffix, and "1u8x" is not read as a u8 literal. The
// number still ends where the digits end ("1for" lexes as 1 then for).
func hasIdentTail(src string, pos, n int) bool {
	return pos < n && (isAlphanumeric(src[pos]) || src[pos] == '_')
}

func (lex *Lexer) finishNumber(start, end, line, col int, suffix string, mantissaIsFloatShaped bool) Token {
	lex.Column += end - start
	lex.Position = end
	if end >= lex.SrcLength {
		lex.Current = 0
		lex.Position = lex.SrcLength
	} else {
		lex.Current = lex.Src[end]
	}

	literal := lex.Src[start:end]
	tokenType := INT_LIT
	switch suffix {
	case "f":
		tokenType = FLOAT_LIT
	case "d":
		tokenType = FIXED_LIT
	default:
		if mantissaIsFloatShaped {
			tokenType = FLOAT_LIT
		}
	}
	tok := NewTokenWithMetadata(tokenType, literal, line, col)
	tok.Suffix = suffix
	return tok
}

// readIdentifier reads an identifier or keyword: [A-Za-z_][A-Za-z0-9_]*.
func readIdentifier(lex *Lexer) Token {
	position := lex.Position
	line, col := lex.Line, lex.Column

	if isAlpha(lex.Current) || lex.Current == '_' {
		lex.Advance()
	} else {
		return NewTokenWithMetadata(INVALID_TYPE, "", line, col)
	}

	for isAlphanumeric(lex.Current) || lex.Current == '_' {
		lex.Advance()
	}

	literal := lex.Src[position:lex.Position]
	return NewTokenWithMetadata(lookupIdent(literal), literal, line, col)
}
