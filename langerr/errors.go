/*
File    : exprscript/langerr/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package langerr

import "fmt"

// Kind identifies the category of an Error. It is an open enum: new kinds
// may be added without touching existing callers, since Kind is just a
// string rather than a closed Go type switch target outside this package.
type Kind string

const (
	// Compile-time kinds
	Syntax                  Kind = "Syntax"
	UnterminatedLinebreak   Kind = "UnterminatedLinebreak"
	UnterminatedLiteral     Kind = "UnterminatedLiteral"
	UnterminatedComment     Kind = "UnterminatedComment"
	UnterminatedArray       Kind = "UnterminatedArray"
	UnterminatedObject      Kind = "UnterminatedObject"
	UnterminatedParen       Kind = "UnterminatedParen"
	UnexpectedDecorator     Kind = "UnexpectedDecorator"

	// Evaluation kinds
	TypeMismatch Kind = "TypeMismatch"
	ValueFormat  Kind = "ValueFormat"
	RangeErr     Kind = "Range"
	Overflow     Kind = "Overflow"
	Index        Kind = "Index"
	KeyNotFound  Kind = "KeyNotFound"
	ArrayEmpty   Kind = "ArrayEmpty"
	ConstantValue Kind = "ConstantValue"

	// Dispatch kinds
	FunctionName         Kind = "FunctionName"
	FunctionArgumentType Kind = "FunctionArgumentType"
	FunctionArguments    Kind = "FunctionArguments"

	// Resource kinds
	Timeout      Kind = "Timeout"
	StackOverflow Kind = "StackOverflow"
	ParseDepth   Kind = "ParseDepth"

	// Control-flow kind: not a user-visible failure, caught by the
	// enclosing user-function call.
	Return Kind = "Return"

	// User-raised and internal-invariant kinds.
	Custom   Kind = "Custom"
	Internal Kind = "Internal"
)

// Error is the structured error type produced by every stage of the engine.
// Token and Source are both optional: a bare Kind with a Msg is valid for
// cases (like a registry build-time duplicate name) that have no source
// position at all.
type Error struct {
	Kind  Kind
	Msg   string
	Token *Token
	Source error // the wrapped cause, if any (forms a stack chain)

	// Value carries the payload for control-flow kinds. Return stores the
	// value being returned; it is never a "real" error from the script
	// author's point of view.
	Value interface{}
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func NewAt(kind Kind, msg string, tok *Token) *Error {
	return &Error{Kind: kind, Msg: msg, Token: tok}
}

// Wrap records err as the Source of a new Error of the given kind, forming
// a caller-wraps-callee chain visible via Unwrap. Used where a failure is
// re-reported under a different kind, e.g. an argument that fails coercion
// to its declared parameter type becomes FunctionArgumentType.
func Wrap(kind Kind, msg string, tok *Token, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Token: tok, Source: err}
}

// NewReturn builds the Return control-flow pseudo-error that unwinds a
// user-function body back to its call boundary, carrying v as the payload.
func NewReturn(v interface{}) *Error {
	return &Error{Kind: Return, Value: v}
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Token != nil && e.Token.Line > 0 {
		return fmt.Sprintf("[%d:%d] %s: %s", e.Token.Line, e.Token.Column, e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Source }

// Is reports whether err itself is a *Error of the given kind. It does not
// look through the Source chain.
func Is(err error, kind Kind) bool {
	le, ok := err.(*Error)
	return ok && le != nil && le.Kind == kind
}

// AttachToken sets e.Token if it is currently nil, implementing the
// "each AST node may attach its token if absent" propagation rule: the
// innermost failure keeps its own precise token, but as the error bubbles
// through enclosing nodes that didn't originally have position info it
// picks one up from the first node able to supply it.
func (e *Error) AttachToken(tok *Token) *Error {
	if e.Token == nil {
		e.Token = tok
	}
	return e
}

// OffsetLinecount shifts e's own token and, if present, the token of every
// error in its Source chain, by k lines. This is what include() uses to
// make a spliced file's errors read in terms of the including file's line
// numbers.
func (e *Error) OffsetLinecount(k int) {
	if e == nil {
		return
	}
	e.Token.OffsetLine(k)
	if se, ok := e.Source.(*Error); ok {
		se.OffsetLinecount(k)
	}
}
