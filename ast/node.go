/*
File    : exprscript/ast/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast implements the AST compiler and tree-walking evaluator: the
// Pratt operator-precedence layer that lowers a token stream into a syntax
// tree, and the Evaluate method that walks it against a *state.State.
//
// Unlike the teacher's parser.Node family (one Go type per node shape,
// dispatched through a NodeVisitor interface with one Visit method per
// shape), Node here is a single tagged-variant struct switched on Kind —
// generalizing the same design value.Value already uses for its own
// tagged-union payload. This is the explicit dispatch form the data model
// calls for: no double-dispatch visitor, just Evaluate switching on its own
// Kind field.
package ast

import (
	"github.com/akashmaji946/exprscript/langerr"
	"github.com/akashmaji946/exprscript/lexer"
	"github.com/akashmaji946/exprscript/value"
)

// Kind tags the shape of a Node, mirroring the data model's AST node
// variant list: Script/Block, Expression, Infix{Arithmetic,Bitwise,
// Boolean,Matching}, Prefix{Neg,Not,BitNot,IncDec}, Postfix{IncDec},
// Indexing, Call, Decorator, Literal, Identifier, Assignment, If, For,
// Return, FunctionDeclaration, ErrorNode.
type Kind int

const (
	KindIntLit Kind = iota
	KindFloatLit
	KindFixedLit
	KindStringLit
	KindBoolLit
	KindNilLit
	KindIdentifier

	KindUnary    // prefix - ~ not, and prefix/postfix ++ --
	KindBinary   // + - * / % ** & | ^ << >> == != < <= > >=
	KindLogical  // and / or (short-circuiting)
	KindMatch    // is / contains / matches / starts_with / ends_with
	KindRange    // a..b
	KindDecorator

	KindAssign         // name = expr, also compound-assign (+= etc.)
	KindGlobalAssign    // global name = expr

	KindIndex        // a[i]
	KindMemberAccess // a.field (sugar for a["field"])
	KindCall         // f(args...)

	KindArrayLit
	KindObjectLit

	KindIf
	KindWhile
	KindForIn
	KindBlock
	KindReturn
	KindFuncDecl

	KindError // a compiled ERROR_UNTERMINATED_*/ERROR_UNEXPECTED_DECORATOR token
)

// ObjectEntry is one key/value pair of an object literal, evaluated
// left-to-right per §5's ordering guarantee.
type ObjectEntry struct {
	Key   *Node
	Value *Node
}

// Node is the engine's single AST node type: a Kind tag plus every payload
// field any variant might need. Which fields are meaningful is determined
// entirely by Kind — documented per constructor in the eval_*.go files
// rather than repeated here field-by-field.
type Node struct {
	Kind Kind
	Tok  *langerr.Token

	Lit value.Value // literal payload for Kind*Lit

	Name string // identifier / member field / decorator / function name
	Op   lexer.TokenType
	Postfix bool // for KindUnary ++/--: true = postfix, false = prefix

	Left  *Node // primary operand (unary operand, binary LHS, assign target, index base, call callee)
	Right *Node // secondary operand (binary RHS, assign value, index key, range end)

	Cond *Node // if/while condition
	Then *Node // if-true branch / while/for-in body
	Else *Node // if-false branch (nil if no else)

	IterVar  string // for-in loop variable name
	Iterable *Node  // for-in iterable expression

	Body []*Node // block statements / function body statements

	Args []*Node // call arguments / array elements

	Entries []ObjectEntry // object literal

	Params     []string      // function declaration parameter names
	BodyTokens []lexer.Token // function body, kept as raw tokens for lazy compile (§4.7)
	BodyKey    string        // canonical cache key derived from BodyTokens' literals
	IsBlockFn  bool          // true for `name(args) { stmts }`, false for `name(args) = expr`

	ErrKind langerr.Kind // compiled error-rule kind, for KindError
}

// Token returns the node's anchoring token, used to attach source position
// to any error raised while evaluating it.
func (n *Node) Token() *langerr.Token {
	if n == nil {
		return nil
	}
	return n.Tok
}

// OffsetLine shifts this node's own token, and recursively every child
// node's token, by k lines. include() uses this to make a spliced file's
// diagnostics read in terms of the including file's line numbers.
func (n *Node) OffsetLine(k int) {
	if n == nil {
		return
	}
	n.Tok.OffsetLine(k)
	n.Left.OffsetLine(k)
	n.Right.OffsetLine(k)
	n.Cond.OffsetLine(k)
	n.Then.OffsetLine(k)
	n.Else.OffsetLine(k)
	n.Iterable.OffsetLine(k)
	for _, c := range n.Body {
		c.OffsetLine(k)
	}
	for _, c := range n.Args {
		c.OffsetLine(k)
	}
	for _, e := range n.Entries {
		e.Key.OffsetLine(k)
		e.Value.OffsetLine(k)
	}
	for i := range n.BodyTokens {
		n.BodyTokens[i].Line += k
	}
}
