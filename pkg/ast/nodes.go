/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020 Leandro Motta Barros                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package ast

import "github.com/basinlang/basinc/pkg/span"

//
// Declarations
//

// ClassDecl is a class declaration. Classes aren't implemented yet; the
// emitter rejects this node as soon as it's entered.
type ClassDecl struct {
	BaseNode
	KeywordSpan span.FreeSpan
}

func (n *ClassDecl) Walk(v Visitor) {
	v.Enter(n)
	v.Leave(n)
}

// FunDecl is a function declaration. Functions aren't implemented yet; the
// emitter rejects this node as soon as it's entered.
type FunDecl struct {
	BaseNode
	KeywordSpan span.FreeSpan
}

func (n *FunDecl) Walk(v Visitor) {
	v.Enter(n)
	v.Leave(n)
}

// VarDecl is a variable declaration: `var x;` or `var x = expr;`.
type VarDecl struct {
	BaseNode

	// Ident is the declared variable's name.
	Ident *Identifier

	// Init is the initializer expression, or nil if the declaration has
	// none (in which case the variable is bound to Nil).
	Init Node
}

func (n *VarDecl) Walk(v Visitor) {
	v.Enter(n)
	if n.Init != nil {
		n.Init.Walk(v)
	}
	v.Leave(n)
}

//
// Statements
//

// ExprStmt is an expression used as a statement: `expr;`.
type ExprStmt struct {
	BaseNode
	Expr          Node
	SemicolonSpan span.FreeSpan
}

func (n *ExprStmt) Walk(v Visitor) {
	v.Enter(n)
	n.Expr.Walk(v)
	v.Leave(n)
}

// ForStmt is a `for` loop. Not implemented yet; the emitter rejects this
// node as soon as it's entered.
type ForStmt struct {
	BaseNode
	KeywordSpan span.FreeSpan
}

func (n *ForStmt) Walk(v Visitor) {
	v.Enter(n)
	v.Leave(n)
}

// ElseBranch is the `else { ... }` tail of an IfStmt. It isn't a Node on
// its own; IfStmt.Walk visits its Body directly.
type ElseBranch struct {
	KeywordSpan span.FreeSpan
	Body        *Block
}

// IfStmt is an `if <pred> { ... }` statement, with an optional `else`.
//
// ThenJump and ElseJump are jump handles filled in by the emitter during
// compilation (see ast.Event); they are meaningless before compilation and
// irrelevant once it's done.
type IfStmt struct {
	BaseNode
	KeywordSpan span.FreeSpan
	Pred        Node
	Body        *Block
	Else        *ElseBranch

	ThenJump int
	ElseJump int
}

func (n *IfStmt) Walk(v Visitor) {
	v.Enter(n)
	n.Pred.Walk(v)
	v.Event(n, EventAfterIfPredicate)
	n.Body.Walk(v)
	v.Event(n, EventAfterIfThen)
	if n.Else != nil {
		n.Else.Body.Walk(v)
	}
	v.Leave(n)
}

// AssertStmt is `assert expr;`.
type AssertStmt struct {
	BaseNode
	Expr Node
}

func (n *AssertStmt) Walk(v Visitor) {
	v.Enter(n)
	n.Expr.Walk(v)
	v.Leave(n)
}

// PrintStmt is `print expr;`.
type PrintStmt struct {
	BaseNode
	Expr Node
}

func (n *PrintStmt) Walk(v Visitor) {
	v.Enter(n)
	n.Expr.Walk(v)
	v.Leave(n)
}

// ReturnStmt is a `return` statement. Not implemented yet; the emitter
// rejects this node as soon as it's entered.
type ReturnStmt struct {
	BaseNode
	KeywordSpan span.FreeSpan
}

func (n *ReturnStmt) Walk(v Visitor) {
	v.Enter(n)
	v.Leave(n)
}

// WhileStmt is `while <pred> { ... }`.
//
// LoopStart and ExitJump are filled in by the emitter during compilation
// (see ast.Event); meaningless before compilation.
type WhileStmt struct {
	BaseNode
	KeywordSpan span.FreeSpan
	Pred        Node
	Body        *Block

	LoopStart int
	ExitJump  int
}

func (n *WhileStmt) Walk(v Visitor) {
	v.Enter(n)
	n.Pred.Walk(v)
	v.Event(n, EventAfterWhilePredicate)
	n.Body.Walk(v)
	v.Leave(n)
}

// Block is a `{ ... }` sequence of declarations, with its own lexical
// scope.
type Block struct {
	BaseNode
	LeftBraceSpan  span.FreeSpan
	RightBraceSpan span.FreeSpan
	Body           []Node
}

func (n *Block) Walk(v Visitor) {
	v.Enter(n)
	for _, decl := range n.Body {
		decl.Walk(v)
	}
	v.Leave(n)
}

//
// Expressions
//

// Binary is a binary operator expression. Operator is one of: "=", "or",
// "and", "!=", "==", ">", ">=", "<", "<=", "+", "-", "*", "/".
//
// ShortCircuitJump is filled in by the emitter for "and"/"or" during
// compilation (see ast.Event); meaningless for other operators or before
// compilation.
type Binary struct {
	BaseNode
	Operator     string
	OperatorSpan span.FreeSpan
	LHS          Node
	RHS          Node

	ShortCircuitJump int
}

func (n *Binary) Walk(v Visitor) {
	v.Enter(n)
	switch n.Operator {
	case "=":
		// The LHS is a target, not a value to evaluate. It also has to be
		// checked before the RHS is walked, not after: an invalid target
		// (anything but a bare identifier) is an error regardless of what
		// the RHS is, and source-order error reporting requires catching it
		// before the RHS gets a chance to raise one of its own.
		if _, ok := n.LHS.(*Identifier); ok {
			n.RHS.Walk(v)
		}
	case "and", "or":
		n.LHS.Walk(v)
		v.Event(n, EventAfterLogicalLHS)
		n.RHS.Walk(v)
	default:
		n.LHS.Walk(v)
		n.RHS.Walk(v)
	}
	v.Leave(n)
}

// Unary is a unary operator expression. Operator is "!" or "-".
type Unary struct {
	BaseNode
	Operator string
	Expr     Node
}

func (n *Unary) Walk(v Visitor) {
	v.Enter(n)
	n.Expr.Walk(v)
	v.Leave(n)
}

// FieldExpr is a `expr.field` access. Not implemented yet; the emitter
// rejects this node as soon as it's entered.
type FieldExpr struct {
	BaseNode
}

func (n *FieldExpr) Walk(v Visitor) {
	v.Enter(n)
	v.Leave(n)
}

// GroupExpr is a parenthesized expression: `(expr)`.
type GroupExpr struct {
	BaseNode
	Expr Node
}

func (n *GroupExpr) Walk(v Visitor) {
	v.Enter(n)
	n.Expr.Walk(v)
	v.Leave(n)
}

// CallExpr is a function call. Not implemented yet; the emitter rejects
// this node as soon as it's entered.
type CallExpr struct {
	BaseNode
}

func (n *CallExpr) Walk(v Visitor) {
	v.Enter(n)
	v.Leave(n)
}

// NilLiteral is the `nil` literal.
type NilLiteral struct{ BaseNode }

func (n *NilLiteral) Walk(v Visitor) { v.Enter(n); v.Leave(n) }

// TrueLiteral is the `true` literal.
type TrueLiteral struct{ BaseNode }

func (n *TrueLiteral) Walk(v Visitor) { v.Enter(n); v.Leave(n) }

// FalseLiteral is the `false` literal.
type FalseLiteral struct{ BaseNode }

func (n *FalseLiteral) Walk(v Visitor) { v.Enter(n); v.Leave(n) }

// NumberLiteral is a number literal. Lexeme is the bare source slice (e.g.
// "123.456"); the emitter is responsible for parsing it.
type NumberLiteral struct {
	BaseNode
	Lexeme string
}

func (n *NumberLiteral) Walk(v Visitor) { v.Enter(n); v.Leave(n) }

// StringLiteral is a string literal. Lexeme is the raw source slice
// including the surrounding double quotes; the emitter strips them.
type StringLiteral struct {
	BaseNode
	Lexeme string
}

func (n *StringLiteral) Walk(v Visitor) { v.Enter(n); v.Leave(n) }

// Identifier is a bare name, either a use (as an expression) or a binding
// (as a VarDecl's declared name). Name is the raw source slice; two
// identifiers are the same binding iff their Name bytes are equal, not iff
// they're the same token.
type Identifier struct {
	BaseNode
	Name string
}

func (n *Identifier) Walk(v Visitor) { v.Enter(n); v.Leave(n) }

// ThisExpr is the `this` expression. Not implemented yet; the emitter
// rejects this node as soon as it's entered.
type ThisExpr struct{ BaseNode }

func (n *ThisExpr) Walk(v Visitor) { v.Enter(n); v.Leave(n) }

// SuperExpr is the `super` expression. Not implemented yet; the emitter
// rejects this node as soon as it's entered.
type SuperExpr struct{ BaseNode }

func (n *SuperExpr) Walk(v Visitor) { v.Enter(n); v.Leave(n) }
