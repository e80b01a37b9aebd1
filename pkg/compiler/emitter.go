/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020 Leandro Motta Barros                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package compiler

import (
	"strconv"

	"github.com/basinlang/basinc/pkg/ast"
	"github.com/basinlang/basinc/pkg/bytecode"
	"github.com/basinlang/basinc/pkg/span"
)

// emitter is an ast.Visitor that lowers a tree to bytecode in a single pass,
// as it's walked. There's no separate resolution pass: a name is known to
// be a local or a global the instant its declaring VarDecl (or lack of one)
// has been seen, because scopeDepth and locals are exactly the state a
// reader would track by hand while reading top to bottom.
//
// Every fallible step (too many locals, shadowing, a jump that doesn't fit
// its operand, ...) panics with one of the *Error types in errors.go rather
// than threading an error return through every Enter/Event/Leave method;
// Compile is the only place that recovers.
type emitter struct {
	source   string
	chunk    *bytecode.Chunk
	interner *bytecode.StringInterner

	locals     []local
	scopeDepth int
}

func (e *emitter) emit(instr bytecode.Instr, sp span.FreeSpan) int {
	return e.chunk.Emit(instr, sp)
}

func (e *emitter) mustInsertConstant(v bytecode.Value, sp span.FreeSpan) bytecode.ConstKey {
	key, err := e.chunk.InsertConstant(v)
	if err != nil {
		panic(&TooManyConstantsError{At: sp})
	}
	return key
}

func (e *emitter) mustPatchJump(handle int, sp span.FreeSpan) {
	if err := e.chunk.PatchJump(handle); err != nil {
		panic(&JumpTooFarError{At: sp})
	}
}

func (e *emitter) mustEmitLoop(target bytecode.LoopTarget, sp span.FreeSpan) {
	if err := e.chunk.EmitLoop(target, sp); err != nil {
		panic(&JumpTooFarError{At: sp})
	}
}

func (e *emitter) identifierConstant(ident *ast.Identifier) bytecode.ConstKey {
	return e.mustInsertConstant(e.interner.InternValue(ident.Name), ident.Span())
}

func (e *emitter) beginScope() {
	e.scopeDepth++
}

// endScope closes the innermost scope, popping every local it declared off
// both e.locals and (via an emitted Pop per local) the runtime stack.
func (e *emitter) endScope(sp span.FreeSpan) {
	e.scopeDepth--
	for len(e.locals) > 0 && e.locals[len(e.locals)-1].depth > e.scopeDepth {
		e.locals = e.locals[:len(e.locals)-1]
		e.emit(bytecode.Instr{Op: bytecode.OpPop}, sp)
	}
}

// Enter implements ast.Visitor. It rejects not-yet-implemented AST shapes
// as soon as they're seen, and handles the bits of scope bookkeeping that
// must happen before a node's children are visited.
func (e *emitter) Enter(n ast.Node) {
	switch t := n.(type) {
	case *ast.ClassDecl:
		panic(&NotYetImplementedError{Feature: "class", At: t.KeywordSpan})
	case *ast.FunDecl:
		panic(&NotYetImplementedError{Feature: "function", At: t.KeywordSpan})
	case *ast.ForStmt:
		panic(&NotYetImplementedError{Feature: "for", At: t.KeywordSpan})
	case *ast.ReturnStmt:
		panic(&NotYetImplementedError{Feature: "return", At: t.KeywordSpan})
	case *ast.FieldExpr:
		panic(&NotYetImplementedError{Feature: "field access", At: t.Span()})
	case *ast.CallExpr:
		panic(&NotYetImplementedError{Feature: "function call", At: t.Span()})
	case *ast.ThisExpr:
		panic(&NotYetImplementedError{Feature: "this", At: t.Span()})
	case *ast.SuperExpr:
		panic(&NotYetImplementedError{Feature: "super", At: t.Span()})

	case *ast.Block:
		e.beginScope()

	case *ast.WhileStmt:
		// Must be captured before the predicate is compiled: it's the
		// branch target EmitLoop will jump back to.
		t.LoopStart = e.chunk.LoopPoint()
	}
}

// Event implements ast.Visitor, emitting the forward-branch instructions
// whose targets aren't known until the rest of the node has been compiled.
func (e *emitter) Event(n ast.Node, event ast.Event) {
	switch t := n.(type) {
	case *ast.IfStmt:
		switch event {
		case ast.EventAfterIfPredicate:
			t.ThenJump = e.emit(bytecode.Instr{Op: bytecode.OpJumpIfFalse, Operand: bytecode.DummyOffset}, t.KeywordSpan)
			e.emit(bytecode.Instr{Op: bytecode.OpPop}, t.KeywordSpan)
		case ast.EventAfterIfThen:
			t.ElseJump = e.emit(bytecode.Instr{Op: bytecode.OpJump, Operand: bytecode.DummyOffset}, t.KeywordSpan)
			e.mustPatchJump(t.ThenJump, t.KeywordSpan)
			e.emit(bytecode.Instr{Op: bytecode.OpPop}, t.KeywordSpan)
		}

	case *ast.WhileStmt:
		if event == ast.EventAfterWhilePredicate {
			condSpan := span.Join(t.KeywordSpan, t.Pred.Span())
			t.ExitJump = e.emit(bytecode.Instr{Op: bytecode.OpJumpIfFalse, Operand: bytecode.DummyOffset}, condSpan)
			e.emit(bytecode.Instr{Op: bytecode.OpPop}, t.Body.LeftBraceSpan)
		}

	case *ast.Binary:
		if event == ast.EventAfterLogicalLHS {
			condSpan := span.Join(t.LHS.Span(), t.OperatorSpan)
			switch t.Operator {
			case "and":
				t.ShortCircuitJump = e.emit(bytecode.Instr{Op: bytecode.OpJumpIfFalse, Operand: bytecode.DummyOffset}, condSpan)
			case "or":
				t.ShortCircuitJump = e.emit(bytecode.Instr{Op: bytecode.OpJumpIfTrue, Operand: bytecode.DummyOffset}, condSpan)
			}
			e.emit(bytecode.Instr{Op: bytecode.OpPop}, t.OperatorSpan)
		}
	}
}

// Leave implements ast.Visitor: everything that happens after a node's
// children have been compiled -- emitting the node's own opcode(s),
// patching jump handles, closing scopes, declaring locals/globals.
func (e *emitter) Leave(n ast.Node) {
	switch t := n.(type) {
	case *ast.VarDecl:
		e.leaveVarDecl(t)
	case *ast.ExprStmt:
		e.emit(bytecode.Instr{Op: bytecode.OpPop}, t.SemicolonSpan)
	case *ast.AssertStmt:
		e.emit(bytecode.Instr{Op: bytecode.OpAssert}, t.Span())
	case *ast.PrintStmt:
		e.emit(bytecode.Instr{Op: bytecode.OpPrint}, t.Span())

	case *ast.IfStmt:
		e.mustPatchJump(t.ElseJump, t.KeywordSpan)

	case *ast.WhileStmt:
		sp := t.Body.RightBraceSpan
		e.mustEmitLoop(t.LoopStart, sp)
		e.mustPatchJump(t.ExitJump, sp)
		e.emit(bytecode.Instr{Op: bytecode.OpPop}, sp)

	case *ast.Block:
		e.endScope(t.RightBraceSpan)

	case *ast.Binary:
		e.leaveBinary(t)
	case *ast.Unary:
		e.leaveUnary(t)

	case *ast.NilLiteral:
		e.emit(bytecode.Instr{Op: bytecode.OpNil}, t.Span())
	case *ast.TrueLiteral:
		e.emit(bytecode.Instr{Op: bytecode.OpTrue}, t.Span())
	case *ast.FalseLiteral:
		e.emit(bytecode.Instr{Op: bytecode.OpFalse}, t.Span())
	case *ast.NumberLiteral:
		e.leaveNumberLiteral(t)
	case *ast.StringLiteral:
		e.leaveStringLiteral(t)
	case *ast.Identifier:
		e.leaveIdentifierUse(t)
	}
}

func (e *emitter) leaveVarDecl(n *ast.VarDecl) {
	if n.Init == nil {
		e.emit(bytecode.Instr{Op: bytecode.OpNil}, n.Span())
	}

	if e.scopeDepth == 0 {
		key := e.identifierConstant(n.Ident)
		e.emit(bytecode.Instr{Op: bytecode.OpDefGlobal, Operand: key}, n.Span())
	} else {
		e.addLocal(n.Ident)
	}
}

func (e *emitter) leaveBinary(n *ast.Binary) {
	switch n.Operator {
	case "=":
		e.leaveAssignment(n)
	case "and", "or":
		e.mustPatchJump(n.ShortCircuitJump, n.OperatorSpan)
	default:
		e.emitBinaryOp(n)
	}
}

// leaveAssignment handles "=". The LHS was never walked (see Binary.Walk),
// so at this point only the RHS value sits on the stack; what's left is
// deciding where it goes.
func (e *emitter) leaveAssignment(n *ast.Binary) {
	ident, ok := n.LHS.(*ast.Identifier)
	if !ok {
		panic(&InvalidAssignmentTargetError{At: n.LHS.Span()})
	}

	if slot, ok := e.resolveLocal(ident.Name); ok {
		e.emit(bytecode.Instr{Op: bytecode.OpSetLocal, Operand: slot}, n.Span())
	} else {
		key := e.identifierConstant(ident)
		e.emit(bytecode.Instr{Op: bytecode.OpSetGlobal, Operand: key}, n.Span())
	}
}

func (e *emitter) emitBinaryOp(n *ast.Binary) {
	sp := n.Span()
	switch n.Operator {
	case "!=":
		e.emit(bytecode.Instr{Op: bytecode.OpEqual}, sp)
		e.emit(bytecode.Instr{Op: bytecode.OpNot}, sp)
	case "==":
		e.emit(bytecode.Instr{Op: bytecode.OpEqual}, sp)
	case ">":
		e.emit(bytecode.Instr{Op: bytecode.OpGreater}, sp)
	case ">=":
		// a >= b  ==  !(a < b). NaN comparisons inherit this identity, so
		// `nan >= x` comes out true instead of false. The same holds for
		// "<=" below, lowered as !(a > b).
		e.emit(bytecode.Instr{Op: bytecode.OpLess}, sp)
		e.emit(bytecode.Instr{Op: bytecode.OpNot}, sp)
	case "<":
		e.emit(bytecode.Instr{Op: bytecode.OpLess}, sp)
	case "<=":
		e.emit(bytecode.Instr{Op: bytecode.OpGreater}, sp)
		e.emit(bytecode.Instr{Op: bytecode.OpNot}, sp)
	case "+":
		e.emit(bytecode.Instr{Op: bytecode.OpAdd}, sp)
	case "-":
		e.emit(bytecode.Instr{Op: bytecode.OpSubtract}, sp)
	case "*":
		e.emit(bytecode.Instr{Op: bytecode.OpMultiply}, sp)
	case "/":
		e.emit(bytecode.Instr{Op: bytecode.OpDivide}, sp)
	default:
		panic("compiler: unknown binary operator " + strconv.Quote(n.Operator))
	}
}

func (e *emitter) leaveUnary(n *ast.Unary) {
	sp := n.Span()
	switch n.Operator {
	case "!":
		e.emit(bytecode.Instr{Op: bytecode.OpNot}, sp)
	case "-":
		e.emit(bytecode.Instr{Op: bytecode.OpNegate}, sp)
	default:
		panic("compiler: unknown unary operator " + strconv.Quote(n.Operator))
	}
}

func (e *emitter) leaveNumberLiteral(n *ast.NumberLiteral) {
	f, err := strconv.ParseFloat(n.Lexeme, 64)
	if err != nil {
		panic(&InvalidNumberLiteralError{Cause: err, At: n.Span()})
	}
	key := e.mustInsertConstant(bytecode.NewValueNumber(f), n.Span())
	e.emit(bytecode.Instr{Op: bytecode.OpConstant, Operand: key}, n.Span())
}

func (e *emitter) leaveStringLiteral(n *ast.StringLiteral) {
	contents := n.Lexeme
	if len(contents) >= 2 {
		contents = contents[1 : len(contents)-1]
	}
	key := e.mustInsertConstant(e.interner.InternValue(contents), n.Span())
	e.emit(bytecode.Instr{Op: bytecode.OpConstant, Operand: key}, n.Span())
}

func (e *emitter) leaveIdentifierUse(n *ast.Identifier) {
	if slot, ok := e.resolveLocal(n.Name); ok {
		e.emit(bytecode.Instr{Op: bytecode.OpGetLocal, Operand: slot}, n.Span())
		return
	}
	key := e.identifierConstant(n)
	e.emit(bytecode.Instr{Op: bytecode.OpGetGlobal, Operand: key}, n.Span())
}
