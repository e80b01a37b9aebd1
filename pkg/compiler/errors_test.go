/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020 Leandro Motta Barros                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basinlang/basinc/pkg/ast"
	"github.com/basinlang/basinc/pkg/bytecode"
	"github.com/basinlang/basinc/pkg/span"
)

// panickyNode is an ast.Node whose Walk panics with a plain value instead of
// one of this package's Error variants, standing in for a genuine bug (e.g.
// a nil pointer dereference) rather than a source-level diagnostic.
type panickyNode struct{ ast.BaseNode }

func (n *panickyNode) Walk(ast.Visitor) { panic("boom") }

func expectPanic(t *testing.T, want interface{}, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		assert.IsType(t, want, r)
	}()
	f()
}

func TestMustInsertConstantPanicsAsTooManyConstantsError(t *testing.T) {
	e := newTestEmitter()
	e.chunk.Constants = make([]bytecode.Value, bytecode.MaxConstants)

	expectPanic(t, &TooManyConstantsError{}, func() {
		e.mustInsertConstant(bytecode.NewValueNil(), span.FreeSpan{})
	})
}

func TestMustPatchJumpPanicsAsJumpTooFarError(t *testing.T) {
	e := newTestEmitter()
	handle := e.chunk.Emit(bytecode.Instr{Op: bytecode.OpJump, Operand: bytecode.DummyOffset}, span.FreeSpan{})
	e.chunk.Code = append(e.chunk.Code, make([]byte, bytecode.MaxJumpDistance+1)...)

	expectPanic(t, &JumpTooFarError{}, func() {
		e.mustPatchJump(handle, span.FreeSpan{})
	})
}

func TestMustEmitLoopPanicsAsJumpTooFarError(t *testing.T) {
	e := newTestEmitter()
	target := e.chunk.LoopPoint()
	e.chunk.Code = append(e.chunk.Code, make([]byte, bytecode.MaxJumpDistance+1)...)

	expectPanic(t, &JumpTooFarError{}, func() {
		e.mustEmitLoop(target, span.FreeSpan{})
	})
}

func TestCompileRecoversStructuredErrorsOnly(t *testing.T) {
	// A panic that isn't one of this package's Error variants must not be
	// swallowed by Compile -- it should keep propagating, since recovering
	// it would hide an actual bug instead of a source-level diagnostic.
	defer func() {
		r := recover()
		require.NotNil(t, r)
		assert.Equal(t, "boom", r)
	}()

	Compile("", ast.Program{&panickyNode{}})
}
