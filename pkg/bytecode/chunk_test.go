/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020 Leandro Motta Barros                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package bytecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basinlang/basinc/pkg/span"
)

func TestInsertConstant(t *testing.T) {
	c := NewChunk()

	k0, err := c.InsertConstant(NewValueNumber(1))
	require.NoError(t, err)
	assert.EqualValues(t, 0, k0)

	k1, err := c.InsertConstant(NewValueNumber(1))
	require.NoError(t, err)
	assert.EqualValues(t, 1, k1, "InsertConstant never deduplicates")

	assert.Len(t, c.Constants, 2)
}

func TestInsertConstantOverflow(t *testing.T) {
	c := &Chunk{Constants: make([]Value, MaxConstants)}
	_, err := c.InsertConstant(NewValueNil())
	assert.ErrorIs(t, err, ErrTooManyConstants)
}

func TestEmitRecordsSpanAndReturnsOffset(t *testing.T) {
	c := NewChunk()

	h0 := c.Emit(Instr{Op: OpTrue}, span.New(0, 4))
	h1 := c.Emit(Instr{Op: OpConstant, Operand: 2}, span.New(5, 6))

	assert.Equal(t, 0, h0)
	assert.Equal(t, 1, h1)
	assert.Equal(t, []span.FreeSpan{span.New(0, 4), span.New(5, 6)}, c.Spans)
	assert.Len(t, c.Code, 1+3)
}

func TestPatchJumpForward(t *testing.T) {
	c := NewChunk()

	handle := c.Emit(Instr{Op: OpJumpIfFalse, Operand: DummyOffset}, span.FreeSpan{})
	c.Emit(Instr{Op: OpPop}, span.FreeSpan{})
	c.Emit(Instr{Op: OpConstant, Operand: 0}, span.FreeSpan{})

	err := c.PatchJump(handle)
	require.NoError(t, err)

	instr, _, ok := Decode(c.Code[handle:])
	require.True(t, ok)
	assert.Equal(t, OpJumpIfFalse, instr.Op)
	assert.EqualValues(t, 1+3, instr.Operand, "Pop (1 byte) + Constant (3 bytes)")
}

func TestEmitLoopBackward(t *testing.T) {
	c := NewChunk()

	loopStart := c.LoopPoint()
	c.Emit(Instr{Op: OpTrue}, span.FreeSpan{})
	c.Emit(Instr{Op: OpPop}, span.FreeSpan{})

	err := c.EmitLoop(loopStart, span.FreeSpan{})
	require.NoError(t, err)

	loopOffset := len(c.Code) - 3
	instr, _, ok := Decode(c.Code[loopOffset:])
	require.True(t, ok)
	assert.Equal(t, OpLoop, instr.Op)
	assert.EqualValues(t, len(c.Code)-loopStart, instr.Operand)
}

func TestPatchJumpTooFar(t *testing.T) {
	c := NewChunk()
	handle := c.Emit(Instr{Op: OpJump, Operand: DummyOffset}, span.FreeSpan{})
	c.Code = append(c.Code, make([]byte, MaxJumpDistance+1)...)

	err := c.PatchJump(handle)
	assert.ErrorIs(t, err, ErrJumpTooFar)
}

func TestDisassembleDoesNotPanic(t *testing.T) {
	c := NewChunk()
	k, err := c.InsertConstant(NewValueNumber(1))
	require.NoError(t, err)

	handle := c.Emit(Instr{Op: OpConstant, Operand: k}, span.New(0, 1))
	c.Emit(Instr{Op: OpJumpIfFalse, Operand: DummyOffset}, span.New(2, 3))
	c.Emit(Instr{Op: OpPop}, span.New(3, 4))
	require.NoError(t, c.PatchJump(handle+3))
	c.Emit(Instr{Op: OpReturn}, span.New(4, 5))

	out := c.Disassemble("test")
	assert.Contains(t, out, "== test ==")
	assert.Contains(t, out, "CONSTANT")
	assert.Contains(t, out, "JUMP_IF_FALSE")
	assert.Contains(t, out, "RETURN")
}
