/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020 Leandro Motta Barros                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package bytecode

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/basinlang/basinc/pkg/span"
)

// ConstKey is the index of a value in a Chunk's constant pool.
type ConstKey = uint16

const (
	// MaxConstants is the largest number of constants a single Chunk's pool
	// may hold: ConstKey is 16 bits wide.
	MaxConstants = 1 << 16

	// MaxLocals is the largest number of local slots a single scope stack may
	// hold: local slots are addressed with the same 16-bit operand as
	// GetLocal/SetLocal.
	MaxLocals = 1 << 16

	// MaxJumpDistance is the largest byte distance a Jump/JumpIfTrue/
	// JumpIfFalse/Loop instruction can encode.
	MaxJumpDistance = 1<<16 - 1
)

// ErrTooManyConstants is returned by InsertConstant when the pool is full.
var ErrTooManyConstants = errors.New("bytecode: too many constants in chunk")

// ErrJumpTooFar is returned by PatchJump/EmitLoop when the target is farther
// than MaxJumpDistance bytes away.
var ErrJumpTooFar = errors.New("bytecode: jump distance too far to encode")

// A Chunk is a compiled unit: code bytes, a constant pool, and a parallel
// span table holding, for each instruction in emission order, the bit of
// source text that produced it.
type Chunk struct {
	// Code is the encoded instruction stream.
	Code []byte

	// Constants is the constant pool, indexed by ConstKey.
	Constants []Value

	// Spans holds one entry per *instruction* emitted so far, not per byte;
	// Spans[i] is the span for the i-th instruction in emission order.
	Spans []span.FreeSpan
}

// NewChunk returns an empty Chunk ready for emission.
func NewChunk() *Chunk {
	return &Chunk{}
}

// Emit appends the encoded form of instr to the chunk, recording sp as the
// span that produced it, and returns the byte offset at which it was
// written. That offset is a valid handle for PatchJump when instr is one of
// the forward-branch opcodes.
func (c *Chunk) Emit(instr Instr, sp span.FreeSpan) int {
	offset := len(c.Code)
	c.Code = Encode(c.Code, instr)
	c.Spans = append(c.Spans, sp)
	return offset
}

// InsertConstant appends value to the constant pool, unconditionally --
// callers that want deduplication must search the pool themselves -- and
// returns its key. Fails if the pool is already at capacity.
func (c *Chunk) InsertConstant(value Value) (ConstKey, error) {
	if len(c.Constants) >= MaxConstants {
		return 0, ErrTooManyConstants
	}
	c.Constants = append(c.Constants, value)
	return ConstKey(len(c.Constants) - 1), nil
}

// LoopTarget is a byte offset captured by LoopPoint, to be passed to
// EmitLoop once the loop body has been compiled.
type LoopTarget = int

// LoopPoint snapshots the current end-of-code offset, for later use as the
// backward-branch target of EmitLoop.
func (c *Chunk) LoopPoint() LoopTarget {
	return len(c.Code)
}

// EmitLoop emits a Loop instruction whose offset operand is the byte
// distance from the end of this instruction back to target. Fails, leaving
// the chunk unmodified, if that distance doesn't fit a 16-bit operand.
func (c *Chunk) EmitLoop(target LoopTarget, sp span.FreeSpan) error {
	end := len(c.Code) + 3 // 1 tag byte + 2 operand bytes
	distance := end - target
	if distance < 0 || distance > MaxJumpDistance {
		return ErrJumpTooFar
	}
	c.Emit(Instr{Op: OpLoop, Operand: uint16(distance)}, sp)
	return nil
}

// PatchJump overwrites the operand of the forward-branch instruction at
// handle (a value previously returned by Emit) so that it targets the
// current end-of-code. Fails, leaving the chunk unmodified, if the forward
// distance doesn't fit a 16-bit operand.
func (c *Chunk) PatchJump(handle int) error {
	target := len(c.Code)
	distance := target - (handle + 3)
	if distance < 0 || distance > MaxJumpDistance {
		return ErrJumpTooFar
	}
	c.Code[handle+1] = byte(distance)
	c.Code[handle+2] = byte(distance >> 8)
	return nil
}

// Disassemble disassembles the chunk and returns a string representation of
// it. name is included in the output as a header.
func (c *Chunk) Disassemble(name string) string {
	var out strings.Builder
	fmt.Fprintf(&out, "== %v ==\n", name)

	index := 0
	for offset := 0; offset < len(c.Code); index++ {
		offset = c.DisassembleInstruction(&out, offset, index)
	}
	return out.String()
}

// DisassembleInstruction disassembles the instruction at a given byte
// offset (whose span is Spans[index]) and returns the offset of the next
// instruction. Output is written to out.
func (c *Chunk) DisassembleInstruction(out io.Writer, offset, index int) int {
	fmt.Fprintf(out, "%04d ", offset)

	sp := span.FreeSpan{}
	if index < len(c.Spans) {
		sp = c.Spans[index]
	}
	fmt.Fprintf(out, "%-9s ", sp.String())

	instr, rest, ok := Decode(c.Code[offset:])
	if !ok {
		fmt.Fprintf(out, "(truncated instruction)\n")
		return len(c.Code)
	}
	next := len(c.Code) - len(rest)

	switch instr.Op {
	case OpConstant, OpGetGlobal, OpDefGlobal, OpSetGlobal:
		name := "?"
		if int(instr.Operand) < len(c.Constants) {
			name = c.Constants[instr.Operand].String()
		}
		fmt.Fprintf(out, "%-14s %4d '%v'\n", instr.Op, instr.Operand, name)

	case OpGetLocal, OpSetLocal:
		fmt.Fprintf(out, "%-14s %4d\n", instr.Op, instr.Operand)

	case OpJump, OpJumpIfTrue, OpJumpIfFalse:
		fmt.Fprintf(out, "%-14s %4d -> %d\n", instr.Op, instr.Operand, offset+int(instr.Operand)+3)

	case OpLoop:
		fmt.Fprintf(out, "%-14s %4d -> %d\n", instr.Op, instr.Operand, offset+3-int(instr.Operand))

	default:
		fmt.Fprintf(out, "%v\n", instr.Op)
	}

	return next
}
