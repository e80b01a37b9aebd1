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
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []Instr{
		{Op: OpConstant, Operand: 0},
		{Op: OpConstant, Operand: 0xBEEF},
		{Op: OpUnit},
		{Op: OpTrue},
		{Op: OpFalse},
		{Op: OpNil},
		{Op: OpPop},
		{Op: OpGetLocal, Operand: 512},
		{Op: OpSetLocal, Operand: 65535},
		{Op: OpGetGlobal, Operand: 7},
		{Op: OpDefGlobal, Operand: 7},
		{Op: OpSetGlobal, Operand: 7},
		{Op: OpEqual},
		{Op: OpGreater},
		{Op: OpLess},
		{Op: OpAdd},
		{Op: OpSubtract},
		{Op: OpMultiply},
		{Op: OpDivide},
		{Op: OpNot},
		{Op: OpNegate},
		{Op: OpAssert},
		{Op: OpPrint},
		{Op: OpJump, Operand: 3},
		{Op: OpJumpIfTrue, Operand: 3},
		{Op: OpJumpIfFalse, Operand: 3},
		{Op: OpLoop, Operand: 3},
		{Op: OpReturn},
	}

	for _, instr := range cases {
		buf := Encode(nil, instr)
		decoded, rest, ok := Decode(buf)
		assert.True(t, ok, "%v", instr.Op)
		assert.Empty(t, rest)
		assert.Equal(t, instr.Op, decoded.Op)
		if instr.Op.hasU16Operand() {
			assert.Equal(t, instr.Operand, decoded.Operand)
		}
	}
}

func TestEncodeDecodeSequence(t *testing.T) {
	instrs := []Instr{
		{Op: OpConstant, Operand: 0},
		{Op: OpConstant, Operand: 1},
		{Op: OpAdd},
		{Op: OpPrint},
	}

	var buf []byte
	for _, instr := range instrs {
		buf = Encode(buf, instr)
	}

	var got []Instr
	rest := buf
	for len(rest) > 0 {
		var instr Instr
		var ok bool
		instr, rest, ok = Decode(rest)
		assert.True(t, ok)
		got = append(got, instr)
	}

	assert.Equal(t, instrs, got)
}

func TestDecodeEmptyOrTruncated(t *testing.T) {
	_, _, ok := Decode(nil)
	assert.False(t, ok)

	_, _, ok = Decode([]byte{})
	assert.False(t, ok)

	// OpConstant demands 2 operand bytes; give it only one.
	_, _, ok = Decode([]byte{byte(OpConstant), 0x01})
	assert.False(t, ok)

	// A no-operand opcode alone decodes fine.
	instr, rest, ok := Decode([]byte{byte(OpReturn)})
	assert.True(t, ok)
	assert.Equal(t, OpReturn, instr.Op)
	assert.Empty(t, rest)
}
