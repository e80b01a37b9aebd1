/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020 Leandro Motta Barros                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package compiler turns an already-parsed AST into a bytecode Chunk in a
// single pass over the tree: no symbol table, no separate resolution pass,
// no optimization. Local variable slots are just positions in a stack the
// emitter maintains while walking; everything at scope depth zero is a
// global, addressed by name through the constant pool instead.
package compiler

import (
	"github.com/basinlang/basinc/pkg/ast"
	"github.com/basinlang/basinc/pkg/bytecode"
)

// Compile lowers program to a Chunk. source is the exact text program was
// parsed from; it isn't re-scanned, but error spans are only meaningful
// against it.
//
// Compilation fails fast: the first problem encountered -- an unsupported
// AST shape, a shadowed local, a malformed number literal, an overflowing
// jump or constant pool -- aborts the whole compilation and is returned as
// an error. There is no partial Chunk and no recovery between errors.
func Compile(source string, program ast.Program) (chunk *bytecode.Chunk, err error) {
	e := &emitter{
		source:   source,
		chunk:    bytecode.NewChunk(),
		interner: bytecode.NewStringInterner(),
	}

	defer func() {
		if r := recover(); r != nil {
			cErr, ok := r.(Error)
			if !ok {
				panic(r)
			}
			chunk, err = nil, cErr
		}
	}()

	for _, decl := range program {
		decl.Walk(e)
	}

	return e.chunk, nil
}
