/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020 Leandro Motta Barros                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package compiler

import (
	"github.com/basinlang/basinc/pkg/ast"
	"github.com/basinlang/basinc/pkg/bytecode"
	"github.com/basinlang/basinc/pkg/span"
)

// local is one entry in the emitter's flat stack of in-scope local
// variables. There is no runtime symbol table: a local's position in this
// slice at compile time *is* its runtime stack slot, which is why the slice
// itself (not a map) is the source of truth for slot numbers.
type local struct {
	name  string
	depth int
	span  span.FreeSpan
}

// addLocal declares a new local in the current scope, in the next free
// slot. It panics with a *TooManyLocalsError if the 16-bit slot space is
// exhausted, or a *ShadowingError if a local with the same name is already
// declared in the current scope -- shadowing across scopes is fine, only
// same-scope redeclaration is rejected.
func (e *emitter) addLocal(ident *ast.Identifier) {
	if len(e.locals) >= bytecode.MaxLocals {
		panic(&TooManyLocalsError{At: ident.Span()})
	}

	for i := len(e.locals) - 1; i >= 0; i-- {
		loc := e.locals[i]
		if loc.depth != e.scopeDepth {
			break
		}
		if loc.name == ident.Name {
			panic(&ShadowingError{
				ShadowingSpan: ident.Span(),
				ShadowedSpan:  loc.span,
			})
		}
	}

	e.locals = append(e.locals, local{
		name:  ident.Name,
		depth: e.scopeDepth,
		span:  ident.Span(),
	})
}

// resolveLocal looks up name among the in-scope locals, innermost scope
// first, and returns its slot. ok is false when name isn't a local, in
// which case the caller should treat it as a global.
func (e *emitter) resolveLocal(name string) (slot uint16, ok bool) {
	for i := len(e.locals) - 1; i >= 0; i-- {
		if e.locals[i].name == name {
			return uint16(i), true
		}
	}
	return 0, false
}
