/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020 Leandro Motta Barros                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package ast defines the AST contract expected from the parser: a Program
// is a flat sequence of top-level declarations, every node knows the source
// span it came from, and every node can be walked by a Visitor. The parser
// itself lives outside this module -- this package only fixes the shape its
// output must have.
package ast

import "github.com/basinlang/basinc/pkg/span"

// A Node is a node in the AST, be it a declaration, a statement, or an
// expression. There's a closed, known set of implementations (see
// nodes.go); treat it as a tagged union navigated by type switch, not as an
// open class hierarchy.
type Node interface {
	// Span returns the byte range of source text this node covers.
	Span() span.FreeSpan

	// Walk traverses the subtree rooted at this node using v, calling
	// v.Enter before visiting any children, v.Leave after visiting all of
	// them, and v.Event at whatever points in between this node type
	// defines (see Visitor).
	Walk(v Visitor)
}

// Program is an ordered sequence of top-level declarations.
type Program []Node

// BaseNode factors out the one field every concrete node needs: its span.
// Embed it to get Span() for free.
type BaseNode struct {
	SourceSpan span.FreeSpan
}

func (n BaseNode) Span() span.FreeSpan {
	return n.SourceSpan
}
