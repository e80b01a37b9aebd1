/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020 Leandro Motta Barros                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package ast

// An Event is emitted by Walk at a point in a node's traversal where a
// visitor doing code generation needs to act before the remaining children
// are visited -- typically to emit a branch instruction whose target isn't
// known until later. Each Event is only ever sent for the node type named
// in its comment.
type Event int

const (
	// EventAfterIfPredicate fires on *IfStmt right after its predicate has
	// been visited, before its then-block.
	EventAfterIfPredicate Event = iota

	// EventAfterIfThen fires on *IfStmt right after its then-block has been
	// visited, before its else-block (if any).
	EventAfterIfThen

	// EventAfterWhilePredicate fires on *WhileStmt right after its predicate
	// has been visited, before its body.
	EventAfterWhilePredicate

	// EventAfterLogicalLHS fires on *Binary nodes whose operator is "and" or
	// "or", right after the left-hand side has been visited, before the
	// right-hand side.
	EventAfterLogicalLHS
)

// A Visitor has all the methods needed to traverse an AST built from this
// package's node types.
type Visitor interface {
	// Enter is called when entering a node, before any of its children are
	// visited.
	Enter(node Node)

	// Event is called at a node-type-specific point during traversal; see
	// the Event constants.
	Event(node Node, event Event)

	// Leave is called when leaving a node, after all of its children have
	// been visited.
	Leave(node Node)
}
