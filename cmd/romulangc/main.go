/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020 Leandro Motta Barros                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// romulangc is a demo harness for pkg/compiler. It has no lexer or parser to
// drive: there's no source text it can actually read and tokenize, so it
// builds one fixed AST in Go, compiles it, and reports what came out. A real
// CLI would replace demoProgram with the output of an actual front end.
package main

import (
	"fmt"
	"os"

	"github.com/basinlang/basinc/cmd/romulangc/config"
	"github.com/basinlang/basinc/pkg/ast"
	"github.com/basinlang/basinc/pkg/compiler"
)

const exitCodeCompilationError = 1

// demoSource is never lexed -- it is the text demoProgram stands for, passed
// to Compile as the source. demoProgram's nodes carry zero spans, so the
// disassembly's span column reads 0..0 on every line.
const demoSource = `var greeting = "hello, basin";
print greeting;

var count = 0;
while count < 3 {
    print count;
    count = count + 1;
}

if count == 3 {
    print "done counting";
} else {
    print "still counting";
}
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading configuration: %v\n", err)
		os.Exit(1)
	}

	chunk, err := compiler.Compile(demoSource, demoProgram())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(exitCodeCompilationError)
	}

	if cfg.Disassemble {
		fmt.Print(chunk.Disassemble("demo"))
	} else {
		fmt.Printf("compiled %d bytes, %d constants\n", len(chunk.Code), len(chunk.Constants))
	}
}

// demoProgram builds the AST for demoSource by hand:
//
//	var greeting = "hello, basin";
//	print greeting;
//
//	var count = 0;
//	while count < 3 {
//	    print count;
//	    count = count + 1;
//	}
//
//	if count == 3 {
//	    print "done counting";
//	} else {
//	    print "still counting";
//	}
func demoProgram() ast.Program {
	greeting := &ast.Identifier{Name: "greeting"}
	count := &ast.Identifier{Name: "count"}

	return ast.Program{
		&ast.VarDecl{
			Ident: greeting,
			Init:  &ast.StringLiteral{Lexeme: `"hello, basin"`},
		},
		&ast.PrintStmt{Expr: &ast.Identifier{Name: "greeting"}},

		&ast.VarDecl{
			Ident: count,
			Init:  &ast.NumberLiteral{Lexeme: "0"},
		},
		&ast.WhileStmt{
			Pred: &ast.Binary{
				Operator: "<",
				LHS:      &ast.Identifier{Name: "count"},
				RHS:      &ast.NumberLiteral{Lexeme: "3"},
			},
			Body: &ast.Block{
				Body: []ast.Node{
					&ast.PrintStmt{Expr: &ast.Identifier{Name: "count"}},
					&ast.ExprStmt{Expr: &ast.Binary{
						Operator: "=",
						LHS:      &ast.Identifier{Name: "count"},
						RHS: &ast.Binary{
							Operator: "+",
							LHS:      &ast.Identifier{Name: "count"},
							RHS:      &ast.NumberLiteral{Lexeme: "1"},
						},
					}},
				},
			},
		},

		&ast.IfStmt{
			Pred: &ast.Binary{
				Operator: "==",
				LHS:      &ast.Identifier{Name: "count"},
				RHS:      &ast.NumberLiteral{Lexeme: "3"},
			},
			Body: &ast.Block{
				Body: []ast.Node{
					&ast.PrintStmt{Expr: &ast.StringLiteral{Lexeme: `"done counting"`}},
				},
			},
			Else: &ast.ElseBranch{
				Body: &ast.Block{
					Body: []ast.Node{
						&ast.PrintStmt{Expr: &ast.StringLiteral{Lexeme: `"still counting"`}},
					},
				},
			},
		},
	}
}
