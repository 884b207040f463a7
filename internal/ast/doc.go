// Package ast defines the syntax tree produced by the parser.
//
// The tree is a strict tree of owned nodes. Statement and expression nodes
// are closed sum types: Stmt and Expr are implemented only by the node
// structs of this package.
package ast
