// Package parser turns a token stream into an ast.Program.
//
// Parsing is recursive descent with one function per precedence level.
// The first lexical or syntax error aborts the parse; there is no recovery.
// Identifiers are registered in a symbols.Table as they are met, which is
// the only place the table is mutated.
package parser
