// Package token defines lexical token kinds for the occ front end.
// Invariants:
//   - Token.Text is exactly the source bytes covered by Token.Span.
//   - Keyword identity lives in one table (keywords.go); the lexer classifies
//     through LookupKeyword and the parser switches on the resulting Kind.
//   - There is no token for '>=': the language spells it '=>'.
package token
