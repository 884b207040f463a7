// Package diag defines the diagnostic model shared by the lexer, the parser
// and the driver.
//
// Diagnostic is the central record: Severity, a numeric Code with a stable
// string form (LEX1001, SYN2006, ...), a short Message and a Primary span.
// Producers emit through a Reporter; BagReporter collects into a Bag that the
// CLI sorts, deduplicates and renders (see internal/diagfmt).
//
// The front end has no error recovery. A fatal finding is both reported and
// returned as an *Error, so callers can stop on the returned value and still
// render the collected Bag with source context.
package diag
