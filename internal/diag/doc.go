// Package diag defines the diagnostic model shared by the lexer, the parser
// and the formatter driver.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity: Info, Warning or Error (severity.go).
//   - Code: compact numeric identifier with a stable string form (codes.go).
//   - Message: short human oriented text.
//   - Primary: the source.Span pointing to the problem.
//   - Notes: optional secondary spans with extra context.
//
// # Emitting diagnostics
//
// Phases report through a Reporter so emission stays decoupled from storage.
// BagReporter collects into a Bag, which supports sorting and deduplication;
// DedupReporter filters repeats produced by parser error recovery.
//
// Package diag performs no rendering; see internal/diagfmt.
package diag
