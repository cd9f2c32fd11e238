// Package token defines lexical token kinds for the Thrift IDL.
// Invariants:
//   - Token.Text is the exact source text of the token (comments included).
//   - Token.Index is the token's position in the full stream; hidden tokens
//     (comments) take part in the numbering.
//   - Whitespace never produces tokens.
//   - Base type names (i32, string, ...) are keywords, as in the reference grammar.
package token
