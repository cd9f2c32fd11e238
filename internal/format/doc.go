// Package format renders a parsed Thrift document in canonical form.
//
// Pipeline: Patch rewrites the tree (explicit requiredness, canonical
// separators), then Render walks it with per-kind layout rules, aligning
// columns inside struct/enum/service bodies and re-attaching comments from
// the hidden channel of the token stream.
//
// Назначение: движок форматирования; не делает IO и не обходит каталоги.
// Зависимости: internal/ast, internal/parser, internal/token.
package format
