// Package diagfmt renders diagnostics, token streams and syntax trees for
// the terminal (pretty) and for tools (JSON).
package diagfmt
