// Package ast holds the concrete syntax tree of a Thrift document.
//
// The tree mirrors the grammar: every rule node keeps its children in source
// order, punctuation included, and terminals carry a Leaf. Nodes live in an
// arena and are addressed by NodeID (1-based, 0 means "no node"). Parent links
// are not stored; callers that need them build a Parents table for the
// traversal at hand.
//
// A Leaf is either a RealLeaf, backed by a token of the stream, or a
// SyntheticLeaf inserted by a tree rewrite. Only real leaves own a stream index.
package ast
