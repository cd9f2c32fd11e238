package ast

import "thriftfmt/internal/token"

// Leaf is the payload of a Terminal node.
type Leaf interface {
	LeafText() string
	isLeaf()
}

// RealLeaf is backed by the token at Index of the stream. Text starts as the
// token text; rewrites may replace it (e.g. ';' normalized to ',').
type RealLeaf struct {
	Index int
	Text  string
}

// SyntheticLeaf is produced by a tree rewrite and has no stream position.
type SyntheticLeaf struct {
	Kind token.Kind
	Text string
}

func (l RealLeaf) LeafText() string      { return l.Text }
func (l SyntheticLeaf) LeafText() string { return l.Text }

func (RealLeaf) isLeaf()      {}
func (SyntheticLeaf) isLeaf() {}
