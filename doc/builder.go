package doc

import (
	"github.com/signadot/confq/token"
)

// Builder accumulates nodes during parsing. The Document it finishes is
// immutable from then on.
type Builder struct {
	d *Document
}

func NewBuilder(src []byte, toks []token.Token, posDoc *token.PosDoc) *Builder {
	return &Builder{d: &Document{src: src, toks: toks, posDoc: posDoc}}
}

// Scalar adds a scalar node whose primary token is tok.
func (b *Builder) Scalar(tok int) NodeRef {
	return b.add(node{kind: ScalarKind, tok: int32(tok)})
}

// Struct adds a struct literal node; tok is its opening brace.
func (b *Builder) Struct(tok int, fields []NodeRef) NodeRef {
	return b.add(node{kind: StructKind, tok: int32(tok), children: fields})
}

// Array adds an array literal node; tok is its opening brace.
func (b *Builder) Array(tok int, elems []NodeRef) NodeRef {
	return b.add(node{kind: ArrayKind, tok: int32(tok), children: elems})
}

func (b *Builder) add(n node) NodeRef {
	b.d.nodes = append(b.d.nodes, n)
	return NodeRef(len(b.d.nodes) - 1)
}

// Finish seals the Document; root's children become the document's
// top-level fields.
func (b *Builder) Finish(root NodeRef) *Document {
	b.d.roots = b.d.nodes[root].children
	return b.d
}
