// Package doc holds the parsed form of a configuration object document.
//
// A [Document] is immutable once built: queries against it are read-only
// and safe to run concurrently. Nodes are addressed by [NodeRef] handles
// whose validity is tied to the Document that produced them. Struct and
// array interpretations of a node are obtained through the fallible
// [Document.StructView] and [Document.ArrayView] projections.
package doc

import (
	"github.com/signadot/confq/token"
)

type Kind int

const (
	ScalarKind Kind = iota
	StructKind
	ArrayKind
)

func (k Kind) String() string {
	switch k {
	case ScalarKind:
		return "Scalar"
	case StructKind:
		return "Struct"
	case ArrayKind:
		return "Array"
	default:
		return "<unknown kind>"
	}
}

// NodeRef identifies one syntax element of a Document. It is a plain
// value, copied freely; it carries no ownership.
type NodeRef int32

type node struct {
	kind     Kind
	tok      int32 // primary token index: '{' for containers, value token for scalars
	children []NodeRef
}

// Document is an immutable parsed document: the source buffer, its token
// stream, and a flat node table built by the parse package.
type Document struct {
	src    []byte
	toks   []token.Token
	posDoc *token.PosDoc
	nodes  []node
	roots  []NodeRef
}

// RootChildren returns the top-level fields of the document literal.
func (d *Document) RootChildren() []NodeRef {
	return d.roots
}

func (d *Document) Kind(n NodeRef) Kind {
	return d.nodes[n].kind
}

// StructView projects n as a struct literal. ok is false when n is not
// struct-like.
func (d *Document) StructView(n NodeRef) (StructView, bool) {
	nd := &d.nodes[n]
	if nd.kind != StructKind {
		return StructView{}, false
	}
	return StructView{d: d, fields: nd.children}, true
}

// ArrayView projects n as an array literal. ok is false when n is not
// array-like.
func (d *Document) ArrayView(n NodeRef) (ArrayView, bool) {
	nd := &d.nodes[n]
	if nd.kind != ArrayKind {
		return ArrayView{}, false
	}
	return ArrayView{d: d, elems: nd.children}, true
}

// Token returns n's primary token and its index in the token stream. For
// a negative literal the primary token is the '-' sign.
func (d *Document) Token(n NodeRef) (token.Token, int) {
	i := int(d.nodes[n].tok)
	return d.toks[i], i
}

// TokenAt returns the i'th token of the stream.
func (d *Document) TokenAt(i int) (token.Token, bool) {
	if i < 0 || i >= len(d.toks) {
		return token.Token{}, false
	}
	return d.toks[i], true
}

// TokenText returns the exact source text of n's primary token.
func (d *Document) TokenText(n NodeRef) []byte {
	t, _ := d.Token(n)
	return t.Bytes
}

// Source returns the shared source buffer all token slices point into.
func (d *Document) Source() []byte {
	return d.src
}

// Pos reports the source position of n's primary token.
func (d *Document) Pos(n NodeRef) *token.Pos {
	t, _ := d.Token(n)
	return d.posDoc.Pos(t.Off)
}

// FieldName recovers the declared name of a field value node from the
// tokens immediately preceding it in source order (name, '=', value).
// It returns "" for unnamed nodes such as array elements.
func (d *Document) FieldName(n NodeRef) string {
	i := int(d.nodes[n].tok)
	if i < 2 {
		return ""
	}
	if d.toks[i-1].Type != token.TAssign {
		return ""
	}
	if d.toks[i-2].Type != token.TLiteral {
		return ""
	}
	return string(d.toks[i-2].Bytes)
}

// StructView exposes a struct literal's fields in declaration order.
type StructView struct {
	d      *Document
	fields []NodeRef
}

func (v StructView) Fields() []NodeRef {
	return v.fields
}

// FieldName returns the declared name of child, which must be one of this
// view's fields.
func (v StructView) FieldName(child NodeRef) string {
	return v.d.FieldName(child)
}

// ArrayView exposes an array literal's elements, indexed 0..N-1.
type ArrayView struct {
	d     *Document
	elems []NodeRef
}

func (v ArrayView) Elems() []NodeRef {
	return v.elems
}
