// Package query resolves kinded paths against parsed documents and
// coerces the resolved literal text to typed scalars.
//
// Each call is a pure function of (document, path): no state is shared
// between calls, so concurrent queries against the same Document are
// safe. Every failure is terminal and reported as exactly one of the
// package's sentinel errors.
package query

import (
	"fmt"

	"github.com/signadot/confq/debug"
	"github.com/signadot/confq/doc"
	"github.com/signadot/confq/kpath"
)

// MaxDepth bounds the number of path segments a single query may descend.
// It caps recursion on pathological paths; realistic documents nest far
// below it.
const MaxDepth = 20

// Get resolves path against d and returns the exact source text of the
// terminal scalar token.
func Get(d *doc.Document, path string) ([]byte, error) {
	return walk(d, d.RootChildren(), kpath.Split(path), 0)
}

// walk consumes one segment per invocation, selecting a child of the
// current child sequence, and recurses until the path is exhausted.
func walk(d *doc.Document, children []doc.NodeRef, segs *kpath.Segments, depth int) ([]byte, error) {
	if depth >= MaxDepth {
		return nil, fmt.Errorf("%w (max %d)", ErrPathLimit, MaxDepth)
	}
	raw, ok := segs.Next()
	if !ok {
		return nil, fmt.Errorf("%w: path exhausted", ErrNotFound)
	}
	seg, err := kpath.ParseSegment(raw)
	if err != nil {
		return nil, err
	}
	if debug.Walk() {
		debug.Logf("walk depth=%d segment=%q children=%d\n", depth, raw, len(children))
	}

	var sel doc.NodeRef
	if seg.PureIndex() {
		// anonymous element list reached one level up
		if seg.Index >= len(children) {
			return nil, fmt.Errorf("%w: index %d out of range (len %d)", ErrIndexValue, seg.Index, len(children))
		}
		sel = children[seg.Index]
	} else {
		sel, err = lookupField(d, children, seg.Name)
		if err != nil {
			return nil, err
		}
		if seg.HasIndex {
			av, ok := d.ArrayView(sel)
			if !ok {
				return nil, fmt.Errorf("%w: %q is %s", ErrNotArray, seg.Name, d.Kind(sel))
			}
			elems := av.Elems()
			if seg.Index >= len(elems) {
				return nil, fmt.Errorf("%w: index %d out of range (len %d)", ErrIndexValue, seg.Index, len(elems))
			}
			sel = elems[seg.Index]
		}
	}

	next, ok := segs.Peek()
	if !ok {
		return terminalText(d, sel), nil
	}
	nseg, err := kpath.ParseSegment(next)
	if err != nil {
		// a trailing or doubled dot shows up here as an empty peeked
		// segment; raise it before recursing
		return nil, err
	}
	if nseg.PureIndex() {
		av, ok := d.ArrayView(sel)
		if !ok {
			return nil, fmt.Errorf("%w: %q is %s", ErrNotArray, raw, d.Kind(sel))
		}
		return walk(d, av.Elems(), segs, depth+1)
	}
	sv, ok := d.StructView(sel)
	if !ok {
		return nil, fmt.Errorf("%w: %q is %s", ErrNotStruct, raw, d.Kind(sel))
	}
	return walk(d, sv.Fields(), segs, depth+1)
}

// lookupField scans children in declaration order; with duplicate names
// the first match wins.
func lookupField(d *doc.Document, children []doc.NodeRef, name string) (doc.NodeRef, error) {
	for _, c := range children {
		if d.FieldName(c) == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: field %q", ErrNotFound, name)
}

// terminalText returns the exact source text of n's scalar token. The
// tokenizer splits a negative literal into a '-' token and an adjacent
// numeric token; when the primary token is exactly "-" the two spans are
// joined by offset arithmetic over the shared source buffer.
func terminalText(d *doc.Document, n doc.NodeRef) []byte {
	t, ti := d.Token(n)
	if len(t.Bytes) == 1 && t.Bytes[0] == '-' {
		if nt, ok := d.TokenAt(ti + 1); ok {
			return d.Source()[t.Off:nt.End()]
		}
	}
	return t.Bytes
}
