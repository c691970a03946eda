// Package kpath lexes kinded paths: dot-separated field names with
// optional bracketed array indices, e.g. "a.b[2].c" or "arr[0].[2]".
//
// A path is consumed forward-only, one segment at a time, with one
// segment of lookahead; re-reading requires a fresh [Split].
package kpath

import (
	"fmt"
	"strconv"
	"strings"
)

// Segments iterates the dot-separated segments of a path. It slices the
// caller's path string and never allocates.
type Segments struct {
	path string
	off  int
	done bool
}

// Split returns the segment sequence of path. Splitting is purely on '.';
// segment grammar is checked by [ParseSegment] as segments are consumed.
func Split(path string) *Segments {
	return &Segments{path: path}
}

// Next consumes and returns the next raw segment. The empty path yields a
// single empty segment; leading, trailing, and doubled dots yield empty
// segments in their positions.
func (s *Segments) Next() (string, bool) {
	if s.done {
		return "", false
	}
	rest := s.path[s.off:]
	i := strings.IndexByte(rest, '.')
	if i == -1 {
		s.done = true
		return rest, true
	}
	s.off += i + 1
	return rest[:i], true
}

// Peek returns the next raw segment without consuming it.
func (s *Segments) Peek() (string, bool) {
	if s.done {
		return "", false
	}
	rest := s.path[s.off:]
	if i := strings.IndexByte(rest, '.'); i != -1 {
		return rest[:i], true
	}
	return rest, true
}

// Segment is one parsed path segment: an optional field name and an
// optional array index. A segment with an index and no name is a pure
// index segment, indexing an anonymous element list directly.
type Segment struct {
	Name     string
	Index    int
	HasIndex bool
}

// PureIndex reports whether the segment is the bare "[n]" form.
func (seg Segment) PureIndex() bool {
	return seg.Name == "" && seg.HasIndex
}

// ParseSegment parses one raw segment. A trailing "[n]" is split off as
// the index: a ']' without a matching '[' is ErrIndexSyntax, an index
// that is not a non-negative decimal integer is ErrIndexValue, and an
// empty segment with no index is ErrBadSeparator.
func ParseSegment(raw string) (Segment, error) {
	if !strings.HasSuffix(raw, "]") {
		if raw == "" {
			return Segment{}, fmt.Errorf("%w: empty path segment", ErrBadSeparator)
		}
		return Segment{Name: raw}, nil
	}
	i := strings.LastIndexByte(raw, '[')
	if i == -1 {
		return Segment{}, fmt.Errorf("%w: %q has ']' without '['", ErrIndexSyntax, raw)
	}
	idxText := raw[i+1 : len(raw)-1]
	idx, err := parseIndex(idxText)
	if err != nil {
		return Segment{}, fmt.Errorf("%w: %q", ErrIndexValue, idxText)
	}
	return Segment{Name: raw[:i], Index: idx, HasIndex: true}, nil
}

// parseIndex parses a non-negative decimal integer; no base prefixes.
func parseIndex(is string) (int, error) {
	u64, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, err
	}
	return int(u64), nil
}
