package query

import (
	"errors"

	"github.com/signadot/confq/kpath"
)

var (
	ErrPathLimit   = errors.New("path depth limit reached")
	ErrNotStruct   = errors.New("path element is not a struct")
	ErrNotArray    = errors.New("path element is not an array")
	ErrNotFound    = errors.New("not found")
	ErrBadBool     = errors.New("bad boolean value")
	ErrBadChar     = errors.New("bad char value")
	ErrBadNumber   = errors.New("bad number value")
	ErrNumberRange = errors.New("number out of range")

	// path grammar errors surface unchanged from the lexer; the walker
	// also raises ErrIndexValue for out-of-bounds indices.
	ErrBadSeparator = kpath.ErrBadSeparator
	ErrIndexSyntax  = kpath.ErrIndexSyntax
	ErrIndexValue   = kpath.ErrIndexValue
)
