package kpath

import "errors"

var (
	ErrBadSeparator = errors.New("bad separator position")
	ErrIndexSyntax  = errors.New("bad array index syntax")
	ErrIndexValue   = errors.New("bad array index value")
)
