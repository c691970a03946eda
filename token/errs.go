package token

import "errors"

var (
	ErrBadUTF8      = errors.New("bad utf8")
	ErrUnterminated = errors.New("unterminated")
	ErrNumber       = errors.New("number")
	ErrChar         = errors.New("char literal")
)
