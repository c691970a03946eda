package parse

import "errors"

var (
	ErrParse    = errors.New("parse error")
	ErrEmptyDoc = errors.New("empty document")
)
