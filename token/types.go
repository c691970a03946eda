package token

import "fmt"

type TokenType int

const (
	TLCurl TokenType = iota
	TRCurl
	TAssign
	TComma
	TMinus
	TLiteral
	TInteger
	TFloat
	TString
	TChar
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TAssign:  "TAssign",
		TComma:   "TComma",
		TMinus:   "TMinus",
		TLiteral: "TLiteral",
		TInteger: "TInteger",
		TFloat:   "TFloat",
		TString:  "TString",
		TChar:    "TChar",
	}[t]
}

// Token is one lexical element of a document. Bytes is a subslice of the
// tokenized source and Off its byte offset within it.
type Token struct {
	Type  TokenType
	Off   int
	Bytes []byte
}

// End returns the byte offset one past the token's last byte.
func (t *Token) End() int {
	return t.Off + len(t.Bytes)
}

func (t *Token) String() string {
	return string(t.Bytes)
}

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("unexpected %s", what), p)
}
