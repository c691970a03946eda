package token

import (
	"github.com/signadot/confq/debug"
)

// Tokenize appends the tokens of src to dst and returns them along with
// the PosDoc used to report offsets as line/column pairs.
func Tokenize(dst []Token, src []byte) ([]Token, *PosDoc, error) {
	posDoc := &PosDoc{d: src}
	i, n := 0, len(src)
	for i < n {
		c := src[i]
		switch {
		case c == '\n':
			posDoc.nl(i)
			i++
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case c == '/' && i+1 < n && src[i+1] == '/':
			for i < n && src[i] != '\n' {
				i++
			}
		case c == '{':
			dst = append(dst, Token{Type: TLCurl, Off: i, Bytes: src[i : i+1]})
			i++
		case c == '}':
			dst = append(dst, Token{Type: TRCurl, Off: i, Bytes: src[i : i+1]})
			i++
		case c == '=':
			dst = append(dst, Token{Type: TAssign, Off: i, Bytes: src[i : i+1]})
			i++
		case c == ',':
			dst = append(dst, Token{Type: TComma, Off: i, Bytes: src[i : i+1]})
			i++
		case c == '-':
			dst = append(dst, Token{Type: TMinus, Off: i, Bytes: src[i : i+1]})
			i++
		case c == '"':
			end, err := quoted(src, i)
			if err != nil {
				return nil, posDoc, NewTokenizeErr(err, posDoc.Pos(i))
			}
			dst = append(dst, Token{Type: TString, Off: i, Bytes: src[i:end]})
			i = end
		case c == '\'':
			end, err := charLit(src, i)
			if err != nil {
				return nil, posDoc, NewTokenizeErr(err, posDoc.Pos(i))
			}
			dst = append(dst, Token{Type: TChar, Off: i, Bytes: src[i:end]})
			i = end
		case asciiDigit(c):
			ln, isFloat, err := number(src[i:])
			if err != nil {
				return nil, posDoc, NewTokenizeErr(err, posDoc.Pos(i))
			}
			tt := TInteger
			if isFloat {
				tt = TFloat
			}
			dst = append(dst, Token{Type: tt, Off: i, Bytes: src[i : i+ln]})
			i += ln
		case literalByte(c):
			j := i + 1
			for j < n && literalByte(src[j]) {
				j++
			}
			dst = append(dst, Token{Type: TLiteral, Off: i, Bytes: src[i:j]})
			i = j
		default:
			return nil, posDoc, UnexpectedErr(string(src[i:i+1]), posDoc.Pos(i))
		}
	}
	if debug.Tokens() {
		for i := range dst {
			t := &dst[i]
			debug.Logf("token %s %q at %d\n", t.Type, string(t.Bytes), t.Off)
		}
	}
	return dst, posDoc, nil
}

// quoted scans a double-quoted string starting at i, returning the offset
// one past the closing quote. Backslash escapes the next byte.
func quoted(src []byte, i int) (int, error) {
	j := i + 1
	n := len(src)
	for j < n {
		switch src[j] {
		case '\\':
			j += 2
		case '"':
			return j + 1, nil
		case '\n':
			return 0, ErrUnterminated
		default:
			j++
		}
	}
	return 0, ErrUnterminated
}

// charLit scans a single-quoted literal starting at i. Its content is not
// validated here; coercion rejects anything but a single character.
func charLit(src []byte, i int) (int, error) {
	j := i + 1
	n := len(src)
	for j < n && src[j] != '\n' {
		if src[j] == '\'' {
			return j + 1, nil
		}
		j++
	}
	return 0, ErrUnterminated
}

func literalByte(c byte) bool {
	switch {
	case c == ' ' || c == '\t' || c == '\r' || c == '\n':
		return false
	case c == '{' || c == '}' || c == '=' || c == ',':
		return false
	case c == '"' || c == '\'' || c == '/':
		return false
	case c < 0x20:
		return false
	default:
		return true
	}
}
