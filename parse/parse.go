package parse

import (
	"fmt"

	"github.com/signadot/confq/doc"
	"github.com/signadot/confq/token"
)

// Parse parses src into a Document. The document must be a single brace
// literal; its children become the document's top-level fields.
func Parse(src []byte) (*doc.Document, error) {
	toks, posDoc, err := token.Tokenize(nil, src)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, ErrEmptyDoc
	}
	p := &parser{
		toks:   toks,
		posDoc: posDoc,
		b:      doc.NewBuilder(src, toks, posDoc),
	}
	if p.toks[0].Type != token.TLCurl {
		return nil, p.errAt(0, "expected '{'")
	}
	root, err := p.braceLiteral()
	if err != nil {
		return nil, err
	}
	if p.i != len(p.toks) {
		return nil, p.errAt(p.i, "trailing content after document")
	}
	return p.b.Finish(root), nil
}

type parser struct {
	toks   []token.Token
	posDoc *token.PosDoc
	b      *doc.Builder
	i      int
}

func (p *parser) peek() *token.Token {
	if p.i >= len(p.toks) {
		return nil
	}
	return &p.toks[p.i]
}

func (p *parser) at(i int, tt token.TokenType) bool {
	return i < len(p.toks) && p.toks[i].Type == tt
}

func (p *parser) errAt(i int, msg string) error {
	if i >= len(p.toks) {
		return fmt.Errorf("%w: %s at end of input", ErrParse, msg)
	}
	t := &p.toks[i]
	return fmt.Errorf("%w: %s, got %q %s", ErrParse, msg, string(t.Bytes), p.posDoc.Pos(t.Off))
}

func (p *parser) value() (doc.NodeRef, error) {
	t := p.peek()
	if t == nil {
		return 0, p.errAt(p.i, "expected value")
	}
	switch t.Type {
	case token.TLCurl:
		return p.braceLiteral()
	case token.TMinus:
		// A negative literal is a '-' token plus an immediately adjacent
		// numeric token. The '-' stays the value's primary token; readers
		// join the two spans by offset arithmetic.
		minusIdx := p.i
		p.i++
		nt := p.peek()
		if nt == nil || (nt.Type != token.TInteger && nt.Type != token.TFloat) {
			return 0, p.errAt(p.i, "expected number after '-'")
		}
		if nt.Off != t.End() {
			return 0, p.errAt(p.i, "'-' must touch its number")
		}
		p.i++
		return p.b.Scalar(minusIdx), nil
	case token.TInteger, token.TFloat, token.TString, token.TChar, token.TLiteral:
		idx := p.i
		p.i++
		return p.b.Scalar(idx), nil
	default:
		return 0, p.errAt(p.i, "expected value")
	}
}

// braceLiteral parses '{...}'. It is a struct literal when the first
// element is 'name =', an array literal otherwise; '{}' is an empty
// struct.
func (p *parser) braceLiteral() (doc.NodeRef, error) {
	open := p.i
	p.i++
	t := p.peek()
	if t == nil {
		return 0, p.errAt(p.i, "unbalanced '{'")
	}
	if t.Type == token.TRCurl {
		p.i++
		return p.b.Struct(open, nil), nil
	}
	if t.Type == token.TLiteral && p.at(p.i+1, token.TAssign) {
		return p.structFields(open)
	}
	return p.arrayElems(open)
}

func (p *parser) structFields(open int) (doc.NodeRef, error) {
	var fields []doc.NodeRef
	for {
		t := p.peek()
		if t == nil {
			return 0, p.errAt(p.i, "unbalanced '{'")
		}
		if t.Type != token.TLiteral {
			return 0, p.errAt(p.i, "expected field name")
		}
		if !p.at(p.i+1, token.TAssign) {
			return 0, p.errAt(p.i+1, "expected '='")
		}
		p.i += 2
		val, err := p.value()
		if err != nil {
			return 0, err
		}
		fields = append(fields, val)
		done, err := p.sep(open)
		if err != nil {
			return 0, err
		}
		if done {
			return p.b.Struct(open, fields), nil
		}
	}
}

func (p *parser) arrayElems(open int) (doc.NodeRef, error) {
	var elems []doc.NodeRef
	for {
		val, err := p.value()
		if err != nil {
			return 0, err
		}
		elems = append(elems, val)
		done, err := p.sep(open)
		if err != nil {
			return 0, err
		}
		if done {
			return p.b.Array(open, elems), nil
		}
	}
}

// sep consumes the ',' or '}' after an element. A trailing comma before
// '}' is allowed.
func (p *parser) sep(open int) (done bool, err error) {
	t := p.peek()
	if t == nil {
		return false, p.errAt(p.i, "unbalanced '{'")
	}
	switch t.Type {
	case token.TRCurl:
		p.i++
		return true, nil
	case token.TComma:
		p.i++
		if nt := p.peek(); nt != nil && nt.Type == token.TRCurl {
			p.i++
			return true, nil
		}
		return false, nil
	default:
		return false, p.errAt(p.i, "expected ',' or '}'")
	}
}
