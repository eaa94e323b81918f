package vcxml

import (
	"bytes"
	"io"
)

// Parser turns the token stream into the event stream and enforces element
// balance. It maintains the open-element stack; every structural event it
// emits is verbatim, bound to the span of the token that produced it.
// Self-closing elements are a flag on StartElement with no companion
// EndElement and no stack entry.
type Parser struct {
	lex   *Lexer
	tok   Token
	stack [][]byte
}

// NewParser creates a Parser over src. src is copied once; events reference
// the copy and stay valid for the whole run.
func NewParser(src []byte) *Parser {
	return &Parser{
		lex:   NewLexer(src),
		stack: make([][]byte, 0, 32),
	}
}

// Next stores the next event into ev. It returns io.EOF after the last
// event, *MalformedMarkupError for lexical errors and
// *UnbalancedMarkupError for mismatched or missing end tags. After any
// error the event stream is dead; no partial stream reaches a stage
// because the pipeline driver aborts first.
func (p *Parser) Next(ev *Event) error {
	err := p.lex.Next(&p.tok)
	if err == io.EOF {
		if len(p.stack) > 0 {
			open := p.stack[len(p.stack)-1]
			return &UnbalancedMarkupError{Offset: p.lex.pos, Open: string(open)}
		}
		return io.EOF
	}
	if err != nil {
		return err
	}
	t := &p.tok
	*ev = Event{raw: t.Raw, start: t.Start, end: t.End}
	switch t.Kind {
	case TokenOpenTag:
		ev.Kind = EventStartElement
		ev.Name = t.Name
		ev.Attrs = t.Attrs
		ev.SelfClosing = t.SelfClosing
		if !t.SelfClosing {
			p.stack = append(p.stack, t.Name)
		}
	case TokenCloseTag:
		if len(p.stack) == 0 {
			return &UnbalancedMarkupError{Offset: t.Start, Got: string(t.Name)}
		}
		top := p.stack[len(p.stack)-1]
		if !bytes.Equal(top, t.Name) {
			return &UnbalancedMarkupError{Offset: t.Start, Open: string(top), Got: string(t.Name)}
		}
		p.stack = p.stack[:len(p.stack)-1]
		ev.Kind = EventEndElement
		ev.Name = t.Name
	case TokenText:
		ev.Kind = EventCharacters
		ev.Text = t.Text
	case TokenComment:
		ev.Kind = EventComment
		ev.Text = t.Text
	case TokenProcInst:
		ev.Kind = EventProcInst
		ev.Name = t.Name
		ev.Text = t.Text
	case TokenDeclaration:
		ev.Kind = EventDeclaration
		ev.Name = t.Name
		ev.Text = t.Text
	}
	return nil
}

// Depth reports the current element nesting depth.
func (p *Parser) Depth() int {
	return len(p.stack)
}
