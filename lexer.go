package vcxml

import (
	"bytes"
	"io"
)

// scanSlack is the number of readable bytes the lexer guarantees past the
// end of the source so the 16-byte scan kernel may over-read.
const scanSlack = 16

var (
	bsxml           = []byte("xml")
	bsCommentOpen   = []byte("--")
	bsCommentClose  = []byte("-->")
	bsCDATAOpen     = []byte("[CDATA[")
	bsCDATAClose    = []byte("]]>")
	bsProcInstClose = []byte("?>")
)

// Lexer produces the Token sequence for one source buffer. The sequence is
// lazy, finite and non-restartable; tokens tile the source exactly, which
// is what allows the Serializer to replay untouched spans verbatim.
type Lexer struct {
	src []byte
	pos int
}

// NewLexer creates a Lexer over src. The source is copied once into a
// buffer with trailing slack, so raw spans stay valid for the whole run
// even if the caller mutates src afterwards.
func NewLexer(src []byte) *Lexer {
	buf := make([]byte, len(src), len(src)+scanSlack)
	copy(buf, src)
	return &Lexer{src: buf}
}

func isWhitespace(b byte) bool {
	return b <= ' '
}

// IsWhitespace reports whether b consists only of whitespace. Stages use
// it to decide indentation ownership around elements they rewrite.
func IsWhitespace(b []byte) bool {
	for _, c := range b {
		if !isWhitespace(c) {
			return false
		}
	}
	return true
}

var seps = generateTable()

func generateTable() [128]bool {
	var s [128]bool
	s['\t'] = true
	s['\n'] = true
	s['\r'] = true
	s[' '] = true
	s['/'] = true
	s['='] = true
	s['>'] = true
	s['?'] = true
	return s
}

func isSeparator(b byte) bool {
	return int(b) < len(seps) && seps[b]
}

// Next decodes and stores the next Token into t. Only the fields relevant
// for the decoded token kind are meaningful; Raw, Start and End are always
// set. It returns io.EOF after the last token and *MalformedMarkupError on
// lexical errors.
func (lx *Lexer) Next(t *Token) error {
	if lx.pos >= len(lx.src) {
		return io.EOF
	}
	start := lx.pos
	if lx.src[lx.pos] != '<' {
		return lx.lexText(t, start)
	}
	if lx.pos+1 >= len(lx.src) {
		return lx.malformed(start, ErrUnterminatedTag)
	}
	switch lx.src[lx.pos+1] {
	case '?':
		return lx.lexProcInst(t, start)
	case '!':
		return lx.lexBang(t, start)
	case '/':
		return lx.lexCloseTag(t, start)
	default:
		return lx.lexOpenTag(t, start)
	}
}

func (lx *Lexer) malformed(off int, cause error) error {
	return &MalformedMarkupError{Offset: off, Err: cause}
}

func (lx *Lexer) fill(t *Token, kind TokenKind, start int) {
	t.Kind = kind
	t.Name = nil
	t.Attrs = nil
	t.SelfClosing = false
	t.Text = nil
	t.Raw = lx.src[start:lx.pos]
	t.Start = start
	t.End = lx.pos
}

// lexText scans a raw text run up to the next '<' or end of input.
// Entity references are retained as literal text within the span.
func (lx *Lexer) lexText(t *Token, start int) error {
	end := len(lx.src)
	if k := indexOpenAngle(lx.src[lx.pos:]); k >= 0 {
		end = lx.pos + k
	}
	lx.pos = end
	lx.fill(t, TokenText, start)
	t.Text = t.Raw
	return nil
}

func (lx *Lexer) lexProcInst(t *Token, start int) error {
	lx.pos += 2
	name, err := lx.readName(start)
	if err != nil {
		return err
	}
	k := bytes.Index(lx.src[lx.pos:], bsProcInstClose)
	if k < 0 {
		return lx.malformed(start, ErrUnterminatedProcInst)
	}
	body := lx.src[lx.pos : lx.pos+k]
	lx.pos += k + 2
	kind := TokenProcInst
	if bytes.Equal(name, bsxml) {
		// the XML declaration shares the proc-inst syntax
		kind = TokenDeclaration
	}
	lx.fill(t, kind, start)
	t.Name = name
	t.Text = bytes.TrimSpace(body)
	return nil
}

func (lx *Lexer) lexBang(t *Token, start int) error {
	rest := lx.src[lx.pos+2:]
	switch {
	case bytes.HasPrefix(rest, bsCommentOpen):
		return lx.lexComment(t, start)
	case bytes.HasPrefix(rest, bsCDATAOpen):
		return lx.lexCDATA(t, start)
	default:
		return lx.lexDeclaration(t, start)
	}
}

func (lx *Lexer) lexComment(t *Token, start int) error {
	lx.pos += 4 // "<!--"
	k := bytes.Index(lx.src[lx.pos:], bsCommentClose)
	if k < 0 {
		return lx.malformed(start, ErrUnterminatedComment)
	}
	body := lx.src[lx.pos : lx.pos+k]
	lx.pos += k + 3
	lx.fill(t, TokenComment, start)
	t.Text = body
	return nil
}

// lexCDATA surfaces a CDATA section as a text token whose raw span is the
// whole construct, so it round-trips verbatim like everything else.
func (lx *Lexer) lexCDATA(t *Token, start int) error {
	lx.pos += 9 // "<![CDATA["
	k := bytes.Index(lx.src[lx.pos:], bsCDATAClose)
	if k < 0 {
		return lx.malformed(start, ErrUnterminatedCDATA)
	}
	body := lx.src[lx.pos : lx.pos+k]
	lx.pos += k + 3
	lx.fill(t, TokenText, start)
	t.Text = body
	return nil
}

// lexDeclaration scans a <!...> markup declaration. DOCTYPE internal
// subsets may contain '>' inside brackets, so bracket depth is tracked.
func (lx *Lexer) lexDeclaration(t *Token, start int) error {
	lx.pos += 2
	depth := 0
	for lx.pos < len(lx.src) {
		switch lx.src[lx.pos] {
		case '[':
			depth++
		case ']':
			depth--
		case '>':
			if depth == 0 {
				lx.pos++
				lx.fill(t, TokenDeclaration, start)
				t.Text = lx.src[start+2 : lx.pos-1]
				return nil
			}
		}
		lx.pos++
	}
	return lx.malformed(start, ErrUnterminatedDecl)
}

func (lx *Lexer) lexCloseTag(t *Token, start int) error {
	lx.pos += 2
	name, err := lx.readName(start)
	if err != nil {
		return err
	}
	b, err := lx.skipWhitespace(start)
	if err != nil {
		return err
	}
	if b != '>' {
		return lx.malformed(start, ErrUnterminatedTag)
	}
	lx.pos++
	lx.fill(t, TokenCloseTag, start)
	t.Name = name
	return nil
}

func (lx *Lexer) lexOpenTag(t *Token, start int) error {
	lx.pos++
	name, err := lx.readName(start)
	if err != nil {
		return err
	}
	var attrs []Attr
	for {
		b, err := lx.skipWhitespace(start)
		if err != nil {
			return err
		}
		switch b {
		case '>':
			lx.pos++
			lx.fill(t, TokenOpenTag, start)
			t.Name = name
			t.Attrs = attrs
			return nil
		case '/':
			lx.pos++
			if lx.pos >= len(lx.src) || lx.src[lx.pos] != '>' {
				return lx.malformed(start, ErrUnterminatedTag)
			}
			lx.pos++
			lx.fill(t, TokenOpenTag, start)
			t.Name = name
			t.Attrs = attrs
			t.SelfClosing = true
			return nil
		default:
			attr, err := lx.lexAttr(start)
			if err != nil {
				return err
			}
			attrs = append(attrs, attr)
		}
	}
}

// lexAttr parses a single attribute. After it returns, the next unread
// byte is the one after the closing quote of the attribute's value.
func (lx *Lexer) lexAttr(tagStart int) (Attr, error) {
	name, err := lx.readName(tagStart)
	if err != nil {
		return Attr{}, err
	}
	b, err := lx.skipWhitespace(tagStart)
	if err != nil {
		return Attr{}, err
	}
	if b != '=' {
		return Attr{}, lx.malformed(tagStart, ErrInvalidAttrSyntax)
	}
	lx.pos++
	b, err = lx.skipWhitespace(tagStart)
	if err != nil {
		return Attr{}, err
	}
	if b != '"' && b != '\'' {
		return Attr{}, lx.malformed(tagStart, ErrInvalidAttrSyntax)
	}
	quote := b
	lx.pos++
	k := bytes.IndexByte(lx.src[lx.pos:], quote)
	if k < 0 {
		return Attr{}, lx.malformed(tagStart, ErrUnexpectedEOF)
	}
	value := lx.src[lx.pos : lx.pos+k]
	lx.pos += k + 1
	return Attr{Name: name, Value: value}, nil
}

// readName scans a tag, attribute or proc-inst target name. The scan stops
// at the first separator byte, which stays unconsumed. Namespace prefixes
// are opaque: a ':' is just part of the name.
func (lx *Lexer) readName(tagStart int) ([]byte, error) {
	i := lx.pos
	for lx.pos < len(lx.src) && !isSeparator(lx.src[lx.pos]) {
		lx.pos++
	}
	if lx.pos == i {
		return nil, lx.malformed(tagStart, ErrInvalidMarkup)
	}
	if lx.pos >= len(lx.src) {
		return nil, lx.malformed(tagStart, ErrUnexpectedEOF)
	}
	return lx.src[i:lx.pos], nil
}

// skipWhitespace advances over whitespace inside a tag and returns the
// first non-whitespace byte without consuming it.
func (lx *Lexer) skipWhitespace(tagStart int) (byte, error) {
	for lx.pos < len(lx.src) {
		b := lx.src[lx.pos]
		if !isWhitespace(b) {
			return b, nil
		}
		lx.pos++
	}
	return 0, lx.malformed(tagStart, ErrUnexpectedEOF)
}
