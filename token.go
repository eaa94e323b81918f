package vcxml

// TokenKind discriminates the lexical unit held by a Token.
type TokenKind uint8

// constants for Token.Kind
const (
	TokenOpenTag TokenKind = iota
	TokenCloseTag
	TokenText
	TokenComment
	TokenProcInst
	TokenDeclaration
)

// Attr is a single attribute of an open tag, in document order.
// The value is the raw text between the quotes; entity references are
// kept literal.
type Attr struct {
	Name  []byte
	Value []byte
}

// Token is one lexical unit together with the exact source span it was
// read from. Tokens are transient: the Lexer overwrites the same Token on
// every call to Next, but the byte slices point into the immutable source
// buffer and stay valid for the whole run.
type Token struct {
	Kind TokenKind

	// only for TokenOpenTag, TokenCloseTag and TokenProcInst
	// (and TokenDeclaration when it is the XML declaration)
	Name []byte

	// only for TokenOpenTag
	Attrs       []Attr
	SelfClosing bool

	// only for TokenText, TokenComment, TokenProcInst and TokenDeclaration
	Text []byte

	// Raw is the exact source bytes of the token;
	// Start and End are its offsets in the source.
	Raw   []byte
	Start int
	End   int
}
