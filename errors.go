package vcxml

import (
	"errors"
	"fmt"
)

// Sentinel causes carried by MalformedMarkupError.
var (
	ErrUnexpectedEOF        = errors.New("unexpected end of input")
	ErrUnterminatedTag      = errors.New("unterminated tag")
	ErrUnterminatedComment  = errors.New("unterminated comment")
	ErrUnterminatedProcInst = errors.New("unterminated processing instruction")
	ErrUnterminatedDecl     = errors.New("unterminated declaration")
	ErrUnterminatedCDATA    = errors.New("unterminated CDATA section")
	ErrInvalidAttrSyntax    = errors.New("invalid attribute syntax")
	ErrInvalidMarkup        = errors.New("invalid markup")

	// ErrInvalidEntity is returned by Unescape for unresolvable references.
	ErrInvalidEntity = errors.New("invalid entity reference")
)

// MalformedMarkupError reports a lexical-level syntax error: an
// unterminated tag, comment, processing instruction or declaration,
// invalid attribute syntax, or end of input in the middle of a construct.
// Offset is the position of the construct the lexer was reading.
type MalformedMarkupError struct {
	Offset int
	Err    error
}

func (e *MalformedMarkupError) Error() string {
	return fmt.Sprintf("malformed markup at offset %d: %v", e.Offset, e.Err)
}

func (e *MalformedMarkupError) Unwrap() error {
	return e.Err
}

// UnbalancedMarkupError reports a structural mismatch: an end tag whose
// name does not match the innermost open element, an end tag with no open
// element, or end of input with elements still open (Got is empty then).
type UnbalancedMarkupError struct {
	Offset int
	Open   string
	Got    string
}

func (e *UnbalancedMarkupError) Error() string {
	switch {
	case e.Got == "":
		return fmt.Sprintf("unbalanced markup: element <%s> never closed", e.Open)
	case e.Open == "":
		return fmt.Sprintf("unbalanced markup at offset %d: </%s> with no open element", e.Offset, e.Got)
	default:
		return fmt.Sprintf("unbalanced markup at offset %d: </%s> does not match open <%s>", e.Offset, e.Got, e.Open)
	}
}

// UnserializableEventError reports a synthesized event that cannot be
// rendered as valid markup, such as an empty element name.
//
// Errors raised by stages themselves are not part of this taxonomy: the
// pipeline propagates them to the caller unchanged.
type UnserializableEventError struct {
	Kind   EventKind
	Reason string
}

func (e *UnserializableEventError) Error() string {
	return fmt.Sprintf("cannot serialize synthesized %s event: %s", e.Kind, e.Reason)
}
