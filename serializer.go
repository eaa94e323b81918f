package vcxml

import (
	"bytes"
	"fmt"
	"io"
)

// pre-allocate the constant byte sequences we write
var (
	commentOpen     = []byte("<!--")
	commentClose    = []byte("-->")
	angleOpenQuest  = []byte("<?")
	questAngleClose = []byte("?>")
)

// Serializer reduces the final event sequence back to markup text. It has
// no look-ahead and cannot reorder: a verbatim event is replayed from its
// original span, a synthesized event is rendered with a fixed policy
// (double-quoted attributes, minimal escaping of '<', '&' and the quote in
// attribute values, no added whitespace). The entire reproduction-fidelity
// guarantee rests on the verbatim/synthesized distinction set upstream.
type Serializer struct {
	w  io.Writer
	bb []byte
}

// NewSerializer creates a Serializer writing to w.
func NewSerializer(w io.Writer) *Serializer {
	return &Serializer{w: w, bb: make([]byte, 0, 256)}
}

// WriteEvent writes a single event. Its method value satisfies Emit, so a
// Serializer can terminate a stage chain directly.
func (s *Serializer) WriteEvent(ev Event) error {
	if ev.Verbatim() {
		_, err := s.w.Write(ev.Raw())
		return err
	}
	s.bb = s.bb[:0]
	switch ev.Kind {
	case EventStartElement:
		if err := validName(ev.Kind, ev.Name); err != nil {
			return err
		}
		s.bb = append(s.bb, '<')
		s.bb = append(s.bb, ev.Name...)
		for _, attr := range ev.Attrs {
			if err := validName(ev.Kind, attr.Name); err != nil {
				return err
			}
			s.bb = append(s.bb, ' ')
			s.bb = append(s.bb, attr.Name...)
			s.bb = append(s.bb, '=', '"')
			s.bb = appendEscapedAttr(s.bb, attr.Value)
			s.bb = append(s.bb, '"')
		}
		if ev.SelfClosing {
			s.bb = append(s.bb, '/', '>')
		} else {
			s.bb = append(s.bb, '>')
		}
	case EventEndElement:
		if err := validName(ev.Kind, ev.Name); err != nil {
			return err
		}
		s.bb = append(s.bb, '<', '/')
		s.bb = append(s.bb, ev.Name...)
		s.bb = append(s.bb, '>')
	case EventCharacters:
		s.bb = appendEscapedText(s.bb, ev.Text)
	case EventComment:
		if bytes.Contains(ev.Text, []byte("--")) {
			return &UnserializableEventError{Kind: ev.Kind, Reason: `text contains "--"`}
		}
		s.bb = append(s.bb, commentOpen...)
		s.bb = append(s.bb, ev.Text...)
		s.bb = append(s.bb, commentClose...)
	case EventProcInst, EventDeclaration:
		if ev.Kind == EventDeclaration && len(ev.Name) == 0 {
			// <!...> markup declaration
			s.bb = append(s.bb, '<', '!')
			s.bb = append(s.bb, ev.Text...)
			s.bb = append(s.bb, '>')
			break
		}
		if err := validName(ev.Kind, ev.Name); err != nil {
			return err
		}
		if bytes.Contains(ev.Text, questAngleClose) {
			return &UnserializableEventError{Kind: ev.Kind, Reason: `text contains "?>"`}
		}
		s.bb = append(s.bb, angleOpenQuest...)
		s.bb = append(s.bb, ev.Name...)
		if len(ev.Text) > 0 {
			s.bb = append(s.bb, ' ')
			s.bb = append(s.bb, ev.Text...)
		}
		s.bb = append(s.bb, questAngleClose...)
	default:
		return &UnserializableEventError{Kind: ev.Kind, Reason: "unknown event kind"}
	}
	_, err := s.w.Write(s.bb)
	return err
}

func validName(kind EventKind, name []byte) error {
	if len(name) == 0 {
		return &UnserializableEventError{Kind: kind, Reason: "empty name"}
	}
	for _, b := range name {
		if isWhitespace(b) || b == '<' || b == '>' || b == '/' || b == '=' ||
			b == '"' || b == '\'' || b == '&' || b == '?' {
			return &UnserializableEventError{
				Kind:   kind,
				Reason: fmt.Sprintf("invalid character %q in name", b),
			}
		}
	}
	return nil
}
