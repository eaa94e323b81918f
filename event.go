package vcxml

// EventKind discriminates the semantic unit held by an Event.
type EventKind uint8

// constants for Event.Kind
const (
	EventStartElement EventKind = iota
	EventEndElement
	EventCharacters
	EventComment
	EventProcInst
	EventDeclaration
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventStartElement:
		return "StartElement"
	case EventEndElement:
		return "EndElement"
	case EventCharacters:
		return "Characters"
	case EventComment:
		return "Comment"
	case EventProcInst:
		return "ProcessingInstruction"
	case EventDeclaration:
		return "Declaration"
	}
	return "Invalid"
}

// Event is the unit flowing through the stage chain.
//
// An event is either verbatim (produced by the Parser, backed by the exact
// source span that produced it) or synthesized (constructed by a stage, no
// raw backing). The Serializer replays verbatim events byte-for-byte and
// re-encodes synthesized ones, which is what makes untouched regions of the
// output identical to the input.
//
// Events are values. Their byte slices reference either the immutable
// source buffer or stage-owned memory and are never mutated after the event
// is emitted, so stages may buffer received events freely. A stage that
// wants to modify an event builds a new one instead; only the Parser can
// mint verbatim events.
type Event struct {
	Kind EventKind

	// only for EventStartElement, EventEndElement, EventProcInst and
	// EventDeclaration (where it is "xml" for the XML declaration and
	// empty for <!...> markup declarations)
	Name []byte

	// only for EventStartElement; document order for verbatim events,
	// insertion order for synthesized ones
	Attrs       []Attr
	SelfClosing bool

	// only for EventCharacters, EventComment, EventProcInst and
	// EventDeclaration
	Text []byte

	raw   []byte
	start int
	end   int
}

// Verbatim reports whether the event is backed by an original source span.
func (e *Event) Verbatim() bool {
	return e.raw != nil
}

// Raw returns the exact source bytes that produced the event,
// or nil for a synthesized event.
func (e *Event) Raw() []byte {
	return e.raw
}

// Offset returns the source byte range of a verbatim event.
// Both values are zero for synthesized events.
func (e *Event) Offset() (start, end int) {
	return e.start, e.end
}

// Constructors for synthesized events. Stages may also build Event values
// directly; anything not produced by the Parser has no raw backing and is
// synthesized by definition.

// StartElement builds a synthesized start element.
func StartElement(name string, attrs ...Attr) Event {
	return Event{Kind: EventStartElement, Name: []byte(name), Attrs: attrs}
}

// SelfClosingElement builds a synthesized self-closing element.
func SelfClosingElement(name string, attrs ...Attr) Event {
	ev := StartElement(name, attrs...)
	ev.SelfClosing = true
	return ev
}

// EndElement builds a synthesized end element.
func EndElement(name string) Event {
	return Event{Kind: EventEndElement, Name: []byte(name)}
}

// Characters builds a synthesized text run. The text is logical content;
// the Serializer escapes '<' and '&' when rendering it.
func Characters(text string) Event {
	return Event{Kind: EventCharacters, Text: []byte(text)}
}

// Comment builds a synthesized comment.
func Comment(text string) Event {
	return Event{Kind: EventComment, Text: []byte(text)}
}

// ProcInst builds a synthesized processing instruction.
func ProcInst(target, text string) Event {
	return Event{Kind: EventProcInst, Name: []byte(target), Text: []byte(text)}
}

// Declaration builds a synthesized XML declaration, e.g.
// Declaration(`version="1.0" encoding="utf-8"`).
func Declaration(text string) Event {
	return Event{Kind: EventDeclaration, Name: []byte("xml"), Text: []byte(text)}
}

// NewAttr builds an attribute for a synthesized start element.
func NewAttr(name, value string) Attr {
	return Attr{Name: []byte(name), Value: []byte(value)}
}
