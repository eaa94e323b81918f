package vcxml

import "bytes"

// ChildInserter injects a synthesized child element right after the start
// tag of every matching parent, preceded by a newline and the given
// indentation. The parent's original content, including its indentation,
// is not touched.
type ChildInserter struct {
	parent []byte
	name   []byte
	text   []byte
	indent []byte
}

// InsertChild creates a stage that inserts <name>text</name> after each
// <parent> start tag.
func InsertChild(parent, name, text, indent string) *ChildInserter {
	return &ChildInserter{
		parent: []byte(parent),
		name:   []byte(name),
		text:   []byte(text),
		indent: []byte(indent),
	}
}

func (ci *ChildInserter) Transform(ev Event, emit Emit) error {
	if err := emit(ev); err != nil {
		return err
	}
	if ev.Kind != EventStartElement || ev.SelfClosing || !bytes.Equal(ev.Name, ci.parent) {
		return nil
	}
	lead := make([]byte, 0, len(ci.indent)+1)
	lead = append(lead, '\n')
	lead = append(lead, ci.indent...)
	for _, out := range []Event{
		{Kind: EventCharacters, Text: lead},
		{Kind: EventStartElement, Name: ci.name},
		{Kind: EventCharacters, Text: ci.text},
		{Kind: EventEndElement, Name: ci.name},
	} {
		if err := emit(out); err != nil {
			return err
		}
	}
	return nil
}

func (ci *ChildInserter) Flush(Emit) error { return nil }
