package vcxml

import "bytes"

// TextSetter replaces the character content of matching text-only elements
// with a synthesized value. Elements that turn out to contain child markup
// are left untouched. Everything around the replaced content, including the
// start and end tags themselves, stays verbatim.
type TextSetter struct {
	name      []byte
	value     []byte
	replacing bool
	held      []Event
}

// SetElementText creates a stage that sets the text content of every
// element named name to value.
func SetElementText(name, value string) *TextSetter {
	return &TextSetter{name: []byte(name), value: []byte(value)}
}

func (s *TextSetter) Transform(ev Event, emit Emit) error {
	if s.replacing {
		switch ev.Kind {
		case EventCharacters:
			s.held = append(s.held, ev)
			return nil
		case EventEndElement:
			s.replacing = false
			s.held = s.held[:0]
			if err := emit(Event{Kind: EventCharacters, Text: s.value}); err != nil {
				return err
			}
			return emit(ev)
		default:
			// not a text-only element after all, replay what was held
			s.replacing = false
			if err := s.replay(emit); err != nil {
				return err
			}
			return s.Transform(ev, emit)
		}
	}
	if err := emit(ev); err != nil {
		return err
	}
	if ev.Kind == EventStartElement && !ev.SelfClosing && bytes.Equal(ev.Name, s.name) {
		s.replacing = true
	}
	return nil
}

func (s *TextSetter) Flush(emit Emit) error {
	// balance is enforced upstream, so held is normally empty here
	s.replacing = false
	return s.replay(emit)
}

func (s *TextSetter) replay(emit Emit) error {
	for _, held := range s.held {
		if err := emit(held); err != nil {
			return err
		}
	}
	s.held = s.held[:0]
	return nil
}
