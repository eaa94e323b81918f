package vcxml

import "bytes"

// ElementRemover drops every element with a given name, including its
// entire subtree.
//
// Boundary convention: the pure-whitespace Characters event immediately
// before a removed element (the line's indentation) is removed with it;
// whitespace after the element is left alone. Removing WarningLevel from
//
//	<ClCompile>\n  <WarningLevel>Level3</WarningLevel>\n</ClCompile>
//
// therefore yields <ClCompile>\n</ClCompile>.
type ElementRemover struct {
	name    []byte
	depth   int
	held    Event
	holding bool
}

// RemoveElements creates a stage that removes all elements named name.
func RemoveElements(name string) *ElementRemover {
	return &ElementRemover{name: []byte(name)}
}

func (r *ElementRemover) Transform(ev Event, emit Emit) error {
	if r.depth > 0 {
		switch ev.Kind {
		case EventStartElement:
			if !ev.SelfClosing {
				r.depth++
			}
		case EventEndElement:
			r.depth--
		}
		return nil
	}
	if ev.Kind == EventStartElement && bytes.Equal(ev.Name, r.name) {
		// the held whitespace run was this element's indentation
		r.holding = false
		if !ev.SelfClosing {
			r.depth = 1
		}
		return nil
	}
	if ev.Kind == EventCharacters && IsWhitespace(ev.Text) {
		if err := r.flushHeld(emit); err != nil {
			return err
		}
		r.held = ev
		r.holding = true
		return nil
	}
	if err := r.flushHeld(emit); err != nil {
		return err
	}
	return emit(ev)
}

func (r *ElementRemover) Flush(emit Emit) error {
	return r.flushHeld(emit)
}

func (r *ElementRemover) flushHeld(emit Emit) error {
	if !r.holding {
		return nil
	}
	r.holding = false
	return emit(r.held)
}
