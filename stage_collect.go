package vcxml

import "bytes"

// TextCollector records the character content of every matching element.
// It forwards all events unchanged, so it works under Inspect and inside a
// Transform chain alike.
type TextCollector struct {
	name  []byte
	armed bool

	// Values holds one entry per Characters run observed directly inside
	// a matching element, in document order.
	Values []string
}

// CollectText creates a stage that gathers the text content of every
// element named name.
func CollectText(name string) *TextCollector {
	return &TextCollector{name: []byte(name)}
}

func (c *TextCollector) Transform(ev Event, emit Emit) error {
	switch ev.Kind {
	case EventStartElement:
		c.armed = !ev.SelfClosing && bytes.Equal(ev.Name, c.name)
	case EventCharacters:
		if c.armed {
			c.Values = append(c.Values, string(ev.Text))
		}
	default:
		c.armed = false
	}
	return emit(ev)
}

func (c *TextCollector) Flush(Emit) error { return nil }
