package vcxml

// Emit forwards an event to the next stage in the chain. It is the only
// way output escapes a stage.
type Emit func(Event) error

// Stage is a single-threaded, single-pass transform over the event stream.
//
// Transform is called once per upstream event, in document order. A stage
// may forward the event unchanged, forward a modified copy (synthesized by
// construction), forward nothing, or forward additional events it made up.
// A stage may buffer received events across calls; Events are values with
// immutable backing, so holding them is safe.
//
// Flush is called exactly once, after the final upstream event, so buffered
// state can drain before the Serializer sees the completed sequence.
type Stage interface {
	Transform(ev Event, emit Emit) error
	Flush(emit Emit) error
}

// StageFunc adapts a function to a Stage with no buffered state.
type StageFunc func(ev Event, emit Emit) error

func (f StageFunc) Transform(ev Event, emit Emit) error { return f(ev, emit) }

func (f StageFunc) Flush(Emit) error { return nil }

// Identity returns the stage that forwards every event unchanged. A
// Transform run with the identity stage reproduces its input byte-for-byte.
func Identity() Stage {
	return StageFunc(func(ev Event, emit Emit) error { return emit(ev) })
}

// Chain composes stages into one; events flow left to right and each
// stage's Flush drains into the stages after it, in chain order.
func Chain(stages ...Stage) Stage {
	if len(stages) == 1 {
		return stages[0]
	}
	return chain(stages)
}

type chain []Stage

func (c chain) Transform(ev Event, emit Emit) error {
	return c.feed(0, ev, emit)
}

func (c chain) feed(i int, ev Event, emit Emit) error {
	if i >= len(c) {
		return emit(ev)
	}
	return c[i].Transform(ev, func(out Event) error {
		return c.feed(i+1, out, emit)
	})
}

func (c chain) Flush(emit Emit) error {
	for i := range c {
		err := c[i].Flush(func(out Event) error {
			return c.feed(i+1, out, emit)
		})
		if err != nil {
			return err
		}
	}
	return nil
}
