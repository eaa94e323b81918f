package vcxml

import "io"

// Inspect drives src through stage for side effects only: the stage can
// log, collect or assert, but no output text is produced. Lexer and parser
// errors abort the run; errors raised by the stage propagate unchanged.
func Inspect(src []byte, stage Stage) error {
	return drive(NewParser(src), stage, func(Event) error { return nil })
}

// Transform drives src through stage and serializes the resulting event
// sequence to w. It succeeds only if parsing, every stage activation and
// serialization all succeed; on any error the bytes already written to w
// must be discarded by the caller (write to a temporary location and
// rename on success).
//
// A nil stage is the identity: the output is then byte-identical to src.
func Transform(src []byte, stage Stage, w io.Writer) error {
	s := NewSerializer(w)
	return drive(NewParser(src), stage, s.WriteEvent)
}

func drive(p *Parser, stage Stage, sink Emit) error {
	if stage == nil {
		stage = Identity()
	}
	var ev Event
	for {
		err := p.Next(&ev)
		if err == io.EOF {
			return stage.Flush(sink)
		}
		if err != nil {
			return err
		}
		if err := stage.Transform(ev, sink); err != nil {
			return err
		}
	}
}
