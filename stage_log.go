package vcxml

import "go.uber.org/zap"

// EventLogger is a pass-through stage that logs every event it sees.
// It is meant for Inspect runs and for debugging a transform chain by
// splicing it between two other stages.
type EventLogger struct {
	log *zap.Logger
}

// NewEventLogger creates an EventLogger writing to log.
func NewEventLogger(log *zap.Logger) *EventLogger {
	return &EventLogger{log: log}
}

func (l *EventLogger) Transform(ev Event, emit Emit) error {
	l.log.Info("event",
		zap.Stringer("kind", ev.Kind),
		zap.ByteString("name", ev.Name),
		zap.ByteString("text", ev.Text),
		zap.Bool("selfClosing", ev.SelfClosing),
		zap.Bool("verbatim", ev.Verbatim()),
	)
	return emit(ev)
}

func (l *EventLogger) Flush(Emit) error { return nil }
