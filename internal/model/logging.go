package model

// Event names reported through Logger.
const (
	EventNormalized       = "normalized"
	EventAutoTitle        = "auto_title"
	EventAutoSectionEnd   = "auto_sectionend"
	EventDefaultCorrected = "default_corrected"
	EventAssetsEnqueued   = "assets_enqueued"
	EventAssetsSkipped    = "assets_skipped"
)

// Event describes something the normalizer or a tab did on the caller's
// behalf.
type Event struct {
	Name    string
	Slug    string
	FieldID string
	From    any
	To      any
	Count   int
	Message string
}

// Logger records events.
type Logger interface {
	LogEvent(Event)
}

// LoggerFunc adapts a function to Logger.
type LoggerFunc func(Event)

// LogEvent implements Logger.
func (f LoggerFunc) LogEvent(event Event) {
	if f != nil {
		f(event)
	}
}

type noopLogger struct{}

func (noopLogger) LogEvent(Event) {}

// NopLogger returns a Logger that discards everything.
func NopLogger() Logger {
	return noopLogger{}
}
