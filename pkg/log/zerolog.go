package log

import (
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Output formats understood by NewZerologAdapter.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ZerologAdapter implements Logger using zerolog.
// It is safe for concurrent use; SetLevel may be called while logging.
type ZerologAdapter struct {
	mu     sync.RWMutex
	logger zerolog.Logger
}

// NewZerologAdapter creates a zerolog-backed logger writing to w.
// FormatConsole produces human-readable lines; anything else emits JSON.
func NewZerologAdapter(w io.Writer, format string, level zerolog.Level) *ZerologAdapter {
	if format == FormatConsole {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return &ZerologAdapter{logger: logger}
}

// NewZerologAdapterWithLogger creates an adapter wrapping an existing zerolog.Logger.
func NewZerologAdapterWithLogger(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// Debug logs a debug-level message.
func (z *ZerologAdapter) Debug(msg string, fields ...Field) {
	l := z.Logger()
	emit(l.Debug(), msg, fields)
}

// Info logs an info-level message.
func (z *ZerologAdapter) Info(msg string, fields ...Field) {
	l := z.Logger()
	emit(l.Info(), msg, fields)
}

// Warn logs a warning-level message.
func (z *ZerologAdapter) Warn(msg string, fields ...Field) {
	l := z.Logger()
	emit(l.Warn(), msg, fields)
}

// Error logs an error-level message.
func (z *ZerologAdapter) Error(msg string, fields ...Field) {
	l := z.Logger()
	emit(l.Error(), msg, fields)
}

// SetLevel changes the minimum level; used when the config file is reloaded.
func (z *ZerologAdapter) SetLevel(level zerolog.Level) {
	z.mu.Lock()
	defer z.mu.Unlock()
	z.logger = z.logger.Level(level)
}

// Level returns the current minimum level.
func (z *ZerologAdapter) Level() zerolog.Level {
	l := z.Logger()
	return l.GetLevel()
}

// Logger returns the underlying zerolog.Logger.
func (z *ZerologAdapter) Logger() zerolog.Logger {
	z.mu.RLock()
	defer z.mu.RUnlock()
	return z.logger
}

func emit(event *zerolog.Event, msg string, fields []Field) {
	if event == nil {
		return
	}
	for _, f := range fields {
		event = addField(event, f)
	}
	event.Msg(msg)
}

// addField adds a Field to a zerolog.Event.
func addField(event *zerolog.Event, f Field) *zerolog.Event {
	switch v := f.Value.(type) {
	case string:
		return event.Str(f.Key, v)
	case int:
		return event.Int(f.Key, v)
	case []int:
		return event.Ints(f.Key, v)
	case uint64:
		return event.Uint64(f.Key, v)
	case bool:
		return event.Bool(f.Key, v)
	case time.Duration:
		return event.Dur(f.Key, v)
	case error:
		return event.Err(v)
	default:
		return event.Interface(f.Key, v)
	}
}
