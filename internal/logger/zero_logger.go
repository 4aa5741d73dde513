package logger

import (
	"io"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// ZeroLogger writes one JSON object per entry through zerolog. Error and
// Fatal entries carry a "caller" field with the file and line that logged.
type ZeroLogger struct {
	zl    zerolog.Logger
	level *atomic.Int32
}

var _ Logger = (*ZeroLogger)(nil)

// NewZeroLogger builds a logger writing to w. fields are added to every entry.
func NewZeroLogger(w io.Writer, level Level, fields Fields) *ZeroLogger {
	zctx := zerolog.New(w).With().Timestamp()
	if len(fields) > 0 {
		zctx = zctx.Fields(map[string]interface{}(fields))
	}

	l := &ZeroLogger{zl: zctx.Logger(), level: new(atomic.Int32)}
	l.level.Store(int32(level))
	return l
}

func toZerolog(level Level) zerolog.Level {
	switch level {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelError:
		return zerolog.ErrorLevel
	case LevelFatal:
		return zerolog.FatalLevel
	case LevelOff:
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// current applies the shared level so children see SetLevel on the parent
func (l *ZeroLogger) current() zerolog.Logger {
	return l.zl.Level(toZerolog(Level(l.level.Load())))
}

func (l *ZeroLogger) Debug(message string, properties map[string]interface{}) {
	zl := l.current()
	zl.Debug().Fields(properties).Msg(message)
}

func (l *ZeroLogger) Info(message string, properties map[string]interface{}) {
	zl := l.current()
	zl.Info().Fields(properties).Msg(message)
}

func (l *ZeroLogger) Error(err error, properties map[string]interface{}) {
	zl := l.current()
	zl.Error().Caller(1).Fields(properties).Err(err).Msg(errMessage(err))
}

// Fatal logs and exits the process with status 1.
func (l *ZeroLogger) Fatal(err error, properties map[string]interface{}) {
	zl := l.current()
	zl.Fatal().Caller(1).Fields(properties).Err(err).Msg(errMessage(err))
}

func (l *ZeroLogger) SetLevel(level Level) {
	l.level.Store(int32(level))
}

func (l *ZeroLogger) With(fields Fields) Logger {
	if len(fields) == 0 {
		return l
	}
	return &ZeroLogger{
		zl:    l.zl.With().Fields(map[string]interface{}(fields)).Logger(),
		level: l.level,
	}
}

func errMessage(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
