// Package logger is the structured logging facade used across the service.
package logger

import "strings"

// Fields are key/value pairs attached to every entry of a logger.
type Fields map[string]interface{}

type Logger interface {
	Debug(message string, properties map[string]interface{})
	Info(message string, properties map[string]interface{})
	Error(err error, properties map[string]interface{})
	Fatal(err error, properties map[string]interface{})
	SetLevel(level Level)
	// With returns a child logger that adds fields to each entry and
	// follows the parent's level.
	With(fields Fields) Logger
}

type Level int8

const (
	LevelInfo Level = iota
	LevelError
	LevelFatal
	LevelOff
	LevelDebug
)

var levelNames = map[Level]string{
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelError: "error",
	LevelFatal: "fatal",
	LevelOff:   "off",
}

func (l Level) String() string {
	return levelNames[l]
}

// ParseLevel maps a LOG_LEVEL value to a Level. Unknown values mean info.
func ParseLevel(s string) Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "none" || s == "disabled" {
		return LevelOff
	}
	for level, name := range levelNames {
		if name == s {
			return level
		}
	}
	return LevelInfo
}
