package logger

import (
	"github.com/sirupsen/logrus"
)

// Fields holds arbitrary structured log context
type Fields map[string]interface{}

// Level mirrors logrus log levels
type Level logrus.Level

// Log levels, from least to most verbose
const (
	PanicLevel Level = iota
	FatalLevel
	ErrorLevel
	WarnLevel
	InfoLevel
	DebugLevel
	TraceLevel
)

func (level Level) String() string {
	return logrus.Level(level).String()
}

// ParseLevel converts a level name to its Level value
func ParseLevel(level string) (Level, error) {
	logrusLevel, err := logrus.ParseLevel(level)
	return Level(logrusLevel), err
}

// IsLevelEnabled checks whether the standard logger would write at the given level
func IsLevelEnabled(level Level) bool {
	return logrus.IsLevelEnabled(logrus.Level(level))
}
