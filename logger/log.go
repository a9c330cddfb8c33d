package logger

import (
	"os"

	"github.com/orandin/lumberjackrus"
	"github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02T15:04:05.000000"

// Init configures the standard logger from the provided config: console output
// at the console level, plus a size-rotated log file when a file name is set.
// The standard logger runs at the more verbose of the two levels so the file
// hook sees every line it is entitled to.
func Init(config *Config, version string) error {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: timestampFormat,
	})

	level := config.ConsoleLevel
	if config.FileLevel > level {
		level = config.FileLevel
	}
	logrus.SetLevel(logrus.Level(level))

	if config.FileName != "" {
		hook, err := lumberjackrus.NewHook(
			&lumberjackrus.LogFile{
				Filename:   config.FileName,
				MaxSize:    config.MaxSize,
				MaxBackups: config.MaxBackups,
				MaxAge:     config.MaxAge,
				Compress:   true,
			},
			logrus.Level(config.FileLevel),
			&logrus.TextFormatter{
				FullTimestamp:   true,
				TimestampFormat: timestampFormat,
			},
			&lumberjackrus.LogFileOpts{},
		)
		if err != nil {
			return err
		}
		logrus.AddHook(hook)
	}

	Infof("%v (version %v) is starting with log level %v", config.AppName, version, config.ConsoleLevel)
	return nil
}

// Exit flushes any queued log lines; call before the process terminates
func Exit() {
	NonBlocking.Exit()
}

// Trace logs at trace level
func Trace(args ...interface{}) {
	NonBlocking.Log(TraceLevel, nil, args...)
}

// Tracef logs a formatted line at trace level
func Tracef(format string, args ...interface{}) {
	NonBlocking.Logf(TraceLevel, nil, format, args...)
}

// Debug logs at debug level
func Debug(args ...interface{}) {
	NonBlocking.Log(DebugLevel, nil, args...)
}

// Debugf logs a formatted line at debug level
func Debugf(format string, args ...interface{}) {
	NonBlocking.Logf(DebugLevel, nil, format, args...)
}

// Info logs at info level
func Info(args ...interface{}) {
	NonBlocking.Log(InfoLevel, nil, args...)
}

// Infof logs a formatted line at info level
func Infof(format string, args ...interface{}) {
	NonBlocking.Logf(InfoLevel, nil, format, args...)
}

// Warn logs at warn level
func Warn(args ...interface{}) {
	NonBlocking.Log(WarnLevel, nil, args...)
}

// Warnf logs a formatted line at warn level
func Warnf(format string, args ...interface{}) {
	NonBlocking.Logf(WarnLevel, nil, format, args...)
}

// Error logs at error level
func Error(args ...interface{}) {
	NonBlocking.Log(ErrorLevel, nil, args...)
}

// Errorf logs a formatted line at error level
func Errorf(format string, args ...interface{}) {
	NonBlocking.Logf(ErrorLevel, nil, format, args...)
}

// Fatal flushes queued lines, logs synchronously and exits
func Fatal(args ...interface{}) {
	Exit()
	logrus.Fatal(args...)
}

// Fatalf flushes queued lines, logs a formatted line synchronously and exits
func Fatalf(format string, args ...interface{}) {
	Exit()
	logrus.Fatalf(format, args...)
}

// WithFields attaches structured context for a single line
func WithFields(fields Fields, level Level, args ...interface{}) {
	NonBlocking.Log(level, &fields, args...)
}
