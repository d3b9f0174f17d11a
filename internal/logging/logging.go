package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

type Field struct {
	Key   string
	Value any
}

type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
	Enabled(level Level) bool
}

type logrusLogger struct {
	entry *logrus.Entry
	level Level
}

// New returns a logfmt-style logger writing to out at the given minimum level.
func New(out io.Writer, level Level) Logger {
	if out == nil {
		out = os.Stdout
	}
	base := logrus.New()
	base.SetOutput(out)
	base.SetLevel(logrusLevel(level))
	base.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	return &logrusLogger{entry: logrus.NewEntry(base), level: level}
}

func Nop() Logger {
	return New(io.Discard, Error)
}

func (l *logrusLogger) Enabled(level Level) bool {
	if l == nil {
		return false
	}
	return level >= l.level
}

func (l *logrusLogger) With(fields ...Field) Logger {
	if l == nil {
		return Nop()
	}
	return &logrusLogger{entry: l.entry.WithFields(toFields(fields)), level: l.level}
}

func (l *logrusLogger) Debug(msg string, fields ...Field) { l.log(Debug, msg, fields...) }
func (l *logrusLogger) Info(msg string, fields ...Field)  { l.log(Info, msg, fields...) }
func (l *logrusLogger) Warn(msg string, fields ...Field)  { l.log(Warn, msg, fields...) }
func (l *logrusLogger) Error(msg string, fields ...Field) { l.log(Error, msg, fields...) }

func (l *logrusLogger) log(level Level, msg string, fields ...Field) {
	if l == nil || level < l.level {
		return
	}
	entry := l.entry
	if len(fields) > 0 {
		entry = entry.WithFields(toFields(fields))
	}
	entry.Log(logrusLevel(level), msg)
}

func toFields(fields []Field) logrus.Fields {
	out := make(logrus.Fields, len(fields))
	for _, field := range fields {
		if strings.TrimSpace(field.Key) == "" {
			continue
		}
		out[field.Key] = field.Value
	}
	return out
}

func logrusLevel(level Level) logrus.Level {
	switch level {
	case Debug:
		return logrus.DebugLevel
	case Warn:
		return logrus.WarnLevel
	case Error:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

func ParseLevel(raw string) Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return Debug
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}
