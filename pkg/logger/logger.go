package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}

type zerologLogger struct {
	log zerolog.Logger
}

func New(level string) Logger {
	lvl := parseLevel(level)
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(lvl).
		With().Timestamp().Logger()

	return &zerologLogger{log: zl}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// withFields прикрепляет пары ключ-значение в стиле "key", value, "key", value
func withFields(ev *zerolog.Event, args []interface{}) *zerolog.Event {
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		switch v := args[i+1].(type) {
		case error:
			ev = ev.AnErr(key, v)
		default:
			ev = ev.Interface(key, v)
		}
	}
	return ev
}

func (l *zerologLogger) Debug(msg string, args ...interface{}) {
	withFields(l.log.Debug(), args).Msg(msg)
}

func (l *zerologLogger) Info(msg string, args ...interface{}) {
	withFields(l.log.Info(), args).Msg(msg)
}

func (l *zerologLogger) Warn(msg string, args ...interface{}) {
	withFields(l.log.Warn(), args).Msg(msg)
}

func (l *zerologLogger) Error(msg string, args ...interface{}) {
	withFields(l.log.Error(), args).Msg(msg)
}

func (l *zerologLogger) Fatal(msg string, args ...interface{}) {
	withFields(l.log.Fatal(), args).Msg(msg)
}
