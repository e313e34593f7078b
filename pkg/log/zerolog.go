package log

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/YuminosukeSato/lgbmpmml/pkg/errors"
)

// ZerologLogger is a Logger backed by zerolog.
type ZerologLogger struct {
	zl    zerolog.Logger
	level Level
}

// NewZerologLogger writes JSON lines to w, dropping records below level.
func NewZerologLogger(w io.Writer, level Level) *ZerologLogger {
	zl := zerolog.New(w).Level(toZerologLevel(level)).With().Timestamp().Logger()
	return &ZerologLogger{zl: zl, level: level}
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// Debug implements Logger.Debug.
func (l *ZerologLogger) Debug(msg string, fields ...any) {
	l.zl.Debug().Fields(fields).Msg(msg)
}

// Info implements Logger.Info.
func (l *ZerologLogger) Info(msg string, fields ...any) {
	l.zl.Info().Fields(fields).Msg(msg)
}

// Warn implements Logger.Warn.
func (l *ZerologLogger) Warn(msg string, fields ...any) {
	l.zl.Warn().Fields(fields).Msg(msg)
}

// Error implements Logger.Error. A leading error field is logged with its
// cockroachdb stack trace.
func (l *ZerologLogger) Error(msg string, fields ...any) {
	rest, err := leadingErr(fields)
	ev := l.zl.Error()
	if err != nil {
		ev = ev.Err(err)
		if marshaler, ok := asObjectMarshaler(err); ok {
			ev = ev.Object("detail", marshaler)
		}
		if st := extractStacktrace(err); st != "" {
			ev = ev.Str(StacktraceAttrKey, st)
		}
	}
	ev.Fields(rest).Msg(msg)
}

// With implements Logger.With.
func (l *ZerologLogger) With(fields ...any) Logger {
	return &ZerologLogger{zl: l.zl.With().Fields(fields).Logger(), level: l.level}
}

// Enabled implements Logger.Enabled.
func (l *ZerologLogger) Enabled(_ context.Context, level Level) bool {
	return level >= l.level
}

// RouteWarnings sends errors.Warn output to this logger.
func (l *ZerologLogger) RouteWarnings() {
	errors.SetZerologWarnFunc(func(w error) {
		ev := l.zl.Warn().Str("warning", w.Error())
		if marshaler, ok := w.(zerolog.LogObjectMarshaler); ok {
			ev = ev.Object("detail", marshaler)
		}
		ev.Msg("conversion warning")
	})
}

// asObjectMarshaler finds the first error in the chain with a zerolog marshaler.
func asObjectMarshaler(err error) (zerolog.LogObjectMarshaler, bool) {
	var formatErr *errors.FormatError
	if errors.As(err, &formatErr) {
		return formatErr, true
	}
	var splitErr *errors.InvalidSplitError
	if errors.As(err, &splitErr) {
		return splitErr, true
	}
	var missingErr *errors.MissingFeatureError
	if errors.As(err, &missingErr) {
		return missingErr, true
	}
	var panicErr *errors.PanicError
	if errors.As(err, &panicErr) {
		return panicErr, true
	}
	return nil, false
}
