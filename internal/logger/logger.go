// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and child-logger helpers used throughout
// klevu-api-request.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// *Logger also satisfies resty's Logger interface, so the HTTP client's own
// diagnostics end up in the same JSON stream.
package logger

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label writing JSON to
// os.Stdout. Entries below level are dropped.
//
// Every entry carries:
//   - a "role" field set to role;
//   - a "time" timestamp field;
//   - a "func" caller field with the fully-qualified function name.
func NewLogger(role string, level zerolog.Level) *Logger {
	return NewWriterLogger(os.Stdout, role, level)
}

// NewWriterLogger is NewLogger with an explicit destination.
func NewWriterLogger(w io.Writer, role string, level zerolog.Level) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).
		Level(level).
		With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// Errorf implements resty.Logger. resty messages are diagnostics of the
// transport, not application errors, so they are all written at debug level.
func (l *Logger) Errorf(format string, v ...any) {
	l.resty().Msg(fmt.Sprintf(format, v...))
}

// Warnf implements resty.Logger.
func (l *Logger) Warnf(format string, v ...any) {
	l.resty().Msg(fmt.Sprintf(format, v...))
}

// Debugf implements resty.Logger.
func (l *Logger) Debugf(format string, v ...any) {
	l.resty().Msg(fmt.Sprintf(format, v...))
}

func (l *Logger) resty() *zerolog.Event {
	return l.Debug().Str("component", "resty")
}
