// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log provides the leveled logger used by the optrom commands.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	}
	panic("invalid level")
}

func (l Level) logrus() logrus.Level {
	switch l {
	case LevelDebug:
		return logrus.DebugLevel
	case LevelInfo:
		return logrus.InfoLevel
	case LevelWarn:
		return logrus.WarnLevel
	}
	return logrus.ErrorLevel
}

type Logger interface {
	Debug(msg string, fields ...any)
	Info(msg string, fields ...any)
	Warn(msg string, fields ...any)
	Error(msg string, fields ...any)

	// Sub returns a logger that adds the key/value fields to every entry.
	Sub(fields ...any) Logger
}

var backend = newBackend(os.Stderr)

var root Logger = &logrusLogger{backend}

func newBackend(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetLevel sets the minimum level of the entries that are written out.
func SetLevel(l Level) {
	backend.SetLevel(l.logrus())
}

// SetOutput redirects all log output to w.
func SetOutput(w io.Writer) {
	backend.SetOutput(w)
}

// WithModule returns the logger for the named module.
func WithModule(name string) Logger {
	return root.Sub("module", name)
}
