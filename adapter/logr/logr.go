// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logr is a logr implementation that writes log lines as events.
//
// V(0) lines are written at tracelog.LevelInfo and every greater verbosity
// at tracelog.LevelVerbose. Errors are written at tracelog.LevelError.
// If the provider is nil, the default provider is used.
package logr

import (
	"github.com/go-logr/logr"
	"golang.org/x/exp/tracelog"
	"golang.org/x/exp/tracelog/adapter/internal/logevent"
)

type logSink struct {
	p       *tracelog.Provider
	keyvals []interface{}
	nameSep string
	name    string
}

// NewLogger returns a logger that writes to p. Names added with WithName are
// joined with nameSep.
func NewLogger(p *tracelog.Provider, nameSep string) logr.Logger {
	return logr.New(&logSink{p: p, nameSep: nameSep})
}

func (*logSink) Init(logr.RuntimeInfo) {}

// WithName implements logr.LogSink.WithName.
func (l *logSink) WithName(name string) logr.LogSink {
	l2 := *l
	if l.name == "" {
		l2.name = name
	} else {
		l2.name = l.name + l.nameSep + name
	}
	return &l2
}

// Enabled reports whether a session wants lines at the specified V-level.
func (l *logSink) Enabled(level int) bool {
	return logevent.Enabled(logevent.Provider(l.p), convertVerbosity(level))
}

// Info implements logr.LogSink.Info.
func (l *logSink) Info(level int, msg string, keysAndValues ...interface{}) {
	l.log(convertVerbosity(level), msg, nil, keysAndValues)
}

// Error implements logr.LogSink.Error.
func (l *logSink) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log(tracelog.LevelError, msg, []interface{}{"error", err}, keysAndValues)
}

func (l *logSink) log(level tracelog.Level, msg string, first, keysAndValues []interface{}) {
	p := logevent.Provider(l.p)
	if !logevent.Enabled(p, level) {
		return
	}
	keyvals := make([]interface{}, 0, len(first)+len(l.keyvals)+len(keysAndValues))
	keyvals = append(keyvals, first...)
	keyvals = append(keyvals, l.keyvals...)
	keyvals = append(keyvals, keysAndValues...)
	logevent.Write(p, tracelog.Correlation{}, level, l.name, msg, keyvals...)
}

// WithValues implements logr.LogSink.WithValues.
func (l *logSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	l2 := *l
	if len(keysAndValues) > 0 {
		l2.keyvals = make([]interface{}, len(l.keyvals), len(l.keyvals)+len(keysAndValues))
		copy(l2.keyvals, l.keyvals)
		l2.keyvals = append(l2.keyvals, keysAndValues...)
	}
	return &l2
}

func convertVerbosity(v int) tracelog.Level {
	if v <= 0 {
		return tracelog.LevelInfo
	}
	return tracelog.LevelVerbose
}
