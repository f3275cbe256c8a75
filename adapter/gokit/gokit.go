// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gokit provides a go-kit logger that writes log lines as events.
package gokit

import (
	"context"
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/exp/tracelog"
	"golang.org/x/exp/tracelog/adapter/internal/logevent"
)

type logger struct {
	p *tracelog.Provider
}

// NewLogger returns a logger that writes to p, or to the default provider if
// p is nil.
func NewLogger(p *tracelog.Provider) log.Logger {
	return &logger{p: p}
}

// Log writes a structured log message.
// A context.Context in key position, usually the first argument, is taken
// out of the key/value list; if it carries an activity id the event is
// written in that activity.
// The "msg" or "message" key becomes the message, the "logger" key the logger
// name, and a go-kit level value the level of the event; lines without one
// are written at tracelog.LevelInfo.
func (l *logger) Log(keyvals ...interface{}) error {
	ctx := context.Background()
	lvl := tracelog.LevelInfo
	var msg, name string
	rest := make([]interface{}, 0, len(keyvals))
	for i := 0; i < len(keyvals); i += 2 {
		key := keyvals[i]
		if c, ok := key.(context.Context); ok {
			ctx = c
			i--
			continue
		}
		var value interface{} = log.ErrMissingValue
		if i+1 < len(keyvals) {
			value = keyvals[i+1]
		}
		if v, ok := value.(level.Value); ok && key == level.Key() {
			lvl = convertLevel(v)
			continue
		}
		switch key {
		case "msg", "message":
			msg = fmt.Sprint(value)
		case "logger":
			name = fmt.Sprint(value)
		default:
			rest = append(rest, key, value)
		}
	}
	p := logevent.Provider(l.p)
	c := tracelog.Correlation{ID: tracelog.ActivityIDFromContext(ctx)}
	return logevent.Write(p, c, lvl, name, msg, rest...)
}

func convertLevel(v level.Value) tracelog.Level {
	switch v.String() {
	case "error":
		return tracelog.LevelError
	case "warn":
		return tracelog.LevelWarning
	case "info":
		return tracelog.LevelInfo
	case "debug":
		return tracelog.LevelVerbose
	default:
		return tracelog.LevelInfo
	}
}
