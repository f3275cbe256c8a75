// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logrus provides a logrus Hook that writes entries as events.
// To use for the global logger:
//
//	logrus.AddHook(tlogrus.NewHook(provider))
//
// and for a Logger instance:
//
//	logger.AddHook(tlogrus.NewHook(provider))
//
// The hook runs alongside the logger's own output; set the output to
// io.Discard to write events only.
//
// If the entry has a context carrying an activity id (see
// tracelog.WithActivityID), the event is written in that activity.
// If the provider is nil, the default provider is used.
package logrus

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/tracelog"
	"golang.org/x/exp/tracelog/adapter/internal/logevent"
)

type hook struct {
	p *tracelog.Provider
}

// NewHook returns a hook that writes to p.
func NewHook(p *tracelog.Provider) logrus.Hook {
	return &hook{p: p}
}

var _ logrus.Hook = (*hook)(nil)

func (h *hook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire writes an entry as an event. Fields are written in key order, since
// logrus keeps them in a map.
func (h *hook) Fire(e *logrus.Entry) error {
	p := logevent.Provider(h.p)
	level := convertLevel(e.Level)
	if !logevent.Enabled(p, level) {
		return nil
	}
	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	keyvals := make([]interface{}, 0, 2*len(keys))
	for _, k := range keys {
		keyvals = append(keyvals, k, e.Data[k])
	}
	ctx := e.Context
	if ctx == nil {
		ctx = context.Background()
	}
	c := tracelog.Correlation{ID: tracelog.ActivityIDFromContext(ctx)}
	return logevent.Write(p, c, level, "", e.Message, keyvals...)
}

func convertLevel(level logrus.Level) tracelog.Level {
	switch level {
	case logrus.PanicLevel, logrus.FatalLevel:
		return tracelog.LevelCritical
	case logrus.ErrorLevel:
		return tracelog.LevelError
	case logrus.WarnLevel:
		return tracelog.LevelWarning
	case logrus.InfoLevel:
		return tracelog.LevelInfo
	default:
		return tracelog.LevelVerbose
	}
}
