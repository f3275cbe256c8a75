// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logevent defines the events the logging adapters write.
//
// Every log line becomes a "Log" event with three ANSI string fields: the
// logger name, the message, and the remaining key/value pairs encoded as
// logfmt. There is one event per level, with ids 1 to 5 matching the level.
package logevent

import (
	"bytes"
	"fmt"

	"github.com/go-logfmt/logfmt"
	"golang.org/x/exp/tracelog"
)

// Name is the name of every log event.
const Name = "Log"

var events = func() [tracelog.LevelVerbose + 1]*tracelog.Event3[string, string, string] {
	var evs [tracelog.LevelVerbose + 1]*tracelog.Event3[string, string, string]
	for l := tracelog.LevelCritical; l <= tracelog.LevelVerbose; l++ {
		evs[l] = tracelog.MustEvent3[string, string, string](
			tracelog.EventInfo{ID: uint16(l), Level: l},
			Name, "Logger", "Message", "Fields")
	}
	return evs
}()

// Event returns the event written for level. Levels outside the defined
// range are treated as the nearest defined one.
func Event(level tracelog.Level) *tracelog.Event3[string, string, string] {
	switch {
	case level < tracelog.LevelCritical:
		level = tracelog.LevelCritical
	case level > tracelog.LevelVerbose:
		level = tracelog.LevelVerbose
	}
	return events[level]
}

// Provider returns p, or the default provider if p is nil.
func Provider(p *tracelog.Provider) *tracelog.Provider {
	if p == nil {
		return tracelog.DefaultProvider()
	}
	return p
}

// Enabled reports whether a log line at level would be written to p.
func Enabled(p *tracelog.Provider, level tracelog.Level) bool {
	return Event(level).Enabled(p)
}

// Write writes one log line. keyvals alternate between keys and values.
func Write(p *tracelog.Provider, c tracelog.Correlation, level tracelog.Level, logger, msg string, keyvals ...interface{}) error {
	ev := Event(level)
	if !ev.Enabled(p) {
		return nil
	}
	return ev.WriteActivity(p, c, logger, msg, Fields(keyvals...))
}

// Fields encodes keyvals as logfmt. Keys and values logfmt cannot represent
// are formatted with fmt first; a missing final value is written as null.
func Fields(keyvals ...interface{}) string {
	if len(keyvals) == 0 {
		return ""
	}
	var buf bytes.Buffer
	enc := logfmt.NewEncoder(&buf)
	for i := 0; i < len(keyvals); i += 2 {
		k := keyvals[i]
		var v interface{}
		if i+1 < len(keyvals) {
			v = keyvals[i+1]
		}
		if err := enc.EncodeKeyval(k, v); err != nil {
			enc.EncodeKeyval(fmt.Sprint(k), fmt.Sprint(v))
		}
	}
	return buf.String()
}
