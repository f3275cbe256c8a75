// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zerolog provides a zerolog.LevelWriter that writes log lines as
// events.
//
//	log := zerolog.New(tzerolog.NewWriter(provider))
//
// Each JSON line zerolog produces is taken apart again: the message field
// becomes the message, a "logger" field the logger name, and the remaining
// top-level fields, except the timestamp, are written in order as the
// fields of the event.
// If the provider is nil, the default provider is used.
package zerolog

import (
	"bytes"
	"encoding/json"

	"github.com/rs/zerolog"
	"golang.org/x/exp/tracelog"
	"golang.org/x/exp/tracelog/adapter/internal/logevent"
	"golang.org/x/xerrors"
)

// Writer is a zerolog.LevelWriter writing to a provider.
type Writer struct {
	p *tracelog.Provider
}

var _ zerolog.LevelWriter = (*Writer)(nil)

// NewWriter returns a writer that writes to p.
func NewWriter(p *tracelog.Provider) *Writer {
	return &Writer{p: p}
}

// Write writes a line that zerolog did not give a level to, taking the level
// from the line itself.
func (w *Writer) Write(b []byte) (int, error) {
	return w.WriteLevel(zerolog.NoLevel, b)
}

// WriteLevel writes one JSON line produced by zerolog.
func (w *Writer) WriteLevel(l zerolog.Level, b []byte) (int, error) {
	if l == zerolog.Disabled {
		return len(b), nil
	}
	p := logevent.Provider(w.p)
	if l != zerolog.NoLevel && !logevent.Enabled(p, convertLevel(l)) {
		return len(b), nil
	}
	ln, err := parseLine(b)
	if err != nil {
		return 0, err
	}
	if l == zerolog.NoLevel && ln.level != "" {
		if parsed, err := zerolog.ParseLevel(ln.level); err == nil {
			l = parsed
		}
	}
	if err := logevent.Write(p, tracelog.Correlation{}, convertLevel(l), ln.name, ln.msg, ln.keyvals...); err != nil {
		return 0, err
	}
	return len(b), nil
}

type line struct {
	level   string
	name    string
	msg     string
	keyvals []interface{}
}

func parseLine(b []byte) (line, error) {
	var ln line
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return ln, xerrors.Errorf("zerolog line: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return ln, xerrors.Errorf("zerolog line does not hold an object: %q", b)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return ln, xerrors.Errorf("zerolog line: %w", err)
		}
		key, _ := tok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return ln, xerrors.Errorf("zerolog line: field %q: %w", key, err)
		}
		value := rawValue(raw)
		switch key {
		case zerolog.TimestampFieldName:
		case zerolog.LevelFieldName:
			ln.level, _ = value.(string)
		case zerolog.MessageFieldName:
			ln.msg, _ = value.(string)
		case "logger":
			ln.name, _ = value.(string)
		default:
			ln.keyvals = append(ln.keyvals, key, value)
		}
	}
	return ln, nil
}

// rawValue returns JSON strings as Go strings and any other value as its
// JSON text.
func rawValue(raw json.RawMessage) interface{} {
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}

func convertLevel(level zerolog.Level) tracelog.Level {
	switch level {
	case zerolog.PanicLevel, zerolog.FatalLevel:
		return tracelog.LevelCritical
	case zerolog.ErrorLevel:
		return tracelog.LevelError
	case zerolog.WarnLevel:
		return tracelog.LevelWarning
	case zerolog.InfoLevel, zerolog.NoLevel:
		return tracelog.LevelInfo
	default:
		return tracelog.LevelVerbose
	}
}
