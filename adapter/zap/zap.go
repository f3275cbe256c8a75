// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zap provides an implementation of zapcore.Core that writes log
// entries as events.
// To use globally:
//
//	zap.ReplaceGlobals(zap.New(NewCore(provider)))
//
// If you call tracelog.SetDefaultProvider, then you can pass nil for the
// provider above and it will use the default one.
package zap

import (
	"fmt"
	"math"
	"reflect"
	"time"

	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/tracelog"
	"golang.org/x/exp/tracelog/adapter/internal/logevent"
)

type core struct {
	p       *tracelog.Provider
	keyvals []interface{}
}

var _ zapcore.Core = (*core)(nil)

// NewCore returns a core that writes to p.
func NewCore(p *tracelog.Provider) zapcore.Core {
	return &core{p: p}
}

func (c *core) Enabled(level zapcore.Level) bool {
	return logevent.Enabled(logevent.Provider(c.p), convertLevel(level))
}

func (c *core) With(fields []zapcore.Field) zapcore.Core {
	c2 := *c
	if len(fields) > 0 {
		c2.keyvals = make([]interface{}, len(c.keyvals), len(c.keyvals)+2*len(fields))
		copy(c2.keyvals, c.keyvals)
		c2.keyvals = appendFields(c2.keyvals, fields)
	}
	return &c2
}

func (c *core) Write(e zapcore.Entry, fs []zapcore.Field) error {
	p := logevent.Provider(c.p)
	level := convertLevel(e.Level)
	if !logevent.Enabled(p, level) {
		return nil
	}
	keyvals := make([]interface{}, 0, len(c.keyvals)+2*len(fs)+4)
	keyvals = append(keyvals, c.keyvals...)
	keyvals = appendFields(keyvals, fs)
	if e.Caller.Defined {
		keyvals = append(keyvals, "caller", e.Caller.String())
	}
	if e.Stack != "" {
		keyvals = append(keyvals, "stack", e.Stack)
	}
	return logevent.Write(p, tracelog.Correlation{}, level, e.LoggerName, e.Message, keyvals...)
}

func (c *core) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(e.Level) {
		return ce.AddCore(e, c)
	}
	return ce
}

func (c *core) Sync() error { return nil }

func appendFields(keyvals []interface{}, fs []zapcore.Field) []interface{} {
	for _, f := range fs {
		switch f.Type {
		case zapcore.NamespaceType, zapcore.SkipType:
			continue
		}
		keyvals = append(keyvals, f.Key, fieldValue(f))
	}
	return keyvals
}

func fieldValue(f zapcore.Field) interface{} {
	switch f.Type {
	case zapcore.ArrayMarshalerType, zapcore.ObjectMarshalerType, zapcore.BinaryType, zapcore.ByteStringType,
		zapcore.Complex128Type, zapcore.Complex64Type, zapcore.TimeFullType, zapcore.ReflectType,
		zapcore.ErrorType:
		return f.Interface
	case zapcore.DurationType:
		return time.Duration(f.Integer)
	case zapcore.Float64Type:
		return math.Float64frombits(uint64(f.Integer))
	case zapcore.Float32Type:
		return math.Float32frombits(uint32(f.Integer))
	case zapcore.BoolType:
		return f.Integer != 0
	case zapcore.Int64Type, zapcore.Int32Type, zapcore.Int16Type, zapcore.Int8Type:
		return f.Integer
	case zapcore.Uint64Type, zapcore.Uint32Type, zapcore.Uint16Type, zapcore.Uint8Type, zapcore.UintptrType:
		return uint64(f.Integer)
	case zapcore.StringType:
		return f.String
	case zapcore.TimeType:
		t := time.Unix(0, f.Integer)
		if f.Interface != nil {
			t = t.In(f.Interface.(*time.Location))
		}
		return t
	case zapcore.StringerType:
		return stringerToString(f.Interface)
	default:
		return fmt.Sprintf("unknown field type %v", f.Type)
	}
}

// Adapted from encodeStringer in go.uber.org/zap/zapcore/field.go.
func stringerToString(stringer interface{}) (s string) {
	// Try to capture panics (from nil references or otherwise) when calling
	// the String() method, similar to https://golang.org/src/fmt/print.go#L540
	defer func() {
		if err := recover(); err != nil {
			if v := reflect.ValueOf(stringer); v.Kind() == reflect.Ptr && v.IsNil() {
				s = "<nil>"
				return
			}
			s = fmt.Sprintf("PANIC=%v", err)
		}
	}()

	return stringer.(fmt.Stringer).String()
}

func convertLevel(level zapcore.Level) tracelog.Level {
	switch level {
	case zapcore.DebugLevel:
		return tracelog.LevelVerbose
	case zapcore.InfoLevel:
		return tracelog.LevelInfo
	case zapcore.WarnLevel:
		return tracelog.LevelWarning
	case zapcore.ErrorLevel:
		return tracelog.LevelError
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return tracelog.LevelCritical
	default:
		return tracelog.LevelVerbose
	}
}
