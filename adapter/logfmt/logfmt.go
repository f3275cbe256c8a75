// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logfmt provides a sink that prints events as logfmt lines, one per
// event, as a collector would decode them.
package logfmt

import (
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/go-logfmt/logfmt"
	"golang.org/x/exp/tracelog"
)

const TimeFormat = "2006/01/02 15:04:05"

// Options configures a Sink.
type Options struct {
	// Now returns the time stamped on each line. If nil, time.Now is used.
	// If it returns the zero time the time is left out.
	Now func() time.Time
}

// Printer formats decoded events.
type Printer struct {
	buf [24]byte
}

// Sink is a tracelog.Sink that prints every event it is handed to an
// io.Writer. Sessions are driven through its embedded Controller.
type Sink struct {
	tracelog.Controller

	now func() time.Time

	mu  sync.Mutex
	enc *logfmt.Encoder
	Printer
}

var _ tracelog.Sink = (*Sink)(nil)

// NewSink returns a sink that prints events to the supplied writer.
func NewSink(to io.Writer, opts *Options) *Sink {
	s := &Sink{now: time.Now, enc: logfmt.NewEncoder(to)}
	if opts != nil && opts.Now != nil {
		s.now = opts.Now
	}
	return s
}

// Write decodes the event and prints it.
func (s *Sink) Write(h tracelog.Handle, desc *tracelog.EventDescriptor, activity, related *tracelog.ActivityID, data []tracelog.DataDescriptor) error {
	r, err := tracelog.DecodeRecord(desc, activity, related, data)
	if err != nil {
		return err
	}
	at := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Printer.Record(s.enc, at, &r)
}

// Record prints r as a single logfmt record, ending the record.
func (p *Printer) Record(enc *logfmt.Encoder, at time.Time, r *tracelog.Record) error {
	if !at.IsZero() {
		if err := enc.EncodeKeyval("time", at.AppendFormat(p.buf[:0], TimeFormat)); err != nil {
			return err
		}
	}
	kvs := []interface{}{
		"provider", r.Provider,
		"event", r.Name,
	}
	d := r.Descriptor
	if d.Level != tracelog.LevelNone {
		kvs = append(kvs, "level", d.Level.String())
	}
	if d.Opcode != tracelog.OpcodeInfo {
		kvs = append(kvs, "opcode", d.Opcode.String())
	}
	if d.Keywords != 0 {
		kvs = append(kvs, "keywords", "0x"+strconv.FormatUint(d.Keywords, 16))
	}
	if !r.Activity.IsNil() {
		kvs = append(kvs, "activity", r.Activity.String())
	}
	if !r.Related.IsNil() {
		kvs = append(kvs, "related", r.Related.String())
	}
	for i, f := range r.Fields {
		if f.Name == "" || i >= len(r.Values) {
			continue
		}
		kvs = append(kvs, f.Name, r.Values[i].String())
	}
	for i := 0; i < len(kvs); i += 2 {
		if err := enc.EncodeKeyval(kvs[i], kvs[i+1]); err != nil {
			return err
		}
	}
	return enc.EndRecord()
}
