// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package otel provides a sink that turns activities into OpenTelemetry spans
// and counts events with an OpenTelemetry counter.
//
// A start event with an activity id opens a span named after the event, as a
// child of the span of its related activity when that is still open. The stop
// event for the same activity ends it. Any other event written inside an open
// activity is added to its span as a span event.
package otel

import (
	"context"
	"sync"

	global "go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/exp/tracelog"
)

const instrumentationName = "golang.org/x/exp/tracelog/otel"

// Options configures a Sink.
type Options struct {
	// Tracer starts the spans. If nil, the global tracer provider is used.
	Tracer trace.Tracer
	// Meter creates the event counter. If nil, the global meter provider is
	// used.
	Meter metric.Meter
}

// Sink is a tracelog.Sink that forwards events to OpenTelemetry.
// Sessions are driven through its embedded Controller.
type Sink struct {
	tracelog.Controller

	tracer trace.Tracer
	events metric.Int64Counter

	mu    sync.Mutex
	spans map[tracelog.ActivityID]trace.Span
}

var _ tracelog.Sink = (*Sink)(nil)

// NewSink creates a Sink. It fails only if the counter cannot be created.
func NewSink(opts *Options) (*Sink, error) {
	var o Options
	if opts != nil {
		o = *opts
	}
	if o.Tracer == nil {
		o.Tracer = global.Tracer(instrumentationName)
	}
	if o.Meter == nil {
		o.Meter = global.Meter(instrumentationName)
	}
	events, err := o.Meter.Int64Counter("tracelog.events",
		metric.WithDescription("Events written through tracelog providers"),
		metric.WithUnit("{event}"))
	if err != nil {
		return nil, err
	}
	return &Sink{
		tracer: o.Tracer,
		events: events,
		spans:  make(map[tracelog.ActivityID]trace.Span),
	}, nil
}

// Write decodes the event and forwards it.
func (s *Sink) Write(h tracelog.Handle, desc *tracelog.EventDescriptor, activity, related *tracelog.ActivityID, data []tracelog.DataDescriptor) error {
	r, err := tracelog.DecodeRecord(desc, activity, related, data)
	if err != nil {
		return err
	}
	ctx := context.Background()
	s.events.Add(ctx, 1, metric.WithAttributes(
		attribute.String("provider", r.Provider),
		attribute.String("event", r.Name),
		attribute.String("level", r.Descriptor.Level.String())))

	if r.Activity.IsNil() {
		return nil
	}
	attrs := fieldsToAttributes(&r)

	s.mu.Lock()
	defer s.mu.Unlock()
	switch r.Descriptor.Opcode {
	case tracelog.OpcodeStart:
		if parent, ok := s.spans[r.Related]; ok && !r.Related.IsNil() {
			ctx = trace.ContextWithSpan(ctx, parent)
		}
		_, span := s.tracer.Start(ctx, r.Name,
			trace.WithAttributes(attribute.String("tracelog.activity", r.Activity.String())),
			trace.WithAttributes(attrs...))
		if old, ok := s.spans[r.Activity]; ok {
			old.End()
		}
		s.spans[r.Activity] = span
	case tracelog.OpcodeStop:
		span, ok := s.spans[r.Activity]
		if !ok {
			return nil
		}
		delete(s.spans, r.Activity)
		span.SetAttributes(attrs...)
		span.End()
	default:
		if span, ok := s.spans[r.Activity]; ok {
			span.AddEvent(r.Name, trace.WithAttributes(attrs...))
		}
	}
	return nil
}

// Close ends every span whose stop event has not been seen.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, span := range s.spans {
		span.End()
		delete(s.spans, id)
	}
	return nil
}

func fieldsToAttributes(r *tracelog.Record) []attribute.KeyValue {
	if len(r.Values) == 0 {
		return nil
	}
	attrs := make([]attribute.KeyValue, 0, len(r.Values))
	for i, v := range r.Values {
		key := attribute.Key(r.Fields[i].Name)
		switch {
		case v.IsInt64():
			attrs = append(attrs, key.Int64(v.Int64()))
		case v.IsUint64() && v.Type() != tracelog.TypeHexInt32 && v.Type() != tracelog.TypeHexInt64:
			attrs = append(attrs, key.Int64(int64(v.Uint64())))
		case v.IsFloat64():
			attrs = append(attrs, key.Float64(v.Float64()))
		case v.IsBool():
			attrs = append(attrs, key.Bool(v.Bool()))
		default:
			attrs = append(attrs, key.String(v.String()))
		}
	}
	return attrs
}
