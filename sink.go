// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tracelog

import "github.com/Microsoft/go-winio/pkg/guid"

// Handle identifies a provider registration with a Sink.
// The zero Handle means the provider is not registered.
type Handle uint64

// ControlFunc receives the session state for a registered provider.
// A Sink may call it at any time, from any goroutine, zero or more times
// between Register and Unregister.
type ControlFunc func(enabled bool, level Level, matchAny, matchAll uint64)

// DescriptorType says what a DataDescriptor holds.
type DescriptorType uint8

const (
	UserData         = DescriptorType(0)
	EventMetadata    = DescriptorType(1)
	ProviderMetadata = DescriptorType(2)
)

func (t DescriptorType) String() string {
	switch t {
	case UserData:
		return "data"
	case EventMetadata:
		return "event"
	case ProviderMetadata:
		return "provider"
	default:
		return "unknown"
	}
}

// DataDescriptor is one element of the list handed to Sink.Write.
type DataDescriptor struct {
	Type DescriptorType
	Data []byte
}

// Sink is the collector side of a provider: it registers providers, tells
// them when sessions want their events, and carries the encoded events away.
//
// Write receives the provider trait, the event metadata and one descriptor
// per field value, in that order. The descriptor list and the bytes it refers
// to are only valid for the duration of the call. activity and related are
// nil when the event is not correlated.
// Write must not block; a failure is returned to the caller of the event and
// is never retried.
type Sink interface {
	Register(id guid.GUID, name string, control ControlFunc) (Handle, error)
	Unregister(h Handle) error
	Write(h Handle, desc *EventDescriptor, activity, related *ActivityID, data []DataDescriptor) error
}

// NopSink is a Sink that discards every event.
// Sessions are driven through its embedded Controller.
type NopSink struct {
	Controller
}

var _ Sink = (*NopSink)(nil)

func (*NopSink) Write(Handle, *EventDescriptor, *ActivityID, *ActivityID, []DataDescriptor) error {
	return nil
}
