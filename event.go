// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tracelog

import "sync"

// Event is the compiled definition of one kind of event: its descriptor and
// its metadata blob. It is built once and never modified, so a single Event
// can be written concurrently through any number of providers.
//
// Events are declared through the typed constructors (NewEvent0 to
// NewEvent4), which tie the fields of the metadata to the arguments of Write.
type Event struct {
	name   string
	desc   EventDescriptor
	fields []Field
	meta   []byte
}

func (e *Event) init(info EventInfo, name string, fields ...Field) error {
	meta, err := BuildEventMetadata(name, fields...)
	if err != nil {
		return err
	}
	e.name = name
	e.desc = info.Descriptor()
	e.fields = fields
	e.meta = meta
	return nil
}

// Name returns the name of the event.
func (e *Event) Name() string { return e.name }

// Descriptor returns the descriptor of the event.
func (e *Event) Descriptor() EventDescriptor { return e.desc }

// Fields returns a copy of the field list of the event.
func (e *Event) Fields() []Field {
	fields := make([]Field, len(e.fields))
	copy(fields, e.fields)
	return fields
}

// Metadata returns a copy of the metadata blob of the event.
func (e *Event) Metadata() []byte {
	meta := make([]byte, len(e.meta))
	copy(meta, e.meta)
	return meta
}

// Enabled reports whether p has a session that wants this event.
func (e *Event) Enabled(p *Provider) bool { return p.IsEnabledFor(e.desc) }

// Lazy defers building an event until it is first used.
// Concurrent first uses build it once; other events are not blocked.
type Lazy[E any] struct {
	once  sync.Once
	build func() (E, error)
	ev    E
	err   error
}

// NewLazy returns a Lazy that calls build on first use.
func NewLazy[E any](build func() (E, error)) *Lazy[E] {
	return &Lazy[E]{build: build}
}

// Get returns the built event, or the error from building it.
func (l *Lazy[E]) Get() (E, error) {
	l.once.Do(func() {
		l.ev, l.err = l.build()
		l.build = nil
	})
	return l.ev, l.err
}
