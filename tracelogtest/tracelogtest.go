// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tracelogtest supports checking the events a program writes.
// A Recorder is an in-process Sink that decodes every event it is handed,
// the way a collector would, and keeps the result for the test to inspect.
package tracelogtest

import (
	"sync"
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/exp/tracelog"
)

// Recorder is a Sink that keeps decoded copies of the events written to it.
// Sessions are driven through its embedded Controller.
type Recorder struct {
	tracelog.Controller

	mu      sync.Mutex
	records []tracelog.Record
	fail    error
}

var _ tracelog.Sink = (*Recorder)(nil)

// Write decodes the event and records it. Bytes that do not decode are
// recorded as an error returned from Write.
func (r *Recorder) Write(h tracelog.Handle, desc *tracelog.EventDescriptor, activity, related *tracelog.ActivityID, data []tracelog.DataDescriptor) error {
	rec, err := tracelog.DecodeRecord(desc, activity, related, data)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return r.fail
	}
	r.records = append(r.records, rec)
	return nil
}

// FailWith makes every following Write return err, or stops failing if err
// is nil.
func (r *Recorder) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fail = err
}

// Records returns the events recorded so far, in the order they were
// written.
func (r *Recorder) Records() []tracelog.Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]tracelog.Record(nil), r.records...)
}

// Reset forgets the recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = nil
}

// NewProvider returns a provider called name, registered with a new Recorder
// whose session is enabled for everything. Diagnostics go to the test log and
// the provider is unregistered when the test ends.
func NewProvider(tb testing.TB, name string) (*tracelog.Provider, *Recorder) {
	tb.Helper()
	rec := &Recorder{}
	rec.Enable(tracelog.LevelNone, 0, 0)
	p, err := tracelog.NewProvider(tracelog.IdentityFromName(name), rec, &tracelog.Options{
		Logger: testr.NewWithInterface(tb, testr.Options{Verbosity: 1}),
	})
	if err != nil {
		tb.Fatal(err)
	}
	if err := p.Register(); err != nil {
		tb.Fatal(err)
	}
	tb.Cleanup(func() { p.Unregister() })
	return p, rec
}

// CmpOptions returns the options for comparing records with cmp.Diff.
func CmpOptions() []cmp.Option {
	return []cmp.Option{
		cmp.Comparer(func(x, y tracelog.Value) bool { return x.Equal(y) }),
		cmpopts.EquateEmpty(),
	}
}

// Values is a shorthand for building the expected values of a record.
func Values(vs ...tracelog.Value) []tracelog.Value { return vs }
