// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !disable_tracelog

package tracelog_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/tracelog"
	"golang.org/x/exp/tracelog/tracelogtest"
)

func TestProviderWrite(t *testing.T) {
	p, rec := tracelogtest.NewProvider(t, "Provider.Test")
	if err := appLaunched.Write(p); err != nil {
		t.Fatal(err)
	}
	if err := parsingStart.Write(p, "test", 0); err != nil {
		t.Fatal(err)
	}
	want := []tracelog.Record{{
		Provider:   "Provider.Test",
		Descriptor: appLaunched.Event().Descriptor(),
		Name:       "AppLaunched",
	}, {
		Provider:   "Provider.Test",
		Descriptor: parsingStart.Event().Descriptor(),
		Name:       "ParsingStart",
		Fields: []tracelog.Field{
			{Name: "Filename", Type: tracelog.TypeAnsiString},
			{Name: "Offset", Type: tracelog.TypeInt32},
		},
		Values: tracelogtest.Values(tracelog.ValueOf("test"), tracelog.ValueOf(int32(0))),
	}}
	if diff := cmp.Diff(want, rec.Records(), tracelogtest.CmpOptions()...); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestProviderWriteEmbeddedNUL(t *testing.T) {
	p, rec := tracelogtest.NewProvider(t, "Provider.NUL")
	if err := parsingStart.Write(p, "a\x00b", 7); err != nil {
		t.Fatal(err)
	}
	records := rec.Records()
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	want := tracelogtest.Values(tracelog.ValueOf("a"), tracelog.ValueOf(int32(7)))
	if diff := cmp.Diff(want, records[0].Values, tracelogtest.CmpOptions()...); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestProviderFiltering(t *testing.T) {
	p, rec := tracelogtest.NewProvider(t, "Provider.Filter")

	rec.Enable(tracelog.LevelInfo, 0, 0)
	appLaunched.Write(p)
	parsingStart.Write(p, "dropped", 1)
	tagged.Write(p, true)
	if got := names(rec.Records()); !cmp.Equal(got, []string{"AppLaunched"}) {
		t.Errorf("level info, no keywords: got %v", got)
	}

	rec.Reset()
	rec.Enable(tracelog.LevelInfo, 0x30, 0)
	tagged.Write(p, true)
	if got := names(rec.Records()); !cmp.Equal(got, []string{"Tagged"}) {
		t.Errorf("keyword 0x30: got %v", got)
	}
	if p.Level() != tracelog.LevelInfo || p.Keywords() != 0x30 {
		t.Errorf("provider state %v %#x", p.Level(), p.Keywords())
	}

	rec.Reset()
	rec.Disable()
	appLaunched.Write(p)
	if p.IsEnabled() || len(rec.Records()) != 0 {
		t.Errorf("disabled session: enabled %v, %d records", p.IsEnabled(), len(rec.Records()))
	}
}

func names(records []tracelog.Record) []string {
	var out []string
	for _, r := range records {
		out = append(out, r.Name)
	}
	return out
}

func TestProviderLifecycle(t *testing.T) {
	rec := &tracelogtest.Recorder{}
	id := tracelog.IdentityFromName("Provider.Lifecycle")
	p, err := tracelog.NewProvider(id, rec, nil)
	if err != nil {
		t.Fatal(err)
	}
	rec.Enable(tracelog.LevelNone, 0, 0)
	if p.IsEnabled() {
		t.Error("provider enabled before Register")
	}
	if err := p.Register(); err != nil {
		t.Fatal(err)
	}
	if !p.IsEnabled() {
		t.Error("provider not told about the running session")
	}
	if err := p.Register(); !errors.Is(err, tracelog.ErrAlreadyRegistered) {
		t.Errorf("second Register: got %v", err)
	}
	if p.Identity() != id {
		t.Errorf("identity %v, want %v", p.Identity(), id)
	}
	if err := p.Unregister(); err != nil {
		t.Fatal(err)
	}
	if p.IsEnabled() || p.Registered() {
		t.Error("provider still live after Unregister")
	}
	if err := p.Close(); err != nil {
		t.Errorf("second Unregister: %v", err)
	}
	appLaunched.Write(p)
	if n := len(rec.Records()); n != 0 {
		t.Errorf("got %d records after Unregister", n)
	}
	// a provider can register again after unregistering
	if err := p.Register(); err != nil {
		t.Fatal(err)
	}
	appLaunched.Write(p)
	if n := len(rec.Records()); n != 1 {
		t.Errorf("got %d records after re-registering", n)
	}
	p.Unregister()
}

func TestProviderDerivesID(t *testing.T) {
	p, err := tracelog.NewProvider(tracelog.Identity{Name: "billti-thic"}, &tracelog.NopSink{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Identity().ID.String(); got != "1b0d5501-a5fb-5d95-d960-4647bec69d41" {
		t.Errorf("derived id %s", got)
	}
}

func TestProviderBadName(t *testing.T) {
	_, err := tracelog.NewProvider(tracelog.Identity{Name: "bad\x00name"}, &tracelog.NopSink{}, nil)
	if !errors.Is(err, tracelog.ErrInvalidName) {
		t.Errorf("got %v, want ErrInvalidName", err)
	}
}

func TestNilProvider(t *testing.T) {
	var p *tracelog.Provider
	if p.IsEnabled() {
		t.Error("nil provider enabled")
	}
	if err := parsingStart.Write(p, "x", 1); err != nil {
		t.Errorf("write to nil provider: %v", err)
	}
}

func TestWriteError(t *testing.T) {
	p, rec := tracelogtest.NewProvider(t, "Provider.Error")
	failure := errors.New("collector full")
	rec.FailWith(failure)
	if err := appLaunched.Write(p); !errors.Is(err, failure) {
		t.Errorf("got %v, want %v", err, failure)
	}
	rec.FailWith(nil)
	if err := appLaunched.Write(p); err != nil {
		t.Errorf("after recovery: %v", err)
	}
}

func TestConcurrentWrites(t *testing.T) {
	p, rec := tracelogtest.NewProvider(t, "Provider.Concurrent")
	const writers, each = 8, 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < each; j++ {
				parsingStart.Write(p, "file", int32(i*each+j))
			}
		}(i)
	}
	wg.Wait()
	records := rec.Records()
	if len(records) != writers*each {
		t.Fatalf("got %d records, want %d", len(records), writers*each)
	}
	seen := make(map[int64]bool)
	for _, r := range records {
		v, _ := r.Value("Offset")
		seen[v.Int64()] = true
	}
	if len(seen) != writers*each {
		t.Errorf("got %d distinct offsets, want %d", len(seen), writers*each)
	}
}

func TestDefaultProvider(t *testing.T) {
	p, _ := tracelogtest.NewProvider(t, "Provider.Default")
	tracelog.SetDefaultProvider(p)
	defer tracelog.SetDefaultProvider(nil)
	if got := tracelog.DefaultProvider(); got != p {
		t.Errorf("DefaultProvider() = %p, want %p", got, p)
	}
}

func TestLazyEvent(t *testing.T) {
	builds := 0
	lazy := tracelog.NewLazy(func() (*tracelog.Event1[uint64], error) {
		builds++
		return tracelog.NewEvent1[uint64](tracelog.EventInfo{ID: 5}, "Counted", "N")
	})
	for i := 0; i < 3; i++ {
		ev, err := lazy.Get()
		if err != nil || ev == nil {
			t.Fatalf("Get: %v, %v", ev, err)
		}
	}
	if builds != 1 {
		t.Errorf("built %d times", builds)
	}

	bad := tracelog.NewLazy(func() (*tracelog.Event0, error) {
		return tracelog.NewEvent0(tracelog.EventInfo{}, "bad\x00")
	})
	if _, err := bad.Get(); !errors.Is(err, tracelog.ErrInvalidName) {
		t.Errorf("got %v, want ErrInvalidName", err)
	}
}
