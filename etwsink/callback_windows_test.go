// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows && (amd64 || arm64)

package etwsink

import (
	"testing"

	"golang.org/x/exp/tracelog"
)

type controlCall struct {
	enabled  bool
	level    tracelog.Level
	matchAny uint64
}

func TestProviderCallbackNarrowArguments(t *testing.T) {
	var calls []controlCall
	registrationsMu.Lock()
	nextKey++
	key := nextKey
	registrations[key] = func(enabled bool, level tracelog.Level, matchAny, matchAll uint64) {
		calls = append(calls, controlCall{enabled, level, matchAny})
	}
	registrationsMu.Unlock()
	defer func() {
		registrationsMu.Lock()
		delete(registrations, key)
		registrationsMu.Unlock()
	}()

	// only the low 32 bits of IsEnabled and the low 8 bits of Level count
	const junk = uintptr(0xdead) << 40
	providerCallback(nil, junk|controlEnable, junk|uintptr(tracelog.LevelWarning), 0x10, 0, 0, key)
	providerCallback(nil, junk|controlCaptureState, junk, 0, 0, 0, key)
	providerCallback(nil, junk|controlDisable, junk, 0, 0, 0, key)

	want := []controlCall{
		{true, tracelog.LevelWarning, 0x10},
		{false, tracelog.LevelNone, 0},
	}
	if len(calls) != len(want) {
		t.Fatalf("got %d control calls %v, want %v", len(calls), calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d: got %+v, want %+v", i, calls[i], want[i])
		}
	}
}
