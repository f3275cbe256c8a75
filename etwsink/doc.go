// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package etwsink provides the tracelog.Sink that writes events to Event
// Tracing for Windows.
//
// Sessions are controlled by ETW itself, for example with
//
//	logman start -ets MySession -p {provider-guid} 0 0 -o trace.etl
//
// which enables every registered provider with that id.
//
// The sink is available on windows/amd64 and windows/arm64. On other
// platforms New returns ErrNotSupported.
package etwsink

import "errors"

// ErrNotSupported is returned by New where ETW is not available.
var ErrNotSupported = errors.New("etwsink: ETW is not supported on this platform")
