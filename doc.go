// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tracelog writes self-describing ("manifest-free") trace events.
//
// Each event carries its own field layout as a small metadata blob, so a
// collector can decode it without any out-of-band registration. The layout is
// compiled once per event kind, when the event is declared:
//
//	var parsingStart = tracelog.MustEvent2[string, int32](
//		tracelog.EventInfo{ID: 101, Level: tracelog.LevelVerbose, Opcode: tracelog.OpcodeStart},
//		"ParsingStart", "Filename", "Offset")
//
// and written through a Provider, which owns the enablement state pushed to it
// by the session controller behind its Sink:
//
//	p, err := tracelog.NewProvider(tracelog.IdentityFromName("example"), sink, nil)
//	...
//	p.Register()
//	defer p.Unregister()
//	parsingStart.Write(p, "test", 0)
//
// Write returns immediately when no session wants the event, without
// allocating, so call sites can stay compiled into hot paths.
//
// Related events are correlated with activity ids. An Activity holds the
// current id for one goroutine; ids cross goroutines only as values.
package tracelog
