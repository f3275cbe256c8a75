// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !disable_tracelog

package tracelog_test

import (
	"fmt"

	"golang.org/x/exp/tracelog"
	"golang.org/x/exp/tracelog/tracelogtest"
)

func Example() {
	sink := &tracelogtest.Recorder{}
	p, err := tracelog.NewProvider(tracelog.IdentityFromName("MyCompany.MyComponent"), sink, nil)
	if err != nil {
		panic(err)
	}
	p.Register()
	defer p.Unregister()

	launched := tracelog.MustEvent0(tracelog.EventInfo{ID: 1, Level: tracelog.LevelInfo}, "AppLaunched")
	parsing := tracelog.MustEvent2[string, int32](
		tracelog.EventInfo{ID: 2, Level: tracelog.LevelVerbose}, "ParsingStart", "Filename", "Offset")

	launched.Write(p) // no session yet: dropped
	sink.Enable(tracelog.LevelInfo, 0, 0)
	launched.Write(p)
	parsing.Write(p, "test", 0) // too verbose: dropped

	for _, r := range sink.Records() {
		fmt.Println(r.Provider, r.Name, r.Descriptor.Level)
	}
	// Output:
	// MyCompany.MyComponent AppLaunched info
}

func ExampleActivity() {
	sink := &tracelogtest.Recorder{}
	sink.Enable(tracelog.LevelNone, 0, 0)
	p, _ := tracelog.NewProvider(tracelog.IdentityFromName("Activities"), sink, nil)
	p.Register()
	defer p.Unregister()

	start := tracelog.MustEvent1[string](tracelog.EventInfo{ID: 1, Opcode: tracelog.OpcodeStart}, "Request", "Path")
	stop := tracelog.MustEvent0(tracelog.EventInfo{ID: 2, Opcode: tracelog.OpcodeStop}, "Request")

	var a tracelog.Activity
	outer := a.Enter()
	start.WriteActivity(p, outer.Correlation(), "/")
	inner := a.Enter()
	start.WriteActivity(p, inner.Correlation(), "/child")
	stop.WriteActivity(p, a.Correlation())
	inner.Exit()
	stop.WriteActivity(p, a.Correlation())
	outer.Exit()

	for _, r := range sink.Records() {
		fmt.Println(r.Descriptor.Opcode,
			r.Activity == outer.ID(), r.Activity == inner.ID(), r.Related == outer.ID())
	}
	// Output:
	// start true false false
	// start false true true
	// stop false true false
	// stop true false false
}
