// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tracelog_test

import (
	"testing"

	"golang.org/x/exp/tracelog"
)

var benchStrings = []string{
	"A value",
	"Some other value",
	"A nice longer value but not too long",
	"V",
	" ",
	"Ä±",
}

func benchProvider(b *testing.B, enable bool) *tracelog.Provider {
	b.Helper()
	sink := &tracelog.NopSink{}
	p, err := tracelog.NewProvider(tracelog.IdentityFromName("Bench"), sink, nil)
	if err != nil {
		b.Fatal(err)
	}
	if err := p.Register(); err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { p.Unregister() })
	if enable {
		sink.Enable(tracelog.LevelNone, 0, 0)
	}
	return p
}

func BenchmarkWriteDisabled(b *testing.B) {
	p := benchProvider(b, false)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		parsingStart.Write(p, benchStrings[i%len(benchStrings)], int32(i))
	}
}

func BenchmarkWriteEnabled(b *testing.B) {
	p := benchProvider(b, true)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		parsingStart.Write(p, benchStrings[i%len(benchStrings)], int32(i))
	}
}

func BenchmarkWriteParallel(b *testing.B) {
	p := benchProvider(b, true)
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			parsingStart.Write(p, benchStrings[i%len(benchStrings)], int32(i))
			i++
		}
	})
}

func BenchmarkBuildEventMetadata(b *testing.B) {
	fields := []tracelog.Field{
		{Name: "Filename", Type: tracelog.TypeAnsiString},
		{Name: "Offset", Type: tracelog.TypeInt32},
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := tracelog.BuildEventMetadata("ParsingStart", fields...); err != nil {
			b.Fatal(err)
		}
	}
}
