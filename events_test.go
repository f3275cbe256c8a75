// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tracelog_test

import "golang.org/x/exp/tracelog"

var (
	appLaunched  = tracelog.MustEvent0(tracelog.EventInfo{ID: 100, Level: tracelog.LevelInfo}, "AppLaunched")
	parsingStart = tracelog.MustEvent2[string, int32](
		tracelog.EventInfo{ID: 101, Level: tracelog.LevelVerbose, Opcode: tracelog.OpcodeStart},
		"ParsingStart", "Filename", "Offset")
	tagged = tracelog.MustEvent1[bool](
		tracelog.EventInfo{ID: 102, Level: tracelog.LevelWarning, Keywords: 0x10},
		"Tagged", "Flag")
)
