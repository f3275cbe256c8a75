// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build disable_tracelog

package tracelog_test

import (
	"testing"

	"golang.org/x/exp/tracelog"
)

func TestGateCompiledOut(t *testing.T) {
	var g tracelog.Gate
	g.Update(true, tracelog.LevelVerbose, 0xff)
	if g.Enabled() || g.EnabledFor(tracelog.LevelCritical, 0) {
		t.Error("gate reports enabled with tracing compiled out")
	}
	if g.Level() != tracelog.LevelNone || g.Keywords() != 0 {
		t.Errorf("gate reports level %v, keywords %#x with tracing compiled out", g.Level(), g.Keywords())
	}
}
