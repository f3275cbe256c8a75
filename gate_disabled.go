// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build disable_tracelog

package tracelog

func (g *Gate) Enabled() bool                                { return false }
func (g *Gate) EnabledFor(level Level, keywords uint64) bool { return false }
func (g *Gate) Level() Level                                 { return LevelNone }
func (g *Gate) Keywords() uint64                             { return 0 }
