// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !disable_tracelog

package tracelog

// Enabled reports whether any session is listening.
func (g *Gate) Enabled() bool {
	return g.enabled.Load()
}

// EnabledFor reports whether a session wants events with the given level and
// keywords.
func (g *Gate) EnabledFor(level Level, keywords uint64) bool {
	if !g.enabled.Load() {
		return false
	}
	if level != LevelNone {
		if limit := Level(g.level.Load()); limit != LevelNone && level > limit {
			return false
		}
	}
	return keywords == 0 || keywords&g.keywords.Load() != 0
}

// Level returns the most verbose level the session wants, or LevelNone if it
// does not filter by level.
func (g *Gate) Level() Level { return Level(g.level.Load()) }

// Keywords returns the keyword mask of the session.
func (g *Gate) Keywords() uint64 { return g.keywords.Load() }
