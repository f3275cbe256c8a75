// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tracelog

import "go.uber.org/atomic"

// Gate holds the enablement state of a provider.
//
// It is written by the session controller and read by any number of
// goroutines writing events, with no lock on either side. Each field is read
// and written on its own, so a reader racing with Update may see a mix of the
// old and new state. At worst one event around the transition is written or
// dropped when it should not have been; that is the price of a check that
// costs a single load in the common disabled case.
type Gate struct {
	enabled  atomic.Bool
	level    atomic.Uint32
	keywords atomic.Uint64
}

// Update replaces the enablement state.
// It is meant to be called only from the controller callback of a single
// session.
func (g *Gate) Update(enabled bool, level Level, keywords uint64) {
	if !enabled {
		g.enabled.Store(false)
		g.level.Store(uint32(level))
		g.keywords.Store(keywords)
		return
	}
	g.level.Store(uint32(level))
	g.keywords.Store(keywords)
	g.enabled.Store(true)
}
