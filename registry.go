// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tracelog

import "go.uber.org/atomic"

var defaultProvider atomic.Pointer[Provider]

// SetDefaultProvider sets the provider used by code that has no provider of
// its own, such as the logging adapters when given a nil provider.
// Set it after the provider is registered and clear it, by passing nil,
// before unregistering; events written through a nil provider are dropped.
func SetDefaultProvider(p *Provider) {
	defaultProvider.Store(p)
}

// DefaultProvider returns the provider set by SetDefaultProvider, or nil.
func DefaultProvider() *Provider {
	return defaultProvider.Load()
}
