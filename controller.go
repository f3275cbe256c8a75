// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tracelog

import (
	"sync"

	"github.com/Microsoft/go-winio/pkg/guid"
	"golang.org/x/xerrors"
)

// Controller implements the registration and control half of a Sink for
// sinks that live in the same process as their providers.
// It models a single session: Enable and Disable are delivered to every
// registered provider, and a provider registering while the session is
// enabled is told so straight away.
//
// The zero Controller is ready to use. Sinks embed it and add Write.
type Controller struct {
	// deliver serializes control callbacks so that providers observe
	// session changes in order.
	deliver sync.Mutex

	mu        sync.Mutex
	last      Handle
	providers map[Handle]registration
	session   session
}

type registration struct {
	id      guid.GUID
	name    string
	control ControlFunc
}

type session struct {
	enabled  bool
	level    Level
	matchAny uint64
	matchAll uint64
}

// Register records the provider and returns its handle.
func (c *Controller) Register(id guid.GUID, name string, control ControlFunc) (Handle, error) {
	c.deliver.Lock()
	defer c.deliver.Unlock()
	c.mu.Lock()
	if c.providers == nil {
		c.providers = make(map[Handle]registration)
	}
	c.last++
	h := c.last
	c.providers[h] = registration{id: id, name: name, control: control}
	s := c.session
	c.mu.Unlock()
	if s.enabled && control != nil {
		control(s.enabled, s.level, s.matchAny, s.matchAll)
	}
	return h, nil
}

// Unregister forgets the provider with handle h. Its control function is not
// called again once Unregister returns.
func (c *Controller) Unregister(h Handle) error {
	c.deliver.Lock()
	defer c.deliver.Unlock()
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.providers[h]; !ok {
		return xerrors.Errorf("handle %d: %w", h, ErrNotRegistered)
	}
	delete(c.providers, h)
	return nil
}

// Enable starts the session, or changes its filter if it already runs.
func (c *Controller) Enable(level Level, matchAny, matchAll uint64) {
	c.set(session{enabled: true, level: level, matchAny: matchAny, matchAll: matchAll})
}

// Disable stops the session.
func (c *Controller) Disable() {
	c.set(session{})
}

func (c *Controller) set(s session) {
	c.deliver.Lock()
	defer c.deliver.Unlock()
	c.mu.Lock()
	c.session = s
	controls := make([]ControlFunc, 0, len(c.providers))
	for _, r := range c.providers {
		if r.control != nil {
			controls = append(controls, r.control)
		}
	}
	c.mu.Unlock()
	for _, control := range controls {
		control(s.enabled, s.level, s.matchAny, s.matchAll)
	}
}

// Registered reports whether h is a live registration, and if so the
// identity it was registered with.
func (c *Controller) Registered(h Handle) (Identity, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.providers[h]
	if !ok {
		return Identity{}, false
	}
	return Identity{Name: r.name, ID: r.id}, true
}
