// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tracelog

import (
	"sync"

	"github.com/Microsoft/go-winio/pkg/guid"
	"github.com/go-logr/logr"
	"go.uber.org/atomic"
	"golang.org/x/xerrors"
)

// Identity names a provider. ID should always map 1:1 to Name.
type Identity struct {
	Name string
	ID   guid.GUID
}

// Options configures a Provider.
type Options struct {
	// Logger receives diagnostics about registration and session changes.
	// It is never used while writing events.
	Logger logr.Logger
}

// Provider writes events on behalf of one component of an application.
//
// It carries the enablement state its Sink pushes to it, which every typed
// event consults before doing any work, and the trait blob that identifies
// it on every event. A Provider is safe for concurrent use.
type Provider struct {
	identity Identity
	sink     Sink
	log      logr.Logger
	trait    []byte
	gate     Gate
	handle   atomic.Uint64

	mu sync.Mutex // serializes Register and Unregister
}

// NewProvider creates a provider that will register with sink.
// If id.ID is zero it is derived from id.Name.
// The provider does not receive any session state until Register is called.
func NewProvider(id Identity, sink Sink, opts *Options) (*Provider, error) {
	if sink == nil {
		panic("sink must not be nil")
	}
	if id.ID == (guid.GUID{}) {
		id.ID = IdentityFromName(id.Name).ID
	}
	trait, err := BuildProviderTrait(id.Name)
	if err != nil {
		return nil, err
	}
	p := &Provider{
		identity: id,
		sink:     sink,
		trait:    trait,
		log:      logr.Discard(),
	}
	if opts != nil && opts.Logger.GetSink() != nil {
		p.log = opts.Logger
	}
	p.log = p.log.WithValues("provider", id.Name)
	return p, nil
}

// Identity returns the name and id of the provider.
func (p *Provider) Identity() Identity { return p.identity }

// Register registers the provider with its sink. From then on the sink may
// enable and disable the provider at any time.
func (p *Provider) Register() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.handle.Load() != 0 {
		return xerrors.Errorf("register %q: %w", p.identity.Name, ErrAlreadyRegistered)
	}
	h, err := p.sink.Register(p.identity.ID, p.identity.Name, p.control)
	if err != nil {
		return xerrors.Errorf("register %q: %w", p.identity.Name, err)
	}
	p.handle.Store(uint64(h))
	p.log.V(1).Info("registered", "id", p.identity.ID.String(), "handle", uint64(h))
	return nil
}

// Unregister detaches the provider from its sink. Events written afterwards,
// including by goroutines racing with Unregister, are silently dropped.
// Unregistering a provider that is not registered does nothing.
func (p *Provider) Unregister() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	h := Handle(p.handle.Swap(0))
	if h == 0 {
		return nil
	}
	err := p.sink.Unregister(h)
	// no control callback arrives once the sink has let go of the handle
	p.gate.Update(false, LevelNone, 0)
	if err != nil {
		return xerrors.Errorf("unregister %q: %w", p.identity.Name, err)
	}
	p.log.V(1).Info("unregistered", "handle", uint64(h))
	return nil
}

// Close is Unregister.
func (p *Provider) Close() error { return p.Unregister() }

// Registered reports whether the provider holds a registration.
func (p *Provider) Registered() bool { return p.handle.Load() != 0 }

// IsEnabled reports whether any session is listening to the provider.
// It is cheap enough to guard the construction of rare events.
func (p *Provider) IsEnabled() bool {
	return p != nil && p.gate.Enabled()
}

// IsEnabledFor reports whether a session wants events with descriptor d.
// Use it to guard events whose arguments are costly to compute.
func (p *Provider) IsEnabledFor(d EventDescriptor) bool {
	return p != nil && p.gate.EnabledFor(d.Level, d.Keywords)
}

// Level returns the level the session is filtering at.
func (p *Provider) Level() Level { return p.gate.Level() }

// Keywords returns the keyword mask of the session.
func (p *Provider) Keywords() uint64 { return p.gate.Keywords() }

// control is the ControlFunc handed to the sink.
// Only matchAny takes part in filtering; matchAll is accepted and ignored.
func (p *Provider) control(enabled bool, level Level, matchAny, matchAll uint64) {
	p.gate.Update(enabled, level, matchAny)
	p.log.V(1).Info("session changed",
		"enabled", enabled,
		"level", level.String(),
		"matchAny", matchAny,
		"matchAll", matchAll)
}
