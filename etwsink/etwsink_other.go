// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !(windows && (amd64 || arm64))

package etwsink

import (
	"github.com/Microsoft/go-winio/pkg/guid"
	"golang.org/x/exp/tracelog"
)

// Sink is the ETW tracelog.Sink. It cannot be created on this platform.
type Sink struct{}

var _ tracelog.Sink = (*Sink)(nil)

// New returns ErrNotSupported.
func New() (*Sink, error) { return nil, ErrNotSupported }

func (*Sink) Register(guid.GUID, string, tracelog.ControlFunc) (tracelog.Handle, error) {
	return 0, ErrNotSupported
}

func (*Sink) Unregister(tracelog.Handle) error { return ErrNotSupported }

func (*Sink) Write(tracelog.Handle, *tracelog.EventDescriptor, *tracelog.ActivityID, *tracelog.ActivityID, []tracelog.DataDescriptor) error {
	return ErrNotSupported
}
