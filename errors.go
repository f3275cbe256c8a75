// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tracelog

import "errors"

var (
	// ErrEncodingTooLarge is returned when a metadata or trait blob would not
	// fit in MaxMetadataSize bytes.
	ErrEncodingTooLarge = errors.New("tracelog: encoding too large")

	// ErrInvalidName is returned for names that cannot be NUL terminated.
	ErrInvalidName = errors.New("tracelog: name contains NUL")

	// ErrInvalidType is returned for a field with an undefined WireType.
	ErrInvalidType = errors.New("tracelog: invalid wire type")

	// ErrMalformed is returned when decoding bytes that were not produced by
	// this encoding.
	ErrMalformed = errors.New("tracelog: malformed encoding")

	// ErrAlreadyRegistered is returned by Register on a registered provider.
	ErrAlreadyRegistered = errors.New("tracelog: provider already registered")

	// ErrNotRegistered is returned by sinks asked to unregister an unknown
	// handle.
	ErrNotRegistered = errors.New("tracelog: handle not registered")
)
