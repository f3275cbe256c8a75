// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tracelog

import (
	"encoding/binary"
	"strings"

	"golang.org/x/xerrors"
)

// MaxMetadataSize is the largest event metadata or provider trait blob that
// can be built.
const MaxMetadataSize = 0xFF

// headerSize is the u16 total size plus the tag (or reserved) byte that start
// both kinds of blob.
const headerSize = 3

// Field describes one named field of an event.
type Field struct {
	Name string
	Type WireType
}

// AppendField appends the encoding of f, its NUL terminated name followed by
// its type byte, to dst.
// Encoding a field on its own checks only that the field could fit in some
// event; BuildEventMetadata checks the event as a whole.
func AppendField(dst []byte, f Field) ([]byte, error) {
	if err := checkName(f.Name); err != nil {
		return dst, xerrors.Errorf("field %q: %w", f.Name, err)
	}
	if !f.Type.Valid() {
		return dst, xerrors.Errorf("field %q: %v: %w", f.Name, f.Type, ErrInvalidType)
	}
	// the smallest event holding the field has a header and an empty name
	if headerSize+1+fieldSize(f) > MaxMetadataSize {
		return dst, xerrors.Errorf("field %q: %w", f.Name, ErrEncodingTooLarge)
	}
	dst = append(dst, f.Name...)
	return append(dst, 0, byte(f.Type)), nil
}

// EncodeField returns the encoding of a single field.
func EncodeField(f Field) ([]byte, error) {
	return AppendField(nil, f)
}

// BuildEventMetadata returns the metadata blob for an event with the given
// name and fields:
//
//	u16 total size | u8 tag (0) | name NUL | (field name NUL | u8 type)...
//
// The result depends only on the arguments, so it is safe to build the same
// blob more than once.
func BuildEventMetadata(name string, fields ...Field) ([]byte, error) {
	if err := checkName(name); err != nil {
		return nil, xerrors.Errorf("event %q: %w", name, err)
	}
	size := headerSize + len(name) + 1
	for _, f := range fields {
		size += fieldSize(f)
	}
	if size > MaxMetadataSize {
		return nil, xerrors.Errorf("event %q is %d bytes: %w", name, size, ErrEncodingTooLarge)
	}
	b := make([]byte, headerSize, size)
	binary.LittleEndian.PutUint16(b, uint16(size))
	b = append(b, name...)
	b = append(b, 0)
	for _, f := range fields {
		var err error
		if b, err = AppendField(b, f); err != nil {
			return nil, xerrors.Errorf("event %q: %w", name, err)
		}
	}
	return b, nil
}

// BuildProviderTrait returns the trait blob that identifies a provider on
// every event it writes:
//
//	u16 total size | u8 reserved (0) | name NUL
func BuildProviderTrait(name string) ([]byte, error) {
	if err := checkName(name); err != nil {
		return nil, xerrors.Errorf("provider %q: %w", name, err)
	}
	size := headerSize + len(name) + 1
	if size > MaxMetadataSize {
		return nil, xerrors.Errorf("provider %q is %d bytes: %w", name, size, ErrEncodingTooLarge)
	}
	b := make([]byte, headerSize, size)
	binary.LittleEndian.PutUint16(b, uint16(size))
	b = append(b, name...)
	return append(b, 0), nil
}

func fieldSize(f Field) int { return len(f.Name) + 2 }

func checkName(name string) error {
	if strings.IndexByte(name, 0) >= 0 {
		return ErrInvalidName
	}
	return nil
}
