// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tracelog

import (
	"crypto/sha1"
	"encoding/binary"
	"strings"
	"unicode/utf16"

	"github.com/Microsoft/go-winio/pkg/guid"
)

// providerNamespace is the namespace EventSource hashes provider names in.
var providerNamespace = guid.GUID{
	Data1: 0x482C2DB2,
	Data2: 0xC390,
	Data3: 0x47C8,
	Data4: [8]byte{0x87, 0xF8, 0x1A, 0x15, 0xBF, 0xC1, 0x30, 0xFB},
}

// IdentityFromName returns the identity of the provider called name, with
// the id that .NET's EventSource and the TraceLogging tools derive from it.
//
// The id is an RFC 4122 version 5 UUID with three differences: the name is
// upper-cased and hashed as big-endian UTF-16, no variant is set, and the
// result is read as a little-endian GUID.
func IdentityFromName(name string) Identity {
	h := sha1.New()
	ns := providerNamespace.ToArray()
	h.Write(ns[:])
	binary.Write(h, binary.BigEndian, utf16.Encode([]rune(strings.ToUpper(name))))

	sum := h.Sum(nil)
	sum[7] = (sum[7] & 0x0f) | 0x50

	var a [16]byte
	copy(a[:], sum)
	return Identity{Name: name, ID: guid.FromWindowsArray(a)}
}
