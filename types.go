// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tracelog

import (
	"math/bits"
	"strconv"
)

// WireType is the encoding of a single event field, as understood by the
// collector. The values match the TraceLogging input types.
type WireType uint8

const (
	TypeUnicodeString = WireType(1) // NUL terminated UTF-16LE
	TypeAnsiString    = WireType(2) // NUL terminated bytes
	TypeInt8          = WireType(3)
	TypeUint8         = WireType(4)
	TypeInt16         = WireType(5)
	TypeUint16        = WireType(6)
	TypeInt32         = WireType(7)
	TypeUint32        = WireType(8)
	TypeInt64         = WireType(9)
	TypeUint64        = WireType(10)
	TypeFloat         = WireType(11)
	TypeDouble        = WireType(12)
	TypeBool32        = WireType(13)
	TypeHexInt32      = WireType(20)
	TypeHexInt64      = WireType(21)

	// TypePointer is the hex integer type with the width of a pointer.
	TypePointer = TypeHexInt32 + WireType(bits.UintSize/64)
)

// Valid reports whether t is one of the defined wire types.
func (t WireType) Valid() bool {
	switch t {
	case TypeUnicodeString, TypeAnsiString,
		TypeInt8, TypeUint8, TypeInt16, TypeUint16,
		TypeInt32, TypeUint32, TypeInt64, TypeUint64,
		TypeFloat, TypeDouble, TypeBool32,
		TypeHexInt32, TypeHexInt64:
		return true
	default:
		return false
	}
}

// Size returns the number of bytes a value of this type occupies in an event
// payload, or 0 for the variable length string types.
func (t WireType) Size() int {
	switch t {
	case TypeInt8, TypeUint8:
		return 1
	case TypeInt16, TypeUint16:
		return 2
	case TypeInt32, TypeUint32, TypeFloat, TypeBool32, TypeHexInt32:
		return 4
	case TypeInt64, TypeUint64, TypeDouble, TypeHexInt64:
		return 8
	default:
		return 0
	}
}

func (t WireType) String() string {
	switch t {
	case TypeUnicodeString:
		return "unicode"
	case TypeAnsiString:
		return "ansi"
	case TypeInt8:
		return "int8"
	case TypeUint8:
		return "uint8"
	case TypeInt16:
		return "int16"
	case TypeUint16:
		return "uint16"
	case TypeInt32:
		return "int32"
	case TypeUint32:
		return "uint32"
	case TypeInt64:
		return "int64"
	case TypeUint64:
		return "uint64"
	case TypeFloat:
		return "float"
	case TypeDouble:
		return "double"
	case TypeBool32:
		return "bool32"
	case TypeHexInt32:
		return "hexint32"
	case TypeHexInt64:
		return "hexint64"
	default:
		return "type(" + strconv.Itoa(int(t)) + ")"
	}
}
