// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tracelog

import (
	"encoding/binary"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// WideString is a string written as NUL terminated UTF-16LE rather than as
// bytes. Like a string field, it is cut at its first NUL.
type WideString string

// HexInt32 is a uint32 that collectors should display in hexadecimal.
type HexInt32 uint32

// HexInt64 is a uint64 that collectors should display in hexadecimal.
type HexInt64 uint64

// Scalar is the set of Go types that can be written as event fields.
// A uintptr is written as TypePointer. Strings are NUL terminated on the
// wire, so a string value is cut at its first NUL.
type Scalar interface {
	string | WideString |
		int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64 |
		float32 | float64 | bool | uintptr | HexInt32 | HexInt64
}

// Value holds one field value of an event, without allocating for any of the
// Scalar types.
type Value struct {
	typ    WireType
	packed uint64
	str    string
}

// WireTypeOf returns the wire type used for values of type T.
func WireTypeOf[T Scalar]() WireType {
	var zero T
	switch any(zero).(type) {
	case string:
		return TypeAnsiString
	case WideString:
		return TypeUnicodeString
	case int8:
		return TypeInt8
	case uint8:
		return TypeUint8
	case int16:
		return TypeInt16
	case uint16:
		return TypeUint16
	case int32:
		return TypeInt32
	case uint32:
		return TypeUint32
	case int64:
		return TypeInt64
	case uint64:
		return TypeUint64
	case float32:
		return TypeFloat
	case float64:
		return TypeDouble
	case bool:
		return TypeBool32
	case uintptr:
		return TypePointer
	case HexInt32:
		return TypeHexInt32
	case HexInt64:
		return TypeHexInt64
	}
	panic("tracelog: unhandled scalar type")
}

// ValueOf returns the Value for v.
func ValueOf[T Scalar](v T) Value {
	switch x := any(v).(type) {
	case string:
		return Value{typ: TypeAnsiString, str: x}
	case WideString:
		return Value{typ: TypeUnicodeString, str: string(x)}
	case int8:
		return Value{typ: TypeInt8, packed: uint64(x)}
	case uint8:
		return Value{typ: TypeUint8, packed: uint64(x)}
	case int16:
		return Value{typ: TypeInt16, packed: uint64(x)}
	case uint16:
		return Value{typ: TypeUint16, packed: uint64(x)}
	case int32:
		return Value{typ: TypeInt32, packed: uint64(x)}
	case uint32:
		return Value{typ: TypeUint32, packed: uint64(x)}
	case int64:
		return Value{typ: TypeInt64, packed: uint64(x)}
	case uint64:
		return Value{typ: TypeUint64, packed: x}
	case float32:
		return Value{typ: TypeFloat, packed: uint64(math.Float32bits(x))}
	case float64:
		return Value{typ: TypeDouble, packed: math.Float64bits(x)}
	case bool:
		if x {
			return Value{typ: TypeBool32, packed: 1}
		}
		return Value{typ: TypeBool32}
	case uintptr:
		return Value{typ: TypePointer, packed: uint64(x)}
	case HexInt32:
		return Value{typ: TypeHexInt32, packed: uint64(x)}
	case HexInt64:
		return Value{typ: TypeHexInt64, packed: uint64(x)}
	}
	panic("tracelog: unhandled scalar type")
}

// Type returns the wire type of the value.
func (v Value) Type() WireType { return v.typ }

// IsString reports whether the value is one of the string types.
func (v Value) IsString() bool {
	return v.typ == TypeAnsiString || v.typ == TypeUnicodeString
}

// IsInt64 reports whether the value is a signed integer.
func (v Value) IsInt64() bool {
	switch v.typ {
	case TypeInt8, TypeInt16, TypeInt32, TypeInt64:
		return true
	}
	return false
}

// IsUint64 reports whether the value is an unsigned or hex integer.
func (v Value) IsUint64() bool {
	switch v.typ {
	case TypeUint8, TypeUint16, TypeUint32, TypeUint64, TypeHexInt32, TypeHexInt64:
		return true
	}
	return false
}

// IsFloat64 reports whether the value is a float or a double.
func (v Value) IsFloat64() bool { return v.typ == TypeFloat || v.typ == TypeDouble }

// IsBool reports whether the value is a bool.
func (v Value) IsBool() bool { return v.typ == TypeBool32 }

// Int64 returns the value of a signed integer.
// It will panic for any value for which IsInt64 is not true.
func (v Value) Int64() int64 {
	if !v.IsInt64() {
		panic("Int64 called on non int64 value")
	}
	return int64(v.packed)
}

// Uint64 returns the value of an unsigned integer.
// It will panic for any value for which IsUint64 is not true.
func (v Value) Uint64() uint64 {
	if !v.IsUint64() {
		panic("Uint64 called on non uint64 value")
	}
	return v.packed
}

// Float64 returns the value of a float or double.
// It will panic for any value for which IsFloat64 is not true.
func (v Value) Float64() float64 {
	switch v.typ {
	case TypeFloat:
		return float64(math.Float32frombits(uint32(v.packed)))
	case TypeDouble:
		return math.Float64frombits(v.packed)
	}
	panic("Float64 called on non float64 value")
}

// Bool returns the value of a bool.
// It will panic for any value for which IsBool is not true.
func (v Value) Bool() bool {
	if !v.IsBool() {
		panic("Bool called on non bool value")
	}
	return v.packed != 0
}

// String returns the value as a string.
// This does not panic for non string values, it formats them instead.
func (v Value) String() string {
	switch {
	case v.IsString():
		return v.str
	case v.IsInt64():
		return strconv.FormatInt(v.Int64(), 10)
	case v.typ == TypeHexInt32 || v.typ == TypeHexInt64:
		return "0x" + strconv.FormatUint(v.packed, 16)
	case v.IsUint64():
		return strconv.FormatUint(v.packed, 10)
	case v.typ == TypeFloat:
		return strconv.FormatFloat(v.Float64(), 'g', -1, 32)
	case v.typ == TypeDouble:
		return strconv.FormatFloat(v.Float64(), 'g', -1, 64)
	case v.IsBool():
		return strconv.FormatBool(v.Bool())
	default:
		return ""
	}
}

// Interface returns the value as the Go type it would have been written
// from.
func (v Value) Interface() interface{} {
	switch v.typ {
	case TypeAnsiString:
		return v.str
	case TypeUnicodeString:
		return WideString(v.str)
	case TypeInt8:
		return int8(v.packed)
	case TypeUint8:
		return uint8(v.packed)
	case TypeInt16:
		return int16(v.packed)
	case TypeUint16:
		return uint16(v.packed)
	case TypeInt32:
		return int32(v.packed)
	case TypeUint32:
		return uint32(v.packed)
	case TypeInt64:
		return int64(v.packed)
	case TypeUint64:
		return v.packed
	case TypeFloat:
		return math.Float32frombits(uint32(v.packed))
	case TypeDouble:
		return math.Float64frombits(v.packed)
	case TypeBool32:
		return v.packed != 0
	case TypeHexInt32:
		return HexInt32(v.packed)
	case TypeHexInt64:
		return HexInt64(v.packed)
	default:
		return nil
	}
}

// Equal reports whether v and o hold the same typed value.
func (v Value) Equal(o Value) bool {
	return v.typ == o.typ && v.packed == o.packed && v.str == o.str
}

// appendValue appends the payload encoding of v to dst.
func appendValue(dst []byte, v Value) []byte {
	switch v.typ {
	case TypeAnsiString:
		s := v.str
		if i := strings.IndexByte(s, 0); i >= 0 {
			s = s[:i]
		}
		dst = append(dst, s...)
		return append(dst, 0)
	case TypeUnicodeString:
		for _, r := range v.str {
			if r == 0 {
				break
			}
			if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError {
				dst = binary.LittleEndian.AppendUint16(dst, uint16(r1))
				dst = binary.LittleEndian.AppendUint16(dst, uint16(r2))
				continue
			}
			dst = binary.LittleEndian.AppendUint16(dst, uint16(r))
		}
		return append(dst, 0, 0)
	case TypeBool32:
		return binary.LittleEndian.AppendUint32(dst, uint32(v.packed))
	}
	switch v.typ.Size() {
	case 1:
		return append(dst, byte(v.packed))
	case 2:
		return binary.LittleEndian.AppendUint16(dst, uint16(v.packed))
	case 4:
		return binary.LittleEndian.AppendUint32(dst, uint32(v.packed))
	default:
		return binary.LittleEndian.AppendUint64(dst, v.packed)
	}
}
