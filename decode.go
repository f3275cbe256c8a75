// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tracelog

import (
	"bytes"
	"encoding/binary"
	"unicode/utf16"

	"golang.org/x/xerrors"
)

// The decoding half of the encoding is what a collector does with the
// descriptor lists it receives. Sinks that turn events into something other
// than bytes use it, as do tests.

// Schema is the decoded form of an event metadata blob.
type Schema struct {
	Name   string
	Fields []Field
}

// ParseEventMetadata decodes a blob built by BuildEventMetadata.
func ParseEventMetadata(b []byte) (Schema, error) {
	body, err := blobBody(b)
	if err != nil {
		return Schema{}, err
	}
	name, body, ok := cutString(body)
	if !ok {
		return Schema{}, xerrors.Errorf("event name: %w", ErrMalformed)
	}
	md := Schema{Name: name}
	for len(body) > 0 {
		var f Field
		if f.Name, body, ok = cutString(body); !ok || len(body) == 0 {
			return Schema{}, xerrors.Errorf("event %q: field %d: %w", name, len(md.Fields), ErrMalformed)
		}
		f.Type, body = WireType(body[0]), body[1:]
		if !f.Type.Valid() {
			return Schema{}, xerrors.Errorf("event %q: field %q: %w", name, f.Name, ErrInvalidType)
		}
		md.Fields = append(md.Fields, f)
	}
	return md, nil
}

// ParseProviderTrait decodes a blob built by BuildProviderTrait and returns
// the provider name.
func ParseProviderTrait(b []byte) (string, error) {
	body, err := blobBody(b)
	if err != nil {
		return "", err
	}
	name, rest, ok := cutString(body)
	if !ok || len(rest) != 0 {
		return "", xerrors.Errorf("provider trait: %w", ErrMalformed)
	}
	return name, nil
}

// blobBody checks the header of a blob and returns what follows it.
func blobBody(b []byte) ([]byte, error) {
	if len(b) < headerSize {
		return nil, xerrors.Errorf("%d byte blob: %w", len(b), ErrMalformed)
	}
	if size := int(binary.LittleEndian.Uint16(b)); size != len(b) {
		return nil, xerrors.Errorf("blob claims %d bytes, has %d: %w", size, len(b), ErrMalformed)
	}
	if b[2] != 0 {
		return nil, xerrors.Errorf("blob tag %#x: %w", b[2], ErrMalformed)
	}
	return b[headerSize:], nil
}

func cutString(b []byte) (string, []byte, bool) {
	i := bytes.IndexByte(b, 0)
	if i < 0 {
		return "", b, false
	}
	return string(b[:i]), b[i+1:], true
}

// DecodeValue decodes the payload of one field of type t.
func DecodeValue(t WireType, data []byte) (Value, error) {
	switch t {
	case TypeAnsiString:
		s, rest, ok := cutString(data)
		if !ok || len(rest) != 0 {
			return Value{}, xerrors.Errorf("%v value: %w", t, ErrMalformed)
		}
		return Value{typ: t, str: s}, nil
	case TypeUnicodeString:
		if len(data) < 2 || len(data)%2 != 0 || data[len(data)-1] != 0 || data[len(data)-2] != 0 {
			return Value{}, xerrors.Errorf("%v value: %w", t, ErrMalformed)
		}
		units := make([]uint16, 0, len(data)/2-1)
		for i := 0; i+2 < len(data); i += 2 {
			units = append(units, binary.LittleEndian.Uint16(data[i:]))
		}
		return Value{typ: t, str: string(utf16.Decode(units))}, nil
	}
	if !t.Valid() {
		return Value{}, xerrors.Errorf("%v: %w", t, ErrInvalidType)
	}
	if len(data) != t.Size() {
		return Value{}, xerrors.Errorf("%v value of %d bytes: %w", t, len(data), ErrMalformed)
	}
	v := Value{typ: t}
	switch t {
	case TypeInt8:
		v.packed = uint64(int8(data[0]))
	case TypeUint8:
		v.packed = uint64(data[0])
	case TypeInt16:
		v.packed = uint64(int16(binary.LittleEndian.Uint16(data)))
	case TypeUint16:
		v.packed = uint64(binary.LittleEndian.Uint16(data))
	case TypeInt32:
		v.packed = uint64(int32(binary.LittleEndian.Uint32(data)))
	case TypeUint32, TypeHexInt32, TypeFloat:
		v.packed = uint64(binary.LittleEndian.Uint32(data))
	case TypeBool32:
		if binary.LittleEndian.Uint32(data) != 0 {
			v.packed = 1
		}
	default:
		v.packed = binary.LittleEndian.Uint64(data)
	}
	return v, nil
}

// Record is a fully decoded event, independent of the buffers it was decoded
// from.
type Record struct {
	Provider   string
	Descriptor EventDescriptor
	Activity   ActivityID
	Related    ActivityID
	Name       string
	Fields     []Field
	Values     []Value
}

// DecodeRecord decodes the arguments of a Sink.Write call.
func DecodeRecord(desc *EventDescriptor, activity, related *ActivityID, data []DataDescriptor) (Record, error) {
	var r Record
	if desc != nil {
		r.Descriptor = *desc
	}
	if activity != nil {
		r.Activity = *activity
	}
	if related != nil {
		r.Related = *related
	}
	if len(data) < 2 || data[0].Type != ProviderMetadata || data[1].Type != EventMetadata {
		return Record{}, xerrors.Errorf("descriptor list: %w", ErrMalformed)
	}
	var err error
	if r.Provider, err = ParseProviderTrait(data[0].Data); err != nil {
		return Record{}, err
	}
	md, err := ParseEventMetadata(data[1].Data)
	if err != nil {
		return Record{}, err
	}
	r.Name, r.Fields = md.Name, md.Fields
	values := data[2:]
	if len(values) != len(md.Fields) {
		return Record{}, xerrors.Errorf("event %q has %d fields and %d values: %w", md.Name, len(md.Fields), len(values), ErrMalformed)
	}
	r.Values = make([]Value, len(values))
	for i, d := range values {
		if r.Values[i], err = DecodeValue(md.Fields[i].Type, d.Data); err != nil {
			return Record{}, xerrors.Errorf("event %q: field %q: %w", md.Name, md.Fields[i].Name, err)
		}
	}
	return r, nil
}

// Value returns the value of the named field, and whether there was one.
func (r *Record) Value(name string) (Value, bool) {
	for i, f := range r.Fields {
		if f.Name == name && i < len(r.Values) {
			return r.Values[i], true
		}
	}
	return Value{}, false
}
