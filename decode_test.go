// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tracelog

import (
	"errors"
	"testing"
)

func TestDecodeRecordMalformed(t *testing.T) {
	trait, _ := BuildProviderTrait("p")
	meta, _ := BuildEventMetadata("e", Field{Name: "n", Type: TypeUint16})
	desc := EventInfo{ID: 1}.Descriptor()
	for _, test := range []struct {
		name string
		data []DataDescriptor
	}{
		{"empty", nil},
		{"swapped", []DataDescriptor{{EventMetadata, meta}, {ProviderMetadata, trait}, {UserData, []byte{1, 0}}}},
		{"missing value", []DataDescriptor{{ProviderMetadata, trait}, {EventMetadata, meta}}},
		{"extra value", []DataDescriptor{{ProviderMetadata, trait}, {EventMetadata, meta}, {UserData, []byte{1, 0}}, {UserData, []byte{1}}}},
		{"short value", []DataDescriptor{{ProviderMetadata, trait}, {EventMetadata, meta}, {UserData, []byte{1}}}},
		{"bad trait", []DataDescriptor{{ProviderMetadata, meta}, {EventMetadata, meta}, {UserData, []byte{1, 0}}}},
	} {
		if _, err := DecodeRecord(&desc, nil, nil, test.data); !errors.Is(err, ErrMalformed) {
			t.Errorf("%s: got %v, want ErrMalformed", test.name, err)
		}
	}

	r, err := DecodeRecord(&desc, nil, nil, []DataDescriptor{{ProviderMetadata, trait}, {EventMetadata, meta}, {UserData, []byte{0x34, 0x12}}})
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := r.Value("n"); !ok || v.Uint64() != 0x1234 {
		t.Errorf("field n = %v, %v", v, ok)
	}
	if _, ok := r.Value("missing"); ok {
		t.Error("found a field that is not there")
	}
}
