// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows && (amd64 || arm64)

package etwsink_test

import (
	"errors"
	"testing"

	"golang.org/x/exp/tracelog"
	"golang.org/x/exp/tracelog/etwsink"
)

const testProvider = "golang-tracelog-etwsink-test"

func TestProviderLifecycle(t *testing.T) {
	sink, err := etwsink.New()
	if err != nil {
		t.Fatal(err)
	}
	p, err := tracelog.NewProvider(tracelog.IdentityFromName(testProvider), sink, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Register(); err != nil {
		t.Fatal(err)
	}
	ev := tracelog.MustEvent2[string, int32](tracelog.EventInfo{ID: 1, Level: tracelog.LevelInfo}, "ParsingStart", "Filename", "Offset")
	if err := ev.Write(p, "test", 0); err != nil {
		t.Fatal(err)
	}
	if err := p.Unregister(); err != nil {
		t.Fatal(err)
	}
}

func TestWrite(t *testing.T) {
	// EventWriteTransfer succeeds whether or not a session listens
	sink, err := etwsink.New()
	if err != nil {
		t.Fatal(err)
	}
	id := tracelog.IdentityFromName(testProvider)
	h, err := sink.Register(id.ID, id.Name, nil)
	if err != nil {
		t.Fatal(err)
	}
	trait, _ := tracelog.BuildProviderTrait(id.Name)
	meta, _ := tracelog.BuildEventMetadata("Flag", tracelog.Field{Name: "On", Type: tracelog.TypeBool32})
	desc := tracelog.EventInfo{ID: 2, Level: tracelog.LevelInfo}.Descriptor()
	activity := tracelog.NewActivityID()
	data := []tracelog.DataDescriptor{
		{Type: tracelog.ProviderMetadata, Data: trait},
		{Type: tracelog.EventMetadata, Data: meta},
		{Type: tracelog.UserData, Data: []byte{1, 0, 0, 0}},
	}
	if err := sink.Write(h, &desc, &activity, nil, data); err != nil {
		t.Errorf("Write: %v", err)
	}
	if err := sink.Unregister(h); err != nil {
		t.Fatal(err)
	}
	if err := sink.Unregister(h); !errors.Is(err, tracelog.ErrNotRegistered) {
		t.Errorf("second Unregister: got %v", err)
	}
}
