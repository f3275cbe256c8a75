// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !disable_tracelog

package tracelog_test

import (
	"context"
	"sync"
	"testing"

	"golang.org/x/exp/tracelog"
	"golang.org/x/exp/tracelog/tracelogtest"
)

func TestNewActivityID(t *testing.T) {
	seen := make(map[tracelog.ActivityID]bool)
	for i := 0; i < 1000; i++ {
		id := tracelog.NewActivityID()
		if id.IsNil() {
			t.Fatal("nil activity id")
		}
		if seen[id] {
			t.Fatalf("duplicate activity id %v", id)
		}
		seen[id] = true
	}
}

func TestActivityNesting(t *testing.T) {
	var a tracelog.Activity
	if a.Active() || !a.Current().IsNil() {
		t.Fatal("zero Activity is not idle")
	}
	outer := a.Enter()
	if a.Current() != outer.ID() || !outer.Related().IsNil() {
		t.Errorf("outer: current %v related %v", a.Current(), outer.Related())
	}
	inner := a.Enter()
	if a.Current() != inner.ID() {
		t.Errorf("inner: current %v, want %v", a.Current(), inner.ID())
	}
	if inner.Related() != outer.ID() {
		t.Errorf("inner related %v, want %v", inner.Related(), outer.ID())
	}
	if c := a.Correlation(); c.ID != inner.ID() || !c.Related.IsNil() {
		t.Errorf("correlation inside inner: %+v", c)
	}
	inner.Exit()
	if a.Current() != outer.ID() {
		t.Errorf("after inner exit: current %v, want %v", a.Current(), outer.ID())
	}
	outer.Exit()
	if a.Active() {
		t.Errorf("after outer exit: current %v", a.Current())
	}
}

func TestActivityAcrossGoroutines(t *testing.T) {
	p, rec := tracelogtest.NewProvider(t, "Activity.Test")
	start := tracelog.MustEvent0(tracelog.EventInfo{ID: 1, Opcode: tracelog.OpcodeStart}, "Work")
	stop := tracelog.MustEvent0(tracelog.EventInfo{ID: 2, Opcode: tracelog.OpcodeStop}, "Work")

	var owner tracelog.Activity
	request := owner.Enter()
	start.WriteActivity(p, request.Correlation())

	ctx := tracelog.WithActivityID(context.Background(), owner.Current())
	var worker tracelog.ActivityID
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		var a tracelog.Activity
		job := a.EnterFrom(tracelog.ActivityIDFromContext(ctx))
		defer job.Exit()
		start.WriteActivity(p, job.Correlation())
		stop.WriteActivity(p, a.Correlation())
		worker = job.ID()
	}()
	wg.Wait()

	stop.WriteActivity(p, owner.Correlation())
	request.Exit()

	records := rec.Records()
	if len(records) != 4 {
		t.Fatalf("got %d records, want 4", len(records))
	}
	check := func(i int, activity, related tracelog.ActivityID) {
		t.Helper()
		if r := records[i]; r.Activity != activity || r.Related != related {
			t.Errorf("record %d: activity %v related %v, want %v %v", i, r.Activity, r.Related, activity, related)
		}
	}
	var none tracelog.ActivityID
	check(0, request.ID(), none)
	check(1, worker, request.ID())
	check(2, worker, none)
	check(3, request.ID(), none)
}

func TestEnterFromRestoresPrior(t *testing.T) {
	var a tracelog.Activity
	own := a.Enter()
	parent := tracelog.NewActivityID()
	child := a.EnterFrom(parent)
	if child.Related() != parent {
		t.Errorf("related %v, want %v", child.Related(), parent)
	}
	child.Exit()
	if a.Current() != own.ID() {
		t.Errorf("after exit: current %v, want %v", a.Current(), own.ID())
	}
	own.Exit()
}

func TestActivityIDFromContext(t *testing.T) {
	if id := tracelog.ActivityIDFromContext(context.Background()); !id.IsNil() {
		t.Errorf("empty context: %v", id)
	}
	id := tracelog.NewActivityID()
	if got := tracelog.ActivityIDFromContext(tracelog.WithActivityID(context.Background(), id)); got != id {
		t.Errorf("got %v, want %v", got, id)
	}
}
