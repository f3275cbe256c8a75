// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !disable_tracelog

package gokit_test

import (
	"context"
	"testing"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/tracelog"
	"golang.org/x/exp/tracelog/adapter/gokit"
	"golang.org/x/exp/tracelog/adapter/internal/logevent"
	"golang.org/x/exp/tracelog/tracelogtest"
)

func Test(t *testing.T) {
	p, rec := tracelogtest.NewProvider(t, "Gokit.Test")
	id := tracelog.NewActivityID()
	ctx := tracelog.WithActivityID(context.Background(), id)

	l := log.With(gokit.NewLogger(p), "logger", "svc")
	l.Log(ctx, "msg", "mess", "traceID", 17, "resource", "R")
	level.Warn(l).Log("msg", "careful")
	level.Debug(l).Log("message", "details", "n", 1)

	type line struct {
		Level                   tracelog.Level
		Activity                tracelog.ActivityID
		Logger, Message, Fields string
	}
	var got []line
	for _, r := range rec.Records() {
		if r.Name != logevent.Name {
			continue
		}
		got = append(got, line{r.Descriptor.Level, r.Activity, r.Values[0].String(), r.Values[1].String(), r.Values[2].String()})
	}
	var none tracelog.ActivityID
	want := []line{
		{tracelog.LevelInfo, id, "svc", "mess", "traceID=17 resource=R"},
		{tracelog.LevelWarning, none, "svc", "careful", ""},
		{tracelog.LevelVerbose, none, "svc", "details", "n=1"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}
