// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tracelog

import (
	"context"
	"encoding/binary"
	"time"

	"github.com/Microsoft/go-winio/pkg/guid"
	"go.uber.org/atomic"
)

// ActivityID identifies an activity: a unit of work whose events a collector
// should group together. The zero ActivityID means no activity.
type ActivityID guid.GUID

var (
	activityBase = newActivityBase()
	activitySeq  atomic.Uint64
)

func newActivityBase() guid.GUID {
	g, err := guid.NewV4()
	if err != nil {
		// ids only need to be unique within the process
		n := uint64(time.Now().UnixNano())
		g = guid.GUID{Data1: uint32(n >> 32), Data2: uint16(n >> 16), Data3: uint16(n)}
	}
	return g
}

// NewActivityID returns an id that is unique within the process and never
// nil. It does not allocate.
func NewActivityID() ActivityID {
	id := ActivityID(activityBase)
	binary.BigEndian.PutUint64(id.Data4[:], activitySeq.Inc())
	return id
}

// IsNil reports whether id is the zero ActivityID.
func (id ActivityID) IsNil() bool { return id == ActivityID{} }

func (id ActivityID) String() string { return guid.GUID(id).String() }

// Correlation is the pair of activity ids attached to a single event.
// Related is normally only set on the start event of an activity, where it
// names the activity that caused it.
type Correlation struct {
	ID      ActivityID
	Related ActivityID
}

// Activity tracks the current activity of one goroutine.
//
// An Activity must never be shared between goroutines. To continue an
// activity on another goroutine, pass the value of Current and call
// EnterFrom with it on an Activity owned by that goroutine.
//
// The zero Activity is idle and ready to use.
type Activity struct {
	current ActivityID
}

// Current returns the id of the current activity, or the nil id when idle.
func (a *Activity) Current() ActivityID { return a.current }

// Active reports whether there is a current activity.
func (a *Activity) Active() bool { return !a.current.IsNil() }

// Correlation returns the correlation for ordinary events written inside the
// current activity.
func (a *Activity) Correlation() Correlation { return Correlation{ID: a.current} }

// Enter starts a new activity nested in the current one, if any.
// The caller must call Exit on the returned scope, usually with defer.
func (a *Activity) Enter() Scope {
	return a.enter(a.current)
}

// EnterFrom starts a new activity caused by parent, which usually comes from
// another goroutine. The activity this goroutine was in before is still
// restored by Exit.
func (a *Activity) EnterFrom(parent ActivityID) Scope {
	return a.enter(parent)
}

func (a *Activity) enter(related ActivityID) Scope {
	s := Scope{
		activity: a,
		id:       NewActivityID(),
		prior:    a.current,
		related:  related,
	}
	a.current = s.id
	return s
}

// Scope is one activity entered on an Activity.
type Scope struct {
	activity *Activity
	id       ActivityID
	prior    ActivityID
	related  ActivityID
}

// ID returns the id of the activity the scope started.
func (s Scope) ID() ActivityID { return s.id }

// Related returns the id of the activity that caused this one, or the nil id.
func (s Scope) Related() ActivityID { return s.related }

// Correlation returns the correlation for the start event of the scope,
// linking it to the activity that caused it.
func (s Scope) Correlation() Correlation {
	return Correlation{ID: s.id, Related: s.related}
}

// Exit ends the activity, making the one that was current before Enter
// current again. Scopes must be exited in the reverse order they were
// entered.
func (s Scope) Exit() {
	if s.activity != nil {
		s.activity.current = s.prior
	}
}

type activityKey struct{}

// WithActivityID returns a context carrying id, for handing an activity to
// work that runs elsewhere.
func WithActivityID(ctx context.Context, id ActivityID) context.Context {
	return context.WithValue(ctx, activityKey{}, id)
}

// ActivityIDFromContext returns the id stored by WithActivityID, or the nil
// id.
func ActivityIDFromContext(ctx context.Context) ActivityID {
	if ctx == nil {
		return ActivityID{}
	}
	id, _ := ctx.Value(activityKey{}).(ActivityID)
	return id
}
