// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tracelog

// The typed events fix the number, order and type of the field values at the
// call site: the metadata is built from the type parameters, and Write takes
// exactly one argument of each.
//
// Write returns nil without doing any work when no session wants the event.
// WriteActivity also tags the event with the ids in c.

// Event0 is an event with no fields.
type Event0 struct{ ev Event }

// NewEvent0 compiles an event with no fields.
func NewEvent0(info EventInfo, name string) (*Event0, error) {
	e := &Event0{}
	if err := e.ev.init(info, name); err != nil {
		return nil, err
	}
	return e, nil
}

// MustEvent0 is like NewEvent0 but panics on error.
func MustEvent0(info EventInfo, name string) *Event0 {
	return must(NewEvent0(info, name))
}

func (e *Event0) Event() *Event            { return &e.ev }
func (e *Event0) Enabled(p *Provider) bool { return p.IsEnabledFor(e.ev.desc) }

func (e *Event0) Write(p *Provider) error {
	if !p.IsEnabledFor(e.ev.desc) {
		return nil
	}
	return p.emit(&e.ev, Correlation{})
}

func (e *Event0) WriteActivity(p *Provider, c Correlation) error {
	if !p.IsEnabledFor(e.ev.desc) {
		return nil
	}
	return p.emit(&e.ev, c)
}

// Event1 is an event with one field.
type Event1[A Scalar] struct{ ev Event }

// NewEvent1 compiles an event with one field named a.
func NewEvent1[A Scalar](info EventInfo, name, a string) (*Event1[A], error) {
	e := &Event1[A]{}
	if err := e.ev.init(info, name, Field{a, WireTypeOf[A]()}); err != nil {
		return nil, err
	}
	return e, nil
}

// MustEvent1 is like NewEvent1 but panics on error.
func MustEvent1[A Scalar](info EventInfo, name, a string) *Event1[A] {
	return must(NewEvent1[A](info, name, a))
}

func (e *Event1[A]) Event() *Event            { return &e.ev }
func (e *Event1[A]) Enabled(p *Provider) bool { return p.IsEnabledFor(e.ev.desc) }

func (e *Event1[A]) Write(p *Provider, a A) error {
	if !p.IsEnabledFor(e.ev.desc) {
		return nil
	}
	return p.emit(&e.ev, Correlation{}, ValueOf(a))
}

func (e *Event1[A]) WriteActivity(p *Provider, c Correlation, a A) error {
	if !p.IsEnabledFor(e.ev.desc) {
		return nil
	}
	return p.emit(&e.ev, c, ValueOf(a))
}

// Event2 is an event with two fields.
type Event2[A, B Scalar] struct{ ev Event }

// NewEvent2 compiles an event with fields named a and b.
func NewEvent2[A, B Scalar](info EventInfo, name, a, b string) (*Event2[A, B], error) {
	e := &Event2[A, B]{}
	err := e.ev.init(info, name,
		Field{a, WireTypeOf[A]()},
		Field{b, WireTypeOf[B]()})
	if err != nil {
		return nil, err
	}
	return e, nil
}

// MustEvent2 is like NewEvent2 but panics on error.
func MustEvent2[A, B Scalar](info EventInfo, name, a, b string) *Event2[A, B] {
	return must(NewEvent2[A, B](info, name, a, b))
}

func (e *Event2[A, B]) Event() *Event            { return &e.ev }
func (e *Event2[A, B]) Enabled(p *Provider) bool { return p.IsEnabledFor(e.ev.desc) }

func (e *Event2[A, B]) Write(p *Provider, a A, b B) error {
	if !p.IsEnabledFor(e.ev.desc) {
		return nil
	}
	return p.emit(&e.ev, Correlation{}, ValueOf(a), ValueOf(b))
}

func (e *Event2[A, B]) WriteActivity(p *Provider, c Correlation, a A, b B) error {
	if !p.IsEnabledFor(e.ev.desc) {
		return nil
	}
	return p.emit(&e.ev, c, ValueOf(a), ValueOf(b))
}

// Event3 is an event with three fields.
type Event3[A, B, C Scalar] struct{ ev Event }

// NewEvent3 compiles an event with fields named a, b and c.
func NewEvent3[A, B, C Scalar](info EventInfo, name, a, b, c string) (*Event3[A, B, C], error) {
	e := &Event3[A, B, C]{}
	err := e.ev.init(info, name,
		Field{a, WireTypeOf[A]()},
		Field{b, WireTypeOf[B]()},
		Field{c, WireTypeOf[C]()})
	if err != nil {
		return nil, err
	}
	return e, nil
}

// MustEvent3 is like NewEvent3 but panics on error.
func MustEvent3[A, B, C Scalar](info EventInfo, name, a, b, c string) *Event3[A, B, C] {
	return must(NewEvent3[A, B, C](info, name, a, b, c))
}

func (e *Event3[A, B, C]) Event() *Event            { return &e.ev }
func (e *Event3[A, B, C]) Enabled(p *Provider) bool { return p.IsEnabledFor(e.ev.desc) }

func (e *Event3[A, B, C]) Write(p *Provider, a A, b B, c C) error {
	if !p.IsEnabledFor(e.ev.desc) {
		return nil
	}
	return p.emit(&e.ev, Correlation{}, ValueOf(a), ValueOf(b), ValueOf(c))
}

func (e *Event3[A, B, C]) WriteActivity(p *Provider, corr Correlation, a A, b B, c C) error {
	if !p.IsEnabledFor(e.ev.desc) {
		return nil
	}
	return p.emit(&e.ev, corr, ValueOf(a), ValueOf(b), ValueOf(c))
}

// Event4 is an event with four fields.
type Event4[A, B, C, D Scalar] struct{ ev Event }

// NewEvent4 compiles an event with fields named a, b, c and d.
func NewEvent4[A, B, C, D Scalar](info EventInfo, name, a, b, c, d string) (*Event4[A, B, C, D], error) {
	e := &Event4[A, B, C, D]{}
	err := e.ev.init(info, name,
		Field{a, WireTypeOf[A]()},
		Field{b, WireTypeOf[B]()},
		Field{c, WireTypeOf[C]()},
		Field{d, WireTypeOf[D]()})
	if err != nil {
		return nil, err
	}
	return e, nil
}

// MustEvent4 is like NewEvent4 but panics on error.
func MustEvent4[A, B, C, D Scalar](info EventInfo, name, a, b, c, d string) *Event4[A, B, C, D] {
	return must(NewEvent4[A, B, C, D](info, name, a, b, c, d))
}

func (e *Event4[A, B, C, D]) Event() *Event            { return &e.ev }
func (e *Event4[A, B, C, D]) Enabled(p *Provider) bool { return p.IsEnabledFor(e.ev.desc) }

func (e *Event4[A, B, C, D]) Write(p *Provider, a A, b B, c C, d D) error {
	if !p.IsEnabledFor(e.ev.desc) {
		return nil
	}
	return p.emit(&e.ev, Correlation{}, ValueOf(a), ValueOf(b), ValueOf(c), ValueOf(d))
}

func (e *Event4[A, B, C, D]) WriteActivity(p *Provider, corr Correlation, a A, b B, c C, d D) error {
	if !p.IsEnabledFor(e.ev.desc) {
		return nil
	}
	return p.emit(&e.ev, corr, ValueOf(a), ValueOf(b), ValueOf(c), ValueOf(d))
}

func must[E any](e E, err error) E {
	if err != nil {
		panic(err)
	}
	return e
}
