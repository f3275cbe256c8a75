// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tracelog

import "sync"

// preallocateDescriptors controls the space reserved for descriptors in a
// payload: the trait, the metadata and a handful of fields. Longer lists
// still work but allocate.
const preallocateDescriptors = 8

// maxPooledBuffer is the largest value buffer kept in the pool.
const maxPooledBuffer = 4 << 10

// payload is the scratch space for assembling one descriptor list.
type payload struct {
	descs    [preallocateDescriptors]DataDescriptor
	ends     [preallocateDescriptors]int
	buf      []byte
	activity ActivityID
	related  ActivityID
}

var payloadPool = sync.Pool{New: func() interface{} {
	return &payload{buf: make([]byte, 0, 256)}
}}

// emit assembles the descriptor list for one event and hands it to the sink.
// The values must match the fields e was built with; the typed events
// guarantee that.
func (p *Provider) emit(e *Event, c Correlation, vals ...Value) error {
	h := Handle(p.handle.Load())
	if h == 0 {
		// not registered, or unregistered since
		return nil
	}
	pl := payloadPool.Get().(*payload)
	defer pl.release()

	descs := append(pl.descs[:0],
		DataDescriptor{Type: ProviderMetadata, Data: p.trait},
		DataDescriptor{Type: EventMetadata, Data: e.meta})
	buf := pl.buf[:0]
	ends := pl.ends[:0]
	for _, v := range vals {
		buf = appendValue(buf, v)
		ends = append(ends, len(buf))
	}
	// buf may have moved while appending, so slice it only once it is final
	start := 0
	for _, end := range ends {
		descs = append(descs, DataDescriptor{Type: UserData, Data: buf[start:end:end]})
		start = end
	}
	pl.buf = buf

	var activity, related *ActivityID
	if !c.ID.IsNil() {
		pl.activity = c.ID
		activity = &pl.activity
	}
	if !c.Related.IsNil() {
		pl.related = c.Related
		related = &pl.related
	}
	return p.sink.Write(h, &e.desc, activity, related, descs)
}

func (pl *payload) release() {
	pl.descs = [preallocateDescriptors]DataDescriptor{}
	if cap(pl.buf) > maxPooledBuffer {
		pl.buf = nil
	}
	payloadPool.Put(pl)
}
