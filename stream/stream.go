// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stream carries events over a byte stream, such as a pipe or a file,
// to a collector in another process.
//
// Each event is one CBOR data item holding the descriptor, the activity ids
// and the descriptor list exactly as the provider produced them, so the
// collector decodes it with the same rules as an in-process sink. Items use
// Core Deterministic Encoding: the same event always produces the same bytes.
package stream

import (
	"io"
	"sync"

	"github.com/Microsoft/go-winio/pkg/guid"
	"github.com/fxamacker/cbor/v2"
	"golang.org/x/exp/tracelog"
	"golang.org/x/xerrors"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("stream: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("stream: CBOR decoder initialization failed: " + err.Error())
	}
}

// frame is the wire form of one event.
type frame struct {
	_          struct{} `cbor:",toarray"`
	Descriptor descriptor
	Activity   []byte
	Related    []byte
	Data       []chunk
}

type descriptor struct {
	_        struct{} `cbor:",toarray"`
	ID       uint16
	Version  uint8
	Channel  uint8
	Level    uint8
	Opcode   uint8
	Task     uint16
	Keywords uint64
}

type chunk struct {
	_    struct{} `cbor:",toarray"`
	Type uint8
	Data []byte
}

// Sink is a tracelog.Sink that encodes every event to an io.Writer.
// Sessions are driven through its embedded Controller; the collector at the
// other end of the stream has no say in them.
type Sink struct {
	tracelog.Controller

	mu  sync.Mutex
	enc *cbor.Encoder
}

var _ tracelog.Sink = (*Sink)(nil)

// NewSink returns a sink that writes events to w.
// Writes to w are serialized; w does not need to be safe for concurrent use.
func NewSink(w io.Writer) *Sink {
	return &Sink{enc: encMode.NewEncoder(w)}
}

// Write encodes the event. The data is copied into the encoding before
// Write returns.
func (s *Sink) Write(h tracelog.Handle, desc *tracelog.EventDescriptor, activity, related *tracelog.ActivityID, data []tracelog.DataDescriptor) error {
	f := frame{
		Activity: idBytes(activity),
		Related:  idBytes(related),
		Data:     make([]chunk, len(data)),
	}
	if desc != nil {
		f.Descriptor = descriptor{
			ID:       desc.ID,
			Version:  desc.Version,
			Channel:  desc.Channel,
			Level:    uint8(desc.Level),
			Opcode:   uint8(desc.Opcode),
			Task:     desc.Task,
			Keywords: desc.Keywords,
		}
	}
	for i, d := range data {
		f.Data[i] = chunk{Type: uint8(d.Type), Data: d.Data}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enc.Encode(&f); err != nil {
		return xerrors.Errorf("stream: %w", err)
	}
	return nil
}

func idBytes(id *tracelog.ActivityID) []byte {
	if id == nil || id.IsNil() {
		return nil
	}
	a := guid.GUID(*id).ToArray()
	return a[:]
}

// Reader decodes the events written by a Sink.
type Reader struct {
	dec *cbor.Decoder
}

// NewReader returns a Reader that decodes events from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{dec: decMode.NewDecoder(r)}
}

// Next returns the next event in the stream. It returns io.EOF when the
// stream ends cleanly between events.
func (r *Reader) Next() (tracelog.Record, error) {
	var f frame
	if err := r.dec.Decode(&f); err != nil {
		if err == io.EOF {
			return tracelog.Record{}, io.EOF
		}
		return tracelog.Record{}, xerrors.Errorf("stream: %w", err)
	}
	desc := tracelog.EventDescriptor{
		ID:       f.Descriptor.ID,
		Version:  f.Descriptor.Version,
		Channel:  f.Descriptor.Channel,
		Level:    tracelog.Level(f.Descriptor.Level),
		Opcode:   tracelog.Opcode(f.Descriptor.Opcode),
		Task:     f.Descriptor.Task,
		Keywords: f.Descriptor.Keywords,
	}
	activity, err := parseID(f.Activity)
	if err != nil {
		return tracelog.Record{}, err
	}
	related, err := parseID(f.Related)
	if err != nil {
		return tracelog.Record{}, err
	}
	data := make([]tracelog.DataDescriptor, len(f.Data))
	for i, c := range f.Data {
		data[i] = tracelog.DataDescriptor{Type: tracelog.DescriptorType(c.Type), Data: c.Data}
	}
	return tracelog.DecodeRecord(&desc, activity, related, data)
}

func parseID(b []byte) (*tracelog.ActivityID, error) {
	switch len(b) {
	case 0:
		return nil, nil
	case 16:
		var a [16]byte
		copy(a[:], b)
		id := tracelog.ActivityID(guid.FromArray(a))
		return &id, nil
	default:
		return nil, xerrors.Errorf("stream: %d byte activity id: %w", len(b), tracelog.ErrMalformed)
	}
}

// ReadAll returns every event in the stream.
func (r *Reader) ReadAll() ([]tracelog.Record, error) {
	var records []tracelog.Record
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
}
