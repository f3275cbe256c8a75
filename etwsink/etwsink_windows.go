// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows && (amd64 || arm64)

package etwsink

import (
	"runtime"
	"sync"
	"unsafe"

	"github.com/Microsoft/go-winio/pkg/guid"
	"golang.org/x/exp/tracelog"
	"golang.org/x/sys/windows"
	"golang.org/x/xerrors"
)

var (
	modAdvapi32             = windows.NewLazySystemDLL("advapi32.dll")
	procEventRegister       = modAdvapi32.NewProc("EventRegister")
	procEventSetInformation = modAdvapi32.NewProc("EventSetInformation")
	procEventWriteTransfer  = modAdvapi32.NewProc("EventWriteTransfer")
	procEventUnregister     = modAdvapi32.NewProc("EventUnregister")
)

const (
	win32CallSuccess = 0

	// EVENT_INFO_CLASS EventProviderUseDescriptorType
	eventProviderUseDescriptorType = 3

	// values of the IsEnabled argument of the enable callback
	controlDisable      = 0
	controlEnable       = 1
	controlCaptureState = 2
)

// eventDataDescriptor is EVENT_DATA_DESCRIPTOR with the descriptor type in
// the reserved field.
type eventDataDescriptor struct {
	ptr       uint64
	size      uint32
	dataType  uint8
	reserved1 uint8
	reserved2 uint16
}

// enableCallback is shared by every registration: the number of callbacks a
// process can create is limited. The callback context is a key into
// registrations.
var enableCallback = windows.NewCallback(providerCallback)

var (
	registrationsMu sync.Mutex
	registrations   = map[uintptr]tracelog.ControlFunc{}
	nextKey         uintptr
)

func providerCallback(sourceID *guid.GUID, isEnabled uintptr, level uintptr, matchAny uintptr, matchAll uintptr, filterData uintptr, key uintptr) uintptr {
	registrationsMu.Lock()
	control := registrations[key]
	registrationsMu.Unlock()
	if control == nil {
		return 0
	}
	// IsEnabled is a ULONG and Level a UCHAR; the rest of their registers
	// is undefined.
	switch uint32(isEnabled) {
	case controlDisable:
		control(false, tracelog.Level(uint8(level)), uint64(matchAny), uint64(matchAll))
	case controlEnable:
		control(true, tracelog.Level(uint8(level)), uint64(matchAny), uint64(matchAll))
	case controlCaptureState:
		// no rundown events to send
	}
	return 0
}

// Sink is the ETW tracelog.Sink.
type Sink struct {
	mu   sync.Mutex
	keys map[tracelog.Handle]uintptr
}

var _ tracelog.Sink = (*Sink)(nil)

// New returns a Sink, or an error if advapi32 lacks the functions it uses.
func New() (*Sink, error) {
	for _, p := range []*windows.LazyProc{procEventRegister, procEventSetInformation, procEventWriteTransfer, procEventUnregister} {
		if err := p.Find(); err != nil {
			return nil, xerrors.Errorf("etwsink: %w", err)
		}
	}
	return &Sink{keys: make(map[tracelog.Handle]uintptr)}, nil
}

// Register registers a provider with ETW. ETW may call control before
// Register returns, if a session is already waiting for the provider.
func (s *Sink) Register(id guid.GUID, name string, control tracelog.ControlFunc) (tracelog.Handle, error) {
	registrationsMu.Lock()
	nextKey++
	key := nextKey
	registrations[key] = control
	registrationsMu.Unlock()

	var h uint64
	r, _, _ := procEventRegister.Call(
		uintptr(unsafe.Pointer(&id)),
		enableCallback,
		key,
		uintptr(unsafe.Pointer(&h)))
	if r != win32CallSuccess {
		forget(key)
		return 0, xerrors.Errorf("etwsink: register %q: %w", name, windows.Errno(r))
	}

	use := uint8(1)
	r, _, _ = procEventSetInformation.Call(
		uintptr(h),
		eventProviderUseDescriptorType,
		uintptr(unsafe.Pointer(&use)),
		unsafe.Sizeof(use))
	if r != win32CallSuccess {
		procEventUnregister.Call(uintptr(h))
		forget(key)
		return 0, xerrors.Errorf("etwsink: set descriptor type for %q: %w", name, windows.Errno(r))
	}

	s.mu.Lock()
	s.keys[tracelog.Handle(h)] = key
	s.mu.Unlock()
	return tracelog.Handle(h), nil
}

// Unregister unregisters the provider with handle h. No control callback is
// made for it once Unregister returns.
func (s *Sink) Unregister(h tracelog.Handle) error {
	s.mu.Lock()
	key, ok := s.keys[h]
	delete(s.keys, h)
	s.mu.Unlock()
	if !ok {
		return xerrors.Errorf("etwsink: handle %d: %w", h, tracelog.ErrNotRegistered)
	}
	r, _, _ := procEventUnregister.Call(uintptr(h))
	forget(key)
	if r != win32CallSuccess {
		return xerrors.Errorf("etwsink: unregister: %w", windows.Errno(r))
	}
	return nil
}

func forget(key uintptr) {
	registrationsMu.Lock()
	delete(registrations, key)
	registrationsMu.Unlock()
}

// Write hands the event to ETW.
func (s *Sink) Write(h tracelog.Handle, desc *tracelog.EventDescriptor, activity, related *tracelog.ActivityID, data []tracelog.DataDescriptor) error {
	var stack [8]eventDataDescriptor
	descs := stack[:0]
	for _, d := range data {
		var ptr uint64
		if len(d.Data) > 0 {
			ptr = uint64(uintptr(unsafe.Pointer(&d.Data[0])))
		}
		descs = append(descs, eventDataDescriptor{ptr: ptr, size: uint32(len(d.Data)), dataType: uint8(d.Type)})
	}
	var first *eventDataDescriptor
	if len(descs) > 0 {
		first = &descs[0]
	}
	r, _, _ := procEventWriteTransfer.Call(
		uintptr(h),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(activity)),
		uintptr(unsafe.Pointer(related)),
		uintptr(len(descs)),
		uintptr(unsafe.Pointer(first)))
	runtime.KeepAlive(data)
	if r != win32CallSuccess {
		return xerrors.Errorf("etwsink: write: %w", windows.Errno(r))
	}
	return nil
}
