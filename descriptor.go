// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tracelog

import "strconv"

// Level represents the severity of an event.
// Smaller non zero values are more severe. Zero means no level filtering,
// both on an event and in a session.
//
// The levels match the TRACE_LEVEL values used by ETW:
// 1	CRITICAL	The process cannot continue.
// 2	ERROR		Something went wrong.
// 3	WARNING		Not an error, but likely more important than information.
// 4	INFO		An event happened.
// 5	VERBOSE		Detailed diagnostics, normally disabled.
type Level uint8

const (
	LevelNone     = Level(0)
	LevelCritical = Level(1)
	LevelError    = Level(2)
	LevelWarning  = Level(3)
	LevelInfo     = Level(4)
	LevelVerbose  = Level(5)
)

func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelCritical:
		return "critical"
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelInfo:
		return "info"
	case LevelVerbose:
		return "verbose"
	default:
		return "level" + strconv.Itoa(int(l))
	}
}

// Opcode marks the role of an event within an activity.
type Opcode uint8

const (
	OpcodeInfo  = Opcode(0)
	OpcodeStart = Opcode(1)
	OpcodeStop  = Opcode(2)
)

func (o Opcode) String() string {
	switch o {
	case OpcodeInfo:
		return "info"
	case OpcodeStart:
		return "start"
	case OpcodeStop:
		return "stop"
	default:
		return "opcode" + strconv.Itoa(int(o))
	}
}

// ManifestFreeChannel is the channel every self-describing event is written
// to.
const ManifestFreeChannel = 11

// EventDescriptor is the fixed identity and routing information of an event
// kind. Its layout matches the EVENT_DESCRIPTOR structure.
type EventDescriptor struct {
	ID       uint16
	Version  uint8
	Channel  uint8
	Level    Level
	Opcode   Opcode
	Task     uint16
	Keywords uint64
}

// EventInfo holds the parts of an EventDescriptor that vary between event
// kinds.
type EventInfo struct {
	ID       uint16
	Level    Level
	Opcode   Opcode
	Task     uint16
	Keywords uint64
}

// Descriptor returns the descriptor for events described by i.
func (i EventInfo) Descriptor() EventDescriptor {
	return EventDescriptor{
		ID:       i.ID,
		Version:  0,
		Channel:  ManifestFreeChannel,
		Level:    i.Level,
		Opcode:   i.Opcode,
		Task:     i.Task,
		Keywords: i.Keywords,
	}
}
