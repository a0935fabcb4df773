// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pointer turns raw mouse and touch input into ordered per-frame
// lists of pointers that are correlated from one frame to the next.
package pointer

//go:generate core generate

import (
	"fmt"

	"cogentcore.org/core/events"
	"cogentcore.org/core/events/key"
	"cogentcore.org/core/math32"
)

// Types are the kinds of device a pointer comes from.
type Types int32 //enums:enum

const (
	// Mouse is a mouse or other single cursor device.
	Mouse Types = iota

	// Touch is one contact on a touch screen.
	Touch
)

// FrameTypes are the kinds of input frame delivered to controllers.
type FrameTypes int32 //enums:enum -trim-prefix Frame

const (
	// FrameHover is pointer motion with no button held.
	FrameHover FrameTypes = iota

	// FrameDown is a button press or new touch contact.
	FrameDown

	// FrameMove is pointer motion with a button held or touches active.
	FrameMove

	// FrameUp is a button release or touch contact ending.
	FrameUp
)

// Button mask bits, as reported in [Pointer.Buttons].
const (
	ButtonPrimary   = 1
	ButtonSecondary = 2
	ButtonMiddle    = 4
)

// Pointer is the state of one active pointer in one input frame.
// Pointers are recreated on every frame; the ID is what persists.
type Pointer struct {

	// ID identifies the pointer across frames.
	ID int

	// Type is the device type.
	Type Types

	// Position is the current position, normalized to -1..1 device
	// coordinates (y up) when the tracker is normalized.
	Position math32.Vector2

	// Previous is the position in the prior frame.
	Previous math32.Vector2

	// Start is the position when this pointer first appeared.
	Start math32.Vector2

	// Movement is Position - Previous.
	Movement math32.Vector2

	// Distance is Position - Start.
	Distance math32.Vector2

	// Button is the single button derived from Buttons,
	// or [events.NoButton] if none is held.
	Button events.Buttons

	// Buttons is the mask of held buttons (see ButtonPrimary etc).
	Buttons int

	// Mods are the modifier keys held.
	Mods key.Modifiers
}

func (p *Pointer) String() string {
	return fmt.Sprintf("%v %d{Pos: %v, Button: %v}", p.Type, p.ID, p.Position, p.Button)
}

// HasMod returns true if the given modifier key is held.
func (p *Pointer) HasMod(mod key.Modifiers) bool {
	return p.Mods.HasFlag(mod)
}

// follow continues the given pointer from the prior frame.
func (p *Pointer) follow(prev *Pointer) {
	p.ID = prev.ID
	p.Previous = prev.Position
	p.Start = prev.Start
	p.Movement = p.Position.Sub(prev.Position)
	p.Distance = p.Position.Sub(p.Start)
}

// restart makes the current position the start of a new gesture.
func (p *Pointer) restart() {
	p.Start = p.Position
	p.Distance = math32.Vector2{}
}

// ButtonFromMask returns the single button for the given mask of held
// buttons: the primary button wins, then the secondary, then the middle.
func ButtonFromMask(buttons int) events.Buttons {
	switch buttons {
	case 1, 3, 5, 7:
		return events.Left
	case 2, 6:
		return events.Right
	case 4:
		return events.Middle
	}
	return events.NoButton
}

// MaskFromButton returns the mask bit for the given button.
func MaskFromButton(but events.Buttons) int {
	switch but {
	case events.Left:
		return ButtonPrimary
	case events.Right:
		return ButtonSecondary
	case events.Middle:
		return ButtonMiddle
	}
	return 0
}

// Frame is one input frame: the active pointers in order, and those that
// disappeared since the prior frame.
type Frame struct {
	Type     FrameTypes
	Pointers []*Pointer
	Removed  []*Pointer
}

func (fr *Frame) String() string {
	return fmt.Sprintf("%v{Pointers: %d, Removed: %d}", fr.Type, len(fr.Pointers), len(fr.Removed))
}

// Len returns the number of active pointers.
func (fr *Frame) Len() int {
	return len(fr.Pointers)
}

// First returns the first active pointer, or nil.
func (fr *Frame) First() *Pointer {
	if len(fr.Pointers) == 0 {
		return nil
	}
	return fr.Pointers[0]
}

// FirstRemoved returns the first removed pointer, or nil.
func (fr *Frame) FirstRemoved() *Pointer {
	if len(fr.Removed) == 0 {
		return nil
	}
	return fr.Removed[0]
}
