// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interact

//go:generate core generate

import (
	"fmt"

	"cogentcore.org/manip/pointer"
	"cogentcore.org/manip/scene"
)

// Events are the notifications emitted by controllers.
type Events int32 //enums:enum

const (
	// Change is sent whenever anything visible about a controller changes.
	Change Events = iota

	// AxisChanged is sent when the active axis of a transform controller
	// changes, including to none.
	AxisChanged

	// DragStart is sent when a drag begins.
	DragStart

	// Drag is sent for every pointer move that updates a dragged object.
	Drag

	// DragEnd is sent when a drag ends, normally or by forced release.
	DragEnd

	// SelectionChanged is sent after every selection operation, with the
	// full selection and what was added and removed.
	SelectionChanged

	// HoverOn is sent when a pointer starts hovering over an object.
	HoverOn

	// HoverOff is sent when a pointer stops hovering over an object.
	HoverOff
)

// Event is a notification from a controller. Only the fields relevant
// to the event type are set.
type Event struct {
	Type Events

	// Node is the object concerned: the transform target, or the
	// hovered or dragged object.
	Node *scene.Node

	// Pointer is the pointer that caused the event, if any.
	Pointer *pointer.Pointer

	// Axis is the name of the active axis, for AxisChanged.
	Axis string

	// Selected is the full selection after a SelectionChanged.
	Selected []*scene.Node

	// Added are the nodes newly in the selection.
	Added []*scene.Node

	// Removed are the nodes no longer in the selection.
	Removed []*scene.Node

	handled bool
}

func (ev *Event) String() string {
	return fmt.Sprintf("%v{Node: %v, Axis: %q}", ev.Type, ev.Node, ev.Axis)
}

// SetHandled stops the event from being delivered to any more listeners.
func (ev *Event) SetHandled() {
	ev.handled = true
}

// IsHandled returns true if the event has been handled.
func (ev *Event) IsHandled() bool {
	return ev.handled
}

// Listeners registers lists of event listener functions
// to receive different event types.
type Listeners map[Events][]func(ev *Event)

// Init ensures that map is constructed
func (ls *Listeners) Init() {
	if *ls != nil {
		return
	}
	*ls = make(map[Events][]func(*Event))
}

// Add adds a function for given type
func (ls *Listeners) Add(typ Events, fun func(*Event)) {
	ls.Init()
	(*ls)[typ] = append((*ls)[typ], fun)
}

// Call calls all functions for given event.
// It goes in _reverse_ order to the last functions added are the first called
// and it stops when the event is marked as Handled.
func (ls *Listeners) Call(ev *Event) {
	if ev.IsHandled() {
		return
	}
	ets := (*ls)[ev.Type]
	for i := len(ets) - 1; i >= 0; i-- {
		ets[i](ev)
		if ev.IsHandled() {
			break
		}
	}
}

// Send calls the listeners with a new event of the given type on the given node.
func (ls *Listeners) Send(typ Events, nd *scene.Node) {
	ls.Call(&Event{Type: typ, Node: nd})
}
