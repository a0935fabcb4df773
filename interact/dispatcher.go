// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interact

import (
	"fmt"
	"image"
	"log/slog"
	"slices"

	"cogentcore.org/core/events"
	"cogentcore.org/manip/pointer"
)

// route is one attached controller.
type route struct {
	ctrl    InputRoutable
	enabled bool
}

// Dispatcher owns the pointer tracker of one viewport and routes its
// frames to attached controllers, in the order they were attached.
// Disabled controllers receive nothing.
type Dispatcher struct {

	// Tracker converts raw input into frames.
	Tracker *pointer.Tracker

	routes []*route
}

// NewDispatcher returns a new dispatcher for a viewport of the given size.
func NewDispatcher(size image.Point) *Dispatcher {
	return &Dispatcher{Tracker: pointer.NewTracker(size)}
}

func (ds *Dispatcher) find(c InputRoutable) *route {
	for _, r := range ds.routes {
		if r.ctrl == c {
			return r
		}
	}
	return nil
}

// Attach adds the given controller, enabled. Attaching a controller
// that is already attached does nothing.
func (ds *Dispatcher) Attach(c InputRoutable) {
	if ds.find(c) != nil {
		return
	}
	ds.routes = append(ds.routes, &route{ctrl: c, enabled: true})
	slog.Debug("interact: attach", "controller", fmt.Sprintf("%T", c))
}

// Detach removes the given controller, releasing any drag in progress.
// It returns false if the controller was not attached.
func (ds *Dispatcher) Detach(c InputRoutable) bool {
	i := slices.IndexFunc(ds.routes, func(r *route) bool { return r.ctrl == c })
	if i < 0 {
		return false
	}
	release(c)
	ds.routes = slices.Delete(ds.routes, i, i+1)
	slog.Debug("interact: detach", "controller", fmt.Sprintf("%T", c))
	return true
}

// Controllers returns the attached controllers in dispatch order.
func (ds *Dispatcher) Controllers() []InputRoutable {
	cs := make([]InputRoutable, len(ds.routes))
	for i, r := range ds.routes {
		cs[i] = r.ctrl
	}
	return cs
}

// SetEnabled enables or disables delivery to the given controller.
// Disabling returns a [Draggable] controller to idle.
func (ds *Dispatcher) SetEnabled(c InputRoutable, enabled bool) {
	r := ds.find(c)
	if r == nil || r.enabled == enabled {
		return
	}
	r.enabled = enabled
	if !enabled {
		release(c)
	}
}

// IsEnabled returns true if the controller is attached and enabled.
func (ds *Dispatcher) IsEnabled(c InputRoutable) bool {
	r := ds.find(c)
	return r != nil && r.enabled
}

// Dispatch delivers the given frame to all enabled controllers.
// A nil frame is ignored.
func (ds *Dispatcher) Dispatch(fr *pointer.Frame) {
	if fr == nil {
		return
	}
	for _, r := range slices.Clone(ds.routes) {
		if !r.enabled {
			continue
		}
		switch fr.Type {
		case pointer.FrameHover:
			r.ctrl.OnPointerHover(fr)
		case pointer.FrameDown:
			r.ctrl.OnPointerDown(fr)
		case pointer.FrameMove:
			r.ctrl.OnPointerMove(fr)
		case pointer.FrameUp:
			r.ctrl.OnPointerUp(fr)
		}
	}
}

// HandleMouse converts the given mouse event through the tracker
// and dispatches the resulting frame, if any.
func (ds *Dispatcher) HandleMouse(ev *events.Mouse) {
	ds.Dispatch(ds.Tracker.MouseEvent(ev))
}

// HandleTouch dispatches a frame built from the given touch samples,
// which are all of the current touches. Touches do not hover, so a down
// frame is delivered as a hover first, letting controllers pick what is
// under the new touch.
func (ds *Dispatcher) HandleTouch(typ pointer.FrameTypes, samples []pointer.Sample) {
	fr := ds.Tracker.Update(typ, samples, false)
	if fr != nil && typ == pointer.FrameDown {
		hv := *fr
		hv.Type = pointer.FrameHover
		ds.Dispatch(&hv)
	}
	ds.Dispatch(fr)
}

// Release forces every pointer up, dispatching the up frame, and then
// returns every [Draggable] controller to idle.
func (ds *Dispatcher) Release() {
	ds.Dispatch(ds.Tracker.Release())
	for _, r := range ds.routes {
		release(r.ctrl)
	}
}

// UpdateWorld updates every attached [WorldFollower].
func (ds *Dispatcher) UpdateWorld() {
	for _, r := range ds.routes {
		if wf, ok := r.ctrl.(WorldFollower); ok {
			wf.UpdateWorld()
		}
	}
}

// Dispose releases and detaches all controllers.
func (ds *Dispatcher) Dispose() {
	for _, r := range ds.routes {
		release(r.ctrl)
	}
	ds.routes = nil
}

// release returns the controller to idle if it is a [Draggable],
// whether or not it is dragging: an armed controller is also reset.
func release(c InputRoutable) {
	if d, ok := c.(Draggable); ok {
		d.Release()
	}
}
