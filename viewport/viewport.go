// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewport composes the controllers of one view of a scene:
// the transform gizmo moves the pivot of the selection, which moves
// the selected nodes. Each viewport owns its pointer tracker and
// controllers, so several viewports can show the same scene.
package viewport

import (
	"image"
	"log/slog"

	"cogentcore.org/core/events"
	"cogentcore.org/manip/drag"
	"cogentcore.org/manip/gizmo"
	"cogentcore.org/manip/interact"
	"cogentcore.org/manip/pointer"
	"cogentcore.org/manip/scene"
	"cogentcore.org/manip/selection"
)

// Viewport is one view of a scene with its controllers.
type Viewport struct {

	// Camera is the camera of this view.
	Camera *scene.Camera

	// Scene is the root of the scene shown.
	Scene *scene.Node

	// Dispatcher routes the input of this view to the controllers.
	Dispatcher *interact.Dispatcher

	// Gizmo transforms the pivot of the selection.
	Gizmo *gizmo.Controls

	// Selection is the set of selected nodes.
	Selection *selection.Selection

	// Drag moves the nodes of the scene directly; it is
	// disabled unless [Viewport.SetDragMode] is on.
	Drag *drag.Controls
}

// New returns a new viewport of the given size in pixels, showing
// the scene from the given root through the given camera.
func New(size image.Point, cam *scene.Camera, root *scene.Node) *Viewport {
	vp := &Viewport{Camera: cam, Scene: root}
	vp.Dispatcher = interact.NewDispatcher(size)
	vp.Gizmo = gizmo.NewControls(cam)
	vp.Selection = selection.New(cam, root)
	vp.Drag = drag.NewControls(cam, root.Children()...)

	// a press on a handle belongs to the gizmo
	vp.Selection.Guard = func(p *pointer.Pointer) bool {
		return vp.Gizmo.Axis() == gizmo.NoAxis && !vp.Gizmo.IsDragging()
	}
	vp.Selection.Listeners.Add(interact.SelectionChanged, func(ev *interact.Event) {
		vp.followSelection()
	})

	// the gizmo gets each frame first
	vp.Dispatcher.Attach(vp.Gizmo)
	vp.Dispatcher.Attach(vp.Selection)
	vp.Dispatcher.Attach(vp.Drag)
	vp.Dispatcher.SetEnabled(vp.Drag, false)
	vp.SetSize(size)
	return vp
}

// followSelection attaches the gizmo to the pivot of a non-empty
// selection and detaches it otherwise.
func (vp *Viewport) followSelection() {
	if vp.Selection.Len() == 0 {
		vp.Gizmo.Detach()
		return
	}
	vp.Gizmo.Attach(vp.Selection.Pivot)
	vp.Gizmo.UpdateWorld()
}

// SetSize sets the size of the view in pixels,
// updating the camera aspect ratio.
func (vp *Viewport) SetSize(size image.Point) {
	vp.Dispatcher.Tracker.Resize(size)
	if size.X > 0 && size.Y > 0 {
		vp.Camera.Aspect = float32(size.X) / float32(size.Y)
	}
}

// SetMode sets the transform mode of the gizmo.
func (vp *Viewport) SetMode(mode gizmo.Modes) {
	vp.Gizmo.SetMode(mode)
}

// SetSpace sets the space in which both the gizmo and the selection
// transform. It is ignored while the gizmo is dragging.
func (vp *Viewport) SetSpace(space scene.Spaces) {
	if vp.Gizmo.IsDragging() {
		return
	}
	vp.Selection.SetSpace(space)
	vp.Gizmo.SetSpace(space)
}

// SetDragMode switches between dragging nodes directly, and
// selecting and transforming them with the gizmo.
func (vp *Viewport) SetDragMode(on bool) {
	vp.Dispatcher.SetEnabled(vp.Gizmo, !on)
	vp.Dispatcher.SetEnabled(vp.Selection, !on)
	vp.Dispatcher.SetEnabled(vp.Drag, on)
	if on {
		vp.Drag.Objects = vp.Scene.Children()
	}
	slog.Debug("viewport: drag mode", "on", on)
}

// IsDragMode returns true if nodes are dragged directly.
func (vp *Viewport) IsDragMode() bool {
	return vp.Dispatcher.IsEnabled(vp.Drag)
}

// HandleMouse handles a mouse event in pixel coordinates.
func (vp *Viewport) HandleMouse(ev *events.Mouse) {
	vp.Dispatcher.HandleMouse(ev)
}

// HandleTouch handles the current touches, in pixel coordinates.
func (vp *Viewport) HandleTouch(typ pointer.FrameTypes, samples []pointer.Sample) {
	vp.Dispatcher.HandleTouch(typ, samples)
}

// Update is called once per rendered frame: it applies the motion
// of the pivot to the selection and places the gizmo.
func (vp *Viewport) Update() {
	vp.Dispatcher.UpdateWorld()
}

// Release ends all pointer interaction in progress,
// leaving the gizmo idle.
func (vp *Viewport) Release() {
	vp.Dispatcher.Release()
	vp.Gizmo.Release()
}

// Dispose releases and detaches all controllers.
func (vp *Viewport) Dispose() {
	vp.Dispatcher.Dispose()
	vp.Gizmo.Detach()
}
