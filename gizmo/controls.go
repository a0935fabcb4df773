// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gizmo provides the transform controls: a drag state machine
// that picks an axis or plane handle under the pointer and converts
// pointer motion into constrained translation, rotation or scale of
// a target node.
package gizmo

import (
	"log/slog"
	"slices"

	"cogentcore.org/core/events"
	"cogentcore.org/core/math32"
	"cogentcore.org/manip/interact"
	"cogentcore.org/manip/pointer"
	"cogentcore.org/manip/scene"
)

// Controls is the transform controller for one target node in one viewport.
// Only Params may be modified directly; everything else goes through
// methods that keep the state machine consistent and send events.
type Controls struct {
	Params

	// Camera is the camera of the viewport.
	Camera *scene.Camera

	// Listeners receive the events of this controller.
	Listeners interact.Listeners

	target   *scene.Node
	disabled bool
	axis     Axes
	dragging bool

	frame  frame
	states []HandleState

	// plane is the constraint plane, fixed for the duration of a drag.
	planeNormal math32.Vector3
	planePoint  math32.Vector3

	// drag start snapshot
	posStart        math32.Vector3
	quatStart       math32.Quat
	scaleStart      math32.Vector3
	worldPosStart   math32.Vector3
	worldQuatStart  math32.Quat
	worldScaleStart math32.Vector3
	parentPos       math32.Vector3
	parentQuat      math32.Quat
	parentScale     math32.Vector3
	frameStart      frame
	pointStart      math32.Vector3
	pointEnd        math32.Vector3
}

var (
	_ interact.InputRoutable = (*Controls)(nil)
	_ interact.WorldFollower = (*Controls)(nil)
	_ interact.Draggable     = (*Controls)(nil)
)

// NewControls returns new controls using the given camera.
func NewControls(cam *scene.Camera) *Controls {
	ct := &Controls{Camera: cam}
	ct.Defaults()
	return ct
}

// Target returns the node being transformed, or nil.
func (ct *Controls) Target() *scene.Node {
	return ct.target
}

// Axis returns the active axis.
func (ct *Controls) Axis() Axes {
	return ct.axis
}

// State returns the state of the drag state machine.
func (ct *Controls) State() States {
	switch {
	case ct.dragging:
		return Dragging
	case ct.axis != NoAxis:
		return Armed
	}
	return Idle
}

// IsDragging returns true while a drag is in progress.
func (ct *Controls) IsDragging() bool {
	return ct.dragging
}

// IsEnabled returns true unless the controls have been disabled.
func (ct *Controls) IsEnabled() bool {
	return !ct.disabled
}

// HandleStates returns the display state of each handle of the
// current mode, as of the last [Controls.UpdateWorld]. The result is a
// copy that later updates do not change.
func (ct *Controls) HandleStates() []HandleState {
	return slices.Clone(ct.states)
}

// Attach sets the node to transform, releasing any drag on a previous one.
// Attaching nil is the same as [Controls.Detach].
func (ct *Controls) Attach(nd *scene.Node) {
	if nd == ct.target {
		return
	}
	ct.Release()
	ct.target = nd
	if nd == nil {
		ct.SetAxis(NoAxis)
	} else {
		ct.UpdateWorld()
	}
	ct.send(interact.Change)
}

// Detach removes the target, clearing the axis and any drag.
func (ct *Controls) Detach() {
	ct.Attach(nil)
}

// SetEnabled enables or disables the controls. Disabled controls
// ignore input, and disabling ends any drag.
func (ct *Controls) SetEnabled(enabled bool) {
	if enabled == !ct.disabled {
		return
	}
	ct.disabled = !enabled
	if !enabled {
		ct.Release()
	}
	ct.send(interact.Change)
}

// SetMode sets the transform mode, which is ignored while dragging.
func (ct *Controls) SetMode(mode Modes) {
	if ct.dragging || mode == ct.Mode {
		return
	}
	ct.Mode = mode
	ct.SetAxis(NoAxis)
	ct.UpdateWorld()
	ct.send(interact.Change)
}

// SetSpace sets the transform space, which is ignored while dragging.
func (ct *Controls) SetSpace(space scene.Spaces) {
	if ct.dragging || space == ct.Space {
		return
	}
	ct.Space = space
	ct.UpdateWorld()
	ct.send(interact.Change)
}

// SetAxis sets the active axis, updating the constraint plane and sending
// [interact.AxisChanged] and [interact.Change] if it changed.
// The axis is fixed while dragging.
func (ct *Controls) SetAxis(axis Axes) {
	if ct.dragging || axis == ct.axis {
		return
	}
	ct.axis = axis
	ct.updatePlane()
	ct.updateStates()
	slog.Debug("gizmo: axis changed", "axis", axis, "mode", ct.Mode)
	ct.Listeners.Call(&interact.Event{Type: interact.AxisChanged, Node: ct.target, Axis: axis.String()})
	ct.send(interact.Change)
}

// Release ends any drag in progress, leaving the target where it is.
// The axis is cleared.
func (ct *Controls) Release() {
	ct.endDrag(nil)
	ct.SetAxis(NoAxis)
}

func (ct *Controls) send(typ interact.Events) {
	ct.Listeners.Send(typ, ct.target)
}

// UpdateWorld recomputes the placement of the gizmo from the world
// transform of the target and the camera, and the handle states.
// The constraint plane follows unless a drag is in progress.
func (ct *Controls) UpdateWorld() {
	if ct.target == nil || ct.Camera == nil {
		return
	}
	ct.target.UpdateWorldTransform()
	ps := &ct.target.Pose
	fr := &ct.frame
	fr.pos = ps.WorldPos
	if ct.space() == scene.Local {
		fr.quat = ps.WorldQuat
	} else {
		fr.quat = scene.IdentityQuat()
	}
	eye, dist := ct.Camera.Eye(fr.pos)
	fr.eye = eye
	fr.dist = dist
	fr.scale = dist * ct.Size / 7
	if !ct.dragging {
		ct.updatePlane()
	}
	ct.updateStates()
}

func (ct *Controls) updateStates() {
	ct.states = updateStates(ct.states, HandlesFor(ct.Mode), &ct.Params, &ct.frame, ct.axis)
}

// updatePlane computes the constraint plane through the gizmo for the
// active axis, facing the eye as much as the constraint allows.
func (ct *Controls) updatePlane() {
	fr := &ct.frame
	xw, yw, zw := fr.axisDir(1, 0, 0), fr.axisDir(0, 1, 0), fr.axisDir(0, 0, 1)
	var n math32.Vector3
	if ct.Mode == Rotate {
		n = fr.eye
	} else {
		switch ct.axis {
		case X:
			n = xw.Cross(fr.eye.Cross(xw))
		case Y:
			n = yw.Cross(fr.eye.Cross(yw))
		case Z:
			n = zw.Cross(fr.eye.Cross(zw))
		case XY:
			n = zw
		case YZ:
			n = xw
		case XZ:
			n = yw
		default:
			n = fr.eye
		}
	}
	ct.planeNormal = n
	ct.planePoint = fr.pos
}

// Pick returns the axis of the nearest visible handle under the given
// pointer position, in normalized device coordinates. It does not change
// the active axis.
func (ct *Controls) Pick(ndc math32.Vector2) Axes {
	if ct.target == nil || ct.Camera == nil {
		return NoAxis
	}
	handles := HandlesFor(ct.Mode)
	if len(ct.states) != len(handles) {
		ct.UpdateWorld()
	}
	return pick(handles, ct.states, &ct.frame, ct.Camera.Ray(ndc))
}

// intersect returns the intersection of the pointer ray with the
// constraint plane, relative to the drag start world position.
func (ct *Controls) intersect(ndc math32.Vector2) (math32.Vector3, bool) {
	pt, ok := scene.IntersectPlane(ct.Camera.Ray(ndc), ct.planeNormal, ct.planePoint)
	if !ok {
		return math32.Vector3{}, false
	}
	return pt.Sub(ct.worldPosStart), true
}

func (ct *Controls) OnPointerHover(fr *pointer.Frame) {
	p := fr.First()
	if ct.disabled || ct.target == nil || ct.dragging || p == nil {
		return
	}
	ct.UpdateWorld()
	ct.SetAxis(ct.Pick(p.Position))
}

func (ct *Controls) OnPointerDown(fr *pointer.Frame) {
	p := fr.First()
	if ct.disabled || ct.target == nil || ct.dragging || ct.axis == NoAxis || p == nil || p.Button != events.Left {
		return
	}
	ct.UpdateWorld()
	ps := &ct.target.Pose
	ct.worldPosStart = ps.WorldPos
	pt, ok := ct.intersect(p.Position)
	if !ok {
		return
	}
	ct.posStart = ps.Pos
	ct.quatStart = ps.Quat
	ct.scaleStart = ps.Scale
	ct.worldQuatStart = ps.WorldQuat
	ct.worldScaleStart = ps.WorldScale
	if par := ct.target.ParentWorld(); par != nil {
		ct.parentPos = par.WorldPos
		ct.parentQuat = par.WorldQuat
		ct.parentScale = par.WorldScale
	} else {
		ct.parentPos = math32.Vector3{}
		ct.parentQuat = scene.IdentityQuat()
		ct.parentScale = math32.Vec3(1, 1, 1)
	}
	ct.frameStart = ct.frame
	ct.pointStart = pt
	ct.pointEnd = pt
	ct.dragging = true
	slog.Debug("gizmo: drag start", "axis", ct.axis, "mode", ct.Mode, "target", ct.target)
	ct.Listeners.Call(&interact.Event{Type: interact.DragStart, Node: ct.target, Pointer: p, Axis: ct.axis.String()})
}

func (ct *Controls) OnPointerMove(fr *pointer.Frame) {
	p := fr.First()
	if ct.disabled || ct.target == nil || !ct.dragging || ct.axis == NoAxis || p == nil || p.Button != events.Left {
		return
	}
	pt, ok := ct.intersect(p.Position)
	if !ok {
		return
	}
	ct.pointEnd = pt
	ct.transform()
	ct.target.UpdateWorldTransform()
	ct.UpdateWorld()
	ct.Listeners.Call(&interact.Event{Type: interact.Drag, Node: ct.target, Pointer: p, Axis: ct.axis.String()})
	ct.send(interact.Change)
}

func (ct *Controls) OnPointerUp(fr *pointer.Frame) {
	if fr.Len() == 0 {
		rm := fr.FirstRemoved()
		ct.endDrag(rm)
		if rm != nil && rm.Type == pointer.Touch {
			ct.SetAxis(NoAxis)
		}
		return
	}
	if p := fr.First(); p.Button == events.NoButton {
		ct.endDrag(p)
		ct.SetAxis(NoAxis)
	}
}

// endDrag returns to the idle or armed state, sending DragEnd if dragging.
func (ct *Controls) endDrag(p *pointer.Pointer) {
	if !ct.dragging {
		return
	}
	ct.dragging = false
	slog.Debug("gizmo: drag end", "axis", ct.axis, "target", ct.target)
	ct.Listeners.Call(&interact.Event{Type: interact.DragEnd, Node: ct.target, Pointer: p, Axis: ct.axis.String()})
	ct.UpdateWorld()
	ct.send(interact.Change)
}
