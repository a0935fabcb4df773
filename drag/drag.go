// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package drag provides free drag controls, which move scene objects
// directly with the pointer on a plane facing the camera. Each pointer
// hovers and drags independently, so several touches can drag several
// objects at once.
package drag

import (
	"log/slog"
	"maps"
	"slices"

	"cogentcore.org/core/events"
	"cogentcore.org/core/math32"
	"cogentcore.org/manip/interact"
	"cogentcore.org/manip/pointer"
	"cogentcore.org/manip/scene"
)

// Controls drags a set of objects. The hover and drag state is kept per
// pointer ID and per Controls, so that separate viewports never share it.
type Controls struct {

	// Camera is the camera of the viewport.
	Camera *scene.Camera

	// Objects are the nodes that can be dragged. A hit on a descendant
	// drags the listed object containing it.
	Objects []*scene.Node

	// TransformGroup drags the first of the Objects whenever any of
	// them is hit, moving them all when it is their common parent.
	TransformGroup bool

	// Listeners receive the events of these controls.
	Listeners interact.Listeners

	disabled bool

	// hovered is the object under each pointer.
	hovered map[int]*scene.Node

	// dragged is the drag in progress for each pointer.
	dragged map[int]*dragging
}

// dragging is the drag of one object by one pointer.
type dragging struct {
	node *scene.Node

	// plane of motion, through the object and facing the camera
	planePoint  math32.Vector3
	planeNormal math32.Vector3
}

var (
	_ interact.InputRoutable = (*Controls)(nil)
	_ interact.Draggable     = (*Controls)(nil)
)

// NewControls returns new drag controls for the given objects.
func NewControls(cam *scene.Camera, objects ...*scene.Node) *Controls {
	return &Controls{Camera: cam, Objects: objects}
}

// IsEnabled returns true unless the controls have been disabled.
func (dc *Controls) IsEnabled() bool {
	return !dc.disabled
}

// SetEnabled enables or disables the controls.
// Disabling releases all pointers.
func (dc *Controls) SetEnabled(enabled bool) {
	if enabled == !dc.disabled {
		return
	}
	dc.disabled = !enabled
	if !enabled {
		dc.Release()
	}
}

// IsDragging returns true if any pointer is dragging an object.
func (dc *Controls) IsDragging() bool {
	return len(dc.dragged) > 0
}

// Dragged returns the object dragged by the given pointer, or nil.
func (dc *Controls) Dragged(id int) *scene.Node {
	if d := dc.dragged[id]; d != nil {
		return d.node
	}
	return nil
}

// Hovered returns the object under the given pointer, or nil.
func (dc *Controls) Hovered(id int) *scene.Node {
	return dc.hovered[id]
}

// Release ends all drags and hovers.
func (dc *Controls) Release() {
	for _, id := range slices.Sorted(maps.Keys(dc.dragged)) {
		dc.endDrag(id, nil)
	}
	for _, id := range slices.Sorted(maps.Keys(dc.hovered)) {
		dc.hoverOff(id, nil)
	}
}

// objectAt returns the object under the pointer, or nil.
func (dc *Controls) objectAt(p *pointer.Pointer) *scene.Node {
	if dc.Camera == nil {
		return nil
	}
	ray := dc.Camera.Ray(p.Position)
	var best *scene.Node
	var dist float32
	for _, obj := range dc.Objects {
		if obj == nil {
			continue
		}
		obj.UpdateWorldTransform()
		hits := obj.Raycast(ray)
		if len(hits) == 0 {
			continue
		}
		// hits within other listed objects belong to those
		for _, h := range hits {
			if dc.owner(h.Node) != obj {
				continue
			}
			if best == nil || h.Distance < dist {
				best, dist = obj, h.Distance
			}
			break
		}
	}
	return best
}

// owner returns the nearest listed object that is the node
// or one of its ancestors.
func (dc *Controls) owner(nd *scene.Node) *scene.Node {
	for n := nd; n != nil; n = n.Parent() {
		if slices.Contains(dc.Objects, n) {
			return n
		}
	}
	return nil
}

func (dc *Controls) OnPointerHover(fr *pointer.Frame) {
	if dc.disabled {
		return
	}
	for _, p := range fr.Pointers {
		obj := dc.objectAt(p)
		cur := dc.hovered[p.ID]
		if obj == cur {
			continue
		}
		if cur != nil {
			dc.hoverOff(p.ID, p)
		}
		if obj != nil {
			if dc.hovered == nil {
				dc.hovered = map[int]*scene.Node{}
			}
			dc.hovered[p.ID] = obj
			dc.Listeners.Call(&interact.Event{Type: interact.HoverOn, Node: obj, Pointer: p})
		}
	}
}

func (dc *Controls) OnPointerDown(fr *pointer.Frame) {
	if dc.disabled {
		return
	}
	for _, p := range fr.Pointers {
		if dc.dragged[p.ID] != nil || (p.Type == pointer.Mouse && p.Button != events.Left) {
			continue
		}
		obj := dc.objectAt(p)
		if obj == nil {
			continue
		}
		if dc.TransformGroup && len(dc.Objects) > 0 {
			obj = dc.Objects[0]
			obj.UpdateWorldTransform()
		}
		d := &dragging{node: obj, planePoint: obj.Pose.WorldPos}
		d.planeNormal, _ = dc.Camera.Eye(d.planePoint)
		if dc.dragged == nil {
			dc.dragged = map[int]*dragging{}
		}
		dc.dragged[p.ID] = d
		slog.Debug("drag: start", "pointer", p.ID, "object", obj)
		dc.Listeners.Call(&interact.Event{Type: interact.DragStart, Node: obj, Pointer: p})
	}
}

// OnPointerMove moves each dragged object by the motion of its pointer
// since the last frame, projected onto the plane of the drag.
func (dc *Controls) OnPointerMove(fr *pointer.Frame) {
	if dc.disabled {
		return
	}
	for _, p := range fr.Pointers {
		d := dc.dragged[p.ID]
		if d == nil {
			continue
		}
		cur, ok := scene.IntersectPlane(dc.Camera.Ray(p.Position), d.planeNormal, d.planePoint)
		if !ok {
			continue
		}
		prev, ok := scene.IntersectPlane(dc.Camera.Ray(p.Previous), d.planeNormal, d.planePoint)
		if !ok {
			continue
		}
		movement := cur.Sub(prev)
		if par := d.node.ParentWorld(); par != nil {
			movement = scene.DivSafe(movement.MulQuat(scene.InverseQuat(par.WorldQuat)), par.WorldScale)
		}
		d.node.Pose.Pos = d.node.Pose.Pos.Add(movement)
		d.node.UpdateWorldTransform()
		dc.Listeners.Call(&interact.Event{Type: interact.Drag, Node: d.node, Pointer: p})
	}
}

// OnPointerUp ends the drag and hover of each removed pointer.
func (dc *Controls) OnPointerUp(fr *pointer.Frame) {
	for _, p := range fr.Removed {
		dc.endDrag(p.ID, p)
		dc.hoverOff(p.ID, p)
	}
}

func (dc *Controls) endDrag(id int, p *pointer.Pointer) {
	d := dc.dragged[id]
	if d == nil {
		return
	}
	delete(dc.dragged, id)
	slog.Debug("drag: end", "pointer", id, "object", d.node)
	dc.Listeners.Call(&interact.Event{Type: interact.DragEnd, Node: d.node, Pointer: p})
}

func (dc *Controls) hoverOff(id int, p *pointer.Pointer) {
	obj := dc.hovered[id]
	if obj == nil {
		return
	}
	delete(dc.hovered, id)
	dc.Listeners.Call(&interact.Event{Type: interact.HoverOff, Node: obj, Pointer: p})
}
