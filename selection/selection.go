// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package selection maintains an ordered set of selected scene nodes and a
// pivot node standing for all of them: moving the pivot, for example with
// transform controls, moves every selected node by the same delta.
package selection

import (
	"log/slog"
	"slices"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/core/events/key"
	"cogentcore.org/core/math32"
	"cogentcore.org/manip/interact"
	"cogentcore.org/manip/pointer"
	"cogentcore.org/manip/scene"
)

// Selection is an ordered set of nodes, without duplicates, and the pivot
// that transforms them. The set is only changed through its methods,
// each of which recomputes the pivot and sends [interact.Change] and
// [interact.SelectionChanged].
type Selection struct {
	Params

	// Camera is used to turn click positions into rays.
	Camera *scene.Camera

	// Scene is the root searched by [Selection.Select].
	Scene *scene.Node

	// Pivot is the node whose change from one frame to the next is
	// applied to all of the selected nodes. It is not part of the scene.
	Pivot *scene.Node

	// Listeners receive the events of this selection.
	Listeners interact.Listeners

	// Guard, if set, is asked on pointer down whether the press may
	// become a click, so that other controllers can claim it.
	Guard func(p *pointer.Pointer) bool

	// Now returns the current time; it defaults to [time.Now].
	Now func() time.Time

	selected []*scene.Node

	// the pivot transform as of the last ApplyDelta or RecomputePivot
	prevPos   math32.Vector3
	prevQuat  math32.Quat
	prevScale math32.Vector3

	downTime  time.Time
	clickable bool
}

// Params are the user settable parameters of a [Selection].
type Params struct {

	// Space is the space in which the delta of the pivot is applied.
	// Use [Selection.SetSpace] to change it on a live selection.
	Space scene.Spaces `default:"Local"`

	// TransformSelection enables moving the selection with the pivot.
	TransformSelection bool `default:"true"`

	// ClickTime is the longest press that counts as a click;
	// it defaults to 250ms.
	ClickTime time.Duration

	// ClickDistance is the furthest a pointer can move, in normalized
	// device coordinates, during a press that counts as a click.
	ClickDistance float32 `default:"0.01"`
}

func (pr *Params) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(pr))
	pr.ClickTime = 250 * time.Millisecond
}

var (
	_ interact.InputRoutable = (*Selection)(nil)
	_ interact.WorldFollower = (*Selection)(nil)
)

// New returns a new selection of nodes in the given scene.
func New(cam *scene.Camera, root *scene.Node) *Selection {
	sl := &Selection{Camera: cam, Scene: root}
	sl.Defaults()
	return sl
}

// Defaults sets the parameters to their defaults and resets the pivot.
// The camera and scene are left as they are.
func (sl *Selection) Defaults() {
	sl.Params.Defaults()
	sl.Now = time.Now
	sl.Pivot = scene.NewNode(nil, "selection")
	sl.RecomputePivot()
}

// Selected returns a copy of the selected nodes, in order.
func (sl *Selection) Selected() []*scene.Node {
	return slices.Clone(sl.selected)
}

// Len returns the number of selected nodes.
func (sl *Selection) Len() int {
	return len(sl.selected)
}

// Has returns true if the node is selected.
func (sl *Selection) Has(nd *scene.Node) bool {
	return slices.Contains(sl.selected, nd)
}

// Items returns the given nodes, with all of their descendants if
// recursive, keeping only those for which the filter returns true.
// A nil filter keeps everything.
func Items(list []*scene.Node, recursive bool, filter func(nd *scene.Node) bool) []*scene.Node {
	var items []*scene.Node
	for _, nd := range list {
		if nd == nil {
			continue
		}
		if filter == nil || filter(nd) {
			items = append(items, nd)
		}
		if recursive {
			items = append(items, Items(nd.Children(), recursive, filter)...)
		}
	}
	return items
}

// Toggle removes each of the nodes that is selected, and adds each one
// that is not.
func (sl *Selection) Toggle(nodes ...*scene.Node) {
	old := sl.Selected()
	for i := len(nodes) - 1; i >= 0; i-- {
		nd := nodes[i]
		if nd == nil {
			continue
		}
		if j := slices.Index(sl.selected, nd); j >= 0 {
			sl.selected = slices.Delete(sl.selected, j, j+1)
		} else {
			sl.selected = append(sl.selected, nd)
		}
	}
	sl.update(old)
}

// Add adds the nodes that are not already selected, at the end.
func (sl *Selection) Add(nodes ...*scene.Node) {
	old := sl.Selected()
	sl.selected = appendNew(sl.selected, nodes...)
	sl.update(old)
}

// AddFirst adds the nodes at the start of the selection,
// moving any that were already selected.
func (sl *Selection) AddFirst(nodes ...*scene.Node) {
	old := sl.Selected()
	sl.selected = appendNew(nil, nodes...)
	sl.selected = appendNew(sl.selected, old...)
	sl.update(old)
}

// Remove removes the nodes that are selected.
func (sl *Selection) Remove(nodes ...*scene.Node) {
	old := sl.Selected()
	sl.selected = slices.DeleteFunc(sl.selected, func(nd *scene.Node) bool {
		return slices.Contains(nodes, nd)
	})
	sl.update(old)
}

// Replace makes the nodes the whole selection.
func (sl *Selection) Replace(nodes ...*scene.Node) {
	old := sl.Selected()
	sl.selected = appendNew(nil, nodes...)
	sl.update(old)
}

// Clear removes everything from the selection.
func (sl *Selection) Clear() {
	old := sl.Selected()
	sl.selected = nil
	sl.update(old)
}

// appendNew appends the non-nil nodes that are not already in the list.
func appendNew(list []*scene.Node, nodes ...*scene.Node) []*scene.Node {
	for _, nd := range nodes {
		if nd != nil && !slices.Contains(list, nd) {
			list = append(list, nd)
		}
	}
	return list
}

// Select picks the nearest node of the scene under the given position, in
// normalized device coordinates. It becomes the whole selection, or with
// additive, is toggled. Nothing under the position clears the selection,
// unless additive.
func (sl *Selection) Select(ndc math32.Vector2, additive bool) {
	if sl.Scene == nil || sl.Camera == nil {
		return
	}
	sl.Scene.UpdateWorldTransform()
	hits := sl.Scene.Raycast(sl.Camera.Ray(ndc))
	switch {
	case len(hits) > 0 && additive:
		sl.Toggle(hits[0].Node)
	case len(hits) > 0:
		sl.Replace(hits[0].Node)
	case !additive:
		sl.Clear()
	}
}

// SetSpace sets the space in which the pivot moves the selection,
// recomputing the pivot.
func (sl *Selection) SetSpace(space scene.Spaces) {
	if space == sl.Space {
		return
	}
	sl.Space = space
	sl.update(sl.Selected())
}

// SetTransformSelection sets whether moving the pivot moves the selection,
// recomputing the pivot.
func (sl *Selection) SetTransformSelection(on bool) {
	if on == sl.TransformSelection {
		return
	}
	sl.TransformSelection = on
	sl.update(sl.Selected())
}

// update recomputes the pivot and sends the change events,
// given the selection before the change.
func (sl *Selection) update(old []*scene.Node) {
	sl.RecomputePivot()
	var added, removed []*scene.Node
	for _, nd := range sl.selected {
		if !slices.Contains(old, nd) {
			added = append(added, nd)
		}
	}
	for _, nd := range old {
		if !slices.Contains(sl.selected, nd) {
			removed = append(removed, nd)
		}
	}
	slog.Debug("selection changed", "selected", len(sl.selected), "added", len(added), "removed", len(removed))
	sl.Listeners.Send(interact.Change, sl.Pivot)
	sl.Listeners.Call(&interact.Event{Type: interact.SelectionChanged, Node: sl.Pivot,
		Selected: sl.Selected(), Added: added, Removed: removed})
}

// isAncestorOfSelected returns true if the node is an ancestor of another
// selected node. It is evaluated against the current selection every time.
func (sl *Selection) isAncestorOfSelected(nd *scene.Node) bool {
	for _, other := range sl.selected {
		if other != nd && nd.IsAncestorOf(other) {
			return true
		}
	}
	return false
}

func (sl *Selection) OnPointerHover(fr *pointer.Frame) {}

func (sl *Selection) OnPointerMove(fr *pointer.Frame) {}

func (sl *Selection) OnPointerDown(fr *pointer.Frame) {
	sl.downTime = sl.Now()
	sl.clickable = sl.Guard == nil || sl.Guard(fr.First())
}

// OnPointerUp selects on a click: the last pointer released quickly
// without moving. Holding Control makes it additive.
func (sl *Selection) OnPointerUp(fr *pointer.Frame) {
	p := fr.FirstRemoved()
	if fr.Len() > 0 || p == nil || !sl.clickable {
		return
	}
	sl.clickable = false
	if sl.Now().Sub(sl.downTime) >= sl.ClickTime {
		return
	}
	if p.Distance.Length() >= sl.ClickDistance {
		return
	}
	sl.Select(p.Position, p.HasMod(key.Control))
}

// UpdateWorld applies any change of the pivot since the last frame
// to the selection.
func (sl *Selection) UpdateWorld() {
	sl.ApplyDelta()
}
