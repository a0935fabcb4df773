// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gizmo

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/manip/scene"
)

// Shapes are the kinds of invisible pick volume.
type Shapes int32

const (
	// BoxShape is an axis aligned box in gizmo coordinates.
	BoxShape Shapes = iota

	// RingShape is a torus around an axis through the gizmo center.
	RingShape

	// SphereShape is a sphere at the gizmo center.
	SphereShape
)

// Handle is the pick volume of one axis, in gizmo coordinates
// before the handle scale is applied.
type Handle struct {
	Axis  Axes
	Shape Shapes

	// Box is the extent of a BoxShape.
	Box math32.Box3

	// Normal is the axis of a RingShape, in gizmo coordinates.
	// A zero normal faces the eye.
	Normal math32.Vector3

	// Radius is the radius of a RingShape or SphereShape.
	Radius float32

	// Tube is the half thickness of a RingShape.
	Tube float32
}

// HandleState is the per-frame display state of one handle,
// for use by a renderer.
type HandleState struct {
	Axis      Axes
	Visible   bool
	Highlight Highlights
}

const (
	// axisHideThreshold hides single axis handles pointing at the eye.
	axisHideThreshold = 0.99

	// planeHideThreshold hides plane handles seen edge on.
	planeHideThreshold = 0.2

	ringSamples = 64
)

func axisBox(axis Axes, from, to, half float32) Handle {
	var b math32.Box3
	switch axis {
	case X, XYZX:
		b = math32.B3(from, -half, -half, to, half, half)
	case Y, XYZY:
		b = math32.B3(-half, from, -half, half, to, half)
	case Z, XYZZ:
		b = math32.B3(-half, -half, from, half, half, to)
	}
	return Handle{Axis: axis, Shape: BoxShape, Box: b}
}

func planeBox(axis Axes, from, to float32) Handle {
	const thin = 0.01
	var b math32.Box3
	switch axis {
	case XY:
		b = math32.B3(from, from, -thin, to, to, thin)
	case YZ:
		b = math32.B3(-thin, from, from, thin, to, to)
	case XZ:
		b = math32.B3(from, -thin, from, to, thin, to)
	}
	return Handle{Axis: axis, Shape: BoxShape, Box: b}
}

func cube(axis Axes, center math32.Vector3, half float32) Handle {
	hv := math32.Vec3(half, half, half)
	return Handle{Axis: axis, Shape: BoxShape, Box: math32.Box3{Min: center.Sub(hv), Max: center.Add(hv)}}
}

func ring(axis Axes, normal math32.Vector3, radius float32) Handle {
	return Handle{Axis: axis, Shape: RingShape, Normal: normal, Radius: radius, Tube: 0.1}
}

// Pick volumes for each mode. These are shared by all controls and never modified.
var (
	TranslateHandles = []Handle{
		axisBox(X, 0.1, 1.1, 0.1),
		axisBox(Y, 0.1, 1.1, 0.1),
		axisBox(Z, 0.1, 1.1, 0.1),
		cube(XYZ, math32.Vector3{}, 0.2),
		planeBox(XY, 0, 0.4),
		planeBox(YZ, 0, 0.4),
		planeBox(XZ, 0, 0.4),
	}

	RotateHandles = []Handle{
		ring(X, math32.Vec3(1, 0, 0), 1),
		ring(Y, math32.Vec3(0, 1, 0), 1),
		ring(Z, math32.Vec3(0, 0, 1), 1),
		ring(E, math32.Vector3{}, 1.25),
		{Axis: XYZE, Shape: SphereShape, Radius: 0.7},
	}

	ScaleHandles = []Handle{
		axisBox(X, 0.1, 0.9, 0.1),
		axisBox(Y, 0.1, 0.9, 0.1),
		axisBox(Z, 0.1, 0.9, 0.1),
		cube(XYZ, math32.Vector3{}, 0.1),
		planeBox(XY, 0.7, 1),
		planeBox(YZ, 0.7, 1),
		planeBox(XZ, 0.7, 1),
		cube(XYZX, math32.Vec3(1.1, 0, 0), 0.1),
		cube(XYZY, math32.Vec3(0, 1.1, 0), 0.1),
		cube(XYZZ, math32.Vec3(0, 0, 1.1), 0.1),
	}
)

// HandlesFor returns the pick volumes for the given mode.
func HandlesFor(mode Modes) []Handle {
	switch mode {
	case Rotate:
		return RotateHandles
	case Scale:
		return ScaleHandles
	}
	return TranslateHandles
}

// frame is the placement of the gizmo in the world for one frame.
type frame struct {
	pos   math32.Vector3
	quat  math32.Quat
	scale float32

	// eye is the unit vector from the gizmo towards the camera.
	eye math32.Vector3

	// dist is the eye distance used for screen sized handles.
	dist float32
}

// axisDir returns the world direction of the given unit axis of the frame.
func (fr *frame) axisDir(x, y, z float32) math32.Vector3 {
	return math32.Vec3(x, y, z).MulQuat(fr.quat)
}

// toLocal returns the ray in gizmo coordinates, including handle scale.
func (fr *frame) toLocal(ray math32.Ray) math32.Ray {
	inv := scene.InverseQuat(fr.quat)
	org := ray.Origin.Sub(fr.pos).MulQuat(inv).DivScalar(fr.scale)
	dir := ray.Dir.MulQuat(inv)
	return math32.Ray{Origin: org, Dir: dir}
}

// intersect returns the distance along the world ray at which it enters
// the handle, in handle-scaled units of the local ray.
func (h *Handle) intersect(fr *frame, local math32.Ray) (float32, bool) {
	switch h.Shape {
	case BoxShape:
		pt, ok := local.IntersectBox(h.Box)
		if !ok {
			return 0, false
		}
		return pt.Sub(local.Origin).Dot(local.Dir), true
	case SphereShape:
		return raySphere(local, math32.Vector3{}, h.Radius)
	case RingShape:
		n := h.Normal
		if n == (math32.Vector3{}) {
			n = fr.eye.MulQuat(scene.InverseQuat(fr.quat))
		}
		return rayRing(local, n, h.Radius, h.Tube)
	}
	return 0, false
}

// raySphere returns the ray parameter of the first intersection
// with the given sphere in front of the origin.
func raySphere(ray math32.Ray, center math32.Vector3, radius float32) (float32, bool) {
	oc := ray.Origin.Sub(center)
	b := oc.Dot(ray.Dir)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math32.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// rayRing returns the ray parameter of the closest approach to a circle
// of the given radius around the given normal, if within tube distance.
// The circle is sampled, which is plenty for a pick volume.
func rayRing(ray math32.Ray, normal math32.Vector3, radius, tube float32) (float32, bool) {
	normal = normal.Normal()
	u := normal.Cross(math32.Vec3(1, 0, 0))
	if u.LengthSquared() < 1e-6 {
		u = normal.Cross(math32.Vec3(0, 1, 0))
	}
	u = u.Normal()
	v := normal.Cross(u)
	best := math32.Inf(1)
	for i := range ringSamples {
		ang := 2 * math32.Pi * float32(i) / ringSamples
		s, c := math32.Sincos(ang)
		pt := u.MulScalar(c * radius).Add(v.MulScalar(s * radius))
		t := pt.Sub(ray.Origin).Dot(ray.Dir)
		if t < 0 {
			continue
		}
		closest := ray.Origin.Add(ray.Dir.MulScalar(t))
		if closest.DistanceTo(pt) <= tube && t < best {
			best = t
		}
	}
	if math32.IsInf(best, 1) {
		return 0, false
	}
	return best, true
}

// pick returns the axis of the nearest visible handle hit by the world ray.
func pick(handles []Handle, states []HandleState, fr *frame, ray math32.Ray) Axes {
	if fr.scale <= 0 {
		return NoAxis
	}
	local := fr.toLocal(ray)
	best := NoAxis
	bestT := math32.Inf(1)
	for i := range handles {
		if !states[i].Visible {
			continue
		}
		t, ok := handles[i].intersect(fr, local)
		if ok && t < bestT {
			best = handles[i].Axis
			bestT = t
		}
	}
	return best
}

// updateStates sets the visibility and highlight of each handle.
func updateStates(states []HandleState, handles []Handle, pr *Params, fr *frame, axis Axes) []HandleState {
	states = states[:0]
	for i := range handles {
		h := &handles[i]
		hs := HandleState{Axis: h.Axis, Visible: true}
		if (h.Axis.Has("X") && !pr.ShowX) || (h.Axis.Has("Y") && !pr.ShowY) || (h.Axis.Has("Z") && !pr.ShowZ) {
			hs.Visible = false
		}
		if h.Axis.Has("E") && !(pr.ShowX && pr.ShowY && pr.ShowZ) {
			hs.Visible = false
		}
		if pr.Mode != Rotate {
			align := func(x, y, z float32) float32 {
				return math32.Abs(fr.axisDir(x, y, z).Dot(fr.eye))
			}
			switch h.Axis {
			case X, XYZX:
				hs.Visible = hs.Visible && align(1, 0, 0) <= axisHideThreshold
			case Y, XYZY:
				hs.Visible = hs.Visible && align(0, 1, 0) <= axisHideThreshold
			case Z, XYZZ:
				hs.Visible = hs.Visible && align(0, 0, 1) <= axisHideThreshold
			case XY:
				hs.Visible = hs.Visible && align(0, 0, 1) >= planeHideThreshold
			case YZ:
				hs.Visible = hs.Visible && align(1, 0, 0) >= planeHideThreshold
			case XZ:
				hs.Visible = hs.Visible && align(0, 1, 0) >= planeHideThreshold
			}
		}
		hs.Highlight = highlight(h.Axis, axis)
		states = append(states, hs)
	}
	return states
}

// highlight returns the highlight of the handle for the given active axis.
func highlight(handle, axis Axes) Highlights {
	switch {
	case axis == NoAxis:
		return Normal
	case handle == axis:
		return Active
	case len(handle.String()) == 1 && axis.Has(handle.String()):
		return Related
	}
	return Dimmed
}
