// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gizmo

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/manip/scene"
)

const (
	// rotationSpeed scales trackball offsets, relative to eye distance.
	rotationSpeed = 20

	epsilon = 1e-6
)

// transform updates the local transform of the target from the drag
// start snapshot and the current point on the constraint plane.
func (ct *Controls) transform() {
	switch ct.Mode {
	case Translate:
		ct.translate()
	case Rotate:
		ct.rotate()
	case Scale:
		ct.scale()
	}
}

func (ct *Controls) translate() {
	axis := ct.axis
	offset := ct.pointEnd.Sub(ct.pointStart)
	local := ct.Space == scene.Local && axis != XYZ
	if local {
		offset = offset.MulQuat(scene.InverseQuat(ct.worldQuatStart))
	}
	offset = maskAxes(offset, axis)
	if local {
		offset = offset.MulQuat(ct.quatStart)
	} else {
		offset = offset.MulQuat(scene.InverseQuat(ct.parentQuat))
	}
	pos := ct.posStart.Add(scene.DivSafe(offset, ct.parentScale))

	if snap := ct.TranslationSnap; snap != 0 {
		if ct.Space == scene.Local {
			inv := scene.InverseQuat(ct.quatStart)
			pos = snapAxes(pos.MulQuat(inv), axis, snap).MulQuat(ct.quatStart)
		} else {
			pos = snapAxes(pos.Add(ct.parentPos), axis, snap).Sub(ct.parentPos)
		}
	}
	ct.target.Pose.Pos = pos
}

func (ct *Controls) rotate() {
	fs := &ct.frameStart
	axis := ct.axis
	var worldAxis, unit math32.Vector3
	var angle float32
	switch axis {
	case X:
		unit = math32.Vec3(1, 0, 0)
	case Y:
		unit = math32.Vec3(0, 1, 0)
	case Z:
		unit = math32.Vec3(0, 0, 1)
	case E:
		worldAxis = fs.eye
	case XYZE:
		offset := ct.pointEnd.Sub(ct.pointStart)
		ax := offset.Cross(fs.eye)
		if ax.LengthSquared() < epsilon*epsilon || fs.dist <= 0 {
			return
		}
		worldAxis = ax.Normal()
		angle = offset.Dot(worldAxis.Cross(fs.eye)) * rotationSpeed / fs.dist
	default:
		return
	}
	if unit != (math32.Vector3{}) {
		worldAxis = unit.MulQuat(fs.quat)
	}
	if axis != XYZE {
		a, ok := signedAngle(ct.pointStart, ct.pointEnd, worldAxis)
		if !ok {
			return
		}
		angle = a
	}
	if snap := ct.RotationSnap; snap != 0 {
		angle = math32.Round(angle/snap) * snap
	}

	var q math32.Quat
	if ct.Space == scene.Local && unit != (math32.Vector3{}) {
		q = scene.MulQuats(ct.quatStart, scene.NewQuatAxisAngle(unit, angle))
	} else {
		parAxis := worldAxis.MulQuat(scene.InverseQuat(ct.parentQuat))
		q = scene.MulQuats(scene.NewQuatAxisAngle(parAxis, angle), ct.quatStart)
	}
	ct.target.Pose.Quat = scene.NormalQuat(q)
}

func (ct *Controls) scale() {
	axis := ct.axis
	var ratio math32.Vector3
	if axis.IsUniform() {
		ls := ct.pointStart.Length()
		if ls < epsilon {
			return
		}
		d := ct.pointEnd.Length() / ls
		if ct.pointEnd.Dot(ct.pointStart) < 0 {
			d = -d
		}
		ratio = math32.Vec3(d, d, d)
	} else {
		inv := scene.InverseQuat(ct.worldQuatStart)
		s := ct.pointStart.MulQuat(inv)
		e := ct.pointEnd.MulQuat(inv)
		var okX, okY, okZ bool
		ratio.X, okX = axisRatio(axis.Has("X"), s.X, e.X)
		ratio.Y, okY = axisRatio(axis.Has("Y"), s.Y, e.Y)
		ratio.Z, okZ = axisRatio(axis.Has("Z"), s.Z, e.Z)
		if !(okX && okY && okZ) {
			return
		}
	}
	sc := ct.scaleStart.Mul(ratio)

	if snap := ct.ScaleSnap; snap != 0 {
		sc = snapAxes(sc, axis, snap)
		if axis.Has("X") && sc.X == 0 {
			sc.X = snap
		}
		if axis.Has("Y") && sc.Y == 0 {
			sc.Y = snap
		}
		if axis.Has("Z") && sc.Z == 0 {
			sc.Z = snap
		}
	}
	ct.target.Pose.Scale = sc
}

// axisRatio returns the scale ratio of one component,
// which is 1 if the component is not constrained.
func axisRatio(named bool, start, end float32) (float32, bool) {
	if !named {
		return 1, true
	}
	if math32.Abs(start) < epsilon {
		return 0, false
	}
	return end / start, true
}

// maskAxes zeroes the components not named by the axis.
func maskAxes(v math32.Vector3, axis Axes) math32.Vector3 {
	if !axis.Has("X") {
		v.X = 0
	}
	if !axis.Has("Y") {
		v.Y = 0
	}
	if !axis.Has("Z") {
		v.Z = 0
	}
	return v
}

// snapAxes rounds the components named by the axis to multiples of snap.
func snapAxes(v math32.Vector3, axis Axes, snap float32) math32.Vector3 {
	if axis.Has("X") {
		v.X = math32.Round(v.X/snap) * snap
	}
	if axis.Has("Y") {
		v.Y = math32.Round(v.Y/snap) * snap
	}
	if axis.Has("Z") {
		v.Z = math32.Round(v.Z/snap) * snap
	}
	return v
}

// signedAngle returns the angle from a to b around the unit normal n,
// measured in the plane perpendicular to n. It returns false if either
// vector has no component in that plane.
func signedAngle(a, b, n math32.Vector3) (float32, bool) {
	a = a.Sub(n.MulScalar(a.Dot(n)))
	b = b.Sub(n.MulScalar(b.Dot(n)))
	if a.LengthSquared() < epsilon*epsilon || b.LengthSquared() < epsilon*epsilon {
		return 0, false
	}
	return math32.Atan2(a.Cross(b).Dot(n), a.Dot(b)), true
}
