// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/core/math32"
)

// Camera defines the properties of the camera used to turn pointer
// positions into picking rays. Only the camera pose and projection
// type matter here; rendering matrices belong to the renderer.
type Camera struct {

	// Pose is the overall orientation and direction of the camera,
	// relative to pointing at negative Z axis with up (positive Y) direction.
	Pose Pose

	// Target is where the camera is pointing at, reset by [Camera.LookAt].
	Target math32.Vector3

	// UpDir is which way is up, reset by [Camera.LookAt].
	UpDir math32.Vector3

	// Ortho makes this an orthographic camera instead of the default perspective one.
	Ortho bool

	// FOV is the vertical field of view in degrees (perspective only).
	FOV float32 `default:"30"`

	// Aspect is the aspect ratio (width / height).
	Aspect float32 `default:"1.5"`

	// OrthoHeight is the height of the visible volume in world units
	// (orthographic only).
	OrthoHeight float32 `default:"2"`
}

// NewCamera returns a new perspective camera with default parameters.
func NewCamera() *Camera {
	cm := &Camera{}
	cm.Defaults()
	return cm
}

func (cm *Camera) Defaults() {
	cm.FOV = 30
	cm.Aspect = 1.5
	cm.OrthoHeight = 2
	cm.DefaultPose()
}

// DefaultPose resets the camera pose to default location and orientation, looking
// at the origin from 0,0,10, with up Y axis
func (cm *Camera) DefaultPose() {
	cm.Pose.Defaults()
	cm.Pose.Pos.Set(0, 0, 10)
	cm.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
}

// LookAt points the camera at given target location, using given up direction,
// and sets the Target, UpDir fields for future camera movements.
func (cm *Camera) LookAt(target, upDir math32.Vector3) {
	cm.Target = target
	if upDir == (math32.Vector3{}) {
		upDir = math32.Vec3(0, 1, 0)
	}
	cm.UpDir = upDir
	cm.Pose.LookAt(target, upDir)
	cm.Pose.UpdateWorld(nil)
}

// Direction returns the normalized world direction the camera is looking in.
func (cm *Camera) Direction() math32.Vector3 {
	return math32.Vec3(0, 0, -1).MulQuat(cm.Pose.Quat).Normal()
}

// Ray returns the picking ray through the given normalized device
// coordinates, where x and y range from -1 (left, bottom) to 1 (right, top).
func (cm *Camera) Ray(ndc math32.Vector2) math32.Ray {
	if cm.Ortho {
		hh := cm.OrthoHeight / 2
		off := math32.Vec3(ndc.X*hh*cm.Aspect, ndc.Y*hh, 0).MulQuat(cm.Pose.Quat)
		return NewRay(cm.Pose.Pos.Add(off), cm.Direction())
	}
	th := math32.Tan(math32.DegToRad(cm.FOV) / 2)
	dir := math32.Vec3(ndc.X*th*cm.Aspect, ndc.Y*th, -1).MulQuat(cm.Pose.Quat)
	return NewRay(cm.Pose.Pos, dir)
}

// Eye returns the unit vector from the given world point towards the
// camera, and the distance used to scale screen-sized handles. For an
// orthographic camera the eye is the reverse view direction and the
// distance is the visible height.
func (cm *Camera) Eye(at math32.Vector3) (math32.Vector3, float32) {
	if cm.Ortho {
		return cm.Direction().Negate(), cm.OrthoHeight
	}
	ev := cm.Pose.Pos.Sub(at)
	dist := ev.Length()
	if dist == 0 {
		return cm.Direction().Negate(), 0
	}
	return ev.DivScalar(dist), dist
}
