// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/core/math32"
)

// Pose contains the full specification of position, orientation and scale,
// always relative to the parent element, along with the derived world values.
type Pose struct {

	// Pos is the position of the center of the element, relative to its parent.
	Pos math32.Vector3

	// Scale is the scale, relative to its parent.
	Scale math32.Vector3

	// Quat is the rotation specified as a quaternion, relative to its parent.
	Quat math32.Quat

	// Matrix is the local matrix, containing all position, rotation
	// and scale information relative to the parent.
	Matrix math32.Matrix4 `display:"-"`

	// WorldMatrix is the world matrix, containing all absolute position,
	// rotation and scale information (relative to the very top parent).
	WorldMatrix math32.Matrix4 `display:"-"`

	// WorldPos is the world position, updated with the WorldMatrix.
	WorldPos math32.Vector3 `display:"-"`

	// WorldQuat is the world rotation, updated with the WorldMatrix.
	WorldQuat math32.Quat `display:"-"`

	// WorldScale is the world scale, updated with the WorldMatrix.
	WorldScale math32.Vector3 `display:"-"`
}

// Defaults sets defaults only if current values are nil
func (ps *Pose) Defaults() {
	if ps.Scale == (math32.Vector3{}) {
		ps.Scale.Set(1, 1, 1)
	}
	if ps.Quat == (math32.Quat{}) {
		ps.Quat = IdentityQuat()
	}
}

// UpdateMatrix updates the local transform matrix based on its position,
// quaternion, and scale. Also checks for degenerate nil values.
func (ps *Pose) UpdateMatrix() {
	ps.Defaults()
	ps.Matrix.SetTransform(ps.Pos, ps.Quat, ps.Scale)
}

// UpdateWorld updates the world values and WorldMatrix from the local
// values and the given parent pose, which must already be up to date.
// A nil parent is treated as the identity transform.
// Composition is exact for uniformly scaled parents; non-uniform parent
// scale applied to a rotated child does not carry shear.
func (ps *Pose) UpdateWorld(par *Pose) {
	ps.UpdateMatrix()
	if par == nil {
		ps.WorldPos = ps.Pos
		ps.WorldQuat = ps.Quat
		ps.WorldScale = ps.Scale
	} else {
		ps.WorldPos = par.WorldPos.Add(ps.Pos.Mul(par.WorldScale).MulQuat(par.WorldQuat))
		ps.WorldQuat = MulQuats(par.WorldQuat, ps.Quat)
		ps.WorldScale = par.WorldScale.Mul(ps.Scale)
	}
	ps.WorldMatrix.SetTransform(ps.WorldPos, ps.WorldQuat, ps.WorldScale)
}

// SetAxisRotation sets rotation from local axis and angle in degrees.
func (ps *Pose) SetAxisRotation(x, y, z, angle float32) {
	ps.Quat = NewQuatAxisAngle(math32.Vec3(x, y, z), math32.DegToRad(angle))
}

// RotateOnAxis turns the pose by the given angle in degrees about the
// given axis, in its own local frame.
func (ps *Pose) RotateOnAxis(x, y, z, angle float32) {
	ps.Quat = MulQuats(ps.Quat, NewQuatAxisAngle(math32.Vec3(x, y, z), math32.DegToRad(angle)))
}

// LookAt points the element at given target location using given up direction.
func (ps *Pose) LookAt(target, upDir math32.Vector3) {
	ps.Quat.SetFromRotationMatrix(math32.NewLookAt(ps.Pos, target, upDir))
}

// IdentityQuat returns the identity rotation.
func IdentityQuat() math32.Quat {
	return math32.NewQuat(0, 0, 0, 1)
}

// NewQuatAxisAngle returns the rotation of angle radians around the
// given axis, which does not need to be normalized.
func NewQuatAxisAngle(axis math32.Vector3, angle float32) math32.Quat {
	return math32.NewQuatAxisAngle(axis.Normal(), angle)
}

// MulQuats returns the product a * b: the rotation b followed by a.
func MulQuats(a, b math32.Quat) math32.Quat {
	return a.Mul(b)
}

// InverseQuat returns the inverse of the given rotation.
func InverseQuat(q math32.Quat) math32.Quat {
	return q.Inverse()
}

// NormalQuat returns the given rotation normalized to unit length.
func NormalQuat(q math32.Quat) math32.Quat {
	q.Normalize()
	return q
}

// DivSafe divides a by b componentwise, leaving components
// of a unchanged where b is zero.
func DivSafe(a, b math32.Vector3) math32.Vector3 {
	if b.X != 0 {
		a.X /= b.X
	}
	if b.Y != 0 {
		a.Y /= b.Y
	}
	if b.Z != 0 {
		a.Z /= b.Z
	}
	return a
}
