// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gizmo

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	fmath "github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

// planarAngle is the angle from a to b in the XY plane, in (-Pi, Pi].
func planarAngle(a, b math32.Vector3) float32 {
	d := fmath.Atan2(b.Y, b.X) - fmath.Atan2(a.Y, a.X)
	if d > fmath.Pi {
		d -= 2 * fmath.Pi
	}
	if d <= -fmath.Pi {
		d += 2 * fmath.Pi
	}
	return d
}

func TestSignedAngle(t *testing.T) {
	z := math32.Vec3(0, 0, 1)
	for _, c := range []struct{ a, b math32.Vector3 }{
		{math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0)},
		{math32.Vec3(1, 0, 0), math32.Vec3(0, -1, 0)},
		{math32.Vec3(1, 1, 3), math32.Vec3(-1, 2, -5)},
		{math32.Vec3(0.2, -0.7, 0), math32.Vec3(-0.3, -0.1, 1)},
		{math32.Vec3(2, 0.001, 0), math32.Vec3(-2, 0.5, 0)},
	} {
		got, ok := signedAngle(c.a, c.b, z)
		assert.True(t, ok)
		tolassert.EqualTol(t, planarAngle(c.a, c.b), got, 1.0e-5)
		back, _ := signedAngle(c.b, c.a, z)
		tolassert.EqualTol(t, -got, back, 1.0e-5)
	}

	_, ok := signedAngle(math32.Vec3(0, 0, 2), math32.Vec3(1, 0, 0), z)
	assert.False(t, ok, "a vector along the normal has no angle")
}

func TestSnapAxes(t *testing.T) {
	v := math32.Vec3(0.37, -1.26, 2.51)
	const snap = float32(0.25)
	got := snapAxes(v, XZ, snap)
	tolassert.EqualTol(t, fmath.Round(v.X/snap)*snap, got.X, 1.0e-6)
	tolassert.EqualTol(t, v.Y, got.Y, 1.0e-6)
	tolassert.EqualTol(t, fmath.Round(v.Z/snap)*snap, got.Z, 1.0e-6)
	tolassert.EqualTol(t, 0.25, got.X, 1.0e-6)
	tolassert.EqualTol(t, 2.5, got.Z, 1.0e-6)

	masked := maskAxes(v, Y)
	assert.Equal(t, math32.Vec3(0, v.Y, 0), masked)
}
