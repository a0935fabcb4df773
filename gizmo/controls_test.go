// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gizmo

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/events"
	"cogentcore.org/core/math32"
	"cogentcore.org/manip/interact"
	"cogentcore.org/manip/pointer"
	"cogentcore.org/manip/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const standardTol = float32(1.0e-4)

func assertEqualVector3(t *testing.T, expected, actual math32.Vector3) {
	t.Helper()
	tolassert.EqualTol(t, expected.X, actual.X, standardTol)
	tolassert.EqualTol(t, expected.Y, actual.Y, standardTol)
	tolassert.EqualTol(t, expected.Z, actual.Z, standardTol)
}

// newTestControls returns controls on a box at the origin, viewed by an
// orthographic camera down the -Z axis, so that device coordinates map
// directly onto world X and Y.
func newTestControls() (*Controls, *scene.Node) {
	cam := scene.NewCamera()
	cam.Ortho = true
	cam.Aspect = 1
	root := scene.NewNode(nil, "root")
	box := scene.NewNode(root, "box").SetBounds(0.2, 0.2, 0.2)
	ct := NewControls(cam)
	ct.Attach(box)
	return ct, box
}

func hover(x, y float32) *pointer.Frame {
	return &pointer.Frame{Type: pointer.FrameHover, Pointers: []*pointer.Pointer{{Position: math32.Vec2(x, y)}}}
}

func down(x, y float32) *pointer.Frame {
	return &pointer.Frame{Type: pointer.FrameDown, Pointers: []*pointer.Pointer{{Position: math32.Vec2(x, y), Button: events.Left, Buttons: 1}}}
}

func move(x, y float32) *pointer.Frame {
	fr := down(x, y)
	fr.Type = pointer.FrameMove
	return fr
}

func up(typ pointer.Types) *pointer.Frame {
	return &pointer.Frame{Type: pointer.FrameUp, Removed: []*pointer.Pointer{{Type: typ}}}
}

// drag sends a full drag from one point to another.
func drag(ct *Controls, x0, y0, x1, y1 float32) {
	ct.OnPointerDown(down(x0, y0))
	ct.OnPointerMove(move(x1, y1))
	ct.OnPointerUp(up(pointer.Mouse))
}

func TestDefaults(t *testing.T) {
	ct := NewControls(scene.NewCamera())
	assert.Equal(t, Translate, ct.Mode)
	assert.Equal(t, scene.Local, ct.Space)
	assert.Equal(t, float32(1), ct.Size)
	assert.True(t, ct.ShowX && ct.ShowY && ct.ShowZ)
	assert.Equal(t, Idle, ct.State())
	assert.True(t, ct.IsEnabled())
}

func TestAxesHas(t *testing.T) {
	assert.True(t, XYZE.Has("E"))
	assert.True(t, XZ.Has("Z"))
	assert.False(t, XZ.Has("Y"))
	assert.False(t, NoAxis.Has("X"))
	assert.True(t, XYZX.IsUniform())
	assert.True(t, XYZ.IsUniform())
	assert.False(t, XYZE.IsUniform())
	assert.False(t, XY.IsUniform())
}

func TestPick(t *testing.T) {
	ct, _ := newTestControls()
	assert.Equal(t, X, ct.Pick(math32.Vec2(0.2, 0)))
	assert.Equal(t, Y, ct.Pick(math32.Vec2(0, 0.2)))
	assert.Equal(t, XY, ct.Pick(math32.Vec2(0.1, 0.1)))
	assert.Equal(t, XYZ, ct.Pick(math32.Vec2(0.02, -0.02)))
	assert.Equal(t, NoAxis, ct.Pick(math32.Vec2(0.9, 0.9)))

	vis := map[Axes]bool{}
	for _, hs := range ct.HandleStates() {
		vis[hs.Axis] = hs.Visible
	}
	assert.False(t, vis[Z], "axis facing the eye is hidden")
	assert.False(t, vis[YZ], "plane seen edge on is hidden")
	assert.False(t, vis[XZ])
	assert.True(t, vis[XY])

	ct.ShowX = false
	ct.UpdateWorld()
	assert.Equal(t, NoAxis, ct.Pick(math32.Vec2(0.2, 0)))
	assert.Equal(t, Y, ct.Pick(math32.Vec2(0, 0.2)))
}

func TestPickRotate(t *testing.T) {
	ct, _ := newTestControls()
	ct.SetMode(Rotate)
	r := ct.frame.scale
	// the rings around X and Y are seen edge on, the one around Z face on,
	// inside the larger E ring; the center is the trackball
	assert.Equal(t, XYZE, ct.Pick(math32.Vec2(0.05, 0.05)))
	assert.Equal(t, Z, ct.Pick(math32.Vec2(r*0.707, r*0.707)))
	assert.Equal(t, E, ct.Pick(math32.Vec2(0, -1.25*r)))
	assert.Equal(t, NoAxis, ct.Pick(math32.Vec2(0.9, 0.9)))
}

func TestHighlight(t *testing.T) {
	ct, _ := newTestControls()
	ct.OnPointerHover(hover(0.1, 0.1))
	require.Equal(t, XY, ct.Axis())
	assert.Equal(t, Armed, ct.State())
	hl := map[Axes]Highlights{}
	for _, hs := range ct.HandleStates() {
		hl[hs.Axis] = hs.Highlight
	}
	assert.Equal(t, Active, hl[XY])
	assert.Equal(t, Related, hl[X])
	assert.Equal(t, Related, hl[Y])
	assert.Equal(t, Dimmed, hl[Z])
	assert.Equal(t, Dimmed, hl[XYZ])

	armed := ct.HandleStates()
	ct.OnPointerHover(hover(0.9, 0.9))
	assert.Equal(t, Idle, ct.State())
	for _, hs := range ct.HandleStates() {
		assert.Equal(t, Normal, hs.Highlight)
	}
	for _, hs := range armed {
		if hs.Axis == XY {
			assert.Equal(t, Active, hs.Highlight, "earlier states are kept")
		}
	}
}

func TestTranslateRoundTrip(t *testing.T) {
	ct, box := newTestControls()
	var got []interact.Events
	for _, typ := range []interact.Events{interact.AxisChanged, interact.DragStart, interact.Drag, interact.DragEnd} {
		ct.Listeners.Add(typ, func(ev *interact.Event) { got = append(got, ev.Type) })
	}

	ct.OnPointerHover(hover(0.2, 0))
	require.Equal(t, X, ct.Axis())
	ct.OnPointerDown(down(0.2, 0))
	assert.Equal(t, Dragging, ct.State())
	ct.OnPointerMove(move(0.5, 0.3))
	assertEqualVector3(t, math32.Vec3(0.3, 0, 0), box.Pose.Pos)
	ct.OnPointerUp(up(pointer.Mouse))
	assert.Equal(t, Armed, ct.State(), "mouse release keeps the axis")
	assert.Equal(t, []interact.Events{interact.AxisChanged, interact.DragStart, interact.Drag, interact.DragEnd}, got)

	ct.OnPointerHover(hover(0.5, 0))
	require.Equal(t, X, ct.Axis())
	drag(ct, 0.5, 0, 0.2, 0.1)
	assertEqualVector3(t, math32.Vector3{}, box.Pose.Pos)
	assertEqualVector3(t, math32.Vector3{}, box.Pose.WorldPos)
}

func TestTranslatePlane(t *testing.T) {
	ct, box := newTestControls()
	ct.SetAxis(XY)
	drag(ct, 0.1, 0.1, 0.3, -0.2)
	assertEqualVector3(t, math32.Vec3(0.2, -0.3, 0), box.Pose.Pos)
}

func TestTranslateLocal(t *testing.T) {
	ct, box := newTestControls()
	box.SetAxisRotation(0, 0, 1, 90)
	ct.UpdateWorld()
	// the local X handle points along world +Y
	ct.OnPointerHover(hover(0, 0.2))
	require.Equal(t, X, ct.Axis())
	drag(ct, 0, 0.2, 0.1, 0.5)
	assertEqualVector3(t, math32.Vec3(0, 0.3, 0), box.Pose.Pos)
}

func TestTranslateWorldRotatedParent(t *testing.T) {
	ct, box := newTestControls()
	box.Parent().SetAxisRotation(0, 0, 1, 90)
	ct.SetSpace(scene.World)
	ct.OnPointerHover(hover(0.2, 0))
	require.Equal(t, X, ct.Axis())
	drag(ct, 0.2, 0, 0.5, 0.1)
	assertEqualVector3(t, math32.Vec3(0, -0.3, 0), box.Pose.Pos)
	assertEqualVector3(t, math32.Vec3(0.3, 0, 0), box.Pose.WorldPos)
}

func TestTranslateSnap(t *testing.T) {
	ct, box := newTestControls()
	ct.TranslationSnap = 0.25
	ct.SetAxis(XY)
	drag(ct, 0.1, 0.1, 0.4, 0.2)
	assertEqualVector3(t, math32.Vec3(0.25, 0, 0), box.Pose.Pos)

	ct.SetSpace(scene.World)
	ct.SetAxis(XY)
	drag(ct, 0.35, 0.1, 0.75, 0.25)
	assertEqualVector3(t, math32.Vec3(0.75, 0.25, 0), box.Pose.Pos)
}

func TestRotate(t *testing.T) {
	for _, space := range []scene.Spaces{scene.Local, scene.World} {
		ct, box := newTestControls()
		ct.SetSpace(space)
		ct.SetMode(Rotate)
		ct.SetAxis(Z)
		drag(ct, 0.3, 0, 0, 0.3)
		assertEqualVector3(t, math32.Vec3(0, 1, 0), math32.Vec3(1, 0, 0).MulQuat(box.Pose.Quat))
	}
}

func TestRotateEye(t *testing.T) {
	ct, box := newTestControls()
	ct.SetMode(Rotate)
	ct.SetAxis(E)
	drag(ct, 0, 0.3, -0.3, 0)
	assertEqualVector3(t, math32.Vec3(-1, 0, 0), math32.Vec3(0, 1, 0).MulQuat(box.Pose.Quat))
}

func TestRotateSnap(t *testing.T) {
	ct, box := newTestControls()
	ct.RotationSnap = math32.DegToRad(15)
	ct.SetMode(Rotate)
	ct.SetAxis(Z)
	ang := math32.DegToRad(50)
	drag(ct, 0.3, 0, 0.3*math32.Cos(ang), 0.3*math32.Sin(ang))
	want := math32.DegToRad(45)
	assertEqualVector3(t, math32.Vec3(math32.Cos(want), math32.Sin(want), 0), math32.Vec3(1, 0, 0).MulQuat(box.Pose.Quat))
}

func TestScaleSpaceInvariance(t *testing.T) {
	var results []math32.Vector3
	for _, space := range []scene.Spaces{scene.Local, scene.World} {
		ct, box := newTestControls()
		ct.SetSpace(space)
		ct.SetMode(Scale)
		ct.OnPointerHover(hover(0.2, 0))
		require.Equal(t, X, ct.Axis())
		drag(ct, 0.2, 0, 0.4, 0.1)
		results = append(results, box.Pose.Scale)
	}
	assertEqualVector3(t, math32.Vec3(2, 1, 1), results[0])
	assertEqualVector3(t, results[0], results[1])
}

func TestScaleUniform(t *testing.T) {
	ct, box := newTestControls()
	ct.SetMode(Scale)
	ct.SetAxis(XYZ)
	drag(ct, 0.2, 0, 0.1, 0)
	assertEqualVector3(t, math32.Vec3(0.5, 0.5, 0.5), box.Pose.Scale)

	box.SetScale(1, 1, 1)
	ct.SetAxis(XYZX)
	drag(ct, 0.2, 0, -0.1, 0)
	assertEqualVector3(t, math32.Vec3(-0.5, -0.5, -0.5), box.Pose.Scale)
}

func TestScaleSnap(t *testing.T) {
	ct, box := newTestControls()
	ct.ScaleSnap = 0.5
	ct.SetMode(Scale)
	ct.SetAxis(X)
	drag(ct, 0.2, 0, 0.44, 0)
	assertEqualVector3(t, math32.Vec3(2, 1, 1), box.Pose.Scale)

	box.SetScale(1, 1, 1)
	drag(ct, 0.2, 0, 0.02, 0)
	// rounding to zero yields the snap
	assertEqualVector3(t, math32.Vec3(0.5, 1, 1), box.Pose.Scale)
}

func TestParallelHold(t *testing.T) {
	ct, box := newTestControls()
	drags := 0
	ct.Listeners.Add(interact.Drag, func(ev *interact.Event) { drags++ })
	ct.SetAxis(XY)
	ct.OnPointerDown(down(0.1, 0.1))
	ct.OnPointerMove(move(0.2, 0.1))
	assertEqualVector3(t, math32.Vec3(0.1, 0, 0), box.Pose.Pos)

	// looking along X, every ray is parallel to the XY plane
	ct.Camera.Pose.Pos.Set(10, 0, 0)
	ct.Camera.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
	ct.OnPointerMove(move(0.5, 0.5))
	assertEqualVector3(t, math32.Vec3(0.1, 0, 0), box.Pose.Pos)
	assert.Equal(t, 1, drags)
	assert.Equal(t, Dragging, ct.State())

	// picking is suppressed while dragging
	ct.OnPointerHover(hover(0.9, 0.9))
	assert.Equal(t, XY, ct.Axis())
}

func TestDownRequirements(t *testing.T) {
	ct, _ := newTestControls()
	ct.OnPointerDown(down(0.2, 0))
	assert.Equal(t, Idle, ct.State(), "no axis")

	ct.SetAxis(X)
	right := down(0.2, 0)
	right.First().Button = events.Right
	ct.OnPointerDown(right)
	assert.Equal(t, Armed, ct.State(), "not the primary button")

	ct.SetEnabled(false)
	ct.OnPointerDown(down(0.2, 0))
	assert.False(t, ct.IsDragging())
	ct.SetEnabled(true)

	ct.Detach()
	ct.OnPointerDown(down(0.2, 0))
	assert.Equal(t, Idle, ct.State())
}

func TestRelease(t *testing.T) {
	frames := []*pointer.Frame{
		hover(0.2, 0), down(0.2, 0), move(0.4, 0), move(0.6, 0.1),
		{Type: pointer.FrameUp, Pointers: []*pointer.Pointer{{Position: math32.Vec2(0.6, 0)}}},
		up(pointer.Touch),
	}
	// every sequence of up to four frames, followed by a full release
	var run func(seq []*pointer.Frame)
	run = func(seq []*pointer.Frame) {
		ct, _ := newTestControls()
		ends := 0
		ct.Listeners.Add(interact.DragEnd, func(ev *interact.Event) { ends++ })
		for _, fr := range seq {
			switch fr.Type {
			case pointer.FrameHover:
				ct.OnPointerHover(fr)
			case pointer.FrameDown:
				ct.OnPointerDown(fr)
			case pointer.FrameMove:
				ct.OnPointerMove(fr)
			case pointer.FrameUp:
				ct.OnPointerUp(fr)
			}
		}
		started := ct.IsDragging()
		before := ends
		ct.OnPointerUp(up(pointer.Mouse))
		assert.NotEqual(t, Dragging, ct.State())
		if started {
			assert.Equal(t, before+1, ends)
		}
		if len(seq) == 4 {
			return
		}
		for _, fr := range frames {
			run(append(seq[:len(seq):len(seq)], fr))
		}
	}
	run(nil)
}

func TestForcedRelease(t *testing.T) {
	ct, box := newTestControls()
	ct.SetAxis(X)
	ct.OnPointerDown(down(0.2, 0))
	ct.OnPointerMove(move(0.4, 0))
	ct.SetEnabled(false)
	assert.Equal(t, Idle, ct.State())
	assertEqualVector3(t, math32.Vec3(0.2, 0, 0), box.Pose.Pos)

	ct.SetEnabled(true)
	ct.SetAxis(X)
	ct.OnPointerDown(down(0.4, 0))
	ct.OnPointerUp(up(pointer.Touch))
	assert.Equal(t, Idle, ct.State(), "touch release clears the axis")

	ct.SetAxis(X)
	ct.OnPointerDown(down(0.4, 0))
	ct.Detach()
	assert.Equal(t, Idle, ct.State())
	assert.Nil(t, ct.Target())
}
