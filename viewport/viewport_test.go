// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewport

import (
	"image"
	"testing"
	"time"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/events"
	"cogentcore.org/manip/gizmo"
	"cogentcore.org/manip/interact"
	"cogentcore.org/manip/pointer"
	"cogentcore.org/manip/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const standardTol = float32(1.0e-4)

// newTestViewport returns a 200x200 viewport on a scene with a cube at the
// origin, viewed by an orthographic camera down the -Z axis, so that the
// pixel (100+100x, 100-100y) looks at the world point (x, y).
func newTestViewport() (*Viewport, *scene.Node) {
	cam := scene.NewCamera()
	cam.Ortho = true
	root := scene.NewNode(nil, "root")
	cube := scene.NewNode(root, "cube").SetBounds(0.2, 0.2, 0.2)
	vp := New(image.Pt(200, 200), cam, root)
	clock := time.Unix(0, 0)
	vp.Selection.Now = func() time.Time { return clock }
	return vp, cube
}

func hover(vp *Viewport, x, y int) {
	vp.HandleMouse(events.NewMouseMove(events.NoButton, image.Pt(x, y), image.Pt(x, y), 0))
}

func click(vp *Viewport, x, y int) {
	hover(vp, x, y)
	vp.HandleMouse(events.NewMouse(events.MouseDown, events.Left, image.Pt(x, y), 0))
	vp.HandleMouse(events.NewMouse(events.MouseUp, events.Left, image.Pt(x, y), 0))
}

func dragMouse(vp *Viewport, x0, y0, x1, y1 int) {
	hover(vp, x0, y0)
	vp.HandleMouse(events.NewMouse(events.MouseDown, events.Left, image.Pt(x0, y0), 0))
	vp.HandleMouse(events.NewMouseDrag(events.Left, image.Pt(x1, y1), image.Pt(x0, y0), image.Pt(x0, y0), 0))
	vp.HandleMouse(events.NewMouse(events.MouseUp, events.Left, image.Pt(x1, y1), 0))
}

func TestNew(t *testing.T) {
	vp, _ := newTestViewport()
	assert.Equal(t, float32(1), vp.Camera.Aspect)
	require.Len(t, vp.Dispatcher.Controllers(), 3)
	assert.True(t, vp.Dispatcher.IsEnabled(vp.Gizmo))
	assert.True(t, vp.Dispatcher.IsEnabled(vp.Selection))
	assert.False(t, vp.IsDragMode())
	assert.Nil(t, vp.Gizmo.Target())

	vp.SetSize(image.Pt(300, 200))
	assert.Equal(t, float32(1.5), vp.Camera.Aspect)
}

func TestCameraKept(t *testing.T) {
	cam := scene.NewCamera()
	cam.FOV = 60
	cam.OrthoHeight = 8
	vp := New(image.Pt(200, 200), cam, scene.NewNode(nil, "root"))
	assert.Equal(t, float32(60), vp.Camera.FOV)
	assert.Equal(t, float32(8), vp.Camera.OrthoHeight)
	assert.Equal(t, float32(1), vp.Camera.Aspect)
}

func TestDisableArmed(t *testing.T) {
	vp, cube := newTestViewport()
	click(vp, 100, 100)
	require.Equal(t, []*scene.Node{cube}, vp.Selection.Selected())

	hover(vp, 120, 100)
	require.Equal(t, gizmo.Armed, vp.Gizmo.State())
	vp.Dispatcher.SetEnabled(vp.Gizmo, false)
	assert.Equal(t, gizmo.Idle, vp.Gizmo.State())
	assert.Equal(t, gizmo.NoAxis, vp.Gizmo.Axis())

	vp.Dispatcher.SetEnabled(vp.Gizmo, true)
	hover(vp, 120, 100)
	require.Equal(t, gizmo.Armed, vp.Gizmo.State())
	vp.Dispatcher.Release()
	assert.Equal(t, gizmo.Idle, vp.Gizmo.State())
}

func TestSelectAndTranslate(t *testing.T) {
	vp, cube := newTestViewport()
	click(vp, 100, 100)
	require.Equal(t, []*scene.Node{cube}, vp.Selection.Selected())
	require.Equal(t, vp.Selection.Pivot, vp.Gizmo.Target())

	ends := 0
	vp.Gizmo.Listeners.Add(interact.DragEnd, func(ev *interact.Event) { ends++ })
	dragMouse(vp, 120, 100, 150, 100)
	assert.Equal(t, 1, ends)
	assert.Equal(t, gizmo.X, vp.Gizmo.Axis())
	tolassert.EqualTol(t, 0, cube.Pose.Pos.X, standardTol)

	vp.Update()
	tolassert.EqualTol(t, 0.3, cube.Pose.Pos.X, standardTol)
	tolassert.EqualTol(t, 0, cube.Pose.Pos.Y, standardTol)
	assert.Equal(t, []*scene.Node{cube}, vp.Selection.Selected(), "a press on a handle does not select")

	click(vp, 190, 10)
	assert.Equal(t, 0, vp.Selection.Len())
	assert.Nil(t, vp.Gizmo.Target())
}

func TestTouchTranslate(t *testing.T) {
	vp, cube := newTestViewport()
	vp.Selection.Replace(cube)
	touch := func(typ pointer.FrameTypes, x, y int) {
		vp.HandleTouch(typ, []pointer.Sample{{Type: pointer.Touch, Where: image.Pt(x, y)}})
	}
	touch(pointer.FrameDown, 100, 80)
	assert.Equal(t, gizmo.Dragging, vp.Gizmo.State())
	assert.Equal(t, gizmo.Y, vp.Gizmo.Axis())
	touch(pointer.FrameMove, 100, 50)
	vp.HandleTouch(pointer.FrameUp, nil)
	assert.Equal(t, gizmo.Idle, vp.Gizmo.State())

	vp.Update()
	tolassert.EqualTol(t, 0.3, cube.Pose.Pos.Y, standardTol)
	assert.Equal(t, 1, vp.Selection.Len())
}

func TestSpace(t *testing.T) {
	vp, cube := newTestViewport()
	vp.Selection.Replace(cube)
	vp.SetSpace(scene.World)
	assert.Equal(t, scene.World, vp.Selection.Space)
	assert.Equal(t, scene.World, vp.Gizmo.Space)
	vp.SetMode(gizmo.Rotate)
	assert.Equal(t, gizmo.Rotate, vp.Gizmo.Mode)
}

func TestDragMode(t *testing.T) {
	vp, cube := newTestViewport()
	vp.SetDragMode(true)
	assert.True(t, vp.IsDragMode())
	assert.False(t, vp.Dispatcher.IsEnabled(vp.Gizmo))

	dragMouse(vp, 100, 100, 150, 100)
	tolassert.EqualTol(t, 0.5, cube.Pose.Pos.X, standardTol)
	assert.Equal(t, 0, vp.Selection.Len())

	vp.SetDragMode(false)
	assert.False(t, vp.IsDragMode())
	assert.True(t, vp.Dispatcher.IsEnabled(vp.Selection))
}

func TestSeparateViewports(t *testing.T) {
	vp1, cube := newTestViewport()
	vp2 := New(image.Pt(200, 200), vp1.Camera, vp1.Scene)
	vp1.Selection.Replace(cube)
	vp2.Selection.Replace(cube)

	hover(vp1, 120, 100)
	vp1.HandleMouse(events.NewMouse(events.MouseDown, events.Left, image.Pt(120, 100), 0))
	assert.True(t, vp1.Gizmo.IsDragging())
	assert.False(t, vp2.Gizmo.IsDragging())
	assert.Equal(t, gizmo.NoAxis, vp2.Gizmo.Axis())

	vp2.Release()
	assert.True(t, vp1.Gizmo.IsDragging())
	vp1.Release()
	assert.False(t, vp1.Gizmo.IsDragging())
	assert.Equal(t, gizmo.Idle, vp1.Gizmo.State())

	vp1.Dispose()
	assert.Empty(t, vp1.Dispatcher.Controllers())
	assert.Nil(t, vp1.Gizmo.Target())
}
