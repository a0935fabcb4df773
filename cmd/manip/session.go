// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/core/events"
	"cogentcore.org/core/events/key"
	"cogentcore.org/core/math32"
	"cogentcore.org/manip/gizmo"
	"cogentcore.org/manip/interact"
	"cogentcore.org/manip/scene"
	"cogentcore.org/manip/viewport"
	"github.com/pelletier/go-toml/v2"
)

// Actions are the kinds of steps in a session.
type Actions int32 //enums:enum

const (
	// Hover moves the mouse to the step position with no button held.
	Hover Actions = iota

	// Press presses the left mouse button at the step position.
	Press

	// Drag moves the mouse to the step position with the button held.
	Drag

	// Lift releases the left mouse button at the step position.
	Lift

	// Click is a Hover, Press and Lift at the step position.
	Click

	// Select makes the named nodes the selection.
	Select

	// Mode sets the transform mode of the gizmo.
	Mode

	// Space sets the transform space.
	Space

	// Release forces every pointer up.
	Release

	// Rotate turns the named nodes by Angle degrees about Axis, in their local frames.
	Rotate
)

// Session is a scene, a view of it, and a script of input steps,
// as read from a TOML file.
type Session struct {

	// Width is the width of the view in pixels.
	Width int `default:"800"`

	// Height is the height of the view in pixels.
	Height int `default:"600"`

	// Camera is the camera of the view.
	Camera CameraConfig

	// Gizmo are the initial parameters of the transform gizmo.
	Gizmo gizmo.Params

	// Nodes are the nodes of the scene, parents before their children.
	Nodes []NodeConfig

	// Steps are played in order, with one frame update after each.
	Steps []Step
}

// CameraConfig configures the camera of a session.
type CameraConfig struct {

	// Ortho uses an orthographic camera.
	Ortho bool

	// Pos is the position of the camera; the default
	// looks down the -Z axis from 0,0,10.
	Pos math32.Vector3

	// Target is the point the camera looks at.
	Target math32.Vector3

	// FOV is the vertical field of view in degrees.
	FOV float32 `default:"30"`

	// OrthoHeight is the visible height of an orthographic camera.
	OrthoHeight float32 `default:"2"`
}

// NodeConfig configures one node of the scene.
type NodeConfig struct {

	// Name must be unique within the session.
	Name string

	// Parent is the name of the parent node; empty for the root.
	Parent string

	// Pos is the local position.
	Pos math32.Vector3

	// Axis is the local rotation axis, used if Angle is non-zero.
	Axis math32.Vector3

	// Angle is the local rotation angle in degrees.
	Angle float32

	// Scale is the local scale; zero means 1.
	Scale math32.Vector3

	// Size is the size of the pickable box, centered on the node.
	Size math32.Vector3
}

// Step is one scripted input step.
type Step struct {
	Action Actions

	// X and Y are the pointer position in pixels.
	X, Y int

	// Ctrl holds the Control key.
	Ctrl bool

	// Nodes are the names for [Select] and [Rotate].
	Nodes []string

	// Axis and Angle, in degrees, are the rotation for [Rotate].
	Axis  math32.Vector3
	Angle float32

	// Mode is the mode for [Mode].
	Mode gizmo.Modes

	// Space is the space for [Space].
	Space scene.Spaces
}

// NewSession returns a new session with default values.
func NewSession() *Session {
	s := &Session{}
	s.Defaults()
	return s
}

func (s *Session) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(s))
	errors.Log(reflectx.SetFromDefaultTags(&s.Camera))
	s.Gizmo.Defaults()
}

// OpenSession reads a session from the given TOML file.
func OpenSession(filename string) (*Session, error) {
	s := NewSession()
	if err := tomlx.Open(s, filename); err != nil {
		return nil, fmt.Errorf("opening session %q: %w", filename, err)
	}
	return s, nil
}

// AddSteps appends the steps given as TOML text of the form
// [[Steps]] tables, as in a session file.
func (s *Session) AddSteps(text string) error {
	var more struct{ Steps []Step }
	if err := toml.Unmarshal([]byte(text), &more); err != nil {
		return fmt.Errorf("parsing steps: %w", err)
	}
	s.Steps = append(s.Steps, more.Steps...)
	return nil
}

// Player plays a session in a viewport.
type Player struct {
	Session  *Session
	Root     *scene.Node
	Viewport *viewport.Viewport

	// Nodes are the scene nodes by name.
	Nodes map[string]*scene.Node
}

// NewPlayer builds the scene and viewport of the given session.
func NewPlayer(s *Session) (*Player, error) {
	pl := &Player{Session: s, Nodes: map[string]*scene.Node{}}
	pl.Root = scene.NewNode(nil, "root")
	for i, nc := range s.Nodes {
		if nc.Name == "" {
			return nil, fmt.Errorf("node %d has no name", i)
		}
		if pl.Nodes[nc.Name] != nil {
			return nil, fmt.Errorf("duplicate node %q", nc.Name)
		}
		par := pl.Root
		if nc.Parent != "" {
			par = pl.Nodes[nc.Parent]
			if par == nil {
				return nil, fmt.Errorf("node %q: unknown parent %q", nc.Name, nc.Parent)
			}
		}
		nd := scene.NewNode(par, nc.Name)
		nd.Pose.Pos = nc.Pos
		if nc.Angle != 0 {
			nd.SetAxisRotation(nc.Axis.X, nc.Axis.Y, nc.Axis.Z, nc.Angle)
		}
		if nc.Scale != (math32.Vector3{}) {
			nd.Pose.Scale = nc.Scale
		}
		if nc.Size != (math32.Vector3{}) {
			nd.SetBounds(nc.Size.X, nc.Size.Y, nc.Size.Z)
		}
		pl.Nodes[nc.Name] = nd
	}
	pl.Root.UpdateWorldTransform()

	cc := &s.Camera
	cam := scene.NewCamera()
	cam.Ortho = cc.Ortho
	cam.FOV = cc.FOV
	cam.OrthoHeight = cc.OrthoHeight
	if cc.Pos != (math32.Vector3{}) {
		cam.Pose.Pos = cc.Pos
		cam.LookAt(cc.Target, math32.Vec3(0, 1, 0))
	}

	vp := viewport.New(image.Pt(s.Width, s.Height), cam, pl.Root)
	vp.Gizmo.Params = s.Gizmo
	vp.Selection.SetSpace(s.Gizmo.Space)
	pl.Viewport = vp
	pl.logEvents()
	return pl, nil
}

// logEvents logs the events of the gizmo and selection.
func (pl *Player) logEvents() {
	vp := pl.Viewport
	log := func(ev *interact.Event) {
		slog.Debug("event", "type", ev.Type, "node", ev.Node, "axis", ev.Axis)
	}
	for _, typ := range []interact.Events{interact.AxisChanged, interact.DragStart, interact.Drag, interact.DragEnd} {
		vp.Gizmo.Listeners.Add(typ, log)
	}
	vp.Selection.Listeners.Add(interact.SelectionChanged, func(ev *interact.Event) {
		slog.Info("selection", "selected", names(ev.Selected), "added", names(ev.Added), "removed", names(ev.Removed))
	})
}

func names(nodes []*scene.Node) []string {
	ns := make([]string, len(nodes))
	for i, nd := range nodes {
		ns[i] = nd.Name
	}
	return ns
}

// Play plays all of the steps, updating the frame after each.
func (pl *Player) Play() error {
	for i, st := range pl.Session.Steps {
		if err := pl.Step(st); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		pl.Viewport.Update()
	}
	return nil
}

// Step plays one step.
func (pl *Player) Step(st Step) error {
	vp := pl.Viewport
	at := image.Pt(st.X, st.Y)
	var mods key.Modifiers
	if st.Ctrl {
		mods.SetFlag(true, key.Control)
	}
	slog.Debug("step", "action", st.Action, "at", at)
	switch st.Action {
	case Hover:
		vp.HandleMouse(events.NewMouseMove(events.NoButton, at, at, mods))
	case Press:
		vp.HandleMouse(events.NewMouse(events.MouseDown, events.Left, at, mods))
	case Drag:
		vp.HandleMouse(events.NewMouseDrag(events.Left, at, at, at, mods))
	case Lift:
		vp.HandleMouse(events.NewMouse(events.MouseUp, events.Left, at, mods))
	case Click:
		for _, a := range []Actions{Hover, Press, Lift} {
			st.Action = a
			if err := pl.Step(st); err != nil {
				return err
			}
		}
	case Select:
		nodes, err := pl.named(st.Nodes)
		if err != nil {
			return err
		}
		vp.Selection.Replace(nodes...)
	case Rotate:
		nodes, err := pl.named(st.Nodes)
		if err != nil {
			return err
		}
		for _, nd := range nodes {
			nd.Pose.RotateOnAxis(st.Axis.X, st.Axis.Y, st.Axis.Z, st.Angle)
			nd.UpdateWorldTransform()
		}
		vp.Selection.RecomputePivot()
	case Mode:
		vp.SetMode(st.Mode)
	case Space:
		vp.SetSpace(st.Space)
	case Release:
		vp.Release()
	default:
		return fmt.Errorf("unknown action %v", st.Action)
	}
	return nil
}

// named returns the nodes with the given names.
func (pl *Player) named(names []string) ([]*scene.Node, error) {
	nodes := make([]*scene.Node, 0, len(names))
	for _, nm := range names {
		nd := pl.Nodes[nm]
		if nd == nil {
			return nil, fmt.Errorf("unknown node %q", nm)
		}
		nodes = append(nodes, nd)
	}
	return nodes, nil
}

// Result is the final state of a played session.
type Result struct {
	Selected []string
	Nodes    []NodeResult
}

// NodeResult is the final transform of one node.
type NodeResult struct {
	Name     string
	Pos      math32.Vector3
	Quat     math32.Quat
	Scale    math32.Vector3
	WorldPos math32.Vector3
}

// Result returns the final state of the scene, in session order.
func (pl *Player) Result() *Result {
	pl.Root.UpdateWorldTransform()
	res := &Result{Selected: names(pl.Viewport.Selection.Selected())}
	for _, nc := range pl.Session.Nodes {
		nd := pl.Nodes[nc.Name]
		ps := &nd.Pose
		res.Nodes = append(res.Nodes, NodeResult{Name: nd.Name, Pos: ps.Pos, Quat: ps.Quat, Scale: ps.Scale, WorldPos: ps.WorldPos})
	}
	return res
}

// Marshal returns the result as TOML.
func (res *Result) Marshal() ([]byte, error) {
	return toml.Marshal(res)
}
