// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gizmo

//go:generate core generate

import (
	"strings"
)

// Axes name the constraints of a transform handle: a single axis,
// a plane of two axes, all three, or screen-aligned rotation.
type Axes int32 //enums:enum

const (
	// NoAxis means no handle is active.
	NoAxis Axes = iota

	// X constrains to the X axis.
	X

	// Y constrains to the Y axis.
	Y

	// Z constrains to the Z axis.
	Z

	// XY constrains to the plane of the X and Y axes.
	XY

	// YZ constrains to the plane of the Y and Z axes.
	YZ

	// XZ constrains to the plane of the X and Z axes.
	XZ

	// XYZ is unconstrained translation, or uniform scale.
	XYZ

	// E is rotation about the view direction.
	E

	// XYZE is free trackball rotation.
	XYZE

	// XYZX is uniform scale from the handle on the X axis.
	XYZX

	// XYZY is uniform scale from the handle on the Y axis.
	XYZY

	// XYZZ is uniform scale from the handle on the Z axis.
	XYZZ
)

// Has returns true if the name of the axis contains the given letter:
// one of X, Y, Z or E.
func (a Axes) Has(letter string) bool {
	if a == NoAxis {
		return false
	}
	return strings.Contains(a.String(), letter)
}

// IsUniform returns true for the axes that scale uniformly.
func (a Axes) IsUniform() bool {
	return a != NoAxis && strings.HasPrefix(a.String(), "XYZ") && a != XYZE
}

// Modes are the kinds of transform a [Controls] applies.
type Modes int32 //enums:enum

const (
	// Translate moves the target.
	Translate Modes = iota

	// Rotate rotates the target about its position.
	Rotate

	// Scale scales the target, always in its local space.
	Scale
)

// States are the states of the drag state machine of a [Controls].
type States int32 //enums:enum

const (
	// Idle has no active axis.
	Idle States = iota

	// Armed has an active axis but no button held.
	Armed

	// Dragging is transforming the target.
	Dragging
)

// Highlights are the display states of a handle.
type Highlights int32 //enums:enum

const (
	// Normal is the state of every handle when no axis is active.
	Normal Highlights = iota

	// Active is the handle of the active axis.
	Active

	// Related is a single axis handle that is part of the active axis.
	Related

	// Dimmed is any other handle while an axis is active.
	Dimmed
)
