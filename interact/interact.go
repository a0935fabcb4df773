// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interact routes pointer frames to the controllers attached
// to one viewport, and defines the capabilities those controllers compose.
package interact

import (
	"cogentcore.org/manip/pointer"
)

// InputRoutable is implemented by controllers that receive pointer frames.
// A frame is delivered to exactly one of the methods according to its type.
type InputRoutable interface {

	// OnPointerHover is called for pointer motion with no button held.
	OnPointerHover(fr *pointer.Frame)

	// OnPointerDown is called when a button is pressed or a touch begins.
	OnPointerDown(fr *pointer.Frame)

	// OnPointerMove is called for motion while a button is held.
	OnPointerMove(fr *pointer.Frame)

	// OnPointerUp is called when a button is released or a touch ends.
	OnPointerUp(fr *pointer.Frame)
}

// WorldFollower is implemented by controllers that track the world
// transform of a target and must be updated once per frame.
type WorldFollower interface {
	UpdateWorld()
}

// Draggable is implemented by controllers with pointer state, such as
// an armed handle or an in-progress drag, that can be forced back to idle.
// Release must be safe to call when the controller is already idle.
type Draggable interface {
	IsDragging() bool
	Release()
}
