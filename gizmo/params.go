// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gizmo

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/manip/scene"
)

// Params are the user settable parameters of a [Controls].
type Params struct {

	// Mode is the kind of transform applied by dragging.
	Mode Modes `default:"Translate"`

	// Space is the space in which translation and rotation are constrained.
	// Scale is always constrained in the local space of the target.
	Space scene.Spaces `default:"Local"`

	// Size is a multiplier on the screen size of the handles.
	Size float32 `default:"1" min:"0.01"`

	// ShowX shows the handles involving the X axis.
	ShowX bool `default:"true"`

	// ShowY shows the handles involving the Y axis.
	ShowY bool `default:"true"`

	// ShowZ shows the handles involving the Z axis.
	ShowZ bool `default:"true"`

	// TranslationSnap, if non-zero, quantizes constrained position
	// components to multiples of this distance.
	TranslationSnap float32

	// RotationSnap, if non-zero, quantizes rotation angles
	// to multiples of this many radians.
	RotationSnap float32

	// ScaleSnap, if non-zero, quantizes constrained scale
	// components to multiples of this factor.
	ScaleSnap float32
}

func (pr *Params) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(pr))
}

// space returns the space in effect for the current mode.
func (pr *Params) space() scene.Spaces {
	if pr.Mode == Scale {
		return scene.Local
	}
	return pr.Space
}
