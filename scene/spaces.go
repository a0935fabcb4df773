// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

//go:generate core generate

// Spaces are the coordinate spaces in which transforms are expressed.
type Spaces int32 //enums:enum

const (
	// Local expresses transforms relative to the orientation of the
	// object itself and its parent.
	Local Spaces = iota

	// World expresses transforms relative to the root frame of the scene.
	World
)
