// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package selection

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/manip/scene"
)

// RecomputePivot places the pivot for the current selection. In local
// space it takes the world transform of the most recently selected node
// that is not an ancestor of another selected node. In world space it is
// at the mean world position, unrotated and unscaled. The pivot is
// reset when nothing is selected or TransformSelection is off.
// The new placement is not a delta: nothing moves on the next
// [Selection.ApplyDelta].
func (sl *Selection) RecomputePivot() {
	ps := &sl.Pivot.Pose
	ps.Pos = math32.Vector3{}
	ps.Quat = scene.IdentityQuat()
	ps.Scale = math32.Vec3(1, 1, 1)
	if len(sl.selected) > 0 && sl.TransformSelection {
		switch sl.Space {
		case scene.Local:
			for i := len(sl.selected) - 1; i >= 0; i-- {
				nd := sl.selected[i]
				if sl.isAncestorOfSelected(nd) {
					continue
				}
				nd.UpdateWorldTransform()
				ps.Pos = nd.Pose.WorldPos
				ps.Quat = nd.Pose.WorldQuat
				ps.Scale = nd.Pose.WorldScale
				break
			}
		case scene.World:
			var sum math32.Vector3
			for _, nd := range sl.selected {
				nd.UpdateWorldTransform()
				sum = sum.Add(nd.Pose.WorldPos)
			}
			ps.Pos = sum.DivScalar(float32(len(sl.selected)))
		}
	}
	sl.Pivot.UpdateWorldTransform()
	sl.prevPos = ps.Pos
	sl.prevQuat = ps.Quat
	sl.prevScale = ps.Scale
}

// ApplyDelta applies the change of the pivot since the last call
// (or [Selection.RecomputePivot]) to every selected node that is not an
// ancestor of another selected node. Such ancestors are skipped because
// their selected descendants already carry the delta.
//
// Position and rotation deltas compose as transforms; the scale delta
// is added to the local scale of each node.
func (sl *Selection) ApplyDelta() {
	ps := &sl.Pivot.Pose
	sl.Pivot.UpdateWorldTransform()
	pivotPrev := sl.prevPos
	posOffset := ps.Pos.Sub(sl.prevPos)
	quatOffset := scene.NormalQuat(scene.MulQuats(ps.Quat, scene.InverseQuat(sl.prevQuat)))
	scaleOffset := ps.Scale.Sub(sl.prevScale)
	unchanged := posOffset == (math32.Vector3{}) && scaleOffset == (math32.Vector3{}) && ps.Quat == sl.prevQuat
	sl.prevPos = ps.Pos
	sl.prevQuat = ps.Quat
	sl.prevScale = ps.Scale
	if unchanged || len(sl.selected) == 0 || !sl.TransformSelection {
		return
	}
	quatInv := scene.InverseQuat(ps.Quat)

	for _, nd := range sl.selected {
		if sl.isAncestorOfSelected(nd) {
			continue
		}
		nd.UpdateWorldTransform()
		np := &nd.Pose
		parQuat, parScale := scene.IdentityQuat(), math32.Vec3(1, 1, 1)
		if par := nd.ParentWorld(); par != nil {
			parQuat, parScale = par.WorldQuat, par.WorldScale
		}
		parQuatInv := scene.InverseQuat(parQuat)

		switch sl.Space {
		case scene.Local:
			off := posOffset.MulQuat(quatInv).MulQuat(np.Quat)
			np.Pos = np.Pos.Add(scene.DivSafe(off, parScale))
			qoff := scene.MulQuats(scene.MulQuats(quatInv, quatOffset), ps.Quat)
			np.Quat = scene.NormalQuat(scene.MulQuats(np.Quat, scene.NormalQuat(qoff)))
		case scene.World:
			off := posOffset.MulQuat(parQuatInv)
			rel := np.WorldPos.Sub(pivotPrev)
			orbit := rel.MulQuat(quatOffset).Sub(rel).MulQuat(parQuatInv)
			np.Pos = np.Pos.Add(scene.DivSafe(off.Add(orbit), parScale))
			itemQuat := np.WorldQuat
			qoff := scene.MulQuats(scene.MulQuats(scene.InverseQuat(itemQuat), quatOffset), itemQuat)
			np.Quat = scene.NormalQuat(scene.MulQuats(np.Quat, scene.NormalQuat(qoff)))
		}
		np.Scale = np.Scale.Add(scaleOffset)
		nd.UpdateWorldTransform()
	}
}
