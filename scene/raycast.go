// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"sort"

	"cogentcore.org/core/math32"
)

// Hit is a node intersected by a ray, with the point of intersection.
type Hit struct {
	Node  *Node
	Point math32.Vector3

	// Distance is the distance from the ray origin to Point.
	Distance float32
}

// NewRay returns a ray with the given origin and normalized direction.
func NewRay(origin, dir math32.Vector3) math32.Ray {
	return math32.Ray{Origin: origin, Dir: dir.Normal()}
}

// Raycast returns the descendants of this node (including itself) whose
// world bounding box intersects with the given ray, sorted from closest
// to furthest. World transforms must be up to date; see
// [Node.UpdateWorldTransform].
func (nd *Node) Raycast(ray math32.Ray) []Hit {
	var hs []Hit
	nd.WalkDown(func(n *Node) bool {
		if n.WorldBounds.IsEmpty() {
			return true
		}
		pt, has := ray.IntersectBox(n.WorldBounds)
		if !has {
			return true
		}
		hs = append(hs, Hit{Node: n, Point: pt, Distance: pt.DistanceTo(ray.Origin)})
		return true
	})

	sort.SliceStable(hs, func(i, j int) bool {
		return hs[i].Distance < hs[j].Distance
	})
	return hs
}

// IntersectPlane returns the point where the ray crosses the plane through
// the given point with the given normal. It returns false when the ray is
// parallel to the plane, the normal is degenerate, or the plane is behind
// the ray origin.
func IntersectPlane(ray math32.Ray, normal, point math32.Vector3) (math32.Vector3, bool) {
	const eps = 1e-6
	if normal.LengthSquared() < eps*eps {
		return math32.Vector3{}, false
	}
	denom := normal.Dot(ray.Dir)
	if math32.Abs(denom) < eps {
		return math32.Vector3{}, false
	}
	t := point.Sub(ray.Origin).Dot(normal) / denom
	if t < 0 {
		return math32.Vector3{}, false
	}
	return ray.Origin.Add(ray.Dir.MulScalar(t)), true
}
