// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package picking

import (
	"github.com/soypat/glgl/math/ms3"

	"github.com/gogpu/smud"
)

// PointerID identifies one pointer device (mouse, touch contact, pen).
// Values are assigned by the host input layer.
type PointerID uint32

// Ray is a world-space picking ray cast from a pointer through a camera.
type Ray struct {
	Origin ms3.Vec

	// Dir is the ray direction. It need not be normalized for planar
	// intersection, but hosts conventionally pass unit vectors.
	Dir ms3.Vec
}

// At returns the point along the ray at parameter t.
func (r Ray) At(t float32) ms3.Vec {
	return ms3.Add(r.Origin, ms3.Scale(t, r.Dir))
}

// RayID keys a ray by the camera it was cast through and the pointer
// that cast it.
type RayID struct {
	Camera  smud.EntityID
	Pointer PointerID
}

// RayMap holds the current frame's pointer rays, one per (camera,
// pointer) pair. Produced by the host input layer and consumed by
// Backend.Pick.
type RayMap map[RayID]Ray
