// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package picking

import (
	"github.com/soypat/glgl/math/ms2"

	"github.com/gogpu/smud/sdf"
)

// CircleDistance returns a DistanceFunc for exact hit testing against a
// circle of the given radius.
func CircleDistance(radius float32) DistanceFunc {
	return func(p ms2.Vec) float32 {
		return sdf.Circle(p, radius)
	}
}

// RectDistance returns a DistanceFunc for exact hit testing against an
// axis-aligned rectangle with the given half-extents.
func RectDistance(halfWidth, halfHeight float32) DistanceFunc {
	return func(p ms2.Vec) float32 {
		return sdf.Box(p, ms2.Vec{X: halfWidth, Y: halfHeight})
	}
}
