// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/smud"
)

// ExtractedShape is one visible shape snapshotted for the current
// frame: the shape record plus its world transform, decoupled from the
// live scene so later stages never touch scene state.
type ExtractedShape struct {
	Entity    smud.EntityID
	Shape     smud.Shape
	Transform smud.Transform
}

// ExtractedShapes is the per-frame extraction snapshot. It is cleared
// and rebuilt from scratch every frame, never updated incrementally;
// the batcher's ordering guarantees depend on a fresh snapshot.
type ExtractedShapes struct {
	shapes []ExtractedShape
}

// Extract rebuilds the snapshot from the live shape set. Shapes that
// are invisible, view-culled, missing either shader of the pair, or
// carrying a non-finite transform are dropped. Dropping is silent;
// extraction has no failure mode.
func (e *ExtractedShapes) Extract(src smud.ShapeSource) {
	e.shapes = e.shapes[:0]
	src.VisitShapes(func(inst smud.ShapeInstance) {
		if !inst.Visible || !inst.ViewVisible {
			return
		}
		if inst.Shape.SDF.IsZero() || inst.Shape.Fill.IsZero() {
			return
		}
		if inst.Transform.Affine.IsNaN() {
			return
		}
		e.shapes = append(e.shapes, ExtractedShape{
			Entity:    inst.Entity,
			Shape:     inst.Shape,
			Transform: inst.Transform,
		})
	})
}

// Len returns the number of extracted shapes.
func (e *ExtractedShapes) Len() int {
	return len(e.shapes)
}

// Shapes returns the snapshot contents. The slice is valid until the
// next Extract.
func (e *ExtractedShapes) Shapes() []ExtractedShape {
	return e.shapes
}
