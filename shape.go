// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package smud

// EntityID is the host engine's opaque entity identity. smud never
// allocates entities; IDs flow in through the scene query and back out
// through picking events.
type EntityID uint64

// FrameKind discriminates the Frame tagged variant.
type FrameKind uint8

const (
	// FrameQuad is an axis-aligned square frame given by a half-extent.
	FrameQuad FrameKind = iota
)

// Frame is a shape's local bounding region. It defines both the extent
// of the quad the GPU expands per instance and the region picking tests
// against.
//
// Frame is a tagged variant with a single case today; hit-testing and
// vertex packing switch on Kind so that future frame kinds (circle,
// rectangle) slot in without touching callers.
type Frame struct {
	Kind     FrameKind
	HalfSize float32
}

// QuadFrame creates a square frame with the given half-extent. The frame
// should be larger than the actual SDF shape to avoid clipping.
func QuadFrame(half float32) Frame {
	return Frame{Kind: FrameQuad, HalfSize: half}
}

// ContainsLocal reports whether a point in the shape's local space lies
// within the frame.
func (f Frame) ContainsLocal(x, y float32) bool {
	switch f.Kind {
	case FrameQuad:
		return x >= -f.HalfSize && x <= f.HalfSize &&
			y >= -f.HalfSize && y <= f.HalfSize
	default:
		return false
	}
}

// Shape is the per-entity record describing one drawable SDF shape.
// Shapes are created and mutated by the host's scene-authoring code and
// read-only to smud.
type Shape struct {
	// Color is the input to the fill shader, in linear color space.
	Color RGBA

	// SDF identifies the shader computing a signed distance from a
	// local 2D point. Fill identifies the shader computing the final
	// color from that distance. Identity equality, not content
	// equality, determines batching and pipeline cache keys.
	SDF  ShaderID
	Fill ShaderID

	// Frame bounds the shape for quad sizing and hit-testing.
	Frame Frame

	// Params are up to four free-form numbers passed uninterpreted to
	// the shader pair (box half-extents, star point count, ...).
	Params [4]float32
}

// Pair returns the shape's shader pair.
func (s *Shape) Pair() ShaderPair {
	return ShaderPair{SDF: s.SDF, Fill: s.Fill}
}

// ShapeInstance is one live shape as enumerated by the host scene query:
// the record plus its world transform and visibility flags.
type ShapeInstance struct {
	Entity    EntityID
	Shape     Shape
	Transform Transform

	// Visible is the authored visibility flag; ViewVisible is the
	// engine-computed visibility (culling etc.). A shape is extracted
	// only when both are true.
	Visible     bool
	ViewVisible bool
}

// ShapeSource enumerates the live shape records. Implemented by the host
// engine's scene layer.
type ShapeSource interface {
	// VisitShapes calls visit once per live shape instance. Order is
	// not significant; extraction re-sorts every frame.
	VisitShapes(visit func(ShapeInstance))
}

// Camera describes one host camera participating in rendering or
// picking.
type Camera struct {
	Entity EntityID

	// Active cameras participate in picking; inactive ones are skipped.
	Active bool

	// Order ranks this camera's picking output against other backends'
	// output when the host merges hit lists.
	Order float32

	// Transform positions the camera. Only its Z component matters to
	// the planar picking depth computation.
	Transform Transform

	// PickingEnabled opts the camera into picking when the backend's
	// RequireMarkers setting is on; ignored otherwise.
	PickingEnabled bool
}

// Pickable is an optional per-entity marker tuning picking behavior.
// Entities without the marker are hoverable and block lower hits.
type Pickable struct {
	// Hoverable disables hit-testing for the entity when false.
	Hoverable bool

	// BlocksLower stops the ray at this entity so that shapes farther
	// away receive no hits.
	BlocksLower bool
}

// DefaultPickable matches the behavior of an entity with no marker.
func DefaultPickable() Pickable {
	return Pickable{Hoverable: true, BlocksLower: true}
}
