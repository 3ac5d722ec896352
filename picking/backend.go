// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package picking

import (
	"sort"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"

	"github.com/gogpu/smud"
)

// rayEpsilon is the minimum |Dir.Z| for a ray to intersect a Z plane.
const rayEpsilon = 1.1920929e-7

// DistanceFunc is an exact hit-testing override: it returns the signed
// distance from a point in shape-local space to the shape surface,
// negative inside. When a candidate carries one, it replaces the frame
// bounds test.
type DistanceFunc func(p ms2.Vec) float32

// Candidate is one shape offered for hit testing.
type Candidate struct {
	Instance smud.ShapeInstance

	// Pickable is the entity's optional picking marker. Nil means the
	// entity behaves as smud.DefaultPickable, except under
	// RequireMarkers where nil excludes it entirely.
	Pickable *smud.Pickable

	// Distance optionally overrides frame-bounds hit testing.
	Distance DistanceFunc
}

// CandidateSource enumerates the shapes eligible for picking this
// frame. Implemented by the host engine's scene layer.
type CandidateSource interface {
	VisitCandidates(visit func(Candidate))
}

// Hit is one shape intersected by a pointer ray.
type Hit struct {
	Entity smud.EntityID

	// Depth is the distance from the camera plane to the intersection,
	// increasing away from the camera.
	Depth float32

	// Position is the ray-plane intersection in world space.
	Position ms3.Vec

	// Normal points out of the shape plane toward the camera.
	Normal ms3.Vec
}

// PointerHits reports all shapes hit by one pointer, nearest first.
// Emitted only for pointers with at least one hit.
type PointerHits struct {
	Pointer PointerID
	Camera  smud.EntityID

	Picks []Hit

	// Order ranks this result against other picking backends when the
	// host merges hit lists. Copied from the camera's Order.
	Order float32
}

// Settings are process-wide picking options.
type Settings struct {
	// RequireMarkers makes picking opt-in: only cameras with
	// PickingEnabled and candidates with a non-nil Pickable
	// participate. Off by default.
	RequireMarkers bool
}

// Backend performs planar ray-shape intersection for SDF shapes.
//
// The zero value is ready to use with default settings.
type Backend struct {
	settings Settings
}

// NewBackend creates a Backend with the given settings.
func NewBackend(settings Settings) *Backend {
	return &Backend{settings: settings}
}

// Settings returns the backend's settings.
func (b *Backend) Settings() Settings {
	return b.settings
}

// Pick tests every ray against the candidate shapes and returns one
// PointerHits per pointer that hit at least one shape.
//
// Shapes are tested back to front (descending Z). A hit on a shape
// that blocks lower shapes stops the ray. Candidates that are
// invisible, carry a degenerate transform, or are excluded by marker
// settings never produce hits. Rays through missing or inactive
// cameras, and rays parallel to the shape planes, produce none either.
func (b *Backend) Pick(rays RayMap, cameras []smud.Camera, src CandidateSource) []PointerHits {
	if len(rays) == 0 {
		return nil
	}

	sorted := b.collect(src)
	if len(sorted) == 0 {
		return nil
	}

	cams := make(map[smud.EntityID]smud.Camera, len(cameras))
	for _, cam := range cameras {
		cams[cam.Entity] = cam
	}

	// Map iteration order is random; sort ray IDs so output order is
	// stable across frames.
	ids := make([]RayID, 0, len(rays))
	for id := range rays {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if ids[i].Camera != ids[j].Camera {
			return ids[i].Camera < ids[j].Camera
		}
		return ids[i].Pointer < ids[j].Pointer
	})

	var out []PointerHits
	for _, id := range ids {
		cam, ok := cams[id.Camera]
		if !ok || !cam.Active {
			continue
		}
		if b.settings.RequireMarkers && !cam.PickingEnabled {
			continue
		}

		picks := b.castRay(rays[id], cam, sorted)
		if len(picks) == 0 {
			continue
		}
		out = append(out, PointerHits{
			Pointer: id.Pointer,
			Camera:  id.Camera,
			Picks:   picks,
			Order:   cam.Order,
		})
	}
	return out
}

// collect filters the candidates and sorts them back to front.
func (b *Backend) collect(src CandidateSource) []Candidate {
	var sorted []Candidate
	src.VisitCandidates(func(c Candidate) {
		inst := &c.Instance
		if !inst.Visible || !inst.ViewVisible {
			return
		}
		if inst.Transform.Affine.IsDegenerate() {
			return
		}
		if b.settings.RequireMarkers && c.Pickable == nil {
			return
		}
		if c.Pickable != nil && !c.Pickable.Hoverable {
			return
		}
		sorted = append(sorted, c)
	})
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Instance.Transform.Z > sorted[j].Instance.Transform.Z
	})
	return sorted
}

func (b *Backend) castRay(ray Ray, cam smud.Camera, sorted []Candidate) []Hit {
	var picks []Hit
	for i := range sorted {
		c := &sorted[i]
		shapeZ := c.Instance.Transform.Z

		// A ray parallel to the shape's plane never intersects it.
		if math32.Abs(ray.Dir.Z) < rayEpsilon {
			continue
		}

		t := (shapeZ - ray.Origin.Z) / ray.Dir.Z
		point := ray.At(t)

		inv, ok := c.Instance.Transform.Affine.Invert()
		if !ok {
			continue
		}
		local := inv.TransformPoint(ms2.Vec{X: point.X, Y: point.Y})

		var hit bool
		if c.Distance != nil {
			hit = c.Distance(local) <= 0
		} else {
			hit = c.Instance.Shape.Frame.ContainsLocal(local.X, local.Y)
		}
		if !hit {
			continue
		}

		picks = append(picks, Hit{
			Entity:   c.Instance.Entity,
			Depth:    cam.Transform.Z - point.Z,
			Position: point,
			Normal:   c.Instance.Transform.Normal(),
		})

		blocks := true
		if c.Pickable != nil {
			blocks = c.Pickable.BlocksLower
		}
		if blocks {
			break
		}
	}
	return picks
}
