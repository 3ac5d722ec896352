// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package picking

import (
	"testing"

	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"

	"github.com/gogpu/smud"
)

type candidateList []Candidate

func (l candidateList) VisitCandidates(visit func(Candidate)) {
	for _, c := range l {
		visit(c)
	}
}

func shapeAt(entity smud.EntityID, x, y, z, half float32) Candidate {
	return Candidate{
		Instance: smud.ShapeInstance{
			Entity: entity,
			Shape: smud.Shape{
				Frame: smud.QuadFrame(half),
			},
			Transform:   smud.NewTransform(x, y, z, 0, 1),
			Visible:     true,
			ViewVisible: true,
		},
	}
}

func testCamera() smud.Camera {
	return smud.Camera{
		Entity:    1,
		Active:    true,
		Order:     2,
		Transform: smud.NewTransform(0, 0, 100, 0, 1),
	}
}

func downRay(x, y float32) Ray {
	return Ray{
		Origin: ms3.Vec{X: x, Y: y, Z: 10},
		Dir:    ms3.Vec{Z: -1},
	}
}

func TestPickHit(t *testing.T) {
	b := NewBackend(Settings{})
	cam := testCamera()
	rays := RayMap{{Camera: cam.Entity, Pointer: 7}: downRay(0.5, -0.5)}
	src := candidateList{shapeAt(42, 0, 0, 0, 1)}

	hits := b.Pick(rays, []smud.Camera{cam}, src)
	if len(hits) != 1 {
		t.Fatalf("got %d pointer events, want 1", len(hits))
	}
	ev := hits[0]
	if ev.Pointer != 7 || ev.Camera != cam.Entity || ev.Order != cam.Order {
		t.Errorf("event = %+v, want pointer 7 camera %d order %v", ev, cam.Entity, cam.Order)
	}
	if len(ev.Picks) != 1 {
		t.Fatalf("got %d picks, want 1", len(ev.Picks))
	}
	hit := ev.Picks[0]
	if hit.Entity != 42 {
		t.Errorf("entity = %d, want 42", hit.Entity)
	}
	if hit.Depth != 100 {
		t.Errorf("depth = %v, want 100", hit.Depth)
	}
	want := ms3.Vec{X: 0.5, Y: -0.5, Z: 0}
	if hit.Position != want {
		t.Errorf("position = %v, want %v", hit.Position, want)
	}
	if (hit.Normal != ms3.Vec{Z: 1}) {
		t.Errorf("normal = %v, want +Z", hit.Normal)
	}
}

func TestPickMissOutsideFrame(t *testing.T) {
	b := NewBackend(Settings{})
	cam := testCamera()
	rays := RayMap{{Camera: cam.Entity, Pointer: 1}: downRay(2, 0)}
	src := candidateList{shapeAt(42, 0, 0, 0, 1)}

	if hits := b.Pick(rays, []smud.Camera{cam}, src); len(hits) != 0 {
		t.Errorf("got %d pointer events, want 0", len(hits))
	}
}

func TestPickBoundary(t *testing.T) {
	b := NewBackend(Settings{})
	cam := testCamera()
	src := candidateList{shapeAt(42, 0, 0, 0, 1)}

	on := RayMap{{Camera: cam.Entity, Pointer: 1}: downRay(1, 0)}
	if hits := b.Pick(on, []smud.Camera{cam}, src); len(hits) != 1 {
		t.Errorf("ray on frame edge: got %d events, want 1", len(hits))
	}
	off := RayMap{{Camera: cam.Entity, Pointer: 1}: downRay(1.0001, 0)}
	if hits := b.Pick(off, []smud.Camera{cam}, src); len(hits) != 0 {
		t.Errorf("ray just outside edge: got %d events, want 0", len(hits))
	}
}

func TestPickTransformedShape(t *testing.T) {
	b := NewBackend(Settings{})
	cam := testCamera()
	// Shape translated to x=5, scaled by 2: frame covers [3, 7].
	c := shapeAt(9, 5, 0, 0, 1)
	c.Instance.Transform = smud.NewTransform(5, 0, 0, 0, 2)
	src := candidateList{c}

	inside := RayMap{{Camera: cam.Entity, Pointer: 1}: downRay(6.5, 0)}
	if hits := b.Pick(inside, []smud.Camera{cam}, src); len(hits) != 1 {
		t.Errorf("scaled frame interior: got %d events, want 1", len(hits))
	}
	outside := RayMap{{Camera: cam.Entity, Pointer: 1}: downRay(1.5, 0)}
	if hits := b.Pick(outside, []smud.Camera{cam}, src); len(hits) != 0 {
		t.Errorf("outside scaled frame: got %d events, want 0", len(hits))
	}
}

func TestPickOcclusion(t *testing.T) {
	b := NewBackend(Settings{})
	cam := testCamera()
	rays := RayMap{{Camera: cam.Entity, Pointer: 1}: downRay(0, 0)}

	near := shapeAt(1, 0, 0, 5, 1)
	far := shapeAt(2, 0, 0, 0, 1)
	src := candidateList{far, near}

	hits := b.Pick(rays, []smud.Camera{cam}, src)
	if len(hits) != 1 || len(hits[0].Picks) != 1 {
		t.Fatalf("blocking shape: got %+v, want single pick", hits)
	}
	if got := hits[0].Picks[0].Entity; got != 1 {
		t.Errorf("picked entity = %d, want nearer shape 1", got)
	}

	// With BlocksLower off the ray passes through, nearest first.
	passThrough := near
	passThrough.Pickable = &smud.Pickable{Hoverable: true, BlocksLower: false}
	src = candidateList{far, passThrough}

	hits = b.Pick(rays, []smud.Camera{cam}, src)
	if len(hits) != 1 || len(hits[0].Picks) != 2 {
		t.Fatalf("pass-through shape: got %+v, want two picks", hits)
	}
	if hits[0].Picks[0].Entity != 1 || hits[0].Picks[1].Entity != 2 {
		t.Errorf("pick order = %d, %d, want 1, 2", hits[0].Picks[0].Entity, hits[0].Picks[1].Entity)
	}
	if hits[0].Picks[0].Depth >= hits[0].Picks[1].Depth {
		t.Errorf("depths %v, %v not increasing away from camera",
			hits[0].Picks[0].Depth, hits[0].Picks[1].Depth)
	}
}

func TestPickParallelRay(t *testing.T) {
	b := NewBackend(Settings{})
	cam := testCamera()
	rays := RayMap{{Camera: cam.Entity, Pointer: 1}: {
		Origin: ms3.Vec{Z: 0},
		Dir:    ms3.Vec{X: 1},
	}}
	src := candidateList{shapeAt(42, 0, 0, 0, 1)}

	if hits := b.Pick(rays, []smud.Camera{cam}, src); len(hits) != 0 {
		t.Errorf("parallel ray: got %d events, want 0", len(hits))
	}
}

func TestPickFiltersCandidates(t *testing.T) {
	b := NewBackend(Settings{})
	cam := testCamera()
	rays := RayMap{{Camera: cam.Entity, Pointer: 1}: downRay(0, 0)}

	invisible := shapeAt(1, 0, 0, 0, 1)
	invisible.Instance.Visible = false

	culled := shapeAt(2, 0, 0, 0, 1)
	culled.Instance.ViewVisible = false

	degenerate := shapeAt(3, 0, 0, 0, 1)
	degenerate.Instance.Transform = smud.NewTransform(0, 0, 0, 0, 0)

	unhoverable := shapeAt(4, 0, 0, 0, 1)
	unhoverable.Pickable = &smud.Pickable{Hoverable: false, BlocksLower: true}

	src := candidateList{invisible, culled, degenerate, unhoverable}
	if hits := b.Pick(rays, []smud.Camera{cam}, src); len(hits) != 0 {
		t.Errorf("filtered candidates: got %d events, want 0", len(hits))
	}
}

func TestPickRequireMarkers(t *testing.T) {
	b := NewBackend(Settings{RequireMarkers: true})
	cam := testCamera()
	rays := RayMap{{Camera: cam.Entity, Pointer: 1}: downRay(0, 0)}

	unmarked := shapeAt(1, 0, 0, 0, 1)
	marked := shapeAt(2, 0, 0, 0, 1)
	marked.Pickable = &smud.Pickable{Hoverable: true, BlocksLower: true}
	src := candidateList{unmarked, marked}

	// Camera lacks the marker: nothing picks.
	if hits := b.Pick(rays, []smud.Camera{cam}, src); len(hits) != 0 {
		t.Errorf("unmarked camera: got %d events, want 0", len(hits))
	}

	cam.PickingEnabled = true
	hits := b.Pick(rays, []smud.Camera{cam}, src)
	if len(hits) != 1 || len(hits[0].Picks) != 1 {
		t.Fatalf("marked camera: got %+v, want single pick", hits)
	}
	if got := hits[0].Picks[0].Entity; got != 2 {
		t.Errorf("picked entity = %d, want marked shape 2", got)
	}
}

func TestPickCameraFiltering(t *testing.T) {
	b := NewBackend(Settings{})
	src := candidateList{shapeAt(42, 0, 0, 0, 1)}

	inactive := testCamera()
	inactive.Active = false
	rays := RayMap{{Camera: inactive.Entity, Pointer: 1}: downRay(0, 0)}
	if hits := b.Pick(rays, []smud.Camera{inactive}, src); len(hits) != 0 {
		t.Errorf("inactive camera: got %d events, want 0", len(hits))
	}

	// Ray through a camera missing from the list.
	rays = RayMap{{Camera: 999, Pointer: 1}: downRay(0, 0)}
	if hits := b.Pick(rays, []smud.Camera{testCamera()}, src); len(hits) != 0 {
		t.Errorf("unknown camera: got %d events, want 0", len(hits))
	}
}

func TestPickDistanceFunc(t *testing.T) {
	b := NewBackend(Settings{})
	cam := testCamera()

	// A corner point inside the square frame but outside the inscribed
	// circle distinguishes exact hit testing from frame bounds.
	c := shapeAt(42, 0, 0, 0, 1)
	c.Distance = CircleDistance(1)
	src := candidateList{c}

	corner := RayMap{{Camera: cam.Entity, Pointer: 1}: downRay(0.9, 0.9)}
	if hits := b.Pick(corner, []smud.Camera{cam}, src); len(hits) != 0 {
		t.Errorf("corner outside circle: got %d events, want 0", len(hits))
	}
	center := RayMap{{Camera: cam.Entity, Pointer: 1}: downRay(0.3, -0.2)}
	if hits := b.Pick(center, []smud.Camera{cam}, src); len(hits) != 1 {
		t.Errorf("inside circle: got %d events, want 1", len(hits))
	}
}

func TestRectDistance(t *testing.T) {
	d := RectDistance(2, 1)
	tests := []struct {
		x, y   float32
		inside bool
	}{
		{0, 0, true},
		{1.9, 0.9, true},
		{2.1, 0, false},
		{0, 1.1, false},
	}
	for _, tt := range tests {
		got := d(ms2.Vec{X: tt.x, Y: tt.y}) <= 0
		if got != tt.inside {
			t.Errorf("RectDistance(%v, %v) inside = %v, want %v", tt.x, tt.y, got, tt.inside)
		}
	}
}
