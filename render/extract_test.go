// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math"
	"testing"

	"github.com/gogpu/smud"
)

func TestExtractFilters(t *testing.T) {
	visible := instance(1, 1, 2, 0)

	invisible := instance(2, 1, 2, 0)
	invisible.Visible = false

	culled := instance(3, 1, 2, 0)
	culled.ViewVisible = false

	noFill := instance(4, 1, 0, 0)
	noSDF := instance(5, 0, 2, 0)

	nan := instance(6, 1, 2, 0)
	nan.Transform.Affine.C = float32(math.NaN())

	var e ExtractedShapes
	e.Extract(shapeList{visible, invisible, culled, noFill, noSDF, nan})

	if e.Len() != 1 {
		t.Fatalf("extracted %d shapes, want 1", e.Len())
	}
	if got := e.Shapes()[0].Entity; got != 1 {
		t.Errorf("extracted entity = %d, want 1", got)
	}
}

func TestExtractRebuildsFromScratch(t *testing.T) {
	var e ExtractedShapes

	e.Extract(shapeList{instance(1, 1, 2, 0), instance(2, 1, 2, 0)})
	if e.Len() != 2 {
		t.Fatalf("first extract: %d shapes, want 2", e.Len())
	}

	e.Extract(shapeList{instance(3, 1, 2, 0)})
	if e.Len() != 1 {
		t.Fatalf("second extract: %d shapes, want 1", e.Len())
	}
	if got := e.Shapes()[0].Entity; got != 3 {
		t.Errorf("stale snapshot: entity = %d, want 3", got)
	}

	e.Extract(shapeList{})
	if e.Len() != 0 {
		t.Errorf("empty scene: %d shapes, want 0", e.Len())
	}
}

func TestExtractSnapshotIsDecoupled(t *testing.T) {
	live := shapeList{instance(1, 1, 2, 0)}

	var e ExtractedShapes
	e.Extract(live)

	live[0].Shape.Color = smud.RGBA{B: 1, A: 1}
	if got := e.Shapes()[0].Shape.Color; got != (smud.RGBA{R: 1, A: 1}) {
		t.Errorf("snapshot color = %v mutated with live scene", got)
	}
}
