// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"sort"

	"github.com/gogpu/smud"
)

// Batch is one instanced draw over a contiguous run of packed shapes.
// Every instance in a batch shares the same shader pair and the same
// exact Z.
type Batch struct {
	// First and Count delimit the batch's instance range in the frame's
	// packed vertex buffer.
	First uint32
	Count uint32

	// Pipeline is the resolved, ready pipeline for the batch's key.
	Pipeline PipelineHandle

	// Key is the shader pair all instances share.
	Key smud.ShaderPair

	// Z is the depth all instances share.
	Z float32
}

// Stats counts the outcome of one Prepare call.
type Stats struct {
	// Shapes is the number of snapshot entries considered.
	Shapes int

	// Instances is the number of shapes packed into the vertex buffer.
	Instances int

	// Batches is the number of draw batches emitted.
	Batches int

	// SkippedUnready is the number of shapes skipped because their
	// pipeline had not finished compiling.
	SkippedUnready int
}

// Batcher turns an extraction snapshot into draw batches and a packed
// vertex buffer. It reuses its internal buffers across frames; a single
// Batcher must not be shared between goroutines.
type Batcher struct {
	cache *PipelineCache

	vertices []byte
	batches  []Batch
	stats    Stats
}

// NewBatcher creates a Batcher drawing through the given pipeline
// cache.
func NewBatcher(cache *PipelineCache) *Batcher {
	return &Batcher{cache: cache}
}

// Prepare sorts the snapshot, resolves pipelines and packs vertices,
// returning the frame's batches. The returned slices are valid until
// the next Prepare.
//
// The snapshot is sorted in place by ascending Z (back to front for a
// camera looking down -Z), tie-broken by shader pair so equal-Z frames
// batch identically every frame. A run extends only while both the
// shader pair and the exact Z are unchanged.
//
// Shapes whose pipeline is still compiling are skipped without emitting
// vertices; they render on a later frame. A specialization error is
// treated the same way and logged, leaving the key uncached for retry.
func (b *Batcher) Prepare(snapshot *ExtractedShapes, target TargetConfig) ([]Batch, []byte) {
	b.vertices = b.vertices[:0]
	b.batches = b.batches[:0]
	b.stats = Stats{Shapes: snapshot.Len()}

	shapes := snapshot.Shapes()
	sort.SliceStable(shapes, func(i, j int) bool {
		zi, zj := shapes[i].Transform.Z, shapes[j].Transform.Z
		if zi != zj {
			return zi < zj
		}
		return shapes[i].Shape.Pair().Less(shapes[j].Shape.Pair())
	})

	var (
		cur      smud.ShaderPair
		curZ     float32
		pipeline PipelineHandle
		open     bool
	)
	for i := range shapes {
		s := &shapes[i]
		pair := s.Shape.Pair()
		z := s.Transform.Z

		if !open || pair != cur {
			pipeline = b.resolve(PipelineKey{Pair: pair, Target: target})
		}
		if !open || pair != cur || z != curZ {
			b.closeRun()
			cur, curZ, open = pair, z, true
			b.batches = append(b.batches, Batch{
				First:    uint32(b.stats.Instances),
				Pipeline: pipeline,
				Key:      pair,
				Z:        z,
			})
		}

		if pipeline == nil || !pipeline.Ready() {
			b.stats.SkippedUnready++
			continue
		}
		b.vertices = appendInstance(b.vertices, s)
		b.stats.Instances++
		b.batches[len(b.batches)-1].Count++
	}
	b.closeRun()

	b.stats.Batches = len(b.batches)
	return b.batches, b.vertices
}

// closeRun drops the open batch if nothing was packed into it.
func (b *Batcher) closeRun() {
	if n := len(b.batches); n > 0 && b.batches[n-1].Count == 0 {
		b.batches = b.batches[:n-1]
	}
}

func (b *Batcher) resolve(key PipelineKey) PipelineHandle {
	p, err := b.cache.GetOrCreate(key)
	if err != nil {
		smud.Logger().Debug("pipeline specialization failed, skipping shapes",
			"sdf", uint64(key.Pair.SDF), "fill", uint64(key.Pair.Fill), "error", err)
		return nil
	}
	return p
}

// Stats returns counters for the most recent Prepare.
func (b *Batcher) Stats() Stats {
	return b.stats
}

// Submit uploads the packed vertices and issues one instanced draw per
// batch, in batch order. An empty frame submits nothing.
func Submit(q FrameQueue, batches []Batch, vertices []byte) error {
	if q == nil {
		return ErrNilQueue
	}
	if len(batches) == 0 {
		return nil
	}
	if err := q.WriteVertices(vertices); err != nil {
		return err
	}
	for i := range batches {
		batch := &batches[i]
		if err := q.DrawInstanced(batch.Pipeline, batch.First, batch.Count); err != nil {
			return err
		}
	}
	return nil
}
