// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/smud"
)

// Renderer drives the extract, prepare and submit stages for one render
// target. Hosts that need finer phase control call the stages directly;
// Renderer is the assembled frame loop for everyone else.
//
// A Renderer is not safe for concurrent use: the frame pipeline is a
// sequence of CPU passes over per-frame buffers. Only the shared
// PipelineCache may be used from multiple goroutines.
type Renderer struct {
	extracted ExtractedShapes
	batcher   *Batcher
	target    TargetConfig
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithTargetConfig sets the render target description pipelines
// specialize against. Default is DefaultTargetConfig.
func WithTargetConfig(target TargetConfig) RendererOption {
	return func(r *Renderer) {
		r.target = target
	}
}

// NewRenderer creates a Renderer drawing through the given pipeline
// cache.
func NewRenderer(cache *PipelineCache, opts ...RendererOption) *Renderer {
	r := &Renderer{
		batcher: NewBatcher(cache),
		target:  DefaultTargetConfig(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderFrame runs one full frame: snapshot the live shapes, batch and
// pack them, then upload and draw through q. Returns the frame's
// batching stats.
func (r *Renderer) RenderFrame(src smud.ShapeSource, q FrameQueue) (Stats, error) {
	r.extracted.Extract(src)
	batches, vertices := r.batcher.Prepare(&r.extracted, r.target)
	if err := Submit(q, batches, vertices); err != nil {
		return r.batcher.Stats(), err
	}
	return r.batcher.Stats(), nil
}
