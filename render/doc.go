// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render turns the live shape set into GPU draw batches.
//
// The per-frame pipeline has three synchronous stages driven by the
// host engine's frame loop:
//
//	extract: snapshot visible shapes (ExtractedShapes.Extract)
//	prepare: sort, resolve pipelines, pack vertices (Batcher.Prepare)
//	submit:  upload and issue instanced draws (Submit)
//
// Shapes draw back to front: the snapshot is sorted by ascending Z,
// with the shader pair as a deterministic tie-break. A contiguous run
// of shapes sharing both shader pair and exact Z becomes one instanced
// draw batch. Runs never merge across differing Z, so other rendering
// work can interleave at any depth boundary.
//
// Pipelines are compiled asynchronously by the host. A shape whose
// pipeline is not ready yet is skipped for the frame and picked up
// again on a later frame once compilation finishes; this is not an
// error.
//
// All per-frame state is cleared and rebuilt every frame. The only
// state that persists across frames is the PipelineCache.
package render
