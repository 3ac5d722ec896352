// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package smud renders signed-distance-field (SDF) vector shapes as
// GPU-drawn instanced sprites.
//
// # Overview
//
// smud is a rendering plugin for GoGPU-based engines. Each shape is
// described by a pair of shaders (one computing a signed distance from
// a 2D point, one computing a final color from that distance) plus a
// color, up to four free-form numeric parameters, and a bounding frame.
// The plugin turns the set of live shapes into a minimal sequence of
// instanced draw calls, specializing and caching one render pipeline per
// unique shader pair.
//
// # Architecture
//
// The library is organized into:
//   - Root package: the shape data model (Shape, Frame, ShaderPair,
//     Transform) and the shader source registry
//   - render: per-frame extraction, depth sorting, batching, vertex
//     packing, and the process-wide pipeline cache
//   - picking: a pointer-ray hit-testing backend over the same shape set
//   - sdf: CPU-side closed-form signed distance functions, used for
//     exact hit-testing when a shape opts in
//   - backend/wgpu: a reference adapter binding the render package to a
//     gogpu/wgpu HAL device
//
// # Frame Model
//
// All per-frame state is transient: extraction clears and rebuilds its
// snapshot every frame, the vertex buffer is fully rewritten, and only
// the pipeline cache persists across frames. The host engine drives the
// phases in order: extract, prepare (batch), queue (draw). Picking runs
// in its own phase against the same logical scene state.
//
// # Coordinate System
//
// Shapes live on Z planes in a right-handed space where the 2D camera
// looks along -Z: larger Z is closer to the viewer. Batches are emitted
// back to front (ascending Z) for correct alpha blending.
package smud
