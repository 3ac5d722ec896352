// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package wgpu implements the render package's GPU interfaces on
// gogpu/wgpu.
//
// Specializer compiles a shader pair's combined WGSL program through
// naga into SPIR-V and builds a HAL render pipeline specialized for the
// target config. Compilation is deferred until the pair's sources are
// registered; until then the pipeline handle reports not ready and the
// render package skips its shapes without error.
//
// FrameQueue records one frame's instance buffer upload and instanced
// quad draws into a host-owned render pass.
package wgpu
