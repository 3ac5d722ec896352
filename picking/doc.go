// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package picking implements pointer-ray hit testing for SDF shapes.
//
// The backend projects each pointer ray onto a shape's Z plane and
// tests the intersection point against the shape's frame in local
// space. By default every shape with a frame participates; picking can
// be made opt-in with RequireMarkers, and individual shapes can supply
// an exact signed distance function for precise hit testing instead of
// the frame bounds.
//
// Hit testing runs entirely on the CPU and never consults the GPU
// shaders, so a shape whose visual boundary differs from its frame
// reports frame hits unless it provides a DistanceFunc.
package picking
