// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/smud"
)

// Interface errors returned at host boundaries. Per-frame conditions
// (unready pipelines, degenerate shapes) are never errors.
var (
	// ErrNilSpecializer is returned when a PipelineCache is created
	// without a specializer.
	ErrNilSpecializer = errors.New("render: specializer is nil")

	// ErrNilQueue is returned when submitting to a nil frame queue.
	ErrNilQueue = errors.New("render: frame queue is nil")
)

// DeviceHandle provides GPU device access from the host application.
//
// The host owns the device; this package never creates one. A host
// built on gogpu passes its gpucontext.DeviceProvider straight through,
// sharing GPU resources between shape rendering and the rest of the
// application.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle with no GPU behind it. Used in
// tests and CPU-only hosts.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo returns unknown adapter metadata for the null device.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

var _ DeviceHandle = NullDeviceHandle{}

// TargetConfig describes the render target pipelines specialize
// against. Two targets with equal configs share pipelines.
type TargetConfig struct {
	// Format is the color attachment's pixel format.
	Format gputypes.TextureFormat

	// SampleCount is the MSAA sample count, 1 for no multisampling.
	SampleCount uint32

	// HDR selects the extended-range output variant of the fill stage.
	HDR bool
}

// DefaultTargetConfig returns the config for a standard LDR swapchain
// target.
func DefaultTargetConfig() TargetConfig {
	return TargetConfig{
		Format:      gputypes.TextureFormatBGRA8Unorm,
		SampleCount: 1,
	}
}

// PipelineKey identifies one specialized render pipeline: a shader pair
// drawn into a particular kind of target.
type PipelineKey struct {
	Pair   smud.ShaderPair
	Target TargetConfig
}

// PipelineHandle is an opaque reference to a (possibly still compiling)
// GPU render pipeline, produced by the host's Specializer.
type PipelineHandle interface {
	// Ready reports whether the pipeline has finished compiling and can
	// be bound for drawing.
	Ready() bool
}

// Specializer creates render pipelines on demand. Implemented by the
// GPU backend (see backend/wgpu for the gogpu/wgpu reference).
//
// Specialize may return a handle that is not yet ready; callers poll
// Ready each frame. An error means this specialization attempt failed
// outright and may be retried.
type Specializer interface {
	Specialize(key PipelineKey) (PipelineHandle, error)
}

// FrameQueue accepts one frame's packed vertices and draw calls.
// Implemented by the GPU backend over the host's render pass.
type FrameQueue interface {
	// WriteVertices uploads the frame's packed instance buffer. Called
	// at most once per frame, before any DrawInstanced.
	WriteVertices(data []byte) error

	// DrawInstanced draws count quad instances starting at the given
	// instance index, using a pipeline previously returned by the
	// Specializer.
	DrawInstanced(pipeline PipelineHandle, first, count uint32) error
}
