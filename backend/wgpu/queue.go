// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/smud/render"
)

var (
	// ErrNilPass is returned when drawing without an active render pass.
	ErrNilPass = errors.New("wgpu: no active render pass, call Begin first")

	// ErrNilQueue is returned when creating a FrameQueue without a queue.
	ErrNilQueue = errors.New("wgpu: queue is nil")

	// ErrForeignPipeline is returned when a pipeline handle was not
	// produced by this package's Specializer.
	ErrForeignPipeline = errors.New("wgpu: pipeline handle from a different specializer")

	// ErrPipelineNotReady is returned when drawing with a pipeline that
	// has not finished compiling.
	ErrPipelineNotReady = errors.New("wgpu: pipeline is not ready")
)

// viewUniformSize is the byte size of render.ViewUniforms on the GPU.
const viewUniformSize = 64

// FrameQueue records shape draws into a host-owned render pass. It
// implements render.FrameQueue.
//
// The vertex buffer is reused across frames and grown as needed; view
// uniforms upload once per Begin.
type FrameQueue struct {
	device hal.Device
	queue  hal.Queue

	pass hal.RenderPassEncoder

	uniformBuf hal.Buffer
	vertBuf    hal.Buffer
	vertCap    uint64

	// One bind group per pipeline layout object, grown lazily.
	bindGroups map[hal.BindGroupLayout]hal.BindGroup
}

// NewFrameQueue creates a FrameQueue uploading through the given device
// and queue.
func NewFrameQueue(device hal.Device, queue hal.Queue) (*FrameQueue, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if queue == nil {
		return nil, ErrNilQueue
	}
	uniformBuf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: "smud_view_uniforms",
		Size:  viewUniformSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create uniform buffer: %w", err)
	}
	return &FrameQueue{
		device:     device,
		queue:      queue,
		uniformBuf: uniformBuf,
		bindGroups: make(map[hal.BindGroupLayout]hal.BindGroup),
	}, nil
}

// Begin points the queue at this frame's render pass and uploads the
// view uniforms. Call once per frame before render.Submit.
func (q *FrameQueue) Begin(pass hal.RenderPassEncoder, view render.ViewUniforms) {
	q.pass = pass
	q.queue.WriteBuffer(q.uniformBuf, 0, view.Bytes())
}

// End detaches the render pass. The pass encoder is owned by the host;
// the queue only records into it.
func (q *FrameQueue) End() {
	q.pass = nil
}

// WriteVertices uploads the frame's packed instance buffer and binds it
// at slot 0.
func (q *FrameQueue) WriteVertices(data []byte) error {
	if q.pass == nil {
		return ErrNilPass
	}
	size := uint64(len(data))
	if q.vertBuf == nil || q.vertCap < size {
		if q.vertBuf != nil {
			q.device.DestroyBuffer(q.vertBuf)
			q.vertBuf = nil
		}
		buf, err := q.device.CreateBuffer(&hal.BufferDescriptor{
			Label: "smud_instances",
			Size:  size,
			Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
		})
		if err != nil {
			return fmt.Errorf("wgpu: create instance buffer: %w", err)
		}
		q.vertBuf = buf
		q.vertCap = size
	}
	q.queue.WriteBuffer(q.vertBuf, 0, data)
	q.pass.SetVertexBuffer(0, q.vertBuf, 0)
	return nil
}

// DrawInstanced draws count quad instances starting at first with the
// given pipeline.
func (q *FrameQueue) DrawInstanced(handle render.PipelineHandle, first, count uint32) error {
	if q.pass == nil {
		return ErrNilPass
	}
	p, ok := handle.(*Pipeline)
	if !ok {
		return ErrForeignPipeline
	}
	raw := p.Raw()
	if raw == nil {
		return ErrPipelineNotReady
	}

	bg, err := q.bindGroup(p.UniformLayout())
	if err != nil {
		return err
	}

	q.pass.SetPipeline(raw)
	q.pass.SetBindGroup(0, bg, nil)
	q.pass.Draw(4, count, 0, first)
	return nil
}

func (q *FrameQueue) bindGroup(layout hal.BindGroupLayout) (hal.BindGroup, error) {
	if bg, ok := q.bindGroups[layout]; ok {
		return bg, nil
	}
	bg, err := q.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "smud_view_bind",
		Layout: layout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: q.uniformBuf.NativeHandle(), Offset: 0, Size: viewUniformSize,
			}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create view bind group: %w", err)
	}
	q.bindGroups[layout] = bg
	return bg, nil
}

// Destroy releases the queue's GPU buffers. The render pass and
// pipelines are owned elsewhere.
func (q *FrameQueue) Destroy() {
	if q.vertBuf != nil {
		q.device.DestroyBuffer(q.vertBuf)
		q.vertBuf = nil
	}
	if q.uniformBuf != nil {
		q.device.DestroyBuffer(q.uniformBuf)
		q.uniformBuf = nil
	}
	q.bindGroups = nil
	q.pass = nil
}

var _ render.FrameQueue = (*FrameQueue)(nil)
