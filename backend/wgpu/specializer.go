// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/smud"
	"github.com/gogpu/smud/render"
)

var (
	// ErrNilDevice is returned when creating a Specializer without a device.
	ErrNilDevice = errors.New("wgpu: device is nil")

	// ErrNilRegistry is returned when creating a Specializer without a
	// shader registry.
	ErrNilRegistry = errors.New("wgpu: shader registry is nil")
)

// Specializer builds HAL render pipelines for shader pairs. It
// implements render.Specializer.
type Specializer struct {
	device   hal.Device
	registry *smud.Registry
}

// NewSpecializer creates a Specializer compiling pipelines on the given
// device, with shader sources resolved through registry.
func NewSpecializer(device hal.Device, registry *smud.Registry) (*Specializer, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if registry == nil {
		return nil, ErrNilRegistry
	}
	return &Specializer{device: device, registry: registry}, nil
}

// Specialize returns a pipeline handle for the key. The handle compiles
// lazily: if the pair's sources are not registered yet it stays not
// ready and re-checks on every poll, so shapes appear once their
// shaders load. A compile failure is terminal for the handle.
func (s *Specializer) Specialize(key render.PipelineKey) (render.PipelineHandle, error) {
	p := &Pipeline{spec: s, key: key}
	p.tryBuild()
	return p, nil
}

// Pipeline is one specialized render pipeline. It implements
// render.PipelineHandle.
type Pipeline struct {
	spec *Specializer
	key  render.PipelineKey

	mu       sync.Mutex
	pipeline hal.RenderPipeline
	layout   hal.BindGroupLayout
	failed   bool
}

// Ready reports whether the pipeline can be bound. While the pair's
// sources are still loading, Ready re-attempts the build.
func (p *Pipeline) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pipeline != nil {
		return true
	}
	if p.failed {
		return false
	}
	p.build()
	return p.pipeline != nil
}

// Raw returns the underlying HAL pipeline, or nil while not ready.
func (p *Pipeline) Raw() hal.RenderPipeline {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pipeline
}

// UniformLayout returns the bind group layout for the view uniforms at
// group 0, or nil while not ready.
func (p *Pipeline) UniformLayout() hal.BindGroupLayout {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.layout
}

func (p *Pipeline) tryBuild() {
	p.mu.Lock()
	p.build()
	p.mu.Unlock()
}

// build compiles the pipeline if its sources have arrived. Callers hold
// p.mu.
func (p *Pipeline) build() {
	if p.pipeline != nil || p.failed {
		return
	}
	combined, ok := p.spec.registry.CombinedSource(p.key.Pair)
	if !ok {
		// Sources still loading; try again next poll.
		return
	}
	if err := p.compile(combined); err != nil {
		p.failed = true
		smud.Logger().Warn("shape pipeline compilation failed",
			"sdf", uint64(p.key.Pair.SDF), "fill", uint64(p.key.Pair.Fill), "error", err)
	}
}

func (p *Pipeline) compile(combined string) error {
	device := p.spec.device

	spirv, err := compileToSPIRV(buildProgram(combined))
	if err != nil {
		return err
	}
	shader, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "smud_shape_shader",
		Source: hal.ShaderSource{SPIRV: spirv},
	})
	if err != nil {
		return fmt.Errorf("wgpu: create shader module: %w", err)
	}

	uniformLayout, err := device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "smud_view_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: create uniform layout: %w", err)
	}

	pipeLayout, err := device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "smud_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{uniformLayout},
	})
	if err != nil {
		return fmt.Errorf("wgpu: create pipeline layout: %w", err)
	}

	blend := gputypes.BlendStatePremultiplied()
	pipeline, err := device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "smud_shape_pipeline",
		Layout: pipeLayout,
		Vertex: hal.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers:    render.VertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    p.key.Target.Format,
					Blend:     &blend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleStrip,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: p.key.Target.SampleCount,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: create render pipeline: %w", err)
	}

	p.layout = uniformLayout
	p.pipeline = pipeline
	return nil
}

var _ render.Specializer = (*Specializer)(nil)
var _ render.PipelineHandle = (*Pipeline)(nil)
