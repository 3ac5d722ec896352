// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"fmt"

	"github.com/gogpu/naga"
)

// programTemplate is the fixed part of every shape program. The shader
// pair's combined source is appended to it and must define
//
//	fn sdf(p: vec2<f32>, params: vec4<f32>) -> f32
//	fn fill(d: f32, color: vec4<f32>) -> vec4<f32>
//
// The vertex stage expands one instance record into a 4-corner triangle
// strip quad sized by the frame half-extent.
const programTemplate = `
struct ViewUniforms {
    view_proj: mat4x4<f32>,
};

@group(0) @binding(0) var<uniform> view: ViewUniforms;

struct VertexInput {
    @builtin(vertex_index) index: u32,
    @location(0) position: vec3<f32>,
    @location(1) color: vec4<f32>,
    @location(2) params: vec4<f32>,
    @location(3) rotation: vec2<f32>,
    @location(4) scale: f32,
    @location(5) frame: f32,
};

struct VertexOutput {
    @builtin(position) clip_position: vec4<f32>,
    @location(0) color: vec4<f32>,
    @location(1) params: vec4<f32>,
    @location(2) local: vec2<f32>,
};

@vertex
fn vs_main(in: VertexInput) -> VertexOutput {
    var out: VertexOutput;
    let cx = select(-1.0, 1.0, (in.index & 1u) == 1u);
    let cy = select(-1.0, 1.0, (in.index & 2u) == 2u);
    let local = vec2<f32>(cx, cy) * in.frame;
    let rotated = vec2<f32>(
        local.x * in.rotation.x - local.y * in.rotation.y,
        local.x * in.rotation.y + local.y * in.rotation.x,
    );
    let world = in.position.xy + rotated * in.scale;
    out.clip_position = view.view_proj * vec4<f32>(world, in.position.z, 1.0);
    out.color = in.color;
    out.params = in.params;
    out.local = local;
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    let d = sdf(in.local, in.params);
    return fill(d, in.color);
}
`

// buildProgram assembles the full WGSL program for a shader pair.
func buildProgram(combined string) string {
	return programTemplate + "\n" + combined
}

// compileToSPIRV compiles WGSL to SPIR-V words through naga. SPIR-V is
// little-endian 32-bit words.
func compileToSPIRV(wgsl string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgsl)
	if err != nil {
		return nil, fmt.Errorf("wgpu: compile shader: %w", err)
	}
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}
