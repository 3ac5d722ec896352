// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
)

// VertexStride is the size in bytes of one packed shape instance.
//
// The GPU expands each record into a 4-corner triangle strip via
// instancing; the CPU packs exactly one record per shape.
const VertexStride = 60

// Instance vertex layout, all little-endian float32:
//
//	offset  size  location  attribute
//	     0    16         1  color (linear RGBA)
//	    16     4         5  frame half-extent
//	    20    16         2  params
//	    36    12         0  position (world xy + z)
//	    48     8         3  rotation direction
//	    56     4         4  scale
const (
	vertexColorOffset    = 0
	vertexFrameOffset    = 16
	vertexParamsOffset   = 20
	vertexPositionOffset = 36
	vertexRotationOffset = 48
	vertexScaleOffset    = 56
)

// VertexLayout returns the instance buffer layout matching the packed
// record, for render pipeline creation.
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeInstance,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x4, Offset: vertexColorOffset, ShaderLocation: 1},
				{Format: gputypes.VertexFormatFloat32, Offset: vertexFrameOffset, ShaderLocation: 5},
				{Format: gputypes.VertexFormatFloat32x4, Offset: vertexParamsOffset, ShaderLocation: 2},
				{Format: gputypes.VertexFormatFloat32x3, Offset: vertexPositionOffset, ShaderLocation: 0},
				{Format: gputypes.VertexFormatFloat32x2, Offset: vertexRotationOffset, ShaderLocation: 3},
				{Format: gputypes.VertexFormatFloat32, Offset: vertexScaleOffset, ShaderLocation: 4},
			},
		},
	}
}

// appendInstance packs one shape into dst and returns the extended
// slice. Packing is pure: the same shape always yields the same bytes.
func appendInstance(dst []byte, s *ExtractedShape) []byte {
	pos := s.Transform.Translation()
	rotation, scale := s.Transform.Orientation()

	dst = appendFloat32(dst, s.Shape.Color.R)
	dst = appendFloat32(dst, s.Shape.Color.G)
	dst = appendFloat32(dst, s.Shape.Color.B)
	dst = appendFloat32(dst, s.Shape.Color.A)
	dst = appendFloat32(dst, s.Shape.Frame.HalfSize)
	for _, p := range s.Shape.Params {
		dst = appendFloat32(dst, p)
	}
	dst = appendFloat32(dst, pos.X)
	dst = appendFloat32(dst, pos.Y)
	dst = appendFloat32(dst, pos.Z)
	dst = appendFloat32(dst, rotation.X)
	dst = appendFloat32(dst, rotation.Y)
	dst = appendFloat32(dst, scale)
	return dst
}

func appendFloat32(dst []byte, v float32) []byte {
	return binary.LittleEndian.AppendUint32(dst, math.Float32bits(v))
}
