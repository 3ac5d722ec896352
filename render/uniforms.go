// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

// ViewUniforms is the per-view data bound at group 0 by the shape
// shaders: a column-major view-projection matrix.
type ViewUniforms struct {
	ViewProj [16]float32
}

// OrthographicView returns uniforms for a 2D camera centered on
// (centerX, centerY) viewing a width x height world region, with
// visible depth in [near, far].
func OrthographicView(centerX, centerY, width, height, near, far float32) ViewUniforms {
	sx := 2 / width
	sy := 2 / height
	sz := 1 / (far - near)
	return ViewUniforms{ViewProj: [16]float32{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, sz, 0,
		-centerX * sx, -centerY * sy, -near * sz, 1,
	}}
}

// Bytes packs the uniforms for buffer upload.
func (u ViewUniforms) Bytes() []byte {
	buf := make([]byte, 0, 64)
	for _, v := range u.ViewProj {
		buf = appendFloat32(buf, v)
	}
	return buf
}
