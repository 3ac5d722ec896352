// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package smud

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"
)

// Affine is a 2D affine transformation matrix:
//
//	| A  B  C |
//	| D  E  F |
//
// Where a point (x, y) is transformed to:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Affine struct {
	A, B, C float32
	D, E, F float32
}

// IdentityAffine returns the identity transformation.
func IdentityAffine() Affine {
	return Affine{A: 1, B: 0, C: 0, D: 0, E: 1, F: 0}
}

// TranslateAffine creates a translation transformation.
func TranslateAffine(x, y float32) Affine {
	return Affine{A: 1, B: 0, C: x, D: 0, E: 1, F: y}
}

// ScaleAffine creates a scaling transformation.
func ScaleAffine(x, y float32) Affine {
	return Affine{A: x, B: 0, C: 0, D: 0, E: y, F: 0}
}

// RotateAffine creates a rotation transformation (angle in radians,
// counter-clockwise).
func RotateAffine(angle float32) Affine {
	cos := math32.Cos(angle)
	sin := math32.Sin(angle)
	return Affine{A: cos, B: -sin, C: 0, D: sin, E: cos, F: 0}
}

// Multiply returns the product of two affine transformations.
func (a Affine) Multiply(b Affine) Affine {
	return Affine{
		A: a.A*b.A + a.B*b.D,
		B: a.A*b.B + a.B*b.E,
		C: a.A*b.C + a.B*b.F + a.C,
		D: a.D*b.A + a.E*b.D,
		E: a.D*b.B + a.E*b.E,
		F: a.D*b.C + a.E*b.F + a.F,
	}
}

// TransformPoint transforms a point by the affine matrix.
func (a Affine) TransformPoint(p ms2.Vec) ms2.Vec {
	return ms2.Vec{
		X: a.A*p.X + a.B*p.Y + a.C,
		Y: a.D*p.X + a.E*p.Y + a.F,
	}
}

// IsIdentity returns true if this is the identity transformation.
func (a Affine) IsIdentity() bool {
	return a.A == 1 && a.B == 0 && a.C == 0 &&
		a.D == 0 && a.E == 1 && a.F == 0
}

// Determinant returns the determinant of the linear part of the matrix.
// A zero determinant means the transform collapses the plane and cannot
// be inverted.
func (a Affine) Determinant() float32 {
	return a.A*a.E - a.B*a.D
}

// IsNaN reports whether any component is NaN.
func (a Affine) IsNaN() bool {
	return math32.IsNaN(a.A) || math32.IsNaN(a.B) || math32.IsNaN(a.C) ||
		math32.IsNaN(a.D) || math32.IsNaN(a.E) || math32.IsNaN(a.F)
}

// IsDegenerate reports whether the transform is non-invertible or contains
// NaN components. Degenerate transforms are excluded from picking.
func (a Affine) IsDegenerate() bool {
	det := a.Determinant()
	return det == 0 || math32.IsNaN(det) || a.IsNaN()
}

// Invert returns the inverse transformation and true, or the identity and
// false if the matrix is degenerate.
func (a Affine) Invert() (Affine, bool) {
	det := a.Determinant()
	if det == 0 || math32.IsNaN(det) {
		return IdentityAffine(), false
	}
	inv := 1 / det
	return Affine{
		A: a.E * inv,
		B: -a.B * inv,
		C: (a.B*a.F - a.E*a.C) * inv,
		D: -a.D * inv,
		E: a.A * inv,
		F: (a.D*a.C - a.A*a.F) * inv,
	}, true
}

// Transform is a shape's world transform: a 2D affine matrix positioning
// the shape on its Z plane, plus the plane's depth. Shapes never rotate
// out of their plane.
type Transform struct {
	Affine Affine
	Z      float32
}

// IdentityTransform returns the identity world transform at Z = 0.
func IdentityTransform() Transform {
	return Transform{Affine: IdentityAffine()}
}

// NewTransform builds a world transform from translation, rotation
// (radians) and uniform scale. Composition order is translate, rotate,
// scale, matching the usual scene-graph convention.
func NewTransform(x, y, z, angle, scale float32) Transform {
	m := TranslateAffine(x, y).
		Multiply(RotateAffine(angle)).
		Multiply(ScaleAffine(scale, scale))
	return Transform{Affine: m, Z: z}
}

// Translation returns the transform's world-space position.
func (t Transform) Translation() ms3.Vec {
	return ms3.Vec{X: t.Affine.C, Y: t.Affine.F, Z: t.Z}
}

// Orientation returns the transform's rotation as a unit direction (the
// image of the X axis, normalized) and its scale as that image's length
// before normalization.
//
// This derivation is exact only for uniform scale; under non-uniform
// scale the Y axis is ignored. Known limitation, kept deliberately.
func (t Transform) Orientation() (rotation ms2.Vec, scale float32) {
	v := ms2.Vec{X: t.Affine.A, Y: t.Affine.D} // image of (1, 0), translation removed
	scale = ms2.Norm(v)
	if scale == 0 || math32.IsNaN(scale) {
		return ms2.Vec{X: 1, Y: 0}, 0
	}
	return ms2.Scale(1/scale, v), scale
}

// Normal returns the shape plane's back-facing unit normal in world space.
// Shapes are planar and never rotate out of their Z plane, so this is
// always +Z.
func (t Transform) Normal() ms3.Vec {
	return ms3.Vec{Z: 1}
}
