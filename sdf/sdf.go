// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package sdf provides CPU-side closed-form signed distance functions
// for 2D shapes.
//
// These mirror the distance functions typically used by shape shaders,
// allowing exact hit-testing and other CPU-side queries. All functions
// take a point and shape parameters and return the signed distance to
// the shape's boundary: negative inside, positive outside, zero on the
// surface.
package sdf

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms1"
	"github.com/soypat/glgl/math/ms2"
)

const (
	sqrt2 = 1.4142135623730951
	sqrt3 = 1.7320508075688772
)

func sign(v float32) float32 {
	if v < 0 {
		return -1
	} else if v > 0 {
		return 1
	}
	return 0
}

// Circle returns the distance from p to a circle of the given radius
// centered at the origin.
func Circle(p ms2.Vec, radius float32) float32 {
	return ms2.Norm(p) - radius
}

// Box returns the distance from p to an axis-aligned box with the given
// half-extents, centered at the origin.
func Box(p ms2.Vec, half ms2.Vec) float32 {
	d := ms2.Sub(ms2.AbsElem(p), half)
	return ms2.Norm(ms2.MaxElem(d, ms2.Vec{})) + math32.Min(0, math32.Max(d.X, d.Y))
}

// RoundedBox returns the distance from p to a box with the given
// half-extents and corner radius.
func RoundedBox(p ms2.Vec, half ms2.Vec, radius float32) float32 {
	return Box(p, ms2.AddScalar(-radius, half)) - radius
}

// Segment returns the distance from p to the line segment from a to b.
// The distance is unsigned; use Round to give the segment thickness.
func Segment(p, a, b ms2.Vec) float32 {
	pa := ms2.Sub(p, a)
	ba := ms2.Sub(b, a)
	h := ms1.Clamp(ms2.Dot(pa, ba)/ms2.Dot(ba, ba), 0, 1)
	return ms2.Norm(ms2.Sub(pa, ms2.Scale(h, ba)))
}

// Hexagon returns the distance from p to a regular hexagon with the
// given apothem (inradius), flat sides up.
func Hexagon(p ms2.Vec, r float32) float32 {
	k := ms2.Vec{X: -sqrt3 / 2, Y: 0.5}
	const kz = 0.577350269
	p = ms2.AbsElem(p)
	p = ms2.Sub(p, ms2.Scale(2*math32.Min(ms2.Dot(k, p), 0), k))
	p = ms2.Sub(p, ms2.Vec{X: ms1.Clamp(p.X, -kz*r, kz*r), Y: r})
	return sign(p.Y) * ms2.Norm(p)
}

// EquilateralTriangle returns the distance from p to an equilateral
// triangle with the given inradius, pointing up.
func EquilateralTriangle(p ms2.Vec, r float32) float32 {
	const k = sqrt3
	s := r * k // half side length
	p.X = math32.Abs(p.X) - s
	p.Y += r
	if p.X+k*p.Y > 0 {
		p = ms2.Scale(0.5, ms2.Vec{X: p.X - k*p.Y, Y: -k*p.X - p.Y})
	}
	p.X -= ms1.Clamp(p.X, -2*s, 0)
	return -ms2.Norm(p) * sign(p.Y)
}

// Ellipse returns the distance from p to an axis-aligned ellipse with
// semi-axes a and b. Exact (iquilezles.org/articles/ellipsedist).
func Ellipse(p ms2.Vec, a, b float32) float32 {
	p = ms2.AbsElem(p)
	if p.X > p.Y {
		p.X, p.Y = p.Y, p.X
		a, b = b, a
	}
	l := b*b - a*a
	if l == 0 {
		return Circle(p, a)
	}
	m := a * p.X / l
	m2 := m * m
	n := b * p.Y / l
	n2 := n * n
	c := (m2 + n2 - 1) / 3
	c3 := c * c * c
	q := c3 + 2*m2*n2
	d := c3 + m2*n2
	g := m + m*n2
	var co float32
	if d < 0 {
		h := math32.Acos(q/c3) / 3
		sh, ch := math32.Sincos(h)
		t := sqrt3 * sh
		rx := math32.Sqrt(-c*(ch+t+2) + m2)
		ry := math32.Sqrt(-c*(ch-t+2) + m2)
		co = (ry + sign(l)*rx + math32.Abs(g)/(rx*ry) - m) / 2
	} else {
		h := 2 * m * n * math32.Sqrt(d)
		s := sign(q+h) * math32.Cbrt(math32.Abs(q+h))
		u := sign(q-h) * math32.Cbrt(math32.Abs(q-h))
		rx := -s - u - 4*c + 2*m2
		ry := sqrt3 * (s - u)
		rm := math32.Hypot(rx, ry)
		co = (ry/math32.Sqrt(rm-rx) + 2*g/rm - m) / 2
	}
	r := ms2.Vec{X: a * co, Y: b * math32.Sqrt(1-co*co)}
	return ms2.Norm(ms2.Sub(r, p)) * sign(p.Y-r.Y)
}

// Annulus returns the distance from p to a ring between the inner and
// outer radii.
func Annulus(p ms2.Vec, inner, outer float32) float32 {
	mid := (inner + outer) / 2
	return math32.Abs(ms2.Norm(p)-mid) - (outer-inner)/2
}

// Arc returns the distance from p to an arc of the given radius spanning
// aperture (half-angle, radians) around +Y, with the given stroke
// thickness.
func Arc(p ms2.Vec, radius, aperture, thickness float32) float32 {
	s, c := math32.Sincos(aperture)
	sc := ms2.Vec{X: s, Y: c}
	p.X = math32.Abs(p.X)
	if sc.Y*p.X > sc.X*p.Y {
		return ms2.Norm(ms2.Sub(p, ms2.Scale(radius, sc))) - thickness/2
	}
	return math32.Abs(ms2.Norm(p)-radius) - thickness/2
}

// Pie returns the distance from p to a filled circular sector of the
// given radius spanning aperture (half-angle, radians) around +Y.
func Pie(p ms2.Vec, radius, aperture float32) float32 {
	s, c := math32.Sincos(aperture)
	sc := ms2.Vec{X: s, Y: c}
	p.X = math32.Abs(p.X)
	l := ms2.Norm(p) - radius
	m := ms2.Norm(ms2.Sub(p, ms2.Scale(ms1.Clamp(ms2.Dot(p, sc), 0, radius), sc)))
	return math32.Max(l, m*sign(sc.Y*p.X-sc.X*p.Y))
}

// Moon returns the distance from p to a crescent: a circle of radius ra
// with a circle of radius rb displaced by d carved out.
func Moon(p ms2.Vec, d, ra, rb float32) float32 {
	p.Y = math32.Abs(p.Y)
	a := (ra*ra - rb*rb + d*d) / (2 * d)
	b := math32.Sqrt(math32.Max(ra*ra-a*a, 0))
	if d*(p.X*b-p.Y*a) > d*d*math32.Max(b-p.Y, 0) {
		return math32.Hypot(p.X-a, p.Y-b)
	}
	return math32.Max(ms2.Norm(p)-ra, -(math32.Hypot(p.X-d, p.Y) - rb))
}

// Vesica returns the distance from p to a vesica piscis: the
// intersection of two circles of radius r whose centers are 2*d apart
// on the X axis.
func Vesica(p ms2.Vec, r, d float32) float32 {
	p = ms2.AbsElem(p)
	b := math32.Sqrt(math32.Max(r*r-d*d, 0))
	if (p.Y-b)*d > p.X*b {
		return math32.Hypot(p.X, p.Y-b)
	}
	return math32.Hypot(p.X+d, p.Y) - r
}

// Heart returns the distance from p to a heart of unit size sitting on
// the origin and extending to Y = 1.
func Heart(p ms2.Vec) float32 {
	p.X = math32.Abs(p.X)
	if p.Y+p.X > 1 {
		return math32.Hypot(p.X-0.25, p.Y-0.75) - sqrt2/4
	}
	d1 := ms2.Norm2(ms2.Sub(p, ms2.Vec{Y: 1}))
	h := 0.5 * math32.Max(p.X+p.Y, 0)
	d2 := ms2.Norm2(ms2.Sub(p, ms2.Vec{X: h, Y: h}))
	return math32.Sqrt(math32.Min(d1, d2)) * sign(p.X-p.Y)
}

// Star returns the distance from p to a regular star polygon with n
// points, outer radius r, and inner-radius factor m in (2/n, 1).
func Star(p ms2.Vec, r float32, n int, m float32) float32 {
	an := math32.Pi / float32(n)
	en := math32.Pi / (m * float32(n))
	acs := ms2.Vec{X: math32.Cos(an), Y: math32.Sin(an)}
	ecs := ms2.Vec{X: math32.Cos(en), Y: math32.Sin(en)}

	// Fold the angle into one star sector. math32.Mod keeps the sign of
	// its dividend, so normalize the remainder into [0, 2*an) first.
	bn := math32.Mod(math32.Atan2(p.X, p.Y), 2*an)
	if bn < 0 {
		bn += 2 * an
	}
	bn -= an
	p = ms2.Scale(ms2.Norm(p), ms2.Vec{X: math32.Cos(bn), Y: math32.Abs(math32.Sin(bn))})
	p = ms2.Sub(p, ms2.Scale(r, acs))
	p = ms2.Add(p, ms2.Scale(ms1.Clamp(-ms2.Dot(p, ecs), 0, r*acs.Y/ecs.Y), ecs))
	return ms2.Norm(p) * sign(p.X)
}

// Union returns the distance to the union of two shapes.
func Union(d1, d2 float32) float32 {
	return math32.Min(d1, d2)
}

// Intersect returns the distance to the intersection of two shapes.
func Intersect(d1, d2 float32) float32 {
	return math32.Max(d1, d2)
}

// Subtract returns the distance to shape d1 with shape d2 carved out.
func Subtract(d1, d2 float32) float32 {
	return math32.Max(d1, -d2)
}

// Round offsets the boundary outward by r, rounding corners.
func Round(d, r float32) float32 {
	return d - r
}

// Annular converts a filled shape into a ring of the given thickness
// around its boundary.
func Annular(d, thickness float32) float32 {
	return math32.Abs(d) - thickness/2
}
