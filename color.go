// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package smud

import (
	"image/color"

	"github.com/chewxy/math32"
)

// RGBA is a color in linear color space with float32 components in [0, 1].
// Shape colors are handed to fill shaders exactly as stored, so they must
// already be linear at draw time.
type RGBA struct {
	R, G, B, A float32
}

// Rgb creates an opaque linear color from RGB components.
func Rgb(r, g, b float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Rgba creates a linear color from RGBA components.
func Rgba(r, g, b, a float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// FromColor converts a standard color.Color (sRGB-encoded) to a linear RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBA{}
	}
	// Un-premultiply, then decode sRGB to linear.
	return RGBA{
		R: srgbToLinear(float32(r) / float32(a)),
		G: srgbToLinear(float32(g) / float32(a)),
		B: srgbToLinear(float32(b) / float32(a)),
		A: float32(a) / 65535,
	}
}

// srgbToLinear decodes one sRGB-encoded channel to linear.
func srgbToLinear(c float32) float32 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math32.Pow((c+0.055)/1.055, 2.4)
}

// linearToSRGB encodes one linear channel to sRGB.
func linearToSRGB(c float32) float32 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math32.Pow(c, 1/2.4) - 0.055
}

// Color converts the linear RGBA to the standard color.Color interface,
// encoding to sRGB on the way out.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(linearToSRGB(c.R) * 255)),
		G: uint8(clamp255(linearToSRGB(c.G) * 255)),
		B: uint8(clamp255(linearToSRGB(c.B) * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

func clamp255(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
