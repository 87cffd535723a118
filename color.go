package glshader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ColorRGB is an opaque color with components in [0, 1].
type ColorRGB struct {
	R, G, B float32
}

// ColorRGBA is a color with an alpha channel, components in [0, 1].
type ColorRGBA struct {
	R, G, B, A float32
}

// NewColorRGB builds a color from components in [0, 1].
func NewColorRGB(r, g, b float32) ColorRGB {
	return ColorRGB{R: r, G: g, B: b}
}

// NewColorRGBA builds a color from components in [0, 1].
func NewColorRGBA(r, g, b, a float32) ColorRGBA {
	return ColorRGBA{R: r, G: g, B: b, A: a}
}

// Vec3 returns the color as a vec3 uniform payload.
func (c ColorRGB) Vec3() mgl32.Vec3 { return mgl32.Vec3{c.R, c.G, c.B} }

// WithAlpha attaches an alpha channel.
func (c ColorRGB) WithAlpha(a float32) ColorRGBA {
	return ColorRGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// Luminance returns the relative luminance of the color.
func (c ColorRGB) Luminance() float32 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// Linear converts sRGB-encoded components to linear light.
func (c ColorRGB) Linear() ColorRGB {
	return ColorRGB{R: srgbToLinear(c.R), G: srgbToLinear(c.G), B: srgbToLinear(c.B)}
}

// SRGB converts linear-light components to the sRGB encoding.
func (c ColorRGB) SRGB() ColorRGB {
	return ColorRGB{R: linearToSRGB(c.R), G: linearToSRGB(c.G), B: linearToSRGB(c.B)}
}

// Vec4 returns the color as a vec4 uniform payload.
func (c ColorRGBA) Vec4() mgl32.Vec4 { return mgl32.Vec4{c.R, c.G, c.B, c.A} }

// RGB drops the alpha channel.
func (c ColorRGBA) RGB() ColorRGB { return ColorRGB{R: c.R, G: c.G, B: c.B} }

func srgbToLinear(v float32) float32 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math32.Pow((v+0.055)/1.055, 2.4)
}

func linearToSRGB(v float32) float32 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math32.Pow(v, 1/2.4) - 0.055
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA" (leading '#' optional) into
// a color; the alpha defaults to 1.
func ParseHexColor(s string) (ColorRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return ColorRGBA{}, fmt.Errorf("hex color %q: want 6 or 8 digits", s)
	}
	var comp [4]float32
	comp[3] = 1
	for i := 0; i < len(hex)/2; i++ {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return ColorRGBA{}, fmt.Errorf("hex color %q: %w", s, err)
		}
		comp[i] = float32(v) / 255
	}
	return ColorRGBA{R: comp[0], G: comp[1], B: comp[2], A: comp[3]}, nil
}
