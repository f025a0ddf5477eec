package gradient

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA color with all four channels normalized to [0,1].
type Color struct {
	R, G, B, A float64
}

// RGB builds an opaque color from normalized channel values.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// Lerp linearly interpolates every channel, alpha included, between c and
// other. t=0 yields c, t=1 yields other.
func (c Color) Lerp(other Color, t float64) Color {
	mixed := c.colorful().BlendRgb(other.colorful(), t)
	return Color{
		R: mixed.R,
		G: mixed.G,
		B: mixed.B,
		A: c.A + (other.A-c.A)*t,
	}
}

// Hex emits the color as #rrggbb, or #rrggbbaa when it is not fully opaque.
func (c Color) Hex() string {
	s := c.colorful().Clamped().Hex()
	if c.A < 1 {
		a := int(c.A*255 + 0.5)
		if a < 0 {
			a = 0
		}
		s += fmt.Sprintf("%02x", a)
	}
	return s
}

// RGBA8 returns the color quantized to 8 bits per channel.
func (c Color) RGBA8() (r, g, b, a uint8) {
	q := func(v float64) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return q(c.R), q(c.G), q(c.B), q(c.A)
}

// ParseColor accepts #rrggbb, #rrggbbaa, or an SVG color name.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	return Color{}, fmt.Errorf("gradient: unknown color %q", s)
}

func parseHex(s string) (Color, error) {
	alpha := 1.0
	switch len(s) {
	case 7:
	case 9:
		v, err := strconv.ParseUint(s[7:9], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("gradient: bad alpha in color %q", s)
		}
		alpha = float64(v) / 255
		s = s[:7]
	default:
		return Color{}, fmt.Errorf("gradient: bad hex color %q", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("gradient: bad hex color %q", s)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}
